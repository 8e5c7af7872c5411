package cache

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// lruModel is a naive reference LRU: order holds keys from most to least
// recently used.
type lruModel struct {
	capacity int
	order    []int
	values   map[int]int
}

func (m *lruModel) touch(key int) {
	i := slices.Index(m.order, key)
	if i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	m.order = slices.Insert(m.order, 0, key)
}

func (m *lruModel) put(key, value int) {
	if _, ok := m.values[key]; !ok && len(m.order) == m.capacity {
		lru := m.order[len(m.order)-1]
		m.order = m.order[:len(m.order)-1]
		delete(m.values, lru)
	}
	m.values[key] = value
	m.touch(key)
}

func TestLRUCache_MatchesModel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 8).Draw(rt, "capacity")
		c := NewLRUCache[int, int](capacity)
		m := &lruModel{capacity: capacity, order: []int{}, values: make(map[int]int)}

		key := rapid.IntRange(0, 12)

		rt.Repeat(map[string]func(*rapid.T){
			"put": func(rt *rapid.T) {
				k := key.Draw(rt, "key")
				v := rapid.Int().Draw(rt, "value")
				prev, existed := c.Put(k, v)
				want, wantExisted := m.values[k]
				require.Equal(rt, wantExisted, existed)
				if existed {
					require.Equal(rt, want, prev)
				}
				m.put(k, v)
			},
			"get": func(rt *rapid.T) {
				k := key.Draw(rt, "key")
				v, ok := c.Get(k)
				want, wantOK := m.values[k]
				require.Equal(rt, wantOK, ok)
				require.Equal(rt, want, v)
				if ok {
					m.touch(k)
				}
			},
			"peek": func(rt *rapid.T) {
				k := key.Draw(rt, "key")
				v, ok := c.Peek(k)
				want, wantOK := m.values[k]
				require.Equal(rt, wantOK, ok)
				require.Equal(rt, want, v)
			},
			"remove": func(rt *rapid.T) {
				k := key.Draw(rt, "key")
				v, ok := c.Remove(k)
				want, wantOK := m.values[k]
				require.Equal(rt, wantOK, ok)
				require.Equal(rt, want, v)
				if ok {
					delete(m.values, k)
					m.order = slices.DeleteFunc(m.order, func(x int) bool { return x == k })
				}
			},
			"clear": func(rt *rapid.T) {
				c.Clear()
				m.order = m.order[:0]
				clear(m.values)
			},
			"": func(rt *rapid.T) {
				require.NoError(rt, c.checkInvariants())
				require.Equal(rt, m.order, c.Recent())
				require.Equal(rt, len(m.values), c.Len())

				got := make(map[int]int, c.Len())
				for k, v := range c.All() {
					got[k] = v
				}
				require.Equal(rt, m.values, got)
			},
		})
	})
}
