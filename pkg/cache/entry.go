package cache

import "sync"

// Pair is a key/value copied out of the cache.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// slot is the arena cell holding one entry.
//
// key and live change only with the index write lock held. value is guarded
// by mu, so a value update on one key never waits for the structural mutex.
type slot[K comparable, V any] struct {
	mu    sync.RWMutex
	key   K
	value V
	live  bool
}

func (s *slot[K, V]) load() V {
	s.mu.RLock()
	v := s.value
	s.mu.RUnlock()
	return v
}

func (s *slot[K, V]) swap(v V) V {
	s.mu.Lock()
	old := s.value
	s.value = v
	s.mu.Unlock()
	return old
}

// assign overwrites the slot with a new pair and returns the previous one.
// Must be called with the index write lock held.
func (s *slot[K, V]) assign(key K, value V) (K, V) {
	s.mu.Lock()
	oldKey, oldValue := s.key, s.value
	s.key, s.value, s.live = key, value, true
	s.mu.Unlock()
	return oldKey, oldValue
}

// release empties the slot and returns the pair it held.
// Must be called with the index write lock held.
func (s *slot[K, V]) release() (K, V) {
	var (
		zeroKey   K
		zeroValue V
	)
	s.mu.Lock()
	key, value := s.key, s.value
	s.key, s.value, s.live = zeroKey, zeroValue, false
	s.mu.Unlock()
	return key, value
}

// eviction carries pairs to hand to the evict callback once locks are released.
type eviction[K comparable, V any] struct {
	fn    func(key K, value V)
	pairs []Pair[K, V]
}

func (e eviction[K, V]) fire() {
	if e.fn == nil {
		return
	}
	for _, p := range e.pairs {
		e.fn(p.Key, p.Value)
	}
}
