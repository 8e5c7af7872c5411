package cache

import (
	"iter"
	"reflect"
	"sync"
	"sync/atomic"
)

// LRUCache is a thread-safe LRU cache implementation.
// When the cache reaches its capacity, the least recently used item is evicted
// and its storage is reused for the incoming item.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex // guards list, free, used and the allocate-or-evict path
	capacity int
	index    *index[K]
	slots    []slot[K, V]
	list     recencyList
	free     []handle
	used     int // arena high-water mark; also guarded by the index lock

	onEvict func(key K, value V)
	equal   func(a, b V) bool

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a new LRU cache with the specified capacity.
// It returns an *ArgumentError wrapping ErrInvalidArgument if capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, argumentError(ErrInvalidArgument, "capacity", msgCapacity)
	}

	c := &LRUCache[K, V]{
		capacity: capacity,
		index:    newIndex[K](capacity),
		slots:    make([]slot[K, V], capacity),
		list:     newRecencyList(capacity),
		equal:    func(a, b V) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewLRUCache works like New but panics if capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int, opts ...Option[K, V]) *LRUCache[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// SetEvictCallback sets a callback function that is called when items are evicted.
// This is useful for cleanup operations like closing resources.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value from the cache and marks it as recently used.
// Returns the value and true if found, zero value and false otherwise.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	var zero V

	// Misses never touch the structural mutex.
	if !c.index.contains(key) {
		c.misses.Add(1)
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check: the entry may have been evicted or removed in between.
	h, ok := c.index.lookup(key)
	if !ok {
		c.misses.Add(1)
		return zero, false
	}
	c.list.promote(h)
	c.hits.Add(1)
	return c.slots[h].load(), true
}

// Value returns the value stored under key, or the zero value of V if the key
// is absent. A hit marks the key as recently used.
func (c *LRUCache[K, V]) Value(key K) V {
	v, _ := c.Get(key)
	return v
}

// Peek returns the value stored under key without updating its recency.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	c.index.mu.RLock()
	defer c.index.mu.RUnlock()

	h, ok := c.index.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.slots[h].load(), true
}

// Put adds or updates a value in the cache and marks it as recently used.
// If the cache is at capacity, the least recently used item is evicted.
// Returns the previous value if it existed, and a boolean indicating if it existed.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	if prev, ok := c.update(key, value); ok {
		return prev, true
	}

	prev, existed, ev := c.put(key, value)
	ev.fire()
	return prev, existed
}

// Add is Put without the previous value.
func (c *LRUCache[K, V]) Add(key K, value V) {
	c.Put(key, value)
}

// update overwrites the value of a resident key under the slot lock, then
// promotes it. It reports false if the key is not resident.
func (c *LRUCache[K, V]) update(key K, value V) (V, bool) {
	c.index.mu.RLock()
	h, ok := c.index.m[key]
	if !ok {
		c.index.mu.RUnlock()
		var zero V
		return zero, false
	}
	prev := c.slots[h].swap(value)
	c.index.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.index.lookup(key); ok {
		c.list.promote(h)
	}
	return prev, true
}

func (c *LRUCache[K, V]) put(key K, value V) (V, bool, eviction[K, V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another writer may have inserted key since the lock-free lookup.
	if h, ok := c.index.lookup(key); ok {
		prev := c.slots[h].swap(value)
		c.list.promote(h)
		return prev, true, eviction[K, V]{}
	}

	var zero V
	if c.list.len() < c.capacity {
		c.insertLocked(key, value)
		return zero, false, eviction[K, V]{}
	}

	oldKey, oldValue := c.reuseTailLocked(key, value)
	return zero, false, c.evictedLocked(Pair[K, V]{Key: oldKey, Value: oldValue})
}

// Must be called with c.mu held.
func (c *LRUCache[K, V]) insertLocked(key K, value V) {
	c.index.mu.Lock()
	h := c.claimLocked()
	c.slots[h].assign(key, value)
	c.index.insertLocked(key, h)
	c.index.mu.Unlock()

	c.list.pushFront(h)
}

// reuseTailLocked evicts the least recently used entry and stores the new
// pair in its slot. The index swap happens under one write lock, so readers
// see either the old key or the new one, never both or neither.
// Must be called with c.mu held.
func (c *LRUCache[K, V]) reuseTailLocked(key K, value V) (K, V) {
	h := c.list.evictTail()

	c.index.mu.Lock()
	oldKey, oldValue := c.slots[h].assign(key, value)
	c.index.removeLocked(oldKey)
	c.index.insertLocked(key, h)
	c.index.mu.Unlock()

	c.list.pushFront(h)
	c.evictions.Add(1)
	return oldKey, oldValue
}

// Must be called with c.mu and the index write lock held.
func (c *LRUCache[K, V]) claimLocked() handle {
	if n := len(c.free); n > 0 {
		h := c.free[n-1]
		c.free = c.free[:n-1]
		return h
	}
	h := handle(c.used)
	c.used++
	return h
}

// Must be called with c.mu held.
func (c *LRUCache[K, V]) evictedLocked(pairs ...Pair[K, V]) eviction[K, V] {
	if c.onEvict == nil {
		return eviction[K, V]{}
	}
	return eviction[K, V]{fn: c.onEvict, pairs: pairs}
}

// Remove removes an item from the cache.
// Returns the removed value and true if it existed, zero value and false otherwise.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	if !c.index.contains(key) {
		var zero V
		return zero, false
	}

	v, ok, ev := c.remove(key)
	ev.fire()
	return v, ok
}

func (c *LRUCache[K, V]) remove(key K) (V, bool, eviction[K, V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index.mu.Lock()
	h, ok := c.index.removeLocked(key)
	if !ok {
		c.index.mu.Unlock()
		var zero V
		return zero, false, eviction[K, V]{}
	}
	k, v := c.slots[h].release()
	c.free = append(c.free, h)
	c.index.mu.Unlock()

	c.list.detach(h)
	return v, true, c.evictedLocked(Pair[K, V]{Key: k, Value: v})
}

// Clear removes all items from the cache.
// If an evict callback is set, it's called for each item.
func (c *LRUCache[K, V]) Clear() {
	c.clear().fire()
}

func (c *LRUCache[K, V]) clear() eviction[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index.mu.Lock()
	defer c.index.mu.Unlock()

	var pairs []Pair[K, V]
	if c.onEvict != nil {
		pairs = make([]Pair[K, V], 0, len(c.index.m))
	}
	for i := range c.used {
		s := &c.slots[i]
		if !s.live {
			continue
		}
		k, v := s.release()
		if c.onEvict != nil {
			pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
		}
	}

	c.index.resetLocked()
	c.list.reset()
	c.free = c.free[:0]
	c.used = 0
	return c.evictedLocked(pairs...)
}

// ContainsKey reports whether key is present without updating its recency.
func (c *LRUCache[K, V]) ContainsKey(key K) bool {
	return c.index.contains(key)
}

// Contains reports whether key is present and holds a value equal to value.
func (c *LRUCache[K, V]) Contains(key K, value V) bool {
	v, ok := c.Peek(key)
	return ok && c.equal(v, value)
}

// Len returns the number of items in the cache.
func (c *LRUCache[K, V]) Len() int {
	return c.index.len()
}

// Cap returns the capacity the cache was created with.
func (c *LRUCache[K, V]) Cap() int {
	return c.capacity
}

// CopyTo copies every pair into dst starting at start, in storage order.
// It fails without touching dst if dst is nil, start is outside [0, len(dst)]
// or the remaining space cannot hold Len() pairs.
func (c *LRUCache[K, V]) CopyTo(dst []Pair[K, V], start int) error {
	if dst == nil {
		return argumentError(ErrNilArgument, "dst", "Value cannot be nil.")
	}
	if start < 0 || start > len(dst) {
		return argumentError(ErrArgumentOutOfRange, "start", "Must be within the bounds of the destination.")
	}

	c.index.mu.RLock()
	defer c.index.mu.RUnlock()

	if len(dst)-start < len(c.index.m) {
		return argumentError(ErrInvalidArgument, "dst", msgInsufficientSpace)
	}
	c.appendPairsLocked(dst[start:start])
	return nil
}

// All returns an iterator over the cache pairs in storage order, which is not
// recency order. Each iteration works on a fresh snapshot and does not update
// recency, so the sequence can be ranged over repeatedly.
func (c *LRUCache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range c.snapshot() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in storage order.
func (c *LRUCache[K, V]) Keys() []K {
	pairs := c.snapshot()
	keys := make([]K, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	return keys
}

// Values returns the values in storage order.
func (c *LRUCache[K, V]) Values() []V {
	pairs := c.snapshot()
	values := make([]V, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	return values
}

// Recent returns the keys ordered from most to least recently used.
func (c *LRUCache[K, V]) Recent() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.list.len())
	c.list.walk(func(h handle) bool {
		keys = append(keys, c.slots[h].key)
		return true
	})
	return keys
}

func (c *LRUCache[K, V]) snapshot() []Pair[K, V] {
	c.index.mu.RLock()
	defer c.index.mu.RUnlock()
	return c.appendPairsLocked(make([]Pair[K, V], 0, len(c.index.m)))
}

// Must be called with the index lock held.
func (c *LRUCache[K, V]) appendPairsLocked(dst []Pair[K, V]) []Pair[K, V] {
	for i := range c.used {
		s := &c.slots[i]
		if s.live {
			dst = append(dst, Pair[K, V]{Key: s.key, Value: s.load()})
		}
	}
	return dst
}
