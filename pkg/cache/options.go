package cache

// Option configures an LRUCache at construction time.
type Option[K comparable, V any] func(*LRUCache[K, V])

// WithEvictCallback registers fn to be called for every entry that leaves the
// cache through eviction, Remove or Clear.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		c.onEvict = fn
	}
}

// WithValueEqual overrides the equality used by Contains.
// The default compares values with reflect.DeepEqual.
func WithValueEqual[K comparable, V any](fn func(a, b V) bool) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		if fn != nil {
			c.equal = fn
		}
	}
}
