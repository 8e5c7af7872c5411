// Package cache provides a generic, thread-safe LRU (Least Recently Used) cache
// with a fixed capacity and O(1) average cost for every operation.
//
// The cache evicts the least recently used item when a new key arrives and the
// cache is full. The evicted item's storage is reused for the new key, so a
// full cache performs no allocations on Put.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - Fixed, pre-sized entry arena addressed by integer handles
//   - Lock-free (with respect to the structural mutex) lookups and misses
//   - Per-entry locks for value updates of resident keys
//   - Optional eviction callbacks for resource cleanup
//   - Hit, miss and eviction counters
//
// # Usage
//
//	c, err := cache.New[string, int](100)
//	if err != nil {
//		// capacity was not positive
//	}
//
//	c.Put("a", 1)
//
//	// Retrieve items (marks as recently used)
//	v, found := c.Get("a")
//
//	// Zero value on a miss, never an error
//	n := c.Value("missing") // 0
//
//	// Remove specific items
//	_, removed := c.Remove("a")
//
//	// Clear all items
//	c.Clear()
//
// Items are considered "recently used" when they are retrieved with Get or
// Value, or added or updated with Put. Peek, ContainsKey, Contains and the
// enumeration methods never change recency.
//
// # Enumeration Order
//
// All, Keys, Values and CopyTo return pairs in storage order: the order of
// the arena slots holding them. It is stable between mutations but is not
// recency order. Use Recent for keys ordered from most to least recently used.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Changes to recency order and
// membership are serialized by a single mutex owned by the cache. The key index
// has its own read/write lock, so misses, Peek, ContainsKey and enumeration do
// not wait for promotions. Each entry guards its value with its own lock; when
// several goroutines Put the same key concurrently, the value left behind is the
// one written by the last of them to acquire that lock.
//
// # Resource Cleanup
//
// Use WithEvictCallback or SetEvictCallback to release resources held by
// values. The callback runs for capacity evictions, Remove and Clear, after the
// cache has released its locks, so it may call back into the cache.
package cache
