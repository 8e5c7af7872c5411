package cache

import "fmt"

// checkInvariants verifies the structural invariants of c.
// It must not be called concurrently with mutations.
func (c *LRUCache[K, V]) checkInvariants() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index.mu.RLock()
	defer c.index.mu.RUnlock()

	n := len(c.index.m)
	if n > c.capacity {
		return fmt.Errorf("len %d exceeds capacity %d", n, c.capacity)
	}
	if c.list.len() != n {
		return fmt.Errorf("list len %d != index len %d", c.list.len(), n)
	}
	if (c.list.head == nilHandle) != (c.list.tail == nilHandle) {
		return fmt.Errorf("head %d and tail %d disagree on emptiness", c.list.head, c.list.tail)
	}
	if c.used-len(c.free) != n {
		return fmt.Errorf("used %d - free %d != len %d", c.used, len(c.free), n)
	}

	seen := make(map[handle]bool, n)
	prev := nilHandle
	for h := c.list.head; h != nilHandle; h = c.list.links[h].next {
		if seen[h] {
			return fmt.Errorf("cycle at handle %d", h)
		}
		seen[h] = true
		if c.list.links[h].prev != prev {
			return fmt.Errorf("handle %d: prev %d, want %d", h, c.list.links[h].prev, prev)
		}
		s := &c.slots[h]
		if !s.live {
			return fmt.Errorf("handle %d linked but not live", h)
		}
		if got, ok := c.index.m[s.key]; !ok || got != h {
			return fmt.Errorf("handle %d key %v not indexed to it", h, s.key)
		}
		prev = h
	}
	if prev != c.list.tail {
		return fmt.Errorf("walk ended at %d, tail is %d", prev, c.list.tail)
	}
	if len(seen) != n {
		return fmt.Errorf("reachable %d != len %d", len(seen), n)
	}
	for _, h := range c.index.m {
		if !seen[h] {
			return fmt.Errorf("indexed handle %d not in list", h)
		}
	}
	return nil
}
