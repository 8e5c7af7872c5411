package cache

import "sync"

// index maps keys to arena handles.
//
// Lookups take the read lock only, so readers never wait on the structural
// mutex. Membership changes take the write lock and are always made while the
// structural mutex is held as well.
type index[K comparable] struct {
	mu sync.RWMutex
	m  map[K]handle
}

func newIndex[K comparable](capacity int) *index[K] {
	return &index[K]{m: make(map[K]handle, capacity)}
}

func (ix *index[K]) lookup(key K) (handle, bool) {
	ix.mu.RLock()
	h, ok := ix.m[key]
	ix.mu.RUnlock()
	return h, ok
}

func (ix *index[K]) contains(key K) bool {
	_, ok := ix.lookup(key)
	return ok
}

func (ix *index[K]) len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.m)
}

// Must be called with the write lock held.
func (ix *index[K]) insertLocked(key K, h handle) {
	ix.m[key] = h
}

// Must be called with the write lock held.
func (ix *index[K]) removeLocked(key K) (handle, bool) {
	h, ok := ix.m[key]
	if ok {
		delete(ix.m, key)
	}
	return h, ok
}

// Must be called with the write lock held.
func (ix *index[K]) resetLocked() {
	clear(ix.m)
}
