package cache

// handle addresses a slot in the cache arena.
type handle int32

// nilHandle marks the absence of a neighbor, or an empty list end.
const nilHandle handle = -1

type link struct {
	prev handle
	next handle
}

// recencyList orders live slots from most recently used (head) to least
// recently used (tail). Links are handles into the arena rather than pointers,
// so the list never owns an entry.
//
// Must be accessed with the cache's structural mutex held.
type recencyList struct {
	head  handle
	tail  handle
	links []link
	n     int
}

func newRecencyList(capacity int) recencyList {
	l := recencyList{
		head:  nilHandle,
		tail:  nilHandle,
		links: make([]link, capacity),
	}
	for i := range l.links {
		l.links[i] = link{prev: nilHandle, next: nilHandle}
	}
	return l
}

// len returns the number of linked slots.
func (l *recencyList) len() int {
	return l.n
}

// detach unlinks h from its neighbors and repairs head/tail.
func (l *recencyList) detach(h handle) {
	lk := &l.links[h]
	if lk.prev != nilHandle {
		l.links[lk.prev].next = lk.next
	} else {
		l.head = lk.next
	}
	if lk.next != nilHandle {
		l.links[lk.next].prev = lk.prev
	} else {
		l.tail = lk.prev
	}
	lk.prev = nilHandle
	lk.next = nilHandle
	l.n--
}

// pushFront makes h the new head. On an empty list h also becomes the tail.
func (l *recencyList) pushFront(h handle) {
	lk := &l.links[h]
	lk.prev = nilHandle
	lk.next = l.head
	if l.head != nilHandle {
		l.links[l.head].prev = h
	}
	l.head = h
	if l.tail == nilHandle {
		l.tail = h
	}
	l.n++
}

// promote moves h to the head. No-op when h is already the head.
func (l *recencyList) promote(h handle) {
	if l.head == h {
		return
	}
	l.detach(h)
	l.pushFront(h)
}

// evictTail detaches and returns the current tail.
// Returns nilHandle if the list is empty.
func (l *recencyList) evictTail() handle {
	h := l.tail
	if h == nilHandle {
		return nilHandle
	}
	l.detach(h)
	return h
}

// reset empties the list without touching the arena.
func (l *recencyList) reset() {
	for i := range l.links {
		l.links[i] = link{prev: nilHandle, next: nilHandle}
	}
	l.head = nilHandle
	l.tail = nilHandle
	l.n = 0
}

// walk calls fn for each handle from head to tail until fn returns false.
func (l *recencyList) walk(fn func(h handle) bool) {
	for h := l.head; h != nilHandle; h = l.links[h].next {
		if !fn(h) {
			return
		}
	}
}
