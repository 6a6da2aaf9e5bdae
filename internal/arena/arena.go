/*
Package arena implements reference counted node storage for doubly linked lists.

Nodes are addressed by generation checked handles. A node is freed exactly when
its last reference is dropped, at which point the release callback observes its value.
*/
package arena

// Handle is a reference to a node slot.
//
// The zero value is the absent link.
type Handle struct {
	index uint32
	gen   uint32
}

// IsNil reports whether h is the absent link.
func (h Handle) IsNil() bool {
	return h.index == 0
}

type slot[T any] struct {
	value      T
	next, prev Handle
	refs       int
	gen        uint32
	live       bool
}

// Arena stores list nodes.
//
// The zero value is a ready to use empty arena.
type Arena[T any] struct {
	// OnRelease, if not nil, is called with the value of each node
	// when its last reference is dropped.
	OnRelease func(T)
	slots     []slot[T]
	free      []uint32
	live      int
}

// New creates an empty arena with a release callback.
func New[T any](onRelease func(T)) *Arena[T] {
	return &Arena[T]{
		OnRelease: onRelease,
	}
}

// Live returns the number of nodes that have not been freed.
func (a *Arena[T]) Live() int {
	return a.live
}

// Alloc creates a node with both links absent.
// The caller owns the only reference to it.
func (a *Arena[T]) Alloc(v T) Handle {
	var idx uint32

	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots))
	}

	s := &a.slots[idx-1]
	s.value = v
	s.refs = 1
	s.gen++
	s.live = true
	a.live++

	return Handle{index: idx, gen: s.gen}
}

// Clone takes another reference to the node.
func (a *Arena[T]) Clone(h Handle) Handle {
	a.slot(h).refs++
	return h
}

// Refs returns the number of references to the node.
func (a *Arena[T]) Refs(h Handle) int {
	return a.slot(h).refs
}

// Drop releases a reference. Dropping the absent link is a no-op.
func (a *Arena[T]) Drop(h Handle) {
	pending := []Handle{h}

	for len(pending) > 0 {
		h := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if h.IsNil() {
			continue
		}

		s := a.slot(h)
		if s.refs--; s.refs > 0 {
			continue
		}

		// A freed node releases whatever links it still holds.
		pending = append(pending, s.next, s.prev)
		a.release(h.index)
	}
}

// Unwrap consumes the last reference to a node and returns its value.
// It panics if any other reference is outstanding.
func (a *Arena[T]) Unwrap(h Handle) T {
	s := a.slot(h)
	if s.refs != 1 {
		panic("arena: unwrap of a shared node")
	}

	v := s.value
	a.Drop(h)

	return v
}

// Value returns the value stored in the node.
func (a *Arena[T]) Value(h Handle) T {
	return a.slot(h).value
}

// SetValue replaces the value stored in the node.
func (a *Arena[T]) SetValue(h Handle, v T) {
	a.slot(h).value = v
}

// Next returns the successor link without taking a reference.
func (a *Arena[T]) Next(h Handle) Handle {
	return a.slot(h).next
}

// Prev returns the predecessor link without taking a reference.
func (a *Arena[T]) Prev(h Handle) Handle {
	return a.slot(h).prev
}

// SetNext stores the successor link. The arena takes ownership of the
// reference n and drops the previous successor link.
func (a *Arena[T]) SetNext(h, n Handle) {
	s := a.slot(h)
	old := s.next
	s.next = n
	a.Drop(old)
}

// SetPrev stores the predecessor link. The arena takes ownership of the
// reference p and drops the previous predecessor link.
func (a *Arena[T]) SetPrev(h, p Handle) {
	s := a.slot(h)
	old := s.prev
	s.prev = p
	a.Drop(old)
}

// TakeNext moves the successor link out of the node and returns it.
// The caller owns the returned reference.
func (a *Arena[T]) TakeNext(h Handle) Handle {
	s := a.slot(h)
	n := s.next
	s.next = Handle{}
	return n
}

// TakePrev moves the predecessor link out of the node and returns it.
// The caller owns the returned reference.
func (a *Arena[T]) TakePrev(h Handle) Handle {
	s := a.slot(h)
	p := s.prev
	s.prev = Handle{}
	return p
}

func (a *Arena[T]) slot(h Handle) *slot[T] {
	if h.IsNil() || int(h.index) > len(a.slots) {
		panic("arena: stale handle")
	}

	s := &a.slots[h.index-1]
	if !s.live || s.gen != h.gen {
		panic("arena: stale handle")
	}

	return s
}

func (a *Arena[T]) release(idx uint32) {
	s := &a.slots[idx-1]

	v := s.value

	var zero T
	s.value = zero
	s.next = Handle{}
	s.prev = Handle{}
	s.live = false

	a.free = append(a.free, idx)
	a.live--

	if a.OnRelease != nil {
		a.OnRelease(v)
	}
}
