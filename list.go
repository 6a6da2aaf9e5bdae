/*
Package rclist implements a doubly linked list with deterministic node destruction.

Nodes are reference counted. A node is referenced by its neighbors' links and by
the list's head and tail, and it is destroyed exactly when the last of those
references is released. Destruction can be observed with WithOnDrop or WithDropWriter.
*/
package rclist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mgnsk/rclist/internal/arena"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list without drop notifications.
type List[T any] struct {
	nodes arena.Arena[T]
	head  arena.Handle
	tail  arena.Handle
	len   int
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	o := newDefaultListOptions[T]()
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[T]{}
	l.nodes.OnRelease = o.onDrop()

	return l
}

// NewWith creates a list with a single value.
func NewWith[T any](value T, opts ...Option[T]) *List[T] {
	l := New(opts...)

	n := l.nodes.Alloc(value)
	l.head = l.nodes.Clone(n)
	l.tail = n
	l.len = 1

	return l
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.len
}

// PushBack inserts a value at the back of the list.
func (l *List[T]) PushBack(value T) {
	n := l.nodes.Alloc(value)

	old := l.tail
	if old.IsNil() {
		l.head = l.nodes.Clone(n)
		l.tail = n
	} else {
		l.nodes.SetNext(old, l.nodes.Clone(n))
		// The old tail reference moves into the new node's prev link.
		l.nodes.SetPrev(n, old)
		l.tail = n
	}

	l.len++
}

// PushFront inserts a value at the front of the list.
func (l *List[T]) PushFront(value T) {
	n := l.nodes.Alloc(value)

	old := l.head
	if old.IsNil() {
		l.tail = l.nodes.Clone(n)
		l.head = n
	} else {
		l.nodes.SetPrev(old, l.nodes.Clone(n))
		l.nodes.SetNext(n, old)
		l.head = n
	}

	l.len++
}

// PopBack removes the back value and returns it.
// It returns false if the list is empty.
func (l *List[T]) PopBack() (value T, ok bool) {
	old := l.tail
	if old.IsNil() {
		return value, false
	}

	l.tail = arena.Handle{}

	if prev := l.nodes.TakePrev(old); !prev.IsNil() {
		l.nodes.Drop(l.nodes.TakeNext(prev))
		l.tail = prev
	} else {
		l.nodes.Drop(l.head)
		l.head = arena.Handle{}
	}

	l.len--

	return l.nodes.Unwrap(old), true
}

// PopFront removes the front value and returns it.
// It returns false if the list is empty.
func (l *List[T]) PopFront() (value T, ok bool) {
	old := l.head
	if old.IsNil() {
		return value, false
	}

	l.head = arena.Handle{}

	if next := l.nodes.TakeNext(old); !next.IsNil() {
		l.nodes.Drop(l.nodes.TakePrev(next))
		l.head = next
	} else {
		l.nodes.Drop(l.tail)
		l.tail = arena.Handle{}
	}

	l.len--

	return l.nodes.Unwrap(old), true
}

// Front returns the front value without removing it.
func (l *List[T]) Front() (value T, ok bool) {
	if l.head.IsNil() {
		return value, false
	}
	return l.nodes.Value(l.head), true
}

// Back returns the back value without removing it.
func (l *List[T]) Back() (value T, ok bool) {
	if l.tail.IsNil() {
		return value, false
	}
	return l.nodes.Value(l.tail), true
}

// UpdateFront replaces the front value with the result of f.
// It returns false if the list is empty.
func (l *List[T]) UpdateFront(f func(T) T) bool {
	if l.head.IsNil() {
		return false
	}
	l.nodes.SetValue(l.head, f(l.nodes.Value(l.head)))
	return true
}

// UpdateBack replaces the back value with the result of f.
// It returns false if the list is empty.
func (l *List[T]) UpdateBack(f func(T) T) bool {
	if l.tail.IsNil() {
		return false
	}
	l.nodes.SetValue(l.tail, f(l.nodes.Value(l.tail)))
	return true
}

// All returns an iterator over the values from front to back.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; !n.IsNil(); n = l.nodes.Next(n) {
			if !yield(l.nodes.Value(n)) {
				return
			}
		}
	}
}

// Values returns a snapshot of the values from front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.len)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String renders the list as "List: [v1, v2, ...]".
func (l *List[T]) String() string {
	var b strings.Builder

	b.WriteString("List: [")
	first := true
	for v := range l.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")

	return b.String()
}

// Close releases every node from front to back. The list is empty
// and ready to use afterwards.
func (l *List[T]) Close() error {
	for {
		if _, ok := l.PopFront(); !ok {
			break
		}
	}

	if l.nodes.Live() != 0 {
		panic("rclist: leaked nodes")
	}

	return nil
}
