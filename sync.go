package rclist

import (
	"github.com/puzpuzpuz/xsync/v2"
)

// SyncList is a List that is safe for concurrent use.
//
// A SyncList must be created with NewSync or NewSyncWith.
// Drop callbacks run while the list is locked and must not use the list.
type SyncList[T any] struct {
	mu   *xsync.RBMutex
	list *List[T]
}

// NewSync creates an empty concurrent list.
func NewSync[T any](opts ...Option[T]) *SyncList[T] {
	return &SyncList[T]{
		mu:   xsync.NewRBMutex(),
		list: New(opts...),
	}
}

// NewSyncWith creates a concurrent list with a single value.
func NewSyncWith[T any](value T, opts ...Option[T]) *SyncList[T] {
	return &SyncList[T]{
		mu:   xsync.NewRBMutex(),
		list: NewWith(value, opts...),
	}
}

// Len returns the number of values in the list.
func (l *SyncList[T]) Len() int {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	return l.list.Len()
}

// PushBack inserts a value at the back of the list.
func (l *SyncList[T]) PushBack(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.list.PushBack(value)
}

// PushFront inserts a value at the front of the list.
func (l *SyncList[T]) PushFront(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.list.PushFront(value)
}

// PopBack removes the back value and returns it.
func (l *SyncList[T]) PopBack() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.list.PopBack()
}

// PopFront removes the front value and returns it.
func (l *SyncList[T]) PopFront() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.list.PopFront()
}

// Front returns the front value without removing it.
func (l *SyncList[T]) Front() (T, bool) {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	return l.list.Front()
}

// Back returns the back value without removing it.
func (l *SyncList[T]) Back() (T, bool) {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	return l.list.Back()
}

// UpdateFront replaces the front value with the result of f.
// f must not use the list.
func (l *SyncList[T]) UpdateFront(f func(T) T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.list.UpdateFront(f)
}

// UpdateBack replaces the back value with the result of f.
// f must not use the list.
func (l *SyncList[T]) UpdateBack(f func(T) T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.list.UpdateBack(f)
}

// Values returns a snapshot of the values from front to back.
func (l *SyncList[T]) Values() []T {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	return l.list.Values()
}

// String renders the list as "List: [v1, v2, ...]".
func (l *SyncList[T]) String() string {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	return l.list.String()
}

// Close releases every node from front to back.
func (l *SyncList[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.list.Close()
}
