/*
Package testing implements shared test helpers.
*/
package testing

import "slices"

// Recorder records drop notifications in the order they fire.
type Recorder[T any] struct {
	dropped []T
}

// Record appends a dropped value. It is meant to be passed as a drop callback.
func (r *Recorder[T]) Record(v T) {
	r.dropped = append(r.dropped, v)
}

// Dropped returns the values dropped so far.
func (r *Recorder[T]) Dropped() []T {
	return slices.Clone(r.dropped)
}

// Len returns the number of recorded notifications.
func (r *Recorder[T]) Len() int {
	return len(r.dropped)
}

// Reset forgets all recorded notifications.
func (r *Recorder[T]) Reset() {
	r.dropped = nil
}
