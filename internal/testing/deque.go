package testing

// Deque is a slice backed double-ended queue used as a reference model.
type Deque[T any] struct {
	items []T
}

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) {
	d.items = append(d.items, v)
}

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) {
	d.items = append([]T{v}, d.items...)
}

// PopBack removes and returns the last value.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if len(d.items) == 0 {
		return v, false
	}
	v = d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// PopFront removes and returns the first value.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if len(d.items) == 0 {
		return v, false
	}
	v = d.items[0]
	d.items = d.items[1:]
	return v, true
}

// Values returns a copy of the stored values in order.
func (d *Deque[T]) Values() []T {
	return append([]T{}, d.items...)
}
