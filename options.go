package rclist

import (
	"fmt"
	"io"
)

// Option is a list configuration option.
type Option[T any] interface {
	apply(*listOptions[T])
}

type listOptions[T any] struct {
	callbacks []func(T)
}

func newDefaultListOptions[T any]() listOptions[T] {
	return listOptions[T]{}
}

// onDrop combines the configured drop callbacks or returns nil if there are none.
func (o listOptions[T]) onDrop() func(T) {
	switch len(o.callbacks) {
	case 0:
		return nil
	case 1:
		return o.callbacks[0]
	}

	callbacks := o.callbacks

	return func(v T) {
		for _, f := range callbacks {
			f(v)
		}
	}
}

// WithOnDrop option configures a callback that is called with the value of each
// node exactly when the node is destroyed.
//
// For a SyncList the callback runs while the list is locked and must not use the list.
func WithOnDrop[T any](f func(T)) Option[T] {
	return funcOption[T](func(opts *listOptions[T]) {
		if f != nil {
			opts.callbacks = append(opts.callbacks, f)
		}
	})
}

// WithDropWriter option configures the list to write a "Drop Node : <value>" line
// to w for each destroyed node, with the value enclosed in angle brackets.
func WithDropWriter[T any](w io.Writer) Option[T] {
	return funcOption[T](func(opts *listOptions[T]) {
		opts.callbacks = append(opts.callbacks, func(v T) {
			fmt.Fprintf(w, "Drop Node : <%v>\n", v)
		})
	})
}

type funcOption[T any] func(*listOptions[T])

func (o funcOption[T]) apply(opts *listOptions[T]) {
	o(opts)
}
