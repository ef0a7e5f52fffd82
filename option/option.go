// Package option provides a generic functional-options mechanism reused
// across the codec's dialect façades, the same shape as one function
// option per knob, applied in order against a target configuration.
package option

// Option configures a target of type T. The only way to produce one is
// New or NoError, so callers never implement the interface directly.
type Option[T any] interface {
	apply(T) error
}

type fn[T any] struct {
	applyFunc func(T) error
}

func (f *fn[T]) apply(target T) error { return f.applyFunc(target) }

// New creates an Option from a function that can fail.
func New[T any](f func(T) error) Option[T] {
	return &fn[T]{applyFunc: f}
}

// NoError creates an Option from a function that cannot fail.
func NoError[T any](f func(T)) Option[T] {
	return &fn[T]{applyFunc: func(target T) error {
		f(target)
		return nil
	}}
}

// Apply runs every option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
