// Package options provides the generic plumbing behind the functional
// options exposed by the public packages. Options either succeed silently or
// report a configuration error, which constructors surface immediately.
package options

// Option configures a target of type T and may reject invalid settings.
type Option[T any] struct {
	apply func(T) error
}

// New wraps a configuration function that can fail.
func New[T any](fn func(T) error) Option[T] {
	return Option[T]{apply: fn}
}

// NoError wraps a configuration function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return Option[T]{apply: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt.apply == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
