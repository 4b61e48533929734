package pq

import "errors"

// ErrBadCapacity indicates that WithCapacity was given a negative size.
var ErrBadCapacity = errors.New("pq: capacity must be non-negative")

// Entry pairs a priority with an arbitrary payload.
// Lower Priority means higher precedence. Content is never compared.
type Entry[T any] struct {
	Priority int // ordering key
	Content  T   // opaque payload carried alongside
}

// Options configures a Queue.
//
// Capacity – initial capacity of the backing slice (>= 0).
// TieBreak – optional secondary order for entries of equal priority.
//
//	nil keeps priority-only ordering.
type Options[T any] struct {
	Capacity int
	TieBreak func(a, b T) bool
}

// Option is a functional option for New.
type Option[T any] func(*Options[T])

// WithCapacity pre-sizes the backing slice so that the first n Enqueue calls
// do not reallocate. Panics if n is negative.
func WithCapacity[T any](n int) Option[T] {
	return func(o *Options[T]) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithTieBreak sets a strict "less" relation consulted only when two entries
// have equal Priority. It must be a strict weak order on T.
func WithTieBreak[T any](less func(a, b T) bool) Option[T] {
	return func(o *Options[T]) {
		o.TieBreak = less
	}
}

// DefaultOptions returns an empty-capacity, priority-only configuration.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Capacity: 0,
		TieBreak: nil,
	}
}
