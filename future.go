package hxshop

import (
	"context"
	"sync"
)

// Future is a value that settles once, some time after it is created.
//
// Deferred queries hand their results to the renderer as futures. A future
// settles exactly once; later calls to Resolve are ignored. Readers select on
// Done and then call Value.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
}

// NewFuture returns a pending future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future already settled to v.
func Resolved[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(v)
	return f
}

// Resolve settles the future to v. It reports whether this call settled it.
func (f *Future[T]) Resolve(v T) bool {
	settled := false
	f.once.Do(func() {
		f.value = v
		close(f.done)
		settled = true
	})
	return settled
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has a value.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Value returns the settled value, or the zero value while pending.
func (f *Future[T]) Value() T {
	if !f.Settled() {
		var zero T
		return zero
	}
	return f.value
}

// Wait blocks until the future settles or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
