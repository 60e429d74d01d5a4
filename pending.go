package gogs

import (
	"context"
	"errors"
)

// ErrNilContinuation rejects the result of [Then] when its continuation
// returns nil instead of a Pending.
var ErrNilContinuation = errors.New("gogs: Then continuation returned nil")

// Pending is the result of an asynchronous API call. It settles exactly
// once, with either a value or an error.
type Pending[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func start[T any](fn func() (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}

	go func() {
		defer close(p.done)
		p.value, p.err = fn()
	}()

	return p
}

// Resolved returns a Pending that has already settled with v.
func Resolved[T any](v T) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{}), value: v}
	close(p.done)
	return p
}

// Rejected returns a Pending that has already settled with err.
func Rejected[T any](err error) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{}), err: err}
	close(p.done)
	return p
}

// Done is closed once the result has settled.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the result settles or ctx ends. Giving up on a result
// does not cancel the request behind it.
func (p *Pending[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result waits for the result to settle without a deadline.
func (p *Pending[T]) Result() (T, error) {
	<-p.done
	return p.value, p.err
}

// Then chains fn after p. fn runs only when p resolves; a rejection of p is
// passed through to the returned Pending untouched. fn must return a
// Pending; use [Resolved] to finish early.
func Then[T, U any](p *Pending[T], fn func(T) *Pending[U]) *Pending[U] {
	return start(func() (U, error) {
		v, err := p.Result()
		if err != nil {
			var zero U
			return zero, err
		}

		next := fn(v)
		if next == nil {
			var zero U
			return zero, ErrNilContinuation
		}

		return next.Result()
	})
}

// Map transforms the resolved value of p with fn.
func Map[T, U any](p *Pending[T], fn func(T) (U, error)) *Pending[U] {
	return start(func() (U, error) {
		v, err := p.Result()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}
