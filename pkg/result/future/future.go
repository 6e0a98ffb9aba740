package future

import (
	"context"
	"sync/atomic"

	"github.com/eriveltondasilva/result.js-sub000/pkg/result"
)

// Future represents an asynchronous computation that eventually settles with
// a result.Result[T]. A future settles exactly once: the first settlement
// wins and all later ones are silently ignored. Unlike a channel, a settled
// future can be read any number of times by any number of goroutines.
type Future[T any] struct {
	settled uint32
	done    chan struct{}

	res result.Result[T]
}

// New creates an unsettled Future that must be settled manually via Settle,
// Complete or Fail.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// Go launches fn on its own goroutine and returns a Future that settles with
// its outcome.
func Go[T any](ctx context.Context, fn func(ctx context.Context) result.Result[T]) *Future[T] {
	f := New[T]()

	go func() {
		f.Settle(fn(ctx))
	}()

	return f
}

// FromResult returns an already-settled Future. This is the conversion of a
// synchronous Result into the asynchronous channel: a success resolves with
// its payload, a failure carries its raw error.
func FromResult[T any](r result.Result[T]) *Future[T] {
	f := New[T]()
	f.Settle(r)
	return f
}

// Capture launches fn and settles with its outcome; a returned error or a
// panic is converted into a failure with the default coercion of
// result.Catch.
func Capture[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	return Go(ctx, func(ctx context.Context) result.Result[T] {
		return result.Catch(func() (T, error) { return fn(ctx) })
	})
}

// CaptureWith is Capture with a caller-supplied panic coercion, which
// receives the raw recovered value and always takes priority over the
// default.
func CaptureWith[T any](ctx context.Context, fn func(ctx context.Context) (T, error), coercion func(any) error) *Future[T] {
	return Go(ctx, func(ctx context.Context) result.Result[T] {
		return result.CatchWith(func() (T, error) { return fn(ctx) }, coercion)
	})
}

// Settle settles the future with r. Ignored if the future is already settled.
func (f *Future[T]) Settle(r result.Result[T]) {
	if atomic.CompareAndSwapUint32(&f.settled, 0, 1) {
		f.res = r
		close(f.done)
	}
}

// Complete settles the future with a success payload.
func (f *Future[T]) Complete(v T) {
	f.Settle(result.Success(v))
}

// Fail settles the future with a failure payload.
func (f *Future[T]) Fail(err error) {
	f.Settle(result.Fail[T](err))
}

// Get returns the settled Result, blocking until settlement or until ctx is
// done. A context error is reported beside the result, never inside it.
func (f *Future[T]) Get(ctx context.Context) (result.Result[T], error) {
	select {
	case <-f.done:
		return f.res, nil
	case <-ctx.Done():
		return result.Result[T]{}, ctx.Err()
	}
}
