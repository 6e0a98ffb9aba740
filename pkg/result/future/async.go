package future

import (
	"context"

	"github.com/eriveltondasilva/result.js-sub000/pkg/result"
)

// then derives a new future by applying step to the settled result of f.
// When ctx ends before f settles, the derived future fails with the context
// error; a derived computation has no other channel to report on.
func then[In, Out any](ctx context.Context, f *Future[In], step func(result.Result[In]) result.Result[Out]) *Future[Out] {
	out := New[Out]()

	go func() {
		r, err := f.Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Settle(step(r))
	}()

	return out
}

// Map is the asynchronous mirror of result.Map: mapper runs only once f
// settles as a success.
func Map[In, Out any](ctx context.Context, f *Future[In], mapper func(ctx context.Context, v In) Out) *Future[Out] {
	return then(ctx, f, func(r result.Result[In]) result.Result[Out] {
		return result.Map(r, func(v In) Out { return mapper(ctx, v) })
	})
}

// MapErr is the asynchronous mirror of Result.MapErr.
func MapErr[T any](ctx context.Context, f *Future[T], mapper func(ctx context.Context, err error) error) *Future[T] {
	return then(ctx, f, func(r result.Result[T]) result.Result[T] {
		return r.MapErr(func(err error) error { return mapper(ctx, err) })
	})
}

// AndThen is the asynchronous mirror of result.AndThen: bind runs only when
// f settles as a success.
func AndThen[In, Out any](ctx context.Context, f *Future[In], bind func(ctx context.Context, v In) result.Result[Out]) *Future[Out] {
	return then(ctx, f, func(r result.Result[In]) result.Result[Out] {
		return result.AndThen(r, func(v In) result.Result[Out] { return bind(ctx, v) })
	})
}

// OrElse is the asynchronous mirror of Result.OrElse: recover runs only when
// f settles as a failure.
func OrElse[T any](ctx context.Context, f *Future[T], recover func(ctx context.Context, err error) result.Result[T]) *Future[T] {
	return then(ctx, f, func(r result.Result[T]) result.Result[T] {
		return r.OrElse(func(err error) result.Result[T] { return recover(ctx, err) })
	})
}

// Filter is the asynchronous mirror of Result.Filter.
func Filter[T any](ctx context.Context, f *Future[T], pred func(ctx context.Context, v T) bool) *Future[T] {
	return then(ctx, f, func(r result.Result[T]) result.Result[T] {
		return r.Filter(func(v T) bool { return pred(ctx, v) })
	})
}

// Tee is the asynchronous mirror of Result.Tee: fn observes the success
// payload without changing the settlement.
func Tee[T any](ctx context.Context, f *Future[T], fn func(ctx context.Context, v T)) *Future[T] {
	return then(ctx, f, func(r result.Result[T]) result.Result[T] {
		return r.Tee(func(v T) { fn(ctx, v) })
	})
}

// TeeErr is the failure-side counterpart of Tee.
func TeeErr[T any](ctx context.Context, f *Future[T], fn func(ctx context.Context, err error)) *Future[T] {
	return then(ctx, f, func(r result.Result[T]) result.Result[T] {
		return r.TeeErr(func(err error) { fn(ctx, err) })
	})
}

// Zip awaits two independently running futures and combines them with
// result.Zip: a's failure wins over b's on a double failure, regardless of
// which settled first.
func Zip[T, U any](ctx context.Context, a *Future[T], b *Future[U]) *Future[result.Pair[T, U]] {
	out := New[result.Pair[T, U]]()

	go func() {
		ra, err := a.Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		rb, err := b.Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Settle(result.Zip(ra, rb))
	}()

	return out
}
