package future

import (
	"context"

	"github.com/eriveltondasilva/result.js-sub000/pkg/result"
	"github.com/eriveltondasilva/result.js-sub000/pkg/result/batch"
)

// ResolveAll waits for every future and returns their settled Results at the
// matching input indexes. The members are already running concurrently; this
// only awaits them. If ctx ends before all futures settle, the context error
// is returned instead.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]result.Result[T], error) {
	rs := make([]result.Result[T], 0, len(fs))

	for _, f := range fs {
		r, err := f.Get(ctx)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}

	return rs, nil
}

// CombineAll resolves all futures concurrently and applies the fail-fast
// aggregation of batch.CombineAll over the settled Results in input order.
func CombineAll[T any](ctx context.Context, fs []*Future[T]) (result.Result[[]T], error) {
	rs, err := ResolveAll(ctx, fs)
	if err != nil {
		return result.Result[[]T]{}, err
	}
	return batch.CombineAll(rs), nil
}

// FirstSuccess resolves all futures concurrently and applies the
// first-success aggregation of batch.FirstSuccess in input order.
func FirstSuccess[T any](ctx context.Context, fs []*Future[T]) (result.Result[T], error) {
	rs, err := ResolveAll(ctx, fs)
	if err != nil {
		return result.Result[T]{}, err
	}
	return batch.FirstSuccess(rs), nil
}

// Partition resolves all futures concurrently and splits the settled Results
// into success and failure payloads, both in input order.
func Partition[T any](ctx context.Context, fs []*Future[T]) ([]T, []error, error) {
	rs, err := ResolveAll(ctx, fs)
	if err != nil {
		return nil, nil, err
	}
	values, errs := batch.Partition(rs)
	return values, errs, nil
}

// SettleAll resolves all futures concurrently and maps every settled Result
// to its Settled outcome; it never yields a failure Result.
func SettleAll[T any](ctx context.Context, fs []*Future[T]) (result.Result[[]batch.Settled[T]], error) {
	rs, err := ResolveAll(ctx, fs)
	if err != nil {
		return result.Result[[]batch.Settled[T]]{}, err
	}
	return batch.SettleAll(rs), nil
}
