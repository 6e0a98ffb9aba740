package batch

import (
	"github.com/eriveltondasilva/result.js-sub000/pkg/result"
)

// Status discriminates a Settled outcome.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Settled describes how a single Result came out. It is always produced,
// never itself fallible; SettleAll maps every input entry to one.
type Settled[T any] struct {
	Status Status `json:"status"`
	Value  T      `json:"value,omitempty"`
	Reason error  `json:"reason,omitempty"`
}

// Settle converts a single Result to its Settled outcome.
func Settle[T any](r result.Result[T]) Settled[T] {
	if r.IsSuccess() {
		return Settled[T]{Status: StatusSuccess, Value: r.Value()}
	}
	return Settled[T]{Status: StatusFailure, Reason: r.Err()}
}

// CombineAll scans rs in order and returns the first failure found; when all
// entries succeed it wraps their payloads in input order. Empty input is a
// success holding an empty slice.
func CombineAll[T any](rs []result.Result[T]) result.Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsFailure() {
			return result.Fail[[]T](r.Err())
		}
		values = append(values, r.Value())
	}
	return result.Success(values)
}

// FirstSuccess scans rs in order and returns the first success found; when
// none exists the failure carries a *result.AggregateError listing every
// failure payload in input order. Empty input yields the empty aggregate.
func FirstSuccess[T any](rs []result.Result[T]) result.Result[T] {
	errs := make([]error, 0, len(rs))
	for _, r := range rs {
		if r.IsSuccess() {
			return r
		}
		errs = append(errs, r.Err())
	}
	return result.Fail[T](&result.AggregateError{Errs: errs})
}

// Partition splits rs into its success payloads and failure payloads in a
// single pass. Both slices preserve the relative input order of their kind,
// and their lengths always sum to len(rs).
func Partition[T any](rs []result.Result[T]) ([]T, []error) {
	values := make([]T, 0, len(rs))
	errs := make([]error, 0, len(rs))
	for _, r := range rs {
		if r.IsSuccess() {
			values = append(values, r.Value())
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

// SettleAll maps every entry to its Settled outcome and succeeds with the
// full ordered slice, no matter how many entries are failures.
func SettleAll[T any](rs []result.Result[T]) result.Result[[]Settled[T]] {
	outcomes := make([]Settled[T], 0, len(rs))
	for _, r := range rs {
		outcomes = append(outcomes, Settle(r))
	}
	return result.Success(outcomes)
}
