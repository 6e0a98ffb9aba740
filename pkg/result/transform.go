package result

import (
	"fmt"
	"unicode/utf8"
)

// Map applies mapper to the success payload and wraps the outcome. A failure
// passes through untouched and mapper is not invoked.
//
// Map never flattens: a mapper that itself produces a Result yields a nested
// Result. Use AndThen for result-returning steps.
func Map[In, Out any](r Result[In], mapper func(In) Out) Result[Out] {
	if r.IsFailure() {
		return Fail[Out](r.Err())
	}
	return Success(mapper(r.Value()))
}

// MapErr applies mapper to the failure payload. A success passes through
// untouched.
func (r Result[T]) MapErr(mapper func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Fail[T](mapper(r.err))
}

// MapOr collapses r into a plain value: mapper over the success payload, or
// def on failure.
func MapOr[In, Out any](r Result[In], def Out, mapper func(In) Out) Out {
	if r.IsFailure() {
		return def
	}
	return mapper(r.Value())
}

// MapOrElse collapses r into a plain value using one of two mappers,
// depending on the variant.
func MapOrElse[In, Out any](r Result[In], okMapper func(In) Out, errMapper func(error) Out) Out {
	if r.IsSuccess() {
		return okMapper(r.Value())
	}
	return errMapper(r.Err())
}

// Filter keeps a success whose payload passes pred and turns the rest into a
// failure wrapping ErrFiltered with a bounded rendering of the rejected
// value. A failure passes through regardless of pred.
func (r Result[T]) Filter(pred func(T) bool) Result[T] {
	return r.FilterWith(pred, func(v T) error {
		return fmt.Errorf("%w: %s", ErrFiltered, boundedRender(v))
	})
}

// FilterWith is Filter with a caller-supplied rejection error.
func (r Result[T]) FilterWith(pred func(T) bool, onReject func(T) error) Result[T] {
	if !r.ok || pred(r.value) {
		return r
	}
	return Fail[T](onReject(r.value))
}

// Flatten collapses one level of nesting. The receiver type makes flattening
// a non-nested Result a compile error.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.IsFailure() {
		return Fail[T](r.Err())
	}
	return r.Value()
}

const renderLimit = 64

func boundedRender(v any) string {
	s := fmt.Sprintf("%v", v)
	if utf8.RuneCountInString(s) <= renderLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:renderLimit]) + "..."
}
