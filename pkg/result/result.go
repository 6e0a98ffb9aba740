package result

import (
	"fmt"
)

// Result holds either a success value of type T or a failure error.
// The zero Result is a failure with a nil error; use the constructors.
// Results are immutable value types and safe to share across goroutines.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Success wraps v in a success Result.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail wraps err in a failure Result. The discriminant does not depend on
// err being non-nil; Fail(nil) is still a failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether r holds a success value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether r holds a failure error.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the success payload, or the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure payload, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the payloads of both sides at once, in the conventional
// (value, error) shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the success payload. Unwrapping a failure is a programming
// error and panics with *UnwrapError whose cause is the failure payload.
func (r Result[T]) Unwrap() T {
	return r.Expect("result: unwrap of a failure result")
}

// UnwrapErr returns the failure payload. Unwrapping a success is a
// programming error and panics with *UnwrapError carrying the success value.
func (r Result[T]) UnwrapErr() error {
	return r.ExpectErr("result: unwrapErr of a success result")
}

// Expect is Unwrap with a caller-supplied panic message.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapError{msg: msg, cause: r.err})
	}
	return r.value
}

// ExpectErr is UnwrapErr with a caller-supplied panic message.
func (r Result[T]) ExpectErr(msg string) error {
	if r.ok {
		panic(&UnwrapError{msg: msg, value: r.value})
	}
	return r.err
}

// ValueOr returns the success payload, or def on failure.
func (r Result[T]) ValueOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// ValueOrElse returns the success payload, or the value produced by fn from
// the failure payload.
func (r Result[T]) ValueOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// String renders the Result as Success(<value>) or Failure(<error>).
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

func (r Result[T]) isResult() {}

// IsResult reports whether v is a Result of any payload type. It exists for
// interop boundaries that receive untyped values.
func IsResult(v any) bool {
	_, ok := v.(interface{ isResult() })
	return ok
}
