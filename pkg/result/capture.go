package result

import (
	"errors"
	"fmt"
)

// Of adapts the conventional (value, error) pair: a non-nil error wins.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Catch runs fn and captures its outcome: a returned error or a panic
// becomes a failure, anything else a success. Recovered panic values that
// are not errors are rendered through the default coercion.
func Catch[T any](fn func() (T, error)) Result[T] {
	return CatchWith(fn, coerce)
}

// CatchWith is Catch with a caller-supplied panic coercion, which receives
// the raw recovered value and always takes priority over the default.
func CatchWith[T any](fn func() (T, error), coercion func(any) error) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Fail[T](coercion(rec))
		}
	}()
	return Of(fn())
}

// FromPtr converts a nullable pointer: nil becomes Fail(ErrNilValue).
func FromPtr[T any](p *T) Result[T] {
	if p == nil {
		return Fail[T](ErrNilValue)
	}
	return Success(*p)
}

// Validate gates a value by a predicate producing a failure message for
// invalid input.
func Validate[T any](v T, validate func(T) (valid bool, errMsg string)) Result[T] {
	if valid, errMsg := validate(v); !valid {
		return Fail[T](errors.New(errMsg))
	}
	return Success(v)
}

func coerce(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}
