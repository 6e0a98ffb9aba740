package chain

import (
	"github.com/eriveltondasilva/result.js-sub000/pkg/result"
)

// Chain wraps a result.Result[T] to enable fluent same-type composition.
type Chain[T any] struct {
	res result.Result[T]
}

// From starts a chain from an existing Result.
func From[T any](r result.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue starts a chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Chain[T]{res: result.Success(v)}
}

// Result returns the underlying Result.
func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes a function that already returns a Result. It is not invoked
// when the chain is a failure.
func (c Chain[T]) Then(bind func(T) result.Result[T]) Chain[T] {
	return Chain[T]{res: result.AndThen(c.res, bind)}
}

// ThenTry composes a conventional (value, error) function.
func (c Chain[T]) ThenTry(fn func(T) (T, error)) Chain[T] {
	return c.Then(func(v T) result.Result[T] {
		return result.Of(fn(v))
	})
}

// Map transforms the successful value.
func (c Chain[T]) Map(fn func(T) T) Chain[T] {
	return Chain[T]{res: result.Map(c.res, fn)}
}

// Filter gates the successful value by pred.
func (c Chain[T]) Filter(pred func(T) bool) Chain[T] {
	return Chain[T]{res: c.res.Filter(pred)}
}

// Tee runs a side effect on success without changing the chain.
func (c Chain[T]) Tee(fn func(T)) Chain[T] {
	return Chain[T]{res: c.res.Tee(fn)}
}

// OrElse recovers from a failure with a result-returning function.
func (c Chain[T]) OrElse(recover func(error) result.Result[T]) Chain[T] {
	return Chain[T]{res: c.res.OrElse(recover)}
}

// Or substitutes an alternative Result when the chain is a failure.
func (c Chain[T]) Or(other result.Result[T]) Chain[T] {
	return Chain[T]{res: c.res.Or(other)}
}

// Unwrap leaves the chain with the success payload; it panics on a failure
// chain the way Result.Unwrap does.
func (c Chain[T]) Unwrap() T {
	return c.res.Unwrap()
}

// ValueOr leaves the chain with the success payload or def.
func (c Chain[T]) ValueOr(def T) T {
	return c.res.ValueOr(def)
}
