package result

// Pair carries the two success payloads combined by Zip.
type Pair[T, U any] struct {
	First  T
	Second U
}

// AndThen binds a result-returning step to the success side. When r is a
// failure the step is not invoked and the failure propagates.
func AndThen[In, Out any](r Result[In], bind func(In) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return Fail[Out](r.Err())
	}
	return bind(r.Value())
}

// OrElse binds a recovery step to the failure side. When r is a success the
// step is not invoked.
func (r Result[T]) OrElse(recover func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return recover(r.err)
}

// And returns other when r is a success, discarding r's value; otherwise it
// returns r's failure.
func And[In, Out any](r Result[In], other Result[Out]) Result[Out] {
	if r.IsFailure() {
		return Fail[Out](r.Err())
	}
	return other
}

// Or returns r when it is a success, otherwise other.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return other
}

// Zip combines two independently computed Results into a success Pair only
// when both are successes. On a double failure, a's failure wins.
func Zip[T, U any](a Result[T], b Result[U]) Result[Pair[T, U]] {
	if a.IsFailure() {
		return Fail[Pair[T, U]](a.Err())
	}
	if b.IsFailure() {
		return Fail[Pair[T, U]](b.Err())
	}
	return Success(Pair[T, U]{First: a.Value(), Second: b.Value()})
}
