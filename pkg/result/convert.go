package result

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Tags of the serialized Record shape.
const (
	TypeOK  = "ok"
	TypeErr = "err"
)

// Record is the plain tagged shape a Result serializes to:
// {type: "ok", value} or {type: "err", error}. Any persistence or transport
// of a Result round-trips through it; the failure payload travels as its
// rendered message.
type Record[T any] struct {
	Type  string `json:"type"`
	Value T      `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Match dispatches on the variant. The handler for the side being
// dispatched must be non-nil; a nil handler is a programming error.
func (r Result[T]) Match(onSuccess func(T), onFailure func(error)) {
	if r.ok {
		if onSuccess == nil {
			panic(&UnwrapError{msg: "result: match of a success result with a nil success handler", value: r.value})
		}
		onSuccess(r.value)
		return
	}
	if onFailure == nil {
		panic(&UnwrapError{msg: "result: match of a failure result with a nil failure handler", cause: r.err})
	}
	onFailure(r.err)
}

// Tee runs fn on the success payload as a side effect and returns the
// receiver unchanged. A failure passes through without invoking fn.
func (r Result[T]) Tee(fn func(T)) Result[T] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TeeErr is the failure-side counterpart of Tee.
func (r Result[T]) TeeErr(fn func(error)) Result[T] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Record converts r to its tagged serialization shape.
func (r Result[T]) Record() Record[T] {
	if r.ok {
		return Record[T]{Type: TypeOK, Value: r.value}
	}
	return Record[T]{Type: TypeErr, Error: fmt.Sprintf("%v", r.err)}
}

// FromRecord rebuilds a Result from its tagged shape. An unknown tag is a
// decode error, not a failure Result.
func FromRecord[T any](rec Record[T]) (Result[T], error) {
	switch rec.Type {
	case TypeOK:
		return Success(rec.Value), nil
	case TypeErr:
		return Fail[T](errors.New(rec.Error)), nil
	default:
		return Result[T]{}, fmt.Errorf("result: unknown record type %q", rec.Type)
	}
}

// MarshalJSON implements json.Marshaler via the Record shape.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Record())
}

// UnmarshalJSON implements json.Unmarshaler via the Record shape.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var rec Record[T]
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	decoded, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}
