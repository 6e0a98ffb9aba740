package result

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNilValue is the failure payload produced by FromPtr for a nil pointer.
	ErrNilValue = errors.New("result: nil value")

	// ErrFiltered is wrapped by the default rejection error of Filter.
	ErrFiltered = errors.New("result: predicate rejected value")
)

// UnwrapError is the panic payload raised on API misuse: unwrapping the
// wrong variant or dispatching with a nil handler. It is never delivered
// through the Result channel.
type UnwrapError struct {
	msg   string
	cause error
	value any
}

func (e *UnwrapError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	if e.value != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.value)
	}
	return e.msg
}

// Unwrap returns the failure payload that was unwrapped as a value, if any.
func (e *UnwrapError) Unwrap() error {
	return e.cause
}

// Value returns the success payload that was unwrapped as an error, if any.
func (e *UnwrapError) Value() any {
	return e.value
}

// AggregateError joins an ordered sequence of failure payloads. It
// implements the stdlib Unwrap() []error protocol, so errors.Is and
// errors.As reach every member.
type AggregateError struct {
	Errs []error
}

func (e *AggregateError) Error() string {
	if len(e.Errs) == 0 {
		return "result: no successes among zero results"
	}
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, fmt.Sprintf("%v", err))
	}
	return "result: no success: " + strings.Join(msgs, "; ")
}

func (e *AggregateError) Unwrap() []error {
	return e.Errs
}

// Errors returns the ordered members of err when it aggregates several
// failures, a single-element slice for a plain error, and an empty slice
// for nil.
func Errors(err error) []error {
	if isNil(err) {
		return []error{}
	}
	if m, ok := err.(interface{ Unwrap() []error }); ok {
		return m.Unwrap()
	}
	return []error{err}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
