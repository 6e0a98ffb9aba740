// Package future provides the asynchronous mirror of the result package: a
// Future[T] is a single-settlement promise of a result.Result[T] that can be
// passed around and read by any number of goroutines.
//
// Every synchronous combinator has a counterpart here with the same logical
// semantics; the only difference is that payload production may require
// awaiting a future. Success-side operations never run on a failure and
// failure-side operations never run on a success, so no speculative branch
// execution happens.
//
// The package carries no cancellation or timeout machinery of its own. All
// blocking calls take a context; when the caller's context ends first, Get
// and the collection combinators report the context error beside the result.
package future
