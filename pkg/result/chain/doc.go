// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of same-type result.Result[T] values.
//
// It keeps the API surface small:
// - From/FromValue: create a Chain from a Result or a plain value
// - Then/ThenTry: compose result-returning or (value, error) functions
// - Map/Filter: transform or gate the successful value
// - Tee: trigger side effects on success only
// - OrElse/Or: recover on the failure side
// - Result/Unwrap/ValueOr: leave the chain
//
// Type-changing composition stays with the free functions of the result
// package; Chain is readability sugar for single-type pipelines.
package chain
