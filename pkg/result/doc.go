// Package result provides an immutable Result[T] value representing the
// outcome of a fallible computation: exactly one of a success payload or a
// failure error, never both.
//
// Highlights:
// - Success/Fail/Of: construct a Result directly or from a (value, error) pair
// - Catch/CatchWith: run a function and capture a returned error or a panic
// - FromPtr/Validate: convert a nullable pointer or gate a value by predicate
// - Map/MapErr/Filter/Flatten: transform one side, leave the other untouched
// - AndThen/OrElse/And/Or/Zip: compose Results without inspecting them
// - MapOr/MapOrElse/Match/Tee: collapse, dispatch, or observe a Result
// - Record: the tagged serialization shape {type: "ok"|"err", ...}
//
// Domain failures always travel inside a Result. Misusing the API itself,
// such as unwrapping the wrong variant, panics with *UnwrapError carrying the
// original payload; it is a defect signal, not a domain failure.
package result
