// Package batch provides combinators over ordered collections of Results.
//
// Three aggregation policies are available:
// - CombineAll: fail-fast, the first failure in input order wins
// - FirstSuccess: the first success in input order wins, otherwise every
//   failure is aggregated in order
// - SettleAll: fail-safe, every entry becomes a Settled outcome
//
// Partition splits a collection into its successes and failures, preserving
// the relative order of each kind.
package batch
