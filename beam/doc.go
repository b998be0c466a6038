// Package beam provides a generic bounded-width, bounded-depth best-first
// sequence search.
//
// What:
//
//   - Search expands a frontier of candidate sequences from an initial
//     state through a caller-supplied successor function, keeps the Width
//     lowest-cumulative-cost sequences per depth, and stops early once
//     every retained state satisfies the caller's terminal predicate.
//
// Why:
//
//   - Construction heuristics want a cheap lookahead: "of the next few
//     actions, which opening move leads somewhere good?" — without
//     committing to a full branch-and-bound machinery.
//
// Complexity:
//
//   - O(MaxDepth · Width · S · log(Width·S)) where S bounds the successor
//     fan-out; memory O(Width · MaxDepth) labels.
//
// Errors:
//
//   - ErrWidth, ErrDepth: non-positive bounds.
//   - ErrNilSuccessor, ErrNilTerminal: missing callbacks.
//
// Determinism: pruning uses a stable sort, so equal-cost sequences keep
// their generation order; identical inputs yield identical results.
//
// The final pick is the lowest-cost retained sequence. (A prior revision
// of this utility selected the highest-cost survivor by the same key used
// to prune — inconsistent with "lower is better"; the tests pin the
// corrected behavior.)
package beam
