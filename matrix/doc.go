// Package matrix provides the interaction weight matrix shared by every
// dominance-hierarchy algorithm in this module.
//
// The matrix package provides:
//
//   - Weights: a square, identifier-indexed matrix of directed interaction
//     weights stored row-major in a flat slice, W[i][j] = "i acts on j".
//   - Ordering: a permutation of identifiers (position 0 first) produced by
//     the fas package and consumed by decompose.
//   - Constructors for the two accepted input shapes: positional rows
//     (FromRows) and ID-keyed maps (FromMap), plus New for explicit IDs.
//   - NaN-aware pair iteration (DoPairs) so scoring kernels skip missing
//     observations the same way.
//
// Cells may hold NaN to mark missing data. NaN is never an edge and never
// contributes to a sum; a pair with either cell NaN is skipped as a whole.
// Diagonal cells are stored but ignored by all algorithms.
//
// Weights values are immutable once built: algorithms never modify their
// input and always return fresh matrices, so a single *Weights may be shared
// by concurrent analyses without locking.
//
// Complexity: construction O(n²) time and memory; element access O(1).
package matrix
