// SPDX-License-Identifier: MIT

// Package decompose splits a dominance matrix into its Common and Dominant
// parts and measures how hierarchical the interactions are.
//
// What:
//
//   - CD returns W = C + D with
//     C[i][j] = min(W[i][j], W[j][i])       (reciprocated, symmetric),
//     D[i][j] = max(0, W[i][j] − W[j][i])   (one-sided surplus),
//     R[i][j] = C[i][j]² / max(W[i][j], W[j][i]) (competitive relationship),
//     plus the global symmetry index s_index = Σ C^p / Σ W^p over i ≠ j.
//   - Transitivity returns the share of edge weight lying above the diagonal
//     when identifiers are visited in a given order. A perfect hierarchy under
//     its own ordering yields 1.
//
// Missing data:
//
//	A pair with a NaN in either direction is written through as NaN into C, D
//	and R and excluded from s_index. SkippedPairs counts those ordered pairs.
//
// Degenerate inputs never fail: an s_index or transitivity with a zero
// denominator is 0 and a warning is logged through WithLogger.
//
// Errors:
//
//   - matrix.ErrNilMatrix        nil input matrix
//   - matrix.ErrInvalidOrdering  order is not a permutation of the identifiers
package decompose
