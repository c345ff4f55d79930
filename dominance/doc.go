// SPDX-License-Identifier: MIT

// Package dominance computes per-individual dominance scores from a matrix of
// directed interaction weights, W[i][j] = "i won against j".
//
// Scores:
//
//   - BBS            Batchelder–Bershad–Simpson scaling: iterative win-rate
//     propagation over interacting neighbours, re-centered to zero mean.
//   - DavidsScore    David's Score family (modes 0..4): pairwise win
//     proportions with second-order terms, raw, Laplace-smoothed, normalized
//     or rescaled to [0, n−1].
//   - Lindquist      wins / (wins + loses).
//   - RowSum         Σ_j W[i][j].
//   - WinAboveAverage / LoseAboveAverage  number of outgoing / incoming
//     weights strictly above the mean off-diagonal weight.
//
// Conventions shared by all scores:
//
//   - Self pairs are skipped; the diagonal is never read.
//   - A pair with NaN in either direction contributes nothing. The number of
//     skipped ordered pairs is reported through WithStats, and BBS and
//     DavidsScore log it as a warning.
//   - Every identifier of the matrix gets a score; passive individuals get the
//     documented fallback (0 for most scores).
//   - Results are deterministic: all sums run in matrix order.
//
// Compute dispatches by Method name, so pipelines can select scores from
// configuration.
//
// References:
//
//	Jameson KA, Appleby MC, Freeman LC (1999) Finding an appropriate order for
//	a hierarchy based on probabilistic dominance. Animal Behaviour 57:991-998.
//	de Vries H, Stevens JMG, Vervaecke H (2006) Measuring and testing the
//	steepness of dominance hierarchies. Animal Behaviour 71:585-592.
//	Lindquist WB, Chase ID (2009) Data-based analysis of winner-loser models of
//	hierarchy formation in animals. Bull Math Biol 71:556-584.
package dominance
