// SPDX-License-Identifier: MIT

package dominance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dominance/matrix"
)

// sqrt2Pi scales the initial BBS estimate.
var sqrt2Pi = math.Sqrt(2 * math.Pi)

// BBS returns Batchelder–Bershad–Simpson scale scores.
//
// Implementation:
//   - Stage 1: wins, loses and all = wins + loses over valid pairs.
//   - Stage 2: initial score √(2π)·(wins − all/2)/all, 0 for passive IDs.
//   - Stage 3: iterate score[i] = 2·(wins−loses)/all + mean score of the
//     IDs i interacted with (W[i][j] or W[j][i] non-zero), until the
//     second-difference error Σ | |s₋₂−s₋₁| − |s₋₁−s| | drops to the
//     tolerance or the iteration cap is reached.
//   - Stage 4: subtract the mean over active IDs; passive IDs stay 0.
//
// A non-converged run is not an error: the last iterate is returned, a
// warning is logged and Stats.Converged is false.
//
// Errors: ErrNilMatrix.
// Complexity: O(k·n²) for k iterations.
func BBS(w *matrix.Weights, opts ...Option) (Scores, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("dominance.BBS: %w", err)
	}
	o := gatherOptions(opts...)
	n := w.Len()

	// Stage 1: totals
	wins, loses, skipped := tally(w)
	all := make([]float64, n)
	for i := range all {
		all[i] = wins[i] + loses[i]
	}
	if skipped > 0 {
		o.log.Warn().Int("skipped_pairs", skipped).Msg("dominance: BBS excludes NaN pairs")
	}

	// Stage 2: initial estimate
	scores := make([]float64, n)
	for i := range scores {
		if all[i] != 0 {
			scores[i] = sqrt2Pi * (wins[i] - all[i]/2) / all[i]
		}
	}

	// Stage 3: fixed-point iteration
	olds := append([]float64(nil), scores...)
	oldolds := make([]float64, n)
	means := make([]float64, n)
	iter := 0
	residual := o.tol + 1
	for iter < o.maxIter && residual > o.tol {
		neighbourMeans(w, scores, means)
		copy(oldolds, olds)
		copy(olds, scores)
		residual = 0
		for i := range scores {
			if all[i] != 0 {
				scores[i] = 2*(wins[i]-loses[i])/all[i] + means[i]
			}
			residual += math.Abs(math.Abs(oldolds[i]-olds[i]) - math.Abs(olds[i]-scores[i]))
		}
		iter++
	}
	converged := residual <= o.tol
	if !converged {
		o.log.Warn().
			Int("iterations", iter).
			Float64("residual", residual).
			Float64("tolerance", o.tol).
			Msg("dominance: BBS did not converge")
	}

	// Stage 4: re-center over active IDs
	var sum float64
	var active int
	for i := range scores {
		if all[i] != 0 {
			sum += scores[i]
			active++
		}
	}
	if active > 0 {
		mean := sum / float64(active)
		for i := range scores {
			if all[i] != 0 {
				scores[i] -= mean
			}
		}
	}

	o.report(Stats{SkippedPairs: skipped, Iterations: iter, Residual: residual, Converged: converged})

	return fromSlice(w, scores), nil
}

// neighbourMeans writes into means[i] the mean score of the IDs j ≠ i with a
// valid pair and at least one non-zero direction; 0 when there are none.
func neighbourMeans(w *matrix.Weights, scores, means []float64) {
	for i := range means {
		means[i] = 0
	}
	counts := make([]int, len(means))
	w.DoPairs(func(i, j int, wij, wji float64) bool {
		if wij != 0 || wji != 0 {
			means[i] += scores[j]
			counts[i]++
		}

		return true
	})
	for i, k := range counts {
		if k > 0 {
			means[i] /= float64(k)
		}
	}
}
