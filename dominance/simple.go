// SPDX-License-Identifier: MIT

package dominance

import (
	"fmt"

	"github.com/katalvlaran/dominance/matrix"
)

// Lindquist returns the Lindquist dominance index wins/(wins+loses), or 0
// for individuals without interactions. Values lie in [0, 1] for
// non-negative matrices.
//
// Errors: ErrNilMatrix.
func Lindquist(w *matrix.Weights, opts ...Option) (Scores, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("dominance.Lindquist: %w", err)
	}
	o := gatherOptions(opts...)
	wins, loses, skipped := tally(w)
	out := make([]float64, len(wins))
	for i := range out {
		if total := wins[i] + loses[i]; total != 0 {
			out[i] = wins[i] / total
		}
	}
	o.report(Stats{SkippedPairs: skipped})

	return fromSlice(w, out), nil
}

// RowSum returns Σ_j W[i][j] over valid off-diagonal pairs.
//
// Errors: ErrNilMatrix.
func RowSum(w *matrix.Weights, opts ...Option) (Scores, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("dominance.RowSum: %w", err)
	}
	o := gatherOptions(opts...)
	wins, _, skipped := tally(w)
	o.report(Stats{SkippedPairs: skipped})

	return fromSlice(w, wins), nil
}
