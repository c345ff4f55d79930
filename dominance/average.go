// SPDX-License-Identifier: MIT

package dominance

import (
	"fmt"

	"github.com/katalvlaran/dominance/matrix"
)

// WinAboveAverage counts, per identifier, the outgoing weights W[i][j] that
// strictly exceed the mean of all valid off-diagonal weights.
//
// Errors: ErrNilMatrix.
func WinAboveAverage(w *matrix.Weights, opts ...Option) (Scores, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("dominance.WinAboveAverage: %w", err)
	}

	return aboveAverage(w, gatherOptions(opts...), true), nil
}

// LoseAboveAverage counts, per identifier, the incoming weights W[j][i] that
// strictly exceed the mean of all valid off-diagonal weights.
//
// Errors: ErrNilMatrix.
func LoseAboveAverage(w *matrix.Weights, opts ...Option) (Scores, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("dominance.LoseAboveAverage: %w", err)
	}

	return aboveAverage(w, gatherOptions(opts...), false), nil
}

// aboveAverage credits the row (win) or column (lose) of every valid cell
// above the mean.
func aboveAverage(w *matrix.Weights, o options, byRow bool) Scores {
	var sum float64
	var cells int
	skipped := w.DoPairs(func(_, _ int, wij, _ float64) bool {
		sum += wij
		cells++

		return true
	})
	var avg float64
	if cells > 0 {
		avg = sum / float64(cells)
	}

	counts := make([]float64, w.Len())
	w.DoPairs(func(i, j int, wij, _ float64) bool {
		if wij > avg {
			if byRow {
				counts[i]++
			} else {
				counts[j]++
			}
		}

		return true
	})
	o.report(Stats{SkippedPairs: skipped})

	return fromSlice(w, counts)
}
