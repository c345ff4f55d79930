// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dominance/matrix"
)

// Result holds the Common/Dominant decomposition of a weight matrix.
// C, D and R share the identifier domain and matrix order of the input.
type Result struct {
	C *matrix.Weights // common (reciprocated) part, symmetric
	D *matrix.Weights // dominant part; D[i][j]·D[j][i] = 0
	R *matrix.Weights // competitive relationship C²/max

	// SIndex is Σ C^p / Σ W^p over valid off-diagonal pairs, in [0, 1].
	SIndex float64

	// SkippedPairs counts ordered off-diagonal pairs excluded for NaN.
	SkippedPairs int
}

// CD decomposes w into W = C + D and computes the symmetry index.
//
// Implementation:
//   - Stage 1: validate w and resolve order (nil → matrix order).
//   - Stage 2: visit pairs (i, j) in order; NaN pairs write NaN and are
//     skipped, others fill C, D, R and accumulate the s_index sums.
//   - Stage 3: divide, falling back to 0 on a zero denominator.
//
// Behavior highlights:
//   - Diagonal: C[i][i] = W[i][i], D[i][i] = R[i][i] = 0.
//   - order only fixes the summation order; outputs stay in matrix order.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidOrdering.
// Complexity: O(n²) time, 3·n² output cells.
func CD(w *matrix.Weights, order matrix.Ordering, opts ...Option) (*Result, error) {
	// Stage 1: validate
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("decompose.CD: %w", err)
	}
	idx, err := visitOrder(w, order)
	if err != nil {
		return nil, fmt.Errorf("decompose.CD: %w", err)
	}
	o := gatherOptions(opts...)

	// Stage 2: split pairs
	n := w.Len()
	c := make([]float64, n*n)
	d := make([]float64, n*n)
	r := make([]float64, n*n)
	var num, den float64
	var skipped int
	var wij, wji, lo, hi float64
	for _, i := range idx {
		for _, j := range idx {
			off := i*n + j
			wij, wji = w.Get(i, j), w.Get(j, i)
			if math.IsNaN(wij) || math.IsNaN(wji) {
				c[off], d[off], r[off] = math.NaN(), math.NaN(), math.NaN()
				if i != j {
					skipped++
				}
				continue
			}
			if wij > wji {
				lo, hi = wji, wij
				d[off] = wij - wji
			} else {
				lo, hi = wij, wji
			}
			c[off] = lo
			if i == j {
				continue
			}
			if hi != 0 {
				r[off] = lo * lo / hi
			}
			num += pow(lo, o.power)
			den += pow(wij, o.power)
		}
	}

	// Stage 3: assemble
	res := &Result{SkippedPairs: skipped}
	if den != 0 {
		res.SIndex = num / den
	} else if n > 1 {
		o.log.Warn().Int("ids", n).Msg("decompose: s_index denominator is zero, using 0")
	}
	if res.C, err = matrix.NewLike(w, c); err != nil {
		return nil, fmt.Errorf("decompose.CD: %w", err)
	}
	if res.D, err = matrix.NewLike(w, d); err != nil {
		return nil, fmt.Errorf("decompose.CD: %w", err)
	}
	if res.R, err = matrix.NewLike(w, r); err != nil {
		return nil, fmt.Errorf("decompose.CD: %w", err)
	}
	if skipped > 0 {
		o.log.Debug().Int("skipped_pairs", skipped).Msg("decompose: NaN pairs written through")
	}

	return res, nil
}

// pow handles the two supported exponents without math.Pow.
func pow(v float64, p int) float64 {
	if p == 2 {
		return v * v
	}

	return v
}
