// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/katalvlaran/dominance/matrix"
)

// Transitivity returns upper/(upper+lower), where upper sums the edge weights
// above the diagonal and lower those below it when identifiers are visited in
// order (nil → matrix order). Only weights above the no-edge threshold count;
// NaN never does.
//
// Returns 0 when no edge exists, and 0 with a warning when upper+lower is 0
// (possible only with negative weights and a negative threshold).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidOrdering.
// Complexity: O(n²).
func Transitivity(w *matrix.Weights, order matrix.Ordering, opts ...Option) (float64, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return 0, fmt.Errorf("decompose.Transitivity: %w", err)
	}
	idx, err := visitOrder(w, order)
	if err != nil {
		return 0, fmt.Errorf("decompose.Transitivity: %w", err)
	}
	o := gatherOptions(opts...)

	var upper, lower float64
	n := len(idx)
	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			if w.IsEdge(idx[a], idx[b], o.noEdge) {
				upper += w.Get(idx[a], idx[b])
			}
			if w.IsEdge(idx[b], idx[a], o.noEdge) {
				lower += w.Get(idx[b], idx[a])
			}
		}
	}

	switch {
	case upper == 0 && lower == 0:
		return 0, nil
	case upper+lower == 0:
		o.log.Warn().
			Float64("upper", upper).
			Float64("lower", lower).
			Msg("decompose: transitivity denominator is zero, using 0")

		return 0, nil
	}

	return upper / (upper + lower), nil
}
