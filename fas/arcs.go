package fas

import (
	"fmt"

	"github.com/katalvlaran/dominance/matrix"
)

// FeedbackArcs returns the edges of w (weight above the no-edge threshold)
// that point from a later to an earlier position of order, together with
// their total weight. Removing them leaves w acyclic.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidOrdering.
// Complexity: O(V²).
func FeedbackArcs(w *matrix.Weights, order matrix.Ordering, opts ...Option) ([]Arc, float64, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, 0, fmt.Errorf("fas.FeedbackArcs: %w", err)
	}
	idx, err := order.Indices(w)
	if err != nil {
		return nil, 0, fmt.Errorf("fas.FeedbackArcs: %w", err)
	}
	o := gatherOptions(opts...)
	pos := make([]int, len(idx))
	for p, i := range idx {
		pos[i] = p
	}
	arcs, total := backwardArcs(w, order, pos, o.noEdge)

	return arcs, total, nil
}

// backwardArcs walks order top-down and collects every edge from the vertex
// at position a to a vertex at an earlier position b < a.
// pos[i] is the position of row i; order[p] is the identifier at position p.
func backwardArcs(w *matrix.Weights, order matrix.Ordering, pos []int, noEdge float64) ([]Arc, float64) {
	n := len(order)
	rows := make([]int, n) // position → row index
	for i, p := range pos {
		rows[p] = i
	}

	var arcs []Arc
	var total float64
	var a, b, from, to int
	for a = 1; a < n; a++ {
		from = rows[a]
		for b = 0; b < a; b++ {
			to = rows[b]
			if !w.IsEdge(from, to, noEdge) {
				continue
			}
			v := w.Get(from, to)
			arcs = append(arcs, Arc{From: order[a], To: order[b], Weight: v})
			total += v
		}
	}

	return arcs, total
}
