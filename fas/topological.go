package fas

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dominance/matrix"
)

// ErrCycle indicates that the edge graph of a matrix is not acyclic.
var ErrCycle = errors.New("fas: graph contains a cycle")

// Visitation states of the depth-first search.
const (
	white = iota // unvisited
	gray         // on the recursion stack
	black        // finished
)

// topoSorter holds the state of one depth-first topological sort.
type topoSorter struct {
	w       *matrix.Weights
	noEdge  float64
	skip    map[[2]int]struct{} // excluded edges (from, to)
	state   []int
	post    []int
	cycleAt int // row where a back-edge was found
}

// TopologicalOrder returns an ordering in which every edge of w (weight above
// the no-edge threshold, minus arcs excluded with WithoutArcs) points forward.
// Ties follow matrix order: roots are tried in row order and neighbours in
// column order, and the reversed post-order is returned.
//
// Passing the FeedbackArcs of an Eades result to WithoutArcs always succeeds;
// that is how the arcs certify the ordering.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrUnknownID (excluded arc outside the
// domain), ErrCycle (naming one vertex on the cycle).
// Complexity: O(V²) time, O(V) recursion depth.
func TopologicalOrder(w *matrix.Weights, opts ...Option) (matrix.Ordering, error) {
	// 1. Validate input and resolve excluded arcs
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("fas.TopologicalOrder: %w", err)
	}
	o := gatherOptions(opts...)
	skip := make(map[[2]int]struct{}, len(o.without))
	for _, a := range o.without {
		i, ok := w.Index(a.From)
		if !ok {
			return nil, fmt.Errorf("fas.TopologicalOrder: arc from %q: %w", a.From, matrix.ErrUnknownID)
		}
		j, ok := w.Index(a.To)
		if !ok {
			return nil, fmt.Errorf("fas.TopologicalOrder: arc to %q: %w", a.To, matrix.ErrUnknownID)
		}
		skip[[2]int{i, j}] = struct{}{}
	}

	// 2. Drive the search from every unvisited row
	n := w.Len()
	t := &topoSorter{
		w:      w,
		noEdge: o.noEdge,
		skip:   skip,
		state:  make([]int, n),
		post:   make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		if t.state[i] == white && !t.visit(i) {
			return nil, fmt.Errorf("fas.TopologicalOrder: at %q: %w", w.ID(t.cycleAt), ErrCycle)
		}
	}

	// 3. Reverse post-order
	order := make(matrix.Ordering, n)
	for k, i := range t.post {
		order[n-1-k] = w.ID(i)
	}

	return order, nil
}

// visit explores row i and reports false when a back-edge closes a cycle.
func (t *topoSorter) visit(i int) bool {
	t.state[i] = gray
	for j := 0; j < len(t.state); j++ {
		if j == i || !t.w.IsEdge(i, j, t.noEdge) {
			continue
		}
		if _, ok := t.skip[[2]int{i, j}]; ok {
			continue
		}
		switch t.state[j] {
		case gray:
			t.cycleAt = j

			return false
		case white:
			if !t.visit(j) {
				return false
			}
		}
	}
	t.state[i] = black
	t.post = append(t.post, i)

	return true
}
