package fas

import (
	"fmt"

	"github.com/katalvlaran/dominance/matrix"
)

// removed marks a vertex that already has a position.
const removed = -1

// eadesState holds the mutable bookkeeping of one Eades run.
// Degrees of placed vertices are set to removed (-1).
type eadesState struct {
	w      *matrix.Weights
	noEdge float64
	n      int

	indeg, outdeg []int
	instr, outstr []float64

	pos     []int // assigned position; negatives are counted from the bottom
	nextPos int   // next free position from the top
	nextNeg int   // next free position from the bottom (-1, -2, …)
	left    int   // vertices not yet placed

	sources fifo
	sinks   fifo

	pseudo int
}

// Order returns the Eades ordering of w, position 0 first.
// It is the short form of Eades(w, opts...).Order.
func Order(w *matrix.Weights, opts ...Option) (matrix.Ordering, error) {
	res, err := Eades(w, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Eades computes a near-acyclic ordering of w and its feedback arcs.
//
// Steps:
//  1. Validate input and gather options.
//  2. Compute degrees/strengths; park isolated vertices at the bottom.
//  3. Seed and sort the source and sink queues.
//  4. Alternate source drain, sink drain and pseudo-source removal until all
//     vertices are placed.
//  5. Fold bottom positions into [0, n) and collect backward arcs.
//
// Returns matrix.ErrNilMatrix for a nil matrix. An empty matrix yields an
// empty ordering.
//
// Complexity: O(V²) time over the dense matrix, O(V) extra memory.
func Eades(w *matrix.Weights, opts ...Option) (*Result, error) {
	// 1. Validate input
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("fas.Eades: %w", err)
	}
	o := gatherOptions(opts...)

	// 2-4. Place every vertex
	st := newEadesState(w, o.noEdge)
	st.seed()
	for st.left > 0 {
		st.drainSources()
		st.drainSinks()
		if v := st.pickPseudoSource(); v >= 0 {
			o.log.Debug().
				Str("id", w.ID(v)).
				Float64("strength_diff", st.outstr[v]-st.instr[v]).
				Int("left", st.left).
				Msg("fas: no source or sink left, removing pseudo-source")
			st.pseudo++
			st.placeTop(v)
			st.removeOutgoing(v)
			st.removeIncoming(v)
		}
	}

	// 5. Normalize positions and build the result
	order := make(matrix.Ordering, st.n)
	position := make(map[string]int, st.n)
	for i := 0; i < st.n; i++ {
		if st.pos[i] < 0 {
			st.pos[i] += st.n
		}
		order[st.pos[i]] = w.ID(i)
		position[w.ID(i)] = st.pos[i]
	}
	arcs, total := backwardArcs(w, order, st.pos, o.noEdge)

	o.log.Debug().
		Int("vertices", st.n).
		Int("pseudo_sources", st.pseudo).
		Int("feedback_arcs", len(arcs)).
		Float64("feedback_weight", total).
		Msg("fas: eades ordering computed")

	return &Result{
		Order:          order,
		Position:       position,
		FeedbackArcs:   arcs,
		FeedbackWeight: total,
		PseudoSources:  st.pseudo,
	}, nil
}

// newEadesState computes degrees and strengths over edges above noEdge.
// Self-loops are ignored.
func newEadesState(w *matrix.Weights, noEdge float64) *eadesState {
	n := w.Len()
	st := &eadesState{
		w:       w,
		noEdge:  noEdge,
		n:       n,
		indeg:   make([]int, n),
		outdeg:  make([]int, n),
		instr:   make([]float64, n),
		outstr:  make([]float64, n),
		pos:     make([]int, n),
		nextNeg: -1,
		left:    n,
	}
	var j, k int
	var v float64
	for j = 0; j < n; j++ {
		for k = 0; k < n; k++ {
			if j == k || !w.IsEdge(j, k, noEdge) {
				continue
			}
			v = w.Get(j, k)
			st.outdeg[j]++
			st.outstr[j] += v
			st.indeg[k]++
			st.instr[k] += v
		}
	}

	return st
}

// diff is the out-strength minus in-strength of vertex i.
func (st *eadesState) diff(i int) float64 { return st.outstr[i] - st.instr[i] }

// seed parks isolated vertices at the bottom and queues initial sources
// (descending diff) and sinks (ascending diff).
func (st *eadesState) seed() {
	for j := 0; j < st.n; j++ {
		switch {
		case st.indeg[j] == 0 && st.outdeg[j] == 0:
			st.placeBottom(j)
		case st.indeg[j] == 0:
			st.sources.push(j)
		case st.outdeg[j] == 0:
			st.sinks.push(j)
		}
	}
	st.sources.sortBy(st.diff, true)
	st.sinks.sortBy(st.diff, false)
}

func (st *eadesState) placed(i int) bool { return st.indeg[i] < 0 }

func (st *eadesState) markPlaced(i int) {
	st.indeg[i] = removed
	st.outdeg[i] = removed
	st.left--
}

func (st *eadesState) placeTop(i int) {
	st.pos[i] = st.nextPos
	st.nextPos++
	st.markPlaced(i)
}

func (st *eadesState) placeBottom(i int) {
	st.pos[i] = st.nextNeg
	st.nextNeg--
	st.markPlaced(i)
}

// drainSources places queued sources at the top, one by one.
func (st *eadesState) drainSources() {
	for !st.sources.empty() {
		j := st.sources.pop()
		if st.placed(j) {
			continue
		}
		st.placeTop(j)
		st.removeOutgoing(j)
	}
}

// drainSinks places queued sinks at the bottom, one by one. A vertex may have
// become a source and a sink at once and already be placed; it is skipped.
func (st *eadesState) drainSinks() {
	for !st.sinks.empty() {
		j := st.sinks.pop()
		if st.placed(j) {
			continue
		}
		st.placeBottom(j)
		st.removeIncoming(j)
	}
}

// removeOutgoing drops the edges j→k of a placed vertex j; any k left without
// in-edges becomes a source.
func (st *eadesState) removeOutgoing(j int) {
	for k := 0; k < st.n; k++ {
		if k == j || !st.w.IsEdge(j, k, st.noEdge) {
			continue
		}
		if st.indeg[k] <= 0 {
			continue
		}
		st.indeg[k]--
		st.instr[k] -= st.w.Get(j, k)
		if st.indeg[k] == 0 {
			st.sources.push(k)
		}
	}
}

// removeIncoming drops the edges k→j of a placed vertex j; any k left without
// out-edges becomes a sink.
func (st *eadesState) removeIncoming(j int) {
	for k := 0; k < st.n; k++ {
		if k == j || !st.w.IsEdge(k, j, st.noEdge) {
			continue
		}
		if st.outdeg[k] <= 0 {
			continue
		}
		st.outdeg[k]--
		st.outstr[k] -= st.w.Get(k, j)
		if st.outdeg[k] == 0 {
			st.sinks.push(k)
		}
	}
}

// pickPseudoSource returns the unplaced vertex with the largest out−in
// strength (first in matrix order on ties), or -1 if every vertex is placed.
func (st *eadesState) pickPseudoSource() int {
	best := -1
	var bestDiff float64
	for j := 0; j < st.n; j++ {
		if st.placed(j) {
			continue
		}
		if d := st.diff(j); best < 0 || d > bestDiff {
			best, bestDiff = j, d
		}
	}

	return best
}
