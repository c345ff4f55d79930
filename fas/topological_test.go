package fas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dominance/fas"
	"github.com/katalvlaran/dominance/internal/testutils"
	"github.com/katalvlaran/dominance/matrix"
)

func TestTopologicalOrder_Chain(t *testing.T) {
	w := testutils.MustWeights(t, []string{"C", "A", "B"}, [][]float64{
		{0, 0, 0},
		{0, 0, 3},
		{2, 0, 0},
	})
	order, err := fas.TopologicalOrder(w)
	require.NoError(t, err)
	assert.Equal(t, matrix.Ordering{"A", "B", "C"}, order)
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	w := testutils.MustWeights(t, []string{"A", "B", "C"}, [][]float64{
		{0, 5, 0},
		{0, 0, 3},
		{1, 0, 0},
	})
	_, err := fas.TopologicalOrder(w)
	require.ErrorIs(t, err, fas.ErrCycle)

	// Raising the threshold above the weakest edge breaks the cycle.
	order, err := fas.TopologicalOrder(w, fas.WithNoEdgeValue(1))
	require.NoError(t, err)
	assert.Equal(t, matrix.Ordering{"A", "B", "C"}, order)

	order, err = fas.TopologicalOrder(w, fas.WithoutArcs([]fas.Arc{{From: "C", To: "A"}}))
	require.NoError(t, err)
	assert.Equal(t, matrix.Ordering{"A", "B", "C"}, order)
}

func TestTopologicalOrder_Errors(t *testing.T) {
	_, err := fas.TopologicalOrder(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	w := testutils.Chain(t, []string{"A", "B"}, 1)
	_, err = fas.TopologicalOrder(w, fas.WithoutArcs([]fas.Arc{{From: "A", To: "Z"}}))
	require.ErrorIs(t, err, matrix.ErrUnknownID)
}

// TestFeedbackArcsBreakAllCycles removes the Eades feedback arcs from random
// cyclic matrices and checks that the remainder is acyclic and that its
// edges all point forward in the Eades order.
func TestFeedbackArcsBreakAllCycles(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		w := testutils.RandomWeights(t, 10, seed, 0.4, 0.05)
		res, err := fas.Eades(w)
		require.NoError(t, err)

		topo, err := fas.TopologicalOrder(w, fas.WithoutArcs(res.FeedbackArcs))
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, matrix.ValidateOrdering(w, topo))

		_, err = fas.TopologicalOrder(w, fas.WithoutArcs(nil))
		if len(res.FeedbackArcs) == 0 {
			assert.NoError(t, err, "seed %d", seed)
		} else {
			assert.ErrorIs(t, err, fas.ErrCycle, "seed %d", seed)
		}
	}
}
