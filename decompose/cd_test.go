// SPDX-License-Identifier: MIT
package decompose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dominance/decompose"
	"github.com/katalvlaran/dominance/internal/testutils"
	"github.com/katalvlaran/dominance/matrix"
)

// TestCD_Errors verifies nil input and invalid orderings.
func TestCD_Errors(t *testing.T) {
	_, err := decompose.CD(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	w := testutils.Chain(t, []string{"A", "B", "C"}, 1)
	_, err = decompose.CD(w, matrix.Ordering{"A", "B"})
	require.ErrorIs(t, err, matrix.ErrInvalidOrdering)
	_, err = decompose.CD(w, matrix.Ordering{"A", "B", "Z"})
	require.ErrorIs(t, err, matrix.ErrInvalidOrdering)
}

// TestCD_Symmetric2x2 covers W[A][B] = W[B][A] = 4.
func TestCD_Symmetric2x2(t *testing.T) {
	w := testutils.MustWeights(t, []string{"A", "B"}, [][]float64{
		{0, 4},
		{4, 0},
	})
	res, err := decompose.CD(w, nil)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 4}, {4, 0}}, res.C.Rows())
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, res.D.Rows())
	assert.Equal(t, [][]float64{{0, 4}, {4, 0}}, res.R.Rows())
	assert.Equal(t, 1.0, res.SIndex)
	assert.Zero(t, res.SkippedPairs)
}

// TestCD_Asymmetric checks the C/D/R formulas on a hand-computed pair.
func TestCD_Asymmetric(t *testing.T) {
	w := testutils.MustWeights(t, []string{"A", "B"}, [][]float64{
		{7, 6},
		{2, 0},
	})
	res, err := decompose.CD(w, matrix.Ordering{"B", "A"})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{7, 2}, {2, 0}}, res.C.Rows())
	assert.Equal(t, [][]float64{{0, 4}, {0, 0}}, res.D.Rows())
	assert.InDeltaSlice(t, []float64{0, 4.0 / 6}, res.R.Rows()[0], 1e-12)
	assert.InDeltaSlice(t, []float64{4.0 / 6, 0}, res.R.Rows()[1], 1e-12)
	assert.InDelta(t, 4.0/8, res.SIndex, 1e-12)

	res2, err := decompose.CD(w, nil, decompose.WithSIndexPower(2))
	require.NoError(t, err)
	assert.InDelta(t, 8.0/40, res2.SIndex, 1e-12)
}

// TestCD_NaNWriteThrough verifies missing pairs become NaN and are excluded.
func TestCD_NaNWriteThrough(t *testing.T) {
	nan := math.NaN()
	w := testutils.MustWeights(t, []string{"A", "B", "C"}, [][]float64{
		{0, nan, 3},
		{1, 0, 2},
		{3, 0, 0},
	})
	res, err := decompose.CD(w, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.SkippedPairs)

	for _, m := range []*matrix.Weights{res.C, res.D, res.R} {
		ab, _ := m.Weight("A", "B")
		ba, _ := m.Weight("B", "A")
		assert.True(t, math.IsNaN(ab))
		assert.True(t, math.IsNaN(ba))
	}
	// Valid pairs: A-C (3,3), B-C (2,0). ΣC = 6, ΣW = 8.
	assert.InDelta(t, 6.0/8, res.SIndex, 1e-12)
}

// TestCD_Degenerate returns 0 when no off-diagonal weight exists.
func TestCD_Degenerate(t *testing.T) {
	w := testutils.MustWeights(t, []string{"A", "B"}, [][]float64{
		{5, 0},
		{0, 0},
	})
	res, err := decompose.CD(w, nil)
	require.NoError(t, err)
	assert.Zero(t, res.SIndex)
	c, _ := res.C.Weight("A", "A")
	assert.Equal(t, 5.0, c)

	empty := testutils.MustWeights(t, nil, nil)
	res, err = decompose.CD(empty, nil)
	require.NoError(t, err)
	assert.Zero(t, res.C.Len())
}

// TestCD_RandomInvariants checks C symmetry, D exclusivity, C + D = W and
// s_index ∈ [0, 1] on seeded random matrices.
func TestCD_RandomInvariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		w := testutils.RandomWeights(t, 10, seed, 0.6, 0)
		for _, p := range []int{1, 2} {
			res, err := decompose.CD(w, nil, decompose.WithSIndexPower(p))
			require.NoError(t, err)

			n := w.Len()
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == j {
						continue
					}
					assert.Equal(t, res.C.Get(i, j), res.C.Get(j, i), "seed %d C sym", seed)
					assert.Zero(t, res.D.Get(i, j)*res.D.Get(j, i), "seed %d D excl", seed)
					assert.Equal(t, w.Get(i, j), res.C.Get(i, j)+res.D.Get(i, j), "seed %d C+D", seed)
				}
			}
			assert.GreaterOrEqual(t, res.SIndex, 0.0)
			assert.LessOrEqual(t, res.SIndex, 1.0)
		}
	}
}

// TestWithSIndexPower_Panics verifies unsupported exponents are rejected.
func TestWithSIndexPower_Panics(t *testing.T) {
	assert.Panics(t, func() { decompose.WithSIndexPower(3) })
	assert.Panics(t, func() { decompose.WithSIndexPower(0) })
	assert.NotPanics(t, func() { decompose.WithSIndexPower(2) })
	assert.Panics(t, func() { decompose.WithNoEdgeValue(math.NaN()) })
}
