// SPDX-License-Identifier: MIT
package dominance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dominance/dominance"
	"github.com/katalvlaran/dominance/internal/testutils"
)

func TestDavidsScore_Errors(t *testing.T) {
	_, err := dominance.DavidsScore(nil, dominance.Original)
	require.ErrorIs(t, err, dominance.ErrNilMatrix)

	w := testutils.Chain(t, []string{"A", "B"}, 1)
	_, err = dominance.DavidsScore(w, dominance.Mode(5))
	require.ErrorIs(t, err, dominance.ErrInvalidMode)
	_, err = dominance.DavidsScore(w, dominance.Mode(-1))
	require.ErrorIs(t, err, dominance.ErrInvalidMode)
}

// TestDavidsScore_ChainRaw covers the modes built on raw proportions.
// On A→B→C: wins = (1, 1, 0), loses = (0, 1, 1), DS = (2, 0, −2).
func TestDavidsScore_ChainRaw(t *testing.T) {
	w := testutils.Chain(t, []string{"A", "B", "C"}, 10)
	tests := []struct {
		mode dominance.Mode
		want dominance.Scores
	}{
		{dominance.Original, dominance.Scores{"A": 2, "B": 0, "C": -2}},
		{dominance.Normalized, dominance.Scores{"A": 5.0 / 3, "B": 1, "C": 1.0 / 3}},
		{dominance.MaxMinNormalized, dominance.Scores{"A": 2, "B": 1, "C": 0}},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			got, err := dominance.DavidsScore(w, tc.mode)
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for id, v := range tc.want {
				assert.InDelta(t, v, got[id], 1e-12, id)
			}
		})
	}
}

// TestDavidsScore_ChainSmoothed checks the Laplace-smoothed modes, where the
// unobserved A–C pair contributes 0.5 each way.
func TestDavidsScore_ChainSmoothed(t *testing.T) {
	w := testutils.Chain(t, []string{"A", "B", "C"}, 10)
	a := 10.5/11 + 0.5
	b := 0.5/11 + 0.5
	dsA := a + a*a - b - b*b

	got, err := dominance.DavidsScore(w, dominance.Modified)
	require.NoError(t, err)
	assert.InDelta(t, dsA, got["A"], 1e-12)
	assert.InDelta(t, 0, got["B"], 1e-12)
	assert.InDelta(t, -dsA, got["C"], 1e-12)

	norm, err := dominance.DavidsScore(w, dominance.ModifiedNormalized)
	require.NoError(t, err)
	for id, v := range got {
		assert.InDelta(t, (v+3)/3, norm[id], 1e-12, id)
	}
}

// TestDavidsScore_Degenerate returns 0 for every ID when DS is flat.
func TestDavidsScore_Degenerate(t *testing.T) {
	zero := testutils.MustWeights(t, []string{"A", "B", "C"}, [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	got, err := dominance.DavidsScore(zero, dominance.MaxMinNormalized)
	require.NoError(t, err)
	assert.Equal(t, dominance.Scores{"A": 0, "B": 0, "C": 0}, got)

	single := testutils.MustWeights(t, []string{"A"}, [][]float64{{3}})
	got, err = dominance.DavidsScore(single, dominance.MaxMinNormalized)
	require.NoError(t, err)
	assert.Equal(t, dominance.Scores{"A": 0}, got)
}

// TestDavidsScore_NaNNormalization verifies that missing pairs shift the
// Normalized modes by the unordered NaN pair count.
func TestDavidsScore_NaNNormalization(t *testing.T) {
	w := testutils.MustWeights(t, []string{"A", "B", "C"}, [][]float64{
		{0, math.NaN(), 6},
		{2, 0, 5},
		{1, 0, 0},
	})
	var st dominance.Stats
	raw, err := dominance.DavidsScore(w, dominance.Original, dominance.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 2, st.SkippedPairs)

	norm, err := dominance.DavidsScore(w, dominance.Normalized)
	require.NoError(t, err)
	for id, v := range raw {
		assert.InDelta(t, (v+3-1)/3, norm[id], 1e-12, id)
	}
}

// TestDavidsScore_MaxMinRange checks the [0, n−1] range on random matrices.
func TestDavidsScore_MaxMinRange(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		w := testutils.RandomWeights(t, 8, seed, 0.6, 0)
		got, err := dominance.DavidsScore(w, dominance.MaxMinNormalized)
		require.NoError(t, err)
		var lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range got {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		assert.InDelta(t, 0, lo, 1e-12, "seed %d", seed)
		assert.InDelta(t, 7, hi, 1e-12, "seed %d", seed)
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "original", dominance.Original.String())
	assert.Equal(t, "maxmin-normalized", dominance.MaxMinNormalized.String())
	assert.Equal(t, "Mode(9)", dominance.Mode(9).String())
}
