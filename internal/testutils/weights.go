// Package testutils provides deterministic weight-matrix fixtures shared by the
// package test suites. It is intended for internal use only and is not part
// of the public API.
package testutils

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/dominance/matrix"
)

// MustWeights builds a matrix over ids from positional rows or fails the test.
func MustWeights(t testing.TB, ids []string, rows [][]float64) *matrix.Weights {
	t.Helper()
	w, err := matrix.New(ids, rows)
	if err != nil {
		t.Fatalf("matrix.New(%v): %v", ids, err)
	}

	return w
}

// IDs returns n identifiers "I00", "I01", … in ascending order.
func IDs(n int) []string {
	ids := make([]string, n)
	for i := range n {
		if i < 10 {
			ids[i] = "I0" + strconv.Itoa(i)
		} else {
			ids[i] = "I" + strconv.Itoa(i)
		}
	}

	return ids
}

// RandomWeights samples an n×n matrix with a fixed seed: each off-diagonal
// cell is non-zero with probability density and then holds an integer count
// in [1, 20]. With nanRate > 0 a cell is replaced by NaN with that
// probability. Trial order is row-major, so the result is reproducible for a
// given (n, seed, density, nanRate).
func RandomWeights(t testing.TB, n int, seed int64, density, nanRate float64) *matrix.Weights {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range n {
		rows[i] = make([]float64, n)
		for j := range n {
			if i == j {
				continue
			}
			if rng.Float64() < density {
				rows[i][j] = float64(1 + rng.Intn(20))
			}
			if nanRate > 0 && rng.Float64() < nanRate {
				rows[i][j] = math.NaN()
			}
		}
	}

	return MustWeights(t, IDs(n), rows)
}

// Chain returns the strict linear hierarchy ids[0] → ids[1] → … with the
// given weight on every consecutive pair and zero elsewhere.
func Chain(t testing.TB, ids []string, weight float64) *matrix.Weights {
	t.Helper()
	n := len(ids)
	rows := make([][]float64, n)
	for i := range n {
		rows[i] = make([]float64, n)
		if i+1 < n {
			rows[i][i+1] = weight
		}
	}

	return MustWeights(t, ids, rows)
}
