// SPDX-License-Identifier: MIT

package dominance

import (
	"sort"

	"github.com/katalvlaran/dominance/matrix"
)

// Scores maps each identifier to its dominance score.
type Scores map[string]float64

// Ranked returns the identifiers by descending score; ties are broken by
// ascending identifier.
func (s Scores) Ranked() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		sa, sb := s[ids[a]], s[ids[b]]
		if sa != sb {
			return sa > sb
		}

		return ids[a] < ids[b]
	})

	return ids
}

// fromSlice keys v[i] by the identifier of row i.
func fromSlice(w *matrix.Weights, v []float64) Scores {
	out := make(Scores, len(v))
	for i, x := range v {
		out[w.ID(i)] = x
	}

	return out
}

// tally sums wins[i] = Σ_j W[i][j] and loses[j] = Σ_i W[i][j] over valid
// off-diagonal pairs and returns the number of skipped ordered pairs.
func tally(w *matrix.Weights) (wins, loses []float64, skipped int) {
	n := w.Len()
	wins = make([]float64, n)
	loses = make([]float64, n)
	skipped = w.DoPairs(func(i, j int, wij, _ float64) bool {
		wins[i] += wij
		loses[j] += wij

		return true
	})

	return wins, loses, skipped
}
