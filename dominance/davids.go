// SPDX-License-Identifier: MIT

package dominance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dominance/matrix"
)

// Mode selects a David's Score variant.
type Mode int

const (
	// Original is the raw David's Score on pairwise win proportions.
	Original Mode = iota
	// Modified uses Laplace-smoothed proportions (W+0.5)/(n+1) (de Vries).
	Modified
	// Normalized rescales Original as (DS + n(n−1)/2 − nanPairs)/n.
	Normalized
	// ModifiedNormalized rescales Modified the same way.
	ModifiedNormalized
	// MaxMinNormalized maps Original linearly onto [0, n−1].
	MaxMinNormalized
)

var modeNames = [...]string{"original", "modified", "normalized", "modified-normalized", "maxmin-normalized"}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

func (m Mode) valid() bool { return m >= Original && m <= MaxMinNormalized }

func (m Mode) smoothed() bool { return m == Modified || m == ModifiedNormalized }

// DavidsScore returns David's Score per identifier in the given mode.
//
// Implementation:
//   - Stage 1: for every valid ordered pair (i, j) take the proportions
//     P_ij, P_ji (raw W/(W_ij+W_ji) when that sum is non-zero, smoothed
//     (W+0.5)/(sum+1) in Modified modes) and accumulate wins[i] += P_ij,
//     loses[i] += P_ji.
//   - Stage 2: second-order terms wins2[i] += wins[i]·P_ij and
//     loses2[i] += loses[i]·P_ji over the same pairs.
//   - Stage 3: DS = wins + wins2 − loses − loses2, then normalize per mode.
//
// Missing pairs are counted as unordered NaN pairs (ordered count / 2) and
// subtracted in the Normalized modes.
//
// Errors: ErrNilMatrix, ErrInvalidMode.
// Complexity: O(n²).
func DavidsScore(w *matrix.Weights, mode Mode, opts ...Option) (Scores, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("dominance.DavidsScore: %w", err)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("dominance.DavidsScore: mode %d: %w", int(mode), ErrInvalidMode)
	}
	o := gatherOptions(opts...)
	n := w.Len()

	// Stage 1: first-order proportions
	wins := make([]float64, n)
	loses := make([]float64, n)
	skipped := w.DoPairs(func(i, j int, wij, wji float64) bool {
		if pij, pji, ok := proportions(wij, wji, mode.smoothed()); ok {
			wins[i] += pij
			loses[i] += pji
		}

		return true
	})
	nanPairs := float64(skipped) / 2
	if skipped > 0 {
		o.log.Warn().
			Float64("nan_pairs", nanPairs).
			Stringer("mode", mode).
			Msg("dominance: David's score excludes NaN pairs")
	}

	// Stage 2: second-order terms
	wins2 := make([]float64, n)
	loses2 := make([]float64, n)
	w.DoPairs(func(i, j int, wij, wji float64) bool {
		if pij, pji, ok := proportions(wij, wji, mode.smoothed()); ok {
			wins2[i] += wins[i] * pij
			loses2[i] += loses[i] * pji
		}

		return true
	})

	// Stage 3: score and normalize
	ds := make([]float64, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range ds {
		ds[i] = wins[i] + wins2[i] - loses[i] - loses2[i]
		lo = math.Min(lo, ds[i])
		hi = math.Max(hi, ds[i])
	}
	switch mode {
	case Normalized, ModifiedNormalized:
		nf := float64(n)
		for i := range ds {
			ds[i] = (ds[i] + nf*(nf-1)/2 - nanPairs) / nf
		}
	case MaxMinNormalized:
		for i := range ds {
			if hi != lo {
				ds[i] = (ds[i] - lo) / (hi - lo) * float64(n-1)
			} else {
				ds[i] = 0
			}
		}
	}

	o.report(Stats{SkippedPairs: skipped})

	return fromSlice(w, ds), nil
}

// proportions returns (P_ij, P_ji) for one pair. Raw proportions are
// undefined when both directions are zero; ok is false then.
func proportions(wij, wji float64, smoothed bool) (pij, pji float64, ok bool) {
	sum := wij + wji
	if smoothed {
		if sum == -1 {
			return 0, 0, false
		}

		return (wij + 0.5) / (sum + 1), (wji + 0.5) / (sum + 1), true
	}
	if sum == 0 {
		return 0, 0, false
	}

	return wij / sum, wji / sum, true
}
