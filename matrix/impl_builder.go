// SPDX-License-Identifier: MIT

// Package matrix - constructors for Weights.
//
// Contract:
//   - The identifier domain must be non-empty strings without duplicates.
//   - Every row must have exactly n cells (square); otherwise ErrNonSquare.
//   - NaN cells are accepted as "missing"; WithStrictWeights also rejects
//     negative and ±Inf off-diagonal cells.
//   - Input slices/maps are copied; callers may reuse them afterwards.
//
// Determinism:
//   - New/FromRows keep the caller's order; FromMap sorts identifiers
//     lexicographically so repeated runs see the same matrix order.

package matrix

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

const (
	methodNew      = "New"
	methodFromRows = "FromRows"
	methodFromMap  = "FromMap"
	methodFromFlat = "FromFlat"
	methodNewLike  = "NewLike"
)

// newWeights wires a validated domain and an owned buffer into a Weights.
func newWeights(ids []string, data []float64) *Weights {
	n := len(ids)
	own := make([]string, n)
	copy(own, ids)
	index := make(map[string]int, n)
	for i, id := range own {
		index[id] = i
	}

	return &Weights{n: n, ids: own, index: index, data: data}
}

// New builds a Weights over ids from positional rows, rows[i][j] = W[ids[i]][ids[j]].
//
// Implementation:
//   - Stage 1: validate the identifier domain (ValidateIDs).
//   - Stage 2: validate squareness and copy rows into a flat buffer.
//   - Stage 3: apply the weight policy (WithStrictWeights).
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID, ErrNonSquare, ErrInvalidWeight.
//
// Complexity: O(n²) time and memory.
func New(ids []string, rows [][]float64, opts ...Option) (*Weights, error) {
	o := gatherOptions(opts...)
	if err := ValidateIDs(ids); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	n := len(ids)
	if len(rows) != n {
		return nil, fmt.Errorf("%s: %d rows for %d identifiers: %w", methodNew, len(rows), n, ErrNonSquare)
	}
	data := make([]float64, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", methodNew, i, len(row), n, ErrNonSquare)
		}
		copy(data[i*n:(i+1)*n], row)
	}
	if o.strict {
		if err := validateStrict(n, data); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
	}

	return newWeights(ids, data), nil
}

// FromRows builds a Weights from a positional square matrix. Identifiers are
// the decimal row indices "0", "1", …, so results keyed by ID map straight
// back to positions (see Ordering.Indices).
//
// Complexity: O(n²).
func FromRows(rows [][]float64, opts ...Option) (*Weights, error) {
	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = strconv.Itoa(i)
	}
	w, err := New(ids, rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromRows, err)
	}

	return w, nil
}

// FromMap builds a Weights from an ID-keyed matrix m[from][to].
//
// Behavior highlights:
//   - The domain is the set of outer keys, sorted lexicographically.
//   - A missing inner key reads as 0 (implicitly absent interaction).
//   - An inner key outside the domain is a malformed domain: ErrUnknownID.
//
// Complexity: O(n² + n log n).
func FromMap(m map[string]map[string]float64, opts ...Option) (*Weights, error) {
	o := gatherOptions(opts...)
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if err := ValidateIDs(ids); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromMap, err)
	}

	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	data := make([]float64, n*n)
	for i, from := range ids {
		for to, v := range m[from] {
			j, ok := index[to]
			if !ok {
				return nil, fmt.Errorf("%s: row %q references %q: %w", methodFromMap, from, to, ErrUnknownID)
			}
			data[i*n+j] = v
		}
	}
	if o.strict {
		if err := validateStrict(n, data); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromMap, err)
		}
	}

	return newWeights(ids, data), nil
}

// FromFlat builds a Weights over ids from a row-major buffer of length n*n.
// The buffer is copied. Algorithms use it to emit derived matrices over the
// same domain as their input.
//
// Complexity: O(n²).
func FromFlat(ids []string, data []float64, opts ...Option) (*Weights, error) {
	o := gatherOptions(opts...)
	if err := ValidateIDs(ids); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromFlat, err)
	}
	n := len(ids)
	if len(data) != n*n {
		return nil, fmt.Errorf("%s: %d cells for %d identifiers: %w", methodFromFlat, len(data), n, ErrNonSquare)
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	if o.strict {
		if err := validateStrict(n, cp); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromFlat, err)
		}
	}

	return newWeights(ids, cp), nil
}

// NewLike returns a matrix over the same identifier domain as like, taking
// ownership of data (row-major, length n*n). Callers must not modify data
// afterwards. Derived matrices (C, D, R) are built this way without a copy.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n) for the domain copy.
func NewLike(like *Weights, data []float64) (*Weights, error) {
	if like == nil {
		return nil, fmt.Errorf("%s: %w", methodNewLike, ErrNilMatrix)
	}
	if len(data) != like.n*like.n {
		return nil, fmt.Errorf("%s: %d cells for %d identifiers: %w", methodNewLike, len(data), like.n, ErrNonSquare)
	}

	return newWeights(like.ids, data), nil
}

// validateStrict rejects negative or ±Inf off-diagonal cells; NaN passes.
func validateStrict(n int, data []float64) error {
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = data[i*n+j]
			if math.IsNaN(v) {
				continue
			}
			if v < 0 || math.IsInf(v, 0) {
				return fmt.Errorf("cell (%d,%d)=%g: %w", i, j, v, ErrInvalidWeight)
			}
		}
	}

	return nil
}
