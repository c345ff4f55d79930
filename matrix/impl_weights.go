// SPDX-License-Identifier: MIT

// Package matrix - Weights storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep a cache-friendly row-major buffer with offset i*n + j.
//   - Guarantee safety at the public surface: At/Weight return errors instead
//     of panicking; Get is the unchecked accessor for kernels iterating inside
//     [0, Len()).
//   - Keep algorithmic determinism: fixed loop orders, IDs iterated in matrix
//     order, never in map order.
//
// Complexity quicksheet:
//   - At/Get/Weight/IsEdge: O(1); IDs/Clone/Rows/ToMap: O(n²) at most.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxWeight = "Weight" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtLabelSep = ": "
)

// weightsErrorf wraps a sentinel with a uniform Weights context and coordinates.
func weightsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Weights.%s(%d,%d): %w", method, row, col, err)
}

// Weights is a square matrix of directed interaction weights over a finite
// identifier domain.
//   - ids lists the domain in matrix order; index is its inverse.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// W[i][j] and W[j][i] are independent directed counts. A Weights value is
// never mutated after construction.
type Weights struct {
	n     int            // number of identifiers
	ids   []string       // identifier per row/column, matrix order
	index map[string]int // identifier → row/column index
	data  []float64      // row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Weights)(nil)

// Len returns the number of identifiers n. A nil receiver reports 0.
// Complexity: O(1).
func (w *Weights) Len() int {
	if w == nil {
		return 0
	}

	return w.n
}

// IDs returns a copy of the identifier domain in matrix order.
// Complexity: O(n).
func (w *Weights) IDs() []string {
	if w == nil {
		return nil
	}
	out := make([]string, w.n)
	copy(out, w.ids)

	return out
}

// ID returns the identifier of row/column i. Callers must keep 0 ≤ i < Len().
// Complexity: O(1).
func (w *Weights) ID(i int) string { return w.ids[i] }

// Index returns the row/column index of id and whether it belongs to the domain.
// Complexity: O(1) average.
func (w *Weights) Index(id string) (int, bool) {
	if w == nil {
		return 0, false
	}
	i, ok := w.index[id]

	return i, ok
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < n and 0 ≤ col < n.
//   - Stage 2: compute row*n + col.
func (w *Weights) indexOf(row, col int) (int, error) {
	if row < 0 || row >= w.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= w.n {
		return 0, ErrOutOfRange
	}

	return row*w.n + col, nil
}

// At returns W[row][col] or a wrapped ErrOutOfRange / ErrNilMatrix.
//
// Behavior highlights:
//   - Never panics on bad indices; NaN cells are returned as NaN.
//
// Complexity: O(1).
func (w *Weights) At(row, col int) (float64, error) {
	if w == nil {
		return 0, weightsErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := w.indexOf(row, col)
	if err != nil {
		return 0, weightsErrorf(ctxAt, row, col, err)
	}

	return w.data[off], nil
}

// Get returns W[i][j] without bounds checks beyond those of the runtime.
// It is meant for kernels that iterate i, j over [0, Len()).
// Complexity: O(1).
func (w *Weights) Get(i, j int) float64 { return w.data[i*w.n+j] }

// Weight returns W[from][to] looked up by identifier.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrUnknownID when either identifier is outside the domain.
//
// Complexity: O(1) average.
func (w *Weights) Weight(from, to string) (float64, error) {
	if w == nil {
		return 0, fmt.Errorf("Weights.%s(%q,%q): %w", ctxWeight, from, to, ErrNilMatrix)
	}
	i, ok := w.index[from]
	if !ok {
		return 0, fmt.Errorf("Weights.%s: %q: %w", ctxWeight, from, ErrUnknownID)
	}
	j, ok := w.index[to]
	if !ok {
		return 0, fmt.Errorf("Weights.%s: %q: %w", ctxWeight, to, ErrUnknownID)
	}

	return w.data[i*w.n+j], nil
}

// IsEdge reports whether W[i][j] > maxNoEdge. NaN is never an edge.
// Complexity: O(1).
func (w *Weights) IsEdge(i, j int, maxNoEdge float64) bool {
	return w.data[i*w.n+j] > maxNoEdge
}

// ValidPair reports whether both W[i][j] and W[j][i] are numbers (not NaN).
// Complexity: O(1).
func (w *Weights) ValidPair(i, j int) bool {
	return !math.IsNaN(w.data[i*w.n+j]) && !math.IsNaN(w.data[j*w.n+i])
}

// DoPairs visits every ordered off-diagonal pair (i, j) whose two cells are
// both valid numbers and calls f(i, j, W[i][j], W[j][i]).
// Iteration is row-major (i asc, then j asc) and stops early when f returns
// false. The returned count is the number of ordered pairs skipped because
// either cell was NaN, up to the point where iteration stopped.
//
// Complexity: O(n²) time, O(1) space.
func (w *Weights) DoPairs(f func(i, j int, wij, wji float64) bool) (skipped int) {
	if w == nil {
		return 0
	}
	var i, j int
	var wij, wji float64
	for i = 0; i < w.n; i++ {
		for j = 0; j < w.n; j++ {
			if i == j {
				continue
			}
			wij = w.data[i*w.n+j]
			wji = w.data[j*w.n+i]
			if math.IsNaN(wij) || math.IsNaN(wji) {
				skipped++
				continue
			}
			if !f(i, j, wij, wji) {
				return skipped
			}
		}
	}

	return skipped
}

// Rows returns a copy of the matrix as a slice of rows in matrix order.
// Complexity: O(n²).
func (w *Weights) Rows() [][]float64 {
	if w == nil {
		return nil
	}
	out := make([][]float64, w.n)
	for i := 0; i < w.n; i++ {
		row := make([]float64, w.n)
		copy(row, w.data[i*w.n:(i+1)*w.n])
		out[i] = row
	}

	return out
}

// ToMap returns the matrix keyed by identifier, W[from][to], diagonal included.
// Complexity: O(n²).
func (w *Weights) ToMap() map[string]map[string]float64 {
	if w == nil {
		return nil
	}
	out := make(map[string]map[string]float64, w.n)
	for i, from := range w.ids {
		row := make(map[string]float64, w.n)
		for j, to := range w.ids {
			row[to] = w.data[i*w.n+j]
		}
		out[from] = row
	}

	return out
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(n²).
func (w *Weights) Clone() *Weights {
	if w == nil {
		return nil
	}
	cp := make([]float64, len(w.data))
	copy(cp, w.data)

	return newWeights(w.ids, cp)
}

// String renders one labelled row per line for diagnostics.
// Not for hot paths.
func (w *Weights) String() string {
	if w == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < w.n; i++ {
		b.WriteString(w.ids[i])
		b.WriteString(_fmtLabelSep)
		b.WriteString(_fmtRowOpen)
		base = i * w.n
		for j = 0; j < w.n; j++ {
			b.WriteString(fmt.Sprintf("%g", w.data[base+j]))
			if j+1 < w.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
