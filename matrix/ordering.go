// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Ordering lists identifiers from position 0 (top of the hierarchy) to
// position n-1. A valid Ordering for a matrix is a bijection onto its domain.
type Ordering []string

// NaturalOrdering returns the matrix order of w as an Ordering.
// Complexity: O(n).
func NaturalOrdering(w *Weights) Ordering {
	return Ordering(w.IDs())
}

// Positions returns the inverse mapping ID → position.
// Complexity: O(n).
func (o Ordering) Positions() map[string]int {
	pos := make(map[string]int, len(o))
	for i, id := range o {
		pos[id] = i
	}

	return pos
}

// Validate reports whether o is a permutation of w's identifiers.
// Errors: ErrNilMatrix, ErrInvalidOrdering.
func (o Ordering) Validate(w *Weights) error {
	_, err := o.Indices(w)

	return err
}

// Indices converts the ordering into row indices of w, so that
// w.ID(idx[k]) == o[k]. It is also the validation routine for orderings.
//
// Errors:
//   - ErrNilMatrix when w is nil.
//   - ErrInvalidOrdering when o is not a permutation of w's identifiers.
//
// Complexity: O(n).
func (o Ordering) Indices(w *Weights) ([]int, error) {
	if w == nil {
		return nil, validatorErrorf("Ordering.Indices", ErrNilMatrix)
	}
	if len(o) != w.n {
		return nil, fmt.Errorf("Ordering.Indices: %d identifiers for %d rows: %w", len(o), w.n, ErrInvalidOrdering)
	}
	idx := make([]int, len(o))
	used := make([]bool, w.n)
	for k, id := range o {
		i, ok := w.index[id]
		if !ok {
			return nil, fmt.Errorf("Ordering.Indices: unknown %q: %w", id, ErrInvalidOrdering)
		}
		if used[i] {
			return nil, fmt.Errorf("Ordering.Indices: repeated %q: %w", id, ErrInvalidOrdering)
		}
		used[i] = true
		idx[k] = i
	}

	return idx, nil
}

// Permute returns a copy of w whose rows and columns follow o: row k of the
// result is identifier o[k]. Used to present a matrix in hierarchy order.
//
// Errors: ErrNilMatrix, ErrInvalidOrdering.
// Complexity: O(n²).
func (o Ordering) Permute(w *Weights) (*Weights, error) {
	idx, err := o.Indices(w)
	if err != nil {
		return nil, err
	}
	n := len(idx)
	data := make([]float64, n*n)
	for a, i := range idx {
		for b, j := range idx {
			data[a*n+b] = w.data[i*n+j]
		}
	}

	return newWeights(o, data), nil
}
