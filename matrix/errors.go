// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with call-site context via %w); tests check them with errors.Is.
// No exported function panics on user-supplied data.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context helps; callers still
// match with errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Weights was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil weights")

	// ErrNonSquare signals that the row count, a row length, or the data length
	// does not match the number of identifiers.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyID signals an empty identifier string.
	ErrEmptyID = errors.New("matrix: empty identifier")

	// ErrDuplicateID signals that the same identifier appears twice in the domain.
	ErrDuplicateID = errors.New("matrix: duplicate identifier")

	// ErrUnknownID indicates that a referenced identifier is not in the domain.
	ErrUnknownID = errors.New("matrix: unknown identifier")

	// ErrOutOfRange indicates that a row or column index is outside [0, Len()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidOrdering signals an ordering that is not a permutation of the
	// matrix identifiers (wrong length, unknown or repeated ID).
	ErrInvalidOrdering = errors.New("matrix: ordering is not a permutation of the identifiers")

	// ErrInvalidWeight is returned under WithStrictWeights for negative or ±Inf cells.
	ErrInvalidWeight = errors.New("matrix: invalid weight")
)
