// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for domain validation shared by the
//     constructors and by the algorithm packages.
//   - Return plain sentinels wrapped with a validator tag so call sites can
//     wrap uniformly and callers can match with errors.Is.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(w *Weights) error {
	if w == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateIDs checks that every identifier is non-empty and unique.
// An empty domain is valid (n = 0).
//
// Errors: ErrEmptyID, ErrDuplicateID.
// Complexity: O(n).
func ValidateIDs(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return validatorErrorf("ValidateIDs", fmt.Errorf("position %d: %w", i, ErrEmptyID))
		}
		if _, dup := seen[id]; dup {
			return validatorErrorf("ValidateIDs", fmt.Errorf("%q: %w", id, ErrDuplicateID))
		}
		seen[id] = struct{}{}
	}

	return nil
}

// ValidateOrdering checks that order is a permutation of w's identifiers.
//
// Errors: ErrNilMatrix, ErrInvalidOrdering (wrong length, unknown or repeated ID).
// Complexity: O(n).
func ValidateOrdering(w *Weights, order Ordering) error {
	return order.Validate(w)
}
