// SPDX-License-Identifier: MIT

package dominance

import (
	"errors"

	"github.com/katalvlaran/dominance/matrix"
)

var (
	// ErrNilMatrix is matrix.ErrNilMatrix, re-exported for callers that only
	// import this package.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrInvalidMode indicates a David's Score mode outside 0..4.
	ErrInvalidMode = errors.New("dominance: invalid David's score mode")

	// ErrUnknownMethod indicates a method name that is not registered.
	ErrUnknownMethod = errors.New("dominance: unknown method")
)
