// SPDX-License-Identifier: MIT

package dominance

import (
	"fmt"

	"github.com/katalvlaran/dominance/matrix"
)

// Method names a scoring function. The values are the column names used when
// scores are exported next to each other.
type Method string

const (
	MethodDavids           Method = "normDS"
	MethodBBS              Method = "BBS"
	MethodLindquist        Method = "LDI"
	MethodRowSum           Method = "rowsum"
	MethodWinAboveAverage  Method = "winaboveavg"
	MethodLoseAboveAverage Method = "loseaboveavg"
)

var methods = []Method{
	MethodDavids,
	MethodBBS,
	MethodLindquist,
	MethodRowSum,
	MethodWinAboveAverage,
	MethodLoseAboveAverage,
}

// AllMethods returns every registered method in export order.
func AllMethods() []Method {
	return append([]Method(nil), methods...)
}

// ParseMethod returns the method registered under name (case-sensitive).
func ParseMethod(name string) (Method, error) {
	for _, m := range methods {
		if string(m) == name {
			return m, nil
		}
	}

	return "", fmt.Errorf("dominance.ParseMethod: %q: %w", name, ErrUnknownMethod)
}

// Compute runs the scoring function registered under m. MethodDavids uses
// the mode set by WithDavidsMode (MaxMinNormalized by default).
//
// Errors: ErrNilMatrix, ErrUnknownMethod, ErrInvalidMode.
func Compute(m Method, w *matrix.Weights, opts ...Option) (Scores, error) {
	switch m {
	case MethodDavids:
		return DavidsScore(w, gatherOptions(opts...).mode, opts...)
	case MethodBBS:
		return BBS(w, opts...)
	case MethodLindquist:
		return Lindquist(w, opts...)
	case MethodRowSum:
		return RowSum(w, opts...)
	case MethodWinAboveAverage:
		return WinAboveAverage(w, opts...)
	case MethodLoseAboveAverage:
		return LoseAboveAverage(w, opts...)
	}

	return nil, fmt.Errorf("dominance.Compute: %q: %w", string(m), ErrUnknownMethod)
}
