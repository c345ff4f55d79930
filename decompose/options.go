// SPDX-License-Identifier: MIT

package decompose

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dominance/matrix"
)

const (
	// DefaultSIndexPower is the exponent of the s_index sums.
	DefaultSIndexPower = 1

	panicSIndexPower = "decompose: WithSIndexPower: power must be 1 or 2"
	panicNoEdgeNaN   = "decompose: WithNoEdgeValue: threshold must not be NaN"
)

// Option configures CD and Transitivity.
type Option func(*options)

type options struct {
	power  int
	noEdge float64
	log    zerolog.Logger
}

// WithSIndexPower selects p in s_index = Σ C^p / Σ W^p.
// Panics unless p is 1 or 2.
func WithSIndexPower(p int) Option {
	if p != 1 && p != 2 {
		panic(panicSIndexPower)
	}

	return func(o *options) { o.power = p }
}

// WithNoEdgeValue sets the largest weight Transitivity does not count as an
// edge. Panics if v is NaN.
func WithNoEdgeValue(v float64) Option {
	if math.IsNaN(v) {
		panic(panicNoEdgeNaN)
	}

	return func(o *options) { o.noEdge = v }
}

// WithLogger installs a logger for degenerate-input warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

func gatherOptions(opts ...Option) options {
	o := options{
		power:  DefaultSIndexPower,
		noEdge: matrix.DefaultNoEdgeValue,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// visitOrder resolves a nil order to matrix order and validates the rest.
func visitOrder(w *matrix.Weights, order matrix.Ordering) ([]int, error) {
	if order == nil {
		order = matrix.NaturalOrdering(w)
	}

	return order.Indices(w)
}
