// SPDX-License-Identifier: MIT

package dominance

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultMaxIterations caps the BBS fixed-point iteration.
	DefaultMaxIterations = 30

	// DefaultTolerance is the BBS convergence limit on the second-difference
	// error metric.
	DefaultTolerance = 1e-6

	panicMaxIterations = "dominance: WithMaxIterations: n must be ≥ 1"
	panicTolerance     = "dominance: WithTolerance: tol must be > 0"
)

// Stats reports diagnostics of the last scoring call it was passed to.
type Stats struct {
	// SkippedPairs counts ordered off-diagonal pairs excluded for NaN.
	SkippedPairs int

	// Iterations, Residual and Converged are filled by BBS only.
	Iterations int
	Residual   float64
	Converged  bool
}

// Option configures the scoring functions.
type Option func(*options)

type options struct {
	maxIter int
	tol     float64
	mode    Mode
	log     zerolog.Logger
	stats   *Stats
}

// WithMaxIterations sets the BBS iteration cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterations)
	}

	return func(o *options) { o.maxIter = n }
}

// WithTolerance sets the BBS convergence limit. Panics unless tol > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(panicTolerance)
	}

	return func(o *options) { o.tol = tol }
}

// WithDavidsMode selects the David's Score mode used by Compute for
// MethodDavids. DavidsScore itself takes the mode as an argument.
func WithDavidsMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithLogger installs a logger for missing-data and convergence warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithStats makes the call overwrite *s with its diagnostics.
func WithStats(s *Stats) Option {
	return func(o *options) { o.stats = s }
}

func gatherOptions(opts ...Option) options {
	o := options{
		maxIter: DefaultMaxIterations,
		tol:     DefaultTolerance,
		mode:    MaxMinNormalized,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// report stores s into the caller's Stats, if any.
func (o *options) report(s Stats) {
	if o.stats != nil {
		*o.stats = s
	}
}
