// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and the shared
// edge-threshold default.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Lenient by default: only shape/ID problems are fatal; NaN marks missing
//     data and is always accepted.
//   - Strict weights are opt-in for pipelines that must not carry negative or
//     infinite counts.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNoEdgeValue is the largest weight that is NOT treated as an edge:
	// W[i][j] > DefaultNoEdgeValue ⇒ edge i→j.
	DefaultNoEdgeValue = 0.0

	// DefaultStrictWeights toggles rejection of negative and ±Inf cells.
	DefaultStrictWeights = false
)

// Option mutates constructor options.
type Option func(*Options)

// Options stores the effective constructor configuration.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	strict bool // reject negative and ±Inf off-diagonal cells
}

// WithStrictWeights makes constructors reject negative and ±Inf off-diagonal
// cells with ErrInvalidWeight. NaN (missing data) is still accepted.
//
// Complexity: O(1) to apply; adds an O(n²) scan at construction.
func WithStrictWeights() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions resolves setters over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{strict: DefaultStrictWeights}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
