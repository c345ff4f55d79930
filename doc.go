// Package dominance is an in-memory engine for dominance hierarchies: it
// takes a matrix of directed interaction counts among individuals and tells
// you who is on top, how consistent the hierarchy is, and how each individual
// scores.
//
// What is inside?
//
//	matrix/     Weights (ID-indexed, row-major, NaN-aware) and Ordering
//	fas/        Eades feedback-arc-set ordering and backward arcs
//	decompose/  Common/Dominant split, s_index, transitivity
//	dominance/  BBS, David's Score family, Lindquist, row sum,
//	            win/lose above average, method registry
//	hierarchy/  YAML config, single-matrix report, parallel batch
//
// Quick example:
//
//	      A
//	   10 ↓
//	      B      W[A][B] = 10, W[B][C] = 10
//	   10 ↓
//	      C
//
//	order → [A B C], transitivity → 1, Lindquist → {A:1 B:0.5 C:0}
//
// Every algorithm is a pure function over an immutable matrix; missing cells
// (NaN) are skipped, never fatal. Logging is opt-in through zerolog.
//
// See examples/ for a runnable walkthrough.
package dominance
