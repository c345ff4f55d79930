// Package fas orders the identifiers of a weighted directed graph so that as
// little weight as possible points "backwards", using the Eades–Lin–Smyth
// heuristic for the feedback arc set problem.
//
// What:
//
//   - A feedback arc set is a set of edges whose removal makes a directed
//     graph acyclic. Given a total ordering of the vertices, the edges going
//     from a later to an earlier position form such a set.
//   - Eades computes an ordering whose backward edges approximate a minimum
//     feedback arc set. The guarantee is |FAS| < |E|/2 − |V|/6 and the running
//     time is linear in the number of edges (O(V²) here, since the input is a
//     dense matrix).
//   - FeedbackArcs lists the backward edges of any ordering.
//
// Why:
//
//   - On a dominance matrix (W[i][j] = "i wins against j"), the ordering puts
//     dominant individuals first and concentrates weight above the diagonal,
//     which is what the decompose package measures.
//
// Algorithm:
//
//  1. Degrees and strengths over edges with W[i][j] > max_noedge_value.
//  2. Isolated vertices go to the bottom and are removed.
//  3. Sources (no in-edges) are queued by descending out−in strength, sinks
//     (no out-edges) by ascending out−in strength.
//  4. Until every vertex is placed: drain sources to the front, drain sinks to
//     the back, and when both queues are empty remove the vertex with the
//     largest out−in strength as a pseudo-source.
//
// Tie-breaking: queues are FIFO and the initial sort is stable, so ties keep
// matrix order. Results are deterministic for a given matrix.
//
// Errors:
//
//   - matrix.ErrNilMatrix        nil input matrix
//   - matrix.ErrInvalidOrdering  FeedbackArcs given a non-permutation
//
// Reference: Eades P, Lin X, Smyth WF (1993) A fast and effective heuristic
// for the feedback arc set problem. Information Processing Letters 47:319-323.
package fas
