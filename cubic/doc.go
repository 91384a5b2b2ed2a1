// Package cubic provides the immutable graph model consumed by the
// nowhere-zero-flow engine, together with the structural suppliers and
// checks that surround it: named cubic graphs (K4, K3,3, the triangular
// prism, Petersen), a seeded random cubic generator, connectivity and
// bridge detection, and perfect-matching search.
//
// The model is deliberately minimal. A Graph is a vertex count n plus an
// ordered list of undirected edges over vertices 0..n-1; it carries no
// flow semantics and no mutation API. Construction validates simpleness
// only (no loops, no parallel edges, endpoints in range) — the cubic and
// bridgeless properties are preconditions of the downstream algorithm and
// are checked explicitly by callers via IsCubic / IsBridgeless, not
// enforced here.
//
// Determinism:
//
//	Every randomized operation (RandomCubic, PerfectMatching) takes an
//	explicit int64 seed; seed==0 selects a fixed default stream. The same
//	seed always reproduces the same graph or matching.
//
// Errors:
//
//	ErrVertexRange       - edge endpoint outside 0..n-1.
//	ErrSelfLoop          - edge with equal endpoints.
//	ErrDuplicateEdge     - parallel edge in the input list.
//	ErrTooFewVertices    - generator called with n < 4.
//	ErrOddVertexCount    - generator called with odd n (cubic needs n even).
//	ErrConstructFailed   - generator exhausted its attempt budget.
//	ErrNoPerfectMatching - matching search exhausted its step budget.
package cubic
