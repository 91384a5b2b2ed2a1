// Package lattice builds and reduces integer bases of the flow lattice:
// the kernel of a bidirected graph's signed incidence matrix B over the
// integers. Every basis vector g satisfies B·g = 0 exactly, so any
// integer combination of basis vectors is automatically a conservative
// flow; the search engine relies on this contract implicitly.
//
// Two interchangeable build strategies:
//
//   - StrategyExactKernel (default): rational Gaussian elimination over
//     math/big.Rat computes ker(B) exactly; denominators are cleared and
//     entries reduced to a primitive integer vector per kernel direction.
//     The result spans ker_ℤ(B) in full.
//   - StrategyCycleBasis: a BFS spanning tree yields one fundamental
//     cycle per non-tree edge. Cycles whose signs close up (balanced)
//     become ±1 circulation vectors directly; unbalanced cycles are
//     paired through tree paths into barbell vectors with ±2 path
//     entries. Cheaper than exact elimination, entries may be larger.
//
// Reduce applies Lenstra–Lenstra–Lovász reduction (δ = 3/4 by default)
// to shorten basis vectors. Reduction performs unimodular row operations
// only, so the spanned lattice is unchanged: it is purely a
// search-yield optimization and may be skipped.
//
// Every produced vector is re-verified against B at build time; a
// violation reports ErrMalformedBasis, which indicates a bug in the
// builder rather than a property of the input.
package lattice
