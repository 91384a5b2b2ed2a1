// Package fiveflow searches for nowhere-zero 5-flows on bridgeless
// cubic graphs.
//
// The pipeline: assign a bidirection to the graph (package bidirect),
// build an integer basis of the flow lattice (package lattice), then
// search small integer coefficient combinations of the basis vectors
// until one passes verification (package verify). Every combination of
// basis vectors conserves automatically, so the search only has to
// satisfy nowhere-zero and the magnitude bound |f(e)| ≤ 4.
//
// Two search strategies:
//
//   - StrategyBoundedEnum (default): exhaustive enumeration in rings of
//     growing coefficient bound A = 1..MaxBound. At level A exactly the
//     vectors with max|aᵢ| = A are visited, smallest total magnitude
//     first. Seed-independent: the same assignment and basis always
//     yield the same flow.
//   - StrategyBacktracking: depth-first assignment of one coefficient
//     per basis vector with per-depth shuffled candidate order, pruning
//     as soon as a fully determined edge carries zero or out-of-range
//     flow. Deterministic per seed.
//
// Search runs one strategy over a fixed assignment and basis. Find is
// the orchestrator: it retries with fresh sign assignments (derived
// seeds, up to MaxAttempts) because not every bidirection of a graph
// admits a flow within the bound.
//
// Determinism: all randomness flows from Options.Seed through the same
// zero-means-default policy used across the module; no time-based
// sources. A single Find is single-threaded; independently seeded Finds
// may run in parallel.
package fiveflow
