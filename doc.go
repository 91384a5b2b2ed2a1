// Package nzflow constructs nowhere-zero 5-flows on bridgeless cubic
// graphs via integer flow lattices.
//
// 🚀 What is nzflow?
//
//	A deterministic, seed-driven toolkit that brings together:
//		• Graph primitives: immutable cubic graphs, named families, random generation
//		• Structural checks: cubicity, connectivity, bridge detection, perfect matchings
//		• Bidirections: signed incidence matrices under pluggable sign policies
//		• Flow lattices: exact rational kernels and spanning-tree cycle bases
//		• Basis reduction: Lenstra–Lenstra–Lovász with δ = 3/4
//		• Flow search: bounded enumeration and randomized backtracking
//		• Verification: conservation, nowhere-zero, magnitude bound
//
// The pipeline runs in four stages. A bridgeless cubic graph receives a
// bidirection: each edge end gets a sign, turning the incidence matrix
// B into a signed one. The integer kernel of B is the flow lattice;
// every lattice vector conserves at all vertices by construction. An
// LLL-reduced basis keeps the vectors short, and a bounded search over
// small integer coefficient combinations finds a vector with no zero
// entry and all magnitudes at most 4. Not every bidirection admits one,
// so the orchestrator retries with fresh sign assignments.
//
// Everything is organized under five subpackages plus a CLI:
//
//	cubic/    — immutable cubic graphs, structural checks, matchings, generators
//	bidirect/ — sign assignment and the signed incidence matrix
//	lattice/  — kernel and cycle-basis construction, LLL reduction
//	fiveflow/ — coefficient search strategies and the Find orchestrator
//	verify/   — final acceptance checks on candidate flows
//	cmd/nzflow — command-line driver: solve one graph or survey batches
//
// Determinism: all randomness is seed-driven with a fixed default
// stream for seed zero; the same inputs and seeds reproduce identical
// flows on any platform. No goroutines are spawned internally; callers
// may run independently seeded searches in parallel.
package nzflow
