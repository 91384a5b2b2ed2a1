// Package bidirect assigns a bidirection to a bridgeless cubic graph:
// every edge endpoint receives an independent sign in {+1, −1}, turning
// the graph into a bidirected graph with a signed incidence matrix B
// (B[v][e] = sign of e's endpoint at v, 0 when not incident).
//
// The assignment is the first stage of the nowhere-zero-flow pipeline.
// Downstream stages compute the integer kernel of B (the flow lattice)
// and search it for a nowhere-zero vector, so the quality of the sign
// pattern directly affects search yield. Two policies are offered:
//
//   - PolicyMatchingOriented (default): edges of a perfect matching are
//     always oriented (+1/−1, direction chosen by the seeded RNG), while
//     the complementary 2-factor edges coin-flip between oriented and
//     same-sign (±1/±1). Matching and non-matching edges thus play
//     distinguishable structural roles in B.
//   - PolicyRandom: every edge independently flips between oriented and
//     same-sign, with no reference to the matching.
//
// Assign gates on the engine's structural preconditions and fails with
// ErrStructural-wrapped sentinels when the input is unusable: not cubic,
// disconnected, bridged, or lacking a perfect matching. These failures
// are fatal for that input and are never retried.
//
// Determinism: identical (graph, seed, policy) inputs produce identical
// assignments.
package bidirect
