// Perfect-matching search and 2-factor validation.
//
// Bridgeless cubic graphs always carry a perfect matching (Petersen's
// theorem), and removing one leaves a 2-factor: a spanning subgraph in
// which every vertex keeps degree 2, i.e. a disjoint union of cycles.
// The bidirection assigner leans on both facts, so this file provides a
// seeded exact search plus the complementary 2-factor check.

package cubic

import "fmt"

// maxMatchingSteps bounds the backtracking search; on the small graphs
// this engine targets the bound is never approached, it exists so a
// violated precondition fails with a sentinel instead of spinning.
const maxMatchingSteps = 1 << 20

// PerfectMatching returns the edge indices of a perfect matching,
// ascending by first covered vertex. The search is exact backtracking
// with a seeded shuffle of each vertex's candidate edges, so distinct
// seeds explore distinct matchings while a fixed seed reproduces one.
//
// Failure: ErrNoPerfectMatching when the step budget is exhausted or no
// matching exists (odd component, precondition violation).
//
// Complexity: exponential worst case, near-linear in practice on
// bridgeless cubic inputs.
func PerfectMatching(g *Graph, seed int64) ([]int, error) {
	if g.n%2 != 0 {
		return nil, fmt.Errorf("PerfectMatching: odd vertex count %d: %w", g.n, ErrNoPerfectMatching)
	}

	rng := rngFromSeed(seed)

	// Per-vertex candidate order, shuffled once up front for determinism.
	order := make([][]int, g.n)
	for v := 0; v < g.n; v++ {
		order[v] = g.IncidentEdges(v)
		rng.Shuffle(len(order[v]), func(i, j int) {
			order[v][i], order[v][j] = order[v][j], order[v][i]
		})
	}

	matchedEdge := make([]int, g.n) // vertex → matched edge index, -1 = free
	for v := range matchedEdge {
		matchedEdge[v] = -1
	}

	var (
		chosen []int
		steps  int
	)

	// match covers vertices v.. by always extending from the lowest free
	// vertex; edge choice order is the shuffled candidate list.
	var match func(v int) bool
	match = func(v int) bool {
		for v < g.n && matchedEdge[v] >= 0 {
			v++
		}
		if v == g.n {
			return true
		}
		if steps >= maxMatchingSteps {
			return false
		}
		steps++

		for _, e := range order[v] {
			w := g.Other(e, v)
			if matchedEdge[w] >= 0 {
				continue
			}
			matchedEdge[v], matchedEdge[w] = e, e
			chosen = append(chosen, e)
			if match(v + 1) {
				return true
			}
			chosen = chosen[:len(chosen)-1]
			matchedEdge[v], matchedEdge[w] = -1, -1
		}

		return false
	}

	if !match(0) {
		return nil, fmt.Errorf("PerfectMatching: exhausted after %d steps: %w", steps, ErrNoPerfectMatching)
	}

	return chosen, nil
}

// IsValid2Factor reports whether removing the given matching (edge
// indices) leaves a spanning subgraph in which every vertex has degree
// exactly 2. For cubic graphs with a true perfect matching this always
// holds; the check exists as a guard for caller-supplied matchings.
//
// Complexity: O(V + E).
func IsValid2Factor(g *Graph, matching []int) bool {
	inMatching := make([]bool, len(g.edges))
	for _, e := range matching {
		if e < 0 || e >= len(g.edges) {
			return false
		}
		if inMatching[e] {
			return false // duplicate index
		}
		inMatching[e] = true
	}

	for v := 0; v < g.n; v++ {
		deg := 0
		for _, e := range g.incident[v] {
			if !inMatching[e] {
				deg++
			}
		}
		if deg != 2 {
			return false
		}
	}

	return true
}
