package bidirect

import (
	"fmt"
	"math/rand"

	"github.com/lattark/nzflow/cubic"
)

// defaultSeed mirrors the cubic package's zero-seed policy.
const defaultSeed int64 = 1

// Assignment is an immutable bidirection of a cubic graph: one sign per
// edge endpoint. It owns the signed incidence structure; consumers read
// it through Sign, IncidenceRow, and Matrix.
type Assignment struct {
	g     *cubic.Graph
	signU []int // sign at Edge.U, per edge, in {+1,−1}
	signV []int // sign at Edge.V, per edge, in {+1,−1}
}

// Graph returns the underlying graph. Complexity: O(1).
func (a *Assignment) Graph() *cubic.Graph { return a.g }

// Sign returns σ(v,e): the sign of edge e's endpoint at vertex v, or 0
// when v is not an endpoint of e. Complexity: O(1).
func (a *Assignment) Sign(v, e int) int {
	ed := a.g.Edge(e)
	switch v {
	case ed.U:
		return a.signU[e]
	case ed.V:
		return a.signV[e]
	default:
		return 0
	}
}

// IncidenceRow returns row v of the signed incidence matrix as a fresh
// slice of length |E|. Complexity: O(E).
func (a *Assignment) IncidenceRow(v int) []int {
	row := make([]int, a.g.EdgeCount())
	for _, e := range a.g.IncidentEdges(v) {
		row[e] = a.Sign(v, e)
	}

	return row
}

// Matrix returns the dense |V|×|E| signed incidence matrix B.
// Each column carries exactly two non-zero entries, one per endpoint.
// Complexity: O(V·E).
func (a *Assignment) Matrix() [][]int {
	b := make([][]int, a.g.VertexCount())
	for v := range b {
		b[v] = a.IncidenceRow(v)
	}

	return b
}

// Assign produces a bidirection for g under opts.
//
// Stage 1 (Gate): verify the engine's structural preconditions — cubic,
// connected, bridgeless — and obtain a perfect matching (caller-supplied
// or searched with the seed). Any violation is fatal: an
// ErrStructural-wrapped sentinel, never retried here.
//
// Stage 2 (Sign): walk edges in index order and draw each edge's
// endpoint-sign pattern from the policy:
//
//	oriented:  (+1,−1) or (−1,+1), direction by coin flip;
//	same-sign: (+1,+1) or (−1,−1), sign by coin flip.
//
// PolicyMatchingOriented forces the oriented pattern on matching edges;
// PolicyRandom coin-flips the pattern choice for every edge.
//
// Complexity: O(V + E) plus the matching search when not supplied.
func Assign(g *cubic.Graph, opts Options) (*Assignment, error) {
	// Stage 1: structural gate, cheapest checks first.
	if g == nil {
		return nil, fmt.Errorf("Assign: %w", ErrNilGraph)
	}
	if !cubic.IsCubic(g) {
		return nil, fmt.Errorf("Assign: %w", ErrNotCubic)
	}
	if !cubic.IsConnected(g) {
		return nil, fmt.Errorf("Assign: %w", ErrDisconnected)
	}
	if bridges := cubic.Bridges(g); len(bridges) > 0 {
		return nil, fmt.Errorf("Assign: edge %d: %w", bridges[0], ErrBridgeDetected)
	}

	matching := opts.Matching
	if matching == nil && opts.Policy == PolicyMatchingOriented {
		m, err := cubic.PerfectMatching(g, opts.Seed)
		if err != nil {
			// Matching failure on a bridgeless cubic graph contradicts
			// Petersen's theorem; surface it as a structural failure.
			return nil, fmt.Errorf("Assign: %w: %w", ErrStructural, err)
		}
		matching = m
	}
	if matching != nil && !cubic.IsValid2Factor(g, matching) {
		return nil, fmt.Errorf("Assign: %w", ErrBadMatching)
	}

	inMatching := make([]bool, g.EdgeCount())
	for _, e := range matching {
		inMatching[e] = true
	}

	// Stage 2: draw signs edge by edge, fixed order, one RNG stream.
	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	a := &Assignment{
		g:     g,
		signU: make([]int, g.EdgeCount()),
		signV: make([]int, g.EdgeCount()),
	}
	for e := 0; e < g.EdgeCount(); e++ {
		oriented := false
		switch opts.Policy {
		case PolicyMatchingOriented:
			oriented = inMatching[e] || rng.Intn(2) == 0
		case PolicyRandom:
			oriented = rng.Intn(2) == 0
		}

		if oriented {
			if rng.Intn(2) == 0 {
				a.signU[e], a.signV[e] = +1, -1
			} else {
				a.signU[e], a.signV[e] = -1, +1
			}
			continue
		}
		s := +1
		if rng.Intn(2) == 0 {
			s = -1
		}
		a.signU[e], a.signV[e] = s, s
	}

	return a, nil
}
