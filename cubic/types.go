package cubic

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction and the structural suppliers.
var (
	// ErrVertexRange indicates an edge endpoint outside 0..n-1.
	ErrVertexRange = errors.New("cubic: edge endpoint out of vertex range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("cubic: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge in the input edge list.
	ErrDuplicateEdge = errors.New("cubic: duplicate edge not allowed")

	// ErrTooFewVertices indicates a generator request below the cubic minimum.
	ErrTooFewVertices = errors.New("cubic: need at least 4 vertices")

	// ErrOddVertexCount indicates an odd n; 3-regular graphs need 3n even.
	ErrOddVertexCount = errors.New("cubic: vertex count must be even")

	// ErrConstructFailed indicates the random generator ran out of attempts.
	ErrConstructFailed = errors.New("cubic: random construction failed")

	// ErrNoPerfectMatching indicates the matching search exhausted its budget.
	ErrNoPerfectMatching = errors.New("cubic: no perfect matching found")
)

// cubicDegree is the vertex degree of every graph this module targets.
const cubicDegree = 3

// Edge is an undirected edge between vertices U and V.
// New normalizes every edge so that U < V.
type Edge struct {
	U, V int
}

// Graph is an immutable simple undirected graph on vertices 0..n-1.
// All fields are fixed at construction time; methods never mutate.
type Graph struct {
	n        int
	edges    []Edge
	incident [][]int // vertex → indices into edges, ascending
}

// New builds a Graph from a vertex count and an edge list.
// Edges are normalized (U < V) and kept in input order.
//
// Validation is limited to simpleness: endpoints in range, no loops,
// no duplicates. Cubic/bridgeless properties are NOT checked here.
//
// Complexity: O(V + E).
func New(n int, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooFewVertices)
	}

	g := &Graph{
		n:        n,
		edges:    make([]Edge, len(edges)),
		incident: make([][]int, n),
	}

	seen := make(map[Edge]struct{}, len(edges))
	for i, e := range edges {
		// Normalize endpoint order before any checks.
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		if e.U < 0 || e.V >= n {
			return nil, fmt.Errorf("New: edge %d (%d,%d): %w", i, e.U, e.V, ErrVertexRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("New: edge %d (%d,%d): %w", i, e.U, e.V, ErrSelfLoop)
		}
		if _, dup := seen[e]; dup {
			return nil, fmt.Errorf("New: edge %d (%d,%d): %w", i, e.U, e.V, ErrDuplicateEdge)
		}
		seen[e] = struct{}{}

		g.edges[i] = e
		g.incident[e.U] = append(g.incident[e.U], i)
		g.incident[e.V] = append(g.incident[e.V], i)
	}

	// Keep per-vertex incidence in ascending edge order for determinism.
	for v := range g.incident {
		sort.Ints(g.incident[v])
	}

	return g, nil
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns |E|. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the ordered edge list. Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the endpoints of edge index e.
// Panics on an out-of-range index (developer error, not user error).
func (g *Graph) Edge(e int) Edge {
	return g.edges[e]
}

// IncidentEdges returns the edge indices incident to v, ascending.
// The slice is freshly allocated; callers may keep it.
//
// Complexity: O(1) amortized (degree is bounded by 3 for cubic inputs).
func (g *Graph) IncidentEdges(v int) []int {
	out := make([]int, len(g.incident[v]))
	copy(out, g.incident[v])

	return out
}

// Degree returns the degree of vertex v. Complexity: O(1).
func (g *Graph) Degree(v int) int { return len(g.incident[v]) }

// Other returns the endpoint of edge e that is not v.
// Panics if v is not an endpoint of e (developer error).
func (g *Graph) Other(e, v int) int {
	ed := g.edges[e]
	switch v {
	case ed.U:
		return ed.V
	case ed.V:
		return ed.U
	default:
		panic("cubic: vertex not incident to edge")
	}
}
