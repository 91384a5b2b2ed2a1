// Fundamental-cycle circulation basis.
//
// A BFS spanning tree rooted at vertex 0 assigns every non-tree edge a
// unique fundamental cycle. A circulation supported on a cycle exists
// exactly when the endpoint signs "close up" around it (the cycle is
// balanced); propagating a unit value around the cycle then yields ±1
// entries. An unbalanced cycle carries no circulation on its own: its
// propagation returns with the opposite sign, leaving an excess of ±2 at
// the anchor vertex. Two unbalanced cycles cancel each other through the
// tree path between their anchors (carrying ±2 per path edge), forming a
// barbell vector. With u unbalanced fundamental cycles, the first one is
// paired against each of the remaining u−1, which restores a full basis
// of the circulation lattice: (β−u) balanced vectors + (u−1) barbells.

package lattice

import (
	"github.com/lattark/nzflow/bidirect"
	"github.com/lattark/nzflow/cubic"
)

// spanningTree holds the BFS tree used for cycle construction.
type spanningTree struct {
	graph      *cubic.Graph
	parent     []int // parent vertex, -1 at root
	parentEdge []int // edge to parent, -1 at root
	depth      []int
	treeEdge   []bool // per edge index
}

// newSpanningTree builds a BFS tree from vertex 0 with a fixed visit
// order. The assignment gate guarantees connectivity.
// Complexity: O(V + E).
func newSpanningTree(asg *bidirect.Assignment) *spanningTree {
	g := asg.Graph()
	n := g.VertexCount()
	t := &spanningTree{
		graph:      g,
		parent:     make([]int, n),
		parentEdge: make([]int, n),
		depth:      make([]int, n),
		treeEdge:   make([]bool, g.EdgeCount()),
	}
	visited := make([]bool, n)
	for v := range t.parent {
		t.parent[v], t.parentEdge[v] = -1, -1
	}

	queue := make([]int, 0, n)
	queue = append(queue, 0)
	visited[0] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.IncidentEdges(v) {
			w := g.Other(e, v)
			if visited[w] {
				continue
			}
			visited[w] = true
			t.parent[w], t.parentEdge[w] = v, e
			t.depth[w] = t.depth[v] + 1
			t.treeEdge[e] = true
			queue = append(queue, w)
		}
	}

	return t
}

// treePath returns the tree path from a to b as parallel vertex and edge
// sequences: vertices a=p0..pm=b, edges f1..fm with f_i joining p_{i-1}
// and p_i. Complexity: O(depth).
func (t *spanningTree) treePath(a, b int) (verts, edges []int) {
	var up, down []int // edges climbed from a, and from b
	x, y := a, b
	for t.depth[x] > t.depth[y] {
		up = append(up, t.parentEdge[x])
		x = t.parent[x]
	}
	for t.depth[y] > t.depth[x] {
		down = append(down, t.parentEdge[y])
		y = t.parent[y]
	}
	for x != y {
		up = append(up, t.parentEdge[x])
		down = append(down, t.parentEdge[y])
		x, y = t.parent[x], t.parent[y]
	}

	edges = make([]int, 0, len(up)+len(down))
	edges = append(edges, up...)
	for i := len(down) - 1; i >= 0; i-- {
		edges = append(edges, down[i])
	}

	verts = make([]int, 0, len(edges)+1)
	verts = append(verts, a)
	cur := a
	for _, e := range edges {
		cur = t.graph.Other(e, cur)
		verts = append(verts, cur)
	}

	return verts, edges
}

// chain is a walk with propagated edge values: conservation holds at
// every interior vertex; the anchor (first vertex) may carry an excess.
type chain struct {
	edges  []int
	values []int64
	anchor int
	excess int64 // σ(anchor, first)·t_first + σ(anchor, last)·t_last for cycles
}

// cycleBasis builds the circulation basis described in the file header.
// Complexity: O(β·V) plus tree construction.
func cycleBasis(asg *bidirect.Assignment) ([][]int64, error) {
	g := asg.Graph()
	t := newSpanningTree(asg)

	var (
		balanced   []chain
		unbalanced []chain
	)
	for e := 0; e < g.EdgeCount(); e++ {
		if t.treeEdge[e] {
			continue
		}
		c := fundamentalCycle(asg, t, e)
		if c.excess == 0 {
			balanced = append(balanced, c)
		} else {
			unbalanced = append(unbalanced, c)
		}
	}

	vecs := make([][]int64, 0, len(balanced)+max(len(unbalanced)-1, 0))
	for _, c := range balanced {
		vecs = append(vecs, c.toVector(g.EdgeCount()))
	}
	for j := 1; j < len(unbalanced); j++ {
		vecs = append(vecs, barbell(asg, t, unbalanced[0], unbalanced[j]))
	}

	return vecs, nil
}

// fundamentalCycle walks the unique cycle closed by non-tree edge e,
// anchored at the tree-path start, propagating a unit value so that
// conservation holds at every interior vertex. The anchor excess is 0
// for balanced cycles and ±2 for unbalanced ones.
func fundamentalCycle(asg *bidirect.Assignment, t *spanningTree, e int) chain {
	ed := asg.Graph().Edge(e)
	verts, edges := t.treePath(ed.U, ed.V)

	// Close the walk with e itself: anchor = ed.U, last edge returns to it.
	edges = append(edges, e)
	verts = append(verts, ed.U)

	values := propagate(asg, verts, edges, 1)
	anchor := ed.U
	excess := int64(asg.Sign(anchor, edges[0]))*values[0] +
		int64(asg.Sign(anchor, edges[len(edges)-1]))*values[len(values)-1]

	return chain{edges: edges, values: values, anchor: anchor, excess: excess}
}

// propagate assigns start to the first edge and extends along the walk:
// at each interior vertex p the incoming and outgoing contributions must
// cancel, so t_next = −σ(p, prev)·σ(p, next)·t_prev.
func propagate(asg *bidirect.Assignment, verts, edges []int, start int64) []int64 {
	values := make([]int64, len(edges))
	values[0] = start
	for i := 1; i < len(edges); i++ {
		p := verts[i] // vertex between edges i-1 and i
		values[i] = -int64(asg.Sign(p, edges[i-1])) * int64(asg.Sign(p, edges[i])) * values[i-1]
	}

	return values
}

// barbell cancels the excesses of two unbalanced cycles through the tree
// path between their anchors: cycle entries stay ±1, path entries are
// ±2, and overlapping edges accumulate. Conservation of the sum follows
// from per-chain conservation plus pairwise excess cancellation at the
// two anchors.
func barbell(asg *bidirect.Assignment, t *spanningTree, c1, c2 chain) []int64 {
	out := make([]int64, asg.Graph().EdgeCount())
	for i, e := range c1.edges {
		out[e] += c1.values[i]
	}

	// Sign with which c2 enters the sum: chosen so its scaled excess
	// cancels whatever arrives at its anchor.
	var deliver int64
	if c1.anchor == c2.anchor {
		deliver = c1.excess
	} else {
		verts, edges := t.treePath(c1.anchor, c2.anchor)
		// Path start value cancels c1's excess at its anchor.
		start := -c1.excess * int64(asg.Sign(c1.anchor, edges[0]))
		values := propagate(asg, verts, edges, start)
		for i, e := range edges {
			out[e] += values[i]
		}
		deliver = int64(asg.Sign(c2.anchor, edges[len(edges)-1])) * values[len(values)-1]
	}

	scale := -deliver / c2.excess // ±1 by construction
	for i, e := range c2.edges {
		out[e] += scale * c2.values[i]
	}

	return out
}

// toVector expands a balanced chain into a dense vector of length m.
func (c chain) toVector(m int) []int64 {
	out := make([]int64, m)
	for i, e := range c.edges {
		out[e] += c.values[i]
	}

	return out
}
