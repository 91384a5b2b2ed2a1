// Structural checks guarding the flow engine's preconditions: regularity,
// connectivity, and bridge detection. All checks are read-only and
// deterministic; none of them mutate the graph.

package cubic

import "sort"

// IsCubic reports whether every vertex has degree exactly 3.
// Complexity: O(V).
func IsCubic(g *Graph) bool {
	for v := 0; v < g.n; v++ {
		if len(g.incident[v]) != cubicDegree {
			return false
		}
	}

	return true
}

// IsConnected reports whether the graph is connected (single component).
// Empty graphs and the one-vertex graph count as connected.
//
// Uses an iterative DFS over edge indices with a fixed visit order.
// Complexity: O(V + E).
func IsConnected(g *Graph) bool {
	if g.n <= 1 {
		return true
	}

	visited := make([]bool, g.n)
	stack := make([]int, 0, g.n)
	stack = append(stack, 0)
	visited[0] = true
	reached := 1

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.incident[v] {
			w := g.Other(e, v)
			if !visited[w] {
				visited[w] = true
				reached++
				stack = append(stack, w)
			}
		}
	}

	return reached == g.n
}

// Bridges returns the indices of all bridge edges (edges whose removal
// disconnects the graph), ascending. A graph is usable by the flow engine
// only when this list is empty.
//
// Iterative Tarjan low-link over an explicit stack; the tree edge back to
// the parent is skipped by edge index, so parallel-edge-free inputs are
// handled exactly.
//
// Complexity: O(V + E) time, O(V + E) space.
func Bridges(g *Graph) []int {
	disc := make([]int, g.n)  // discovery time, 0 = unvisited
	low := make([]int, g.n)   // low-link values
	parentEdge := make([]int, g.n)
	for v := range parentEdge {
		parentEdge[v] = -1
	}

	var bridges []int
	timer := 0

	// frame tracks an in-progress DFS visit: vertex and next incident slot.
	type frame struct {
		v, next int
	}

	for root := 0; root < g.n; root++ {
		if disc[root] != 0 {
			continue
		}
		timer++
		disc[root], low[root] = timer, timer
		stack := []frame{{v: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g.incident[top.v]) {
				e := g.incident[top.v][top.next]
				top.next++
				if e == parentEdge[top.v] {
					continue // skip the edge we came in on
				}
				w := g.Other(e, top.v)
				if disc[w] != 0 {
					// Back edge: pull w's discovery time into the low-link.
					if disc[w] < low[top.v] {
						low[top.v] = disc[w]
					}
					continue
				}
				timer++
				disc[w], low[w] = timer, timer
				parentEdge[w] = e
				stack = append(stack, frame{v: w})
				continue
			}

			// Finished v: propagate its low-link to the parent and test
			// the tree edge for bridgehood.
			stack = stack[:len(stack)-1]
			v := top.v
			if len(stack) == 0 {
				continue
			}
			p := stack[len(stack)-1].v
			if low[v] < low[p] {
				low[p] = low[v]
			}
			if low[v] > disc[p] {
				bridges = append(bridges, parentEdge[v])
			}
		}
	}

	sort.Ints(bridges)

	return bridges
}

// IsBridgeless reports whether the graph contains no bridge.
// Complexity: O(V + E).
func IsBridgeless(g *Graph) bool { return len(Bridges(g)) == 0 }
