package cubic

// Named bridgeless cubic graphs used as canonical engine inputs and test
// fixtures. All constructors are deterministic and allocate a fresh Graph.

// K4 returns the complete graph on 4 vertices: the smallest cubic graph.
// |V|=4, |E|=6, bridgeless. Complexity: O(1).
func K4() *Graph {
	g, err := New(4, []Edge{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	})
	if err != nil {
		panic("cubic: K4 construction: " + err.Error())
	}

	return g
}

// K33 returns the complete bipartite graph K3,3 with parts {0,1,2} and
// {3,4,5}. |V|=6, |E|=9, bridgeless. Complexity: O(1).
func K33() *Graph {
	edges := make([]Edge, 0, 9)
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			edges = append(edges, Edge{u, v})
		}
	}
	g, err := New(6, edges)
	if err != nil {
		panic("cubic: K33 construction: " + err.Error())
	}

	return g
}

// Prism returns the triangular prism (K3 x K2): two triangles 0-1-2 and
// 3-4-5 joined by the rungs i—i+3. |V|=6, |E|=9, bridgeless.
// Complexity: O(1).
func Prism() *Graph {
	g, err := New(6, []Edge{
		{0, 1}, {1, 2}, {0, 2}, // top triangle
		{3, 4}, {4, 5}, {3, 5}, // bottom triangle
		{0, 3}, {1, 4}, {2, 5}, // rungs
	})
	if err != nil {
		panic("cubic: Prism construction: " + err.Error())
	}

	return g
}

// Petersen returns the Petersen graph: outer 5-cycle 0..4, inner pentagram
// 5..9, spokes i—i+5. |V|=10, |E|=15, bridgeless, girth 5.
// Complexity: O(1).
func Petersen() *Graph {
	edges := make([]Edge, 0, 15)
	for i := 0; i < 5; i++ {
		edges = append(edges, Edge{i, (i + 1) % 5})         // outer cycle
		edges = append(edges, Edge{i, i + 5})               // spoke
		edges = append(edges, Edge{i + 5, (i+2)%5 + 5}) // inner pentagram
	}
	g, err := New(10, edges)
	if err != nil {
		panic("cubic: Petersen construction: " + err.Error())
	}

	return g
}
