// Package cubic_test exercises the graph model, the named constructors,
// the random generator, and the structural checks the flow engine relies
// on. All randomized cases use fixed seeds; reruns must be identical.
package cubic_test

import (
	"testing"

	"github.com/lattark/nzflow/cubic"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Construction validation.
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		edges []cubic.Edge
		want  error
	}{
		{"OutOfRange", 3, []cubic.Edge{{0, 3}}, cubic.ErrVertexRange},
		{"Negative", 3, []cubic.Edge{{-1, 2}}, cubic.ErrVertexRange},
		{"SelfLoop", 3, []cubic.Edge{{1, 1}}, cubic.ErrSelfLoop},
		{"Duplicate", 3, []cubic.Edge{{0, 1}, {1, 0}}, cubic.ErrDuplicateEdge},
		{"NoVertices", 0, nil, cubic.ErrTooFewVertices},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := cubic.New(tc.n, tc.edges)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_NormalizesAndIndexes(t *testing.T) {
	t.Parallel()

	g, err := cubic.New(3, []cubic.Edge{{2, 0}, {1, 0}, {2, 1}})
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())

	// Endpoints normalized U < V, input order preserved.
	require.Equal(t, cubic.Edge{0, 2}, g.Edge(0))
	require.Equal(t, cubic.Edge{0, 1}, g.Edge(1))

	// Incidence lookup covers exactly the touching edges, ascending.
	require.Equal(t, []int{0, 1}, g.IncidentEdges(0))
	require.Equal(t, []int{1, 2}, g.IncidentEdges(1))
	require.Equal(t, 2, g.Degree(2))
	require.Equal(t, 2, g.Other(0, 0))
}

// ------------------------------------------------------------------------
// 2. Named graphs: counts, regularity, bridgelessness.
// ------------------------------------------------------------------------

func TestNamedGraphs_Structure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		g     *cubic.Graph
		wantV int
		wantE int
	}{
		{"K4", cubic.K4(), 4, 6},
		{"K33", cubic.K33(), 6, 9},
		{"Prism", cubic.Prism(), 6, 9},
		{"Petersen", cubic.Petersen(), 10, 15},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.wantV, tc.g.VertexCount())
			require.Equal(t, tc.wantE, tc.g.EdgeCount())
			require.True(t, cubic.IsCubic(tc.g), "named graphs must be 3-regular")
			require.True(t, cubic.IsConnected(tc.g))
			require.True(t, cubic.IsBridgeless(tc.g))
		})
	}
}

// ------------------------------------------------------------------------
// 3. Bridge detection.
// ------------------------------------------------------------------------

// bowtieWithBridge joins two triangles by a single edge: that edge is the
// unique bridge, and the two apex vertices have degree 3.
func bowtieWithBridge(t *testing.T) *cubic.Graph {
	t.Helper()
	g, err := cubic.New(6, []cubic.Edge{
		{0, 1}, {1, 2}, {0, 2}, // left triangle
		{3, 4}, {4, 5}, {3, 5}, // right triangle
		{2, 3}, // bridge
	})
	require.NoError(t, err)

	return g
}

func TestBridges_DetectsSingleBridge(t *testing.T) {
	t.Parallel()

	g := bowtieWithBridge(t)
	bridges := cubic.Bridges(g)
	require.Equal(t, []int{6}, bridges, "only the joining edge is a bridge")
	require.False(t, cubic.IsBridgeless(g))
}

func TestBridges_NoneOnCycle(t *testing.T) {
	t.Parallel()

	g, err := cubic.New(4, []cubic.Edge{{0, 1}, {1, 2}, {2, 3}, {0, 3}})
	require.NoError(t, err)
	require.Empty(t, cubic.Bridges(g))
}

func TestBridges_AllOnPath(t *testing.T) {
	t.Parallel()

	g, err := cubic.New(4, []cubic.Edge{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, cubic.Bridges(g))
}

func TestIsConnected_TwoComponents(t *testing.T) {
	t.Parallel()

	g, err := cubic.New(4, []cubic.Edge{{0, 1}, {2, 3}})
	require.NoError(t, err)
	require.False(t, cubic.IsConnected(g))
}

// ------------------------------------------------------------------------
// 4. Random generator.
// ------------------------------------------------------------------------

func TestRandomCubic_Validation(t *testing.T) {
	t.Parallel()

	_, err := cubic.RandomCubic(2, 1)
	require.ErrorIs(t, err, cubic.ErrTooFewVertices)

	_, err = cubic.RandomCubic(7, 1)
	require.ErrorIs(t, err, cubic.ErrOddVertexCount)
}

func TestRandomCubic_StructureAndDeterminism(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 8, 16} {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := cubic.RandomCubic(n, seed)
			require.NoError(t, err, "n=%d seed=%d", n, seed)
			require.Equal(t, n, g.VertexCount())
			require.Equal(t, n*3/2, g.EdgeCount())
			require.True(t, cubic.IsCubic(g))
			require.True(t, cubic.IsConnected(g))
			require.True(t, cubic.IsBridgeless(g))

			// Same seed, same realization.
			again, err := cubic.RandomCubic(n, seed)
			require.NoError(t, err)
			require.Equal(t, g.Edges(), again.Edges())
		}
	}
}

// ------------------------------------------------------------------------
// 5. Perfect matching and 2-factor.
// ------------------------------------------------------------------------

func TestPerfectMatching_CoversAllVertices(t *testing.T) {
	t.Parallel()

	graphs := map[string]*cubic.Graph{
		"K4":       cubic.K4(),
		"K33":      cubic.K33(),
		"Prism":    cubic.Prism(),
		"Petersen": cubic.Petersen(),
	}

	for name, g := range graphs {
		g := g
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m, err := cubic.PerfectMatching(g, 7)
			require.NoError(t, err)
			require.Len(t, m, g.VertexCount()/2)

			covered := make(map[int]bool)
			for _, e := range m {
				ed := g.Edge(e)
				require.False(t, covered[ed.U], "vertex %d covered twice", ed.U)
				require.False(t, covered[ed.V], "vertex %d covered twice", ed.V)
				covered[ed.U], covered[ed.V] = true, true
			}
			require.Len(t, covered, g.VertexCount())

			// Complement of a perfect matching in a cubic graph is a 2-factor.
			require.True(t, cubic.IsValid2Factor(g, m))
		})
	}
}

func TestPerfectMatching_Deterministic(t *testing.T) {
	t.Parallel()

	g := cubic.Petersen()
	m1, err := cubic.PerfectMatching(g, 42)
	require.NoError(t, err)
	m2, err := cubic.PerfectMatching(g, 42)
	require.NoError(t, err)
	require.Equal(t, m1, m2)
}

func TestPerfectMatching_OddCount(t *testing.T) {
	t.Parallel()

	g, err := cubic.New(3, []cubic.Edge{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	_, err = cubic.PerfectMatching(g, 1)
	require.ErrorIs(t, err, cubic.ErrNoPerfectMatching)
}

func TestIsValid2Factor_RejectsBadInput(t *testing.T) {
	t.Parallel()

	g := cubic.K4()
	require.False(t, cubic.IsValid2Factor(g, []int{0}), "partial matching leaves degree-3 vertices")
	require.False(t, cubic.IsValid2Factor(g, []int{0, 0}), "duplicate index")
	require.False(t, cubic.IsValid2Factor(g, []int{99}), "index out of range")
}
