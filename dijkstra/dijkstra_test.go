// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, mixed edges, MaxDistance, InfEdgeThreshold,
// and edge cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mechvars/core"
	"github.com/katalvlaran/mechvars/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	weighted := core.NewGraph(core.WithWeighted())
	require.NoError(t, weighted.AddVertex("A"))

	negative := core.NewGraph(core.WithWeighted())
	_, err := negative.AddEdge("A", "B", -5)
	require.NoError(t, err)

	cases := []struct {
		name string
		g    *core.Graph
		opts []dijkstra.Option
		want error
	}{
		{"empty source", weighted, nil, dijkstra.ErrEmptySource},
		{"empty source wins over nil graph", nil, nil, dijkstra.ErrEmptySource},
		{"nil graph", nil, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrNilGraph},
		{"unweighted", core.NewGraph(), []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrUnweightedGraph},
		{"source missing", weighted, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrVertexNotFound},
		{"negative weight", negative, []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := dijkstra.Dijkstra(tc.g, tc.opts...)
			require.ErrorIs(t, err, tc.want)

			_, err = dijkstra.ShortestPathTree(tc.g, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// Bad option values panic when the option is applied, not when it is built.
func TestDijkstra_OptionPanics(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	assert.NotPanics(t, func() { _ = dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { _, _, _ = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1)) })
	assert.Panics(t, func() { _, _, _ = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0)) })
	assert.Panics(t, func() { _, _ = dijkstra.ShortestPathTree(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1)) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle(t *testing.T) {
	// Graph: A-B(1), B-C(2), A-C(5), all undirected by default.
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 2)
	mustEdge(t, g, "A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["C"])
	assert.Nil(t, prev)

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "B", prev["C"])
}

func TestDijkstra_UndirectedReverseTraversal(t *testing.T) {
	// Edges are stored From→To but must be walked both ways.
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "B", "A", 2)
	mustEdge(t, g, "C", "B", 3)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["B"])
	assert.Equal(t, int64(5), dist["C"])
}

// ------------------------------------------------------------------------
// 3. Directed and mixed graphs.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// Directed graph: A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, g, "A", "B", 2)
	mustEdge(t, g, "A", "C", 1)
	mustEdge(t, g, "C", "B", 1)
	mustEdge(t, g, "B", "D", 3)
	mustEdge(t, g, "C", "D", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["C"])
	assert.Equal(t, int64(2), dist["B"])
	assert.Equal(t, int64(5), dist["D"])

	// Nothing flows back into A.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("D"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["A"])
}

func TestDijkstra_MixedEdges(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 2, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 3, core.WithEdgeDirected(false))
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 5, "D": 6}, dist)
	assert.Equal(t, "C", prev["D"])
}

// ------------------------------------------------------------------------
// 4. MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 1)
	mustEdge(t, g, "C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["C"])
	assert.Equal(t, int64(math.MaxInt64), dist["D"])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(math.MaxInt64), dist["B"])
}

func TestDijkstra_InfThreshold(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 2)
	mustEdge(t, g, "B", "C", 4)
	mustEdge(t, g, "A", "C", 10)
	mustEdge(t, g, "C", "Z", 7)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), dist["C"])
	assert.Equal(t, int64(math.MaxInt64), dist["Z"])
}

// ------------------------------------------------------------------------
// 5. Edge Cases: Single vertex, self-loop, zero weights.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("Solo"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["Solo"])
	assert.Empty(t, prev["Solo"])
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := core.NewWeightedMultigraph()
	mustEdge(t, g, "X", "X", 0)
	mustEdge(t, g, "X", "Y", 4)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["X"])
	assert.Empty(t, prev["X"])
	assert.Equal(t, int64(4), dist["Y"])
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := core.NewWeightedMultigraph()
	mustEdge(t, g, "G", "A", 0)
	mustEdge(t, g, "A", "B", 0)
	mustEdge(t, g, "G", "B", 3)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("G"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["B"])
	assert.Equal(t, "A", prev["B"])
}

// mustEdge adds an edge and fails the test on error.
func mustEdge(t testing.TB, g *core.Graph, from, to string, w int64, opts ...core.EdgeOption) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, w, opts...)
	require.NoError(t, err)

	return eid
}
