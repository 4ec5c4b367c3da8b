// SPDX-License-Identifier: MIT
// Package core_test verifies construction options, cloning and views.

package core_test

import (
	"testing"

	"github.com/katalvlaran/mechvars/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_Options verifies that GraphOptions land in the configuration getters.
func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())
	assert.False(t, g.MixedEdges())

	g = core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	m := core.NewWeightedMultigraph()
	assert.False(t, m.Directed())
	assert.True(t, m.Weighted())
	assert.True(t, m.Looped())
	assert.True(t, m.Multigraph())

	assert.True(t, core.NewMixedGraph().MixedEdges())
}

// TestEdge_Other verifies endpoint resolution, including loops.
func TestEdge_Other(t *testing.T) {
	e := &core.Edge{From: vertexA, To: vertexB}
	assert.Equal(t, vertexB, e.Other(vertexA))
	assert.Equal(t, vertexA, e.Other(vertexB))
	assert.Empty(t, e.Other(vertexC))

	loop := &core.Edge{From: vertexX, To: vertexX}
	assert.Equal(t, vertexX, loop.Other(vertexX))

	var nilEdge *core.Edge
	assert.True(t, nilEdge.IsNil())
}

// TestGraph_CloneIsDeep verifies that clones are independent and keep insertion order.
func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewWeightedMultigraph()
	_, err := g.AddEdge(vertexB, vertexC, 2, core.WithEdgeID("second"))
	require.NoError(t, err)
	_, err = g.AddEdge(vertexA, vertexB, 1, core.WithEdgeID("first"))
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.SetEdgeWeight("second", 9))
	orig, err := g.GetEdge("second")
	require.NoError(t, err)
	assert.Equal(t, int64(2), orig.Weight)

	var ids []string
	for _, e := range c.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"second", "first"}, ids)

	// Generated IDs on the clone continue after the source sequence.
	eid, err := c.AddEdge(vertexA, vertexC, 0)
	require.NoError(t, err)
	assert.Equal(t, "e3", eid)

	empty := g.CloneEmpty()
	assert.Equal(t, 3, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())
}

// TestGraph_Clear verifies that Clear resets state but keeps flags.
func TestGraph_Clear(t *testing.T) {
	g := core.NewWeightedMultigraph()
	_, err := g.AddEdge(vertexA, vertexB, 1)
	require.NoError(t, err)
	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.Weighted())

	eid, err := g.AddEdge(vertexA, vertexB, 1)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
}

// TestUnweightedView verifies weights are zeroed without touching the source.
func TestUnweightedView(t *testing.T) {
	g := core.NewWeightedMultigraph()
	_, err := g.AddEdge(vertexA, vertexB, 5, core.WithEdgeID("ab"))
	require.NoError(t, err)
	_, err = g.AddEdge(vertexB, vertexB, 1, core.WithEdgeID("bb"))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(vertexX))

	v := core.UnweightedView(g)
	assert.False(t, v.Weighted())
	assert.Equal(t, g.Vertices(), v.Vertices())
	for _, e := range v.Edges() {
		assert.Zero(t, e.Weight)
	}
	ab, err := g.GetEdge("ab")
	require.NoError(t, err)
	assert.Equal(t, int64(5), ab.Weight)
	assert.True(t, v.HasEdge(vertexB, vertexA))
}

// TestInducedSubgraph verifies vertex filtering and edge retention.
func TestInducedSubgraph(t *testing.T) {
	g := core.NewWeightedMultigraph()
	_, err := g.AddEdge(vertexA, vertexB, 1, core.WithEdgeID("ab"))
	require.NoError(t, err)
	_, err = g.AddEdge(vertexB, vertexC, 1, core.WithEdgeID("bc"))
	require.NoError(t, err)

	sub := core.InducedSubgraph(g, map[string]bool{vertexA: true, vertexB: true})
	assert.Equal(t, []string{vertexA, vertexB}, sub.Vertices())
	assert.True(t, sub.HasEdgeID("ab"))
	assert.False(t, sub.HasEdgeID("bc"))
	assert.True(t, sub.Weighted())
}
