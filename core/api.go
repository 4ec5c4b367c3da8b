// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public facade: convenience constructors and read-only configuration getters.
// Policy:
//   - No algorithms here.
//   - Every getter takes muVert.RLock; configuration flags are immutable after NewGraph.
// AI-HINT (file):
//   - Use NewWeightedMultigraph(...) for topology graphs: weighted, undirected, parallel edges, loops.
//   - Stats() is an O(V+E) snapshot for diagnostics and test assertions.

package core

// NewMixedGraph creates a Graph that accepts per-edge directedness overrides
// (WithEdgeDirected) on AddEdge.
//
// Determinism:
//   - Options are applied left-to-right, with WithMixedEdges() always first.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// NewWeightedMultigraph creates an undirected, weighted Graph that accepts
// parallel edges and self-loops.
//
// This is the shape of a mechanical topology: two components may join the same
// pair of frames, and a component may start and end on the same frame.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)).
//
// AI-Hints:
//   - Pair with WithEdgeID(...) so edge IDs match domain names.
func NewWeightedMultigraph(opts ...GraphOption) *Graph {
	base := []GraphOption{WithWeighted(), WithMultiEdges(), WithLoops()}

	return NewGraph(append(base, opts...)...)
}

// Weighted reports whether the graph accepts non-zero edge weights.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default orientation applied to new edges.
// It does not report whether directed edges exist; see HasDirectedEdges.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool

	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
	LoopCount           int

	// TotalWeight is the sum of all edge weights.
	TotalWeight int64
}

// Stats produces a snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Under muEdgeAdj.RLock, scan edges once and classify them.
//
// Behavior highlights:
//   - Never holds both locks at once.
//
// Complexity:
//   - Time O(V+E), Space O(1).
//
// AI-Hints:
//   - TotalWeight of a tree graph equals its number of selected variables when
//     weights are variable counts.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
		if e.From == e.To {
			stats.LoopCount++
		}
		stats.TotalWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
