// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID so generated IDs on the clone never collide.
//   - Clone preserves Edge.Seq, so insertion order survives the copy.
// Concurrency:
//   - Read locks on the source; the clone is a fresh, unshared instance.

package core

import "sync/atomic"

// options returns the GraphOption set reproducing g's configuration.
// Caller must hold muVert (read or write).
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

// CloneEmpty returns a graph with the same flags and vertices but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of vertices, edges, and adjacency.
// Vertex Metadata maps are shared, not copied.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	// AI-HINT: Mutating edge weights on the clone never affects g.
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.edges {
		cp := *e
		linkEdge(clone, &cp)
	}

	return clone
}

// Clear removes every vertex and edge and resets the edge sequence.
// Configuration flags are preserved.
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// linkEdge stores e in out's catalog and adjacency without validation.
// Used only when out is private to the caller (clones and views).
func linkEdge(out *Graph, e *Edge) {
	out.edges[e.ID] = e
	ensureAdjacency(out, e.From, e.To)
	out.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(out, e.To, e.From)
		out.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}
