// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex/edge IDs, directedness, and Edge.Seq.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - UnweightedView returns Weighted()==false and sets all edge weights to 0;
//     weight-agnostic walkers (bfs) run on it.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

import "sync/atomic"

// viewEdgeWeightZero is the weight forced by views that enforce unweighted semantics.
const viewEdgeWeightZero int64 = 0

// UnweightedView returns a new Graph with identical topology but with all edge
// weights set to zero and the weighted flag turned off.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UnweightedView(g *Graph) *Graph {
	g.muVert.RLock()
	opts := g.options()
	g.muVert.RUnlock()

	out := NewGraph(opts...)
	out.weighted = false

	copyVertices(g, out, nil)

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range g.edges {
		cp := *e
		cp.Weight = viewEdgeWeightZero
		linkEdge(out, &cp)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// InducedSubgraph returns a new Graph containing only vertices v with keep[v]
// and the edges whose endpoints are both kept.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	opts := g.options()
	g.muVert.RUnlock()

	out := NewGraph(opts...)
	copyVertices(g, out, keep)

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		cp := *e
		linkEdge(out, &cp)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// copyVertices copies g's vertices into out; a nil keep copies all of them.
func copyVertices(g, out *Graph, keep map[string]bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for id, v := range g.vertices {
		if keep != nil && !keep[id] {
			continue
		}
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}
