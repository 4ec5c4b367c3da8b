// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, NeighborIDs, AdjacencyList) and the
// private helpers that keep the nested adjacency map consistent.
//
// Determinism:
//   - Neighbors() returns edges in insertion order (Edge.Seq asc).
//   - NeighborIDs() returns unique IDs in first-seen insertion order.
//
// Concurrency:
//   - Queries take muVert.RLock then muEdgeAdj.RLock.
//   - Helpers (ensure/remove/cleanup) must run under muEdgeAdj write lock.
//
// AI-Hints (file):
//   - Shortest-path tie-breaks depend on Neighbors() order; keep it insertion-stable.
package core

import "sort"

// Neighbors returns the edges incident to id that can be traversed from id.
//
// Behavior highlights:
//   - Undirected edges are returned regardless of which endpoint id is.
//   - Directed edges are returned only when id is the tail (outgoing).
//   - Each edge appears once, including undirected self-loops.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d) where d = degree(id), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	// AI-HINT: treat returned *Edge as read-only; use e.Other(id) for the far endpoint.
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the unique vertices reachable from id by one edge,
// in the order their first connecting edge was inserted.
// A self-loop makes id its own neighbor.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		v := e.Other(id)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}

	return ids, nil
}

// AdjacencyList returns vertex ID → sorted incident edge IDs.
// Each slice is freshly allocated; callers may retain and mutate it.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		var buf []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, eid)
			}
		}
		if len(buf) == 0 {
			continue
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// ensureAdjacency allocates the nested buckets for from→to.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from from→to and, for undirected non-loops, from to→from.
// Must be called ONLY under muEdgeAdj write lock.
//
// AI-Hints:
//   - Always pair delete(g.edges, e.ID) with removeAdjacency to avoid dangling references.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after removals.
// Must be called ONLY under muEdgeAdj write lock.
//
// Complexity:
//   - Time O(V + B), B = number of (from,to) buckets.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
