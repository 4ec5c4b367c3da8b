// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/SetEdgeWeight/Edges/EdgeCount,
// plus feature queries and filtered removals. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (Edge.Seq asc).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Unweighted graphs MUST add edges with weight==0 (else ErrBadWeight).
//   - Per-edge direction overrides require WithMixedEdges(); otherwise ErrMixedEdgesNotAllowed.
//   - WithEdgeID is accepted on every graph; a taken ID returns ErrEdgeExists.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops; apply EdgeOptions into an edgeConfig.
//  2. A direction override without allowMixed ⇒ ErrMixedEdgesNotAllowed.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj; check explicit-ID collision and the multi-edge constraint.
//  5. Reserve a sequence number; derive the ID unless one was supplied.
//  6. Store in g.edges and link adjacency (mirrored for undirected non-loops).
//
// Complexity: O(1) amortized.
//
// AI-HINT:
//   - Undirected self-loops are stored once under adjacencyList[v][v].
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.directedSet && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if cfg.id != "" {
		if _, taken := g.edges[cfg.id]; taken {
			return "", ErrEdgeExists
		}
	}
	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	eid := cfg.id
	if eid == "" {
		eid = formatEdgeID(seq)
		// A caller may already own the generated form through WithEdgeID.
		for g.edges[eid] != nil {
			seq = atomic.AddUint64(&g.nextEdgeID, 1)
			eid = formatEdgeID(seq)
		}
	}

	directed := g.directed
	if cfg.directedSet {
		directed = cfg.directed
	}
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: directed, Seq: seq}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Endpoints stay in the vertex catalog; callers prune vertices explicitly.
//
// Complexity: O(1) removal + O(V+E) cleanup in degenerate cases (many empty buckets).
func (g *Graph) RemoveEdge(eid string) error {
	// AI-HINT: Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge(a,b) == HasEdge(b,a) for them.
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// HasEdgeID reports whether an edge with the given ID is cataloged.
func (g *Graph) HasEdgeID(eid string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[eid]

	return ok
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is read-only by convention; use SetEdgeWeight to change weights.
//
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetEdgeWeight replaces the weight of an existing edge in place.
//
// Errors:
//   - ErrEdgeNotFound: unknown edge ID.
//   - ErrBadWeight: non-zero weight on an unweighted graph.
//
// Complexity: O(1).
//
// AI-HINT:
//   - Idempotent: setting the same weight twice leaves the graph unchanged.
func (g *Graph) SetEdgeWeight(eid string, weight int64) error {
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// Edges returns all edges in insertion order (Edge.Seq asc).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the number of cataloged edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether any directed edge exists. O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes every edge for which pred returns false.
//
// Complexity: O(E + V).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	// AI-HINT: Removes edges not satisfying pred; adjacency is cleaned; graph stays consistent.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	cleanupAdjacency(g)
}

// formatEdgeID renders a sequence number as "e<n>" without fmt allocations.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// sortBySeq orders edges by insertion sequence, falling back to ID for edges
// copied from foreign graphs that share a sequence number.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Seq != es[j].Seq {
			return es[i].Seq < es[j].Seq
		}

		return es[i].ID < es[j].ID
	})
}
