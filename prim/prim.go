package prim

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mechvars/core"
)

// Prim computes the minimum spanning tree of root's connected component by
// growing outwards from root with a min-heap of candidate edges.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil, directed, unweighted, or has directed edges.
//   - ErrEmptyRoot          : root is "".
//   - core.ErrVertexNotFound: root does not exist.
//   - ErrDisconnected       : RequireSpanning is set and some vertex lies outside root's component.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited; push its edges to unvisited far endpoints.
//  3. Pop the lightest edge; skip it when its far endpoint is already visited.
//  4. Otherwise accept it, mark the far endpoint, push that endpoint's edges.
//
// Determinism:
//   - Candidates are ordered by (Weight, push order) and pushed in edge insertion order,
//     so equal-weight choices resolve identically on every run.
//   - Self-loops are never candidates.
//
// Returns the tree edges in acceptance order and their total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, opts ...Option) ([]core.Edge, int64, error) {
	if !validGraph(graph) {
		return nil, 0, ErrInvalidGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim: root %q: %w", root, core.ErrVertexNotFound)
	}

	g := &grower{
		graph:   graph,
		visited: map[string]bool{root: true},
		pq:      &edgePQ{},
	}
	heap.Init(g.pq)
	if err := g.pushFrom(root); err != nil {
		return nil, 0, err
	}

	var mst []core.Edge
	for g.pq.Len() > 0 {
		c := heap.Pop(g.pq).(candidate)
		if g.visited[c.to] {
			continue
		}
		g.visited[c.to] = true
		mst = append(mst, *c.edge)
		if err := g.pushFrom(c.to); err != nil {
			return nil, 0, err
		}
	}

	if cfg.RequireSpanning && len(g.visited) < graph.VertexCount() {
		return nil, 0, ErrDisconnected
	}
	if mst == nil {
		mst = []core.Edge{}
	}

	return mst, totalWeight(mst), nil
}

// grower carries Prim's mutable state.
type grower struct {
	graph   *core.Graph
	visited map[string]bool
	pq      *edgePQ
	pushes  uint64
}

// pushFrom enqueues every edge leaving u towards an unvisited vertex.
func (g *grower) pushFrom(u string) error {
	neighbors, err := g.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("prim: neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.Other(u)
		if v == u || g.visited[v] {
			continue
		}
		g.pushes++
		heap.Push(g.pq, candidate{edge: e, to: v, seq: g.pushes})
	}

	return nil
}

// candidate is a heap entry: an edge and the endpoint it would add.
type candidate struct {
	edge *core.Edge
	to   string
	seq  uint64
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by (Weight, seq).
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
