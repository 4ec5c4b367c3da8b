// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop count from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mechvars/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
// Wrap weighted graphs with core.UnweightedView first.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult

	undirected bool                // follow directed edges both ways (Components)
	incoming   map[string][]string // lazily built reverse index for undirected mode
}

// BFS runs breadth-first search on g starting from startID.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, ErrWeightedGraph.
//   - ErrNeighbors for graph failures; wrapped OnVisit errors; ctx.Err() on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	w := newWalker(g, o, nil)
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Components partitions g into connected components, treating every edge as
// traversable in both directions regardless of orientation.
//
// Components are seeded from vertices in sorted ID order; each component lists
// its vertices in BFS visit order. Isolated vertices form singleton components.
// Hooks from opts fire for every component; MaxDepth is rejected as meaningless here.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: MaxDepth is not supported by Components", ErrOptionViolation)
	}

	visited := make(map[string]bool, g.VertexCount())
	incoming := reverseIndex(g)
	var out [][]string
	for _, seed := range g.Vertices() {
		if visited[seed] {
			continue
		}
		w := newWalker(g, o, visited)
		w.undirected = true
		w.incoming = incoming
		w.enqueue(seed, 0, "")
		if err = w.loop(); err != nil {
			return nil, err
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}

// prepare applies options and performs the checks shared by all entry points.
func prepare(g *core.Graph, opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	if g == nil {
		return o, ErrGraphNil
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g.Weighted() {
		return o, ErrWeightedGraph
	}

	return o, nil
}

// newWalker allocates walker state; a non-nil visited set is shared across walks.
func newWalker(g *core.Graph, o BFSOptions, visited map[string]bool) *walker {
	n := g.VertexCount()
	if visited == nil {
		visited = make(map[string]bool, n)
	}

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: visited,
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}
