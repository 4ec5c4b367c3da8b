// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties are deterministic: neighbors are relaxed in edge insertion order. Among
//     equal-distance candidates the lighter edge wins, then the one relaxed first.
//     The heap orders by (dist, weight of the reaching edge, push order).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mechvars/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := buildOptions(opts)
	r, err := run(g, cfg)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// buildOptions applies opts over DefaultOptions("").
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate enforces the documented precondition order shared by every entry point.
func validate(g *core.Graph, cfg Options) error {
	if cfg.Source == "" {
		return ErrEmptySource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s %s→%s weight=%d", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// run validates inputs and executes the search, leaving all state on the runner.
func run(g *core.Graph, cfg Options) (*runner, error) {
	if err := validate(g, cfg); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	V := len(vertices)
	r := &runner{
		g:          g,
		options:    cfg,
		dist:       make(map[string]int64, V),
		prev:       make(map[string]string, V),
		parentEdge: make(map[string]string, V),
		via:        make(map[string]int64, V),
		visited:    make(map[string]bool, V),
		order:      make([]string, 0, V),
		pq:         make(nodePQ, 0, V),
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g          *core.Graph       // input graph; read-only within Dijkstra
	options    Options           // Source, thresholds
	dist       map[string]int64  // vertex ID → current best distance from Source
	prev       map[string]string // vertex ID → predecessor on the shortest path
	parentEdge map[string]string // vertex ID → edge ID used to reach it
	via        map[string]int64  // vertex ID → weight of parentEdge
	visited    map[string]bool   // finalized vertices
	order      []string          // settle order
	pq         nodePQ            // lazy min-heap
	pushes     uint64            // heap push counter, tie-break key
}

// init sets up initial distances and pushes Source=0 into the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		r.visited[v] = false
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0, 0)
}

// push enqueues v with distance d reached over an edge of weight via.
func (r *runner) push(v string, d, via int64) {
	r.pushes++
	heap.Push(&r.pq, &nodeItem{id: v, dist: d, via: via, seq: r.pushes})
}

// process is the core loop. It repeatedly extracts the vertex with the minimum
// distance from the source and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.order = append(r.order, u)

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge traversable from u and attempts to improve distances to its neighbors.
// Undirected edges lead to the endpoint opposite u; self-loops never improve a distance.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}

		v := e.Other(u)
		w := e.Weight
		if v == u || r.visited[v] {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s %s→%s weight=%d", ErrNegativeWeight, e.ID, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Equal distance: only a strictly lighter edge replaces the parent.
		if newDist > r.dist[v] || (newDist == r.dist[v] && w >= r.via[v]) {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.parentEdge[v] = e.ID
		r.via[v] = w
		r.push(v, newDist, w)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	via  int64  // weight of the edge that produced this entry
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, via, seq) ascending.
// Stale entries remain in the heap and are skipped when popped (visited check).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by reaching-edge weight, then by push sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].via != pq[j].via {
		return pq[i].via < pq[j].via
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop swaps the minimum there first).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
