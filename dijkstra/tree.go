package dijkstra

import "github.com/katalvlaran/mechvars/core"

// ShortestPathTree runs Dijkstra from Options.Source and returns the tree of
// shortest paths rooted there, restricted to the vertices it settled.
//
// For an undirected graph rooted at a target t, the same tree holds the
// cheapest path from every reachable vertex back to t: read Parent upward.
//
// Validation order and errors are those of Dijkstra. WithReturnPath is implied.
//
// Determinism:
//   - Parallel edges: the edge inserted first wins between equal-cost candidates.
//   - Equal distances settle in heap push order, so Order and EdgeIDs are stable.
//
// Complexity:
//   - Time O((V + E) log V), Space O(V + E).
func ShortestPathTree(g *core.Graph, opts ...Option) (*Tree, error) {
	cfg := buildOptions(opts)
	r, err := run(g, cfg)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		Root:       cfg.Source,
		Dist:       make(map[string]int64, len(r.order)),
		Parent:     make(map[string]string, len(r.order)),
		ParentEdge: make(map[string]string, len(r.order)),
		Order:      r.order,
	}
	for _, v := range r.order {
		t.Dist[v] = r.dist[v]
		if v == cfg.Source {
			continue
		}
		t.Parent[v] = r.prev[v]
		t.ParentEdge[v] = r.parentEdge[v]
	}

	return t, nil
}
