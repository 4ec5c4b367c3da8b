package prim

import (
	"sort"

	"github.com/katalvlaran/mechvars/core"
)

// Kruskal computes a minimum spanning forest: one minimum spanning tree per
// connected component.
//
// Strategy: stable-sort non-loop edges by weight (insertion order breaks ties)
// and accept each edge whose endpoints lie in different disjoint sets.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed, unweighted, or has directed edges.
//   - ErrDisconnected : RequireSpanning is set and the forest has more than one tree.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	if !validGraph(graph) {
		return nil, 0, ErrInvalidGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := graph.Vertices()
	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	ds := newDisjointSet(vertices)
	mst := make([]core.Edge, 0, len(vertices))
	for _, e := range edges {
		if ds.union(e.From, e.To) {
			mst = append(mst, *e)
		}
	}

	if cfg.RequireSpanning && len(vertices) > 0 && len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight(mst), nil
}

// disjointSet is a union-find with path halving and union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
