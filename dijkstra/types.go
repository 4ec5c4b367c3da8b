// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, Dijkstra returns the predecessor map.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance      – cap on distances to explore. Must be ≥ 0. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ threshold are impassable. Must be > 0. Default math.MaxInt64.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in Dijkstra's result.
// ShortestPathTree always records predecessors and ignores this option.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// non-traversable. Panics with ErrBadInfThreshold on a non-positive value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with defaults for the given source.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no impassable edges).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Tree is a shortest-path tree rooted at Root.
//
// Only vertices settled by the search appear in Dist, Parent and ParentEdge.
// Order lists settled vertices in the order their distance became final,
// starting with Root.
type Tree struct {
	// Root is the source vertex of the search.
	Root string

	// Dist maps each settled vertex to its shortest distance from Root.
	Dist map[string]int64

	// Parent maps each settled non-root vertex to its predecessor.
	Parent map[string]string

	// ParentEdge maps each settled non-root vertex to the ID of the tree edge
	// joining it to Parent. With parallel edges this pins the exact edge chosen.
	ParentEdge map[string]string

	// Order is the settle order, Root first.
	Order []string
}

// EdgeIDs returns the tree edge IDs in settle order of their far endpoint.
// A tree over k settled vertices has k-1 edges.
func (t *Tree) EdgeIDs() []string {
	if t == nil || len(t.Order) < 2 {
		return nil
	}
	out := make([]string, 0, len(t.Order)-1)
	for _, v := range t.Order[1:] {
		out = append(out, t.ParentEdge[v])
	}

	return out
}

// Reached reports whether v was settled by the search.
func (t *Tree) Reached(v string) bool {
	_, ok := t.Dist[v]

	return ok
}

// PathTo returns the vertex sequence Root → … → v, or nil when v was not reached.
func (t *Tree) PathTo(v string) []string {
	if !t.Reached(v) {
		return nil
	}
	var rev []string
	for cur := v; ; cur = t.Parent[cur] {
		rev = append(rev, cur)
		if cur == t.Root {
			break
		}
	}
	out := make([]string, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}
