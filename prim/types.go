// Package prim defines configuration options and sentinel errors for
// minimum spanning tree computation.
package prim

import (
	"errors"

	"github.com/katalvlaran/mechvars/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, unweighted, or carries directed edges.
var ErrInvalidGraph = errors.New("prim: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim: empty root vertex")

// ErrDisconnected indicates that a spanning tree over every vertex was required
// (RequireSpanning) but the graph has more than one component.
var ErrDisconnected = errors.New("prim: graph is disconnected")

// Options configures MST computation.
//
//	RequireSpanning - fail with ErrDisconnected unless the result spans every vertex.
//	                  Off by default: Prim spans the root's component and Kruskal
//	                  returns a minimum spanning forest.
type Options struct {
	RequireSpanning bool
}

// Option configures Options.
type Option func(*Options)

// RequireSpanning makes a partial tree (or a forest) an error.
func RequireSpanning() Option {
	return func(o *Options) { o.RequireSpanning = true }
}

// DefaultOptions returns Options with RequireSpanning disabled.
func DefaultOptions() Options {
	return Options{}
}

// validGraph reports whether g can carry an MST.
func validGraph(g *core.Graph) bool {
	return g != nil && g.Weighted() && !g.Directed() && !g.HasDirectedEdges()
}

// totalWeight sums edge weights.
func totalWeight(edges []core.Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
