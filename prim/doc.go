// Package prim computes minimum spanning trees on an undirected, weighted
// *core.Graph with Prim's and Kruskal's algorithms.
//
// # What & Why
//
//   - A minimum spanning tree of a connected weighted graph is a subset of edges
//     connecting every vertex with the least total weight.
//   - A shortest-path tree minimizes each vertex's distance to the root; a spanning
//     tree minimizes the sum over all chosen edges. On the same graph the two can differ.
//
// # Algorithms Provided
//
//   - Prim(g, root, opts...) ([]core.Edge, int64, error)
//     Grows one tree from root; covers root's connected component.
//     Time O(E log E), Space O(V + E).
//
//   - Kruskal(g, opts...) ([]core.Edge, int64, error)
//     Sorts edges by weight and merges disjoint sets; yields a spanning forest.
//     Time O(E log E + α(V)·E), Space O(V + E).
//
// Both skip self-loops, handle parallel edges, and break weight ties by edge
// insertion order, so results are reproducible. RequireSpanning() turns a
// partial result into ErrDisconnected.
//
// # Errors
//
//   - ErrInvalidGraph, ErrEmptyRoot, ErrDisconnected, core.ErrVertexNotFound (wrapped).
package prim
