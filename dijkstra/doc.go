// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights, plus the shortest-path tree it induces.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - ShortestPathTree returns the tree itself: for each settled vertex, its parent and
//     the exact edge ID used to reach it. On an undirected graph rooted at a target,
//     this is the set of cheapest paths from every vertex to that target.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: Dijkstra returns a predecessor map so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Mixed edges, parallel edges and self-loops are handled; loops never enter a tree.
//
// Determinism:
//
//   - Neighbors are relaxed in edge insertion order (core guarantees this order).
//   - Among equal-distance candidates the lighter reaching edge wins; equal weights keep
//     the first relaxed edge.
//   - Heap entries pop by (distance, reaching-edge weight, push order).
//
// Vertices reached over heavy edges therefore settle after equidistant vertices
// reached over light ones, and can still switch to a zero-weight edge from them.
// Among all shortest-path trees this yields one of minimum total edge weight,
// and the same one on every run.
//
// Error handling (sentinel errors, checked with errors.Is):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound, ErrNegativeWeight.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic from the option constructors.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPathTree(g *core.Graph, opts ...Option) (*Tree, error)
//
// Thread safety:
//
//   - Neither function mutates g. Concurrent mutation of g during a run is undefined;
//     synchronize externally.
package dijkstra
