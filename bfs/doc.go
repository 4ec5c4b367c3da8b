// Package bfs provides breadth-first search over a core.Graph: hop distances,
// parent links, visit order, and connected components.
//
// # What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex and
//     returns a BFSResult (Order, Depth, Parent).
//   - Components partitions a graph into connected components, ignoring edge
//     orientation.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual hops; WithMaxDepth limits BFS depth.
//
// # Weights
//
//	Both entry points refuse weighted graphs (ErrWeightedGraph). Reachability
//	questions on a weighted graph go through core.UnweightedView, which keeps
//	topology and edge IDs but drops weights:
//
//		res, err := bfs.BFS(core.UnweightedView(g), "Ground")
//
// # Determinism
//
//	core.NeighborIDs returns neighbors in edge insertion order and BFS enqueues
//	them in that order, so the visit sequence is reproducible. Components seeds
//	from vertices in sorted ID order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// # Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
