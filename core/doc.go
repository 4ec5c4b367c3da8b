// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted), integer weights
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Generated edge IDs (“e1”, “e2”, …) or caller-chosen IDs (WithEdgeID)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Mechanical topologies use NewWeightedMultigraph: undirected, weighted,
// parallel edges and loops enabled, with component names as edge IDs.
//
// Determinism:
//
//	Vertices()     sorted by ID
//	Edges()        insertion order (Edge.Seq)
//	Neighbors()    insertion order (Edge.Seq)
//	NeighborIDs()  first-seen insertion order, unique
//
// Insertion order matters: shortest-path and spanning-tree algorithms break
// ties by visiting neighbors in this order, so equal-cost choices resolve the
// same way on every run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight int64, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error         // O(1)
//	SetEdgeWeight(edgeID string, w int64) error // O(1)
//	HasEdge(from,to string) bool            // O(1)
//	GetEdge(edgeID string) (*Edge, error)   // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), loops appear once, multi-edges repeated
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	Degree(id string) (in,out,undirected int, err error)
//
//	// Maintenance & cloning
//	Clear(), FilterEdges(pred), CloneEmpty(), Clone()
//	UnweightedView(g), InducedSubgraph(g, keep)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrEdgeExists           – WithEdgeID collides with an existing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
