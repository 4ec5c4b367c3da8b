package core_test

import (
	"fmt"

	"github.com/katalvlaran/mechvars/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Add edges (auto-adds vertices A, B, C).
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B, vertices: [A C]
	// Edge A→B exists? false
}

// ExampleNewWeightedMultigraph shows named parallel edges, a loop, and a weight update.
func ExampleNewWeightedMultigraph() {
	g := core.NewWeightedMultigraph()

	_, _ = g.AddEdge("Ground", "CS2", 0, core.WithEdgeID("m1"))
	_, _ = g.AddEdge("Ground", "CS2", 0, core.WithEdgeID("h2"))
	_, _ = g.AddEdge("CS2", "CS2", 0, core.WithEdgeID("loop"))
	_ = g.SetEdgeWeight("m1", 3)

	for _, e := range g.Edges() {
		fmt.Printf("%s %s-%s %d\n", e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// m1 Ground-CS2 3
	// h2 Ground-CS2 0
	// loop CS2-CS2 0
}
