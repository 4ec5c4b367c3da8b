package mechanics

// Test hooks for driving a Topology without a System.

var NewTopology = newTopology

func AddEdgeTo(t *Topology, e *ModelingEdge) (bool, error) { return t.addEdge(e) }

func RemoveEdgeFrom(t *Topology, e *ModelingEdge) (bool, error) { return t.removeEdge(e) }
