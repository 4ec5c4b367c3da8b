// Package mechvars selects minimal generalized coordinates ("modeling
// variables") for mechanical systems built from joints, rigid bodies, arms
// and drivers connected through body-fixed reference frames.
//
// What is mechvars?
//
//	A mechanism is modeled as two weighted graphs over its reference frames,
//	one for rotational and one for translational motion. Each component adds
//	an edge to both, weighted by the number of variables it introduces in that
//	domain. The cheapest tree connecting every frame back to ground, per domain,
//	names the variables a simulation needs.
//
// Packages:
//
//	core/       thread-safe weighted multigraph (insertion-ordered, int64 weights)
//	dijkstra/   shortest distances and shortest-path trees
//	bfs/        weight-agnostic reachability and connected components
//	prim/       minimum spanning trees (Prim) and forests (Kruskal)
//	mechanics/  archetype catalog, frames, components, topologies, System
//	modelvars/  FindVariables / Select: the minimal-coordinate selector
//	mechfile/   HCL and TOML mechanism definitions
//	render/     Graphviz DOT and SVG diagrams of a topology
//
// Quick example:
//
//	ground, _ := mechanics.NewReferenceFrame("Ground")
//	cs1, _ := mechanics.NewReferenceFrame("CS1")
//	h1, _ := mechanics.NewComponent("h1", ground, cs1, mechanics.RevoluteJoint)
//
//	sys, _ := mechanics.NewSystem(ground)
//	_, _ = sys.AddComponent(h1)
//
//	vars, _ := modelvars.FindVariables(sys) // [phi_h1]
//
// Or from a file:
//
//	sys, err := mechfile.LoadFile("robot.hcl")
//
// A complete walk-through lives in examples/spatial_manipulator.go.
package mechvars
