// Package modelvars selects a minimal set of modeling variables (generalized
// coordinates) for a mechanics.System.
//
// # What & Why
//
//   - Every ModelingEdge costs as many unknowns as its component adds in that domain.
//   - Choosing, for each frame, the cheapest path back to ground fixes the frame's
//     pose with the fewest unknowns; the union of those paths is a tree.
//   - Rotational and translational motion are independent, so each Topology gets
//     its own tree and the two variable lists are merged.
//
// # API
//
//   - FindVariables(system, opts...)  merged, insertion-ordered VariableSet.
//   - Select(system, opts...)         per-domain trees, weights and unreachable frames.
//   - Tree(topology, ground, opts...) weights one topology and returns its tree.
//   - TreeVariables(edges)            variables of a tree, in edge order.
//
// # Options
//
//   - WithLogger(*log.Logger)       charmbracelet/log; Debug for trees, Warn for unreachable frames.
//   - WithStrategy(Strategy)        StrategyShortestPaths (default) or StrategySpanningTree.
//   - WithPathsToNode(PathsToNode)  plug in another tree algorithm.
//   - WithRequireConnected()        frames cut off from ground become ErrUnreachableFrames.
//
// # Determinism
//
// With the default strategy, equal-cost alternatives resolve to the shortest-path
// tree of least total weight, then to edge insertion order. Repeated calls on an
// unchanged system return identical results.
//
// Frames not connected to ground are reported in DomainResult.Unreachable and add
// no variables.
package modelvars
