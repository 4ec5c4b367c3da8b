// File: selector.go
// Role: Minimal-coordinate selection. Weights edges, grows one tree per domain, collects variables.
// Determinism:
//   - Domains run rotational first; variables keep tree order, then catalog order.
//   - The default tree algorithm breaks ties by edge insertion order.
// Concurrency:
//   - Not safe against concurrent System mutation; callers serialize.
// AI-HINT (file):
//   - Weight assignment is the only write and is idempotent.
//   - Collaborator errors are wrapped with %w, never logged and swallowed.

package modelvars

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mechvars/mechanics"
	"github.com/katalvlaran/mechvars/prim"
)

// FindVariables returns the minimal set of modeling variables of s.
//
// Per domain it weights every edge by its variable count, builds a tree of
// cheapest paths from every frame to ground and gathers the tree edges'
// variables. The two domains are merged rotational first.
//
// Errors: ErrNilSystem, ErrEmptySystem (both wrap mechanics.ErrInvalidArgument);
// ErrUnreachableFrames under WithRequireConnected; tree algorithm failures, wrapped.
func FindVariables(s *mechanics.System, opts ...Option) (*VariableSet, error) {
	res, err := Select(s, opts...)
	if err != nil {
		return nil, err
	}

	return res.Variables, nil
}

// Select is FindVariables with the per-domain trees and diagnostics kept.
//
// Steps:
//  1. Reject nil and empty systems.
//  2. For each domain: Tree, then TreeVariables, then Unreachable from ground,
//     then the Kruskal forest weight of the weighted topology.
//  3. Merge the domain variable lists into one VariableSet.
func Select(s *mechanics.System, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilSystem
	}
	if s.Len() == 0 {
		return nil, ErrEmptySystem
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ground := s.Ground()
	res := &Result{Variables: NewVariableSet()}
	for _, d := range mechanics.Domains() {
		top := s.Topology(d)
		edges, err := tree(top, ground, cfg)
		if err != nil {
			return nil, err
		}
		lost, err := top.Unreachable(ground.Name())
		if err != nil {
			return nil, fmt.Errorf("modelvars: %s reachability: %w", d, err)
		}
		if len(lost) > 0 && cfg.RequireConnected {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreachableFrames, d, lost)
		}
		_, forest, err := prim.Kruskal(top.Graph())
		if err != nil {
			return nil, fmt.Errorf("modelvars: %s forest: %w", d, err)
		}

		dr := DomainResult{
			Domain:       d,
			Tree:         edges,
			Variables:    TreeVariables(edges).Names(),
			Weight:       treeWeight(edges),
			ForestWeight: forest,
			Unreachable:  lost,
		}
		if len(lost) > 0 {
			cfg.Logger.Warn("frames unreachable from ground", "domain", d, "ground", ground.Name(), "frames", lost)
		}
		cfg.Logger.Debug("domain selected",
			"domain", d,
			"strategy", cfg.Strategy,
			"edges", len(edges),
			"weight", dr.Weight,
			"forest", dr.ForestWeight,
			"variables", dr.Variables)

		res.Variables.Add(dr.Variables...)
		res.Domains = append(res.Domains, dr)
	}

	return res, nil
}

// Tree assigns every edge of top its variable count as weight and returns the
// edges of the tree connecting each reachable frame to ground along a
// minimum-weight path. Frames cut off from ground contribute nothing.
//
// Errors: ErrNilTopology; tree algorithm failures (e.g. ground not a frame of top), wrapped.
func Tree(top *mechanics.Topology, ground *mechanics.ReferenceFrame, opts ...Option) ([]*mechanics.ModelingEdge, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return tree(top, ground, cfg)
}

func tree(top *mechanics.Topology, ground *mechanics.ReferenceFrame, cfg Options) ([]*mechanics.ModelingEdge, error) {
	if top == nil || ground == nil {
		return nil, ErrNilTopology
	}
	if err := top.AssignVariableWeights(); err != nil {
		return nil, fmt.Errorf("modelvars: %s weights: %w", top.Domain(), err)
	}
	if cfg.Logger.GetLevel() <= log.DebugLevel {
		for _, e := range top.Edges() {
			cfg.Logger.Debug("weight", "domain", top.Domain(), "edge", e.Name(), "weight", e.Weight())
		}
	}

	ids, err := cfg.PathsToNode(top.Graph(), ground.Name())
	if errors.Is(err, prim.ErrDisconnected) {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreachableFrames, top.Domain(), err)
	}
	if err != nil {
		return nil, fmt.Errorf("modelvars: %s tree to %q: %w", top.Domain(), ground.Name(), err)
	}

	out := make([]*mechanics.ModelingEdge, 0, len(ids))
	for _, id := range ids {
		e, ok := top.Edge(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrForeignEdge, id)
		}
		out = append(out, e)
	}

	return out, nil
}

// TreeVariables collects the variables of edges, in edge order, duplicates collapsed.
func TreeVariables(edges []*mechanics.ModelingEdge) *VariableSet {
	vs := NewVariableSet()
	for _, e := range edges {
		if e != nil {
			vs.Add(e.Variables()...)
		}
	}

	return vs
}

func treeWeight(edges []*mechanics.ModelingEdge) int64 {
	var w int64
	for _, e := range edges {
		w += e.Weight()
	}

	return w
}
