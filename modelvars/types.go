package modelvars

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mechvars/core"
	"github.com/katalvlaran/mechvars/dijkstra"
	"github.com/katalvlaran/mechvars/mechanics"
	"github.com/katalvlaran/mechvars/prim"
)

// Sentinel errors for coordinate selection.
var (
	// ErrNilSystem indicates a nil *mechanics.System.
	ErrNilSystem = fmt.Errorf("modelvars: nil system: %w", mechanics.ErrInvalidArgument)

	// ErrEmptySystem indicates a system without components.
	ErrEmptySystem = fmt.Errorf("modelvars: system has no components: %w", mechanics.ErrInvalidArgument)

	// ErrNilTopology indicates a nil topology or ground passed to Tree.
	ErrNilTopology = fmt.Errorf("modelvars: nil topology or ground: %w", mechanics.ErrInvalidArgument)

	// ErrForeignEdge indicates that the tree algorithm returned an edge ID the topology does not own.
	ErrForeignEdge = errors.New("modelvars: tree edge not in topology")

	// ErrUnreachableFrames indicates frames cut off from ground under WithRequireConnected.
	ErrUnreachableFrames = errors.New("modelvars: frames unreachable from ground")
)

// PathsToNode computes a tree over g reaching target and returns its edge IDs.
// g is undirected and weighted; weights are non-negative.
type PathsToNode func(g *core.Graph, target string) ([]string, error)

// Strategy selects the built-in PathsToNode.
type Strategy int

const (
	// StrategyShortestPaths picks, for every frame, a cheapest path to ground (Dijkstra).
	StrategyShortestPaths Strategy = iota
	// StrategySpanningTree picks the cheapest tree as a whole (Prim from ground).
	StrategySpanningTree
)

// String returns "shortest-paths" or "spanning-tree".
func (s Strategy) String() string {
	switch s {
	case StrategyShortestPaths:
		return "shortest-paths"
	case StrategySpanningTree:
		return "spanning-tree"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures selection.
//
//	Logger           - receives Debug (weights, trees) and Warn (unreachable frames); discards by default.
//	Strategy         - built-in tree algorithm; ignored when PathsToNode is set.
//	PathsToNode      - caller-supplied tree algorithm.
//	RequireConnected - frames unreachable from ground fail the selection.
type Options struct {
	Logger           *log.Logger
	Strategy         Strategy
	PathsToNode      PathsToNode
	RequireConnected bool
}

// Option configures Options.
type Option func(*Options)

// WithLogger routes selection logs to l. A nil l keeps the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrategy chooses a built-in tree algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithPathsToNode replaces the built-in tree algorithm.
func WithPathsToNode(fn PathsToNode) Option {
	return func(o *Options) { o.PathsToNode = fn }
}

// WithRequireConnected turns unreachable frames from a warning into
// ErrUnreachableFrames. The spanning-tree strategy then runs Prim with
// prim.RequireSpanning, so the error also matches prim.ErrDisconnected.
func WithRequireConnected() Option {
	return func(o *Options) { o.RequireConnected = true }
}

// DefaultOptions returns shortest-path selection with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger:   log.NewWithOptions(io.Discard, log.Options{}),
		Strategy: StrategyShortestPaths,
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.PathsToNode != nil {
		return o, nil
	}
	switch o.Strategy {
	case StrategyShortestPaths:
		o.PathsToNode = ShortestPaths
	case StrategySpanningTree:
		o.PathsToNode = SpanningTree
		if o.RequireConnected {
			o.PathsToNode = spanningTree(prim.RequireSpanning())
		}
	default:
		return o, fmt.Errorf("modelvars: %v: %w", o.Strategy, mechanics.ErrInvalidArgument)
	}

	return o, nil
}

// ShortestPaths is the default PathsToNode: the Dijkstra shortest-path tree rooted at target.
func ShortestPaths(g *core.Graph, target string) ([]string, error) {
	t, err := dijkstra.ShortestPathTree(g, dijkstra.Source(target))
	if err != nil {
		return nil, err
	}

	return t.EdgeIDs(), nil
}

// SpanningTree is the PathsToNode behind StrategySpanningTree: Prim's minimum
// spanning tree of target's component.
func SpanningTree(g *core.Graph, target string) ([]string, error) {
	return spanningTree()(g, target)
}

func spanningTree(opts ...prim.Option) PathsToNode {
	return func(g *core.Graph, target string) ([]string, error) {
		edges, _, err := prim.Prim(g, target, opts...)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(edges))
		for i, e := range edges {
			ids[i] = e.ID
		}

		return ids, nil
	}
}

// VariableSet is an insertion-ordered set of variable names.
// The zero value is empty and ready to use.
type VariableSet struct {
	names []string
	index map[string]struct{}
}

// NewVariableSet returns a set holding names, duplicates collapsed.
func NewVariableSet(names ...string) *VariableSet {
	vs := &VariableSet{}
	vs.Add(names...)

	return vs
}

// Add appends the names not yet present and returns how many were new.
func (vs *VariableSet) Add(names ...string) int {
	if vs.index == nil {
		vs.index = make(map[string]struct{}, len(names))
	}
	n := 0
	for _, name := range names {
		if _, ok := vs.index[name]; ok {
			continue
		}
		vs.index[name] = struct{}{}
		vs.names = append(vs.names, name)
		n++
	}

	return n
}

// Contains reports membership.
func (vs *VariableSet) Contains(name string) bool {
	_, ok := vs.index[name]

	return ok
}

// Len returns the number of names.
func (vs *VariableSet) Len() int { return len(vs.names) }

// Names returns a copy of the names in insertion order.
func (vs *VariableSet) Names() []string {
	out := make([]string, len(vs.names))
	copy(out, vs.names)

	return out
}

// String returns "[a, b, c]".
func (vs *VariableSet) String() string {
	return "[" + strings.Join(vs.names, ", ") + "]"
}

// DomainResult is the selection for one domain.
//
//	Tree         - chosen edges in the order the tree algorithm reported them.
//	Variables    - their variable names, in the same order.
//	Weight       - Σ weights of Tree, equal to len(Variables).
//	ForestWeight - weight of a minimum spanning forest of the whole topology (Kruskal).
//	               With every frame reachable it is a lower bound on Weight.
//	Unreachable  - frames with no path to ground, sorted.
type DomainResult struct {
	Domain       mechanics.Domain
	Tree         []*mechanics.ModelingEdge
	Variables    []string
	Weight       int64
	ForestWeight int64
	Unreachable  []string
}

// Result is the full selection: one DomainResult per domain plus the merged set.
type Result struct {
	Domains   []DomainResult
	Variables *VariableSet
}

// Domain returns the result for d, or nil.
func (r *Result) Domain(d mechanics.Domain) *DomainResult {
	for i := range r.Domains {
		if r.Domains[i].Domain == d {
			return &r.Domains[i]
		}
	}

	return nil
}
