// File: topology.go
// Role: One domain's weighted multigraph over reference frames.
// Determinism:
//   - Edges() follows insertion order; Frames() and Unreachable() are sorted by name.
// Concurrency:
//   - mu guards the edge/frame indices; the backing core.Graph has its own locks.
//   - Lock order: Topology.mu, then core.Graph internals.
// AI-HINT (file):
//   - core edge ID == ModelingEdge name; names are unique per topology.
//   - Frames are reference-counted; pinned frames (ground) survive at refcount 0.
//   - Graph() hands out a clone; weights change only through AssignWeight.
//   - Only System adds or removes edges, keeping both domains in step.

package mechanics

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/mechvars/bfs"
	"github.com/katalvlaran/mechvars/core"
)

// Topology is the graph of one motion domain: frames as vertices,
// ModelingEdges as undirected, weighted, possibly parallel edges.
//
// Membership belongs to the owning System; callers can read a topology and
// reassign weights, never add or remove edges.
type Topology struct {
	mu     sync.RWMutex
	domain Domain
	graph  *core.Graph
	edges  map[string]*ModelingEdge
	frames map[string]*ReferenceFrame
	refs   map[string]int
	pinned map[string]bool
}

// newTopology returns an empty topology for d. It panics on an unknown domain.
func newTopology(d Domain) *Topology {
	if !d.Valid() {
		panic(fmt.Sprintf("mechanics: newTopology(%v): %v", d, ErrUnknownDomain))
	}

	return &Topology{
		domain: d,
		graph:  core.NewWeightedMultigraph(),
		edges:  make(map[string]*ModelingEdge),
		frames: make(map[string]*ReferenceFrame),
		refs:   make(map[string]int),
		pinned: make(map[string]bool),
	}
}

// Domain returns the topology's domain.
func (t *Topology) Domain() Domain { return t.domain }

// pin makes f a permanent vertex, independent of edge membership.
func (t *Topology) pin(f *ReferenceFrame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkFrameLocked(f); err != nil {
		return err
	}
	if err := t.graph.AddVertex(f.name); err != nil {
		return fmt.Errorf("mechanics: pin %q: %w", f.name, err)
	}
	t.frames[f.name] = f
	t.pinned[f.name] = true

	return nil
}

// checkFrameLocked fails with ErrFrameConflict if f's name belongs to another frame.
func (t *Topology) checkFrameLocked(f *ReferenceFrame) error {
	if f == nil {
		return ErrNilFrame
	}
	if known, ok := t.frames[f.name]; ok && known != f {
		return fmt.Errorf("%w: %q in %s topology", ErrFrameConflict, f.name, t.domain)
	}

	return nil
}

// canAdd reports, without mutating, why addEdge(e) would fail.
// A nil result means addEdge would either insert e or find it already present.
func (t *Topology) canAdd(e *ModelingEdge) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.checkEdgeLocked(e)
}

func (t *Topology) checkEdgeLocked(e *ModelingEdge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.source == nil || e.target == nil {
		return fmt.Errorf("%w: edge %q", ErrNilFrame, e.name)
	}
	if e.domain != t.domain {
		return fmt.Errorf("%w: %s edge %q into %s topology", ErrDomainMismatch, e.domain, e.name, t.domain)
	}
	if known, ok := t.edges[e.name]; ok && known != e {
		return fmt.Errorf("%w: %q", ErrDuplicateComponent, e.name)
	}
	if err := t.checkFrameLocked(e.source); err != nil {
		return err
	}

	return t.checkFrameLocked(e.target)
}

// addEdge inserts e between its frames. It returns false, nil if e is already present.
//
// Errors: ErrNilEdge, ErrNilFrame, ErrDomainMismatch, ErrDuplicateComponent,
// ErrFrameConflict; core failures are wrapped.
func (t *Topology) addEdge(e *ModelingEdge) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkEdgeLocked(e); err != nil {
		return false, err
	}
	if _, ok := t.edges[e.name]; ok {
		return false, nil
	}
	if _, err := t.graph.AddEdge(e.source.name, e.target.name, e.weight, core.WithEdgeID(e.name)); err != nil {
		return false, fmt.Errorf("mechanics: add edge %q: %w", e.name, err)
	}

	t.edges[e.name] = e
	for _, f := range endpoints(e) {
		t.frames[f.name] = f
		t.refs[f.name]++
	}

	return true, nil
}

// removeEdge deletes e. It returns false, nil if e is not present.
// Frames left without edges are dropped unless pinned.
func (t *Topology) removeEdge(e *ModelingEdge) (bool, error) {
	if e == nil {
		return false, ErrNilEdge
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if known, ok := t.edges[e.name]; !ok || known != e {
		return false, nil
	}
	if err := t.graph.RemoveEdge(e.name); err != nil {
		return false, fmt.Errorf("mechanics: remove edge %q: %w", e.name, err)
	}

	delete(t.edges, e.name)
	for _, f := range endpoints(e) {
		t.refs[f.name]--
		if t.refs[f.name] > 0 || t.pinned[f.name] {
			continue
		}
		delete(t.refs, f.name)
		delete(t.frames, f.name)
		if err := t.graph.RemoveVertex(f.name); err != nil {
			return false, fmt.Errorf("mechanics: drop frame %q: %w", f.name, err)
		}
	}

	return true, nil
}

// endpoints lists e's distinct frames.
func endpoints(e *ModelingEdge) []*ReferenceFrame {
	if e.source == e.target {
		return []*ReferenceFrame{e.source}
	}

	return []*ReferenceFrame{e.source, e.target}
}

// HasEdge reports whether this exact edge is present.
func (t *Topology) HasEdge(e *ModelingEdge) bool {
	if e == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.edges[e.name] == e
}

// Edge looks an edge up by component name.
func (t *Topology) Edge(name string) (*ModelingEdge, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.edges[name]

	return e, ok
}

// Edges returns every edge in insertion order.
func (t *Topology) Edges() []*ModelingEdge {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ce := t.graph.Edges()
	out := make([]*ModelingEdge, 0, len(ce))
	for _, e := range ce {
		out = append(out, t.edges[e.ID])
	}

	return out
}

// Len returns the number of edges.
func (t *Topology) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.edges)
}

// Frames returns every frame, sorted by name.
func (t *Topology) Frames() []*ReferenceFrame {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*ReferenceFrame, 0, len(t.frames))
	for _, f := range t.frames {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// Frame looks a frame up by name.
func (t *Topology) Frame(name string) (*ReferenceFrame, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.frames[name]

	return f, ok
}

// Graph returns a snapshot of the backing graph. Edge IDs are component
// names; weights are the currently assigned ones.
func (t *Topology) Graph() *core.Graph {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.graph.Clone()
}

// AssignWeight sets e's weight in both the edge and the graph.
//
// Errors: ErrNilEdge, ErrEdgeNotFound (e not in t), ErrNegativeWeight.
func (t *Topology) AssignWeight(e *ModelingEdge, w int64) error {
	if e == nil {
		return ErrNilEdge
	}
	if w < 0 {
		return fmt.Errorf("%w: %d on %q", ErrNegativeWeight, w, e.name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.edges[e.name] != e {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, e.name)
	}
	if err := t.graph.SetEdgeWeight(e.name, w); err != nil {
		return fmt.Errorf("mechanics: weight %q: %w", e.name, err)
	}
	e.weight = w
	e.assigned = true

	return nil
}

// AssignVariableWeights sets every edge's weight to its NumberOfVariables.
func (t *Topology) AssignVariableWeights() error {
	for _, e := range t.Edges() {
		if err := t.AssignWeight(e, int64(e.NumberOfVariables())); err != nil {
			return err
		}
	}

	return nil
}

// Reachable returns the frames connected to from, in breadth-first order.
// Weights are ignored. An unknown frame yields core.ErrVertexNotFound (wrapped).
func (t *Topology) Reachable(from string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.graph.HasVertex(from) {
		return nil, fmt.Errorf("mechanics: frame %q: %w", from, core.ErrVertexNotFound)
	}
	res, err := bfs.BFS(core.UnweightedView(t.graph), from)
	if err != nil {
		return nil, fmt.Errorf("mechanics: reachability from %q: %w", from, err)
	}

	return res.Order, nil
}

// Unreachable returns, sorted, the frames not connected to from.
func (t *Topology) Unreachable(from string) ([]string, error) {
	reached, err := t.Reachable(from)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(reached))
	for _, id := range reached {
		seen[id] = true
	}

	var out []string
	for _, f := range t.Frames() {
		if !seen[f.name] {
			out = append(out, f.name)
		}
	}

	return out, nil
}

// Loops returns the number of independent closed kinematic loops,
// the cyclomatic number E - V + C. A self-loop counts as one.
func (t *Topology) Loops() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	comps, err := bfs.Components(core.UnweightedView(t.graph))
	if err != nil {
		return 0, fmt.Errorf("mechanics: loops: %w", err)
	}

	return t.graph.EdgeCount() - t.graph.VertexCount() + len(comps), nil
}
