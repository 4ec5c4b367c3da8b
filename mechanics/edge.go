package mechanics

import (
	"fmt"
	"strings"
)

// variableSeparator joins a template token and a component name: phi + _ + h12.
const variableSeparator = "_"

// ModelingEdge is one component's contribution to one domain: an undirected
// connection between two frames whose cost is the number of variables it adds.
//
// Variable names are fixed at construction. The weight stays unassigned (zero)
// until a Topology assigns it; the selector assigns NumberOfVariables().
type ModelingEdge struct {
	name      string
	source    *ReferenceFrame
	target    *ReferenceFrame
	archetype Archetype
	domain    Domain
	variables []string
	weight    int64
	assigned  bool
}

// NewModelingEdge builds the edge for component name in domain d.
//
// Errors: ErrEmptyName, ErrNilFrame, ErrUnknownArchetype, ErrUnknownDomain.
// Source and target may be the same frame.
func NewModelingEdge(name string, source, target *ReferenceFrame, a Archetype, d Domain) (*ModelingEdge, error) {
	if err := validateConnector(name, source, target, a); err != nil {
		return nil, err
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDomain, int(d))
	}

	templates := Templates(a, d)
	variables := make([]string, len(templates))
	for i, t := range templates {
		variables[i] = t + variableSeparator + name
	}

	return &ModelingEdge{
		name:      name,
		source:    source,
		target:    target,
		archetype: a,
		domain:    d,
		variables: variables,
	}, nil
}

// validateConnector checks the arguments shared by edges and components.
func validateConnector(name string, source, target *ReferenceFrame, a Archetype) error {
	if name == "" {
		return ErrEmptyName
	}
	if source == nil || target == nil {
		return fmt.Errorf("%w: component %q", ErrNilFrame, name)
	}
	if source.name == "" || target.name == "" {
		return fmt.Errorf("%w: frame of component %q", ErrEmptyName, name)
	}
	if source != target && source.name == target.name {
		return fmt.Errorf("%w: %q at both ends of component %q", ErrFrameConflict, source.name, name)
	}
	if !a.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownArchetype, int(a))
	}

	return nil
}

// Name returns the owning component's name.
func (e *ModelingEdge) Name() string { return e.name }

// Source returns the source frame.
func (e *ModelingEdge) Source() *ReferenceFrame { return e.source }

// Target returns the target frame.
func (e *ModelingEdge) Target() *ReferenceFrame { return e.target }

// Archetype returns the owning component's archetype.
func (e *ModelingEdge) Archetype() Archetype { return e.archetype }

// Domain returns the edge's domain.
func (e *ModelingEdge) Domain() Domain { return e.domain }

// Variables returns a copy of the fully-qualified variable names, catalog order.
func (e *ModelingEdge) Variables() []string {
	out := make([]string, len(e.variables))
	copy(out, e.variables)

	return out
}

// NumberOfVariables is len(Variables()).
func (e *ModelingEdge) NumberOfVariables() int { return len(e.variables) }

// Weight returns the assigned weight, or 0 when unassigned.
func (e *ModelingEdge) Weight() int64 { return e.weight }

// Assigned reports whether a Topology has set the weight.
func (e *ModelingEdge) Assigned() bool { return e.assigned }

// IsLoop reports whether the edge joins a frame to itself.
func (e *ModelingEdge) IsLoop() bool { return e.source == e.target }

// String returns a one-line description including the weight.
func (e *ModelingEdge) String() string {
	return fmt.Sprintf("ModelingEdge[%s %s %s -> %s, %s, weight %d, [%s]]",
		e.name, e.archetype, e.source.name, e.target.name, e.domain, e.weight,
		strings.Join(e.variables, " "))
}
