package mechanics

import "fmt"

// Component is a named joint, body or driver between two frames.
//
// Its two ModelingEdges (one per domain) are derived once in NewComponent and
// share the component's name, frames and archetype for its whole life.
type Component struct {
	name          string
	source        *ReferenceFrame
	target        *ReferenceFrame
	archetype     Archetype
	rotational    *ModelingEdge
	translational *ModelingEdge
}

// NewComponent returns a component connecting source to target.
//
// Errors (all wrap ErrInvalidArgument):
//   - ErrEmptyName        : name is "".
//   - ErrNilFrame         : source or target is nil.
//   - ErrUnknownArchetype : a is outside the catalog.
//
// Self-loops (source == target) are accepted.
func NewComponent(name string, source, target *ReferenceFrame, a Archetype) (*Component, error) {
	if err := validateConnector(name, source, target, a); err != nil {
		return nil, err
	}
	rot, err := NewModelingEdge(name, source, target, a, Rotational)
	if err != nil {
		return nil, err
	}
	trans, err := NewModelingEdge(name, source, target, a, Translational)
	if err != nil {
		return nil, err
	}

	return &Component{
		name:          name,
		source:        source,
		target:        target,
		archetype:     a,
		rotational:    rot,
		translational: trans,
	}, nil
}

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// Source returns the source frame.
func (c *Component) Source() *ReferenceFrame { return c.source }

// Target returns the target frame.
func (c *Component) Target() *ReferenceFrame { return c.target }

// Archetype returns the component archetype.
func (c *Component) Archetype() Archetype { return c.archetype }

// RotationalEdge returns the cached rotational edge.
func (c *Component) RotationalEdge() *ModelingEdge { return c.rotational }

// TranslationalEdge returns the cached translational edge.
func (c *Component) TranslationalEdge() *ModelingEdge { return c.translational }

// Edge returns the cached edge for d, or nil for an unknown domain.
func (c *Component) Edge(d Domain) *ModelingEdge {
	switch d {
	case Rotational:
		return c.rotational
	case Translational:
		return c.translational
	default:
		return nil
	}
}

// String returns "Component[name archetype source -> target]".
func (c *Component) String() string {
	return fmt.Sprintf("Component[%s %s %s -> %s]", c.name, c.archetype, c.source.name, c.target.name)
}
