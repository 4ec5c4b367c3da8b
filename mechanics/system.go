// File: system.go
// Role: System container. Owns the component set, both topologies and the ground frame.
// Determinism:
//   - Components() preserves insertion order.
// Concurrency:
//   - mu guards membership: writers take Lock, snapshots take RLock.
//   - Lock order: System.mu, then Topology.mu.
// AI-HINT (file):
//   - A component is registered iff both of its edges are in their topologies.
//   - Add/Remove validate everything first; a failing write rolls back completed steps.

package mechanics

import (
	"fmt"
	"strings"
	"sync"
)

// System is a mechanism: components between reference frames, split into a
// rotational and a translational Topology sharing one ground frame.
type System struct {
	mu         sync.RWMutex
	ground     *ReferenceFrame
	components []*Component
	byName     map[string]*Component
	topologies [2]*Topology
}

// NewSystem returns an empty system. Ground is pinned in both topologies at once,
// so it is a vertex of each graph even before any component touches it.
//
// Errors: ErrNilFrame if ground is nil, ErrEmptyName if it is unnamed.
func NewSystem(ground *ReferenceFrame) (*System, error) {
	if ground == nil {
		return nil, ErrNilFrame
	}
	if ground.name == "" {
		return nil, ErrEmptyName
	}

	s := &System{
		ground: ground,
		byName: make(map[string]*Component),
	}
	for _, d := range Domains() {
		t := newTopology(d)
		if err := t.pin(ground); err != nil {
			return nil, err
		}
		s.topologies[d] = t
	}

	return s, nil
}

// AddComponent registers c and its two edges as one step.
//
// Returns false, nil if c is already registered.
//
// Errors:
//   - ErrNilComponent       : c is nil.
//   - ErrDuplicateComponent : another component already uses c's name.
//   - ErrFrameConflict      : one of c's frames shares a name with a different registered frame.
//
// On error the system is unchanged.
func (s *System) AddComponent(c *Component) (bool, error) {
	if c == nil {
		return false, ErrNilComponent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if known, ok := s.byName[c.name]; ok {
		if known == c {
			return false, nil
		}

		return false, fmt.Errorf("%w: %q", ErrDuplicateComponent, c.name)
	}
	for _, d := range Domains() {
		if err := s.topologies[d].canAdd(c.Edge(d)); err != nil {
			return false, err
		}
	}

	var done []Domain
	for _, d := range Domains() {
		added, err := s.topologies[d].addEdge(c.Edge(d))
		if err == nil && !added {
			err = fmt.Errorf("%w: edge %q already in %s topology", ErrDuplicateComponent, c.name, d)
		}
		if err != nil {
			s.rollbackAdd(c, done)

			return false, err
		}
		done = append(done, d)
	}

	s.components = append(s.components, c)
	s.byName[c.name] = c

	return true, nil
}

// rollbackAdd removes c's edges from the listed topologies.
func (s *System) rollbackAdd(c *Component, done []Domain) {
	for i := len(done) - 1; i >= 0; i-- {
		_, _ = s.topologies[done[i]].removeEdge(c.Edge(done[i]))
	}
}

// RemoveComponent unregisters c and its two edges as one step.
//
// Returns false, nil if c is not registered. Errors: ErrNilComponent; core
// failures are wrapped and leave the system unchanged.
func (s *System) RemoveComponent(c *Component) (bool, error) {
	if c == nil {
		return false, ErrNilComponent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byName[c.name] != c {
		return false, nil
	}

	var done []Domain
	for _, d := range Domains() {
		removed, err := s.topologies[d].removeEdge(c.Edge(d))
		if err == nil && !removed {
			err = fmt.Errorf("%w: %q in %s topology", ErrEdgeNotFound, c.name, d)
		}
		if err != nil {
			for i := len(done) - 1; i >= 0; i-- {
				_, _ = s.topologies[done[i]].addEdge(c.Edge(done[i]))
			}

			return false, err
		}
		done = append(done, d)
	}

	for i, known := range s.components {
		if known == c {
			s.components = append(s.components[:i:i], s.components[i+1:]...)
			break
		}
	}
	delete(s.byName, c.name)

	return true, nil
}

// Components returns a snapshot of the registered components in insertion order.
func (s *System) Components() []*Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Component, len(s.components))
	copy(out, s.components)

	return out
}

// Component looks a component up by name.
func (s *System) Component(name string) (*Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byName[name]

	return c, ok
}

// Has reports whether this exact component is registered.
func (s *System) Has(c *Component) bool {
	if c == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byName[c.name] == c
}

// Len returns the number of registered components.
func (s *System) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.components)
}

// Ground returns the ground frame.
func (s *System) Ground() *ReferenceFrame { return s.ground }

// Topology returns the topology of d, or nil for an unknown domain.
func (s *System) Topology(d Domain) *Topology {
	if !d.Valid() {
		return nil
	}

	return s.topologies[d]
}

// RotationalTopology returns the rotational topology.
func (s *System) RotationalTopology() *Topology { return s.topologies[Rotational] }

// TranslationalTopology returns the translational topology.
func (s *System) TranslationalTopology() *Topology { return s.topologies[Translational] }

// String lists the ground frame and every component, one per line.
func (s *System) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "System[ground %s, %d components]", s.ground.name, len(s.components))
	for _, c := range s.components {
		sb.WriteString("\n  ")
		sb.WriteString(c.String())
	}

	return sb.String()
}
