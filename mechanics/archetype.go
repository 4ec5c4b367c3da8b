// File: archetype.go
// Role: Component catalog. Maps each archetype to its variable templates per domain.
// Determinism:
//   - Template order is fixed; Templates returns a fresh copy every call.
// AI-HINT (file):
//   - The table is immutable after package init; never hand out its slices.
//   - Templates is total: unknown archetypes yield an empty slice, not an error.

package mechanics

import (
	"fmt"
	"strings"
)

// Archetype is the closed set of mechanical component kinds.
type Archetype int

// Catalog archetypes, in table order.
const (
	RevoluteJoint Archetype = iota
	UniversalJoint
	SphericalJoint
	PrismaticJoint
	PlanarJoint
	XYZTranslationalJoint
	RevolutePrismaticJoint
	RigidBody
	Arm
	ForceDriver
	MomentDriver
	MotionDriver

	archetypeCount
)

var (
	linearXYZ  = []string{"x", "y", "z"}
	angularXYZ = []string{"phi", "theta", "psi"}
)

// catalogEntry is one row of the component catalog.
type catalogEntry struct {
	name          string
	translational []string
	rotational    []string
}

var catalog = [archetypeCount]catalogEntry{
	RevoluteJoint:          {name: "revolute_joint", rotational: []string{"phi"}},
	UniversalJoint:         {name: "universal_joint", rotational: []string{"phi", "theta"}},
	SphericalJoint:         {name: "spherical_joint", rotational: angularXYZ},
	PrismaticJoint:         {name: "prismatic_joint", translational: []string{"x"}},
	PlanarJoint:            {name: "planar_joint", translational: []string{"x", "y"}},
	XYZTranslationalJoint:  {name: "xyz_translational_joint", translational: linearXYZ},
	RevolutePrismaticJoint: {name: "revolute_prismatic_joint", translational: []string{"x"}, rotational: []string{"phi"}},
	RigidBody:              {name: "rigid_body", translational: linearXYZ, rotational: angularXYZ},
	Arm:                    {name: "arm"},
	ForceDriver:            {name: "force_driver", translational: linearXYZ, rotational: angularXYZ},
	MomentDriver:           {name: "moment_driver", translational: linearXYZ, rotational: angularXYZ},
	MotionDriver:           {name: "motion_driver"},
}

// Archetypes returns every catalog archetype in declaration order.
func Archetypes() []Archetype {
	out := make([]Archetype, 0, archetypeCount)
	for a := Archetype(0); a < archetypeCount; a++ {
		out = append(out, a)
	}

	return out
}

// Valid reports whether a is part of the catalog.
func (a Archetype) Valid() bool {
	return a >= 0 && a < archetypeCount
}

// String returns the canonical snake_case name, e.g. "revolute_joint".
func (a Archetype) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Archetype(%d)", int(a))
	}

	return catalog[a].name
}

// ParseArchetype resolves a canonical name (case-insensitive, "-" accepted for "_").
func ParseArchetype(name string) (Archetype, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for a := Archetype(0); a < archetypeCount; a++ {
		if catalog[a].name == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
}

// Templates returns the ordered variable templates a contributes in domain d.
//
// Total over all inputs: archetypes without variables in d, unknown archetypes
// and unknown domains all yield an empty slice.
func Templates(a Archetype, d Domain) []string {
	if !a.Valid() {
		return []string{}
	}
	var src []string
	switch d {
	case Rotational:
		src = catalog[a].rotational
	case Translational:
		src = catalog[a].translational
	}
	out := make([]string, len(src))
	copy(out, src)

	return out
}
