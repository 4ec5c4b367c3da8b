package modelvars_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mechvars/mechanics"
)

// frames creates one frame per name.
func frames(t *testing.T, names ...string) map[string]*mechanics.ReferenceFrame {
	t.Helper()
	out := make(map[string]*mechanics.ReferenceFrame, len(names))
	for _, n := range names {
		f, err := mechanics.NewReferenceFrame(n)
		require.NoError(t, err)
		out[n] = f
	}

	return out
}

type part struct {
	name     string
	src, dst string
	arch     mechanics.Archetype
}

// manipulatorParts is the spatial serial manipulator: four bodies on ground,
// seven arms, three revolute joints and one spherical joint.
var manipulatorParts = []part{
	{"m1", "Ground", "CS2", mechanics.RigidBody},
	{"m2", "Ground", "CS5", mechanics.RigidBody},
	{"m3", "Ground", "CS8", mechanics.RigidBody},
	{"m4", "Ground", "CS11", mechanics.RigidBody},
	{"r5", "CS2", "CS1", mechanics.Arm},
	{"r6", "CS2", "CS3", mechanics.Arm},
	{"r7", "CS5", "CS4", mechanics.Arm},
	{"r8", "CS5", "CS6", mechanics.Arm},
	{"r9", "CS8", "CS7", mechanics.Arm},
	{"r10", "CS8", "CS9", mechanics.Arm},
	{"r11", "CS11", "CS10", mechanics.Arm},
	{"h12", "Ground", "CS1", mechanics.RevoluteJoint},
	{"h13", "CS3", "CS4", mechanics.RevoluteJoint},
	{"h14", "CS6", "CS7", mechanics.RevoluteJoint},
	{"b15", "CS9", "CS10", mechanics.SphericalJoint},
}

// buildSystem registers parts, creating frames on first use. Ground is parts' "Ground".
func buildSystem(t *testing.T, parts []part) *mechanics.System {
	t.Helper()
	fs := frames(t, "Ground")
	get := func(n string) *mechanics.ReferenceFrame {
		if f, ok := fs[n]; ok {
			return f
		}
		f, err := mechanics.NewReferenceFrame(n)
		require.NoError(t, err)
		fs[n] = f

		return f
	}

	s, err := mechanics.NewSystem(fs["Ground"])
	require.NoError(t, err)
	for _, p := range parts {
		c, err := mechanics.NewComponent(p.name, get(p.src), get(p.dst), p.arch)
		require.NoError(t, err)
		added, err := s.AddComponent(c)
		require.NoError(t, err)
		require.True(t, added)
	}

	return s
}

// smallTree is O, A, B, C, D with two heavy bodies, two arms and two revolute
// joints, grounded at O. It returns the rotational topology.
func smallTree(t *testing.T) (*mechanics.Topology, map[string]*mechanics.ReferenceFrame) {
	t.Helper()
	fs := frames(t, "O", "A", "B", "C", "D")
	s, err := mechanics.NewSystem(fs["O"])
	require.NoError(t, err)
	for _, p := range []part{
		{"m1", "O", "A", mechanics.RigidBody},
		{"m2", "O", "B", mechanics.RigidBody},
		{"r3", "A", "C", mechanics.Arm},
		{"r4", "B", "D", mechanics.Arm},
		{"h5", "O", "A", mechanics.RevoluteJoint},
		{"h6", "C", "D", mechanics.RevoluteJoint},
	} {
		c, err := mechanics.NewComponent(p.name, fs[p.src], fs[p.dst], p.arch)
		require.NoError(t, err)
		_, err = s.AddComponent(c)
		require.NoError(t, err)
	}

	return s.RotationalTopology(), fs
}

func names(edges []*mechanics.ModelingEdge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Name()
	}

	return out
}
