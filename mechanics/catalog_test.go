package mechanics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mechvars/mechanics"
)

func TestTemplates(t *testing.T) {
	cases := []struct {
		a     mechanics.Archetype
		trans []string
		rot   []string
	}{
		{mechanics.RevoluteJoint, []string{}, []string{"phi"}},
		{mechanics.UniversalJoint, []string{}, []string{"phi", "theta"}},
		{mechanics.SphericalJoint, []string{}, []string{"phi", "theta", "psi"}},
		{mechanics.PrismaticJoint, []string{"x"}, []string{}},
		{mechanics.PlanarJoint, []string{"x", "y"}, []string{}},
		{mechanics.XYZTranslationalJoint, []string{"x", "y", "z"}, []string{}},
		{mechanics.RevolutePrismaticJoint, []string{"x"}, []string{"phi"}},
		{mechanics.RigidBody, []string{"x", "y", "z"}, []string{"phi", "theta", "psi"}},
		{mechanics.Arm, []string{}, []string{}},
		{mechanics.ForceDriver, []string{"x", "y", "z"}, []string{"phi", "theta", "psi"}},
		{mechanics.MomentDriver, []string{"x", "y", "z"}, []string{"phi", "theta", "psi"}},
		{mechanics.MotionDriver, []string{}, []string{}},
	}
	require.Len(t, cases, len(mechanics.Archetypes()))

	for _, tc := range cases {
		t.Run(tc.a.String(), func(t *testing.T) {
			assert.Equal(t, tc.trans, mechanics.Templates(tc.a, mechanics.Translational))
			assert.Equal(t, tc.rot, mechanics.Templates(tc.a, mechanics.Rotational))
		})
	}
}

func TestTemplatesIsTotalAndCopies(t *testing.T) {
	assert.Empty(t, mechanics.Templates(mechanics.Archetype(99), mechanics.Rotational))
	assert.Empty(t, mechanics.Templates(mechanics.RigidBody, mechanics.Domain(7)))

	got := mechanics.Templates(mechanics.RigidBody, mechanics.Rotational)
	got[0] = "mutated"
	assert.Equal(t, "phi", mechanics.Templates(mechanics.RigidBody, mechanics.Rotational)[0])
}

func TestParseArchetype(t *testing.T) {
	for _, a := range mechanics.Archetypes() {
		got, err := mechanics.ParseArchetype(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := mechanics.ParseArchetype(" Revolute-Joint ")
	require.NoError(t, err)
	assert.Equal(t, mechanics.RevoluteJoint, got)

	_, err = mechanics.ParseArchetype("hinge")
	assert.ErrorIs(t, err, mechanics.ErrUnknownArchetype)
	assert.ErrorIs(t, err, mechanics.ErrInvalidArgument)
}

func TestDomain(t *testing.T) {
	assert.Equal(t, []mechanics.Domain{mechanics.Rotational, mechanics.Translational}, mechanics.Domains())
	assert.Equal(t, "rotational", mechanics.Rotational.String())
	assert.Equal(t, "translational", mechanics.Translational.String())
	assert.Equal(t, "Domain(5)", mechanics.Domain(5).String())
	assert.Equal(t, "Archetype(-1)", mechanics.Archetype(-1).String())
}
