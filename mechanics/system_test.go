package mechanics_test

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mechvars/mechanics"
)

func newSystem(t *testing.T, ground *mechanics.ReferenceFrame) *mechanics.System {
	t.Helper()
	s, err := mechanics.NewSystem(ground)
	require.NoError(t, err)

	return s
}

func edgeNames(top *mechanics.Topology) []string {
	var out []string
	for _, e := range top.Edges() {
		out = append(out, e.Name())
	}

	return out
}

func frameNames(top *mechanics.Topology) []string {
	var out []string
	for _, f := range top.Frames() {
		out = append(out, f.Name())
	}

	return out
}

func TestNewSystem(t *testing.T) {
	_, err := mechanics.NewSystem(nil)
	assert.ErrorIs(t, err, mechanics.ErrNilFrame)

	ground := frame(t, "Ground")
	s := newSystem(t, ground)
	assert.Same(t, ground, s.Ground())
	assert.Zero(t, s.Len())
	for _, d := range mechanics.Domains() {
		top := s.Topology(d)
		require.NotNil(t, top)
		assert.Equal(t, d, top.Domain())
		assert.Equal(t, []string{"Ground"}, frameNames(top), "ground is pinned in %s", d)
	}
	assert.Same(t, s.RotationalTopology(), s.Topology(mechanics.Rotational))
	assert.Same(t, s.TranslationalTopology(), s.Topology(mechanics.Translational))
	assert.Nil(t, s.Topology(mechanics.Domain(4)))
}

func TestAddRemoveSymmetry(t *testing.T) {
	ground, cs1, cs2 := frame(t, "Ground"), frame(t, "CS1"), frame(t, "CS2")
	s := newSystem(t, ground)
	m1 := component(t, "m1", ground, cs2, mechanics.RigidBody)
	h12 := component(t, "h12", ground, cs1, mechanics.RevoluteJoint)
	_, err := s.AddComponent(m1)
	require.NoError(t, err)

	beforeComponents := s.Components()
	beforeRot, beforeTrans := edgeNames(s.RotationalTopology()), edgeNames(s.TranslationalTopology())
	beforeFrames := frameNames(s.RotationalTopology())

	added, err := s.AddComponent(h12)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, s.Has(h12))
	assert.True(t, s.RotationalTopology().HasEdge(h12.RotationalEdge()))
	assert.True(t, s.TranslationalTopology().HasEdge(h12.TranslationalEdge()))
	assert.Equal(t, []string{"CS1", "CS2", "Ground"}, frameNames(s.RotationalTopology()))

	removed, err := s.RemoveComponent(h12)
	require.NoError(t, err)
	assert.True(t, removed)

	assert.Equal(t, beforeComponents, s.Components())
	assert.Equal(t, beforeRot, edgeNames(s.RotationalTopology()))
	assert.Equal(t, beforeTrans, edgeNames(s.TranslationalTopology()))
	assert.Equal(t, beforeFrames, frameNames(s.RotationalTopology()))
	assert.False(t, s.Has(h12))
}

func TestAddRemoveIdempotence(t *testing.T) {
	ground, cs1 := frame(t, "Ground"), frame(t, "CS1")
	s := newSystem(t, ground)
	h := component(t, "h1", ground, cs1, mechanics.RevoluteJoint)

	added, err := s.AddComponent(h)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = s.AddComponent(h)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, s.Len())

	removed, err := s.RemoveComponent(h)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.RemoveComponent(h)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = s.AddComponent(nil)
	assert.ErrorIs(t, err, mechanics.ErrNilComponent)
	_, err = s.RemoveComponent(nil)
	assert.ErrorIs(t, err, mechanics.ErrInvalidArgument)
}

func TestDuplicateComponentName(t *testing.T) {
	ground, cs1, cs2 := frame(t, "Ground"), frame(t, "CS1"), frame(t, "CS2")
	s := newSystem(t, ground)
	_, err := s.AddComponent(component(t, "h1", ground, cs1, mechanics.RevoluteJoint))
	require.NoError(t, err)

	other := component(t, "h1", ground, cs2, mechanics.RevoluteJoint)
	added, err := s.AddComponent(other)
	assert.False(t, added)
	assert.ErrorIs(t, err, mechanics.ErrDuplicateComponent)

	removed, err := s.RemoveComponent(other)
	require.NoError(t, err)
	assert.False(t, removed, "a namesake is not the registered component")
	assert.Equal(t, 1, s.Len())
}

func TestFrameConflictLeavesSystemUnchanged(t *testing.T) {
	ground, cs1 := frame(t, "Ground"), frame(t, "CS1")
	s := newSystem(t, ground)
	_, err := s.AddComponent(component(t, "h1", ground, cs1, mechanics.RevoluteJoint))
	require.NoError(t, err)

	impostor := frame(t, "CS1")
	added, err := s.AddComponent(component(t, "m2", ground, impostor, mechanics.RigidBody))
	assert.False(t, added)
	assert.ErrorIs(t, err, mechanics.ErrFrameConflict)

	fakeGround := frame(t, "Ground")
	_, err = s.AddComponent(component(t, "m3", fakeGround, cs1, mechanics.RigidBody))
	assert.ErrorIs(t, err, mechanics.ErrFrameConflict)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"h1"}, edgeNames(s.RotationalTopology()))
	assert.Equal(t, []string{"h1"}, edgeNames(s.TranslationalTopology()))
}

// TestConflictInOneTopologyOnly registers a frame directly in the translational
// topology, then checks that AddComponent touches neither topology.
func TestConflictInOneTopologyOnly(t *testing.T) {
	ground, cs9 := frame(t, "Ground"), frame(t, "CS9")
	s := newSystem(t, ground)

	stray, err := mechanics.NewModelingEdge("stray", ground, frame(t, "CS9"), mechanics.Arm, mechanics.Translational)
	require.NoError(t, err)
	_, err = mechanics.AddEdgeTo(s.TranslationalTopology(), stray)
	require.NoError(t, err)

	_, err = s.AddComponent(component(t, "m9", ground, cs9, mechanics.RigidBody))
	assert.ErrorIs(t, err, mechanics.ErrFrameConflict)
	assert.Empty(t, edgeNames(s.RotationalTopology()))
	assert.Equal(t, []string{"Ground"}, frameNames(s.RotationalTopology()))
	assert.Zero(t, s.Len())
}

// TestTopologyAccessorsKeepMembership checks that a topology handed out by
// System offers no way to add or remove edges behind the system's back.
func TestTopologyAccessorsKeepMembership(t *testing.T) {
	ground, a := frame(t, "Ground"), frame(t, "A")
	s := newSystem(t, ground)
	h1 := component(t, "h1", ground, a, mechanics.RevoluteJoint)
	_, err := s.AddComponent(h1)
	require.NoError(t, err)

	var methods []string
	typ := reflect.TypeOf(s.RotationalTopology())
	for i := 0; i < typ.NumMethod(); i++ {
		methods = append(methods, typ.Method(i).Name)
	}
	sort.Strings(methods)
	assert.Equal(t, []string{
		"AssignVariableWeights", "AssignWeight", "Domain", "Edge", "Edges",
		"Frame", "Frames", "Graph", "HasEdge", "Len", "Loops", "Reachable", "Unreachable",
	}, methods)

	for _, d := range mechanics.Domains() {
		top := s.Topology(d)
		g := top.Graph()
		require.NoError(t, g.RemoveEdge("h1"))
		assert.True(t, top.HasEdge(h1.Edge(d)), "editing the graph snapshot leaves %s untouched", d)
		require.NoError(t, top.AssignVariableWeights())
	}

	removed, err := s.RemoveComponent(h1)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.Has(h1))
	assert.Zero(t, s.RotationalTopology().Len())
	assert.Zero(t, s.TranslationalTopology().Len())
}

func TestComponentsOrderAndLookup(t *testing.T) {
	ground := frame(t, "Ground")
	s := newSystem(t, ground)
	names := []string{"m4", "m1", "r11", "b15"}
	for i, n := range names {
		_, err := s.AddComponent(component(t, n, ground, frame(t, fmt.Sprintf("CS%d", i)), mechanics.Arm))
		require.NoError(t, err)
	}

	var got []string
	for _, c := range s.Components() {
		got = append(got, c.Name())
	}
	assert.Equal(t, names, got)

	c, ok := s.Component("r11")
	require.True(t, ok)
	removed, err := s.RemoveComponent(c)
	require.NoError(t, err)
	require.True(t, removed)

	got = got[:0]
	for _, c := range s.Components() {
		got = append(got, c.Name())
	}
	assert.Equal(t, []string{"m4", "m1", "b15"}, got)
	_, ok = s.Component("r11")
	assert.False(t, ok)
}

func TestSystemString(t *testing.T) {
	ground, cs1 := frame(t, "Ground"), frame(t, "CS1")
	s := newSystem(t, ground)
	_, _ = s.AddComponent(component(t, "h12", ground, cs1, mechanics.RevoluteJoint))
	_, _ = s.AddComponent(component(t, "r5", cs1, frame(t, "CS2"), mechanics.Arm))

	want := "System[ground Ground, 2 components]\n" +
		"  Component[h12 revolute_joint Ground -> CS1]\n" +
		"  Component[r5 arm CS1 -> CS2]"
	assert.Equal(t, want, s.String())
}

func TestConcurrentAdd(t *testing.T) {
	ground := frame(t, "Ground")
	s := newSystem(t, ground)

	const n = 64
	comps := make([]*mechanics.Component, n)
	for i := range comps {
		comps[i] = component(t, fmt.Sprintf("c%d", i), ground, frame(t, fmt.Sprintf("CS%d", i)), mechanics.RevoluteJoint)
	}

	var wg sync.WaitGroup
	for _, c := range comps {
		wg.Add(1)
		go func(c *mechanics.Component) {
			defer wg.Done()
			_, _ = s.AddComponent(c)
			_ = s.Components()
		}(c)
	}
	wg.Wait()

	assert.Equal(t, n, s.Len())
	assert.Equal(t, n, s.RotationalTopology().Len())
	assert.Equal(t, n, s.TranslationalTopology().Len())
}
