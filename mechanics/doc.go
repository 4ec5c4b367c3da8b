// Package mechanics models a mechanism as two weighted graphs over body-fixed
// reference frames, one per motion domain.
//
// # What & Why
//
//   - A Component (joint, rigid body, arm, driver) connects a source and a target
//     ReferenceFrame and is typed by an Archetype.
//   - The Archetype fixes, per Domain, which coordinates the component adds:
//     a revolute joint adds "phi" rotationally and nothing translationally; a rigid
//     body adds x, y, z and phi, theta, psi; an arm adds nothing.
//   - Each Component derives one ModelingEdge per Domain at construction. The edge
//     names its variables "<template>_<component>", e.g. "phi_h12".
//   - A System holds the components plus a Rotational and a Translational Topology.
//     Selecting coordinates then reduces to one tree problem per Topology.
//
// # Catalog
//
//	archetype                 translational   rotational
//	revolute_joint            -               phi
//	universal_joint           -               phi theta
//	spherical_joint           -               phi theta psi
//	prismatic_joint           x               -
//	planar_joint              x y             -
//	xyz_translational_joint   x y z           -
//	revolute_prismatic_joint  x               phi
//	rigid_body                x y z           phi theta psi
//	arm                       -               -
//	force_driver              x y z           phi theta psi
//	moment_driver             x y z           phi theta psi
//	motion_driver             -               -
//
// # Invariants
//
//   - A component is registered in a System iff both its edges are in their topologies.
//   - Within a System, a frame name denotes one *ReferenceFrame and a component name one *Component.
//   - Ground is a vertex of both topologies for the life of the System.
//   - Once assigned by the selector, an edge's weight equals its NumberOfVariables.
//
// # Errors
//
// Every validation failure wraps ErrInvalidArgument; test for the specific
// sentinel (ErrNilComponent, ErrFrameConflict, ...) or the root with errors.Is.
package mechanics
