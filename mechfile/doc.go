// Package mechfile loads mechanism definitions from HCL or TOML files and
// assembles them into a mechanics.System.
//
// # HCL
//
//	ground = "Ground"
//
//	frame "CS1" { description = "upper arm, proximal end" }
//
//	component "h12" {
//	  type   = archetype.revolute_joint
//	  source = "Ground"
//	  target = "CS1"
//	}
//
// Every catalog archetype is available as archetype.<name>; a plain string
// works too.
//
// # TOML
//
//	ground = "Ground"
//
//	[[frame]]
//	name = "CS1"
//
//	[[component]]
//	name   = "h12"
//	type   = "revolute_joint"
//	source = "Ground"
//	target = "CS1"
//
// Unknown keys are rejected.
//
// # Frames
//
// Declaring frames is optional. Without frame blocks every name a component
// mentions becomes a frame. With at least one, components may only reference
// declared frames (ground excepted), which catches typos such as "CS01".
package mechfile
