// SPDX-License-Identifier: MIT

package mechfile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mechvars/mechanics"
)

// Sentinel errors for mechanism definitions.
var (
	// ErrUnsupportedFormat indicates a file extension other than .hcl or .toml.
	ErrUnsupportedFormat = errors.New("mechfile: unsupported format")

	// ErrSyntax indicates a parse or decode failure; the wrapped diagnostics carry positions.
	ErrSyntax = errors.New("mechfile: syntax error")

	// ErrUnknownKey indicates a key the schema does not define.
	ErrUnknownKey = errors.New("mechfile: unknown key")

	// ErrMissingGround indicates an absent or empty ground attribute.
	ErrMissingGround = errors.New("mechfile: ground frame not set")

	// ErrDuplicateFrame indicates a frame declared twice.
	ErrDuplicateFrame = errors.New("mechfile: frame declared twice")

	// ErrUndeclaredFrame indicates a component referencing a frame missing from the
	// declared frame list. Only checked when at least one frame is declared.
	ErrUndeclaredFrame = errors.New("mechfile: frame not declared")
)

// Definition is a parsed, not yet validated, mechanism description.
type Definition struct {
	// Ground names the fixed frame.
	Ground string
	// Frames lists declared frames. Empty means frames are implied by components.
	Frames []FrameSpec
	// Components in file order.
	Components []ComponentSpec
	// Filename is used in error messages.
	Filename string
}

// FrameSpec declares a reference frame.
type FrameSpec struct {
	Name        string
	Description string
}

// ComponentSpec declares a component; Type is an archetype name such as "revolute_joint".
type ComponentSpec struct {
	Name   string
	Type   string
	Source string
	Target string
}

// Build validates d and assembles a System, registering components in file order.
//
// Errors:
//   - ErrMissingGround, ErrDuplicateFrame, ErrUndeclaredFrame.
//   - mechanics.ErrUnknownArchetype and every AddComponent error, wrapped with the component name.
func (d *Definition) Build() (*mechanics.System, error) {
	if d.Ground == "" {
		return nil, fmt.Errorf("%s: %w", d.Filename, ErrMissingGround)
	}

	frames, err := d.declaredFrames()
	if err != nil {
		return nil, err
	}
	strict := len(frames) > 0
	frame := func(name string) (*mechanics.ReferenceFrame, error) {
		if f, ok := frames[name]; ok {
			return f, nil
		}
		if strict && name != d.Ground {
			return nil, fmt.Errorf("%s: %w: %q", d.Filename, ErrUndeclaredFrame, name)
		}
		f, err := mechanics.NewReferenceFrame(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Filename, err)
		}
		frames[name] = f

		return f, nil
	}

	ground, err := frame(d.Ground)
	if err != nil {
		return nil, err
	}
	sys, err := mechanics.NewSystem(ground)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Filename, err)
	}

	for _, spec := range d.Components {
		c, err := d.component(spec, frame)
		if err != nil {
			return nil, err
		}
		if _, err := sys.AddComponent(c); err != nil {
			return nil, fmt.Errorf("%s: component %q: %w", d.Filename, spec.Name, err)
		}
	}

	return sys, nil
}

// declaredFrames indexes d.Frames, rejecting duplicates.
func (d *Definition) declaredFrames() (map[string]*mechanics.ReferenceFrame, error) {
	out := make(map[string]*mechanics.ReferenceFrame, len(d.Frames)+1)
	for _, fs := range d.Frames {
		if _, dup := out[fs.Name]; dup {
			return nil, fmt.Errorf("%s: %w: %q", d.Filename, ErrDuplicateFrame, fs.Name)
		}
		f, err := mechanics.NewReferenceFrame(fs.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: frame: %w", d.Filename, err)
		}
		out[fs.Name] = f
	}

	return out, nil
}

func (d *Definition) component(spec ComponentSpec, frame func(string) (*mechanics.ReferenceFrame, error)) (*mechanics.Component, error) {
	a, err := mechanics.ParseArchetype(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("%s: component %q: %w", d.Filename, spec.Name, err)
	}
	src, err := frame(spec.Source)
	if err != nil {
		return nil, err
	}
	dst, err := frame(spec.Target)
	if err != nil {
		return nil, err
	}
	c, err := mechanics.NewComponent(spec.Name, src, dst, a)
	if err != nil {
		return nil, fmt.Errorf("%s: component %q: %w", d.Filename, spec.Name, err)
	}

	return c, nil
}
