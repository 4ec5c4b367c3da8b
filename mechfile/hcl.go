package mechfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mechvars/mechanics"
)

// hclFile is the top-level schema of an .hcl mechanism file.
type hclFile struct {
	Ground     string          `hcl:"ground"`
	Frames     []*hclFrame     `hcl:"frame,block"`
	Components []*hclComponent `hcl:"component,block"`
}

type hclFrame struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
}

type hclComponent struct {
	Name   string `hcl:"name,label"`
	Type   string `hcl:"type"`
	Source string `hcl:"source"`
	Target string `hcl:"target"`
}

// EvalContext exposes every catalog archetype as archetype.<name>, so
// `type = archetype.revolute_joint` and `type = "revolute_joint"` are equivalent.
func EvalContext() *hcl.EvalContext {
	names := make(map[string]cty.Value, len(mechanics.Archetypes()))
	for _, a := range mechanics.Archetypes() {
		names[a.String()] = cty.StringVal(a.String())
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"archetype": cty.ObjectVal(names),
		},
	}
}

// ParseHCL decodes an HCL mechanism definition. filename only labels diagnostics.
func ParseHCL(src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrSyntax, filename, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, EvalContext(), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrSyntax, filename, diags)
	}

	def := &Definition{Ground: raw.Ground, Filename: filename}
	for _, f := range raw.Frames {
		def.Frames = append(def.Frames, FrameSpec{Name: f.Name, Description: f.Description})
	}
	for _, c := range raw.Components {
		def.Components = append(def.Components, ComponentSpec{
			Name:   c.Name,
			Type:   c.Type,
			Source: c.Source,
			Target: c.Target,
		})
	}

	return def, nil
}
