package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/mechvars/mechanics"
)

// Options configures topology diagrams.
type Options struct {
	// Title is drawn above the graph. Empty means "<domain> topology".
	Title string
	// Ground, when set, is drawn as a double circle.
	Ground string
	// Highlight edges (usually a selected tree) are drawn bold.
	Highlight []*mechanics.ModelingEdge
}

// ToDOT converts a topology to an undirected Graphviz graph.
//
// Frames become nodes sorted by name; edges keep insertion order and are
// labelled "name (weight)". Output is byte-identical for identical input.
func ToDOT(top *mechanics.Topology, opts Options) string {
	title := opts.Title
	if title == "" {
		title = top.Domain().String() + " topology"
	}
	bold := make(map[*mechanics.ModelingEdge]bool, len(opts.Highlight))
	for _, e := range opts.Highlight {
		bold[e] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", title)
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10, color=grey40];\n")
	buf.WriteString("\n")

	for _, f := range top.Frames() {
		if f.Name() == opts.Ground {
			fmt.Fprintf(&buf, "  %q [shape=doublecircle];\n", f.Name())
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", f.Name())
	}

	buf.WriteString("\n")
	for _, e := range top.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%s (%d)", e.Name(), e.Weight()))}
		if bold[e] {
			attrs = append(attrs, "penwidth=3", "color=black")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.Source().Name(), e.Target().Name(), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG lays out a DOT graph with the embedded Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
