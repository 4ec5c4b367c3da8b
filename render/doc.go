// Package render draws mechanism topologies as Graphviz diagrams.
//
// ToDOT emits DOT text for one mechanics.Topology: frames as nodes, components
// as edges labelled with name and weight, selected tree edges in bold.
// RenderSVG turns DOT into SVG in-process via github.com/goccy/go-graphviz,
// so no graphviz binary is needed.
//
//	res, _ := modelvars.Select(sys)
//	rot := res.Domain(mechanics.Rotational)
//	dot := render.ToDOT(sys.RotationalTopology(), render.Options{
//		Ground:    sys.Ground().Name(),
//		Highlight: rot.Tree,
//	})
//	svg, err := render.RenderSVG(ctx, dot)
package render
