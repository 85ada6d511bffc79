// Package render turns hemicycle layouts into files.
//
// The [sink] subpackage writes a layout and its seating plan as SVG, JSON
// or Graphviz DOT. This package holds what every sink shares: the list of
// output formats and conversion of SVG to PDF and PNG.
//
//	svg, err := sink.RenderSVG(layout, plan, sink.WithLegend())
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// PDF and PNG conversion shells out to rsvg-convert from librsvg.
//
// [sink]: github.com/matzehuels/hemicycle/pkg/render/sink
package render
