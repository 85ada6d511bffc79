package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/render"
	"github.com/matzehuels/hemicycle/pkg/render/sink"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// RenderFormats produces every format in opts.Formats. The SVG is drawn
// once and shared by the PNG and PDF conversions. With opts.Graphviz the
// SVG comes from neato rather than the native sink.
func RenderFormats(ctx context.Context, l *hemicycle.Layout, p seating.Plan, opts Options) (map[render.Format][]byte, error) {
	out := make(map[render.Format][]byte, len(opts.Formats))
	var svg []byte

	for _, f := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f == render.FormatSVG || f.NeedsConverter() {
			if svg == nil {
				var err error
				if svg, err = drawSVG(ctx, l, p, opts); err != nil {
					return nil, err
				}
			}
		}

		data, err := renderOne(ctx, f, svg, l, p, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		out[f] = data
	}
	return out, nil
}

func drawSVG(ctx context.Context, l *hemicycle.Layout, p seating.Plan, opts Options) ([]byte, error) {
	if !opts.Graphviz {
		return sink.RenderSVG(l, p, opts.svgOptions()...)
	}
	dot, err := sink.ToDOT(l, p, opts.dotOptions())
	if err != nil {
		return nil, err
	}
	return sink.RenderDOTSVG(ctx, dot)
}

func renderOne(ctx context.Context, f render.Format, svg []byte, l *hemicycle.Layout, p seating.Plan, opts Options) ([]byte, error) {
	switch f {
	case render.FormatSVG:
		return svg, nil
	case render.FormatPNG:
		return render.ToPNG(ctx, svg, opts.Scale)
	case render.FormatPDF:
		return render.ToPDF(ctx, svg)
	case render.FormatJSON:
		return sink.RenderJSON(l, p)
	case render.FormatDOT:
		dot, err := sink.ToDOT(l, p, opts.dotOptions())
		return []byte(dot), err
	}
	_, err := render.ParseFormat(string(f))
	return nil, err
}
