package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// DOTOptions configures [ToDOT].
type DOTOptions struct {
	// Width is the drawing width in points. Defaults to 576 (8 inches).
	Width float64

	// Labels writes each group's character into its seats.
	Labels bool
}

// Alpha suffixes applied to fill colors of uncertain seats.
var statusAlpha = map[seating.SeatStatus]string{
	seating.StatusCertain:  "",
	seating.StatusLikely:   "8c",
	seating.StatusUnlikely: "26",
}

// ToDOT converts a layout and its plan to a Graphviz graph in which every
// seat is a node pinned at its position. Render it with neato, which
// honours pinned positions, or with [RenderDOTSVG].
func ToDOT(l *hemicycle.Layout, p seating.Plan, opts DOTOptions) (string, error) {
	if err := checkPlan(l, p); err != nil {
		return "", err
	}
	width := opts.Width
	if width <= 0 {
		width = 576
	}
	minX, minY, _, _ := l.Bounds()
	scale := width / l.Width()
	diameter := l.SeatSpacing() * scale * DefaultSeatScale / 72 // inches

	var buf bytes.Buffer
	buf.WriteString("graph hemicycle {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%.4f, label=\"\", style=filled, fontname=\"Helvetica\", fontsize=%.1f];\n",
		diameter, diameter*72*0.6)
	buf.WriteString("\n")

	groups := p.Groups()
	for i := range p.NumberOfSeats() {
		pos := l.Seat(i)
		gi := p.GroupIndexAt(i)
		g := groups[gi]
		status := p.StatusAt(i)

		x := (pos.X() - minX) * scale
		y := (pos.Y() - minY) * scale
		attrs := []string{
			fmt.Sprintf("pos=\"%.2f,%.2f!\"", x, y),
			fmt.Sprintf("color=%q", primaryColor(g)),
			fmt.Sprintf("tooltip=%q", groupName(g, gi)+" ("+status.String()+")"),
		}
		attrs = append(attrs, dotFill(g, status)...)
		if opts.Labels && g.Character != 0 {
			attrs = append(attrs, fmt.Sprintf("label=%q", string(g.Character)))
			if len(g.Colors) > 0 {
				attrs = append(attrs, fmt.Sprintf("fontcolor=%q", textColor(g.Colors[0])))
			}
		}
		fmt.Fprintf(&buf, "  seat%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func dotFill(g seating.ParliamentaryGroup, status seating.SeatStatus) []string {
	alpha := statusAlpha[status]
	var style []string
	if status == seating.StatusUnlikely {
		style = append(style, "dashed")
	}

	if len(g.Colors) < 2 {
		style = append(style, "filled")
		return []string{
			fmt.Sprintf("style=%q", strings.Join(style, ",")),
			fmt.Sprintf("fillcolor=%q", primaryColor(g)+alpha),
		}
	}

	colors := make([]string, len(g.Colors))
	for i, c := range g.Colors {
		colors[i] = c.Hex() + alpha
	}
	style = append(style, "wedged")
	return []string{
		fmt.Sprintf("style=%q", strings.Join(style, ",")),
		fmt.Sprintf("fillcolor=%q", strings.Join(colors, ":")),
	}
}

// RenderDOTSVG lays out a DOT graph produced by [ToDOT] with neato and
// returns the SVG.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "graphviz render")
	}
	return buf.Bytes(), nil
}
