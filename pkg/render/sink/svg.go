package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

const (
	// DefaultWidth is the SVG width in pixels.
	DefaultWidth = 800.0

	// DefaultSeatScale is the seat diameter relative to the seat spacing.
	DefaultSeatScale = 0.8
)

const seatCSS = `
    .seat { stroke-width: %.2f; }
    .seat.likely { fill-opacity: 0.55; }
    .seat.unlikely { fill-opacity: 0.15; stroke-dasharray: %.2f %.2f; }
    .seat:hover { stroke: #000; }
    .seat-label { font-family: sans-serif; text-anchor: middle; dominant-baseline: central; pointer-events: none; }
    .legend, .title { font-family: sans-serif; fill: #222; }
    .title { text-anchor: middle; font-weight: bold; }`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width     float64
	seatScale float64
	legend    bool
	labels    bool
	title     string
}

// WithWidth sets the output width in pixels. Non-positive values are
// ignored.
func WithWidth(px float64) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.width = px
		}
	}
}

// WithSeatScale sets the seat diameter as a fraction of the seat spacing.
// Values outside (0, 1] are ignored.
func WithSeatScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 && s <= 1 {
			r.seatScale = s
		}
	}
}

// WithLegend appends a legend listing every group with its size.
func WithLegend() SVGOption { return func(r *svgRenderer) { r.legend = true } }

// WithLabels draws each group's character inside its seats.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithTitle draws a heading above the chamber.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG draws every seat of l as a circle filled with the colors of
// the group p assigns it. Groups with several colors are filled with
// diagonal stripes. Likely seats are drawn translucent and unlikely seats
// as dashed outlines.
func RenderSVG(l *hemicycle.Layout, p seating.Plan, opts ...SVGOption) ([]byte, error) {
	if err := checkPlan(l, p); err != nil {
		return nil, err
	}
	r := svgRenderer{width: DefaultWidth, seatScale: DefaultSeatScale}
	for _, opt := range opts {
		opt(&r)
	}

	f := newFrame(l, &r)
	groups := p.Groups()
	legend := r.legendEntries(groups, p.HasUncertainSeats())

	height := f.top + f.chartHeight + legend.height(f)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)

	fmt.Fprintf(&buf, "  <style>"+seatCSS+"\n  </style>\n", f.seatR*0.15, f.seatR*0.4, f.seatR*0.25)
	renderDefs(&buf, groups, f.seatR)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%.2f" y="%.2f" font-size="%.1f">%s</text>`+"\n",
			r.width/2, f.fontSize*1.4, f.fontSize*1.25, esc(r.title))
	}

	buf.WriteString(`  <g class="seats">` + "\n")
	for i := range p.NumberOfSeats() {
		r.renderSeat(&buf, f, l.Seat(i), i, p.GroupIndexAt(i), groups, p.StatusAt(i))
	}
	buf.WriteString("  </g>\n")

	if r.labels {
		buf.WriteString(`  <g class="labels">` + "\n")
		for i := range p.NumberOfSeats() {
			renderLabel(&buf, f, l.Seat(i), groups[p.GroupIndexAt(i)], p.StatusAt(i))
		}
		buf.WriteString("  </g>\n")
	}

	if r.legend {
		legend.render(&buf, f)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// frame maps layout units to pixels.
type frame struct {
	minX, maxY  float64
	scale       float64
	top         float64 // space reserved for the title
	chartHeight float64
	seatR       float64
	fontSize    float64
	width       float64
}

func newFrame(l *hemicycle.Layout, r *svgRenderer) frame {
	minX, _, _, maxY := l.Bounds()
	f := frame{
		minX:     minX,
		maxY:     maxY,
		scale:    r.width / l.Width(),
		fontSize: math.Max(12, r.width/50),
		width:    r.width,
	}
	f.chartHeight = l.Height() * f.scale
	f.seatR = l.SeatSpacing() * f.scale * r.seatScale / 2
	if r.title != "" {
		f.top = f.fontSize * 2.2
	}
	return f
}

func (f frame) point(s hemicycle.SeatPosition) (x, y float64) {
	return (s.X() - f.minX) * f.scale, f.top + (f.maxY-s.Y())*f.scale
}

func patternID(gi int) string { return fmt.Sprintf("group-%d", gi) }

// renderDefs emits one stripe pattern per multi-colored group.
func renderDefs(buf *bytes.Buffer, groups []seating.ParliamentaryGroup, seatR float64) {
	striped := false
	for _, g := range groups {
		if len(g.Colors) > 1 {
			striped = true
			break
		}
	}
	if !striped {
		return
	}

	stripe := math.Max(seatR*0.5, 0.5)
	buf.WriteString("  <defs>\n")
	for gi, g := range groups {
		if len(g.Colors) < 2 {
			continue
		}
		w := stripe * float64(len(g.Colors))
		fmt.Fprintf(buf, `    <pattern id="%s" patternUnits="userSpaceOnUse" width="%.2f" height="%.2f" patternTransform="rotate(45)">`+"\n",
			patternID(gi), w, w)
		for ci, c := range g.Colors {
			fmt.Fprintf(buf, `      <rect x="%.2f" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
				stripe*float64(ci), stripe, w, c.Hex())
		}
		buf.WriteString("    </pattern>\n")
	}
	buf.WriteString("  </defs>\n")
}

func (r *svgRenderer) renderSeat(buf *bytes.Buffer, f frame, pos hemicycle.SeatPosition, seat, gi int, groups []seating.ParliamentaryGroup, status seating.SeatStatus) {
	g := groups[gi]
	fill := primaryColor(g)
	if len(g.Colors) > 1 {
		fill = "url(#" + patternID(gi) + ")"
	}

	title := groupName(g, gi)
	if status != seating.StatusCertain {
		title += " (" + status.String() + ")"
	}

	x, y := f.point(pos)
	fmt.Fprintf(buf, `    <circle id="seat-%d" class="seat %s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" data-group="%d"><title>%s</title></circle>`+"\n",
		seat, status, x, y, f.seatR, fill, primaryColor(g), gi, esc(title))
}

func renderLabel(buf *bytes.Buffer, f frame, pos hemicycle.SeatPosition, g seating.ParliamentaryGroup, status seating.SeatStatus) {
	if g.Character == 0 {
		return
	}
	fill := fallbackColor
	if len(g.Colors) > 0 {
		fill = textColor(g.Colors[0])
		if status == seating.StatusUnlikely {
			fill = g.Colors[0].Hex()
		}
	}
	x, y := f.point(pos)
	fmt.Fprintf(buf, `    <text class="seat-label" x="%.2f" y="%.2f" font-size="%.2f" fill="%s">%s</text>`+"\n",
		x, y, f.seatR*1.2, fill, esc(string(g.Character)))
}

type legendEntry struct {
	group int
	fill  string
	text  string
}

type legend struct {
	entries []legendEntry
	status  bool // append the certain/likely/unlikely key
}

func (r *svgRenderer) legendEntries(groups []seating.ParliamentaryGroup, uncertain bool) legend {
	if !r.legend {
		return legend{}
	}
	var lg legend
	for gi, g := range groups {
		if g.Size.FullSize() == 0 {
			continue
		}
		fill := primaryColor(g)
		if len(g.Colors) > 1 {
			fill = "url(#" + patternID(gi) + ")"
		}
		lg.entries = append(lg.entries, legendEntry{
			group: gi,
			fill:  fill,
			text:  fmt.Sprintf("%s (%s)", groupName(g, gi), g.Size),
		})
	}
	lg.status = uncertain
	return lg
}

func (lg legend) columns(f frame) int {
	return max(1, int(f.width/(f.fontSize*14)))
}

func (lg legend) lineHeight(f frame) float64 { return f.fontSize * 1.6 }

func (lg legend) height(f frame) float64 {
	if len(lg.entries) == 0 && !lg.status {
		return 0
	}
	cols := lg.columns(f)
	lines := (len(lg.entries) + cols - 1) / cols
	if lg.status {
		lines++
	}
	return float64(lines)*lg.lineHeight(f) + f.fontSize
}

func (lg legend) render(buf *bytes.Buffer, f frame) {
	if len(lg.entries) == 0 && !lg.status {
		return
	}
	cols := lg.columns(f)
	colWidth := f.width / float64(cols)
	lh := lg.lineHeight(f)
	top := f.top + f.chartHeight + f.fontSize/2
	swatch := f.fontSize * 0.45

	fmt.Fprintf(buf, `  <g class="legend" font-size="%.1f">`+"\n", f.fontSize)
	for i, e := range lg.entries {
		x := float64(i%cols)*colWidth + f.fontSize
		y := top + float64(i/cols)*lh + lh/2
		fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" data-group="%d"/>`+"\n", x, y, swatch, e.fill, e.group)
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" dominant-baseline="central">%s</text>`+"\n", x+swatch*2, y, esc(e.text))
	}
	if lg.status {
		y := top + float64((len(lg.entries)+cols-1)/cols)*lh + lh/2
		for i, s := range []seating.SeatStatus{seating.StatusCertain, seating.StatusLikely, seating.StatusUnlikely} {
			x := float64(i)*f.fontSize*8 + f.fontSize
			fmt.Fprintf(buf, `    <circle class="seat %s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s"/>`+"\n",
				s, x, y, swatch, fallbackColor, fallbackColor)
			fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" dominant-baseline="central">%s</text>`+"\n", x+swatch*2, y, s)
		}
	}
	buf.WriteString("  </g>\n")
}
