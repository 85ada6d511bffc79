// Package pipeline runs the groups → layout → plan → artifacts pipeline.
//
// The CLI and the HTTP server both go through a [Runner] so that they
// agree on defaults, validation and cache keys:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Groups:  groups,
//	    Formats: []render.Format{render.FormatSVG},
//	})
//	svg := result.Artifacts[render.FormatSVG]
//
// Layouts and plans are cheap and always recomputed. Rendered artifacts
// are cached under a key derived from the encoded groups, the layout
// parameters and the render options.
package pipeline

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/render"
	"github.com/matzehuels/hemicycle/pkg/render/sink"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// ArtifactTTL is the default [Runner.TTL].
	ArtifactTTL = 7 * 24 * time.Hour
)

// EngineGraphviz names the neato SVG engine in artifact cache keys.
const EngineGraphviz = "graphviz"

// Allocation method names reported to hooks and logs.
const (
	MethodSequential   = "sequential"
	MethodRowConnected = "row-connected"
)

// Options describe one pipeline run. Zero values select defaults.
type Options struct {
	Groups []seating.ParliamentaryGroup

	// Layout
	Angle        float64 // radians; 0 means [hemicycle.DefaultAngle]
	RadiusRatio  float64 // 0 means [hemicycle.DefaultRadiusRatio]
	RowConnected bool

	// Render
	Formats   []render.Format // empty means svg
	Width     float64         // SVG width in pixels
	SeatScale float64
	Legend    bool
	Labels    bool
	Title     string
	Scale     float64 // PNG scale factor

	// Graphviz draws the SVG, and the PNG and PDF made from it, by laying
	// out the DOT graph with neato instead of the native SVG sink.
	Graphviz bool

	// Refresh bypasses cached artifacts and overwrites them.
	Refresh bool

	Logger *log.Logger
}

// ValidateAndSetDefaults fills in defaults and checks every parameter.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Angle == 0 {
		o.Angle = hemicycle.DefaultAngle
	}
	if o.RadiusRatio == 0 {
		o.RadiusRatio = hemicycle.DefaultRadiusRatio
	}
	if o.Width == 0 {
		o.Width = sink.DefaultWidth
	}
	if o.SeatScale == 0 {
		o.SeatScale = sink.DefaultSeatScale
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []render.Format{render.FormatSVG}
	}

	if len(o.Groups) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one group is required")
	}
	if err := errors.ValidateSeats(seating.TotalSeats(o.Groups)); err != nil {
		return err
	}
	if err := errors.ValidateAngle(o.Angle); err != nil {
		return err
	}
	if err := errors.ValidateRadiusRatio(o.RadiusRatio); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if _, err := render.ParseFormat(string(f)); err != nil {
			return err
		}
	}
	if o.Width < 0 || math.IsNaN(o.Width) || math.IsInf(o.Width, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %g", o.Width)
	}
	if o.SeatScale < 0 || o.SeatScale > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "seat scale must be in (0, 1], got %g", o.SeatScale)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return nil
}

// Method returns the allocation method name.
func (o Options) Method() string {
	if o.RowConnected {
		return MethodRowConnected
	}
	return MethodSequential
}

// LayoutKeyOpts returns the layout parameters that enter the cache key.
func (o Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Angle:        o.Angle,
		RadiusRatio:  o.RadiusRatio,
		RowConnected: o.RowConnected,
	}
}

// ArtifactKeyOpts returns the render parameters of format that enter the
// cache key. Options a format ignores are left out so they don't split
// the cache.
func (o Options) ArtifactKeyOpts(f render.Format) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: string(f)}
	switch f {
	case render.FormatJSON:
	case render.FormatDOT:
		k.Width, k.Labels = o.Width, o.Labels
	default:
		k.Width, k.SeatScale = o.Width, o.SeatScale
		k.Legend, k.Labels, k.Title = o.Legend, o.Labels, o.Title
		if o.Graphviz {
			k.SeatScale, k.Legend, k.Title = 0, false, ""
			k.Engine = EngineGraphviz
		}
		if f == render.FormatPNG {
			k.Scale = o.Scale
		}
	}
	return k
}

func (o Options) dotOptions() sink.DOTOptions {
	return sink.DOTOptions{Width: o.Width, Labels: o.Labels}
}

func (o Options) svgOptions() []sink.SVGOption {
	opts := []sink.SVGOption{sink.WithWidth(o.Width), sink.WithSeatScale(o.SeatScale)}
	if o.Legend {
		opts = append(opts, sink.WithLegend())
	}
	if o.Labels {
		opts = append(opts, sink.WithLabels())
	}
	if o.Title != "" {
		opts = append(opts, sink.WithTitle(o.Title))
	}
	return opts
}

// Result is the output of [Runner.Execute].
type Result struct {
	Layout    *hemicycle.Layout
	Plan      seating.Plan
	Artifacts map[render.Format][]byte

	// Key identifies the layout and plan; equal inputs give equal keys.
	Key string

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats records stage timings.
type Stats struct {
	Seats          int
	Rows           int
	LayoutTime     time.Duration
	AllocationTime time.Duration
	RenderTime     time.Duration
}

// CacheInfo records which artifacts came from the cache.
type CacheInfo struct {
	Hits   []render.Format
	Misses []render.Format
}

// AllHit reports whether every artifact was served from the cache.
func (c CacheInfo) AllHit() bool { return len(c.Hits) > 0 && len(c.Misses) == 0 }
