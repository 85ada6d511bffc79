// Package pkg provides the libraries behind hemicycle, a parliament seat
// diagram generator.
//
// # Overview
//
// A chamber is a list of parliamentary groups, each with a seat count
// (exact, or an interval of lower bound, median and total) and colors.
// Hemicycle places the seats on concentric rows of a circular sector and
// hands them to the groups from the left end of the chamber to the right.
//
// # Architecture
//
// The typical data flow:
//
//	compact spec or chamber.toml
//	         ↓
//	    [groupspec] (parse groups)
//	         ↓
//	    [hemicycle] (rows, seat positions, canonical order)
//	         ↓
//	    [seating] (seat → group, seat → certainty)
//	         ↓
//	    [render/sink] (SVG, JSON, DOT) and [render] (PNG, PDF)
//
// [pipeline] runs these stages behind a [cache] for both the CLI and
// [server].
//
// # Quick Start
//
//	groups, _ := groupspec.Parse("120:#e4003b:Labour,40-55-70:#00a65e:Greens")
//	l, _ := hemicycle.NewDefault(seating.TotalSeats(groups))
//	plan, _ := seating.NewRowConnectedSeatingPlan(groups, l)
//	svg, _ := sink.RenderSVG(l, plan, sink.WithLegend())
//
// # Main Packages
//
// [seating] - Group sizes, colors and the two allocation strategies:
// sequential blocks and row-connected blocks. Uncertain group sizes are
// banded into certain, likely and unlikely seats.
//
// [hemicycle] - Chamber geometry: row count, seats per row, seat positions
// and the seat ordering every allocation follows.
//
// [groupspec] - The compact one-line group encoding and TOML chamber files.
//
// [errors] - Coded errors shared by the CLI and the HTTP API.
//
// [render/sink] - SVG, JSON and Graphviz DOT output.
//
// [render] - Output formats and SVG to PDF/PNG conversion.
//
// [cache] - Artifact cache with file, Redis and MongoDB backends.
//
// [pipeline] - Validation, layout, allocation and rendering with caching.
//
// [server] - HTTP API rendering and storing diagrams.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [seating]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/seating
// [hemicycle]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/hemicycle
// [groupspec]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/groupspec
// [errors]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/errors
// [render]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/render/sink
// [cache]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/hemicycle/pkg/observability
package pkg
