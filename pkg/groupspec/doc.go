// Package groupspec reads and writes parliamentary group lists.
//
// Two encodings are supported.
//
// # Compact Encoding
//
// A single-line form convenient for command lines and URLs:
//
//	spec   = group { "," group }
//	group  = size ":" colors [ ":" name [ ":" char ] ]
//	size   = N | L "-" M "-" T
//	colors = color { "+" color }
//
// For example "120:#e4003b:Labour:L,40-55-70:#00a65e+#ffffff:Greens:G".
// Colors use "#rrggbb" or "#rgb". Several colors render as stripes.
// [Parse] and [Format] are inverses.
//
// # Chamber Files
//
// A TOML document describing the whole chamber, including layout
// parameters (see [Chamber]):
//
//	title = "Example"
//	angle = 180
//	radius_ratio = 0.3333
//
//	[[group]]
//	name = "Red"
//	colors = ["#ff0000"]
//	size = 12
//
//	[[group]]
//	name = "Green"
//	colors = ["#00ff00"]
//	lower = 3
//	median = 5
//	total = 7
package groupspec
