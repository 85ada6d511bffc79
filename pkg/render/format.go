package render

import (
	"slices"
	"strings"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

// Format is an output format name as accepted by the CLI and the API.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT}

// ParseFormat validates a single format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of svg, png, pdf, json, dot)", s)
	}
	return f, nil
}

// ParseFormats splits a comma-separated list, drops duplicates and
// validates every entry. An empty list yields [FormatSVG].
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	for part := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = []Format{FormatSVG}
	}
	return out, nil
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	}
	return "application/octet-stream"
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// NeedsConverter reports whether f is produced through rsvg-convert.
func (f Format) NeedsConverter() bool { return f == FormatPNG || f == FormatPDF }
