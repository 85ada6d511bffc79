package cli

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/hemicycle/pkg/render"
	"github.com/matzehuels/hemicycle/pkg/render/sink"
)

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		formats []render.Format
		want    map[render.Format]string
	}{
		{
			name:    "single with extension",
			base:    "out/chamber.svg",
			formats: []render.Format{render.FormatSVG},
			want:    map[render.Format]string{render.FormatSVG: "out/chamber.svg"},
		},
		{
			name:    "single without extension",
			base:    "chamber",
			formats: []render.Format{render.FormatJSON},
			want:    map[render.Format]string{render.FormatJSON: "chamber.json"},
		},
		{
			name:    "several replace extension",
			base:    "chamber.svg",
			formats: []render.Format{render.FormatSVG, render.FormatDOT},
			want: map[render.Format]string{
				render.FormatSVG: "chamber.svg",
				render.FormatDOT: "chamber.dot",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.base, tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestChamberName(t *testing.T) {
	if got := (&chamberFlags{}).name(); got != appName {
		t.Errorf("name() = %q, want %q", got, appName)
	}
	if got := (&chamberFlags{chamber: "data/bundestag.toml"}).name(); got != "bundestag" {
		t.Errorf("name() = %q, want bundestag", got)
	}
}

func TestRenderCommand(t *testing.T) {
	h := newHarness(t)
	base := filepath.Join(t.TempDir(), "out", "chamber")

	out, err := h.run("render", testGroups, "-f", "svg,json", "-o", base, "--title", "Test")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "19 seats") || !strings.Contains(out, "fresh") {
		t.Errorf("render output = %q", out)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(svg), "<svg") || !strings.Contains(string(svg), "Test") {
		t.Errorf("unexpected SVG: %.80s", svg)
	}

	doc := readDocument(t, base+".json")
	if doc.Seats != 19 || len(doc.Positions) != 19 {
		t.Errorf("document has %d seats, %d positions; want 19", doc.Seats, len(doc.Positions))
	}
	if !doc.Uncertain {
		t.Error("document should report uncertain seats")
	}

	out, err = h.run("render", testGroups, "-f", "svg,json", "-o", base, "--title", "Test")
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !strings.Contains(out, "cached") {
		t.Errorf("second render should be cached: %q", out)
	}
}

func TestRenderGraphviz(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "chamber.svg")

	if _, err := h.run("render", testGroups, "--graphviz", "--no-cache", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	svg, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(svg), `class="node"`); got != 19 {
		t.Errorf("graphviz nodes = %d, want 19", got)
	}
}

func TestRenderUsesConfigAndChamber(t *testing.T) {
	h := newHarness(t)
	h.writeConfig("[render]\nformats = [\"json\"]\n[cache]\nbackend = \"none\"\n")

	dir := t.TempDir()
	chamber := filepath.Join(dir, "parliament.toml")
	content := `
angle = 200
row_connected = true

[[group]]
name = "Red"
colors = ["#ff0000"]
size = 30

[[group]]
name = "Blue"
colors = ["#0000ff"]
size = 20
`
	if err := os.WriteFile(chamber, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	base := filepath.Join(dir, "a")
	if _, err := h.run("render", "-c", chamber, "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := readDocument(t, base+".json")
	if math.Abs(doc.Angle-200*math.Pi/180) > 1e-9 {
		t.Errorf("angle = %g, want 200° from the chamber file", doc.Angle)
	}
	if _, err := os.Stat(base + ".svg"); !os.IsNotExist(err) {
		t.Error("svg written although config selects json only")
	}

	base = filepath.Join(dir, "b")
	if _, err := h.run("render", "-c", chamber, "-o", base, "--angle", "90"); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc = readDocument(t, base+".json")
	if math.Abs(doc.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("angle = %g, want 90° from the flag", doc.Angle)
	}
}

func TestRenderInvalidFlags(t *testing.T) {
	h := newHarness(t)

	tests := [][]string{
		{"-f", "gif"},
		{"--width", "-5"},
		{"--seat-scale", "0"},
		{"--seat-scale", "2"},
	}
	for _, args := range tests {
		full := append([]string{"render", testGroups, "--no-cache", "-o", filepath.Join(t.TempDir(), "x")}, args...)
		if _, err := h.run(full...); err == nil {
			t.Errorf("render %v: expected error", args)
		}
	}
}

func readDocument(t *testing.T, path string) sink.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc sink.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return doc
}
