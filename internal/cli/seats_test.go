package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/hemicycle/pkg/render/sink"
)

func TestSeatsCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("seats", testGroups)
	if err != nil {
		t.Fatalf("seats: %v", err)
	}
	for _, want := range []string{"Red", "Green", "3-5-7", "Certain", "19 seats", "sequential"} {
		if !strings.Contains(out, want) {
			t.Errorf("seats output missing %q:\n%s", want, out)
		}
	}
}

func TestSeatsCommandAll(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("seats", testGroups, "--all", "--row-connected")
	if err != nil {
		t.Fatalf("seats --all: %v", err)
	}
	// 19 seats plus the header.
	if got := strings.Count(out, "Red") + strings.Count(out, "Green"); got != 19 {
		t.Errorf("seat lines = %d, want 19:\n%s", got, out)
	}
	for _, want := range []string{"certain", "likely", "unlikely"} {
		if !strings.Contains(out, want) {
			t.Errorf("seats --all output missing status %q", want)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("layout", "14:#ff0000")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"Seats", "14", "Rows", "180°", "Radius"} {
		if !strings.Contains(out, want) {
			t.Errorf("layout output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutCommandJSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("layout", "14:#ff0000", "--json")
	if err != nil {
		t.Fatalf("layout --json: %v", err)
	}
	var doc sink.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("layout --json output: %v", err)
	}
	want := []int{3, 5, 6}
	if len(doc.RowSeats) != len(want) {
		t.Fatalf("RowSeats = %v, want %v", doc.RowSeats, want)
	}
	for i := range want {
		if doc.RowSeats[i] != want[i] {
			t.Errorf("RowSeats = %v, want %v", doc.RowSeats, want)
			break
		}
	}
}

func TestStatusStyle(t *testing.T) {
	if statusStyle("likely").GetForeground() != StyleWarning.GetForeground() {
		t.Error("likely seats should use the warning style")
	}
	if statusStyle("unlikely").GetForeground() != StyleDim.GetForeground() {
		t.Error("unlikely seats should be dimmed")
	}
	if statusStyle("certain").GetForeground() != StyleValue.GetForeground() {
		t.Error("certain seats should use the value style")
	}
}
