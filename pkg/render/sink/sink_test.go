package sink

import (
	"testing"

	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

var (
	red   = seating.Color{R: 0xcc}
	green = seating.Color{G: 0x99}
	blue  = seating.Color{B: 0xcc}
	white = seating.Color{R: 0xff, G: 0xff, B: 0xff}
)

// fixture returns a 14 seat chamber with a striped uncertain group in the
// middle.
func fixture(t *testing.T) (*hemicycle.Layout, seating.Plan) {
	t.Helper()
	l, err := hemicycle.NewDefault(14)
	if err != nil {
		t.Fatal(err)
	}
	p := seating.NewSeatingPlan([]seating.ParliamentaryGroup{
		{Size: seating.Simple(5), Colors: []seating.Color{red}, Name: "Left", Character: 'L'},
		{Size: seating.MustDifferentiated(2, 3, 4), Colors: []seating.Color{green, blue}, Name: "Greens & Co"},
		{Size: seating.Simple(5), Colors: []seating.Color{white}, Character: 'R'},
	})
	return l, p
}
