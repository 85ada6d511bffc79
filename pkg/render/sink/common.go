package sink

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

const fallbackColor = "#808080"

func checkPlan(l *hemicycle.Layout, p seating.Plan) error {
	if l == nil || p == nil {
		return errors.New(errors.ErrCodeInvalidInput, "layout and plan are required")
	}
	if l.NumberOfSeats() != p.NumberOfSeats() {
		return errors.New(errors.ErrCodeInvalidSeats,
			"plan has %d seats but layout has %d", p.NumberOfSeats(), l.NumberOfSeats())
	}
	return nil
}

// groupName is the label shown for group i: its name, its character, or
// its one-based position.
func groupName(g seating.ParliamentaryGroup, i int) string {
	if label := g.Label(); label != "" {
		return label
	}
	return "Group " + strconv.Itoa(i+1)
}

func primaryColor(g seating.ParliamentaryGroup) string {
	if len(g.Colors) == 0 {
		return fallbackColor
	}
	return g.Colors[0].Hex()
}

// textColor picks black or white for text drawn over c.
func textColor(c seating.Color) string {
	lum := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	if lum > 150 {
		return "#000000"
	}
	return "#ffffff"
}

func esc(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
