package pipeline

import (
	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// Allocate assigns the seats of l to groups, sequentially or by row
// connection.
func Allocate(l *hemicycle.Layout, groups []seating.ParliamentaryGroup, rowConnected bool) (seating.Plan, error) {
	if rowConnected {
		p, err := seating.NewRowConnectedSeatingPlan(groups, l)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return seating.NewSeatingPlan(groups), nil
}

// BuildLayout lays out as many seats as groups need.
func BuildLayout(groups []seating.ParliamentaryGroup, angle, radiusRatio float64) (*hemicycle.Layout, error) {
	return hemicycle.New(seating.TotalSeats(groups), angle, radiusRatio)
}
