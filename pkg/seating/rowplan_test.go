package seating

import (
	"testing"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

// fixedRows is a RowLayout with explicit rows per canonical seat.
type fixedRows []int

func (r fixedRows) NumberOfSeats() int   { return len(r) }
func (r fixedRows) SeatRow(seat int) int { return r[seat] }

func TestRowConnectedSeatingPlanSeatCountMismatch(t *testing.T) {
	_, err := NewRowConnectedSeatingPlan(
		[]ParliamentaryGroup{group(Simple(3), red, "red")},
		fixedRows{0, 0},
	)
	if !errors.Is(err, errors.ErrCodeInvalidSeats) {
		t.Errorf("err = %v, want %v", err, errors.ErrCodeInvalidSeats)
	}
}

func TestRowConnectedSeatingPlanStaysInAdjacentRows(t *testing.T) {
	// The first group starts in row 0 and skips the row-2 seat at index 1.
	p, err := NewRowConnectedSeatingPlan([]ParliamentaryGroup{
		group(Simple(2), red, "red"),
		group(Simple(4), blue, "blue"),
	}, fixedRows{0, 2, 0, 2, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	assertSeats(t, p,
		[]string{"red", "blue", "red", "blue", "blue", "blue"},
		[]SeatStatus{StatusCertain, StatusCertain, StatusCertain, StatusCertain, StatusCertain, StatusCertain})
}

func TestRowConnectedSeatingPlanFallsBackToFirstFreeSeat(t *testing.T) {
	// After red takes seat 0 no free seat lies within one row of row 0, so
	// blue continues at the first free seat.
	p, err := NewRowConnectedSeatingPlan([]ParliamentaryGroup{
		group(Simple(1), red, "red"),
		group(Simple(3), blue, "blue"),
	}, fixedRows{0, 0, 3, 3})
	if err != nil {
		t.Fatal(err)
	}

	assertSeats(t, p,
		[]string{"red", "blue", "blue", "blue"},
		[]SeatStatus{StatusCertain, StatusCertain, StatusCertain, StatusCertain})
}

func TestRowConnectedSeatingPlanBandsInClaimOrder(t *testing.T) {
	// Blue claims seats 1, 3, 4, 5 in that order. Its block starts at seat 1
	// with 4 seats out of 6, so banding is mirrored: the first two claims are
	// unlikely, the third likely and the last certain.
	p, err := NewRowConnectedSeatingPlan([]ParliamentaryGroup{
		group(Simple(2), red, "red"),
		group(MustDifferentiated(1, 2, 4), blue, "blue"),
	}, fixedRows{0, 2, 0, 2, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	assertSeats(t, p,
		[]string{"red", "blue", "red", "blue", "blue", "blue"},
		[]SeatStatus{StatusCertain, StatusUnlikely, StatusCertain, StatusUnlikely, StatusLikely, StatusCertain})
	if !p.HasUncertainSeats() {
		t.Error("HasUncertainSeats() = false, want true")
	}
}

func TestRowConnectedSeatingPlanMatchesSequentialOnSingleRow(t *testing.T) {
	groups := []ParliamentaryGroup{
		group(MustDifferentiated(1, 2, 3), green, "green"),
		group(Simple(0), red, "empty"),
		group(Simple(4), blue, "blue"),
	}
	rows := make(fixedRows, TotalSeats(groups))

	rc, err := NewRowConnectedSeatingPlan(groups, rows)
	if err != nil {
		t.Fatal(err)
	}
	seq := NewSeatingPlan(groups)

	for i := 0; i < seq.NumberOfSeats(); i++ {
		if rc.GroupIndexAt(i) != seq.GroupIndexAt(i) || rc.StatusAt(i) != seq.StatusAt(i) {
			t.Errorf("seat %d: row-connected (%d, %v) != sequential (%d, %v)",
				i, rc.GroupIndexAt(i), rc.StatusAt(i), seq.GroupIndexAt(i), seq.StatusAt(i))
		}
	}
}

func TestRowConnectedSeatingPlanAssignsEverySeat(t *testing.T) {
	groups := []ParliamentaryGroup{
		group(Simple(7), red, "a"),
		group(MustDifferentiated(2, 5, 9), green, "b"),
		group(Simple(3), blue, "c"),
		group(MustDifferentiated(0, 1, 4), red, "d"),
	}
	rows := fixedRows{0, 1, 2, 3, 3, 2, 1, 0, 3, 1, 2, 0, 3, 2, 1, 0, 2, 3, 1, 0, 3, 2, 0}

	p, err := NewRowConnectedSeatingPlan(groups, rows)
	if err != nil {
		t.Fatal(err)
	}

	perGroup := make([]int, len(groups))
	statuses := make([]map[SeatStatus]int, len(groups))
	for i := range statuses {
		statuses[i] = map[SeatStatus]int{}
	}
	for _, a := range p.Assignments() {
		perGroup[a.Group]++
		statuses[a.Group][a.Status]++
	}
	for gi, g := range groups {
		if perGroup[gi] != g.Size.FullSize() {
			t.Errorf("group %s got %d seats, want %d", g.Name, perGroup[gi], g.Size.FullSize())
		}
		s := statuses[gi]
		if s[StatusCertain] != g.Size.LowerBound() ||
			s[StatusLikely] != g.Size.Median()-g.Size.LowerBound() ||
			s[StatusUnlikely] != g.Size.FullSize()-g.Size.Median() {
			t.Errorf("group %s banding %v", g.Name, s)
		}
	}
}
