package seating

import "fmt"

// Plan is a finished seat allocation. Seat indices follow the canonical
// seat order; queries outside [0, NumberOfSeats()) panic.
type Plan interface {
	NumberOfSeats() int
	Groups() []ParliamentaryGroup
	GroupIndexAt(seat int) int
	GroupAt(seat int) ParliamentaryGroup
	StatusAt(seat int) SeatStatus
	HasUncertainSeats() bool
	Assignments() []Assignment
	StatusCounts(group int) StatusCounts
}

// StatusCounts tallies the seats of one group by status.
type StatusCounts struct {
	Certain  int `json:"certain"`
	Likely   int `json:"likely"`
	Unlikely int `json:"unlikely"`
}

// Total returns the number of seats counted.
func (c StatusCounts) Total() int { return c.Certain + c.Likely + c.Unlikely }

// Assignment is one seat of a plan.
type Assignment struct {
	Seat   int        `json:"seat"`
	Group  int        `json:"group"` // index into Plan.Groups()
	Status SeatStatus `json:"status"`
}

// allocation holds the state shared by both plan variants. It is filled in
// by the constructors and never modified afterwards.
type allocation struct {
	groups    []ParliamentaryGroup
	groupOf   []int
	status    []SeatStatus
	uncertain bool
}

func newAllocation(groups []ParliamentaryGroup) allocation {
	groups = cloneGroups(groups)
	n := TotalSeats(groups)
	a := allocation{
		groups:  groups,
		groupOf: make([]int, n),
		status:  make([]SeatStatus, n),
	}
	for _, g := range groups {
		if g.Size.IsUncertain() {
			a.uncertain = true
		}
	}
	return a
}

// NumberOfSeats is the sum of the groups' full sizes.
func (a *allocation) NumberOfSeats() int { return len(a.groupOf) }

// Groups returns a copy of the input groups in input order.
func (a *allocation) Groups() []ParliamentaryGroup { return cloneGroups(a.groups) }

// GroupIndexAt returns the index into Groups() of the group holding seat.
func (a *allocation) GroupIndexAt(seat int) int {
	a.check(seat)
	return a.groupOf[seat]
}

// GroupAt returns the group holding seat.
func (a *allocation) GroupAt(seat int) ParliamentaryGroup {
	a.check(seat)
	g := a.groups[a.groupOf[seat]]
	g.Colors = append([]Color(nil), g.Colors...)
	return g
}

// StatusAt returns the confidence status of seat.
func (a *allocation) StatusAt(seat int) SeatStatus {
	a.check(seat)
	return a.status[seat]
}

// HasUncertainSeats reports whether any group is differentiated with
// total > lower bound.
func (a *allocation) HasUncertainSeats() bool { return a.uncertain }

// Assignments returns every seat in canonical order.
func (a *allocation) Assignments() []Assignment {
	out := make([]Assignment, len(a.groupOf))
	for i := range a.groupOf {
		out[i] = Assignment{Seat: i, Group: a.groupOf[i], Status: a.status[i]}
	}
	return out
}

// StatusCounts counts the seats held by group gi. It panics if gi is not
// a group index.
func (a *allocation) StatusCounts(gi int) StatusCounts {
	if gi < 0 || gi >= len(a.groups) {
		panic(fmt.Sprintf("seating: group index %d out of range [0, %d)", gi, len(a.groups)))
	}
	var c StatusCounts
	for i, g := range a.groupOf {
		if g != gi {
			continue
		}
		switch a.status[i] {
		case StatusCertain:
			c.Certain++
		case StatusLikely:
			c.Likely++
		case StatusUnlikely:
			c.Unlikely++
		}
	}
	return c
}

func (a *allocation) check(seat int) {
	if seat < 0 || seat >= len(a.groupOf) {
		panic(fmt.Sprintf("seating: seat index %d out of range [0, %d)", seat, len(a.groupOf)))
	}
}

// assign records the seats claimed by group gi, in claim order, and bands
// their statuses relative to the first claimed seat.
func (a *allocation) assign(gi int, claimed []int) {
	bands := bandStatuses(a.groups[gi].Size, claimed[0], len(a.groupOf))
	for k, seat := range claimed {
		a.groupOf[seat] = gi
		a.status[seat] = bands[k]
	}
}

// bandStatuses returns the status of each seat of a block in claim order.
// Blocks starting in the left half of the chamber put certain seats first;
// the others are mirrored so that uncertain seats face the chamber's middle.
func bandStatuses(size GroupSize, first, totalSeats int) []SeatStatus {
	full := size.FullSize()
	out := make([]SeatStatus, full)
	if size.Kind() == SizeSimple {
		return out
	}

	certain := size.LowerBound()
	likely := size.Median() - size.LowerBound()
	unlikely := full - size.Median()

	if first*2+full < totalSeats {
		fill(out[certain:certain+likely], StatusLikely)
		fill(out[certain+likely:], StatusUnlikely)
		return out
	}
	fill(out[:unlikely], StatusUnlikely)
	fill(out[unlikely:unlikely+likely], StatusLikely)
	return out
}

func fill(s []SeatStatus, v SeatStatus) {
	for i := range s {
		s[i] = v
	}
}

// SeatingPlan allocates seats sequentially: each group, in input order,
// claims the next FullSize() seats in canonical order.
type SeatingPlan struct {
	allocation
}

// NewSeatingPlan allocates groups to seats 0..TotalSeats(groups)-1.
// Groups with a full size of zero claim nothing.
func NewSeatingPlan(groups []ParliamentaryGroup) *SeatingPlan {
	p := &SeatingPlan{allocation: newAllocation(groups)}
	next := 0
	for gi, g := range p.groups {
		n := g.Size.FullSize()
		if n == 0 {
			continue
		}
		claimed := make([]int, n)
		for k := range claimed {
			claimed[k] = next + k
		}
		p.assign(gi, claimed)
		next += n
	}
	return p
}

var _ Plan = (*SeatingPlan)(nil)
