package seating

import "github.com/matzehuels/hemicycle/pkg/errors"

// RowLayout supplies the row of every seat in canonical order.
// *hemicycle.Layout implements it.
type RowLayout interface {
	NumberOfSeats() int
	SeatRow(seat int) int
}

// RowConnectedSeatingPlan allocates seats so that each group stays within a
// band of adjacent rows where possible.
//
// A group starts at the lowest free seat. Every further seat is the lowest
// free seat whose row lies within one row of the rows the group already
// touches; when no such seat is left the lowest free seat anywhere is taken.
// Statuses are banded in claim order relative to the group's first seat,
// exactly as in [SeatingPlan].
type RowConnectedSeatingPlan struct {
	allocation
}

// NewRowConnectedSeatingPlan allocates groups over the seats of rows. The
// layout must have exactly TotalSeats(groups) seats, otherwise an
// INVALID_SEATS error is returned.
func NewRowConnectedSeatingPlan(groups []ParliamentaryGroup, rows RowLayout) (*RowConnectedSeatingPlan, error) {
	p := &RowConnectedSeatingPlan{allocation: newAllocation(groups)}
	n := p.NumberOfSeats()
	if rows.NumberOfSeats() != n {
		return nil, errors.New(errors.ErrCodeInvalidSeats,
			"layout has %d seats but groups need %d", rows.NumberOfSeats(), n)
	}

	seatRow := make([]int, n)
	for i := range seatRow {
		seatRow[i] = rows.SeatRow(i)
	}

	taken := make([]bool, n)
	lowest := 0 // every seat below lowest is taken
	firstFree := func() int {
		for taken[lowest] {
			lowest++
		}
		return lowest
	}

	for gi, g := range p.groups {
		size := g.Size.FullSize()
		if size == 0 {
			continue
		}

		claimed := make([]int, 0, size)
		seat := firstFree()
		taken[seat] = true
		claimed = append(claimed, seat)
		lowRow, highRow := seatRow[seat], seatRow[seat]

		for len(claimed) < size {
			seat = -1
			for i := lowest; i < n; i++ {
				if !taken[i] && seatRow[i] >= lowRow-1 && seatRow[i] <= highRow+1 {
					seat = i
					break
				}
			}
			if seat < 0 {
				seat = firstFree()
			}
			taken[seat] = true
			claimed = append(claimed, seat)
			lowRow = min(lowRow, seatRow[seat])
			highRow = max(highRow, seatRow[seat])
		}

		p.assign(gi, claimed)
	}
	return p, nil
}

var _ Plan = (*RowConnectedSeatingPlan)(nil)
