// Package hemicycle computes the seat geometry of a hemicycle chamber.
//
// # Overview
//
// A [Layout] places a fixed number of seats on concentric rows between an
// inner radius (radiusRatio) and the unit outer radius, spread over a sector
// of the given angle that is symmetric about the vertical axis. Seats are
// returned as polar [SeatPosition] values in the canonical order defined by
// [Compare].
//
// # Algorithm
//
// Layout construction runs three deterministic steps:
//
//  1. Row count: the smallest n for which the rows' ceiling capacities
//     Σ ceil(angle·rowRadius/rowWidth) reach the seat count.
//  2. Apportionment: seats are handed out one at a time to the row with the
//     greatest quota, initially the row diameter and then
//     rowRadius/seatsInRow. Ties go to the innermost row.
//  3. Placement: each row's seats are spread evenly over the sector; a row
//     with a single seat puts it on the vertical axis.
//
// # Canonical Order
//
// Seats are numbered by a clockwise sweep from the left extreme of the
// sector to the right extreme. Seats within 1e-6 radians of each other are
// ordered from the inner row outwards. Seating plans hand out seats in this
// order.
//
// # Usage
//
//	l, err := hemicycle.New(14, math.Pi, 1.0/3)
//	if err != nil {
//	    return err
//	}
//	for i, s := range l.Seats() {
//	    fmt.Printf("%d: row %d at (%.3f, %.3f)\n", i, l.SeatRow(i), s.X(), s.Y())
//	}
package hemicycle
