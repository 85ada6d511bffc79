package hemicycle

import (
	"cmp"
	"math"
	"slices"
)

// angleEpsilon is the tolerance under which two seat angles count as equal.
const angleEpsilon = 1e-6

// SeatPosition is a seat center in polar coordinates: Radius in (0, 1] and
// Angle in [0, 2π), measured counter-clockwise from the positive x axis.
type SeatPosition struct {
	Radius float64 `json:"radius"`
	Angle  float64 `json:"angle"`
}

// X returns the Cartesian x coordinate.
func (p SeatPosition) X() float64 { return p.Radius * math.Cos(p.Angle) }

// Y returns the Cartesian y coordinate.
func (p SeatPosition) Y() float64 { return p.Radius * math.Sin(p.Angle) }

// Equal reports whether both coordinates are identical.
func (p SeatPosition) Equal(o SeatPosition) bool {
	return p.Radius == o.Radius && p.Angle == o.Angle
}

// southDistance is the clockwise angular distance from due south, in [0, 2π).
func southDistance(angle float64) float64 {
	d := math.Mod(3*math.Pi/2-angle, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Compare is the canonical seat ordering. Seats at (nearly) the same angle
// are ordered by ascending radius; all others by ascending clockwise
// distance from due south, which sweeps from the left extreme of the
// chamber over the top to the right extreme.
func Compare(a, b SeatPosition) int {
	if math.Abs(a.Angle-b.Angle) < angleEpsilon {
		return cmp.Compare(a.Radius, b.Radius)
	}
	return cmp.Compare(southDistance(a.Angle), southDistance(b.Angle))
}

// Sort orders positions canonically in place. Equal positions keep their
// relative order.
func Sort(positions []SeatPosition) {
	slices.SortStableFunc(positions, Compare)
}
