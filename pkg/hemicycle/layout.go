package hemicycle

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

const (
	// DefaultAngle is a classic half-circle chamber.
	DefaultAngle = math.Pi

	// DefaultRadiusRatio leaves the inner third of the half-circle empty.
	DefaultRadiusRatio = 1.0 / 3
)

// Layout is the immutable seat geometry of a chamber. All derived values
// are computed by [New].
type Layout struct {
	numberOfSeats int
	angle         float64
	radiusRatio   float64

	numberOfRows int
	rowWidth     float64
	rowSeats     []int // seats per row, innermost first

	seats   []SeatPosition // canonical order
	seatRow []int          // row of seats[i]
}

// New computes the layout of numberOfSeats seats over a sector of angle
// radians (0 < angle ≤ 2π) with inner radius radiusRatio (0 < r < 1).
// Invalid parameters yield a configuration error and no layout.
func New(numberOfSeats int, angle, radiusRatio float64) (*Layout, error) {
	if err := errors.ValidateSeats(numberOfSeats); err != nil {
		return nil, err
	}
	if err := errors.ValidateAngle(angle); err != nil {
		return nil, err
	}
	if err := errors.ValidateRadiusRatio(radiusRatio); err != nil {
		return nil, err
	}

	l := &Layout{
		numberOfSeats: numberOfSeats,
		angle:         angle,
		radiusRatio:   radiusRatio,
	}
	l.numberOfRows = rowCount(numberOfSeats, angle, radiusRatio)
	l.rowWidth = (1 - radiusRatio) / float64(l.numberOfRows)
	l.rowSeats = l.apportion()
	l.place()
	return l, nil
}

// NewDefault is New with [DefaultAngle] and [DefaultRadiusRatio].
func NewDefault(numberOfSeats int) (*Layout, error) {
	return New(numberOfSeats, DefaultAngle, DefaultRadiusRatio)
}

// rowCount returns the smallest number of rows whose ceiling capacity
// covers n seats.
func rowCount(n int, angle, radiusRatio float64) int {
	for rows := 1; ; rows++ {
		width := (1 - radiusRatio) / float64(rows)
		capacity := 0
		for r := 1; r <= rows; r++ {
			radius := radiusRatio + (float64(r)-0.5)*width
			capacity += int(math.Ceil(angle * radius / width))
		}
		if capacity >= n {
			return rows
		}
	}
}

// apportion distributes the seats over the rows with a highest-quota
// divisor method weighted by row radius. The scan keeps the first row on
// equal quotas.
func (l *Layout) apportion() []int {
	seats := make([]int, l.numberOfRows)
	quota := make([]float64, l.numberOfRows)
	for r := range quota {
		quota[r] = 2 * l.RowRadius(r)
	}

	for range l.numberOfSeats {
		best := 0
		for r := 1; r < l.numberOfRows; r++ {
			if quota[r] > quota[best] {
				best = r
			}
		}
		seats[best]++
		quota[best] = l.RowRadius(best) / float64(seats[best])
	}
	return seats
}

// place computes every seat position row by row and sorts them canonically.
func (l *Layout) place() {
	type seat struct {
		pos SeatPosition
		row int
	}
	all := make([]seat, 0, l.numberOfSeats)

	for r, k := range l.rowSeats {
		radius := l.RowRadius(r)
		if k == 1 {
			all = append(all, seat{SeatPosition{Radius: radius, Angle: math.Pi / 2}, r})
			continue
		}
		first := (math.Pi - l.angle) / 2
		step := l.angle / float64(k-1)
		for i := range k {
			a := first + step*float64(i)
			if a < 0 {
				a += 2 * math.Pi
			}
			all = append(all, seat{SeatPosition{Radius: radius, Angle: a}, r})
		}
	}

	slices.SortStableFunc(all, func(a, b seat) int { return Compare(a.pos, b.pos) })

	l.seats = make([]SeatPosition, len(all))
	l.seatRow = make([]int, len(all))
	for i, s := range all {
		l.seats[i] = s.pos
		l.seatRow[i] = s.row
	}
}

// NumberOfSeats returns the seat count the layout was built for.
func (l *Layout) NumberOfSeats() int { return l.numberOfSeats }

// NumberOfRows returns the number of concentric rows.
func (l *Layout) NumberOfRows() int { return l.numberOfRows }

// RowWidth returns the radial distance between adjacent rows.
func (l *Layout) RowWidth() float64 { return l.rowWidth }

// Angle returns the sector angle in radians.
func (l *Layout) Angle() float64 { return l.angle }

// RadiusRatio returns the inner radius relative to the outer radius.
func (l *Layout) RadiusRatio() float64 { return l.radiusRatio }

// RowRadius returns the radius of the center line of row r (0 = innermost).
func (l *Layout) RowRadius(r int) float64 {
	return l.radiusRatio + (float64(r)+0.5)*l.rowWidth
}

// RowSeats returns the number of seats in each row, innermost first.
func (l *Layout) RowSeats() []int { return slices.Clone(l.rowSeats) }

// Seats returns all seat positions in canonical order.
func (l *Layout) Seats() []SeatPosition { return slices.Clone(l.seats) }

// Seat returns the i-th seat in canonical order. It panics if i is out of
// range.
func (l *Layout) Seat(i int) SeatPosition {
	l.check(i)
	return l.seats[i]
}

// SeatRow returns the row (0 = innermost) of the i-th seat in canonical
// order. It panics if i is out of range.
func (l *Layout) SeatRow(i int) int {
	l.check(i)
	return l.seatRow[i]
}

func (l *Layout) check(i int) {
	if i < 0 || i >= l.numberOfSeats {
		panic(fmt.Sprintf("hemicycle: seat index %d out of range [0, %d)", i, l.numberOfSeats))
	}
}

// SeatSpacing returns the smallest distance between neighbouring seat
// centers, along a row or across rows. Renderers size seats from it.
func (l *Layout) SeatSpacing() float64 {
	spacing := l.rowWidth
	for r, k := range l.rowSeats {
		if k < 2 {
			continue
		}
		chord := 2 * l.RowRadius(r) * math.Sin(l.angle/float64(k-1)/2)
		spacing = math.Min(spacing, chord)
	}
	return spacing
}

// Bounds returns the bounding box of the chamber in layout units,
// extended by half a row width beyond the seat rows.
//
// The top is always the outer edge on the vertical axis. Below the
// horizontal axis, sectors wider than π are bounded by the outer edge at
// the sector's ends, narrower sectors by the inner edge.
func (l *Layout) Bounds() (minX, minY, maxX, maxY float64) {
	margin := l.rowWidth / 2
	phi := (math.Pi - l.angle) / 2

	maxY = 1 + margin
	if l.angle >= math.Pi {
		maxX = 1 + margin
	} else {
		maxX = math.Sin(l.angle/2) + margin
	}
	minX = -maxX

	if l.angle > math.Pi {
		minY = math.Sin(phi) - margin
	} else {
		minY = l.radiusRatio*math.Sin(phi) - margin
	}
	return minX, minY, maxX, maxY
}

// Width returns the horizontal extent of [Layout.Bounds].
func (l *Layout) Width() float64 {
	minX, _, maxX, _ := l.Bounds()
	return maxX - minX
}

// Height returns the vertical extent of [Layout.Bounds].
func (l *Layout) Height() float64 {
	_, minY, _, maxY := l.Bounds()
	return maxY - minY
}
