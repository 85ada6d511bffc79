package hemicycle

import (
	"math"
	"slices"
	"testing"
)

func TestSeatPositionCartesian(t *testing.T) {
	tests := []struct {
		name string
		pos  SeatPosition
		x, y float64
	}{
		{"top", SeatPosition{Radius: 1, Angle: math.Pi / 2}, 0, 1},
		{"left", SeatPosition{Radius: 0.5, Angle: math.Pi}, -0.5, 0},
		{"right", SeatPosition{Radius: 0.5, Angle: 0}, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.pos.X(), tt.x) || !approx(tt.pos.Y(), tt.y) {
				t.Errorf("(%v, %v), want (%v, %v)", tt.pos.X(), tt.pos.Y(), tt.x, tt.y)
			}
		})
	}
}

func TestSeatPositionEqual(t *testing.T) {
	a := SeatPosition{Radius: 0.5, Angle: 1}
	if !a.Equal(SeatPosition{Radius: 0.5, Angle: 1}) {
		t.Error("identical positions should be equal")
	}
	if a.Equal(SeatPosition{Radius: 0.5, Angle: 1 + 1e-12}) {
		t.Error("Equal must compare exactly")
	}
}

func TestSouthDistance(t *testing.T) {
	tests := []struct {
		angle, want float64
	}{
		{math.Pi, math.Pi / 2},
		{math.Pi / 2, math.Pi},
		{0, 3 * math.Pi / 2},
		{3 * math.Pi / 2, 0},
		{7 * math.Pi / 4, 7 * math.Pi / 4},
	}
	for _, tt := range tests {
		if got := southDistance(tt.angle); !approx(got, tt.want) {
			t.Errorf("southDistance(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	left := SeatPosition{Radius: 0.5, Angle: math.Pi}
	leftOuter := SeatPosition{Radius: 0.9, Angle: math.Pi + 5e-7}
	top := SeatPosition{Radius: 0.5, Angle: math.Pi / 2}
	right := SeatPosition{Radius: 0.5, Angle: 0}

	tests := []struct {
		name string
		a, b SeatPosition
		want int
	}{
		{"left before top", left, top, -1},
		{"top before right", top, right, -1},
		{"right after left", right, left, 1},
		{"same angle inner first", left, leftOuter, -1},
		{"same angle outer last", leftOuter, left, 1},
		{"identical", top, top, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	seats := mustLayout(t, 60).Seats()
	for _, a := range seats {
		if Compare(a, a) != 0 {
			t.Fatalf("Compare(a, a) != 0 for %v", a)
		}
		for _, b := range seats {
			if Compare(a, b) != -Compare(b, a) {
				t.Fatalf("Compare not antisymmetric for %v, %v", a, b)
			}
			for _, c := range seats {
				if Compare(a, b) < 0 && Compare(b, c) < 0 && Compare(a, c) >= 0 {
					t.Fatalf("Compare not transitive for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	seats := mustLayout(t, 250).Seats()
	again := slices.Clone(seats)
	Sort(again)
	for i := range seats {
		if !seats[i].Equal(again[i]) {
			t.Fatalf("re-sorting moved seat %d", i)
		}
	}
}

func TestSortWideSectorSweepsLeftToRight(t *testing.T) {
	// In a 270° sector the left end sits below the horizontal at 5π/4 and the
	// right end at 7π/4; the sweep must start at the former.
	positions := []SeatPosition{
		{Radius: 1, Angle: 7 * math.Pi / 4},
		{Radius: 1, Angle: math.Pi / 2},
		{Radius: 1, Angle: 5 * math.Pi / 4},
	}
	Sort(positions)
	want := []float64{5 * math.Pi / 4, math.Pi / 2, 7 * math.Pi / 4}
	for i, p := range positions {
		if !approx(p.Angle, want[i]) {
			t.Errorf("position %d angle = %v, want %v", i, p.Angle, want[i])
		}
	}
}
