package seating

import "testing"

var (
	red   = Color{R: 255}
	green = Color{G: 255}
	blue  = Color{B: 255}
)

func group(size GroupSize, c Color, name string) ParliamentaryGroup {
	return ParliamentaryGroup{Size: size, Colors: []Color{c}, Name: name}
}

func assertSeats(t *testing.T, p Plan, wantGroup []string, wantStatus []SeatStatus) {
	t.Helper()
	if p.NumberOfSeats() != len(wantGroup) {
		t.Fatalf("NumberOfSeats() = %d, want %d", p.NumberOfSeats(), len(wantGroup))
	}
	for i := range wantGroup {
		if got := p.GroupAt(i).Name; got != wantGroup[i] {
			t.Errorf("seat %d group = %q, want %q", i, got, wantGroup[i])
		}
		if got := p.StatusAt(i); got != wantStatus[i] {
			t.Errorf("seat %d status = %v, want %v", i, got, wantStatus[i])
		}
	}
}

func TestSeatingPlanSimpleGroups(t *testing.T) {
	p := NewSeatingPlan([]ParliamentaryGroup{
		group(Simple(2), red, "red"),
		group(Simple(1), blue, "blue"),
	})

	assertSeats(t, p,
		[]string{"red", "red", "blue"},
		[]SeatStatus{StatusCertain, StatusCertain, StatusCertain})
	if p.HasUncertainSeats() {
		t.Error("HasUncertainSeats() = true, want false")
	}
}

func TestSeatingPlanDifferentiatedLeftHalf(t *testing.T) {
	p := NewSeatingPlan([]ParliamentaryGroup{
		group(MustDifferentiated(1, 2, 3), green, "green"),
		group(Simple(1), blue, "blue"),
	})

	assertSeats(t, p,
		[]string{"green", "green", "green", "blue"},
		[]SeatStatus{StatusCertain, StatusLikely, StatusUnlikely, StatusCertain})
	if !p.HasUncertainSeats() {
		t.Error("HasUncertainSeats() = false, want true")
	}
}

func TestSeatingPlanDifferentiatedRightHalfIsMirrored(t *testing.T) {
	p := NewSeatingPlan([]ParliamentaryGroup{
		group(Simple(3), red, "red"),
		group(MustDifferentiated(1, 2, 4), green, "green"),
	})

	assertSeats(t, p,
		[]string{"red", "red", "red", "green", "green", "green", "green"},
		[]SeatStatus{
			StatusCertain, StatusCertain, StatusCertain,
			StatusUnlikely, StatusUnlikely, StatusLikely, StatusCertain,
		})
}

func TestSeatingPlanCenteredBlockIsMirrored(t *testing.T) {
	// 1*2 + 2 == 4 is not strictly below the seat count, so the block
	// counts as right half.
	p := NewSeatingPlan([]ParliamentaryGroup{
		group(Simple(1), red, "red"),
		group(MustDifferentiated(1, 1, 2), green, "green"),
		group(Simple(1), blue, "blue"),
	})

	assertSeats(t, p,
		[]string{"red", "green", "green", "blue"},
		[]SeatStatus{StatusCertain, StatusUnlikely, StatusCertain, StatusCertain})
}

func TestSeatingPlanSkipsEmptyGroups(t *testing.T) {
	p := NewSeatingPlan([]ParliamentaryGroup{
		group(Simple(0), red, "red"),
		group(Simple(2), blue, "blue"),
		group(MustDifferentiated(0, 0, 0), green, "green"),
	})

	assertSeats(t, p, []string{"blue", "blue"}, []SeatStatus{StatusCertain, StatusCertain})
	if p.GroupIndexAt(0) != 1 {
		t.Errorf("GroupIndexAt(0) = %d, want 1", p.GroupIndexAt(0))
	}
	if len(p.Groups()) != 3 {
		t.Errorf("Groups() should keep empty groups, got %d", len(p.Groups()))
	}
}

func TestSeatingPlanNoGroups(t *testing.T) {
	p := NewSeatingPlan(nil)
	if p.NumberOfSeats() != 0 {
		t.Errorf("NumberOfSeats() = %d, want 0", p.NumberOfSeats())
	}
	if len(p.Assignments()) != 0 {
		t.Error("expected no assignments")
	}
}

func TestHasUncertainSeats(t *testing.T) {
	tests := []struct {
		name string
		size GroupSize
		want bool
	}{
		{"simple", Simple(4), false},
		{"all certain interval", MustDifferentiated(2, 2, 2), false},
		{"only unlikely", MustDifferentiated(0, 0, 1), true},
		{"interval", MustDifferentiated(1, 3, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := []ParliamentaryGroup{group(Simple(2), red, "red"), group(tt.size, green, "x")}
			if got := NewSeatingPlan(groups).HasUncertainSeats(); got != tt.want {
				t.Errorf("HasUncertainSeats() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBandingCounts(t *testing.T) {
	sizes := [][3]int{{0, 0, 5}, {2, 4, 9}, {3, 3, 3}, {1, 6, 6}, {0, 2, 2}}
	for _, before := range []int{0, 1, 7, 20} {
		for _, s := range sizes {
			groups := []ParliamentaryGroup{
				group(Simple(before), red, "lead"),
				group(MustDifferentiated(s[0], s[1], s[2]), green, "diff"),
				group(Simple(3), blue, "tail"),
			}
			p := NewSeatingPlan(groups)

			counts := map[SeatStatus]int{}
			for _, a := range p.Assignments() {
				if a.Group == 1 {
					counts[a.Status]++
				}
			}
			if counts[StatusCertain] != s[0] || counts[StatusLikely] != s[1]-s[0] || counts[StatusUnlikely] != s[2]-s[1] {
				t.Errorf("before=%d size=%v: counts %v", before, s, counts)
			}
		}
	}
}

func TestAssignments(t *testing.T) {
	p := NewSeatingPlan([]ParliamentaryGroup{
		group(MustDifferentiated(1, 2, 3), green, "green"),
		group(Simple(1), blue, "blue"),
	})
	got := p.Assignments()
	want := []Assignment{
		{Seat: 0, Group: 0, Status: StatusCertain},
		{Seat: 1, Group: 0, Status: StatusLikely},
		{Seat: 2, Group: 0, Status: StatusUnlikely},
		{Seat: 3, Group: 1, Status: StatusCertain},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Assignments()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPlanOutOfRangePanics(t *testing.T) {
	p := NewSeatingPlan([]ParliamentaryGroup{group(Simple(2), red, "red")})
	calls := map[string]func(){
		"GroupAt(-1)":     func() { p.GroupAt(-1) },
		"GroupAt(2)":      func() { p.GroupAt(2) },
		"StatusAt(2)":     func() { p.StatusAt(2) },
		"GroupIndexAt(5)": func() { p.GroupIndexAt(5) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s should panic", name)
				}
			}()
			call()
		})
	}
}

func TestPlanIsolatedFromInput(t *testing.T) {
	groups := []ParliamentaryGroup{group(Simple(1), red, "red")}
	p := NewSeatingPlan(groups)
	groups[0].Name = "changed"
	groups[0].Colors[0] = blue

	if p.GroupAt(0).Name != "red" || p.GroupAt(0).Colors[0] != red {
		t.Error("plan must not observe changes to the input slice")
	}

	out := p.Groups()
	out[0].Colors[0] = green
	if p.GroupAt(0).Colors[0] != red {
		t.Error("Groups() must return copies")
	}
}

func TestStatusCounts(t *testing.T) {
	p := NewSeatingPlan([]ParliamentaryGroup{
		group(MustDifferentiated(1, 2, 4), green, "green"),
		group(Simple(3), blue, "blue"),
	})

	if got, want := p.StatusCounts(0), (StatusCounts{Certain: 1, Likely: 1, Unlikely: 2}); got != want {
		t.Errorf("StatusCounts(0) = %+v, want %+v", got, want)
	}
	if got := p.StatusCounts(1); got.Certain != 3 || got.Total() != 3 {
		t.Errorf("StatusCounts(1) = %+v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("StatusCounts(2) should panic")
		}
	}()
	p.StatusCounts(2)
}
