package seating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

// SizeKind tags the variant held by a [GroupSize].
type SizeKind uint8

const (
	// SizeSimple is an exact seat count.
	SizeSimple SizeKind = iota
	// SizeDifferentiated is a (lower bound, median, total) interval.
	SizeDifferentiated
)

// String returns "simple" or "differentiated".
func (k SizeKind) String() string {
	switch k {
	case SizeSimple:
		return "simple"
	case SizeDifferentiated:
		return "differentiated"
	}
	return "SizeKind(" + strconv.Itoa(int(k)) + ")"
}

// GroupSize is the seat-count specification of a group. It is either an
// exact count or an interval lower ≤ median ≤ total. The zero value is
// Simple(0).
type GroupSize struct {
	kind   SizeKind
	lower  int
	median int
	total  int
}

// Simple returns an exact group size. It panics if n is negative.
func Simple(n int) GroupSize {
	if n < 0 {
		panic(fmt.Sprintf("seating: negative group size %d", n))
	}
	return GroupSize{kind: SizeSimple, lower: n, median: n, total: n}
}

// Differentiated returns an interval group size. It fails with
// INVALID_GROUP unless 0 ≤ lower ≤ median ≤ total.
func Differentiated(lower, median, total int) (GroupSize, error) {
	if lower < 0 || lower > median || median > total {
		return GroupSize{}, errors.New(errors.ErrCodeInvalidGroup,
			"group size interval must satisfy 0 ≤ lower ≤ median ≤ total, got %d-%d-%d", lower, median, total)
	}
	return GroupSize{kind: SizeDifferentiated, lower: lower, median: median, total: total}, nil
}

// MustDifferentiated is like [Differentiated] but panics on invalid input.
// It is intended for literals in tests and examples.
func MustDifferentiated(lower, median, total int) GroupSize {
	s, err := Differentiated(lower, median, total)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind reports which variant s holds.
func (s GroupSize) Kind() SizeKind { return s.kind }

// FullSize is the number of seats the group occupies: the exact size or the
// interval total.
func (s GroupSize) FullSize() int { return s.total }

// LowerBound is the number of certain seats.
func (s GroupSize) LowerBound() int { return s.lower }

// Median is the number of certain plus likely seats.
func (s GroupSize) Median() int { return s.median }

// IsUncertain reports whether the size produces any non-certain seats.
func (s GroupSize) IsUncertain() bool {
	return s.kind == SizeDifferentiated && s.total > s.lower
}

// String formats the size as "12" or "3-5-7".
func (s GroupSize) String() string {
	switch s.kind {
	case SizeDifferentiated:
		return fmt.Sprintf("%d-%d-%d", s.lower, s.median, s.total)
	default:
		return strconv.Itoa(s.total)
	}
}

// Color is an sRGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// MarshalText encodes the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a color accepted by [ParseColor].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#rgb", "#rrggbb", "rgb" or "rrggbb" (case-insensitive).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParliamentaryGroup is a group of seats with display attributes.
type ParliamentaryGroup struct {
	Size      GroupSize
	Colors    []Color // at least one; more than one renders as stripes
	Name      string  // optional
	Character rune    // optional single-character label, 0 if absent
}

// NewGroup builds a validated group. Colors must be non-empty and the name
// must pass [errors.ValidateGroupName].
func NewGroup(size GroupSize, colors []Color, name string, character rune) (ParliamentaryGroup, error) {
	if len(colors) == 0 {
		return ParliamentaryGroup{}, errors.New(errors.ErrCodeInvalidGroup, "group %q needs at least one color", name)
	}
	if err := errors.ValidateGroupName(name); err != nil {
		return ParliamentaryGroup{}, err
	}
	return ParliamentaryGroup{
		Size:      size,
		Colors:    append([]Color(nil), colors...),
		Name:      name,
		Character: character,
	}, nil
}

// Label returns the name, or the character, or "" if neither is set.
func (g ParliamentaryGroup) Label() string {
	if g.Name != "" {
		return g.Name
	}
	if g.Character != 0 {
		return string(g.Character)
	}
	return ""
}

// TotalSeats sums FullSize over groups.
func TotalSeats(groups []ParliamentaryGroup) int {
	n := 0
	for _, g := range groups {
		n += g.Size.FullSize()
	}
	return n
}

func cloneGroups(groups []ParliamentaryGroup) []ParliamentaryGroup {
	out := make([]ParliamentaryGroup, len(groups))
	for i, g := range groups {
		g.Colors = append([]Color(nil), g.Colors...)
		out[i] = g
	}
	return out
}
