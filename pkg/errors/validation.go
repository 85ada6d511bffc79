package errors

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateSeats checks that a chamber has at least one seat.
func ValidateSeats(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidSeats, "number of seats must be positive, got %d", n)
	}
	return nil
}

// ValidateAngle checks that a hemicycle angle (radians) lies in (0, 2π].
// NaN is rejected.
func ValidateAngle(angle float64) error {
	if math.IsNaN(angle) || angle <= 0 || angle > 2*math.Pi {
		return New(ErrCodeInvalidAngle, "angle must be in (0, 2π], got %g", angle)
	}
	return nil
}

// ValidateRadiusRatio checks that the inner/outer radius ratio lies in (0, 1).
func ValidateRadiusRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio <= 0 || ratio >= 1 {
		return New(ErrCodeInvalidRadiusRatio, "radius ratio must be in (0, 1), got %g", ratio)
	}
	return nil
}

// ValidateGroupName validates a display name for a parliamentary group.
//
// The rules are conservative since names end up inside SVG text nodes:
//   - Maximum length of 128 characters
//   - No control characters
//   - No structural separators of the compact encoding (',' and ':')
func ValidateGroupName(name string) error {
	if utf8.RuneCountInString(name) > 128 {
		return New(ErrCodeInvalidGroup, "group name too long (max 128 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGroup, "group name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, ",:") {
		return New(ErrCodeInvalidGroup, "group name cannot contain ',' or ':'")
	}
	return nil
}
