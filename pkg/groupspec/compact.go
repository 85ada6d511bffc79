package groupspec

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// Parse decodes the compact encoding into groups in input order.
// Errors carry the INVALID_SPEC code and name the 1-based group position.
func Parse(spec string) ([]seating.ParliamentaryGroup, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "group spec is empty")
	}

	parts := strings.Split(spec, ",")
	groups := make([]seating.ParliamentaryGroup, 0, len(parts))
	for i, part := range parts {
		g, err := parseGroup(part)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "group %d (%q)", i+1, strings.TrimSpace(part))
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func parseGroup(s string) (seating.ParliamentaryGroup, error) {
	fields := strings.SplitN(s, ":", 4)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 {
		return seating.ParliamentaryGroup{}, errors.New(errors.ErrCodeInvalidSpec, "expected size:colors")
	}

	size, err := ParseSize(fields[0])
	if err != nil {
		return seating.ParliamentaryGroup{}, err
	}
	colors, err := parseColors(fields[1])
	if err != nil {
		return seating.ParliamentaryGroup{}, err
	}

	var name string
	if len(fields) > 2 {
		name = fields[2]
	}
	var char rune
	if len(fields) > 3 {
		if char, err = parseCharacter(fields[3]); err != nil {
			return seating.ParliamentaryGroup{}, err
		}
	}
	return seating.NewGroup(size, colors, name, char)
}

// ParseSize decodes "N" or "L-M-T".
func ParseSize(s string) (seating.GroupSize, error) {
	nums := strings.Split(s, "-")
	switch len(nums) {
	case 1:
		n, err := parseCount(nums[0])
		if err != nil {
			return seating.GroupSize{}, err
		}
		return seating.Simple(n), nil
	case 3:
		var v [3]int
		for i, part := range nums {
			n, err := parseCount(part)
			if err != nil {
				return seating.GroupSize{}, err
			}
			v[i] = n
		}
		return seating.Differentiated(v[0], v[1], v[2])
	}
	return seating.GroupSize{}, errors.New(errors.ErrCodeInvalidSpec, "size %q must be N or L-M-T", s)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errors.New(errors.ErrCodeInvalidSpec, "invalid seat count %q", s)
	}
	return n, nil
}

func parseColors(s string) ([]seating.Color, error) {
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "missing color")
	}
	parts := strings.Split(s, "+")
	colors := make([]seating.Color, 0, len(parts))
	for _, p := range parts {
		c, err := seating.ParseColor(p)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parseCharacter(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New(errors.ErrCodeInvalidSpec, "character label %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Format encodes groups in the compact encoding.
func Format(groups []seating.ParliamentaryGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(g.Size.String())
		b.WriteByte(':')
		for j, c := range g.Colors {
			if j > 0 {
				b.WriteByte('+')
			}
			b.WriteString(c.Hex())
		}
		if g.Name != "" || g.Character != 0 {
			b.WriteByte(':')
			b.WriteString(g.Name)
		}
		if g.Character != 0 {
			b.WriteByte(':')
			b.WriteRune(g.Character)
		}
	}
	return b.String()
}
