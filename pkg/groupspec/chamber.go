package groupspec

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// Chamber is a complete diagram description: layout parameters and groups.
type Chamber struct {
	Title        string
	AngleDegrees float64 // 0 means the default half circle
	RadiusRatio  float64 // 0 means the default
	RowConnected bool
	Groups       []seating.ParliamentaryGroup
}

// Angle returns the sector angle in radians, or 0 when unset.
func (c *Chamber) Angle() float64 {
	return c.AngleDegrees * math.Pi / 180
}

type chamberFile struct {
	Title        string      `toml:"title,omitempty"`
	Angle        float64     `toml:"angle,omitempty"`
	RadiusRatio  float64     `toml:"radius_ratio,omitempty"`
	RowConnected bool        `toml:"row_connected,omitempty"`
	Groups       []groupFile `toml:"group"`
}

type groupFile struct {
	Name      string          `toml:"name,omitempty"`
	Character string          `toml:"character,omitempty"`
	Colors    []seating.Color `toml:"colors"`
	Size      *int            `toml:"size,omitempty"`
	Lower     *int            `toml:"lower,omitempty"`
	Median    *int            `toml:"median,omitempty"`
	Total     *int            `toml:"total,omitempty"`
}

// LoadChamber reads a TOML chamber file.
func LoadChamber(path string) (*Chamber, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chamber file %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeChamber(f)
}

// DecodeChamber parses a TOML chamber document. Unknown keys are rejected.
func DecodeChamber(r io.Reader) (*Chamber, error) {
	var raw chamberFile
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode chamber")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidSpec, "unknown keys in chamber: %s", strings.Join(keys, ", "))
	}

	c := &Chamber{
		Title:        raw.Title,
		AngleDegrees: raw.Angle,
		RadiusRatio:  raw.RadiusRatio,
		RowConnected: raw.RowConnected,
		Groups:       make([]seating.ParliamentaryGroup, 0, len(raw.Groups)),
	}
	for i, gf := range raw.Groups {
		g, err := gf.group()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "group %d", i+1)
		}
		c.Groups = append(c.Groups, g)
	}
	if len(c.Groups) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "chamber has no groups")
	}
	return c, nil
}

func (gf groupFile) group() (seating.ParliamentaryGroup, error) {
	var size seating.GroupSize
	interval := gf.Lower != nil || gf.Median != nil || gf.Total != nil
	switch {
	case gf.Size != nil && interval:
		return seating.ParliamentaryGroup{}, errors.New(errors.ErrCodeInvalidSpec, "use either size or lower/median/total")
	case gf.Size != nil:
		if *gf.Size < 0 {
			return seating.ParliamentaryGroup{}, errors.New(errors.ErrCodeInvalidSpec, "size must not be negative")
		}
		size = seating.Simple(*gf.Size)
	case gf.Lower != nil && gf.Median != nil && gf.Total != nil:
		var err error
		if size, err = seating.Differentiated(*gf.Lower, *gf.Median, *gf.Total); err != nil {
			return seating.ParliamentaryGroup{}, err
		}
	default:
		return seating.ParliamentaryGroup{}, errors.New(errors.ErrCodeInvalidSpec, "missing size or lower/median/total")
	}

	char, err := parseCharacter(gf.Character)
	if err != nil {
		return seating.ParliamentaryGroup{}, err
	}
	return seating.NewGroup(size, gf.Colors, gf.Name, char)
}

// EncodeTOML writes c as a chamber document readable by [DecodeChamber].
func (c *Chamber) EncodeTOML(w io.Writer) error {
	raw := chamberFile{
		Title:        c.Title,
		Angle:        c.AngleDegrees,
		RadiusRatio:  c.RadiusRatio,
		RowConnected: c.RowConnected,
		Groups:       make([]groupFile, len(c.Groups)),
	}
	for i, g := range c.Groups {
		gf := groupFile{Name: g.Name, Colors: g.Colors}
		if g.Character != 0 {
			gf.Character = string(g.Character)
		}
		switch g.Size.Kind() {
		case seating.SizeDifferentiated:
			lo, med, tot := g.Size.LowerBound(), g.Size.Median(), g.Size.FullSize()
			gf.Lower, gf.Median, gf.Total = &lo, &med, &tot
		default:
			n := g.Size.FullSize()
			gf.Size = &n
		}
		raw.Groups[i] = gf
	}
	if err := toml.NewEncoder(w).Encode(raw); err != nil {
		return fmt.Errorf("encode chamber: %w", err)
	}
	return nil
}
