package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/groupspec"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
)

// chamberFlags are the input and layout flags shared by every command that
// takes a chamber.
type chamberFlags struct {
	chamber      string
	angle        float64 // degrees
	radiusRatio  float64
	rowConnected bool
}

func (f *chamberFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.chamber, "chamber", "c", "", "TOML chamber file instead of a group spec")
	cmd.Flags().Float64Var(&f.angle, "angle", 180, "sector angle in degrees, (0, 360]")
	cmd.Flags().Float64Var(&f.radiusRatio, "radius-ratio", 1.0/3, "inner radius relative to the outer radius, (0, 1)")
	cmd.Flags().BoolVar(&f.rowConnected, "row-connected", false, "keep each group within neighbouring rows")
}

// name returns a base name for output files.
func (f *chamberFlags) name() string {
	if f.chamber == "" {
		return appName
	}
	base := filepath.Base(f.chamber)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// options resolves the groups and layout of a chamber command. Flags
// override the chamber file, which overrides the config file.
func (c *CLI) options(cmd *cobra.Command, args []string, f *chamberFlags) (pipeline.Options, error) {
	opts, err := c.Config.pipelineOptions()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts.Logger = c.Logger

	switch {
	case f.chamber != "" && len(args) > 0:
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "give either a group spec or --chamber, not both")
	case f.chamber != "":
		ch, err := groupspec.LoadChamber(f.chamber)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Groups = ch.Groups
		if ch.AngleDegrees != 0 {
			opts.Angle = ch.Angle()
		}
		if ch.RadiusRatio != 0 {
			opts.RadiusRatio = ch.RadiusRatio
		}
		opts.RowConnected = opts.RowConnected || ch.RowConnected
		opts.Title = ch.Title
	case len(args) == 1:
		groups, err := groupspec.Parse(args[0])
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Groups = groups
	default:
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "missing groups: pass a group spec or --chamber")
	}

	// Zero means "default" to the pipeline, so explicit flags are
	// validated here.
	flags := cmd.Flags()
	if flags.Changed("angle") {
		opts.Angle = radians(f.angle)
		if err := errors.ValidateAngle(opts.Angle); err != nil {
			return pipeline.Options{}, err
		}
	}
	if flags.Changed("radius-ratio") {
		opts.RadiusRatio = f.radiusRatio
		if err := errors.ValidateRadiusRatio(opts.RadiusRatio); err != nil {
			return pipeline.Options{}, err
		}
	}
	if flags.Changed("row-connected") {
		opts.RowConnected = f.rowConnected
	}
	return opts, nil
}
