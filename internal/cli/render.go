package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
	"github.com/matzehuels/hemicycle/pkg/render"
)

// renderOpts holds the output flags of the render command. Layout flags
// live in chamberFlags.
type renderOpts struct {
	output    string  // output file (single format) or base path
	formats   string  // comma-separated formats
	width     float64 // SVG width in pixels
	seatScale float64 // seat diameter relative to seat spacing
	legend    bool
	labels    bool
	title     string
	scale     float64 // PNG scale factor
	graphviz  bool
	noCache   bool
	refresh   bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		chamber chamberFlags
		opts    renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [groups]",
		Short: "Render a seat diagram",
		Long: `Render a seat diagram to SVG, PNG, PDF, JSON or Graphviz DOT.

With one format, -o names the output file. With several, -o is a base path
and each format adds its extension. PNG and PDF need rsvg-convert.

With --graphviz the SVG is drawn by Graphviz neato from the DOT graph
instead of the built-in renderer. Legend, title and seat scale do not
apply to it.

Rendered files are cached; --refresh re-renders and overwrites the cache.`,
		Example: `  hemicycle render "12:#e4003b:Red,3-5-7:#00a65e+#ffffff:Green" -o chamber.svg
  hemicycle render -c bundestag.toml -f svg,png,json --row-connected`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			po, err := c.options(cmd, args, &chamber)
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &po); err != nil {
				return err
			}
			base := opts.output
			if base == "" {
				base = chamber.name()
			}
			return c.runRender(cmd.Context(), po, base, opts.noCache)
		},
	}

	chamber.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "image width in pixels")
	cmd.Flags().Float64Var(&opts.seatScale, "seat-scale", 0, "seat diameter relative to seat spacing, (0, 1]")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "draw a legend below the chamber")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "print group characters on the seats")
	cmd.Flags().StringVar(&opts.title, "title", "", "diagram title")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.graphviz, "graphviz", false, "draw the SVG by laying out the DOT graph with neato")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// apply copies the flags the user set onto po.
func (o *renderOpts) apply(cmd *cobra.Command, po *pipeline.Options) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		formats, err := render.ParseFormats(o.formats)
		if err != nil {
			return err
		}
		po.Formats = formats
	}
	if flags.Changed("width") {
		if o.width <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %g", o.width)
		}
		po.Width = o.width
	}
	if flags.Changed("seat-scale") {
		if o.seatScale <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "seat scale must be in (0, 1], got %g", o.seatScale)
		}
		po.SeatScale = o.seatScale
	}
	if flags.Changed("legend") {
		po.Legend = o.legend
	}
	if flags.Changed("labels") {
		po.Labels = o.labels
	}
	if flags.Changed("graphviz") {
		po.Graphviz = o.graphviz
	}
	if flags.Changed("title") {
		po.Title = o.title
	}
	po.Scale = o.scale
	po.Refresh = o.refresh
	return nil
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, base string, noCache bool) error {
	formats, skipped := convertible(opts.Formats)
	if len(skipped) > 0 {
		printWarning("rsvg-convert not found, skipping %s", strings.Join(skipped, ", "))
		if len(formats) == 0 {
			return errors.New(errors.ErrCodeUnsupported, "no requested format can be rendered without rsvg-convert")
		}
	}
	opts.Formats = formats

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	paths := outputPaths(base, opts.Formats)
	for _, f := range opts.Formats {
		if err := writeFile(paths[f], result.Artifacts[f]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	printSuccess("Rendered %s", StyleNumber.Render(fmt.Sprintf("%d seats", result.Stats.Seats)))
	printStats(result.Stats.Seats, result.Stats.Rows, result.CacheInfo.AllHit())
	for _, f := range opts.Formats {
		printFile(paths[f])
	}
	return nil
}

// convertible drops the formats that need rsvg-convert when it is missing.
func convertible(formats []render.Format) (ok []render.Format, skipped []string) {
	if render.CanConvert() {
		return formats, nil
	}
	for _, f := range formats {
		if f.NeedsConverter() {
			skipped = append(skipped, string(f))
			continue
		}
		ok = append(ok, f)
	}
	return ok, skipped
}

// outputPaths maps each format to its file. A single format writes to base
// as given if it already has an extension.
func outputPaths(base string, formats []render.Format) map[render.Format]string {
	paths := make(map[render.Format]string, len(formats))
	if len(formats) == 1 && filepath.Ext(base) != "" {
		paths[formats[0]] = base
		return paths
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, f := range formats {
		paths[f] = base + f.Ext()
	}
	return paths
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
