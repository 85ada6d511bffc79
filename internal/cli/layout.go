package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
	"github.com/matzehuels/hemicycle/pkg/render/sink"
)

// layoutCommand creates the layout command for inspecting chamber geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		chamber chamberFlags
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "layout [groups]",
		Short: "Show the rows and dimensions of a chamber",
		Long: `Show the rows and dimensions of a chamber.

The seat count is the sum of the groups' full sizes. With --json the
complete layout and allocation is printed as the JSON document that
"render -f json" writes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args, &chamber)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, asJSON)
		},
	}

	chamber.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, asJSON bool) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	l, p, err := runner.Plan(ctx, opts)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := sink.RenderJSON(l, p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	fmt.Fprintln(stdout, StyleTitle.Render("Layout"))
	printKeyValue("Seats", strconv.Itoa(l.NumberOfSeats()))
	printKeyValue("Rows", strconv.Itoa(l.NumberOfRows()))
	printKeyValue("Angle", fmt.Sprintf("%g°", round(l.Angle()*180/math.Pi)))
	printKeyValue("Radius ratio", fmt.Sprintf("%g", round(l.RadiusRatio())))
	printKeyValue("Row width", fmt.Sprintf("%g", round(l.RowWidth())))
	printKeyValue("Size", fmt.Sprintf("%g × %g", round(l.Width()), round(l.Height())))
	printKeyValue("Allocation", opts.Method())
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, rowTable(l))
	return nil
}

// rowTable renders one line per row, innermost first.
func rowTable(l *hemicycle.Layout) string {
	rows := make([][]string, 0, l.NumberOfRows())
	for r, n := range l.RowSeats() {
		rows = append(rows, []string{
			strconv.Itoa(r + 1),
			fmt.Sprintf("%.4f", l.RowRadius(r)),
			strconv.Itoa(n),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Row", "Radius", "Seats").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 2 {
				return StyleValue
			}
			return StyleDim
		})
	return t.Render()
}

// round trims float noise for display.
func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
