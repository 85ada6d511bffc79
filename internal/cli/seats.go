package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// seatsCommand creates the seats command that prints the allocation.
func (c *CLI) seatsCommand() *cobra.Command {
	var (
		chamber chamberFlags
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "seats [groups]",
		Short: "Print the seat allocation as a table",
		Long: `Print the seat allocation as a table.

By default one line per group shows how many of its seats are certain,
likely and unlikely. With --all every seat is listed in canonical order,
from the left end of the chamber to the right.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args, &chamber)
			if err != nil {
				return err
			}
			return c.runSeats(cmd.Context(), opts, all)
		},
	}

	chamber.register(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every seat")

	return cmd
}

func (c *CLI) runSeats(ctx context.Context, opts pipeline.Options, all bool) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	l, p, err := runner.Plan(ctx, opts)
	if err != nil {
		return err
	}
	if all {
		fmt.Fprintln(stdout, seatTable(l, p))
		return nil
	}
	fmt.Fprintln(stdout, groupTable(p))
	printInfo("%d seats in %d rows, %s allocation", p.NumberOfSeats(), l.NumberOfRows(), opts.Method())
	return nil
}

// groupTable renders one line per group with its status counts.
func groupTable(p seating.Plan) string {
	groups := p.Groups()
	rows := make([][]string, 0, len(groups))
	for i, g := range groups {
		counts := p.StatusCounts(i)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			groupLabel(g, i),
			swatches(g),
			g.Size.String(),
			strconv.Itoa(counts.Certain),
			strconv.Itoa(counts.Likely),
			strconv.Itoa(counts.Unlikely),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Group", "Color", "Size", "Certain", "Likely", "Unlikely").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0:
				return StyleDim
			case col >= 4:
				return StyleNumber
			}
			return StyleValue
		})
	return t.Render()
}

// seatTable renders one line per seat in canonical order.
func seatTable(l *hemicycle.Layout, p seating.Plan) string {
	groups := p.Groups()
	rows := make([][]string, 0, p.NumberOfSeats())
	for _, a := range p.Assignments() {
		pos := l.Seat(a.Seat)
		rows = append(rows, []string{
			strconv.Itoa(a.Seat + 1),
			strconv.Itoa(l.SeatRow(a.Seat) + 1),
			fmt.Sprintf("%.1f°", pos.Angle*180/math.Pi),
			groupLabel(groups[a.Group], a.Group),
			a.Status.String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Seat", "Row", "Angle", "Group", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 4 && row >= 0 && row < len(rows) {
				return statusStyle(rows[row][4])
			}
			return StyleValue
		})
	return t.Render()
}

func groupLabel(g seating.ParliamentaryGroup, i int) string {
	if label := g.Label(); label != "" {
		return label
	}
	return fmt.Sprintf("Group %d", i+1)
}

func swatches(g seating.ParliamentaryGroup) string {
	parts := make([]string, len(g.Colors))
	for i, col := range g.Colors {
		parts[i] = swatch(col.Hex())
	}
	return strings.Join(parts, "")
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case seating.StatusLikely.String():
		return StyleWarning
	case seating.StatusUnlikely.String():
		return StyleDim
	}
	return StyleValue
}
