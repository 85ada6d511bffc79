package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// exploreCommand creates the explore command, an interactive seat browser.
func (c *CLI) exploreCommand() *cobra.Command {
	var chamber chamberFlags

	cmd := &cobra.Command{
		Use:   "explore [groups]",
		Short: "Browse the seats of a chamber interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args, &chamber)
			if err != nil {
				return err
			}
			return c.runExplore(cmd.Context(), opts)
		},
	}

	chamber.register(cmd)

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, opts pipeline.Options) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	l, p, err := runner.Plan(ctx, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(NewSeatListModel(l, p), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// SeatListModel - Interactive seat browser
// =============================================================================

// SeatListModel is the bubbletea model for browsing seats in canonical order.
type SeatListModel struct {
	Layout *hemicycle.Layout
	Plan   seating.Plan
	Cursor int
	Height int
	Offset int

	groups []seating.ParliamentaryGroup
}

// NewSeatListModel creates a seat list positioned on the first seat.
func NewSeatListModel(l *hemicycle.Layout, p seating.Plan) SeatListModel {
	return SeatListModel{
		Layout: l,
		Plan:   p,
		Height: 15,
		groups: p.Groups(),
	}
}

func (m SeatListModel) Init() tea.Cmd {
	return nil
}

func (m SeatListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.Cursor - 1)
		case "down", "j":
			m.moveTo(m.Cursor + 1)
		case "pgup":
			m.moveTo(m.Cursor - m.Height)
		case "pgdown":
			m.moveTo(m.Cursor + m.Height)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(m.Plan.NumberOfSeats() - 1)
		case "n", "tab":
			m.moveTo(m.nextGroupStart())
		case "p", "shift+tab":
			m.moveTo(m.prevGroupStart())
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
		m.moveTo(m.Cursor)
	}
	return m, nil
}

// moveTo places the cursor on seat i, clamped, and scrolls it into view.
func (m *SeatListModel) moveTo(i int) {
	m.Cursor = min(max(i, 0), m.Plan.NumberOfSeats()-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// nextGroupStart returns the first seat after the cursor held by another
// group, or the cursor if there is none.
func (m SeatListModel) nextGroupStart() int {
	current := m.Plan.GroupIndexAt(m.Cursor)
	for i := m.Cursor + 1; i < m.Plan.NumberOfSeats(); i++ {
		if m.Plan.GroupIndexAt(i) != current {
			return i
		}
	}
	return m.Cursor
}

// prevGroupStart returns the first seat of the run of seats before the
// cursor's run.
func (m SeatListModel) prevGroupStart() int {
	i := m.Cursor
	for i > 0 && m.Plan.GroupIndexAt(i-1) == m.Plan.GroupIndexAt(m.Cursor) {
		i--
	}
	if i == 0 {
		return 0
	}
	prev := m.Plan.GroupIndexAt(i - 1)
	i--
	for i > 0 && m.Plan.GroupIndexAt(i-1) == prev {
		i--
	}
	return i
}

func (m SeatListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Seats"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  n/p next/previous group  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.Plan.NumberOfSeats())
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		gi := m.Plan.GroupIndexAt(i)
		pos := m.Layout.Seat(i)
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i + 1),
			strconv.Itoa(m.Layout.SeatRow(i) + 1),
			fmt.Sprintf("%.1f°", pos.Angle*180/math.Pi),
			swatches(m.groups[gi]),
			groupLabel(m.groups[gi], gi),
			m.Plan.StatusAt(i).String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("", "Seat", "Row", "Angle", "", "Group", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
			}
			if col == 6 && row >= 0 && row < len(rows) {
				return statusStyle(rows[row][6])
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.summary())

	return b.String()
}

// summary describes the group holding the seat under the cursor.
func (m SeatListModel) summary() string {
	gi := m.Plan.GroupIndexAt(m.Cursor)
	g := m.groups[gi]
	counts := m.Plan.StatusCounts(gi)
	line := fmt.Sprintf("  [%d/%d]  %s  %d seats", m.Cursor+1, m.Plan.NumberOfSeats(), groupLabel(g, gi), counts.Total())
	if g.Size.Kind() == seating.SizeDifferentiated {
		line += fmt.Sprintf(" (%d certain, %d likely, %d unlikely)", counts.Certain, counts.Likely, counts.Unlikely)
	}
	return StyleDim.Render(line)
}
