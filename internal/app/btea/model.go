// ABOUTME: Bubble Tea model wrapping an app.Form: keys go to the form, View composes widget rows.
// ABOUTME: Run starts the program on the alternate screen and ends when the form quits.

package btea

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astelon/btui/internal/app"
	"github.com/astelon/btui/pkg/tui/width"
)

const resetStyle = "\x1b[0m"

// Model adapts a Form to tea.Model. The form pointer is shared across the
// value copies Bubble Tea makes on each Update.
type Model struct {
	form          *app.Form
	width, height int
	quitting      bool
}

// New returns a model driving f.
func New(f *app.Form) Model {
	return Model{form: f}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		for _, k := range Keys(msg) {
			if m.form.HandleKey(k) {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// Quitting reports whether the form asked to quit.
func (m Model) Quitting() bool { return m.quitting }

type placedRow struct {
	x   int
	row string
}

// View implements tea.Model. Widgets are placed on their rows by column;
// where two overlap, the one further left keeps the shared columns.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := map[int][]placedRow{}
	bottom := 0
	for _, p := range m.form.Placed() {
		x, y := p.Position()
		lines[y] = append(lines[y], placedRow{x: x, row: p.Row()})
		bottom = max(bottom, y+1)
	}
	if m.height > 0 {
		bottom = min(bottom, m.height)
	}

	out := make([]string, bottom)
	for y := range out {
		out[y] = composeLine(lines[y], m.width)
	}
	return strings.Join(out, "\n")
}

// composeLine lays rows out left to right, padding gaps with spaces.
// A positive limit truncates the line to that many columns.
func composeLine(rows []placedRow, limit int) string {
	if len(rows) == 0 {
		return ""
	}
	slices.SortStableFunc(rows, func(a, b placedRow) int { return cmp.Compare(a.x, b.x) })

	var b strings.Builder
	col := 0
	for _, r := range rows {
		row := r.row
		if r.x < col {
			row = width.SliceByColumn(row, col-r.x, math.MaxInt)
		} else {
			b.WriteString(strings.Repeat(" ", r.x-col))
			col = r.x
		}
		b.WriteString(row)
		b.WriteString(resetStyle)
		col += width.VisibleWidth(row)
	}

	line := b.String()
	if limit > 0 {
		line = width.Truncate(line, limit)
	}
	return line
}

// Run drives f through a Bubble Tea program on the alternate screen.
// Cancelling ctx ends the program without an error.
func Run(ctx context.Context, f *app.Form, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(f), opts...)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
