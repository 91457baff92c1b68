// ABOUTME: Renderer for Textbox: composes hint, resolved style, padded content, and cursor cell
// ABOUTME: Row is a pure projection of state; Frame prefixes the surface's cursor move

package component

import (
	"fmt"
	"strings"

	"github.com/astelon/btui/pkg/tui"
	"github.com/astelon/btui/pkg/tui/width"
)

const hintColumns = 2

// hintActive reports whether the focus hint replaces the leading columns.
func (tb *Textbox) hintActive() bool {
	return tb.focused && tb.hint != ""
}

// Row returns the styled row without positioning.
func (tb *Textbox) Row() string {
	style := tb.resolveStyle()

	cells := make([]rune, tb.width)
	copy(cells, tb.content)
	for i := len(tb.content); i < tb.width; i++ {
		cells[i] = ' '
	}

	var b strings.Builder
	cursor := tb.cursor
	if tb.hintActive() {
		cols := min(hintColumns, tb.width)
		b.WriteString(width.Fit(tb.hint, cols))
		cells = cells[cols:]
		cursor -= cols
	}
	b.WriteString(style)

	if !(tb.focused || tb.IsEditing()) || cursor < 0 || cursor >= len(cells) {
		b.WriteString(string(cells))
		return b.String()
	}

	b.WriteString(string(cells[:cursor]))
	b.WriteString(tb.styles.Cursor)
	b.WriteRune(cells[cursor])
	b.WriteString(style)
	b.WriteString(string(cells[cursor+1:]))
	return b.String()
}

// Frame returns the positioned row for s.
func (tb *Textbox) Frame(s tui.Surface) (string, error) {
	if s == nil {
		return "", tui.ErrNoSurface
	}
	return s.MoveCursor(tb.x, tb.y) + tb.Row(), nil
}

// Draw writes the frame to s.
func (tb *Textbox) Draw(s tui.Surface) error {
	out, err := tb.Frame(s)
	if err != nil {
		return err
	}
	if _, err := s.Write([]byte(out)); err != nil {
		return fmt.Errorf("drawing textbox: %w", err)
	}
	return nil
}
