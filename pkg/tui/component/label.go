// ABOUTME: Label draws a single line of text at a fixed position
// ABOUTME: Optional style and ANSI-aware clipping to a maximum width

package component

import (
	"fmt"

	"github.com/astelon/btui/pkg/tui"
	"github.com/astelon/btui/pkg/tui/width"
)

const resetStyle = "\x1b[0m"

// Label renders a positioned, optionally styled string.
type Label struct {
	x, y     int
	text     string
	style    string
	maxWidth int
}

var (
	_ tui.Drawable = (*Label)(nil)
	_ tui.Placed   = (*Label)(nil)
)

// NewLabel creates a Label at (x, y).
func NewLabel(x, y int, text string) *Label {
	return &Label{x: x, y: y, text: text}
}

// SetText updates the text.
func (l *Label) SetText(text string) { l.text = text }

// Text returns the text.
func (l *Label) Text() string { return l.text }

// SetStyle sets the style token wrapped around the text.
func (l *Label) SetStyle(style string) { l.style = style }

// SetMaxWidth clips the label to n display columns. Zero disables clipping.
func (l *Label) SetMaxWidth(n int) { l.maxWidth = max(n, 0) }

// Position returns the label's cell.
func (l *Label) Position() (x, y int) { return l.x, l.y }

// Row returns the styled, clipped text.
func (l *Label) Row() string {
	text := l.text
	if l.maxWidth > 0 {
		text = width.Truncate(text, l.maxWidth)
	}
	if l.style == "" {
		return text
	}
	return l.style + text + resetStyle
}

// Frame returns the positioned row for s.
func (l *Label) Frame(s tui.Surface) (string, error) {
	if s == nil {
		return "", tui.ErrNoSurface
	}
	return s.MoveCursor(l.x, l.y) + l.Row(), nil
}

// Draw writes the frame to s.
func (l *Label) Draw(s tui.Surface) error {
	out, err := l.Frame(s)
	if err != nil {
		return err
	}
	if _, err := s.Write([]byte(out)); err != nil {
		return fmt.Errorf("drawing label: %w", err)
	}
	return nil
}
