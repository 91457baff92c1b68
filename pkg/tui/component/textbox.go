// ABOUTME: Textbox is a fixed-width, single-line field edited with vi-style modal keys
// ABOUTME: Construction from an explicit TextboxConfig; per-instance state and keymap

package component

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/astelon/btui/pkg/tui"
	"github.com/astelon/btui/pkg/tui/key"
)

// ErrInvalidGeometry is returned when a Textbox is configured with a
// non-positive width or negative position or height.
var ErrInvalidGeometry = errors.New("invalid textbox geometry")

// Mode is the editing state of a Textbox. Insert, Replace, and Append are
// sub-states of editing.
type Mode int

const (
	ModeNormal  Mode = iota // keys are commands
	ModeInsert              // typed characters are inserted at the cursor
	ModeReplace             // typed characters overwrite the cursor cell
	ModeAppend              // typed characters are inserted after the cursor
)

var modeNames = [...]string{"normal", "insert", "replace", "append"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// TextboxStyles holds the opaque style tokens applied by the renderer.
// The empty string means unset.
type TextboxStyles struct {
	Base   string
	Focus  string
	Edit   string
	Cursor string
}

// TextboxConfig configures a Textbox. Width is required; Height defaults
// to 1; a nil Keymap means a fresh copy of DefaultKeymap.
type TextboxConfig struct {
	X, Y   int
	Width  int
	Height int
	Text   string
	Hint   string
	Styles TextboxStyles
	Keymap *Keymap
}

// Textbox is a single-line editable field.
type Textbox struct {
	x, y   int
	width  int
	height int

	content   []rune
	cursor    int
	cursorRow int

	mode    Mode
	focused bool
	hint    string
	styles  TextboxStyles
	keymap  *Keymap
}

var (
	_ tui.Drawable     = (*Textbox)(nil)
	_ tui.Placed       = (*Textbox)(nil)
	_ tui.InputHandler = (*Textbox)(nil)
	_ tui.Focusable    = (*Textbox)(nil)
)

// NewTextbox creates a Textbox from cfg. Initial text longer than the
// width is truncated; the cursor starts on the last character.
func NewTextbox(cfg TextboxConfig) (*Textbox, error) {
	switch {
	case cfg.Width <= 0:
		return nil, fmt.Errorf("width %d: %w", cfg.Width, ErrInvalidGeometry)
	case cfg.Height < 0:
		return nil, fmt.Errorf("height %d: %w", cfg.Height, ErrInvalidGeometry)
	case cfg.X < 0 || cfg.Y < 0:
		return nil, fmt.Errorf("position (%d,%d): %w", cfg.X, cfg.Y, ErrInvalidGeometry)
	}

	height := cfg.Height
	if height == 0 {
		height = 1
	}
	km := cfg.Keymap
	if km == nil {
		km = DefaultKeymap()
	} else {
		km = km.Clone()
	}

	tb := &Textbox{
		x:      cfg.X,
		y:      cfg.Y,
		width:  cfg.Width,
		height: height,
		hint:   cfg.Hint,
		styles: cfg.Styles,
		keymap: km,
	}
	tb.content = tb.fitContent(cfg.Text)
	if n := len(tb.content); n > 0 {
		tb.cursor = n - 1
	}
	return tb, nil
}

// fitContent normalises s to NFC and truncates it to the box width.
func (tb *Textbox) fitContent(s string) []rune {
	r := []rune(norm.NFC.String(s))
	if len(r) > tb.width {
		r = r[:tb.width]
	}
	return r
}

// Position returns the top-left cell of the box.
func (tb *Textbox) Position() (x, y int) { return tb.x, tb.y }

// Width returns the column count of the box.
func (tb *Textbox) Width() int { return tb.width }

// Height returns the row count reserved for the box.
func (tb *Textbox) Height() int { return tb.height }

// Cursor returns the cursor's index into the content.
func (tb *Textbox) Cursor() int { return tb.cursor }

// CursorRow returns the vertical cursor position.
func (tb *Textbox) CursorRow() int { return tb.cursorRow }

// Mode returns the current editing state.
func (tb *Textbox) Mode() Mode { return tb.mode }

// IsEditing reports whether the box is in any editing sub-state.
func (tb *Textbox) IsEditing() bool { return tb.mode != ModeNormal }

// IsFocused reports whether the box has input focus.
func (tb *Textbox) IsFocused() bool { return tb.focused }

// Hint returns the focus hint.
func (tb *Textbox) Hint() string { return tb.hint }

// SetHint replaces the focus hint. An empty hint disables it.
func (tb *Textbox) SetHint(h string) { tb.hint = h }

// Styles returns the style tokens.
func (tb *Textbox) Styles() TextboxStyles { return tb.styles }

// SetStyles replaces the style tokens.
func (tb *Textbox) SetStyles(s TextboxStyles) { tb.styles = s }

// Keymap returns the box's own binding tables. Changes affect only this box.
func (tb *Textbox) Keymap() *Keymap { return tb.keymap }

// HandleInput decodes raw terminal bytes as one key and injects it.
func (tb *Textbox) HandleInput(data string) {
	tb.InjectKey(key.ParseKey(data))
}
