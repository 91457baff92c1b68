// ABOUTME: Core TUI interfaces: Surface, Drawable, Placed, InputHandler, Focusable
// ABOUTME: Defines the contract between positioned widgets and the terminal they draw on

package tui

import "errors"

// ErrNoSurface is returned when a widget is asked to render without a surface.
var ErrNoSurface = errors.New("tui: no surface to draw on")

// Surface is the capability a widget needs from a terminal: an absolute
// cursor-move sequence and a sink for output.
type Surface interface {
	// MoveCursor returns the control sequence placing the cursor at
	// column x, row y (both 0-indexed).
	MoveCursor(x, y int) string
	Write(p []byte) (n int, err error)
}

// Drawable is implemented by widgets that produce a positioned frame.
// Frame must be pure: identical state yields identical output.
type Drawable interface {
	Frame(s Surface) (string, error)
}

// Placed is implemented by widgets occupying a single row at a fixed
// position. Front ends that own their own screen compose rows directly.
type Placed interface {
	Position() (x, y int)
	Row() string
}

// InputHandler is implemented by components that process keyboard input.
type InputHandler interface {
	HandleInput(data string)
}

// Focusable is implemented by components that participate in focus management.
type Focusable interface {
	Focus()
	Unfocus()
	IsFocused() bool
}
