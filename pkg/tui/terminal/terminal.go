// ABOUTME: Defines the Terminal interface: raw mode, size, output, cursor positioning and key input.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import (
	"context"

	"github.com/astelon/btui/pkg/tui/key"
)

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, output writing, cursor positioning, blocking key reads and
// resize notifications. Every Terminal is a tui.Surface.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	MoveCursor(x, y int) string
	ReadKey(ctx context.Context) (key.Key, error)
	OnResize(fn func(width, height int))
}
