// ABOUTME: ANSI control sequences shared by the terminal implementations.
// ABOUTME: Absolute cursor positioning, screen clearing, alternate screen, and cursor visibility.

package terminal

import "strconv"

const (
	ClearScreen     = "\x1b[2J"
	EnterAltScreen  = "\x1b[?1049h"
	ExitAltScreen   = "\x1b[?1049l"
	HideCursor      = "\x1b[?25l"
	ShowCursor      = "\x1b[?25h"
	ResetStyle      = "\x1b[0m"
	EnablePaste     = "\x1b[?2004h"
	DisablePaste    = "\x1b[?2004l"
	BeginSyncUpdate = "\x1b[?2026h"
	EndSyncUpdate   = "\x1b[?2026l"
)

// MoveCursor returns the CUP sequence placing the cursor at column x,
// row y (both zero-based).
func MoveCursor(x, y int) string {
	var numBuf [20]byte
	b := make([]byte, 0, 16)
	b = append(b, "\x1b["...)
	b = append(b, strconv.AppendInt(numBuf[:0], int64(max(y, 0)+1), 10)...)
	b = append(b, ';')
	b = append(b, strconv.AppendInt(numBuf[:0], int64(max(x, 0)+1), 10)...)
	b = append(b, 'H')
	return string(b)
}
