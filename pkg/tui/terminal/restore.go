// ABOUTME: Setup and Restore bracket a full-screen session; RestoreOnPanic recovers and restores.
// ABOUTME: Intended for use as deferred calls in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// restorer is the part of Terminal needed to undo raw mode.
type restorer interface {
	ExitRawMode() error
	Write(p []byte) (int, error)
}

// Setup enters raw mode, switches to the alternate screen, hides the
// cursor, and enables bracketed paste.
func Setup(t Terminal) error {
	if err := t.EnterRawMode(); err != nil {
		return err
	}
	if _, err := t.Write([]byte(EnterAltScreen + HideCursor + EnablePaste)); err != nil {
		_ = t.ExitRawMode()
		return fmt.Errorf("preparing screen: %w", err)
	}
	return nil
}

// RestoreOnPanic should be deferred at the top of main (or any
// goroutine that owns the terminal). On panic it leaves the alternate
// screen, shows the cursor, exits raw mode, prints the panic value and
// stack trace, then exits with code 1.
func RestoreOnPanic(t restorer) {
	r := recover()
	if r == nil {
		return
	}

	Restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t restorer) {
	r := recover()
	if r == nil {
		return
	}

	Restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

// Restore undoes Setup. It is best-effort: every step runs even if an
// earlier one fails.
func Restore(t restorer) {
	_, _ = t.Write([]byte(ResetStyle + ShowCursor + DisablePaste + ExitAltScreen))
	_ = t.ExitRawMode()
}
