// ABOUTME: Unix resize notifications for ProcessTerminal via SIGWINCH.
// ABOUTME: One listener per terminal; the current callback is looked up on every signal.

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// startResizeListener forwards SIGWINCH to the registered callback with
// the size read at delivery time. Signals arriving with no callback set
// are dropped.
func (t *ProcessTerminal) startResizeListener() {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)

	go func() {
		for range winch {
			t.notifyResize()
		}
	}()
}
