// ABOUTME: Windows resize notifications for ProcessTerminal by polling the console size.
// ABOUTME: The console sends no SIGWINCH, so a ticker compares successive sizes.

//go:build windows

package terminal

import "time"

const resizePollInterval = 250 * time.Millisecond

// startResizeListener polls Size and reports changes to the callback.
func (t *ProcessTerminal) startResizeListener() {
	go func() {
		lastW, lastH, _ := t.Size()
		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()
		for range ticker.C {
			w, h, err := t.Size()
			if err != nil || (w == lastW && h == lastH) {
				continue
			}
			lastW, lastH = w, h
			t.notifyResize()
		}
	}()
}
