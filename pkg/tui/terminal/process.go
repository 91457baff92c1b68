// ABOUTME: ProcessTerminal implements Terminal using os.Stdin/os.Stdout and golang.org/x/term.
// ABOUTME: Manages raw mode state, reads keys through input.Reader, and delegates resize handling.

package terminal

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/astelon/btui/pkg/tui/input"
	"github.com/astelon/btui/pkg/tui/key"
)

// ProcessTerminal is a real terminal backed by the process's stdio and x/term.
type ProcessTerminal struct {
	mu         sync.Mutex
	oldState   *term.State
	resizeFn   func(width, height int)
	resizeOnce sync.Once
	reader     *input.Reader
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{}
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to os.Stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := os.Stdout.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// MoveCursor returns the absolute positioning sequence for (x, y).
func (t *ProcessTerminal) MoveCursor(x, y int) string {
	return MoveCursor(x, y)
}

// ReadKey blocks until a key arrives on stdin or ctx is done.
func (t *ProcessTerminal) ReadKey(ctx context.Context) (key.Key, error) {
	t.mu.Lock()
	if t.reader == nil {
		t.reader = input.NewReader(os.Stdin)
	}
	rd := t.reader
	t.mu.Unlock()

	k, err := rd.ReadKey(ctx)
	if err != nil {
		return key.Key{}, fmt.Errorf("reading key: %w", err)
	}
	return k, nil
}

// Close stops the stdin reader, if one was started.
func (t *ProcessTerminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.reader != nil {
		t.reader.Close()
		t.reader = nil
	}
}

// OnResize registers a callback invoked when the terminal is resized.
// A nil fn removes it. Platform-specific signal handling is set up by
// startResizeListener on first use.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	t.mu.Unlock()

	t.resizeOnce.Do(t.startResizeListener)
}

// notifyResize calls the current callback with the current size.
func (t *ProcessTerminal) notifyResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()
	if fn == nil {
		return
	}
	if w, h, err := t.Size(); err == nil {
		fn(w, h)
	}
}
