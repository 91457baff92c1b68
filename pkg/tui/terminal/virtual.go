// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, replays scripted key input, and tracks raw-mode enter/exit calls.

package terminal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/astelon/btui/pkg/tui/input"
	"github.com/astelon/btui/pkg/tui/key"
)

// virtualKeyQueue is the number of scripted keys that may be queued ahead of ReadKey.
const virtualKeyQueue = 256

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output, serves scripted keys, and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	resizeFn   func(width, height int)
	enterCount int
	exitCount  int

	keys      chan key.Key
	closeOnce sync.Once
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
		keys:   make(chan key.Key, virtualKeyQueue),
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// MoveCursor returns the same positioning sequence a real terminal uses.
func (v *VirtualTerminal) MoveCursor(x, y int) string {
	return MoveCursor(x, y)
}

// ReadKey returns the next scripted key. Once CloseInput has been called
// and the queue is drained it returns io.EOF.
func (v *VirtualTerminal) ReadKey(ctx context.Context) (key.Key, error) {
	select {
	case k, ok := <-v.keys:
		if !ok {
			return key.Key{}, io.EOF
		}
		return k, nil
	case <-ctx.Done():
		return key.Key{}, ctx.Err()
	}
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// --- Test helpers (not part of Terminal interface) ---

// Type queues the keys encoded in raw terminal bytes, exactly as a user
// typing them would produce. Must not be called after CloseInput.
func (v *VirtualTerminal) Type(data string) {
	v.Press(input.ParseAll(data)...)
}

// Press queues already-parsed keys. Must not be called after CloseInput.
func (v *VirtualTerminal) Press(keys ...key.Key) {
	for _, k := range keys {
		v.keys <- k
	}
}

// CloseInput marks the end of scripted input.
func (v *VirtualTerminal) CloseInput() {
	v.closeOnce.Do(func() { close(v.keys) })
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}
