// ABOUTME: Screen repaints a set of positioned widgets onto one shared surface
// ABOUTME: Serializes draws with a mutex; coalesces render requests; CSI 2026 synchronized output

package tui

import (
	"fmt"
	"sync"
)

const (
	resetStyle      = "\x1b[0m"
	clearScreen     = "\x1b[2J"
	beginSyncUpdate = "\x1b[?2026h"
	endSyncUpdate   = "\x1b[?2026l"
)

// Screen owns the repaint of every widget sharing a surface. Widgets are
// drawn in the order they were added, each at its own position.
type Screen struct {
	surface Surface

	mu       sync.Mutex
	widgets  []Drawable
	renderCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	running  bool
	onError  func(error)
}

// NewScreen creates a Screen drawing on s.
func NewScreen(s Surface) *Screen {
	return &Screen{
		surface:  s,
		renderCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Add appends widgets to the repaint list.
func (sc *Screen) Add(widgets ...Drawable) {
	sc.mu.Lock()
	sc.widgets = append(sc.widgets, widgets...)
	sc.mu.Unlock()
}

// Remove deletes w from the repaint list. Returns true if found.
func (sc *Screen) Remove(w Drawable) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for i, c := range sc.widgets {
		if c == w {
			sc.widgets = append(sc.widgets[:i], sc.widgets[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of widgets on the screen.
func (sc *Screen) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.widgets)
}

// OnError registers a callback for render errors raised from the render loop.
func (sc *Screen) OnError(fn func(error)) {
	sc.mu.Lock()
	sc.onError = fn
	sc.mu.Unlock()
}

// Render clears the surface and repaints every widget in one synchronized write.
func (sc *Screen) Render() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.surface == nil {
		return ErrNoSurface
	}

	f := AcquireFrame()
	defer ReleaseFrame(f)

	f.WriteString(beginSyncUpdate)
	f.WriteString(resetStyle)
	f.WriteString(clearScreen)
	for _, w := range sc.widgets {
		out, err := w.Frame(sc.surface)
		if err != nil {
			return fmt.Errorf("rendering widget: %w", err)
		}
		f.WriteString(out)
	}
	f.WriteString(resetStyle)
	f.WriteString(endSyncUpdate)

	if _, err := sc.surface.Write(f.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// RequestRender signals that a repaint is needed. Multiple calls coalesce
// into a single render via a buffered channel of size 1.
func (sc *Screen) RequestRender() {
	select {
	case sc.renderCh <- struct{}{}:
	default: // Already pending; coalesced
	}
}

// Start begins the render loop in a goroutine. Call Stop to terminate.
func (sc *Screen) Start() {
	sc.mu.Lock()
	if sc.running {
		sc.mu.Unlock()
		return
	}
	sc.running = true
	sc.mu.Unlock()

	go sc.renderLoop()
}

// Stop terminates the render loop. Safe to call multiple times.
func (sc *Screen) Stop() {
	sc.stopOnce.Do(func() {
		sc.mu.Lock()
		sc.running = false
		sc.mu.Unlock()
		close(sc.stopCh)
	})
}

func (sc *Screen) renderLoop() {
	for {
		select {
		case <-sc.stopCh:
			return
		case <-sc.renderCh:
			if err := sc.Render(); err != nil {
				sc.mu.Lock()
				fn := sc.onError
				sc.mu.Unlock()
				if fn != nil {
					fn(err)
				}
			}
		}
	}
}
