// ABOUTME: Tests for Screen repaint, frame pooling, and render coalescing
// ABOUTME: Uses an in-memory surface to capture output for assertions

package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

type memSurface struct {
	mu  sync.Mutex
	buf bytes.Buffer
	n   int
	err error
}

func (m *memSurface) MoveCursor(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

func (m *memSurface) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.n++
	return m.buf.Write(p)
}

func (m *memSurface) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

func (m *memSurface) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

type stubWidget struct {
	x, y int
	text string
	err  error
}

func (w *stubWidget) Frame(s Surface) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	if s == nil {
		return "", ErrNoSurface
	}
	return s.MoveCursor(w.x, w.y) + w.text, nil
}

var _ Drawable = (*stubWidget)(nil)

func TestFrame_Pool(t *testing.T) {
	t.Parallel()

	f := AcquireFrame()
	f.WriteString("a")
	f.WriteString("")
	f.WriteString("b")

	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
	if f.String() != "ab" {
		t.Errorf("String() = %q, want %q", f.String(), "ab")
	}

	ReleaseFrame(f)

	f2 := AcquireFrame()
	if f2.Len() != 0 || f2.String() != "" {
		t.Errorf("re-acquired frame not empty: %q", f2.String())
	}
	ReleaseFrame(f2)
}

func TestScreen_RenderSingleWrite(t *testing.T) {
	t.Parallel()

	s := &memSurface{}
	sc := NewScreen(s)
	sc.Add(&stubWidget{x: 0, y: 1, text: "one"}, &stubWidget{x: 15, y: 5, text: "two"})

	if err := sc.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if s.writes() != 1 {
		t.Errorf("writes = %d, want 1", s.writes())
	}

	out := s.String()
	want := beginSyncUpdate + resetStyle + clearScreen + "\x1b[2;1Hone" + "\x1b[6;16Htwo" + resetStyle + endSyncUpdate
	if out != want {
		t.Errorf("Render output = %q, want %q", out, want)
	}
}

func TestScreen_EveryRenderClears(t *testing.T) {
	t.Parallel()

	s := &memSurface{}
	sc := NewScreen(s)
	sc.Add(&stubWidget{text: "x"})

	_ = sc.Render()
	_ = sc.Render()
	if got := strings.Count(s.String(), clearScreen); got != 2 {
		t.Errorf("clear count after two renders = %d, want 2", got)
	}
}

func TestScreen_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no surface", func(t *testing.T) {
		t.Parallel()
		sc := NewScreen(nil)
		if err := sc.Render(); !errors.Is(err, ErrNoSurface) {
			t.Errorf("Render() error = %v, want ErrNoSurface", err)
		}
	})

	t.Run("widget error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		s := &memSurface{}
		sc := NewScreen(s)
		sc.Add(&stubWidget{err: boom})
		if err := sc.Render(); !errors.Is(err, boom) {
			t.Errorf("Render() error = %v, want wrapped boom", err)
		}
		if s.writes() != 0 {
			t.Errorf("writes = %d, want 0 on widget error", s.writes())
		}
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()
		closed := errors.New("closed")
		sc := NewScreen(&memSurface{err: closed})
		if err := sc.Render(); !errors.Is(err, closed) {
			t.Errorf("Render() error = %v, want wrapped closed", err)
		}
	})
}

func TestScreen_AddRemove(t *testing.T) {
	t.Parallel()

	sc := NewScreen(&memSurface{})
	a := &stubWidget{text: "a"}
	b := &stubWidget{text: "b"}
	sc.Add(a, b)

	if !sc.Remove(a) {
		t.Error("Remove returned false for existing widget")
	}
	if sc.Remove(a) {
		t.Error("Remove returned true for already-removed widget")
	}
	if sc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", sc.Len())
	}
}

func TestScreen_RequestRenderCoalesces(t *testing.T) {
	t.Parallel()

	s := &memSurface{}
	sc := NewScreen(s)
	sc.Add(&stubWidget{text: "x"})

	// Queue several requests before the loop starts; only one is buffered.
	sc.RequestRender()
	sc.RequestRender()
	sc.RequestRender()

	sc.Start()
	defer sc.Stop()

	deadline := time.Now().Add(time.Second)
	for s.writes() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)

	if got := s.writes(); got != 1 {
		t.Errorf("writes = %d, want 1 after coalesced requests", got)
	}
}

func TestScreen_LoopReportsErrors(t *testing.T) {
	t.Parallel()

	sc := NewScreen(&memSurface{})
	sc.Add(&stubWidget{err: errors.New("bad")})

	got := make(chan error, 1)
	sc.OnError(func(err error) {
		select {
		case got <- err:
		default:
		}
	})
	sc.Start()
	defer sc.Stop()
	sc.RequestRender()

	select {
	case err := <-got:
		if err == nil {
			t.Error("expected non-nil error")
		}
	case <-time.After(time.Second):
		t.Fatal("render error was not reported")
	}
}

func TestScreen_StopIdempotent(t *testing.T) {
	t.Parallel()

	sc := NewScreen(&memSurface{})
	sc.Start()
	sc.Stop()
	sc.Stop()
}
