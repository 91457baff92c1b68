// ABOUTME: Tests for VirtualTerminal verifying raw mode tracking, output capture, key replay, and resize.
// ABOUTME: Also covers the absolute cursor positioning sequence shared by both terminals.

package terminal

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/astelon/btui/pkg/tui/key"
)

// Both terminals satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*ProcessTerminal)(nil)
)

func TestVirtualTerminal_SizeAndResize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start      [2]int
		resize     [2]int
		callback   bool
		wantCalled bool
	}{
		{name: "demo screen grows", start: [2]int{80, 24}, resize: [2]int{120, 40}, callback: true, wantCalled: true},
		{name: "shrinks below the textbox", start: [2]int{80, 24}, resize: [2]int{20, 3}, callback: true, wantCalled: true},
		{name: "no callback registered", start: [2]int{80, 24}, resize: [2]int{100, 50}},
		{name: "zero size", start: [2]int{0, 0}, resize: [2]int{0, 0}, callback: true, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.start[0], tt.start[1])
			if w, h, err := vt.Size(); err != nil || w != tt.start[0] || h != tt.start[1] {
				t.Fatalf("Size() = (%d, %d, %v), want (%d, %d, nil)", w, h, err, tt.start[0], tt.start[1])
			}

			var called bool
			var got [2]int
			if tt.callback {
				vt.OnResize(func(w, h int) {
					called = true
					got = [2]int{w, h}
				})
			}
			vt.SetSize(tt.resize[0], tt.resize[1])

			if called != tt.wantCalled {
				t.Fatalf("callback called = %v, want %v", called, tt.wantCalled)
			}
			if called && got != tt.resize {
				t.Errorf("callback got %v, want %v", got, tt.resize)
			}
			if w, h, _ := vt.Size(); w != tt.resize[0] || h != tt.resize[1] {
				t.Errorf("Size() after SetSize = (%d, %d), want %v", w, h, tt.resize)
			}
		})
	}
}

func TestVirtualTerminal_RawModeCounts(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("raw mode should start off")
	}
	for i := range 2 {
		if err := vt.EnterRawMode(); err != nil {
			t.Fatalf("session %d: EnterRawMode() error: %v", i, err)
		}
		if !vt.IsRawMode() {
			t.Fatalf("session %d: raw mode not on", i)
		}
		if err := vt.ExitRawMode(); err != nil {
			t.Fatalf("session %d: ExitRawMode() error: %v", i, err)
		}
	}
	if vt.IsRawMode() {
		t.Error("raw mode should be off after the last exit")
	}
	if vt.EnterCount() != 2 || vt.ExitCount() != 2 {
		t.Errorf("enter/exit = %d/%d, want 2/2", vt.EnterCount(), vt.ExitCount())
	}
}

func TestVirtualTerminal_OutputAndReset(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	frame := MoveCursor(15, 5) + "Hello Box"
	n, err := vt.Write([]byte(frame))
	if err != nil || n != len(frame) {
		t.Fatalf("Write() = (%d, %v), want (%d, nil)", n, err, len(frame))
	}
	if _, err := vt.Write([]byte(ResetStyle)); err != nil {
		t.Fatal(err)
	}
	if got, want := vt.Output(), frame+ResetStyle; got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

// A driver reads keys on one goroutine while another repaints; the
// virtual terminal must tolerate that under -race.
func TestVirtualTerminal_ReaderAndWriterGoroutines(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	const keys = 50
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range keys {
			vt.Press(key.Lit('x'))
		}
		vt.CloseInput()
	}()
	go func() {
		defer wg.Done()
		for {
			if _, err := vt.ReadKey(context.Background()); err != nil {
				return
			}
			_, _ = vt.Write([]byte("."))
			_, _, _ = vt.Size()
		}
	}()
	wg.Wait()

	if got := len(vt.Output()); got != keys {
		t.Errorf("Output length = %d, want %d", got, keys)
	}
}


func TestMoveCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{name: "origin", x: 0, y: 0, want: "\x1b[1;1H"},
		{name: "demo textbox", x: 15, y: 5, want: "\x1b[6;16H"},
		{name: "negative clamps", x: -3, y: -1, want: "\x1b[1;1H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MoveCursor(tt.x, tt.y); got != tt.want {
				t.Errorf("MoveCursor(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
			if got := NewVirtualTerminal(80, 24).MoveCursor(tt.x, tt.y); got != tt.want {
				t.Errorf("VirtualTerminal.MoveCursor(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestVirtualTerminal_TypeAndReadKey(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	vt.Type("ia\x1b")
	vt.Press(key.CtrlKey('c'))
	vt.CloseInput()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	want := []key.Key{key.Lit('i'), key.Lit('a'), key.Named(key.KeyEscape), key.CtrlKey('c')}
	for i, w := range want {
		got, err := vt.ReadKey(ctx)
		if err != nil {
			t.Fatalf("ReadKey #%d unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("ReadKey #%d = %+v, want %+v", i, got, w)
		}
	}

	if _, err := vt.ReadKey(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("ReadKey after CloseInput = %v, want io.EOF", err)
	}
}

func TestVirtualTerminal_ReadKeyHonoursContext(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := vt.ReadKey(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ReadKey = %v, want context.DeadlineExceeded", err)
	}
}
