// ABOUTME: Raw-terminal driver: one goroutine reads keys, one owns the form and repaints.
// ABOUTME: Brackets the session with terminal.Setup/Restore; quit, EOF, and cancellation end it cleanly.

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/astelon/btui/internal/log"
	"github.com/astelon/btui/pkg/tui"
	"github.com/astelon/btui/pkg/tui/key"
	"github.com/astelon/btui/pkg/tui/terminal"
)

// errQuit ends the event loop when the form asks to quit.
var errQuit = errors.New("quit")

// Run drives f on term until the form quits, input ends, or ctx is
// cancelled. The terminal is restored before Run returns.
func Run(ctx context.Context, term terminal.Terminal, f *Form) error {
	if err := terminal.Setup(term); err != nil {
		return fmt.Errorf("setting up terminal: %w", err)
	}
	defer terminal.Restore(term)

	sc := tui.NewScreen(term)
	sc.Add(f.Drawables()...)

	resized := make(chan struct{}, 1)
	term.OnResize(func(_, _ int) {
		select {
		case resized <- struct{}{}:
		default:
		}
	})
	defer term.OnResize(nil)

	keys := make(chan key.Key)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer terminal.RecoverGoroutine(term)
		for {
			k, err := term.ReadKey(gCtx)
			if err != nil {
				return err
			}
			select {
			case keys <- k:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("event loop panic: %v\n%s", r, debug.Stack())
				err = fmt.Errorf("event loop panic: %v", r)
			}
		}()
		return loop(gCtx, sc, f, keys, resized)
	})

	err := g.Wait()
	switch {
	case err == nil, errors.Is(err, errQuit), errors.Is(err, io.EOF):
		return nil
	case ctx.Err() != nil:
		return nil
	}
	return err
}

// loop repaints, then handles exactly one event per iteration.
func loop(ctx context.Context, sc *tui.Screen, f *Form, keys <-chan key.Key, resized <-chan struct{}) error {
	if err := sc.Render(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case k := <-keys:
			if f.HandleKey(k) {
				log.Info("quit on %s after %d keys", k.Name(), f.Iterations())
				return errQuit
			}
		case <-resized:
			log.Debug("terminal resized")
		}
		if err := sc.Render(); err != nil {
			return err
		}
	}
}
