// ABOUTME: Form owns the demo's widgets built from config: textboxes, labels, and status labels.
// ABOUTME: HandleKey routes one key to the active textbox, cycles focus, and reports quit.

package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/astelon/btui/internal/config"
	"github.com/astelon/btui/internal/log"
	"github.com/astelon/btui/pkg/tui"
	"github.com/astelon/btui/pkg/tui/component"
	"github.com/astelon/btui/pkg/tui/key"
	"github.com/astelon/btui/pkg/tui/theme"
)

// ErrNoTextbox is returned when a configuration declares no textbox.
var ErrNoTextbox = errors.New("no textbox configured")

// Result is the final text of one named textbox.
type Result struct {
	Name string
	Text string
}

// Form is the set of widgets on the demo screen. It is not safe for
// concurrent use; drivers call it from a single goroutine.
type Form struct {
	boxes  []*component.Textbox
	names  []string
	labels []*component.Label

	iteration *component.Label
	lastKey   *component.Label

	active     int
	quit       key.Key
	iterations int
}

// NewForm builds the widgets described by cfg. The first textbox starts
// focused.
func NewForm(cfg *config.Config) (*Form, error) {
	th, err := cfg.ResolveTheme()
	if err != nil {
		return nil, err
	}
	km, err := cfg.Keymap()
	if err != nil {
		return nil, err
	}
	quit, err := cfg.QuitKey()
	if err != nil {
		return nil, err
	}

	f := &Form{quit: quit}
	labelStyle := th.Label.Code()

	for i, w := range cfg.Widgets {
		switch w.Kind {
		case config.KindTextbox:
			tb, err := newTextbox(w, th, km)
			if err != nil {
				return nil, fmt.Errorf("widget %d: %w", i, err)
			}
			name := w.Name
			if name == "" {
				name = "textbox" + strconv.Itoa(len(f.boxes))
			}
			f.boxes = append(f.boxes, tb)
			f.names = append(f.names, name)
		case config.KindLabel:
			f.labels = append(f.labels, newLabel(w, w.Text, labelStyle))
		case config.KindIteration:
			f.iteration = newLabel(w, "Iteration 0", labelStyle)
			f.labels = append(f.labels, f.iteration)
		case config.KindLastKey:
			f.lastKey = newLabel(w, "Read ", labelStyle)
			f.labels = append(f.labels, f.lastKey)
		}
	}

	if len(f.boxes) == 0 {
		return nil, ErrNoTextbox
	}
	f.boxes[0].Focus()
	return f, nil
}

func newTextbox(w config.Widget, th *theme.Theme, km *component.Keymap) (*component.Textbox, error) {
	specs := th.Textbox
	for _, o := range []struct {
		dst *theme.Spec
		src theme.Spec
	}{
		{&specs.Base, w.Styles.Base},
		{&specs.Focus, w.Styles.Focus},
		{&specs.Edit, w.Styles.Edit},
		{&specs.Cursor, w.Styles.Cursor},
	} {
		if !o.src.IsZero() {
			*o.dst = o.src
		}
	}
	styles := specs.Compile()

	hint := ""
	if w.Hint != "" {
		hint = th.Hint.Apply(w.Hint)
	}

	return component.NewTextbox(component.TextboxConfig{
		X:      w.X,
		Y:      w.Y,
		Width:  w.Width,
		Height: w.Height,
		Text:   w.Text,
		Hint:   hint,
		Styles: component.TextboxStyles(styles),
		Keymap: km,
	})
}

func newLabel(w config.Widget, text, fallback string) *component.Label {
	l := component.NewLabel(w.X, w.Y, text)
	if w.Style.IsZero() {
		l.SetStyle(fallback)
	} else {
		l.SetStyle(w.Style.Code())
	}
	if w.Width > 0 {
		l.SetMaxWidth(w.Width)
	}
	return l
}

// HandleKey processes one key and reports whether the driver should quit.
// Ctrl+C always quits. The quit key, Tab and Shift+Tab are form keys only
// while the active textbox is in Normal mode; otherwise every key goes to
// the textbox.
func (f *Form) HandleKey(k key.Key) bool {
	f.iterations++
	if f.iteration != nil {
		f.iteration.SetText("Iteration " + strconv.Itoa(f.iterations))
	}
	if f.lastKey != nil {
		f.lastKey.SetText("Read " + k.String())
	}

	if k == key.CtrlKey('c') {
		return true
	}

	tb := f.Active()
	if !tb.IsEditing() {
		switch {
		case k == f.quit:
			return true
		case k.Type == key.KeyTab:
			f.cycle(1)
			return false
		case k.Type == key.KeyBackTab:
			f.cycle(-1)
			return false
		}
	}

	tb.InjectKey(k)
	log.Debug("key %s -> %s mode=%s cursor=%d", k.Name(), f.names[f.active], tb.Mode(), tb.Cursor())
	return false
}

// cycle moves focus by delta textboxes, wrapping around.
func (f *Form) cycle(delta int) {
	n := len(f.boxes)
	if n < 2 {
		return
	}
	f.boxes[f.active].Unfocus()
	f.active = ((f.active+delta)%n + n) % n
	f.boxes[f.active].Focus()
}

// Active returns the textbox that receives keys.
func (f *Form) Active() *component.Textbox { return f.boxes[f.active] }

// ActiveName returns the configured name of the active textbox.
func (f *Form) ActiveName() string { return f.names[f.active] }

// Textboxes returns the textboxes in configuration order.
func (f *Form) Textboxes() []*component.Textbox { return f.boxes }

// Iterations returns the number of keys handled so far.
func (f *Form) Iterations() int { return f.iterations }

// Drawables returns every widget in paint order: labels first, then textboxes.
func (f *Form) Drawables() []tui.Drawable {
	out := make([]tui.Drawable, 0, len(f.labels)+len(f.boxes))
	for _, l := range f.labels {
		out = append(out, l)
	}
	for _, tb := range f.boxes {
		out = append(out, tb)
	}
	return out
}

// Placed returns every widget as a positioned row, in paint order.
func (f *Form) Placed() []tui.Placed {
	out := make([]tui.Placed, 0, len(f.labels)+len(f.boxes))
	for _, l := range f.labels {
		out = append(out, l)
	}
	for _, tb := range f.boxes {
		out = append(out, tb)
	}
	return out
}

// Results returns the current text of every textbox.
func (f *Form) Results() []Result {
	out := make([]Result, len(f.boxes))
	for i, tb := range f.boxes {
		out[i] = Result{Name: f.names[i], Text: tb.Text()}
	}
	return out
}
