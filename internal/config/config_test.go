// ABOUTME: Tests for config loading, overlay on defaults, validation, and derived values
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astelon/btui/pkg/tui/component"
	"github.com/astelon/btui/pkg/tui/key"
	"github.com/astelon/btui/pkg/tui/theme"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	boxes := cfg.Textboxes()
	if len(boxes) != 1 {
		t.Fatalf("Textboxes() = %d, want 1", len(boxes))
	}
	b := boxes[0]
	if b.X != 15 || b.Y != 5 || b.Width != 30 || b.Height != 1 || b.Text != "Hello Box" {
		t.Errorf("default textbox = %+v", b)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Quit != "q" || cfg.Theme != "default" {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_Overlay(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme: plain
quit: ctrl+q
log:
  level: debug
keys:
  normal:
    cursorBackward: [h, left]
    cursorForward: [l, right]
  edit:
    endEdit: [escape, ctrl+c]
widgets:
  - kind: textbox
    x: 2
    y: 3
    width: 10
    text: first
    hint: ">"
    styles:
      cursor: white_on_red
  - kind: textbox
    x: 2
    y: 5
    width: 10
  - kind: label
    x: 0
    y: 0
    text: Name
    style: bold
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Theme != "plain" || cfg.Quit != "ctrl+q" || cfg.Log.Level != "debug" {
		t.Errorf("scalars not overlaid: %+v", cfg)
	}
	if len(cfg.Widgets) != 3 || len(cfg.Textboxes()) != 2 {
		t.Fatalf("widgets = %+v, want file widgets to replace defaults", cfg.Widgets)
	}
	if want := (theme.Spec{Fg: "white", Bg: "red"}); cfg.Widgets[0].Styles.Cursor != want {
		t.Errorf("cursor style = %+v, want %+v", cfg.Widgets[0].Styles.Cursor, want)
	}
	if !cfg.Widgets[2].Style.Bold {
		t.Error("label style not decoded")
	}

	q, err := cfg.QuitKey()
	if err != nil || q != key.CtrlKey('q') {
		t.Errorf("QuitKey() = %v, %v; want ctrl+q", q, err)
	}

	km, err := cfg.Keymap()
	if err != nil {
		t.Fatalf("Keymap: %v", err)
	}
	if a, ok := km.Lookup(component.TableNormal, key.Named(key.KeyLeft)); !ok || a != component.ActionCursorBackward {
		t.Errorf("left = %q, %v; want cursorBackward", a, ok)
	}
	if a, ok := km.Lookup(component.TableEdit, key.CtrlKey('c')); !ok || a != component.ActionEndEdit {
		t.Errorf("ctrl+c = %q, %v; want endEdit", a, ok)
	}
	if _, ok := km.Lookup(component.TableNormal, key.Lit('i')); !ok {
		t.Error("untouched default bindings must remain")
	}
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Widgets) != len(Default().Widgets) {
		t.Errorf("widgets = %d, want defaults", len(cfg.Widgets))
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("BTUI_TEST_GREETING", "Hola")

	cfg, err := Load(writeConfig(t, `
widgets:
  - kind: textbox
    x: 0
    y: 0
    width: 10
    text: "${BTUI_TEST_GREETING} Box"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Widgets[0].Text; got != "Hola Box" {
		t.Errorf("Text = %q, want %q", got, "Hola Box")
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown field", body: "colour: red\n", want: "colour"},
		{name: "bad quit key", body: "quit: hyper+q\n", want: "quit"},
		{name: "bad log level", body: "log:\n  level: loud\n", want: "log"},
		{name: "unknown theme", body: "theme: neon\n", want: "neon"},
		{name: "unknown action", body: "keys:\n  normal:\n    explode: [e]\n", want: "explode"},
		{name: "unknown key", body: "keys:\n  edit:\n    endEdit: [nope]\n", want: "nope"},
		{name: "conflict", body: "keys:\n  normal:\n    deleteChar: [i]\n", want: "bound to"},
		{name: "quit shadowed", body: "quit: x\n", want: "quit key"},
		{name: "no textbox", body: "widgets:\n  - kind: label\n    x: 0\n    y: 0\n", want: "at least one textbox"},
		{name: "zero width", body: "widgets:\n  - kind: textbox\n    x: 0\n    y: 0\n", want: "width"},
		{name: "negative position", body: "widgets:\n  - kind: textbox\n    x: -1\n    y: 0\n    width: 4\n", want: "negative position"},
		{name: "unknown kind", body: "widgets:\n  - kind: button\n    x: 0\n    y: 0\n  - kind: textbox\n    x: 0\n    y: 1\n    width: 3\n", want: "button"},
		{name: "bad style", body: "widgets:\n  - kind: textbox\n    x: 0\n    y: 0\n    width: 3\n    styles:\n      base: mauve\n", want: "mauve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Load error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want ErrNotExist", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Widgets[2].Styles.Edit = theme.Spec{Fg: "black", Bg: "lightgreen", Underline: true}
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	path := writeConfig(t, string(data))
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load(marshalled) error: %v\n%s", err, data)
	}
	if back.Widgets[2].Styles.Edit != cfg.Widgets[2].Styles.Edit {
		t.Errorf("edit style = %+v, want %+v", back.Widgets[2].Styles.Edit, cfg.Widgets[2].Styles.Edit)
	}
	if back.Widgets[2].Text != "Hello Box" {
		t.Errorf("text = %q after round trip", back.Widgets[2].Text)
	}
}

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	cfg := Default()
	th, err := cfg.ResolveTheme()
	if err != nil || th.Name != "default" {
		t.Errorf("ResolveTheme() = %v, %v", th, err)
	}

	cfg.ThemeFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.ResolveTheme(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ResolveTheme with missing file error = %v, want ErrInvalidConfig", err)
	}
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(configEnvVar, "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("DefaultPath() = %q, want env override", got)
	}
}
