// ABOUTME: YAML theme file loading with validation and builtin fallback
// ABOUTME: Unset specs inherit from the theme named by "base" (default: "default")

package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileTheme struct {
	Name    string       `yaml:"name"`
	Base    string       `yaml:"base"`
	Textbox TextboxSpecs `yaml:"textbox"`
	Label   Spec         `yaml:"label"`
	Hint    Spec         `yaml:"hint"`
}

// LoadFile reads a YAML theme file and returns a Theme.
// Specs left unset inherit from the base builtin theme.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML theme document.
func Parse(data []byte) (*Theme, error) {
	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	baseName := ft.Base
	if baseName == "" {
		baseName = "default"
	}
	base := Builtin(baseName)
	if base == nil {
		return nil, fmt.Errorf("theme base %q: %w", baseName, ErrUnknownStyle)
	}

	t := base
	if ft.Name != "" {
		t.Name = ft.Name
	}
	overlay(&t.Textbox.Base, ft.Textbox.Base)
	overlay(&t.Textbox.Focus, ft.Textbox.Focus)
	overlay(&t.Textbox.Edit, ft.Textbox.Edit)
	overlay(&t.Textbox.Cursor, ft.Textbox.Cursor)
	overlay(&t.Label, ft.Label)
	overlay(&t.Hint, ft.Hint)
	return t, nil
}

func overlay(dst *Spec, src Spec) {
	if !src.IsZero() {
		*dst = src
	}
}

// Resolve returns the builtin called name, or loads path when it is set.
func Resolve(name, path string) (*Theme, error) {
	if path != "" {
		return LoadFile(path)
	}
	if name == "" {
		name = "default"
	}
	t := Builtin(name)
	if t == nil {
		return nil, fmt.Errorf("theme %q: %w", name, ErrUnknownStyle)
	}
	return t, nil
}
