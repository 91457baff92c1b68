// ABOUTME: YAML configuration of the btui demo: widgets, theme, key bindings, quit key, logging
// ABOUTME: Load overlays a file on Default(); unknown fields are rejected

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astelon/btui/pkg/tui/theme"
)

// Kind is the type of a configured widget.
type Kind string

const (
	KindTextbox   Kind = "textbox"
	KindLabel     Kind = "label"
	KindIteration Kind = "iteration" // label showing the loop iteration
	KindLastKey   Kind = "lastkey"   // label showing the last key read
)

// Widget describes one widget on the demo screen.
type Widget struct {
	Kind   Kind               `yaml:"kind"`
	Name   string             `yaml:"name,omitempty"`
	X      int                `yaml:"x"`
	Y      int                `yaml:"y"`
	Width  int                `yaml:"width,omitempty"`
	Height int                `yaml:"height,omitempty"`
	Text   string             `yaml:"text,omitempty"`
	Hint   string             `yaml:"hint,omitempty"`
	Style  theme.Spec         `yaml:"style,omitempty"`
	Styles theme.TextboxSpecs `yaml:"styles,omitempty"`
}

// LogConfig controls the log sink.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// KeysConfig overrides bindings per table: action name to key strings.
type KeysConfig struct {
	Normal map[string][]string `yaml:"normal"`
	Edit   map[string][]string `yaml:"edit"`
}

// Config is the demo configuration.
type Config struct {
	Theme     string     `yaml:"theme"`
	ThemeFile string     `yaml:"theme_file"`
	Quit      string     `yaml:"quit"`
	Log       LogConfig  `yaml:"log"`
	Keys      KeysConfig `yaml:"keys"`
	Widgets   []Widget   `yaml:"widgets"`
}

// Default returns the built-in demo: one 30-column textbox at (15,5)
// seeded with "Hello Box", an iteration counter, and a last-key label.
func Default() *Config {
	return &Config{
		Theme: "default",
		Quit:  "q",
		Log:   LogConfig{Level: "info"},
		Widgets: []Widget{
			{Kind: KindIteration, X: 0, Y: 1},
			{Kind: KindLastKey, X: 15, Y: 0},
			{Kind: KindTextbox, Name: "main", X: 15, Y: 5, Width: 30, Height: 1, Text: "Hello Box"},
		},
	}
}

// Load returns Default() overlaid with the YAML file at path. An empty
// path returns the defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	ResolveEnvVars(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays a YAML document onto cfg. A widgets list in the
// document replaces the default widgets; key maps are merged.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// Textboxes returns the textbox widgets in declaration order.
func (c *Config) Textboxes() []Widget {
	var out []Widget
	for _, w := range c.Widgets {
		if w.Kind == KindTextbox {
			out = append(out, w)
		}
	}
	return out
}
