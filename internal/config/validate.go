// ABOUTME: Validation of a loaded Config; every problem wraps ErrInvalidConfig
// ABOUTME: Also builds the typed keymap, quit key, and theme the config names

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/astelon/btui/internal/log"
	"github.com/astelon/btui/pkg/tui/component"
	"github.com/astelon/btui/pkg/tui/key"
	"github.com/astelon/btui/pkg/tui/theme"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate reports every problem in c, joined.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.QuitKey(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.ThemeFile == "" && theme.Builtin(c.Theme) == nil && c.Theme != "" {
		errs = append(errs, invalid("theme %q is not one of %v%s", c.Theme, theme.BuiltinNames(), suggest(c.Theme, theme.BuiltinNames())))
	}

	km, err := c.Keymap()
	if err != nil {
		errs = append(errs, err)
	} else {
		for _, cf := range km.Conflicts() {
			errs = append(errs, invalid("key %q bound to %v in %s table", cf.Key.Name(), cf.Actions, cf.Table))
		}
		if q, err := c.QuitKey(); err == nil {
			if a, ok := km.Lookup(component.TableNormal, q); ok {
				errs = append(errs, invalid("quit key %q is also bound to %s", q.Name(), a))
			}
		}
	}

	textboxes := 0
	for i, w := range c.Widgets {
		errs = append(errs, w.validate(i)...)
		if w.Kind == KindTextbox {
			textboxes++
		}
	}
	if textboxes == 0 {
		errs = append(errs, invalid("at least one textbox widget is required"))
	}

	return errors.Join(errs...)
}

var kinds = []Kind{KindTextbox, KindLabel, KindIteration, KindLastKey}

func (w Widget) validate(i int) []error {
	var errs []error
	if !slices.Contains(kinds, w.Kind) {
		errs = append(errs, invalid("widget %d: unknown kind %q%s", i, w.Kind, suggest(string(w.Kind), kindNames())))
	}
	if w.X < 0 || w.Y < 0 {
		errs = append(errs, invalid("widget %d: negative position (%d,%d)", i, w.X, w.Y))
	}
	if w.Kind == KindTextbox {
		if w.Width <= 0 {
			errs = append(errs, invalid("widget %d: textbox width must be positive", i))
		}
		if w.Height < 0 {
			errs = append(errs, invalid("widget %d: negative height", i))
		}
	}
	for _, s := range []theme.Spec{w.Style, w.Styles.Base, w.Styles.Focus, w.Styles.Edit, w.Styles.Cursor} {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: widget %d: %w", ErrInvalidConfig, i, err))
		}
	}
	return errs
}

// QuitKey parses the configured quit key; empty means "q".
func (c *Config) QuitKey() (key.Key, error) {
	if c.Quit == "" {
		return key.Lit('q'), nil
	}
	k, err := key.Parse(c.Quit)
	if err != nil {
		return key.Key{}, fmt.Errorf("%w: quit: %w", ErrInvalidConfig, err)
	}
	return k, nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	l, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return l, fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	return l, nil
}

// Keymap returns the default keymap with the configured overrides applied.
// An override replaces every key of its action in that table.
func (c *Config) Keymap() (*component.Keymap, error) {
	km := component.DefaultKeymap()
	for _, tbl := range []struct {
		table component.Table
		keys  map[string][]string
	}{
		{component.TableNormal, c.Keys.Normal},
		{component.TableEdit, c.Keys.Edit},
	} {
		names := make([]string, 0, len(tbl.keys))
		for name := range tbl.keys {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			a, err := component.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("%w: keys.%s: %w%s", ErrInvalidConfig, tbl.table, err, suggest(name, actionNames()))
			}
			if err := km.SetNames(tbl.table, a, tbl.keys[name]...); err != nil {
				return nil, fmt.Errorf("%w: keys.%s: %w", ErrInvalidConfig, tbl.table, err)
			}
		}
	}
	return km, nil
}

// ResolveTheme returns the configured theme.
func (c *Config) ResolveTheme() (*theme.Theme, error) {
	t, err := theme.Resolve(c.Theme, c.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return t, nil
}
