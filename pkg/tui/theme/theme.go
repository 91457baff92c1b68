// ABOUTME: Style specs compiled to ANSI SGR tokens through lipgloss/termenv
// ABOUTME: Spec parses "underline black_on_lightgreen" shorthand; Theme groups widget styles

package theme

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownStyle is returned for colour names or attributes that cannot be parsed.
var ErrUnknownStyle = errors.New("unknown style")

// Spec describes a text style: optional foreground and background colours
// plus attributes. Colours are names ("white", "lightgreen"), 256-colour
// indices ("208"), or hex ("#ff8700"). The zero Spec means "unset".
type Spec struct {
	Fg        string `yaml:"fg,omitempty"`
	Bg        string `yaml:"bg,omitempty"`
	Bold      bool   `yaml:"bold,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Reverse   bool   `yaml:"reverse,omitempty"`
}

// IsZero reports whether s sets nothing.
func (s Spec) IsZero() bool {
	return s == Spec{}
}

// renderer compiles styles for a 256-colour terminal independent of the
// process's own output, so style tokens are stable across environments.
var renderer = sync.OnceValue(func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	r.SetHasDarkBackground(true)
	return r
})

const probe = "X"

// Code returns the SGR sequence that switches a terminal to this style,
// or "" for the zero Spec. Colours that fail to parse are ignored; use
// Validate to reject them up front.
func (s Spec) Code() string {
	if s.IsZero() {
		return ""
	}
	st := renderer().NewStyle().
		Bold(s.Bold).
		Underline(s.Underline).
		Italic(s.Italic).
		Reverse(s.Reverse)
	if c, err := colorValue(s.Fg); err == nil && c != "" {
		st = st.Foreground(lipgloss.Color(c))
	}
	if c, err := colorValue(s.Bg); err == nil && c != "" {
		st = st.Background(lipgloss.Color(c))
	}
	out := st.Render(probe)
	prefix, _, _ := strings.Cut(out, probe)
	return prefix
}

// Validate checks that both colours parse.
func (s Spec) Validate() error {
	if _, err := colorValue(s.Fg); err != nil {
		return err
	}
	if _, err := colorValue(s.Bg); err != nil {
		return err
	}
	return nil
}

// String returns the shorthand form accepted by ParseSpec.
func (s Spec) String() string {
	var words []string
	for _, a := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "bold"},
		{s.Underline, "underline"},
		{s.Italic, "italic"},
		{s.Reverse, "reverse"},
	} {
		if a.on {
			words = append(words, a.name)
		}
	}
	switch {
	case s.Fg != "" && s.Bg != "":
		words = append(words, s.Fg+"_on_"+s.Bg)
	case s.Fg != "":
		words = append(words, s.Fg)
	case s.Bg != "":
		words = append(words, "on_"+s.Bg)
	}
	return strings.Join(words, " ")
}

// ParseSpec parses the shorthand style syntax: space-separated words, each
// an attribute (bold, underline, italic, reverse), a foreground colour,
// "fg_on_bg", or "on_bg". "normal" and the empty string give the zero Spec.
func ParseSpec(text string) (Spec, error) {
	var s Spec
	for _, w := range strings.Fields(strings.ToLower(text)) {
		switch w {
		case "normal":
		case "bold":
			s.Bold = true
		case "underline":
			s.Underline = true
		case "italic":
			s.Italic = true
		case "reverse":
			s.Reverse = true
		default:
			fg, bg, found := strings.Cut(w, "on_")
			if !found {
				fg, bg = w, ""
			} else {
				if fg != "" && !strings.HasSuffix(fg, "_") {
					return Spec{}, fmt.Errorf("parsing style %q: %w", w, ErrUnknownStyle)
				}
				fg = strings.TrimSuffix(fg, "_")
			}
			if _, err := colorValue(fg); err != nil {
				return Spec{}, fmt.Errorf("parsing style %q: %w", w, err)
			}
			if _, err := colorValue(bg); err != nil {
				return Spec{}, fmt.Errorf("parsing style %q: %w", w, err)
			}
			if fg != "" {
				s.Fg = fg
			}
			if bg != "" {
				s.Bg = bg
			}
		}
	}
	return s, nil
}

// colorIndex maps the eight basic colour names to ANSI indices.
var colorIndex = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// colorValue converts a colour name, index, or hex code into a lipgloss
// colour string. The empty name yields "".
func colorValue(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	if strings.HasPrefix(name, "#") {
		if len(name) != 7 {
			return "", fmt.Errorf("colour %q: %w", name, ErrUnknownStyle)
		}
		if _, err := strconv.ParseUint(name[1:], 16, 32); err != nil {
			return "", fmt.Errorf("colour %q: %w", name, ErrUnknownStyle)
		}
		return name, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("colour %q: %w", name, ErrUnknownStyle)
		}
		return name, nil
	}

	offset := 0
	for _, p := range []string{"bright_", "bright", "light"} {
		if rest, ok := strings.CutPrefix(name, p); ok {
			name, offset = rest, 8
			break
		}
	}
	idx, ok := colorIndex[name]
	if !ok {
		return "", fmt.Errorf("colour %q: %w", name, ErrUnknownStyle)
	}
	return strconv.Itoa(idx + offset), nil
}

// UnmarshalYAML accepts either the mapping form or the shorthand string.
func (s *Spec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parsed, err := ParseSpec(value.Value)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	type plain Spec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	if err := Spec(p).Validate(); err != nil {
		return err
	}
	*s = Spec(p)
	return nil
}

// MarshalYAML encodes s in the shorthand form.
func (s Spec) MarshalYAML() (any, error) {
	return s.String(), nil
}

// TextboxStyles holds compiled style tokens for the four textbox states.
type TextboxStyles struct {
	Base   string
	Focus  string
	Edit   string
	Cursor string
}

// TextboxSpecs holds the style specs of a textbox.
type TextboxSpecs struct {
	Base   Spec `yaml:"base"`
	Focus  Spec `yaml:"focus"`
	Edit   Spec `yaml:"edit"`
	Cursor Spec `yaml:"cursor"`
}

// Compile turns the specs into style tokens.
func (ts TextboxSpecs) Compile() TextboxStyles {
	return TextboxStyles{
		Base:   ts.Base.Code(),
		Focus:  ts.Focus.Code(),
		Edit:   ts.Edit.Code(),
		Cursor: ts.Cursor.Code(),
	}
}

// Theme holds the named style set for every widget kind.
type Theme struct {
	Name    string       `yaml:"name"`
	Textbox TextboxSpecs `yaml:"textbox"`
	Label   Spec         `yaml:"label"`
	Hint    Spec         `yaml:"hint"`
}

// TextboxStyles returns the compiled textbox styles of t.
func (t *Theme) TextboxStyles() TextboxStyles {
	return t.Textbox.Compile()
}

// Reset is the sequence that clears all attributes.
const Reset = "\x1b[0m"

// Apply wraps text in the spec's style and a reset. Unset specs return text unchanged.
func (s Spec) Apply(text string) string {
	code := s.Code()
	if code == "" {
		return text
	}
	return code + text + Reset
}
