// ABOUTME: Tests for Spec parsing, compilation to SGR tokens, and YAML decoding
// ABOUTME: Compares SGR parameter sets so attribute ordering does not matter

package theme

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

var sgrRe = regexp.MustCompile(`\x1b\[([\d;]*)m`)

// sgrParams returns the sorted SGR parameters found in code.
func sgrParams(code string) []string {
	var params []string
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params = append(params, strings.Split(m[1], ";")...)
	}
	slices.Sort(params)
	return params
}

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Spec
	}{
		{name: "empty", in: "", want: Spec{}},
		{name: "normal", in: "normal", want: Spec{}},
		{name: "fg on bg", in: "black_on_white", want: Spec{Fg: "black", Bg: "white"}},
		{name: "attrs and colours", in: "underline black_on_lightgreen", want: Spec{Fg: "black", Bg: "lightgreen", Underline: true}},
		{name: "bg only", in: "on_blue", want: Spec{Bg: "blue"}},
		{name: "fg only", in: "red", want: Spec{Fg: "red"}},
		{name: "bright prefix", in: "bold bright_white_on_black", want: Spec{Fg: "bright_white", Bg: "black", Bold: true}},
		{name: "index", in: "white_on_236", want: Spec{Fg: "white", Bg: "236"}},
		{name: "hex", in: "#ff8700", want: Spec{Fg: "#ff8700"}},
		{name: "case insensitive", in: "Reverse Italic", want: Spec{Reverse: true, Italic: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSpec(tt.in)
			if err != nil {
				t.Fatalf("ParseSpec(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSpec_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"purple", "black_on_mauve", "256", "#12345", "#gggggg", "blackon_white"} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseSpec(in); !errors.Is(err, ErrUnknownStyle) {
				t.Errorf("ParseSpec(%q) error = %v, want ErrUnknownStyle", in, err)
			}
		})
	}
}

func TestSpec_Code(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{name: "black on white", spec: "black_on_white", want: []string{"30", "47"}},
		{name: "underline black on lightgreen", spec: "underline black_on_lightgreen", want: []string{"102", "30", "4"}},
		{name: "white on blue", spec: "white_on_blue", want: []string{"37", "44"}},
		{name: "bold", spec: "bold", want: []string{"1"}},
		{name: "reverse", spec: "reverse", want: []string{"7"}},
		{name: "indexed", spec: "208", want: []string{"38", "5", "208"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code := mustParse(tt.spec).Code()
			if !strings.HasPrefix(code, "\x1b[") {
				t.Fatalf("Code() = %q, want SGR sequence", code)
			}
			want := slices.Clone(tt.want)
			slices.Sort(want)
			if got := sgrParams(code); !slices.Equal(got, want) {
				t.Errorf("Code() params = %v, want %v (code %q)", got, want, code)
			}
		})
	}
}

func TestSpec_ZeroIsUnset(t *testing.T) {
	t.Parallel()

	var s Spec
	if !s.IsZero() {
		t.Error("zero Spec should report IsZero")
	}
	if s.Code() != "" {
		t.Errorf("zero Spec Code() = %q, want empty", s.Code())
	}
	if s.Apply("text") != "text" {
		t.Errorf("zero Spec Apply() = %q, want unchanged", s.Apply("text"))
	}
}

func TestSpec_Apply(t *testing.T) {
	t.Parallel()

	s := mustParse("bold")
	got := s.Apply("hi")
	if !strings.HasSuffix(got, "hi"+Reset) || !strings.HasPrefix(got, s.Code()) {
		t.Errorf("Apply() = %q, want code + text + reset", got)
	}
}

func TestSpec_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"black_on_white", "underline black_on_lightgreen", "on_blue", "bold italic red"} {
		s := mustParse(in)
		again, err := ParseSpec(s.String())
		if err != nil {
			t.Fatalf("ParseSpec(%q) unexpected error: %v", s.String(), err)
		}
		if again != s {
			t.Errorf("round trip of %q = %+v, want %+v", in, again, s)
		}
	}
}

func TestSpec_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	doc := `
short: underline black_on_lightgreen
long:
  fg: white
  bg: blue
  bold: true
`
	var got struct {
		Short Spec `yaml:"short"`
		Long  Spec `yaml:"long"`
	}
	if err := yaml.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want := (Spec{Fg: "black", Bg: "lightgreen", Underline: true}); got.Short != want {
		t.Errorf("short = %+v, want %+v", got.Short, want)
	}
	if want := (Spec{Fg: "white", Bg: "blue", Bold: true}); got.Long != want {
		t.Errorf("long = %+v, want %+v", got.Long, want)
	}
}

func TestSpec_UnmarshalYAMLRejectsBadColour(t *testing.T) {
	t.Parallel()

	var s struct {
		S Spec `yaml:"s"`
	}
	if err := yaml.Unmarshal([]byte("s:\n  fg: chartreuse\n"), &s); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Unmarshal error = %v, want ErrUnknownStyle", err)
	}
}

func TestTheme_TextboxStyles(t *testing.T) {
	t.Parallel()

	th := Builtin("default")
	st := th.TextboxStyles()
	if st.Base == "" || st.Focus == "" || st.Edit == "" || st.Cursor == "" {
		t.Fatalf("default textbox styles should all be set: %+v", st)
	}
	if st.Base == st.Focus {
		t.Error("focus style should differ from base style")
	}

	plain := Builtin("plain").TextboxStyles()
	if plain.Base != "" {
		t.Errorf("plain base style = %q, want unset", plain.Base)
	}
}
