// ABOUTME: Built-in themes: default, plain, dark
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "slices"

func mustParse(text string) Spec {
	s, err := ParseSpec(text)
	if err != nil {
		panic(err)
	}
	return s
}

var builtins = map[string]*Theme{
	"default": {
		Name: "default",
		Textbox: TextboxSpecs{
			Base:   mustParse("black_on_white"),
			Focus:  mustParse("underline black_on_white"),
			Edit:   mustParse("underline black_on_lightgreen"),
			Cursor: mustParse("white_on_blue"),
		},
		Label: mustParse("bold bright_white_on_black"),
		Hint:  mustParse("bold"),
	},
	"plain": {
		Name: "plain",
		Textbox: TextboxSpecs{
			Focus:  mustParse("underline"),
			Edit:   mustParse("reverse"),
			Cursor: mustParse("reverse bold"),
		},
	},
	"dark": {
		Name: "dark",
		Textbox: TextboxSpecs{
			Base:   mustParse("white_on_236"),
			Focus:  mustParse("underline brightwhite_on_238"),
			Edit:   mustParse("underline black_on_114"),
			Cursor: mustParse("black_on_214"),
		},
		Label: mustParse("245"),
		Hint:  mustParse("bold 214"),
	},
}

// Builtin returns a copy of the named built-in theme, or nil if none exists.
func Builtin(name string) *Theme {
	t, ok := builtins[name]
	if !ok {
		return nil
	}
	c := *t
	return &c
}

// BuiltinNames returns the sorted names of all built-in themes.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
