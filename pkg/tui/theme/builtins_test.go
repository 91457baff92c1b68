// ABOUTME: Tests for built-in themes: lookup, enumeration, and copy isolation
// ABOUTME: Verifies every builtin's specs are valid

package theme

import (
	"slices"
	"testing"
)

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	got := BuiltinNames()
	want := []string{"dark", "default", "plain"}
	if !slices.Equal(got, want) {
		t.Errorf("BuiltinNames() = %v, want %v", got, want)
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	t.Parallel()

	if Builtin("nope") != nil {
		t.Error("Builtin(nope) should be nil")
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Builtin("default")
	a.Name = "mutated"
	if Builtin("default").Name != "default" {
		t.Error("mutating a Builtin result changed the registry")
	}
}

func TestBuiltins_Valid(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinNames() {
		th := Builtin(name)
		for _, s := range []Spec{th.Textbox.Base, th.Textbox.Focus, th.Textbox.Edit, th.Textbox.Cursor, th.Label, th.Hint} {
			if err := s.Validate(); err != nil {
				t.Errorf("theme %q: %v", name, err)
			}
		}
	}
}
