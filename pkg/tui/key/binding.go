// ABOUTME: Parse turns binding strings such as "i", "escape" or "ctrl+c" into Key values.
// ABOUTME: The inverse of Key.Name; used by keymaps and configuration files.

package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUnknownKey is returned by Parse for strings that name no key.
var ErrUnknownKey = errors.New("unknown key")

// typeNames are the binding names of named sequences.
var typeNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "escape",
}

// nameAliases lists accepted spellings beyond typeNames.
var nameAliases = map[string]Key{
	"esc":      Named(KeyEscape),
	"return":   Named(KeyEnter),
	"backtab":  Named(KeyBackTab),
	"del":      Named(KeyDelete),
	"pageup":   Named(KeyPageUp),
	"pagedown": Named(KeyPageDown),
	"space":    Lit(' '),
}

// ctrlAliases are the Ctrl combinations a terminal reports as other keys.
var ctrlAliases = map[rune]Key{
	'i': Named(KeyTab),
	'm': Named(KeyEnter),
	'h': Named(KeyBackspace),
	'[': Named(KeyEscape),
}

var byName = func() map[string]Key {
	m := make(map[string]Key, len(typeNames)+len(nameAliases))
	for t, name := range typeNames {
		m[name] = Named(t)
	}
	for name, k := range nameAliases {
		m[name] = k
	}
	return m
}()

// Parse converts a binding string into a Key. A single character is a
// literal and keeps its case; names are case-insensitive.
func Parse(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("%w: empty string", ErrUnknownKey)
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Lit(r), nil
	}

	lower := strings.ToLower(s)
	if k, ok := byName[lower]; ok {
		return k, nil
	}

	if rest, ok := strings.CutPrefix(lower, "ctrl+"); ok && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		if k, ok := ctrlAliases[r]; ok {
			return k, nil
		}
		if r >= 'a' && r <= 'z' {
			return CtrlKey(r), nil
		}
	}

	// alt+ keeps the case of the character that follows it.
	if len(s) > len("alt+") && strings.EqualFold(s[:len("alt+")], "alt+") {
		rest := s[len("alt+"):]
		if rest == "space" {
			return Key{Type: KeyRune, Rune: ' ', Alt: true}, nil
		}
		if utf8.RuneCountInString(rest) == 1 {
			r, _ := utf8.DecodeRuneInString(rest)
			return Key{Type: KeyRune, Rune: r, Alt: true}, nil
		}
	}

	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) Key {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}
