// ABOUTME: Defines the Key event type: a literal rune or a named control sequence.
// ABOUTME: ParseKey decodes raw terminal bytes; printable runes, control bytes, and escape sequences.

package key

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event. It is either a literal
// character (Type == KeyRune) or a named control sequence (every other Type).
// Key is comparable and is used directly as a binding-table key.
type Key struct {
	Type  KeyType
	Rune  rune // literal character; for KeyCtrl the lower-case letter
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events the TUI can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Literal character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrl                     // Ctrl+letter; the letter is in Rune
	KeyUnknown                  // Unrecognized input
)

// Lit returns the key event for the literal character r.
func Lit(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Named returns the key event for a named sequence without modifiers.
func Named(t KeyType) Key {
	if t == KeyBackTab {
		return Key{Type: KeyBackTab, Shift: true}
	}
	return Key{Type: t}
}

// CtrlKey returns the Ctrl+letter event. Letters are folded to lower case.
func CtrlKey(r rune) Key {
	return Key{Type: KeyCtrl, Rune: unicode.ToLower(r), Ctrl: true}
}

// IsSequence reports whether k is a named control sequence rather than
// a literal character.
func (k Key) IsSequence() bool {
	return k.Type != KeyRune
}

// IsPrintable reports whether k is a plain literal that can be inserted
// into text: no modifiers and a printable code point.
func (k Key) IsPrintable() bool {
	return k.Type == KeyRune && !k.Alt && !k.Ctrl && unicode.IsPrint(k.Rune)
}

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Lit(r)
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Named(KeyEnter)
	case b == 0x09:
		return Named(KeyTab)
	case b == 0x7f || b == 0x08:
		return Named(KeyBackspace)
	case b == 0x1b:
		return Named(KeyEscape)
	case b >= 0x20 && b <= 0x7e:
		return Lit(rune(b))
	case b >= 0x01 && b <= 0x1a:
		return CtrlKey(rune('a' + b - 1))
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence resolves ESC-prefixed data against the legacy tables.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// keyTypeLabels provides human-readable labels for each named KeyType.
var keyTypeLabels = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		if k.Alt {
			return fmt.Sprintf("Alt+%c", k.Rune)
		}
		return string(k.Rune)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl+%c", unicode.ToUpper(k.Rune))
	}
	if label, ok := keyTypeLabels[k.Type]; ok {
		return label
	}
	return "Unknown"
}

// Name returns the binding name of k in the syntax accepted by Parse:
// the character itself for literals, "alt+x" and "ctrl+x" for modified
// keys, and a lower-case name such as "escape" for named sequences.
func (k Key) Name() string {
	switch k.Type {
	case KeyRune:
		name := string(k.Rune)
		if k.Rune == ' ' {
			name = "space"
		}
		if k.Alt {
			return "alt+" + name
		}
		return name
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	}
	if name, ok := typeNames[k.Type]; ok {
		return name
	}
	return "unknown"
}
