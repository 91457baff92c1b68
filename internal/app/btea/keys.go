// ABOUTME: Converts Bubble Tea key messages into btui key events.
// ABOUTME: Control letters become Ctrl keys except those that alias Tab, Enter, and Backspace.

package btea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astelon/btui/pkg/tui/key"
)

var namedKeys = map[tea.KeyType]key.KeyType{
	tea.KeyEnter:     key.KeyEnter,
	tea.KeyCtrlJ:     key.KeyEnter,
	tea.KeyTab:       key.KeyTab,
	tea.KeyShiftTab:  key.KeyBackTab,
	tea.KeyBackspace: key.KeyBackspace,
	tea.KeyCtrlH:     key.KeyBackspace,
	tea.KeyDelete:    key.KeyDelete,
	tea.KeyUp:        key.KeyUp,
	tea.KeyDown:      key.KeyDown,
	tea.KeyLeft:      key.KeyLeft,
	tea.KeyRight:     key.KeyRight,
	tea.KeyHome:      key.KeyHome,
	tea.KeyEnd:       key.KeyEnd,
	tea.KeyPgUp:      key.KeyPageUp,
	tea.KeyPgDown:    key.KeyPageDown,
	tea.KeyEsc:       key.KeyEscape,
}

// Keys converts msg into key events. A paste or a burst of runes yields
// one literal per rune; unmapped messages yield a single Unknown key.
func Keys(msg tea.KeyMsg) []key.Key {
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]key.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k := key.Lit(r)
			k.Alt = msg.Alt && !msg.Paste
			keys = append(keys, k)
		}
		return keys
	case tea.KeySpace:
		k := key.Lit(' ')
		k.Alt = msg.Alt
		return []key.Key{k}
	}

	if t, ok := namedKeys[msg.Type]; ok {
		return []key.Key{key.Named(t)}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []key.Key{key.CtrlKey(rune('a' + msg.Type - tea.KeyCtrlA))}
	}
	return []key.Key{key.Named(key.KeyUnknown)}
}
