// ABOUTME: Keymap binds keys to Textbox actions separately for Normal and editing states
// ABOUTME: O(1) lookup by key.Key; conflict detection and a markdown help table

package component

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/astelon/btui/pkg/tui/key"
)

// ErrUnknownAction is returned by ParseAction for names that are not actions.
var ErrUnknownAction = errors.New("unknown action")

// Action is an operation a key can be bound to.
type Action string

const (
	ActionStartEdit      Action = "startEdit"
	ActionStartReplace   Action = "startReplace"
	ActionStartAppend    Action = "startAppend"
	ActionEndEdit        Action = "endEdit"
	ActionFocus          Action = "focus"
	ActionUnfocus        Action = "unfocus"
	ActionCursorBackward Action = "cursorBackward"
	ActionCursorForward  Action = "cursorForward"
	ActionCursorUp       Action = "cursorUp"
	ActionCursorDown     Action = "cursorDown"
	ActionDeleteChar     Action = "deleteChar"
)

// actionOrder lists every action; earlier actions win a conflicting lookup.
var actionOrder = []Action{
	ActionEndEdit,
	ActionStartEdit,
	ActionStartReplace,
	ActionStartAppend,
	ActionFocus,
	ActionUnfocus,
	ActionCursorBackward,
	ActionCursorForward,
	ActionCursorUp,
	ActionCursorDown,
	ActionDeleteChar,
}

var actionHelp = map[Action]string{
	ActionStartEdit:      "insert at the cursor",
	ActionStartReplace:   "overwrite from the cursor",
	ActionStartAppend:    "insert after the cursor",
	ActionEndEdit:        "back to normal mode",
	ActionFocus:          "take focus",
	ActionUnfocus:        "release focus",
	ActionCursorBackward: "cursor left",
	ActionCursorForward:  "cursor right",
	ActionCursorUp:       "cursor up",
	ActionCursorDown:     "cursor down",
	ActionDeleteChar:     "delete under the cursor",
}

// Actions returns every action in lookup priority order.
func Actions() []Action {
	return slices.Clone(actionOrder)
}

// ParseAction returns the Action named s.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := actionHelp[a]; !ok {
		return "", fmt.Errorf("action %q: %w", s, ErrUnknownAction)
	}
	return a, nil
}

// Table selects the binding table consulted for a key.
type Table int

const (
	TableNormal Table = iota // consulted in Normal mode
	TableEdit                // consulted in Insert, Replace, and Append
)

func (t Table) String() string {
	if t == TableEdit {
		return "edit"
	}
	return "normal"
}

// Tables lists both binding tables in display order.
var Tables = []Table{TableNormal, TableEdit}

// Conflict describes a key bound to more than one action in one table.
type Conflict struct {
	Table   Table
	Key     key.Key
	Actions []Action
}

// Keymap holds per-table bindings from actions to keys.
type Keymap struct {
	bindings [2]map[Action][]key.Key
	lookup   [2]map[key.Key]Action
}

// NewKeymap returns an empty Keymap.
func NewKeymap() *Keymap {
	m := &Keymap{}
	for t := range m.bindings {
		m.bindings[t] = make(map[Action][]key.Key)
	}
	m.buildLookup()
	return m
}

// DefaultKeymap returns a fresh Keymap with the vi-style defaults.
func DefaultKeymap() *Keymap {
	m := NewKeymap()
	m.Set(TableNormal, ActionStartEdit, key.Lit('i'))
	m.Set(TableNormal, ActionStartReplace, key.Lit('r'))
	m.Set(TableNormal, ActionStartAppend, key.Lit('a'))
	m.Set(TableNormal, ActionFocus, key.Lit('f'))
	m.Set(TableNormal, ActionUnfocus, key.Lit('u'))
	m.Set(TableNormal, ActionCursorBackward, key.Lit('h'))
	m.Set(TableNormal, ActionCursorForward, key.Lit('l'))
	m.Set(TableNormal, ActionCursorUp, key.Lit('k'))
	m.Set(TableNormal, ActionCursorDown, key.Lit('j'))
	m.Set(TableNormal, ActionDeleteChar, key.Lit('x'))
	m.Set(TableEdit, ActionEndEdit, key.Named(key.KeyEscape))
	return m
}

// Set replaces the keys bound to a in table t. No keys unbinds a.
func (m *Keymap) Set(t Table, a Action, keys ...key.Key) {
	if len(keys) == 0 {
		delete(m.bindings[t], a)
	} else {
		m.bindings[t][a] = slices.Clone(keys)
	}
	m.buildLookup()
}

// Bind adds keys to the ones already bound to a in table t.
func (m *Keymap) Bind(t Table, a Action, keys ...key.Key) {
	for _, k := range keys {
		if !slices.Contains(m.bindings[t][a], k) {
			m.bindings[t][a] = append(m.bindings[t][a], k)
		}
	}
	m.buildLookup()
}

// SetNames is Set with keys written in key.Parse syntax.
func (m *Keymap) SetNames(t Table, a Action, names ...string) error {
	keys := make([]key.Key, 0, len(names))
	for _, n := range names {
		k, err := key.Parse(n)
		if err != nil {
			return fmt.Errorf("binding %s in %s table: %w", a, t, err)
		}
		keys = append(keys, k)
	}
	m.Set(t, a, keys...)
	return nil
}

// Unbind removes k from every action in table t.
func (m *Keymap) Unbind(t Table, k key.Key) {
	for a, keys := range m.bindings[t] {
		keys = slices.DeleteFunc(keys, func(b key.Key) bool { return b == k })
		if len(keys) == 0 {
			delete(m.bindings[t], a)
		} else {
			m.bindings[t][a] = keys
		}
	}
	m.buildLookup()
}

// Lookup returns the action bound to k in table t.
func (m *Keymap) Lookup(t Table, k key.Key) (Action, bool) {
	a, ok := m.lookup[t][k]
	return a, ok
}

// Keys returns the keys bound to a in table t.
func (m *Keymap) Keys(t Table, a Action) []key.Key {
	return slices.Clone(m.bindings[t][a])
}

// Clone returns an independent copy of m.
func (m *Keymap) Clone() *Keymap {
	c := NewKeymap()
	for t := range m.bindings {
		for a, keys := range m.bindings[t] {
			c.bindings[t][a] = slices.Clone(keys)
		}
	}
	c.buildLookup()
	return c
}

// Conflicts reports keys bound to more than one action within a table,
// ordered by table then key name.
func (m *Keymap) Conflicts() []Conflict {
	var out []Conflict
	for _, t := range Tables {
		byKey := make(map[key.Key][]Action)
		for _, a := range actionOrder {
			for _, k := range m.bindings[t][a] {
				byKey[k] = append(byKey[k], a)
			}
		}
		keys := slices.SortedFunc(maps.Keys(byKey), func(a, b key.Key) int {
			return strings.Compare(a.Name(), b.Name())
		})
		for _, k := range keys {
			if actions := byKey[k]; len(actions) > 1 {
				out = append(out, Conflict{Table: t, Key: k, Actions: actions})
			}
		}
	}
	return out
}

// buildLookup rebuilds the key-to-action maps. On a conflict the action
// listed first in actionOrder wins.
func (m *Keymap) buildLookup() {
	for t := range m.bindings {
		lookup := make(map[key.Key]Action)
		for _, a := range slices.Backward(actionOrder) {
			for _, k := range m.bindings[t][a] {
				lookup[k] = a
			}
		}
		m.lookup[t] = lookup
	}
}

// Markdown returns the bindings as a markdown help document.
func (m *Keymap) Markdown() string {
	var b strings.Builder
	b.WriteString("# Key bindings\n")
	for _, t := range Tables {
		fmt.Fprintf(&b, "\n## %s mode\n\n", strings.ToUpper(t.String()[:1])+t.String()[1:])
		b.WriteString("| Key | Action | Effect |\n|---|---|---|\n")
		for _, a := range actionOrder {
			keys := m.bindings[t][a]
			if len(keys) == 0 {
				continue
			}
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = "`" + k.Name() + "`"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", strings.Join(names, ", "), a, actionHelp[a])
		}
	}
	b.WriteString("\nIn edit mode any other printable key is typed into the box.\n")
	return b.String()
}
