// ABOUTME: Mode state machine for Textbox: Normal, Insert, Replace, Append
// ABOUTME: InjectKey resolves a key against the current binding table, else inserts printable runes

package component

import "github.com/astelon/btui/pkg/tui/key"

// StartEdit enters Insert mode from Normal.
func (tb *Textbox) StartEdit() { tb.enter(ModeInsert) }

// StartReplace enters Replace mode from Normal.
func (tb *Textbox) StartReplace() { tb.enter(ModeReplace) }

// StartAppend enters Append mode from Normal.
func (tb *Textbox) StartAppend() { tb.enter(ModeAppend) }

func (tb *Textbox) enter(m Mode) {
	if tb.mode != ModeNormal {
		return
	}
	tb.mode = m
}

// EndEdit leaves any editing sub-state for Normal.
func (tb *Textbox) EndEdit() { tb.mode = ModeNormal }

// Focus gives the box input focus.
func (tb *Textbox) Focus() { tb.focused = true }

// Unfocus removes input focus. The editing state is left alone.
func (tb *Textbox) Unfocus() { tb.focused = false }

// table returns the binding table for the current state.
func (tb *Textbox) table() Table {
	if tb.IsEditing() {
		return TableEdit
	}
	return TableNormal
}

// InjectKey processes exactly one key. A bound key runs its action; while
// editing an unbound printable rune is inserted; anything else is ignored.
func (tb *Textbox) InjectKey(k key.Key) {
	if a, ok := tb.keymap.Lookup(tb.table(), k); ok {
		tb.Do(a)
		return
	}
	if tb.IsEditing() && k.IsPrintable() {
		tb.Insert(k.Rune)
	}
}

// Do runs action a. Unknown actions are ignored.
func (tb *Textbox) Do(a Action) {
	switch a {
	case ActionStartEdit:
		tb.StartEdit()
	case ActionStartReplace:
		tb.StartReplace()
	case ActionStartAppend:
		tb.StartAppend()
	case ActionEndEdit:
		tb.EndEdit()
	case ActionFocus:
		tb.Focus()
	case ActionUnfocus:
		tb.Unfocus()
	case ActionCursorBackward:
		tb.MoveBackward()
	case ActionCursorForward:
		tb.MoveForward()
	case ActionCursorUp:
		tb.MoveUp()
	case ActionCursorDown:
		tb.MoveDown()
	case ActionDeleteChar:
		tb.DeleteChar()
	}
}
