// ABOUTME: Buffer editing for Textbox: insert, replace, append, and delete under mode guards
// ABOUTME: The field never grows past its width; rejected edits are silent no-ops

package component

import "slices"

// Insert places r according to the editing sub-mode: Replace overwrites the
// cursor cell, Append inserts after it, Insert inserts at it. The cursor
// must sit on an existing character, and only Replace may edit a full box.
func (tb *Textbox) Insert(r rune) {
	if !tb.IsEditing() {
		return
	}
	n := len(tb.content)
	if tb.cursor >= tb.width || tb.cursor >= n {
		return
	}
	if n >= tb.width && tb.mode != ModeReplace {
		return
	}

	switch tb.mode {
	case ModeReplace:
		tb.content[tb.cursor] = r
	case ModeAppend:
		tb.content = slices.Insert(tb.content, tb.cursor+1, r)
	default:
		tb.content = slices.Insert(tb.content, tb.cursor, r)
	}
	tb.cursor = min(tb.cursor+1, tb.width-1)
}

// DeleteChar removes the character under the cursor. When the cursor ends
// up on or past the last character it steps back one cell.
func (tb *Textbox) DeleteChar() {
	n := len(tb.content)
	if n == 0 {
		return
	}
	if tb.cursor >= n {
		tb.cursor = n - 1
	}
	tb.content = slices.Delete(tb.content, tb.cursor, tb.cursor+1)
	if tb.cursor >= len(tb.content)-1 {
		tb.cursor = max(tb.cursor-1, 0)
	}
}

// SetText replaces the content, truncated to the box width. The mode is
// kept and the cursor is only clamped back into range.
func (tb *Textbox) SetText(s string) {
	tb.content = tb.fitContent(s)
	tb.clampCursor()
}

// Text returns the current content.
func (tb *Textbox) Text() string {
	return string(tb.content)
}
