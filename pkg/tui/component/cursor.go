// ABOUTME: Cursor motion for Textbox; every move is a no-op unless the box is focused
// ABOUTME: Horizontal moves stay on existing characters; vertical moves stay within the height

package component

// MoveForward advances the cursor one cell while it stays on a character
// present in the content and inside the box.
func (tb *Textbox) MoveForward() {
	if !tb.focused {
		return
	}
	next := tb.cursor + 1
	if next > len(tb.content)-1 || next > tb.width-1 {
		return
	}
	tb.cursor = next
}

// MoveBackward moves the cursor one cell left unless it is at 0.
func (tb *Textbox) MoveBackward() {
	if !tb.focused || tb.cursor == 0 {
		return
	}
	tb.cursor--
}

// MoveUp moves the vertical cursor up within the box height.
func (tb *Textbox) MoveUp() {
	if !tb.focused || tb.cursorRow == 0 {
		return
	}
	tb.cursorRow--
}

// MoveDown moves the vertical cursor down within the box height.
func (tb *Textbox) MoveDown() {
	if !tb.focused || tb.cursorRow >= tb.height-1 {
		return
	}
	tb.cursorRow++
}

// clampCursor restores 0 <= cursor < width and cursor <= len(content).
func (tb *Textbox) clampCursor() {
	tb.cursor = min(tb.cursor, tb.width-1, len(tb.content))
	tb.cursor = max(tb.cursor, 0)
}
