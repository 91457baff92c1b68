// ABOUTME: Style resolution for a Textbox row from its mode and focus
// ABOUTME: Editing prefers the edit style, focus the focus style, otherwise the base style

package component

// resolveStyle returns the style token that prefixes the row.
func (tb *Textbox) resolveStyle() string {
	s := tb.styles
	switch {
	case tb.IsEditing():
		return firstSet(s.Edit, s.Focus)
	case tb.focused:
		return firstSet(s.Focus, s.Base)
	default:
		return firstSet(s.Base, s.Focus)
	}
}

func firstSet(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
