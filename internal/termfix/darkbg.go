// ABOUTME: Fixes lipgloss to a dark background so Bubble Tea never probes the terminal colours.
// ABOUTME: Import with _ ahead of the tea front end; OSC 11 replies would otherwise arrive as keys.

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// An answered OSC 10/11 query lands on stdin after the program starts
	// and would be typed into the active textbox. Setting the background
	// explicitly skips the query in bubbletea's init.
	//
	// Must not import bubbletea, directly or not, so this init runs first.
	lipgloss.SetHasDarkBackground(true)
}
