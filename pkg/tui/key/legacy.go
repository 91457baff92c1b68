// ABOUTME: Legacy escape sequence mappings for CSI and SS3 terminal key codes.
// ABOUTME: Covers xterm, VT220 and rxvt encodings of arrows, home/end, paging, delete and backtab.

package key

// legacySequences maps standard CSI and SS3 escape sequences to Key values.
var legacySequences = map[string]Key{
	// CSI sequences
	"\x1b[A":  Named(KeyUp),
	"\x1b[B":  Named(KeyDown),
	"\x1b[C":  Named(KeyRight),
	"\x1b[D":  Named(KeyLeft),
	"\x1b[H":  Named(KeyHome),
	"\x1b[F":  Named(KeyEnd),
	"\x1b[5~": Named(KeyPageUp),
	"\x1b[6~": Named(KeyPageDown),
	"\x1b[3~": Named(KeyDelete),
	"\x1b[Z":  Named(KeyBackTab),

	// VT220 / rxvt home and end
	"\x1b[1~": Named(KeyHome),
	"\x1b[4~": Named(KeyEnd),
	"\x1b[7~": Named(KeyHome),
	"\x1b[8~": Named(KeyEnd),

	// SS3 variants (sent by some terminals in application mode)
	"\x1bOA": Named(KeyUp),
	"\x1bOB": Named(KeyDown),
	"\x1bOC": Named(KeyRight),
	"\x1bOD": Named(KeyLeft),
	"\x1bOH": Named(KeyHome),
	"\x1bOF": Named(KeyEnd),
}
