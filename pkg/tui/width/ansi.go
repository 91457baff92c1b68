// ABOUTME: ANSI escape sequence scanning and stripping
// ABOUTME: Handles CSI, OSC, APC/DCS/PM, charset designation, and two-byte ESC sequences

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipANSISequence advances past an ANSI escape sequence starting at s[i].
// Returns the index of the first byte after the sequence.
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++ // skip ESC
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: ESC [ ... <final byte 0x40-0x7E>
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: ESC ] ... (BEL or ST)
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST
		for i++; i < len(s); i++ {
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	case '(':
		// Designate character set: ESC ( <char>
		return min(i+2, len(s))
	default:
		return i + 1
	}
}

// isST reports whether the string terminator ESC \ starts at s[i].
func isST(s string, i int) bool {
	return s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\'
}
