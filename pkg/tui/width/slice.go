// ABOUTME: Column-based string slicing, truncation, and fitting with ANSI-awareness
// ABOUTME: Used to place styled widget rows on a grid and size focus hints and labels

package width

import "strings"

// SliceByColumn extracts the substring from column start (inclusive) to
// column end (exclusive). Only clusters lying entirely inside the range are
// kept; ANSI sequences are always kept so styling stays intact.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}

	var b strings.Builder
	for _, seg := range segments(s) {
		if seg.isSeq {
			b.WriteString(seg.text)
			continue
		}
		if seg.col >= start && seg.col+seg.width <= end {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// Truncate returns the longest prefix of s that fits in n columns.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if VisibleWidth(s) <= n {
		return s
	}
	return SliceByColumn(s, 0, n)
}

// Fit returns s truncated or right-padded with spaces to exactly n columns.
// A wide character that would straddle the edge is replaced by padding.
func Fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	t := Truncate(s, n)
	if w := VisibleWidth(t); w < n {
		return t + strings.Repeat(" ", n-w)
	}
	return t
}
