// ABOUTME: "Did you mean" hints for misspelled names in config files
// ABOUTME: Ranks candidates with sahilm/fuzzy and returns the best one

package config

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/astelon/btui/pkg/tui/component"
)

// suggest returns a parenthesised hint naming the candidate closest to
// name, or "" when nothing matches.
func suggest(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	matches := fuzzy.Find(strings.ToLower(name), candidates)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
}

func actionNames() []string {
	actions := component.Actions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return names
}

func kindNames() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
