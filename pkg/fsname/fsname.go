// Package fsname turns human-readable scope names into safe path components.
//
// The same sanitized value must be used both for the written file or
// directory and for every link that references it, so callers sanitize once
// and reuse the result.
package fsname

import (
	"strings"
	"unicode"
)

// maxLen bounds a path component to stay clear of filesystem limits.
const maxLen = 200

// illegal characters for common filesystem path components.
const illegal = `<>:"/\|?*`

// Clean returns a filesystem-safe version of name: illegal and control
// characters become underscores, runs of underscores collapse to one,
// surrounding whitespace and underscores are trimmed, and the result is
// capped at 200 runes. An empty result falls back to "unnamed".
func Clean(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(illegal, r) || unicode.IsControl(r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}

	out := collapseUnderscores(b.String())
	out = strings.Trim(out, " \t_")

	if runes := []rune(out); len(runes) > maxLen {
		out = strings.Trim(string(runes[:maxLen]), " \t_")
	}
	if out == "" {
		return "unnamed"
	}
	return out
}

func collapseUnderscores(s string) string {
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}
