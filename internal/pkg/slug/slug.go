// Package slug derives URL slugs from titles.
package slug

import "strings"

// Derive converts a title into a lowercase slug containing only [a-z0-9-],
// with no consecutive hyphens and no leading/trailing hyphen. Deriving from
// the same title always yields the same slug.
func Derive(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
