package common

import "strings"

// SplitAny splits s on any of the delimiter runes, trimming whitespace around
// each segment and dropping empty ones.
func SplitAny(s, delims string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ReplaceAny replaces every occurrence of the delimiter runes in s with repl.
func ReplaceAny(s, delims, repl string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(delims, r) {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
