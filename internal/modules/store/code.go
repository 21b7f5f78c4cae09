package store

import "strings"

// NormalizeCode lowercases s and replaces every character outside [a-z0-9]
// with '-'. Each non-matching rune becomes exactly one '-'.
func NormalizeCode(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
