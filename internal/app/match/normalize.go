package match

import (
	"strings"
)

// Normalize reduces a channel display name to its comparison form:
// lowercase ASCII letters and digits only, everything else deleted.
// Identifiers (tvg-id values) must never be normalized.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
