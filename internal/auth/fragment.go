package auth

import "strings"

// ExtractFragment returns the signature segment of a bearer token, the
// durable key for its session marker. A token must split on "." into exactly
// three non-empty segments; anything else yields "", which the session store
// refuses to persist and never matches.
func ExtractFragment(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ""
	}
	for _, p := range parts {
		if p == "" {
			return ""
		}
	}
	return parts[2]
}
