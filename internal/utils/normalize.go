package utils

import (
	"strings"
	"unicode"
)

// NormalizeWord trims surrounding whitespace and lowercases a candidate
// word. All dictionary comparisons happen on the normalized form.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// IsWordToken reports whether s looks like a single word a player could
// submit: non-empty letters, optionally with interior apostrophes or
// hyphens (l'eau, forget-me-not). Digits and other symbols disqualify it.
func IsWordToken(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) {
			continue
		}
		if (r == '\'' || r == '-') && i > 0 && i < len(s)-1 {
			continue
		}
		return false
	}
	return true
}

// HasPrefixIgnoreCase checks if string has prefix case-insensitively
func HasPrefixIgnoreCase(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
