package match

import (
	"strings"
)

// Normalize prepares a text or query for matching:
// 1. Trim leading and trailing whitespace.
// 2. Fold ASCII letters to lower case. Other runes are left untouched.
func Normalize(s string) string {
	s = strings.TrimSpace(s)

	return toLowerASCII(s)
}

// Words normalizes s and splits it into whitespace-delimited words.
// Runs of whitespace never produce empty words.
func Words(s string) []string {
	return strings.Fields(Normalize(s))
}

// toLowerASCII folds A-Z to a-z and returns s unchanged when there is
// nothing to fold.
func toLowerASCII(s string) string {
	hasUpper := false

	for i := 0; i < len(s); i++ {
		if isUpperASCII(s[i]) {
			hasUpper = true

			break
		}
	}

	if !hasUpper {
		return s
	}

	var result strings.Builder

	result.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUpperASCII(c) {
			c += 'a' - 'A'
		}

		result.WriteByte(c)
	}

	return result.String()
}

func isUpperASCII(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
