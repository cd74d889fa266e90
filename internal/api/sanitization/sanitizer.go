package sanitization

import (
	"regexp"
	"strings"
	"unicode"
)

var spaces = regexp.MustCompile(`\s+`)

// SanitizeUsername trims an account name and drops control characters
func SanitizeUsername(input string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)

	return strings.TrimSpace(spaces.ReplaceAllString(safe, " "))
}

// SanitizeLogValue makes a client supplied value safe to embed in one log line
func SanitizeLogValue(input string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)

	if len(safe) > 128 {
		safe = safe[:128] + "..."
	}
	return safe
}
