package runner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeInput makes an operator line safe to process and log.
// Invalid UTF-8 sequences are replaced with U+FFFD and control characters
// other than tab are removed (ANSI escapes, NUL, BEL...). It never rejects input.
func SanitizeInput(input string) string {
	if !utf8.ValidString(input) {
		input = strings.ToValidUTF8(input, string(utf8.RuneError))
	}

	// Fast path: if no control chars, return as is.
	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return input
	}

	// Slow path: build clean string
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSafeControl(r rune) bool {
	return r == '\t'
}
