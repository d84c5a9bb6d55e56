// Package utils provides shared utilities for text, math, and logging.
package utils

import "unicode/utf8"

// TruncateRunes returns s truncated to maxRunes characters. Truncation is by
// rune, not byte, so multi-byte CJK text is never cut mid-character.
// If maxRunes is 0 or negative, returns s unchanged.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes])
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
