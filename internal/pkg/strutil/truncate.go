package strutil

import "unicode/utf8"

// Truncate safely cuts a UTF-8 string to maxLength runes, appending an
// ellipsis when something was removed.
func Truncate(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLength]) + "..."
}
