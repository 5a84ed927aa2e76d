package strutil

import "strings"

// accentedVowels maps accented Latin vowels to their plain equivalents.
// Anything else outside [a-z0-9] collapses into a hyphen.
var accentedVowels = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
}

// GenerateSlug derives a URL-safe identifier from a title. It is pure and
// deterministic: lowercase, transliterate accented vowels, collapse every run
// of other characters into a single hyphen, and trim boundary hyphens.
//
// An all-symbol title produces an empty string. That violates the article slug
// invariant and must be rejected by the caller; no uniqueness check happens here.
func GenerateSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasHyphen := false
	for _, r := range strings.ToLower(title) {
		if plain, ok := accentedVowels[r]; ok {
			r = plain
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasHyphen = false
			continue
		}
		if !lastWasHyphen {
			b.WriteByte('-')
			lastWasHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
