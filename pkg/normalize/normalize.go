package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold strips diacritics and uppercases the input. All business-rule
// matching (brand tables, option lookups, juice detection) runs on folded
// strings so "Bacardí" and "BACARDI" compare equal.
func Fold(value string) string {
	folded, _, err := transform.String(stripper, value)
	if err != nil {
		folded = value
	}
	return strings.ToUpper(folded)
}

// Contains reports whether the folded haystack contains the folded needle.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
