// Package slug derives URL-safe article slugs from titles. It is
// deliberately free of any persistence concern so it can be unit-tested on
// its own; uniqueness of the result is enforced by the storage layer, and
// disambiguation on collision is the caller's strategy.
package slug

import (
	"strings"
	"unicode"
)

// Make converts a title to a hyphenated lowercase slug.
//
// E.g. Make("Doctests are the Bee's Knees") == "doctests-are-the-bees-knees".
//
// Words are split on any run of non-alphanumeric characters; apostrophes and
// double quotes inside a word are dropped rather than treated as separators,
// so contractions collapse ("It's" -> "its").
func Make(title string) string {
	isQuote := func(r rune) bool { return r == '\'' || r == '"' }

	words := strings.FieldsFunc(title, func(r rune) bool {
		return !(isQuote(r) || unicode.IsLetter(r) || unicode.IsDigit(r))
	})

	parts := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Map(func(r rune) rune {
			if isQuote(r) {
				return -1
			}
			return unicode.ToLower(r)
		}, word)

		if word != "" {
			parts = append(parts, word)
		}
	}

	return strings.Join(parts, "-")
}
