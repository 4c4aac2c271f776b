package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest ("aMTOJ singh" -> "Amtoj Singh").
func TitleCase(s string) string {
	// cases.Caser keeps state between calls, so one is built per call.
	return cases.Title(language.Und).String(s)
}

// RemoveExtraWhitespace normalizes whitespace by replacing multiple consecutive
// whitespace characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// PersonName is the canonical form for personal names: trimmed, inner
// whitespace collapsed, title cased.
var PersonName = Compose(Trim, RemoveExtraWhitespace, TitleCase)

// Code is the canonical form for short reference codes: trimmed, upper case.
var Code = Compose(Trim, ToUpper)
