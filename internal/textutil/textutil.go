package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var multiSpacePattern = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(value string) string {
	return multiSpacePattern.ReplaceAllString(value, " ")
}

// TitleCase capitalizes the first letter of each word and lowercases the rest.
func TitleCase(value string) string {
	return cases.Title(language.Und).String(value)
}

// KebabToken converts a string to a lowercase dash-joined token for use in
// archive entry names. ASCII letters, digits, and spaces are kept, everything
// else is dropped, and spaces become dashes.
func KebabToken(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
