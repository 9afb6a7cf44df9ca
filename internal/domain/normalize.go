package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares a word for the per-user uniqueness key:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// NormalizeAnswer is used for the local exact-match shortcut before grading.
// Surrounding punctuation is dropped on top of NormalizeText.
func NormalizeAnswer(text string) string {
	text = NormalizeText(text)
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
}
