package sanitizer

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace prevents layout issues from multiple spaces, tabs, and newlines.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// RemoveControlChars removes control characters except newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// CleanText is the pipeline applied to free text before it leaves the form.
var CleanText = Compose(RemoveControlChars, NormalizeWhitespace)
