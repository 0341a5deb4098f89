package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email local part dot runs
	dotRegex = regexp.MustCompile(`\.+`)

	// Digit extraction for masked fields
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
