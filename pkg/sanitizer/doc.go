// Package sanitizer provides small, stateless helpers for cleaning and masking
// form input.
//
// The functions are grouped conceptually into a few areas:
//
//   - Digits – extraction and truncation of the digits behind masked inputs
//     (phone numbers, tax identifiers, business numbers, dates) and decimal
//     keeping for currency entry.
//
//   - Strings – control character removal and whitespace normalisation for
//     free text.
//
//   - Masking – display-only renderings of sensitive values for review
//     screens (tax identifiers, identity document numbers, passwords).
//
// The higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.NormalizeWhitespace,
//	)
//
//	street := clean("  12\tMain   St\n") // "12 Main St"
//
// # Error handling
//
// None of the helpers returns an error – they always fall back to a safe result
// (usually the original input or an empty string).
//
// Because there is no global state the helpers are safe for use from multiple
// goroutines concurrently.
package sanitizer
