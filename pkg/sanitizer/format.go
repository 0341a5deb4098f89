package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// ExtractDigits strips every non-digit, the first step of every masked field.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// TruncateDigits extracts digits and keeps at most max of them.
// Over-length input is cut rather than rejected.
func TruncateDigits(s string, max int) string {
	digits := ExtractDigits(s)
	if max >= 0 && len(digits) > max {
		return digits[:max]
	}
	return digits
}

// KeepDecimal keeps digits and the first decimal point, dropping everything
// else (currency symbols, group separators, extra points).
func KeepDecimal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	seenPoint := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEmail prevents common email input errors but preserves original for invalid formats.
// Consolidates consecutive dots which can cause delivery issues with some email providers.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	// Consolidate consecutive dots to prevent delivery failures
	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskTaxID renders a tax identifier for review as ***-**-NNNN.
// Fewer than four digits yields a fully masked placeholder.
func MaskTaxID(taxID string) string {
	digits := ExtractDigits(taxID)
	if len(digits) < 4 {
		return "***-**-****"
	}
	return "***-**-" + digits[len(digits)-4:]
}

// MaskTrailing hides everything but the last visible characters behind a
// fixed four star prefix, e.g. "****1234" for identity document numbers.
func MaskTrailing(s string, visible int) string {
	s = strings.TrimSpace(s)
	if visible < 0 {
		visible = 0
	}
	runes := []rune(s)
	if len(runes) > visible {
		runes = runes[len(runes)-visible:]
	}
	return "****" + string(runes)
}

// MaskAll replaces every character with a star.
func MaskAll(s string) string {
	return strings.Repeat("*", utf8.RuneCountInString(s))
}
