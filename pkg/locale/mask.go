package locale

import (
	"fmt"
	"strings"
	"unicode"
)

// DigitSlot marks a position in a Mask that takes one digit.
const DigitSlot = '#'

// Mask is a display pattern such as "### ### ###". Every rune other than
// DigitSlot is a literal separator.
type Mask string

// Capacity returns the number of digits the mask holds.
func (m Mask) Capacity() int {
	return strings.Count(string(m), string(DigitSlot))
}

// Apply lays digits into the mask. A separator is written only when at least
// one more digit follows it, so partial input yields a growing partial mask.
// Digits beyond the capacity are dropped. Non-digit runes in digits are skipped.
func (m Mask) Apply(digits string) string {
	var (
		out     strings.Builder
		pending strings.Builder
	)
	rest := []rune(digits)
	for _, r := range m {
		if len(rest) == 0 {
			break
		}
		if r != DigitSlot {
			pending.WriteRune(r)
			continue
		}
		for len(rest) > 0 && !unicode.IsDigit(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			break
		}
		out.WriteString(pending.String())
		pending.Reset()
		out.WriteRune(rest[0])
		rest = rest[1:]
	}
	return out.String()
}

func (m Mask) validate() error {
	if m.Capacity() == 0 {
		return fmt.Errorf("mask %q has no digit slots", string(m))
	}
	for _, r := range m {
		if unicode.IsDigit(r) {
			return fmt.Errorf("mask %q uses digit %q as a separator", string(m), r)
		}
	}
	return nil
}
