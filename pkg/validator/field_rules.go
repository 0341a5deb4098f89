package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/sanitizer"
)

// RequiredValue validates that a form value is present. Blank strings, false
// and missing keys count as absent. The message names the field by its label.
func RequiredValue(key, label string, values field.Values) Rule {
	return Rule{
		Check: func() bool {
			return !values.IsEmpty(key)
		},
		Error: ValidationError{
			Field:          key,
			Message:        fmt.Sprintf("%s is required", label),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": key,
				"label": label,
			},
		},
	}
}

// ContainsAt validates the minimal shape of an email address: an "@" somewhere
// in the value.
func ContainsAt(key, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.Contains(value, "@")
		},
		Error: ValidationError{
			Field:          key,
			Message:        "Please enter a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": key,
			},
		},
	}
}

// DigitCount validates that value holds exactly n digits once separators are
// stripped. name is the short identifier name shown to the user, e.g. "ABN".
func DigitCount(key, name, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len(sanitizer.ExtractDigits(value)) == n
		},
		Error: ValidationError{
			Field:          key,
			Message:        fmt.Sprintf("%s must be %d digits", name, n),
			TranslationKey: "validation.digit_count",
			TranslationValues: map[string]any{
				"field":  key,
				"name":   name,
				"digits": n,
			},
		},
	}
}
