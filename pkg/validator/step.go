package validator

import (
	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/locale"
)

// semanticCheck builds the type specific rule for a non-empty value.
type semanticCheck func(def field.Definition, value string) Rule

// StepValidator computes the field errors of a single wizard step.
type StepValidator struct {
	checks map[field.Type]semanticCheck
}

// NewStepValidator creates a validator applying loc's identifier lengths.
func NewStepValidator(loc locale.Locale) *StepValidator {
	bn := loc.BusinessNumber
	return &StepValidator{
		checks: map[field.Type]semanticCheck{
			field.TypeEmail: func(def field.Definition, value string) Rule {
				return ContainsAt(def.Key, value)
			},
			field.TypeBusinessNumber: func(def field.Definition, value string) Rule {
				return DigitCount(def.Key, bn.Name, value, bn.Digits())
			},
		},
	}
}

// Validate checks exactly the fields of step against values and returns the
// full error map; an empty map means the step may advance.
//
// Required fields must be non-empty. Type checks run on every non-empty value
// regardless of the required flag. Toggles are always valid.
func (v *StepValidator) Validate(step field.Step, values field.Values) field.Errors {
	rules := make([]Rule, 0, len(step.Fields))
	for _, def := range step.Fields {
		if def.Type.IsBoolean() {
			continue
		}
		if values.IsEmpty(def.Key) {
			if def.Required {
				rules = append(rules, RequiredValue(def.Key, def.Label, values))
			}
			continue
		}
		if check, ok := v.checks[def.Type]; ok {
			rules = append(rules, check(def, values.String(def.Key)))
		}
	}

	errs := ExtractValidationErrors(Apply(rules...))
	return field.Errors(errs.Map())
}
