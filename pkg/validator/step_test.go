package validator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/flows"
	"github.com/dmitrymomot/onboarding/pkg/locale"
	"github.com/dmitrymomot/onboarding/pkg/validator"
)

func TestStepValidator_Validate(t *testing.T) {
	t.Parallel()

	au := validator.NewStepValidator(locale.MustLookup("AU"))
	personal := flows.MustLoad("AU", field.AccountPersonal)
	business := flows.MustLoad("AU", field.AccountBusiness)

	completePersonal := field.Values{
		"firstName":   "Jane",
		"lastName":    "Citizen",
		"email":       "jane@example.com",
		"phone":       "0412 345 678",
		"dateOfBirth": "31/01/1990",
	}

	tests := []struct {
		name   string
		step   field.Step
		values field.Values
		want   field.Errors
	}{
		{
			name:   "complete step",
			step:   personal.Step(1),
			values: completePersonal,
			want:   field.Errors{},
		},
		{
			name: "missing first name with valid email",
			step: personal.Step(1),
			values: field.Values{
				"firstName":   "",
				"lastName":    "Citizen",
				"email":       "a@b.com",
				"phone":       "0412 345 678",
				"dateOfBirth": "31/01/1990",
			},
			want: field.Errors{"firstName": "First Name is required"},
		},
		{
			name: "whitespace counts as a value",
			step: personal.Step(1),
			values: field.Values{
				"firstName":   "   ",
				"lastName":    "Citizen",
				"email":       "a@b.com",
				"phone":       "0412 345 678",
				"dateOfBirth": "31/01/1990",
			},
			want: field.Errors{},
		},
		{
			name: "invalid email",
			step: personal.Step(1),
			values: field.Values{
				"firstName":   "Jane",
				"lastName":    "Citizen",
				"email":       "jane.example.com",
				"phone":       "0412 345 678",
				"dateOfBirth": "31/01/1990",
			},
			want: field.Errors{"email": "Please enter a valid email address"},
		},
		{
			name:   "empty step reports every required field",
			step:   personal.Step(1),
			values: field.Values{},
			want: field.Errors{
				"firstName":   "First Name is required",
				"lastName":    "Last Name is required",
				"email":       "Email Address is required",
				"phone":       "Mobile Number is required",
				"dateOfBirth": "Date of Birth is required",
			},
		},
		{
			name:   "optional fields and toggles never fail",
			step:   personal.Step(4),
			values: field.Values{"enablePaperlessStatements": false, "enablePayID": false},
			want:   field.Errors{},
		},
		{
			name: "short abn",
			step: business.Step(1),
			values: field.Values{
				"businessName":  "Acme",
				"businessType":  "company",
				"abn":           "53 004 085 61",
				"businessPhone": "02 1234 5678",
				"businessEmail": "hi@acme.com.au",
			},
			want: field.Errors{"abn": "ABN must be 11 digits"},
		},
		{
			name: "full abn",
			step: business.Step(1),
			values: field.Values{
				"businessName":  "Acme",
				"businessType":  "company",
				"abn":           "53 004 085 616",
				"businessPhone": "02 1234 5678",
				"businessEmail": "hi@acme.com.au",
			},
			want: field.Errors{},
		},
		{
			name: "fields outside the step are ignored",
			step: personal.Step(2),
			values: field.Values{
				"firstName":     "",
				"email":         "broken",
				"streetAddress": "1 George St",
				"suburb":        "Sydney",
				"state":         "NSW",
				"postcode":      "2000",
				"country":       "AU",
			},
			want: field.Errors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := au.Validate(tt.step, tt.values)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStepValidator_OptionalEmail(t *testing.T) {
	t.Parallel()

	v := validator.NewStepValidator(locale.MustLookup("AU"))
	step := field.Step{
		ID: 1,
		Fields: []field.Definition{
			{Key: "contact", Label: "Contact Email", Type: field.TypeEmail},
		},
	}

	assert.True(t, v.Validate(step, field.Values{"contact": ""}).Valid())
	assert.Equal(t, field.Errors{"contact": "Please enter a valid email address"},
		v.Validate(step, field.Values{"contact": "nope"}))
}

func TestStepValidator_USBusinessNumber(t *testing.T) {
	t.Parallel()

	v := validator.NewStepValidator(locale.MustLookup("US"))
	step := field.Step{
		ID: 1,
		Fields: []field.Definition{
			{Key: "ein", Label: "EIN", Type: field.TypeBusinessNumber, Required: true},
		},
	}

	assert.Equal(t, field.Errors{"ein": "EIN must be 9 digits"},
		v.Validate(step, field.Values{"ein": "12-34567"}))
	assert.True(t, v.Validate(step, field.Values{"ein": "12-3456789"}).Valid())
	assert.Equal(t, field.Errors{"ein": "EIN is required"},
		v.Validate(step, field.Values{}))
}

func TestStepValidator_RequiredToggleIsAlwaysValid(t *testing.T) {
	t.Parallel()

	v := validator.NewStepValidator(locale.MustLookup("AU"))
	step := field.Step{
		ID: 1,
		Fields: []field.Definition{
			{Key: "agree", Label: "Agree", Type: field.TypeToggle, Required: true},
		},
	}

	assert.True(t, v.Validate(step, field.Values{"agree": false}).Valid())
}
