package review

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/sanitizer"
)

// Texts shown around the review sections.
const (
	Subtitle   = "Please review your information below"
	Terms      = "I have read and agree to the Terms and Conditions and Privacy Policy"
	Disclosure = "By submitting this application, you authorize us to verify your identity, " +
		"check your credit history, and process your application. " +
		"You certify that all information provided is accurate and complete."
)

const (
	toggleOn  = "Enabled"
	toggleOff = "Disabled"
)

// Row is one reviewed field.
type Row struct {
	Key   string
	Label string
	Value string
}

// Section groups the rows of one step.
type Section struct {
	StepID int
	Title  string
	Rows   []Row
}

// Option configures review rendering.
type Option func(*options)

type options struct {
	lang language.Tag
}

// WithLanguage sets the language used for title casing. Defaults to English.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

func newOptions(opts []Option) options {
	o := options{lang: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build renders every step of flow as a section, masking sensitive values.
func Build(flow field.Flow, values field.Values) []Section {
	sections := make([]Section, 0, flow.Len())
	for _, step := range flow.Steps {
		rows := make([]Row, 0, len(step.Fields))
		for _, def := range step.Fields {
			rows = append(rows, Row{
				Key:   def.Key,
				Label: def.Label,
				Value: Display(def, values),
			})
		}
		sections = append(sections, Section{StepID: step.ID, Title: step.Title, Rows: rows})
	}
	return sections
}

// Display returns the review text of one field.
//
// Toggles read Enabled or Disabled. Empty values show the field fallback.
// Tax identifiers show only their last four digits as ***-**-NNNN, sensitive
// fields as ****NNNN and passwords are fully starred. Selects show the
// option label.
func Display(def field.Definition, values field.Values) string {
	if def.Type.IsBoolean() {
		if values.Bool(def.Key) {
			return toggleOn
		}
		return toggleOff
	}
	if values.IsEmpty(def.Key) {
		return def.Fallback
	}

	v := values.String(def.Key)
	switch {
	case def.Type == field.TypeTaxID:
		return sanitizer.MaskTaxID(v)
	case def.Sensitive:
		return sanitizer.MaskTrailing(v, 4)
	case def.Type == field.TypePassword:
		return sanitizer.MaskAll(v)
	case def.Type == field.TypeSelect:
		return def.OptionLabel(v)
	default:
		return v
	}
}

// Title names the account being opened, e.g. "Business Account".
func Title(accountType field.AccountType, opts ...Option) string {
	o := newOptions(opts)
	return cases.Title(o.lang).String(string(accountType)) + " Account"
}
