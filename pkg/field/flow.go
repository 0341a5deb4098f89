package field

import "fmt"

// AccountType tags the flow the applicant chose.
type AccountType string

const (
	AccountPersonal AccountType = "personal"
	AccountBusiness AccountType = "business"
)

// ParseAccountType validates an account type name.
func ParseAccountType(name string) (AccountType, error) {
	switch AccountType(name) {
	case AccountPersonal, AccountBusiness:
		return AccountType(name), nil
	default:
		return "", fmt.Errorf("unknown account type %q", name)
	}
}

// Step is the ordered schema of one wizard screen.
type Step struct {
	ID          int          `yaml:"id"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Fields      []Definition `yaml:"fields"`
}

// Field looks up a definition by key within the step.
func (s Step) Field(key string) (Definition, bool) {
	for _, def := range s.Fields {
		if def.Key == key {
			return def, true
		}
	}
	return Definition{}, false
}

// Flow is the full ordered onboarding sequence for one account type and locale.
type Flow struct {
	AccountType AccountType `yaml:"account_type"`
	Locale      string      `yaml:"locale"`
	Steps       []Step      `yaml:"steps"`
}

// Len returns the number of steps.
func (f Flow) Len() int {
	return len(f.Steps)
}

// Step returns the 1-based step i. Out of range indexes yield an empty step.
func (f Flow) Step(i int) Step {
	if i < 1 || i > len(f.Steps) {
		return Step{}
	}
	return f.Steps[i-1]
}

// Field looks up a definition by key across all steps.
func (f Flow) Field(key string) (Definition, bool) {
	for _, s := range f.Steps {
		if def, ok := s.Field(key); ok {
			return def, true
		}
	}
	return Definition{}, false
}

// InitialValues builds the starting form state from field defaults.
func (f Flow) InitialValues() Values {
	values := make(Values)
	for _, s := range f.Steps {
		for _, def := range s.Fields {
			values[def.Key] = def.InitialValue()
		}
	}
	return values
}
