package field

// Option is a single choice of a select field.
type Option struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Definition describes one input of a step.
type Definition struct {
	Key         string   `yaml:"key"`
	Label       string   `yaml:"label"`
	Placeholder string   `yaml:"placeholder"`
	Type        Type     `yaml:"type"`
	Required    bool     `yaml:"required"`
	Options     []Option `yaml:"options,omitempty"`

	// Default is the value a fresh session starts with. Strings for text-like
	// fields, bool for toggles. Nil means empty.
	Default any `yaml:"default,omitempty"`

	// Sensitive values are shown only by their last four characters on review.
	Sensitive bool `yaml:"sensitive,omitempty"`

	// Fallback is the review text shown when the value is empty.
	Fallback string `yaml:"fallback,omitempty"`
}

// HasOption reports whether value is one of the field's choices.
func (d Definition) HasOption(value string) bool {
	for _, o := range d.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionLabel returns the label for value, or value itself when it is not a
// known choice.
func (d Definition) OptionLabel(value string) string {
	for _, o := range d.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// InitialValue returns the value a fresh session stores for this field.
func (d Definition) InitialValue() any {
	if d.Type.IsBoolean() {
		b, _ := d.Default.(bool)
		return b
	}
	s, _ := d.Default.(string)
	return s
}
