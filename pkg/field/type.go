package field

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a field type name cannot be resolved.
var ErrUnknownType = errors.New("unknown field type")

// Type tags a field with the formatting and validation rules it follows.
type Type string

const (
	TypeText           Type = "text"
	TypeEmail          Type = "email"
	TypePhone          Type = "phone"
	TypeDate           Type = "date"
	TypeTaxID          Type = "taxId"
	TypeBusinessNumber Type = "businessNumber"
	TypeCurrency       Type = "currency"
	TypePassword       Type = "password"
	TypeSelect         Type = "select"
	TypeToggle         Type = "toggle"
)

// Locale specific spellings of the generic identifier types.
var typeAliases = map[string]Type{
	"ssn": TypeTaxID,
	"tfn": TypeTaxID,
	"ein": TypeBusinessNumber,
	"abn": TypeBusinessNumber,
}

var knownTypes = []Type{
	TypeText, TypeEmail, TypePhone, TypeDate, TypeTaxID,
	TypeBusinessNumber, TypeCurrency, TypePassword, TypeSelect, TypeToggle,
}

// ParseType resolves a type name, accepting the ssn/tfn and ein/abn aliases.
// Matching is case-insensitive.
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := typeAliases[key]; ok {
		return t, nil
	}
	for _, t := range knownTypes {
		if strings.ToLower(string(t)) == key {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// UnmarshalText lets catalogs spell types with their aliases.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IsBoolean reports whether values of this type are stored as bool.
func (t Type) IsBoolean() bool {
	return t == TypeToggle
}

// IsDigitMasked reports whether the type accumulates digits into a fixed mask.
func (t Type) IsDigitMasked() bool {
	switch t {
	case TypePhone, TypeDate, TypeTaxID, TypeBusinessNumber:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}
