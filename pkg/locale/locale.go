package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Date component orders.
const (
	OrderDMY = "DMY"
	OrderMDY = "MDY"
)

// PhoneVariant applies Mask to numbers starting with any of Prefixes.
type PhoneVariant struct {
	Prefixes []string `yaml:"prefixes"`
	Mask     Mask     `yaml:"mask"`
}

// PhoneRules configures phone masking. Variant selection is a pure function of
// the digits typed so far.
type PhoneRules struct {
	MaxDigits int            `yaml:"max_digits"`
	Default   Mask           `yaml:"default"`
	Variants  []PhoneVariant `yaml:"variants"`
}

// MaskFor picks the variant with the longest prefix matching digits, or the
// default mask.
func (p PhoneRules) MaskFor(digits string) Mask {
	best, bestLen := p.Default, 0
	for _, v := range p.Variants {
		for _, prefix := range v.Prefixes {
			if len(prefix) > bestLen && strings.HasPrefix(digits, prefix) {
				best, bestLen = v.Mask, len(prefix)
			}
		}
	}
	return best
}

// IdentifierRules configures a fixed-length government identifier.
type IdentifierRules struct {
	Name string `yaml:"name"`
	Mask Mask   `yaml:"mask"`
}

// Digits returns the exact digit count of a complete identifier.
func (r IdentifierRules) Digits() int {
	return r.Mask.Capacity()
}

// DateRules configures date masking and the order of day and month.
type DateRules struct {
	Mask  Mask   `yaml:"mask"`
	Order string `yaml:"order"`
}

// Layout returns the time layout matching a fully typed date.
func (d DateRules) Layout() string {
	if d.Order == OrderMDY {
		return "01/02/2006"
	}
	return "02/01/2006"
}

// CurrencyRules configures currency rendering.
type CurrencyRules struct {
	Code             string `yaml:"code"`
	Symbol           string `yaml:"symbol"`
	Decimal          string `yaml:"decimal"`
	MaxIntegerDigits int    `yaml:"max_integer_digits"`
}

// BankRules describes the display-only account identifiers issued on success.
type BankRules struct {
	BranchLabel   string `yaml:"branch_label"`
	BranchPrefix  string `yaml:"branch_prefix"`
	BranchDigits  int    `yaml:"branch_digits"`
	AccountDigits int    `yaml:"account_digits"`
}

// Locale bundles every country specific formatting rule.
type Locale struct {
	Code           string          `yaml:"code"`
	Language       string          `yaml:"language"`
	Region         string          `yaml:"region"`
	Phone          PhoneRules      `yaml:"phone"`
	TaxID          IdentifierRules `yaml:"tax_id"`
	BusinessNumber IdentifierRules `yaml:"business_number"`
	Date           DateRules       `yaml:"date"`
	Currency       CurrencyRules   `yaml:"currency"`
	Bank           BankRules       `yaml:"bank"`

	tag language.Tag
}

// Tag returns the parsed BCP-47 language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l *Locale) validate() error {
	if l.Code == "" {
		return errors.New("missing code")
	}
	tag, err := language.Parse(l.Language)
	if err != nil {
		return fmt.Errorf("language %q: %w", l.Language, err)
	}
	l.tag = tag

	if l.Phone.MaxDigits <= 0 {
		return errors.New("phone.max_digits must be positive")
	}
	masks := map[string]Mask{
		"phone.default":   l.Phone.Default,
		"tax_id":          l.TaxID.Mask,
		"business_number": l.BusinessNumber.Mask,
		"date":            l.Date.Mask,
	}
	for i, v := range l.Phone.Variants {
		masks[fmt.Sprintf("phone.variants[%d]", i)] = v.Mask
		if len(v.Prefixes) == 0 {
			return fmt.Errorf("phone.variants[%d]: no prefixes", i)
		}
	}
	for name, m := range masks {
		if err := m.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if l.Phone.Default.Capacity() > l.Phone.MaxDigits {
		return errors.New("phone.default exceeds max_digits")
	}
	for i, v := range l.Phone.Variants {
		if v.Mask.Capacity() > l.Phone.MaxDigits {
			return fmt.Errorf("phone.variants[%d] exceeds max_digits", i)
		}
	}

	switch l.Date.Order {
	case OrderDMY, OrderMDY:
	default:
		return fmt.Errorf("date.order %q must be %s or %s", l.Date.Order, OrderDMY, OrderMDY)
	}
	if l.Date.Mask.Capacity() != 8 {
		return errors.New("date mask must hold 8 digits")
	}

	if l.Currency.Decimal == "" {
		l.Currency.Decimal = "."
	}
	if l.Currency.MaxIntegerDigits <= 0 || l.Currency.MaxIntegerDigits > 15 {
		return errors.New("currency.max_integer_digits must be between 1 and 15")
	}
	return nil
}
