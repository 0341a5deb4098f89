package formatter

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/locale"
	"github.com/dmitrymomot/onboarding/pkg/sanitizer"
)

// formatFunc maps raw input to its display form under one locale.
type formatFunc func(f *Formatter, raw string) string

// handlers is the single dispatch table shared by every screen. Types missing
// from the table are passed through unchanged.
var handlers = map[field.Type]formatFunc{
	field.TypePhone:          (*Formatter).phone,
	field.TypeTaxID:          (*Formatter).taxID,
	field.TypeBusinessNumber: (*Formatter).businessNumber,
	field.TypeDate:           (*Formatter).date,
	field.TypeCurrency:       (*Formatter).currency,
}

// Formatter renders keystrokes into masked display text for one locale.
// It holds no per-call state and is safe for concurrent use.
type Formatter struct {
	loc     locale.Locale
	printer *message.Printer
}

// New creates a formatter bound to loc.
func New(loc locale.Locale) *Formatter {
	return &Formatter{
		loc:     loc,
		printer: message.NewPrinter(loc.Tag()),
	}
}

// Locale returns the rules the formatter applies.
func (f *Formatter) Locale() locale.Locale {
	return f.loc
}

// Format returns the display text for raw input of type t. It never fails:
// unusable input is truncated or returned as-is, and formatting its own
// output yields the same string.
func (f *Formatter) Format(raw string, t field.Type) string {
	h, ok := handlers[t]
	if !ok {
		return raw
	}
	return h(f, raw)
}

func (f *Formatter) phone(raw string) string {
	digits := sanitizer.TruncateDigits(raw, f.loc.Phone.MaxDigits)
	return f.loc.Phone.MaskFor(digits).Apply(digits)
}

func (f *Formatter) taxID(raw string) string {
	m := f.loc.TaxID.Mask
	return m.Apply(sanitizer.TruncateDigits(raw, m.Capacity()))
}

func (f *Formatter) businessNumber(raw string) string {
	m := f.loc.BusinessNumber.Mask
	return m.Apply(sanitizer.TruncateDigits(raw, m.Capacity()))
}

func (f *Formatter) date(raw string) string {
	m := f.loc.Date.Mask
	return m.Apply(sanitizer.TruncateDigits(raw, m.Capacity()))
}

// currency renders a finite non-negative amount with two fraction digits and
// the locale symbol. Input without any digit, such as a lone ".", is returned
// unchanged so an entry in progress is not lost.
func (f *Formatter) currency(raw string) string {
	cleaned := sanitizer.KeepDecimal(raw)
	if sanitizer.ExtractDigits(cleaned) == "" {
		return raw
	}

	whole, frac, _ := strings.Cut(cleaned, ".")
	if max := f.loc.Currency.MaxIntegerDigits; len(whole) > max {
		whole = whole[:max]
	}
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "0"
	}

	amount, err := decimal.NewFromString(whole + "." + frac)
	if err != nil || amount.IsNegative() {
		return raw
	}
	// Rounding 999.999 up must not add an integer digit the next pass would cut.
	if len(amount.Round(2).Truncate(0).String()) > f.loc.Currency.MaxIntegerDigits {
		amount = amount.Truncate(2)
	}
	return f.Amount(amount)
}

// Amount renders a decimal amount as locale currency, e.g. "$1,234.50".
func (f *Formatter) Amount(amount decimal.Decimal) string {
	amount = amount.Round(2)
	fixed := amount.StringFixed(2)
	_, cents, _ := strings.Cut(fixed, ".")

	grouped := f.printer.Sprint(number.Decimal(amount.IntPart()))
	return f.loc.Currency.Symbol + grouped + f.loc.Currency.Decimal + cents
}
