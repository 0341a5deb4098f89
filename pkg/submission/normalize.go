package submission

import (
	"time"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/locale"
	"github.com/dmitrymomot/onboarding/pkg/sanitizer"
)

// isoDate is the layout dates are sent in.
const isoDate = "2006-01-02"

type normalizeFunc func(loc locale.Locale, value string) string

var normalizers = map[field.Type]normalizeFunc{
	field.TypeText:           func(_ locale.Locale, v string) string { return sanitizer.CleanText(v) },
	field.TypeEmail:          func(_ locale.Locale, v string) string { return sanitizer.NormalizeEmail(v) },
	field.TypePhone:          normalizePhone,
	field.TypeTaxID:          func(_ locale.Locale, v string) string { return sanitizer.ExtractDigits(v) },
	field.TypeBusinessNumber: func(_ locale.Locale, v string) string { return sanitizer.ExtractDigits(v) },
	field.TypeDate:           normalizeDate,
	field.TypeCurrency:       normalizeCurrency,
}

// Normalize converts display formatted values into their canonical form.
// Values that cannot be converted are passed through unchanged; the wizard
// only guarantees presence and a few shape checks, not full validity.
// Keys missing from the flow are copied as they are.
func Normalize(flow field.Flow, loc locale.Locale, app Application) Payload {
	out := make(map[string]any, len(app.Data))
	for key, value := range app.Data {
		s, isString := value.(string)
		def, known := flow.Field(key)
		if !isString || !known || s == "" {
			out[key] = value
			continue
		}
		if fn, ok := normalizers[def.Type]; ok {
			out[key] = fn(loc, s)
			continue
		}
		out[key] = s
	}

	return Payload{
		AccountType: app.AccountType,
		Locale:      app.Locale,
		Fields:      out,
	}
}

// normalizePhone returns the E.164 form, e.g. "0412 345 678" in AU becomes
// "+61412345678". Unparseable numbers fall back to their digits.
func normalizePhone(loc locale.Locale, v string) string {
	digits := sanitizer.ExtractDigits(v)
	num, err := phonenumbers.Parse(digits, loc.Region)
	if err != nil {
		return digits
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func normalizeDate(loc locale.Locale, v string) string {
	t, err := time.Parse(loc.Date.Layout(), v)
	if err != nil {
		return v
	}
	return t.Format(isoDate)
}

func normalizeCurrency(_ locale.Locale, v string) string {
	amount, err := decimal.NewFromString(sanitizer.KeepDecimal(v))
	if err != nil {
		return v
	}
	return amount.StringFixed(2)
}
