package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/onboarding/pkg/locale"
)

func TestMask_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mask     locale.Mask
		digits   string
		expected string
	}{
		{name: "empty input", mask: "### ### ###", digits: "", expected: ""},
		{name: "within first group", mask: "### ### ###", digits: "12", expected: "12"},
		{name: "group boundary without next digit", mask: "### ### ###", digits: "123", expected: "123"},
		{name: "separator after boundary", mask: "### ### ###", digits: "1234", expected: "123 4"},
		{name: "complete", mask: "### ### ###", digits: "123456789", expected: "123 456 789"},
		{name: "overflow dropped", mask: "### ### ###", digits: "1234567890", expected: "123 456 789"},
		{name: "leading literal", mask: "(###) ###-####", digits: "4", expected: "(4"},
		{name: "mixed literals", mask: "(###) ###-####", digits: "4155", expected: "(415) 5"},
		{name: "full us phone", mask: "(###) ###-####", digits: "4155550123", expected: "(415) 555-0123"},
		{name: "non digits skipped", mask: "##/##/####", digits: "1a2b3", expected: "12/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.mask.Apply(tt.digits))
		})
	}
}

func TestMask_Capacity(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 11, locale.Mask("## ### ### ###").Capacity())
	assert.Equal(t, 9, locale.Mask("###-##-####").Capacity())
	assert.Equal(t, 0, locale.Mask("--").Capacity())
}

func TestPhoneRules_MaskFor(t *testing.T) {
	t.Parallel()

	rules := locale.PhoneRules{
		MaxDigits: 10,
		Default:   "## #### ####",
		Variants: []locale.PhoneVariant{
			{Prefixes: []string{"04", "05"}, Mask: "#### ### ###"},
			{Prefixes: []string{"1300"}, Mask: "#### ### ###"},
		},
	}

	assert.Equal(t, locale.Mask("#### ### ###"), rules.MaskFor("0412"))
	assert.Equal(t, locale.Mask("#### ### ###"), rules.MaskFor("0512345678"))
	assert.Equal(t, locale.Mask("## #### ####"), rules.MaskFor("0212345678"))
	assert.Equal(t, locale.Mask("## #### ####"), rules.MaskFor("0"))
	assert.Equal(t, locale.Mask("#### ### ###"), rules.MaskFor("1300123456"))
}

func TestBuiltinLocales(t *testing.T) {
	t.Parallel()

	reg, err := locale.Default()
	require.NoError(t, err)
	assert.Equal(t, []string{"AU", "US"}, reg.Codes())

	au, err := locale.Lookup("au")
	require.NoError(t, err)
	assert.Equal(t, "AU", au.Code)
	assert.Equal(t, language.MustParse("en-AU"), au.Tag())
	assert.Equal(t, 9, au.TaxID.Digits())
	assert.Equal(t, 11, au.BusinessNumber.Digits())
	assert.Equal(t, "ABN", au.BusinessNumber.Name)
	assert.Equal(t, "02/01/2006", au.Date.Layout())

	us := locale.MustLookup("US")
	assert.Equal(t, 9, us.BusinessNumber.Digits())
	assert.Equal(t, "SSN", us.TaxID.Name)
	assert.Equal(t, "01/02/2006", us.Date.Layout())

	_, err = locale.Lookup("NZ")
	require.ErrorIs(t, err, locale.ErrUnknownLocale)
	assert.Panics(t, func() { locale.MustLookup("NZ") })
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	valid := func(override string) string {
		return `
locales:
  - code: XX
    language: en
    phone:
      max_digits: 10
      default: "## #### ####"
    tax_id: {name: T, mask: "### ### ###"}
    business_number: {name: B, mask: "## ### ### ###"}
    date: {mask: "##/##/####", order: DMY}
    currency: {code: XXX, symbol: "$", max_integer_digits: 12}
` + override
	}

	t.Run("valid baseline", func(t *testing.T) {
		t.Parallel()
		reg, err := locale.Parse([]byte(valid("")))
		require.NoError(t, err)
		l, err := reg.Lookup("xx")
		require.NoError(t, err)
		assert.Equal(t, ".", l.Currency.Decimal)
	})

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "locales: ["},
		{name: "empty catalog", content: "locales: []"},
		{name: "duplicate code", content: valid("") + `
  - code: xx
    language: en
    phone: {max_digits: 10, default: "##########"}
    tax_id: {mask: "#########"}
    business_number: {mask: "#########"}
    date: {mask: "########", order: MDY}
    currency: {max_integer_digits: 12}
`},
		{name: "digit used as separator", content: `
locales:
  - code: XX
    language: en
    phone: {max_digits: 10, default: "0# #### ####"}
    tax_id: {mask: "#########"}
    business_number: {mask: "#########"}
    date: {mask: "########", order: DMY}
    currency: {max_integer_digits: 12}
`},
		{name: "bad date order", content: `
locales:
  - code: XX
    language: en
    phone: {max_digits: 10, default: "##########"}
    tax_id: {mask: "#########"}
    business_number: {mask: "#########"}
    date: {mask: "########", order: YMD}
    currency: {max_integer_digits: 12}
`},
		{name: "phone mask longer than max digits", content: `
locales:
  - code: XX
    language: en
    phone: {max_digits: 8, default: "##########"}
    tax_id: {mask: "#########"}
    business_number: {mask: "#########"}
    date: {mask: "########", order: DMY}
    currency: {max_integer_digits: 12}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := locale.Parse([]byte(tt.content))
			require.ErrorIs(t, err, locale.ErrInvalidCatalog)
		})
	}
}
