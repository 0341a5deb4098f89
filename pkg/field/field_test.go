package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/field"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected field.Type
	}{
		{name: "canonical name", input: "phone", expected: field.TypePhone},
		{name: "camel case", input: "businessNumber", expected: field.TypeBusinessNumber},
		{name: "case insensitive", input: "TAXID", expected: field.TypeTaxID},
		{name: "ssn alias", input: "ssn", expected: field.TypeTaxID},
		{name: "tfn alias", input: "tfn", expected: field.TypeTaxID},
		{name: "ein alias", input: "ein", expected: field.TypeBusinessNumber},
		{name: "abn alias", input: "ABN", expected: field.TypeBusinessNumber},
		{name: "surrounding spaces", input: " toggle ", expected: field.TypeToggle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := field.ParseType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := field.ParseType("signature")
		require.ErrorIs(t, err, field.ErrUnknownType)
	})
}

func TestValues(t *testing.T) {
	t.Parallel()

	values := field.Values{
		"name":   "Jane",
		"blank":  "   ",
		"on":     true,
		"off":    false,
		"number": 42,
	}

	assert.Equal(t, "Jane", values.String("name"))
	assert.Equal(t, "", values.String("on"))
	assert.True(t, values.Bool("on"))
	assert.False(t, values.Bool("name"))

	assert.False(t, values.IsEmpty("name"))
	assert.False(t, values.IsEmpty("blank"))
	assert.True(t, values.IsEmpty("off"))
	assert.True(t, values.IsEmpty("missing"))
	assert.False(t, values.IsEmpty("on"))
	assert.False(t, values.IsEmpty("number"))

	clone := values.Clone()
	clone["name"] = "John"
	assert.Equal(t, "Jane", values.String("name"))

	var nilValues field.Values
	assert.NotNil(t, nilValues.Clone())
}

func TestErrors(t *testing.T) {
	t.Parallel()

	step := field.Step{Fields: []field.Definition{{Key: "a"}, {Key: "b"}, {Key: "c"}}}
	errs := field.Errors{"c": "C is required", "a": "A is required"}

	assert.False(t, errs.Valid())
	assert.True(t, errs.Has("a"))
	assert.False(t, errs.Has("b"))
	assert.Equal(t, []string{"a", "c"}, errs.Keys(step))

	cleared := errs.Clear("a")
	assert.False(t, cleared.Has("a"))
	assert.True(t, errs.Has("a"), "Clear must not mutate the receiver")
	assert.True(t, field.Errors{}.Valid())
	assert.True(t, field.Errors(nil).Clear("x").Valid())
}

func TestFlow(t *testing.T) {
	t.Parallel()

	flow := field.Flow{
		AccountType: field.AccountPersonal,
		Steps: []field.Step{
			{ID: 1, Fields: []field.Definition{
				{Key: "firstName", Type: field.TypeText},
				{Key: "country", Type: field.TypeSelect, Default: "AU", Options: []field.Option{{Label: "Australia", Value: "AU"}}},
			}},
			{ID: 2, Fields: []field.Definition{
				{Key: "paperless", Type: field.TypeToggle, Default: true},
				{Key: "payId", Type: field.TypeToggle},
			}},
		},
	}

	assert.Equal(t, 2, flow.Len())
	assert.Equal(t, 2, flow.Step(2).ID)
	assert.Empty(t, flow.Step(0).Fields)
	assert.Empty(t, flow.Step(3).Fields)

	def, ok := flow.Field("country")
	require.True(t, ok)
	assert.True(t, def.HasOption("AU"))
	assert.False(t, def.HasOption("NZ"))
	assert.Equal(t, "Australia", def.OptionLabel("AU"))
	assert.Equal(t, "NZ", def.OptionLabel("NZ"))

	_, ok = flow.Field("missing")
	assert.False(t, ok)

	assert.Equal(t, field.Values{
		"firstName": "",
		"country":   "AU",
		"paperless": true,
		"payId":     false,
	}, flow.InitialValues())
}

func TestParseAccountType(t *testing.T) {
	t.Parallel()

	got, err := field.ParseAccountType("business")
	require.NoError(t, err)
	assert.Equal(t, field.AccountBusiness, got)

	_, err = field.ParseAccountType("joint")
	assert.Error(t, err)
}
