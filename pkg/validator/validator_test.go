package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateRequired(t *testing.T) {
	schema := Schema{
		Body: Fields{
			"sku":  {Kind: String, Required: true, MinLen: 8, MaxLen: 8},
			"name": {Kind: String, Required: true, MaxLen: 50},
		},
	}

	_, err := schema.Validate(Request{Body: map[string]interface{}{}})
	require.Error(t, err)
	assert.Equal(t, `Validation Error: "name" is required, "sku" is required`, err.Error())
}

func TestValidateUnknownField(t *testing.T) {
	schema := Schema{
		Body: Fields{
			"name": {Kind: String},
		},
	}

	_, err := schema.Validate(Request{Body: map[string]interface{}{
		"name":  "mouse",
		"color": "red",
	}})
	require.Error(t, err)
	assert.Equal(t, `Validation Error: "color" is not allowed`, err.Error())
}

func TestValidateStringConstraints(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		value   interface{}
		wantErr string
	}{
		{
			name:    "exact length mismatch",
			rule:    Rule{Kind: String, MinLen: 8, MaxLen: 8},
			value:   "short",
			wantErr: `Validation Error: "field" length must be 8 characters`,
		},
		{
			name:    "too long",
			rule:    Rule{Kind: String, MaxLen: 5},
			value:   "toolongvalue",
			wantErr: `Validation Error: "field" length must be at most 5 characters`,
		},
		{
			name:    "not a string",
			rule:    Rule{Kind: String},
			value:   42.0,
			wantErr: `Validation Error: "field" must be a string`,
		},
		{
			name:    "enum miss",
			rule:    Rule{Kind: String, Enum: []string{"available", "pipeline"}},
			value:   "retired",
			wantErr: `Validation Error: "field" must be one of [available, pipeline]`,
		},
		{
			name:  "enum hit",
			rule:  Rule{Kind: String, Enum: []string{"available", "pipeline"}},
			value: "pipeline",
		},
		{
			name:    "bad URL",
			rule:    Rule{Kind: String, Format: FormatURL},
			value:   "not a url",
			wantErr: `Validation Error: "field" must be a valid URL`,
		},
		{
			name:  "good URL",
			rule:  Rule{Kind: String, Format: FormatURL},
			value: "https://acme.example.com/catalog",
		},
		{
			name:    "bad email",
			rule:    Rule{Kind: String, Format: FormatEmail},
			value:   "nobody@",
			wantErr: `Validation Error: "field" must be a valid e-mail address`,
		},
		{
			name:  "good email",
			rule:  Rule{Kind: String, Format: FormatEmail},
			value: "sales@acme.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := Schema{Body: Fields{"field": tt.rule}}
			_, err := schema.Validate(Request{Body: map[string]interface{}{"field": tt.value}})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateNumericCoercion(t *testing.T) {
	schema := Schema{
		Query: Fields{
			"limit":  {Kind: Integer, Min: floatPtr(1)},
			"offset": {Kind: Integer, Min: floatPtr(0)},
			"price":  {Kind: Number, Min: floatPtr(0)},
		},
	}

	// query values arrive as strings
	validated, err := schema.Validate(Request{Query: map[string]interface{}{
		"limit":  "25",
		"offset": "0",
		"price":  "19.99",
	}})
	require.NoError(t, err)
	assert.Equal(t, 25, validated.Query["limit"])
	assert.Equal(t, 0, validated.Query["offset"])
	assert.Equal(t, 19.99, validated.Query["price"])
}

func TestValidateNumericBounds(t *testing.T) {
	schema := Schema{
		Query: Fields{
			"limit": {Kind: Integer, Min: floatPtr(1)},
		},
	}

	_, err := schema.Validate(Request{Query: map[string]interface{}{"limit": "0"}})
	require.Error(t, err)
	assert.Equal(t, `Validation Error: "limit" must be at least 1`, err.Error())

	_, err = schema.Validate(Request{Query: map[string]interface{}{"limit": "2.5"}})
	require.Error(t, err)
	assert.Equal(t, `Validation Error: "limit" must be an integer`, err.Error())
}

func TestValidateDefaults(t *testing.T) {
	schema := Schema{
		Body: Fields{
			"qTags":  {Kind: StringList, Default: []string{}},
			"stock":  {Kind: Integer, Default: 0},
			"status": {Kind: String, Default: "available"},
		},
	}

	validated, err := schema.Validate(Request{Body: map[string]interface{}{}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, validated.Body["qTags"])
	assert.Equal(t, 0, validated.Body["stock"])
	assert.Equal(t, "available", validated.Body["status"])
}

func TestValidateAbsentOptionalWithoutDefault(t *testing.T) {
	schema := Schema{
		Body: Fields{
			"name": {Kind: String, MaxLen: 50},
		},
	}

	validated, err := schema.Validate(Request{Body: map[string]interface{}{}})
	require.NoError(t, err)
	_, present := validated.Body["name"]
	assert.False(t, present, "absent optional fields must stay absent")
}

func TestValidateDate(t *testing.T) {
	schema := Schema{
		Body: Fields{
			"launchDate": {Kind: Date},
		},
	}

	validated, err := schema.Validate(Request{Body: map[string]interface{}{
		"launchDate": "2024-03-15",
	}})
	require.NoError(t, err)
	parsed, ok := validated.Body["launchDate"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())

	_, err = schema.Validate(Request{Body: map[string]interface{}{
		"launchDate": "15/03/2024",
	}})
	require.Error(t, err)
	assert.Equal(t, `Validation Error: "launchDate" must be a valid date`, err.Error())
}

func TestValidateListMap(t *testing.T) {
	schema := Schema{
		Body: Fields{
			"attributes": {Kind: ListMap},
		},
	}

	// decoded JSON bodies carry map[string]interface{} values
	validated, err := schema.Validate(Request{Body: map[string]interface{}{
		"attributes": map[string]interface{}{
			"color": []interface{}{"black", "silver"},
		},
	}})
	require.NoError(t, err)
	attrs, ok := validated.Body["attributes"].(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{"black", "silver"}, attrs["color"])

	_, err = schema.Validate(Request{Body: map[string]interface{}{
		"attributes": map[string]interface{}{
			"color": []interface{}{"black", 3.0},
		},
	}})
	require.Error(t, err)
	assert.Equal(t, `Validation Error: "attributes" must map keys to arrays of strings`, err.Error())
}

func TestValidateAggregatesAcrossSections(t *testing.T) {
	schema := Schema{
		Params: Fields{
			"sku": {Kind: String, Required: true, MinLen: 8, MaxLen: 8},
		},
		Body: Fields{
			"price": {Kind: Number, Required: true},
		},
	}

	_, err := schema.Validate(Request{
		Params: map[string]interface{}{"sku": "bad"},
		Body:   map[string]interface{}{},
	})
	require.Error(t, err)
	assert.Equal(t, `Validation Error: "price" is required, "sku" length must be 8 characters`, err.Error())
}

func TestValidateNilSectionPassesThrough(t *testing.T) {
	schema := Schema{
		Params: Fields{
			"sku": {Kind: String},
		},
	}

	validated, err := schema.Validate(Request{
		Params: map[string]interface{}{"sku": "HP-02178"},
		Query:  map[string]interface{}{"anything": "goes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "goes", validated.Query["anything"])
}
