package r5

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceType(t *testing.T) {
	assert.Equal(t, "DateTime", ChoiceType(&DateTime{}))
	assert.Equal(t, "CodeableConcept", ChoiceType(&CodeableConcept{}))
	assert.Equal(t, "", ChoiceType(nil))
}

func TestMarshalJSON_ChoiceKeepsVariant(t *testing.T) {
	p := &Patient{
		Active:        &Boolean{Value: Ptr(true)},
		Deceased:      &DateTime{Value: Ptr("2020-01-01")},
		MultipleBirth: &Integer{Value: Ptr(int32(2))},
	}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{"value": "2020-01-01"}, got["deceasedDateTime"])
	assert.Equal(t, map[string]any{"value": float64(2)}, got["multipleBirthInteger"])
	assert.Equal(t, map[string]any{"value": true}, got["active"])
	assert.NotContains(t, got, "deceased")
	assert.NotContains(t, got, "multipleBirth")
}

func TestMarshalJSON_StringAndDateTimeDiffer(t *testing.T) {
	s, err := json.Marshal(Extension{Url: Ptr("u"), Value: &String{Value: Ptr("x")}})
	require.NoError(t, err)
	d, err := json.Marshal(Extension{Url: Ptr("u"), Value: &DateTime{Value: Ptr("x")}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"url": "u", "valueString": {"value": "x"}}`, string(s))
	assert.JSONEq(t, `{"url": "u", "valueDateTime": {"value": "x"}}`, string(d))
}

func TestMarshalJSON_UnsetChoiceOmitted(t *testing.T) {
	data, err := json.Marshal(Extension{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	data, err = json.Marshal(Annotation{Author: &Reference{Display: &String{Value: Ptr("Dr A")}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"authorReference": {"display": {"value": "Dr A"}}}`, string(data))
}

func TestMarshalJSON_NestedExtensions(t *testing.T) {
	m := ConceptMap{
		SourceScope: &Uri{Value: Ptr("http://a")},
		DomainResource: DomainResource{Extension: []Extension{
			{Url: Ptr("u"), Value: &Boolean{Value: Ptr(false)}},
		}},
	}
	data, err := json.Marshal(&m)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{"value": "http://a"}, got["sourceScopeUri"])
	require.Len(t, got["extension"], 1)
	assert.Equal(t, map[string]any{"value": false}, got["extension"].([]any)[0].(map[string]any)["valueBoolean"])
}
