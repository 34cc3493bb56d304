package r5

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Choice elements are encoded under their base name plus the type of the
// chosen variant, e.g. "deceasedBoolean" or "valueCodeableConcept".

type choiceField struct {
	base  string
	value any
}

// ChoiceType returns the FHIR type name of a choice variant, e.g.
// "DateTime" for *DateTime, or "" for nil.
func ChoiceType(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// marshalChoices encodes v, whose own encoding leaves the choice fields
// out, and appends each set choice under its typed name.
func marshalChoices(v any, choices ...choiceField) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	empty := len(data) == 2
	for _, c := range choices {
		if c.value == nil {
			continue
		}
		if rv := reflect.ValueOf(c.value); rv.Kind() == reflect.Pointer && rv.IsNil() {
			continue
		}
		value, err := json.Marshal(c.value)
		if err != nil {
			return nil, err
		}
		if !empty {
			buf.WriteByte(',')
		}
		empty = false
		key, _ := json.Marshal(c.base + ChoiceType(c.value))
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (e Extension) MarshalJSON() ([]byte, error) {
	type plain Extension
	return marshalChoices(plain(e), choiceField{"value", e.Value})
}

func (u UsageContext) MarshalJSON() ([]byte, error) {
	type plain UsageContext
	return marshalChoices(plain(u), choiceField{"value", u.Value})
}

func (a Annotation) MarshalJSON() ([]byte, error) {
	type plain Annotation
	return marshalChoices(plain(a), choiceField{"author", a.Author})
}

func (p Patient) MarshalJSON() ([]byte, error) {
	type plain Patient
	return marshalChoices(plain(p),
		choiceField{"deceased", p.Deceased},
		choiceField{"multipleBirth", p.MultipleBirth})
}

func (p CodeSystemConceptProperty) MarshalJSON() ([]byte, error) {
	type plain CodeSystemConceptProperty
	return marshalChoices(plain(p), choiceField{"value", p.Value})
}

func (p ValueSetExpansionParameter) MarshalJSON() ([]byte, error) {
	type plain ValueSetExpansionParameter
	return marshalChoices(plain(p), choiceField{"value", p.Value})
}

func (m ConceptMap) MarshalJSON() ([]byte, error) {
	type plain ConceptMap
	return marshalChoices(plain(m),
		choiceField{"sourceScope", m.SourceScope},
		choiceField{"targetScope", m.TargetScope})
}

func (d ConceptMapDependsOn) MarshalJSON() ([]byte, error) {
	type plain ConceptMapDependsOn
	return marshalChoices(plain(d), choiceField{"value", d.Value})
}
