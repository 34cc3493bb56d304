// Package jsonnode adapts FHIR JSON documents to the node.Node contract.
//
// Object members keep their document order. Arrays expand into same-named
// siblings. A primitive's "_name" member is emitted directly after the value
// it annotates, item by item for arrays, so converters can merge it onto the
// value they have just assigned. Null values are skipped, except that an
// array item whose value is null but whose carrier is present yields an empty
// value node so positions stay aligned.
package jsonnode

import (
	"errors"
	"fmt"
	"io"

	"github.com/buger/jsonparser"

	"github.com/gofhir/converter/node"
)

const resourceTypeKey = "resourceType"

// Parse decodes one FHIR JSON resource into a node tree whose root is named
// after its resourceType.
func Parse(data []byte) (*node.Tree, error) {
	rt, err := jsonparser.GetString(data, resourceTypeKey)
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, fmt.Errorf("jsonnode: reading resourceType: %w", err)
	}
	return decodeObject(rt, data)
}

// ParseReader reads r fully and decodes it with Parse.
func ParseReader(r io.Reader) (*node.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("jsonnode: read: %w", err)
	}
	return Parse(data)
}

// ResourceType returns the resourceType member of a JSON resource without
// decoding the rest of it.
func ResourceType(data []byte) (string, error) {
	rt, err := jsonparser.GetString(data, resourceTypeKey)
	if err != nil {
		return "", fmt.Errorf("jsonnode: resourceType: %w", err)
	}
	return rt, nil
}

type member struct {
	key   string
	value []byte
	typ   jsonparser.ValueType
}

func decodeObject(name string, data []byte) (*node.Tree, error) {
	var members []member
	err := jsonparser.ObjectEach(data, func(k, v []byte, typ jsonparser.ValueType, _ int) error {
		members = append(members, member{key: string(k), value: v, typ: typ})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("jsonnode: %s: %w", describe(name), err)
	}

	carriers := make(map[string]*member)
	present := make(map[string]bool, len(members))
	for i := range members {
		m := &members[i]
		if node.IsCarrier(m.key) {
			carriers[m.key[1:]] = m
		} else {
			present[m.key] = true
		}
	}

	t := node.Element(name)
	for i := range members {
		m := &members[i]
		switch {
		case m.key == resourceTypeKey:
			rt, err := jsonparser.ParseString(m.value)
			if err != nil {
				return nil, fmt.Errorf("jsonnode: %s.resourceType: %w", describe(name), err)
			}
			t.SetResourceType(rt)
		case node.IsCarrier(m.key):
			if present[m.key[1:]] {
				continue
			}
			if err := emit(t, m.key[1:], nil, m); err != nil {
				return nil, err
			}
		default:
			if err := emit(t, m.key, m, carriers[m.key]); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// emit appends the nodes for one member and its optional carrier. Either may
// be nil but not both.
func emit(t *node.Tree, name string, value, carrier *member) error {
	if (value != nil && value.typ == jsonparser.Array) || (carrier != nil && carrier.typ == jsonparser.Array) {
		return emitArray(t, name, value, carrier)
	}
	if value != nil && value.typ != jsonparser.Null {
		n, err := decodeValue(name, value.value, value.typ)
		if err != nil {
			return err
		}
		t.Add(n)
	}
	if carrier != nil && carrier.typ != jsonparser.Null {
		n, err := decodeValue(node.CarrierName(name), carrier.value, carrier.typ)
		if err != nil {
			return err
		}
		t.Add(n)
	}
	return nil
}

type item struct {
	value []byte
	typ   jsonparser.ValueType
}

func emitArray(t *node.Tree, name string, value, carrier *member) error {
	values, err := arrayItems(name, value)
	if err != nil {
		return err
	}
	extras, err := arrayItems(node.CarrierName(name), carrier)
	if err != nil {
		return err
	}

	for i := 0; i < len(values) || i < len(extras); i++ {
		hasValue := i < len(values) && values[i].typ != jsonparser.Null
		hasExtra := i < len(extras) && extras[i].typ != jsonparser.Null
		switch {
		case hasValue:
			n, err := decodeValue(name, values[i].value, values[i].typ)
			if err != nil {
				return err
			}
			t.Add(n)
		case hasExtra:
			t.Add(node.Element(name))
		}
		if hasExtra {
			n, err := decodeValue(node.CarrierName(name), extras[i].value, extras[i].typ)
			if err != nil {
				return err
			}
			t.Add(n)
		}
	}
	return nil
}

func arrayItems(name string, m *member) ([]item, error) {
	if m == nil || m.typ == jsonparser.Null {
		return nil, nil
	}
	if m.typ != jsonparser.Array {
		return []item{{value: m.value, typ: m.typ}}, nil
	}
	var (
		items   []item
		itemErr error
	)
	_, err := jsonparser.ArrayEach(m.value, func(v []byte, typ jsonparser.ValueType, _ int, err error) {
		if err != nil && itemErr == nil {
			itemErr = err
			return
		}
		items = append(items, item{value: v, typ: typ})
	})
	if err == nil {
		err = itemErr
	}
	if err != nil {
		return nil, fmt.Errorf("jsonnode: %s: %w", name, err)
	}
	return items, nil
}

func decodeValue(name string, v []byte, typ jsonparser.ValueType) (node.Node, error) {
	switch typ {
	case jsonparser.String:
		s, err := jsonparser.ParseString(v)
		if err != nil {
			return nil, fmt.Errorf("jsonnode: %s: %w", name, err)
		}
		return node.Value(name, s), nil
	case jsonparser.Number, jsonparser.Boolean:
		// Literal kept verbatim so decimals keep their precision.
		return node.Value(name, string(v)), nil
	case jsonparser.Object:
		return decodeObject(name, v)
	default:
		return nil, fmt.Errorf("jsonnode: %s: unexpected %s value", name, typ)
	}
}

func describe(name string) string {
	if name == "" {
		return "(root)"
	}
	return name
}
