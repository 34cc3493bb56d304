// Package xmlnode adapts FHIR XML documents to the node.Node contract.
//
// The value attribute of a primitive becomes its Text and the primitive's id
// and extensions become its children, so no carrier siblings are produced.
// The id and url attributes surface as leading children. Narrative div
// elements are captured verbatim as XHTML text, and resource wrappers such as
// contained or entry.resource are unwrapped into a resource-typed node.
package xmlnode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/gofhir/converter/node"
)

// XHTMLNamespace is the namespace of narrative div elements.
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// Parse decodes one FHIR XML resource.
func Parse(r io.Reader) (*node.Tree, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("xmlnode: no root element")
			}
			return nil, fmt.Errorf("xmlnode: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return decodeElement(dec, se)
		}
	}
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*node.Tree, error) {
	return Parse(bytes.NewReader(data))
}

func decodeElement(dec *xml.Decoder, se xml.StartElement) (*node.Tree, error) {
	name := se.Name.Local
	if name == "div" && se.Name.Space == XHTMLNamespace {
		return captureXHTML(dec, se)
	}

	t := node.Element(name)
	if isResourceName(name) {
		t.SetResourceType(name)
	}
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "value":
			t.SetText(attr.Value)
		case "id", "url":
			t.Add(node.Value(attr.Name.Local, attr.Value))
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("xmlnode: %s: %w", name, err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, tok)
			if err != nil {
				return nil, err
			}
			t.Add(child)
		case xml.EndElement:
			return unwrap(t), nil
		}
	}
}

// unwrap turns <contained><Patient>...</Patient></contained> into a single
// node named contained that carries the resource type and the resource's
// children.
func unwrap(t *node.Tree) *node.Tree {
	if t.ResourceType() != "" {
		return t
	}
	children := t.Children()
	if len(children) != 1 {
		return t
	}
	inner := children[0]
	if inner.ResourceType() == "" {
		return t
	}
	return node.Contained(t.Name(), inner.ResourceType(), inner.Children()...)
}

func captureXHTML(dec *xml.Decoder, se xml.StartElement) (*node.Tree, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	start := plain(se).(xml.StartElement)
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: XHTMLNamespace})
	if err := enc.EncodeToken(start); err != nil {
		return nil, fmt.Errorf("xmlnode: div: %w", err)
	}
	for depth := 1; depth > 0; {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("xmlnode: div: %w", err)
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
		if err := enc.EncodeToken(plain(tok)); err != nil {
			return nil, fmt.Errorf("xmlnode: div: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("xmlnode: div: %w", err)
	}
	return node.Value("div", buf.String()), nil
}

// plain drops namespace qualification so the captured markup declares the
// XHTML namespace once, on the div.
func plain(tok xml.Token) xml.Token {
	switch t := tok.(type) {
	case xml.StartElement:
		t = t.Copy()
		t.Name.Space = ""
		attrs := t.Attr[:0]
		for _, a := range t.Attr {
			if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
				continue
			}
			attrs = append(attrs, a)
		}
		t.Attr = attrs
		return t
	case xml.EndElement:
		t.Name.Space = ""
		return t
	}
	return xml.CopyToken(tok)
}

// Resource names are the only upper-case element names in FHIR XML.
func isResourceName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
