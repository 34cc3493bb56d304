package r5

import "github.com/shopspring/decimal"

// Boolean is the FHIR boolean.
type Boolean struct {
	Element
	Value *bool `json:"value,omitempty"`
}

// Integer is the FHIR integer (32 bit).
type Integer struct {
	Element
	Value *int32 `json:"value,omitempty"`
}

// Integer64 is the FHIR integer64.
type Integer64 struct {
	Element
	Value *int64 `json:"value,omitempty"`
}

// UnsignedInt is the FHIR unsignedInt.
type UnsignedInt struct {
	Element
	Value *uint32 `json:"value,omitempty"`
}

// PositiveInt is the FHIR positiveInt.
type PositiveInt struct {
	Element
	Value *uint32 `json:"value,omitempty"`
}

// Decimal is the FHIR decimal. The value keeps the precision of the source
// literal.
type Decimal struct {
	Element
	Value *decimal.Decimal `json:"value,omitempty"`
}

// String is the FHIR string.
type String struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Uri is the FHIR uri.
type Uri struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Url is the FHIR url.
type Url struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Canonical is the FHIR canonical, optionally carrying "|version".
type Canonical struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Code is the FHIR code when no required binding applies.
type Code struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Id is the FHIR id.
type Id struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Oid is the FHIR oid.
type Oid struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Uuid is the FHIR uuid.
type Uuid struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Markdown is the FHIR markdown.
type Markdown struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Base64Binary is the FHIR base64Binary, decoded.
type Base64Binary struct {
	Element
	Value []byte `json:"value,omitempty"`
}

// Instant is the FHIR instant, kept as its literal.
type Instant struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Date is the FHIR date, kept as its literal (partial dates allowed).
type Date struct {
	Element
	Value *string `json:"value,omitempty"`
}

// DateTime is the FHIR dateTime, kept as its literal.
type DateTime struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Time is the FHIR time.
type Time struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Xhtml is the narrative div content.
type Xhtml struct {
	Element
	Value *string `json:"value,omitempty"`
}

// Enum is a code bound to a required value set.
type Enum[E ~string] struct {
	Element
	Value *E `json:"value,omitempty"`
}

// HasValue reports whether the primitive carries a value and not only an
// id or extensions.
func (p *Boolean) HasValue() bool      { return p.Value != nil }
func (p *Integer) HasValue() bool      { return p.Value != nil }
func (p *Integer64) HasValue() bool    { return p.Value != nil }
func (p *UnsignedInt) HasValue() bool  { return p.Value != nil }
func (p *PositiveInt) HasValue() bool  { return p.Value != nil }
func (p *Decimal) HasValue() bool      { return p.Value != nil }
func (p *String) HasValue() bool       { return p.Value != nil }
func (p *Uri) HasValue() bool          { return p.Value != nil }
func (p *Url) HasValue() bool          { return p.Value != nil }
func (p *Canonical) HasValue() bool    { return p.Value != nil }
func (p *Code) HasValue() bool         { return p.Value != nil }
func (p *Id) HasValue() bool           { return p.Value != nil }
func (p *Oid) HasValue() bool          { return p.Value != nil }
func (p *Uuid) HasValue() bool         { return p.Value != nil }
func (p *Markdown) HasValue() bool     { return p.Value != nil }
func (p *Base64Binary) HasValue() bool { return p.Value != nil }
func (p *Instant) HasValue() bool      { return p.Value != nil }
func (p *Date) HasValue() bool         { return p.Value != nil }
func (p *DateTime) HasValue() bool     { return p.Value != nil }
func (p *Time) HasValue() bool         { return p.Value != nil }
func (p *Xhtml) HasValue() bool        { return p.Value != nil }
func (p *Enum[E]) HasValue() bool      { return p.Value != nil }
