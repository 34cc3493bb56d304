// Package r4r5 holds the conversion tables from FHIR R4 (4.0.1) to the R5
// model in model/r5.
//
// A Registry owns one processor per datatype, resource and inline component.
// Building it declares every processor first, then binds the tables base
// first (Element, BackboneElement, Resource, DomainResource) so each
// concrete table inherits a resolved chain. The finished registry holds no
// per-conversion state and can be shared between goroutines.
package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
	"github.com/gofhir/converter/node"
)

// Source and target versions of this transition.
const (
	SourceVersion = "4.0.1"
	TargetVersion = r5.Version
)

// Option configures a Registry.
type Option func(*Registry)

// WithStrictFormats makes string based primitives check their literal
// against the FHIR lexical format. By default only the types that are
// parsed into Go values (numbers, booleans, base64) can fail.
func WithStrictFormats() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// Registry converts R4 resources into the R5 model.
type Registry struct {
	strict bool

	boolean      *mapping.Processor[r5.Boolean]
	integer      *mapping.Processor[r5.Integer]
	integer64    *mapping.Processor[r5.Integer64]
	unsignedInt  *mapping.Processor[r5.UnsignedInt]
	positiveInt  *mapping.Processor[r5.PositiveInt]
	decimal      *mapping.Processor[r5.Decimal]
	str          *mapping.Processor[r5.String]
	uri          *mapping.Processor[r5.Uri]
	url          *mapping.Processor[r5.Url]
	canonical    *mapping.Processor[r5.Canonical]
	code         *mapping.Processor[r5.Code]
	id           *mapping.Processor[r5.Id]
	oid          *mapping.Processor[r5.Oid]
	uuid         *mapping.Processor[r5.Uuid]
	markdown     *mapping.Processor[r5.Markdown]
	base64Binary *mapping.Processor[r5.Base64Binary]
	instant      *mapping.Processor[r5.Instant]
	date         *mapping.Processor[r5.Date]
	dateTime     *mapping.Processor[r5.DateTime]
	time         *mapping.Processor[r5.Time]
	xhtml        *mapping.Processor[r5.Xhtml]

	codes codes

	element         *mapping.Processor[r5.Element]
	backbone        *mapping.Processor[r5.BackboneElement]
	resource        *mapping.Processor[r5.BaseResource]
	domain          *mapping.Processor[r5.DomainResource]
	extension       *mapping.Processor[r5.Extension]
	meta            *mapping.Processor[r5.Meta]
	narrative       *mapping.Processor[r5.Narrative]
	coding          *mapping.Processor[r5.Coding]
	codeableConcept *mapping.Processor[r5.CodeableConcept]
	identifier      *mapping.Processor[r5.Identifier]
	humanName       *mapping.Processor[r5.HumanName]
	contactPoint    *mapping.Processor[r5.ContactPoint]
	contactDetail   *mapping.Processor[r5.ContactDetail]
	period          *mapping.Processor[r5.Period]
	quantity        *mapping.Processor[r5.Quantity]
	rng             *mapping.Processor[r5.Range]
	reference       *mapping.Processor[r5.Reference]
	usageContext    *mapping.Processor[r5.UsageContext]
	address         *mapping.Processor[r5.Address]
	attachment      *mapping.Processor[r5.Attachment]
	annotation      *mapping.Processor[r5.Annotation]

	capability capabilityStatement
	codeSystem codeSystem
	conceptMap conceptMap
	valueSet   valueSet
	patient    patient
	basic      *mapping.Processor[r5.Basic]

	dispatcher *mapping.Dispatcher[r5.Resource]
	tables     []mapping.Table
}

// New builds the R4 to R5 registry. It panics only on a malformed table,
// which is a programming error caught by the package tests.
func New(opts ...Option) *Registry {
	r := &Registry{dispatcher: mapping.NewDispatcher[r5.Resource]()}
	for _, opt := range opts {
		opt(r)
	}

	r.declarePrimitives()
	r.declareDatatypes()
	r.declareCapabilityStatement()
	r.declareCodeSystem()
	r.declareConceptMap()
	r.declareValueSet()
	r.declarePatient()

	r.bindBase()
	r.bindPrimitives()
	r.bindCodes()
	r.bindDatatypes()
	r.bindBackbone()
	r.bindResource()
	r.bindCapabilityStatement()
	r.bindCodeSystem()
	r.bindConceptMap()
	r.bindValueSet()
	r.bindPatient()
	r.bindBasic()

	return r
}

// ExtractResource converts an R4 resource root. The resource type is read
// from the root node; an unsupported type yields
// *mapping.UnknownResourceTypeError and no value.
func (r *Registry) ExtractResource(n node.Node) (r5.Resource, error) {
	return r.dispatcher.Extract(n)
}

// Supports reports whether resource type rt can be converted.
func (r *Registry) Supports(rt string) bool {
	return r.dispatcher.Supports(rt)
}

// ResourceTypes lists the convertible resource types.
func (r *Registry) ResourceTypes() []string {
	return r.dispatcher.ResourceTypes()
}

// Tables lists every bound table in binding order.
func (r *Registry) Tables() []mapping.Table {
	out := make([]mapping.Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// Table returns the table named name.
func (r *Registry) Table(name string) (mapping.Table, bool) {
	for _, t := range r.tables {
		if t.TypeName() == name {
			return t, true
		}
	}
	return nil, false
}

// bound records p as a table and returns it.
func bound[T any](r *Registry, p *mapping.Processor[T]) *mapping.Processor[T] {
	r.tables = append(r.tables, p)
	return p
}

// route makes p reachable from ExtractResource.
func route[T any](r *Registry, p *mapping.Processor[T]) {
	mapping.Route(r.dispatcher, p)
}
