package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
)

type valueSet struct {
	resource    *mapping.Processor[r5.ValueSet]
	compose     *mapping.Processor[r5.ValueSetCompose]
	include     *mapping.Processor[r5.ValueSetInclude]
	concept     *mapping.Processor[r5.ValueSetConcept]
	designation *mapping.Processor[r5.Designation]
	filter      *mapping.Processor[r5.ValueSetFilter]
	expansion   *mapping.Processor[r5.ValueSetExpansion]
	parameter   *mapping.Processor[r5.ValueSetExpansionParameter]
	contains    *mapping.Processor[r5.ValueSetContains]
}

func (r *Registry) declareValueSet() {
	v := &r.valueSet
	v.resource = mapping.Declare[r5.ValueSet]("ValueSet")
	v.compose = mapping.Declare[r5.ValueSetCompose]("ValueSet.compose")
	v.include = mapping.Declare[r5.ValueSetInclude]("ValueSet.compose.include")
	v.concept = mapping.Declare[r5.ValueSetConcept]("ValueSet.compose.include.concept")
	v.designation = mapping.Declare[r5.Designation]("ValueSet.compose.include.concept.designation")
	v.filter = mapping.Declare[r5.ValueSetFilter]("ValueSet.compose.include.filter")
	v.expansion = mapping.Declare[r5.ValueSetExpansion]("ValueSet.expansion")
	v.parameter = mapping.Declare[r5.ValueSetExpansionParameter]("ValueSet.expansion.parameter")
	v.contains = mapping.Declare[r5.ValueSetContains]("ValueSet.expansion.contains")
}

func (r *Registry) bindValueSet() {
	vs := &r.valueSet

	bound(r, vs.designation.Bind(backboneOf(r, designationBase), r.designationFields()...))

	bound(r, vs.concept.Bind(backboneOf(r, func(v *r5.ValueSetConcept) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.code, func(v *r5.ValueSetConcept) **r5.Code { return &v.Code }),
		mapping.One("display", r.str, func(v *r5.ValueSetConcept) **r5.String { return &v.Display }),
		mapping.Many("designation", vs.designation, func(v *r5.ValueSetConcept) *[]r5.Designation { return &v.Designation }),
	))

	bound(r, vs.filter.Bind(backboneOf(r, func(v *r5.ValueSetFilter) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("property", r.code, func(v *r5.ValueSetFilter) **r5.Code { return &v.Property }),
		mapping.One("op", r.codes.filterOperator, func(v *r5.ValueSetFilter) **r5.Enum[r5.FilterOperator] { return &v.Op }),
		mapping.One("value", r.str, func(v *r5.ValueSetFilter) **r5.String { return &v.Value }),
	))

	bound(r, vs.include.Bind(backboneOf(r, func(v *r5.ValueSetInclude) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("system", r.uri, func(v *r5.ValueSetInclude) **r5.Uri { return &v.System }),
		mapping.One("version", r.str, func(v *r5.ValueSetInclude) **r5.String { return &v.Version }),
		mapping.Many("concept", vs.concept, func(v *r5.ValueSetInclude) *[]r5.ValueSetConcept { return &v.Concept }),
		mapping.Many("filter", vs.filter, func(v *r5.ValueSetInclude) *[]r5.ValueSetFilter { return &v.Filter }),
		mapping.Many("valueSet", r.canonical, func(v *r5.ValueSetInclude) *[]r5.Canonical { return &v.ValueSet }),
	))

	bound(r, vs.compose.Bind(backboneOf(r, func(v *r5.ValueSetCompose) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("lockedDate", r.date, func(v *r5.ValueSetCompose) **r5.Date { return &v.LockedDate }),
		mapping.One("inactive", r.boolean, func(v *r5.ValueSetCompose) **r5.Boolean { return &v.Inactive }),
		mapping.Many("include", vs.include, func(v *r5.ValueSetCompose) *[]r5.ValueSetInclude { return &v.Include }),
		mapping.Many("exclude", vs.include, func(v *r5.ValueSetCompose) *[]r5.ValueSetInclude { return &v.Exclude }),
	))

	bound(r, vs.parameter.Bind(backboneOf(r, func(v *r5.ValueSetExpansionParameter) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("name", r.str, func(v *r5.ValueSetExpansionParameter) **r5.String { return &v.Name }),
		mapping.Choice("value", func(v *r5.ValueSetExpansionParameter) *r5.ValueSetParameterValue { return &v.Value },
			mapping.Variant[r5.ValueSetParameterValue]("String", r.str),
			mapping.Variant[r5.ValueSetParameterValue]("Boolean", r.boolean),
			mapping.Variant[r5.ValueSetParameterValue]("Integer", r.integer),
			mapping.Variant[r5.ValueSetParameterValue]("Decimal", r.decimal),
			mapping.Variant[r5.ValueSetParameterValue]("Uri", r.uri),
			mapping.Variant[r5.ValueSetParameterValue]("Code", r.code),
			mapping.Variant[r5.ValueSetParameterValue]("DateTime", r.dateTime),
		),
	))

	bound(r, vs.contains.Bind(backboneOf(r, func(v *r5.ValueSetContains) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("system", r.uri, func(v *r5.ValueSetContains) **r5.Uri { return &v.System }),
		mapping.One("abstract", r.boolean, func(v *r5.ValueSetContains) **r5.Boolean { return &v.Abstract }),
		mapping.One("inactive", r.boolean, func(v *r5.ValueSetContains) **r5.Boolean { return &v.Inactive }),
		mapping.One("version", r.str, func(v *r5.ValueSetContains) **r5.String { return &v.Version }),
		mapping.One("code", r.code, func(v *r5.ValueSetContains) **r5.Code { return &v.Code }),
		mapping.One("display", r.str, func(v *r5.ValueSetContains) **r5.String { return &v.Display }),
		mapping.Many("designation", vs.designation, func(v *r5.ValueSetContains) *[]r5.Designation { return &v.Designation }),
		mapping.Many("contains", vs.contains, func(v *r5.ValueSetContains) *[]r5.ValueSetContains { return &v.Contains }),
	))

	bound(r, vs.expansion.Bind(backboneOf(r, func(v *r5.ValueSetExpansion) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("identifier", r.uri, func(v *r5.ValueSetExpansion) **r5.Uri { return &v.Identifier }),
		mapping.One("timestamp", r.dateTime, func(v *r5.ValueSetExpansion) **r5.DateTime { return &v.Timestamp }),
		mapping.One("total", r.integer, func(v *r5.ValueSetExpansion) **r5.Integer { return &v.Total }),
		mapping.One("offset", r.integer, func(v *r5.ValueSetExpansion) **r5.Integer { return &v.Offset }),
		mapping.Many("parameter", vs.parameter, func(v *r5.ValueSetExpansion) *[]r5.ValueSetExpansionParameter { return &v.Parameter }),
		mapping.Many("contains", vs.contains, func(v *r5.ValueSetExpansion) *[]r5.ValueSetContains { return &v.Contains }),
	))

	bound(r, vs.resource.Bind(domainOf(r, func(v *r5.ValueSet) *r5.DomainResource { return &v.DomainResource }),
		mapping.One("url", r.uri, func(v *r5.ValueSet) **r5.Uri { return &v.Url }),
		mapping.Many("identifier", r.identifier, func(v *r5.ValueSet) *[]r5.Identifier { return &v.Identifier }),
		mapping.One("version", r.str, func(v *r5.ValueSet) **r5.String { return &v.Version }),
		mapping.One("name", r.str, func(v *r5.ValueSet) **r5.String { return &v.Name }),
		mapping.One("title", r.str, func(v *r5.ValueSet) **r5.String { return &v.Title }),
		mapping.One("status", r.codes.publicationStatus, func(v *r5.ValueSet) **r5.Enum[r5.PublicationStatus] { return &v.Status }),
		mapping.One("experimental", r.boolean, func(v *r5.ValueSet) **r5.Boolean { return &v.Experimental }),
		mapping.One("date", r.dateTime, func(v *r5.ValueSet) **r5.DateTime { return &v.Date }),
		mapping.One("publisher", r.str, func(v *r5.ValueSet) **r5.String { return &v.Publisher }),
		mapping.Many("contact", r.contactDetail, func(v *r5.ValueSet) *[]r5.ContactDetail { return &v.Contact }),
		mapping.One("description", r.markdown, func(v *r5.ValueSet) **r5.Markdown { return &v.Description }),
		mapping.Many("useContext", r.usageContext, func(v *r5.ValueSet) *[]r5.UsageContext { return &v.UseContext }),
		mapping.Many("jurisdiction", r.codeableConcept, func(v *r5.ValueSet) *[]r5.CodeableConcept { return &v.Jurisdiction }),
		mapping.One("immutable", r.boolean, func(v *r5.ValueSet) **r5.Boolean { return &v.Immutable }),
		mapping.One("purpose", r.markdown, func(v *r5.ValueSet) **r5.Markdown { return &v.Purpose }),
		mapping.One("copyright", r.markdown, func(v *r5.ValueSet) **r5.Markdown { return &v.Copyright }),
		mapping.One("compose", vs.compose, func(v *r5.ValueSet) **r5.ValueSetCompose { return &v.Compose }),
		mapping.One("expansion", vs.expansion, func(v *r5.ValueSet) **r5.ValueSetExpansion { return &v.Expansion }),
	))
	route(r, vs.resource)
}
