package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
)

type codeSystem struct {
	resource        *mapping.Processor[r5.CodeSystem]
	filter          *mapping.Processor[r5.CodeSystemFilter]
	property        *mapping.Processor[r5.CodeSystemProperty]
	concept         *mapping.Processor[r5.CodeSystemConcept]
	designation     *mapping.Processor[r5.Designation]
	conceptProperty *mapping.Processor[r5.CodeSystemConceptProperty]
}

func (r *Registry) declareCodeSystem() {
	c := &r.codeSystem
	c.resource = mapping.Declare[r5.CodeSystem]("CodeSystem")
	c.filter = mapping.Declare[r5.CodeSystemFilter]("CodeSystem.filter")
	c.property = mapping.Declare[r5.CodeSystemProperty]("CodeSystem.property")
	c.concept = mapping.Declare[r5.CodeSystemConcept]("CodeSystem.concept")
	c.designation = mapping.Declare[r5.Designation]("CodeSystem.concept.designation")
	c.conceptProperty = mapping.Declare[r5.CodeSystemConceptProperty]("CodeSystem.concept.property")
}

// designationFields is shared by the CodeSystem and ValueSet designation
// tables. R4 has no additionalUse.
func (r *Registry) designationFields() []mapping.Fields[r5.Designation] {
	return []mapping.Fields[r5.Designation]{
		mapping.One("language", r.code, func(v *r5.Designation) **r5.Code { return &v.Language }),
		mapping.One("use", r.coding, func(v *r5.Designation) **r5.Coding { return &v.Use }),
		mapping.One("value", r.str, func(v *r5.Designation) **r5.String { return &v.Value }),
	}
}

func designationBase(v *r5.Designation) *r5.BackboneElement { return &v.BackboneElement }

func (r *Registry) bindCodeSystem() {
	c := &r.codeSystem

	bound(r, c.filter.Bind(backboneOf(r, func(v *r5.CodeSystemFilter) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.code, func(v *r5.CodeSystemFilter) **r5.Code { return &v.Code }),
		mapping.One("description", r.str, func(v *r5.CodeSystemFilter) **r5.String { return &v.Description }),
		mapping.Many("operator", r.codes.filterOperator, func(v *r5.CodeSystemFilter) *[]r5.Enum[r5.FilterOperator] { return &v.Operator }),
		mapping.One("value", r.str, func(v *r5.CodeSystemFilter) **r5.String { return &v.Value }),
	))

	bound(r, c.property.Bind(backboneOf(r, func(v *r5.CodeSystemProperty) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.code, func(v *r5.CodeSystemProperty) **r5.Code { return &v.Code }),
		mapping.One("uri", r.uri, func(v *r5.CodeSystemProperty) **r5.Uri { return &v.Uri }),
		mapping.One("description", r.str, func(v *r5.CodeSystemProperty) **r5.String { return &v.Description }),
		mapping.One("type", r.codes.propertyType, func(v *r5.CodeSystemProperty) **r5.Enum[r5.PropertyType] { return &v.Type }),
	))

	bound(r, c.designation.Bind(backboneOf(r, designationBase), r.designationFields()...))

	bound(r, c.conceptProperty.Bind(backboneOf(r, func(v *r5.CodeSystemConceptProperty) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.code, func(v *r5.CodeSystemConceptProperty) **r5.Code { return &v.Code }),
		mapping.Choice("value", func(v *r5.CodeSystemConceptProperty) *r5.CodeSystemPropertyValue { return &v.Value },
			mapping.Variant[r5.CodeSystemPropertyValue]("Code", r.code),
			mapping.Variant[r5.CodeSystemPropertyValue]("Coding", r.coding),
			mapping.Variant[r5.CodeSystemPropertyValue]("String", r.str),
			mapping.Variant[r5.CodeSystemPropertyValue]("Integer", r.integer),
			mapping.Variant[r5.CodeSystemPropertyValue]("Boolean", r.boolean),
			mapping.Variant[r5.CodeSystemPropertyValue]("DateTime", r.dateTime),
			mapping.Variant[r5.CodeSystemPropertyValue]("Decimal", r.decimal),
		),
	))

	bound(r, c.concept.Bind(backboneOf(r, func(v *r5.CodeSystemConcept) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.code, func(v *r5.CodeSystemConcept) **r5.Code { return &v.Code }),
		mapping.One("display", r.str, func(v *r5.CodeSystemConcept) **r5.String { return &v.Display }),
		mapping.One("definition", r.str, func(v *r5.CodeSystemConcept) **r5.String { return &v.Definition }),
		mapping.Many("designation", c.designation, func(v *r5.CodeSystemConcept) *[]r5.Designation { return &v.Designation }),
		mapping.Many("property", c.conceptProperty, func(v *r5.CodeSystemConcept) *[]r5.CodeSystemConceptProperty { return &v.Property }),
		mapping.Many("concept", c.concept, func(v *r5.CodeSystemConcept) *[]r5.CodeSystemConcept { return &v.Concept }),
	))

	bound(r, c.resource.Bind(domainOf(r, func(v *r5.CodeSystem) *r5.DomainResource { return &v.DomainResource }),
		mapping.One("url", r.uri, func(v *r5.CodeSystem) **r5.Uri { return &v.Url }),
		mapping.Many("identifier", r.identifier, func(v *r5.CodeSystem) *[]r5.Identifier { return &v.Identifier }),
		mapping.One("version", r.str, func(v *r5.CodeSystem) **r5.String { return &v.Version }),
		mapping.One("name", r.str, func(v *r5.CodeSystem) **r5.String { return &v.Name }),
		mapping.One("title", r.str, func(v *r5.CodeSystem) **r5.String { return &v.Title }),
		mapping.One("status", r.codes.publicationStatus, func(v *r5.CodeSystem) **r5.Enum[r5.PublicationStatus] { return &v.Status }),
		mapping.One("experimental", r.boolean, func(v *r5.CodeSystem) **r5.Boolean { return &v.Experimental }),
		mapping.One("date", r.dateTime, func(v *r5.CodeSystem) **r5.DateTime { return &v.Date }),
		mapping.One("publisher", r.str, func(v *r5.CodeSystem) **r5.String { return &v.Publisher }),
		mapping.Many("contact", r.contactDetail, func(v *r5.CodeSystem) *[]r5.ContactDetail { return &v.Contact }),
		mapping.One("description", r.markdown, func(v *r5.CodeSystem) **r5.Markdown { return &v.Description }),
		mapping.Many("useContext", r.usageContext, func(v *r5.CodeSystem) *[]r5.UsageContext { return &v.UseContext }),
		mapping.Many("jurisdiction", r.codeableConcept, func(v *r5.CodeSystem) *[]r5.CodeableConcept { return &v.Jurisdiction }),
		mapping.One("purpose", r.markdown, func(v *r5.CodeSystem) **r5.Markdown { return &v.Purpose }),
		mapping.One("copyright", r.markdown, func(v *r5.CodeSystem) **r5.Markdown { return &v.Copyright }),
		mapping.One("caseSensitive", r.boolean, func(v *r5.CodeSystem) **r5.Boolean { return &v.CaseSensitive }),
		mapping.One("valueSet", r.canonical, func(v *r5.CodeSystem) **r5.Canonical { return &v.ValueSet }),
		mapping.One("hierarchyMeaning", r.codes.hierarchyMeaning, func(v *r5.CodeSystem) **r5.Enum[r5.CodeSystemHierarchyMeaning] { return &v.HierarchyMeaning }),
		mapping.One("compositional", r.boolean, func(v *r5.CodeSystem) **r5.Boolean { return &v.Compositional }),
		mapping.Removed[r5.CodeSystem]("versionNeeded", "no R5 counterpart; version dependence is stated per include"),
		mapping.One("content", r.codes.contentMode, func(v *r5.CodeSystem) **r5.Enum[r5.CodeSystemContentMode] { return &v.Content }),
		mapping.One("supplements", r.canonical, func(v *r5.CodeSystem) **r5.Canonical { return &v.Supplements }),
		mapping.One("count", r.unsignedInt, func(v *r5.CodeSystem) **r5.UnsignedInt { return &v.Count }),
		mapping.Many("filter", c.filter, func(v *r5.CodeSystem) *[]r5.CodeSystemFilter { return &v.Filter }),
		mapping.Many("property", c.property, func(v *r5.CodeSystem) *[]r5.CodeSystemProperty { return &v.Property }),
		mapping.Many("concept", c.concept, func(v *r5.CodeSystem) *[]r5.CodeSystemConcept { return &v.Concept }),
	))
	route(r, c.resource)
}
