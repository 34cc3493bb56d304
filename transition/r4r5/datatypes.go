package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
)

func (r *Registry) declareDatatypes() {
	r.extension = mapping.Declare[r5.Extension]("Extension")
	r.meta = mapping.Declare[r5.Meta]("Meta")
	r.narrative = mapping.Declare[r5.Narrative]("Narrative")
	r.coding = mapping.Declare[r5.Coding]("Coding")
	r.codeableConcept = mapping.Declare[r5.CodeableConcept]("CodeableConcept")
	r.identifier = mapping.Declare[r5.Identifier]("Identifier")
	r.humanName = mapping.Declare[r5.HumanName]("HumanName")
	r.contactPoint = mapping.Declare[r5.ContactPoint]("ContactPoint")
	r.contactDetail = mapping.Declare[r5.ContactDetail]("ContactDetail")
	r.period = mapping.Declare[r5.Period]("Period")
	r.quantity = mapping.Declare[r5.Quantity]("Quantity")
	r.rng = mapping.Declare[r5.Range]("Range")
	r.reference = mapping.Declare[r5.Reference]("Reference")
	r.usageContext = mapping.Declare[r5.UsageContext]("UsageContext")
	r.address = mapping.Declare[r5.Address]("Address")
	r.attachment = mapping.Declare[r5.Attachment]("Attachment")
	r.annotation = mapping.Declare[r5.Annotation]("Annotation")
}

func (r *Registry) bindDatatypes() {
	r.bindExtension()

	bound(r, r.meta.Bind(elementOf(r, func(v *r5.Meta) *r5.Element { return &v.Element }),
		mapping.One("versionId", r.id, func(v *r5.Meta) **r5.Id { return &v.VersionId }),
		mapping.One("lastUpdated", r.instant, func(v *r5.Meta) **r5.Instant { return &v.LastUpdated }),
		mapping.One("source", r.uri, func(v *r5.Meta) **r5.Uri { return &v.Source }),
		mapping.Many("profile", r.canonical, func(v *r5.Meta) *[]r5.Canonical { return &v.Profile }),
		mapping.Many("security", r.coding, func(v *r5.Meta) *[]r5.Coding { return &v.Security }),
		mapping.Many("tag", r.coding, func(v *r5.Meta) *[]r5.Coding { return &v.Tag }),
	))

	bound(r, r.narrative.Bind(elementOf(r, func(v *r5.Narrative) *r5.Element { return &v.Element }),
		mapping.One("status", r.codes.narrativeStatus, func(v *r5.Narrative) **r5.Enum[r5.NarrativeStatus] { return &v.Status }),
		mapping.One("div", r.xhtml, func(v *r5.Narrative) **r5.Xhtml { return &v.Div }),
	))

	bound(r, r.coding.Bind(elementOf(r, func(v *r5.Coding) *r5.Element { return &v.Element }),
		mapping.One("system", r.uri, func(v *r5.Coding) **r5.Uri { return &v.System }),
		mapping.One("version", r.str, func(v *r5.Coding) **r5.String { return &v.Version }),
		mapping.One("code", r.code, func(v *r5.Coding) **r5.Code { return &v.Code }),
		mapping.One("display", r.str, func(v *r5.Coding) **r5.String { return &v.Display }),
		mapping.One("userSelected", r.boolean, func(v *r5.Coding) **r5.Boolean { return &v.UserSelected }),
	))

	bound(r, r.codeableConcept.Bind(elementOf(r, func(v *r5.CodeableConcept) *r5.Element { return &v.Element }),
		mapping.Many("coding", r.coding, func(v *r5.CodeableConcept) *[]r5.Coding { return &v.Coding }),
		mapping.One("text", r.str, func(v *r5.CodeableConcept) **r5.String { return &v.Text }),
	))

	bound(r, r.identifier.Bind(elementOf(r, func(v *r5.Identifier) *r5.Element { return &v.Element }),
		mapping.One("use", r.codes.identifierUse, func(v *r5.Identifier) **r5.Enum[r5.IdentifierUse] { return &v.Use }),
		mapping.One("type", r.codeableConcept, func(v *r5.Identifier) **r5.CodeableConcept { return &v.Type }),
		mapping.One("system", r.uri, func(v *r5.Identifier) **r5.Uri { return &v.System }),
		mapping.One("value", r.str, func(v *r5.Identifier) **r5.String { return &v.Value }),
		mapping.One("period", r.period, func(v *r5.Identifier) **r5.Period { return &v.Period }),
		mapping.One("assigner", r.reference, func(v *r5.Identifier) **r5.Reference { return &v.Assigner }),
	))

	bound(r, r.humanName.Bind(elementOf(r, func(v *r5.HumanName) *r5.Element { return &v.Element }),
		mapping.One("use", r.codes.nameUse, func(v *r5.HumanName) **r5.Enum[r5.NameUse] { return &v.Use }),
		mapping.One("text", r.str, func(v *r5.HumanName) **r5.String { return &v.Text }),
		mapping.One("family", r.str, func(v *r5.HumanName) **r5.String { return &v.Family }),
		mapping.Many("given", r.str, func(v *r5.HumanName) *[]r5.String { return &v.Given }),
		mapping.Many("prefix", r.str, func(v *r5.HumanName) *[]r5.String { return &v.Prefix }),
		mapping.Many("suffix", r.str, func(v *r5.HumanName) *[]r5.String { return &v.Suffix }),
		mapping.One("period", r.period, func(v *r5.HumanName) **r5.Period { return &v.Period }),
	))

	bound(r, r.contactPoint.Bind(elementOf(r, func(v *r5.ContactPoint) *r5.Element { return &v.Element }),
		mapping.One("system", r.codes.contactPointSystem, func(v *r5.ContactPoint) **r5.Enum[r5.ContactPointSystem] { return &v.System }),
		mapping.One("value", r.str, func(v *r5.ContactPoint) **r5.String { return &v.Value }),
		mapping.One("use", r.codes.contactPointUse, func(v *r5.ContactPoint) **r5.Enum[r5.ContactPointUse] { return &v.Use }),
		mapping.One("rank", r.positiveInt, func(v *r5.ContactPoint) **r5.PositiveInt { return &v.Rank }),
		mapping.One("period", r.period, func(v *r5.ContactPoint) **r5.Period { return &v.Period }),
	))

	bound(r, r.contactDetail.Bind(elementOf(r, func(v *r5.ContactDetail) *r5.Element { return &v.Element }),
		mapping.One("name", r.str, func(v *r5.ContactDetail) **r5.String { return &v.Name }),
		mapping.Many("telecom", r.contactPoint, func(v *r5.ContactDetail) *[]r5.ContactPoint { return &v.Telecom }),
	))

	bound(r, r.period.Bind(elementOf(r, func(v *r5.Period) *r5.Element { return &v.Element }),
		mapping.One("start", r.dateTime, func(v *r5.Period) **r5.DateTime { return &v.Start }),
		mapping.One("end", r.dateTime, func(v *r5.Period) **r5.DateTime { return &v.End }),
	))

	bound(r, r.quantity.Bind(elementOf(r, func(v *r5.Quantity) *r5.Element { return &v.Element }),
		mapping.One("value", r.decimal, func(v *r5.Quantity) **r5.Decimal { return &v.Value }),
		mapping.One("comparator", r.codes.quantityComparator, func(v *r5.Quantity) **r5.Enum[r5.QuantityComparator] { return &v.Comparator }),
		mapping.One("unit", r.str, func(v *r5.Quantity) **r5.String { return &v.Unit }),
		mapping.One("system", r.uri, func(v *r5.Quantity) **r5.Uri { return &v.System }),
		mapping.One("code", r.code, func(v *r5.Quantity) **r5.Code { return &v.Code }),
	))

	bound(r, r.rng.Bind(elementOf(r, func(v *r5.Range) *r5.Element { return &v.Element }),
		mapping.One("low", r.quantity, func(v *r5.Range) **r5.Quantity { return &v.Low }),
		mapping.One("high", r.quantity, func(v *r5.Range) **r5.Quantity { return &v.High }),
	))

	bound(r, r.reference.Bind(elementOf(r, func(v *r5.Reference) *r5.Element { return &v.Element }),
		mapping.One("reference", r.str, func(v *r5.Reference) **r5.String { return &v.Reference }),
		mapping.One("type", r.uri, func(v *r5.Reference) **r5.Uri { return &v.Type }),
		mapping.One("identifier", r.identifier, func(v *r5.Reference) **r5.Identifier { return &v.Identifier }),
		mapping.One("display", r.str, func(v *r5.Reference) **r5.String { return &v.Display }),
	))

	bound(r, r.usageContext.Bind(elementOf(r, func(v *r5.UsageContext) *r5.Element { return &v.Element }),
		mapping.One("code", r.coding, func(v *r5.UsageContext) **r5.Coding { return &v.Code }),
		mapping.Choice("value", func(v *r5.UsageContext) *r5.UsageContextValue { return &v.Value },
			mapping.Variant[r5.UsageContextValue]("CodeableConcept", r.codeableConcept),
			mapping.Variant[r5.UsageContextValue]("Quantity", r.quantity),
			mapping.Variant[r5.UsageContextValue]("Range", r.rng),
			mapping.Variant[r5.UsageContextValue]("Reference", r.reference),
		),
	))

	bound(r, r.address.Bind(elementOf(r, func(v *r5.Address) *r5.Element { return &v.Element }),
		mapping.One("use", r.codes.addressUse, func(v *r5.Address) **r5.Enum[r5.AddressUse] { return &v.Use }),
		mapping.One("type", r.codes.addressType, func(v *r5.Address) **r5.Enum[r5.AddressType] { return &v.Type }),
		mapping.One("text", r.str, func(v *r5.Address) **r5.String { return &v.Text }),
		mapping.Many("line", r.str, func(v *r5.Address) *[]r5.String { return &v.Line }),
		mapping.One("city", r.str, func(v *r5.Address) **r5.String { return &v.City }),
		mapping.One("district", r.str, func(v *r5.Address) **r5.String { return &v.District }),
		mapping.One("state", r.str, func(v *r5.Address) **r5.String { return &v.State }),
		mapping.One("postalCode", r.str, func(v *r5.Address) **r5.String { return &v.PostalCode }),
		mapping.One("country", r.str, func(v *r5.Address) **r5.String { return &v.Country }),
		mapping.One("period", r.period, func(v *r5.Address) **r5.Period { return &v.Period }),
	))

	bound(r, r.attachment.Bind(elementOf(r, func(v *r5.Attachment) *r5.Element { return &v.Element }),
		mapping.One("contentType", r.code, func(v *r5.Attachment) **r5.Code { return &v.ContentType }),
		mapping.One("language", r.code, func(v *r5.Attachment) **r5.Code { return &v.Language }),
		mapping.One("data", r.base64Binary, func(v *r5.Attachment) **r5.Base64Binary { return &v.Data }),
		mapping.One("url", r.url, func(v *r5.Attachment) **r5.Url { return &v.Url }),
		mapping.One("size", r.integer64, func(v *r5.Attachment) **r5.Integer64 { return &v.Size }).
			Restructured("unsignedInt widened to integer64"),
		mapping.One("hash", r.base64Binary, func(v *r5.Attachment) **r5.Base64Binary { return &v.Hash }),
		mapping.One("title", r.str, func(v *r5.Attachment) **r5.String { return &v.Title }),
		mapping.One("creation", r.dateTime, func(v *r5.Attachment) **r5.DateTime { return &v.Creation }),
	))

	bound(r, r.annotation.Bind(elementOf(r, func(v *r5.Annotation) *r5.Element { return &v.Element }),
		mapping.Choice("author", func(v *r5.Annotation) *r5.AnnotationAuthor { return &v.Author },
			mapping.Variant[r5.AnnotationAuthor]("Reference", r.reference),
			mapping.Variant[r5.AnnotationAuthor]("String", r.str),
		),
		mapping.One("time", r.dateTime, func(v *r5.Annotation) **r5.DateTime { return &v.Time }),
		mapping.One("text", r.markdown, func(v *r5.Annotation) **r5.Markdown { return &v.Text }),
	))
}

// bindExtension binds Extension. value[x] covers the R4 datatypes the
// model carries; the others are listed and dropped.
func (r *Registry) bindExtension() {
	value := func(v *r5.Extension) *r5.ExtensionValue { return &v.Value }
	bound(r, r.extension.Bind(elementOf(r, func(v *r5.Extension) *r5.Element { return &v.Element }),
		mapping.Text("url", func(v *r5.Extension) **string { return &v.Url }),
		mapping.Choice("value", value,
			mapping.Variant[r5.ExtensionValue]("Base64Binary", r.base64Binary),
			mapping.Variant[r5.ExtensionValue]("Boolean", r.boolean),
			mapping.Variant[r5.ExtensionValue]("Canonical", r.canonical),
			mapping.Variant[r5.ExtensionValue]("Code", r.code),
			mapping.Variant[r5.ExtensionValue]("Date", r.date),
			mapping.Variant[r5.ExtensionValue]("DateTime", r.dateTime),
			mapping.Variant[r5.ExtensionValue]("Decimal", r.decimal),
			mapping.Variant[r5.ExtensionValue]("Id", r.id),
			mapping.Variant[r5.ExtensionValue]("Instant", r.instant),
			mapping.Variant[r5.ExtensionValue]("Integer", r.integer),
			mapping.Variant[r5.ExtensionValue]("Markdown", r.markdown),
			mapping.Variant[r5.ExtensionValue]("Oid", r.oid),
			mapping.Variant[r5.ExtensionValue]("PositiveInt", r.positiveInt),
			mapping.Variant[r5.ExtensionValue]("String", r.str),
			mapping.Variant[r5.ExtensionValue]("Time", r.time),
			mapping.Variant[r5.ExtensionValue]("UnsignedInt", r.unsignedInt),
			mapping.Variant[r5.ExtensionValue]("Uri", r.uri),
			mapping.Variant[r5.ExtensionValue]("Url", r.url),
			mapping.Variant[r5.ExtensionValue]("Uuid", r.uuid),
			mapping.Variant[r5.ExtensionValue]("Address", r.address),
			mapping.Variant[r5.ExtensionValue]("Annotation", r.annotation),
			mapping.Variant[r5.ExtensionValue]("Attachment", r.attachment),
			mapping.Variant[r5.ExtensionValue]("CodeableConcept", r.codeableConcept),
			mapping.Variant[r5.ExtensionValue]("Coding", r.coding),
			mapping.Variant[r5.ExtensionValue]("ContactDetail", r.contactDetail),
			mapping.Variant[r5.ExtensionValue]("ContactPoint", r.contactPoint),
			mapping.Variant[r5.ExtensionValue]("HumanName", r.humanName),
			mapping.Variant[r5.ExtensionValue]("Identifier", r.identifier),
			mapping.Variant[r5.ExtensionValue]("Meta", r.meta),
			mapping.Variant[r5.ExtensionValue]("Period", r.period),
			mapping.Variant[r5.ExtensionValue]("Quantity", r.quantity),
			mapping.Variant[r5.ExtensionValue]("Range", r.rng),
			mapping.Variant[r5.ExtensionValue]("Reference", r.reference),
			mapping.Variant[r5.ExtensionValue]("UsageContext", r.usageContext),
		),
		mapping.Unsupported[r5.Extension]("value", "datatype not modelled",
			"Age", "Count", "Distance", "Duration", "Money", "Ratio", "SampledData",
			"Signature", "Timing", "Contributor", "DataRequirement", "Expression",
			"ParameterDefinition", "RelatedArtifact", "TriggerDefinition", "Dosage"),
	))
}
