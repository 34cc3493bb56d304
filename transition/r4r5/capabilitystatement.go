package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
)

type capabilityStatement struct {
	resource            *mapping.Processor[r5.CapabilityStatement]
	software            *mapping.Processor[r5.CapabilityStatementSoftware]
	implementation      *mapping.Processor[r5.CapabilityStatementImpl]
	rest                *mapping.Processor[r5.CapabilityStatementRest]
	security            *mapping.Processor[r5.CapabilityStatementRestSecurity]
	restResource        *mapping.Processor[r5.CapabilityStatementRestResource]
	resourceInteraction *mapping.Processor[r5.CapabilityStatementRestResourceInteraction]
	interaction         *mapping.Processor[r5.CapabilityStatementRestInteraction]
	searchParam         *mapping.Processor[r5.CapabilityStatementSearchParam]
	operation           *mapping.Processor[r5.CapabilityStatementOperation]
	messaging           *mapping.Processor[r5.CapabilityStatementMessaging]
	endpoint            *mapping.Processor[r5.CapabilityStatementMessagingEndpoint]
	supportedMessage    *mapping.Processor[r5.CapabilityStatementMessagingSupportedMessage]
	document            *mapping.Processor[r5.CapabilityStatementDocument]
}

func (r *Registry) declareCapabilityStatement() {
	c := &r.capability
	c.resource = mapping.Declare[r5.CapabilityStatement]("CapabilityStatement")
	c.software = mapping.Declare[r5.CapabilityStatementSoftware]("CapabilityStatement.software")
	c.implementation = mapping.Declare[r5.CapabilityStatementImpl]("CapabilityStatement.implementation")
	c.rest = mapping.Declare[r5.CapabilityStatementRest]("CapabilityStatement.rest")
	c.security = mapping.Declare[r5.CapabilityStatementRestSecurity]("CapabilityStatement.rest.security")
	c.restResource = mapping.Declare[r5.CapabilityStatementRestResource]("CapabilityStatement.rest.resource")
	c.resourceInteraction = mapping.Declare[r5.CapabilityStatementRestResourceInteraction]("CapabilityStatement.rest.resource.interaction")
	c.interaction = mapping.Declare[r5.CapabilityStatementRestInteraction]("CapabilityStatement.rest.interaction")
	c.searchParam = mapping.Declare[r5.CapabilityStatementSearchParam]("CapabilityStatement.rest.resource.searchParam")
	c.operation = mapping.Declare[r5.CapabilityStatementOperation]("CapabilityStatement.rest.resource.operation")
	c.messaging = mapping.Declare[r5.CapabilityStatementMessaging]("CapabilityStatement.messaging")
	c.endpoint = mapping.Declare[r5.CapabilityStatementMessagingEndpoint]("CapabilityStatement.messaging.endpoint")
	c.supportedMessage = mapping.Declare[r5.CapabilityStatementMessagingSupportedMessage]("CapabilityStatement.messaging.supportedMessage")
	c.document = mapping.Declare[r5.CapabilityStatementDocument]("CapabilityStatement.document")
}

func (r *Registry) bindCapabilityStatement() {
	c := &r.capability

	bound(r, c.software.Bind(backboneOf(r, func(v *r5.CapabilityStatementSoftware) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("name", r.str, func(v *r5.CapabilityStatementSoftware) **r5.String { return &v.Name }),
		mapping.One("version", r.str, func(v *r5.CapabilityStatementSoftware) **r5.String { return &v.Version }),
		mapping.One("releaseDate", r.dateTime, func(v *r5.CapabilityStatementSoftware) **r5.DateTime { return &v.ReleaseDate }),
	))

	bound(r, c.implementation.Bind(backboneOf(r, func(v *r5.CapabilityStatementImpl) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("description", r.markdown, func(v *r5.CapabilityStatementImpl) **r5.Markdown { return &v.Description }).
			Restructured("string widened to markdown"),
		mapping.One("url", r.url, func(v *r5.CapabilityStatementImpl) **r5.Url { return &v.Url }),
		mapping.One("custodian", r.reference, func(v *r5.CapabilityStatementImpl) **r5.Reference { return &v.Custodian }),
	))

	bound(r, c.security.Bind(backboneOf(r, func(v *r5.CapabilityStatementRestSecurity) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("cors", r.boolean, func(v *r5.CapabilityStatementRestSecurity) **r5.Boolean { return &v.Cors }),
		mapping.Many("service", r.codeableConcept, func(v *r5.CapabilityStatementRestSecurity) *[]r5.CodeableConcept { return &v.Service }),
		mapping.One("description", r.markdown, func(v *r5.CapabilityStatementRestSecurity) **r5.Markdown { return &v.Description }),
	))

	bound(r, c.resourceInteraction.Bind(backboneOf(r, func(v *r5.CapabilityStatementRestResourceInteraction) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.codes.typeInteraction, func(v *r5.CapabilityStatementRestResourceInteraction) **r5.Enum[r5.TypeRestfulInteraction] { return &v.Code }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementRestResourceInteraction) **r5.Markdown { return &v.Documentation }),
	))

	bound(r, c.interaction.Bind(backboneOf(r, func(v *r5.CapabilityStatementRestInteraction) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.codes.systemInteraction, func(v *r5.CapabilityStatementRestInteraction) **r5.Enum[r5.SystemRestfulInteraction] { return &v.Code }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementRestInteraction) **r5.Markdown { return &v.Documentation }),
	))

	bound(r, c.searchParam.Bind(backboneOf(r, func(v *r5.CapabilityStatementSearchParam) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("name", r.str, func(v *r5.CapabilityStatementSearchParam) **r5.String { return &v.Name }),
		mapping.One("definition", r.canonical, func(v *r5.CapabilityStatementSearchParam) **r5.Canonical { return &v.Definition }),
		mapping.One("type", r.codes.searchParamType, func(v *r5.CapabilityStatementSearchParam) **r5.Enum[r5.SearchParamType] { return &v.Type }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementSearchParam) **r5.Markdown { return &v.Documentation }),
	))

	bound(r, c.operation.Bind(backboneOf(r, func(v *r5.CapabilityStatementOperation) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("name", r.str, func(v *r5.CapabilityStatementOperation) **r5.String { return &v.Name }),
		mapping.One("definition", r.canonical, func(v *r5.CapabilityStatementOperation) **r5.Canonical { return &v.Definition }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementOperation) **r5.Markdown { return &v.Documentation }),
	))

	bound(r, c.restResource.Bind(backboneOf(r, func(v *r5.CapabilityStatementRestResource) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("type", r.code, func(v *r5.CapabilityStatementRestResource) **r5.Code { return &v.Type }),
		mapping.One("profile", r.canonical, func(v *r5.CapabilityStatementRestResource) **r5.Canonical { return &v.Profile }),
		mapping.Many("supportedProfile", r.canonical, func(v *r5.CapabilityStatementRestResource) *[]r5.Canonical { return &v.SupportedProfile }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementRestResource) **r5.Markdown { return &v.Documentation }),
		mapping.Many("interaction", c.resourceInteraction, func(v *r5.CapabilityStatementRestResource) *[]r5.CapabilityStatementRestResourceInteraction { return &v.Interaction }),
		mapping.One("versioning", r.codes.versioningPolicy, func(v *r5.CapabilityStatementRestResource) **r5.Enum[r5.ResourceVersionPolicy] { return &v.Versioning }),
		mapping.One("readHistory", r.boolean, func(v *r5.CapabilityStatementRestResource) **r5.Boolean { return &v.ReadHistory }),
		mapping.One("updateCreate", r.boolean, func(v *r5.CapabilityStatementRestResource) **r5.Boolean { return &v.UpdateCreate }),
		mapping.One("conditionalCreate", r.boolean, func(v *r5.CapabilityStatementRestResource) **r5.Boolean { return &v.ConditionalCreate }),
		mapping.One("conditionalRead", r.codes.conditionalRead, func(v *r5.CapabilityStatementRestResource) **r5.Enum[r5.ConditionalReadStatus] { return &v.ConditionalRead }),
		mapping.One("conditionalUpdate", r.boolean, func(v *r5.CapabilityStatementRestResource) **r5.Boolean { return &v.ConditionalUpdate }),
		mapping.One("conditionalDelete", r.codes.conditionalDelete, func(v *r5.CapabilityStatementRestResource) **r5.Enum[r5.ConditionalDeleteStatus] { return &v.ConditionalDelete }),
		mapping.Many("referencePolicy", r.codes.referencePolicy, func(v *r5.CapabilityStatementRestResource) *[]r5.Enum[r5.ReferenceHandlingPolicy] { return &v.ReferencePolicy }),
		mapping.Many("searchInclude", r.str, func(v *r5.CapabilityStatementRestResource) *[]r5.String { return &v.SearchInclude }),
		mapping.Many("searchRevInclude", r.str, func(v *r5.CapabilityStatementRestResource) *[]r5.String { return &v.SearchRevInclude }),
		mapping.Many("searchParam", c.searchParam, func(v *r5.CapabilityStatementRestResource) *[]r5.CapabilityStatementSearchParam { return &v.SearchParam }),
		mapping.Many("operation", c.operation, func(v *r5.CapabilityStatementRestResource) *[]r5.CapabilityStatementOperation { return &v.Operation }),
	))

	bound(r, c.rest.Bind(backboneOf(r, func(v *r5.CapabilityStatementRest) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("mode", r.codes.restfulCapabilityMode, func(v *r5.CapabilityStatementRest) **r5.Enum[r5.RestfulCapabilityMode] { return &v.Mode }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementRest) **r5.Markdown { return &v.Documentation }),
		mapping.One("security", c.security, func(v *r5.CapabilityStatementRest) **r5.CapabilityStatementRestSecurity { return &v.Security }),
		mapping.Many("resource", c.restResource, func(v *r5.CapabilityStatementRest) *[]r5.CapabilityStatementRestResource { return &v.Resource }),
		mapping.Many("interaction", c.interaction, func(v *r5.CapabilityStatementRest) *[]r5.CapabilityStatementRestInteraction { return &v.Interaction }),
		mapping.Many("searchParam", c.searchParam, func(v *r5.CapabilityStatementRest) *[]r5.CapabilityStatementSearchParam { return &v.SearchParam }),
		mapping.Many("operation", c.operation, func(v *r5.CapabilityStatementRest) *[]r5.CapabilityStatementOperation { return &v.Operation }),
		mapping.Many("compartment", r.canonical, func(v *r5.CapabilityStatementRest) *[]r5.Canonical { return &v.Compartment }),
	))

	bound(r, c.endpoint.Bind(backboneOf(r, func(v *r5.CapabilityStatementMessagingEndpoint) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("protocol", r.coding, func(v *r5.CapabilityStatementMessagingEndpoint) **r5.Coding { return &v.Protocol }),
		mapping.One("address", r.url, func(v *r5.CapabilityStatementMessagingEndpoint) **r5.Url { return &v.Address }),
	))

	bound(r, c.supportedMessage.Bind(backboneOf(r, func(v *r5.CapabilityStatementMessagingSupportedMessage) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("mode", r.codes.eventCapabilityMode, func(v *r5.CapabilityStatementMessagingSupportedMessage) **r5.Enum[r5.EventCapabilityMode] { return &v.Mode }),
		mapping.One("definition", r.canonical, func(v *r5.CapabilityStatementMessagingSupportedMessage) **r5.Canonical { return &v.Definition }),
	))

	bound(r, c.messaging.Bind(backboneOf(r, func(v *r5.CapabilityStatementMessaging) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.Many("endpoint", c.endpoint, func(v *r5.CapabilityStatementMessaging) *[]r5.CapabilityStatementMessagingEndpoint { return &v.Endpoint }),
		mapping.One("reliableCache", r.unsignedInt, func(v *r5.CapabilityStatementMessaging) **r5.UnsignedInt { return &v.ReliableCache }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementMessaging) **r5.Markdown { return &v.Documentation }),
		mapping.Many("supportedMessage", c.supportedMessage, func(v *r5.CapabilityStatementMessaging) *[]r5.CapabilityStatementMessagingSupportedMessage { return &v.SupportedMessage }),
	))

	bound(r, c.document.Bind(backboneOf(r, func(v *r5.CapabilityStatementDocument) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("mode", r.codes.documentMode, func(v *r5.CapabilityStatementDocument) **r5.Enum[r5.DocumentMode] { return &v.Mode }),
		mapping.One("documentation", r.markdown, func(v *r5.CapabilityStatementDocument) **r5.Markdown { return &v.Documentation }),
		mapping.One("profile", r.canonical, func(v *r5.CapabilityStatementDocument) **r5.Canonical { return &v.Profile }),
	))

	bound(r, c.resource.Bind(domainOf(r, func(v *r5.CapabilityStatement) *r5.DomainResource { return &v.DomainResource }),
		mapping.One("url", r.uri, func(v *r5.CapabilityStatement) **r5.Uri { return &v.Url }),
		mapping.One("version", r.str, func(v *r5.CapabilityStatement) **r5.String { return &v.Version }),
		mapping.One("name", r.str, func(v *r5.CapabilityStatement) **r5.String { return &v.Name }),
		mapping.One("title", r.str, func(v *r5.CapabilityStatement) **r5.String { return &v.Title }),
		mapping.One("status", r.codes.publicationStatus, func(v *r5.CapabilityStatement) **r5.Enum[r5.PublicationStatus] { return &v.Status }),
		mapping.One("experimental", r.boolean, func(v *r5.CapabilityStatement) **r5.Boolean { return &v.Experimental }),
		mapping.One("date", r.dateTime, func(v *r5.CapabilityStatement) **r5.DateTime { return &v.Date }),
		mapping.One("publisher", r.str, func(v *r5.CapabilityStatement) **r5.String { return &v.Publisher }),
		mapping.Many("contact", r.contactDetail, func(v *r5.CapabilityStatement) *[]r5.ContactDetail { return &v.Contact }),
		mapping.One("description", r.markdown, func(v *r5.CapabilityStatement) **r5.Markdown { return &v.Description }),
		mapping.Many("useContext", r.usageContext, func(v *r5.CapabilityStatement) *[]r5.UsageContext { return &v.UseContext }),
		mapping.Many("jurisdiction", r.codeableConcept, func(v *r5.CapabilityStatement) *[]r5.CodeableConcept { return &v.Jurisdiction }),
		mapping.One("purpose", r.markdown, func(v *r5.CapabilityStatement) **r5.Markdown { return &v.Purpose }),
		mapping.One("copyright", r.markdown, func(v *r5.CapabilityStatement) **r5.Markdown { return &v.Copyright }),
		mapping.One("kind", r.codes.capabilityStatementKind, func(v *r5.CapabilityStatement) **r5.Enum[r5.CapabilityStatementKind] { return &v.Kind }),
		mapping.Many("instantiates", r.canonical, func(v *r5.CapabilityStatement) *[]r5.Canonical { return &v.Instantiates }),
		mapping.Many("imports", r.canonical, func(v *r5.CapabilityStatement) *[]r5.Canonical { return &v.Imports }),
		mapping.One("software", c.software, func(v *r5.CapabilityStatement) **r5.CapabilityStatementSoftware { return &v.Software }),
		mapping.One("implementation", c.implementation, func(v *r5.CapabilityStatement) **r5.CapabilityStatementImpl { return &v.Implementation }),
		mapping.One("fhirVersion", r.code, func(v *r5.CapabilityStatement) **r5.Code { return &v.FhirVersion }),
		mapping.Many("format", r.code, func(v *r5.CapabilityStatement) *[]r5.Code { return &v.Format }),
		mapping.Many("patchFormat", r.code, func(v *r5.CapabilityStatement) *[]r5.Code { return &v.PatchFormat }),
		mapping.Many("implementationGuide", r.canonical, func(v *r5.CapabilityStatement) *[]r5.Canonical { return &v.ImplementationGuide }),
		mapping.Many("rest", c.rest, func(v *r5.CapabilityStatement) *[]r5.CapabilityStatementRest { return &v.Rest }),
		mapping.Many("messaging", c.messaging, func(v *r5.CapabilityStatement) *[]r5.CapabilityStatementMessaging { return &v.Messaging }),
		mapping.Many("document", c.document, func(v *r5.CapabilityStatement) *[]r5.CapabilityStatementDocument { return &v.Document }),
	))
	route(r, c.resource)
}
