package r5

// CapabilityStatement describes the functionality of a FHIR server or client.
type CapabilityStatement struct {
	DomainResource
	Url                 *Uri                           `json:"url,omitempty"`
	Identifier          []Identifier                   `json:"identifier,omitempty"`
	Version             *String                        `json:"version,omitempty"`
	Name                *String                        `json:"name,omitempty"`
	Title               *String                        `json:"title,omitempty"`
	Status              *Enum[PublicationStatus]       `json:"status,omitempty"`
	Experimental        *Boolean                       `json:"experimental,omitempty"`
	Date                *DateTime                      `json:"date,omitempty"`
	Publisher           *String                        `json:"publisher,omitempty"`
	Contact             []ContactDetail                `json:"contact,omitempty"`
	Description         *Markdown                      `json:"description,omitempty"`
	UseContext          []UsageContext                 `json:"useContext,omitempty"`
	Jurisdiction        []CodeableConcept              `json:"jurisdiction,omitempty"`
	Purpose             *Markdown                      `json:"purpose,omitempty"`
	Copyright           *Markdown                      `json:"copyright,omitempty"`
	CopyrightLabel      *String                        `json:"copyrightLabel,omitempty"`
	Kind                *Enum[CapabilityStatementKind] `json:"kind,omitempty"`
	Instantiates        []Canonical                    `json:"instantiates,omitempty"`
	Imports             []Canonical                    `json:"imports,omitempty"`
	Software            *CapabilityStatementSoftware   `json:"software,omitempty"`
	Implementation      *CapabilityStatementImpl       `json:"implementation,omitempty"`
	FhirVersion         *Code                          `json:"fhirVersion,omitempty"`
	Format              []Code                         `json:"format,omitempty"`
	PatchFormat         []Code                         `json:"patchFormat,omitempty"`
	AcceptLanguage      []Code                         `json:"acceptLanguage,omitempty"`
	ImplementationGuide []Canonical                    `json:"implementationGuide,omitempty"`
	Rest                []CapabilityStatementRest      `json:"rest,omitempty"`
	Messaging           []CapabilityStatementMessaging `json:"messaging,omitempty"`
	Document            []CapabilityStatementDocument  `json:"document,omitempty"`
}

// ResourceType implements Resource.
func (*CapabilityStatement) ResourceType() string { return "CapabilityStatement" }

// CapabilityStatementSoftware is the software covered by the statement.
type CapabilityStatementSoftware struct {
	BackboneElement
	Name        *String   `json:"name,omitempty"`
	Version     *String   `json:"version,omitempty"`
	ReleaseDate *DateTime `json:"releaseDate,omitempty"`
}

// CapabilityStatementImpl is the specific instance described.
type CapabilityStatementImpl struct {
	BackboneElement
	Description *Markdown  `json:"description,omitempty"`
	Url         *Url       `json:"url,omitempty"`
	Custodian   *Reference `json:"custodian,omitempty"`
}

// CapabilityStatementRest is one RESTful endpoint mode.
type CapabilityStatementRest struct {
	BackboneElement
	Mode          *Enum[RestfulCapabilityMode]         `json:"mode,omitempty"`
	Documentation *Markdown                            `json:"documentation,omitempty"`
	Security      *CapabilityStatementRestSecurity     `json:"security,omitempty"`
	Resource      []CapabilityStatementRestResource    `json:"resource,omitempty"`
	Interaction   []CapabilityStatementRestInteraction `json:"interaction,omitempty"`
	SearchParam   []CapabilityStatementSearchParam     `json:"searchParam,omitempty"`
	Operation     []CapabilityStatementOperation       `json:"operation,omitempty"`
	Compartment   []Canonical                          `json:"compartment,omitempty"`
}

// CapabilityStatementRestSecurity describes endpoint security.
type CapabilityStatementRestSecurity struct {
	BackboneElement
	Cors        *Boolean          `json:"cors,omitempty"`
	Service     []CodeableConcept `json:"service,omitempty"`
	Description *Markdown         `json:"description,omitempty"`
}

// CapabilityStatementRestResource is the support for one resource type.
type CapabilityStatementRestResource struct {
	BackboneElement
	Type              *Code                                        `json:"type,omitempty"`
	Profile           *Canonical                                   `json:"profile,omitempty"`
	SupportedProfile  []Canonical                                  `json:"supportedProfile,omitempty"`
	Documentation     *Markdown                                    `json:"documentation,omitempty"`
	Interaction       []CapabilityStatementRestResourceInteraction `json:"interaction,omitempty"`
	Versioning        *Enum[ResourceVersionPolicy]                 `json:"versioning,omitempty"`
	ReadHistory       *Boolean                                     `json:"readHistory,omitempty"`
	UpdateCreate      *Boolean                                     `json:"updateCreate,omitempty"`
	ConditionalCreate *Boolean                                     `json:"conditionalCreate,omitempty"`
	ConditionalRead   *Enum[ConditionalReadStatus]                 `json:"conditionalRead,omitempty"`
	ConditionalUpdate *Boolean                                     `json:"conditionalUpdate,omitempty"`
	ConditionalPatch  *Boolean                                     `json:"conditionalPatch,omitempty"`
	ConditionalDelete *Enum[ConditionalDeleteStatus]               `json:"conditionalDelete,omitempty"`
	ReferencePolicy   []Enum[ReferenceHandlingPolicy]              `json:"referencePolicy,omitempty"`
	SearchInclude     []String                                     `json:"searchInclude,omitempty"`
	SearchRevInclude  []String                                     `json:"searchRevInclude,omitempty"`
	SearchParam       []CapabilityStatementSearchParam             `json:"searchParam,omitempty"`
	Operation         []CapabilityStatementOperation               `json:"operation,omitempty"`
}

// CapabilityStatementRestResourceInteraction is a supported type level
// interaction.
type CapabilityStatementRestResourceInteraction struct {
	BackboneElement
	Code          *Enum[TypeRestfulInteraction] `json:"code,omitempty"`
	Documentation *Markdown                     `json:"documentation,omitempty"`
}

// CapabilityStatementRestInteraction is a supported system level interaction.
type CapabilityStatementRestInteraction struct {
	BackboneElement
	Code          *Enum[SystemRestfulInteraction] `json:"code,omitempty"`
	Documentation *Markdown                       `json:"documentation,omitempty"`
}

// CapabilityStatementSearchParam is a supported search parameter.
type CapabilityStatementSearchParam struct {
	BackboneElement
	Name          *String                `json:"name,omitempty"`
	Definition    *Canonical             `json:"definition,omitempty"`
	Type          *Enum[SearchParamType] `json:"type,omitempty"`
	Documentation *Markdown              `json:"documentation,omitempty"`
}

// CapabilityStatementOperation is a supported operation.
type CapabilityStatementOperation struct {
	BackboneElement
	Name          *String    `json:"name,omitempty"`
	Definition    *Canonical `json:"definition,omitempty"`
	Documentation *Markdown  `json:"documentation,omitempty"`
}

// CapabilityStatementMessaging describes messaging support.
type CapabilityStatementMessaging struct {
	BackboneElement
	Endpoint         []CapabilityStatementMessagingEndpoint         `json:"endpoint,omitempty"`
	ReliableCache    *UnsignedInt                                   `json:"reliableCache,omitempty"`
	Documentation    *Markdown                                      `json:"documentation,omitempty"`
	SupportedMessage []CapabilityStatementMessagingSupportedMessage `json:"supportedMessage,omitempty"`
}

// CapabilityStatementMessagingEndpoint is where messages are sent.
type CapabilityStatementMessagingEndpoint struct {
	BackboneElement
	Protocol *Coding `json:"protocol,omitempty"`
	Address  *Url    `json:"address,omitempty"`
}

// CapabilityStatementMessagingSupportedMessage is a supported message
// definition.
type CapabilityStatementMessagingSupportedMessage struct {
	BackboneElement
	Mode       *Enum[EventCapabilityMode] `json:"mode,omitempty"`
	Definition *Canonical                 `json:"definition,omitempty"`
}

// CapabilityStatementDocument is a supported document profile.
type CapabilityStatementDocument struct {
	BackboneElement
	Mode          *Enum[DocumentMode] `json:"mode,omitempty"`
	Documentation *Markdown           `json:"documentation,omitempty"`
	Profile       *Canonical          `json:"profile,omitempty"`
}
