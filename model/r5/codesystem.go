package r5

// CodeSystem declares the existence of and describes a code system.
type CodeSystem struct {
	DomainResource
	Url              *Uri                              `json:"url,omitempty"`
	Identifier       []Identifier                      `json:"identifier,omitempty"`
	Version          *String                           `json:"version,omitempty"`
	Name             *String                           `json:"name,omitempty"`
	Title            *String                           `json:"title,omitempty"`
	Status           *Enum[PublicationStatus]          `json:"status,omitempty"`
	Experimental     *Boolean                          `json:"experimental,omitempty"`
	Date             *DateTime                         `json:"date,omitempty"`
	Publisher        *String                           `json:"publisher,omitempty"`
	Contact          []ContactDetail                   `json:"contact,omitempty"`
	Description      *Markdown                         `json:"description,omitempty"`
	UseContext       []UsageContext                    `json:"useContext,omitempty"`
	Jurisdiction     []CodeableConcept                 `json:"jurisdiction,omitempty"`
	Purpose          *Markdown                         `json:"purpose,omitempty"`
	Copyright        *Markdown                         `json:"copyright,omitempty"`
	CaseSensitive    *Boolean                          `json:"caseSensitive,omitempty"`
	ValueSet         *Canonical                        `json:"valueSet,omitempty"`
	HierarchyMeaning *Enum[CodeSystemHierarchyMeaning] `json:"hierarchyMeaning,omitempty"`
	Compositional    *Boolean                          `json:"compositional,omitempty"`
	Content          *Enum[CodeSystemContentMode]      `json:"content,omitempty"`
	Supplements      *Canonical                        `json:"supplements,omitempty"`
	Count            *UnsignedInt                      `json:"count,omitempty"`
	Filter           []CodeSystemFilter                `json:"filter,omitempty"`
	Property         []CodeSystemProperty              `json:"property,omitempty"`
	Concept          []CodeSystemConcept               `json:"concept,omitempty"`
}

// ResourceType implements Resource.
func (*CodeSystem) ResourceType() string { return "CodeSystem" }

// CodeSystemFilter is a filter usable in ValueSet compose statements.
type CodeSystemFilter struct {
	BackboneElement
	Code        *Code                  `json:"code,omitempty"`
	Description *String                `json:"description,omitempty"`
	Operator    []Enum[FilterOperator] `json:"operator,omitempty"`
	Value       *String                `json:"value,omitempty"`
}

// CodeSystemProperty is an additional concept property definition.
type CodeSystemProperty struct {
	BackboneElement
	Code        *Code               `json:"code,omitempty"`
	Uri         *Uri                `json:"uri,omitempty"`
	Description *String             `json:"description,omitempty"`
	Type        *Enum[PropertyType] `json:"type,omitempty"`
}

// CodeSystemConcept is a concept, possibly with nested child concepts.
type CodeSystemConcept struct {
	BackboneElement
	Code        *Code                       `json:"code,omitempty"`
	Display     *String                     `json:"display,omitempty"`
	Definition  *String                     `json:"definition,omitempty"`
	Designation []Designation               `json:"designation,omitempty"`
	Property    []CodeSystemConceptProperty `json:"property,omitempty"`
	Concept     []CodeSystemConcept         `json:"concept,omitempty"`
}

// Designation is an additional representation of a concept. CodeSystem and
// ValueSet share the shape.
type Designation struct {
	BackboneElement
	Language      *Code    `json:"language,omitempty"`
	Use           *Coding  `json:"use,omitempty"`
	AdditionalUse []Coding `json:"additionalUse,omitempty"`
	Value         *String  `json:"value,omitempty"`
}

// CodeSystemConceptProperty is a property value for a concept.
type CodeSystemConceptProperty struct {
	BackboneElement
	Code  *Code                   `json:"code,omitempty"`
	Value CodeSystemPropertyValue `json:"-"`
}
