package r5

// ValueSet is a set of codes drawn from one or more code systems.
type ValueSet struct {
	DomainResource
	Url          *Uri                     `json:"url,omitempty"`
	Identifier   []Identifier             `json:"identifier,omitempty"`
	Version      *String                  `json:"version,omitempty"`
	Name         *String                  `json:"name,omitempty"`
	Title        *String                  `json:"title,omitempty"`
	Status       *Enum[PublicationStatus] `json:"status,omitempty"`
	Experimental *Boolean                 `json:"experimental,omitempty"`
	Date         *DateTime                `json:"date,omitempty"`
	Publisher    *String                  `json:"publisher,omitempty"`
	Contact      []ContactDetail          `json:"contact,omitempty"`
	Description  *Markdown                `json:"description,omitempty"`
	UseContext   []UsageContext           `json:"useContext,omitempty"`
	Jurisdiction []CodeableConcept        `json:"jurisdiction,omitempty"`
	Immutable    *Boolean                 `json:"immutable,omitempty"`
	Purpose      *Markdown                `json:"purpose,omitempty"`
	Copyright    *Markdown                `json:"copyright,omitempty"`
	Compose      *ValueSetCompose         `json:"compose,omitempty"`
	Expansion    *ValueSetExpansion       `json:"expansion,omitempty"`
}

// ResourceType implements Resource.
func (*ValueSet) ResourceType() string { return "ValueSet" }

// ValueSetCompose is the content logical definition of the value set.
type ValueSetCompose struct {
	BackboneElement
	LockedDate *Date             `json:"lockedDate,omitempty"`
	Inactive   *Boolean          `json:"inactive,omitempty"`
	Include    []ValueSetInclude `json:"include,omitempty"`
	Exclude    []ValueSetInclude `json:"exclude,omitempty"`
}

// ValueSetInclude includes (or excludes) concepts from a system or other
// value sets.
type ValueSetInclude struct {
	BackboneElement
	System   *Uri              `json:"system,omitempty"`
	Version  *String           `json:"version,omitempty"`
	Concept  []ValueSetConcept `json:"concept,omitempty"`
	Filter   []ValueSetFilter  `json:"filter,omitempty"`
	ValueSet []Canonical       `json:"valueSet,omitempty"`
}

// ValueSetConcept is a concept listed in a compose include.
type ValueSetConcept struct {
	BackboneElement
	Code        *Code         `json:"code,omitempty"`
	Display     *String       `json:"display,omitempty"`
	Designation []Designation `json:"designation,omitempty"`
}

// ValueSetFilter selects concepts by property.
type ValueSetFilter struct {
	BackboneElement
	Property *Code                 `json:"property,omitempty"`
	Op       *Enum[FilterOperator] `json:"op,omitempty"`
	Value    *String               `json:"value,omitempty"`
}

// ValueSetExpansion is an enumeration of the codes in the value set.
type ValueSetExpansion struct {
	BackboneElement
	Identifier *Uri                         `json:"identifier,omitempty"`
	Next       *Uri                         `json:"next,omitempty"`
	Timestamp  *DateTime                    `json:"timestamp,omitempty"`
	Total      *Integer                     `json:"total,omitempty"`
	Offset     *Integer                     `json:"offset,omitempty"`
	Parameter  []ValueSetExpansionParameter `json:"parameter,omitempty"`
	Contains   []ValueSetContains           `json:"contains,omitempty"`
}

// ValueSetExpansionParameter is a parameter that controlled the expansion.
type ValueSetExpansionParameter struct {
	BackboneElement
	Name  *String                `json:"name,omitempty"`
	Value ValueSetParameterValue `json:"-"`
}

// ValueSetContains is a code in the expansion, possibly with nested codes.
type ValueSetContains struct {
	BackboneElement
	System      *Uri               `json:"system,omitempty"`
	Abstract    *Boolean           `json:"abstract,omitempty"`
	Inactive    *Boolean           `json:"inactive,omitempty"`
	Version     *String            `json:"version,omitempty"`
	Code        *Code              `json:"code,omitempty"`
	Display     *String            `json:"display,omitempty"`
	Designation []Designation      `json:"designation,omitempty"`
	Contains    []ValueSetContains `json:"contains,omitempty"`
}
