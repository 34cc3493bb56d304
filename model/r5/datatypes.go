package r5

// Extension is an additional element defined by a StructureDefinition.
type Extension struct {
	Element
	Url   *string        `json:"url,omitempty"`
	Value ExtensionValue `json:"-"`
}

// Meta is the metadata about a resource.
type Meta struct {
	Element
	VersionId   *Id         `json:"versionId,omitempty"`
	LastUpdated *Instant    `json:"lastUpdated,omitempty"`
	Source      *Uri        `json:"source,omitempty"`
	Profile     []Canonical `json:"profile,omitempty"`
	Security    []Coding    `json:"security,omitempty"`
	Tag         []Coding    `json:"tag,omitempty"`
}

// Narrative is the human-readable summary of a resource.
type Narrative struct {
	Element
	Status *Enum[NarrativeStatus] `json:"status,omitempty"`
	Div    *Xhtml                 `json:"div,omitempty"`
}

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	Element
	System       *Uri     `json:"system,omitempty"`
	Version      *String  `json:"version,omitempty"`
	Code         *Code    `json:"code,omitempty"`
	Display      *String  `json:"display,omitempty"`
	UserSelected *Boolean `json:"userSelected,omitempty"`
}

// CodeableConcept is a concept that may be defined by one or more codes.
type CodeableConcept struct {
	Element
	Coding []Coding `json:"coding,omitempty"`
	Text   *String  `json:"text,omitempty"`
}

// Identifier is an identifier intended for computation.
type Identifier struct {
	Element
	Use      *Enum[IdentifierUse] `json:"use,omitempty"`
	Type     *CodeableConcept     `json:"type,omitempty"`
	System   *Uri                 `json:"system,omitempty"`
	Value    *String              `json:"value,omitempty"`
	Period   *Period              `json:"period,omitempty"`
	Assigner *Reference           `json:"assigner,omitempty"`
}

// HumanName is the name of a person.
type HumanName struct {
	Element
	Use    *Enum[NameUse] `json:"use,omitempty"`
	Text   *String        `json:"text,omitempty"`
	Family *String        `json:"family,omitempty"`
	Given  []String       `json:"given,omitempty"`
	Prefix []String       `json:"prefix,omitempty"`
	Suffix []String       `json:"suffix,omitempty"`
	Period *Period        `json:"period,omitempty"`
}

// ContactPoint is a technology mediated contact detail.
type ContactPoint struct {
	Element
	System *Enum[ContactPointSystem] `json:"system,omitempty"`
	Value  *String                   `json:"value,omitempty"`
	Use    *Enum[ContactPointUse]    `json:"use,omitempty"`
	Rank   *PositiveInt              `json:"rank,omitempty"`
	Period *Period                   `json:"period,omitempty"`
}

// ContactDetail is a contact for a conformance resource.
type ContactDetail struct {
	Element
	Name    *String        `json:"name,omitempty"`
	Telecom []ContactPoint `json:"telecom,omitempty"`
}

// Period is a time range defined by start and end.
type Period struct {
	Element
	Start *DateTime `json:"start,omitempty"`
	End   *DateTime `json:"end,omitempty"`
}

// Quantity is a measured amount.
type Quantity struct {
	Element
	Value      *Decimal                  `json:"value,omitempty"`
	Comparator *Enum[QuantityComparator] `json:"comparator,omitempty"`
	Unit       *String                   `json:"unit,omitempty"`
	System     *Uri                      `json:"system,omitempty"`
	Code       *Code                     `json:"code,omitempty"`
}

// Range is a set of ordered quantities.
type Range struct {
	Element
	Low  *Quantity `json:"low,omitempty"`
	High *Quantity `json:"high,omitempty"`
}

// Reference is a reference from one resource to another.
type Reference struct {
	Element
	Reference  *String     `json:"reference,omitempty"`
	Type       *Uri        `json:"type,omitempty"`
	Identifier *Identifier `json:"identifier,omitempty"`
	Display    *String     `json:"display,omitempty"`
}

// UsageContext describes the context a resource is intended for.
type UsageContext struct {
	Element
	Code  *Coding           `json:"code,omitempty"`
	Value UsageContextValue `json:"-"`
}

// Address is a postal address.
type Address struct {
	Element
	Use        *Enum[AddressUse]  `json:"use,omitempty"`
	Type       *Enum[AddressType] `json:"type,omitempty"`
	Text       *String            `json:"text,omitempty"`
	Line       []String           `json:"line,omitempty"`
	City       *String            `json:"city,omitempty"`
	District   *String            `json:"district,omitempty"`
	State      *String            `json:"state,omitempty"`
	PostalCode *String            `json:"postalCode,omitempty"`
	Country    *String            `json:"country,omitempty"`
	Period     *Period            `json:"period,omitempty"`
}

// Attachment is content in a format defined elsewhere.
type Attachment struct {
	Element
	ContentType *Code         `json:"contentType,omitempty"`
	Language    *Code         `json:"language,omitempty"`
	Data        *Base64Binary `json:"data,omitempty"`
	Url         *Url          `json:"url,omitempty"`
	Size        *Integer64    `json:"size,omitempty"`
	Hash        *Base64Binary `json:"hash,omitempty"`
	Title       *String       `json:"title,omitempty"`
	Creation    *DateTime     `json:"creation,omitempty"`
	Height      *PositiveInt  `json:"height,omitempty"`
	Width       *PositiveInt  `json:"width,omitempty"`
	Frames      *PositiveInt  `json:"frames,omitempty"`
	Duration    *Decimal      `json:"duration,omitempty"`
	Pages       *PositiveInt  `json:"pages,omitempty"`
}

// Annotation is a text note with attribution.
type Annotation struct {
	Element
	Author AnnotationAuthor `json:"-"`
	Time   *DateTime        `json:"time,omitempty"`
	Text   *Markdown        `json:"text,omitempty"`
}
