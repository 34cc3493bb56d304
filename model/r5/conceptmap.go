package r5

// ConceptMap is a statement of relationships between concepts.
type ConceptMap struct {
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
	Purpose      *Markdown                `json:"purpose,omitempty"`
	Copyright    *Markdown                `json:"copyright,omitempty"`
	SourceScope  ConceptMapScope          `json:"-"`
	TargetScope  ConceptMapScope          `json:"-"`
	Group        []ConceptMapGroup        `json:"group,omitempty"`
}

// ResourceType implements Resource.
func (*ConceptMap) ResourceType() string { return "ConceptMap" }

// ConceptMapGroup holds the mappings from one source system to one target
// system. Source and Target are canonicals that may carry "|version".
type ConceptMapGroup struct {
	BackboneElement
	Source   *Canonical               `json:"source,omitempty"`
	Target   *Canonical               `json:"target,omitempty"`
	Element  []ConceptMapElement      `json:"element,omitempty"`
	Unmapped *ConceptMapGroupUnmapped `json:"unmapped,omitempty"`
}

// ConceptMapElement is a source concept with its mappings.
type ConceptMapElement struct {
	BackboneElement
	Code     *Code                     `json:"code,omitempty"`
	Display  *String                   `json:"display,omitempty"`
	ValueSet *Canonical                `json:"valueSet,omitempty"`
	NoMap    *Boolean                  `json:"noMap,omitempty"`
	Target   []ConceptMapElementTarget `json:"target,omitempty"`
}

// ConceptMapElementTarget is one mapping target for a source concept.
type ConceptMapElementTarget struct {
	BackboneElement
	Code         *Code                         `json:"code,omitempty"`
	Display      *String                       `json:"display,omitempty"`
	ValueSet     *Canonical                    `json:"valueSet,omitempty"`
	Relationship *Enum[ConceptMapRelationship] `json:"relationship,omitempty"`
	Comment      *String                       `json:"comment,omitempty"`
	DependsOn    []ConceptMapDependsOn         `json:"dependsOn,omitempty"`
	Product      []ConceptMapDependsOn         `json:"product,omitempty"`
}

// ConceptMapDependsOn is an additional attribute a mapping depends on or
// produces.
type ConceptMapDependsOn struct {
	BackboneElement
	Attribute *Code                    `json:"attribute,omitempty"`
	Value     ConceptMapDependsOnValue `json:"-"`
	ValueSet  *Canonical               `json:"valueSet,omitempty"`
}

// ConceptMapGroupUnmapped says what to do when no mapping exists.
type ConceptMapGroupUnmapped struct {
	BackboneElement
	Mode         *Enum[ConceptMapGroupUnmappedMode] `json:"mode,omitempty"`
	Code         *Code                              `json:"code,omitempty"`
	Display      *String                            `json:"display,omitempty"`
	ValueSet     *Canonical                         `json:"valueSet,omitempty"`
	Relationship *Enum[ConceptMapRelationship]      `json:"relationship,omitempty"`
	OtherMap     *Canonical                         `json:"otherMap,omitempty"`
}
