// Package r5 is the in-memory model of FHIR R5 (5.0.0) produced by the
// converters.
//
// Primitive elements are structs carrying an optional Go value plus the
// element id and extensions, repeated elements are value slices, and choice
// elements ("value[x]") are sealed interfaces implemented by the allowed
// datatypes, so the dynamic type of the field names the chosen variant.
// JSON tags give a readable dump of the graph; they are not the FHIR wire
// format.
package r5

// Version is the FHIR version modelled by this package.
const Version = "5.0.0"

// Element is the base of every datatype.
type Element struct {
	Id        *string     `json:"id,omitempty"`
	Extension []Extension `json:"extension,omitempty"`
}

// BackboneElement is the base of inline components that allow modifier
// extensions.
type BackboneElement struct {
	Element
	ModifierExtension []Extension `json:"modifierExtension,omitempty"`
}

// Resource is implemented by every resource type.
type Resource interface {
	ResourceType() string
}

// BaseResource holds the elements every resource inherits from Resource.
type BaseResource struct {
	Id            *string `json:"id,omitempty"`
	Meta          *Meta   `json:"meta,omitempty"`
	ImplicitRules *Uri    `json:"implicitRules,omitempty"`
	Language      *Code   `json:"language,omitempty"`
}

// DomainResource holds the elements inherited from DomainResource.
type DomainResource struct {
	BaseResource
	Text              *Narrative  `json:"text,omitempty"`
	Contained         []Resource  `json:"contained,omitempty"`
	Extension         []Extension `json:"extension,omitempty"`
	ModifierExtension []Extension `json:"modifierExtension,omitempty"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
