package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
	"github.com/gofhir/converter/scalar"
)

// codes holds the processors for codes with a required binding.
type codes struct {
	publicationStatus       *mapping.Processor[r5.Enum[r5.PublicationStatus]]
	narrativeStatus         *mapping.Processor[r5.Enum[r5.NarrativeStatus]]
	gender                  *mapping.Processor[r5.Enum[r5.AdministrativeGender]]
	linkType                *mapping.Processor[r5.Enum[r5.LinkType]]
	identifierUse           *mapping.Processor[r5.Enum[r5.IdentifierUse]]
	nameUse                 *mapping.Processor[r5.Enum[r5.NameUse]]
	contactPointSystem      *mapping.Processor[r5.Enum[r5.ContactPointSystem]]
	contactPointUse         *mapping.Processor[r5.Enum[r5.ContactPointUse]]
	addressUse              *mapping.Processor[r5.Enum[r5.AddressUse]]
	addressType             *mapping.Processor[r5.Enum[r5.AddressType]]
	quantityComparator      *mapping.Processor[r5.Enum[r5.QuantityComparator]]
	capabilityStatementKind *mapping.Processor[r5.Enum[r5.CapabilityStatementKind]]
	restfulCapabilityMode   *mapping.Processor[r5.Enum[r5.RestfulCapabilityMode]]
	typeInteraction         *mapping.Processor[r5.Enum[r5.TypeRestfulInteraction]]
	systemInteraction       *mapping.Processor[r5.Enum[r5.SystemRestfulInteraction]]
	versioningPolicy        *mapping.Processor[r5.Enum[r5.ResourceVersionPolicy]]
	conditionalRead         *mapping.Processor[r5.Enum[r5.ConditionalReadStatus]]
	conditionalDelete       *mapping.Processor[r5.Enum[r5.ConditionalDeleteStatus]]
	referencePolicy         *mapping.Processor[r5.Enum[r5.ReferenceHandlingPolicy]]
	searchParamType         *mapping.Processor[r5.Enum[r5.SearchParamType]]
	eventCapabilityMode     *mapping.Processor[r5.Enum[r5.EventCapabilityMode]]
	documentMode            *mapping.Processor[r5.Enum[r5.DocumentMode]]
	hierarchyMeaning        *mapping.Processor[r5.Enum[r5.CodeSystemHierarchyMeaning]]
	contentMode             *mapping.Processor[r5.Enum[r5.CodeSystemContentMode]]
	filterOperator          *mapping.Processor[r5.Enum[r5.FilterOperator]]
	propertyType            *mapping.Processor[r5.Enum[r5.PropertyType]]
	relationship            *mapping.Processor[r5.Enum[r5.ConceptMapRelationship]]
	unmappedMode            *mapping.Processor[r5.Enum[r5.ConceptMapGroupUnmappedMode]]
}

// enum declares and binds the processor for one bound code. The table is
// named after the value set, and a code outside it is a syntax error typed
// with that name. R4 codes that changed are recoded by the field first.
func enum[E interface {
	~string
	Valid() bool
}](r *Registry, valueSet string) *mapping.Processor[r5.Enum[E]] {
	p := mapping.DeclarePrimitive[r5.Enum[E]](valueSet, func(s string, v *r5.Enum[E]) error {
		if err := r.check("code", s); err != nil {
			return err
		}
		e := E(s)
		if !e.Valid() {
			return &scalar.SyntaxError{Type: valueSet, Literal: s}
		}
		v.Value = &e
		return nil
	})
	return bound(r, p.Bind(mapping.Inherit(r.element, func(v *r5.Enum[E]) *r5.Element { return &v.Element })))
}

func (r *Registry) bindCodes() {
	c := &r.codes
	c.publicationStatus = enum[r5.PublicationStatus](r, "PublicationStatus")
	c.narrativeStatus = enum[r5.NarrativeStatus](r, "NarrativeStatus")
	c.gender = enum[r5.AdministrativeGender](r, "AdministrativeGender")
	c.linkType = enum[r5.LinkType](r, "LinkType")
	c.identifierUse = enum[r5.IdentifierUse](r, "IdentifierUse")
	c.nameUse = enum[r5.NameUse](r, "NameUse")
	c.contactPointSystem = enum[r5.ContactPointSystem](r, "ContactPointSystem")
	c.contactPointUse = enum[r5.ContactPointUse](r, "ContactPointUse")
	c.addressUse = enum[r5.AddressUse](r, "AddressUse")
	c.addressType = enum[r5.AddressType](r, "AddressType")
	c.quantityComparator = enum[r5.QuantityComparator](r, "QuantityComparator")
	c.capabilityStatementKind = enum[r5.CapabilityStatementKind](r, "CapabilityStatementKind")
	c.restfulCapabilityMode = enum[r5.RestfulCapabilityMode](r, "RestfulCapabilityMode")
	c.typeInteraction = enum[r5.TypeRestfulInteraction](r, "TypeRestfulInteraction")
	c.systemInteraction = enum[r5.SystemRestfulInteraction](r, "SystemRestfulInteraction")
	c.versioningPolicy = enum[r5.ResourceVersionPolicy](r, "ResourceVersionPolicy")
	c.conditionalRead = enum[r5.ConditionalReadStatus](r, "ConditionalReadStatus")
	c.conditionalDelete = enum[r5.ConditionalDeleteStatus](r, "ConditionalDeleteStatus")
	c.referencePolicy = enum[r5.ReferenceHandlingPolicy](r, "ReferenceHandlingPolicy")
	c.searchParamType = enum[r5.SearchParamType](r, "SearchParamType")
	c.eventCapabilityMode = enum[r5.EventCapabilityMode](r, "EventCapabilityMode")
	c.documentMode = enum[r5.DocumentMode](r, "DocumentMode")
	c.hierarchyMeaning = enum[r5.CodeSystemHierarchyMeaning](r, "CodeSystemHierarchyMeaning")
	c.contentMode = enum[r5.CodeSystemContentMode](r, "CodeSystemContentMode")
	c.filterOperator = enum[r5.FilterOperator](r, "FilterOperator")
	c.propertyType = enum[r5.PropertyType](r, "PropertyType")
	c.relationship = enum[r5.ConceptMapRelationship](r, "ConceptMapRelationship")
	c.unmappedMode = enum[r5.ConceptMapGroupUnmappedMode](r, "ConceptMapGroupUnmappedMode")
}
