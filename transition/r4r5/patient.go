package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
)

type patient struct {
	resource      *mapping.Processor[r5.Patient]
	contact       *mapping.Processor[r5.PatientContact]
	communication *mapping.Processor[r5.PatientCommunication]
	link          *mapping.Processor[r5.PatientLink]
}

func (r *Registry) declarePatient() {
	p := &r.patient
	p.resource = mapping.Declare[r5.Patient]("Patient")
	p.contact = mapping.Declare[r5.PatientContact]("Patient.contact")
	p.communication = mapping.Declare[r5.PatientCommunication]("Patient.communication")
	p.link = mapping.Declare[r5.PatientLink]("Patient.link")
	r.basic = mapping.Declare[r5.Basic]("Basic")
}

func (r *Registry) bindPatient() {
	p := &r.patient

	bound(r, p.contact.Bind(backboneOf(r, func(v *r5.PatientContact) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.Many("relationship", r.codeableConcept, func(v *r5.PatientContact) *[]r5.CodeableConcept { return &v.Relationship }),
		mapping.One("name", r.humanName, func(v *r5.PatientContact) **r5.HumanName { return &v.Name }),
		mapping.Many("telecom", r.contactPoint, func(v *r5.PatientContact) *[]r5.ContactPoint { return &v.Telecom }),
		mapping.One("address", r.address, func(v *r5.PatientContact) **r5.Address { return &v.Address }),
		mapping.One("gender", r.codes.gender, func(v *r5.PatientContact) **r5.Enum[r5.AdministrativeGender] { return &v.Gender }),
		mapping.One("organization", r.reference, func(v *r5.PatientContact) **r5.Reference { return &v.Organization }),
		mapping.One("period", r.period, func(v *r5.PatientContact) **r5.Period { return &v.Period }),
	))

	bound(r, p.communication.Bind(backboneOf(r, func(v *r5.PatientCommunication) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("language", r.codeableConcept, func(v *r5.PatientCommunication) **r5.CodeableConcept { return &v.Language }),
		mapping.One("preferred", r.boolean, func(v *r5.PatientCommunication) **r5.Boolean { return &v.Preferred }),
	))

	bound(r, p.link.Bind(backboneOf(r, func(v *r5.PatientLink) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("other", r.reference, func(v *r5.PatientLink) **r5.Reference { return &v.Other }),
		mapping.One("type", r.codes.linkType, func(v *r5.PatientLink) **r5.Enum[r5.LinkType] { return &v.Type }),
	))

	bound(r, p.resource.Bind(domainOf(r, func(v *r5.Patient) *r5.DomainResource { return &v.DomainResource }),
		mapping.Many("identifier", r.identifier, func(v *r5.Patient) *[]r5.Identifier { return &v.Identifier }),
		mapping.One("active", r.boolean, func(v *r5.Patient) **r5.Boolean { return &v.Active }),
		mapping.Many("name", r.humanName, func(v *r5.Patient) *[]r5.HumanName { return &v.Name }),
		mapping.Many("telecom", r.contactPoint, func(v *r5.Patient) *[]r5.ContactPoint { return &v.Telecom }),
		mapping.One("gender", r.codes.gender, func(v *r5.Patient) **r5.Enum[r5.AdministrativeGender] { return &v.Gender }),
		mapping.One("birthDate", r.date, func(v *r5.Patient) **r5.Date { return &v.BirthDate }),
		mapping.Choice("deceased", func(v *r5.Patient) *r5.PatientDeceased { return &v.Deceased },
			mapping.Variant[r5.PatientDeceased]("Boolean", r.boolean),
			mapping.Variant[r5.PatientDeceased]("DateTime", r.dateTime),
		),
		mapping.Many("address", r.address, func(v *r5.Patient) *[]r5.Address { return &v.Address }),
		mapping.One("maritalStatus", r.codeableConcept, func(v *r5.Patient) **r5.CodeableConcept { return &v.MaritalStatus }),
		mapping.Choice("multipleBirth", func(v *r5.Patient) *r5.PatientMultipleBirth { return &v.MultipleBirth },
			mapping.Variant[r5.PatientMultipleBirth]("Boolean", r.boolean),
			mapping.Variant[r5.PatientMultipleBirth]("Integer", r.integer),
		),
		mapping.Many("photo", r.attachment, func(v *r5.Patient) *[]r5.Attachment { return &v.Photo }),
		mapping.Many("contact", p.contact, func(v *r5.Patient) *[]r5.PatientContact { return &v.Contact }),
		mapping.Many("communication", p.communication, func(v *r5.Patient) *[]r5.PatientCommunication { return &v.Communication }),
		mapping.Many("generalPractitioner", r.reference, func(v *r5.Patient) *[]r5.Reference { return &v.GeneralPractitioner }),
		mapping.One("managingOrganization", r.reference, func(v *r5.Patient) **r5.Reference { return &v.ManagingOrganization }),
		mapping.Many("link", p.link, func(v *r5.Patient) *[]r5.PatientLink { return &v.Link }),
	))
	route(r, p.resource)
}

func (r *Registry) bindBasic() {
	bound(r, r.basic.Bind(domainOf(r, func(v *r5.Basic) *r5.DomainResource { return &v.DomainResource }),
		mapping.Many("identifier", r.identifier, func(v *r5.Basic) *[]r5.Identifier { return &v.Identifier }),
		mapping.One("code", r.codeableConcept, func(v *r5.Basic) **r5.CodeableConcept { return &v.Code }),
		mapping.One("subject", r.reference, func(v *r5.Basic) **r5.Reference { return &v.Subject }),
		mapping.One("created", r.dateTime, func(v *r5.Basic) **r5.DateTime { return &v.Created }).
			Restructured("date widened to dateTime"),
		mapping.One("author", r.reference, func(v *r5.Basic) **r5.Reference { return &v.Author }),
	))
	route(r, r.basic)
}
