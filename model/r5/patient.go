package r5

// Patient holds demographics about an individual receiving care.
type Patient struct {
	DomainResource
	Identifier           []Identifier                `json:"identifier,omitempty"`
	Active               *Boolean                    `json:"active,omitempty"`
	Name                 []HumanName                 `json:"name,omitempty"`
	Telecom              []ContactPoint              `json:"telecom,omitempty"`
	Gender               *Enum[AdministrativeGender] `json:"gender,omitempty"`
	BirthDate            *Date                       `json:"birthDate,omitempty"`
	Deceased             PatientDeceased             `json:"-"`
	Address              []Address                   `json:"address,omitempty"`
	MaritalStatus        *CodeableConcept            `json:"maritalStatus,omitempty"`
	MultipleBirth        PatientMultipleBirth        `json:"-"`
	Photo                []Attachment                `json:"photo,omitempty"`
	Contact              []PatientContact            `json:"contact,omitempty"`
	Communication        []PatientCommunication      `json:"communication,omitempty"`
	GeneralPractitioner  []Reference                 `json:"generalPractitioner,omitempty"`
	ManagingOrganization *Reference                  `json:"managingOrganization,omitempty"`
	Link                 []PatientLink               `json:"link,omitempty"`
}

// ResourceType implements Resource.
func (*Patient) ResourceType() string { return "Patient" }

// PatientContact is a contact party for the patient.
type PatientContact struct {
	BackboneElement
	Relationship []CodeableConcept           `json:"relationship,omitempty"`
	Name         *HumanName                  `json:"name,omitempty"`
	Telecom      []ContactPoint              `json:"telecom,omitempty"`
	Address      *Address                    `json:"address,omitempty"`
	Gender       *Enum[AdministrativeGender] `json:"gender,omitempty"`
	Organization *Reference                  `json:"organization,omitempty"`
	Period       *Period                     `json:"period,omitempty"`
}

// PatientCommunication is a language usable to communicate with the patient.
type PatientCommunication struct {
	BackboneElement
	Language  *CodeableConcept `json:"language,omitempty"`
	Preferred *Boolean         `json:"preferred,omitempty"`
}

// PatientLink links to another patient resource about the same person.
type PatientLink struct {
	BackboneElement
	Other *Reference      `json:"other,omitempty"`
	Type  *Enum[LinkType] `json:"type,omitempty"`
}

// Basic is a resource for concepts not yet defined in FHIR.
type Basic struct {
	DomainResource
	Identifier []Identifier     `json:"identifier,omitempty"`
	Code       *CodeableConcept `json:"code,omitempty"`
	Subject    *Reference       `json:"subject,omitempty"`
	Created    *DateTime        `json:"created,omitempty"`
	Author     *Reference       `json:"author,omitempty"`
}

// ResourceType implements Resource.
func (*Basic) ResourceType() string { return "Basic" }
