package r5

// Choice elements. Each interface is implemented by the pointer types of
// the datatypes the element allows; the dynamic type is the chosen variant.

// ExtensionValue is the value[x] of an Extension.
type ExtensionValue interface {
	isExtensionValue()
}

// UsageContextValue is UsageContext.value[x].
type UsageContextValue interface {
	isUsageContextValue()
}

// AnnotationAuthor is Annotation.author[x].
type AnnotationAuthor interface {
	isAnnotationAuthor()
}

// PatientDeceased is Patient.deceased[x].
type PatientDeceased interface {
	isPatientDeceased()
}

// PatientMultipleBirth is Patient.multipleBirth[x].
type PatientMultipleBirth interface {
	isPatientMultipleBirth()
}

// CodeSystemPropertyValue is CodeSystem.concept.property.value[x].
type CodeSystemPropertyValue interface {
	isCodeSystemPropertyValue()
}

// ValueSetParameterValue is ValueSet.expansion.parameter.value[x].
type ValueSetParameterValue interface {
	isValueSetParameterValue()
}

// ConceptMapScope is ConceptMap.sourceScope[x] and targetScope[x].
type ConceptMapScope interface {
	isConceptMapScope()
}

// ConceptMapDependsOnValue is ConceptMap.group.element.target.dependsOn.value[x].
type ConceptMapDependsOnValue interface {
	isConceptMapDependsOnValue()
}

func (*Base64Binary) isExtensionValue() {}
func (*Boolean) isExtensionValue() {}
func (*Canonical) isExtensionValue() {}
func (*Code) isExtensionValue() {}
func (*Date) isExtensionValue() {}
func (*DateTime) isExtensionValue() {}
func (*Decimal) isExtensionValue() {}
func (*Id) isExtensionValue() {}
func (*Instant) isExtensionValue() {}
func (*Integer) isExtensionValue() {}
func (*Integer64) isExtensionValue() {}
func (*Markdown) isExtensionValue() {}
func (*Oid) isExtensionValue() {}
func (*PositiveInt) isExtensionValue() {}
func (*String) isExtensionValue() {}
func (*Time) isExtensionValue() {}
func (*UnsignedInt) isExtensionValue() {}
func (*Uri) isExtensionValue() {}
func (*Url) isExtensionValue() {}
func (*Uuid) isExtensionValue() {}
func (*Address) isExtensionValue() {}
func (*Annotation) isExtensionValue() {}
func (*Attachment) isExtensionValue() {}
func (*CodeableConcept) isExtensionValue() {}
func (*Coding) isExtensionValue() {}
func (*ContactDetail) isExtensionValue() {}
func (*ContactPoint) isExtensionValue() {}
func (*HumanName) isExtensionValue() {}
func (*Identifier) isExtensionValue() {}
func (*Meta) isExtensionValue() {}
func (*Period) isExtensionValue() {}
func (*Quantity) isExtensionValue() {}
func (*Range) isExtensionValue() {}
func (*Reference) isExtensionValue() {}
func (*UsageContext) isExtensionValue() {}

func (*CodeableConcept) isUsageContextValue() {}
func (*Quantity) isUsageContextValue() {}
func (*Range) isUsageContextValue() {}
func (*Reference) isUsageContextValue() {}

func (*Reference) isAnnotationAuthor() {}
func (*String) isAnnotationAuthor() {}

func (*Boolean) isPatientDeceased() {}
func (*DateTime) isPatientDeceased() {}

func (*Boolean) isPatientMultipleBirth() {}
func (*Integer) isPatientMultipleBirth() {}

func (*Code) isCodeSystemPropertyValue() {}
func (*Coding) isCodeSystemPropertyValue() {}
func (*String) isCodeSystemPropertyValue() {}
func (*Integer) isCodeSystemPropertyValue() {}
func (*Boolean) isCodeSystemPropertyValue() {}
func (*DateTime) isCodeSystemPropertyValue() {}
func (*Decimal) isCodeSystemPropertyValue() {}

func (*String) isValueSetParameterValue() {}
func (*Boolean) isValueSetParameterValue() {}
func (*Integer) isValueSetParameterValue() {}
func (*Decimal) isValueSetParameterValue() {}
func (*Uri) isValueSetParameterValue() {}
func (*Code) isValueSetParameterValue() {}
func (*DateTime) isValueSetParameterValue() {}

func (*Uri) isConceptMapScope() {}
func (*Canonical) isConceptMapScope() {}

func (*Code) isConceptMapDependsOnValue() {}
func (*Coding) isConceptMapDependsOnValue() {}
func (*String) isConceptMapDependsOnValue() {}
func (*Boolean) isConceptMapDependsOnValue() {}
func (*Quantity) isConceptMapDependsOnValue() {}
