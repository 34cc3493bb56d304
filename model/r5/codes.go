package r5

// Value sets with required bindings used by the modelled resources.
type (
	PublicationStatus           string
	NarrativeStatus             string
	AdministrativeGender        string
	LinkType                    string
	IdentifierUse               string
	NameUse                     string
	ContactPointSystem          string
	ContactPointUse             string
	AddressUse                  string
	AddressType                 string
	QuantityComparator          string
	CapabilityStatementKind     string
	RestfulCapabilityMode       string
	TypeRestfulInteraction      string
	SystemRestfulInteraction    string
	ResourceVersionPolicy       string
	ConditionalReadStatus       string
	ConditionalDeleteStatus     string
	ReferenceHandlingPolicy     string
	SearchParamType             string
	EventCapabilityMode         string
	DocumentMode                string
	CodeSystemHierarchyMeaning  string
	CodeSystemContentMode       string
	FilterOperator              string
	PropertyType                string
	ConceptMapRelationship      string
	ConceptMapGroupUnmappedMode string
)

const (
	PublicationStatusDraft   PublicationStatus = "draft"
	PublicationStatusActive  PublicationStatus = "active"
	PublicationStatusRetired PublicationStatus = "retired"
	PublicationStatusUnknown PublicationStatus = "unknown"
)

const (
	RestfulCapabilityModeClient RestfulCapabilityMode = "client"
	RestfulCapabilityModeServer RestfulCapabilityMode = "server"
)

const (
	TypeRestfulInteractionRead       TypeRestfulInteraction = "read"
	TypeRestfulInteractionVread      TypeRestfulInteraction = "vread"
	TypeRestfulInteractionUpdate     TypeRestfulInteraction = "update"
	TypeRestfulInteractionPatch      TypeRestfulInteraction = "patch"
	TypeRestfulInteractionDelete     TypeRestfulInteraction = "delete"
	TypeRestfulInteractionCreate     TypeRestfulInteraction = "create"
	TypeRestfulInteractionSearchType TypeRestfulInteraction = "search-type"
)

const (
	AdministrativeGenderMale    AdministrativeGender = "male"
	AdministrativeGenderFemale  AdministrativeGender = "female"
	AdministrativeGenderOther   AdministrativeGender = "other"
	AdministrativeGenderUnknown AdministrativeGender = "unknown"
)

const (
	NameUseOfficial NameUse = "official"
	NameUseUsual    NameUse = "usual"
)

// ConceptMapRelationship replaces the R4 ConceptMapEquivalence.
const (
	ConceptMapRelationshipRelatedTo                  ConceptMapRelationship = "related-to"
	ConceptMapRelationshipEquivalent                 ConceptMapRelationship = "equivalent"
	ConceptMapRelationshipSourceIsNarrowerThanTarget ConceptMapRelationship = "source-is-narrower-than-target"
	ConceptMapRelationshipSourceIsBroaderThanTarget  ConceptMapRelationship = "source-is-broader-than-target"
	ConceptMapRelationshipNotRelatedTo               ConceptMapRelationship = "not-related-to"
)

const (
	ConceptMapGroupUnmappedModeUseSourceCode ConceptMapGroupUnmappedMode = "use-source-code"
	ConceptMapGroupUnmappedModeFixed         ConceptMapGroupUnmappedMode = "fixed"
	ConceptMapGroupUnmappedModeOtherMap      ConceptMapGroupUnmappedMode = "other-map"
)

// codeSet lists the codes a value set allows.
type codeSet map[string]struct{}

func codes(list ...string) codeSet {
	s := make(codeSet, len(list))
	for _, c := range list {
		s[c] = struct{}{}
	}
	return s
}

func (s codeSet) has(c string) bool {
	_, ok := s[c]
	return ok
}

var (
	publicationStatusCodes    = codes("draft", "active", "retired", "unknown")
	narrativeStatusCodes      = codes("generated", "extensions", "additional", "empty")
	administrativeGenderCodes = codes("male", "female", "other", "unknown")
	linkTypeCodes             = codes("replaced-by", "replaces", "refer", "seealso")
	identifierUseCodes        = codes("usual", "official", "temp", "secondary", "old")
	nameUseCodes              = codes("usual", "official", "temp", "nickname", "anonymous", "old", "maiden")
	contactPointSystemCodes   = codes("phone", "fax", "email", "pager", "url", "sms", "other")
	contactPointUseCodes      = codes("home", "work", "temp", "old", "mobile")
	addressUseCodes           = codes("home", "work", "temp", "old", "billing")
	addressTypeCodes          = codes("postal", "physical", "both")
	quantityComparatorCodes   = codes("<", "<=", ">=", ">", "ad")
	capabilityKindCodes       = codes("instance", "capability", "requirements")
	restfulModeCodes          = codes("client", "server")
	typeInteractionCodes      = codes("read", "vread", "update", "patch", "delete", "history-instance", "history-type", "create", "search-type")
	systemInteractionCodes    = codes("transaction", "batch", "search-system", "history-system")
	versionPolicyCodes        = codes("no-version", "versioned", "versioned-update")
	conditionalReadCodes      = codes("not-supported", "modified-since", "not-match", "full-support")
	conditionalDeleteCodes    = codes("not-supported", "single", "multiple")
	referencePolicyCodes      = codes("literal", "logical", "resolves", "enforced", "local")
	searchParamTypeCodes      = codes("number", "date", "string", "token", "reference", "composite", "quantity", "uri", "special")
	eventModeCodes            = codes("sender", "receiver")
	documentModeCodes         = codes("producer", "consumer")
	hierarchyMeaningCodes     = codes("grouped-by", "is-a", "part-of", "classified-with")
	contentModeCodes          = codes("not-present", "example", "fragment", "complete", "supplement")
	filterOperatorCodes       = codes("=", "is-a", "descendent-of", "is-not-a", "regex", "in", "not-in", "generalizes", "child-of", "descendent-leaf", "exists")
	propertyTypeCodes         = codes("code", "Coding", "string", "integer", "boolean", "dateTime", "decimal")
	relationshipCodes         = codes("related-to", "equivalent", "source-is-narrower-than-target", "source-is-broader-than-target", "not-related-to")
	unmappedModeCodes         = codes("use-source-code", "fixed", "other-map")
)

// Valid reports whether the code belongs to its value set.
func (c PublicationStatus) Valid() bool           { return publicationStatusCodes.has(string(c)) }
func (c NarrativeStatus) Valid() bool             { return narrativeStatusCodes.has(string(c)) }
func (c AdministrativeGender) Valid() bool        { return administrativeGenderCodes.has(string(c)) }
func (c LinkType) Valid() bool                    { return linkTypeCodes.has(string(c)) }
func (c IdentifierUse) Valid() bool               { return identifierUseCodes.has(string(c)) }
func (c NameUse) Valid() bool                     { return nameUseCodes.has(string(c)) }
func (c ContactPointSystem) Valid() bool          { return contactPointSystemCodes.has(string(c)) }
func (c ContactPointUse) Valid() bool             { return contactPointUseCodes.has(string(c)) }
func (c AddressUse) Valid() bool                  { return addressUseCodes.has(string(c)) }
func (c AddressType) Valid() bool                 { return addressTypeCodes.has(string(c)) }
func (c QuantityComparator) Valid() bool          { return quantityComparatorCodes.has(string(c)) }
func (c CapabilityStatementKind) Valid() bool     { return capabilityKindCodes.has(string(c)) }
func (c RestfulCapabilityMode) Valid() bool       { return restfulModeCodes.has(string(c)) }
func (c TypeRestfulInteraction) Valid() bool      { return typeInteractionCodes.has(string(c)) }
func (c SystemRestfulInteraction) Valid() bool    { return systemInteractionCodes.has(string(c)) }
func (c ResourceVersionPolicy) Valid() bool       { return versionPolicyCodes.has(string(c)) }
func (c ConditionalReadStatus) Valid() bool       { return conditionalReadCodes.has(string(c)) }
func (c ConditionalDeleteStatus) Valid() bool     { return conditionalDeleteCodes.has(string(c)) }
func (c ReferenceHandlingPolicy) Valid() bool     { return referencePolicyCodes.has(string(c)) }
func (c SearchParamType) Valid() bool             { return searchParamTypeCodes.has(string(c)) }
func (c EventCapabilityMode) Valid() bool         { return eventModeCodes.has(string(c)) }
func (c DocumentMode) Valid() bool                { return documentModeCodes.has(string(c)) }
func (c CodeSystemHierarchyMeaning) Valid() bool  { return hierarchyMeaningCodes.has(string(c)) }
func (c CodeSystemContentMode) Valid() bool       { return contentModeCodes.has(string(c)) }
func (c FilterOperator) Valid() bool              { return filterOperatorCodes.has(string(c)) }
func (c PropertyType) Valid() bool                { return propertyTypeCodes.has(string(c)) }
func (c ConceptMapRelationship) Valid() bool      { return relationshipCodes.has(string(c)) }
func (c ConceptMapGroupUnmappedMode) Valid() bool { return unmappedModeCodes.has(string(c)) }
