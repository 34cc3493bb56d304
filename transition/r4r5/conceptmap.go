package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
	"github.com/gofhir/converter/node"
	"github.com/gofhir/converter/scalar"
)

// EquivalenceExtension keeps the R4 ConceptMap equivalence code on the
// converted target, since relationship is coarser.
const EquivalenceExtension = "http://hl7.org/fhir/4.0/StructureDefinition/extension-ConceptMap.group.element.target.equivalence"

// pendingVersion marks a group source or target version that still has to
// be folded into its canonical. It never survives a conversion.
const pendingVersion = "urn:gofhir:converter:pending-version"

// relationships maps R4 ConceptMapEquivalence onto R5 relationship codes.
// An empty relationship leaves the element unset.
var relationships = map[string]r5.ConceptMapRelationship{
	"relatedto":   r5.ConceptMapRelationshipRelatedTo,
	"inexact":     r5.ConceptMapRelationshipRelatedTo,
	"equivalent":  r5.ConceptMapRelationshipEquivalent,
	"equal":       r5.ConceptMapRelationshipEquivalent,
	"wider":       r5.ConceptMapRelationshipSourceIsNarrowerThanTarget,
	"subsumes":    r5.ConceptMapRelationshipSourceIsNarrowerThanTarget,
	"narrower":    r5.ConceptMapRelationshipSourceIsBroaderThanTarget,
	"specializes": r5.ConceptMapRelationshipSourceIsBroaderThanTarget,
	"disjoint":    r5.ConceptMapRelationshipNotRelatedTo,
	"unmatched":   "",
}

type conceptMap struct {
	resource  *mapping.Processor[r5.ConceptMap]
	group     *mapping.Processor[r5.ConceptMapGroup]
	element   *mapping.Processor[r5.ConceptMapElement]
	target    *mapping.Processor[r5.ConceptMapElementTarget]
	dependsOn *mapping.Processor[r5.ConceptMapDependsOn]
	unmapped  *mapping.Processor[r5.ConceptMapGroupUnmapped]
}

func (r *Registry) declareConceptMap() {
	c := &r.conceptMap
	c.resource = mapping.Declare[r5.ConceptMap]("ConceptMap")
	c.group = mapping.Declare[r5.ConceptMapGroup]("ConceptMap.group")
	c.element = mapping.Declare[r5.ConceptMapElement]("ConceptMap.group.element")
	c.target = mapping.Declare[r5.ConceptMapElementTarget]("ConceptMap.group.element.target")
	c.dependsOn = mapping.Declare[r5.ConceptMapDependsOn]("ConceptMap.group.element.target.dependsOn")
	c.unmapped = mapping.Declare[r5.ConceptMapGroupUnmapped]("ConceptMap.group.unmapped")
}

func (r *Registry) bindConceptMap() {
	c := &r.conceptMap

	bound(r, c.dependsOn.Bind(backboneOf(r, func(v *r5.ConceptMapDependsOn) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("property", r.code, func(v *r5.ConceptMapDependsOn) **r5.Code { return &v.Attribute }).
			To("attribute"),
		mapping.Removed[r5.ConceptMapDependsOn]("system", "the attribute no longer names a code system"),
		mapping.As("value", func(v *r5.ConceptMapDependsOn) *r5.ConceptMapDependsOnValue { return &v.Value },
			mapping.Variant[r5.ConceptMapDependsOnValue]("String", r.str)).
			To("valueString").
			Restructured("string became value[x]"),
		mapping.Removed[r5.ConceptMapDependsOn]("display", "no R5 counterpart"),
	))

	bound(r, c.target.Bind(backboneOf(r, func(v *r5.ConceptMapElementTarget) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.code, func(v *r5.ConceptMapElementTarget) **r5.Code { return &v.Code }),
		mapping.One("display", r.str, func(v *r5.ConceptMapElementTarget) **r5.String { return &v.Display }),
		mapping.Custom("equivalence", mapping.Assign, r.equivalence).
			To("relationship").
			Restructured("mapped onto relationship; the R4 code is kept in " + EquivalenceExtension),
		mapping.Custom[r5.ConceptMapElementTarget]("_equivalence", mapping.Drop, nil).
			Restructured("the R4 code is kept as an extension value"),
		mapping.One("comment", r.str, func(v *r5.ConceptMapElementTarget) **r5.String { return &v.Comment }),
		mapping.Many("dependsOn", c.dependsOn, func(v *r5.ConceptMapElementTarget) *[]r5.ConceptMapDependsOn { return &v.DependsOn }),
		mapping.Many("product", c.dependsOn, func(v *r5.ConceptMapElementTarget) *[]r5.ConceptMapDependsOn { return &v.Product }),
	))

	bound(r, c.element.Bind(backboneOf(r, func(v *r5.ConceptMapElement) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("code", r.code, func(v *r5.ConceptMapElement) **r5.Code { return &v.Code }),
		mapping.One("display", r.str, func(v *r5.ConceptMapElement) **r5.String { return &v.Display }),
		mapping.Many("target", c.target, func(v *r5.ConceptMapElement) *[]r5.ConceptMapElementTarget { return &v.Target }),
	))

	bound(r, c.unmapped.Bind(backboneOf(r, func(v *r5.ConceptMapGroupUnmapped) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.Recode("mode", r.codes.unmappedMode, func(v *r5.ConceptMapGroupUnmapped) **r5.Enum[r5.ConceptMapGroupUnmappedMode] { return &v.Mode }, recodeUnmappedMode).
			Restructured("provided became use-source-code"),
		mapping.One("code", r.code, func(v *r5.ConceptMapGroupUnmapped) **r5.Code { return &v.Code }),
		mapping.One("display", r.str, func(v *r5.ConceptMapGroupUnmapped) **r5.String { return &v.Display }),
		mapping.One("url", r.canonical, func(v *r5.ConceptMapGroupUnmapped) **r5.Canonical { return &v.OtherMap }).
			To("otherMap"),
	))

	source := func(v *r5.ConceptMapGroup) **r5.Canonical { return &v.Source }
	target := func(v *r5.ConceptMapGroup) **r5.Canonical { return &v.Target }
	c.group.Finish(func(g *r5.ConceptMapGroup) error {
		g.Source = foldVersion(g.Source)
		g.Target = foldVersion(g.Target)
		return nil
	})
	bound(r, c.group.Bind(backboneOf(r, func(v *r5.ConceptMapGroup) *r5.BackboneElement { return &v.BackboneElement }),
		mapping.One("source", r.canonical, source).
			Restructured("uri became canonical carrying sourceVersion"),
		mapping.Annotate("sourceVersion", source, stashVersion).
			To("source").
			Restructured("folded into source as canonical|version"),
		mapping.Custom[r5.ConceptMapGroup]("_sourceVersion", mapping.Drop, nil).
			Restructured("folded into source"),
		mapping.One("target", r.canonical, target).
			Restructured("uri became canonical carrying targetVersion"),
		mapping.Annotate("targetVersion", target, stashVersion).
			To("target").
			Restructured("folded into target as canonical|version"),
		mapping.Custom[r5.ConceptMapGroup]("_targetVersion", mapping.Drop, nil).
			Restructured("folded into target"),
		mapping.Many("element", c.element, func(v *r5.ConceptMapGroup) *[]r5.ConceptMapElement { return &v.Element }),
		mapping.One("unmapped", c.unmapped, func(v *r5.ConceptMapGroup) **r5.ConceptMapGroupUnmapped { return &v.Unmapped }),
	))

	scope := func(base string, slot func(*r5.ConceptMap) *r5.ConceptMapScope) mapping.Fields[r5.ConceptMap] {
		return mapping.Choice(base, slot,
			mapping.Variant[r5.ConceptMapScope]("Uri", r.uri),
			mapping.Variant[r5.ConceptMapScope]("Canonical", r.canonical),
		).To(base + "Scope")
	}

	bound(r, c.resource.Bind(domainOf(r, func(v *r5.ConceptMap) *r5.DomainResource { return &v.DomainResource }),
		mapping.One("url", r.uri, func(v *r5.ConceptMap) **r5.Uri { return &v.Url }),
		mapping.Many("identifier", r.identifier, func(v *r5.ConceptMap) *[]r5.Identifier { return &v.Identifier }).
			Restructured("0..1 became 0..*"),
		mapping.One("version", r.str, func(v *r5.ConceptMap) **r5.String { return &v.Version }),
		mapping.One("name", r.str, func(v *r5.ConceptMap) **r5.String { return &v.Name }),
		mapping.One("title", r.str, func(v *r5.ConceptMap) **r5.String { return &v.Title }),
		mapping.One("status", r.codes.publicationStatus, func(v *r5.ConceptMap) **r5.Enum[r5.PublicationStatus] { return &v.Status }),
		mapping.One("experimental", r.boolean, func(v *r5.ConceptMap) **r5.Boolean { return &v.Experimental }),
		mapping.One("date", r.dateTime, func(v *r5.ConceptMap) **r5.DateTime { return &v.Date }),
		mapping.One("publisher", r.str, func(v *r5.ConceptMap) **r5.String { return &v.Publisher }),
		mapping.Many("contact", r.contactDetail, func(v *r5.ConceptMap) *[]r5.ContactDetail { return &v.Contact }),
		mapping.One("description", r.markdown, func(v *r5.ConceptMap) **r5.Markdown { return &v.Description }),
		mapping.Many("useContext", r.usageContext, func(v *r5.ConceptMap) *[]r5.UsageContext { return &v.UseContext }),
		mapping.Many("jurisdiction", r.codeableConcept, func(v *r5.ConceptMap) *[]r5.CodeableConcept { return &v.Jurisdiction }),
		mapping.One("purpose", r.markdown, func(v *r5.ConceptMap) **r5.Markdown { return &v.Purpose }),
		mapping.One("copyright", r.markdown, func(v *r5.ConceptMap) **r5.Markdown { return &v.Copyright }),
		scope("source", func(v *r5.ConceptMap) *r5.ConceptMapScope { return &v.SourceScope }),
		scope("target", func(v *r5.ConceptMap) *r5.ConceptMapScope { return &v.TargetScope }),
		mapping.Many("group", c.group, func(v *r5.ConceptMap) *[]r5.ConceptMapGroup { return &v.Group }),
	))
	route(r, c.resource)
}

// equivalence sets the R5 relationship for an R4 equivalence code and keeps
// the original code as an extension. A repeated equivalence replaces both.
func (r *Registry) equivalence(n node.Node, t *r5.ConceptMapElementTarget) error {
	text, ok := n.Text()
	if !ok {
		return nil
	}
	rel, known := relationships[text]
	if !known {
		return &scalar.SyntaxError{Type: "ConceptMapEquivalence", Literal: text}
	}

	t.Relationship = nil
	if rel != "" {
		t.Relationship = &r5.Enum[r5.ConceptMapRelationship]{Value: &rel}
	}

	kept := t.Extension[:0]
	for _, ext := range t.Extension {
		if ext.Url == nil || *ext.Url != EquivalenceExtension {
			kept = append(kept, ext)
		}
	}
	code := text
	t.Extension = append(kept, r5.Extension{
		Url:   r5.Ptr(EquivalenceExtension),
		Value: &r5.Code{Value: &code},
	})
	return nil
}

func recodeUnmappedMode(s string) (string, bool) {
	if s == "provided" {
		return string(r5.ConceptMapGroupUnmappedModeUseSourceCode), true
	}
	return s, false
}

// stashVersion records a group version on its canonical. The canonical may
// still be a placeholder; foldVersion joins both once the group is complete.
func stashVersion(n node.Node, c *r5.Canonical) error {
	text, ok := n.Text()
	if !ok {
		return nil
	}
	c.Extension = append(dropPending(c.Extension), r5.Extension{
		Url:   r5.Ptr(pendingVersion),
		Value: &r5.String{Value: &text},
	})
	return nil
}

// foldVersion turns a canonical plus its stashed version into
// "canonical|version". A version without a canonical is dropped, and a
// canonical left with nothing in it becomes nil.
func foldVersion(c *r5.Canonical) *r5.Canonical {
	if c == nil {
		return nil
	}
	var version *string
	for _, ext := range c.Extension {
		if ext.Url != nil && *ext.Url == pendingVersion {
			if s, ok := ext.Value.(*r5.String); ok {
				version = s.Value
			}
		}
	}
	if version != nil {
		c.Extension = dropPending(c.Extension)
		if len(c.Extension) == 0 {
			c.Extension = nil
		}
		if c.Value != nil {
			joined := *c.Value + "|" + *version
			c.Value = &joined
		}
	}
	if c.Value == nil && c.Id == nil && len(c.Extension) == 0 {
		return nil
	}
	return c
}

func dropPending(exts []r5.Extension) []r5.Extension {
	kept := exts[:0]
	for _, ext := range exts {
		if ext.Url == nil || *ext.Url != pendingVersion {
			kept = append(kept, ext)
		}
	}
	return kept
}
