package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
)

// bindBase binds Element, the chain terminal. Names it does not list are
// ignored.
func (r *Registry) bindBase() {
	r.element = mapping.Declare[r5.Element]("Element")
	bound(r, r.element.Bind(mapping.Root[r5.Element](),
		mapping.Text("id", func(v *r5.Element) **string { return &v.Id }),
		mapping.Many("extension", r.extension, func(v *r5.Element) *[]r5.Extension { return &v.Extension }),
	))
}

func (r *Registry) bindBackbone() {
	r.backbone = mapping.Declare[r5.BackboneElement]("BackboneElement")
	bound(r, r.backbone.Bind(mapping.Inherit(r.element, func(v *r5.BackboneElement) *r5.Element { return &v.Element }),
		mapping.Many("modifierExtension", r.extension, func(v *r5.BackboneElement) *[]r5.Extension { return &v.ModifierExtension }),
	))
}

// bindResource binds Resource and DomainResource. Contained resources go
// back through the dispatcher.
func (r *Registry) bindResource() {
	r.resource = mapping.Declare[r5.BaseResource]("Resource")
	bound(r, r.resource.Bind(mapping.Root[r5.BaseResource](),
		mapping.Text("id", func(v *r5.BaseResource) **string { return &v.Id }),
		mapping.One("meta", r.meta, func(v *r5.BaseResource) **r5.Meta { return &v.Meta }),
		mapping.One("implicitRules", r.uri, func(v *r5.BaseResource) **r5.Uri { return &v.ImplicitRules }),
		mapping.One("language", r.code, func(v *r5.BaseResource) **r5.Code { return &v.Language }),
	))

	r.domain = mapping.Declare[r5.DomainResource]("DomainResource")
	bound(r, r.domain.Bind(mapping.Inherit(r.resource, func(v *r5.DomainResource) *r5.BaseResource { return &v.BaseResource }),
		mapping.One("text", r.narrative, func(v *r5.DomainResource) **r5.Narrative { return &v.Text }),
		mapping.Each("contained", r.dispatcher.Nested, func(v *r5.DomainResource) *[]r5.Resource { return &v.Contained }),
		mapping.Many("extension", r.extension, func(v *r5.DomainResource) *[]r5.Extension { return &v.Extension }),
		mapping.Many("modifierExtension", r.extension, func(v *r5.DomainResource) *[]r5.Extension { return &v.ModifierExtension }),
	))
}

// backboneOf is the inherited layer of an inline component.
func backboneOf[T any](r *Registry, project func(*T) *r5.BackboneElement) mapping.Layer[T] {
	return mapping.Inherit(r.backbone, project)
}

// elementOf is the inherited layer of a complex datatype.
func elementOf[T any](r *Registry, project func(*T) *r5.Element) mapping.Layer[T] {
	return mapping.Inherit(r.element, project)
}

// domainOf is the inherited layer of a resource.
func domainOf[T any](r *Registry, project func(*T) *r5.DomainResource) mapping.Layer[T] {
	return mapping.Inherit(r.domain, project)
}
