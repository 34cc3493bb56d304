package r4r5

import (
	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/model/r5"
	"github.com/gofhir/converter/scalar"
)

// check validates a string based literal when strict formats are enabled.
func (r *Registry) check(typ, s string) error {
	if !r.strict {
		return nil
	}
	return scalar.Check(typ, s)
}

// literal parses string based primitives, which keep their text.
func literal[T any, PT interface {
	*T
	HasValue() bool
}](r *Registry, typ string, value func(*T) **string) *mapping.Processor[T] {
	return mapping.DeclarePrimitive[T, PT](typ, func(s string, v *T) error {
		if err := r.check(typ, s); err != nil {
			return err
		}
		*value(v) = &s
		return nil
	})
}

func (r *Registry) declarePrimitives() {
	r.boolean = mapping.DeclarePrimitive[r5.Boolean](
		"boolean", func(s string, v *r5.Boolean) error {
			b, err := scalar.Bool(s)
			if err != nil {
				return err
			}
			v.Value = &b
			return nil
		})
	r.integer = mapping.DeclarePrimitive[r5.Integer](
		"integer", func(s string, v *r5.Integer) error {
			n, err := scalar.Int32(s)
			if err != nil {
				return err
			}
			v.Value = &n
			return nil
		})
	r.integer64 = mapping.DeclarePrimitive[r5.Integer64](
		"integer64", func(s string, v *r5.Integer64) error {
			n, err := scalar.Int64(s)
			if err != nil {
				return err
			}
			v.Value = &n
			return nil
		})
	r.unsignedInt = mapping.DeclarePrimitive[r5.UnsignedInt](
		"unsignedInt", func(s string, v *r5.UnsignedInt) error {
			n, err := scalar.UnsignedInt(s)
			if err != nil {
				return err
			}
			v.Value = &n
			return nil
		})
	r.positiveInt = mapping.DeclarePrimitive[r5.PositiveInt](
		"positiveInt", func(s string, v *r5.PositiveInt) error {
			n, err := scalar.PositiveInt(s)
			if err != nil {
				return err
			}
			v.Value = &n
			return nil
		})
	r.decimal = mapping.DeclarePrimitive[r5.Decimal](
		"decimal", func(s string, v *r5.Decimal) error {
			d, err := scalar.Decimal(s)
			if err != nil {
				return err
			}
			v.Value = &d
			return nil
		})
	r.base64Binary = mapping.DeclarePrimitive[r5.Base64Binary](
		"base64Binary", func(s string, v *r5.Base64Binary) error {
			b, err := scalar.Base64(s)
			if err != nil {
				return err
			}
			v.Value = b
			return nil
		})

	r.str = literal[r5.String](r, "string", func(v *r5.String) **string { return &v.Value })
	r.uri = literal[r5.Uri](r, "uri", func(v *r5.Uri) **string { return &v.Value })
	r.url = literal[r5.Url](r, "url", func(v *r5.Url) **string { return &v.Value })
	r.canonical = literal[r5.Canonical](r, "canonical", func(v *r5.Canonical) **string { return &v.Value })
	r.code = literal[r5.Code](r, "code", func(v *r5.Code) **string { return &v.Value })
	r.id = literal[r5.Id](r, "id", func(v *r5.Id) **string { return &v.Value })
	r.oid = literal[r5.Oid](r, "oid", func(v *r5.Oid) **string { return &v.Value })
	r.uuid = literal[r5.Uuid](r, "uuid", func(v *r5.Uuid) **string { return &v.Value })
	r.markdown = literal[r5.Markdown](r, "markdown", func(v *r5.Markdown) **string { return &v.Value })
	r.instant = literal[r5.Instant](r, "instant", func(v *r5.Instant) **string { return &v.Value })
	r.date = literal[r5.Date](r, "date", func(v *r5.Date) **string { return &v.Value })
	r.dateTime = literal[r5.DateTime](r, "dateTime", func(v *r5.DateTime) **string { return &v.Value })
	r.time = literal[r5.Time](r, "time", func(v *r5.Time) **string { return &v.Value })
	r.xhtml = literal[r5.Xhtml](r, "xhtml", func(v *r5.Xhtml) **string { return &v.Value })
}

// bindPrimitives gives every primitive the Element table, so the id and
// extensions arriving through a "_name" carrier fold onto the value.
func (r *Registry) bindPrimitives() {
	bound(r, r.boolean.Bind(mapping.Inherit(r.element, func(v *r5.Boolean) *r5.Element { return &v.Element })))
	bound(r, r.integer.Bind(mapping.Inherit(r.element, func(v *r5.Integer) *r5.Element { return &v.Element })))
	bound(r, r.integer64.Bind(mapping.Inherit(r.element, func(v *r5.Integer64) *r5.Element { return &v.Element })))
	bound(r, r.unsignedInt.Bind(mapping.Inherit(r.element, func(v *r5.UnsignedInt) *r5.Element { return &v.Element })))
	bound(r, r.positiveInt.Bind(mapping.Inherit(r.element, func(v *r5.PositiveInt) *r5.Element { return &v.Element })))
	bound(r, r.decimal.Bind(mapping.Inherit(r.element, func(v *r5.Decimal) *r5.Element { return &v.Element })))
	bound(r, r.str.Bind(mapping.Inherit(r.element, func(v *r5.String) *r5.Element { return &v.Element })))
	bound(r, r.uri.Bind(mapping.Inherit(r.element, func(v *r5.Uri) *r5.Element { return &v.Element })))
	bound(r, r.url.Bind(mapping.Inherit(r.element, func(v *r5.Url) *r5.Element { return &v.Element })))
	bound(r, r.canonical.Bind(mapping.Inherit(r.element, func(v *r5.Canonical) *r5.Element { return &v.Element })))
	bound(r, r.code.Bind(mapping.Inherit(r.element, func(v *r5.Code) *r5.Element { return &v.Element })))
	bound(r, r.id.Bind(mapping.Inherit(r.element, func(v *r5.Id) *r5.Element { return &v.Element })))
	bound(r, r.oid.Bind(mapping.Inherit(r.element, func(v *r5.Oid) *r5.Element { return &v.Element })))
	bound(r, r.uuid.Bind(mapping.Inherit(r.element, func(v *r5.Uuid) *r5.Element { return &v.Element })))
	bound(r, r.markdown.Bind(mapping.Inherit(r.element, func(v *r5.Markdown) *r5.Element { return &v.Element })))
	bound(r, r.base64Binary.Bind(mapping.Inherit(r.element, func(v *r5.Base64Binary) *r5.Element { return &v.Element })))
	bound(r, r.instant.Bind(mapping.Inherit(r.element, func(v *r5.Instant) *r5.Element { return &v.Element })))
	bound(r, r.date.Bind(mapping.Inherit(r.element, func(v *r5.Date) *r5.Element { return &v.Element })))
	bound(r, r.dateTime.Bind(mapping.Inherit(r.element, func(v *r5.DateTime) *r5.Element { return &v.Element })))
	bound(r, r.time.Bind(mapping.Inherit(r.element, func(v *r5.Time) *r5.Element { return &v.Element })))
	bound(r, r.xhtml.Bind(mapping.Inherit(r.element, func(v *r5.Xhtml) *r5.Element { return &v.Element })))
}
