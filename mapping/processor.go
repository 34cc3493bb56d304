// Package mapping is the generic engine that converts a source node tree into
// a typed target value by folding children through declarative tables.
//
// A Processor owns the table for one source type. Tables are lists of
// fields keyed by node name; each field assigns, appends, merges or drops the
// matching child. A processor inherits the resolved fields of its base
// processor at Bind time, so the delegation chain (for example Patient →
// DomainResource → Resource, or HumanName → Element) is flattened once and a
// conversion is a single map lookup per child. Names no layer knows about are
// ignored, which is the behaviour of the Element terminal.
//
// Processors are declared before they are bound so tables may refer to each
// other and to themselves (recursive components). After Bind a processor is
// immutable and safe for concurrent use.
package mapping

import (
	"fmt"

	"github.com/gofhir/converter/node"
)

// Processor converts nodes of one source type into values of T.
type Processor[T any] struct {
	name      string
	primitive bool
	parse     func(string, *T) error
	hasValue  func(*T) bool
	finish    func(*T) error

	fields  map[string]Field[T]
	order   []Field[T]
	lineage []string
	bound   bool
}

// Declare creates an unbound processor for a complex type or component.
func Declare[T any](name string) *Processor[T] {
	return &Processor[T]{name: name}
}

// DeclarePrimitive creates an unbound processor for a primitive type. parse
// converts the node text into the value; children (id, extension) are
// handled by the bound table.
func DeclarePrimitive[T any, PT interface {
	*T
	HasValue() bool
}](name string, parse func(string, *T) error) *Processor[T] {
	return &Processor[T]{
		name:      name,
		primitive: true,
		parse:     parse,
		hasValue:  func(v *T) bool { return PT(v).HasValue() },
	}
}

// Layer is the resolved table a processor inherits from its base.
type Layer[T any] struct {
	lineage []string
	fields  []Field[T]
}

// Root is the empty layer. A processor bound on Root is a chain terminal.
func Root[T any]() Layer[T] {
	return Layer[T]{}
}

// Inherit lifts the resolved fields of base onto T. project returns the part
// of T the base converts into, usually an embedded struct.
func Inherit[B, T any](base *Processor[B], project func(*T) *B) Layer[T] {
	if !base.bound {
		panic(fmt.Sprintf("mapping: base %s must be bound before it is inherited", base.name))
	}
	fields := make([]Field[T], 0, len(base.order))
	for _, f := range base.order {
		fields = append(fields, lift(f, project))
	}
	return Layer[T]{lineage: base.Lineage(), fields: fields}
}

func lift[B, T any](f Field[B], project func(*T) *B) Field[T] {
	out := Field[T]{Rule: f.Rule, carrier: f.carrier, suffix: f.suffix}
	if f.apply != nil {
		apply := f.apply
		out.apply = func(n node.Node, cur *T, st *fold) error {
			return apply(n, project(cur), st)
		}
	}
	return out
}

// Bind resolves the processor's table: the base layer first, then entries.
// An entry may shadow an inherited name; declaring the same name twice in
// entries panics. Bind may be called once.
func (p *Processor[T]) Bind(base Layer[T], entries ...Fields[T]) *Processor[T] {
	if p.bound {
		panic(fmt.Sprintf("mapping: %s bound twice", p.name))
	}

	p.fields = make(map[string]Field[T], len(base.fields)+len(entries)*2)
	p.order = make([]Field[T], 0, len(base.fields)+len(entries)*2)
	for _, f := range base.fields {
		p.fields[f.Name] = f
		p.order = append(p.order, f)
	}

	own := make(map[string]bool)
	for _, fs := range entries {
		for _, f := range fs {
			if own[f.Name] {
				panic(fmt.Sprintf("mapping: %s declares %q twice", p.name, f.Name))
			}
			own[f.Name] = true
			f.Origin = p.name
			if f.Target == "" {
				f.Target = f.Name
			}
			if _, inherited := p.fields[f.Name]; inherited {
				p.replace(f)
			} else {
				p.order = append(p.order, f)
			}
			p.fields[f.Name] = f
		}
	}

	p.lineage = append([]string{p.name}, base.lineage...)
	p.bound = true
	return p
}

func (p *Processor[T]) replace(f Field[T]) {
	for i := range p.order {
		if p.order[i].Name == f.Name {
			p.order[i] = f
			return
		}
	}
}

// Finish registers a hook run after all children of a node have been folded.
// It is for restructurings that need the whole element, such as combining
// two source elements into one target value.
func (p *Processor[T]) Finish(fn func(*T) error) *Processor[T] {
	p.finish = fn
	return p
}

// Extract converts n into a new T. On success the result is never nil, even
// when no child matched.
func (p *Processor[T]) Extract(n node.Node) (*T, error) {
	v := new(T)
	if err := p.Fill(n, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Fill converts n into an existing value: the node text for primitives, then
// every child in document order.
func (p *Processor[T]) Fill(n node.Node, cur *T) error {
	if p.parse != nil {
		if text, ok := n.Text(); ok {
			if err := p.parse(text, cur); err != nil {
				return err
			}
		}
	}
	if err := p.Fold(n, cur); err != nil {
		return err
	}
	if p.finish != nil {
		return p.finish(cur)
	}
	return nil
}

// Fold applies every child of n to cur without looking at the node text.
func (p *Processor[T]) Fold(n node.Node, cur *T) error {
	var st fold
	for _, c := range n.Children() {
		if err := p.process(c, cur, &st); err != nil {
			return err
		}
	}
	return nil
}

// Process applies one child node to cur. Unknown names are ignored.
func (p *Processor[T]) Process(n node.Node, cur *T) error {
	return p.process(n, cur, &fold{})
}

func (p *Processor[T]) process(n node.Node, cur *T, st *fold) error {
	if !p.bound {
		panic(fmt.Sprintf("mapping: %s used before Bind", p.name))
	}
	f, ok := p.fields[n.Name()]
	if !ok || f.apply == nil {
		return nil
	}
	if err := f.apply(n, cur, st); err != nil {
		return prefix(n.Name(), err)
	}
	return nil
}

// fold is the state of one Fold call: the singular slots a carrier created
// before their value was seen. Only those are filled in place.
type fold struct {
	placeholders map[any]struct{}
}

func (st *fold) mark(slot any) {
	if st.placeholders == nil {
		st.placeholders = make(map[any]struct{})
	}
	st.placeholders[slot] = struct{}{}
}

// take reports whether slot holds a carrier placeholder and clears the mark.
func (st *fold) take(slot any) bool {
	if _, ok := st.placeholders[slot]; !ok {
		return false
	}
	delete(st.placeholders, slot)
	return true
}

// Handles reports whether the table has an entry for name.
func (p *Processor[T]) Handles(name string) bool {
	_, ok := p.fields[name]
	return ok
}

// TypeName implements Table.
func (p *Processor[T]) TypeName() string { return p.name }

// Primitive implements Table.
func (p *Processor[T]) Primitive() bool { return p.primitive }

// Bound reports whether Bind has been called.
func (p *Processor[T]) Bound() bool { return p.bound }

// Lineage implements Table.
func (p *Processor[T]) Lineage() []string {
	out := make([]string, len(p.lineage))
	copy(out, p.lineage)
	return out
}

// Rules implements Table.
func (p *Processor[T]) Rules() []Rule {
	out := make([]Rule, len(p.order))
	for i, f := range p.order {
		out[i] = f.Rule
	}
	return out
}

// hasText reports whether a primitive value already holds a parsed value.
func (p *Processor[T]) hasText(v *T) bool {
	return p.hasValue != nil && p.hasValue(v)
}
