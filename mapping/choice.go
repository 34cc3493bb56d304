package mapping

import (
	"fmt"

	"github.com/gofhir/converter/node"
)

// Alt is one allowed type of a choice element. V is the choice interface.
type Alt[V any] struct {
	suffix    string
	primitive bool
	assign    func(node.Node, *V, *fold) error
	merge     func(node.Node, *V, *fold) error
}

// Variant declares that nodes named base+suffix decode through p, and that
// *P implements the choice interface V.
func Variant[V, P any](suffix string, p *Processor[P]) Alt[V] {
	if _, ok := any((*P)(nil)).(V); !ok {
		var zero *V
		panic(fmt.Sprintf("mapping: *%s variant %q does not implement %T", p.name, suffix, zero))
	}
	return Alt[V]{
		suffix:    suffix,
		primitive: p.primitive,
		assign: func(n node.Node, slot *V, st *fold) error {
			if st.take(slot) {
				if cur, ok := any(*slot).(*P); ok && cur != nil && !p.hasText(cur) {
					return p.Fill(n, cur)
				}
			}
			v, err := p.Extract(n)
			if err != nil {
				return err
			}
			*slot = any(v).(V)
			return nil
		},
		merge: func(n node.Node, slot *V, st *fold) error {
			cur, ok := any(*slot).(*P)
			if !ok || cur == nil {
				cur = new(P)
				*slot = any(cur).(V)
				st.mark(slot)
			}
			return p.Fold(n, cur)
		},
	}
}

// Choice registers one entry per variant, named base+suffix, all writing
// the same slot. The last variant seen wins. Primitive variants also get
// their "_base+suffix" carrier.
func Choice[T, V any](base string, slot func(*T) *V, alts ...Alt[V]) Fields[T] {
	fs := make(Fields[T], 0, len(alts)*2)
	for _, alt := range alts {
		fs = append(fs, choiceFields(base+alt.suffix, alt.suffix, slot, alt)...)
	}
	return fs
}

// As routes a node with a plain name into a choice slot as one fixed
// variant. It serves elements that become choices in the target version,
// such as a string element widened to value[x].
func As[T, V any](name string, slot func(*T) *V, alt Alt[V]) Fields[T] {
	fs := choiceFields(name, "", slot, alt)
	for i := range fs {
		fs[i].Policy = Restructure
	}
	return fs
}

func choiceFields[T, V any](name, suffix string, slot func(*T) *V, alt Alt[V]) Fields[T] {
	assign := alt.assign
	fs := Fields[T]{{
		Rule:   Rule{Name: name, Action: Assign},
		suffix: suffix,
		apply: func(n node.Node, cur *T, st *fold) error {
			return assign(n, slot(cur), st)
		},
	}}
	if alt.primitive {
		merge := alt.merge
		fs = append(fs, Field[T]{
			Rule:    Rule{Name: node.CarrierName(name), Action: Merge},
			carrier: true,
			suffix:  suffix,
			apply: func(n node.Node, cur *T, st *fold) error {
				return merge(n, slot(cur), st)
			},
		})
	}
	return fs
}

// Unsupported lists choice variants the target model does not carry. They
// are dropped like removed elements.
func Unsupported[T any](base, note string, suffixes ...string) Fields[T] {
	fs := make(Fields[T], 0, len(suffixes)*2)
	for _, s := range suffixes {
		fs = append(fs, Removed[T](base+s, note)...)
	}
	return fs
}
