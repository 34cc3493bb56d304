package mapping

import (
	"github.com/gofhir/converter/node"
)

// Field is one resolved table entry of a Processor[T].
type Field[T any] struct {
	Rule

	carrier bool
	suffix  string
	apply   func(node.Node, *T, *fold) error
}

// Fields is a group of entries produced by one helper, e.g. a primitive and
// its carrier, or every variant of a choice element.
type Fields[T any] []Field[T]

// To renames the target of every entry in the group. Choice variants keep
// their type suffix and carriers keep their underscore.
func (fs Fields[T]) To(target string) Fields[T] {
	out := make(Fields[T], len(fs))
	for i, f := range fs {
		f.Target = target + f.suffix
		if f.carrier {
			f.Target = node.CarrierName(f.Target)
		}
		f.Policy = Rename
		out[i] = f
	}
	return out
}

// Restructured marks the group as changing shape between versions.
func (fs Fields[T]) Restructured(note string) Fields[T] {
	out := make(Fields[T], len(fs))
	for i, f := range fs {
		f.Policy = Restructure
		f.Note = note
		out[i] = f
	}
	return out
}

// Noted attaches an explanatory note without changing the policy.
func (fs Fields[T]) Noted(note string) Fields[T] {
	out := make(Fields[T], len(fs))
	for i, f := range fs {
		f.Note = note
		out[i] = f
	}
	return out
}

// One assigns the converted child to a singular slot, replacing whatever a
// previous node left there. For primitives it also registers the "_name"
// carrier, which merges id and extensions onto the value. A carrier seen
// before its value leaves a placeholder that the value then fills in place.
func One[T, V any](name string, p *Processor[V], slot func(*T) **V) Fields[T] {
	fs := Fields[T]{{
		Rule: Rule{Name: name, Action: Assign},
		apply: func(n node.Node, cur *T, st *fold) error {
			dst := slot(cur)
			if st.take(dst) && *dst != nil && !p.hasText(*dst) {
				return p.Fill(n, *dst)
			}
			v, err := p.Extract(n)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
	}}
	if p.primitive {
		fs = append(fs, Field[T]{
			Rule:    Rule{Name: node.CarrierName(name), Action: Merge},
			carrier: true,
			apply: func(n node.Node, cur *T, st *fold) error {
				dst := slot(cur)
				if *dst == nil {
					*dst = new(V)
					st.mark(dst)
				}
				return p.Fold(n, *dst)
			},
		})
	}
	return fs
}

// Many appends the converted child to a repeated slot. For primitives the
// "_name" carrier merges onto the most recently appended item, which the
// JSON adapter guarantees is the value it annotates.
func Many[T, V any](name string, p *Processor[V], slot func(*T) *[]V) Fields[T] {
	fs := Fields[T]{{
		Rule: Rule{Name: name, Action: Append},
		apply: func(n node.Node, cur *T, _ *fold) error {
			dst := slot(cur)
			v, err := p.Extract(n)
			if err != nil {
				return atIndex(len(*dst), err)
			}
			*dst = append(*dst, *v)
			return nil
		},
	}}
	if p.primitive {
		fs = append(fs, Field[T]{
			Rule:    Rule{Name: node.CarrierName(name), Action: Merge},
			carrier: true,
			apply: func(n node.Node, cur *T, _ *fold) error {
				dst := slot(cur)
				if len(*dst) == 0 {
					*dst = append(*dst, *new(V))
				}
				last := len(*dst) - 1
				if err := p.Fold(n, &(*dst)[last]); err != nil {
					return atIndex(last, err)
				}
				return nil
			},
		})
	}
	return fs
}

// Each appends values produced by an arbitrary extractor, typically a
// dispatcher for contained resources.
func Each[T, V any](name string, extract func(node.Node) (V, error), slot func(*T) *[]V) Fields[T] {
	return Fields[T]{{
		Rule: Rule{Name: name, Action: Append},
		apply: func(n node.Node, cur *T, _ *fold) error {
			dst := slot(cur)
			v, err := extract(n)
			if err != nil {
				return atIndex(len(*dst), err)
			}
			*dst = append(*dst, v)
			return nil
		},
	}}
}

// Text assigns the raw node text to a plain string slot, for elements such
// as Element.id and Extension.url that are not themselves elements.
func Text[T any](name string, slot func(*T) **string) Fields[T] {
	return Fields[T]{{
		Rule: Rule{Name: name, Action: Assign},
		apply: func(n node.Node, cur *T, _ *fold) error {
			if text, ok := n.Text(); ok {
				*slot(cur) = &text
			}
			return nil
		},
	}}
}

// Removed lists an element that has no counterpart in the target version.
// The node and its carrier are dropped without error.
func Removed[T any](name, note string) Fields[T] {
	return Fields[T]{
		{Rule: Rule{Name: name, Action: Drop, Policy: Remove, Note: note}},
		{Rule: Rule{Name: node.CarrierName(name), Action: Drop, Policy: Remove, Note: note}, carrier: true},
	}
}

// Custom registers a hand written entry.
func Custom[T any](name string, action Action, fn func(node.Node, *T) error) Fields[T] {
	f := Field[T]{Rule: Rule{Name: name, Action: action}}
	if fn != nil {
		f.apply = func(n node.Node, cur *T, _ *fold) error { return fn(n, cur) }
	}
	return Fields[T]{f}
}

// Annotate applies fn to the value in a singular slot, for entries that
// decorate a sibling's value. An empty slot gets a placeholder that the
// sibling's value node then fills in place, as a carrier's would.
func Annotate[T, V any](name string, slot func(*T) **V, fn func(node.Node, *V) error) Fields[T] {
	return Fields[T]{{
		Rule: Rule{Name: name, Action: Merge},
		apply: func(n node.Node, cur *T, st *fold) error {
			dst := slot(cur)
			if *dst == nil {
				*dst = new(V)
				st.mark(dst)
			}
			return fn(n, *dst)
		},
	}}
}

// Recode is One with the node text rewritten by recode before conversion,
// for coded values whose vocabulary changed. recode returns false to leave
// the text unchanged.
func Recode[T, V any](name string, p *Processor[V], slot func(*T) **V, recode func(string) (string, bool)) Fields[T] {
	fs := One(name, p, slot)
	assign := fs[0].apply
	fs[0].apply = func(n node.Node, cur *T, st *fold) error {
		if text, ok := n.Text(); ok {
			if mapped, changed := recode(text); changed {
				n = retext(n, mapped)
			}
		}
		return assign(n, cur, st)
	}
	return fs
}

// retextNode overrides the text of a node and keeps everything else.
type retextNode struct {
	node.Node
	text string
}

func (r retextNode) Text() (string, bool) { return r.text, true }

func retext(n node.Node, text string) node.Node {
	return retextNode{Node: n, text: text}
}
