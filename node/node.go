// Package node defines the read-only labelled tree that converters walk.
//
// A Node is format agnostic: the JSON and XML adapters in the subpackages and
// the in-memory Tree builder all produce the same shape. Arrays are expanded
// into same-named siblings, primitive values surface as Text, and the
// id/extension carrier of a JSON primitive arrives as a sibling named with a
// leading underscore directly after the value it annotates.
package node

// Node is one element of a source resource tree.
//
// Implementations must be safe to read from a single goroutine and must
// return the same children, in the same order, on every call to Children.
type Node interface {
	// Name is the element name as it appears in the source (e.g. "given",
	// "valueString", "_birthDate").
	Name() string

	// Text returns the scalar literal of a primitive node. The boolean is
	// false when the node has no value (complex elements, or primitives that
	// only carry extensions).
	Text() (string, bool)

	// Children returns the ordered child nodes.
	Children() []Node

	// ResourceType is set on resource roots (top level, contained resources
	// and bundle entries) and empty everywhere else.
	ResourceType() string
}

// CarrierPrefix marks the sibling that carries id and extensions for a
// primitive value.
const CarrierPrefix = "_"

// CarrierName returns the carrier sibling name for a primitive element.
func CarrierName(name string) string {
	return CarrierPrefix + name
}

// IsCarrier reports whether name is a primitive carrier name.
func IsCarrier(name string) bool {
	return len(name) > 1 && name[0] == '_'
}

// Find returns the first child named name.
func Find(n Node, name string) (Node, bool) {
	for _, c := range n.Children() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// FindAll returns every child named name, in document order.
func FindAll(n Node, name string) []Node {
	var out []Node
	for _, c := range n.Children() {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and its descendants depth first in document order. Returning
// false from fn skips the descendants of that node.
func Walk(n Node, fn func(path []string, n Node) bool) {
	walk(nil, n, fn)
}

func walk(path []string, n Node, fn func([]string, Node) bool) {
	path = append(path, n.Name())
	if !fn(path, n) {
		return
	}
	for _, c := range n.Children() {
		walk(path, c, fn)
	}
}
