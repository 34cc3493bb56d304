package mapping

import (
	"fmt"
	"sort"

	"github.com/gofhir/converter/node"
)

// Dispatcher routes resource roots to the processor registered for their
// resource type. R is the target resource interface.
//
// Routes are registered while a registry is being built; afterwards the
// dispatcher is read-only and safe for concurrent use.
type Dispatcher[R any] struct {
	routes map[string]func(node.Node) (R, error)
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher[R any]() *Dispatcher[R] {
	return &Dispatcher[R]{routes: make(map[string]func(node.Node) (R, error))}
}

// Route registers p for its type name. *T must implement R.
func Route[R, T any](d *Dispatcher[R], p *Processor[T]) {
	if _, ok := any((*T)(nil)).(R); !ok {
		var zero *R
		panic(fmt.Sprintf("mapping: *%s does not implement %T", p.name, zero))
	}
	if _, dup := d.routes[p.name]; dup {
		panic(fmt.Sprintf("mapping: resource type %s routed twice", p.name))
	}
	d.routes[p.name] = func(n node.Node) (R, error) {
		v, err := p.Extract(n)
		if err != nil {
			var zero R
			return zero, err
		}
		return any(v).(R), nil
	}
}

// Extract converts a top level resource root. An unknown resource type
// yields *UnknownResourceTypeError; any other failure is a *FieldError whose
// path starts with the resource type. Nothing is returned on failure.
func (d *Dispatcher[R]) Extract(n node.Node) (R, error) {
	rt := n.ResourceType()
	r, err := d.Nested(n)
	if err != nil {
		if _, unknown := err.(*UnknownResourceTypeError); unknown {
			return r, err
		}
		return r, Within(rt, err)
	}
	return r, nil
}

// Nested converts a resource root found inside another resource, such as a
// contained resource. Errors are left for the enclosing field to attribute.
func (d *Dispatcher[R]) Nested(n node.Node) (R, error) {
	rt := n.ResourceType()
	route, ok := d.routes[rt]
	if !ok {
		var zero R
		return zero, &UnknownResourceTypeError{ResourceType: rt}
	}
	return route(n)
}

// Supports reports whether rt has a route.
func (d *Dispatcher[R]) Supports(rt string) bool {
	_, ok := d.routes[rt]
	return ok
}

// ResourceTypes lists the routed resource types in sorted order.
func (d *Dispatcher[R]) ResourceTypes() []string {
	out := make([]string, 0, len(d.routes))
	for rt := range d.routes {
		out = append(out, rt)
	}
	sort.Strings(out)
	return out
}
