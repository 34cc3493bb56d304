package node

// Tree is an in-memory Node. It is the fixture builder used by tests and the
// target the format adapters decode into.
type Tree struct {
	name         string
	text         string
	hasText      bool
	children     []Node
	resourceType string
}

// Element creates a complex element with the given children.
func Element(name string, children ...Node) *Tree {
	return &Tree{name: name, children: children}
}

// Value creates a primitive element carrying a scalar literal.
func Value(name, text string, children ...Node) *Tree {
	return &Tree{name: name, text: text, hasText: true, children: children}
}

// Resource creates a resource root. The node name is the resource type, as
// for top level resources; use Contained for nodes nested under a parent
// element such as "contained" or "resource".
func Resource(resourceType string, children ...Node) *Tree {
	return &Tree{name: resourceType, resourceType: resourceType, children: children}
}

// Contained creates a resource root nested under the element name.
func Contained(name, resourceType string, children ...Node) *Tree {
	return &Tree{name: name, resourceType: resourceType, children: children}
}

// Values creates one primitive sibling per literal, all named name.
func Values(name string, texts ...string) []Node {
	out := make([]Node, len(texts))
	for i, t := range texts {
		out[i] = Value(name, t)
	}
	return out
}

// Add appends children and returns the tree for chaining.
func (t *Tree) Add(children ...Node) *Tree {
	t.children = append(t.children, children...)
	return t
}

// SetText assigns the scalar literal.
func (t *Tree) SetText(s string) *Tree {
	t.text = s
	t.hasText = true
	return t
}

// SetResourceType marks the tree as a resource root.
func (t *Tree) SetResourceType(rt string) *Tree {
	t.resourceType = rt
	return t
}

// Name implements Node.
func (t *Tree) Name() string { return t.name }

// Text implements Node.
func (t *Tree) Text() (string, bool) { return t.text, t.hasText }

// Children implements Node.
func (t *Tree) Children() []Node { return t.children }

// ResourceType implements Node.
func (t *Tree) ResourceType() string { return t.resourceType }
