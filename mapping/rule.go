package mapping

// Action is what a table entry does with a matching child node.
type Action int

const (
	// Assign sets a singular slot; a later node overwrites an earlier one.
	Assign Action = iota
	// Append adds to a repeated slot in document order.
	Append
	// Merge folds a primitive's id/extension carrier onto its value.
	Merge
	// Drop ignores the node.
	Drop
)

func (a Action) String() string {
	switch a {
	case Assign:
		return "assign"
	case Append:
		return "append"
	case Merge:
		return "merge"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// MarshalText renders the action by name in JSON and YAML reports.
func (a Action) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Policy records how a source element relates to the target version.
type Policy int

const (
	// Carry keeps the element under the same name and shape.
	Carry Policy = iota
	// Rename keeps the content under a different target name.
	Rename
	// Restructure changes cardinality, type or value encoding.
	Restructure
	// Remove marks an element that has no counterpart in the target version.
	Remove
)

func (p Policy) String() string {
	switch p {
	case Carry:
		return "carry"
	case Rename:
		return "rename"
	case Restructure:
		return "restructure"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// MarshalText renders the policy by name in JSON and YAML reports.
func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Rule describes one table entry.
type Rule struct {
	// Name is the source node name the entry matches.
	Name string `json:"name" yaml:"name"`
	// Target is the target element name. It equals Name unless renamed.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Action Action `json:"action" yaml:"action"`
	Policy Policy `json:"policy" yaml:"policy"`
	// Note explains a rename, restructure or removal.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
	// Origin is the type whose table declared the entry.
	Origin string `json:"origin" yaml:"origin"`
}

// Carrier reports whether the rule matches a primitive carrier node.
func (r Rule) Carrier() bool {
	return len(r.Name) > 1 && r.Name[0] == '_'
}

// Table is the type-erased view of a processor used for introspection.
type Table interface {
	// TypeName is the source type the table converts, e.g. "HumanName" or
	// "ConceptMap.group".
	TypeName() string
	// Lineage is the delegation chain, starting with the type itself.
	Lineage() []string
	// Rules lists every entry, inherited ones included, in resolution order.
	Rules() []Rule
	// Primitive reports whether the type parses node text.
	Primitive() bool
}
