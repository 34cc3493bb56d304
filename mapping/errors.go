package mapping

import (
	"errors"
	"fmt"

	"github.com/gofhir/converter/pool"
)

// ErrUnknownResourceType matches any *UnknownResourceTypeError with errors.Is.
var ErrUnknownResourceType = errors.New("unknown resource type")

// UnknownResourceTypeError is returned when a resource root carries a type
// the dispatcher has no processor for.
type UnknownResourceTypeError struct {
	ResourceType string
}

func (e *UnknownResourceTypeError) Error() string {
	if e.ResourceType == "" {
		return "unknown resource type: node has no resourceType"
	}
	return fmt.Sprintf("unknown resource type %q", e.ResourceType)
}

// Is makes errors.Is(err, ErrUnknownResourceType) hold.
func (e *UnknownResourceTypeError) Is(target error) bool {
	return target == ErrUnknownResourceType
}

// Segment is one step of a FieldError path. Index is -1 for singular
// elements.
type Segment struct {
	Name  string
	Index int
}

// FieldError attributes a conversion failure to the node path where it
// happened. The path is built while the error unwinds, outermost first.
type FieldError struct {
	Path []Segment
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.PathString(), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// PathString renders the path in FHIRPath style, e.g.
// "Patient.name[0].given[1]".
func (e *FieldError) PathString() string {
	return pool.BuildPath(func(b *pool.PathBuilder) {
		for _, s := range e.Path {
			b.Element(s.Name)
			b.Index(s.Index)
		}
	})
}

// indexedError tags an error from a repeated slot with the item position so
// the enclosing Process call can record it on its path segment.
type indexedError struct {
	index int
	err   error
}

func (e *indexedError) Error() string { return e.err.Error() }

func (e *indexedError) Unwrap() error { return e.err }

func atIndex(i int, err error) error {
	return &indexedError{index: i, err: err}
}

// prefix records that err happened under the node named name.
func prefix(name string, err error) error {
	seg := Segment{Name: name, Index: -1}
	if ie, ok := err.(*indexedError); ok {
		seg.Index = ie.index
		err = ie.err
	}
	if fe, ok := err.(*FieldError); ok {
		fe.Path = append([]Segment{seg}, fe.Path...)
		return fe
	}
	return &FieldError{Path: []Segment{seg}, Err: err}
}

// Within prefixes err with a root segment, typically the resource type.
func Within(root string, err error) error {
	if err == nil {
		return nil
	}
	return prefix(root, err)
}
