// Package filter selects source resources with FHIRPath predicates before
// they are converted.
package filter

import (
	"fmt"
	"strings"

	"github.com/gofhir/fhirpath"
	"github.com/gofhir/fhirpath/types"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/cache"
)

// Filter evaluates FHIRPath predicates against source JSON. Compiled
// expressions are kept in an LRU cache.
type Filter struct {
	exprs   *cache.Cache[string, *fhirpath.Expression]
	metrics *fc.Metrics
}

// New creates a filter caching up to size compiled expressions. m may be nil.
func New(size int, m *fc.Metrics) *Filter {
	return &Filter{
		exprs:   cache.New[string, *fhirpath.Expression](size),
		metrics: m,
	}
}

// Compile checks expr and caches its compiled form.
func (f *Filter) Compile(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := f.compiled(expr)
	return err
}

// Match reports whether resource satisfies expr. An empty expression
// matches everything.
//
// The result follows FHIRPath truthiness: an empty collection is false, a
// single boolean is its value, anything else is true.
func (f *Filter) Match(expr string, resource []byte) (bool, error) {
	if strings.TrimSpace(expr) == "" {
		return true, nil
	}

	compiled, err := f.compiled(expr)
	if err != nil {
		return false, err
	}

	result, err := compiled.Evaluate(resource)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", expr, err)
	}
	return truthy(result), nil
}

func (f *Filter) compiled(expr string) (*fhirpath.Expression, error) {
	compiled, hit, err := f.exprs.GetOrCompute(expr, func() (*fhirpath.Expression, error) {
		return fhirpath.Compile(expr)
	})
	if f.metrics != nil {
		if hit {
			f.metrics.RecordCacheHit()
		} else {
			f.metrics.RecordCacheMiss()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expr, err)
	}
	return compiled, nil
}

// Len returns the number of cached expressions.
func (f *Filter) Len() int {
	return f.exprs.Len()
}

// Clear drops every cached expression.
func (f *Filter) Clear() {
	f.exprs.Clear()
}

func truthy(result types.Collection) bool {
	if len(result) == 0 {
		return false
	}
	if len(result) == 1 {
		if b, ok := result[0].(types.Boolean); ok {
			return b.Bool()
		}
	}
	return true
}
