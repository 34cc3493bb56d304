// Package schema reads R4 StructureDefinitions and audits the conversion
// tables against them.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/converter/pkg/logger"
)

const coreURLPrefix = "http://hl7.org/fhir/StructureDefinition/"

// Definition is the element list of one type or backbone component.
type Definition struct {
	// Name is the type name, e.g. "Patient" or "Patient.contact".
	Name string
	// Primitive is set for primitive datatypes.
	Primitive bool
	// Elements are the child node names in definition order, with choice
	// elements expanded to one name per allowed type.
	Elements []string
}

// Has reports whether name is a child of d.
func (d *Definition) Has(name string) bool {
	for _, e := range d.Elements {
		if e == name {
			return true
		}
	}
	return false
}

// LoadStats counts what a load read.
type LoadStats struct {
	StructureDefinitions int
	Ignored              int
	Errors               int
}

// Catalogue holds the definitions read from core StructureDefinitions.
// Profiles and other non-core definitions are ignored.
type Catalogue struct {
	defs map[string]*Definition
	log  *logger.Logger
}

// NewCatalogue creates an empty catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{
		defs: make(map[string]*Definition),
		log:  logger.Default(),
	}
}

// Definition returns the definition named name.
func (c *Catalogue) Definition(name string) (*Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Names lists every definition name, sorted.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of definitions.
func (c *Catalogue) Len() int { return len(c.defs) }

// LoadPath loads a JSON file, or every JSON file in a directory. A
// directory containing a "package" subdirectory is read as an NPM package.
func (c *Catalogue) LoadPath(path string) (*LoadStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load definitions: %w", err)
		}
		return c.LoadBytes(data)
	}

	dir := path
	if sub := filepath.Join(path, "package"); isDir(sub) {
		dir = sub
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}

	total := &LoadStats{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == "package.json" || name == ".index.json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			total.Errors++
			continue
		}
		stats, err := c.LoadBytes(data)
		if err != nil {
			c.log.Warn("skipping %s: %v", name, err)
			total.Errors++
			continue
		}
		total.StructureDefinitions += stats.StructureDefinitions
		total.Ignored += stats.Ignored
		total.Errors += stats.Errors
	}
	return total, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// LoadBytes loads a StructureDefinition or a Bundle of them, such as
// profiles-types.json and profiles-resources.json. Other resources are
// ignored.
func (c *Catalogue) LoadBytes(data []byte) (*LoadStats, error) {
	stats := &LoadStats{}

	rt, err := jsonparser.GetString(data, "resourceType")
	if err != nil {
		return nil, fmt.Errorf("read resourceType: %w", err)
	}

	switch rt {
	case "StructureDefinition":
		if err := c.loadDefinition(data, stats); err != nil {
			return nil, err
		}
	case "Bundle":
		_, err := jsonparser.ArrayEach(data, func(v []byte, _ jsonparser.ValueType, _ int, err error) {
			if err != nil {
				stats.Errors++
				return
			}
			res, typ, _, err := jsonparser.Get(v, "resource")
			if err != nil || typ != jsonparser.Object {
				return
			}
			if t, _ := jsonparser.GetString(res, "resourceType"); t != "StructureDefinition" {
				stats.Ignored++
				return
			}
			if err := c.loadDefinition(res, stats); err != nil {
				stats.Errors++
			}
		}, "entry")
		if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return nil, fmt.Errorf("read bundle entries: %w", err)
		}
	default:
		stats.Ignored++
	}
	return stats, nil
}

func (c *Catalogue) loadDefinition(data []byte, stats *LoadStats) error {
	var sd r4.StructureDefinition
	if err := json.Unmarshal(data, &sd); err != nil {
		return fmt.Errorf("decode StructureDefinition: %w", err)
	}
	if !c.Add(&sd) {
		stats.Ignored++
		return nil
	}
	stats.StructureDefinitions++
	return nil
}

// Add indexes a core StructureDefinition by its snapshot, or its
// differential when there is no snapshot. It reports false for
// definitions that are not core types.
func (c *Catalogue) Add(sd *r4.StructureDefinition) bool {
	typeName := deref(sd.Type)
	if typeName == "" || deref(sd.Url) != coreURLPrefix+typeName {
		return false
	}

	var elements []r4.ElementDefinition
	switch {
	case sd.Snapshot != nil:
		elements = sd.Snapshot.Element
	case sd.Differential != nil:
		elements = sd.Differential.Element
	}

	primitive := sd.Kind != nil && string(*sd.Kind) == "primitive-type"
	root := c.definition(typeName)
	root.Primitive = primitive

	for i := range elements {
		path := deref(elements[i].Path)
		dot := strings.LastIndexByte(path, '.')
		if dot < 0 {
			continue
		}
		parent, name := path[:dot], path[dot+1:]
		if primitive && parent == typeName && name == "value" {
			// the primitive value is node text, not a child
			continue
		}

		d := c.definition(parent)
		for _, n := range nodeNames(name, elements[i].Type) {
			if !d.Has(n) {
				d.Elements = append(d.Elements, n)
			}
		}
	}

	c.log.Debug("indexed %s (%d elements)", typeName, len(elements))
	return true
}

func (c *Catalogue) definition(name string) *Definition {
	d, ok := c.defs[name]
	if !ok {
		d = &Definition{Name: name}
		c.defs[name] = d
	}
	return d
}

// nodeNames expands "value[x]" into "valueString", "valueBoolean" and so
// on. Other names are returned as they are.
func nodeNames(name string, types []r4.ElementDefinitionType) []string {
	base, ok := strings.CutSuffix(name, "[x]")
	if !ok {
		return []string{name}
	}
	names := make([]string, 0, len(types))
	for i := range types {
		if code := deref(types[i].Code); code != "" {
			names = append(names, base+upperFirst(code))
		}
	}
	return names
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
