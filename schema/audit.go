package schema

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gofhir/converter/mapping"
)

// TableReport is the audit of one conversion table.
type TableReport struct {
	Type string `json:"type" yaml:"type"`

	// Checked is false when no definition was loaded for the type.
	Checked bool `json:"checked" yaml:"checked"`

	// Missing lists defined node names the table does not enumerate. The
	// converter ignores unknown names, so such nodes are dropped silently.
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Unknown lists table entries the definition does not have.
	Unknown []string `json:"unknown,omitempty" yaml:"unknown,omitempty"`

	// Changes are the table's own entries that do not carry their node
	// unchanged. Inherited entries are reported on the base table.
	Changes []mapping.Rule `json:"changes,omitempty" yaml:"changes,omitempty"`
}

// Report is the audit of a set of tables.
type Report struct {
	Tables []TableReport `json:"tables" yaml:"tables"`
}

// Complete reports whether every checked table enumerates every defined
// node name.
func (r *Report) Complete() bool {
	for _, t := range r.Tables {
		if len(t.Missing) > 0 {
			return false
		}
	}
	return true
}

// Checked returns the number of tables that had a definition.
func (r *Report) Checked() int {
	n := 0
	for _, t := range r.Tables {
		if t.Checked {
			n++
		}
	}
	return n
}

// Table returns the report for typeName.
func (r *Report) Table(typeName string) (TableReport, bool) {
	for _, t := range r.Tables {
		if t.Type == typeName {
			return t, true
		}
	}
	return TableReport{}, false
}

// Audit compares every table with the catalogue. Tables are reported in
// name order.
func Audit(cat *Catalogue, tables []mapping.Table) *Report {
	report := &Report{Tables: make([]TableReport, 0, len(tables))}

	for _, table := range tables {
		tr := TableReport{Type: table.TypeName()}
		rules := table.Rules()

		for _, rule := range rules {
			if rule.Policy != mapping.Carry && rule.Origin == tr.Type && !rule.Carrier() {
				tr.Changes = append(tr.Changes, rule)
			}
		}

		if def, ok := cat.Definition(tr.Type); ok {
			tr.Checked = true
			enumerated := make(map[string]bool, len(rules))
			for _, rule := range rules {
				enumerated[rule.Name] = true
			}
			for _, name := range def.Elements {
				if !enumerated[name] {
					tr.Missing = append(tr.Missing, name)
				}
			}
			for _, rule := range rules {
				if !rule.Carrier() && !def.Has(rule.Name) {
					tr.Unknown = append(tr.Unknown, rule.Name)
				}
			}
		}

		report.Tables = append(report.Tables, tr)
	}

	sort.Slice(report.Tables, func(i, j int) bool {
		return report.Tables[i].Type < report.Tables[j].Type
	})
	return report
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteText writes a human readable report to w.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	for _, t := range r.Tables {
		status := "ok"
		switch {
		case !t.Checked:
			status = "no definition"
		case len(t.Missing) > 0:
			status = fmt.Sprintf("%d missing", len(t.Missing))
		}
		fmt.Fprintf(&sb, "%s: %s\n", t.Type, status)
		if len(t.Missing) > 0 {
			fmt.Fprintf(&sb, "  missing: %s\n", strings.Join(t.Missing, ", "))
		}
		if len(t.Unknown) > 0 {
			fmt.Fprintf(&sb, "  unknown: %s\n", strings.Join(t.Unknown, ", "))
		}
		for _, c := range t.Changes {
			line := fmt.Sprintf("  %s %s", c.Policy, c.Name)
			if c.Target != "" && c.Target != c.Name {
				line += " -> " + c.Target
			}
			if c.Note != "" {
				line += ": " + c.Note
			}
			sb.WriteString(line + "\n")
		}
	}
	fmt.Fprintf(&sb, "%d tables, %d checked, complete: %t\n", len(r.Tables), r.Checked(), r.Complete())

	_, err := io.WriteString(w, sb.String())
	return err
}
