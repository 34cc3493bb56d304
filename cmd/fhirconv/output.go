package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/internal/config"
)

// input is one resource read from a file or stdin.
type input struct {
	name string
	data []byte
}

// readInputs expands globs and reads every file. "-" reads stdin.
func readInputs(args []string, stdin io.Reader) ([]input, error) {
	var inputs []input
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			inputs = append(inputs, input{name: "stdin", data: data})
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", arg)
		}
		for _, match := range matches {
			data, err := os.ReadFile(match)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, input{name: match, data: data})
		}
	}
	return inputs, nil
}

// conversionOutput is the machine readable report of one conversion.
type conversionOutput struct {
	Source       string      `json:"source" yaml:"source"`
	ResourceType string      `json:"resourceType,omitempty" yaml:"resourceType,omitempty"`
	Converted    bool        `json:"converted" yaml:"converted"`
	Skipped      bool        `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Errors       int         `json:"errors" yaml:"errors"`
	Warnings     int         `json:"warnings" yaml:"warnings"`
	Issues       []fc.Issue  `json:"issues,omitempty" yaml:"issues,omitempty"`
	Duration     string      `json:"duration" yaml:"duration"`
	Resource     fc.Resource `json:"resource,omitempty" yaml:"-"`
}

func newOutput(name string, r *fc.Result) conversionOutput {
	return conversionOutput{
		Source:       name,
		ResourceType: r.ResourceType,
		Converted:    r.Converted,
		Skipped:      r.Skipped,
		Errors:       r.ErrorCount(),
		Warnings:     r.WarningCount(),
		Issues:       append([]fc.Issue(nil), r.Issues...),
		Duration:     r.Duration.Round(time.Microsecond).String(),
		Resource:     r.Resource,
	}
}

// failed reports whether the conversion produced nothing and was not
// filtered out.
func (o conversionOutput) failed() bool {
	return !o.Converted && !o.Skipped
}

// writeOutputs renders outputs in the configured format.
func writeOutputs(w io.Writer, cfg *config.Config, outputs []conversionOutput) error {
	switch cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(outputs)
	case config.OutputDump:
		for _, o := range outputs {
			fmt.Fprintf(w, "== %s ==\n", o.Source)
			if o.Resource != nil {
				spew.Fdump(w, o.Resource)
			}
			writeIssues(w, o.Issues)
		}
		return nil
	default:
		for _, o := range outputs {
			if cfg.Quiet && !o.failed() {
				continue
			}
			writeText(w, o)
		}
		return nil
	}
}

func writeText(w io.Writer, o conversionOutput) {
	status := "CONVERTED"
	switch {
	case o.Skipped:
		status = "SKIPPED"
	case o.failed():
		status = "FAILED"
	}
	fmt.Fprintf(w, "== %s ==\n", o.Source)
	fmt.Fprintf(w, "Status: %s (%s, %s)\n", status, o.ResourceType, o.Duration)
	writeIssues(w, o.Issues)
	fmt.Fprintln(w)
}

func writeIssues(w io.Writer, issues []fc.Issue) {
	for _, iss := range issues {
		location := ""
		if len(iss.Expression) > 0 {
			location = " @ " + strings.Join(iss.Expression, ", ")
		}
		fmt.Fprintf(w, "  %s [%s] %s%s\n", severityLabel(iss.Severity), iss.Code, iss.Diagnostics, location)
	}
}

func severityLabel(s fc.IssueSeverity) string {
	switch s {
	case fc.SeverityFatal:
		return "FATAL"
	case fc.SeverityError:
		return "ERROR"
	case fc.SeverityWarning:
		return "WARN "
	default:
		return "INFO "
	}
}

// failures counts failed outputs.
func failures(outputs []conversionOutput) int {
	n := 0
	for _, o := range outputs {
		if o.failed() {
			n++
		}
	}
	return n
}
