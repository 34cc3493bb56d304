package fhirconverter

import (
	"context"
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/scalar"
)

// IssueSeverity represents the severity of a conversion issue.
// Maps to OperationOutcome.issue.severity in FHIR.
type IssueSeverity string

const (
	// SeverityFatal indicates the input could not be read at all.
	SeverityFatal IssueSeverity = "fatal"
	// SeverityError indicates the resource could not be converted.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a conversion that lost or reshaped content.
	SeverityWarning IssueSeverity = "warning"
	// SeverityInformation indicates informational feedback.
	SeverityInformation IssueSeverity = "information"
)

// IssueType represents the type of conversion issue.
// Maps to OperationOutcome.issue.code in FHIR.
type IssueType string

const (
	// IssueTypeInvalid indicates unreadable input.
	IssueTypeInvalid IssueType = "invalid"
	// IssueTypeStructure indicates a structural issue such as a missing resourceType.
	IssueTypeStructure IssueType = "structure"
	// IssueTypeValue indicates a malformed primitive literal.
	IssueTypeValue IssueType = "value"
	// IssueTypeCodeInvalid indicates a code outside its value set.
	IssueTypeCodeInvalid IssueType = "code-invalid"
	// IssueTypeProcessing indicates a processing error.
	IssueTypeProcessing IssueType = "processing"
	// IssueTypeNotSupported indicates a resource type with no conversion.
	IssueTypeNotSupported IssueType = "not-supported"
	// IssueTypeTimeout indicates a timeout or cancellation.
	IssueTypeTimeout IssueType = "timeout"
	// IssueTypeInformational indicates informational content.
	IssueTypeInformational IssueType = "informational"
	// IssueTypeIncomplete indicates a batch that stopped early.
	IssueTypeIncomplete IssueType = "incomplete"
)

// Conversion stages reported in Issue.Stage.
const (
	StageParse   = "parse"
	StageFilter  = "filter"
	StageConvert = "convert"
)

// Issue represents a single conversion issue.
// It maps to OperationOutcome.issue in FHIR.
type Issue struct {
	// Severity of the issue (error, warning, information)
	Severity IssueSeverity `json:"severity" yaml:"severity"`

	// Code identifying the type of issue
	Code IssueType `json:"code" yaml:"code"`

	// Diagnostics contains human-readable details about the issue
	Diagnostics string `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`

	// Expression contains FHIRPath expression(s) to the element(s) in error
	Expression []string `json:"expression,omitempty" yaml:"expression,omitempty"`

	// Stage is the conversion stage that generated this issue
	Stage string `json:"stage,omitempty" yaml:"stage,omitempty"`
}

// IsError returns true if this is an error or fatal issue.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError || i.Severity == SeverityFatal
}

// IsWarning returns true if this is a warning.
func (i Issue) IsWarning() bool {
	return i.Severity == SeverityWarning
}

// String returns a human-readable representation of the issue.
func (i Issue) String() string {
	path := ""
	if len(i.Expression) > 0 {
		path = " at " + i.Expression[0]
	}
	return string(i.Severity) + ": " + i.Diagnostics + path
}

// IssueBuilder provides a fluent API for building issues.
type IssueBuilder struct {
	issue Issue
}

// NewIssue creates a new IssueBuilder.
func NewIssue(severity IssueSeverity, code IssueType) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			Severity: severity,
			Code:     code,
		},
	}
}

// Error creates an error issue.
func Error(code IssueType) *IssueBuilder {
	return NewIssue(SeverityError, code)
}

// Warning creates a warning issue.
func Warning(code IssueType) *IssueBuilder {
	return NewIssue(SeverityWarning, code)
}

// Info creates an informational issue.
func Info(code IssueType) *IssueBuilder {
	return NewIssue(SeverityInformation, code)
}

// Diagnostics sets the diagnostic message.
func (b *IssueBuilder) Diagnostics(msg string) *IssueBuilder {
	b.issue.Diagnostics = msg
	return b
}

// At sets the expression path. An empty path is ignored.
func (b *IssueBuilder) At(path string) *IssueBuilder {
	if path != "" {
		b.issue.Expression = []string{path}
	}
	return b
}

// AtPaths sets multiple expression paths.
func (b *IssueBuilder) AtPaths(paths ...string) *IssueBuilder {
	b.issue.Expression = paths
	return b
}

// Stage sets the conversion stage.
func (b *IssueBuilder) Stage(stage string) *IssueBuilder {
	b.issue.Stage = stage
	return b
}

// Build returns the constructed issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}

// IssueFromError classifies a conversion error. Field errors keep their
// node path as the issue expression.
func IssueFromError(stage string, err error) Issue {
	b := Error(IssueTypeProcessing).Stage(stage).Diagnostics(err.Error())

	var fe *mapping.FieldError
	if errors.As(err, &fe) {
		b.At(fe.PathString())
		if inner := fe.Err; inner != nil {
			b.Diagnostics(inner.Error())
		}
	}

	var se *scalar.SyntaxError
	var ue *mapping.UnknownResourceTypeError
	switch {
	case errors.As(err, &ue):
		b.issue.Code = IssueTypeNotSupported
		if ue.ResourceType == "" {
			b.issue.Code = IssueTypeStructure
		}
		b.At("resourceType")
	case errors.As(err, &se):
		b.issue.Code = IssueTypeValue
		// value set names are capitalized, primitive type names are not
		if r, _ := utf8.DecodeRuneInString(se.Type); unicode.IsUpper(r) {
			b.issue.Code = IssueTypeCodeInvalid
		}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		b.issue.Code = IssueTypeTimeout
	case stage == StageParse:
		b.issue.Severity = SeverityFatal
		b.issue.Code = IssueTypeInvalid
	}
	return b.Build()
}
