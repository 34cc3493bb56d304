package fhirconverter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofhir/converter/mapping"
	"github.com/gofhir/converter/scalar"
)

func TestIssue_Severity(t *testing.T) {
	tests := []struct {
		severity IssueSeverity
		isError  bool
		isWarn   bool
	}{
		{SeverityFatal, true, false},
		{SeverityError, true, false},
		{SeverityWarning, false, true},
		{SeverityInformation, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			issue := Issue{Severity: tt.severity}
			assert.Equal(t, tt.isError, issue.IsError())
			assert.Equal(t, tt.isWarn, issue.IsWarning())
		})
	}
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "error: invalid boolean literal at Patient.active",
		Issue{Severity: SeverityError, Diagnostics: "invalid boolean literal", Expression: []string{"Patient.active"}}.String())
	assert.Equal(t, "warning: dropped",
		Issue{Severity: SeverityWarning, Diagnostics: "dropped"}.String())
}

func TestIssueBuilder(t *testing.T) {
	issue := Error(IssueTypeValue).
		Diagnostics("invalid boolean literal").
		At("Patient.active").
		Stage(StageConvert).
		Build()

	assert.Equal(t, Issue{
		Severity:    SeverityError,
		Code:        IssueTypeValue,
		Diagnostics: "invalid boolean literal",
		Expression:  []string{"Patient.active"},
		Stage:       StageConvert,
	}, issue)

	assert.Equal(t, SeverityWarning, Warning(IssueTypeInformational).Build().Severity)
	assert.Equal(t, SeverityInformation, Info(IssueTypeInformational).Build().Severity)
	assert.Empty(t, Error(IssueTypeProcessing).At("").Build().Expression)
	assert.Equal(t, []string{"ConceptMap.group[0]", "ConceptMap.group[1]"},
		NewIssue(SeverityWarning, IssueTypeInformational).AtPaths("ConceptMap.group[0]", "ConceptMap.group[1]").Build().Expression)
}

func TestIssueFromError(t *testing.T) {
	_, intErr := scalar.Int32("1.5")

	tests := []struct {
		name     string
		stage    string
		err      error
		severity IssueSeverity
		code     IssueType
		path     string
	}{
		{
			name:     "unknown resource type",
			stage:    StageConvert,
			err:      fmt.Errorf("convert: %w", &mapping.UnknownResourceTypeError{ResourceType: "Foo"}),
			severity: SeverityError,
			code:     IssueTypeNotSupported,
			path:     "resourceType",
		},
		{
			name:     "missing resource type",
			stage:    StageConvert,
			err:      &mapping.UnknownResourceTypeError{},
			severity: SeverityError,
			code:     IssueTypeStructure,
			path:     "resourceType",
		},
		{
			name:     "malformed primitive",
			stage:    StageConvert,
			err:      mapping.Within("Patient", intErr),
			severity: SeverityError,
			code:     IssueTypeValue,
			path:     "Patient",
		},
		{
			name:     "unknown code",
			stage:    StageConvert,
			err:      mapping.Within("ConceptMap", &scalar.SyntaxError{Type: "ConceptMapEquivalence", Literal: "bogus"}),
			severity: SeverityError,
			code:     IssueTypeCodeInvalid,
			path:     "ConceptMap",
		},
		{
			name:     "deadline",
			stage:    StageConvert,
			err:      fmt.Errorf("job 3: %w", context.DeadlineExceeded),
			severity: SeverityError,
			code:     IssueTypeTimeout,
		},
		{
			name:     "unreadable input",
			stage:    StageParse,
			err:      errors.New("unexpected end of JSON input"),
			severity: SeverityFatal,
			code:     IssueTypeInvalid,
		},
		{
			name:     "other",
			stage:    StageFilter,
			err:      errors.New("boom"),
			severity: SeverityError,
			code:     IssueTypeProcessing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := IssueFromError(tt.stage, tt.err)
			assert.Equal(t, tt.severity, issue.Severity)
			assert.Equal(t, tt.code, issue.Code)
			assert.Equal(t, tt.stage, issue.Stage)
			assert.NotEmpty(t, issue.Diagnostics)
			if tt.path == "" {
				assert.Empty(t, issue.Expression)
			} else {
				assert.Equal(t, []string{tt.path}, issue.Expression)
			}
		})
	}
}

func TestIssueFromError_FieldPathWithoutPrefix(t *testing.T) {
	err := &mapping.FieldError{
		Path: []mapping.Segment{{Name: "Patient", Index: -1}, {Name: "name", Index: 1}, {Name: "given", Index: 0}},
		Err:  errors.New("bad"),
	}
	issue := IssueFromError(StageConvert, err)
	assert.Equal(t, []string{"Patient.name[1].given[0]"}, issue.Expression)
	assert.Equal(t, "bad", issue.Diagnostics)
}

func BenchmarkIssueFromError(b *testing.B) {
	err := mapping.Within("Patient", &scalar.SyntaxError{Type: "boolean", Literal: "yes"})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = IssueFromError(StageConvert, err)
	}
}
