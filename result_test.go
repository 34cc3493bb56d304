package fhirconverter

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/converter/mapping"
)

type fakeResource string

func (f fakeResource) ResourceType() string { return string(f) }

func TestResult_Outcomes(t *testing.T) {
	tests := []struct {
		name          string
		apply         func(r *Result)
		converted     bool
		skipped       bool
		errors        int
		warnings      int
		keepsResource bool
	}{
		{
			name:          "converted",
			apply:         func(r *Result) { r.SetResource(fakeResource("Patient")) },
			converted:     true,
			keepsResource: true,
		},
		{
			name: "converted with warning",
			apply: func(r *Result) {
				r.SetResource(fakeResource("ConceptMap"))
				r.AddWarning(IssueTypeInformational, "equivalence kept as extension", "ConceptMap.group[0]")
			},
			converted:     true,
			warnings:      1,
			keepsResource: true,
		},
		{
			name: "skipped by filter",
			apply: func(r *Result) {
				r.SetResource(fakeResource("Patient"))
				r.Skip()
			},
			skipped: true,
		},
		{
			name: "failed",
			apply: func(r *Result) {
				r.SetResource(fakeResource("Patient"))
				r.Fail(StageConvert, mapping.Within("Patient", errors.New("bad")))
			},
			errors: 1,
		},
		{
			name: "error issue",
			apply: func(r *Result) {
				r.AddError(IssueTypeValue, "bad date", "Patient.birthDate")
			},
			errors: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult()
			tt.apply(r)

			assert.Equal(t, tt.converted, r.Converted)
			assert.Equal(t, tt.skipped, r.Skipped)
			assert.Equal(t, tt.errors, r.ErrorCount())
			assert.Equal(t, tt.warnings, r.WarningCount())
			assert.Equal(t, tt.errors > 0, r.HasErrors())
			assert.Equal(t, tt.warnings > 0, r.HasWarnings())
			assert.Len(t, r.Errors(), tt.errors)
			assert.Len(t, r.Warnings(), tt.warnings)
			assert.Equal(t, tt.keepsResource, r.Resource != nil)
		})
	}
}

func TestResult_FailRecordsPath(t *testing.T) {
	r := NewResult()
	r.Fail(StageConvert, mapping.Within("Patient", errors.New("bad")))

	require.Len(t, r.Issues, 1)
	assert.Equal(t, []string{"Patient"}, r.Issues[0].Expression)
	assert.Equal(t, StageConvert, r.Issues[0].Stage)
}

func TestResult_AddIssues(t *testing.T) {
	r := NewResult()
	r.AddIssues(nil)
	assert.True(t, r.Converted)

	r.AddIssues([]Issue{
		Warning(IssueTypeInformational).Diagnostics("dropped versionNeeded").Build(),
		Info(IssueTypeInformational).Build(),
	})
	assert.True(t, r.Converted, "warnings keep the resource converted")

	r.AddIssues([]Issue{Error(IssueTypeValue).Build()})
	assert.False(t, r.Converted)
	assert.Len(t, r.Issues, 3)
}

func TestResult_MergeClone(t *testing.T) {
	r := NewResult()
	r.JobID = "job-1"
	r.ResourceType = "CodeSystem"
	r.Source, r.Target = R4, R5
	r.SetResource(fakeResource("CodeSystem"))

	other := NewResult()
	other.AddWarning(IssueTypeInformational, "w", "CodeSystem.versionNeeded")
	r.Merge(other)
	r.Merge(nil)
	require.Len(t, r.Issues, 1)

	clone := r.Clone()
	assert.Equal(t, r.JobID, clone.JobID)
	assert.Equal(t, r.ResourceType, clone.ResourceType)
	assert.Equal(t, R5, clone.Target)
	assert.Equal(t, r.Resource, clone.Resource)

	clone.AddError(IssueTypeValue, "e", "CodeSystem.status")
	assert.Len(t, r.Issues, 1, "clone issues are independent")
	assert.True(t, r.Converted)
}

func TestResult_PoolReset(t *testing.T) {
	r := AcquireResult()
	require.NotNil(t, r)
	r.JobID = "job-7"
	r.ResourceType = "Patient"
	r.Duration = time.Second
	r.Skip()
	r.AddError(IssueTypeValue, "e", "Patient.active")
	r.Release()

	again := AcquireResult()
	defer again.Release()
	assert.True(t, again.Converted)
	assert.False(t, again.Skipped)
	assert.Empty(t, again.Issues)
	assert.Empty(t, again.JobID)
	assert.Empty(t, again.ResourceType)
	assert.Zero(t, again.Duration)
	assert.Nil(t, again.Resource)

	var nilResult *Result
	assert.NotPanics(t, func() { nilResult.Release() })
}

func TestResult_Concurrent(t *testing.T) {
	r := NewResult()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				r.AddError(IssueTypeValue, "e", "Patient.active")
				return
			}
			r.AddWarning(IssueTypeInformational, "w", "Patient")
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.Issues, n)
	assert.Equal(t, n/2, r.ErrorCount())
	assert.False(t, r.Converted)
}

func BenchmarkResult_Pool(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := AcquireResult()
		r.AddError(IssueTypeValue, "bad boolean", "Patient.active")
		r.Release()
	}
}

func BenchmarkResult_NoPool(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := NewResult()
		r.AddError(IssueTypeValue, "bad boolean", "Patient.active")
	}
}
