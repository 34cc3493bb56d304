package engine

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/model/r5"
	"github.com/gofhir/converter/node/xmlnode"
	"github.com/gofhir/converter/pkg/logger"
	"github.com/gofhir/converter/stream"
	"github.com/gofhir/converter/transition"
	"github.com/gofhir/converter/worker"
)

const patientJSON = `{
	"resourceType": "Patient",
	"id": "example",
	"active": true,
	"gender": "female",
	"name": [{"family": "Chalmers", "given": ["Peter", "James"]}],
	"birthDate": "1974-12-25"
}`

func newConverter(t *testing.T, opts ...fc.Option) *Converter {
	t.Helper()
	c, err := New(context.Background(), fc.R4, fc.R5, append([]fc.Option{fc.WithLogLevel("none")}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew(t *testing.T) {
	c := newConverter(t)

	assert.Equal(t, fc.R4, c.From())
	assert.Equal(t, fc.R5, c.To())
	assert.Equal(t, "R4 -> R5", c.Route())
	assert.NotNil(t, c.Options())
	assert.NotNil(t, c.Metrics())
	assert.True(t, c.Supports("ConceptMap"))
	assert.False(t, c.Supports("Observation"))
	assert.Contains(t, c.ResourceTypes(), "Patient")
}

func TestNew_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, fc.R4B, fc.R5)
	assert.ErrorIs(t, err, transition.ErrNoPath)

	_, err = New(ctx, fc.R4, "R6")
	assert.ErrorIs(t, err, transition.ErrUnknownVersion)

	_, err = New(ctx, fc.R4, fc.R5, fc.WithLogLevel("loud"))
	assert.Error(t, err)

	_, err = New(ctx, fc.R4, fc.R5, fc.WithFilter("name.where("))
	assert.ErrorContains(t, err, "compile filter")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = New(cancelled, fc.R4, fc.R5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvert_Patient(t *testing.T) {
	c := newConverter(t)

	result, err := c.Convert(context.Background(), []byte(patientJSON))
	require.NoError(t, err)
	defer result.Release()

	require.True(t, result.Converted, "issues: %v", result.Issues)
	assert.Empty(t, result.Issues)
	assert.Equal(t, "Patient", result.ResourceType)
	assert.Equal(t, fc.R4, result.Source)
	assert.Equal(t, fc.R5, result.Target)
	assert.Greater(t, result.Duration.Nanoseconds(), int64(0))

	p, ok := result.Resource.(*r5.Patient)
	require.True(t, ok, "got %T", result.Resource)
	assert.Equal(t, "example", *p.Id)
	assert.True(t, *p.Active.Value)
	assert.Equal(t, r5.AdministrativeGender("female"), *p.Gender.Value)
	require.Len(t, p.Name, 1)
	assert.Equal(t, "Chalmers", *p.Name[0].Family.Value)
	require.Len(t, p.Name[0].Given, 2)
	assert.Equal(t, "James", *p.Name[0].Given[1].Value)
}

func TestConvert_ConceptMapRenames(t *testing.T) {
	c := newConverter(t)

	result, err := c.Convert(context.Background(), []byte(`{
		"resourceType": "ConceptMap",
		"id": "cm",
		"identifier": {"value": "urn:uuid:1"},
		"sourceUri": "http://example.org/vs/a"
	}`))
	require.NoError(t, err)
	require.True(t, result.Converted, "issues: %v", result.Issues)

	cm := result.Resource.(*r5.ConceptMap)
	require.Len(t, cm.Identifier, 1)
	assert.Equal(t, &r5.Uri{Value: r5.Ptr("http://example.org/vs/a")}, cm.SourceScope)
}

func TestConvert_Failures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     fc.IssueType
		severity fc.IssueSeverity
		stage    string
		path     string
	}{
		{
			name:     "invalid json",
			input:    `{"resourceType": "Patient", "id": }`,
			code:     fc.IssueTypeInvalid,
			severity: fc.SeverityFatal,
			stage:    fc.StageParse,
		},
		{
			name:     "missing resourceType",
			input:    `{"id": "x"}`,
			code:     fc.IssueTypeStructure,
			severity: fc.SeverityError,
			stage:    fc.StageConvert,
			path:     "resourceType",
		},
		{
			name:     "unsupported type",
			input:    `{"resourceType": "Observation"}`,
			code:     fc.IssueTypeNotSupported,
			severity: fc.SeverityError,
			stage:    fc.StageConvert,
			path:     "resourceType",
		},
		{
			name:     "bad boolean",
			input:    `{"resourceType": "Patient", "active": "yes"}`,
			code:     fc.IssueTypeValue,
			severity: fc.SeverityError,
			stage:    fc.StageConvert,
			path:     "Patient.active",
		},
		{
			name:     "code outside value set",
			input:    `{"resourceType": "Patient", "gender": "bogus"}`,
			code:     fc.IssueTypeCodeInvalid,
			severity: fc.SeverityError,
			stage:    fc.StageConvert,
			path:     "Patient.gender",
		},
	}

	c := newConverter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.Convert(context.Background(), []byte(tt.input))
			require.NoError(t, err)

			assert.False(t, result.Converted)
			assert.Nil(t, result.Resource)
			require.Len(t, result.Issues, 1)

			issue := result.Issues[0]
			assert.Equal(t, tt.code, issue.Code)
			assert.Equal(t, tt.severity, issue.Severity)
			assert.Equal(t, tt.stage, issue.Stage)
			if tt.path != "" {
				assert.Equal(t, []string{tt.path}, issue.Expression)
			}
		})
	}

	assert.Equal(t, uint64(5), c.Metrics().ConversionsTotal())
	assert.Equal(t, uint64(0), c.Metrics().ConversionsConverted())
}

func TestConvert_StrictParse(t *testing.T) {
	input := []byte(`{"resourceType": "Patient", "birthDate": "25/12/1974"}`)

	result, err := newConverter(t).Convert(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, result.Converted)

	result, err = newConverter(t, fc.WithStrictParse(true)).Convert(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, result.Converted)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, []string{"Patient.birthDate"}, result.Issues[0].Expression)
}

func TestConvert_Filter(t *testing.T) {
	c := newConverter(t, fc.WithFilter("gender = 'male'"))

	result, err := c.Convert(context.Background(), []byte(patientJSON))
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, result.Converted)
	assert.Nil(t, result.Resource)

	result, err = c.Convert(context.Background(), []byte(strings.Replace(patientJSON, "female", "male", 1)))
	require.NoError(t, err)
	assert.True(t, result.Converted)

	m := c.Metrics()
	assert.Equal(t, uint64(1), m.ConversionsSkipped())
	assert.Equal(t, uint64(1), m.ConversionsConverted())
	assert.Greater(t, m.CacheHits(), uint64(0))
}

func TestConvert_Cancelled(t *testing.T) {
	c := newConverter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := c.Convert(ctx, []byte(patientJSON))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestConvert_NoPoolingNoMetrics(t *testing.T) {
	c := newConverter(t, fc.WithPooling(false), fc.WithMetrics(false))

	result, err := c.Convert(context.Background(), []byte(patientJSON))
	require.NoError(t, err)
	assert.True(t, result.Converted)
	assert.Equal(t, uint64(0), c.Metrics().ConversionsTotal())
}

func TestConvertNode_XML(t *testing.T) {
	tree, err := xmlnode.ParseBytes([]byte(`<Patient xmlns="http://hl7.org/fhir">
		<id value="x1"/>
		<active value="false"/>
	</Patient>`))
	require.NoError(t, err)

	result, err := newConverter(t).ConvertNode(context.Background(), tree)
	require.NoError(t, err)
	require.True(t, result.Converted, "issues: %v", result.Issues)

	p := result.Resource.(*r5.Patient)
	assert.Equal(t, "x1", *p.Id)
	assert.False(t, *p.Active.Value)
}

func TestConvertBatch(t *testing.T) {
	c := newConverter(t, fc.WithWorkerCount(3))

	resources := [][]byte{
		[]byte(patientJSON),
		[]byte(`{"resourceType": "Observation"}`),
		[]byte(`{"resourceType": "Basic", "id": "b"}`),
		[]byte(`{"resourceType": "ValueSet", "id": "vs"}`),
	}

	br := c.ConvertBatch(context.Background(), resources)
	require.Len(t, br.Results, 4)
	assert.Equal(t, 4, br.CompletedJobs)
	assert.Equal(t, 1, br.FailedJobs)
	assert.True(t, br.HasErrors())

	assert.Equal(t, "Patient", br.Results[0].Result.Resource.ResourceType())
	assert.True(t, br.Results[1].Failed())
	assert.Equal(t, "Basic", br.Results[2].Result.Resource.ResourceType())
	assert.Len(t, br.Resources(), 3)
	assert.Equal(t, uint64(5), c.Metrics().ConversionsTotal())
}

func TestConvertBatch_MaxFailures(t *testing.T) {
	c := newConverter(t, fc.WithWorkerCount(1), fc.WithMaxFailures(1))

	resources := make([][]byte, 10)
	for i := range resources {
		resources[i] = []byte(`{"resourceType": "Observation"}`)
	}

	br := c.ConvertBatch(context.Background(), resources)
	assert.True(t, br.Aborted)
	assert.Less(t, br.CompletedJobs, 10)
}

func TestPool(t *testing.T) {
	c := newConverter(t, fc.WithWorkerCount(2))
	pool := c.NewPool(context.Background())

	for i := 0; i < 3; i++ {
		require.True(t, pool.Submit(worker.NewJob([]byte(patientJSON))))
	}
	br := pool.CloseAndWait()
	assert.Len(t, br.Results, 3)
	assert.Zero(t, br.FailedJobs)
}

func TestConvertBundleStream(t *testing.T) {
	bundle := `{
		"resourceType": "Bundle",
		"type": "collection",
		"entry": [
			{"fullUrl": "urn:uuid:1", "resource": ` + patientJSON + `},
			{"fullUrl": "urn:uuid:2", "resource": {"resourceType": "Observation"}},
			{"fullUrl": "urn:uuid:3", "resource": {"resourceType": "CodeSystem", "id": "cs", "content": "complete"}}
		]
	}`

	c := newConverter(t)
	for _, parallel := range []bool{false, true} {
		var results <-chan *stream.EntryResult
		if parallel {
			results = c.ConvertBundleStreamParallel(context.Background(), strings.NewReader(bundle))
		} else {
			results = c.ConvertBundleStream(context.Background(), strings.NewReader(bundle))
		}

		agg := AggregateBundleResults(results)
		assert.Equal(t, 3, agg.TotalEntries)
		assert.Equal(t, 2, agg.Converted)
		assert.Equal(t, 1, agg.Failed)
		require.Len(t, agg.Resources, 2)
		assert.Equal(t, "Patient", agg.Resources[0].ResourceType())
		assert.Equal(t, "CodeSystem", agg.Resources[1].ResourceType())
		assert.Contains(t, agg.Issues, 1)
	}
}

func TestConverter_Logging(t *testing.T) {
	var buf bytes.Buffer
	c := newConverter(t)
	c.SetLogger(logger.NewJSON(&buf, logger.LevelInfo))

	_, err := c.Convert(context.Background(), []byte(`{"resourceType": "Observation"}`))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "could not convert Observation")
}

func BenchmarkConvert_Patient(b *testing.B) {
	c, err := New(context.Background(), fc.R4, fc.R5, fc.WithLogLevel("none"))
	if err != nil {
		b.Fatal(err)
	}
	data := []byte(patientJSON)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, _ := c.Convert(ctx, data)
		result.Release()
	}
}
