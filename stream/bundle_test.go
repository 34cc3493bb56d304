package stream

import (
	"context"
	"errors"
	"strings"
	"testing"

	fc "github.com/gofhir/converter"
)

type converted struct{ rt, id string }

func (c *converted) ResourceType() string { return c.rt }

// mockConvert fails resources without an id.
func mockConvert(_ context.Context, resource []byte) (*fc.Result, error) {
	result := fc.AcquireResult()
	s := string(resource)
	if !strings.Contains(s, `"id"`) {
		result.AddError(fc.IssueTypeStructure, "missing id", "id")
		return result, nil
	}
	result.SetResource(&converted{rt: "Patient", id: s})
	return result, nil
}

const twoPatients = `{
	"resourceType": "Bundle",
	"type": "collection",
	"entry": [
		{
			"fullUrl": "urn:uuid:patient-1",
			"resource": {"resourceType": "Patient", "id": "1", "name": [{"family": "Test"}]}
		},
		{
			"fullUrl": "urn:uuid:patient-2",
			"resource": {"resourceType": "Patient", "id": "2"}
		}
	]
}`

func TestBundleConverter_ConvertStream(t *testing.T) {
	c := NewBundleConverter(mockConvert)

	count := 0
	for result := range c.ConvertStream(context.Background(), strings.NewReader(twoPatients)) {
		if result.Error != nil {
			t.Errorf("entry %d error: %v", result.Index, result.Error)
			continue
		}
		if result.Index != count {
			t.Errorf("Index = %d; want %d", result.Index, count)
		}
		if result.ResourceType != "Patient" {
			t.Errorf("ResourceType = %q; want Patient", result.ResourceType)
		}
		if !strings.HasPrefix(result.FullURL, "urn:uuid:patient-") {
			t.Errorf("FullURL = %q", result.FullURL)
		}
		if !result.Result.Converted {
			t.Errorf("entry %d not converted: %v", result.Index, result.Result.Issues)
		}
		count++
	}

	if count != 2 {
		t.Errorf("processed %d entries; want 2", count)
	}
}

func TestBundleConverter_ConvertStreamParallel(t *testing.T) {
	c := NewBundleConverter(mockConvert).WithWorkerCount(3)

	var sb strings.Builder
	sb.WriteString(`{"resourceType":"Bundle","entry":[`)
	for i := 0; i < 20; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"resource":{"resourceType":"Patient","id":"`)
		sb.WriteString(string(rune('a' + i)))
		sb.WriteString(`"}}`)
	}
	sb.WriteString(`]}`)

	next := 0
	for result := range c.ConvertStreamParallel(context.Background(), strings.NewReader(sb.String())) {
		if result.Index != next {
			t.Fatalf("Index = %d; want %d", result.Index, next)
		}
		if want := string(rune('a' + next)); result.ResourceID != want {
			t.Errorf("ResourceID = %q; want %q", result.ResourceID, want)
		}
		next++
	}
	if next != 20 {
		t.Errorf("processed %d entries; want 20", next)
	}
}

func TestBundleConverter_EmptyBundle(t *testing.T) {
	c := NewBundleConverter(mockConvert)

	count := 0
	for range c.ConvertStream(context.Background(), strings.NewReader(`{"resourceType":"Bundle","type":"collection"}`)) {
		count++
	}
	if count != 0 {
		t.Errorf("processed %d entries; want 0", count)
	}
}

func TestBundleConverter_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{not json`},
		{"not a bundle", `{"resourceType":"Patient","id":"1"}`},
		{"entry not an object", `{"resourceType":"Bundle","entry":[42]}`},
	}

	c := NewBundleConverter(mockConvert)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []*EntryResult
			for r := range c.ConvertStream(context.Background(), strings.NewReader(tt.input)) {
				got = append(got, r)
			}
			if len(got) != 1 || got[0].Index != -1 || got[0].Error == nil {
				t.Fatalf("got %+v; want a single bundle level error", got)
			}
		})
	}

	var got *EntryResult
	for r := range c.ConvertStream(context.Background(), strings.NewReader(`{"resourceType":"Patient"}`)) {
		got = r
	}
	if !errors.Is(got.Error, ErrNotBundle) {
		t.Errorf("Error = %v; want ErrNotBundle", got.Error)
	}
}

func TestBundleConverter_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewBundleConverter(mockConvert)
	var errs int
	for r := range c.ConvertStream(ctx, strings.NewReader(twoPatients)) {
		if errors.Is(r.Error, context.Canceled) {
			errs++
		}
	}
	if errs != 1 {
		t.Errorf("cancelled results = %d; want 1", errs)
	}

	for r := range c.ConvertStreamParallel(ctx, strings.NewReader(twoPatients)) {
		if !errors.Is(r.Error, context.Canceled) {
			t.Errorf("entry %d: Error = %v; want context.Canceled", r.Index, r.Error)
		}
	}
}

func TestBundleConverter_EntryWithoutResource(t *testing.T) {
	bundle := `{"resourceType":"Bundle","entry":[{"fullUrl":"urn:uuid:1","request":{"method":"DELETE","url":"Patient/1"}}]}`

	c := NewBundleConverter(mockConvert)
	for r := range c.ConvertStream(context.Background(), strings.NewReader(bundle)) {
		if r.Error != nil {
			t.Fatalf("unexpected error: %v", r.Error)
		}
		if r.Result == nil || !r.Result.Skipped {
			t.Errorf("Result = %+v; want skipped", r.Result)
		}
		if r.FullURL != "urn:uuid:1" {
			t.Errorf("FullURL = %q", r.FullURL)
		}
	}
}

func TestAggregate(t *testing.T) {
	bundle := `{"resourceType":"Bundle","entry":[
		{"resource":{"resourceType":"Patient","id":"1"}},
		{"resource":{"resourceType":"Patient"}},
		{"request":{"method":"DELETE"}}
	]}`

	c := NewBundleConverter(mockConvert)
	agg := Aggregate(c.ConvertStream(context.Background(), strings.NewReader(bundle)))

	if agg.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d; want 3", agg.TotalEntries)
	}
	if agg.Converted != 1 || agg.Skipped != 1 || agg.Failed != 1 {
		t.Errorf("Converted/Skipped/Failed = %d/%d/%d; want 1/1/1", agg.Converted, agg.Skipped, agg.Failed)
	}
	if len(agg.Resources) != 1 {
		t.Errorf("Resources = %d; want 1", len(agg.Resources))
	}
	if len(agg.Issues[1]) != 1 || agg.Issues[1][0].Diagnostics != "missing id" {
		t.Errorf("Issues[1] = %+v", agg.Issues[1])
	}
	if !agg.HasErrors() {
		t.Error("expected HasErrors() = true")
	}
	if !strings.Contains(agg.Summary(), "Converted 1 of 3 entries") {
		t.Errorf("Summary() = %q", agg.Summary())
	}
}

func TestBundleStreamResult_NoErrors(t *testing.T) {
	c := NewBundleConverter(mockConvert)
	agg := Aggregate(c.ConvertStream(context.Background(), strings.NewReader(twoPatients)))

	if agg.HasErrors() {
		t.Errorf("unexpected errors: %+v", agg)
	}
}

func TestBundleConverter_Options(t *testing.T) {
	c := NewBundleConverter(mockConvert).WithBufferSize(5).WithWorkerCount(7).WithLogger(nil)
	if c.bufferSize != 5 || c.workerCount != 7 || c.log == nil {
		t.Errorf("options not applied: %+v", c)
	}

	c.WithBufferSize(0).WithWorkerCount(-1)
	if c.bufferSize != 5 || c.workerCount != 7 {
		t.Error("invalid options should be ignored")
	}
}
