package worker

import (
	"time"

	"github.com/google/uuid"

	fc "github.com/gofhir/converter"
)

// Job is one source resource waiting to be converted.
type Job struct {
	// ID identifies the job in results and logs.
	ID string

	// Resource is the source resource as JSON bytes.
	Resource []byte
}

// NewJob wraps resource in a job with a random id.
func NewJob(resource []byte) Job {
	return Job{ID: uuid.NewString(), Resource: resource}
}

// JobResult is the outcome of one job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Index is the position of the job in a batch, or -1 for pool jobs.
	Index int

	// Result holds the converted resource and its issues.
	Result *fc.Result

	// Error is set when the job did not run to completion.
	Error error

	Duration time.Duration
}

// Failed reports whether the job errored or produced no resource.
func (jr *JobResult) Failed() bool {
	if jr.Error != nil {
		return true
	}
	return jr.Result != nil && !jr.Result.Converted && !jr.Result.Skipped
}

// BatchResult aggregates results from multiple jobs.
type BatchResult struct {
	// Results are in submission order.
	Results []*JobResult

	TotalJobs     int
	CompletedJobs int
	FailedJobs    int
	SkippedJobs   int

	// Aborted is set when the batch stopped early after too many failures.
	Aborted bool

	TotalDuration time.Duration
}

// HasErrors reports whether any job failed.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r != nil && r.Failed() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error issues across all results.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Result != nil {
			count += r.Result.ErrorCount()
		}
	}
	return count
}

// Resources returns the converted resources in submission order, skipping
// failed and filtered jobs.
func (br *BatchResult) Resources() []fc.Resource {
	out := make([]fc.Resource, 0, len(br.Results))
	for _, r := range br.Results {
		if r != nil && r.Result != nil && r.Result.Resource != nil {
			out = append(out, r.Result.Resource)
		}
	}
	return out
}
