package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gofhir/converter/pkg/logger"
)

// ErrBatchAborted is set on jobs that never ran because the batch reached
// its failure limit.
var ErrBatchAborted = errors.New("batch aborted after too many failures")

// BatchConverter converts a slice of resources on a fixed number of workers.
type BatchConverter struct {
	conv        Converter
	workers     int
	timeout     time.Duration
	maxFailures int
	log         *logger.Logger
}

// NewBatchConverter creates a batch converter. If workers <= 0 it defaults
// to runtime.NumCPU().
func NewBatchConverter(conv Converter, workers int) *BatchConverter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchConverter{
		conv:    conv,
		workers: workers,
		log:     logger.Default(),
	}
}

// WithJobTimeout bounds each job. Zero means no limit.
func (bc *BatchConverter) WithJobTimeout(d time.Duration) *BatchConverter {
	bc.timeout = d
	return bc
}

// WithMaxFailures stops the batch once n jobs have failed. Zero means no
// limit.
func (bc *BatchConverter) WithMaxFailures(n int) *BatchConverter {
	if n >= 0 {
		bc.maxFailures = n
	}
	return bc
}

// WithLogger sets the logger.
func (bc *BatchConverter) WithLogger(l *logger.Logger) *BatchConverter {
	if l != nil {
		bc.log = l
	}
	return bc
}

// ConvertBatch converts resources and returns one result per input, in
// input order. Jobs that never ran because ctx was cancelled carry the
// context error.
func (bc *BatchConverter) ConvertBatch(ctx context.Context, resources [][]byte) *BatchResult {
	start := time.Now()
	if len(resources) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	numWorkers := bc.workers
	if numWorkers > len(resources) {
		numWorkers = len(resources)
	}

	type indexedJob struct {
		index int
		job   Job
	}

	jobs := make(chan indexedJob)
	results := make([]*JobResult, len(resources))
	var failures atomic.Int64
	var aborted atomic.Bool

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for ij := range jobs {
				r := runJob(ctx, bc.conv, ij.job, bc.timeout)
				r.Index = ij.index
				results[ij.index] = r

				if r.Failed() {
					n := failures.Add(1)
					if bc.maxFailures > 0 && n >= int64(bc.maxFailures) && !aborted.Swap(true) {
						bc.log.Warn("batch stopped after %d failures", n)
						cancel()
					}
				}
			}
		}()
	}

submit:
	for i, res := range resources {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break submit
		case jobs <- indexedJob{index: i, job: Job{ID: uuid.NewString(), Resource: res}}:
		}
	}
	close(jobs)
	wg.Wait()

	br := &BatchResult{
		Results:       results,
		TotalJobs:     len(resources),
		Aborted:       aborted.Load(),
		TotalDuration: time.Since(start),
	}
	for i, r := range results {
		if r == nil {
			err := ctx.Err()
			if br.Aborted {
				err = ErrBatchAborted
			}
			results[i] = &JobResult{Index: i, Error: err}
			br.FailedJobs++
			continue
		}
		br.CompletedJobs++
		if r.Failed() {
			br.FailedJobs++
		}
		if r.Result != nil && r.Result.Skipped {
			br.SkippedJobs++
		}
	}

	bc.log.Debug("batch of %d done in %s: %d failed, %d skipped",
		br.TotalJobs, br.TotalDuration, br.FailedJobs, br.SkippedJobs)
	return br
}
