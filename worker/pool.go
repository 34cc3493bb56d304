// Package worker converts many resources in parallel.
//
// A Pool is long lived: jobs are submitted one at a time and results read
// from a channel. A BatchConverter converts a fixed slice and returns the
// results in input order.
//
//	pool := worker.NewPool(ctx, conv, 4)
//	go func() {
//	    for _, res := range resources {
//	        pool.Submit(worker.NewJob(res))
//	    }
//	    batch := pool.CloseAndWait()
//	}()
package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/pkg/logger"
)

// ErrNoConverter is returned when the pool has no converter configured.
var ErrNoConverter = errors.New("no converter configured")

// Converter converts one source resource.
type Converter interface {
	Convert(ctx context.Context, resource []byte) (*fc.Result, error)
}

// ConvertFunc adapts a function to Converter.
type ConvertFunc func(ctx context.Context, resource []byte) (*fc.Result, error)

// Convert calls f.
func (f ConvertFunc) Convert(ctx context.Context, resource []byte) (*fc.Result, error) {
	return f(ctx, resource)
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithJobTimeout bounds each job. Zero means no limit.
func WithJobTimeout(d time.Duration) PoolOption {
	return func(p *Pool) {
		p.timeout = d
	}
}

// WithLogger sets the logger used for job completion lines.
func WithLogger(l *logger.Logger) PoolOption {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// Pool manages worker goroutines that convert submitted jobs.
type Pool struct {
	workers    int
	timeout    time.Duration
	jobsChan   chan Job
	resultChan chan *JobResult
	conv       Converter
	log        *logger.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	jobsFailed    atomic.Uint64
	totalDuration atomic.Int64
}

// NewPool starts workers goroutines. If workers <= 0 it defaults to
// runtime.NumCPU(). Cancelling ctx stops the pool.
func NewPool(ctx context.Context, conv Converter, workers int, opts ...PoolOption) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pctx, cancel := context.WithCancel(ctx)

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan Job, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		conv:       conv,
		log:        logger.Default(),
		ctx:        pctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit queues job, blocking while the queue is full. It returns false once
// the pool is closed or its context is done.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// SubmitAsync queues job without blocking. It returns false if the queue
// is full or the pool is closed.
func (p *Pool) SubmitAsync(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel of job results. It is closed by Close and
// CloseAndWait.
func (p *Pool) Results() <-chan *JobResult {
	return p.resultChan
}

// shutdown stops accepting jobs. It reports false if the pool was already
// closed.
func (p *Pool) shutdown() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	p.closed = true
	close(p.jobsChan)
	return true
}

// Close cancels pending work, discards undelivered results and waits for the
// workers to exit.
func (p *Pool) Close() {
	p.cancel()
	if !p.shutdown() {
		return
	}

	done := make(chan struct{})
	go func() {
		for range p.resultChan {
		}
		close(done)
	}()

	p.wg.Wait()
	close(p.resultChan)
	<-done
}

// CloseAndWait stops accepting jobs, lets queued jobs finish and returns
// every result not yet read from Results.
func (p *Pool) CloseAndWait() *BatchResult {
	start := time.Now()
	br := &BatchResult{}

	// results are drained while shutting down so blocked submitters and
	// workers can make progress
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range p.resultChan {
			br.Results = append(br.Results, result)
			if result.Failed() {
				br.FailedJobs++
			}
			if result.Result != nil && result.Result.Skipped {
				br.SkippedJobs++
			}
		}
	}()

	if p.shutdown() {
		p.wg.Wait()
		close(p.resultChan)
	} else {
		// already closed; Close or an earlier call closes resultChan
		p.wg.Wait()
	}
	<-collected
	p.cancel()

	br.TotalJobs = int(p.jobsSubmitted.Load())
	br.CompletedJobs = int(p.jobsCompleted.Load())
	br.TotalDuration = time.Since(start)
	return br
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		JobsFailed:    p.jobsFailed.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	JobsFailed    uint64
	AvgDuration   time.Duration
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobsChan {
		if p.ctx.Err() != nil {
			return
		}

		result := runJob(p.ctx, p.conv, job, p.timeout)
		result.Index = -1
		p.jobsCompleted.Add(1)
		if result.Failed() {
			p.jobsFailed.Add(1)
		}
		p.totalDuration.Add(int64(result.Duration))
		p.log.Debug("job %s done in %s", job.ID, result.Duration)

		select {
		case <-p.ctx.Done():
			return
		case p.resultChan <- result:
		}
	}
}

// runJob converts one job under an optional timeout.
func runJob(ctx context.Context, conv Converter, job Job, timeout time.Duration) *JobResult {
	start := time.Now()
	result := &JobResult{ID: job.ID}

	if conv == nil {
		result.Error = ErrNoConverter
		result.Duration = time.Since(start)
		return result
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result.Result, result.Error = conv.Convert(ctx, job.Resource)
	result.Duration = time.Since(start)
	return result
}

func (p *Pool) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(p.totalDuration.Load() / int64(completed))
}
