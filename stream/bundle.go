// Package stream converts the entries of a source Bundle one by one.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/buger/jsonparser"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/pkg/logger"
)

// ErrNotBundle is reported when the source is not a Bundle.
var ErrNotBundle = errors.New("source is not a Bundle")

// ConvertFunc converts one source resource.
type ConvertFunc func(ctx context.Context, resource []byte) (*fc.Result, error)

// EntryResult is the conversion outcome for a single bundle entry.
type EntryResult struct {
	// Index is the position of the entry in the bundle, or -1 for errors
	// about the bundle itself.
	Index int

	FullURL      string
	ResourceType string
	ResourceID   string

	// Result holds the converted resource and its issues.
	Result *fc.Result

	// Error is set if the entry could not be processed.
	Error error
}

// BundleConverter converts bundle entries, emitting results in entry order.
type BundleConverter struct {
	convert     ConvertFunc
	bufferSize  int
	workerCount int
	log         *logger.Logger
}

// NewBundleConverter creates a streaming bundle converter.
func NewBundleConverter(convert ConvertFunc) *BundleConverter {
	return &BundleConverter{
		convert:     convert,
		bufferSize:  100,
		workerCount: 4,
		log:         logger.Default(),
	}
}

// WithBufferSize sets the channel buffer size.
func (c *BundleConverter) WithBufferSize(size int) *BundleConverter {
	if size > 0 {
		c.bufferSize = size
	}
	return c
}

// WithWorkerCount sets the number of parallel workers.
func (c *BundleConverter) WithWorkerCount(count int) *BundleConverter {
	if count > 0 {
		c.workerCount = count
	}
	return c
}

// WithLogger sets the logger.
func (c *BundleConverter) WithLogger(l *logger.Logger) *BundleConverter {
	if l != nil {
		c.log = l
	}
	return c
}

// entry is a raw Bundle.entry element.
type entry struct {
	index int
	raw   []byte
}

// readEntries loads the bundle and slices out its entries without copying.
func readEntries(r io.Reader) ([]entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	rt, err := jsonparser.GetString(data, "resourceType")
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	if rt != "Bundle" {
		return nil, fmt.Errorf("%w: got %s", ErrNotBundle, rt)
	}

	var (
		entries []entry
		bad     error
	)
	_, err = jsonparser.ArrayEach(data, func(v []byte, typ jsonparser.ValueType, _ int, err error) {
		if bad != nil {
			return
		}
		if err != nil {
			bad = err
			return
		}
		if typ != jsonparser.Object {
			bad = fmt.Errorf("entry %d is %s, not an object", len(entries), typ)
			return
		}
		entries = append(entries, entry{index: len(entries), raw: v})
	}, "entry")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, nil
	}
	if err == nil {
		err = bad
	}
	if err != nil {
		return nil, fmt.Errorf("read bundle entries: %w", err)
	}
	return entries, nil
}

// processEntry converts a single bundle entry.
func (c *BundleConverter) processEntry(ctx context.Context, e entry) *EntryResult {
	result := &EntryResult{Index: e.index}
	result.FullURL, _ = jsonparser.GetString(e.raw, "fullUrl")

	resource, typ, _, err := jsonparser.Get(e.raw, "resource")
	if err != nil || typ != jsonparser.Object {
		// entries without a resource, e.g. a DELETE request
		result.Result = fc.AcquireResult()
		result.Result.Skip()
		return result
	}

	result.ResourceType, _ = jsonparser.GetString(resource, "resourceType")
	result.ResourceID, _ = jsonparser.GetString(resource, "id")

	converted, err := c.convert(ctx, resource)
	if err != nil {
		result.Error = err
		return result
	}
	result.Result = converted
	return result
}

// ConvertStream converts entries one at a time, emitting each result as it
// is produced.
func (c *BundleConverter) ConvertStream(ctx context.Context, r io.Reader) <-chan *EntryResult {
	results := make(chan *EntryResult, c.bufferSize)

	go func() {
		defer close(results)

		entries, err := readEntries(r)
		if err != nil {
			results <- &EntryResult{Index: -1, Error: err}
			return
		}
		c.log.Debug("converting bundle of %d entries", len(entries))

		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				results <- &EntryResult{Index: e.index, Error: err}
				return
			}
			results <- c.processEntry(ctx, e)
		}
	}()

	return results
}

// ConvertStreamParallel converts entries on several workers and emits the
// results in entry order.
func (c *BundleConverter) ConvertStreamParallel(ctx context.Context, r io.Reader) <-chan *EntryResult {
	results := make(chan *EntryResult, c.bufferSize)

	go func() {
		defer close(results)

		entries, err := readEntries(r)
		if err != nil {
			results <- &EntryResult{Index: -1, Error: err}
			return
		}
		c.log.Debug("converting bundle of %d entries on %d workers", len(entries), c.workerCount)

		// one buffered slot per entry keeps the output in entry order
		slots := make([]chan *EntryResult, len(entries))
		for i := range slots {
			slots[i] = make(chan *EntryResult, 1)
		}

		work := make(chan entry)
		var wg sync.WaitGroup
		for i := 0; i < c.workerCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for e := range work {
					if err := ctx.Err(); err != nil {
						slots[e.index] <- &EntryResult{Index: e.index, Error: err}
						continue
					}
					slots[e.index] <- c.processEntry(ctx, e)
				}
			}()
		}

		go func() {
			for _, e := range entries {
				work <- e
			}
			close(work)
			wg.Wait()
		}()

		for _, slot := range slots {
			results <- <-slot
		}
	}()

	return results
}

// BundleStreamResult aggregates results from a streaming conversion.
type BundleStreamResult struct {
	TotalEntries int
	Converted    int
	Skipped      int

	// Failed counts entries that produced no resource.
	Failed int

	TotalIssues int

	// ProcessingErrors are errors that stopped an entry or the bundle.
	ProcessingErrors []error

	// Issues holds each entry's issues, keyed by entry index.
	Issues map[int][]fc.Issue

	// Resources are the converted resources in entry order.
	Resources []fc.Resource
}

// Aggregate drains results and releases each entry's Result to the pool.
func Aggregate(results <-chan *EntryResult) *BundleStreamResult {
	agg := &BundleStreamResult{
		Issues: make(map[int][]fc.Issue),
	}

	for result := range results {
		if result.Error != nil {
			agg.ProcessingErrors = append(agg.ProcessingErrors, result.Error)
			if result.Index >= 0 {
				agg.TotalEntries++
				agg.Failed++
			}
			continue
		}

		agg.TotalEntries++
		r := result.Result
		if r == nil {
			continue
		}

		switch {
		case r.Skipped:
			agg.Skipped++
		case r.Converted:
			agg.Converted++
			agg.Resources = append(agg.Resources, r.Resource)
		default:
			agg.Failed++
		}

		if len(r.Issues) > 0 {
			agg.Issues[result.Index] = append([]fc.Issue(nil), r.Issues...)
			agg.TotalIssues += len(r.Issues)
		}

		r.Release()
	}

	return agg
}

// HasErrors reports whether any entry failed.
func (r *BundleStreamResult) HasErrors() bool {
	return r.Failed > 0 || len(r.ProcessingErrors) > 0
}

// Summary returns a one line description of the run.
func (r *BundleStreamResult) Summary() string {
	return fmt.Sprintf(
		"Converted %d of %d entries: %d skipped, %d failed, %d issues",
		r.Converted,
		r.TotalEntries,
		r.Skipped,
		r.Failed,
		r.TotalIssues,
	)
}
