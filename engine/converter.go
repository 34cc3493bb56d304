// Package engine provides the converter facade: parse, filter, convert and
// report, with metrics and logging around the transition engine.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/filter"
	"github.com/gofhir/converter/node"
	"github.com/gofhir/converter/node/jsonnode"
	"github.com/gofhir/converter/pkg/logger"
	"github.com/gofhir/converter/stream"
	"github.com/gofhir/converter/transition"
	"github.com/gofhir/converter/worker"
)

// Converter converts resources from one FHIR release to another. It is safe
// for concurrent use.
type Converter struct {
	from, to fc.FHIRVersion
	options  *fc.Options

	chain   *transition.Chain
	filter  *filter.Filter
	metrics *fc.Metrics
	log     *logger.Logger
}

// New creates a Converter for from -> to using the built-in transitions.
func New(ctx context.Context, from, to fc.FHIRVersion, opts ...fc.Option) (*Converter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := fc.DefaultOptions().Apply(opts...)

	level, err := logger.ParseLevel(options.LogLevel)
	if err != nil {
		return nil, err
	}

	catalogue := transition.Standard(transition.Config{StrictFormats: options.StrictParse})
	chain, err := catalogue.Plan(from, to, nil)
	if err != nil {
		return nil, fmt.Errorf("plan %s -> %s: %w", from, to, err)
	}

	c := &Converter{
		from:    from,
		to:      to,
		options: options,
		chain:   chain,
		metrics: fc.NewMetrics(),
	}
	c.filter = filter.New(options.FilterCacheSize, c.metrics)
	if err := c.filter.Compile(options.Filter); err != nil {
		return nil, err
	}

	c.log = logger.Default().With("route", chain.String())
	c.log.SetLevel(level)
	c.log.Debug("converter ready, %d resource types", len(chain.ResourceTypes()))

	return c, nil
}

// SetLogger replaces the converter's logger.
func (c *Converter) SetLogger(l *logger.Logger) {
	if l != nil {
		c.log = l
	}
}

func (c *Converter) newResult() *fc.Result {
	var r *fc.Result
	if c.options.EnablePooling {
		r = fc.AcquireResult()
	} else {
		r = fc.NewResult()
	}
	r.Source = c.from
	r.Target = c.to
	return r
}

// Convert converts one JSON resource. Conversion failures are reported as
// issues on the result; the error is non-nil only when ctx is already done.
func (c *Converter) Convert(ctx context.Context, data []byte) (*fc.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	result := c.newResult()
	result.ResourceType, _ = jsonnode.ResourceType(data)

	tree, err := jsonnode.Parse(data)
	if err != nil {
		result.Fail(fc.StageParse, err)
		return c.finish(result, start), nil
	}

	if c.options.Filter != "" {
		ok, err := c.filter.Match(c.options.Filter, data)
		if err != nil {
			result.Fail(fc.StageFilter, err)
			return c.finish(result, start), nil
		}
		if !ok {
			result.Skip()
			return c.finish(result, start), nil
		}
	}

	c.convert(ctx, tree, result)
	return c.finish(result, start), nil
}

// ConvertNode converts a resource that is already a node tree, for example
// one read by the XML adapter. The filter does not apply.
func (c *Converter) ConvertNode(ctx context.Context, n node.Node) (*fc.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	result := c.newResult()
	result.ResourceType = n.ResourceType()
	c.convert(ctx, n, result)
	return c.finish(result, start), nil
}

func (c *Converter) convert(ctx context.Context, n node.Node, result *fc.Result) {
	res, err := c.chain.Convert(ctx, n)
	if err != nil {
		result.Fail(fc.StageConvert, err)
		return
	}
	result.SetResource(res)
}

func (c *Converter) finish(result *fc.Result, start time.Time) *fc.Result {
	result.Duration = time.Since(start)
	if c.options.CollectMetrics {
		c.metrics.RecordResult(result)
	}

	switch {
	case result.Skipped:
		c.log.Debug("skipped %s", result.ResourceType)
	case result.Converted:
		c.log.Debug("converted %s in %s", result.ResourceType, result.Duration)
	default:
		c.log.Info("could not convert %s: %d errors", result.ResourceType, result.ErrorCount())
	}
	return result
}

// ConvertBatch converts resources in parallel and returns the results in
// input order.
func (c *Converter) ConvertBatch(ctx context.Context, resources [][]byte) *worker.BatchResult {
	return worker.NewBatchConverter(worker.ConvertFunc(c.Convert), c.options.WorkerCount).
		WithJobTimeout(c.options.JobTimeout).
		WithMaxFailures(c.options.MaxFailures).
		WithLogger(c.log).
		ConvertBatch(ctx, resources)
}

// NewPool starts a worker pool feeding jobs to c. Cancelling ctx stops it.
func (c *Converter) NewPool(ctx context.Context) *worker.Pool {
	return worker.NewPool(ctx, c, c.options.WorkerCount,
		worker.WithJobTimeout(c.options.JobTimeout),
		worker.WithLogger(c.log),
	)
}

// ConvertBundleStream converts each entry of a source Bundle, emitting
// results in entry order as they are produced.
func (c *Converter) ConvertBundleStream(ctx context.Context, r io.Reader) <-chan *stream.EntryResult {
	return c.bundleConverter().ConvertStream(ctx, r)
}

// ConvertBundleStreamParallel converts bundle entries on several workers
// while preserving entry order.
func (c *Converter) ConvertBundleStreamParallel(ctx context.Context, r io.Reader) <-chan *stream.EntryResult {
	return c.bundleConverter().ConvertStreamParallel(ctx, r)
}

func (c *Converter) bundleConverter() *stream.BundleConverter {
	return stream.NewBundleConverter(c.Convert).
		WithWorkerCount(c.options.WorkerCount).
		WithBufferSize(100).
		WithLogger(c.log)
}

// AggregateBundleResults collects all results from a streaming conversion.
func AggregateBundleResults(results <-chan *stream.EntryResult) *stream.BundleStreamResult {
	return stream.Aggregate(results)
}

// Supports reports whether resourceType can be converted.
func (c *Converter) Supports(resourceType string) bool {
	return c.chain.Supports(resourceType)
}

// ResourceTypes lists the convertible resource types.
func (c *Converter) ResourceTypes() []string {
	return c.chain.ResourceTypes()
}

// From returns the source release.
func (c *Converter) From() fc.FHIRVersion { return c.from }

// To returns the target release.
func (c *Converter) To() fc.FHIRVersion { return c.to }

// Route renders the planned chain, e.g. "R4 -> R5".
func (c *Converter) Route() string { return c.chain.String() }

// Metrics returns the converter's metrics.
func (c *Converter) Metrics() *fc.Metrics {
	return c.metrics
}

// Options returns the converter's options.
func (c *Converter) Options() *fc.Options {
	return c.options
}

// Close drops cached filter expressions.
func (c *Converter) Close() error {
	c.filter.Clear()
	return nil
}
