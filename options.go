package fhirconverter

import (
	"runtime"
	"time"
)

// Option configures the Converter.
type Option func(*Options)

// Options holds all configuration for the Converter.
type Options struct {
	// Parsing
	StrictParse bool

	// Selection
	Filter          string
	FilterCacheSize int

	// Performance
	MaxFailures   int
	WorkerCount   int
	JobTimeout    time.Duration
	EnablePooling bool

	// Observability
	LogLevel       string
	CollectMetrics bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		StrictParse: false,

		Filter:          "",
		FilterCacheSize: 256,

		MaxFailures:   0, // unlimited
		WorkerCount:   runtime.NumCPU(),
		JobTimeout:    0, // no timeout
		EnablePooling: true,

		LogLevel:       "info",
		CollectMetrics: true,
	}
}

// Apply returns a copy of o with opts applied.
func (o Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// --- Parsing Options ---

// WithStrictParse checks the lexical form of date, time, uri and id style
// primitives while converting. Numbers and booleans are always checked.
func WithStrictParse(enable bool) Option {
	return func(o *Options) {
		o.StrictParse = enable
	}
}

// --- Selection Options ---

// WithFilter restricts batch and bundle conversion to source resources for
// which the FHIRPath expression evaluates to true. An empty expression
// selects everything.
func WithFilter(expr string) Option {
	return func(o *Options) {
		o.Filter = expr
	}
}

// WithCacheSize sets how many compiled filter expressions are kept.
func WithCacheSize(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.FilterCacheSize = size
		}
	}
}

// --- Performance Options ---

// WithMaxFailures stops a batch after the given number of failed
// conversions. Use 0 for unlimited.
func WithMaxFailures(max int) Option {
	return func(o *Options) {
		if max >= 0 {
			o.MaxFailures = max
		}
	}
}

// WithWorkerCount sets the number of workers for batch conversion.
// Defaults to runtime.NumCPU().
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}

// WithJobTimeout sets a deadline for each conversion in a batch.
// Use 0 for no timeout.
func WithJobTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.JobTimeout = timeout
	}
}

// WithPooling enables or disables object pooling.
// Pooling reduces GC pressure but requires calling Release() on results.
func WithPooling(enable bool) Option {
	return func(o *Options) {
		o.EnablePooling = enable
	}
}

// --- Observability Options ---

// WithLogLevel sets the log level: debug, info, warn, error or disabled.
func WithLogLevel(level string) Option {
	return func(o *Options) {
		o.LogLevel = level
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}

// --- Presets ---

// FastOptions returns options optimized for throughput.
func FastOptions() []Option {
	return []Option{
		WithStrictParse(false),
		WithPooling(true),
		WithCacheSize(1024),
		WithMetrics(false),
	}
}

// StrictOptions returns options that reject questionable input early.
func StrictOptions() []Option {
	return []Option{
		WithStrictParse(true),
		WithMaxFailures(1),
	}
}

// DebugOptions returns options useful for debugging.
// Disables pooling so results can be inspected after Release.
func DebugOptions() []Option {
	return []Option{
		WithPooling(false),
		WithLogLevel("debug"),
		WithWorkerCount(1),
	}
}
