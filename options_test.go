package fhirconverter

import (
	"runtime"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.StrictParse {
		t.Error("StrictParse should be false by default")
	}
	if opts.Filter != "" {
		t.Errorf("Filter = %q; want empty", opts.Filter)
	}
	if opts.FilterCacheSize != 256 {
		t.Errorf("FilterCacheSize = %d; want 256", opts.FilterCacheSize)
	}

	// Performance defaults
	if opts.MaxFailures != 0 {
		t.Errorf("MaxFailures = %d; want 0", opts.MaxFailures)
	}
	if opts.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount = %d; want %d", opts.WorkerCount, runtime.NumCPU())
	}
	if opts.JobTimeout != 0 {
		t.Errorf("JobTimeout = %v; want 0", opts.JobTimeout)
	}
	if !opts.EnablePooling {
		t.Error("EnablePooling should be true by default")
	}

	if opts.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want info", opts.LogLevel)
	}
	if !opts.CollectMetrics {
		t.Error("CollectMetrics should be true by default")
	}
}

func TestWithStrictParse(t *testing.T) {
	opts := DefaultOptions()

	WithStrictParse(true)(opts)
	if !opts.StrictParse {
		t.Error("WithStrictParse(true) should enable strict parsing")
	}

	WithStrictParse(false)(opts)
	if opts.StrictParse {
		t.Error("WithStrictParse(false) should disable strict parsing")
	}
}

func TestWithFilter(t *testing.T) {
	opts := DefaultOptions()

	WithFilter("Patient.active = true")(opts)
	if opts.Filter != "Patient.active = true" {
		t.Errorf("Filter = %q", opts.Filter)
	}
}

func TestWithCacheSize(t *testing.T) {
	opts := DefaultOptions()

	WithCacheSize(10)(opts)
	if opts.FilterCacheSize != 10 {
		t.Errorf("FilterCacheSize = %d; want 10", opts.FilterCacheSize)
	}

	// Non-positive should not change
	WithCacheSize(0)(opts)
	if opts.FilterCacheSize != 10 {
		t.Errorf("FilterCacheSize = %d; want 10 (unchanged)", opts.FilterCacheSize)
	}
}

func TestWithMaxFailures(t *testing.T) {
	opts := DefaultOptions()

	WithMaxFailures(5)(opts)
	if opts.MaxFailures != 5 {
		t.Errorf("MaxFailures = %d; want 5", opts.MaxFailures)
	}

	WithMaxFailures(-1)(opts)
	if opts.MaxFailures != 5 {
		t.Errorf("MaxFailures = %d; want 5 (unchanged)", opts.MaxFailures)
	}
}

func TestWithWorkerCount(t *testing.T) {
	opts := DefaultOptions()

	WithWorkerCount(4)(opts)
	if opts.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d; want 4", opts.WorkerCount)
	}

	// Zero should not change
	WithWorkerCount(0)(opts)
	if opts.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d; want 4 (unchanged)", opts.WorkerCount)
	}
}

func TestWithJobTimeout(t *testing.T) {
	opts := DefaultOptions()

	WithJobTimeout(5 * time.Second)(opts)
	if opts.JobTimeout != 5*time.Second {
		t.Errorf("JobTimeout = %v; want 5s", opts.JobTimeout)
	}
}

func TestWithPooling(t *testing.T) {
	opts := DefaultOptions()

	WithPooling(false)(opts)
	if opts.EnablePooling {
		t.Error("WithPooling(false) should disable pooling")
	}
}

func TestWithLogLevelAndMetrics(t *testing.T) {
	opts := DefaultOptions()

	WithLogLevel("debug")(opts)
	WithMetrics(false)(opts)
	if opts.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want debug", opts.LogLevel)
	}
	if opts.CollectMetrics {
		t.Error("WithMetrics(false) should disable metrics")
	}
}

func TestOptions_Apply(t *testing.T) {
	base := DefaultOptions()
	got := base.Apply(WithWorkerCount(2), WithStrictParse(true))

	if got.WorkerCount != 2 || !got.StrictParse {
		t.Errorf("Apply did not apply options: %+v", got)
	}
	if base.WorkerCount != runtime.NumCPU() || base.StrictParse {
		t.Error("Apply should not modify the receiver")
	}
}

func TestPresets(t *testing.T) {
	t.Run("fast", func(t *testing.T) {
		opts := DefaultOptions().Apply(FastOptions()...)
		if opts.StrictParse || !opts.EnablePooling || opts.CollectMetrics {
			t.Errorf("unexpected fast options: %+v", opts)
		}
		if opts.FilterCacheSize != 1024 {
			t.Errorf("FilterCacheSize = %d; want 1024", opts.FilterCacheSize)
		}
	})

	t.Run("strict", func(t *testing.T) {
		opts := DefaultOptions().Apply(StrictOptions()...)
		if !opts.StrictParse || opts.MaxFailures != 1 {
			t.Errorf("unexpected strict options: %+v", opts)
		}
	})

	t.Run("debug", func(t *testing.T) {
		opts := DefaultOptions().Apply(DebugOptions()...)
		if opts.EnablePooling || opts.LogLevel != "debug" || opts.WorkerCount != 1 {
			t.Errorf("unexpected debug options: %+v", opts)
		}
	})
}
