package fhirconverter

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics counts conversions, their timings and issues. All methods are
// safe for concurrent use.
type Metrics struct {
	total     atomic.Uint64
	converted atomic.Uint64
	skipped   atomic.Uint64

	// nanoseconds
	timeTotal atomic.Uint64
	timeMin   atomic.Uint64
	timeMax   atomic.Uint64

	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64

	errors   atomic.Uint64
	warnings atomic.Uint64
	infos    atomic.Uint64

	byType sync.Map // resource type -> *typeCounters
}

type typeCounters struct {
	conversions atomic.Uint64
	failures    atomic.Uint64
	nanos       atomic.Uint64
}

const noMin = ^uint64(0)

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.timeMin.Store(noMin)
	return m
}

func nanos(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d.Nanoseconds())
}

// storeMin lowers v to n if n is smaller.
func storeMin(v *atomic.Uint64, n uint64) {
	for old := v.Load(); n < old; old = v.Load() {
		if v.CompareAndSwap(old, n) {
			return
		}
	}
}

// storeMax raises v to n if n is larger.
func storeMax(v *atomic.Uint64, n uint64) {
	for old := v.Load(); n > old; old = v.Load() {
		if v.CompareAndSwap(old, n) {
			return
		}
	}
}

// RecordConversion records one attempted conversion of resourceType.
// resourceType may be empty when the input was unreadable.
func (m *Metrics) RecordConversion(resourceType string, d time.Duration, converted bool) {
	ns := nanos(d)
	m.total.Add(1)
	if converted {
		m.converted.Add(1)
	}
	m.timeTotal.Add(ns)
	storeMin(&m.timeMin, ns)
	storeMax(&m.timeMax, ns)

	if resourceType == "" {
		return
	}
	v, _ := m.byType.LoadOrStore(resourceType, &typeCounters{})
	tc := v.(*typeCounters)
	tc.conversions.Add(1)
	tc.nanos.Add(ns)
	if !converted {
		tc.failures.Add(1)
	}
}

// RecordSkipped records a resource a filter excluded.
func (m *Metrics) RecordSkipped() {
	m.skipped.Add(1)
}

// RecordCacheHit records a filter cache hit.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss records a filter cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// RecordIssue counts an issue by severity.
func (m *Metrics) RecordIssue(severity IssueSeverity) {
	switch severity {
	case SeverityError, SeverityFatal:
		m.errors.Add(1)
	case SeverityWarning:
		m.warnings.Add(1)
	case SeverityInformation:
		m.infos.Add(1)
	}
}

// RecordResult records a finished Result: its outcome, timing and issues.
func (m *Metrics) RecordResult(r *Result) {
	if r.Skipped {
		m.RecordSkipped()
		return
	}
	m.RecordConversion(r.ResourceType, r.Duration, r.Converted)
	for _, issue := range r.Issues {
		m.RecordIssue(issue.Severity)
	}
}

// ConversionsTotal returns the number of conversions attempted. Skipped
// resources are not attempts.
func (m *Metrics) ConversionsTotal() uint64 { return m.total.Load() }

// ConversionsConverted returns the number of successful conversions.
func (m *Metrics) ConversionsConverted() uint64 { return m.converted.Load() }

// ConversionsSkipped returns the number of filtered out resources.
func (m *Metrics) ConversionsSkipped() uint64 { return m.skipped.Load() }

// CacheHits returns the filter cache hits.
func (m *Metrics) CacheHits() uint64 { return m.cacheHits.Load() }

// CacheMisses returns the filter cache misses.
func (m *Metrics) CacheMisses() uint64 { return m.cacheMisses.Load() }

// ErrorsTotal returns the number of error and fatal issues.
func (m *Metrics) ErrorsTotal() uint64 { return m.errors.Load() }

// WarningsTotal returns the number of warnings.
func (m *Metrics) WarningsTotal() uint64 { return m.warnings.Load() }

// SuccessRate returns converted over attempted, between 0 and 1.
func (m *Metrics) SuccessRate() float64 {
	return ratio(m.converted.Load(), m.total.Load())
}

// CacheHitRate returns cache hits over lookups, between 0 and 1.
func (m *Metrics) CacheHitRate() float64 {
	hits := m.cacheHits.Load()
	return ratio(hits, hits+m.cacheMisses.Load())
}

// AverageConversionTime returns the mean conversion duration.
func (m *Metrics) AverageConversionTime() time.Duration {
	total := m.total.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.timeTotal.Load() / total) //nolint:gosec // nanoseconds fit int64
}

// MinConversionTime returns the fastest conversion, 0 before the first.
func (m *Metrics) MinConversionTime() time.Duration {
	v := m.timeMin.Load()
	if v == noMin {
		return 0
	}
	return time.Duration(v) //nolint:gosec // nanoseconds fit int64
}

// MaxConversionTime returns the slowest conversion.
func (m *Metrics) MaxConversionTime() time.Duration {
	return time.Duration(m.timeMax.Load()) //nolint:gosec // nanoseconds fit int64
}

func ratio(n, d uint64) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// TypeStats is the breakdown for one source resource type.
type TypeStats struct {
	ResourceType string        `json:"resourceType" yaml:"resourceType"`
	Conversions  uint64        `json:"conversions" yaml:"conversions"`
	Failures     uint64        `json:"failures" yaml:"failures"`
	TotalTime    time.Duration `json:"totalTime" yaml:"totalTime"`
	AvgTime      time.Duration `json:"avgTime" yaml:"avgTime"`
}

func (tc *typeCounters) stats(resourceType string) TypeStats {
	s := TypeStats{
		ResourceType: resourceType,
		Conversions:  tc.conversions.Load(),
		Failures:     tc.failures.Load(),
		TotalTime:    time.Duration(tc.nanos.Load()), //nolint:gosec // nanoseconds fit int64
	}
	if s.Conversions > 0 {
		s.AvgTime = s.TotalTime / time.Duration(s.Conversions) //nolint:gosec // small count
	}
	return s
}

// TypeStats returns the breakdown for resourceType.
func (m *Metrics) TypeStats(resourceType string) (TypeStats, bool) {
	v, ok := m.byType.Load(resourceType)
	if !ok {
		return TypeStats{ResourceType: resourceType}, false
	}
	return v.(*typeCounters).stats(resourceType), true
}

// AllTypeStats returns every resource type's breakdown, sorted by type.
func (m *Metrics) AllTypeStats() []TypeStats {
	var all []TypeStats
	m.byType.Range(func(k, v any) bool {
		all = append(all, v.(*typeCounters).stats(k.(string)))
		return true
	})
	sort.Slice(all, func(i, j int) bool { return all[i].ResourceType < all[j].ResourceType })
	return all
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Timestamp    time.Time     `json:"timestamp" yaml:"timestamp"`
	Total        uint64        `json:"total" yaml:"total"`
	Converted    uint64        `json:"converted" yaml:"converted"`
	Skipped      uint64        `json:"skipped" yaml:"skipped"`
	SuccessRate  float64       `json:"successRate" yaml:"successRate"`
	AvgTime      time.Duration `json:"avgTime" yaml:"avgTime"`
	MinTime      time.Duration `json:"minTime" yaml:"minTime"`
	MaxTime      time.Duration `json:"maxTime" yaml:"maxTime"`
	CacheHits    uint64        `json:"cacheHits" yaml:"cacheHits"`
	CacheMisses  uint64        `json:"cacheMisses" yaml:"cacheMisses"`
	Errors       uint64        `json:"errors" yaml:"errors"`
	Warnings     uint64        `json:"warnings" yaml:"warnings"`
	Informations uint64        `json:"informations" yaml:"informations"`

	ResourceTypes []TypeStats `json:"resourceTypes,omitempty" yaml:"resourceTypes,omitempty"`
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:     time.Now(),
		Total:         m.total.Load(),
		Converted:     m.converted.Load(),
		Skipped:       m.skipped.Load(),
		SuccessRate:   m.SuccessRate(),
		AvgTime:       m.AverageConversionTime(),
		MinTime:       m.MinConversionTime(),
		MaxTime:       m.MaxConversionTime(),
		CacheHits:     m.cacheHits.Load(),
		CacheMisses:   m.cacheMisses.Load(),
		Errors:        m.errors.Load(),
		Warnings:      m.warnings.Load(),
		Informations:  m.infos.Load(),
		ResourceTypes: m.AllTypeStats(),
	}
}

// Reset zeroes every counter.
func (m *Metrics) Reset() {
	for _, v := range []*atomic.Uint64{
		&m.total, &m.converted, &m.skipped,
		&m.timeTotal, &m.timeMax,
		&m.cacheHits, &m.cacheMisses,
		&m.errors, &m.warnings, &m.infos,
	} {
		v.Store(0)
	}
	m.timeMin.Store(noMin)
	m.byType.Range(func(k, _ any) bool {
		m.byType.Delete(k)
		return true
	})
}
