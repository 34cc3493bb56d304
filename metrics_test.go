package fhirconverter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Conversions(t *testing.T) {
	m := NewMetrics()
	assert.Zero(t, m.SuccessRate())
	assert.Zero(t, m.AverageConversionTime())
	assert.Zero(t, m.MinConversionTime())

	m.RecordConversion("Patient", 10*time.Millisecond, true)
	m.RecordConversion("Patient", 30*time.Millisecond, false)
	m.RecordConversion("ConceptMap", 20*time.Millisecond, true)
	m.RecordConversion("", time.Millisecond, false)
	m.RecordSkipped()

	assert.Equal(t, uint64(4), m.ConversionsTotal())
	assert.Equal(t, uint64(2), m.ConversionsConverted())
	assert.Equal(t, uint64(1), m.ConversionsSkipped())
	assert.InDelta(t, 0.5, m.SuccessRate(), 1e-9)
	assert.Equal(t, time.Millisecond, m.MinConversionTime())
	assert.Equal(t, 30*time.Millisecond, m.MaxConversionTime())
	assert.Equal(t, 61*time.Millisecond/4, m.AverageConversionTime())

	patient, ok := m.TypeStats("Patient")
	require.True(t, ok)
	assert.Equal(t, uint64(2), patient.Conversions)
	assert.Equal(t, uint64(1), patient.Failures)
	assert.Equal(t, 20*time.Millisecond, patient.AvgTime)

	_, ok = m.TypeStats("Observation")
	assert.False(t, ok)

	all := m.AllTypeStats()
	require.Len(t, all, 2, "unreadable inputs have no type")
	assert.Equal(t, "ConceptMap", all[0].ResourceType)
	assert.Equal(t, "Patient", all[1].ResourceType)
}

func TestMetrics_RecordResult(t *testing.T) {
	m := NewMetrics()

	ok := NewResult()
	ok.ResourceType = "CodeSystem"
	ok.Duration = time.Millisecond
	ok.AddWarning(IssueTypeInformational, "versionNeeded dropped", "CodeSystem.versionNeeded")
	m.RecordResult(ok)

	failed := NewResult()
	failed.ResourceType = "Observation"
	failed.AddError(IssueTypeNotSupported, "unknown resource type", "resourceType")
	failed.AddIssue(Info(IssueTypeInformational).Build())
	m.RecordResult(failed)

	skipped := NewResult()
	skipped.Skip()
	m.RecordResult(skipped)

	assert.Equal(t, uint64(2), m.ConversionsTotal())
	assert.Equal(t, uint64(1), m.ConversionsConverted())
	assert.Equal(t, uint64(1), m.ConversionsSkipped())
	assert.Equal(t, uint64(1), m.ErrorsTotal())
	assert.Equal(t, uint64(1), m.WarningsTotal())

	s := m.Snapshot()
	assert.Equal(t, uint64(1), s.Informations)
	assert.Len(t, s.ResourceTypes, 2)
	assert.False(t, s.Timestamp.IsZero())
}

func TestMetrics_Cache(t *testing.T) {
	m := NewMetrics()
	assert.Zero(t, m.CacheHitRate())

	m.RecordCacheMiss()
	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheHit()

	assert.Equal(t, uint64(3), m.CacheHits())
	assert.Equal(t, uint64(1), m.CacheMisses())
	assert.InDelta(t, 0.75, m.CacheHitRate(), 1e-9)
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.RecordConversion("Patient", time.Second, true)
	m.RecordCacheHit()
	m.RecordIssue(SeverityFatal)
	m.Reset()

	assert.Zero(t, m.ConversionsTotal())
	assert.Zero(t, m.ErrorsTotal())
	assert.Zero(t, m.CacheHits())
	assert.Zero(t, m.MinConversionTime())
	assert.Zero(t, m.MaxConversionTime())
	assert.Empty(t, m.AllTypeStats())
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	types := []string{"Patient", "ValueSet", "CodeSystem"}

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m.RecordConversion(types[i%len(types)], time.Duration(g*100+i)*time.Microsecond, i%4 != 0)
				m.RecordCacheHit()
				_ = m.Snapshot()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, uint64(1000), m.ConversionsTotal())
	assert.Equal(t, uint64(750), m.ConversionsConverted())
	assert.Equal(t, time.Duration(0), m.MinConversionTime())
	assert.Equal(t, 999*time.Microsecond, m.MaxConversionTime())

	var sum uint64
	for _, s := range m.AllTypeStats() {
		sum += s.Conversions
	}
	assert.Equal(t, uint64(1000), sum)
}

func BenchmarkMetrics_RecordConversion(b *testing.B) {
	m := NewMetrics()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.RecordConversion("Patient", time.Millisecond, true)
		}
	})
}
