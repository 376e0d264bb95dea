package biomemap

import (
	"sync"
)

// Metrics counts the work done by a resolver and its cache. All methods may be called on a nil *Metrics,
// in which case they do nothing.
type Metrics struct {
	mu sync.Mutex
	s  MetricsSnapshot
}

// MetricsSnapshot is a copy of the counters of a Metrics.
type MetricsSnapshot struct {
	// CacheHits and CacheMisses count tile lookups.
	CacheHits, CacheMisses uint64
	// FillFailures counts tile fills that failed on an invalid identifier.
	FillFailures uint64
	// Evictions counts tiles dropped by sweeps, Sweeps the sweeps that ran.
	Evictions, Sweeps uint64
	// RawLayerCalls and IndexLayerCalls count top-level grid requests to either layer.
	RawLayerCalls, IndexLayerCalls uint64
}

// NewMetrics creates a Metrics with all counters at zero.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) add(f func(s *MetricsSnapshot)) {
	if m == nil {
		return
	}
	m.mu.Lock()
	f(&m.s)
	m.mu.Unlock()
}

// IncHits increments the cache hit counter.
func (m *Metrics) IncHits() { m.add(func(s *MetricsSnapshot) { s.CacheHits++ }) }

// IncMisses increments the cache miss counter.
func (m *Metrics) IncMisses() { m.add(func(s *MetricsSnapshot) { s.CacheMisses++ }) }

// IncFillFailures increments the failed fill counter.
func (m *Metrics) IncFillFailures() { m.add(func(s *MetricsSnapshot) { s.FillFailures++ }) }

// AddEvictions adds n to the eviction counter and counts a sweep.
func (m *Metrics) AddEvictions(n int) {
	m.add(func(s *MetricsSnapshot) {
		s.Evictions += uint64(n)
		s.Sweeps++
	})
}

// IncRawCalls increments the raw layer call counter.
func (m *Metrics) IncRawCalls() { m.add(func(s *MetricsSnapshot) { s.RawLayerCalls++ }) }

// IncIndexCalls increments the index layer call counter.
func (m *Metrics) IncIndexCalls() { m.add(func(s *MetricsSnapshot) { s.IndexLayerCalls++ }) }

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s
}
