package objstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each Add, AddValue or Set operation.
	// duration is the total time taken, added reports whether a new entry
	// was created.
	RecordInsert(duration time.Duration, added bool)

	// RecordLookup is called after each Get, GetByValue or IDByValue
	// operation.
	RecordLookup(duration time.Duration, found bool)

	// RecordDelete is called after each Delete or DeleteByValue operation.
	RecordDelete(duration time.Duration, deleted bool)

	// RecordRebuild is called after a reconfiguration rebuilds the store.
	// count is the number of entries re-inserted.
	RecordRebuild(count int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool) {}
func (NoopMetricsCollector) RecordLookup(time.Duration, bool) {}
func (NoopMetricsCollector) RecordDelete(time.Duration, bool) {}
func (NoopMetricsCollector) RecordRebuild(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertAdded      atomic.Int64
	InsertTotalNanos atomic.Int64
	LookupCount      atomic.Int64
	LookupMisses     atomic.Int64
	LookupTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeleteMisses     atomic.Int64
	RebuildCount     atomic.Int64
	RebuildEntries   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, added bool) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if added {
		b.InsertAdded.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, found bool) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.LookupMisses.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, deleted bool) {
	b.DeleteCount.Add(1)
	if !deleted {
		b.DeleteMisses.Add(1)
	}
}

// RecordRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebuild(count int, duration time.Duration) {
	b.RebuildCount.Add(1)
	b.RebuildEntries.Add(int64(count))
}
