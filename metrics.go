package vecframe

import (
	"sync/atomic"

	"github.com/hupe1980/vecframe/store"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called synchronously from the mutating operation and must
// not call back into the Vector or DataFrame.
type MetricsCollector interface {
	// RecordCast is called after each backing store conversion.
	// err is nil if successful.
	RecordCast(from, to store.Kind, err error)

	// RecordResize is called after a Vector grows or shrinks.
	// op is "append" or "delete", size the resulting length.
	RecordResize(op string, size int)

	// RecordColumn is called after each column insert, replace or delete.
	RecordColumn(op string, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCast(store.Kind, store.Kind, error) {}
func (NoopMetricsCollector) RecordResize(string, int)                 {}
func (NoopMetricsCollector) RecordColumn(string, error)               {}

// BasicMetricsCollector provides simple in-memory counters.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CastCount      atomic.Int64
	CastErrors     atomic.Int64
	AppendCount    atomic.Int64
	DeleteCount    atomic.Int64
	ColumnInserts  atomic.Int64
	ColumnReplaces atomic.Int64
	ColumnDeletes  atomic.Int64
	ColumnErrors   atomic.Int64
}

// RecordCast implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCast(_, _ store.Kind, err error) {
	b.CastCount.Add(1)
	if err != nil {
		b.CastErrors.Add(1)
	}
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(op string, _ int) {
	switch op {
	case "append":
		b.AppendCount.Add(1)
	case "delete":
		b.DeleteCount.Add(1)
	}
}

// RecordColumn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordColumn(op string, err error) {
	if err != nil {
		b.ColumnErrors.Add(1)
		return
	}
	switch op {
	case "insert":
		b.ColumnInserts.Add(1)
	case "replace":
		b.ColumnReplaces.Add(1)
	case "delete":
		b.ColumnDeletes.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CastCount:      b.CastCount.Load(),
		CastErrors:     b.CastErrors.Load(),
		AppendCount:    b.AppendCount.Load(),
		DeleteCount:    b.DeleteCount.Load(),
		ColumnInserts:  b.ColumnInserts.Load(),
		ColumnReplaces: b.ColumnReplaces.Load(),
		ColumnDeletes:  b.ColumnDeletes.Load(),
		ColumnErrors:   b.ColumnErrors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CastCount      int64
	CastErrors     int64
	AppendCount    int64
	DeleteCount    int64
	ColumnInserts  int64
	ColumnReplaces int64
	ColumnDeletes  int64
	ColumnErrors   int64
}
