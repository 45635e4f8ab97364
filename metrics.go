package clusters

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCluster is called after each clustering run.
	// clusters and noise are zero when err is non-nil.
	RecordCluster(points, clusters, noise int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCluster(int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	RunCount      atomic.Int64
	RunErrors     atomic.Int64
	RunTotalNanos atomic.Int64
	PointCount    atomic.Int64
	ClusterCount  atomic.Int64
	NoiseCount    atomic.Int64
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(points, clusters, noise int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	b.PointCount.Add(int64(points))
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.ClusterCount.Add(int64(clusters))
	b.NoiseCount.Add(int64(noise))
}

// Stats is a point-in-time copy of BasicMetricsCollector.
type Stats struct {
	Runs         int64
	Errors       int64
	Points       int64
	Clusters     int64
	Noise        int64
	AvgRunMicros int64
}

// GetStats returns a snapshot of the current metrics.
func (b *BasicMetricsCollector) GetStats() Stats {
	runs := b.RunCount.Load()
	var avg int64
	if runs > 0 {
		avg = b.RunTotalNanos.Load() / runs / 1000
	}
	return Stats{
		Runs:         runs,
		Errors:       b.RunErrors.Load(),
		Points:       b.PointCount.Load(),
		Clusters:     b.ClusterCount.Load(),
		Noise:        b.NoiseCount.Load(),
		AvgRunMicros: avg,
	}
}
