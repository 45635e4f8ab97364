package clusters

type options struct {
	name             string
	logger           *Logger
	metricsCollector MetricsCollector
	sizeCheck        bool
}

// Option configures an Instrumented algorithm.
type Option func(*options)

// WithName sets the algorithm name attached to log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger configures the logger used to report clustering runs.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for clustering runs.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &clusters.BasicMetricsCollector{}
//	alg := clusters.Instrument(inner, clusters.WithMetricsCollector(metrics))
//	_, _ = alg.Cluster(points)
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithSizeCheck makes the algorithm fail with *ErrSizeMismatch when clusters
// plus noise do not hold exactly as many points as the input.
//
// This catches omitted and duplicated points without requiring comparable
// points; use VerifyPartition for a full check.
func WithSizeCheck(enabled bool) Option {
	return func(o *options) {
		o.sizeCheck = enabled
	}
}
