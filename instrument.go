package clusters

import "time"

// Instrumented wraps an Algorithm with logging, metrics and an optional
// size check. It is itself an Algorithm with the same result type.
type Instrumented[T any, R Clustered[T]] struct {
	alg  Algorithm[T, R]
	opts options
	now  func() time.Time
}

// Instrument wraps alg. Without options it logs nothing and records nothing.
func Instrument[T any, R Clustered[T]](alg Algorithm[T, R], optFns ...Option) *Instrumented[T, R] {
	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.name != "" {
		opts.logger = opts.logger.WithAlgorithm(opts.name)
	}
	return &Instrumented[T, R]{
		alg:  alg,
		opts: opts,
		now:  time.Now,
	}
}

// Unwrap returns the wrapped algorithm.
func (a *Instrumented[T, R]) Unwrap() Algorithm[T, R] { return a.alg }

// Cluster implements Algorithm.
func (a *Instrumented[T, R]) Cluster(points []T) (R, error) {
	start := a.now()
	r, err := a.alg.Cluster(points)

	var clusters, noise, total int
	if err == nil && Clustered[T](r) == nil {
		err = ErrNilResult
	}
	if err == nil {
		clusters, noise, total = Count[T](r)
		if a.opts.sizeCheck && total != len(points) {
			err = &ErrSizeMismatch{Expected: len(points), Actual: total}
		}
	}

	elapsed := a.now().Sub(start)
	if err != nil {
		clusters, noise = 0, 0
	}
	a.opts.logger.LogCluster(len(points), clusters, noise, elapsed, err)
	a.opts.metricsCollector.RecordCluster(len(points), clusters, noise, elapsed, err)

	if err != nil {
		var zero R
		return zero, err
	}
	return r, nil
}
