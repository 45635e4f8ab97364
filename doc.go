// Package clusters defines the interfaces shared by proximity-based
// clustering algorithms and the distance measures they use.
//
// It contains no algorithm and no metric. It fixes the shape they agree on:
//
//   - Proximity: how far a value is from another, with an ordered result
//   - Clustered: read-only access to clusters and noise of a finished run
//   - Algorithm: turns a batch of points into a Clustered result
//
// # Proximity
//
//	type Num int
//
//	func (n Num) Distance(other Num) int { return max(int(n-other), int(other-n)) }
//
//	clusters.IsNear[Num, int](Num(0), 5, 5) // true: distance <= epsilon
//
// A Proximity may implement Nearness to replace the default policy.
// Distances need not be symmetric or non-negative.
//
// # Results
//
// Partition, Labeled and Grouped implement Clustered over grouped slices,
// label slices and maps. VerifyPartition checks that a result covers its
// input exactly once.
//
// # Failure
//
// Algorithm.Cluster returns an error. Implementations wrap ErrNotConverged
// or ErrInvalidConfig so callers can use errors.Is.
//
// # Instrumentation
//
//	alg := clusters.Instrument(inner,
//	    clusters.WithLogger(clusters.NewTextLogger(os.Stdout, slog.LevelDebug)),
//	    clusters.WithMetricsCollector(&clusters.BasicMetricsCollector{}),
//	    clusters.WithSizeCheck(true),
//	)
package clusters
