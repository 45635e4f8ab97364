package clusters

// Algorithm runs a clustering procedure over a batch of points.
//
// Implementations carry their own configuration (epsilon, minimum cluster
// size, the proximity to use, ...) as fields set before Cluster is called.
// Cluster must not retain or modify points. The returned result belongs to
// the caller.
//
// An implementation that cannot produce a complete partition returns an
// error instead, typically wrapping ErrNotConverged or ErrInvalidConfig.
// Empty input is not an error: it yields a result with no clusters and no
// noise.
type Algorithm[T any, R Clustered[T]] interface {
	Cluster(points []T) (R, error)
}

// Func adapts an ordinary function to the Algorithm interface.
type Func[T any, R Clustered[T]] func(points []T) (R, error)

// Cluster implements Algorithm.
func (f Func[T, R]) Cluster(points []T) (R, error) {
	return f(points)
}

// Erase hides the concrete result type of a, for callers that hold
// algorithms with different result representations side by side.
func Erase[T any, R Clustered[T]](a Algorithm[T, R]) Algorithm[T, Clustered[T]] {
	return erased[T, R]{a: a}
}

type erased[T any, R Clustered[T]] struct {
	a Algorithm[T, R]
}

func (e erased[T, R]) Cluster(points []T) (Clustered[T], error) {
	r, err := e.a.Cluster(points)
	if err != nil {
		return nil, err
	}
	return r, nil
}
