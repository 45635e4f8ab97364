package clusters_test

import (
	"fmt"

	"github.com/hupe1980/clusters"
	"github.com/hupe1980/clusters/clusterstest"
	"github.com/hupe1980/clusters/distance"
)

// Example_isNear demonstrates the default nearness policy.
func Example_isNear() {
	p := clusterstest.Num(0)

	fmt.Println(clusters.IsNear[clusterstest.Num, int](p, 5, 5))
	fmt.Println(clusters.IsNear[clusterstest.Num, int](p, 5, 4))
	// Output:
	// true
	// false
}

// Example_strict demonstrates overriding the nearness policy.
func Example_strict() {
	abs := func(a, b float64) float64 { return max(a-b, b-a) }
	p := distance.Strict[float64, float64](distance.Bind(abs, 0.0))

	fmt.Println(clusters.IsNear(p, 5.0, 5.0))
	// Output: false
}

// Example_cluster demonstrates clustering three points and verifying the result.
func Example_cluster() {
	alg := clusters.Instrument[clusterstest.Num, *clusters.Labeled[clusterstest.Num]](
		clusterstest.Linkage[clusterstest.Num, int]{Epsilon: 2},
		clusters.WithName("linkage"),
		clusters.WithSizeCheck(true),
	)

	input := []clusterstest.Num{0, 1, 10}
	res, err := alg.Cluster(input)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Clusters())
	fmt.Println(res.Noise())
	fmt.Println(clusters.VerifyPartition[clusterstest.Num](input, res))
	// Output:
	// [[0 1]]
	// [10]
	// <nil>
}

// Example_metrics demonstrates collecting run statistics.
func Example_metrics() {
	metrics := &clusters.BasicMetricsCollector{}
	alg := clusters.Instrument[clusterstest.Num, *clusters.Labeled[clusterstest.Num]](
		clusterstest.Linkage[clusterstest.Num, int]{Epsilon: 1},
		clusters.WithMetricsCollector(metrics),
	)

	_, _ = alg.Cluster([]clusterstest.Num{0, 1, 5, 6, 20})
	_, _ = alg.Cluster(nil)

	stats := metrics.GetStats()
	fmt.Println(stats.Runs, stats.Points, stats.Clusters, stats.Noise)
	// Output: 2 5 2 1
}
