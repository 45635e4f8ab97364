package clusterstest

import (
	"cmp"

	"github.com/hupe1980/clusters"
)

// DefaultMinPoints is the cluster size Linkage uses when MinPoints is zero.
const DefaultMinPoints = 2

// Linkage is a threshold single-linkage reference algorithm.
//
// Two points are linked when either is near the other under Epsilon.
// Connected components with at least MinPoints members become clusters,
// everything else is noise. Clusters are ordered by their first member in
// the input and members keep input order.
type Linkage[T clusters.Proximity[T, D], D cmp.Ordered] struct {
	Epsilon   D
	MinPoints int
}

// Cluster implements clusters.Algorithm.
func (l Linkage[T, D]) Cluster(points []T) (*clusters.Labeled[T], error) {
	minPoints := l.MinPoints
	switch {
	case minPoints < 0:
		return nil, clusters.NewInvalidParameter("MinPoints", minPoints, nil)
	case minPoints == 0:
		minPoints = DefaultMinPoints
	}

	n := len(points)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !l.linked(points[i], points[j]) {
				continue
			}
			ri, rj := find(i), find(j)
			if ri == rj {
				continue
			}
			// Keep the smallest index as root so ordering follows the input.
			if rj < ri {
				ri, rj = rj, ri
			}
			parent[rj] = ri
		}
	}

	sizes := make([]int, n)
	for i := range points {
		sizes[find(i)]++
	}

	labels := make([]int, n)
	next := 0
	rootLabel := make(map[int]int)
	for i := range points {
		root := find(i)
		if sizes[root] < minPoints {
			labels[i] = clusters.Noise
			continue
		}
		label, ok := rootLabel[root]
		if !ok {
			label = next
			rootLabel[root] = label
			next++
		}
		labels[i] = label
	}

	return clusters.NewLabeled(points, labels)
}

func (l Linkage[T, D]) linked(a, b T) bool {
	return clusters.IsNear[T, D](a, b, l.Epsilon) || clusters.IsNear[T, D](b, a, l.Epsilon)
}
