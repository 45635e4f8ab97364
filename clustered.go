package clusters

import (
	"cmp"
	"slices"
)

// Noise is the label Labeled uses for points outside every cluster.
const Noise = -1

// Clustered is a read-only view over a computed clustering.
//
// Every point submitted to the algorithm appears exactly once, either in one
// cluster or in the noise. Order is implementation-defined unless a type
// documents otherwise. Each call returns a fresh copy, so callers may modify
// what they receive without affecting the result.
type Clustered[T any] interface {
	// Clusters returns the members of every cluster found.
	Clusters() [][]T

	// Noise returns the points that were not assigned to any cluster.
	Noise() []T
}

// Count returns the number of clusters, noise points and total points in r.
func Count[T any](r Clustered[T]) (clusters, noise, total int) {
	groups := r.Clusters()
	for _, g := range groups {
		total += len(g)
	}
	noise = len(r.Noise())
	return len(groups), noise, total + noise
}

// Partition is a Clustered backed by grouped slices.
type Partition[T any] struct {
	groups [][]T
	noise  []T
}

// NewPartition creates a Partition from groups and noise. Both are copied.
// Empty groups are dropped.
func NewPartition[T any](groups [][]T, noise []T) *Partition[T] {
	p := &Partition[T]{
		groups: make([][]T, 0, len(groups)),
		noise:  slices.Clone(noise),
	}
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		p.groups = append(p.groups, slices.Clone(g))
	}
	return p
}

// Clusters implements Clustered. Groups keep their construction order.
func (p *Partition[T]) Clusters() [][]T {
	return cloneGroups(p.groups)
}

// Noise implements Clustered.
func (p *Partition[T]) Noise() []T {
	return cloneOrEmpty(p.noise)
}

// Labeled is a Clustered backed by the input points and a parallel slice of
// cluster labels. Label Noise marks unassigned points.
type Labeled[T any] struct {
	points []T
	labels []int
}

// NewLabeled creates a Labeled result. Labels must be Noise or non-negative;
// they need not be contiguous. Both slices are copied.
func NewLabeled[T any](points []T, labels []int) (*Labeled[T], error) {
	if len(points) != len(labels) {
		return nil, &ErrLabelMismatch{Points: len(points), Labels: len(labels)}
	}
	for i, l := range labels {
		if l < Noise {
			return nil, &ErrInvalidLabel{Index: i, Label: l}
		}
	}
	return &Labeled[T]{
		points: slices.Clone(points),
		labels: slices.Clone(labels),
	}, nil
}

// Len returns the number of labeled points.
func (l *Labeled[T]) Len() int { return len(l.points) }

// Label returns the label of the i-th point.
func (l *Labeled[T]) Label(i int) int { return l.labels[i] }

// Clusters implements Clustered. Clusters are ordered by the first
// occurrence of their label; members keep input order.
func (l *Labeled[T]) Clusters() [][]T {
	index := make(map[int]int)
	groups := make([][]T, 0)
	for i, label := range l.labels {
		if label == Noise {
			continue
		}
		g, ok := index[label]
		if !ok {
			g = len(groups)
			index[label] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], l.points[i])
	}
	return groups
}

// Noise implements Clustered. Points keep input order.
func (l *Labeled[T]) Noise() []T {
	noise := make([]T, 0)
	for i, label := range l.labels {
		if label == Noise {
			noise = append(noise, l.points[i])
		}
	}
	return noise
}

// Grouped is a Clustered built from a map of cluster key to members.
//
// Entries are kept sorted by cmp.Compare, so float keys including NaN are
// retained; NaN keys sort first.
type Grouped[K cmp.Ordered, T any] struct {
	entries []groupEntry[K, T]
	noise   []T
}

type groupEntry[K cmp.Ordered, T any] struct {
	key     K
	members []T
}

// NewGrouped creates a Grouped result. The map and noise are copied; keys
// with no members are dropped.
func NewGrouped[K cmp.Ordered, T any](groups map[K][]T, noise []T) *Grouped[K, T] {
	g := &Grouped[K, T]{
		entries: make([]groupEntry[K, T], 0, len(groups)),
		noise:   slices.Clone(noise),
	}
	for k, members := range groups {
		if len(members) == 0 {
			continue
		}
		g.entries = append(g.entries, groupEntry[K, T]{key: k, members: slices.Clone(members)})
	}
	slices.SortStableFunc(g.entries, func(a, b groupEntry[K, T]) int {
		return cmp.Compare(a.key, b.key)
	})
	return g
}

// Keys returns the cluster keys in ascending order.
func (g *Grouped[K, T]) Keys() []K {
	keys := make([]K, len(g.entries))
	for i, e := range g.entries {
		keys[i] = e.key
	}
	return keys
}

// Group returns a copy of the members of cluster k. Keys are matched with
// cmp.Compare, so a NaN k finds the first NaN-keyed cluster.
func (g *Grouped[K, T]) Group(k K) ([]T, bool) {
	i, ok := slices.BinarySearchFunc(g.entries, k, func(e groupEntry[K, T], k K) int {
		return cmp.Compare(e.key, k)
	})
	if !ok {
		return nil, false
	}
	return slices.Clone(g.entries[i].members), true
}

// Clusters implements Clustered. Clusters are ordered by ascending key.
func (g *Grouped[K, T]) Clusters() [][]T {
	groups := make([][]T, len(g.entries))
	for i, e := range g.entries {
		groups[i] = slices.Clone(e.members)
	}
	return groups
}

// Noise implements Clustered.
func (g *Grouped[K, T]) Noise() []T {
	return cloneOrEmpty(g.noise)
}

func cloneGroups[T any](groups [][]T) [][]T {
	out := make([][]T, len(groups))
	for i, g := range groups {
		out[i] = slices.Clone(g)
	}
	return out
}

func cloneOrEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return slices.Clone(s)
}
