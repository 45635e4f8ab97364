package clusterstest

import (
	"errors"
	"testing"

	"github.com/hupe1980/clusters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkage(t *testing.T) {
	tests := []struct {
		name      string
		points    []Num
		epsilon   int
		minPoints int
		clusters  [][]Num
		noise     []Num
	}{
		{"ThreePoints", []Num{0, 1, 10}, 2, 0, [][]Num{{0, 1}}, []Num{10}},
		{"Empty", nil, 2, 0, [][]Num{}, []Num{}},
		{"AllNoise", []Num{0, 10, 20}, 2, 0, [][]Num{}, []Num{0, 10, 20}},
		{"Chained", []Num{0, 4, 2, 6}, 2, 0, [][]Num{{0, 4, 2, 6}}, []Num{}},
		{"TwoGroups", []Num{20, 0, 21, 1}, 1, 0, [][]Num{{20, 21}, {0, 1}}, []Num{}},
		{"Singletons", []Num{0, 10}, 2, 1, [][]Num{{0}, {10}}, []Num{}},
		{"MinPoints", []Num{0, 1, 2, 10, 11}, 1, 3, [][]Num{{0, 1, 2}}, []Num{10, 11}},
		{"Duplicates", []Num{3, 3, 3}, 0, 0, [][]Num{{3, 3, 3}}, []Num{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg := Linkage[Num, int]{Epsilon: tt.epsilon, MinPoints: tt.minPoints}
			res, err := alg.Cluster(tt.points)
			require.NoError(t, err)

			assert.Equal(t, tt.clusters, res.Clusters())
			assert.Equal(t, tt.noise, res.Noise())
			AssertPartition[Num](t, tt.points, res)
		})
	}
}

func TestLinkage_InvalidMinPoints(t *testing.T) {
	alg := Linkage[Num, int]{Epsilon: 1, MinPoints: -1}
	_, err := alg.Cluster([]Num{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, clusters.ErrInvalidConfig)

	var ip *clusters.ErrInvalidParameter
	require.True(t, errors.As(err, &ip))
	assert.Equal(t, "MinPoints", ip.Name)
	assert.Equal(t, -1, ip.Value)
}

func TestLinkage_Asymmetric(t *testing.T) {
	a := Skewed{Pos: 0, Bias: 1}
	b := Skewed{Pos: 4, Bias: 3}
	require.Equal(t, 5, a.Distance(b))
	require.Equal(t, 7, b.Distance(a))

	// Near in one direction is enough to link.
	res, err := Linkage[Skewed, int]{Epsilon: 5}.Cluster([]Skewed{a, b})
	require.NoError(t, err)
	assert.Equal(t, [][]Skewed{{a, b}}, res.Clusters())

	res, err = Linkage[Skewed, int]{Epsilon: 4}.Cluster([]Skewed{b, a})
	require.NoError(t, err)
	assert.Empty(t, res.Clusters())
	assert.Equal(t, []Skewed{b, a}, res.Noise())
}

func TestLinkage_Conformance(t *testing.T) {
	rng := NewRNG(4711)
	inputs := [][]Num{
		{0, 1, 10},
		{5},
		rng.Nums(50, 100),
		rng.Nums(200, 30),
		rng.Blobs(4, 25, 100, 5),
	}

	CheckAlgorithm[Num, *clusters.Labeled[Num]](t, Linkage[Num, int]{Epsilon: 2}, inputs...)
	CheckAlgorithm[Num, *clusters.Labeled[Num]](t, Linkage[Num, int]{Epsilon: 0, MinPoints: 3}, inputs...)

	for range 5 {
		alg := Linkage[Num, int]{Epsilon: rng.Intn(6), MinPoints: 1 + rng.Intn(4)}
		CheckAlgorithm[Num, *clusters.Labeled[Num]](t, alg, inputs...)
	}
}

func TestLinkage_Blobs(t *testing.T) {
	rng := NewRNG(42)
	points := rng.Blobs(3, 10, 100, 4)

	res, err := Linkage[Num, int]{Epsilon: 10}.Cluster(points)
	require.NoError(t, err)

	groups := res.Clusters()
	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.Len(t, g, 10)
	}
	assert.Empty(t, res.Noise())
}

func TestLinkage_Erased(t *testing.T) {
	var alg clusters.Algorithm[Num, clusters.Clustered[Num]] = clusters.Erase[Num, *clusters.Labeled[Num]](Linkage[Num, int]{Epsilon: 2})

	res, err := alg.Cluster([]Num{0, 1, 10})
	require.NoError(t, err)
	assert.Equal(t, [][]Num{{0, 1}}, res.Clusters())
	assert.Equal(t, []Num{10}, res.Noise())
}
