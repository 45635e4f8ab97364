package clusterstest

import (
	"slices"
	"testing"

	"github.com/hupe1980/clusters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertPartition fails t unless r partitions input exactly.
func AssertPartition[T comparable](t testing.TB, input []T, r clusters.Clustered[T]) {
	t.Helper()

	require.NoError(t, clusters.VerifyPartition(input, r))
	_, _, total := clusters.Count(r)
	assert.Equal(t, len(input), total)
}

// AssertIdempotent fails t unless repeated reads of r return the same content,
// and unless modifying a returned slice leaves r unchanged.
func AssertIdempotent[T any](t testing.TB, r clusters.Clustered[T]) {
	t.Helper()

	first, firstNoise := r.Clusters(), r.Noise()
	second, secondNoise := r.Clusters(), r.Noise()
	assert.Equal(t, first, second)
	assert.Equal(t, firstNoise, secondNoise)

	if len(first) > 0 && len(first[0]) > 0 {
		var zero T
		first[0][0] = zero
		assert.Equal(t, second, r.Clusters(), "clusters must be returned as copies")
	}
	if len(firstNoise) > 0 {
		var zero T
		firstNoise[0] = zero
		assert.Equal(t, secondNoise, r.Noise(), "noise must be returned as a copy")
	}
}

// CheckAlgorithm runs alg on each input and asserts the result contract:
// an empty input yields an empty result, every result partitions its input,
// reads are idempotent, and the input is left unmodified.
func CheckAlgorithm[T comparable, R clusters.Clustered[T]](t *testing.T, alg clusters.Algorithm[T, R], inputs ...[]T) {
	t.Helper()

	t.Run("Empty", func(t *testing.T) {
		r, err := alg.Cluster(nil)
		require.NoError(t, err)
		assert.Empty(t, r.Clusters())
		assert.Empty(t, r.Noise())
	})

	for i, input := range inputs {
		snapshot := slices.Clone(input)
		r, err := alg.Cluster(input)
		require.NoError(t, err, "input %d", i)
		assert.Equal(t, snapshot, input, "input %d modified", i)
		AssertPartition[T](t, input, r)
		AssertIdempotent[T](t, r)
	}
}
