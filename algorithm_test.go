package clusters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threshold puts every point at or below limit into one cluster.
func threshold(limit int) Func[int, *Partition[int]] {
	return func(points []int) (*Partition[int], error) {
		var in, out []int
		for _, p := range points {
			if p <= limit {
				in = append(in, p)
			} else {
				out = append(out, p)
			}
		}
		return NewPartition([][]int{in}, out), nil
	}
}

func TestFunc(t *testing.T) {
	var alg Algorithm[int, *Partition[int]] = threshold(2)

	res, err := alg.Cluster([]int{0, 1, 10})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}}, res.Clusters())
	assert.Equal(t, []int{10}, res.Noise())

	res, err = alg.Cluster(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Clusters())
	assert.Empty(t, res.Noise())
}

func TestFunc_ReadOnlyInput(t *testing.T) {
	input := []int{3, 1, 2}
	_, err := threshold(2).Cluster(input)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, input)
}

func TestErase(t *testing.T) {
	labeled := Func[int, *Labeled[int]](func(points []int) (*Labeled[int], error) {
		labels := make([]int, len(points))
		for i := range labels {
			labels[i] = Noise
		}
		return NewLabeled(points, labels)
	})

	algs := []Algorithm[int, Clustered[int]]{
		Erase[int, *Partition[int]](threshold(2)),
		Erase[int, *Labeled[int]](labeled),
	}

	input := []int{0, 1, 10}
	for _, alg := range algs {
		res, err := alg.Cluster(input)
		require.NoError(t, err)
		assert.NoError(t, VerifyPartition(input, res))
	}
}

func TestErase_Error(t *testing.T) {
	failing := Func[int, *Partition[int]](func([]int) (*Partition[int], error) {
		return nil, ErrNotConverged
	})

	res, err := Erase[int, *Partition[int]](failing).Cluster([]int{1})
	assert.ErrorIs(t, err, ErrNotConverged)
	// A typed nil must not leak through the interface.
	assert.Nil(t, res)
}

func TestErrInvalidParameter(t *testing.T) {
	cause := errors.New("must be positive")
	err := NewInvalidParameter("K", 0, cause)

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid parameter K=0: must be positive", err.Error())

	bare := NewInvalidParameter("Epsilon", -1.5, nil)
	assert.ErrorIs(t, bare, ErrInvalidConfig)
	assert.Equal(t, "invalid parameter Epsilon=-1.5", bare.Error())
}
