package dataset

import (
	"testing"

	"github.com/pbanos/cart/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	ps := newSet(t,
		[][]float64{
			{1, 3, 4.0, 7},
			{0, 1, 1.0, 7},
			{1, 3, 2.0, 7},
			{0, 2, 4.0, 7},
		},
		[]bool{true, false, true, false},
		feature.Boolean, feature.Categorical, feature.Continuous, feature.Continuous,
	)

	assert.Len(t, ps.Candidates(0), 1)

	categorical := ps.Candidates(1)
	require.Len(t, categorical, 3)
	for i, expected := range []float64{3, 1, 2} {
		v, ok := categorical[i].Value()
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}

	continuous := ps.Candidates(2)
	require.Len(t, continuous, 2)
	for i, expected := range []float64{1.5, 3.0} {
		v, _ := continuous[i].Value()
		assert.Equal(t, expected, v)
	}

	assert.Empty(t, ps.Candidates(3), "constant column")
	assert.Nil(t, ps.Candidates(4))
}

func TestBestGainBoolean(t *testing.T) {
	ps := newSet(t, [][]float64{{1}, {1}, {0}, {0}}, []bool{true, true, false, false}, feature.Boolean)

	s := ps.BestGain(1)
	require.True(t, s.Found())
	index, ok := s.Feature()
	assert.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, 0.5, s.Gain)
	_, ok = s.Value()
	assert.False(t, ok)
}

func TestBestGainContinuous(t *testing.T) {
	ps := newSet(t, [][]float64{{1.0}, {2.0}, {3.0}, {4.0}}, []bool{false, false, true, true}, feature.Continuous)

	s := ps.BestGain(1)
	require.True(t, s.Found())
	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, 0.5, s.Gain)

	impurity, ok, err := ps.SplitImpurity(0, &v, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.0, impurity)
}

func TestBestGainPicksBestFeature(t *testing.T) {
	ps := newSet(t,
		[][]float64{
			{7, 1, 0},
			{7, 2, 1},
			{7, 3, 1},
			{7, 4, 0},
		},
		[]bool{true, false, false, true},
		feature.Continuous, feature.Continuous, feature.Boolean,
	)

	s := ps.BestGain(1)
	require.True(t, s.Found())
	index, _ := s.Feature()
	assert.Equal(t, 2, index)
	assert.Equal(t, 0.5, s.Gain)
}

func TestBestGainTieKeepsFirst(t *testing.T) {
	ps := newSet(t,
		[][]float64{{1, 1}, {1, 1}, {0, 0}, {0, 0}},
		[]bool{true, true, false, false},
		feature.Boolean, feature.Boolean,
	)

	index, _ := ps.BestGain(1).Feature()
	assert.Equal(t, 0, index)
}

func TestBestGainNoSplit(t *testing.T) {
	pure := newSet(t, [][]float64{{1}, {2}, {3}}, []bool{true, true, true}, feature.Continuous)
	s := pure.BestGain(1)
	assert.False(t, s.Found())
	assert.Equal(t, 0.0, s.Gain)
	_, ok := s.Feature()
	assert.False(t, ok)
	_, ok = s.Value()
	assert.False(t, ok)

	constant := newSet(t, [][]float64{{5}, {5}}, []bool{true, false}, feature.Continuous)
	assert.False(t, constant.BestGain(1).Found())

	// the only improving splits leave a single point on a branch
	small := newSet(t, [][]float64{{1}, {2}, {3}}, []bool{true, false, false}, feature.Continuous)
	assert.True(t, small.BestGain(1).Found())
	assert.False(t, small.BestGain(2).Found())
}

func TestBestGainIsIdempotent(t *testing.T) {
	ps := newSet(t,
		[][]float64{{1, 0, 3}, {2, 1, 1}, {3, 1, 3}, {4, 0, 2}, {5, 1, 1}},
		[]bool{false, true, true, false, false},
		feature.Continuous, feature.Boolean, feature.Categorical,
	)

	first := ps.BestGain(1)
	second := ps.BestGain(1)
	assert.Equal(t, first, second)
	assert.Greater(t, first.Gain, 0.0)
}

func TestLastSplit(t *testing.T) {
	ps := newSet(t, [][]float64{{1}, {0}}, []bool{true, false}, feature.Boolean)

	_, err := ps.LastSplit()
	assert.Equal(t, ErrSearchNotRun, err)

	s := ps.BestGain(1)
	last, err := ps.LastSplit()
	require.NoError(t, err)
	assert.Equal(t, s, last)

	ps.BestGain(2)
	last, err = ps.LastSplit()
	require.NoError(t, err)
	assert.False(t, last.Found())
}
