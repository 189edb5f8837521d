package set

import (
	"testing"

	"github.com/pbanos/cart/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Set {
	return &Set{
		Names:    []string{"a", "b"},
		Features: [][]float64{{1, 0}, {2, 1}, {3, 0}, {4, 1}, {5, 0}},
		Labels:   []bool{true, false, true, false, true},
		Types:    []feature.Type{feature.Continuous, feature.Boolean},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sample().Validate())

	s := sample()
	s.Labels = s.Labels[1:]
	assert.Error(t, s.Validate())

	s = sample()
	s.Features[2] = []float64{1}
	assert.Error(t, s.Validate())

	s = sample()
	s.Names = []string{"a"}
	assert.Error(t, s.Validate())

	assert.Error(t, (&Set{}).Validate())
}

func TestTrainTestSplit(t *testing.T) {
	train, test, err := sample().TrainTestSplit(0.8)
	require.NoError(t, err)
	assert.Equal(t, 4, train.Len())
	assert.Equal(t, 1, test.Len())
	assert.Equal(t, [][]float64{{5, 0}}, test.Features)
	assert.Equal(t, []bool{true}, test.Labels)

	train, test, err = sample().TrainTestSplit(0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, train.Len())
	assert.Equal(t, 3, test.Len())

	_, _, err = sample().TrainTestSplit(1.5)
	assert.Error(t, err)
}

func TestHeadAndTailBounds(t *testing.T) {
	s := sample()
	assert.Equal(t, 5, s.Head(10).Len())
	assert.Equal(t, 0, s.Tail(10).Len())
	assert.Equal(t, 0, s.Head(-1).Len())
}

func TestPointSet(t *testing.T) {
	ps, err := sample().PointSet()
	require.NoError(t, err)
	assert.Equal(t, 5, ps.Len())

	_, err = (&Set{Types: []feature.Type{feature.Boolean}}).PointSet()
	assert.Error(t, err)
}

func TestParseLabel(t *testing.T) {
	for _, v := range []string{"1", "true", "T", " TRUE "} {
		l, err := ParseLabel(v)
		assert.NoError(t, err)
		assert.True(t, l, v)
	}
	for _, v := range []string{"0", "false", "F", ""} {
		l, err := ParseLabel(v)
		assert.NoError(t, err)
		assert.False(t, l, v)
	}
	_, err := ParseLabel("yes")
	assert.Error(t, err)
}
