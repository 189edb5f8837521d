package feature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCriterion(t *testing.T) {
	v := 2.5

	c, err := NewCriterion(0, Boolean, nil)
	require.NoError(t, err)
	assert.Equal(t, Boolean, c.Type())
	_, ok := c.Value()
	assert.False(t, ok)

	c, err = NewCriterion(1, Continuous, &v)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Feature())
	value, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, 2.5, value)

	c, err = NewCriterion(2, Categorical, &v)
	require.NoError(t, err)
	assert.Equal(t, Categorical, c.Type())

	_, err = NewCriterion(1, Continuous, nil)
	assert.True(t, errors.Is(err, ErrMissingSplitValue))
	_, err = NewCriterion(1, Categorical, nil)
	assert.True(t, errors.Is(err, ErrMissingSplitValue))
	_, err = NewCriterion(1, Type(7), &v)
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestSatisfiedBy(t *testing.T) {
	point := []float64{1, 3, 2.5}

	assert.True(t, NewBooleanCriterion(0).SatisfiedBy(point))
	assert.False(t, NewBooleanCriterion(0).SatisfiedBy([]float64{0}))

	assert.True(t, NewCategoricalCriterion(1, 3).SatisfiedBy(point))
	assert.False(t, NewCategoricalCriterion(1, 2).SatisfiedBy(point))

	assert.True(t, NewContinuousCriterion(2, 3).SatisfiedBy(point))
	assert.False(t, NewContinuousCriterion(2, 2.5).SatisfiedBy(point), "threshold is exclusive")
}

func TestCriterionString(t *testing.T) {
	assert.Equal(t, "f0", NewBooleanCriterion(0).String())
	assert.Equal(t, "f1 is 3", NewCategoricalCriterion(1, 3).String())
	assert.Equal(t, "f2 < 2.5", NewContinuousCriterion(2, 2.5).String())
}
