package evaluation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfusionMatrix(t *testing.T) {
	m, err := ConfusionMatrix(
		[]bool{true, true, false, false, true},
		[]bool{true, false, true, false, true},
	)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.At(Positive, Positive))
	assert.Equal(t, 1.0, m.At(Positive, Negative))
	assert.Equal(t, 1.0, m.At(Negative, Positive))
	assert.Equal(t, 1.0, m.At(Negative, Negative))
}

func TestPrecisionRecall(t *testing.T) {
	p, r, err := PrecisionRecall(
		[]bool{true, true, true, false},
		[]bool{true, false, true, true},
	)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, p, 1e-9)
	assert.InDelta(t, 2.0/3, r, 1e-9)

	_, _, err = PrecisionRecall([]bool{true}, []bool{true, false})
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, _, err = PrecisionRecall([]bool{true, false}, []bool{false, false})
	assert.Equal(t, ErrUndefinedPrecision, err)

	_, _, err = PrecisionRecall([]bool{false, false}, []bool{true, false})
	assert.Equal(t, ErrUndefinedRecall, err)
}

func TestF1Score(t *testing.T) {
	f1, err := F1Score([]bool{true, true, false, false}, []bool{true, true, false, false})
	require.NoError(t, err)
	assert.Equal(t, 1.0, f1)

	// precision 1/2, recall 1
	f1, err = F1Score([]bool{true, false}, []bool{true, true})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, f1, 1e-9)

	_, err = F1Score([]bool{true, false}, []bool{false, true})
	assert.Equal(t, ErrUndefinedF1, err)
}
