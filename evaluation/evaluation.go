/*
Package evaluation scores binary predictions against the expected labels
with precision, recall and their harmonic mean, the F1 score.
*/
package evaluation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Error represents an error scoring a set of predictions
type Error string

// ErrLengthMismatch is returned when expected and actual labels differ in number
const ErrLengthMismatch = Error("expected and actual labels differ in length")

// ErrUndefinedPrecision is returned when there are no positive predictions
const ErrUndefinedPrecision = Error("precision is undefined without positive predictions")

// ErrUndefinedRecall is returned when there are no positive expected labels
const ErrUndefinedRecall = Error("recall is undefined without positive expected labels")

// ErrUndefinedF1 is returned when both precision and recall are 0
const ErrUndefinedF1 = Error("F1 score is undefined when precision and recall are 0")

func (e Error) Error() string {
	return string(e)
}

// Rows and columns of a confusion matrix
const (
	Positive = 0
	Negative = 1
)

/*
ConfusionMatrix takes the expected and actual labels and returns a 2x2
matrix whose rows are the expected label and whose columns are the
predicted one, with Positive (true) first and Negative (false) second.
*/
func ConfusionMatrix(expected, actual []bool) (*mat.Dense, error) {
	if len(expected) != len(actual) {
		return nil, fmt.Errorf("%d expected and %d actual: %w", len(expected), len(actual), ErrLengthMismatch)
	}
	m := mat.NewDense(2, 2, nil)
	for i, e := range expected {
		r, c := index(e), index(actual[i])
		m.Set(r, c, m.At(r, c)+1)
	}
	return m, nil
}

/*
PrecisionRecall takes the expected and actual labels and returns the
precision TP/(TP+FP) and recall TP/(TP+FN) of the actual ones.
*/
func PrecisionRecall(expected, actual []bool) (float64, float64, error) {
	m, err := ConfusionMatrix(expected, actual)
	if err != nil {
		return 0, 0, err
	}
	tp := m.At(Positive, Positive)
	predicted := mat.Sum(m.ColView(Positive))
	relevant := mat.Sum(m.RowView(Positive))
	if predicted == 0 {
		return 0, 0, ErrUndefinedPrecision
	}
	if relevant == 0 {
		return 0, 0, ErrUndefinedRecall
	}
	return tp / predicted, tp / relevant, nil
}

// F1 returns the harmonic mean of a precision and a recall
func F1(precision, recall float64) (float64, error) {
	if precision+recall == 0 {
		return 0, ErrUndefinedF1
	}
	return 2 * precision * recall / (precision + recall), nil
}

// F1Score returns the F1 score of the actual labels against the expected ones
func F1Score(expected, actual []bool) (float64, error) {
	p, r, err := PrecisionRecall(expected, actual)
	if err != nil {
		return 0, err
	}
	return F1(p, r)
}

func index(label bool) int {
	if label {
		return Positive
	}
	return Negative
}
