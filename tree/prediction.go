package tree

import (
	"fmt"

	"github.com/pbanos/cart/dataset"
)

/*
Prediction represents a prediction made by a decision Tree node: the
counts of true and false labels among the training points that reached
the node.
*/
type Prediction struct {
	trueCount  int
	falseCount int
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromEmptySet is the error returned when trying to build a prediction
based on an empty point set.
*/
const ErrCannotPredictFromEmptySet = PredictionError("cannot make prediction for empty point set")

/*
ErrEmptyTree is the error returned by the Decide method of a tree without
a root node or whose root node holds no points.
*/
const ErrEmptyTree = PredictionError("tree has no training points")

/*
ErrPointWidth is returned when deciding on a point that lacks the value
for a feature the tree splits on.
*/
const ErrPointWidth = PredictionError("point has too few feature values")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
NewPrediction takes the number of true and false labels and returns a
prediction representing those values.
*/
func NewPrediction(trueCount, falseCount int) *Prediction {
	return &Prediction{trueCount, falseCount}
}

// NewPredictionFromSet takes a point set and returns a prediction based on
// its labels or an error if the set is nil or empty.
func NewPredictionFromSet(ps *dataset.PointSet) (*Prediction, error) {
	if ps == nil || ps.Len() == 0 {
		return nil, ErrCannotPredictFromEmptySet
	}
	return NewPrediction(ps.CountLabels()), nil
}

/*
PredictedValue returns the majority label. Ties resolve to false.
*/
func (p *Prediction) PredictedValue() bool {
	return p.trueCount > p.falseCount
}

/*
Probability returns the frequency of the true label, or 0 for a prediction
without weight.
*/
func (p *Prediction) Probability() float64 {
	if p.Weight() == 0 {
		return 0
	}
	return float64(p.trueCount) / float64(p.Weight())
}

/*
Weight returns the weight of the prediction: an
int equal to the number of points from which
the prediction was made
*/
func (p *Prediction) Weight() int {
	return p.trueCount + p.falseCount
}

// Counts returns the number of true and false labels
func (p *Prediction) Counts() (int, int) {
	return p.trueCount, p.falseCount
}

func (p *Prediction) String() string {
	return fmt.Sprintf("[true:%d false:%d]", p.trueCount, p.falseCount)
}
