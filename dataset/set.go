package dataset

import (
	"fmt"

	"github.com/pbanos/cart/feature"
	"gonum.org/v1/gonum/mat"
)

// Error represents an error building or querying a PointSet
type Error string

/*
ErrEmptySet is returned when building a PointSet without points. It is
also the value of the panic raised when computing the impurity of an
empty group, which construction rules out.
*/
const ErrEmptySet = Error("point set has no points")

/*
ErrLabelCount is returned when building a PointSet whose number of labels
differs from its number of rows.
*/
const ErrLabelCount = Error("number of labels does not match number of points")

/*
ErrRowWidth is returned when building a PointSet with a row whose width
differs from the number of feature types.
*/
const ErrRowWidth = Error("row width does not match number of feature types")

// ErrNoFeatures is returned when building a PointSet without feature types.
const ErrNoFeatures = Error("point set has no features")

/*
ErrFeatureIndex is returned when a split is requested on a feature index
outside the point set columns.
*/
const ErrFeatureIndex = Error("feature index out of range")

/*
ErrSearchNotRun is returned by LastSplit when BestGain has never been
called on the PointSet.
*/
const ErrSearchNotRun = Error("best split search has not been run")

/*
ErrNoSplit is returned when trying to apply a nil criterion, that is, the
outcome of a best split search that found no improving split.
*/
const ErrNoSplit = Error("no split available")

func (e Error) Error() string {
	return string(e)
}

/*
PointSet is a non-empty set of points, each with a row of feature values
and a boolean label, plus the type of each feature column. It computes
the Gini impurity of its labels and searches for the split that reduces
it the most.

Points are never modified after construction. The only mutable state is
the outcome of the last BestGain call, available through LastSplit.
*/
type PointSet struct {
	features *mat.Dense
	labels   []bool
	types    []feature.Type
	best     *Split
}

/*
New takes a slice of feature rows, a slice of labels and a slice of
feature types and returns a PointSet with them or an error if there are
no rows, the number of labels does not match the number of rows or any
row width differs from the number of types.

The rows are copied, the types slice is shared.
*/
func New(features [][]float64, labels []bool, types []feature.Type) (*PointSet, error) {
	if len(features) == 0 {
		return nil, ErrEmptySet
	}
	if len(types) == 0 {
		return nil, ErrNoFeatures
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("%d points and %d labels: %w", len(features), len(labels), ErrLabelCount)
	}
	width := len(types)
	data := make([]float64, 0, len(features)*width)
	for i, row := range features {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d values for %d features: %w", i, len(row), width, ErrRowWidth)
		}
		data = append(data, row...)
	}
	return &PointSet{
		features: mat.NewDense(len(features), width, data),
		labels:   append([]bool(nil), labels...),
		types:    types,
	}, nil
}

/*
NewFromDense takes a matrix with a row per point, a slice of labels and a
slice of feature types and returns a PointSet backed by the matrix or an
error under the same conditions as New. The matrix must not be modified
afterwards.
*/
func NewFromDense(features *mat.Dense, labels []bool, types []feature.Type) (*PointSet, error) {
	if features == nil || features.IsEmpty() {
		return nil, ErrEmptySet
	}
	if len(types) == 0 {
		return nil, ErrNoFeatures
	}
	r, c := features.Dims()
	if r != len(labels) {
		return nil, fmt.Errorf("%d points and %d labels: %w", r, len(labels), ErrLabelCount)
	}
	if c != len(types) {
		return nil, fmt.Errorf("%d columns for %d features: %w", c, len(types), ErrRowWidth)
	}
	return &PointSet{
		features: features,
		labels:   append([]bool(nil), labels...),
		types:    types,
	}, nil
}

// Len returns the number of points in the set
func (ps *PointSet) Len() int {
	return len(ps.labels)
}

// Width returns the number of feature columns
func (ps *PointSet) Width() int {
	return len(ps.types)
}

// Types returns the feature types of the set columns
func (ps *PointSet) Types() []feature.Type {
	return ps.types
}

// Labels returns the labels of the points in the set
func (ps *PointSet) Labels() []bool {
	return ps.labels
}

/*
Row returns the feature values of the i-th point. The returned slice
shares memory with the set and must not be modified.
*/
func (ps *PointSet) Row(i int) []float64 {
	return ps.features.RawRowView(i)
}

// CountLabels returns the number of true and false labels in the set
func (ps *PointSet) CountLabels() (t, f int) {
	return countLabels(ps.labels)
}

/*
Impurity returns the Gini impurity of the set labels, a value between 0
(all labels equal) and 0.5 (as many true as false labels).
*/
func (ps *PointSet) Impurity() float64 {
	return gini(ps.CountLabels())
}

/*
SplitImpurity takes a feature index, an optional split value and the
minimum number of points each branch must have and returns the weighted
impurity of splitting the set on that feature.

The split value is ignored for boolean features and required for
categorical and continuous ones, feature.ErrMissingSplitValue being
returned when it is nil. ErrFeatureIndex is returned for an index outside
the set columns.

The returned boolean is false when the split is undefined: one of the
branches would be empty or would have fewer than minPoints points.
*/
func (ps *PointSet) SplitImpurity(index int, value *float64, minPoints int) (float64, bool, error) {
	if index < 0 || index >= ps.Width() {
		return 0, false, fmt.Errorf("feature %d on a set with %d features: %w", index, ps.Width(), ErrFeatureIndex)
	}
	c, err := feature.NewCriterion(index, ps.types[index], value)
	if err != nil {
		return 0, false, err
	}
	impurity, ok := ps.CriterionImpurity(c, minPoints)
	return impurity, ok, nil
}

/*
CriterionImpurity takes a criterion on one of the set features and the
minimum number of points per branch and returns the weighted impurity of
the split it defines, and false if the split is undefined.
*/
func (ps *PointSet) CriterionImpurity(c feature.Criterion, minPoints int) (float64, bool) {
	var tt, tf, ft, ff int
	for i, label := range ps.labels {
		if c.SatisfiedBy(ps.Row(i)) {
			if label {
				tt++
			} else {
				tf++
			}
		} else {
			if label {
				ft++
			} else {
				ff++
			}
		}
	}
	nTrue, nFalse := tt+tf, ft+ff
	if nTrue == 0 || nFalse == 0 || nTrue < minPoints || nFalse < minPoints {
		return 0, false
	}
	n := float64(nTrue + nFalse)
	return float64(nTrue)/n*gini(tt, tf) + float64(nFalse)/n*gini(ft, ff), true
}

/*
ApplySplit takes a criterion and returns the group of points that satisfy
it and the group of those that do not. It returns ErrNoSplit if the
criterion is nil.
*/
func (ps *PointSet) ApplySplit(c feature.Criterion) (Group, Group, error) {
	if c == nil {
		return Group{}, Group{}, ErrNoSplit
	}
	var trueGroup, falseGroup Group
	for i, label := range ps.labels {
		row := ps.Row(i)
		if c.SatisfiedBy(row) {
			trueGroup.add(row, label)
		} else {
			falseGroup.add(row, label)
		}
	}
	return trueGroup, falseGroup, nil
}

/*
Split takes a criterion and returns the point sets for the true and false
branches of the split it defines, both sharing the feature types of ps.
It returns ErrNoSplit for a nil criterion and ErrEmptySet if a branch
would be empty.
*/
func (ps *PointSet) Split(c feature.Criterion) (*PointSet, *PointSet, error) {
	trueGroup, falseGroup, err := ps.ApplySplit(c)
	if err != nil {
		return nil, nil, err
	}
	trueSet, err := New(trueGroup.Rows, trueGroup.Labels, ps.types)
	if err != nil {
		return nil, nil, fmt.Errorf("building true branch for %v: %w", c, err)
	}
	falseSet, err := New(falseGroup.Rows, falseGroup.Labels, ps.types)
	if err != nil {
		return nil, nil, fmt.Errorf("building false branch for %v: %w", c, err)
	}
	return trueSet, falseSet, nil
}

func (ps *PointSet) String() string {
	t, f := ps.CountLabels()
	return fmt.Sprintf("{PointSet %dx%d true:%d false:%d}", ps.Len(), ps.Width(), t, f)
}

func countLabels(labels []bool) (t, f int) {
	for _, l := range labels {
		if l {
			t++
		} else {
			f++
		}
	}
	return
}

// gini panics with ErrEmptySet when there are no labels to count
func gini(t, f int) float64 {
	n := t + f
	if n == 0 {
		panic(ErrEmptySet)
	}
	pt := float64(t) / float64(n)
	pf := float64(f) / float64(n)
	return 1 - pt*pt - pf*pf
}
