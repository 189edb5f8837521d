package feature

import (
	"fmt"
	"strconv"
)

// CriterionError represents an error building or applying a criterion
type CriterionError string

/*
ErrMissingSplitValue is returned when a criterion for a categorical or
continuous feature is requested without a split value.
*/
const ErrMissingSplitValue = CriterionError("split value required for categorical and continuous features")

/*
ErrUnknownType is returned when a criterion is requested for a Type
that is none of Boolean, Categorical or Continuous.
*/
const ErrUnknownType = CriterionError("unknown feature type")

func (ce CriterionError) Error() string {
	return string(ce)
}

/*
Criterion represents the rule that splits a set of points on a feature
into a true branch and a false branch.

Its Feature method returns the index of the feature column the criterion
applies to.

Its Type method returns the type of that feature.

Its Value method returns the category or threshold of the criterion and
true, or 0 and false for criteria that have no value (boolean ones).

Its SatisfiedBy method takes the feature values of a point and returns
whether the point belongs to the true branch.
*/
type Criterion interface {
	Feature() int
	Type() Type
	Value() (float64, bool)
	SatisfiedBy(point []float64) bool
	String() string
}

/*
BooleanCriterion sends to the true branch points whose value for the
feature is non-zero.
*/
type BooleanCriterion struct {
	feature int
}

/*
CategoricalCriterion sends to the true branch points whose value for the
feature equals its category exactly.
*/
type CategoricalCriterion struct {
	feature  int
	category float64
}

/*
ContinuousCriterion sends to the true branch points whose value for the
feature is strictly lower than its threshold.
*/
type ContinuousCriterion struct {
	feature   int
	threshold float64
}

/*
NewBooleanCriterion takes a feature index and returns a criterion on
whether the feature is truthy.
*/
func NewBooleanCriterion(feature int) *BooleanCriterion {
	return &BooleanCriterion{feature}
}

/*
NewCategoricalCriterion takes a feature index and a category value and
returns a criterion on the feature being equal to the category.
*/
func NewCategoricalCriterion(feature int, category float64) *CategoricalCriterion {
	return &CategoricalCriterion{feature, category}
}

/*
NewContinuousCriterion takes a feature index and a threshold and returns
a criterion on the feature being strictly lower than the threshold.
*/
func NewContinuousCriterion(feature int, threshold float64) *ContinuousCriterion {
	return &ContinuousCriterion{feature, threshold}
}

/*
NewCriterion takes a feature index, its Type and an optional split value
and returns the criterion for that type. The value is ignored for boolean
features. For categorical and continuous features a nil value results in
ErrMissingSplitValue.
*/
func NewCriterion(feature int, t Type, value *float64) (Criterion, error) {
	switch t {
	case Boolean:
		return NewBooleanCriterion(feature), nil
	case Categorical:
		if value == nil {
			return nil, fmt.Errorf("feature %d (%v): %w", feature, t, ErrMissingSplitValue)
		}
		return NewCategoricalCriterion(feature, *value), nil
	case Continuous:
		if value == nil {
			return nil, fmt.Errorf("feature %d (%v): %w", feature, t, ErrMissingSplitValue)
		}
		return NewContinuousCriterion(feature, *value), nil
	}
	return nil, fmt.Errorf("feature %d (%v): %w", feature, t, ErrUnknownType)
}

func (bc *BooleanCriterion) Feature() int {
	return bc.feature
}

func (bc *BooleanCriterion) Type() Type {
	return Boolean
}

func (bc *BooleanCriterion) Value() (float64, bool) {
	return 0, false
}

/*
SatisfiedBy returns true if the point value for the feature is not zero.
*/
func (bc *BooleanCriterion) SatisfiedBy(point []float64) bool {
	return point[bc.feature] != 0
}

func (bc *BooleanCriterion) String() string {
	return fmt.Sprintf("f%d", bc.feature)
}

func (cc *CategoricalCriterion) Feature() int {
	return cc.feature
}

func (cc *CategoricalCriterion) Type() Type {
	return Categorical
}

func (cc *CategoricalCriterion) Value() (float64, bool) {
	return cc.category, true
}

/*
SatisfiedBy returns true if the point value for the feature equals the
category of the criterion.
*/
func (cc *CategoricalCriterion) SatisfiedBy(point []float64) bool {
	return point[cc.feature] == cc.category
}

func (cc *CategoricalCriterion) String() string {
	return fmt.Sprintf("f%d is %s", cc.feature, formatValue(cc.category))
}

func (cc *ContinuousCriterion) Feature() int {
	return cc.feature
}

func (cc *ContinuousCriterion) Type() Type {
	return Continuous
}

func (cc *ContinuousCriterion) Value() (float64, bool) {
	return cc.threshold, true
}

/*
SatisfiedBy returns true if the point value for the feature is strictly
lower than the threshold of the criterion.
*/
func (cc *ContinuousCriterion) SatisfiedBy(point []float64) bool {
	return point[cc.feature] < cc.threshold
}

func (cc *ContinuousCriterion) String() string {
	return fmt.Sprintf("f%d < %s", cc.feature, formatValue(cc.threshold))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
