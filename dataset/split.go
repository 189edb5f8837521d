package dataset

import (
	"fmt"
	"sort"

	"github.com/pbanos/cart/feature"
	"gonum.org/v1/gonum/mat"
)

/*
Split is the outcome of a best split search on a PointSet: the criterion
that reduces impurity the most and the gain it achieves. A nil Criterion
means no split improves the impurity of the set, and Gain is then 0.
*/
type Split struct {
	Criterion feature.Criterion
	Gain      float64
}

// Found returns whether the search found an improving split
func (s Split) Found() bool {
	return s.Criterion != nil
}

// Feature returns the index of the split feature and whether there is one
func (s Split) Feature() (int, bool) {
	if s.Criterion == nil {
		return 0, false
	}
	return s.Criterion.Feature(), true
}

/*
Value returns the category or threshold of the split and true, or 0 and
false when there is no split or it is on a boolean feature.
*/
func (s Split) Value() (float64, bool) {
	if s.Criterion == nil {
		return 0, false
	}
	return s.Criterion.Value()
}

func (s Split) String() string {
	if s.Criterion == nil {
		return "{no split}"
	}
	return fmt.Sprintf("{%v gain:%f}", s.Criterion, s.Gain)
}

/*
Candidates takes a feature index and returns the criteria a split on that
feature can use:
 * a single truthiness criterion for boolean features
 * an equality criterion per distinct value, in order of appearance, for categorical features
 * a threshold criterion on the midpoint of each pair of adjacent distinct values, in ascending order, for continuous features

It returns nil for an index outside the set columns.
*/
func (ps *PointSet) Candidates(index int) []feature.Criterion {
	if index < 0 || index >= ps.Width() {
		return nil
	}
	switch ps.types[index] {
	case feature.Boolean:
		return []feature.Criterion{feature.NewBooleanCriterion(index)}
	case feature.Categorical:
		values := distinct(mat.Col(nil, index, ps.features))
		candidates := make([]feature.Criterion, 0, len(values))
		for _, v := range values {
			candidates = append(candidates, feature.NewCategoricalCriterion(index, v))
		}
		return candidates
	case feature.Continuous:
		values := distinct(mat.Col(nil, index, ps.features))
		sort.Float64s(values)
		if len(values) < 2 {
			return nil
		}
		candidates := make([]feature.Criterion, 0, len(values)-1)
		for i := 1; i < len(values); i++ {
			candidates = append(candidates, feature.NewContinuousCriterion(index, (values[i-1]+values[i])/2))
		}
		return candidates
	}
	return nil
}

/*
BestGain takes the minimum number of points each branch must have and
returns the split with the highest positive impurity gain over all
features and their candidates. Features are scanned in column order and
ties keep the first split found. Undefined splits are skipped.

When no candidate improves the impurity of the set, the returned Split
has a nil Criterion and a 0 Gain.

The outcome is recorded on the set and can be retrieved with LastSplit.
Each call runs the search again.
*/
func (ps *PointSet) BestGain(minPoints int) Split {
	impurity := ps.Impurity()
	var best Split
	for i := 0; i < ps.Width(); i++ {
		for _, c := range ps.Candidates(i) {
			splitImpurity, ok := ps.CriterionImpurity(c, minPoints)
			if !ok {
				continue
			}
			if gain := impurity - splitImpurity; gain > best.Gain {
				best = Split{c, gain}
			}
		}
	}
	ps.best = &best
	return best
}

/*
LastSplit returns the outcome of the last BestGain call on the set, or
ErrSearchNotRun if BestGain was never called.
*/
func (ps *PointSet) LastSplit() (Split, error) {
	if ps.best == nil {
		return Split{}, ErrSearchNotRun
	}
	return *ps.best, nil
}

func distinct(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	result := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
