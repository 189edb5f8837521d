/*
Package set defines Set, the labelled tabular data read from the
data sources supported by its subpackages and from which trees are
grown and tested.
*/
package set

import (
	"fmt"
	"strings"

	"github.com/pbanos/cart/dataset"
	"github.com/pbanos/cart/feature"
)

/*
Set holds the feature rows of a collection of points, their labels and
the name and type of each feature column.
*/
type Set struct {
	Names    []string
	Features [][]float64
	Labels   []bool
	Types    []feature.Type
}

// Len returns the number of points in the set
func (s *Set) Len() int {
	return len(s.Labels)
}

/*
Validate returns an error if the set has no features, the names do not
match the types or any row width or the number of labels do not match
the number of features or rows.
*/
func (s *Set) Validate() error {
	if len(s.Types) == 0 {
		return fmt.Errorf("set has no features")
	}
	if s.Names != nil && len(s.Names) != len(s.Types) {
		return fmt.Errorf("set has %d feature names and %d types", len(s.Names), len(s.Types))
	}
	if len(s.Features) != len(s.Labels) {
		return fmt.Errorf("set has %d rows and %d labels", len(s.Features), len(s.Labels))
	}
	for i, row := range s.Features {
		if len(row) != len(s.Types) {
			return fmt.Errorf("row %d has %d values for %d features", i, len(row), len(s.Types))
		}
	}
	return nil
}

// Head returns a set with the first n points of s, or all of them if
// there are fewer.
func (s *Set) Head(n int) *Set {
	if n > s.Len() {
		n = s.Len()
	}
	if n < 0 {
		n = 0
	}
	return &Set{s.Names, s.Features[:n], s.Labels[:n], s.Types}
}

// Tail returns a set with the points of s after the first n.
func (s *Set) Tail(n int) *Set {
	if n > s.Len() {
		n = s.Len()
	}
	if n < 0 {
		n = 0
	}
	return &Set{s.Names, s.Features[n:], s.Labels[n:], s.Types}
}

/*
TrainTestSplit takes a proportion between 0 and 1 and returns a training
set with the first int(len*proportion) points and a test set with the
rest.
*/
func (s *Set) TrainTestSplit(proportion float64) (*Set, *Set, error) {
	if proportion < 0 || proportion > 1 {
		return nil, nil, fmt.Errorf("training proportion must be between 0 and 1, got %v", proportion)
	}
	n := int(float64(s.Len()) * proportion)
	return s.Head(n), s.Tail(n), nil
}

// PointSet returns a dataset.PointSet with the points of the set
func (s *Set) PointSet() (*dataset.PointSet, error) {
	return dataset.New(s.Features, s.Labels, s.Types)
}

/*
ParseLabel takes the textual representation of a label and returns its
boolean value: "1", "true" and "t" (in any case) are true, "0", "false",
"f" and "" are false. Other values result in an error.
*/
func ParseLabel(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t":
		return true, nil
	case "0", "false", "f", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid label value %q", v)
}
