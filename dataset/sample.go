package dataset

import "fmt"

/*
Group is a set of feature rows and their labels resulting from applying
a split criterion to a PointSet. Rows share memory with the PointSet they
come from.
*/
type Group struct {
	Rows   [][]float64
	Labels []bool
}

// Len returns the number of points in the group
func (g Group) Len() int {
	return len(g.Labels)
}

func (g *Group) add(row []float64, label bool) {
	g.Rows = append(g.Rows, row)
	g.Labels = append(g.Labels, label)
}

func (g Group) String() string {
	t, f := countLabels(g.Labels)
	return fmt.Sprintf("{Group %d points true:%d false:%d}", g.Len(), t, f)
}
