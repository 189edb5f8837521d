package tree

import (
	"fmt"

	"github.com/pbanos/cart/dataset"
	"github.com/pbanos/cart/feature"
)

/*
Node is a node of the tree
*/
type Node struct {
	// An ID to identify the node within its tree
	ID string
	// The training points that reached the node.
	Points *dataset.PointSet
	// The criterion splitting the node points between its True and False
	// children. It is nil for leaves.
	Criterion feature.Criterion
	// The subtree for points satisfying the criterion
	True *Node
	// The subtree for points not satisfying the criterion
	False *Node
	// The prediction for points that reach this node. For leaves it
	// is the answer of the tree.
	Prediction *Prediction
}

/*
NewNode takes an ID and a point set and returns a leaf node holding the
point set and the prediction made from it.
*/
func NewNode(id string, ps *dataset.PointSet) (*Node, error) {
	p, err := NewPredictionFromSet(ps)
	if err != nil {
		return nil, fmt.Errorf("creating node %s: %w", id, err)
	}
	return &Node{ID: id, Points: ps, Prediction: p}, nil
}

// IsLeaf returns whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.True == nil && n.False == nil
}

/*
Next takes the feature values of a point and returns the child the point
belongs to according to the node criterion, or nil for leaves.
*/
func (n *Node) Next(point []float64) (*Node, error) {
	if n.IsLeaf() {
		return nil, nil
	}
	if f := n.Criterion.Feature(); f >= len(point) {
		return nil, fmt.Errorf("node %s splits on feature %d, point has %d values: %w", n.ID, f, len(point), ErrPointWidth)
	}
	if n.Criterion.SatisfiedBy(point) {
		return n.True, nil
	}
	return n.False, nil
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("{Node %s %v}", n.ID, n.Prediction)
	}
	return fmt.Sprintf("{Node %s %v %v}", n.ID, n.Criterion, n.Prediction)
}
