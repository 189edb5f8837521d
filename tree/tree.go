package tree

import (
	"context"
	"fmt"
	"strings"
)

// Tree represents a binary decision tree. It is composed of
// its root node and the parameters it was grown with: the maximum
// height and the minimum number of points on each side of a split.
type Tree struct {
	Root      *Node
	MaxHeight int
	MinPoints int
}

// New takes a root Node, a maximum height and a minimum number of points
// per split and returns a tree with them.
func New(root *Node, maxHeight, minPoints int) *Tree {
	return &Tree{root, maxHeight, minPoints}
}

// Decide takes the feature values of a point and returns the label the
// tree assigns to it: the majority label of the training points on the
// leaf the point reaches, false on ties. An error is returned if the
// tree has no training points or the point lacks a value the tree needs.
func (t *Tree) Decide(point []float64) (bool, error) {
	if t == nil || t.Root == nil || t.Root.Points == nil || t.Root.Points.Len() == 0 {
		return false, ErrEmptyTree
	}
	n := t.Root
	for !n.IsLeaf() {
		next, err := n.Next(point)
		if err != nil {
			return false, err
		}
		n = next
	}
	p := n.Prediction
	if p == nil {
		var err error
		p, err = NewPredictionFromSet(n.Points)
		if err != nil {
			return false, fmt.Errorf("deciding on leaf %s: %w", n.ID, err)
		}
	}
	return p.PredictedValue(), nil
}

/*
DecideAll takes a slice of points and returns the label the tree assigns
to each of them, or the first error obtained deciding on one.
*/
func (t *Tree) DecideAll(points [][]float64) ([]bool, error) {
	result := make([]bool, 0, len(points))
	for i, point := range points {
		d, err := t.Decide(point)
		if err != nil {
			return nil, fmt.Errorf("deciding on point %d: %w", i, err)
		}
		result = append(result, d)
	}
	return result, nil
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true. True
// children are visited before false ones.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
// Otherwise, when the traversing is over, nil is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Node) error) error {
	if t.Root == nil {
		return nil
	}
	return traverse(ctx, t.Root, bottomup, f)
}

func traverse(ctx context.Context, n *Node, bottomup bool, f func(context.Context, *Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		err = f(ctx, n)
		if err != nil {
			return err
		}
	}
	for _, sn := range []*Node{n.True, n.False} {
		if sn == nil {
			continue
		}
		err = traverse(ctx, sn, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		return f(ctx, n)
	}
	return nil
}

// Height returns the number of splits on the longest path from the root
// to a leaf.
func (t *Tree) Height() int {
	if t.Root == nil {
		return 0
	}
	return height(t.Root)
}

func height(n *Node) int {
	if n.IsLeaf() {
		return 0
	}
	h := 0
	for _, sn := range []*Node{n.True, n.False} {
		if sn != nil {
			if sh := height(sn); sh > h {
				h = sh
			}
		}
	}
	return h + 1
}

// Leaves returns the number of leaves in the tree
func (t *Tree) Leaves() int {
	var count int
	t.Traverse(context.Background(), false, func(_ context.Context, n *Node) error {
		if n.IsLeaf() {
			count++
		}
		return nil
	})
	return count
}

func (t *Tree) String() string {
	if t.Root == nil {
		return "[empty tree]\n"
	}
	return strings.Join(subtreeLines(t.Root), "\n") + "\n"
}

func subtreeLines(n *Node) []string {
	head := fmt.Sprintf("[%s]", n.ID)
	if n.Criterion != nil && !n.IsLeaf() {
		head = fmt.Sprintf("%s %v", head, n.Criterion)
	}
	if n.Prediction != nil {
		head = fmt.Sprintf("%s %v", head, n.Prediction)
	}
	result := []string{head}
	children := []struct {
		tag  string
		node *Node
	}{{"T", n.True}, {"F", n.False}}
	for i, child := range children {
		if child.node == nil {
			continue
		}
		last := i == len(children)-1 || n.False == nil
		for j, line := range subtreeLines(child.node) {
			switch {
			case j == 0:
				result = append(result, fmt.Sprintf("|__%s %s", child.tag, line))
			case last:
				result = append(result, fmt.Sprintf("     %s", line))
			default:
				result = append(result, fmt.Sprintf("|    %s", line))
			}
		}
	}
	return result
}
