/*
Package cart grows binary decision trees that classify points with
boolean labels, splitting nodes on the feature and value that reduce the
Gini impurity of their labels the most.
*/
package cart

import (
	"context"
	"fmt"

	"github.com/pbanos/cart/dataset"
	"github.com/pbanos/cart/feature"
	"github.com/pbanos/cart/queue"
	"github.com/pbanos/cart/tree"
	"github.com/rs/zerolog/log"
)

// RootID is the ID of the root node of grown trees. The IDs of the
// children of a node are its ID followed by 0 for the true branch and 1
// for the false one.
const RootID = "1"

// NewTree takes a slice of feature rows, their labels, the type of each
// feature and options altering the DefaultStoppingStrategy and returns
// a tree grown on them, or an error if the points or options are invalid.
func NewTree(features [][]float64, labels []bool, types []feature.Type, opts ...Option) (*tree.Tree, error) {
	ss := DefaultStoppingStrategy()
	for _, opt := range opts {
		opt(&ss)
	}
	ps, err := dataset.New(features, labels, types)
	if err != nil {
		return nil, fmt.Errorf("building training set: %w", err)
	}
	return Grow(context.Background(), ps, ss)
}

// Seed takes a context, a point set, a queue and a stopping strategy
// and creates the root node of a tree for the point set, pushing a task
// to branch it out on the queue. It returns the tree that workers
// consuming the queue will grow, or an error if the stopping strategy
// is invalid or the task cannot be pushed.
func Seed(ctx context.Context, ps *dataset.PointSet, q queue.Queue, ss StoppingStrategy) (*tree.Tree, error) {
	if err := ss.Validate(); err != nil {
		return nil, err
	}
	root, err := tree.NewNode(RootID, ps)
	if err != nil {
		return nil, err
	}
	err = q.Push(ctx, &queue.Task{Node: root, Height: ss.MaxHeight})
	if err != nil {
		return nil, err
	}
	return tree.New(root, ss.MaxHeight, ss.MinPoints), nil
}

// Grow takes a context, a point set and a stopping strategy and returns
// a tree grown on the point set, developing nodes depth first from
// a queue.Stack. It returns an error if the stopping strategy is invalid
// or the context is done before the tree is complete.
func Grow(ctx context.Context, ps *dataset.PointSet, ss StoppingStrategy) (*tree.Tree, error) {
	q := queue.NewStack()
	t, err := Seed(ctx, ps, q, ss)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("points", ps.Len()).Int("features", ps.Width()).Int("maxHeight", ss.MaxHeight).Int("minPoints", ss.MinPoints).Msg("growing tree")
	if err = Work(ctx, q, ss); err != nil {
		return nil, err
	}
	log.Debug().Int("height", t.Height()).Int("leaves", t.Leaves()).Msg("tree grown")
	return t, nil
}

// BranchOut takes a task and a stopping strategy and develops the
// node in the task. The node is left as a leaf when its points all
// have the same label, when the task has no height left or when no
// split improves its impurity. Otherwise the node gets the criterion
// of its best split and a child for each side, and the tasks to
// develop the children are returned.
func BranchOut(task *queue.Task, ss StoppingStrategy) ([]*queue.Task, error) {
	n := task.Node
	ps := n.Points
	if ps.Impurity() == 0 {
		log.Debug().Str("node", n.ID).Msg("pure node")
		return nil, nil
	}
	if task.Height <= 0 {
		log.Debug().Str("node", n.ID).Msg("height exhausted")
		return nil, nil
	}
	split := ps.BestGain(ss.MinPoints)
	if !split.Found() {
		log.Debug().Str("node", n.ID).Msg("no improving split")
		return nil, nil
	}
	trueSet, falseSet, err := ps.Split(split.Criterion)
	if err != nil {
		return nil, fmt.Errorf("splitting node %s on %v: %w", n.ID, split.Criterion, err)
	}
	trueNode, err := tree.NewNode(n.ID+"0", trueSet)
	if err != nil {
		return nil, err
	}
	falseNode, err := tree.NewNode(n.ID+"1", falseSet)
	if err != nil {
		return nil, err
	}
	n.Criterion = split.Criterion
	n.True = trueNode
	n.False = falseNode
	log.Debug().Str("node", n.ID).Stringer("criterion", split.Criterion).Float64("gain", split.Gain).Msg("node split")
	return []*queue.Task{
		{Node: trueNode, Height: task.Height - 1},
		{Node: falseNode, Height: task.Height - 1},
	}, nil
}

// Work takes a context, a queue and a stopping strategy and
// enters a loop in which it:
//   * pulls a task from the queue
//   * branches its node out into new subnodes using BranchOut
//   * pushes the tasks for the new subnodes into the queue
//
// When no task can be pulled from the queue the worker ends
// returning nil. It returns a non-nil error if the context
// is done, if BranchOut returns an error or if an operation
// on the queue does.
func Work(ctx context.Context, q queue.Queue, ss StoppingStrategy) error {
	for {
		task, err := q.Pull(ctx)
		if err != nil {
			return err
		}
		if task == nil {
			return nil
		}
		tasks, err := BranchOut(task, ss)
		if err != nil {
			return err
		}
		for i := len(tasks) - 1; i >= 0; i-- {
			if err = q.Push(ctx, tasks[i]); err != nil {
				return err
			}
		}
	}
}
