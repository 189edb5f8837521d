package queue

import (
	"fmt"

	"github.com/pbanos/cart/tree"
)

// Task represents a tree.Node to be developed
// on a tree.Tree.
type Task struct {
	// The node to be developed. Its point set
	// holds the training points that satisfy
	// the criteria of its ancestors.
	Node *tree.Node
	// The number of splits still allowed
	// below the node.
	Height int
}

// ID returns a string that identifies the
// task, the ID of its Node.
func (t *Task) ID() string {
	return t.Node.ID
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %s height:%d}", t.Node.ID, t.Height)
}
