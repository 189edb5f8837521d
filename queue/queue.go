package queue

import (
	"context"
	"fmt"
)

// Queue represents a collection of pending tasks to
// develop tree nodes. A worker uses Pull to obtain a
// task, branches its node out and pushes the tasks for
// the resulting children.
type Queue interface {
	// Push takes a task and stores it as pending
	Push(context.Context, *Task) error
	// Pull returns a pending task, or nil if there
	// are none, or an error.
	Pull(context.Context) (*Task, error)
	// Count returns the number of pending tasks
	Count(context.Context) (int, error)
}

/*
Stack is a Queue that pulls the most recently pushed
task first, so nodes are developed depth first. It
is not safe for concurrent use.
*/
type Stack struct {
	tasks []*Task
}

// NewStack returns an empty Stack
func NewStack() *Stack {
	return &Stack{}
}

// Push stores the task on top of the stack. It only
// fails if the context is done.
func (s *Stack) Push(ctx context.Context, t *Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.tasks = append(s.tasks, t)
	return nil
}

// Pull removes and returns the task on top of the stack,
// or nil if it is empty. It only fails if the context is done.
func (s *Stack) Pull(ctx context.Context) (*Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := len(s.tasks)
	if n == 0 {
		return nil, nil
	}
	t := s.tasks[n-1]
	s.tasks[n-1] = nil
	s.tasks = s.tasks[:n-1]
	return t, nil
}

// Count returns the number of tasks in the stack
func (s *Stack) Count(ctx context.Context) (int, error) {
	return len(s.tasks), nil
}

func (s *Stack) String() string {
	return fmt.Sprintf("{Stack pending: %d %v}", len(s.tasks), s.tasks)
}
