package queue

import (
	"context"
	"testing"

	"github.com/pbanos/cart/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	ctx := context.Background()
	s := NewStack()

	task, err := s.Pull(ctx)
	require.NoError(t, err)
	assert.Nil(t, task)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, s.Push(ctx, &Task{Node: &tree.Node{ID: id}, Height: 1}))
	}
	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	for _, id := range []string{"3", "2", "1"} {
		task, err = s.Pull(ctx)
		require.NoError(t, err)
		assert.Equal(t, id, task.ID())
	}
	count, _ = s.Count(ctx)
	assert.Equal(t, 0, count)
}

func TestStackCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewStack()
	require.NoError(t, s.Push(ctx, &Task{Node: &tree.Node{ID: "1"}}))
	cancel()

	assert.Equal(t, context.Canceled, s.Push(ctx, &Task{Node: &tree.Node{ID: "2"}}))
	_, err := s.Pull(ctx)
	assert.Equal(t, context.Canceled, err)
	count, _ := s.Count(ctx)
	assert.Equal(t, 1, count)
}
