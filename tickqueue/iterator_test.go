// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tickqueue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/tickqueue/tick"
)

func newMoveQueue(t *testing.T) *Queue[string] {
	require := require.New(t)
	q := New[string](0)
	require.NoError(q.Push(0, "Move 1"))
	require.NoError(q.Push(1, "Move 2"))
	require.NoError(q.Push(2, "Move 3"))
	return q
}

func TestIterate(t *testing.T) {
	require := require.New(t)
	q := newMoveQueue(t)

	it := q.Iterate()
	for i, expected := range []string{"Move 1", "Move 2", "Move 3"} {
		entry, ok := it.Next()
		require.True(ok)
		require.Equal(tick.ID(i), entry.Tick)
		require.Equal(expected, entry.Item)
	}
	_, ok := it.Next()
	require.False(ok)

	// Iteration does not consume the queue and restarts fresh
	require.Equal(3, q.Len())
	entry, ok := q.Iterate().Next()
	require.True(ok)
	require.Equal("Move 1", entry.Item)
}

func TestIterateEmpty(t *testing.T) {
	require := require.New(t)
	q := New[string](0)

	_, ok := q.Iterate().Next()
	require.False(ok)
}

func TestIterateFrom(t *testing.T) {
	require := require.New(t)
	q := newMoveQueue(t)

	it := q.IterateFrom(1)
	entry, ok := it.Next()
	require.True(ok)
	require.Equal("Move 2", entry.Item)
	entry, ok = it.Next()
	require.True(ok)
	require.Equal("Move 3", entry.Item)
	_, ok = it.Next()
	require.False(ok)
}

func TestIterateFromOutOfBounds(t *testing.T) {
	require := require.New(t)
	q := newMoveQueue(t)

	_, ok := q.IterateFrom(10).Next()
	require.False(ok)
	_, ok = q.IterateFrom(-1).Next()
	require.False(ok)
}

func TestIterateTerminatesWhenQueueShrinks(t *testing.T) {
	require := require.New(t)
	q := newMoveQueue(t)

	it := q.IterateFrom(2)
	q.DiscardCount(2)

	// Index 2 is now past the end; the view just ends early
	_, ok := it.Next()
	require.False(ok)
}

func TestDrain(t *testing.T) {
	require := require.New(t)
	q := newMoveQueue(t)

	it := q.Drain()
	for i, expected := range []string{"Move 1", "Move 2", "Move 3"} {
		entry, ok := it.Next()
		require.True(ok)
		require.Equal(tick.ID(i), entry.Tick)
		require.Equal(expected, entry.Item)
	}
	_, ok := it.Next()
	require.False(ok)

	require.True(q.IsEmpty())
	require.Equal(tick.ID(3), q.ExpectedTick())
}
