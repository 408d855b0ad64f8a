// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tickqueue implements an ordered buffer of (tick, item) pairs.
//
// Items are appended in strict, unbroken tick order and consumed or
// discarded only from the front. The buffer is a building block for
// lockstep simulations and other networked-state systems that replay a
// stream of per-tick inputs in order and trim it as consumers catch up.
package tickqueue

import (
	"github.com/ava-labs/avalanchego/utils/buffer"

	"github.com/ava-labs/tickqueue/tick"
)

const initSize = 64

// Entry pairs a stored item with the tick it was accepted at. Entries are
// only produced by [Queue.Push], so an entry's tick is always consistent
// with its position in the sequence.
type Entry[T any] struct {
	Tick tick.ID
	Item T
}

// Queue is an ordered double-ended buffer of [Entry]. The front holds the
// oldest (lowest) tick and the back the newest. Stored ticks always form an
// unbroken ascending run with step 1.
//
// The expected next tick survives the queue becoming empty, so draining the
// buffer does not lose the sequence position.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Queue[T any] struct {
	items    buffer.Deque[Entry[T]]
	expected tick.ID
}

// New returns an empty queue whose first accepted tick will be [initial].
//
// The zero value of [Queue] is also usable and behaves as New(0).
func New[T any](initial tick.ID) *Queue[T] {
	return &Queue[T]{
		items:    buffer.NewUnboundedDeque[Entry[T]](initSize),
		expected: initial,
	}
}

// Push appends [item] at [id]. The tick must equal [Queue.ExpectedTick] or
// Push returns a [*WrongTickError] and leaves the queue unchanged.
//
// This is the only way items enter the queue, which guarantees continuity
// by construction rather than by validation after the fact.
func (q *Queue[T]) Push(id tick.ID, item T) error {
	if id != q.expected {
		return &WrongTickError{Expected: q.expected, Encountered: id}
	}
	if q.items == nil {
		q.items = buffer.NewUnboundedDeque[Entry[T]](initSize)
	}
	q.items.PushRight(Entry[T]{Tick: id, Item: item})
	q.expected = id.Next()
	return nil
}

// Pop removes and returns the front entry. The expected next tick is not
// affected; later pushes still continue the original sequence.
func (q *Queue[T]) Pop() (Entry[T], bool) {
	if q.items == nil {
		return Entry[T]{}, false
	}
	return q.items.PopLeft()
}

// Take removes up to [count] entries from the front and returns the tick of
// the first removed entry together with the plain items. Ticks of the
// remaining items are implied by continuity. Returns false if the queue was
// already empty.
//
// Take is a bulk form of [Queue.Pop]: Take(k) removes exactly the entries k
// sequential pops would.
func (q *Queue[T]) Take(count int) (tick.ID, []T, bool) {
	first, ok := q.FrontTick()
	if !ok {
		return 0, nil, false
	}
	if count > q.items.Len() {
		count = q.items.Len()
	}
	items := make([]T, 0, max(count, 0))
	for i := 0; i < count; i++ {
		entry, _ := q.items.PopLeft()
		items = append(items, entry.Item)
	}
	return first, items, true
}

// DiscardUpTo removes all front entries with a tick lower than [id].
// Calling it again with the same or a lower tick is a no-op.
func (q *Queue[T]) DiscardUpTo(id tick.ID) {
	for {
		entry, ok := q.peekFront()
		if !ok || entry.Tick >= id {
			return
		}
		q.items.PopLeft()
	}
}

// DiscardCount removes min(count, len) entries from the front. Discarding
// more than the queue holds empties it without touching the expected next
// tick.
func (q *Queue[T]) DiscardCount(count int) {
	if q.items == nil {
		return
	}
	if count > q.items.Len() {
		count = q.items.Len()
	}
	for i := 0; i < count; i++ {
		q.items.PopLeft()
	}
}

// Clear empties the queue and resets the expected next tick to [initial].
// This is the only operation that may move the expected tick backward.
func (q *Queue[T]) Clear(initial tick.ID) {
	for q.items != nil {
		if _, ok := q.items.PopLeft(); !ok {
			break
		}
	}
	q.expected = initial
}

// FrontTick returns the tick of the oldest stored entry.
func (q *Queue[T]) FrontTick() (tick.ID, bool) {
	entry, ok := q.peekFront()
	return entry.Tick, ok
}

// BackTick returns the tick of the newest stored entry.
func (q *Queue[T]) BackTick() (tick.ID, bool) {
	if q.items == nil {
		return 0, false
	}
	entry, ok := q.items.PeekRight()
	return entry.Tick, ok
}

// ExpectedTick returns the tick the next push must carry. It is defined
// even when the queue is empty.
func (q *Queue[T]) ExpectedTick() tick.ID {
	return q.expected
}

// Len returns the number of stored entries.
func (q *Queue[T]) Len() int {
	if q.items == nil {
		return 0
	}
	return q.items.Len()
}

// IsEmpty returns whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// DebugGet returns the entry at positional [index] (0 = front). Intended
// for diagnostics, not for sequencing logic.
func (q *Queue[T]) DebugGet(index int) (Entry[T], bool) {
	if q.items == nil || index < 0 {
		return Entry[T]{}, false
	}
	return q.items.Index(index)
}

// Snapshot returns a newly allocated slice of the stored items in
// front-to-back order, dropping the ticks.
func (q *Queue[T]) Snapshot() []T {
	if q.items == nil {
		return []T{}
	}
	entries := q.items.List()
	items := make([]T, len(entries))
	for i, entry := range entries {
		items[i] = entry.Item
	}
	return items
}

func (q *Queue[T]) peekFront() (Entry[T], bool) {
	if q.items == nil {
		return Entry[T]{}, false
	}
	return q.items.PeekLeft()
}
