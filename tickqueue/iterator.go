// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tickqueue

// Iterator is a lazy forward view over a [Queue], yielding entries from
// front to back without consuming them. Each call to [Queue.Iterate] or
// [Queue.IterateFrom] returns a fresh iterator.
//
// The iterator holds no defensive copy. If the queue shrinks while the
// iterator is alive, iteration simply terminates early; the caller must not
// otherwise mutate the queue during iteration.
type Iterator[T any] struct {
	q       *Queue[T]
	current int
}

// Iterate returns an iterator over all stored entries, front to back.
func (q *Queue[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{q: q}
}

// IterateFrom returns an iterator starting at positional [start]
// (0 = front). An out-of-bounds start yields nothing.
func (q *Queue[T]) IterateFrom(start int) *Iterator[T] {
	return &Iterator[T]{q: q, current: start}
}

// Next returns the next entry, or false once the view reaches the end of
// the queue.
func (it *Iterator[T]) Next() (Entry[T], bool) {
	entry, ok := it.q.DebugGet(it.current)
	if !ok {
		return Entry[T]{}, false
	}
	it.current++
	return entry, true
}

// DrainIterator consumes its queue front to back. Unlike [Iterator] it
// removes each entry it yields, so once exhausted the queue is empty. The
// expected next tick is preserved.
type DrainIterator[T any] struct {
	q *Queue[T]
}

// Drain returns a one-shot consuming iterator over all stored entries,
// front to back. It is the consuming counterpart of [Queue.Iterate].
func (q *Queue[T]) Drain() *DrainIterator[T] {
	return &DrainIterator[T]{q: q}
}

// Next removes and returns the front entry, or false once the queue is
// empty.
func (it *DrainIterator[T]) Next() (Entry[T], bool) {
	return it.q.Pop()
}
