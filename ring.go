package steroidslog

import "sync/atomic"

type (
	// ring is a bounded single-producer single-consumer queue. Capacity is a
	// power of two and one slot is kept empty to tell full from empty, so a
	// ring of capacity C holds C-1 items.
	//
	// head and tail are the only shared state. The producer publishes a slot
	// with the tail store; the consumer releases a slot with the head store.
	// Each side keeps a cached copy of the peer index and refreshes it only
	// when the ring looks exhausted, so the steady state touches one remote
	// cache line per refresh, not per operation.
	ring[T any] struct {
		head atomic.Uint64
		_    [7]uint64

		tail atomic.Uint64
		_    [7]uint64

		headCache uint64 // producer side
		_         [7]uint64

		tailCache uint64 // consumer side
		_         [7]uint64

		mask uint64
		buf  []T
	}
)

func newRing[T any](capacity int) *ring[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("ring: capacity must be a power of two >= 2")
	}

	return &ring[T]{
		mask: uint64(capacity - 1),
		buf:  make([]T, capacity),
	}
}

// Enqueue stores v and publishes it. False means full; it never blocks and
// never overwrites an unread slot.
func (q *ring[T]) Enqueue(v T) bool {
	tail := q.tail.Load()
	next := (tail + 1) & q.mask

	if next == q.headCache {
		q.headCache = q.head.Load()
		if next == q.headCache {
			return false
		}
	}

	q.buf[tail] = v
	q.tail.Store(next)

	return true
}

// Dequeue moves the oldest item into out. The consumed slot is zeroed so
// borrowed strings are not pinned past consumption.
func (q *ring[T]) Dequeue(out *T) bool {
	head := q.head.Load()

	if head == q.tailCache {
		q.tailCache = q.tail.Load()
		if head == q.tailCache {
			return false
		}
	}

	var zero T
	*out = q.buf[head]
	q.buf[head] = zero

	q.head.Store((head + 1) & q.mask)

	return true
}

// Empty is exact on the consumer; elsewhere it is a racy hint used to skip
// idle producers during a poll pass.
func (q *ring[T]) Empty() bool {
	return q.head.Load() == q.tail.Load()
}
