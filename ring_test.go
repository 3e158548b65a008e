package steroidslog

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBasic(t *testing.T) {
	q := newRing[int](8)

	assert.True(t, q.Enqueue(1))

	var v int
	assert.True(t, q.Dequeue(&v))
	assert.Equal(t, 1, v)

	assert.False(t, q.Dequeue(&v))
}

func TestRingFullAtMinimalCapacity(t *testing.T) {
	// capacity 2 holds exactly one item
	q := newRing[int](2)

	assert.True(t, q.Enqueue(1))
	assert.False(t, q.Enqueue(2))

	var v int
	assert.True(t, q.Dequeue(&v))
	assert.Equal(t, 1, v)
}

func TestRingWrapAround(t *testing.T) {
	q := newRing[int](4)

	for i := 0; i < 8; i++ {
		require.True(t, q.Enqueue(i))

		var v int
		require.True(t, q.Dequeue(&v))
		require.Equal(t, i, v)
	}
}

func TestRingBadCapacity(t *testing.T) {
	assert.Panics(t, func() { newRing[int](3) })
	assert.Panics(t, func() { newRing[int](0) })
	assert.Panics(t, func() { newRing[int](1) })
}

func TestRingReleasesSlots(t *testing.T) {
	q := newRing[Value](4)

	assert.True(t, q.Enqueue(Str("borrowed")))

	var v Value
	assert.True(t, q.Dequeue(&v))
	assert.Equal(t, "borrowed", v.str)

	// consumed slot must not pin the string
	assert.Equal(t, Value{}, q.buf[0])
}

func TestRingProducerConsumer(t *testing.T) {
	const N = 5000

	q := newRing[int](1024)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for i := 0; i < N; i++ {
			for !q.Enqueue(i) {
				runtime.Gosched()
			}
		}
	}()

	// exactly the enqueued items, in order, no duplicates, no losses
	for i := 0; i < N; i++ {
		var v int
		for !q.Dequeue(&v) {
			runtime.Gosched()
		}

		require.Equal(t, i, v)
	}

	wg.Wait()

	assert.True(t, q.Empty())
}
