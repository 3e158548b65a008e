package steroidslog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRegister(t *testing.T) {
	r := registry{capacity: 8}

	a := r.register()
	b := r.register()

	assert.NotSame(t, a, b)
	assert.True(t, a.active.Load())

	var seen []*node
	r.walk(func(n *node) { seen = append(seen, n) })

	// push-to-front order
	assert.Equal(t, []*node{b, a}, seen)
}

func TestRegistryConcurrentRegister(t *testing.T) {
	const G = 16

	r := registry{capacity: 8}

	var wg sync.WaitGroup
	wg.Add(G)

	for g := 0; g < G; g++ {
		go func() {
			defer wg.Done()
			r.register()
		}()
	}

	wg.Wait()

	count := 0
	r.walk(func(*node) { count++ })

	assert.Equal(t, G, count)
}

func TestDeactivateKeepsQueueDrainable(t *testing.T) {
	r := registry{capacity: 8}

	n := r.register()
	assert.True(t, n.q.Enqueue(Record{ID: 1}))

	n.deactivate()

	assert.False(t, n.active.Load())

	var rec Record
	assert.True(t, n.q.Dequeue(&rec))
	assert.Equal(t, uint32(1), rec.ID)
}
