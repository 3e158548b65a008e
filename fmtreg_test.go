package steroidslog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtTableWriteOnce(t *testing.T) {
	tab := newFmtTable(64)

	tab.register(123, "once")
	tab.register(123, "twice")

	assert.Equal(t, "once", tab.lookup(123))
}

func TestFmtTableMiss(t *testing.T) {
	tab := newFmtTable(64)

	assert.Equal(t, "", tab.lookup(404))
}

func TestFmtTableCollidingSlots(t *testing.T) {
	tab := newFmtTable(8)

	// ids that map to the same slot must still both resolve
	tab.register(1, "a")
	tab.register(9, "b")

	assert.Equal(t, "a", tab.lookup(1))
	assert.Equal(t, "b", tab.lookup(9))
}

func TestFmtTableExhaustion(t *testing.T) {
	tab := newFmtTable(4)

	for id := uint32(0); id < 4; id++ {
		tab.register(id, "fmt")
	}

	// full table: registration is a silent no-op, lookup returns empty
	tab.register(100, "late")

	assert.Equal(t, "", tab.lookup(100))
	assert.Equal(t, "fmt", tab.lookup(3))
}

func TestFmtTableConcurrentRegister(t *testing.T) {
	const G = 8

	tab := newFmtTable(1024)

	var wg sync.WaitGroup
	wg.Add(G)

	for g := 0; g < G; g++ {
		go func(g int) {
			defer wg.Done()

			for id := uint32(0); id < 100; id++ {
				tab.register(id, "text")
				_ = tab.lookup(id)
			}
		}(g)
	}

	wg.Wait()

	for id := uint32(0); id < 100; id++ {
		assert.Equal(t, "text", tab.lookup(id))
	}
}

func TestFormatID(t *testing.T) {
	a := formatID(LevelInfo, "Test {}")
	b := formatID(LevelInfo, "Test {}")
	c := formatID(LevelDebug, "Test {}")
	d := formatID(LevelInfo, "Hello {}")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c) // level prefix is part of the id
	assert.NotEqual(t, a, d)
}
