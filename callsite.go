package steroidslog

import (
	"sync/atomic"
	"unsafe"

	"github.com/nfedotenko/steroidslog/low"
)

const siteTableSize = 1 << 12

type (
	// siteCache memoizes call sites. Go cannot hash the format literal at
	// compile time, so the first execution of a call site hashes and
	// registers the text and later executions resolve the id by the
	// literal's data pointer, which is stable for string constants. The same
	// literal logged at two levels is two sites.
	//
	// Runtime-built format strings get an entry per allocation; a full
	// cache degrades to hashing every call, registration stays idempotent.
	siteCache struct {
		slots []atomic.Pointer[siteEntry]
		mask  uint32
	}

	// siteEntry retains the format string: holding the bytes alive is what
	// keeps ptr pointing at them, so a pointer match implies the same text
	// and never a recycled allocation.
	siteEntry struct {
		ptr    uintptr
		format string
		lvl    Level
		id     uint32
	}
)

func newSiteCache(size int) *siteCache {
	if size < 2 || size&(size-1) != 0 {
		panic("callsite: size must be a power of two >= 2")
	}

	return &siteCache{
		slots: make([]atomic.Pointer[siteEntry], size),
		mask:  uint32(size - 1),
	}
}

// id resolves the format id for a call site, registering the text in t on
// the first execution.
func (c *siteCache) id(t *fmtTable, lvl Level, format string) uint32 {
	if len(format) == 0 {
		id := formatID(lvl, format)
		t.register(id, format)

		return id
	}

	p := uintptr(unsafe.Pointer(unsafe.StringData(format)))
	h := low.MixPtr(p) + uint32(lvl)

	for n, i := 0, h&c.mask; n < len(c.slots); n, i = n+1, (i+1)&c.mask {
		s := c.slots[i].Load()

		if s == nil {
			id := formatID(lvl, format)
			t.register(id, format)

			e := &siteEntry{ptr: p, format: format, lvl: lvl, id: id}
			if c.slots[i].CompareAndSwap(nil, e) {
				return id
			}

			s = c.slots[i].Load()
		}

		if s.ptr == p && s.lvl == lvl {
			return s.id
		}
	}

	// cache full: memoization is lost, correctness is not
	id := formatID(lvl, format)
	t.register(id, format)

	return id
}
