package steroidslog

import (
	"sync/atomic"

	"github.com/nfedotenko/steroidslog/low"
)

const fmtTableSize = 1 << 16

type (
	// fmtTable maps a format id to its literal text. Fixed capacity, open
	// addressing with linear probing, write-once per id: the first writer
	// wins and later writes to the same id are ignored. Distinct literals
	// hashing to the same id are not detected; the first registered text is
	// used for both. Both sides are lock-free: producers register while the
	// consumer looks up.
	fmtTable struct {
		slots []atomic.Pointer[fmtEntry]
		mask  uint32
	}

	fmtEntry struct {
		id   uint32
		text string
	}
)

func newFmtTable(size int) *fmtTable {
	if size < 2 || size&(size-1) != 0 {
		panic("fmtreg: size must be a power of two >= 2")
	}

	return &fmtTable{
		slots: make([]atomic.Pointer[fmtEntry], size),
		mask:  uint32(size - 1),
	}
}

// register stores text for id unless the id is already present. A full
// table turns further registrations into silent no-ops; lookups of such ids
// return empty text and rendering falls back to literal placeholders.
func (t *fmtTable) register(id uint32, text string) {
	e := &fmtEntry{id: id, text: text}

	for n, i := 0, id&t.mask; n < len(t.slots); n, i = n+1, (i+1)&t.mask {
		s := t.slots[i].Load()

		if s == nil {
			if t.slots[i].CompareAndSwap(nil, e) {
				return
			}

			s = t.slots[i].Load()
		}

		if s.id == id {
			return
		}
	}
}

// lookup returns the registered text for id, or "" if absent.
func (t *fmtTable) lookup(id uint32) string {
	for n, i := 0, id&t.mask; n < len(t.slots); n, i = n+1, (i+1)&t.mask {
		s := t.slots[i].Load()

		if s == nil {
			return ""
		}

		if s.id == id {
			return s.text
		}
	}

	return ""
}

// formatID is the id a call site gets for a level and format literal:
// FNV-1a over the rendered level prefix followed by the literal bytes.
func formatID(lvl Level, format string) uint32 {
	h := low.FNVAdd32(low.FNVOffset32, lvl.String())
	h = low.FNVAdd32(h, " ")

	return low.FNVAdd32(h, format)
}
