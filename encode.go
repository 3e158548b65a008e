package steroidslog

import (
	"fmt"
	"unsafe"

	"nikand.dev/go/hacked/hfmt"
	"tlog.app/go/loc"
)

// MaxArgs is the number of tagged slots in a Record. Extra arguments are
// dropped; the record is still emitted.
const MaxArgs = 8

type (
	// Record is one encoded log event. It is built on the producer without
	// allocating (except for the fmt.Stringer / %v slow paths) and moved
	// through the ring by value.
	Record struct {
		ID    uint32
		Level Level
		N     uint8
		PC    loc.PC
		Args  [MaxArgs]Value
	}
)

// encode classifies args into tagged slots. Every integral, float, bool,
// string and []byte kind is handled allocation-free. error and fmt.Stringer
// call the method; anything else is preformatted with %v on the producer.
// This is the Go rendition of the static argument contract: instead of
// failing to compile, foreign types pay for their own formatting up front.
func encode(r *Record, args []any) {
	n := len(args)
	if n > MaxArgs {
		n = MaxArgs
	}

	for i := 0; i < n; i++ {
		r.Args[i] = encodeArg(args[i])
	}

	r.N = uint8(n)
}

func encodeArg(a any) Value {
	switch a := a.(type) {
	case string:
		return Str(a)
	case int:
		return Int(a)
	case int64:
		return Int(a)
	case int32:
		return Int(a)
	case int16:
		return Int(a)
	case int8:
		return Int(a)
	case uint:
		return Uint(a)
	case uint64:
		return Uint(a)
	case uint32:
		return Uint(a)
	case uint16:
		return Uint(a)
	case uint8:
		return Uint(a)
	case uintptr:
		return Uint(a)
	case float64:
		return Float(a)
	case float32:
		return Float(a)
	case bool:
		return Bool(a)
	case []byte:
		return Str(bytesView(a))
	case nil:
		return Str("<nil>")
	case error:
		return Str(a.Error())
	case fmt.Stringer:
		return Str(a.String())
	default:
		return Str(string(hfmt.Appendf(nil, "%v", a)))
	}
}

// bytesView reinterprets p as a string without copying. The slot borrows the
// caller's bytes until the consumer renders the record; mutating the buffer
// in between yields stale text, never a fault.
func bytesView(p []byte) string {
	if len(p) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(p), len(p))
}
