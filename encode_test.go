package steroidslog

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"tlog.app/go/errors"
)

func TestEncodeArgClasses(t *testing.T) {
	assert.Equal(t, KindInt, encodeArg(42).Kind())
	assert.Equal(t, KindInt, encodeArg(int8(-1)).Kind())
	assert.Equal(t, KindInt, encodeArg(int64(1<<40)).Kind())
	assert.Equal(t, KindUint, encodeArg(uint(7)).Kind())
	assert.Equal(t, KindUint, encodeArg(uintptr(0xdead)).Kind())
	assert.Equal(t, KindFloat, encodeArg(3.5).Kind())
	assert.Equal(t, KindFloat, encodeArg(float32(0.5)).Kind())
	assert.Equal(t, KindBool, encodeArg(true).Kind())
	assert.Equal(t, KindStr, encodeArg("hello").Kind())
	assert.Equal(t, KindStr, encodeArg([]byte("raw")).Kind())
}

func TestEncodeArgValues(t *testing.T) {
	assert.Equal(t, "42", string(encodeArg(42).AppendTo(nil)))
	assert.Equal(t, "-1", string(encodeArg(-1).AppendTo(nil)))
	assert.Equal(t, "3.5", string(encodeArg(3.5).AppendTo(nil)))
	assert.Equal(t, "true", string(encodeArg(true).AppendTo(nil)))
	assert.Equal(t, "hello", string(encodeArg("hello").AppendTo(nil)))
	assert.Equal(t, "raw", string(encodeArg([]byte("raw")).AppendTo(nil)))
}

func TestEncodeArgSpecials(t *testing.T) {
	assert.Equal(t, "<nil>", string(encodeArg(nil).AppendTo(nil)))

	err := errors.New("boom")
	assert.Equal(t, "boom", string(encodeArg(err).AppendTo(nil)))

	ip := net.IPv4(127, 0, 0, 1) // fmt.Stringer
	assert.Equal(t, "127.0.0.1", string(encodeArg(ip).AppendTo(nil)))

	// anything else is preformatted with %v on the producer
	assert.Equal(t, "[1 2]", string(encodeArg([]int{1, 2}).AppendTo(nil)))
}

func TestEncodeArgCount(t *testing.T) {
	var r Record

	encode(&r, []any{1, 2, 3})
	assert.Equal(t, uint8(3), r.N)

	// extras beyond the eight slots are dropped, record still usable
	encode(&r, []any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	assert.Equal(t, uint8(8), r.N)
	assert.Equal(t, "8", string(r.Args[7].AppendTo(nil)))
}

func TestBytesViewBorrows(t *testing.T) {
	p := []byte("abc")
	v := encodeArg(p)

	p[0] = 'x' // the slot is a view, not a copy

	assert.Equal(t, "xbc", string(v.AppendTo(nil)))
}
