package steroidslog

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

type (
	// Kind discriminates Value payloads. The set is closed: the formatter
	// switches over it exhaustively and nothing else ever extends it.
	Kind uint8

	// Value is one tagged argument slot. Numbers live in num, text lives in
	// str as a non-owning view of the caller's memory. A Value is immutable
	// once built and moves through the ring by copy.
	Value struct {
		str  string
		num  uint64
		kind Kind
	}
)

const (
	KindNone Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindStr
)

func Int[T constraints.Signed](v T) Value {
	return Value{num: uint64(int64(v)), kind: KindInt}
}

func Uint[T constraints.Unsigned](v T) Value {
	return Value{num: uint64(v), kind: KindUint}
}

func Float[T constraints.Float](v T) Value {
	return Value{num: math.Float64bits(float64(v)), kind: KindFloat}
}

func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}

	return Value{num: n, kind: KindBool}
}

// Str borrows s. The consumer copies it into the bounded message buffer
// during rendering; the bytes only have to stay put until then.
func Str(s string) Value {
	return Value{str: s, kind: KindStr}
}

func (v Value) Kind() Kind { return v.kind }

// AppendTo renders v the way the {} placeholder does.
func (v Value) AppendTo(b []byte) []byte {
	switch v.kind {
	case KindInt:
		b = strconv.AppendInt(b, int64(v.num), 10)
	case KindUint:
		b = strconv.AppendUint(b, v.num, 10)
	case KindFloat:
		b = strconv.AppendFloat(b, math.Float64frombits(v.num), 'g', -1, 64)
	case KindBool:
		b = strconv.AppendBool(b, v.num != 0)
	case KindStr:
		b = append(b, v.str...)
	}

	return b
}
