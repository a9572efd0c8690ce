package modlog

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// Kind selects the formatting rule of a Value
type Kind uint8

const (
	KindString Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindChar
	KindHex8
	KindHex16
	KindHex32
	KindHex64
	KindPointer
	KindAny
)

// Value is one tagged argument of a log record.
// Values are built with the constructor functions and are immutable.
type Value struct {
	kind Kind
	str  string
	num  uint64 // integer, hex, char and address payloads; float bits
	ref  any
}

// Kind returns the formatting tag of the value
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the canonical text of the value
func (v Value) String() string {
	return FormatValue(v)
}

// Str wraps a string, rendered unchanged
func Str(s string) Value { return Value{kind: KindString, str: s} }

// I8 wraps a signed 8-bit integer
func I8(n int8) Value { return Value{kind: KindInt8, num: uint64(int64(n))} }

// I16 wraps a signed 16-bit integer
func I16(n int16) Value { return Value{kind: KindInt16, num: uint64(int64(n))} }

// I32 wraps a signed 32-bit integer
func I32(n int32) Value { return Value{kind: KindInt32, num: uint64(int64(n))} }

// I64 wraps a signed 64-bit integer
func I64(n int64) Value { return Value{kind: KindInt64, num: uint64(n)} }

// U8 wraps an unsigned 8-bit integer
func U8(n uint8) Value { return Value{kind: KindUint8, num: uint64(n)} }

// U16 wraps an unsigned 16-bit integer
func U16(n uint16) Value { return Value{kind: KindUint16, num: uint64(n)} }

// U32 wraps an unsigned 32-bit integer
func U32(n uint32) Value { return Value{kind: KindUint32, num: uint64(n)} }

// U64 wraps an unsigned 64-bit integer
func U64(n uint64) Value { return Value{kind: KindUint64, num: n} }

// F32 wraps a 32-bit float
func F32(f float32) Value { return Value{kind: KindFloat32, num: uint64(math.Float32bits(f))} }

// F64 wraps a 64-bit float
func F64(f float64) Value { return Value{kind: KindFloat64, num: math.Float64bits(f)} }

// Bool wraps a boolean, rendered as true or false
func Bool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Char wraps a single Unicode scalar value
func Char(r rune) Value { return Value{kind: KindChar, num: uint64(uint32(r))} }

// Hex8 wraps a byte rendered as 0x plus 2 lowercase hex digits
func Hex8(n uint8) Value { return Value{kind: KindHex8, num: uint64(n)} }

// Hex16 wraps a value rendered as 0x plus 4 lowercase hex digits
func Hex16(n uint16) Value { return Value{kind: KindHex16, num: uint64(n)} }

// Hex32 wraps a value rendered as 0x plus 8 lowercase hex digits
func Hex32(n uint32) Value { return Value{kind: KindHex32, num: uint64(n)} }

// Hex64 wraps a value rendered as 0x plus 16 lowercase hex digits
func Hex64(n uint64) Value { return Value{kind: KindHex64, num: n} }

// Ptr captures the address p refers to.
// p may be a pointer, unsafe.Pointer, map, slice, channel or func; anything else records address zero.
func Ptr(p any) Value {
	var addr uintptr
	if p != nil {
		rv := reflect.ValueOf(p)
		switch rv.Kind() {
		case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			addr = rv.Pointer()
		}
	}
	return Addr(addr)
}

// Addr wraps a raw address
func Addr(addr uintptr) Value { return Value{kind: KindPointer, num: uint64(addr)} }

// Any wraps a value outside the fixed set of kinds, rendered on one line by go-spew
func Any(v any) Value { return Value{kind: KindAny, ref: v} }

// pointerDigits is the hex width of a platform pointer
const pointerDigits = strconv.IntSize / 4

// anyDumper never invokes Stringer or error methods, records are formatted under the logger lock
var anyDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// FormatValue renders a value as canonical text
func FormatValue(v Value) string {
	return string(appendValue(nil, v))
}

// appendValue appends the canonical text of v to buf
func appendValue(buf []byte, v Value) []byte {
	switch v.kind {
	case KindString:
		return append(buf, v.str...)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.AppendInt(buf, int64(v.num), 10)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return strconv.AppendUint(buf, v.num, 10)
	case KindFloat32:
		return appendFloat(buf, float64(math.Float32frombits(uint32(v.num))), 32)
	case KindFloat64:
		return appendFloat(buf, math.Float64frombits(v.num), 64)
	case KindBool:
		return strconv.AppendBool(buf, v.num != 0)
	case KindChar:
		return utf8.AppendRune(buf, rune(uint32(v.num)))
	case KindHex8:
		return appendHex(buf, v.num, 2)
	case KindHex16:
		return appendHex(buf, v.num, 4)
	case KindHex32:
		return appendHex(buf, v.num, 8)
	case KindHex64:
		return appendHex(buf, v.num, 16)
	case KindPointer:
		return appendHex(buf, v.num, pointerDigits)
	case KindAny:
		return append(buf, strings.TrimSpace(anyDumper.Sprintf("%+v", v.ref))...)
	default:
		return buf
	}
}

// appendFloat uses the shortest decimal that round-trips at the given bit size, without exponent
func appendFloat(buf []byte, f float64, bitSize int) []byte {
	switch {
	case math.IsNaN(f):
		return append(buf, "NaN"...)
	case math.IsInf(f, 1):
		return append(buf, "+Inf"...)
	case math.IsInf(f, -1):
		return append(buf, "-Inf"...)
	}
	return strconv.AppendFloat(buf, f, 'f', -1, bitSize)
}

// appendHex writes 0x and n in lowercase hex, zero-padded to digits
func appendHex(buf []byte, n uint64, digits int) []byte {
	var tmp [16]byte
	hex := strconv.AppendUint(tmp[:0], n, 16)
	buf = append(buf, '0', 'x')
	for i := len(hex); i < digits; i++ {
		buf = append(buf, '0')
	}
	return append(buf, hex...)
}
