// Package value implements Lox's runtime value representation: a small
// tagged sum type, not a virtual-table interface, since the value set is
// closed (nil, bool, number, string) and will not grow new cases.
package value

import (
	"math"
	"strconv"

	"github.com/loxlang/lox/lang/strtable"
)

// Kind identifies which case of the tagged union a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

// Value is a Lox runtime value: Nil, Bool(b), Number(f64), or String(handle
// into the interning table). Only one payload field is meaningful at a
// time, selected by Kind.
type Value struct {
	kind    Kind
	number  float64
	boolean bool
	str     *strtable.Entry
}

// Nil is the sole Nil value.
var Nil = Value{kind: KindNil}

// Bool returns the Value wrapping b.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number returns the Value wrapping f.
func Number(f float64) Value { return Value{kind: KindNumber, number: f} }

// String returns the Value wrapping the interned string entry.
func String(s *strtable.Entry) Value { return Value{kind: KindString, str: s} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsNil() bool     { return v.kind == KindNil }
func (v Value) IsBool() bool    { return v.kind == KindBool }
func (v Value) IsNumber() bool  { return v.kind == KindNumber }
func (v Value) IsString() bool  { return v.kind == KindString }

// AsBool returns the Value's boolean payload. Only valid when IsBool.
func (v Value) AsBool() bool { return v.boolean }

// AsNumber returns the Value's numeric payload. Only valid when IsNumber.
func (v Value) AsNumber() float64 { return v.number }

// AsString returns the Value's interned-string handle. Only valid when
// IsString.
func (v Value) AsString() *strtable.Entry { return v.str }

// Truthy implements Lox's truthiness rule: Nil and Bool(false) are falsey,
// everything else (including Number(0) and the empty string) is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.boolean
	default:
		return true
	}
}

// Equals implements OpEqual's case-by-case equality. Values of different
// kinds are never equal. String equality reduces to interned-handle
// (pointer) equality.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber:
		return v.number == other.number // NaN != NaN falls out of IEEE-754 ==
	case KindString:
		return v.str == other.str
	default:
		return false
	}
}

// String renders v the way OpPrint and the disassembler display it.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.number)
	case KindString:
		return v.str.S
	default:
		return "<invalid value>"
	}
}

// TypeName names v's case.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// formatNumber renders f using the shortest decimal representation that
// round-trips to the same float64 value.
func formatNumber(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
