// Package values implements the checker's ExactValue: the compile-time
// constant representation spec.md §3 requires for constant folding and for
// untyped-constant propagation (spec.md §4.4). Integers and floats are held
// at arbitrary precision via math/big so that, exactly as in the system
// this package realizes, a constant's value is never rounded until it
// commits into a concrete type.
package values

import (
	"fmt"
	"math/big"
)

// Kind tags which field of Value is live.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int
	Float
	String
	Pointer // the only admissible pointer constant is the null pointer.
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Pointer:
		return "pointer"
	default:
		return "invalid"
	}
}

// Value is an exact compile-time constant. The zero Value is Invalid.
type Value struct {
	kind Kind
	b    bool
	i    *big.Int
	f    *big.Float
	s    string
	// isNull is the only state a Pointer-kind Value can hold: spec.md does
	// not admit non-null pointer constants.
	isNull bool
}

// Kind reports which kind of constant v holds; Invalid for the zero Value.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v carries a usable value.
func (v Value) IsValid() bool { return v.kind != Invalid }

// NewBool returns a boolean constant.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewInt returns an integer constant from an arbitrary-precision value.
func NewInt(i *big.Int) Value { return Value{kind: Int, i: new(big.Int).Set(i)} }

// NewIntInt64 returns an integer constant from an int64.
func NewIntInt64(i int64) Value { return Value{kind: Int, i: big.NewInt(i)} }

// NewFloat returns a floating-point constant from an arbitrary-precision value.
func NewFloat(f *big.Float) Value { return Value{kind: Float, f: new(big.Float).Set(f)} }

// NewFloatFloat64 returns a floating-point constant from a float64.
func NewFloatFloat64(f float64) Value { return Value{kind: Float, f: big.NewFloat(f)} }

// NewString returns a string constant.
func NewString(s string) Value { return Value{kind: String, s: s} }

// NewNullPointer returns the one admissible pointer constant.
func NewNullPointer() Value { return Value{kind: Pointer, isNull: true} }

// AsBool returns the boolean payload; only meaningful when Kind() == Bool.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the integer payload; only meaningful when Kind() == Int.
func (v Value) AsInt() *big.Int { return v.i }

// AsFloat returns the float payload; only meaningful when Kind() == Float.
func (v Value) AsFloat() *big.Float { return v.f }

// AsString returns the string payload; only meaningful when Kind() == String.
func (v Value) AsString() string { return v.s }

// IsNullPointer reports whether v is the null pointer constant.
func (v Value) IsNullPointer() bool { return v.kind == Pointer && v.isNull }

// ToFloat promotes an Int value to a Float value; used when an untyped
// integer constant commits into a context expecting a floating-point type.
func (v Value) ToFloat() Value {
	if v.kind == Float {
		return v
	}
	if v.kind != Int {
		return Value{}
	}
	f := new(big.Float).SetInt(v.i)
	return Value{kind: Float, f: f}
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		return fmt.Sprintf("%t", v.b)
	case Int:
		return v.i.String()
	case Float:
		return v.f.Text('g', -1)
	case String:
		return fmt.Sprintf("%q", v.s)
	case Pointer:
		return "null"
	default:
		return "<invalid>"
	}
}

// Equal reports whether v and other denote the same constant value. Mixed
// Int/Float comparisons promote the Int side first.
func Equal(v, other Value) bool {
	if v.kind != other.kind {
		if v.kind == Int && other.kind == Float {
			return Equal(v.ToFloat(), other)
		}
		if v.kind == Float && other.kind == Int {
			return Equal(v, other.ToFloat())
		}
		return false
	}
	switch v.kind {
	case Bool:
		return v.b == other.b
	case Int:
		return v.i.Cmp(other.i) == 0
	case Float:
		return v.f.Cmp(other.f) == 0
	case String:
		return v.s == other.s
	case Pointer:
		return v.isNull == other.isNull
	default:
		return true
	}
}
