package values

import (
	"math/big"
	"testing"

	"lumen/internal/ast"
)

func TestIntArithmetic(t *testing.T) {
	x := NewIntInt64(7)
	y := NewIntInt64(3)

	sum, ok := BinaryOp(ast.OpAdd, x, y)
	if !ok || sum.AsInt().Int64() != 10 {
		t.Fatalf("7 + 3 = %v, ok=%v", sum, ok)
	}

	quo, ok := BinaryOp(ast.OpQuo, x, y)
	if !ok || quo.AsInt().Int64() != 2 {
		t.Fatalf("7 / 3 = %v, ok=%v", quo, ok)
	}

	if _, ok := BinaryOp(ast.OpQuo, x, NewIntInt64(0)); ok {
		t.Fatal("division by zero should not fold")
	}
}

func TestIntFloatPromotion(t *testing.T) {
	x := NewIntInt64(2)
	y := NewFloatFloat64(0.5)

	sum, ok := BinaryOp(ast.OpAdd, x, y)
	if !ok || sum.Kind() != Float {
		t.Fatalf("expected promoted float result, got %v ok=%v", sum, ok)
	}
	got, _ := sum.AsFloat().Float64()
	if got != 2.5 {
		t.Fatalf("2 + 0.5 = %v, want 2.5", got)
	}
}

func TestUnaryNegate(t *testing.T) {
	v, ok := UnaryOp(ast.OpSub, NewIntInt64(5))
	if !ok || v.AsInt().Int64() != -5 {
		t.Fatalf("-5 got %v ok=%v", v, ok)
	}
}

func TestEqualMixedKinds(t *testing.T) {
	a := NewInt(big.NewInt(4))
	b := NewFloatFloat64(4.0)
	if !Equal(a, b) {
		t.Fatal("4 (int) should equal 4.0 (float)")
	}
}

func TestStringConcat(t *testing.T) {
	v, ok := BinaryOp(ast.OpAdd, NewString("foo"), NewString("bar"))
	if !ok || v.AsString() != "foobar" {
		t.Fatalf("foo+bar = %v ok=%v", v, ok)
	}
}

func TestNullPointerEquality(t *testing.T) {
	a := NewNullPointer()
	b := NewNullPointer()
	if !Equal(a, b) {
		t.Fatal("null pointers should be equal")
	}
}
