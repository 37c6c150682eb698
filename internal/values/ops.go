package values

import (
	"math/big"

	"lumen/internal/ast"
)

// UnaryOp applies a unary operator to a constant value. ok is false when op
// does not apply to v's kind; the caller reports the diagnostic.
func UnaryOp(op ast.OpKind, v Value) (result Value, ok bool) {
	switch op {
	case ast.OpSub, ast.OpNeg:
		switch v.kind {
		case Int:
			return NewInt(new(big.Int).Neg(v.i)), true
		case Float:
			return NewFloat(new(big.Float).Neg(v.f)), true
		}
	case ast.OpNot:
		if v.kind == Bool {
			return NewBool(!v.b), true
		}
	case ast.OpBitNot:
		if v.kind == Int {
			return NewInt(new(big.Int).Not(v.i)), true
		}
	}
	return Value{}, false
}

// BinaryOp applies a binary operator to a pair of constant values, promoting
// a mixed Int/Float pair to Float first. ok is false when op does not apply.
func BinaryOp(op ast.OpKind, x, y Value) (result Value, ok bool) {
	if x.kind == Int && y.kind == Float {
		x = x.ToFloat()
	} else if x.kind == Float && y.kind == Int {
		y = y.ToFloat()
	}
	if x.kind != y.kind {
		return Value{}, false
	}

	switch x.kind {
	case Int:
		return intBinaryOp(op, x.i, y.i)
	case Float:
		return floatBinaryOp(op, x.f, y.f)
	case Bool:
		return boolBinaryOp(op, x.b, y.b)
	case String:
		return stringBinaryOp(op, x.s, y.s)
	default:
		return Value{}, false
	}
}

func intBinaryOp(op ast.OpKind, x, y *big.Int) (Value, bool) {
	r := new(big.Int)
	switch op {
	case ast.OpAdd:
		return NewInt(r.Add(x, y)), true
	case ast.OpSub:
		return NewInt(r.Sub(x, y)), true
	case ast.OpMul:
		return NewInt(r.Mul(x, y)), true
	case ast.OpQuo:
		if y.Sign() == 0 {
			return Value{}, false
		}
		return NewInt(r.Quo(x, y)), true
	case ast.OpRem:
		if y.Sign() == 0 {
			return Value{}, false
		}
		return NewInt(r.Rem(x, y)), true
	case ast.OpBitAnd:
		return NewInt(r.And(x, y)), true
	case ast.OpBitOr:
		return NewInt(r.Or(x, y)), true
	case ast.OpBitXor:
		return NewInt(r.Xor(x, y)), true
	case ast.OpShl:
		return NewInt(r.Lsh(x, uint(y.Uint64()))), true
	case ast.OpShr:
		return NewInt(r.Rsh(x, uint(y.Uint64()))), true
	case ast.OpEq:
		return NewBool(x.Cmp(y) == 0), true
	case ast.OpNe:
		return NewBool(x.Cmp(y) != 0), true
	case ast.OpLt:
		return NewBool(x.Cmp(y) < 0), true
	case ast.OpLe:
		return NewBool(x.Cmp(y) <= 0), true
	case ast.OpGt:
		return NewBool(x.Cmp(y) > 0), true
	case ast.OpGe:
		return NewBool(x.Cmp(y) >= 0), true
	default:
		return Value{}, false
	}
}

func floatBinaryOp(op ast.OpKind, x, y *big.Float) (Value, bool) {
	r := new(big.Float)
	switch op {
	case ast.OpAdd:
		return NewFloat(r.Add(x, y)), true
	case ast.OpSub:
		return NewFloat(r.Sub(x, y)), true
	case ast.OpMul:
		return NewFloat(r.Mul(x, y)), true
	case ast.OpQuo:
		if y.Sign() == 0 {
			return Value{}, false
		}
		return NewFloat(r.Quo(x, y)), true
	case ast.OpEq:
		return NewBool(x.Cmp(y) == 0), true
	case ast.OpNe:
		return NewBool(x.Cmp(y) != 0), true
	case ast.OpLt:
		return NewBool(x.Cmp(y) < 0), true
	case ast.OpLe:
		return NewBool(x.Cmp(y) <= 0), true
	case ast.OpGt:
		return NewBool(x.Cmp(y) > 0), true
	case ast.OpGe:
		return NewBool(x.Cmp(y) >= 0), true
	default:
		return Value{}, false
	}
}

func boolBinaryOp(op ast.OpKind, x, y bool) (Value, bool) {
	switch op {
	case ast.OpLogicAnd:
		return NewBool(x && y), true
	case ast.OpLogicOr:
		return NewBool(x || y), true
	case ast.OpEq:
		return NewBool(x == y), true
	case ast.OpNe:
		return NewBool(x != y), true
	default:
		return Value{}, false
	}
}

func stringBinaryOp(op ast.OpKind, x, y string) (Value, bool) {
	switch op {
	case ast.OpAdd:
		return NewString(x + y), true
	case ast.OpEq:
		return NewBool(x == y), true
	case ast.OpNe:
		return NewBool(x != y), true
	case ast.OpLt:
		return NewBool(x < y), true
	case ast.OpLe:
		return NewBool(x <= y), true
	case ast.OpGt:
		return NewBool(x > y), true
	case ast.OpGe:
		return NewBool(x >= y), true
	default:
		return Value{}, false
	}
}
