package types

import "lumen/internal/ast"

// FamilyMask describes broad categories of types an operator accepts.
type FamilyMask uint32

const (
	FamilyNone FamilyMask = 0
	FamilyAny  FamilyMask = 1 << iota
	FamilyBool
	FamilyInt
	FamilyFloat
	FamilyRune
	FamilyString
	FamilyPointer
)

const FamilyNumeric = FamilyInt | FamilyFloat | FamilyRune

// BinaryResult describes how to derive a binary operator's result type.
type BinaryResult uint8

const (
	BinaryResultUnknown BinaryResult = iota
	BinaryResultLeft
	BinaryResultBool
	BinaryResultNumeric
)

// BinarySpec lists the operand families and result rule for one overload of
// a binary operator; an operator may accept more than one family pairing
// (e.g. `+` over numerics and over strings).
type BinarySpec struct {
	Left, Right FamilyMask
	Result      BinaryResult
}

// UnaryResult describes how to derive a unary operator's result type.
type UnaryResult uint8

const (
	UnaryResultUnknown UnaryResult = iota
	UnaryResultSame
	UnaryResultBool
	UnaryResultDeref // ^expr: result is the pointee type
	UnaryResultAddr  // &expr: result is a pointer to the operand type
)

// UnarySpec describes the accepted operand family and result rule for a
// unary operator.
type UnarySpec struct {
	Operand FamilyMask
	Result  UnaryResult
}

var binarySpecTable = map[ast.OpKind][]BinarySpec{
	ast.OpAdd: {
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
		{Left: FamilyString, Right: FamilyString, Result: BinaryResultLeft},
	},
	ast.OpSub: {{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric}},
	ast.OpMul: {{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric}},
	ast.OpQuo: {{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric}},
	ast.OpRem: {{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultNumeric}},

	ast.OpBitAnd: {{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultNumeric}},
	ast.OpBitOr:  {{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultNumeric}},
	ast.OpBitXor: {{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultNumeric}},
	ast.OpShl:    {{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultLeft}},
	ast.OpShr:    {{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultLeft}},

	ast.OpLogicAnd: {{Left: FamilyBool, Right: FamilyBool, Result: BinaryResultBool}},
	ast.OpLogicOr:  {{Left: FamilyBool, Right: FamilyBool, Result: BinaryResultBool}},

	// Family never reports FamilyAny, so equality lists every comparable family.
	ast.OpEq: {{Left: FamilyBool | FamilyNumeric | FamilyString | FamilyPointer, Right: FamilyBool | FamilyNumeric | FamilyString | FamilyPointer, Result: BinaryResultBool}},
	ast.OpNe: {{Left: FamilyBool | FamilyNumeric | FamilyString | FamilyPointer, Right: FamilyBool | FamilyNumeric | FamilyString | FamilyPointer, Result: BinaryResultBool}},
	ast.OpLt: {{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool}},
	ast.OpLe: {{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool}},
	ast.OpGt: {{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool}},
	ast.OpGe: {{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool}},
}

var unarySpecTable = map[ast.OpKind]UnarySpec{
	ast.OpNeg:    {Operand: FamilyNumeric, Result: UnaryResultSame},
	ast.OpNot:    {Operand: FamilyBool, Result: UnaryResultBool},
	ast.OpBitNot: {Operand: FamilyInt, Result: UnaryResultSame},
	ast.OpAddr:   {Operand: FamilyAny, Result: UnaryResultAddr},
	ast.OpDeref:  {Operand: FamilyPointer, Result: UnaryResultDeref},
}

// Family reports the FamilyMask bit(s) a type's underlying kind belongs to.
// KindInvalid types carry no family and compatibility checks always fail
// for them, propagating a prior error without a cascade of new ones.
func (in *Interner) Family(id TypeID) FamilyMask {
	t, ok := in.Lookup(in.Underlying(id))
	if !ok {
		return FamilyNone
	}
	switch t.Kind {
	case KindBool, KindUntypedBool:
		return FamilyBool
	case KindInt, KindUntypedInt:
		return FamilyInt
	case KindFloat, KindUntypedFloat:
		return FamilyFloat
	case KindRune, KindUntypedRune:
		return FamilyRune
	case KindString, KindUntypedString:
		return FamilyString
	case KindPointer, KindNilPointer, KindUntypedNil:
		return FamilyPointer
	default:
		return FamilyNone
	}
}

// BinarySpecs returns every accepted operand-family pairing for op.
func BinarySpecs(op ast.OpKind) []BinarySpec { return binarySpecTable[op] }

// UnarySpecFor returns the accepted operand family and result rule for op.
func UnarySpecFor(op ast.OpKind) (UnarySpec, bool) {
	spec, ok := unarySpecTable[op]
	return spec, ok
}

// Comparable reports whether id supports `==`/`!=`; records, procedures,
// arrays and slices are not directly comparable.
func (in *Interner) Comparable(id TypeID) bool {
	t, ok := in.Lookup(in.Underlying(id))
	if !ok {
		return false
	}
	switch t.Kind {
	case KindRecord, KindProcedure, KindArray, KindSlice:
		return false
	default:
		return true
	}
}
