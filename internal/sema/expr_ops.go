package sema

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/source"
	"lumen/internal/types"
	"lumen/internal/values"
)

func (c *Checker) checkUnary(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr) Operand {
	x := c.checkExpr(scope, e.X)
	if !x.IsValid() {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	if e.Op == ast.OpAddr {
		if !x.Addressable() {
			c.errorf(diag.SemaNotAddressable, e.Span, "cannot take the address of this expression")
			return Operand{Mode: ModeInvalid, Expr: exprID}
		}
		return Operand{Mode: ModeValue, Type: c.Table.Types.MakePointer(x.Type), Expr: exprID}
	}

	spec, ok := types.UnarySpecFor(e.Op)
	if !ok {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	if c.Table.Types.Family(x.Type)&spec.Operand == 0 {
		c.errorf(diag.SemaIncompatibleOps, e.Span, "operator %s does not apply to this type", e.Op)
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	switch spec.Result {
	case types.UnaryResultDeref:
		xt, ok := c.Table.Types.Lookup(c.Table.Types.Underlying(x.Type))
		if !ok || xt.Kind != types.KindPointer {
			c.errorf(diag.SemaIncompatibleOps, e.Span, "cannot dereference a non-pointer")
			return Operand{Mode: ModeInvalid, Expr: exprID}
		}
		return Operand{Mode: ModeVariable, Type: xt.Elem, Expr: exprID}
	case types.UnaryResultBool:
		resultType := x.Type
		if x.Mode == ModeConstant {
			if v, ok := values.UnaryOp(e.Op, x.Value); ok {
				return Operand{Mode: ModeConstant, Type: resultType, Value: v, Expr: exprID}
			}
		}
		return Operand{Mode: ModeValue, Type: resultType, Expr: exprID}
	default: // UnaryResultSame
		if x.Mode == ModeConstant {
			if v, ok := values.UnaryOp(e.Op, x.Value); ok {
				return Operand{Mode: ModeConstant, Type: x.Type, Value: v, Expr: exprID}
			}
		}
		return Operand{Mode: ModeValue, Type: x.Type, Expr: exprID}
	}
}

func (c *Checker) checkBinary(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr) Operand {
	x := c.checkExpr(scope, e.X)
	y := c.checkExpr(scope, e.Y)
	if !x.IsValid() || !y.IsValid() {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	specs := types.BinarySpecs(e.Op)
	xf, yf := c.Table.Types.Family(x.Type), c.Table.Types.Family(y.Type)
	var matched *types.BinarySpec
	for i := range specs {
		if xf&specs[i].Left != 0 && yf&specs[i].Right != 0 {
			matched = &specs[i]
			break
		}
	}
	if matched == nil {
		c.errorf(diag.SemaIncompatibleOps, e.Span, "operator %s is not defined for these operand types", e.Op)
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	if (e.Op == ast.OpShl || e.Op == ast.OpShr) && y.Mode == ModeConstant &&
		y.Value.Kind() == values.Int && y.Value.AsInt().Sign() < 0 {
		c.errorf(diag.SemaNegativeShift, e.Span, "shift count must not be negative")
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	resultType, ok := c.commitOperandPair(e.Span, &x, &y)
	if !ok {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	if x.Mode == ModeConstant && y.Mode == ModeConstant {
		v, ok := values.BinaryOp(e.Op, x.Value, y.Value)
		if !ok {
			if e.Op == ast.OpQuo || e.Op == ast.OpRem {
				c.errorf(diag.SemaDivideByZero, e.Span, "division by zero in constant expression")
			}
			return Operand{Mode: ModeInvalid, Expr: exprID}
		}
		ct := resultType
		if matched.Result == types.BinaryResultBool {
			ct = c.Table.Types.Builtins().UntypedBool
		}
		return Operand{Mode: ModeConstant, Type: ct, Value: v, Expr: exprID}
	}

	switch matched.Result {
	case types.BinaryResultBool:
		return Operand{Mode: ModeValue, Type: c.Table.Types.Builtins().Bool, Expr: exprID}
	default:
		return Operand{Mode: ModeValue, Type: resultType, Expr: exprID}
	}
}

// commitOperandPair resolves which side's type the pair commits to when one
// or both operands are untyped, matching spec.md §4.4's untyped-constant
// propagation: typed beats untyped, and two untyped operands commit to the
// "larger" of their default types (float over int/rune, string/bool as-is).
func (c *Checker) commitOperandPair(span source.Span, x, y *Operand) (types.TypeID, bool) {
	xt, _ := c.Table.Types.Lookup(x.Type)
	yt, _ := c.Table.Types.Lookup(y.Type)
	xUntyped, yUntyped := xt.Kind.IsUntyped(), yt.Kind.IsUntyped()

	switch {
	case !xUntyped && !yUntyped:
		if !c.Table.Types.Identical(x.Type, y.Type) {
			c.errorf(diag.SemaTypeMismatch, span, "mismatched operand types")
			return types.NoTypeID, false
		}
		return x.Type, true
	case xUntyped && !yUntyped:
		if !c.Table.Types.AssignableTo(x.Type, y.Type) {
			c.errorf(diag.SemaTypeMismatch, span, "constant is not representable in the other operand's type")
			return types.NoTypeID, false
		}
		if !c.checkRepresentable(span, *x, y.Type) {
			return types.NoTypeID, false
		}
		return y.Type, true
	case !xUntyped && yUntyped:
		if !c.Table.Types.AssignableTo(y.Type, x.Type) {
			c.errorf(diag.SemaTypeMismatch, span, "constant is not representable in the other operand's type")
			return types.NoTypeID, false
		}
		if !c.checkRepresentable(span, *y, x.Type) {
			return types.NoTypeID, false
		}
		return x.Type, true
	default: // both untyped: promote int -> float if mixed
		if xt.Kind == types.KindUntypedFloat || yt.Kind == types.KindUntypedFloat {
			return c.Table.Types.Builtins().UntypedFloat, true
		}
		return x.Type, true
	}
}
