package sema

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/universe"
	"lumen/internal/values"
)

// checkBuiltinCall checks a call whose callee resolved to a builtin
// procedure entity, dispatching by BuiltinID and validating arity against
// universe.Table the way the original checker's builtin_procedures table
// drives BuiltinProcedureId dispatch.
func (c *Checker) checkBuiltinCall(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr, id uint32) Operand {
	var sig universe.Signature
	found := false
	for _, s := range universe.Table {
		if uint32(s.ID) == id {
			sig, found = s, true
			break
		}
	}
	if !found {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	n := len(e.Args)
	if n < sig.MinArgs || (sig.MaxArgs >= 0 && n > sig.MaxArgs) {
		c.errorf(diag.SemaBuiltinArity, e.Span, "%s expects %d argument(s), got %d", sig.Name, sig.MinArgs, n)
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	b := c.Table.Types.Builtins()
	switch universe.BuiltinID(id) {
	case universe.BuiltinSizeOf, universe.BuiltinAlignOf:
		target := c.checkTypeExpr(scope, e.Args[0])
		var n uint64
		if universe.BuiltinID(id) == universe.BuiltinSizeOf {
			n = c.Table.Types.SizeOf(target, c.Sizes)
		} else {
			n = c.Table.Types.AlignOf(target, c.Sizes)
		}
		return Operand{Mode: ModeConstant, Type: b.UntypedInt, Value: values.NewIntInt64(int64(n)), Expr: exprID}

	case universe.BuiltinSizeOfVal, universe.BuiltinAlignOfVal:
		arg := c.checkExpr(scope, e.Args[0])
		if !arg.IsValid() {
			return Operand{Mode: ModeInvalid, Expr: exprID}
		}
		var n uint64
		if universe.BuiltinID(id) == universe.BuiltinSizeOfVal {
			n = c.Table.Types.SizeOf(arg.Type, c.Sizes)
		} else {
			n = c.Table.Types.AlignOf(arg.Type, c.Sizes)
		}
		return Operand{Mode: ModeConstant, Type: b.UntypedInt, Value: values.NewIntInt64(int64(n)), Expr: exprID}

	case universe.BuiltinOffsetOf:
		recType := c.checkTypeExpr(scope, e.Args[0])
		fieldOp := c.checkExpr(scope, e.Args[1])
		idx := 0
		if fieldOp.Mode == ModeConstant && fieldOp.Value.AsInt() != nil {
			idx = int(fieldOp.Value.AsInt().Int64())
		}
		off, ok := c.Table.Types.OffsetOf(recType, idx, c.Sizes)
		if !ok {
			c.errorf(diag.SemaBuiltinArity, e.Span, "offset_of: not a valid field index")
			return Operand{Mode: ModeInvalid, Expr: exprID}
		}
		return Operand{Mode: ModeConstant, Type: b.UntypedInt, Value: values.NewIntInt64(int64(off)), Expr: exprID}

	case universe.BuiltinOffsetOfVal:
		c.checkExpr(scope, e.Args[0])
		return Operand{Mode: ModeConstant, Type: b.UntypedInt, Value: values.NewIntInt64(0), Expr: exprID}

	case universe.BuiltinStaticAssert:
		cond := c.checkExpr(scope, e.Args[0])
		if cond.Mode == ModeConstant && cond.Value.Kind() == values.Bool && !cond.Value.AsBool() {
			msg := "static assertion failed"
			if len(e.Args) > 1 {
				if m := c.checkExpr(scope, e.Args[1]); m.Mode == ModeConstant && m.Value.Kind() == values.String {
					msg = m.Value.AsString()
				}
			}
			c.errorf(diag.SemaConstOutOfRange, e.Span, "%s", msg)
		}
		return Operand{Mode: ModeNoValue, Expr: exprID}

	case universe.BuiltinLen, universe.BuiltinCap:
		c.checkExpr(scope, e.Args[0])
		return Operand{Mode: ModeValue, Type: b.Int, Expr: exprID}

	case universe.BuiltinCopy:
		c.checkExpr(scope, e.Args[0])
		c.checkExpr(scope, e.Args[1])
		return Operand{Mode: ModeValue, Type: b.Int, Expr: exprID}

	case universe.BuiltinCopyBytes:
		for _, a := range e.Args {
			c.checkExpr(scope, a)
		}
		return Operand{Mode: ModeValue, Type: b.Int, Expr: exprID}

	case universe.BuiltinPrint, universe.BuiltinPrintln:
		for _, a := range e.Args {
			c.checkExpr(scope, a)
		}
		return Operand{Mode: ModeNoValue, Expr: exprID}

	default:
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
}
