package sema

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/types"
)

// checkCall dispatches a call expression by the addressing mode of its
// callee: a type denotes a conversion, a builtin dispatches through
// builtins.go, and a procedure is an ordinary call (spec.md §4.4's "call
// dispatch by operand mode").
func (c *Checker) checkCall(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr) Operand {
	calleeExpr := c.Builder.Exprs.Get(e.X)
	if calleeExpr == nil {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	// A builtin callee is never itself checked as an ordinary expression —
	// "size_of" alone is not a value — so it is resolved directly here
	// instead of going through checkExpr first.
	if calleeExpr.Kind == ast.ExprIdent {
		nameID := c.Table.Strings.Intern(calleeExpr.Tok.Text)
		if ent, _, ok := c.Table.Lookup(scope, nameID); ok {
			if ref := c.Table.Entities.Get(ent); ref != nil && ref.Kind == entity.KindBuiltin {
				c.use(e.X, ent)
				return c.checkBuiltinCall(scope, exprID, e, ref.BuiltinID)
			}
		}
	}

	callee := c.checkExpr(scope, e.X)
	switch callee.Mode {
	case ModeType:
		return c.checkConversion(scope, exprID, e, callee.Type)
	case ModeProcedure:
		return c.checkProcCall(scope, exprID, e, callee.Type)
	case ModeInvalid:
		return Operand{Mode: ModeInvalid, Expr: exprID}
	default:
		c.errorf(diag.SemaNotCallable, e.Span, "expression is not callable")
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
}

func (c *Checker) checkConversion(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr, target types.TypeID) Operand {
	if len(e.Args) != 1 {
		c.errorf(diag.SemaArgCountMismatch, e.Span, "conversion takes exactly one argument, got %d", len(e.Args))
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	arg := c.checkExpr(scope, e.Args[0])
	if !arg.IsValid() {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	argFamily := c.Table.Types.Family(arg.Type)
	targetFamily := c.Table.Types.Family(target)
	if argFamily&targetFamily == 0 && argFamily != 0 && targetFamily != 0 {
		c.errorf(diag.SemaBadConversion, e.Span, "cannot convert between these types")
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	if arg.Mode == ModeConstant {
		v := arg.Value
		if targetFamily == types.FamilyFloat {
			v = v.ToFloat()
		}
		return Operand{Mode: ModeConstant, Type: target, Value: v, Expr: exprID}
	}
	return Operand{Mode: ModeValue, Type: target, Expr: exprID}
}

func (c *Checker) checkProcCall(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr, procType types.TypeID) Operand {
	pt, ok := c.Table.Types.Lookup(procType)
	if !ok || pt.Kind != types.KindProcedure {
		c.errorf(diag.SemaNotCallable, e.Span, "expression is not callable")
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}

	minArgs := len(pt.Params)
	if pt.Variadic {
		minArgs--
	}
	if len(e.Args) < minArgs || (!pt.Variadic && len(e.Args) > len(pt.Params)) {
		c.errorf(diag.SemaProcArity, e.Span, "expected %d argument(s), got %d", len(pt.Params), len(e.Args))
	}

	for i, argExpr := range e.Args {
		arg := c.checkExpr(scope, argExpr)
		paramIdx := i
		if pt.Variadic && paramIdx >= len(pt.Params) {
			paramIdx = len(pt.Params) - 1
		}
		if paramIdx < 0 || paramIdx >= len(pt.Params) {
			continue
		}
		if arg.IsValid() && !c.Table.Types.AssignableTo(arg.Type, pt.Params[paramIdx]) {
			c.errorf(diag.SemaTypeMismatch, e.Span, "argument %d does not match parameter type", i+1)
		}
	}

	switch len(pt.Results) {
	case 0:
		return Operand{Mode: ModeNoValue, Expr: exprID}
	case 1:
		return Operand{Mode: ModeValue, Type: pt.Results[0], Expr: exprID}
	default:
		// Multi-result calls are only meaningful in a multi-name binding
		// context; as a plain expression they report the first result,
		// matching how the checker treats a tuple call used for its value.
		return Operand{Mode: ModeValue, Type: pt.Results[0], Expr: exprID}
	}
}
