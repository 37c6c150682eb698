package sema

import (
	"math/big"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/token"
	"lumen/internal/values"
)

// checkExpr checks expr in scope, records its TypeAndValue, and returns the
// Operand the caller needs to keep checking (e.g. to decide addressability,
// or to read a constant's Value). Every code path that reaches a return
// statement must have already called c.record for this expr's AddressingMode
// to survive into the Types side table.
func (c *Checker) checkExpr(scope entity.ScopeID, exprID ast.ExprID) Operand {
	e := c.Builder.Exprs.Get(exprID)
	if e == nil {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	var op Operand
	switch e.Kind {
	case ast.ExprIdent:
		op = c.checkIdent(scope, exprID, e)
	case ast.ExprLiteral:
		op = c.checkLiteral(exprID, e)
	case ast.ExprUnary:
		op = c.checkUnary(scope, exprID, e)
	case ast.ExprBinary:
		op = c.checkBinary(scope, exprID, e)
	case ast.ExprCall:
		op = c.checkCall(scope, exprID, e)
	case ast.ExprPointerType, ast.ExprArrayType, ast.ExprSliceType, ast.ExprProcType, ast.ExprRecordType:
		tid := c.checkTypeExpr(scope, exprID)
		op = Operand{Mode: ModeType, Type: tid, Expr: exprID}
	default:
		op = Operand{Mode: ModeInvalid, Expr: exprID}
	}
	c.record(exprID, op)
	return op
}

func (c *Checker) checkIdent(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr) Operand {
	nameID := c.Table.Strings.Intern(e.Tok.Text)
	if nameID == c.Table.Blank {
		c.errorf(diag.SemaUndeclaredIdent, e.Span, "cannot use _ as a value")
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	ent, _, ok := c.Table.Lookup(scope, nameID)
	if !ok {
		c.errorf(diag.SemaUndeclaredIdent, e.Span, "undeclared identifier: %q", e.Tok.Text)
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	c.forceCheckDependency(ent)
	c.use(exprID, ent)
	ref := c.Table.Entities.Get(ent)
	if ref == nil {
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
	switch ref.Kind {
	case entity.KindConstant, entity.KindNil:
		return Operand{Mode: ModeConstant, Type: ref.Type, Value: ref.Value, Expr: exprID}
	case entity.KindVariable:
		return Operand{Mode: ModeVariable, Type: ref.Type, Expr: exprID}
	case entity.KindTypeName:
		return Operand{Mode: ModeType, Type: ref.Type, Expr: exprID}
	case entity.KindProcedure:
		return Operand{Mode: ModeProcedure, Type: ref.Type, Expr: exprID}
	case entity.KindBuiltin:
		return Operand{Mode: ModeBuiltin, Expr: exprID}
	default:
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
}

func (c *Checker) checkLiteral(exprID ast.ExprID, e *ast.Expr) Operand {
	b := c.Table.Types.Builtins()
	switch e.Tok.Kind {
	case token.IntLit:
		n := new(big.Int)
		if _, ok := n.SetString(e.Tok.Text, 0); !ok {
			c.errorf(diag.SemaConstOutOfRange, e.Span, "invalid integer literal %q", e.Tok.Text)
			return Operand{Mode: ModeInvalid, Expr: exprID}
		}
		return Operand{Mode: ModeConstant, Type: b.UntypedInt, Value: values.NewInt(n), Expr: exprID}
	case token.FloatLit:
		f, _, err := big.ParseFloat(e.Tok.Text, 10, 256, big.ToNearestEven)
		if err != nil {
			c.errorf(diag.SemaConstOutOfRange, e.Span, "invalid float literal %q", e.Tok.Text)
			return Operand{Mode: ModeInvalid, Expr: exprID}
		}
		return Operand{Mode: ModeConstant, Type: b.UntypedFloat, Value: values.NewFloat(f), Expr: exprID}
	case token.StringLit:
		return Operand{Mode: ModeConstant, Type: b.UntypedString, Value: values.NewString(e.Tok.Text), Expr: exprID}
	case token.RuneLit:
		r := []rune(e.Tok.Text)
		var v int64
		if len(r) > 0 {
			v = int64(r[0])
		}
		return Operand{Mode: ModeConstant, Type: b.UntypedRune, Value: values.NewIntInt64(v), Expr: exprID}
	case token.BoolLit:
		return Operand{Mode: ModeConstant, Type: b.UntypedBool, Value: values.NewBool(e.Tok.Text == "true"), Expr: exprID}
	case token.NullLit:
		return Operand{Mode: ModeConstant, Type: b.UntypedNil, Value: values.NewNullPointer(), Expr: exprID}
	default:
		return Operand{Mode: ModeInvalid, Expr: exprID}
	}
}
