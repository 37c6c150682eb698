package sema

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/types"
)

func (c *Checker) checkAssign(scope entity.ScopeID, s *ast.Stmt) {
	lhsOps := make([]Operand, len(s.LHS))
	for i, lhsExpr := range s.LHS {
		lhsOps[i] = c.checkExpr(scope, lhsExpr)
		if lhsOps[i].IsValid() && !lhsOps[i].Addressable() {
			l := c.Builder.Exprs.Get(lhsExpr)
			span := s.Span
			if l != nil {
				span = l.Span
			}
			c.errorf(diag.SemaNotAddressable, span, "cannot assign to this expression")
		}
	}
	for i, rhsExpr := range s.RHS {
		rhsOp := c.checkExpr(scope, rhsExpr)
		if i >= len(lhsOps) || !lhsOps[i].IsValid() || !rhsOp.IsValid() {
			continue
		}
		if !c.Table.Types.AssignableTo(rhsOp.Type, lhsOps[i].Type) {
			c.errorf(diag.SemaTypeMismatch, s.Span, "value is not assignable to this target")
		}
	}
}

func (c *Checker) checkLocalVarDecl(scope entity.ScopeID, s *ast.Stmt) {
	declaredType := types.NoTypeID
	if s.TypeExpr != ast.NoExprID {
		declaredType = c.checkTypeExpr(scope, s.TypeExpr)
	}
	for i, name := range s.Names {
		var valueType types.TypeID
		var op Operand
		if i < len(s.Values) {
			op = c.checkExpr(scope, s.Values[i])
			valueType = op.Type
		}
		finalType := declaredType
		if finalType == types.NoTypeID {
			finalType = c.defaultType(valueType)
		} else if op.IsValid() && valueType != types.NoTypeID {
			if !c.Table.Types.AssignableTo(valueType, finalType) {
				c.errorf(diag.SemaTypeMismatch, s.Span, "initializer does not match declared type")
			} else if !c.checkRepresentable(name.Span, op, finalType) {
				finalType = types.NoTypeID
			} else {
				c.commitExprTo(op.Expr, finalType)
			}
		}
		nameID := c.Table.Strings.Intern(name.Text)
		ent, existing, ok := c.Table.Declare(scope, nameID, entity.Entity{Kind: entity.KindVariable, Type: finalType, Span: name.Span})
		if !ok {
			c.reportRedeclare(name, existing)
			continue
		}
		c.define(name.Span, ent)
	}
}

func (c *Checker) checkIf(scope entity.ScopeID, s *ast.Stmt, results []types.TypeID) {
	ifScope := scope
	if s.Init != ast.NoStmtID {
		ifScope = c.Table.Open(entity.ScopeBlock, scope, s.Span)
		c.checkStmt(ifScope, s.Init, results)
	}
	cond := c.checkExpr(ifScope, s.X)
	if cond.IsValid() && !c.isBoolType(cond.Type) {
		c.errorf(diag.SemaTypeMismatch, s.Span, "if condition must be bool")
	}
	c.checkStmt(ifScope, s.Then, results)
	if s.Else != ast.NoStmtID {
		c.checkStmt(ifScope, s.Else, results)
	}
}

func (c *Checker) checkFor(scope entity.ScopeID, s *ast.Stmt, results []types.TypeID) {
	forScope := c.Table.Open(entity.ScopeBlock, scope, s.Span)
	if s.Init != ast.NoStmtID {
		c.checkStmt(forScope, s.Init, results)
	}
	if s.X != ast.NoExprID {
		cond := c.checkExpr(forScope, s.X)
		if cond.IsValid() && !c.isBoolType(cond.Type) {
			c.errorf(diag.SemaTypeMismatch, s.Span, "for condition must be bool")
		}
	}
	if s.Post != ast.NoStmtID {
		c.checkStmt(forScope, s.Post, results)
	}
	c.checkStmt(forScope, s.Then, results)
}

func (c *Checker) isBoolType(id types.TypeID) bool {
	return c.Table.Types.Family(id) == types.FamilyBool
}

func (c *Checker) checkReturn(scope entity.ScopeID, s *ast.Stmt, results []types.TypeID) {
	if c.deferDepth > 0 {
		c.errorf(diag.SemaReturnInDefer, s.Span, "return is not allowed inside defer")
		return
	}
	if len(s.Values) != len(results) {
		c.errorf(diag.SemaReturnMismatch, s.Span, "expected %d return value(s), got %d", len(results), len(s.Values))
	}
	for i, v := range s.Values {
		op := c.checkExpr(scope, v)
		if i >= len(results) || !op.IsValid() {
			continue
		}
		if !c.Table.Types.AssignableTo(op.Type, results[i]) {
			c.errorf(diag.SemaReturnMismatch, s.Span, "return value %d does not match result type", i+1)
		}
	}
}

// reportUnusedLocals flags every local variable declared directly in block
// that was never read (spec.md §4.4 edge case); parameters and package-level
// declarations are out of scope for this sweep.
func (c *Checker) reportUnusedLocals(block entity.ScopeID) {
	s := c.Table.Scopes.Get(block)
	if s == nil {
		return
	}
	for _, id := range s.Names() {
		e := c.Table.Entities.Get(id)
		if e == nil || e.Kind != entity.KindVariable || e.Used {
			continue
		}
		c.warnf(diag.SemaUnusedVariable, e.Span, "declared and not used")
	}
}
