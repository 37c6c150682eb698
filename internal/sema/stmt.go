package sema

import (
	"lumen/internal/ast"
	"lumen/internal/entity"
	"lumen/internal/types"
)

// CheckBodies checks every procedure body queued during Order, in queue
// order. Bodies are checked after every top-level declaration has been
// resolved, so a procedure may freely reference declarations appearing
// later in the file (spec.md §4.4's "deferred procedure-body checking").
func (c *Checker) CheckBodies() {
	for _, info := range c.procQueue {
		c.checkProcBody(info)
	}
}

func (c *Checker) checkProcBody(info ProcedureInfo) {
	bodyID := c.bodyOf(info)
	if c.Builder.Stmts.Get(bodyID) == nil {
		return
	}
	pt, _ := c.Table.Types.Lookup(info.Type)
	c.checkStmt(info.Scope, bodyID, pt.Results)
}

func (c *Checker) bodyOf(info ProcedureInfo) ast.StmtID {
	d := c.Builder.Decls.Get(info.Decl)
	if d == nil {
		return ast.NoStmtID
	}
	return d.Body
}

// checkStmt checks one statement in scope. results carries the enclosing
// procedure's result types, consulted by a Return statement.
func (c *Checker) checkStmt(scope entity.ScopeID, stmtID ast.StmtID, results []types.TypeID) {
	s := c.Builder.Stmts.Get(stmtID)
	if s == nil {
		return
	}
	switch s.Kind {
	case ast.StmtBlock:
		block := c.Table.Open(entity.ScopeBlock, scope, s.Span)
		for _, inner := range s.Body {
			c.checkStmt(block, inner, results)
		}
		c.reportUnusedLocals(block)
	case ast.StmtExpr:
		c.checkExpr(scope, s.X)
	case ast.StmtAssign:
		c.checkAssign(scope, s)
	case ast.StmtVarDecl:
		c.checkLocalVarDecl(scope, s)
	case ast.StmtIf:
		c.checkIf(scope, s, results)
	case ast.StmtFor:
		c.checkFor(scope, s, results)
	case ast.StmtReturn:
		c.checkReturn(scope, s, results)
	case ast.StmtDefer:
		c.deferDepth++
		c.checkStmt(scope, s.Inner, results)
		c.deferDepth--
	}
}
