package ast

import (
	"lumen/internal/source"
	"lumen/internal/token"
)

// StmtKind tags the shape of a Stmt node.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtBlock
	StmtExpr
	StmtAssign
	StmtVarDecl
	StmtIf
	StmtFor
	StmtReturn
	StmtDefer
)

// Stmt is a single statement node, as with Expr tagged by Kind with
// fields shared loosely across shapes.
type Stmt struct {
	Kind StmtKind
	Span source.Span

	Body []StmtID // Block: its statements.

	X ExprID // Expr: the expression. If/For: the condition (NoExprID for a for without one).

	LHS      []ExprID // Assign: assignment targets.
	RHS      []ExprID // Assign: right-hand side expressions.
	AssignOp OpKind   // Assign: OpInvalid for plain `=`, else the compound op (e.g. OpAdd for `+=`).

	Names    []token.Token // VarDecl: declared names (supports `x, y := ...`).
	TypeExpr ExprID        // VarDecl: explicit type, or NoExprID to infer.
	Values   []ExprID      // VarDecl: initializers. Return: result expressions.

	Init StmtID // If/For: optional init statement.
	Then StmtID // If: the `then` block.
	Else StmtID // If: optional else branch (block or nested If).
	Post StmtID // For: optional post statement.

	Inner StmtID // Defer: the deferred statement.
}

// Stmts is the arena of every Stmt in a program.
type Stmts struct {
	Arena *Arena[Stmt]
}

// NewStmts returns an empty statement arena.
func NewStmts(capHint uint) *Stmts {
	return &Stmts{Arena: NewArena[Stmt](capHint)}
}

func (s *Stmts) alloc(stmt Stmt) StmtID {
	return StmtID(s.Arena.Allocate(stmt))
}

// Get returns the Stmt for id, or nil if id is invalid.
func (s *Stmts) Get(id StmtID) *Stmt { return s.Arena.Get(uint32(id)) }

// NewBlock allocates a block statement.
func (s *Stmts) NewBlock(body []StmtID, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtBlock, Span: span, Body: body})
}

// NewExprStmt allocates a bare expression statement (typically a call).
func (s *Stmts) NewExprStmt(x ExprID, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtExpr, Span: span, X: x})
}

// NewAssign allocates an assignment statement. op is OpInvalid for `=`.
func (s *Stmts) NewAssign(lhs, rhs []ExprID, op OpKind, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtAssign, Span: span, LHS: lhs, RHS: rhs, AssignOp: op})
}

// NewVarDecl allocates a local variable declaration. The node carries no
// mutable/immutable marker; the checker declares every name as a variable.
func (s *Stmts) NewVarDecl(names []token.Token, typeExpr ExprID, values []ExprID, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtVarDecl, Span: span, Names: names, TypeExpr: typeExpr, Values: values})
}

// NewIf allocates an if statement.
func (s *Stmts) NewIf(init StmtID, cond ExprID, then, els StmtID, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtIf, Span: span, Init: init, X: cond, Then: then, Else: els})
}

// NewFor allocates a for statement; any of init/cond/post may be invalid.
func (s *Stmts) NewFor(init StmtID, cond ExprID, post StmtID, body StmtID, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtFor, Span: span, Init: init, X: cond, Post: post, Then: body})
}

// NewReturn allocates a return statement with zero or more result values.
func (s *Stmts) NewReturn(values []ExprID, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtReturn, Span: span, Values: values})
}

// NewDefer allocates a defer statement wrapping inner.
func (s *Stmts) NewDefer(inner StmtID, span source.Span) StmtID {
	return s.alloc(Stmt{Kind: StmtDefer, Span: span, Inner: inner})
}
