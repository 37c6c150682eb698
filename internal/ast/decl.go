package ast

import (
	"lumen/internal/source"
	"lumen/internal/token"
)

// DeclKind tags the shape of a top-level (or deferred-body) Decl node.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	DeclValue   // immutable binding: `x :: 1` or `x : int : 1`
	DeclVar     // mutable binding: `x := 1` or `x : int = 1`
	DeclType    // `Point :: struct { ... }`
	DeclProc    // `f :: proc(...) -> (...) { ... }`, Body == NoStmtID for an extern declaration
	DeclImport  // `import "path"`
	DeclBad     // malformed declaration kept for error recovery
)

// Decl is a top-level declaration. Exactly as with Expr/Stmt, fields are
// populated per Kind.
type Decl struct {
	Kind DeclKind
	Span source.Span

	Names []token.Token // Value/Var/Type/Proc: the declared name(s) (Value/Var support `a, b :: ...`).

	TypeExpr ExprID   // Value/Var: explicit type, or NoExprID to infer from Values.
	Values   []ExprID // Value/Var: initializers.

	Params   []FieldDecl // Proc: parameters.
	Results  []ExprID    // Proc: result type expressions.
	Variadic bool        // Proc: last parameter consumes zero or more trailing args.
	Body     StmtID      // Proc: the body block, or NoStmtID for a body-less extern declaration.

	ImportPath token.Token // Import: the path literal.
}

// Decls is the arena of every top-level Decl in a program.
type Decls struct {
	Arena *Arena[Decl]
}

// NewDecls returns an empty declaration arena.
func NewDecls(capHint uint) *Decls {
	return &Decls{Arena: NewArena[Decl](capHint)}
}

func (d *Decls) alloc(decl Decl) DeclID {
	return DeclID(d.Arena.Allocate(decl))
}

// Get returns the Decl for id, or nil if id is invalid.
func (d *Decls) Get(id DeclID) *Decl { return d.Arena.Get(uint32(id)) }

// NewValue allocates an immutable declaration.
func (d *Decls) NewValue(names []token.Token, typeExpr ExprID, values []ExprID, span source.Span) DeclID {
	return d.alloc(Decl{Kind: DeclValue, Span: span, Names: names, TypeExpr: typeExpr, Values: values})
}

// NewVar allocates a mutable declaration.
func (d *Decls) NewVar(names []token.Token, typeExpr ExprID, values []ExprID, span source.Span) DeclID {
	return d.alloc(Decl{Kind: DeclVar, Span: span, Names: names, TypeExpr: typeExpr, Values: values})
}

// NewType allocates a named type declaration.
func (d *Decls) NewType(name token.Token, typeExpr ExprID, span source.Span) DeclID {
	return d.alloc(Decl{Kind: DeclType, Span: span, Names: []token.Token{name}, TypeExpr: typeExpr})
}

// NewProc allocates a procedure declaration. body is NoStmtID for an extern
// (body-less) procedure, which the collector queues without a body-check pass.
func (d *Decls) NewProc(name token.Token, params []FieldDecl, results []ExprID, variadic bool, body StmtID, span source.Span) DeclID {
	return d.alloc(Decl{
		Kind:     DeclProc,
		Span:     span,
		Names:    []token.Token{name},
		Params:   params,
		Results:  results,
		Variadic: variadic,
		Body:     body,
	})
}

// NewImport allocates an import declaration.
func (d *Decls) NewImport(path token.Token, span source.Span) DeclID {
	return d.alloc(Decl{Kind: DeclImport, Span: span, ImportPath: path})
}
