package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/source"
	"lumen/internal/token"
)

func namedAt(name string, start, end uint32) token.Token {
	return token.Token{Kind: token.Ident, Text: name, Span: source.Span{Start: start, End: end}}
}

// Every declaring occurrence - a top-level constant and a local variable -
// should show up in Checker.Definitions keyed by its own span, not just in
// Uses (which only covers read occurrences of an already-declared name).
func TestDeclaringOccurrencesAreRecordedAsDefinitions(t *testing.T) {
	f := newFixture()

	xName := namedAt("x", 1, 2)
	lit := f.b.Exprs.NewLiteral(intLit("1"))
	declX := f.b.Decls.NewValue([]token.Token{xName}, ast.NoExprID, []ast.ExprID{lit}, source.Span{})

	yName := namedAt("y", 10, 11)
	two := f.b.Exprs.NewLiteral(intLit("2"))
	varDecl := f.b.Stmts.NewVarDecl([]token.Token{yName}, ast.NoExprID, []ast.ExprID{two}, source.Span{})
	body := f.b.Stmts.NewBlock([]ast.StmtID{varDecl}, source.Span{})
	proc := f.b.Decls.NewProc(ident("main"), nil, nil, false, body, source.Span{})

	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{declX, proc})

	f.c.CheckFiles([]ast.FileID{file})

	if f.bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", f.bag.Items())
	}

	xEnt, ok := f.c.Definitions[xName.Span]
	if !ok {
		t.Fatalf("expected x's declaring span to be recorded in Definitions, got %+v", f.c.Definitions)
	}
	if f.table.Entities.Get(xEnt).Kind.String() != "constant" {
		t.Fatalf("x's definition should point at a constant entity, got %v", f.table.Entities.Get(xEnt).Kind)
	}

	yEnt, ok := f.c.Definitions[yName.Span]
	if !ok {
		t.Fatalf("expected y's declaring span to be recorded in Definitions, got %+v", f.c.Definitions)
	}
	if f.table.Entities.Get(yEnt).Kind.String() != "variable" {
		t.Fatalf("y's definition should point at a variable entity, got %v", f.table.Entities.Get(yEnt).Kind)
	}
}
