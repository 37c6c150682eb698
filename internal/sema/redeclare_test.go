package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/token"
)

func TestTopLevelRedeclarationIsRejected(t *testing.T) {
	f := newFixture()

	one := f.b.Exprs.NewLiteral(intLit("1"))
	two := f.b.Exprs.NewLiteral(intLit("2"))
	declX1 := f.b.Decls.NewValue([]token.Token{ident("x")}, ast.NoExprID, []ast.ExprID{one}, source.Span{})
	declX2 := f.b.Decls.NewValue([]token.Token{ident("x")}, ast.NoExprID, []ast.ExprID{two}, source.Span{})

	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{declX1, declX2})

	f.c.CheckFiles([]ast.FileID{file})

	if !f.bag.HasErrors() {
		t.Fatalf("expected a redeclaration error, got none")
	}
	found := false
	for _, d := range f.bag.Items() {
		if d.Code == diag.SemaRedeclared {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %v among diagnostics, got %+v", diag.SemaRedeclared, f.bag.Items())
	}
}
