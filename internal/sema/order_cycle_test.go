package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/token"
)

func TestInitializationCycleIsDetected(t *testing.T) {
	f := newFixture()
	// a :: b
	// b :: a
	bRef := f.b.Exprs.NewIdent(ident("b"))
	declA := f.b.Decls.NewValue([]token.Token{ident("a")}, ast.NoExprID, []ast.ExprID{bRef}, source.Span{})

	aRef := f.b.Exprs.NewIdent(ident("a"))
	declB := f.b.Decls.NewValue([]token.Token{ident("b")}, ast.NoExprID, []ast.ExprID{aRef}, source.Span{})

	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{declA, declB})

	f.c.CheckFiles([]ast.FileID{file})

	if !f.bag.HasErrors() {
		t.Fatalf("expected a cycle error, got none: %+v", f.bag.Items())
	}
	found := false
	for _, d := range f.bag.Items() {
		if d.Code == diag.SemaInitCycle {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %v among diagnostics, got %+v", diag.SemaInitCycle, f.bag.Items())
	}
}
