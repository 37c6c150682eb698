package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/token"
)

// x : uint8 : 300
func TestExplicitTypeCommitRangeChecksTheValue(t *testing.T) {
	f := newFixture()
	lit := f.b.Exprs.NewLiteral(intLit("300"))
	typeExpr := f.b.Exprs.NewIdent(ident("uint8"))
	decl := f.b.Decls.NewValue([]token.Token{ident("x")}, typeExpr, []ast.ExprID{lit}, source.Span{})
	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{decl})

	f.c.CheckFiles([]ast.FileID{file})

	if !f.bag.HasErrors() {
		t.Fatalf("expected an error, got none: %+v", f.bag.Items())
	}
	var found bool
	for _, d := range f.bag.Items() {
		if d.Code == diag.SemaConstOutOfRange {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %v among diagnostics, got %+v", diag.SemaConstOutOfRange, f.bag.Items())
	}
}
