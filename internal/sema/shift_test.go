package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/token"
)

// y :: 1 << -1
func TestShiftByNegativeConstantIsRejected(t *testing.T) {
	f := newFixture()
	one := f.b.Exprs.NewLiteral(intLit("1"))
	negOne := f.b.Exprs.NewLiteral(intLit("-1"))
	shl := f.b.Exprs.NewBinary(ast.OpShl, one, negOne, source.Span{})
	decl := f.b.Decls.NewValue([]token.Token{ident("y")}, ast.NoExprID, []ast.ExprID{shl}, source.Span{})
	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{decl})

	f.c.CheckFiles([]ast.FileID{file})

	var found bool
	for _, d := range f.bag.Items() {
		if d.Code == diag.SemaNegativeShift {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %v among diagnostics, got %+v", diag.SemaNegativeShift, f.bag.Items())
	}
}

// x : uint8 = 1
// y :: x + 300
func TestConstantCommitInBinaryExprIsRangeChecked(t *testing.T) {
	f := newFixture()
	one := f.b.Exprs.NewLiteral(intLit("1"))
	typeExpr := f.b.Exprs.NewIdent(ident("uint8"))
	xDecl := f.b.Decls.NewVar([]token.Token{ident("x")}, typeExpr, []ast.ExprID{one}, source.Span{})

	xRef := f.b.Exprs.NewIdent(ident("x"))
	threeHundred := f.b.Exprs.NewLiteral(intLit("300"))
	sum := f.b.Exprs.NewBinary(ast.OpAdd, xRef, threeHundred, source.Span{})
	yDecl := f.b.Decls.NewValue([]token.Token{ident("y")}, ast.NoExprID, []ast.ExprID{sum}, source.Span{})

	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{xDecl, yDecl})

	f.c.CheckFiles([]ast.FileID{file})

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
