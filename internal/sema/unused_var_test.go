package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/token"
)

func TestUnusedLocalVariableWarns(t *testing.T) {
	f := newFixture()

	one := f.b.Exprs.NewLiteral(intLit("1"))
	varDecl := f.b.Stmts.NewVarDecl([]token.Token{ident("unread")}, ast.NoExprID, []ast.ExprID{one}, source.Span{})
	body := f.b.Stmts.NewBlock([]ast.StmtID{varDecl}, source.Span{})

	proc := f.b.Decls.NewProc(ident("main"), nil, nil, false, body, source.Span{})
	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{proc})

	f.c.CheckFiles([]ast.FileID{file})

	if f.bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", f.bag.Items())
	}
	if !f.bag.HasWarnings() {
		t.Fatalf("expected an unused-variable warning, got none")
	}
	found := false
	for _, d := range f.bag.Items() {
		if d.Code == diag.SemaUnusedVariable {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %v among diagnostics, got %+v", diag.SemaUnusedVariable, f.bag.Items())
	}
}
