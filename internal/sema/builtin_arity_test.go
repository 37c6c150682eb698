package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
)

func TestBuiltinCallArityMismatch(t *testing.T) {
	f := newFixture()

	callee := f.b.Exprs.NewIdent(ident("size_of"))
	call := f.b.Exprs.NewCall(callee, nil, source.Span{})
	exprStmt := f.b.Stmts.NewExprStmt(call, source.Span{})
	body := f.b.Stmts.NewBlock([]ast.StmtID{exprStmt}, source.Span{})

	proc := f.b.Decls.NewProc(ident("main"), nil, nil, false, body, source.Span{})
	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{proc})

	f.c.CheckFiles([]ast.FileID{file})

	if !f.bag.HasErrors() {
		t.Fatalf("expected an arity error, got none")
	}
	found := false
	for _, d := range f.bag.Items() {
		if d.Code == diag.SemaBuiltinArity {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %v among diagnostics, got %+v", diag.SemaBuiltinArity, f.bag.Items())
	}
}
