package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/source"
)

// TestUntypedExpressionCommitsAtFinalize exercises an untyped constant
// expression that is never assigned to anything with a concrete type -
// finalize.go is the only thing left to commit it to its default.
func TestUntypedExpressionCommitsAtFinalize(t *testing.T) {
	f := newFixture()

	one := f.b.Exprs.NewLiteral(intLit("1"))
	two := f.b.Exprs.NewLiteral(intLit("2"))
	sum := f.b.Exprs.NewBinary(ast.OpAdd, one, two, source.Span{})
	exprStmt := f.b.Stmts.NewExprStmt(sum, source.Span{})
	body := f.b.Stmts.NewBlock([]ast.StmtID{exprStmt}, source.Span{})

	proc := f.b.Decls.NewProc(ident("main"), nil, nil, false, body, source.Span{})
	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{proc})

	f.c.CheckFiles([]ast.FileID{file})

	if f.bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", f.bag.Items())
	}
	tv, ok := f.c.Types[sum]
	if !ok {
		t.Fatalf("expected a recorded type for the sum expression")
	}
	if tv.Type != f.table.Types.Builtins().Int {
		t.Fatalf("expected the untyped sum to commit to int, got %v", tv.Type)
	}
	if len(f.c.Untyped) != 0 {
		t.Fatalf("expected Untyped to be drained after Finalize, still has %d entries", len(f.c.Untyped))
	}
}
