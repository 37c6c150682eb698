package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/source"
	"lumen/internal/token"
	"lumen/internal/types"
	"lumen/internal/universe"
)

// fixture bundles everything a test needs to build a tiny program by hand
// and run it through the full Collect/Order/Bodies/Finalize pipeline.
type fixture struct {
	b     *ast.Builder
	table *entity.Table
	uni   *universe.Universe
	bag   *diag.Bag
	c     *Checker
}

func newFixture() *fixture {
	b := ast.NewBuilder()
	table := entity.NewTable(entity.Hints{}, nil, nil)
	uni := universe.New(table, types.DefaultSizes())
	bag := diag.NewBag(64)
	c := NewChecker(b, table, uni, types.DefaultSizes(), diag.BagReporter{Bag: bag})
	return &fixture{b: b, table: table, uni: uni, bag: bag, c: c}
}

func ident(name string) token.Token {
	return token.Token{Kind: token.Ident, Text: name}
}

func intLit(text string) token.Token {
	return token.Token{Kind: token.IntLit, Text: text}
}

func (f *fixture) lookupEntity(t *testing.T, name string) *entity.Entity {
	t.Helper()
	nameID := f.table.Strings.Intern(name)
	id, _, ok := f.table.Lookup(f.c.PackageScope(), nameID)
	if !ok {
		t.Fatalf("expected %q to be declared", name)
	}
	return f.table.Entities.Get(id)
}

func TestConstantDeclarationCommitsDefaultType(t *testing.T) {
	f := newFixture()
	lit := f.b.Exprs.NewLiteral(intLit("1"))
	decl := f.b.Decls.NewValue([]token.Token{ident("x")}, ast.NoExprID, []ast.ExprID{lit}, source.Span{})
	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{decl})

	f.c.CheckFiles([]ast.FileID{file})

	if f.bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", f.bag.Items())
	}
	x := f.lookupEntity(t, "x")
	if x.Type != f.table.Types.Builtins().Int {
		t.Fatalf("x should commit to int, got type id %v", x.Type)
	}
	if x.Value.AsInt() == nil || x.Value.AsInt().Int64() != 1 {
		t.Fatalf("x should carry constant value 1, got %v", x.Value)
	}
}

func TestExplicitTypeOverridesDefault(t *testing.T) {
	f := newFixture()
	lit := f.b.Exprs.NewLiteral(intLit("5"))
	typeExpr := f.b.Exprs.NewIdent(ident("int8"))
	decl := f.b.Decls.NewValue([]token.Token{ident("x")}, typeExpr, []ast.ExprID{lit}, source.Span{})
	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{decl})

	f.c.CheckFiles([]ast.FileID{file})

	if f.bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", f.bag.Items())
	}
	x := f.lookupEntity(t, "x")
	if x.Type != f.table.Types.Builtins().Int8 {
		t.Fatalf("x should commit to int8, got type id %v", x.Type)
	}
	if tv := f.c.Types[lit]; tv.Type != f.table.Types.Builtins().Int8 {
		t.Fatalf("the literal's own Types entry should also carry int8, got type id %v", tv.Type)
	}
}

func TestForwardReferenceBetweenTopLevelDeclarations(t *testing.T) {
	f := newFixture()
	// y :: x + 1
	// x :: 2
	xRef := f.b.Exprs.NewIdent(ident("x"))
	one := f.b.Exprs.NewLiteral(intLit("1"))
	sum := f.b.Exprs.NewBinary(ast.OpAdd, xRef, one, source.Span{})
	declY := f.b.Decls.NewValue([]token.Token{ident("y")}, ast.NoExprID, []ast.ExprID{sum}, source.Span{})

	two := f.b.Exprs.NewLiteral(intLit("2"))
	declX := f.b.Decls.NewValue([]token.Token{ident("x")}, ast.NoExprID, []ast.ExprID{two}, source.Span{})

	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{declY, declX})

	f.c.CheckFiles([]ast.FileID{file})

	if f.bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", f.bag.Items())
	}
	y := f.lookupEntity(t, "y")
	if y.Value.AsInt() == nil || y.Value.AsInt().Int64() != 3 {
		t.Fatalf("y should fold to 3, got %v", y.Value)
	}
}
