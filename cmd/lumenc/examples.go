package main

import (
	"sort"

	"lumen/internal/ast"
	"lumen/internal/source"
	"lumen/internal/token"
)

// Lumen has no lexer or parser (spec.md keeps source text out of the
// checker's scope entirely); lumenc demonstrates and exercises the checker
// against a small registry of programs built directly through ast.Builder,
// the same way the checker's own test suite does.
type program struct {
	name        string
	description string
	build       func(b *ast.Builder) []ast.FileID
}

var programRegistry = []program{
	{
		name:        "constants",
		description: "a handful of top-level constant declarations, one forward reference",
		build:       buildConstantsProgram,
	},
	{
		name:        "cycle",
		description: "two constants that depend on each other, triggering an initialization cycle",
		build:       buildCycleProgram,
	},
	{
		name:        "procedure",
		description: "a procedure with parameters, a local variable, and a return statement",
		build:       buildProcedureProgram,
	},
}

func ident(name string) token.Token { return token.Token{Kind: token.Ident, Text: name} }
func intLit(text string) token.Token { return token.Token{Kind: token.IntLit, Text: text} }

func lookupProgram(name string) (program, bool) {
	for _, p := range programRegistry {
		if p.name == name {
			return p, true
		}
	}
	return program{}, false
}

func listProgramNames() []string {
	names := make([]string, 0, len(programRegistry))
	for _, p := range programRegistry {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

func describeProgram(name string) string {
	if p, ok := lookupProgram(name); ok {
		return p.description
	}
	return ""
}

func buildConstantsProgram(b *ast.Builder) []ast.FileID {
	// area :: width * width
	// width :: 4
	width := b.Exprs.NewLiteral(intLit("4"))
	declWidth := b.Decls.NewValue([]token.Token{ident("width")}, ast.NoExprID, []ast.ExprID{width}, source.Span{})

	widthRef := b.Exprs.NewIdent(ident("width"))
	area := b.Exprs.NewBinary(ast.OpMul, widthRef, widthRef, source.Span{})
	declArea := b.Decls.NewValue([]token.Token{ident("area")}, ast.NoExprID, []ast.ExprID{area}, source.Span{})

	file := b.NewFile("constants.lumen")
	b.Files.SetDecls(file, []ast.DeclID{declArea, declWidth})
	return []ast.FileID{file}
}

func buildCycleProgram(b *ast.Builder) []ast.FileID {
	bRef := b.Exprs.NewIdent(ident("b"))
	declA := b.Decls.NewValue([]token.Token{ident("a")}, ast.NoExprID, []ast.ExprID{bRef}, source.Span{})
	aRef := b.Exprs.NewIdent(ident("a"))
	declB := b.Decls.NewValue([]token.Token{ident("b")}, ast.NoExprID, []ast.ExprID{aRef}, source.Span{})

	file := b.NewFile("cycle.lumen")
	b.Files.SetDecls(file, []ast.DeclID{declA, declB})
	return []ast.FileID{file}
}

func buildProcedureProgram(b *ast.Builder) []ast.FileID {
	// add :: proc(x: int, y: int) -> (int) {
	//   sum := x + y
	//   return sum
	// }
	intType := b.Exprs.NewIdent(ident("int"))
	xParam := ast.FieldDecl{Name: ident("x"), Type: intType}
	intType2 := b.Exprs.NewIdent(ident("int"))
	yParam := ast.FieldDecl{Name: ident("y"), Type: intType2}
	resultType := b.Exprs.NewIdent(ident("int"))

	xRef := b.Exprs.NewIdent(ident("x"))
	yRef := b.Exprs.NewIdent(ident("y"))
	sum := b.Exprs.NewBinary(ast.OpAdd, xRef, yRef, source.Span{})
	localDecl := b.Stmts.NewVarDecl([]token.Token{ident("sum")}, ast.NoExprID, []ast.ExprID{sum}, source.Span{})

	sumRef := b.Exprs.NewIdent(ident("sum"))
	ret := b.Stmts.NewReturn([]ast.ExprID{sumRef}, source.Span{})

	body := b.Stmts.NewBlock([]ast.StmtID{localDecl, ret}, source.Span{})

	proc := b.Decls.NewProc(ident("add"), []ast.FieldDecl{xParam, yParam}, []ast.ExprID{resultType}, false, body, source.Span{})

	file := b.NewFile("procedure.lumen")
	b.Files.SetDecls(file, []ast.DeclID{proc})
	return []ast.FileID{file}
}

// filePaths maps each file ID to the name it was built with, for progress
// reporting; Lumen's builder doesn't retain this mapping
// itself because ast.File already carries Path.
func filePaths(b *ast.Builder, files []ast.FileID) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		if file := b.Files.Get(f); file != nil {
			paths[i] = file.Path
		}
	}
	return paths
}

