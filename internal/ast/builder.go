package ast

// Builder aggregates the four node arenas into the single handle that both
// a (hypothetical) parser and the test suite use to construct a program.
// Nothing in internal/sema allocates nodes itself; it only ever calls
// Get on IDs a Builder produced, so the arenas stay append-only.
type Builder struct {
	Exprs *Exprs
	Stmts *Stmts
	Decls *Decls
	Files *Files
}

// NewBuilder returns an empty Builder with modest preallocated headroom.
func NewBuilder() *Builder {
	return &Builder{
		Exprs: NewExprs(64),
		Stmts: NewStmts(64),
		Decls: NewDecls(32),
		Files: NewFiles(4),
	}
}

// NewFile starts a new file and returns its id; call Files.SetDecls once its
// top-level declarations have been built.
func (b *Builder) NewFile(path string) FileID {
	return b.Files.New(path)
}
