package ast

// File is one source file's top-level declarations, in source order. The
// declaration collector (internal/sema) walks Decls once per file during
// collection; the ordering and body-checking passes work from the records
// collection made, not from Decls.
type File struct {
	ID    FileID
	Path  string
	Decls []DeclID
}

// Files is the arena of every File in a program.
type Files struct {
	Arena *Arena[File]
}

// NewFiles returns an empty file arena.
func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

// New allocates a file with the given path; its Decls are filled in after
// the fact since a file's own FileID is needed to construct its node spans.
func (f *Files) New(path string) FileID {
	return FileID(f.Arena.Allocate(File{Path: path}))
}

// Get returns the File for id, or nil if id is invalid.
func (f *Files) Get(id FileID) *File { return f.Arena.Get(uint32(id)) }

// SetDecls records the top-level declarations belonging to file id.
func (f *Files) SetDecls(id FileID, decls []DeclID) {
	file := f.Get(id)
	if file == nil {
		return
	}
	file.ID = id
	file.Decls = decls
}
