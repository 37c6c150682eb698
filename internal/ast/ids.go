// Package ast is the checker's input contract: a minimal, arena-indexed
// syntax tree covering exactly the node shapes spec.md §6 names (identifier,
// variable declaration, type declaration, procedure declaration, literal,
// call, import declaration) plus the statement forms the expression/
// statement checker (spec.md §4.4) needs to walk a procedure body. It
// stands in for a real lexer/parser front end, which spec.md places out of
// scope; internal/ast instead exposes a Builder so tests can construct
// programs directly.
package ast

// FileID, DeclID, ExprID and StmtID are dense arena indices, never
// pointers, per spec.md §9's guidance that a rewrite should key side tables
// by a stable node id rather than by address.
type (
	FileID uint32
	DeclID uint32
	ExprID uint32
	StmtID uint32
)

const (
	NoFileID FileID = 0
	NoDeclID DeclID = 0
	NoExprID ExprID = 0
	NoStmtID StmtID = 0
)

func (id FileID) IsValid() bool { return id != NoFileID }
func (id DeclID) IsValid() bool { return id != NoDeclID }
func (id ExprID) IsValid() bool { return id != NoExprID }
func (id StmtID) IsValid() bool { return id != NoStmtID }
