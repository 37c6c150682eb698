// Package token defines the minimal lexical vocabulary the checker needs:
// just enough to carry an identifier's text and source span into an Entity.
// A real lexer/parser front end is out of scope for the checker (spec.md
// §1); this package exists so internal/ast and internal/entity have a
// concrete Token to embed instead of ad hoc (string, Span) pairs.
package token

import "lumen/internal/source"

// Kind classifies a token. Only the handful of kinds the checker's AST
// actually needs are modeled.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Ident
	IntLit
	FloatLit
	StringLit
	RuneLit
	BoolLit
	NullLit
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case IntLit:
		return "int"
	case FloatLit:
		return "float"
	case StringLit:
		return "string"
	case RuneLit:
		return "rune"
	case BoolLit:
		return "bool"
	case NullLit:
		return "null"
	default:
		return "invalid"
	}
}

// Token is a lexical unit: its kind, its source location, and its text
// (for identifiers and literals, the text is how the checker recovers the
// name/literal value from the interner-free AST layer).
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token denotes a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, RuneLit, BoolLit, NullLit:
		return true
	default:
		return false
	}
}
