// Package sema implements the checker itself: declaration collection,
// dependency ordering with cycle detection, and the expression/statement
// checker that walks procedure bodies and top-level initializers
// (spec.md §4). Side tables here are keyed by ast IDs, entity IDs and (for
// Definitions) source spans, never by pointer, matching the arena discipline internal/ast and
// internal/entity establish.
package sema

import (
	"lumen/internal/ast"
	"lumen/internal/entity"
	"lumen/internal/types"
	"lumen/internal/values"
)

// AddressingMode classifies what kind of thing an expression denotes once
// checked: a variable, a constant, a value, a type, or no usable value at
// all. The checker consults this before allowing an expression into a
// position that requires, say, an addressable operand.
type AddressingMode uint8

const (
	ModeInvalid    AddressingMode = iota
	ModeNoValue                   // e.g. a bare call to a procedure with no results
	ModeValue                     // an ordinary rvalue
	ModeVariable                  // an addressable lvalue
	ModeConstant                  // a compile-time constant (Value is populated)
	ModeType                      // the expression denotes a type, not a value
	ModeBuiltin                   // the expression denotes an unapplied builtin procedure
	ModeProcedure                 // the expression denotes an unapplied procedure
)

// Operand is the result of checking a single expression: its addressing
// mode, type, and (for constants) exact value. This mirrors the checker's
// central Operand/TypeAndValue record.
type Operand struct {
	Mode  AddressingMode
	Type  types.TypeID
	Value values.Value
	Expr  ast.ExprID
}

// IsValid reports whether o denotes a usable result, as opposed to one
// the checker gave up on after already reporting a diagnostic.
func (o Operand) IsValid() bool { return o.Mode != ModeInvalid }

// Addressable reports whether o may appear on the left of `&` or as an
// assignment target.
func (o Operand) Addressable() bool { return o.Mode == ModeVariable }

// TypeAndValue is the side-table entry recorded for every checked
// expression (spec.md §3's TypeAndValue), independent of the Operand used
// while checking - once checking finishes, only this projection survives
// for tools consuming the result (diagfmt, callers of the driver).
type TypeAndValue struct {
	Mode  AddressingMode
	Type  types.TypeID
	Value values.Value
}

func fromOperand(o Operand) TypeAndValue {
	return TypeAndValue{Mode: o.Mode, Type: o.Type, Value: o.Value}
}

// UntypedEntry records an expression whose type is still one of the
// untyped basic kinds; finalize.go drains this table once every
// expression's final committed type is known (spec.md §4.4).
type UntypedEntry struct {
	Expr   ast.ExprID
	Type   types.TypeID
	Value  values.Value
	Entity entity.EntityID // the constant entity this untyped value originated from, if any
}
