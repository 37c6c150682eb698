package entity

import (
	"lumen/internal/source"
	"lumen/internal/types"
	"lumen/internal/values"
)

// Kind classifies what an Entity denotes, mirroring the checker's
// Constant/Variable/TypeName/Procedure/Builtin/ImportName/Nil distinction
// (spec.md §3).
type Kind uint8

const (
	KindInvalid Kind = iota
	KindConstant
	KindVariable
	KindTypeName
	KindProcedure
	KindBuiltin
	KindImportName
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindTypeName:
		return "type name"
	case KindProcedure:
		return "procedure"
	case KindBuiltin:
		return "builtin"
	case KindImportName:
		return "import name"
	case KindNil:
		return "nil"
	default:
		return "invalid"
	}
}

// State tracks an entity's position in the declaration-ordering algorithm
// (spec.md §4.3's white/grey/black marks used for dependency-cycle detection).
type State uint8

const (
	StateUnresolved State = iota // white: not yet visited
	StateResolving               // grey: currently being resolved, a revisit is a cycle
	StateResolved                // black: fully checked
)

// Entity is one declared name's checker-side record: its kind, declaring
// scope, type, and (for constants) compile-time value, plus the stamps the
// declaration orderer and body checker need.
type Entity struct {
	Kind  Kind
	Name  source.StringID
	Span  source.Span
	Scope ScopeID // the scope the entity is visible in, not the scope it introduces

	Type  types.TypeID
	Value values.Value // only meaningful for KindConstant

	State State

	// BuiltinID identifies which builtin procedure this is; only meaningful
	// for KindBuiltin, dispatched by id rather than by re-comparing Name.
	BuiltinID uint32

	// Order is a slot for the entity's declaration-order stamp (spec.md
	// §4.3). The checker neither sets nor reads it; sema.Checker keeps
	// declaration order in its own declOrder list.
	Order uint32

	// Used is set the first time a resolved reference reads this entity;
	// the unused-variable sweep reports any local Variable entity left false.
	Used bool
}
