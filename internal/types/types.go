// Package types implements the checker's type model: a single interned
// Type descriptor per distinct type (spec.md §3's Type), covering the
// basic types, their untyped counterparts used for constant expressions
// before they commit to a concrete type, and the composite shapes
// (pointer, array, slice, record, procedure, named) spec.md §4 checks
// against.
package types

import "fmt"

// TypeID uniquely identifies a type inside an Interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates every supported shape of type.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Concrete basic kinds.
	KindBool
	KindInt
	KindFloat
	KindRune
	KindString
	KindNilPointer // the type of the `null` literal before it commits

	// Untyped basic kinds: the type of a constant expression that has not
	// yet been forced into a concrete type by its context (spec.md §4.4).
	KindUntypedBool
	KindUntypedInt
	KindUntypedFloat
	KindUntypedRune
	KindUntypedString
	KindUntypedNil

	// Composite kinds.
	KindPointer
	KindArray
	KindSlice
	KindRecord
	KindProcedure
	KindNamed
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindRune:
		return "rune"
	case KindString:
		return "string"
	case KindNilPointer:
		return "nil"
	case KindUntypedBool:
		return "untyped bool"
	case KindUntypedInt:
		return "untyped int"
	case KindUntypedFloat:
		return "untyped float"
	case KindUntypedRune:
		return "untyped rune"
	case KindUntypedString:
		return "untyped string"
	case KindUntypedNil:
		return "untyped nil"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindRecord:
		return "record"
	case KindProcedure:
		return "procedure"
	case KindNamed:
		return "named"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsUntyped reports whether k is one of the untyped basic kinds.
func (k Kind) IsUntyped() bool {
	switch k {
	case KindUntypedBool, KindUntypedInt, KindUntypedFloat, KindUntypedRune, KindUntypedString, KindUntypedNil:
		return true
	default:
		return false
	}
}

// Width records bit width for sized integer/float types; WidthAny means the
// platform/default width (the plain `int`/`uint`/`float` types).
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)

// Signedness distinguishes signed and unsigned integer types.
type Signedness uint8

const (
	Signed Signedness = iota
	Unsigned
)

// ArrayDynamicLength marks a KindArray as a slice-like open length; in
// practice slices use KindSlice and arrays always carry a constant Count,
// but the sentinel is kept for symmetry with the teacher's array model.
const ArrayDynamicLength = ^uint32(0)

// Type is a compact, by-value descriptor for any supported type. As with
// the teacher's model, most fields only apply to a subset of Kind values;
// keeping one struct shape lets the Interner dedup structurally via a
// single map key instead of one table per kind.
type Type struct {
	Kind Kind

	Width Width      // Int/Float: bit width. WidthAny for the default-sized variant.
	Sign  Signedness // Int: signed or unsigned.

	Elem  TypeID // Pointer/Array/Slice: element type.
	Count uint32 // Array: element count.

	Record *RecordInfo // Record: field layout (not part of the structural key; see typeKey).

	Params   []TypeID // Procedure: parameter types.
	Variadic bool     // Procedure: last parameter is variadic.
	Results  []TypeID // Procedure: result types (supports multi-result).

	Name       StringLike // Named: the declared name, for nominal identity and diagnostics.
	Underlying TypeID     // Named: the type it aliases/wraps.
}

// StringLike is the checker's dependency-free stand-in for an interned
// name; internal/sema supplies a source.StringID here in practice, but the
// types package itself must not import internal/source; see DESIGN.md.
type StringLike = uint32

// RecordField is one member of a record type.
type RecordField struct {
	Name StringLike
	Type TypeID
}

// RecordInfo carries the field layout and computed offsets of a record
// type. It is deliberately excluded from the structural typeKey: two record
// literals with identical fields in source order are still distinct types
// (Lumen records are nominal via their Named wrapper, not structural).
type RecordInfo struct {
	Fields  []RecordField
	Offsets []uint64 // Offsets[i] is the byte offset of Fields[i], filled in by Layout.
	Size    uint64
	Align   uint64
}
