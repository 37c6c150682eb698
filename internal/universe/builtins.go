// Package universe bootstraps the checker's outermost scope: the built-in
// type names, the true/false/null constants, and the builtin procedure
// table (spec.md §4.4), exactly as the original checker's
// init_universal_scope does before any file is checked.
package universe

// BuiltinID identifies a builtin procedure by id rather than by re-comparing
// its name string on every call, matching spec.md's BuiltinProcedureId
// dispatch table.
type BuiltinID uint32

const (
	BuiltinInvalid BuiltinID = iota
	BuiltinSizeOf
	BuiltinAlignOf
	BuiltinSizeOfVal
	BuiltinAlignOfVal
	BuiltinOffsetOf
	BuiltinOffsetOfVal
	BuiltinStaticAssert
	BuiltinLen
	BuiltinCap
	BuiltinCopy
	BuiltinCopyBytes
	BuiltinPrint
	BuiltinPrintln
)

// ArgKind classifies whether a builtin's argument denotes a type expression
// or a value expression; size_of(T) takes a type, size_of_val(x) takes a
// value, and the checker must dispatch the argument-checking rule
// accordingly instead of always checking it as an ordinary expression.
type ArgKind uint8

const (
	ArgValue ArgKind = iota
	ArgType
)

// Signature describes a builtin procedure's calling convention: its name,
// arity bounds, whether trailing arguments are variadic, and per-argument
// kind. MinArgs == MaxArgs for a fixed-arity builtin; MaxArgs == -1 marks
// an unbounded variadic tail (print/println).
type Signature struct {
	Name     string
	ID       BuiltinID
	MinArgs  int
	MaxArgs  int // -1 means unbounded
	ArgKinds []ArgKind
}

// Table lists every builtin procedure in declaration order; the order
// matters only for deterministic iteration, not for dispatch, which goes by
// BuiltinID (a builtin entity's BuiltinID is matched against Table's ID).
var Table = []Signature{
	{Name: "size_of", ID: BuiltinSizeOf, MinArgs: 1, MaxArgs: 1, ArgKinds: []ArgKind{ArgType}},
	{Name: "align_of", ID: BuiltinAlignOf, MinArgs: 1, MaxArgs: 1, ArgKinds: []ArgKind{ArgType}},
	{Name: "size_of_val", ID: BuiltinSizeOfVal, MinArgs: 1, MaxArgs: 1, ArgKinds: []ArgKind{ArgValue}},
	{Name: "align_of_val", ID: BuiltinAlignOfVal, MinArgs: 1, MaxArgs: 1, ArgKinds: []ArgKind{ArgValue}},
	{Name: "offset_of", ID: BuiltinOffsetOf, MinArgs: 2, MaxArgs: 2, ArgKinds: []ArgKind{ArgType, ArgValue}},
	{Name: "offset_of_val", ID: BuiltinOffsetOfVal, MinArgs: 1, MaxArgs: 1, ArgKinds: []ArgKind{ArgValue}},
	{Name: "static_assert", ID: BuiltinStaticAssert, MinArgs: 1, MaxArgs: 2, ArgKinds: []ArgKind{ArgValue, ArgValue}},
	{Name: "len", ID: BuiltinLen, MinArgs: 1, MaxArgs: 1, ArgKinds: []ArgKind{ArgValue}},
	{Name: "cap", ID: BuiltinCap, MinArgs: 1, MaxArgs: 1, ArgKinds: []ArgKind{ArgValue}},
	{Name: "copy", ID: BuiltinCopy, MinArgs: 2, MaxArgs: 2, ArgKinds: []ArgKind{ArgValue, ArgValue}},
	{Name: "copy_bytes", ID: BuiltinCopyBytes, MinArgs: 3, MaxArgs: 3, ArgKinds: []ArgKind{ArgValue, ArgValue, ArgValue}},
	{Name: "print", ID: BuiltinPrint, MinArgs: 1, MaxArgs: -1, ArgKinds: nil},
	{Name: "println", ID: BuiltinPrintln, MinArgs: 1, MaxArgs: -1, ArgKinds: nil},
}

var byName = func() map[string]Signature {
	m := make(map[string]Signature, len(Table))
	for _, sig := range Table {
		m[sig.Name] = sig
	}
	return m
}()

// Lookup finds a builtin procedure by name.
func Lookup(name string) (Signature, bool) {
	sig, ok := byName[name]
	return sig, ok
}

// ArgKindFor returns the expected ArgKind for argument index i of sig,
// falling back to ArgValue for a variadic tail beyond the declared kinds
// (print/println accept any number of value arguments).
func (sig Signature) ArgKindFor(i int) ArgKind {
	if i < len(sig.ArgKinds) {
		return sig.ArgKinds[i]
	}
	return ArgValue
}
