package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins collects the TypeIDs for every primitive and untyped-basic type,
// seeded once by NewInterner so the checker never re-derives them.
type Builtins struct {
	Invalid TypeID

	Bool   TypeID
	Int    TypeID
	Int8   TypeID
	Int16  TypeID
	Int32  TypeID
	Int64  TypeID
	Uint   TypeID
	Uint8  TypeID
	Uint16 TypeID
	Uint32 TypeID
	Uint64 TypeID
	Float  TypeID
	Float32 TypeID
	Float64 TypeID
	Rune   TypeID
	String TypeID
	Nil    TypeID

	UntypedBool   TypeID
	UntypedInt    TypeID
	UntypedFloat  TypeID
	UntypedRune   TypeID
	UntypedString TypeID
	UntypedNil    TypeID
}

// Interner provides stable TypeIDs, deduping structural (basic, pointer,
// array, slice) types by value and giving composite (record, procedure,
// named) types fresh identity on every Intern call, since two separately
// declared records with identical fields are still distinct types.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with every primitive and
// untyped-basic type.
func NewInterner() *Interner {
	in := &Interner{index: make(map[typeKey]TypeID, 64)}
	in.internRaw(Type{Kind: KindInvalid}) // reserve slot 0 == NoTypeID

	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(Type{Kind: KindInt, Width: WidthAny, Sign: Signed})
	in.builtins.Int8 = in.Intern(Type{Kind: KindInt, Width: Width8, Sign: Signed})
	in.builtins.Int16 = in.Intern(Type{Kind: KindInt, Width: Width16, Sign: Signed})
	in.builtins.Int32 = in.Intern(Type{Kind: KindInt, Width: Width32, Sign: Signed})
	in.builtins.Int64 = in.Intern(Type{Kind: KindInt, Width: Width64, Sign: Signed})
	in.builtins.Uint = in.Intern(Type{Kind: KindInt, Width: WidthAny, Sign: Unsigned})
	in.builtins.Uint8 = in.Intern(Type{Kind: KindInt, Width: Width8, Sign: Unsigned})
	in.builtins.Uint16 = in.Intern(Type{Kind: KindInt, Width: Width16, Sign: Unsigned})
	in.builtins.Uint32 = in.Intern(Type{Kind: KindInt, Width: Width32, Sign: Unsigned})
	in.builtins.Uint64 = in.Intern(Type{Kind: KindInt, Width: Width64, Sign: Unsigned})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat, Width: WidthAny})
	in.builtins.Float32 = in.Intern(Type{Kind: KindFloat, Width: Width32})
	in.builtins.Float64 = in.Intern(Type{Kind: KindFloat, Width: Width64})
	in.builtins.Rune = in.Intern(Type{Kind: KindRune})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Nil = in.Intern(Type{Kind: KindNilPointer})

	in.builtins.UntypedBool = in.Intern(Type{Kind: KindUntypedBool})
	in.builtins.UntypedInt = in.Intern(Type{Kind: KindUntypedInt})
	in.builtins.UntypedFloat = in.Intern(Type{Kind: KindUntypedFloat})
	in.builtins.UntypedRune = in.Intern(Type{Kind: KindUntypedRune})
	in.builtins.UntypedString = in.Intern(Type{Kind: KindUntypedString})
	in.builtins.UntypedNil = in.Intern(Type{Kind: KindUntypedNil})
	return in
}

// Builtins returns the TypeIDs for every primitive type.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern ensures t has a stable TypeID, reusing an existing one for
// structurally identical basic/pointer/array/slice types.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if isStructuralKind(t.Kind) {
		key := structuralKey(t)
		if id, ok := in.index[key]; ok {
			return id
		}
	}
	return in.internRaw(t)
}

func isStructuralKind(k Kind) bool {
	switch k {
	case KindRecord, KindProcedure, KindNamed:
		return false
	default:
		return true
	}
}

func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: type table overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	if isStructuralKind(t.Kind) {
		in.index[structuralKey(t)] = id
	}
	return id
}

// Lookup returns the descriptor for id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid; used where the checker has already
// validated id and a lookup failure would indicate an internal bug.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// Len reports how many types have been interned, including the sentinel.
func (in *Interner) Len() int { return len(in.types) }

type typeKey struct {
	Kind     Kind
	Width    Width
	Sign     Signedness
	Elem     TypeID
	Count    uint32
	Variadic bool
}

func structuralKey(t Type) typeKey {
	return typeKey{Kind: t.Kind, Width: t.Width, Sign: t.Sign, Elem: t.Elem, Count: t.Count, Variadic: t.Variadic}
}
