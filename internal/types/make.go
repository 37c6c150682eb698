package types

// MakePointer interns `^T`.
func (in *Interner) MakePointer(elem TypeID) TypeID {
	return in.Intern(Type{Kind: KindPointer, Elem: elem})
}

// MakeArray interns `[N]T`.
func (in *Interner) MakeArray(elem TypeID, count uint32) TypeID {
	return in.Intern(Type{Kind: KindArray, Elem: elem, Count: count})
}

// MakeSlice interns `[]T`.
func (in *Interner) MakeSlice(elem TypeID) TypeID {
	return in.Intern(Type{Kind: KindSlice, Elem: elem})
}

// NewRecord allocates a fresh, uninterned record type with the given
// fields; offsets, size and alignment are filled in later by Layout, which
// SizeOf, AlignOf and OffsetOf call on demand. Every call yields a distinct
// TypeID even for structurally identical fields, matching Lumen's nominal
// record identity.
func (in *Interner) NewRecord(info *RecordInfo) TypeID {
	return in.internRaw(Type{Kind: KindRecord, Record: info})
}

// NewProcedure allocates a fresh procedure type.
func (in *Interner) NewProcedure(params []TypeID, variadic bool, results []TypeID) TypeID {
	return in.internRaw(Type{Kind: KindProcedure, Params: params, Variadic: variadic, Results: results})
}

// NewNamed allocates a fresh named type wrapping underlying.
func (in *Interner) NewNamed(name StringLike, underlying TypeID) TypeID {
	return in.internRaw(Type{Kind: KindNamed, Name: name, Underlying: underlying})
}

// SetUnderlying patches a previously-allocated Named type's Underlying
// field. Used to mint a type's identity before its underlying shape is
// fully resolved, so a field elsewhere in that same shape can hold a
// pointer back to it (e.g. `Node :: record{ next: ^Node }`) without
// waiting on a value that isn't ready yet.
func (in *Interner) SetUnderlying(id TypeID, underlying TypeID) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindNamed {
		return
	}
	t.Underlying = underlying
	in.types[id] = t
}

// Underlying follows Named wrappers until it reaches a non-named type,
// mirroring spec.md's rule that operators and conversions act on a type's
// underlying shape, not its declared name.
func (in *Interner) Underlying(id TypeID) TypeID {
	for {
		t, ok := in.Lookup(id)
		if !ok || t.Kind != KindNamed {
			return id
		}
		id = t.Underlying
	}
}
