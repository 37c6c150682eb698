package types

// Identical reports whether a and b denote the same type. It never looks
// through a Named wrapper: a named type is identical only to itself, not to
// another named type nor to its own underlying type (AssignableTo covers
// the named/underlying and untyped cases).
func (in *Interner) Identical(a, b TypeID) bool {
	if a == b {
		return true
	}
	ta, ok1 := in.Lookup(a)
	tb, ok2 := in.Lookup(b)
	if !ok1 || !ok2 {
		return false
	}
	if ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case KindInt, KindFloat:
		return ta.Width == tb.Width && ta.Sign == tb.Sign
	case KindPointer, KindSlice:
		return in.Identical(ta.Elem, tb.Elem)
	case KindArray:
		return ta.Count == tb.Count && in.Identical(ta.Elem, tb.Elem)
	case KindRecord:
		return ta.Record == tb.Record // nominal: same allocation only
	case KindProcedure:
		return in.sameTypeList(ta.Params, tb.Params) &&
			ta.Variadic == tb.Variadic &&
			in.sameTypeList(ta.Results, tb.Results)
	case KindNamed:
		return false // distinct declarations are never identical, even with the same name text
	default:
		return true
	}
}

func (in *Interner) sameTypeList(a, b []TypeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !in.Identical(a[i], b[i]) {
			return false
		}
	}
	return true
}

// AssignableTo reports whether a value of type from may be assigned to, or
// passed where, a value of type to is expected. An untyped constant is
// assignable whenever its family matches to's family; this is deliberately
// permissive here, since the exact representability check (does this
// specific constant value fit) is internal/sema's job once it has the
// value in hand, not the type system's.
func (in *Interner) AssignableTo(from, to TypeID) bool {
	if in.Identical(from, to) {
		return true
	}
	ft, ok1 := in.Lookup(from)
	if !ok1 {
		return false
	}
	if ft.Kind.IsUntyped() {
		return in.Family(from)&in.Family(to) != 0
	}
	// A named type is assignable to/from its own underlying type.
	if in.Underlying(from) == in.Underlying(to) {
		tt, ok2 := in.Lookup(to)
		if ok2 && (ft.Kind == KindNamed) != (tt.Kind == KindNamed) {
			return true
		}
	}
	return false
}
