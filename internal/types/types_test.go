package types

import "testing"

func TestInternDedupsStructuralTypes(t *testing.T) {
	in := NewInterner()
	a := in.MakePointer(in.Builtins().Int)
	b := in.MakePointer(in.Builtins().Int)
	if a != b {
		t.Fatalf("expected structural dedup of ^int, got %d and %d", a, b)
	}
}

func TestRecordsAreNominal(t *testing.T) {
	in := NewInterner()
	fields := []RecordField{{Name: 1, Type: in.Builtins().Int}}
	a := in.NewRecord(&RecordInfo{Fields: fields})
	b := in.NewRecord(&RecordInfo{Fields: fields})
	if a == b {
		t.Fatal("two separately declared records with identical fields must not share a TypeID")
	}
	if in.Identical(a, b) {
		t.Fatal("two separately declared records must not be Identical")
	}
}

func TestLayoutPadsForAlignment(t *testing.T) {
	in := NewInterner()
	u8 := in.Builtins().Uint8
	i64 := in.Builtins().Int64
	rec := in.NewRecord(&RecordInfo{Fields: []RecordField{
		{Name: 1, Type: u8},
		{Name: 2, Type: i64},
	}})
	sizes := DefaultSizes()
	off0, ok := in.OffsetOf(rec, 0, sizes)
	if !ok || off0 != 0 {
		t.Fatalf("field 0 offset = %d, want 0", off0)
	}
	off1, ok := in.OffsetOf(rec, 1, sizes)
	if !ok || off1 != 8 {
		t.Fatalf("field 1 offset = %d, want 8 (padded past the uint8)", off1)
	}
	if got := in.SizeOf(rec, sizes); got != 16 {
		t.Fatalf("record size = %d, want 16", got)
	}
}

func TestUntypedAssignableByFamily(t *testing.T) {
	in := NewInterner()
	if !in.AssignableTo(in.Builtins().UntypedInt, in.Builtins().Int32) {
		t.Fatal("untyped int constant should be assignable to int32")
	}
	if in.AssignableTo(in.Builtins().UntypedInt, in.Builtins().String) {
		t.Fatal("untyped int constant should not be assignable to string")
	}
}

func TestComparableExcludesRecordsAndProcedures(t *testing.T) {
	in := NewInterner()
	rec := in.NewRecord(&RecordInfo{})
	if in.Comparable(rec) {
		t.Fatal("record types should not be directly comparable")
	}
	if !in.Comparable(in.Builtins().Int) {
		t.Fatal("int should be comparable")
	}
}

func TestNamedUnderlying(t *testing.T) {
	in := NewInterner()
	named := in.NewNamed(1, in.Builtins().Int)
	if in.Underlying(named) != in.Builtins().Int {
		t.Fatal("named type should resolve to its underlying int")
	}
}
