package entity

import (
	"testing"

	"lumen/internal/source"
)

func TestDeclareAndLookupAcrossScopes(t *testing.T) {
	strs := source.NewInterner()
	tbl := NewTable(Hints{}, strs, nil)
	pkg := tbl.Open(ScopePackage, NoScopeID, source.Span{})
	block := tbl.Open(ScopeBlock, pkg, source.Span{})

	x := strs.Intern("x")
	id, _, ok := tbl.Declare(pkg, x, Entity{Kind: KindVariable})
	if !ok {
		t.Fatal("declaring x in package scope should succeed")
	}

	got, foundIn, ok := tbl.Lookup(block, x)
	if !ok || got != id || foundIn != pkg {
		t.Fatalf("lookup from nested block should find x in the package scope, got id=%v scope=%v ok=%v", got, foundIn, ok)
	}
}

func TestRedeclareInSameScopeFails(t *testing.T) {
	strs := source.NewInterner()
	tbl := NewTable(Hints{}, strs, nil)
	pkg := tbl.Open(ScopePackage, NoScopeID, source.Span{})
	x := strs.Intern("x")

	if _, _, ok := tbl.Declare(pkg, x, Entity{Kind: KindVariable}); !ok {
		t.Fatal("first declaration should succeed")
	}
	_, existing, ok := tbl.Declare(pkg, x, Entity{Kind: KindVariable})
	if ok {
		t.Fatal("second declaration of x in the same scope should fail")
	}
	if !existing.IsValid() {
		t.Fatal("failed declaration should report the existing entity")
	}
}

func TestBlankIdentifierNeverCollides(t *testing.T) {
	strs := source.NewInterner()
	tbl := NewTable(Hints{}, strs, nil)
	pkg := tbl.Open(ScopePackage, NoScopeID, source.Span{})
	blank := strs.Intern("_")

	for i := 0; i < 3; i++ {
		if _, _, ok := tbl.Declare(pkg, blank, Entity{Kind: KindVariable}); !ok {
			t.Fatalf("declaring _ should always succeed, failed on iteration %d", i)
		}
	}
}

func TestCurrentScopeLookupDoesNotWalkParents(t *testing.T) {
	strs := source.NewInterner()
	tbl := NewTable(Hints{}, strs, nil)
	pkg := tbl.Open(ScopePackage, NoScopeID, source.Span{})
	block := tbl.Open(ScopeBlock, pkg, source.Span{})
	x := strs.Intern("x")

	tbl.Declare(pkg, x, Entity{Kind: KindVariable})
	if _, ok := tbl.CurrentScopeLookup(block, x); ok {
		t.Fatal("CurrentScopeLookup must not see ancestor declarations")
	}
}
