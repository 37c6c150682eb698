package diag

import (
	"testing"

	"lumen/internal/source"
)

func TestBagAddRespectsCapacity(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SemaRedeclared, source.Span{}, "one")) {
		t.Fatal("first Add should succeed")
	}
	if !b.Add(NewError(SemaRedeclared, source.Span{}, "two")) {
		t.Fatal("second Add should succeed")
	}
	if b.Add(NewError(SemaRedeclared, source.Span{}, "three")) {
		t.Fatal("third Add should be dropped at capacity")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBagHasErrorsWarnings(t *testing.T) {
	b := NewBag(4)
	b.Add(New(SevWarning, SemaUnusedVariable, source.Span{}, "unused"))
	if b.HasErrors() {
		t.Fatal("HasErrors() should be false with only a warning")
	}
	if !b.HasWarnings() {
		t.Fatal("HasWarnings() should be true")
	}
	b.Add(New(SevError, SemaTypeMismatch, source.Span{}, "bad type"))
	if !b.HasErrors() {
		t.Fatal("HasErrors() should be true after adding an error")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevError, SemaRedeclared, source.Span{File: 1, Start: 10, End: 12}, "b"))
	b.Add(New(SevWarning, SemaUnusedVariable, source.Span{File: 1, Start: 2, End: 4}, "a"))
	b.Add(New(SevError, SemaTypeMismatch, source.Span{File: 0, Start: 0, End: 1}, "c"))

	b.Sort()
	items := b.Items()
	if items[0].Message != "c" || items[1].Message != "a" || items[2].Message != "b" {
		t.Fatalf("unexpected sort order: %+v", items)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	sp := source.Span{File: 1, Start: 0, End: 1}
	b.Add(New(SevError, SemaRedeclared, sp, "dup"))
	b.Add(New(SevError, SemaRedeclared, sp, "dup"))
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("Len() after Dedup() = %d, want 1", b.Len())
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := NewBag(1)
	a.Add(New(SevError, SemaRedeclared, source.Span{}, "x"))

	b := NewBag(1)
	b.Add(New(SevError, SemaRedeclared, source.Span{}, "y"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len() after Merge() = %d, want 2", a.Len())
	}
	if a.Cap() < 2 {
		t.Fatalf("Cap() after Merge() = %d, want >= 2", a.Cap())
	}
}
