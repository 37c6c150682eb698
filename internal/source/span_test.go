package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	want := Span{File: 1, Start: 2, End: 8}
	if got != want {
		t.Fatalf("Cover() = %+v, want %+v", got, want)
	}
}

func TestSpanCoverDifferentFiles(t *testing.T) {
	a := Span{File: 1, Start: 0, End: 4}
	b := Span{File: 2, Start: 0, End: 4}
	if got := a.Cover(b); got != a {
		t.Fatalf("Cover() across files = %+v, want %+v unchanged", got, a)
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 3}
	if !s.Empty() {
		t.Fatal("expected Empty() == true")
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.lum", []byte("abc\ndef\nghi"))

	start, end := fs.Resolve(Span{File: id, Start: 4, End: 7})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Fatalf("start = %+v, want line 2 col 1", start)
	}
	if end != (LineCol{Line: 2, Col: 4}) {
		t.Fatalf("end = %+v, want line 2 col 4", end)
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.lum", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Fatalf("GetLine(2) = %q, want %q", got, "second")
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("GetLine(3) = %q, want %q", got, "third")
	}
	if got := f.GetLine(99); got != "" {
		t.Fatalf("GetLine(99) = %q, want empty", got)
	}
}
