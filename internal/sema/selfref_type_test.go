package sema

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
)

// Node :: record{ next: ^Node }
//
// A type may legally hold a pointer to itself; only a genuine
// non-pointer cycle (two types that need each other's full layout to
// compute their own) is an error.
func TestRecordFieldPointingToItsOwnTypeIsNotACycle(t *testing.T) {
	f := newFixture()
	nodeRef := f.b.Exprs.NewIdent(ident("Node"))
	nextType := f.b.Exprs.NewPointerType(nodeRef, source.Span{})
	field := ast.FieldDecl{Name: ident("next"), Type: nextType}
	recordType := f.b.Exprs.NewRecordType([]ast.FieldDecl{field}, source.Span{})
	decl := f.b.Decls.NewType(ident("Node"), recordType, source.Span{})

	file := f.b.NewFile("main.lumen")
	f.b.Files.SetDecls(file, []ast.DeclID{decl})

	f.c.CheckFiles([]ast.FileID{file})

	for _, d := range f.bag.Items() {
		if d.Code == diag.SemaInitCycle {
			t.Fatalf("a pointer field should not be flagged as an initialization cycle: %+v", f.bag.Items())
		}
	}
	node := f.lookupEntity(t, "Node")
	if node.Type == 0 {
		t.Fatalf("Node should have resolved to a type")
	}
	underlying := f.table.Types.MustLookup(f.table.Types.Underlying(node.Type))
	if underlying.Record == nil || len(underlying.Record.Fields) != 1 {
		t.Fatalf("Node should have resolved to a one-field record, got %+v", underlying)
	}
	field0 := underlying.Record.Fields[0]
	if field0.Type == 0 {
		t.Fatalf("Node.next should have a resolved pointer type")
	}
	elemType := f.table.Types.MustLookup(field0.Type)
	if elemType.Elem != node.Type {
		t.Fatalf("Node.next should point back to Node itself, got elem type id %v want %v", elemType.Elem, node.Type)
	}
}
