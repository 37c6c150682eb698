package universe

import (
	"testing"

	"lumen/internal/entity"
	"lumen/internal/types"
)

func TestNewDeclaresPrimitiveTypes(t *testing.T) {
	table := entity.NewTable(entity.Hints{}, nil, nil)
	uni := New(table, types.DefaultSizes())

	for _, name := range []string{"int", "bool", "string", "float64"} {
		id := table.Strings.Intern(name)
		if _, ok := table.CurrentScopeLookup(uni.Scope, id); !ok {
			t.Fatalf("expected %q to be declared in the universe scope", name)
		}
	}
}

func TestNewDeclaresBuiltinProcedures(t *testing.T) {
	table := entity.NewTable(entity.Hints{}, nil, nil)
	uni := New(table, types.DefaultSizes())

	id := table.Strings.Intern("size_of")
	entID, ok := table.CurrentScopeLookup(uni.Scope, id)
	if !ok {
		t.Fatal("expected size_of to be declared")
	}
	ent := table.Entities.Get(entID)
	if ent.Kind != entity.KindBuiltin || ent.BuiltinID != uint32(BuiltinSizeOf) {
		t.Fatalf("size_of entity = %+v, want KindBuiltin/BuiltinSizeOf", ent)
	}
}

func TestTrueFalseAreUntypedBoolConstants(t *testing.T) {
	table := entity.NewTable(entity.Hints{}, nil, nil)
	uni := New(table, types.DefaultSizes())

	id := table.Strings.Intern("true")
	entID, ok := table.CurrentScopeLookup(uni.Scope, id)
	if !ok {
		t.Fatal("expected true to be declared")
	}
	ent := table.Entities.Get(entID)
	if ent.Kind != entity.KindConstant || ent.Type != table.Types.Builtins().UntypedBool {
		t.Fatalf("true entity = %+v, want untyped bool constant", ent)
	}
	if !ent.Value.AsBool() {
		t.Fatal("true constant should carry boolean value true")
	}
}
