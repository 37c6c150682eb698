package universe

import (
	"sync"

	"lumen/internal/entity"
	"lumen/internal/source"
	"lumen/internal/types"
	"lumen/internal/values"
)

// Universe is the bootstrapped outermost scope: the type names, the
// true/false/null constants and the builtin procedures every file sees
// before its own declarations are collected.
type Universe struct {
	Scope entity.ScopeID
	Sizes types.Sizes
}

var (
	once     sync.Once
	instance *Universe
)

// Bootstrap returns the shared Universe, building it into table on the
// first call. Bootstrap is idempotent: every later call returns that first
// Universe unchanged, whatever table it is given, matching
// init_universal_scope's single-initialization contract.
func Bootstrap(table *entity.Table, sizes types.Sizes) *Universe {
	once.Do(func() {
		instance = build(table, sizes)
	})
	return instance
}

// New builds an independent Universe without the package-level memoization,
// for tests or drivers that need more than one isolated check run in the
// same process.
func New(table *entity.Table, sizes types.Sizes) *Universe {
	return build(table, sizes)
}

func build(table *entity.Table, sizes types.Sizes) *Universe {
	scope := table.Open(entity.ScopeUniverse, entity.NoScopeID, source.Span{})
	b := table.Types.Builtins()

	declareType := func(name string, id types.TypeID) {
		sid := table.Strings.Intern(name)
		table.Declare(scope, sid, entity.Entity{Kind: entity.KindTypeName, Type: id})
	}
	declareType("bool", b.Bool)
	declareType("int", b.Int)
	declareType("int8", b.Int8)
	declareType("int16", b.Int16)
	declareType("int32", b.Int32)
	declareType("int64", b.Int64)
	declareType("uint", b.Uint)
	declareType("uint8", b.Uint8)
	declareType("uint16", b.Uint16)
	declareType("uint32", b.Uint32)
	declareType("uint64", b.Uint64)
	declareType("float", b.Float)
	declareType("float32", b.Float32)
	declareType("float64", b.Float64)
	declareType("rune", b.Rune)
	declareType("string", b.String)

	trueID := table.Strings.Intern("true")
	table.Declare(scope, trueID, entity.Entity{Kind: entity.KindConstant, Type: b.UntypedBool, Value: values.NewBool(true)})
	falseID := table.Strings.Intern("false")
	table.Declare(scope, falseID, entity.Entity{Kind: entity.KindConstant, Type: b.UntypedBool, Value: values.NewBool(false)})
	nullID := table.Strings.Intern("null")
	table.Declare(scope, nullID, entity.Entity{Kind: entity.KindNil, Type: b.UntypedNil, Value: values.NewNullPointer()})

	for _, sig := range Table {
		nameID := table.Strings.Intern(sig.Name)
		table.Declare(scope, nameID, entity.Entity{Kind: entity.KindBuiltin, BuiltinID: uint32(sig.ID)})
	}

	return &Universe{Scope: scope, Sizes: sizes}
}
