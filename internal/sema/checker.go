package sema

import (
	"math/big"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/source"
	"lumen/internal/types"
	"lumen/internal/universe"
	"lumen/internal/values"
)

// DeclInfo is recorded for every top-level declaration during collection:
// the entity it declares, the scope it was collected in, and enough of
// the AST to finish checking it once its dependencies are ready
// (spec.md §4.3's DeclarationInfo).
type DeclInfo struct {
	Entity entity.EntityID
	File   ast.FileID
	Decl   ast.DeclID
	Scope  entity.ScopeID

	// Deps accumulates the entities this declaration's initializer/type
	// expression referenced while being type-checked (order.go's
	// noteDependency fills it in). Ordering does not read it back:
	// dependencies are force-checked as they are met.
	Deps map[entity.EntityID]bool

	// bindingIndex is this entity's position among the names on the
	// left-hand side of a DeclValue/DeclVar with multiple names, e.g. the
	// `1` in `a, b :: f()`. Only meaningful when the Decl is DeclValue/DeclVar.
	bindingIndex int
}

// ProcedureInfo is recorded for every procedure declaration queued for a
// deferred body check (spec.md §4.4's "deferred procedure-body checking").
// A DeclProc with Body == ast.NoStmtID (an extern declaration) gets no
// ProcedureInfo entry: order.go's checkProcDecl still resolves its
// signature, and no body check is queued for it.
type ProcedureInfo struct {
	Entity entity.EntityID
	Decl   ast.DeclID
	File   ast.FileID
	Scope  entity.ScopeID // the scope the procedure's parameters live in
	Type   types.TypeID
}

// Checker owns every side table the checker produces for one check run:
// per-expression type/value, per-identifier resolution, the ordered
// declaration graph, and the queue of procedure bodies still to check.
type Checker struct {
	Builder  *ast.Builder
	Table    *entity.Table
	Universe *universe.Universe
	Sizes    types.Sizes
	Reporter diag.Reporter

	// Types/Uses/Definitions mirror spec.md §3's checker side
	// tables: every checked expression's TypeAndValue, every identifier's
	// resolved entity (split between "uses" - reads of an existing
	// declaration - and "definitions" - the declaring occurrence).
	Types       map[ast.ExprID]TypeAndValue
	Uses        map[ast.ExprID]entity.EntityID
	Definitions map[source.Span]entity.EntityID

	// Untyped holds every expression still carrying an untyped basic type;
	// finalize.go drains it once the whole file has been checked.
	Untyped map[ast.ExprID]UntypedEntry

	decls        map[entity.EntityID]*DeclInfo
	declOrder    []entity.EntityID // insertion order, used for deterministic iteration
	pkgScope     entity.ScopeID
	resolveStack []entity.EntityID // entities currently being resolved, innermost last

	procQueue []ProcedureInfo

	// deferDepth counts nested defer statements the statement checker is
	// currently inside; a return inside any depth >= 1 is a hard error
	// (spec.md SPEC_FULL §4.4 Open-Question resolution).
	deferDepth int
}

// NewChecker constructs an empty Checker ready to collect declarations
// against table, whose Blank/Strings/Types were already shared with uni.
func NewChecker(builder *ast.Builder, table *entity.Table, uni *universe.Universe, sizes types.Sizes, reporter diag.Reporter) *Checker {
	return &Checker{
		Builder:     builder,
		Table:       table,
		Universe:    uni,
		Sizes:       sizes,
		Reporter:    reporter,
		Types:       make(map[ast.ExprID]TypeAndValue),
		Uses:        make(map[ast.ExprID]entity.EntityID),
		Definitions: make(map[source.Span]entity.EntityID),
		Untyped:     make(map[ast.ExprID]UntypedEntry),
		decls:       make(map[entity.EntityID]*DeclInfo),
	}
}

// record stores o's projection for expr in the Types side table and, if o
// is still untyped, in the Untyped table as well.
func (c *Checker) record(expr ast.ExprID, o Operand) {
	c.Types[expr] = fromOperand(o)
	if tt, ok := c.Table.Types.Lookup(o.Type); ok && tt.Kind.IsUntyped() {
		c.Untyped[expr] = UntypedEntry{Expr: expr, Type: o.Type, Value: o.Value}
	} else {
		delete(c.Untyped, expr)
	}
}

// use records that expr resolved to ent, and marks ent as read.
func (c *Checker) use(expr ast.ExprID, ent entity.EntityID) {
	c.Uses[expr] = ent
	if e := c.Table.Entities.Get(ent); e != nil {
		e.Used = true
	}
}

// define records span, the declaring occurrence of a name, against the
// entity it introduces (spec.md §6's definitions table, kept distinct from
// Uses which records read occurrences of an already-declared name).
func (c *Checker) define(span source.Span, ent entity.EntityID) {
	c.Definitions[span] = ent
}

// checkRepresentable range-checks a constant operand against the width of
// the concrete integer type it is committing into (spec.md §4.4's commit
// step 1: "range-check the value against T"). AssignableTo only tells us
// the two types share a family; an untyped int is family-compatible with
// every integer type regardless of magnitude, so the width check has to
// happen here once the literal value is in hand. Reports false, having
// already marked op's expression invalid, when the value does not fit.
func (c *Checker) checkRepresentable(span source.Span, op Operand, target types.TypeID) bool {
	if op.Mode != ModeConstant || op.Value.Kind() != values.Int {
		return true
	}
	t, ok := c.Table.Types.Lookup(c.Table.Types.Underlying(target))
	if !ok || t.Kind != types.KindInt {
		return true
	}
	if !fitsInInt(op.Value.AsInt(), t.Width, t.Sign, c.Sizes) {
		c.errorf(diag.SemaConstOutOfRange, span, "constant %s does not fit in %s", op.Value.String(), describeIntType(t))
		c.markInvalid(op.Expr)
		return false
	}
	return true
}

// commitExprTo re-records exprID's operand as committed to target, the
// spec.md §4.4 commit steps 2-3 a declaration's explicit type forces onto
// its still-untyped initializer: not just the initializer's own entry, but
// every untyped subexpression reachable from it, so `1 + 2` assigned to an
// int8 records int8 against the two literals too, not just their sum. A
// subexpression whose untyped kind can't assign to target (e.g. the int
// operands of a comparison committing to bool) is left for Finalize to
// commit to its own default instead.
func (c *Checker) commitExprTo(exprID ast.ExprID, target types.TypeID) {
	entry, ok := c.Untyped[exprID]
	if !ok || !c.Table.Types.AssignableTo(entry.Type, target) {
		return
	}
	tv := c.Types[exprID]
	tv.Type = target
	c.Types[exprID] = tv
	delete(c.Untyped, exprID)

	e := c.Builder.Exprs.Get(exprID)
	if e == nil {
		return
	}
	switch e.Kind {
	case ast.ExprUnary:
		c.commitExprTo(e.X, target)
	case ast.ExprBinary:
		c.commitExprTo(e.X, target)
		c.commitExprTo(e.Y, target)
	}
}

// markInvalid replaces exprID's recorded operand with an invalid one, the
// mark spec.md §8's S5 edge case describes for a constant whose declared
// type cannot represent it.
func (c *Checker) markInvalid(exprID ast.ExprID) {
	if exprID == ast.NoExprID {
		return
	}
	c.Types[exprID] = TypeAndValue{Mode: ModeInvalid}
	delete(c.Untyped, exprID)
}

// fitsInInt reports whether v lies within the representable range of an
// integer type of the given width (WidthAny meaning the platform word
// size) and signedness.
func fitsInInt(v *big.Int, width types.Width, sign types.Signedness, sizes types.Sizes) bool {
	bits := uint(width)
	if width == types.WidthAny {
		bits = uint(sizes.WordSize) * 8
	}
	if bits == 0 {
		return true
	}
	if sign == types.Unsigned {
		if v.Sign() < 0 {
			return false
		}
		return uint(v.BitLen()) <= bits
	}
	max := new(big.Int).Lsh(big.NewInt(1), bits-1)
	maxInclusive := new(big.Int).Sub(max, big.NewInt(1))
	min := new(big.Int).Neg(max)
	return v.Cmp(min) >= 0 && v.Cmp(maxInclusive) <= 0
}

// describeIntType renders an integer Type's name the way universe.go
// declared it (e.g. "uint8"), for use in diagnostics.
func describeIntType(t types.Type) string {
	name := "int"
	if t.Sign == types.Unsigned {
		name = "uint"
	}
	switch t.Width {
	case types.Width8:
		return name + "8"
	case types.Width16:
		return name + "16"
	case types.Width32:
		return name + "32"
	case types.Width64:
		return name + "64"
	default:
		return name
	}
}

// PackageScope returns the shared top-level scope every checked file's
// declarations were collected into.
func (c *Checker) PackageScope() entity.ScopeID { return c.pkgScope }

// CheckFiles runs the full pipeline — Collect, Order, Bodies, Finalize —
// over files, collecting them in the order given.
func (c *Checker) CheckFiles(files []ast.FileID) {
	for _, f := range files {
		c.Collect(f)
	}
	c.Order()
	c.CheckBodies()
	c.Finalize()
}
