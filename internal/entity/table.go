package entity

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/source"
	"lumen/internal/types"
)

// Hints sizes the underlying arenas ahead of a check run.
type Hints struct{ Scopes, Entities uint }

// Table aggregates the scope and entity arenas plus the shared string
// interner, types interner and the "_" blank identifier's StringID, so
// every operation that needs to special-case blank bindings has it in hand.
type Table struct {
	Scopes   *Scopes
	Entities *Entities
	Strings  *source.Interner
	Types    *types.Interner
	Blank    source.StringID
}

// NewTable builds a fresh table. strings and typeIn are reused verbatim if
// non-nil so a driver can share one string/type interner across files.
func NewTable(h Hints, strings *source.Interner, typeIn *types.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("entity: scope capacity overflow: %w", err))
	}
	entCap, err := safecast.Conv[uint32](h.Entities)
	if err != nil {
		panic(fmt.Errorf("entity: entity capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	if typeIn == nil {
		typeIn = types.NewInterner()
	}
	return &Table{
		Scopes:   NewScopes(scopeCap),
		Entities: NewEntities(entCap),
		Strings:  strings,
		Types:    typeIn,
		Blank:    strings.Intern("_"),
	}
}

// Open allocates a new child scope of parent.
func (t *Table) Open(kind ScopeKind, parent ScopeID, span source.Span) ScopeID {
	return t.Scopes.New(kind, parent, span)
}

// Insert declares name in scope as entity id, returning the entity already
// occupying the name (if any) and whether the insertion succeeded. The
// blank identifier always succeeds without occupying a slot, matching
// spec.md §4.3's treatment of "_" as write-only.
func (t *Table) Insert(scope ScopeID, name source.StringID, id EntityID) (existing EntityID, inserted bool) {
	s := t.Scopes.Get(scope)
	if s == nil {
		return NoEntityID, false
	}
	return s.Insert(name, id, t.Blank)
}

// Lookup searches scope and its ancestors for name, stopping at the first
// match. It returns the scope the match was found in along with the entity.
func (t *Table) Lookup(scope ScopeID, name source.StringID) (EntityID, ScopeID, bool) {
	for cur := scope; cur.IsValid(); {
		s := t.Scopes.Get(cur)
		if s == nil {
			break
		}
		if id, ok := s.Lookup(name); ok {
			return id, cur, true
		}
		cur = s.Parent
	}
	return NoEntityID, NoScopeID, false
}

// CurrentScopeLookup searches only scope itself, not its ancestors; used to
// detect redeclaration within a single scope (spec.md §4.3 edge case).
func (t *Table) CurrentScopeLookup(scope ScopeID, name source.StringID) (EntityID, bool) {
	s := t.Scopes.Get(scope)
	if s == nil {
		return NoEntityID, false
	}
	return s.Lookup(name)
}

// Declare allocates a new entity and inserts it into scope in one step.
func (t *Table) Declare(scope ScopeID, name source.StringID, ent Entity) (id EntityID, existing EntityID, ok bool) {
	ent.Name = name
	ent.Scope = scope
	id = t.Entities.New(ent)
	existing, ok = t.Insert(scope, name, id)
	return id, existing, ok
}
