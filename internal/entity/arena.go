package entity

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/source"
)

// Scopes is a compact, 1-based arena of every Scope allocated for a check
// run; index 0 is reserved so ScopeID's zero value means "no scope".
type Scopes struct {
	data []Scope
}

// NewScopes returns an arena with capacity elements of headroom preallocated.
func NewScopes(capacity uint32) *Scopes {
	if capacity == 0 {
		capacity = 16
	}
	return &Scopes{data: make([]Scope, 1, capacity+1)}
}

// New allocates a scope under parent and links it into the parent's
// intrusive child list.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, span source.Span) ScopeID {
	n, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("entity: scope arena overflow: %w", err))
	}
	id := ScopeID(n)
	s.data = append(s.data, Scope{Kind: kind, Parent: parent, Span: span})
	if parent.IsValid() {
		if p := s.Get(parent); p != nil {
			if !p.FirstChild.IsValid() {
				p.FirstChild = id
			} else if last := s.Get(p.LastChild); last != nil {
				last.NextSibl = id
			}
			p.LastChild = id
		}
	}
	return id
}

// Get returns the scope for id, or nil if id is invalid.
func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports the number of allocated scopes, excluding the sentinel.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Entities is a compact, 1-based arena of every Entity allocated for a
// check run.
type Entities struct {
	data []Entity
}

// NewEntities returns an arena with capacity elements of headroom preallocated.
func NewEntities(capacity uint32) *Entities {
	if capacity == 0 {
		capacity = 64
	}
	return &Entities{data: make([]Entity, 1, capacity+1)}
}

// New allocates an entity and returns its ID.
func (e *Entities) New(ent Entity) EntityID {
	n, err := safecast.Conv[uint32](len(e.data))
	if err != nil {
		panic(fmt.Errorf("entity: entity arena overflow: %w", err))
	}
	id := EntityID(n)
	e.data = append(e.data, ent)
	return id
}

// Get returns the entity for id, or nil if id is invalid.
func (e *Entities) Get(id EntityID) *Entity {
	if !id.IsValid() || int(id) >= len(e.data) {
		return nil
	}
	return &e.data[id]
}

// Len reports the number of allocated entities, excluding the sentinel.
func (e *Entities) Len() int { return len(e.data) - 1 }

// Data exposes every allocated entity, in allocation order, excluding the
// sentinel, so element i is entity ID i+1; internal/diagfmt's semantics
// dump uses this to list every allocated entity.
func (e *Entities) Data() []Entity {
	if len(e.data) <= 1 {
		return nil
	}
	return e.data[1:]
}
