package diagfmt

import (
	"sort"

	"lumen/internal/entity"
	"lumen/internal/sema"
	"lumen/internal/source"
)

// SemanticsOutput is everything `lumenc dump` writes about one check run's
// side tables.
type SemanticsOutput struct {
	Scopes      []ScopeJSON      `json:"scopes"`
	Entities    []EntityJSON     `json:"entities"`
	Definitions []DefinitionJSON `json:"definitions"`
	Uses        []UseJSON        `json:"uses"`
	Types       []TypeBindingJSON `json:"types"`
}

type ScopeJSON struct {
	ID     uint32      `json:"id"`
	Kind   string      `json:"kind"`
	Parent uint32      `json:"parent,omitempty"`
	Span   source.Span `json:"span"`
}

type EntityJSON struct {
	ID    uint32      `json:"id"`
	Name  string      `json:"name"`
	Kind  string      `json:"kind"`
	Scope uint32      `json:"scope"`
	Span  source.Span `json:"span"`
	Used  bool        `json:"used"`
}

type DefinitionJSON struct {
	Span     source.Span `json:"span"`
	EntityID uint32      `json:"entity_id"`
}

type UseJSON struct {
	ExprID   uint32 `json:"expr_id"`
	EntityID uint32 `json:"entity_id"`
}

type TypeBindingJSON struct {
	ExprID uint32 `json:"expr_id"`
	TypeID uint32 `json:"type_id"`
}

// BuildSemanticsOutput walks table and c's side tables into the JSON shape
// `lumenc dump` renders. Scopes, entities, uses and types are identified by
// arena index and definitions by the declaring name's span, so a reader can
// cross-reference them against the entities/scopes dumps.
func BuildSemanticsOutput(table *entity.Table, c *sema.Checker) SemanticsOutput {
	out := SemanticsOutput{}

	for i := uint32(1); i <= uint32(table.Scopes.Len()); i++ {
		s := table.Scopes.Get(entity.ScopeID(i))
		if s == nil {
			continue
		}
		out.Scopes = append(out.Scopes, ScopeJSON{
			ID:     i,
			Kind:   s.Kind.String(),
			Parent: uint32(s.Parent),
			Span:   s.Span,
		})
	}

	entities := table.Entities.Data()
	for i, e := range entities {
		out.Entities = append(out.Entities, EntityJSON{
			ID:    uint32(i + 1), // Data omits the sentinel, so element i is entity i+1
			Name:  nameOf(table, e.Name),
			Kind:  entityKindName(e.Kind),
			Scope: uint32(e.Scope),
			Span:  e.Span,
			Used:  e.Used,
		})
	}

	if c != nil {
		for span, ent := range c.Definitions {
			out.Definitions = append(out.Definitions, DefinitionJSON{Span: span, EntityID: uint32(ent)})
		}
		for expr, ent := range c.Uses {
			out.Uses = append(out.Uses, UseJSON{ExprID: uint32(expr), EntityID: uint32(ent)})
		}
		for expr, tv := range c.Types {
			out.Types = append(out.Types, TypeBindingJSON{ExprID: uint32(expr), TypeID: uint32(tv.Type)})
		}
	}

	sort.Slice(out.Entities, func(i, j int) bool { return out.Entities[i].ID < out.Entities[j].ID })
	sort.Slice(out.Scopes, func(i, j int) bool { return out.Scopes[i].ID < out.Scopes[j].ID })
	sort.Slice(out.Uses, func(i, j int) bool { return out.Uses[i].ExprID < out.Uses[j].ExprID })
	sort.Slice(out.Types, func(i, j int) bool { return out.Types[i].ExprID < out.Types[j].ExprID })
	sort.Slice(out.Definitions, func(i, j int) bool {
		if out.Definitions[i].Span.File != out.Definitions[j].Span.File {
			return out.Definitions[i].Span.File < out.Definitions[j].Span.File
		}
		return out.Definitions[i].Span.Start < out.Definitions[j].Span.Start
	})

	return out
}

func nameOf(table *entity.Table, id source.StringID) string {
	if s, ok := table.Strings.Lookup(id); ok {
		return s
	}
	return ""
}

func entityKindName(k entity.Kind) string {
	return k.String()
}
