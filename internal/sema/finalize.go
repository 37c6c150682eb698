package sema

import (
	"fmt"
	"sort"

	"lumen/internal/ast"
)

// Finalize commits every expression still carrying an untyped basic type to
// its default concrete type (spec.md §4.4's final untyped-constant commit),
// the same way an unused constant expression statement still needs a
// concrete type by the time checking finishes. Entries are drained in
// ExprID order for determinism, since Untyped is a map and Go gives no
// iteration order guarantee.
func (c *Checker) Finalize() {
	ids := make([]ast.ExprID, 0, len(c.Untyped))
	for id := range c.Untyped {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		entry := c.Untyped[id]
		committed := c.defaultType(entry.Type)
		tv := c.Types[id]
		tv.Type = committed
		c.Types[id] = tv
		delete(c.Untyped, id)
	}

	if len(c.Untyped) != 0 {
		panic(fmt.Sprintf("sema: %d expression(s) left untyped after finalize, this is a checker bug", len(c.Untyped)))
	}
}
