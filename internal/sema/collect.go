package sema

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/source"
	"lumen/internal/token"
)

// Collect walks every top-level declaration in file, declares its name(s)
// in the package scope, and records a DeclInfo so order.go can finish
// checking it later. Collection never evaluates an initializer or type
// expression; it only establishes that the name exists, so that a later
// declaration may forward-reference an earlier one and vice versa
// (spec.md §4.3).
func (c *Checker) Collect(file ast.FileID) {
	f := c.Builder.Files.Get(file)
	if f == nil {
		return
	}
	pkgScope := c.packageScope()
	for _, declID := range f.Decls {
		c.collectOne(file, pkgScope, declID)
	}
}

// packageScope returns (creating on first use) the single package-level
// scope every file's top-level declarations share, parented under the
// universe scope so unqualified references to built-in types resolve.
func (c *Checker) packageScope() entity.ScopeID {
	if c.pkgScope.IsValid() {
		return c.pkgScope
	}
	c.pkgScope = c.Table.Open(entity.ScopePackage, c.Universe.Scope, source.Span{})
	return c.pkgScope
}

func (c *Checker) collectOne(file ast.FileID, scope entity.ScopeID, declID ast.DeclID) {
	d := c.Builder.Decls.Get(declID)
	if d == nil {
		return
	}
	switch d.Kind {
	case ast.DeclValue, ast.DeclVar:
		c.collectBinding(file, scope, declID, d)
	case ast.DeclType:
		c.collectType(file, scope, declID, d)
	case ast.DeclProc:
		c.collectProc(file, scope, declID, d)
	case ast.DeclImport:
		// Import resolution is a driver/project concern (spec.md §6); the
		// checker records nothing for it beyond letting it occupy a slot.
	case ast.DeclBad:
		// Already reported by whatever produced the malformed node.
	}
}

func (c *Checker) collectBinding(file ast.FileID, scope entity.ScopeID, declID ast.DeclID, d *ast.Decl) {
	if len(d.Names) > len(d.Values) {
		// A single multi-result call may cover the remaining names, so this
		// shape is accepted here. Nothing later checks the name count
		// against the call's result count: order.go gives each name without
		// its own initializer the declared type, or no type if there is none.
	} else if len(d.Names) < len(d.Values) {
		c.errorf(diag.SemaExtraInitExpr, d.Span, "too many initializer expressions for %d name(s)", len(d.Names))
	}
	if d.TypeExpr == ast.NoExprID && len(d.Values) == 0 {
		c.errorf(diag.SemaMissingTypeOrInit, d.Span, "declaration needs a type or an initializer")
	}

	kind := entity.KindVariable
	if d.Kind == ast.DeclValue {
		kind = entity.KindConstant
	}
	for i, name := range d.Names {
		c.declareOne(file, scope, declID, name, kind, i)
	}
}

func (c *Checker) declareOne(file ast.FileID, scope entity.ScopeID, declID ast.DeclID, name token.Token, kind entity.Kind, bindingIndex int) {
	nameID := c.Table.Strings.Intern(name.Text)
	ent, existing, ok := c.Table.Declare(scope, nameID, entity.Entity{Kind: kind, Span: name.Span})
	if !ok {
		c.reportRedeclare(name, existing)
		return
	}
	info := &DeclInfo{Entity: ent, File: file, Decl: declID, Scope: scope, Deps: map[entity.EntityID]bool{}, bindingIndex: bindingIndex}
	c.addDecl(ent, info)
	c.define(name.Span, ent)
}

func (c *Checker) collectType(file ast.FileID, scope entity.ScopeID, declID ast.DeclID, d *ast.Decl) {
	if len(d.Names) == 0 {
		return
	}
	c.declareOne(file, scope, declID, d.Names[0], entity.KindTypeName, 0)
}

func (c *Checker) collectProc(file ast.FileID, scope entity.ScopeID, declID ast.DeclID, d *ast.Decl) {
	if len(d.Names) == 0 {
		return
	}
	c.declareOne(file, scope, declID, d.Names[0], entity.KindProcedure, 0)
}

func (c *Checker) addDecl(ent entity.EntityID, info *DeclInfo) {
	c.decls[ent] = info
	c.declOrder = append(c.declOrder, ent)
}

// reportRedeclare emits a diagnostic for a name collision within a single
// scope; the blank identifier never reaches here since Table.Declare
// always succeeds for it.
func (c *Checker) reportRedeclare(name token.Token, existing entity.EntityID) {
	msg := "redeclared name"
	if e := c.Table.Entities.Get(existing); e != nil {
		msg = "redeclared name, first declared as " + e.Kind.String()
	}
	c.errorf(diag.SemaRedeclared, name.Span, "%s: %q", msg, name.Text)
}
