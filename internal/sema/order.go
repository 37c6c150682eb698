package sema

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/types"
)

// Order walks every collected declaration in collection order, finishing
// each one (type expression, initializer, or procedure signature) via
// checkEntityDecl. Forward references are resolved lazily: checking one
// declaration's expressions may recursively finish another declaration
// through forceCheckDependency, so by the time Order returns every
// declaration's State is Resolved. A cycle among declarations is caught by
// the grey/white/black marks on Entity.State (spec.md §4.3).
func (c *Checker) Order() {
	for _, ent := range c.declOrder {
		c.checkEntityDecl(ent)
	}
}

// forceCheckDependency finishes ent's declaration immediately if it has not
// been started yet, so that the caller (typically an identifier reference)
// can read its final Type/Value. This is the same "force-check-dependency"
// step spec.md §4.3 describes as the mechanism by which forward references
// are resolved without a separate topological sort pass.
func (c *Checker) forceCheckDependency(ent entity.EntityID) {
	c.noteDependency(ent)
	if _, isTopLevel := c.decls[ent]; isTopLevel {
		c.checkEntityDecl(ent)
	}
}

// noteDependency records that the declaration currently being resolved
// (the top of resolveStack, if any) refers to ent, in that declaration's
// DeclInfo.Deps. Nothing reads the set back: Order() force-resolves
// dependencies immediately, and a cycle diagnostic names only the
// re-entered declaration.
func (c *Checker) noteDependency(ent entity.EntityID) {
	if len(c.resolveStack) == 0 {
		return
	}
	current := c.resolveStack[len(c.resolveStack)-1]
	if info, ok := c.decls[current]; ok {
		info.Deps[ent] = true
	}
}

func (c *Checker) checkEntityDecl(ent entity.EntityID) {
	info, ok := c.decls[ent]
	if !ok {
		return
	}
	e := c.Table.Entities.Get(ent)
	if e == nil {
		return
	}
	switch e.State {
	case entity.StateResolved:
		return
	case entity.StateResolving:
		c.errorf(diag.SemaInitCycle, e.Span, "initialization cycle detected")
		e.State = entity.StateResolved
		e.Type = types.NoTypeID
		return
	}

	e.State = entity.StateResolving
	c.resolveStack = append(c.resolveStack, ent)
	d := c.Builder.Decls.Get(info.Decl)
	if d != nil {
		switch e.Kind {
		case entity.KindConstant, entity.KindVariable:
			c.checkBindingDecl(info, e, d)
		case entity.KindTypeName:
			c.checkTypeDecl(info, e, d)
		case entity.KindProcedure:
			c.checkProcDecl(info, e, d)
		}
	}
	c.resolveStack = c.resolveStack[:len(c.resolveStack)-1]
	e.State = entity.StateResolved
}

func (c *Checker) checkBindingDecl(info *DeclInfo, e *entity.Entity, d *ast.Decl) {
	declaredType := types.NoTypeID
	if d.TypeExpr != ast.NoExprID {
		declaredType = c.checkTypeExpr(info.Scope, d.TypeExpr)
	}

	var valueType types.TypeID
	var op Operand
	if info.bindingIndex < len(d.Values) {
		op = c.checkExpr(info.Scope, d.Values[info.bindingIndex])
		valueType = op.Type
	} else if len(d.Values) == 1 {
		// Multi-name binding fed by a single (presumably multi-result) call;
		// every name beyond the first takes ModeValue with no further
		// static guarantee here, since the checker has no result-arity
		// table to destructure against without a richer call-result model.
		op = Operand{Mode: ModeValue}
	}

	finalType := declaredType
	if finalType == types.NoTypeID {
		finalType = c.defaultType(valueType)
	} else if op.IsValid() && valueType != types.NoTypeID {
		if !c.Table.Types.AssignableTo(valueType, finalType) {
			c.errorf(diag.SemaTypeMismatch, d.Span, "initializer does not match declared type")
		} else if !c.checkRepresentable(d.Span, op, finalType) {
			finalType = types.NoTypeID
		} else {
			c.commitExprTo(op.Expr, finalType)
		}
	}

	e.Type = finalType
	if e.Kind == entity.KindConstant && op.Mode == ModeConstant && finalType != types.NoTypeID {
		e.Value = op.Value
	}
}

// defaultType maps an untyped type to its default concrete type, the same
// commit spec.md §4.4 performs whenever an untyped constant reaches a
// context (here, a declaration with no explicit type) that forces it to
// stop being untyped.
func (c *Checker) defaultType(id types.TypeID) types.TypeID {
	t, ok := c.Table.Types.Lookup(id)
	if !ok {
		return types.NoTypeID
	}
	b := c.Table.Types.Builtins()
	switch t.Kind {
	case types.KindUntypedBool:
		return b.Bool
	case types.KindUntypedInt:
		return b.Int
	case types.KindUntypedFloat:
		return b.Float
	case types.KindUntypedRune:
		return b.Rune
	case types.KindUntypedString:
		return b.String
	case types.KindUntypedNil:
		return b.Nil
	default:
		return id
	}
}

func (c *Checker) checkTypeDecl(info *DeclInfo, e *entity.Entity, d *ast.Decl) {
	// The named type is minted before its underlying shape is resolved so a
	// `^Name` reference anywhere inside that shape (resolveTypeIdentThroughPointer)
	// has a Type to read instead of forcing this same declaration recursively.
	nameID := c.Table.Strings.Intern(d.Names[0].Text)
	e.Type = c.Table.Types.NewNamed(types.StringLike(nameID), types.NoTypeID)
	underlying := c.checkTypeExpr(info.Scope, d.TypeExpr)
	c.Table.Types.SetUnderlying(e.Type, underlying)
}

func (c *Checker) checkProcDecl(info *DeclInfo, e *entity.Entity, d *ast.Decl) {
	procScope := c.Table.Open(entity.ScopeProcedure, info.Scope, d.Span)

	params := make([]types.TypeID, 0, len(d.Params))
	for _, p := range d.Params {
		pt := c.checkTypeExpr(info.Scope, p.Type)
		params = append(params, pt)
		if p.Name.Text != "" {
			nameID := c.Table.Strings.Intern(p.Name.Text)
			paramEnt, _, ok := c.Table.Declare(procScope, nameID, entity.Entity{Kind: entity.KindVariable, Type: pt, Span: p.Name.Span})
			if ok {
				c.define(p.Name.Span, paramEnt)
			}
		}
	}
	results := make([]types.TypeID, 0, len(d.Results))
	for _, r := range d.Results {
		results = append(results, c.checkTypeExpr(info.Scope, r))
	}

	e.Type = c.Table.Types.NewProcedure(params, d.Variadic, results)

	if d.Body == ast.NoStmtID {
		// Body-less extern declaration: queued for nothing further, call
		// sites still check normally against the signature above.
		return
	}
	c.procQueue = append(c.procQueue, ProcedureInfo{
		Entity: info.Entity,
		Decl:   info.Decl,
		File:   info.File,
		Scope:  procScope,
		Type:   e.Type,
	})
}
