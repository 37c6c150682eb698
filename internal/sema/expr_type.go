package sema

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/types"
)

// checkTypeExpr resolves an expression occurring in a type-expression
// position to a TypeID, handling identifiers (named types), pointer/array/
// slice type constructors, procedure types, and record types. It never
// produces an untyped basic type, the type system's commit step has no
// meaning for a type-expression position.
func (c *Checker) checkTypeExpr(scope entity.ScopeID, exprID ast.ExprID) types.TypeID {
	if exprID == ast.NoExprID {
		return types.NoTypeID
	}
	e := c.Builder.Exprs.Get(exprID)
	if e == nil {
		return types.NoTypeID
	}
	switch e.Kind {
	case ast.ExprIdent:
		return c.resolveTypeIdent(scope, exprID, e)
	case ast.ExprPointerType:
		elem := c.checkPointerElemType(scope, e.X)
		return c.Table.Types.MakePointer(elem)
	case ast.ExprArrayType:
		elem := c.checkTypeExpr(scope, e.X)
		count := c.constArrayLength(scope, e.Len)
		return c.Table.Types.MakeArray(elem, count)
	case ast.ExprSliceType:
		elem := c.checkTypeExpr(scope, e.X)
		return c.Table.Types.MakeSlice(elem)
	case ast.ExprProcType:
		return c.checkProcType(scope, e)
	case ast.ExprRecordType:
		return c.checkRecordType(scope, e)
	default:
		c.errorf(diag.SemaBadTopLevelForm, e.Span, "expression is not a type")
		return types.NoTypeID
	}
}

// checkPointerElemType resolves the pointee of a `^T` type expression. A
// bare identifier is resolved through resolveTypeIdentThroughPointer, which
// doesn't force-check a type name still being resolved (spec.md §4.3, §9:
// a type may legally contain a pointer to itself); any other pointee
// expression goes through the normal checkTypeExpr path.
func (c *Checker) checkPointerElemType(scope entity.ScopeID, exprID ast.ExprID) types.TypeID {
	e := c.Builder.Exprs.Get(exprID)
	if e != nil && e.Kind == ast.ExprIdent {
		return c.resolveTypeIdentThroughPointer(scope, exprID, e)
	}
	return c.checkTypeExpr(scope, exprID)
}

// resolveTypeIdentThroughPointer is resolveTypeIdent with the forced
// resolution suppressed while the named entity is already being resolved
// (grey): the pointer edge doesn't need the pointee finished, only its
// Type, which checkTypeDecl mints before resolving the pointee's own
// underlying shape precisely so this read is safe.
func (c *Checker) resolveTypeIdentThroughPointer(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr) types.TypeID {
	nameID := c.Table.Strings.Intern(e.Tok.Text)
	ent, _, ok := c.Table.Lookup(scope, nameID)
	if !ok {
		c.errorf(diag.SemaUndeclaredIdent, e.Span, "undeclared identifier: %q", e.Tok.Text)
		return types.NoTypeID
	}
	ref := c.Table.Entities.Get(ent)
	if ref == nil || ref.Kind != entity.KindTypeName {
		c.errorf(diag.SemaBadTopLevelForm, e.Span, "%q is not a type", e.Tok.Text)
		return types.NoTypeID
	}
	if ref.State != entity.StateResolving {
		c.forceCheckDependency(ent)
	} else {
		c.noteDependency(ent)
	}
	c.use(exprID, ent)
	return ref.Type
}

func (c *Checker) resolveTypeIdent(scope entity.ScopeID, exprID ast.ExprID, e *ast.Expr) types.TypeID {
	nameID := c.Table.Strings.Intern(e.Tok.Text)
	ent, _, ok := c.Table.Lookup(scope, nameID)
	if !ok {
		c.errorf(diag.SemaUndeclaredIdent, e.Span, "undeclared identifier: %q", e.Tok.Text)
		return types.NoTypeID
	}
	c.forceCheckDependency(ent)
	c.use(exprID, ent)
	ref := c.Table.Entities.Get(ent)
	if ref == nil || ref.Kind != entity.KindTypeName {
		c.errorf(diag.SemaBadTopLevelForm, e.Span, "%q is not a type", e.Tok.Text)
		return types.NoTypeID
	}
	return ref.Type
}

func (c *Checker) constArrayLength(scope entity.ScopeID, exprID ast.ExprID) uint32 {
	if exprID == ast.NoExprID {
		return 0
	}
	op := c.checkExpr(scope, exprID)
	if op.Mode != ModeConstant || op.Value.Kind() == 0 {
		return 0
	}
	if op.Value.AsInt() == nil {
		return 0
	}
	return uint32(op.Value.AsInt().Uint64())
}

func (c *Checker) checkProcType(scope entity.ScopeID, e *ast.Expr) types.TypeID {
	params := make([]types.TypeID, 0, len(e.Params))
	for _, p := range e.Params {
		params = append(params, c.checkTypeExpr(scope, p.Type))
	}
	results := make([]types.TypeID, 0, len(e.Results))
	for _, r := range e.Results {
		results = append(results, c.checkTypeExpr(scope, r))
	}
	return c.Table.Types.NewProcedure(params, e.Variadic, results)
}

func (c *Checker) checkRecordType(scope entity.ScopeID, e *ast.Expr) types.TypeID {
	fields := make([]types.RecordField, 0, len(e.Params))
	for _, f := range e.Params {
		fields = append(fields, types.RecordField{
			Name: types.StringLike(c.Table.Strings.Intern(f.Name.Text)),
			Type: c.checkTypeExpr(scope, f.Type),
		})
	}
	info := &types.RecordInfo{Fields: fields}
	id := c.Table.Types.NewRecord(info)
	c.Table.Types.Layout(id, c.Sizes)
	return id
}
