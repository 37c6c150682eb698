package diag

import "fmt"

// Code is a stable, greppable diagnostic identifier. Lumen has no separate
// lexer/parser stage, so unlike a full front end it allocates only the
// Sema* block, starting at the same 3000 offset a front end would use once
// its own Lex*/Syn* blocks (1000s/2000s) are spoken for.
type Code uint16

const (
	UnknownCode Code = 0

	// Declaration shape (spec.md "declaration shape" kind).
	SemaMissingTypeOrInit Code = 3000
	SemaExtraInitExpr     Code = 3001
	SemaBadTopLevelForm   Code = 3002
	SemaInitCycle         Code = 3003

	// Name resolution.
	SemaUndeclaredIdent  Code = 3100
	SemaRedeclared       Code = 3101
	SemaUnusedVariable   Code = 3102
	SemaUnexportedAccess Code = 3103

	// Type mismatch.
	SemaTypeMismatch      Code = 3200
	SemaNotAddressable    Code = 3201
	SemaNotCallable       Code = 3202
	SemaArgCountMismatch  Code = 3203
	SemaReturnMismatch    Code = 3204
	SemaBadConversion     Code = 3205
	SemaIncompatibleOps   Code = 3206
	SemaBadShiftCount     Code = 3207

	// Constant evaluation.
	SemaDivideByZero      Code = 3300
	SemaConstOutOfRange   Code = 3301
	SemaNegativeShift     Code = 3302
	SemaUntypedResidue    Code = 3303 // internal invariant failure, never user-facing

	// Arity.
	SemaBuiltinArity   Code = 3400
	SemaProcArity      Code = 3401

	// Control flow.
	SemaReturnInDefer Code = 3500
)

func (c Code) String() string {
	if c == UnknownCode {
		return "SEMA0000"
	}
	return fmt.Sprintf("SEMA%04d", uint16(c))
}
