package emit

import (
	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/types"
)

// Dialect is the set of hooks a concrete backend supplies to the
// shared emission core. One core, many backends: everything the
// curly-brace family does not agree on goes through here.
type Dialect interface {
	// Name returns the backend name (e.g., "cs", "java", "js").
	Name() string

	// MemberAccess returns the qualification token, usually ".".
	MemberAccess() string

	// TestKeyword returns the type-test keyword ("is", "instanceof").
	TestKeyword() string

	// WhenKeyword returns the guard keyword joining a value and its
	// filter condition.
	WhenKeyword() string

	// SupportsInlinePattern reports whether a type test may introduce
	// its bound name inline. Dialects answering false get their
	// pattern variables predeclared by the hoister.
	SupportsInlinePattern() bool

	// LambdaArrow returns the lambda arrow token ("=>", "->").
	LambdaArrow() string

	// TypeName renders a resolved type, narrowing numerics to their
	// native representation.
	TypeName(t *types.Type) string

	// FloatSuffix returns the literal suffix for a floating type, or
	// "" when the target has none.
	FloatSuffix(t *types.Type) string

	// StringLit renders an escaped, quoted string literal.
	StringLit(s string) string

	// EmitDecl writes a variable declaration for name of type t. init
	// writes the initializer and is nil for a bare declaration. No
	// terminator is written.
	EmitDecl(e *Emitter, name string, t *types.Type, init func())

	// EmitCall writes a call in the target's call syntax. Argument
	// order and priority are the core's concern; the dialect renders
	// receiver and dispatch.
	EmitCall(e *Emitter, c *ir.Call)

	// EmitNew writes a plain construction of n's type, ignoring field
	// initializers (the hoister has already lowered those).
	EmitNew(e *Emitter, n *ir.NewObject)

	// EmitNewArray writes an array allocation.
	EmitNewArray(e *Emitter, n *ir.NewArray)

	// EmitTypeTest writes the test keyword and right-hand side of a
	// type test; the core has already printed the left operand.
	EmitTypeTest(e *Emitter, pv *ir.PatternVar)

	// EmitCharAt writes character access into a string receiver.
	EmitCharAt(e *Emitter, recv, index ir.Expr)

	// EmitInterp writes an interpolated string.
	EmitInterp(e *Emitter, in *ir.Interp)

	// EmitRegex writes a regex literal, or returns an error when the
	// flag combination has no equivalent in this target.
	EmitRegex(e *Emitter, r *ir.RegexLit) error

	// Coerce writes v coerced to the required type (used at returns).
	Coerce(e *Emitter, v ir.Expr, to *types.Type)
}
