package emit

import "github.com/strada-lang/strada/internal/ir"

// Priority is the binding strength of an expression position, ordered
// loosest to tightest. A printed subexpression is parenthesized when
// its own priority is strictly lower than what its position demands.
type Priority int

const (
	PrioStatement Priority = iota // expression used as a statement
	PrioArg                       // call argument; commas bind here
	PrioAssign
	PrioOr
	PrioAnd
	PrioBitOr
	PrioBitXor
	PrioBitAnd
	PrioEquality
	PrioRelational
	PrioShift
	PrioAdditive
	PrioMultiplicative
	PrioPrimary // unary and primary expressions
)

// prioOf maps a binary or prefix operator to its priority level.
func prioOf(op ir.Op) Priority {
	switch op {
	case ir.OpInc, ir.OpDec, ir.OpNeg, ir.OpBitNot, ir.OpNot:
		return PrioPrimary
	case ir.OpMul, ir.OpDiv, ir.OpRem:
		return PrioMultiplicative
	case ir.OpAdd, ir.OpSub:
		return PrioAdditive
	case ir.OpShl, ir.OpShr:
		return PrioShift
	case ir.OpLt, ir.OpLe, ir.OpGt, ir.OpGe, ir.OpIs:
		return PrioRelational
	case ir.OpEq, ir.OpNe:
		return PrioEquality
	case ir.OpBitAnd:
		return PrioBitAnd
	case ir.OpBitXor:
		return PrioBitXor
	case ir.OpBitOr:
		return PrioBitOr
	case ir.OpAnd:
		return PrioAnd
	case ir.OpOr:
		return PrioOr
	case ir.OpIndex:
		return PrioPrimary
	case ir.OpWhen:
		return PrioArg
	}
	if op.IsCompoundAssign() {
		return PrioAssign
	}
	ice("no priority for operator %q", op.Symbol())
	return PrioStatement
}

// needsParens reports whether a child of the given priority must be
// parenthesized in a position demanding ctx.
func needsParens(child, ctx Priority) bool {
	return child < ctx
}

// rightContext returns the priority demanded of an operator's right
// operand. For operators whose right operand must not re-associate at
// equal priority (subtraction, division, remainder, shifts) the
// context is raised one level, which forces the parentheses that
// reproduce left-associativity.
func rightContext(op ir.Op) Priority {
	p := prioOf(op)
	switch op {
	case ir.OpSub, ir.OpDiv, ir.OpRem, ir.OpShl, ir.OpShr:
		return p + 1
	}
	return p
}
