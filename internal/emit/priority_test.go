package emit

import (
	"testing"

	"github.com/strada-lang/strada/internal/ir"
)

func TestPriorityOrdering(t *testing.T) {
	ordered := []Priority{
		PrioStatement, PrioArg, PrioAssign, PrioOr, PrioAnd,
		PrioBitOr, PrioBitXor, PrioBitAnd, PrioEquality,
		PrioRelational, PrioShift, PrioAdditive,
		PrioMultiplicative, PrioPrimary,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("priority %d not below %d", ordered[i-1], ordered[i])
		}
	}
}

func TestNeedsParens(t *testing.T) {
	if needsParens(PrioAdditive, PrioAdditive) {
		t.Error("equal priority must not parenthesize")
	}
	if !needsParens(PrioAdditive, PrioMultiplicative) {
		t.Error("looser child in tighter position must parenthesize")
	}
	if needsParens(PrioPrimary, PrioStatement) {
		t.Error("tighter child in looser position must not parenthesize")
	}
}

func TestRightContext(t *testing.T) {
	for _, op := range []ir.Op{ir.OpSub, ir.OpDiv, ir.OpRem, ir.OpShl, ir.OpShr} {
		if rightContext(op) != prioOf(op)+1 {
			t.Errorf("%s: right operand must print one level tighter", op.Symbol())
		}
	}
	for _, op := range []ir.Op{ir.OpAdd, ir.OpMul, ir.OpAnd, ir.OpOr, ir.OpBitXor, ir.OpEq} {
		if rightContext(op) != prioOf(op) {
			t.Errorf("%s: right operand context must equal the operator's", op.Symbol())
		}
	}
}
