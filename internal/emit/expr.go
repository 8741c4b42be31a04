package emit

import (
	"strconv"

	"github.com/strada-lang/strada/internal/ir"
)

// PrintExpr renders x into the output, parenthesizing as required by
// the priority ctx of its position. Dispatch is total: an unknown
// variant is an internal error, never skipped.
func (e *Emitter) PrintExpr(x ir.Expr, ctx Priority) {
	switch n := x.(type) {
	case *ir.IntLit:
		e.Emit(strconv.FormatInt(n.Value, 10))

	case *ir.FloatLit:
		e.Emit(FormatFloat(n.Value))
		e.Emit(e.d.FloatSuffix(n.Type))

	case *ir.StringLit:
		e.Emit(e.d.StringLit(n.Value))

	case *ir.BoolLit:
		if n.Value {
			e.Emit("true")
		} else {
			e.Emit("false")
		}

	case *ir.NullLit:
		e.Emit("null")

	case *ir.Unary:
		e.printUnary(n)

	case *ir.Binary:
		e.printBinary(n, ctx)

	case *ir.SymbolRef:
		if n.Of != nil {
			e.PrintExpr(n.Of, PrioPrimary)
			e.Emit(e.d.MemberAccess())
		}
		e.Emit(n.Name)

	case *ir.Call:
		e.d.EmitCall(e, n)

	case *ir.NewObject:
		if len(n.Fields) == 0 {
			e.d.EmitNew(e, n)
			break
		}
		// Aggregate initializers are lowered to temporaries before
		// their statement prints; only the temporary name appears
		// inline.
		name, ok := e.temps[n.ID]
		if !ok {
			ice("aggregate initializer %d reached the printer without a temporary", n.ID)
		}
		e.Emit(name)

	case *ir.NewArray:
		e.d.EmitNewArray(e, n)

	case *ir.Cond:
		wrap := needsParens(PrioAssign, ctx)
		if wrap {
			e.Emit("(")
		}
		e.PrintExpr(n.Cond, PrioOr)
		e.Emit(" ? ")
		e.PrintExpr(n.Then, PrioAssign)
		e.Emit(" : ")
		e.PrintExpr(n.Else, PrioAssign)
		if wrap {
			e.Emit(")")
		}

	case *ir.Interp:
		e.d.EmitInterp(e, n)

	case *ir.Lambda:
		wrap := needsParens(PrioAssign, ctx)
		if wrap {
			e.Emit("(")
		}
		e.Emit("(")
		for i, p := range n.Params {
			if i > 0 {
				e.Emit(", ")
			}
			e.Emit(p)
		}
		e.Emit(") ")
		e.Emit(e.d.LambdaArrow())
		e.Emit(" ")
		e.PrintExpr(n.Body, PrioArg)
		if wrap {
			e.Emit(")")
		}

	case *ir.VarDecl:
		e.printVarDecl(n)

	case *ir.RegexLit:
		if err := e.d.EmitRegex(e, n); err != nil {
			e.Fail(err)
		}

	case *ir.PatternVar:
		ice("pattern variable outside a type test")

	default:
		ice("no printer case for expression %T", x)
	}
}

// PrintArgs renders a comma-separated argument list at argument
// priority. The core adds no enclosing parentheses; the call hook
// owns those.
func (e *Emitter) PrintArgs(args []ir.Expr) {
	for i, a := range args {
		if i > 0 {
			e.Emit(", ")
		}
		e.PrintExpr(a, PrioArg)
	}
}

func (e *Emitter) printUnary(n *ir.Unary) {
	switch n.Op {
	case ir.OpInc, ir.OpDec, ir.OpBitNot, ir.OpNot:
		e.Emit(n.Op.Symbol())
	case ir.OpNeg:
		e.Emit("-")
		// Keep "- -x" from gluing into a predecrement.
		if inner, ok := n.Operand.(*ir.Unary); ok && (inner.Op == ir.OpNeg || inner.Op == ir.OpDec) {
			e.Emit(" ")
		}
	default:
		ice("no printer case for prefix operator %q", n.Op.Symbol())
	}
	e.PrintExpr(n.Operand, PrioPrimary)
}

func (e *Emitter) printBinary(n *ir.Binary, ctx Priority) {
	switch {
	case n.Op == ir.OpIndex:
		if n.Left.ExprType().IsString() {
			e.d.EmitCharAt(e, n.Left, n.Right)
			return
		}
		e.PrintExpr(n.Left, PrioPrimary)
		e.Emit("[")
		e.PrintExpr(n.Right, PrioArg)
		e.Emit("]")

	case n.Op == ir.OpIs:
		pv, ok := n.Right.(*ir.PatternVar)
		if !ok {
			ice("type test with %T right operand", n.Right)
		}
		wrap := needsParens(PrioRelational, ctx)
		if wrap {
			e.Emit("(")
		}
		if pv.Name != "" && !e.d.SupportsInlinePattern() {
			// The bound name was predeclared by the hoister; capture
			// the tested value into it as part of the test itself.
			e.Emit("(")
			e.Emit(pv.Name)
			e.Emit(" = ")
			e.PrintExpr(n.Left, PrioArg)
			e.Emit(")")
		} else {
			e.PrintExpr(n.Left, PrioRelational)
		}
		e.Emit(" ")
		e.d.EmitTypeTest(e, pv)
		if wrap {
			e.Emit(")")
		}

	case n.Op == ir.OpWhen:
		wrap := needsParens(PrioArg, ctx)
		if wrap {
			e.Emit("(")
		}
		e.PrintExpr(n.Left, PrioArg)
		e.Emit(" ")
		e.Emit(e.d.WhenKeyword())
		e.Emit(" ")
		e.PrintExpr(n.Right, PrioArg)
		if wrap {
			e.Emit(")")
		}

	case n.Op.IsCompoundAssign():
		wrap := needsParens(PrioAssign, ctx)
		if wrap {
			e.Emit("(")
		}
		e.PrintExpr(n.Left, PrioAssign)
		e.Emit(" ")
		e.Emit(n.Op.Symbol())
		e.Emit(" ")
		e.PrintExpr(n.Right, PrioArg)
		if wrap {
			e.Emit(")")
		}

	default:
		p := prioOf(n.Op)
		wrap := needsParens(p, ctx)
		if wrap {
			e.Emit("(")
		}
		e.PrintExpr(n.Left, p)
		e.Emit(" ")
		e.Emit(n.Op.Symbol())
		e.Emit(" ")
		e.PrintExpr(n.Right, rightContext(n.Op))
		if wrap {
			e.Emit(")")
		}
	}
}

// printVarDecl renders a declaration-as-expression. An aggregate
// initializer prints as bare construction; the statement emitter
// appends the deferred field assignments afterwards.
func (e *Emitter) printVarDecl(n *ir.VarDecl) {
	if n.Init == nil {
		e.d.EmitDecl(e, n.Name, n.Type, nil)
		return
	}
	e.d.EmitDecl(e, n.Name, n.Type, func() {
		if obj, ok := n.Init.(*ir.NewObject); ok && len(obj.Fields) > 0 {
			e.d.EmitNew(e, obj)
			return
		}
		e.PrintExpr(n.Init, PrioArg)
	})
}

// FormatFloat renders v with the shortest decimal representation that
// round-trips. A rendering that looks like an integer gains a
// trailing ".0" so the output stays unambiguously non-integral.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if looksIntegral(s) {
		s += ".0"
	}
	return s
}

func looksIntegral(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			continue
		}
		if i == 0 && (s[i] == '-' || s[i] == '+') {
			continue
		}
		return false
	}
	return len(s) > 0
}
