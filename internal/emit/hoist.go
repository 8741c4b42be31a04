package emit

import (
	"fmt"

	"github.com/strada-lang/strada/internal/ir"
)

// Hoist walks x in evaluation order and lowers every subexpression
// that cannot render inline — aggregate initializers, and pattern
// bindings the dialect cannot introduce inline — into complete
// statements preceding the one about to print. Repeated occurrences
// of the same node within one statement reuse one temporary; the
// statement emitter clears the table when its statement finishes.
func (e *Emitter) Hoist(x ir.Expr) {
	e.hoist(x, false)
}

// soleDecl marks an expression that is the sole initializer of an
// enclosing declaration, where an aggregate construction may render
// in place with its field initialization deferred.
func (e *Emitter) hoist(x ir.Expr, soleDecl bool) {
	switch n := x.(type) {
	case *ir.IntLit, *ir.FloatLit, *ir.StringLit, *ir.BoolLit, *ir.NullLit,
		*ir.Lambda, *ir.RegexLit, *ir.PatternVar:
		// Leaves.

	case *ir.VarDecl:
		if n.Init != nil {
			e.hoist(n.Init, true)
		}

	case *ir.NewObject:
		for _, f := range n.Fields {
			e.hoist(f.Value, false)
		}
		if len(n.Fields) > 0 && !soleDecl {
			e.materialize(n)
		}

	case *ir.NewArray:
		if n.Len != nil {
			e.hoist(n.Len, false)
		}

	case *ir.Interp:
		for _, p := range n.Parts {
			if p.Arg != nil {
				e.hoist(p.Arg, false)
			}
		}

	case *ir.SymbolRef:
		if n.Of != nil {
			e.hoist(n.Of, false)
		}

	case *ir.Unary:
		e.hoist(n.Operand, false)

	case *ir.Binary:
		e.hoist(n.Left, false)
		if n.Op == ir.OpIs {
			pv, ok := n.Right.(*ir.PatternVar)
			if !ok {
				ice("type test with %T right operand", n.Right)
			}
			if pv.Name != "" && !e.d.SupportsInlinePattern() {
				e.predeclare(pv)
			}
			return
		}
		e.hoist(n.Right, false)

	case *ir.Cond:
		e.hoist(n.Cond, false)
		e.hoist(n.Then, false)
		e.hoist(n.Else, false)

	case *ir.Call:
		e.hoist(n.Target, false)
		for _, a := range n.Args {
			e.hoist(a, false)
		}

	default:
		ice("no hoist case for expression %T", x)
	}
}

// materialize allocates (or reuses) a temporary for an aggregate
// initializer and emits its construction followed by one assignment
// per field, in declared order.
func (e *Emitter) materialize(n *ir.NewObject) {
	if _, ok := e.temps[n.ID]; ok {
		return
	}
	name := fmt.Sprintf("__tmp%d", e.nTemp)
	e.nTemp++
	e.temps[n.ID] = name

	e.StartLine()
	e.d.EmitDecl(e, name, n.Type, func() { e.d.EmitNew(e, n) })
	e.Emit(";")
	e.EndLine()

	for _, f := range n.Fields {
		e.StartLine()
		e.Emit(name)
		e.Emit(e.d.MemberAccess())
		e.Emit(f.Name)
		e.Emit(" = ")
		e.PrintExpr(f.Value, PrioArg)
		e.Emit(";")
		e.EndLine()
	}
}

// predeclare emits a bare declaration for a pattern-bound name so the
// test itself can assign into it.
func (e *Emitter) predeclare(pv *ir.PatternVar) {
	if _, ok := e.temps[pv.ID]; ok {
		return
	}
	e.temps[pv.ID] = pv.Name

	e.StartLine()
	e.d.EmitDecl(e, pv.Name, pv.Type, nil)
	e.Emit(";")
	e.EndLine()
}

// needsHoist reports whether hoisting x would emit any preceding
// statements. The if emitter uses it to decide between an embedded
// "else if" condition and an explicit else block.
func (e *Emitter) needsHoist(x ir.Expr) bool {
	switch n := x.(type) {
	case *ir.IntLit, *ir.FloatLit, *ir.StringLit, *ir.BoolLit, *ir.NullLit,
		*ir.Lambda, *ir.RegexLit, *ir.PatternVar:
		return false

	case *ir.VarDecl:
		if n.Init == nil {
			return false
		}
		if obj, ok := n.Init.(*ir.NewObject); ok && len(obj.Fields) > 0 {
			// Sole initializer renders in place, but its deferred
			// field assignments cannot follow a condition.
			return true
		}
		return e.needsHoist(n.Init)

	case *ir.NewObject:
		if len(n.Fields) > 0 {
			return true
		}
		return false

	case *ir.NewArray:
		return n.Len != nil && e.needsHoist(n.Len)

	case *ir.Interp:
		for _, p := range n.Parts {
			if p.Arg != nil && e.needsHoist(p.Arg) {
				return true
			}
		}
		return false

	case *ir.SymbolRef:
		return n.Of != nil && e.needsHoist(n.Of)

	case *ir.Unary:
		return e.needsHoist(n.Operand)

	case *ir.Binary:
		if n.Op == ir.OpIs {
			pv, ok := n.Right.(*ir.PatternVar)
			if !ok {
				ice("type test with %T right operand", n.Right)
			}
			if pv.Name != "" && !e.d.SupportsInlinePattern() {
				return true
			}
			return e.needsHoist(n.Left)
		}
		return e.needsHoist(n.Left) || e.needsHoist(n.Right)

	case *ir.Cond:
		return e.needsHoist(n.Cond) || e.needsHoist(n.Then) || e.needsHoist(n.Else)

	case *ir.Call:
		if e.needsHoist(n.Target) {
			return true
		}
		for _, a := range n.Args {
			if e.needsHoist(a) {
				return true
			}
		}
		return false

	default:
		ice("no hoist case for expression %T", x)
		return false
	}
}
