package emit

import "github.com/strada-lang/strada/internal/ir"

// EmitStmts emits a statement list.
func (e *Emitter) EmitStmts(stmts []ir.Stmt) {
	for _, s := range stmts {
		e.EmitStmt(s)
	}
}

// EmitStmt emits one statement. Every statement follows the same
// discipline: hoist first, then print. Temporaries live exactly as
// long as their statement; the table is scoped here.
func (e *Emitter) EmitStmt(s ir.Stmt) {
	saved := e.temps
	e.temps = make(map[ir.NodeID]string)
	defer func() { e.temps = saved }()

	switch st := s.(type) {
	case *ir.ExprStmt:
		e.Hoist(st.E)
		e.StartLine()
		e.PrintExpr(st.E, PrioStatement)
		e.Emit(";")
		e.EndLine()
		if vd, ok := st.E.(*ir.VarDecl); ok {
			e.emitDeferredInit(vd)
		}

	case *ir.Return:
		if st.Value == nil {
			e.EmitLine("return;")
			return
		}
		e.Hoist(st.Value)
		e.StartLine()
		e.Emit("return ")
		e.d.Coerce(e, st.Value, e.ret)
		e.Emit(";")
		e.EndLine()

	case *ir.If:
		e.emitIf(st)

	case *ir.While:
		e.Hoist(st.Cond)
		e.StartLine()
		e.Emit("while (")
		e.PrintExpr(st.Cond, PrioArg)
		e.Emit(") {")
		e.EndLine()
		e.IncIndent()
		e.EmitStmts(st.Body)
		e.DecIndent()
		e.EmitLine("}")

	case *ir.Switch:
		e.emitSwitch(st)

	default:
		ice("no emitter case for statement %T", s)
	}
}

// emitDeferredInit writes the field assignments a declaration with an
// aggregate initializer defers until after its own statement.
func (e *Emitter) emitDeferredInit(vd *ir.VarDecl) {
	obj, ok := vd.Init.(*ir.NewObject)
	if !ok || len(obj.Fields) == 0 {
		return
	}
	for _, f := range obj.Fields {
		e.StartLine()
		e.Emit(vd.Name)
		e.Emit(e.d.MemberAccess())
		e.Emit(f.Name)
		e.Emit(" = ")
		e.PrintExpr(f.Value, PrioArg)
		e.Emit(";")
		e.EndLine()
	}
}

func (e *Emitter) emitIf(s *ir.If) {
	e.Hoist(s.Cond)
	e.StartLine()
	e.Emit("if (")
	e.PrintExpr(s.Cond, PrioArg)
	e.Emit(") {")
	e.EndLine()
	e.IncIndent()
	e.EmitStmts(s.Then)
	e.DecIndent()
	e.emitElse(s.Else)
}

// emitElse closes the preceding branch and emits the else part. A
// chained if whose condition needs no hoisting is embedded as
// "else if"; otherwise the chain continues inside an explicit else
// block so the hoisted statements land before the nested condition.
func (e *Emitter) emitElse(els []ir.Stmt) {
	if els == nil {
		e.EmitLine("}")
		return
	}
	if len(els) == 1 {
		if chained, ok := els[0].(*ir.If); ok {
			if !e.needsHoist(chained.Cond) {
				e.StartLine()
				e.Emit("} else if (")
				e.PrintExpr(chained.Cond, PrioArg)
				e.Emit(") {")
				e.EndLine()
				e.IncIndent()
				e.EmitStmts(chained.Then)
				e.DecIndent()
				e.emitElse(chained.Else)
				return
			}
			e.EmitLine("} else {")
			e.IncIndent()
			e.EmitStmt(chained)
			e.DecIndent()
			e.EmitLine("}")
			return
		}
	}
	e.EmitLine("} else {")
	e.IncIndent()
	e.EmitStmts(els)
	e.DecIndent()
	e.EmitLine("}")
}

func (e *Emitter) emitSwitch(s *ir.Switch) {
	e.Hoist(s.Tag)
	e.StartLine()
	e.Emit("switch (")
	e.PrintExpr(s.Tag, PrioArg)
	e.Emit(") {")
	e.EndLine()
	for _, c := range s.Cases {
		e.StartLine()
		e.Emit("case ")
		e.PrintExpr(c.Value, PrioArg)
		e.Emit(":")
		e.EndLine()
		e.IncIndent()
		e.EmitStmts(c.Body)
		e.EmitLine("break;")
		e.DecIndent()
	}
	if s.Default != nil {
		e.EmitLine("default:")
		e.IncIndent()
		e.EmitStmts(s.Default)
		e.EmitLine("break;")
		e.DecIndent()
	}
	e.EmitLine("}")
}
