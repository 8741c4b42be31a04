package emit

import (
	"strconv"

	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/regexlit"
	"github.com/strada-lang/strada/internal/types"
)

// testDialect is a minimal C-family dialect for exercising the core
// without pulling in a real backend.
type testDialect struct {
	inlinePattern bool
}

func (testDialect) Name() string           { return "test" }
func (testDialect) MemberAccess() string   { return "." }
func (testDialect) TestKeyword() string    { return "is" }
func (testDialect) WhenKeyword() string    { return "when" }
func (testDialect) LambdaArrow() string    { return "=>" }
func (d testDialect) SupportsInlinePattern() bool {
	return d.inlinePattern
}

func (testDialect) TypeName(t *types.Type) string { return testTypeName(t) }

func testTypeName(t *types.Type) string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case types.Object:
		return t.Name
	case types.Array:
		return testTypeName(t.Elem) + "[]"
	default:
		return t.String()
	}
}

func (testDialect) FloatSuffix(*types.Type) string { return "" }

func (testDialect) StringLit(s string) string { return strconv.Quote(s) }

func (testDialect) EmitDecl(e *Emitter, name string, t *types.Type, init func()) {
	e.Emit(testTypeName(t))
	e.Emit(" ")
	e.Emit(name)
	if init != nil {
		e.Emit(" = ")
		init()
	}
}

func (testDialect) EmitCall(e *Emitter, c *ir.Call) {
	e.PrintExpr(c.Target, PrioPrimary)
	e.Emit("(")
	e.PrintArgs(c.Args)
	e.Emit(")")
}

func (testDialect) EmitNew(e *Emitter, n *ir.NewObject) {
	e.Emitf("new %s()", testTypeName(n.Type))
}

func (testDialect) EmitNewArray(e *Emitter, n *ir.NewArray) {
	e.Emitf("new %s[", testTypeName(n.Type.Elem))
	e.PrintExpr(n.Len, PrioArg)
	e.Emit("]")
}

func (d testDialect) EmitTypeTest(e *Emitter, pv *ir.PatternVar) {
	e.Emit("is ")
	e.Emit(testTypeName(pv.Type))
	if pv.Name != "" && d.inlinePattern {
		e.Emit(" ")
		e.Emit(pv.Name)
	}
}

func (testDialect) EmitCharAt(e *Emitter, recv, index ir.Expr) {
	e.PrintExpr(recv, PrioPrimary)
	e.Emit(".charAt(")
	e.PrintExpr(index, PrioArg)
	e.Emit(")")
}

func (testDialect) EmitInterp(e *Emitter, in *ir.Interp) {
	e.Emit("$\"")
	for _, p := range in.Parts {
		if p.Arg != nil {
			e.Emit("{")
			e.PrintExpr(p.Arg, PrioArg)
			e.Emit("}")
			continue
		}
		e.Emit(p.Text)
	}
	e.Emit("\"")
}

func (d testDialect) EmitRegex(e *Emitter, r *ir.RegexLit) error {
	if err := regexlit.Validate(r.Pattern, r.Flags); err != nil {
		return &Unsupported{Backend: d.Name(), Construct: "regex literal", Detail: err.Error()}
	}
	e.Emit("/")
	e.Emit(r.Pattern)
	e.Emit("/")
	e.Emit(regexlit.Letters(r.Flags))
	return nil
}

func (testDialect) Coerce(e *Emitter, v ir.Expr, _ *types.Type) {
	e.PrintExpr(v, PrioArg)
}

// render prints one expression at the given context priority.
func render(x ir.Expr, ctx Priority) string {
	e := New(testDialect{inlinePattern: true}, Options{Indent: "  "})
	e.PrintExpr(x, ctx)
	return e.String()
}

// renderStmt emits one statement with the inline-pattern dialect.
func renderStmt(s ir.Stmt) string {
	e := New(testDialect{inlinePattern: true}, Options{Indent: "  "})
	e.EmitStmt(s)
	return e.String()
}

// renderStmtNoInline emits one statement with a dialect that cannot
// bind pattern variables inline.
func renderStmtNoInline(s ir.Stmt) string {
	e := New(testDialect{inlinePattern: false}, Options{Indent: "  "})
	e.EmitStmt(s)
	return e.String()
}
