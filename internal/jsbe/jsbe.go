// Package jsbe is the JavaScript backend. JavaScript has no inline
// pattern bindings and no static types, so pattern variables are
// predeclared by the hoister and declarations use let.
package jsbe

import (
	"strings"

	"github.com/strada-lang/strada/internal/emit"
	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/regexlit"
	"github.com/strada-lang/strada/internal/types"
)

// Generate produces JavaScript source code from a single IR module.
func Generate(mod *ir.Module) (string, error) {
	return GenerateOpts(mod, emit.Options{Indent: "  "})
}

// GenerateOpts produces JavaScript source with explicit emitter options.
func GenerateOpts(mod *ir.Module, opts emit.Options) (out string, err error) {
	defer emit.Recover(&err)

	e := emit.New(dialect{}, opts)
	e.EmitLine("// Generated JavaScript code from Strada")
	e.EmitLine("")
	for i, f := range mod.Functions {
		if i > 0 {
			e.EmitLine("")
		}
		generateFunction(e, f)
	}
	return e.String(), nil
}

func generateFunction(e *emit.Emitter, f *ir.Function) {
	e.SetReturn(f.Return)
	e.StartLine()
	e.Emitf("function %s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			e.Emit(", ")
		}
		e.Emit(p.Name)
	}
	e.Emit(") {")
	e.EndLine()
	e.IncIndent()
	e.EmitStmts(f.Body)
	e.DecIndent()
	e.EmitLine("}")
}

type dialect struct{}

func (dialect) Name() string                { return "js" }
func (dialect) MemberAccess() string        { return "." }
func (dialect) TestKeyword() string         { return "instanceof" }
func (dialect) WhenKeyword() string         { return "when" }
func (dialect) SupportsInlinePattern() bool { return false }
func (dialect) LambdaArrow() string         { return "=>" }

// Type names only surface in construction and type tests; numerics
// never do.
func (dialect) TypeName(t *types.Type) string { return typeName(t) }

func typeName(t *types.Type) string {
	if t == nil {
		return "Object"
	}
	switch t.Kind {
	case types.Object:
		return t.Name
	case types.Array:
		return "Array"
	case types.String:
		return "String"
	default:
		return "Object"
	}
}

func (dialect) FloatSuffix(*types.Type) string { return "" }

func (dialect) StringLit(s string) string { return quote(s) }

func (dialect) EmitDecl(e *emit.Emitter, name string, _ *types.Type, init func()) {
	e.Emit("let ")
	e.Emit(name)
	if init != nil {
		e.Emit(" = ")
		init()
	}
}

func (dialect) EmitCall(e *emit.Emitter, c *ir.Call) {
	e.PrintExpr(c.Target, emit.PrioPrimary)
	e.Emit("(")
	e.PrintArgs(c.Args)
	e.Emit(")")
}

func (dialect) EmitNew(e *emit.Emitter, n *ir.NewObject) {
	e.Emitf("new %s()", typeName(n.Type))
}

func (dialect) EmitNewArray(e *emit.Emitter, n *ir.NewArray) {
	e.Emit("new Array(")
	e.PrintExpr(n.Len, emit.PrioArg)
	e.Emit(")")
}

// The core has already captured the tested value into the predeclared
// bound name; only the bare test remains here.
func (dialect) EmitTypeTest(e *emit.Emitter, pv *ir.PatternVar) {
	e.Emit("instanceof ")
	e.Emit(typeName(pv.Type))
}

func (dialect) EmitCharAt(e *emit.Emitter, recv, index ir.Expr) {
	e.PrintExpr(recv, emit.PrioPrimary)
	e.Emit(".charAt(")
	e.PrintExpr(index, emit.PrioArg)
	e.Emit(")")
}

func (dialect) EmitInterp(e *emit.Emitter, in *ir.Interp) {
	e.Emit("`")
	for _, p := range in.Parts {
		if p.Arg != nil {
			e.Emit("${")
			e.PrintExpr(p.Arg, emit.PrioArg)
			e.Emit("}")
			continue
		}
		e.Emit(escapeTemplate(p.Text))
	}
	e.Emit("`")
}

func (d dialect) EmitRegex(e *emit.Emitter, r *ir.RegexLit) error {
	if err := regexlit.Validate(r.Pattern, r.Flags); err != nil {
		return &emit.Unsupported{Backend: d.Name(), Construct: "regex literal", Detail: err.Error()}
	}
	e.Emit("/")
	e.Emit(r.Pattern)
	e.Emit("/")
	e.Emit(regexlit.Letters(r.Flags))
	return nil
}

// JavaScript numbers need no width coercion.
func (dialect) Coerce(e *emit.Emitter, v ir.Expr, _ *types.Type) {
	e.PrintExpr(v, emit.PrioArg)
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	sb.WriteString(s)
	sb.WriteByte('"')
	return sb.String()
}

func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}
