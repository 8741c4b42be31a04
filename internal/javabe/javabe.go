// Package javabe is the Java backend.
package javabe

import (
	"strings"

	"github.com/strada-lang/strada/internal/emit"
	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/regexlit"
	"github.com/strada-lang/strada/internal/types"
)

// Generate produces Java source code from a single IR module.
func Generate(mod *ir.Module) (string, error) {
	return GenerateOpts(mod, emit.Options{Indent: "    "})
}

// GenerateOpts produces Java source with explicit emitter options.
func GenerateOpts(mod *ir.Module, opts emit.Options) (out string, err error) {
	defer emit.Recover(&err)

	e := emit.New(dialect{}, opts)
	e.EmitLine("// Generated Java code from Strada")
	e.EmitLine("import java.util.regex.Pattern;")
	e.EmitLine("")
	e.EmitLinef("final class %s {", className(mod.Name))
	e.IncIndent()
	for i, f := range mod.Functions {
		if i > 0 {
			e.EmitLine("")
		}
		generateFunction(e, f)
	}
	e.DecIndent()
	e.EmitLine("}")
	return e.String(), nil
}

func generateFunction(e *emit.Emitter, f *ir.Function) {
	e.SetReturn(f.Return)
	e.StartLine()
	e.Emitf("static %s %s(", typeName(f.Return), f.Name)
	for i, p := range f.Params {
		if i > 0 {
			e.Emit(", ")
		}
		e.Emitf("%s %s", typeName(p.Type), p.Name)
	}
	e.Emit(") {")
	e.EndLine()
	e.IncIndent()
	e.EmitStmts(f.Body)
	e.DecIndent()
	e.EmitLine("}")
}

func className(name string) string {
	if name == "" {
		return "Main"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

type dialect struct{}

func (dialect) Name() string         { return "java" }
func (dialect) MemberAccess() string { return "." }
func (dialect) TestKeyword() string  { return "instanceof" }
func (dialect) WhenKeyword() string  { return "when" }

// Pattern matching for instanceof (JEP 394).
func (dialect) SupportsInlinePattern() bool { return true }

func (dialect) LambdaArrow() string { return "->" }

func (dialect) TypeName(t *types.Type) string { return typeName(t) }

// Java has no unsigned primitives; unsigned representations widen to
// the next signed width that holds them.
func typeName(t *types.Type) string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case types.Void:
		return "void"
	case types.Object:
		return t.Name
	case types.Array:
		return typeName(t.Elem) + "[]"
	case types.Null:
		return "Object"
	}
	switch types.Narrow(t, false) {
	case types.ReprBool:
		return "boolean"
	case types.ReprString:
		return "String"
	case types.ReprFloat32:
		return "float"
	case types.ReprFloat64:
		return "double"
	case types.ReprInt8:
		return "byte"
	case types.ReprUint8, types.ReprInt16:
		return "short"
	case types.ReprUint16, types.ReprInt32:
		return "int"
	case types.ReprInt64:
		return "long"
	default:
		return "Object"
	}
}

func (dialect) FloatSuffix(t *types.Type) string {
	if types.Narrow(t, false) == types.ReprFloat32 {
		return "f"
	}
	return ""
}

func (dialect) StringLit(s string) string { return quote(s) }

func (dialect) EmitDecl(e *emit.Emitter, name string, t *types.Type, init func()) {
	e.Emitf("%s %s", typeName(t), name)
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
	e.Emitf("new %s[", typeName(n.Type.Elem))
	e.PrintExpr(n.Len, emit.PrioArg)
	e.Emit("]")
}

func (dialect) EmitTypeTest(e *emit.Emitter, pv *ir.PatternVar) {
	e.Emit("instanceof ")
	e.Emit(typeName(pv.Type))
	if pv.Name != "" {
		e.Emit(" ")
		e.Emit(pv.Name)
	}
}

func (dialect) EmitCharAt(e *emit.Emitter, recv, index ir.Expr) {
	e.PrintExpr(recv, emit.PrioPrimary)
	e.Emit(".charAt(")
	e.PrintExpr(index, emit.PrioArg)
	e.Emit(")")
}

// Java has no interpolation; render through String.format.
func (dialect) EmitInterp(e *emit.Emitter, in *ir.Interp) {
	var format strings.Builder
	var args []ir.Expr
	for _, p := range in.Parts {
		if p.Arg != nil {
			format.WriteString("%s")
			args = append(args, p.Arg)
			continue
		}
		format.WriteString(strings.ReplaceAll(p.Text, "%", "%%"))
	}
	e.Emitf("String.format(%s", quote(format.String()))
	for _, a := range args {
		e.Emit(", ")
		e.PrintExpr(a, emit.PrioArg)
	}
	e.Emit(")")
}

func (d dialect) EmitRegex(e *emit.Emitter, r *ir.RegexLit) error {
	if err := regexlit.Validate(r.Pattern, r.Flags); err != nil {
		return &emit.Unsupported{Backend: d.Name(), Construct: "regex literal", Detail: err.Error()}
	}
	flags, err := regexlit.JavaFlags(r.Flags)
	if err != nil {
		return &emit.Unsupported{Backend: d.Name(), Construct: "regex flags", Detail: err.Error()}
	}
	if flags == "" {
		e.Emitf("Pattern.compile(%s)", quote(r.Pattern))
		return nil
	}
	e.Emitf("Pattern.compile(%s, %s)", quote(r.Pattern), flags)
	return nil
}

func (dialect) Coerce(e *emit.Emitter, v ir.Expr, to *types.Type) {
	from := types.Narrow(v.ExprType(), true)
	want := types.Narrow(to, false)
	if want.IsNumeric() && from != want {
		e.Emitf("(%s)", typeName(to))
		e.PrintExpr(v, emit.PrioPrimary)
		return
	}
	e.PrintExpr(v, emit.PrioArg)
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(escape(s))
	sb.WriteByte('"')
	return sb.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
