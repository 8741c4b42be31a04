// Package csbe is the C# backend: a Dialect for the shared emission
// core plus file-level generation.
package csbe

import (
	"strings"

	"github.com/strada-lang/strada/internal/emit"
	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/regexlit"
	"github.com/strada-lang/strada/internal/types"
)

// Generate produces C# source code from a single IR module.
func Generate(mod *ir.Module) (string, error) {
	return GenerateOpts(mod, emit.Options{Indent: "    "})
}

// GenerateOpts produces C# source with explicit emitter options.
func GenerateOpts(mod *ir.Module, opts emit.Options) (out string, err error) {
	defer emit.Recover(&err)

	e := emit.New(dialect{}, opts)
	e.EmitLine("// Generated C# code from Strada")
	e.EmitLine("using System;")
	e.EmitLine("using System.Text.RegularExpressions;")
	e.EmitLine("")
	e.EmitLinef("static class %s", className(mod.Name))
	e.EmitLine("{")
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
	e.Emit(")")
	e.EndLine()
	e.EmitLine("{")
	e.IncIndent()
	e.EmitStmts(f.Body)
	e.DecIndent()
	e.EmitLine("}")
}

func className(name string) string {
	if name == "" {
		return "Program"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

type dialect struct{}

func (dialect) Name() string                { return "cs" }
func (dialect) MemberAccess() string        { return "." }
func (dialect) TestKeyword() string         { return "is" }
func (dialect) WhenKeyword() string         { return "when" }
func (dialect) SupportsInlinePattern() bool { return true }
func (dialect) LambdaArrow() string         { return "=>" }

func (dialect) TypeName(t *types.Type) string { return typeName(t) }

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
		return "object"
	}
	switch types.Narrow(t, false) {
	case types.ReprBool:
		return "bool"
	case types.ReprString:
		return "string"
	case types.ReprFloat32:
		return "float"
	case types.ReprFloat64:
		return "double"
	case types.ReprInt8:
		return "sbyte"
	case types.ReprUint8:
		return "byte"
	case types.ReprInt16:
		return "short"
	case types.ReprUint16:
		return "ushort"
	case types.ReprInt32:
		return "int"
	case types.ReprInt64:
		return "long"
	default:
		return "object"
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
	e.Emit("is ")
	e.Emit(typeName(pv.Type))
	if pv.Name != "" {
		e.Emit(" ")
		e.Emit(pv.Name)
	}
}

// C# strings are indexable; character access is plain indexing.
func (dialect) EmitCharAt(e *emit.Emitter, recv, index ir.Expr) {
	e.PrintExpr(recv, emit.PrioPrimary)
	e.Emit("[")
	e.PrintExpr(index, emit.PrioArg)
	e.Emit("]")
}

func (dialect) EmitInterp(e *emit.Emitter, in *ir.Interp) {
	e.Emit("$\"")
	for _, p := range in.Parts {
		if p.Arg != nil {
			e.Emit("{")
			e.PrintExpr(p.Arg, emit.PrioArg)
			e.Emit("}")
			continue
		}
		e.Emit(escapeInterp(p.Text))
	}
	e.Emit("\"")
}

func (d dialect) EmitRegex(e *emit.Emitter, r *ir.RegexLit) error {
	if err := regexlit.Validate(r.Pattern, r.Flags); err != nil {
		return &emit.Unsupported{Backend: d.Name(), Construct: "regex literal", Detail: err.Error()}
	}
	opts, err := regexlit.CSharpOptions(r.Flags)
	if err != nil {
		return &emit.Unsupported{Backend: d.Name(), Construct: "regex flags", Detail: err.Error()}
	}
	e.Emitf("new Regex(%s, %s)", quote(r.Pattern), opts)
	return nil
}

// Coerce casts a returned value when its narrowed representation
// differs from the declared return representation.
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

func escapeInterp(s string) string {
	s = escape(s)
	s = strings.ReplaceAll(s, "{", "{{")
	s = strings.ReplaceAll(s, "}", "}}")
	return s
}
