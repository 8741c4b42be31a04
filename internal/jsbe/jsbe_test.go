package jsbe

import (
	"strings"
	"testing"

	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/types"
)

func TestGenerateFunction(t *testing.T) {
	b := ir.NewBuilder()
	sum := b.Bin(ir.OpAdd, b.Ref("a", types.TypeInt), b.Ref("b", types.TypeInt), types.TypeInt)
	mod := &ir.Module{
		Name: "geo",
		Functions: []*ir.Function{{
			Name: "add",
			Params: []*ir.Param{
				{Name: "a", Type: types.TypeInt},
				{Name: "b", Type: types.TypeInt},
			},
			Return: types.TypeInt,
			Body:   []ir.Stmt{&ir.Return{Value: sum}},
		}},
	}

	out, err := Generate(mod)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"function add(a, b) {",
		"  return a + b;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPatternPredeclaration(t *testing.T) {
	b := ir.NewBuilder()
	is := b.Is(b.Ref("s", types.ObjectOf("Shape")), types.ObjectOf("Circle"), "c")
	mod := &ir.Module{
		Name: "m",
		Functions: []*ir.Function{{
			Name:   "handle",
			Params: []*ir.Param{{Name: "s", Type: types.ObjectOf("Shape")}},
			Return: types.TypeVoid,
			Body: []ir.Stmt{&ir.If{
				Cond: is,
				Then: []ir.Stmt{&ir.ExprStmt{E: b.Call(
					b.Ref("area", types.TypeVoid), types.TypeVoid,
					b.Ref("c", types.ObjectOf("Circle")),
				)}},
			}},
		}},
	}

	out, err := Generate(mod)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "let c;") {
		t.Errorf("bound name not predeclared:\n%s", out)
	}
	if !strings.Contains(out, "if ((c = s) instanceof Circle) {") {
		t.Errorf("tested value not captured into the binding:\n%s", out)
	}
}

func TestDeclarationsUseLet(t *testing.T) {
	b := ir.NewBuilder()
	pt := types.ObjectOf("Point")
	obj := b.New(pt, ir.FieldInit{Name: "x", Value: b.Int(1)})
	arr := b.NewArr(types.TypeInt, b.Int(8))
	mod := &ir.Module{
		Name: "m",
		Functions: []*ir.Function{{
			Name:   "mk",
			Return: types.TypeVoid,
			Body: []ir.Stmt{
				&ir.ExprStmt{E: b.Decl("p", pt, obj)},
				&ir.ExprStmt{E: b.Decl("xs", types.ArrayOf(types.TypeInt), arr)},
			},
		}},
	}

	out, err := Generate(mod)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"let p = new Point();",
		"p.x = 1;",
		"let xs = new Array(8);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTemplateLiteral(t *testing.T) {
	b := ir.NewBuilder()
	s := b.Ref("s", types.TypeString)
	ch := b.Index(s, b.Int(0), types.TypeString)
	in := b.InterpOf(b.Text("first: "), b.Arg(ch))
	mod := &ir.Module{
		Name: "m",
		Functions: []*ir.Function{{
			Name:   "first",
			Params: []*ir.Param{{Name: "s", Type: types.TypeString}},
			Return: types.TypeString,
			Body:   []ir.Stmt{&ir.Return{Value: in}},
		}},
	}

	out, err := Generate(mod)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "return `first: ${s.charAt(0)}`;") {
		t.Errorf("template literal not rendered:\n%s", out)
	}
}

func TestRegexLiteral(t *testing.T) {
	b := ir.NewBuilder()
	re := b.Regex("a+", ir.RegexGlobal|ir.RegexIgnoreCase)
	mod := &ir.Module{
		Name: "m",
		Functions: []*ir.Function{{
			Name:   "pat",
			Return: types.ObjectOf("Regex"),
			Body:   []ir.Stmt{&ir.Return{Value: re}},
		}},
	}

	out, err := Generate(mod)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "return /a+/gi;") {
		t.Errorf("regex literal not rendered:\n%s", out)
	}

	_, err = Generate(&ir.Module{
		Name: "m",
		Functions: []*ir.Function{{
			Name:   "bad",
			Return: types.ObjectOf("Regex"),
			Body:   []ir.Stmt{&ir.Return{Value: b.Regex("(", 0)}},
		}},
	})
	if err == nil {
		t.Fatal("malformed pattern should fail generation")
	}
}
