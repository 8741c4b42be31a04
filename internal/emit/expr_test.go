package emit

import (
	"testing"

	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/types"
)

func TestBinaryParenthesization(t *testing.T) {
	b := ir.NewBuilder()
	va := b.Ref("a", types.TypeInt)
	vb := b.Ref("b", types.TypeInt)
	vc := b.Ref("c", types.TypeInt)
	vd := b.Ref("d", types.TypeInt)

	tests := []struct {
		name string
		x    ir.Expr
		want string
	}{
		{
			"right-nested subtraction keeps parens",
			b.Bin(ir.OpSub, va, b.Bin(ir.OpSub, vb, vc, types.TypeInt), types.TypeInt),
			"a - (b - c)",
		},
		{
			"left-nested subtraction drops parens",
			b.Bin(ir.OpSub, b.Bin(ir.OpSub, va, vb, types.TypeInt), vc, types.TypeInt),
			"a - b - c",
		},
		{
			"addition under multiplication wraps",
			b.Bin(ir.OpMul, b.Bin(ir.OpAdd, va, vb, types.TypeInt), vc, types.TypeInt),
			"(a + b) * c",
		},
		{
			"multiplication under addition is bare",
			b.Bin(ir.OpAdd, va, b.Bin(ir.OpMul, vb, vc, types.TypeInt), types.TypeInt),
			"a + b * c",
		},
		{
			"right-nested division keeps parens",
			b.Bin(ir.OpDiv, va, b.Bin(ir.OpDiv, vb, vc, types.TypeInt), types.TypeInt),
			"a / (b / c)",
		},
		{
			"right-nested shift keeps parens",
			b.Bin(ir.OpShl, va, b.Bin(ir.OpShl, vb, vc, types.TypeInt), types.TypeInt),
			"a << (b << c)",
		},
		{
			"and under or is bare",
			b.Bin(ir.OpOr, va, b.Bin(ir.OpAnd, vb, vc, types.TypeBool), types.TypeBool),
			"a || b && c",
		},
		{
			"or under and wraps",
			b.Bin(ir.OpAnd, b.Bin(ir.OpOr, va, vb, types.TypeBool), vc, types.TypeBool),
			"(a || b) && c",
		},
		{
			"relational under equality is bare",
			b.Bin(ir.OpEq,
				b.Bin(ir.OpLt, va, vb, types.TypeBool),
				b.Bin(ir.OpLt, vc, vd, types.TypeBool),
				types.TypeBool),
			"a < b == c < d",
		},
		{
			"bitor under bitand wraps",
			b.Bin(ir.OpBitAnd, b.Bin(ir.OpBitOr, va, vb, types.TypeInt), vc, types.TypeInt),
			"(a | b) & c",
		},
	}
	for _, tt := range tests {
		if got := render(tt.x, PrioStatement); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestUnarySpacing(t *testing.T) {
	b := ir.NewBuilder()
	x := b.Ref("x", types.TypeInt)

	neg := b.Unary(ir.OpNeg, x, types.TypeInt)
	negneg := b.Unary(ir.OpNeg, neg, types.TypeInt)
	if got := render(negneg, PrioStatement); got != "- -x" {
		t.Errorf("nested negation: got %q, want %q", got, "- -x")
	}

	dec := b.Unary(ir.OpDec, x, types.TypeInt)
	negdec := b.Unary(ir.OpNeg, dec, types.TypeInt)
	if got := render(negdec, PrioStatement); got != "- --x" {
		t.Errorf("negated predecrement: got %q, want %q", got, "- --x")
	}

	if got := render(neg, PrioStatement); got != "-x" {
		t.Errorf("single negation: got %q, want %q", got, "-x")
	}

	and := b.Bin(ir.OpAnd, b.Ref("p", types.TypeBool), b.Ref("q", types.TypeBool), types.TypeBool)
	not := b.Unary(ir.OpNot, and, types.TypeBool)
	if got := render(not, PrioStatement); got != "!(p && q)" {
		t.Errorf("negated conjunction: got %q, want %q", got, "!(p && q)")
	}
}

func TestConditionalParenthesization(t *testing.T) {
	b := ir.NewBuilder()
	va := b.Ref("a", types.TypeBool)
	vb := b.Ref("b", types.TypeInt)
	vc := b.Ref("c", types.TypeInt)

	sel := b.Select(va, vb, vc, types.TypeInt)
	if got := render(sel, PrioStatement); got != "a ? b : c" {
		t.Errorf("bare conditional: got %q", got)
	}

	sum := b.Bin(ir.OpAdd, sel, vb, types.TypeInt)
	if got := render(sum, PrioStatement); got != "(a ? b : c) + b" {
		t.Errorf("conditional under addition: got %q", got)
	}

	nested := b.Select(va, b.Select(va, vb, vc, types.TypeInt), vc, types.TypeInt)
	if got := render(nested, PrioStatement); got != "a ? a ? b : c : c" {
		t.Errorf("nested conditional branch: got %q", got)
	}
}

func TestAssignmentPriorities(t *testing.T) {
	b := ir.NewBuilder()
	va := b.Ref("a", types.TypeInt)
	vb := b.Ref("b", types.TypeInt)
	vc := b.Ref("c", types.TypeInt)

	assign := b.Assign(va, vb)
	if got := render(assign, PrioStatement); got != "a = b" {
		t.Errorf("plain assignment: got %q", got)
	}

	compound := b.Bin(ir.OpAddAssign, va, vb, types.TypeInt)
	sum := b.Bin(ir.OpAdd, compound, vc, types.TypeInt)
	if got := render(sum, PrioStatement); got != "(a += b) + c" {
		t.Errorf("compound assignment as operand: got %q", got)
	}

	guard := b.When(va, b.Bin(ir.OpGt, va, vb, types.TypeBool))
	chained := b.Assign(vc, guard)
	if got := render(chained, PrioStatement); got != "c = a when a > b" {
		t.Errorf("guard on assignment right: got %q", got)
	}
}

func TestIndexing(t *testing.T) {
	b := ir.NewBuilder()
	xs := b.Ref("xs", types.ArrayOf(types.TypeInt))
	s := b.Ref("s", types.TypeString)
	i := b.Ref("i", types.TypeInt)

	arr := b.Index(xs, i, types.TypeInt)
	if got := render(arr, PrioStatement); got != "xs[i]" {
		t.Errorf("array indexing: got %q", got)
	}

	ch := b.Index(s, i, types.TypeString)
	if got := render(ch, PrioStatement); got != "s.charAt(i)" {
		t.Errorf("string indexing: got %q", got)
	}
}

func TestTypeTestInline(t *testing.T) {
	b := ir.NewBuilder()
	x := b.Ref("x", types.ObjectOf("Shape"))
	flag := b.Ref("flag", types.TypeBool)

	is := b.Is(x, types.ObjectOf("Circle"), "c")
	if got := render(is, PrioStatement); got != "x is Circle c" {
		t.Errorf("bound type test: got %q", got)
	}

	bare := b.Is(x, types.ObjectOf("Circle"), "")
	and := b.Bin(ir.OpAnd, flag, bare, types.TypeBool)
	if got := render(and, PrioStatement); got != "flag && x is Circle" {
		t.Errorf("bare type test under conjunction: got %q", got)
	}
}

func TestInterpAndLambda(t *testing.T) {
	b := ir.NewBuilder()
	name := b.Ref("name", types.TypeString)

	in := b.InterpOf(b.Text("hello "), b.Arg(name), b.Text("!"))
	if got := render(in, PrioStatement); got != `$"hello {name}!"` {
		t.Errorf("interpolated string: got %q", got)
	}

	x := b.Ref("x", types.TypeInt)
	fn := b.Fn([]string{"x"}, b.Bin(ir.OpAdd, x, b.Int(1), types.TypeInt), types.ObjectOf("Func"))
	if got := render(fn, PrioStatement); got != "(x) => x + 1" {
		t.Errorf("lambda: got %q", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{3.0, "3.0"},
		{3.5, "3.5"},
		{-2.0, "-2.0"},
		{0.1, "0.1"},
		{123456.0, "123456.0"},
		{1e21, "1e+21"},
		{0, "0.0"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.v); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
