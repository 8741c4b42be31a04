package ir

import (
	"strings"
	"testing"

	"github.com/strada-lang/strada/internal/types"
)

const sampleDoc = `{
	"name": "geo",
	"functions": [
		{
			"name": "dist",
			"params": [
				{"name": "a", "type": "int"},
				{"name": "b", "type": "int"}
			],
			"return": {"range": [0, 200]},
			"body": [
				{
					"stmt": "if",
					"cond": {"expr": "binary", "op": "<", "left": {"expr": "ref", "name": "a", "type": "int"}, "right": {"expr": "ref", "name": "b", "type": "int"}, "type": "bool"},
					"then": [
						{"stmt": "return", "value": {"expr": "binary", "op": "-", "left": {"expr": "ref", "name": "b", "type": "int"}, "right": {"expr": "ref", "name": "a", "type": "int"}, "type": "int"}}
					]
				},
				{"stmt": "return", "value": {"expr": "binary", "op": "-", "left": {"expr": "ref", "name": "a", "type": "int"}, "right": {"expr": "ref", "name": "b", "type": "int"}, "type": "int"}}
			]
		}
	]
}`

func TestDecodeModule(t *testing.T) {
	mod, err := DecodeModule([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	if mod.Name != "geo" {
		t.Errorf("module name = %q", mod.Name)
	}
	if len(mod.Functions) != 1 {
		t.Fatalf("function count = %d", len(mod.Functions))
	}
	f := mod.Functions[0]
	if f.Name != "dist" || len(f.Params) != 2 {
		t.Fatalf("unexpected function signature %q/%d", f.Name, len(f.Params))
	}
	if f.Return.Kind != types.Range || f.Return.Min != 0 || f.Return.Max != 200 {
		t.Errorf("return type = %s", f.Return)
	}
	ifStmt, ok := f.Body[0].(*If)
	if !ok {
		t.Fatalf("first statement is %T", f.Body[0])
	}
	cond, ok := ifStmt.Cond.(*Binary)
	if !ok || cond.Op != OpLt {
		t.Errorf("condition is %T", ifStmt.Cond)
	}
	if _, ok := f.Body[1].(*Return); !ok {
		t.Errorf("second statement is %T", f.Body[1])
	}
}

func TestDecodeExpressionKinds(t *testing.T) {
	doc := `{
		"name": "m",
		"functions": [{
			"name": "f",
			"params": [{"name": "s", "type": {"object": "Shape"}}],
			"return": "void",
			"body": [
				{"stmt": "expr", "expr": {
					"expr": "is",
					"value": {"expr": "ref", "name": "s", "type": {"object": "Shape"}},
					"target": {"object": "Circle"},
					"bind": "c"
				}},
				{"stmt": "expr", "expr": {
					"expr": "decl", "name": "xs", "type": {"array": "int"},
					"init": {"expr": "newarray", "elem": "int", "len": {"expr": "int", "value": 4}}
				}},
				{"stmt": "expr", "expr": {
					"expr": "decl", "name": "re", "type": {"object": "Regex"},
					"init": {"expr": "regex", "pattern": "a+", "flags": "gi"}
				}}
			]
		}]
	}`
	mod, err := DecodeModule([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	body := mod.Functions[0].Body

	is := body[0].(*ExprStmt).E.(*Binary)
	if is.Op != OpIs {
		t.Fatalf("op = %v", is.Op)
	}
	pv := is.Right.(*PatternVar)
	if pv.Name != "c" || pv.Type.Name != "Circle" {
		t.Errorf("pattern = %q %s", pv.Name, pv.Type)
	}

	decl := body[1].(*ExprStmt).E.(*VarDecl)
	arr, ok := decl.Init.(*NewArray)
	if !ok || arr.Type.Elem.Kind != types.Int {
		t.Errorf("array init = %T", decl.Init)
	}

	re := body[2].(*ExprStmt).E.(*VarDecl).Init.(*RegexLit)
	if re.Pattern != "a+" || re.Flags != RegexGlobal|RegexIgnoreCase {
		t.Errorf("regex = %q %v", re.Pattern, re.Flags)
	}
}

func TestDecodeAssignsUniqueIDs(t *testing.T) {
	mod, err := DecodeModule([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	seen := map[NodeID]bool{}
	var walk func(x Expr)
	walk = func(x Expr) {
		if x == nil {
			return
		}
		if seen[x.Ident()] {
			t.Fatalf("duplicate node ID %d", x.Ident())
		}
		seen[x.Ident()] = true
		if bin, ok := x.(*Binary); ok {
			walk(bin.Left)
			walk(bin.Right)
		}
	}
	for _, s := range mod.Functions[0].Body {
		switch st := s.(type) {
		case *If:
			walk(st.Cond)
		case *Return:
			walk(st.Value)
		}
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := []string{
		`{`,
		`{"name": "m", "functions": [{"name": "f", "return": "void", "body": [{"stmt": "jump"}]}]}`,
		`{"name": "m", "functions": [{"name": "f", "return": "quaternion", "body": []}]}`,
		`{"name": "m", "functions": [{"name": "f", "return": "void", "body": [{"stmt": "expr", "expr": {"expr": "regex", "pattern": "a", "flags": "x"}}]}]}`,
	}
	for _, doc := range cases {
		if _, err := DecodeModule([]byte(doc)); err == nil {
			t.Errorf("document accepted: %s", doc)
		}
	}
}

func TestDecodeErrorNamesFunction(t *testing.T) {
	doc := `{"name": "m", "functions": [{"name": "broken", "return": "void", "body": [{"stmt": "nope"}]}]}`
	_, err := DecodeModule([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("error should name the function, got %v", err)
	}
}
