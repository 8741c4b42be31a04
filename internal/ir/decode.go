package ir

import (
	"fmt"

	"github.com/segmentio/encoding/json"

	"github.com/strada-lang/strada/internal/types"
)

// DecodeModule parses the serialized IR document the front end
// produces: one module with its functions, statements and
// expressions, every expression already typed. Node IDs are assigned
// during decoding.
func DecodeModule(data []byte) (*Module, error) {
	var jm jsonModule
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("malformed IR document: %w", err)
	}
	d := &decoder{b: NewBuilder()}
	mod := &Module{Name: jm.Name}
	for _, jf := range jm.Functions {
		f, err := d.function(jf)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", jf.Name, err)
		}
		mod.Functions = append(mod.Functions, f)
	}
	return mod, nil
}

type jsonModule struct {
	Name      string         `json:"name"`
	Functions []jsonFunction `json:"functions"`
}

type jsonFunction struct {
	Name   string            `json:"name"`
	Params []jsonParam       `json:"params"`
	Return json.RawMessage   `json:"return"`
	Body   []json.RawMessage `json:"body"`
}

type jsonParam struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

type jsonField struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type jsonPart struct {
	Text string          `json:"text"`
	Arg  json.RawMessage `json:"arg"`
}

type jsonCase struct {
	Value json.RawMessage   `json:"value"`
	Body  []json.RawMessage `json:"body"`
}

type jsonStmt struct {
	Stmt    string            `json:"stmt"`
	Expr    json.RawMessage   `json:"expr"`
	Cond    json.RawMessage   `json:"cond"`
	Then    []json.RawMessage `json:"then"`
	Else    []json.RawMessage `json:"else"`
	Body    []json.RawMessage `json:"body"`
	Tag     json.RawMessage   `json:"tag"`
	Cases   []jsonCase        `json:"cases"`
	Default []json.RawMessage `json:"default"`
	Value   json.RawMessage   `json:"value"`
}

type jsonExpr struct {
	Expr    string            `json:"expr"`
	Value   json.RawMessage   `json:"value"`
	Name    string            `json:"name"`
	Of      json.RawMessage   `json:"of"`
	Op      string            `json:"op"`
	Operand json.RawMessage   `json:"operand"`
	Left    json.RawMessage   `json:"left"`
	Right   json.RawMessage   `json:"right"`
	Target  json.RawMessage   `json:"target"`
	Bind    string            `json:"bind"`
	Args    []json.RawMessage `json:"args"`
	Fields  []jsonField       `json:"fields"`
	Elem    json.RawMessage   `json:"elem"`
	Len     json.RawMessage   `json:"len"`
	Cond    json.RawMessage   `json:"cond"`
	Then    json.RawMessage   `json:"then"`
	Else    json.RawMessage   `json:"else"`
	Parts   []jsonPart        `json:"parts"`
	Params  []string          `json:"params"`
	Body    json.RawMessage   `json:"body"`
	Init    json.RawMessage   `json:"init"`
	Pattern string            `json:"pattern"`
	Flags   string            `json:"flags"`
	Type    json.RawMessage   `json:"type"`
}

type decoder struct {
	b *Builder
}

func (d *decoder) function(jf jsonFunction) (*Function, error) {
	ret, err := d.typ(jf.Return)
	if err != nil {
		return nil, err
	}
	f := &Function{Name: jf.Name, Return: ret}
	for _, jp := range jf.Params {
		t, err := d.typ(jp.Type)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", jp.Name, err)
		}
		f.Params = append(f.Params, &Param{Name: jp.Name, Type: t})
	}
	f.Body, err = d.stmts(jf.Body)
	return f, err
}

func (d *decoder) stmts(raws []json.RawMessage) ([]Stmt, error) {
	var out []Stmt
	for _, raw := range raws {
		s, err := d.stmt(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) stmt(raw json.RawMessage) (Stmt, error) {
	var js jsonStmt
	if err := json.Unmarshal(raw, &js); err != nil {
		return nil, fmt.Errorf("malformed statement: %w", err)
	}
	switch js.Stmt {
	case "expr":
		e, err := d.expr(js.Expr)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{E: e}, nil

	case "if":
		cond, err := d.expr(js.Cond)
		if err != nil {
			return nil, err
		}
		then, err := d.stmts(js.Then)
		if err != nil {
			return nil, err
		}
		els, err := d.stmts(js.Else)
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Then: then, Else: els}, nil

	case "while":
		cond, err := d.expr(js.Cond)
		if err != nil {
			return nil, err
		}
		body, err := d.stmts(js.Body)
		if err != nil {
			return nil, err
		}
		return &While{Cond: cond, Body: body}, nil

	case "switch":
		tag, err := d.expr(js.Tag)
		if err != nil {
			return nil, err
		}
		sw := &Switch{Tag: tag}
		for _, jc := range js.Cases {
			v, err := d.expr(jc.Value)
			if err != nil {
				return nil, err
			}
			body, err := d.stmts(jc.Body)
			if err != nil {
				return nil, err
			}
			sw.Cases = append(sw.Cases, &Case{Value: v, Body: body})
		}
		sw.Default, err = d.stmts(js.Default)
		if err != nil {
			return nil, err
		}
		return sw, nil

	case "return":
		if js.Value == nil {
			return &Return{}, nil
		}
		v, err := d.expr(js.Value)
		if err != nil {
			return nil, err
		}
		return &Return{Value: v}, nil

	default:
		return nil, fmt.Errorf("unknown statement kind %q", js.Stmt)
	}
}

func (d *decoder) expr(raw json.RawMessage) (Expr, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing expression")
	}
	var je jsonExpr
	if err := json.Unmarshal(raw, &je); err != nil {
		return nil, fmt.Errorf("malformed expression: %w", err)
	}
	switch je.Expr {
	case "int":
		var v int64
		if err := json.Unmarshal(je.Value, &v); err != nil {
			return nil, fmt.Errorf("int literal: %w", err)
		}
		t, err := d.typeOr(je.Type, types.TypeInt)
		if err != nil {
			return nil, err
		}
		return d.b.IntOf(v, t), nil

	case "float":
		var v float64
		if err := json.Unmarshal(je.Value, &v); err != nil {
			return nil, fmt.Errorf("float literal: %w", err)
		}
		t, err := d.typeOr(je.Type, types.TypeDouble)
		if err != nil {
			return nil, err
		}
		return &FloatLit{ID: d.b.id(), Value: v, Type: t}, nil

	case "string":
		var v string
		if err := json.Unmarshal(je.Value, &v); err != nil {
			return nil, fmt.Errorf("string literal: %w", err)
		}
		return d.b.Str(v), nil

	case "bool":
		var v bool
		if err := json.Unmarshal(je.Value, &v); err != nil {
			return nil, fmt.Errorf("bool literal: %w", err)
		}
		return d.b.Bool(v), nil

	case "null":
		return d.b.Null(), nil

	case "ref":
		t, err := d.typ(je.Type)
		if err != nil {
			return nil, err
		}
		if je.Of == nil {
			return d.b.Ref(je.Name, t), nil
		}
		of, err := d.expr(je.Of)
		if err != nil {
			return nil, err
		}
		return d.b.Field(of, je.Name, t), nil

	case "unary":
		op, err := prefixOp(je.Op)
		if err != nil {
			return nil, err
		}
		operand, err := d.expr(je.Operand)
		if err != nil {
			return nil, err
		}
		t, err := d.typeOr(je.Type, operand.ExprType())
		if err != nil {
			return nil, err
		}
		return d.b.Unary(op, operand, t), nil

	case "binary":
		op, err := binaryOp(je.Op)
		if err != nil {
			return nil, err
		}
		left, err := d.expr(je.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.expr(je.Right)
		if err != nil {
			return nil, err
		}
		t, err := d.typeOr(je.Type, left.ExprType())
		if err != nil {
			return nil, err
		}
		return d.b.Bin(op, left, right, t), nil

	case "is":
		v, err := d.expr(je.Value)
		if err != nil {
			return nil, err
		}
		t, err := d.typ(je.Target)
		if err != nil {
			return nil, err
		}
		return d.b.Is(v, t, je.Bind), nil

	case "when":
		v, err := d.expr(je.Value)
		if err != nil {
			return nil, err
		}
		cond, err := d.expr(je.Cond)
		if err != nil {
			return nil, err
		}
		return d.b.When(v, cond), nil

	case "call":
		target, err := d.expr(je.Target)
		if err != nil {
			return nil, err
		}
		t, err := d.typ(je.Type)
		if err != nil {
			return nil, err
		}
		args := make([]Expr, 0, len(je.Args))
		for _, ja := range je.Args {
			a, err := d.expr(ja)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
		return d.b.Call(target, t, args...), nil

	case "new":
		t, err := d.typ(je.Type)
		if err != nil {
			return nil, err
		}
		fields := make([]FieldInit, 0, len(je.Fields))
		for _, jf := range je.Fields {
			v, err := d.expr(jf.Value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", jf.Name, err)
			}
			fields = append(fields, FieldInit{Name: jf.Name, Value: v})
		}
		return d.b.New(t, fields...), nil

	case "newarray":
		elem, err := d.typ(je.Elem)
		if err != nil {
			return nil, err
		}
		length, err := d.expr(je.Len)
		if err != nil {
			return nil, err
		}
		return d.b.NewArr(elem, length), nil

	case "cond":
		cond, err := d.expr(je.Cond)
		if err != nil {
			return nil, err
		}
		then, err := d.expr(je.Then)
		if err != nil {
			return nil, err
		}
		els, err := d.expr(je.Else)
		if err != nil {
			return nil, err
		}
		t, err := d.typeOr(je.Type, then.ExprType())
		if err != nil {
			return nil, err
		}
		return d.b.Select(cond, then, els, t), nil

	case "interp":
		parts := make([]InterpPart, 0, len(je.Parts))
		for _, jp := range je.Parts {
			if jp.Arg != nil {
				a, err := d.expr(jp.Arg)
				if err != nil {
					return nil, err
				}
				parts = append(parts, InterpPart{Arg: a})
				continue
			}
			parts = append(parts, InterpPart{Text: jp.Text})
		}
		return d.b.InterpOf(parts...), nil

	case "lambda":
		body, err := d.expr(je.Body)
		if err != nil {
			return nil, err
		}
		t, err := d.typeOr(je.Type, types.ObjectOf("Func"))
		if err != nil {
			return nil, err
		}
		return d.b.Fn(je.Params, body, t), nil

	case "decl":
		t, err := d.typ(je.Type)
		if err != nil {
			return nil, err
		}
		var init Expr
		if je.Init != nil {
			init, err = d.expr(je.Init)
			if err != nil {
				return nil, err
			}
		}
		return d.b.Decl(je.Name, t, init), nil

	case "regex":
		flags, err := regexFlags(je.Flags)
		if err != nil {
			return nil, err
		}
		return d.b.Regex(je.Pattern, flags), nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", je.Expr)
	}
}

// typ decodes a type: a string name, {"range": [min, max]},
// {"object": "Name"}, or {"array": <type>}.
func (d *decoder) typ(raw json.RawMessage) (*types.Type, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing type")
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		switch name {
		case "null":
			return types.TypeNull, nil
		case "bool":
			return types.TypeBool, nil
		case "string":
			return types.TypeString, nil
		case "float":
			return types.TypeFloat, nil
		case "double":
			return types.TypeDouble, nil
		case "int":
			return types.TypeInt, nil
		case "long":
			return types.TypeLong, nil
		case "void":
			return types.TypeVoid, nil
		default:
			return nil, fmt.Errorf("unknown type name %q", name)
		}
	}
	var obj struct {
		Range  []int64         `json:"range"`
		Object string          `json:"object"`
		Array  json.RawMessage `json:"array"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("malformed type: %w", err)
	}
	switch {
	case len(obj.Range) == 2:
		if obj.Range[0] > obj.Range[1] {
			return nil, fmt.Errorf("range type with min %d > max %d", obj.Range[0], obj.Range[1])
		}
		return types.Ranged(obj.Range[0], obj.Range[1]), nil
	case obj.Object != "":
		return types.ObjectOf(obj.Object), nil
	case obj.Array != nil:
		elem, err := d.typ(obj.Array)
		if err != nil {
			return nil, err
		}
		return types.ArrayOf(elem), nil
	}
	return nil, fmt.Errorf("unrecognized type %s", string(raw))
}

func (d *decoder) typeOr(raw json.RawMessage, fallback *types.Type) (*types.Type, error) {
	if raw == nil {
		return fallback, nil
	}
	return d.typ(raw)
}

func prefixOp(sym string) (Op, error) {
	switch sym {
	case "++":
		return OpInc, nil
	case "--":
		return OpDec, nil
	case "-":
		return OpNeg, nil
	case "~":
		return OpBitNot, nil
	case "!":
		return OpNot, nil
	}
	return OpInvalid, fmt.Errorf("unknown prefix operator %q", sym)
}

func binaryOp(sym string) (Op, error) {
	switch sym {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	case "%":
		return OpRem, nil
	case "<<":
		return OpShl, nil
	case ">>":
		return OpShr, nil
	case "&":
		return OpBitAnd, nil
	case "^":
		return OpBitXor, nil
	case "|":
		return OpBitOr, nil
	case "&&":
		return OpAnd, nil
	case "||":
		return OpOr, nil
	case "==":
		return OpEq, nil
	case "!=":
		return OpNe, nil
	case "<":
		return OpLt, nil
	case "<=":
		return OpLe, nil
	case ">":
		return OpGt, nil
	case ">=":
		return OpGe, nil
	case "=":
		return OpAssign, nil
	case "+=":
		return OpAddAssign, nil
	case "-=":
		return OpSubAssign, nil
	case "*=":
		return OpMulAssign, nil
	case "/=":
		return OpDivAssign, nil
	case "%=":
		return OpRemAssign, nil
	case "<<=":
		return OpShlAssign, nil
	case ">>=":
		return OpShrAssign, nil
	case "&=":
		return OpAndAssign, nil
	case "^=":
		return OpXorAssign, nil
	case "|=":
		return OpOrAssign, nil
	case "[]":
		return OpIndex, nil
	}
	return OpInvalid, fmt.Errorf("unknown binary operator %q", sym)
}

func regexFlags(letters string) (RegexFlags, error) {
	var flags RegexFlags
	for _, r := range letters {
		switch r {
		case 'g':
			flags |= RegexGlobal
		case 'i':
			flags |= RegexIgnoreCase
		case 'm':
			flags |= RegexMultiline
		case 's':
			flags |= RegexDotAll
		default:
			return 0, fmt.Errorf("unknown regex flag %q", string(r))
		}
	}
	return flags, nil
}
