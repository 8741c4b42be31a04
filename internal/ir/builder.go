package ir

import "github.com/strada-lang/strada/internal/types"

// Builder constructs IR nodes and assigns each expression a NodeID
// that is unique within the tree being built. All trees handed to a
// backend must come from one Builder so that IDs never collide.
type Builder struct {
	next NodeID
}

// NewBuilder creates a Builder whose first node gets ID 1.
func NewBuilder() *Builder {
	return &Builder{next: 1}
}

func (b *Builder) id() NodeID {
	id := b.next
	b.next++
	return id
}

// Int creates an integer literal of the default int type.
func (b *Builder) Int(v int64) *IntLit {
	return &IntLit{ID: b.id(), Value: v, Type: types.TypeInt}
}

// IntOf creates an integer literal with an explicit type (for ranged
// or long literals).
func (b *Builder) IntOf(v int64, t *types.Type) *IntLit {
	return &IntLit{ID: b.id(), Value: v, Type: t}
}

// Float creates a double-precision floating literal.
func (b *Builder) Float(v float64) *FloatLit {
	return &FloatLit{ID: b.id(), Value: v, Type: types.TypeDouble}
}

// Str creates a string literal.
func (b *Builder) Str(v string) *StringLit {
	return &StringLit{ID: b.id(), Value: v, Type: types.TypeString}
}

// Bool creates a boolean literal.
func (b *Builder) Bool(v bool) *BoolLit {
	return &BoolLit{ID: b.id(), Value: v, Type: types.TypeBool}
}

// Null creates the null literal.
func (b *Builder) Null() *NullLit {
	return &NullLit{ID: b.id(), Type: types.TypeNull}
}

// Ref creates an unqualified symbol reference.
func (b *Builder) Ref(name string, t *types.Type) *SymbolRef {
	return &SymbolRef{ID: b.id(), Name: name, Type: t}
}

// Field creates a symbol reference qualified by an object expression.
func (b *Builder) Field(of Expr, name string, t *types.Type) *SymbolRef {
	return &SymbolRef{ID: b.id(), Of: of, Name: name, Type: t}
}

// Unary creates a prefix operation.
func (b *Builder) Unary(op Op, operand Expr, t *types.Type) *Unary {
	return &Unary{ID: b.id(), Op: op, Operand: operand, Type: t}
}

// Bin creates a binary operation.
func (b *Builder) Bin(op Op, left, right Expr, t *types.Type) *Binary {
	return &Binary{ID: b.id(), Op: op, Left: left, Right: right, Type: t}
}

// Assign creates a plain assignment; its type is the target's type.
func (b *Builder) Assign(target, value Expr) *Binary {
	return &Binary{ID: b.id(), Op: OpAssign, Left: target, Right: value, Type: target.ExprType()}
}

// Index creates an indexing operation.
func (b *Builder) Index(obj, index Expr, t *types.Type) *Binary {
	return &Binary{ID: b.id(), Op: OpIndex, Left: obj, Right: index, Type: t}
}

// Is creates a type test. bind is the pattern variable bound on
// success, or "" for a bare test.
func (b *Builder) Is(value Expr, target *types.Type, bind string) *Binary {
	pv := &PatternVar{ID: b.id(), Name: bind, Type: target}
	return &Binary{ID: b.id(), Op: OpIs, Left: value, Right: pv, Type: types.TypeBool}
}

// When creates a guard: left filtered by the right condition.
func (b *Builder) When(value, cond Expr) *Binary {
	return &Binary{ID: b.id(), Op: OpWhen, Left: value, Right: cond, Type: value.ExprType()}
}

// Call creates a call of the given target reference.
func (b *Builder) Call(target Expr, t *types.Type, args ...Expr) *Call {
	return &Call{ID: b.id(), Target: target, Args: args, Type: t}
}

// New creates an object construction, with field initializers when
// fields are given.
func (b *Builder) New(t *types.Type, fields ...FieldInit) *NewObject {
	return &NewObject{ID: b.id(), Fields: fields, Type: t}
}

// NewArr creates an array allocation.
func (b *Builder) NewArr(elem *types.Type, length Expr) *NewArray {
	return &NewArray{ID: b.id(), Len: length, Type: types.ArrayOf(elem)}
}

// Select creates a conditional (ternary) select.
func (b *Builder) Select(cond, then, els Expr, t *types.Type) *Cond {
	return &Cond{ID: b.id(), Cond: cond, Then: then, Else: els, Type: t}
}

// InterpOf creates an interpolated string from parts built with Text
// and Arg.
func (b *Builder) InterpOf(parts ...InterpPart) *Interp {
	return &Interp{ID: b.id(), Parts: parts, Type: types.TypeString}
}

// Text creates a literal-text interpolation part.
func (b *Builder) Text(s string) InterpPart {
	return InterpPart{Text: s}
}

// Arg creates an embedded-argument interpolation part.
func (b *Builder) Arg(e Expr) InterpPart {
	return InterpPart{Arg: e}
}

// Fn creates a lambda.
func (b *Builder) Fn(params []string, body Expr, t *types.Type) *Lambda {
	return &Lambda{ID: b.id(), Params: params, Body: body, Type: t}
}

// Decl creates a variable declaration in expression position.
func (b *Builder) Decl(name string, t *types.Type, init Expr) *VarDecl {
	return &VarDecl{ID: b.id(), Name: name, Init: init, Type: t}
}

// Regex creates a regex literal with combined option flags.
func (b *Builder) Regex(pattern string, flags RegexFlags) *RegexLit {
	return &RegexLit{ID: b.id(), Pattern: pattern, Flags: flags, Type: types.ObjectOf("Regex")}
}
