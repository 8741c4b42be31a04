// Package ir defines the language-neutral, fully typed tree the
// translation backends consume. Every expression node carries its
// resolved type and a stable NodeID assigned by the Builder; the ID is
// what emission state (hoisted temporaries) is keyed by.
package ir

import "github.com/strada-lang/strada/internal/types"

// NodeID identifies an expression node for the lifetime of its tree.
type NodeID uint32

// Op enumerates prefix and binary operators.
type Op int

const (
	OpInvalid Op = iota

	// Prefix operators.
	OpInc
	OpDec
	OpNeg
	OpBitNot
	OpNot

	// Binary operators.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpShl
	OpShr
	OpBitAnd
	OpBitXor
	OpBitOr
	OpAnd
	OpOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpRemAssign
	OpShlAssign
	OpShrAssign
	OpAndAssign
	OpXorAssign
	OpOrAssign
	OpIndex
	OpIs   // type test, optionally binding a pattern variable
	OpWhen // guard: left filtered by right
)

// IsCompoundAssign reports whether op is an assignment or
// compound-assignment operator.
func (op Op) IsCompoundAssign() bool {
	return op >= OpAssign && op <= OpOrAssign
}

// Symbol returns the textual operator shared across the curly-brace
// family.
func (op Op) Symbol() string {
	switch op {
	case OpInc:
		return "++"
	case OpDec:
		return "--"
	case OpNeg:
		return "-"
	case OpBitNot:
		return "~"
	case OpNot:
		return "!"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpBitAnd:
		return "&"
	case OpBitXor:
		return "^"
	case OpBitOr:
		return "|"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAssign:
		return "="
	case OpAddAssign:
		return "+="
	case OpSubAssign:
		return "-="
	case OpMulAssign:
		return "*="
	case OpDivAssign:
		return "/="
	case OpRemAssign:
		return "%="
	case OpShlAssign:
		return "<<="
	case OpShrAssign:
		return ">>="
	case OpAndAssign:
		return "&="
	case OpXorAssign:
		return "^="
	case OpOrAssign:
		return "|="
	default:
		return "?"
	}
}

// RegexFlags is the combined option bit-flags of a regex literal. The
// front end has already merged per-flag tokens into one value.
type RegexFlags uint8

const (
	RegexIgnoreCase RegexFlags = 1 << iota
	RegexMultiline
	RegexDotAll
	RegexGlobal
)

// --- Program structure ---

// Module represents a single translated source file.
type Module struct {
	Name      string
	Functions []*Function
}

// Function represents a function declaration.
type Function struct {
	Name   string
	Params []*Param
	Return *types.Type
	Body   []Stmt
}

// Param represents a function parameter.
type Param struct {
	Name string
	Type *types.Type
}

// --- Statements ---

// Stmt is the interface for all statement nodes.
type Stmt interface {
	stmtNode()
}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	E Expr
}

func (*ExprStmt) stmtNode() {}

// If represents an if/else statement. An else-if chain is encoded as
// an Else slice holding a single If.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if no else branch
}

func (*If) stmtNode() {}

// While represents a while loop.
type While struct {
	Cond Expr
	Body []Stmt
}

func (*While) stmtNode() {}

// Switch represents a switch statement with ordered cases and an
// optional default block.
type Switch struct {
	Tag     Expr
	Cases   []*Case
	Default []Stmt // nil if absent
}

func (*Switch) stmtNode() {}

// Case is a single switch case.
type Case struct {
	Value Expr
	Body  []Stmt
}

// Return represents a return statement.
type Return struct {
	Value Expr // nil for bare return
}

func (*Return) stmtNode() {}

// --- Expressions ---

// Expr is the interface for all expression nodes.
type Expr interface {
	ExprType() *types.Type
	Ident() NodeID
	exprNode()
}

// IntLit represents an integer literal.
type IntLit struct {
	ID    NodeID
	Value int64
	Type  *types.Type
}

func (e *IntLit) ExprType() *types.Type { return e.Type }
func (e *IntLit) Ident() NodeID         { return e.ID }
func (*IntLit) exprNode()               {}

// FloatLit represents a floating-point literal. The value, not its
// source spelling, is kept; backends format it round-trip exactly.
type FloatLit struct {
	ID    NodeID
	Value float64
	Type  *types.Type
}

func (e *FloatLit) ExprType() *types.Type { return e.Type }
func (e *FloatLit) Ident() NodeID         { return e.ID }
func (*FloatLit) exprNode()               {}

// StringLit represents a string literal (unescaped value).
type StringLit struct {
	ID    NodeID
	Value string
	Type  *types.Type
}

func (e *StringLit) ExprType() *types.Type { return e.Type }
func (e *StringLit) Ident() NodeID         { return e.ID }
func (*StringLit) exprNode()               {}

// BoolLit represents a boolean literal.
type BoolLit struct {
	ID    NodeID
	Value bool
	Type  *types.Type
}

func (e *BoolLit) ExprType() *types.Type { return e.Type }
func (e *BoolLit) Ident() NodeID         { return e.ID }
func (*BoolLit) exprNode()               {}

// NullLit represents the null literal.
type NullLit struct {
	ID   NodeID
	Type *types.Type
}

func (e *NullLit) ExprType() *types.Type { return e.Type }
func (e *NullLit) Ident() NodeID         { return e.ID }
func (*NullLit) exprNode()               {}

// Unary represents a prefix operation.
type Unary struct {
	ID      NodeID
	Op      Op
	Operand Expr
	Type    *types.Type
}

func (e *Unary) ExprType() *types.Type { return e.Type }
func (e *Unary) Ident() NodeID         { return e.ID }
func (*Unary) exprNode()               {}

// Binary represents a binary operation, including assignment,
// indexing, the type test (OpIs) and the guard (OpWhen). For OpIs the
// right operand is a *PatternVar.
type Binary struct {
	ID    NodeID
	Op    Op
	Left  Expr
	Right Expr
	Type  *types.Type
}

func (e *Binary) ExprType() *types.Type { return e.Type }
func (e *Binary) Ident() NodeID         { return e.ID }
func (*Binary) exprNode()               {}

// PatternVar is the right operand of a type test: the tested type and
// the name it binds on success, or "" for a bare test.
type PatternVar struct {
	ID   NodeID
	Name string
	Type *types.Type // the tested (narrowed) type
}

func (e *PatternVar) ExprType() *types.Type { return e.Type }
func (e *PatternVar) Ident() NodeID         { return e.ID }
func (*PatternVar) exprNode()               {}

// SymbolRef references a name, optionally qualified by a left-hand
// object expression (Of == nil for a plain reference).
type SymbolRef struct {
	ID   NodeID
	Of   Expr
	Name string
	Type *types.Type
}

func (e *SymbolRef) ExprType() *types.Type { return e.Type }
func (e *SymbolRef) Ident() NodeID         { return e.ID }
func (*SymbolRef) exprNode()               {}

// Call represents a call; Target is the callee reference (a SymbolRef,
// qualified for method calls).
type Call struct {
	ID     NodeID
	Target Expr
	Args   []Expr
	Type   *types.Type
}

func (e *Call) ExprType() *types.Type { return e.Type }
func (e *Call) Ident() NodeID         { return e.ID }
func (*Call) exprNode()               {}

// FieldInit is one ordered field initializer of a NewObject.
type FieldInit struct {
	Name  string
	Value Expr
}

// NewObject represents object construction. With Fields it is an
// aggregate initializer and cannot be rendered inline everywhere; the
// hoister materializes it as a statement-scope temporary.
type NewObject struct {
	ID     NodeID
	Fields []FieldInit
	Type   *types.Type // the constructed object type
}

func (e *NewObject) ExprType() *types.Type { return e.Type }
func (e *NewObject) Ident() NodeID         { return e.ID }
func (*NewObject) exprNode()               {}

// NewArray represents array allocation with an element type and a
// length expression.
type NewArray struct {
	ID   NodeID
	Len  Expr
	Type *types.Type // the array type; its Elem is the element type
}

func (e *NewArray) ExprType() *types.Type { return e.Type }
func (e *NewArray) Ident() NodeID         { return e.ID }
func (*NewArray) exprNode()               {}

// Cond represents a conditional (ternary) select.
type Cond struct {
	ID   NodeID
	Cond Expr
	Then Expr
	Else Expr
	Type *types.Type
}

func (e *Cond) ExprType() *types.Type { return e.Type }
func (e *Cond) Ident() NodeID         { return e.ID }
func (*Cond) exprNode()               {}

// InterpPart is one part of an interpolated string: literal text when
// Arg is nil, an embedded argument otherwise.
type InterpPart struct {
	Text string
	Arg  Expr
}

// Interp represents an interpolated string.
type Interp struct {
	ID    NodeID
	Parts []InterpPart
	Type  *types.Type
}

func (e *Interp) ExprType() *types.Type { return e.Type }
func (e *Interp) Ident() NodeID         { return e.ID }
func (*Interp) exprNode()               {}

// Lambda represents an anonymous function with an expression body.
// Lambdas are emission leaves: their bodies are rendered in place and
// never hoisted into.
type Lambda struct {
	ID     NodeID
	Params []string
	Body   Expr
	Type   *types.Type
}

func (e *Lambda) ExprType() *types.Type { return e.Type }
func (e *Lambda) Ident() NodeID         { return e.ID }
func (*Lambda) exprNode()               {}

// VarDecl is a variable declaration used in expression position.
type VarDecl struct {
	ID   NodeID
	Name string
	Init Expr // nil for a bare declaration
	Type *types.Type
}

func (e *VarDecl) ExprType() *types.Type { return e.Type }
func (e *VarDecl) Ident() NodeID         { return e.ID }
func (*VarDecl) exprNode()               {}

// RegexLit represents a regex literal with combined option flags.
type RegexLit struct {
	ID      NodeID
	Pattern string
	Flags   RegexFlags
	Type    *types.Type
}

func (e *RegexLit) ExprType() *types.Type { return e.Type }
func (e *RegexLit) Ident() NodeID         { return e.ID }
func (*RegexLit) exprNode()               {}
