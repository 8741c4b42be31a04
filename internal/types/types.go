// Package types describes the resolved type attached to every IR
// expression and picks native machine representations for values
// whose static range is already known.
package types

import "fmt"

// Kind classifies a resolved type.
type Kind int

const (
	Null Kind = iota
	Bool
	String
	Float      // single precision
	FloatOrInt // numeric literal usable as either; rendered single precision
	Double
	Int   // default integer width
	Long  // 64-bit integer
	Range // integer with known inclusive bounds
	Array
	Object
	Void
)

// Type is a resolved IR type. Only the fields relevant to the Kind
// are set: Min/Max for Range, Name for Object, Elem for Array.
type Type struct {
	Kind Kind
	Min  int64
	Max  int64
	Name string
	Elem *Type
}

// Builtin types shared across the IR.
var (
	TypeNull   = &Type{Kind: Null}
	TypeBool   = &Type{Kind: Bool}
	TypeString = &Type{Kind: String}
	TypeFloat  = &Type{Kind: Float}
	TypeDouble = &Type{Kind: Double}
	TypeInt    = &Type{Kind: Int}
	TypeLong   = &Type{Kind: Long}
	TypeVoid   = &Type{Kind: Void}
)

// Ranged returns an integer type with known inclusive bounds.
func Ranged(min, max int64) *Type {
	if min > max {
		panic(fmt.Sprintf("internal error: range type with min %d > max %d", min, max))
	}
	return &Type{Kind: Range, Min: min, Max: max}
}

// ObjectOf returns an object type with the given name.
func ObjectOf(name string) *Type {
	return &Type{Kind: Object, Name: name}
}

// ArrayOf returns an array type over the given element type.
func ArrayOf(elem *Type) *Type {
	return &Type{Kind: Array, Elem: elem}
}

// IsString reports whether t is a string type.
func (t *Type) IsString() bool {
	return t != nil && t.Kind == String
}

// IsIntegerLike reports whether t narrows through the integer rules.
func (t *Type) IsIntegerLike() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case Int, Long, Range:
		return true
	}
	return false
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Float:
		return "float"
	case FloatOrInt:
		return "float|int"
	case Double:
		return "double"
	case Int:
		return "int"
	case Long:
		return "long"
	case Range:
		return fmt.Sprintf("int[%d..%d]", t.Min, t.Max)
	case Array:
		return t.Elem.String() + "[]"
	case Object:
		return t.Name
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// Repr is a native machine representation chosen by Narrow.
type Repr int

const (
	ReprNone Repr = iota // null; no storage
	ReprBool
	ReprString
	ReprFloat32
	ReprFloat64
	ReprInt8
	ReprUint8
	ReprInt16
	ReprUint16
	ReprInt32
	ReprInt64
	ReprObject
)

func (r Repr) String() string {
	switch r {
	case ReprNone:
		return "none"
	case ReprBool:
		return "bool"
	case ReprString:
		return "string"
	case ReprFloat32:
		return "float32"
	case ReprFloat64:
		return "float64"
	case ReprInt8:
		return "int8"
	case ReprUint8:
		return "uint8"
	case ReprInt16:
		return "int16"
	case ReprUint16:
		return "uint16"
	case ReprInt32:
		return "int32"
	case ReprInt64:
		return "int64"
	case ReprObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether r is an integer or floating representation.
func (r Repr) IsNumeric() bool {
	switch r {
	case ReprFloat32, ReprFloat64, ReprInt8, ReprUint8, ReprInt16, ReprUint16, ReprInt32, ReprInt64:
		return true
	}
	return false
}

// Narrow picks the smallest native representation that safely holds a
// value of type t. A Range type narrows to the smallest width whose
// own range is a superset of [Min, Max]. promote forces the default
// integer width for integer-like types, for contexts where narrow
// operands are not legal.
func Narrow(t *Type, promote bool) Repr {
	if t == nil {
		return ReprNone
	}
	switch t.Kind {
	case Null:
		return ReprNone
	case Float, FloatOrInt:
		return ReprFloat32
	case Double:
		return ReprFloat64
	case Bool:
		return ReprBool
	case String:
		return ReprString
	}
	if t.IsIntegerLike() {
		if t.Kind == Long {
			return ReprInt64
		}
		if promote || t.Kind == Int {
			return ReprInt32
		}
		if t.Min < 0 {
			switch {
			case t.Min >= -128 && t.Max <= 127:
				return ReprInt8
			case t.Min >= -32768 && t.Max <= 32767:
				return ReprInt16
			default:
				return ReprInt32
			}
		}
		switch {
		case t.Max <= 255:
			return ReprUint8
		case t.Max <= 65535:
			return ReprUint16
		default:
			return ReprInt32
		}
	}
	return ReprObject
}
