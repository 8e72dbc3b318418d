// Package object defines Quest's runtime value model: the closed tagged
// union of values, their uniform method-dispatch surface, and lexical
// scope. The tree-walking evaluator that drives them is internal/evaluator.
package object

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ValueType is the type tag every Value answers to via Type().
type ValueType string

const (
	NIL_VALUE      ValueType = "Nil"
	BOOL_VALUE     ValueType = "Bool"
	INT_VALUE      ValueType = "Int"
	FLOAT_VALUE    ValueType = "Float"
	BIGINT_VALUE   ValueType = "BigInt"
	STR_VALUE      ValueType = "Str"
	BYTES_VALUE    ValueType = "Bytes"
	ARRAY_VALUE    ValueType = "Array"
	DICT_VALUE     ValueType = "Dict"
	FUN_VALUE      ValueType = "Fun"
	USERFUN_VALUE  ValueType = "UserFun"
	TYPE_VALUE     ValueType = "Type"
	STRUCT_VALUE   ValueType = "Struct"
	TRAIT_VALUE    ValueType = "Trait"
	MODULE_VALUE   ValueType = "Module"
	EXCEPTION_VALUE ValueType = "Exception"
)

// Value is the interface every Quest runtime value implements.
type Value interface {
	Type() ValueType
	Inspect() string
	Truthy() bool
}

// Hashable is implemented by values that may be used as Dict keys.
// Containers with interior mutability (Array, Dict, Struct) are not hashable.
type Hashable interface {
	HashKey() string
}

// --- Nil ---

type Nil struct{}

var NilInstance = Nil{}

func (Nil) Type() ValueType  { return NIL_VALUE }
func (Nil) Inspect() string  { return "nil" }
func (Nil) Truthy() bool     { return false }
func (Nil) HashKey() string  { return "nil:" }

// --- Bool ---

type Bool struct{ Value bool }

var (
	TrueInstance  = &Bool{Value: true}
	FalseInstance = &Bool{Value: false}
)

func NativeBool(b bool) *Bool {
	if b {
		return TrueInstance
	}
	return FalseInstance
}

func (b *Bool) Type() ValueType { return BOOL_VALUE }
func (b *Bool) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Bool) Truthy() bool    { return b.Value }
func (b *Bool) HashKey() string { return "bool:" + strconv.FormatBool(b.Value) }

// --- Int ---

type Int struct{ Value int64 }

func (i *Int) Type() ValueType { return INT_VALUE }
func (i *Int) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Int) Truthy() bool    { return i.Value != 0 }
func (i *Int) HashKey() string { return "int:" + strconv.FormatInt(i.Value, 10) }

// --- Float ---

type Float struct{ Value float64 }

func (f *Float) Type() ValueType { return FLOAT_VALUE }
func (f *Float) Inspect() string {
	if math.IsInf(f.Value, 1) {
		return "inf"
	}
	if math.IsInf(f.Value, -1) {
		return "-inf"
	}
	if math.IsNaN(f.Value) {
		return "nan"
	}
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
func (f *Float) Truthy() bool { return f.Value != 0.0 }

// --- BigInt ---

type BigInt struct{ Value *big.Int }

func (b *BigInt) Type() ValueType { return BIGINT_VALUE }
func (b *BigInt) Inspect() string { return b.Value.String() + "n" }
func (b *BigInt) Truthy() bool    { return b.Value.Sign() != 0 }
func (b *BigInt) HashKey() string { return "bigint:" + b.Value.String() }

// --- Str ---

type Str struct{ Value string }

func (s *Str) Type() ValueType { return STR_VALUE }
func (s *Str) Inspect() string { return fmt.Sprintf("%q", s.Value) }
func (s *Str) Truthy() bool    { return s.Value != "" }
func (s *Str) HashKey() string { return "str:" + s.Value }

// --- Bytes ---

// Bytes is shared by handle: assigning a Bytes value aliases the same
// backing buffer, mirroring Array/Dict/Struct reference semantics.
type Bytes struct{ data *[]byte }

func NewBytes(b []byte) *Bytes {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Bytes{data: &cp}
}

func (b *Bytes) Get() []byte     { return *b.data }
func (b *Bytes) Set(v []byte)    { *b.data = v }
func (b *Bytes) Type() ValueType { return BYTES_VALUE }
func (b *Bytes) Inspect() string {
	var sb strings.Builder
	sb.WriteString("b\"")
	for _, c := range *b.data {
		if c >= 0x20 && c < 0x7f && c != '"' && c != '\\' {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	sb.WriteString("\"")
	return sb.String()
}
func (b *Bytes) Truthy() bool { return len(*b.data) > 0 }

// Str coerces any value to its displayable string form via .str(), used by
// f-strings, `..` concatenation, and puts/print.
func Str_(v Value) string {
	switch x := v.(type) {
	case Nil:
		return "nil"
	case *Bool:
		return x.Inspect()
	case *Int:
		return x.Inspect()
	case *Float:
		return x.Inspect()
	case *BigInt:
		return x.Inspect()
	case *Str:
		return x.Value
	case *Bytes:
		return x.Inspect()
	case Inspecter:
		return x.Inspect()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Inspecter is implemented by every Value (re-declared narrowly to avoid an
// import cycle with the top-level Value interface in type switches above).
type Inspecter interface {
	Inspect() string
}

// Repr produces the programmer-oriented representation used inside
// Array/Dict displays and by `._rep()` (strings are quoted, containers
// recurse using Repr for their elements).
func Repr(v Value) string {
	if s, ok := v.(*Str); ok {
		return s.Inspect()
	}
	return Str_(v)
}

// Cls returns the type tag name used by `.cls()`, `.is()`, and error
// messages. For Struct values it is the declaring type's name; for Exception
// values it is the exception type's name.
func Cls(v Value) string {
	switch x := v.(type) {
	case *Struct:
		return x.TypeValue.Name
	case *Exception:
		return x.ExcType.Name
	default:
		return string(v.Type())
	}
}
