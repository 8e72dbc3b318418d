package object

import (
	"fmt"

	"github.com/quest-lang/quest/internal/ast"
)

// BuiltinFunction is a Go-native callable exposed to Quest code (global
// functions like puts/print, and per-type methods like Array.push).
type BuiltinFunction struct {
	Name string
	Fn   func(args []Value, named map[string]Value) (Value, error)
}

func (b *BuiltinFunction) Type() ValueType { return FUN_VALUE }
func (b *BuiltinFunction) Inspect() string { return "<builtin " + b.Name + ">" }
func (b *BuiltinFunction) Truthy() bool    { return true }

// UserFunction is a source-defined callable: its parameter list, body, and
// a shared handle to the scope it closed over. Calling it pushes a new
// frame whose parent is Env (the captured scope), not the caller's frame.
type UserFunction struct {
	Name       string // "" for anonymous lambdas
	Parameters []ast.Parameter
	Body       *ast.BlockStatement
	Env        *Environment
	Doc        string // leading-comment doc string, if any; "" otherwise

	// Self is non-nil when this UserFunction is a bound instance method
	// reference produced by member access (`obj.method`), letting it be
	// called later without re-supplying the receiver.
	Self *Struct
}

func (f *UserFunction) Type() ValueType { return USERFUN_VALUE }
func (f *UserFunction) Truthy() bool    { return true }
func (f *UserFunction) Inspect() string {
	if f.Name == "" {
		return "<anonymous fun>"
	}
	return fmt.Sprintf("<fun %s>", f.Name)
}

// DisplayName mirrors the stack-capture convention from §4.4.7: named
// functions report their name, lambdas report "<anonymous>".
func (f *UserFunction) DisplayName() string {
	if f.Name == "" {
		return "<anonymous>"
	}
	return f.Name
}

// Bind returns a copy of f bound to self, used when a method is looked up
// via `obj.method` without an immediate call.
func (f *UserFunction) Bind(self *Struct) *UserFunction {
	bound := *f
	bound.Self = self
	return &bound
}
