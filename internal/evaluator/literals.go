package evaluator

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
)

// lookupTypeLiteral resolves a bare type name used as a value (`x.is(Int)`,
// `IndexErr.new(...)`): builtin scalar type names answer to a synthetic
// *object.Type used only for identity comparisons in `is`, while
// user-declared types and the builtin Err hierarchy resolve through env.
func (e *Evaluator) lookupTypeLiteral(n *ast.TypeLiteral, env *object.Environment) object.Value {
	if v, ok := env.Get(n.Name); ok {
		return v
	}
	if t, ok := e.Errors.ByName[n.Name]; ok {
		return t
	}
	return &object.Type{Name: n.Name}
}
