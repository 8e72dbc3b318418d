package evaluator

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
)

func (e *Evaluator) evalLetStatement(n *ast.LetStatement, env *object.Environment) object.Value {
	v := e.Eval(n.Value, env)
	if isSignal(v) {
		return v
	}
	env.Declare(n.Name, v)
	return object.NilInstance
}

// evalAssignStatement handles plain `=` and the compound `+=`/`-=`/`*=`/
// `/=`/`%=` forms against an identifier, member, or index target.
func (e *Evaluator) evalAssignStatement(n *ast.AssignStatement, env *object.Environment) object.Value {
	value := e.Eval(n.Value, env)
	if isSignal(value) {
		return value
	}

	if n.Operator != "" {
		current := e.evalAssignTargetRead(n.Target, env)
		if isSignal(current) {
			return current
		}
		combined := e.applyCompoundOp(n, current, value)
		if isSignal(combined) {
			return combined
		}
		value = combined
	}

	return e.assignTo(n.Target, value, env)
}

func (e *Evaluator) applyCompoundOp(n *ast.AssignStatement, current, value object.Value) object.Value {
	op := map[string]string{"+=": "+", "-=": "-", "*=": "*", "/=": "/", "%=": "%"}[n.Operator]
	synthetic := &ast.InfixExpression{Token: n.Token, Operator: op}
	return e.evalArithmeticValues(synthetic, current, value)
}

// evalArithmeticValues is evalArithmetic without re-evaluating the operand
// expressions, used by compound assignment where both sides are already
// Values.
func (e *Evaluator) evalArithmeticValues(n *ast.InfixExpression, left, right object.Value) object.Value {
	return e.evalArithmetic(n, left, right)
}

func (e *Evaluator) evalAssignTargetRead(target ast.Expression, env *object.Environment) object.Value {
	return e.Eval(target, env)
}

// assignTo stores value into target, which must be an Identifier,
// MemberExpression, or IndexExpression per the grammar.
func (e *Evaluator) assignTo(target ast.Expression, value object.Value, env *object.Environment) object.Value {
	switch t := target.(type) {
	case *ast.Identifier:
		if !env.Update(t.Value, value) {
			return e.Errors.Raise("NameErr", "name "+t.Value+" is not defined")
		}
		return object.NilInstance

	case *ast.MemberExpression:
		base := e.Eval(t.Base, env)
		if isSignal(base) {
			return base
		}
		s, ok := base.(*object.Struct)
		if !ok {
			return e.typeErrf(t, "cannot set attribute %q on %s", t.Name, object.Cls(base))
		}
		s.Fields.Set(t.Name, value)
		return object.NilInstance

	case *ast.IndexExpression:
		base := e.Eval(t.Base, env)
		if isSignal(base) {
			return base
		}
		idx := e.Eval(t.Index, env)
		if isSignal(idx) {
			return idx
		}
		switch b := base.(type) {
		case *object.Array:
			i, ok := idx.(*object.Int)
			if !ok {
				return e.typeErrf(t, "array index must be an Int")
			}
			if !b.SetAt(i.Value, value) {
				return e.Errors.Raise("IndexErr", "array index out of range")
			}
			return object.NilInstance
		case *object.Dict:
			key, ok := idx.(*object.Str)
			if !ok {
				return e.typeErrf(t, "dict key must be a Str")
			}
			b.Set(key.Value, value)
			return object.NilInstance
		}
		return e.typeErrf(t, "cannot index-assign into %s", object.Cls(base))
	}
	return e.Errors.Raise("RuntimeErr", "invalid assignment target")
}
