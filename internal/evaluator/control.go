package evaluator

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
)

func (e *Evaluator) evalIfStatement(n *ast.IfStatement, env *object.Environment) object.Value {
	for _, clause := range n.Clauses {
		cond := e.Eval(clause.Condition, env)
		if isSignal(cond) {
			return cond
		}
		if cond.Truthy() {
			return e.evalBlockStatement(clause.Body, object.NewEnclosedEnvironment(env))
		}
	}
	if n.Else != nil {
		return e.evalBlockStatement(n.Else, object.NewEnclosedEnvironment(env))
	}
	return object.NilInstance
}

func (e *Evaluator) evalWhileStatement(n *ast.WhileStatement, env *object.Environment) object.Value {
	for {
		cond := e.Eval(n.Condition, env)
		if isSignal(cond) {
			return cond
		}
		if !cond.Truthy() {
			break
		}
		result := e.evalBlockStatement(n.Body, object.NewEnclosedEnvironment(env))
		switch result.(type) {
		case breakSignal:
			return object.NilInstance
		case continueSignal:
			continue
		default:
			if isSignal(result) {
				return result
			}
		}
	}
	return object.NilInstance
}

func (e *Evaluator) evalForStatement(n *ast.ForStatement, env *object.Environment) object.Value {
	if n.IsRange {
		return e.evalForRange(n, env)
	}

	coll := e.Eval(n.Collection, env)
	if isSignal(coll) {
		return coll
	}

	run := func(index int, value object.Value) object.Value {
		loopEnv := object.NewEnclosedEnvironment(env)
		loopEnv.Declare(n.ValueVar, value)
		if n.IndexVar != "" {
			loopEnv.Declare(n.IndexVar, &object.Int{Value: int64(index)})
		}
		return e.evalBlockStatement(n.Body, loopEnv)
	}

	switch c := coll.(type) {
	case *object.Array:
		for i, v := range c.Elements() {
			result := run(i, v)
			if done, ret := loopControl(result); done {
				return ret
			}
		}
	case *object.Dict:
		// for dicts the first var binds the key and the (optional) second
		// binds the value, unlike arrays/strings where the second var is a
		// positional index — dicts have no position, only key/value pairs.
		for _, k := range c.Keys() {
			v, _ := c.Get(k)
			loopEnv := object.NewEnclosedEnvironment(env)
			loopEnv.Declare(n.ValueVar, &object.Str{Value: k})
			if n.IndexVar != "" {
				loopEnv.Declare(n.IndexVar, v)
			}
			result := e.evalBlockStatement(n.Body, loopEnv)
			if done, ret := loopControl(result); done {
				return ret
			}
		}
	case *object.Str:
		for i, r := range c.Value {
			result := run(i, &object.Str{Value: string(r)})
			if done, ret := loopControl(result); done {
				return ret
			}
		}
	default:
		return e.typeErrf(n, "cannot iterate over %s", object.Cls(coll))
	}
	return object.NilInstance
}

// loopControl interprets a loop-body result, returning (true, value) when
// the enclosing for-loop must stop immediately and produce value, or
// (false, nil) when the loop should continue to its next iteration.
func loopControl(result object.Value) (bool, object.Value) {
	switch result.(type) {
	case breakSignal:
		return true, object.NilInstance
	case continueSignal:
		return false, nil
	}
	if isSignal(result) {
		return true, result
	}
	return false, nil
}

func (e *Evaluator) evalForRange(n *ast.ForStatement, env *object.Environment) object.Value {
	start := e.Eval(n.Collection, env)
	if isSignal(start) {
		return start
	}
	startI, ok := start.(*object.Int)
	if !ok {
		return e.typeErrf(n, "range bounds must be Int")
	}

	var endI *object.Int
	inclusive := n.RangeTo != nil
	if inclusive {
		end := e.Eval(n.RangeTo, env)
		if isSignal(end) {
			return end
		}
		endI, ok = end.(*object.Int)
	} else {
		end := e.Eval(n.RangeUntil, env)
		if isSignal(end) {
			return end
		}
		endI, ok = end.(*object.Int)
	}
	if !ok {
		return e.typeErrf(n, "range bounds must be Int")
	}

	step := int64(1)
	if n.Step != nil {
		s := e.Eval(n.Step, env)
		if isSignal(s) {
			return s
		}
		si, ok := s.(*object.Int)
		if !ok {
			return e.typeErrf(n, "range step must be Int")
		}
		step = si.Value
	}
	if step == 0 {
		return e.Errors.Raise("ValueErr", "range step cannot be zero")
	}

	idx := 0
	for i := startI.Value; (step > 0 && (inclusive && i <= endI.Value || !inclusive && i < endI.Value)) ||
		(step < 0 && (inclusive && i >= endI.Value || !inclusive && i > endI.Value)); i += step {
		loopEnv := object.NewEnclosedEnvironment(env)
		loopEnv.Declare(n.ValueVar, &object.Int{Value: i})
		if n.IndexVar != "" {
			loopEnv.Declare(n.IndexVar, &object.Int{Value: int64(idx)})
		}
		result := e.evalBlockStatement(n.Body, loopEnv)
		if done, ret := loopControl(result); done {
			return ret
		}
		idx++
	}
	return object.NilInstance
}

func (e *Evaluator) evalRaiseStatement(n *ast.RaiseStatement, env *object.Environment) object.Value {
	if n.Value == nil {
		if v, ok := env.Get("__current_exception__"); ok {
			return v
		}
		return e.Errors.Raise("RuntimeErr", "bare raise outside a catch block")
	}
	v := e.Eval(n.Value, env)
	if isSignal(v) {
		return v
	}
	if exc, ok := v.(*object.Exception); ok {
		return exc
	}
	if s, ok := v.(*object.Struct); ok && s.TypeValue.IsErrorType() {
		msg, _ := s.Fields.Get("message")
		text := ""
		if msg != nil {
			text = object.Str_(msg)
		}
		exc := object.NewException(s.TypeValue, text)
		exc.Fields = s.Fields
		return exc
	}
	return e.typeErrf(n, "cannot raise a value of type %s", object.Cls(v))
}

// evalTryStatement implements try/catch/ensure per §4.5: ensure always runs;
// raising from inside ensure replaces any exception already propagating
// (the Open Question is resolved in favor of "ensure's own raise wins").
func (e *Evaluator) evalTryStatement(n *ast.TryStatement, env *object.Environment) object.Value {
	result := e.evalBlockStatement(n.Body, object.NewEnclosedEnvironment(env))

	if exc, ok := result.(*object.Exception); ok {
		handled := false
		for _, clause := range n.Catches {
			if clause.TypeName != "" {
				t, ok := env.Get(clause.TypeName)
				typ, isType := t.(*object.Type)
				if !ok || !isType || !exc.IsA(typ) {
					continue
				}
			}
			catchEnv := object.NewEnclosedEnvironment(env)
			if clause.VarName != "" {
				catchEnv.Declare(clause.VarName, exc)
			}
			catchEnv.Declare("__current_exception__", exc)
			result = e.evalBlockStatement(clause.Body, catchEnv)
			handled = true
			break
		}
		if !handled {
			result = exc
		}
	}

	if n.Ensure != nil {
		ensureResult := e.evalBlockStatement(n.Ensure, object.NewEnclosedEnvironment(env))
		if isSignal(ensureResult) {
			return ensureResult
		}
	}
	return result
}
