package evaluator

import (
	"fmt"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/token"
)

// blankNode stands in for a call site when a builtin method invokes a
// Quest callback (Array.each, Dict.each, ...) without an enclosing AST node
// of its own to attribute stack frames and errors to.
type blankNode struct{}

func (blankNode) TokenLiteral() string    { return "" }
func (blankNode) GetToken() token.Token   { return token.Token{} }

// callArgs is the fully-resolved argument set passed to a call: positional
// values (spreads already flattened in) plus named values (dict-spreads
// already flattened in).
type callArgs struct {
	Positional []object.Value
	Named      map[string]object.Value
}

func (e *Evaluator) evalCallExpression(n *ast.CallExpression, env *object.Environment) object.Value {
	fn := e.Eval(n.Function, env)
	if isSignal(fn) {
		return fn
	}

	args, sig := e.evalArguments(n.Args, env)
	if sig != nil {
		return sig
	}

	return e.applyFunction(n, fn, args)
}

func (e *Evaluator) evalArguments(rawArgs []ast.Argument, env *object.Environment) (callArgs, object.Value) {
	args := callArgs{Named: map[string]object.Value{}}
	for _, a := range rawArgs {
		switch a.Kind {
		case ast.ArgPositional:
			v := e.Eval(a.Value, env)
			if isSignal(v) {
				return args, v
			}
			args.Positional = append(args.Positional, v)
		case ast.ArgNamed:
			v := e.Eval(a.Value, env)
			if isSignal(v) {
				return args, v
			}
			args.Named[a.Name] = v
		case ast.ArgArraySpread:
			v := e.Eval(a.Value, env)
			if isSignal(v) {
				return args, v
			}
			arr, ok := v.(*object.Array)
			if !ok {
				return args, e.typeErrf(a.Value, "cannot spread %s as array arguments", object.Cls(v))
			}
			args.Positional = append(args.Positional, arr.Elements()...)
		case ast.ArgDictSpread:
			v := e.Eval(a.Value, env)
			if isSignal(v) {
				return args, v
			}
			d, ok := v.(*object.Dict)
			if !ok {
				return args, e.typeErrf(a.Value, "cannot spread %s as named arguments", object.Cls(v))
			}
			for _, k := range d.Keys() {
				val, _ := d.Get(k)
				args.Named[k] = val
			}
		}
	}
	return args, nil
}

func (e *Evaluator) applyFunction(node ast.Node, fn object.Value, args callArgs) object.Value {
	switch f := fn.(type) {
	case *object.BuiltinFunction:
		v, err := f.Fn(args.Positional, args.Named)
		if err != nil {
			return e.Errors.Raise("RuntimeErr", err.Error())
		}
		return v

	case *object.UserFunction:
		return e.applyUserFunction(node, f, args)

	case *object.Type:
		return e.constructStruct(node, f, args)

	case *object.Struct:
		m, ok := f.TypeValue.FindMethod("_call")
		if !ok {
			return e.typeErrf(node, "%s is not callable", f.TypeValue.Name)
		}
		return e.applyUserFunction(node, m.Bind(f), args)

	default:
		return e.typeErrf(node, "%s is not callable", object.Cls(fn))
	}
}

func (e *Evaluator) applyUserFunction(node ast.Node, f *object.UserFunction, args callArgs) object.Value {
	callEnv := object.NewEnclosedEnvironment(f.Env)
	if f.Self != nil {
		callEnv.Declare("self", f.Self)
	}

	if sig := e.bindParameters(callEnv, f.Parameters, args); sig != nil {
		return sig
	}

	e.CallStack = append(e.CallStack, object.StackFrame{
		Function: f.DisplayName(),
		File:     e.CurrentFile,
		Line:     node.GetToken().Line,
	})
	defer func() { e.CallStack = e.CallStack[:len(e.CallStack)-1] }()

	result := e.evalBlockStatement(f.Body, callEnv)
	if ret, ok := result.(returnSignal); ok {
		return ret.Value
	}
	if isSignal(result) {
		return result
	}
	return object.NilInstance
}

// bindParameters destructures args into callEnv per f's parameter list,
// applying defaults for missing named/positional arguments and collecting
// *name/**name variadics. Default-value expressions evaluate in callEnv
// itself, not the caller's environment, so they may reference earlier
// parameters in the same list.
func (e *Evaluator) bindParameters(callEnv *object.Environment, params []ast.Parameter, args callArgs) object.Value {
	posIdx := 0
	usedNamed := map[string]bool{}

	for _, p := range params {
		if p.Variadic {
			rest := append([]object.Value{}, args.Positional[posIdx:]...)
			callEnv.Declare(p.Name, object.NewArray(rest))
			posIdx = len(args.Positional)
			continue
		}
		if p.KeywordVar {
			d := object.NewDict()
			for k, v := range args.Named {
				if !usedNamed[k] {
					d.Set(k, v)
				}
			}
			callEnv.Declare(p.Name, d)
			continue
		}

		if v, ok := args.Named[p.Name]; ok {
			callEnv.Declare(p.Name, v)
			usedNamed[p.Name] = true
			continue
		}
		if posIdx < len(args.Positional) {
			callEnv.Declare(p.Name, args.Positional[posIdx])
			posIdx++
			continue
		}
		if p.Default != nil {
			callEnv.Declare(p.Name, e.Eval(p.Default, callEnv))
			continue
		}
		return e.Errors.Raise("ArgErr", fmt.Sprintf("missing required argument %q", p.Name))
	}
	return nil
}

func (e *Evaluator) constructStruct(node ast.Node, t *object.Type, args callArgs) object.Value {
	s := object.NewStruct(t)
	posIdx := 0
	for _, f := range t.Fields {
		if v, ok := args.Named[f.Name]; ok {
			s.Fields.Set(f.Name, v)
			continue
		}
		if posIdx < len(args.Positional) {
			s.Fields.Set(f.Name, args.Positional[posIdx])
			posIdx++
			continue
		}
		if f.HasDefault {
			s.Fields.Set(f.Name, f.Default)
			continue
		}
		return e.Errors.Raise("ArgErr", fmt.Sprintf("missing required field %q for %s", f.Name, t.Name))
	}
	if ctor, ok := t.Methods["_init"]; ok {
		bound := ctor.Bind(s)
		if r := e.applyUserFunction(node, bound, args); isSignal(r) {
			return r
		}
	}
	return s
}

func (e *Evaluator) builtinTypeConstructor(t *object.Type) *object.BuiltinFunction {
	return &object.BuiltinFunction{
		Name: t.Name + ".new",
		Fn: func(positional []object.Value, named map[string]object.Value) (object.Value, error) {
			args := callArgs{Positional: positional, Named: named}
			v := e.constructStruct(&ast.Identifier{}, t, args)
			if exc, ok := v.(*object.Exception); ok {
				return nil, fmt.Errorf(exc.Message)
			}
			return v, nil
		},
	}
}

func (e *Evaluator) builtin(name string, fn func([]object.Value, map[string]object.Value) (object.Value, error)) *object.BuiltinFunction {
	return &object.BuiltinFunction{Name: name, Fn: fn}
}
