package evaluator

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
)

func (e *Evaluator) evalFunctionStatement(n *ast.FunctionStatement, env *object.Environment) object.Value {
	fn := &object.UserFunction{Name: n.Name, Parameters: n.Parameters, Body: n.Body, Env: env}

	var value object.Value = fn
	if len(n.Decorators) > 0 {
		decorated := e.applyDecorators(n.Decorators, fn, env)
		if isSignal(decorated) {
			return decorated
		}
		value = decorated
	}

	env.Declare(n.Name, value)
	return object.NilInstance
}

// applyDecorators desugars `@Dec(args) fun f(...) ... end` into
// `Dec.new(func: raw_fn, args)`, applying decorators innermost-first so the
// first-listed decorator ends up as the outermost wrapper, per §3.4/§9.
func (e *Evaluator) applyDecorators(decorators []ast.Decorator, fn *object.UserFunction, env *object.Environment) object.Value {
	var current object.Value = fn
	for i := len(decorators) - 1; i >= 0; i-- {
		dec := decorators[i]
		decVal, ok := env.Get(dec.Name)
		if !ok {
			return e.Errors.Raise("NameErr", "decorator "+dec.Name+" is not defined")
		}
		t, ok := decVal.(*object.Type)
		if !ok {
			return e.typeErrf(&ast.Identifier{Token: dec.Token}, "%s is not a decorator type", dec.Name)
		}
		args, sig := e.evalArguments(dec.Args, env)
		if sig != nil {
			return sig
		}
		args.Named["func"] = current
		wrapped := e.constructStruct(&ast.Identifier{Token: dec.Token}, t, args)
		if isSignal(wrapped) {
			return wrapped
		}
		current = wrapped
	}
	return current
}

func (e *Evaluator) evalTypeDeclaration(n *ast.TypeDeclarationStatement, env *object.Environment) object.Value {
	t := &object.Type{
		Name:    n.Name,
		Methods: map[string]*object.UserFunction{},
		Statics: map[string]*object.UserFunction{},
	}

	for _, fd := range n.Fields {
		field := object.Field{Name: fd.Name, TypeName: fd.TypeName, Public: fd.Public, HasDefault: fd.HasDefault}
		if fd.HasDefault {
			v := e.Eval(fd.Default, env)
			if isSignal(v) {
				return v
			}
			field.Default = v
		}
		t.Fields = append(t.Fields, field)
	}

	env.Declare(n.Name, t)

	for _, m := range n.Methods {
		e.declareTypeMethod(t, m, env)
	}
	for _, impl := range n.Impls {
		if impl.TraitName == "Error" {
			t.ImplementsError = true
		}
		for _, m := range impl.Methods {
			e.declareTypeMethod(t, m, env)
		}
		t.Traits = append(t.Traits, impl.TraitName)
	}

	return object.NilInstance
}

func (e *Evaluator) declareTypeMethod(t *object.Type, m *ast.FunctionStatement, env *object.Environment) {
	fn := &object.UserFunction{Name: m.Name, Parameters: m.Parameters, Body: m.Body, Env: env}
	if m.IsStatic {
		t.Statics[m.Name] = fn
	} else {
		t.Methods[m.Name] = fn
	}
}

func (e *Evaluator) evalTraitDeclaration(n *ast.TraitDeclaration, env *object.Environment) object.Value {
	tr := &object.Trait{Name: n.Name, Signatures: map[string]int{}}
	for _, sig := range n.Signatures {
		tr.Signatures[sig.Name] = sig.Arity
	}
	env.Declare(n.Name, tr)
	return object.NilInstance
}
