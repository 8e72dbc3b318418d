package evaluator

import (
	"os"
	"path/filepath"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/module"
	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/parser"
)

// stdBuilder constructs a built-in std/ package's Module on first use.
type stdBuilder func(e *Evaluator) *object.Module

// ModuleLoader resolves `use` paths to *object.Module values, caching each
// module by its resolved path so a diamond-shaped `use` graph only runs a
// file's top-level statements once, and detecting cycles along the way.
type ModuleLoader struct {
	eval    *Evaluator
	cache   map[string]*object.Module
	std     map[string]stdBuilder
	loading map[string]bool
}

func NewModuleLoader(e *Evaluator) *ModuleLoader {
	l := &ModuleLoader{
		eval:    e,
		cache:   map[string]*object.Module{},
		std:     map[string]stdBuilder{},
		loading: map[string]bool{},
	}
	registerStdlib(l)
	return l
}

// RegisterStd installs a built-in std/ package under its full `use` path
// (e.g. "std/json"). Called once per package from registerStdlib.
func (l *ModuleLoader) RegisterStd(path string, build stdBuilder) {
	l.std[path] = build
}

// Load resolves path relative to fromDir (the directory of the file issuing
// the `use`, or "" for the entry script's own directory) and returns its
// Module, evaluating the file's top level the first time it is loaded.
func (l *ModuleLoader) Load(path, fromDir string) (*object.Module, object.Value) {
	if module.IsStd(path) {
		if cached, ok := l.cache[path]; ok {
			return cached, nil
		}
		build, ok := l.std[path]
		if !ok {
			return nil, l.eval.Errors.Raise("ImportErr", "unknown package "+path)
		}
		mod := build(l.eval)
		l.cache[path] = mod
		return mod, nil
	}

	resolved, err := module.Resolve(path, fromDir)
	if err != nil {
		return nil, l.eval.Errors.Raise("ImportErr", err.Error())
	}
	if cached, ok := l.cache[resolved]; ok {
		return cached, nil
	}
	if l.loading[resolved] {
		return nil, l.eval.Errors.Raise("ImportErr", "circular use of "+path)
	}

	src, readErr := os.ReadFile(resolved)
	if readErr != nil {
		return nil, l.eval.Errors.Raise("ImportErr", readErr.Error())
	}
	prog, parseErrs := parser.ParseProgram(string(src), resolved)
	if len(parseErrs) > 0 {
		return nil, l.eval.Errors.Raise("SyntaxErr", parseErrs[0])
	}

	l.loading[resolved] = true
	defer delete(l.loading, resolved)

	scope := object.NewEnclosedEnvironment(l.eval.globalEnv())
	prevFile := l.eval.CurrentFile
	l.eval.CurrentFile = resolved
	result := l.eval.evalProgram(prog, scope)
	l.eval.CurrentFile = prevFile
	if isSignal(result) {
		if exc, ok := result.(*object.Exception); ok {
			return nil, exc
		}
		return nil, l.eval.Errors.Raise("ImportErr", "use of "+path+" did not complete normally")
	}

	mod := &object.Module{
		Name:    module.BaseName(resolved),
		Path:    resolved,
		Scope:   scope,
		Exports: scope.Locals(),
	}
	l.cache[resolved] = mod
	return mod, nil
}

func (e *Evaluator) globalEnv() *object.Environment {
	if e.rootEnv == nil {
		e.rootEnv = e.NewGlobalEnvironment(nil, "")
	}
	return e.rootEnv
}

// evalUseStatement evaluates `use "path"`, `use "path" as alias`, and
// `use "path" { a, b }`, binding the module (or its selected symbols) into
// env.
func (e *Evaluator) evalUseStatement(n *ast.UseStatement, env *object.Environment) object.Value {
	dir := filepath.Dir(e.CurrentFile)
	mod, sig := e.Modules.Load(n.Path, dir)
	if sig != nil {
		return sig
	}

	if len(n.Symbols) > 0 {
		for _, name := range n.Symbols {
			v, ok := mod.Exports[name]
			if !ok {
				return e.Errors.Raise("ImportErr", name+" is not exported by "+n.Path)
			}
			env.Declare(name, v)
		}
		return object.NilInstance
	}

	alias := n.Alias
	if alias == "" {
		alias = mod.Name
	}
	env.Declare(alias, mod)
	return object.NilInstance
}
