// Package embed is Quest's host-facing embedding API: evaluate a source
// string or a script file and get back its final value plus any uncaught
// exception, matching spec.md §6's `evaluate`/`evaluate_script_file` entry
// points.
package embed

import (
	"os"

	"github.com/quest-lang/quest/internal/evaluator"
	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/parser"
)

// Result is what a host gets back from running a Quest program: the last
// expression's value, or a formatted uncaught exception.
type Result struct {
	Value     object.Value
	Exception *object.Exception
}

// Interpreter owns one Evaluator instance and its global scope. A fresh
// Interpreter corresponds to spec.md §5's "single Quest program" unit: one
// global scope, no sharing of state across Interpreter values.
type Interpreter struct {
	eval *evaluator.Evaluator
	env  *object.Environment
}

// New builds an Interpreter with argv/scriptPath seeded onto its `sys`
// scope identifier, writing puts/print output to out.
func New(argv []string, scriptPath string, out *os.File) *Interpreter {
	e := evaluator.New()
	if out != nil {
		e.Out = out
	}
	env := e.NewGlobalEnvironment(argv, scriptPath)
	return &Interpreter{eval: e, env: env}
}

// Evaluate parses and runs source in the interpreter's persistent global
// scope, so later calls see bindings left by earlier ones — the REPL use
// case spec.md §6 describes.
func (it *Interpreter) Evaluate(source string) Result {
	prog, errs := parser.ParseProgram(source, it.eval.CurrentFile)
	if len(errs) > 0 {
		return Result{Exception: object.NewException(it.syntaxErrType(), errs[0])}
	}
	v := it.eval.Eval(prog, it.env)
	if exc, ok := v.(*object.Exception); ok {
		return Result{Exception: exc}
	}
	return Result{Value: v}
}

// EvaluateFile reads path, sets it as CurrentFile/sys.script_path, and runs
// it to completion.
func (it *Interpreter) EvaluateFile(path string) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{Exception: object.NewException(it.ioErrType(), err.Error())}
	}
	it.eval.CurrentFile = path
	return it.Evaluate(string(src))
}

func (it *Interpreter) syntaxErrType() *object.Type {
	return it.eval.Errors.ByName["SyntaxErr"]
}

func (it *Interpreter) ioErrType() *object.Type {
	return it.eval.Errors.ByName["IOErr"]
}

// FormatUncaught renders an uncaught exception the way cmd/quest reports
// it to the user: "file:line: TypeName: message" plus its captured stack.
func FormatUncaught(exc *object.Exception) string {
	s := exc.Str()
	for _, frame := range exc.Stack {
		s += "\n\tat " + frame.String()
	}
	return s
}

// Evaluate is a one-shot convenience wrapper around New + Evaluate for
// hosts that don't need a persistent scope across calls.
func Evaluate(source string) Result {
	it := New(nil, "", os.Stdout)
	return it.Evaluate(source)
}

// EvaluateScriptFile is the one-shot counterpart for running a file, with
// argv taken from any arguments following the script path on os.Args.
func EvaluateScriptFile(path string, scriptArgs []string) Result {
	it := New(scriptArgs, path, os.Stdout)
	return it.EvaluateFile(path)
}
