package evaluator

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/quest-lang/quest/internal/object"
)

var startTime = time.Now()

// NewGlobalEnvironment builds a fresh root scope per §6: the builtin
// exception hierarchy plus puts/print/chr/ord/ticks_ms/sys.
func (e *Evaluator) NewGlobalEnvironment(argv []string, scriptPath string) *object.Environment {
	env := object.NewEnvironment()

	env.Declare("Err", e.Errors.Err)
	for name, t := range e.Errors.ByName {
		env.Declare(name, t)
	}

	env.Declare("puts", e.builtin("puts", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
		for _, a := range args {
			fmt.Fprintln(e.Out, object.Str_(a))
		}
		if len(args) == 0 {
			fmt.Fprintln(e.Out)
		}
		return object.NilInstance, nil
	}))

	env.Declare("print", e.builtin("print", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = object.Str_(a)
		}
		for i, p := range parts {
			if i > 0 {
				fmt.Fprint(e.Out, " ")
			}
			fmt.Fprint(e.Out, p)
		}
		return object.NilInstance, nil
	}))

	env.Declare("chr", e.builtin("chr", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("chr expects 1 argument")
		}
		i, ok := args[0].(*object.Int)
		if !ok {
			return nil, fmt.Errorf("chr expects an Int")
		}
		return &object.Str{Value: string(rune(i.Value))}, nil
	}))

	env.Declare("ord", e.builtin("ord", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("ord expects 1 argument")
		}
		s, ok := args[0].(*object.Str)
		if !ok || len([]rune(s.Value)) != 1 {
			return nil, fmt.Errorf("ord expects a single-character Str")
		}
		return &object.Int{Value: int64([]rune(s.Value)[0])}, nil
	}))

	env.Declare("ticks_ms", e.builtin("ticks_ms", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
		return &object.Int{Value: time.Since(startTime).Milliseconds()}, nil
	}))

	argvValues := make([]object.Value, len(argv))
	for i, a := range argv {
		argvValues[i] = &object.Str{Value: a}
	}
	sysDict := object.NewDict()
	sysDict.Set("argv", object.NewArray(argvValues))
	sysDict.Set("script_path", &object.Str{Value: scriptPath})
	sysDict.Set("is_tty", e.builtin("sys.is_tty", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
		return object.NativeBool(isatty.IsTerminal(os.Stdout.Fd())), nil
	}))
	env.Declare("sys", sysDict)

	e.rootEnv = env
	return env
}
