package stdlib

import (
	"fmt"

	"github.com/quest-lang/quest/internal/object"
)

// fn wraps a positional-only Go function as a Quest BuiltinFunction. std/
// modules never need named arguments or spreads, so this drops the
// keyword-argument map the evaluator's own builtins take.
func fn(name string, f func(args []object.Value) (object.Value, error)) *object.BuiltinFunction {
	return &object.BuiltinFunction{
		Name: name,
		Fn: func(positional []object.Value, _ map[string]object.Value) (object.Value, error) {
			return f(positional)
		},
	}
}

func errArgs(name string, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}

func errType(name, want string, got object.Value) error {
	return fmt.Errorf("%s expects a %s, got %s", name, want, object.Cls(got))
}
