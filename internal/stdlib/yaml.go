package stdlib

import (
	"gopkg.in/yaml.v3"

	"github.com/quest-lang/quest/internal/object"
)

// Yaml builds the std/yaml module: `yaml.parse(s)` / `yaml.dump(v)`, the
// teacher's declared gopkg.in/yaml.v3 dependency wired to a Quest-facing
// parse/dump pair alongside std/json.
func Yaml() *object.Module {
	exports := map[string]object.Value{
		"parse": fn("yaml.parse", func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, errArgs("yaml.parse", 1, len(args))
			}
			s, ok := args[0].(*object.Str)
			if !ok {
				return nil, errType("yaml.parse", "Str", args[0])
			}
			var v interface{}
			if err := yaml.Unmarshal([]byte(s.Value), &v); err != nil {
				return nil, err
			}
			return FromGo(v), nil
		}),
		"dump": fn("yaml.dump", func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, errArgs("yaml.dump", 1, len(args))
			}
			gv, err := ToGo(args[0])
			if err != nil {
				return nil, err
			}
			b, err := yaml.Marshal(gv)
			if err != nil {
				return nil, err
			}
			return &object.Str{Value: string(b)}, nil
		}),
	}
	return &object.Module{Name: "yaml", Exports: exports}
}
