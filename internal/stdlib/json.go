package stdlib

import (
	"encoding/json"

	"github.com/quest-lang/quest/internal/object"
)

// Json builds the std/json module: `json.encode(v)` / `json.decode(s)`.
// Grounded on spec.md §8's JSON round-trip property, which needs nothing
// beyond the standard library.
func Json() *object.Module {
	exports := map[string]object.Value{
		"encode": fn("json.encode", func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, errArgs("json.encode", 1, len(args))
			}
			gv, err := ToGo(args[0])
			if err != nil {
				return nil, err
			}
			b, err := json.Marshal(gv)
			if err != nil {
				return nil, err
			}
			return &object.Str{Value: string(b)}, nil
		}),
		"decode": fn("json.decode", func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, errArgs("json.decode", 1, len(args))
			}
			s, ok := args[0].(*object.Str)
			if !ok {
				return nil, errType("json.decode", "Str", args[0])
			}
			var v interface{}
			if err := json.Unmarshal([]byte(s.Value), &v); err != nil {
				return nil, err
			}
			return FromGo(v), nil
		}),
	}
	return &object.Module{Name: "json", Exports: exports}
}
