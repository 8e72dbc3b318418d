// Package stdlib implements Quest's `std/` packages: library code reached
// only through `use "std/..."` and method dispatch, never imported by
// internal/evaluator directly (the module loader wires it in).
package stdlib

import (
	"fmt"

	"github.com/quest-lang/quest/internal/object"
)

// ToGo converts a Quest value into the nearest plain Go value (map, slice,
// string, float64, int64, bool, nil), the shape encoding/json and yaml.v3
// both expect for marshaling.
func ToGo(v object.Value) (interface{}, error) {
	switch x := v.(type) {
	case object.Nil:
		return nil, nil
	case *object.Bool:
		return x.Value, nil
	case *object.Int:
		return x.Value, nil
	case *object.Float:
		return x.Value, nil
	case *object.Str:
		return x.Value, nil
	case *object.Array:
		out := make([]interface{}, 0, x.Len())
		for _, e := range x.Elements() {
			gv, err := ToGo(e)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case *object.Dict:
		out := make(map[string]interface{}, x.Len())
		for _, k := range x.Keys() {
			ev, _ := x.Get(k)
			gv, err := ToGo(ev)
			if err != nil {
				return nil, err
			}
			out[k] = gv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot encode %s", object.Cls(v))
	}
}

// FromGo converts a decoded Go value (as produced by encoding/json or
// yaml.v3 into interface{}) into the corresponding Quest value.
func FromGo(v interface{}) object.Value {
	switch x := v.(type) {
	case nil:
		return object.NilInstance
	case bool:
		return object.NativeBool(x)
	case string:
		return &object.Str{Value: x}
	case []byte:
		// database/sql drivers (sqlite included) hand back TEXT/BLOB columns
		// as []byte rather than string.
		return &object.Str{Value: string(x)}
	case float64:
		return &object.Float{Value: x}
	case int:
		return &object.Int{Value: int64(x)}
	case int64:
		return &object.Int{Value: x}
	case []interface{}:
		elems := make([]object.Value, len(x))
		for i, e := range x {
			elems[i] = FromGo(e)
		}
		return object.NewArray(elems)
	case map[string]interface{}:
		d := object.NewDict()
		for k, e := range x {
			d.Set(k, FromGo(e))
		}
		return d
	// yaml.v3 decodes mapping keys as interface{} by default
	case map[interface{}]interface{}:
		d := object.NewDict()
		for k, e := range x {
			d.Set(fmt.Sprintf("%v", k), FromGo(e))
		}
		return d
	default:
		return &object.Str{Value: fmt.Sprintf("%v", x)}
	}
}
