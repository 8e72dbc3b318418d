package evaluator

import (
	"fmt"
	"strings"

	"github.com/quest-lang/quest/internal/object"
)

// universalMethod resolves the handful of methods every value answers to
// regardless of concrete type, per §4.2's uniform dispatch rule: these are
// checked before any per-type method table.
func universalMethod(base object.Value, name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "cls":
		return &object.BuiltinFunction{Name: "cls", Fn: func([]object.Value, map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: object.Cls(base)}, nil
		}}, true
	case "str":
		return &object.BuiltinFunction{Name: "str", Fn: func([]object.Value, map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: object.Str_(base)}, nil
		}}, true
	case "_rep":
		return &object.BuiltinFunction{Name: "_rep", Fn: func([]object.Value, map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: object.Repr(base)}, nil
		}}, true
	case "_id":
		return &object.BuiltinFunction{Name: "_id", Fn: func([]object.Value, map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: fmt.Sprintf("%p", base)}, nil
		}}, true
	case "is":
		return &object.BuiltinFunction{Name: "is", Fn: func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("is expects 1 argument")
			}
			return object.NativeBool(valueIsType(base, args[0])), nil
		}}, true
	case "does":
		return &object.BuiltinFunction{Name: "does", Fn: func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("does expects 1 argument")
			}
			return object.NativeBool(valueDoesTrait(base, args[0])), nil
		}}, true
	}
	return nil, false
}

func valueIsType(base, typeArg object.Value) bool {
	t, ok := typeArg.(*object.Type)
	if !ok {
		return false
	}
	if s, ok := base.(*object.Struct); ok {
		return s.TypeValue == t
	}
	if exc, ok := base.(*object.Exception); ok {
		return exc.IsA(t)
	}
	return string(base.Type()) == t.Name
}

func valueDoesTrait(base, traitArg object.Value) bool {
	var name string
	switch t := traitArg.(type) {
	case *object.Trait:
		name = t.Name
	case *object.Type:
		name = t.Name
	default:
		return false
	}
	s, ok := base.(*object.Struct)
	if !ok {
		return false
	}
	for _, tr := range s.TypeValue.Traits {
		if tr == name {
			return true
		}
	}
	return false
}

// lookupBuiltinMethod resolves a per-type method (Array.push, Str.upper, ...)
// after universalMethod has already been tried.
func (e *Evaluator) lookupBuiltinMethod(base object.Value, name string) (*object.BuiltinFunction, bool) {
	switch b := base.(type) {
	case *object.Array:
		return e.arrayMethod(b, name)
	case *object.Str:
		return e.strMethod(b, name)
	case *object.Dict:
		return e.dictMethod(b, name)
	case *object.Bytes:
		return e.bytesMethod(b, name)
	}
	return nil, false
}

func bfn(name string, fn func([]object.Value, map[string]object.Value) (object.Value, error)) (*object.BuiltinFunction, bool) {
	return &object.BuiltinFunction{Name: name, Fn: fn}, true
}

func (e *Evaluator) arrayMethod(a *object.Array, name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "push":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			for _, v := range args {
				a.Push(v)
			}
			return a, nil
		})
	case "pop":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			v, ok := a.Pop()
			if !ok {
				return nil, fmt.Errorf("pop from empty array")
			}
			return v, nil
		})
	case "len":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Int{Value: int64(a.Len())}, nil
		})
	case "get":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("get expects 1 argument")
			}
			i, ok := args[0].(*object.Int)
			if !ok {
				return nil, fmt.Errorf("get expects an Int index")
			}
			v, ok := a.Get(i.Value)
			if !ok {
				return nil, fmt.Errorf("array index out of range")
			}
			return v, nil
		})
	case "first":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			v, ok := a.Get(0)
			if !ok {
				return nil, fmt.Errorf("first of empty array")
			}
			return v, nil
		})
	case "last":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			v, ok := a.Get(-1)
			if !ok {
				return nil, fmt.Errorf("last of empty array")
			}
			return v, nil
		})
	case "each":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("each expects 1 argument")
			}
			for i, v := range a.Elements() {
				r := e.applyFunction(blankNode{}, args[0], callArgs{Positional: []object.Value{v, &object.Int{Value: int64(i)}}})
				if exc, ok := r.(*object.Exception); ok {
					return nil, fmt.Errorf(exc.Message)
				}
			}
			return object.NilInstance, nil
		})
	case "map":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("map expects 1 argument")
			}
			out := make([]object.Value, 0, a.Len())
			for i, v := range a.Elements() {
				r := e.applyFunction(blankNode{}, args[0], callArgs{Positional: []object.Value{v, &object.Int{Value: int64(i)}}})
				if exc, ok := r.(*object.Exception); ok {
					return nil, fmt.Errorf(exc.Message)
				}
				out = append(out, r)
			}
			return object.NewArray(out), nil
		})
	case "filter":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("filter expects 1 argument")
			}
			var out []object.Value
			for i, v := range a.Elements() {
				r := e.applyFunction(blankNode{}, args[0], callArgs{Positional: []object.Value{v, &object.Int{Value: int64(i)}}})
				if exc, ok := r.(*object.Exception); ok {
					return nil, fmt.Errorf(exc.Message)
				}
				if r.Truthy() {
					out = append(out, v)
				}
			}
			return object.NewArray(out), nil
		})
	}
	return nil, false
}

func (e *Evaluator) strMethod(s *object.Str, name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "len":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Int{Value: int64(len([]rune(s.Value)))}, nil
		})
	case "upper":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: strings.ToUpper(s.Value)}, nil
		})
	case "lower":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: strings.ToLower(s.Value)}, nil
		})
	case "trim":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: strings.TrimSpace(s.Value)}, nil
		})
	case "split":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			sep := " "
			if len(args) == 1 {
				a, ok := args[0].(*object.Str)
				if !ok {
					return nil, fmt.Errorf("split expects a Str separator")
				}
				sep = a.Value
			}
			parts := strings.Split(s.Value, sep)
			out := make([]object.Value, len(parts))
			for i, p := range parts {
				out[i] = &object.Str{Value: p}
			}
			return object.NewArray(out), nil
		})
	case "contains":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			sub, ok := args[0].(*object.Str)
			if !ok {
				return nil, fmt.Errorf("contains expects a Str")
			}
			return object.NativeBool(strings.Contains(s.Value, sub.Value)), nil
		})
	case "startswith":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			sub, ok := args[0].(*object.Str)
			if !ok {
				return nil, fmt.Errorf("startswith expects a Str")
			}
			return object.NativeBool(strings.HasPrefix(s.Value, sub.Value)), nil
		})
	case "endswith":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			sub, ok := args[0].(*object.Str)
			if !ok {
				return nil, fmt.Errorf("endswith expects a Str")
			}
			return object.NativeBool(strings.HasSuffix(s.Value, sub.Value)), nil
		})
	case "replace":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("replace expects 2 arguments")
			}
			old, ok1 := args[0].(*object.Str)
			new_, ok2 := args[1].(*object.Str)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("replace expects two Str arguments")
			}
			return &object.Str{Value: strings.ReplaceAll(s.Value, old.Value, new_.Value)}, nil
		})
	case "slice":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			runes := []rune(s.Value)
			start, end := 0, len(runes)
			if len(args) > 0 {
				if i, ok := args[0].(*object.Int); ok {
					start = int(i.Value)
				}
			}
			if len(args) > 1 {
				if i, ok := args[1].(*object.Int); ok {
					end = int(i.Value)
				}
			}
			if start < 0 {
				start += len(runes)
			}
			if end < 0 {
				end += len(runes)
			}
			if start < 0 || end > len(runes) || start > end {
				return nil, fmt.Errorf("slice indices out of range")
			}
			return &object.Str{Value: string(runes[start:end])}, nil
		})
	case "encode":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return object.NewBytes([]byte(s.Value)), nil
		})
	case "ord":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			runes := []rune(s.Value)
			if len(runes) != 1 {
				return nil, fmt.Errorf("ord expects a single-character Str")
			}
			return &object.Int{Value: int64(runes[0])}, nil
		})
	}
	return nil, false
}

func (e *Evaluator) dictMethod(d *object.Dict, name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "get":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			key, ok := args[0].(*object.Str)
			if !ok {
				return nil, fmt.Errorf("get expects a Str key")
			}
			if v, ok := d.Get(key.Value); ok {
				return v, nil
			}
			if len(args) > 1 {
				return args[1], nil
			}
			return object.NilInstance, nil
		})
	case "set":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("set expects 2 arguments")
			}
			key, ok := args[0].(*object.Str)
			if !ok {
				return nil, fmt.Errorf("set expects a Str key")
			}
			d.Set(key.Value, args[1])
			return object.NilInstance, nil
		})
	case "keys":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			keys := d.Keys()
			out := make([]object.Value, len(keys))
			for i, k := range keys {
				out[i] = &object.Str{Value: k}
			}
			return object.NewArray(out), nil
		})
	case "values":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			keys := d.Keys()
			out := make([]object.Value, len(keys))
			for i, k := range keys {
				out[i], _ = d.Get(k)
			}
			return object.NewArray(out), nil
		})
	case "contains":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			key, ok := args[0].(*object.Str)
			if !ok {
				return nil, fmt.Errorf("contains expects a Str key")
			}
			_, found := d.Get(key.Value)
			return object.NativeBool(found), nil
		})
	case "len":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Int{Value: int64(d.Len())}, nil
		})
	case "each":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("each expects 1 argument")
			}
			for _, k := range d.Keys() {
				v, _ := d.Get(k)
				r := e.applyFunction(blankNode{}, args[0], callArgs{Positional: []object.Value{&object.Str{Value: k}, v}})
				if exc, ok := r.(*object.Exception); ok {
					return nil, fmt.Errorf(exc.Message)
				}
			}
			return object.NilInstance, nil
		})
	}
	return nil, false
}

func (e *Evaluator) bytesMethod(b *object.Bytes, name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "len":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Int{Value: int64(len(b.Get()))}, nil
		})
	case "decode":
		return bfn(name, func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
			return &object.Str{Value: string(b.Get())}, nil
		})
	}
	return nil, false
}
