package evaluator

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

// getMember resolves obj.name. viaSelf is true only when the member access
// is written as `self.name`: a method always has full access to its own
// instance's fields, private or not, while `obj.name` on any other
// expression is subject to the private-field gate.
func (e *Evaluator) getMember(node ast.Node, base object.Value, name string, viaSelf bool) object.Value {
	switch b := base.(type) {
	case *object.Struct:
		if v, ok := b.Fields.Get(name); ok {
			if field, ok := b.TypeValue.FindField(name); ok && !field.Public && !viaSelf {
				return e.Errors.Raise("AttrErr", "field "+name+" is private")
			}
			return v
		}
		if m, ok := b.TypeValue.FindMethod(name); ok {
			return m.Bind(b)
		}
		if m, ok := b.TypeValue.Statics[name]; ok {
			return m
		}
		if bi, ok := universalMethod(base, name); ok {
			return bi
		}
		return e.Errors.Raise("AttrErr", b.TypeValue.Name+" has no attribute "+name)

	case *object.Type:
		if name == "new" {
			return e.builtinTypeConstructor(b)
		}
		if m, ok := b.Statics[name]; ok {
			return m
		}
		return e.Errors.Raise("AttrErr", "type "+b.Name+" has no static "+name)

	case *object.Exception:
		switch name {
		case "message":
			return e.builtin("message", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
				return &object.Str{Value: b.Message}, nil
			})
		case "type":
			return e.builtin("type", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
				return b.ExcType, nil
			})
		case "file":
			return e.builtin("file", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
				return &object.Str{Value: b.File}, nil
			})
		case "line":
			return e.builtin("line", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
				return &object.Int{Value: int64(b.Line)}, nil
			})
		case "stack":
			return e.builtin("stack", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
				elems := make([]object.Value, len(b.Stack))
				for i, f := range b.Stack {
					elems[i] = &object.Str{Value: f.String()}
				}
				return object.NewArray(elems), nil
			})
		case "str":
			return e.builtin("str", func(args []object.Value, _ map[string]object.Value) (object.Value, error) {
				return &object.Str{Value: b.Str()}, nil
			})
		}
		if v, ok := b.Fields.Get(name); ok {
			return v
		}

	case *object.Module:
		if b.Scope != nil {
			if v, ok := b.Scope.Locals()[name]; ok {
				return v
			}
		}
		if v, ok := b.Exports[name]; ok {
			return v
		}
		return e.Errors.Raise("AttrErr", "module "+b.Name+" has no export "+name)
	}

	if bi, ok := universalMethod(base, name); ok {
		return bi
	}
	if bi, ok := e.lookupBuiltinMethod(base, name); ok {
		return bi
	}
	if bi, ok := stdlib.DomainMethod(base, name); ok {
		return bi
	}
	return e.Errors.Raise("AttrErr", object.Cls(base)+" has no attribute "+name)
}

// applyIndex applies n's indexing to an already-evaluated base and index.
// Called directly by the iterative engine's IndexExpression frame
// (iterative.go) once both base and index have been evaluated via the
// frame stack.
func (e *Evaluator) applyIndex(n *ast.IndexExpression, base, idx object.Value) object.Value {
	switch b := base.(type) {
	case *object.Array:
		i, ok := idx.(*object.Int)
		if !ok {
			return e.typeErrf(n, "array index must be an Int")
		}
		v, ok := b.Get(i.Value)
		if !ok {
			return e.Errors.Raise("IndexErr", "array index out of range")
		}
		return v
	case *object.Dict:
		key, ok := idx.(*object.Str)
		if !ok {
			return e.typeErrf(n, "dict key must be a Str")
		}
		v, ok := b.Get(key.Value)
		if !ok {
			return e.Errors.Raise("KeyErr", "key "+key.Value+" not found")
		}
		return v
	case *object.Str:
		i, ok := idx.(*object.Int)
		if !ok {
			return e.typeErrf(n, "string index must be an Int")
		}
		runes := []rune(b.Value)
		pos, ok := resolveRuneIndex(i.Value, len(runes))
		if !ok {
			return e.Errors.Raise("IndexErr", "string index out of range")
		}
		return &object.Str{Value: string(runes[pos])}
	}
	return e.typeErrf(n, "cannot index %s", object.Cls(base))
}

func resolveRuneIndex(idx int64, n int) (int, bool) {
	i := int(idx)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
