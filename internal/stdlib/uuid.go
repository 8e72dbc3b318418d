package stdlib

import (
	"github.com/google/uuid"

	"github.com/quest-lang/quest/internal/object"
)

// questUUID is the Uuid domain value from spec.md's value table (§3.1),
// backed directly by google/uuid.UUID.
type questUUID struct {
	id uuid.UUID
}

func (u *questUUID) Type() object.ValueType { return "Uuid" }
func (u *questUUID) Truthy() bool           { return true }
func (u *questUUID) Inspect() string        { return u.id.String() }

func (u *questUUID) method(name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "to_string":
		return fn("Uuid.to_string", func(args []object.Value) (object.Value, error) {
			return &object.Str{Value: u.id.String()}, nil
		}), true
	case "to_bytes":
		return fn("Uuid.to_bytes", func(args []object.Value) (object.Value, error) {
			b, _ := u.id.MarshalBinary()
			return object.NewBytes(b), nil
		}), true
	}
	return nil, false
}

// Uuid builds the std/uuid module: `uuid.new()`, `uuid.parse(s)`,
// `uuid.from_bytes(b)`, round-tripping directly against uuid.UUID per
// spec.md §8.
func Uuid() *object.Module {
	exports := map[string]object.Value{
		"new": fn("uuid.new", func(args []object.Value) (object.Value, error) {
			return &questUUID{id: uuid.New()}, nil
		}),
		"parse": fn("uuid.parse", func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, errArgs("uuid.parse", 1, len(args))
			}
			s, ok := args[0].(*object.Str)
			if !ok {
				return nil, errType("uuid.parse", "Str", args[0])
			}
			id, err := uuid.Parse(s.Value)
			if err != nil {
				return nil, err
			}
			return &questUUID{id: id}, nil
		}),
		"from_bytes": fn("uuid.from_bytes", func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, errArgs("uuid.from_bytes", 1, len(args))
			}
			b, ok := args[0].(*object.Bytes)
			if !ok {
				return nil, errType("uuid.from_bytes", "Bytes", args[0])
			}
			id, err := uuid.FromBytes(b.Get())
			if err != nil {
				return nil, err
			}
			return &questUUID{id: id}, nil
		}),
	}
	return &object.Module{Name: "uuid", Exports: exports}
}
