package stdlib

import (
	"fmt"
	"strings"

	"github.com/quest-lang/quest/internal/object"
)

// ndArray is a dense, row-major float64 array covering spec.md §1's
// "numerics" stdlib entry. No pack dependency offers a dense numeric array
// type, so this is implemented directly on a Go slice.
type ndArray struct {
	shape []int64
	data  []float64
}

func (a *ndArray) Type() object.ValueType { return "NdArray" }
func (a *ndArray) Truthy() bool           { return len(a.data) > 0 }
func (a *ndArray) Inspect() string {
	shape := make([]string, len(a.shape))
	for i, s := range a.shape {
		shape[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("<NdArray [%s]>", strings.Join(shape, "x"))
}

func (a *ndArray) method(name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "shape":
		return fn("NdArray.shape", func(args []object.Value) (object.Value, error) {
			elems := make([]object.Value, len(a.shape))
			for i, s := range a.shape {
				elems[i] = &object.Int{Value: s}
			}
			return object.NewArray(elems), nil
		}), true
	case "get":
		return fn("NdArray.get", func(args []object.Value) (object.Value, error) {
			idx, err := flatIndex(a, args)
			if err != nil {
				return nil, err
			}
			return &object.Float{Value: a.data[idx]}, nil
		}), true
	case "set":
		return fn("NdArray.set", func(args []object.Value) (object.Value, error) {
			if len(args) < 1 {
				return nil, errArgs("NdArray.set", len(a.shape)+1, len(args))
			}
			v, ok := args[len(args)-1].(*object.Float)
			if !ok {
				if iv, ok := args[len(args)-1].(*object.Int); ok {
					v = &object.Float{Value: float64(iv.Value)}
				} else {
					return nil, errType("NdArray.set", "Float", args[len(args)-1])
				}
			}
			idx, err := flatIndex(a, args[:len(args)-1])
			if err != nil {
				return nil, err
			}
			a.data[idx] = v.Value
			return object.NilInstance, nil
		}), true
	case "sum":
		return fn("NdArray.sum", func(args []object.Value) (object.Value, error) {
			var total float64
			for _, v := range a.data {
				total += v
			}
			return &object.Float{Value: total}, nil
		}), true
	}
	return nil, false
}

func flatIndex(a *ndArray, args []object.Value) (int, error) {
	if len(args) != len(a.shape) {
		return 0, fmt.Errorf("NdArray expects %d indices, got %d", len(a.shape), len(args))
	}
	idx := 0
	stride := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		iv, ok := args[i].(*object.Int)
		if !ok {
			return 0, errType("NdArray index", "Int", args[i])
		}
		idx += int(iv.Value) * stride
		stride *= int(a.shape[i])
	}
	return idx, nil
}

// Ndarray builds the std/ndarray module: `ndarray.zeros(shape...)`.
func Ndarray() *object.Module {
	exports := map[string]object.Value{
		"zeros": fn("ndarray.zeros", func(args []object.Value) (object.Value, error) {
			shape := make([]int64, len(args))
			size := 1
			for i, a := range args {
				iv, ok := a.(*object.Int)
				if !ok {
					return nil, errType("ndarray.zeros", "Int", a)
				}
				shape[i] = iv.Value
				size *= int(iv.Value)
			}
			return &ndArray{shape: shape, data: make([]float64, size)}, nil
		}),
	}
	return &object.Module{Name: "ndarray", Exports: exports}
}
