package stdlib

import (
	"github.com/funvibe/funbit/pkg/bitstring"

	"github.com/quest-lang/quest/internal/object"
)

// segmentSpec describes one element of a bytes.pack/unpack pattern dict:
// {type: "int"|"float"|"binary", size: bits, value: ...} mirroring funbit's
// Erlang-style bit-syntax segment descriptors.
type segmentSpec struct {
	kind string
	size int
}

func parseSpec(d *object.Dict) (segmentSpec, object.Value, error) {
	spec := segmentSpec{kind: "int", size: 8}
	if t, ok := d.Get("type"); ok {
		if s, ok := t.(*object.Str); ok {
			spec.kind = s.Value
		}
	}
	if sz, ok := d.Get("size"); ok {
		if i, ok := sz.(*object.Int); ok {
			spec.size = int(i.Value)
		}
	}
	val, _ := d.Get("value")
	return spec, val, nil
}

// Bytes builds the std/bytes module: `bytes.pack(segments...)` and
// `bytes.unpack(b, pattern)`, built on funbit's bit-syntax builder/matcher
// over a sequence of {type, size, value} segment dicts. Adopted per the
// teacher's declared funvibe/funbit dependency even though the retrieved
// teacher slice hand-rolls its own Bits type instead of calling it.
func Bytes() *object.Module {
	exports := map[string]object.Value{
		"pack": fn("bytes.pack", func(args []object.Value) (object.Value, error) {
			b := bitstring.NewBuilder()
			for _, a := range args {
				d, ok := a.(*object.Dict)
				if !ok {
					return nil, errType("bytes.pack", "Dict segment", a)
				}
				spec, val, err := parseSpec(d)
				if err != nil {
					return nil, err
				}
				switch spec.kind {
				case "int":
					i, ok := val.(*object.Int)
					if !ok {
						return nil, errType("bytes.pack int segment", "Int", val)
					}
					b = b.AddInteger(i.Value, bitstring.WithSize(spec.size))
				case "float":
					f, ok := val.(*object.Float)
					if !ok {
						return nil, errType("bytes.pack float segment", "Float", val)
					}
					b = b.AddFloat(f.Value, bitstring.WithSize(spec.size))
				case "binary":
					bs, ok := val.(*object.Bytes)
					if !ok {
						return nil, errType("bytes.pack binary segment", "Bytes", val)
					}
					b = b.AddBinary(bs.Get())
				default:
					return nil, errType("bytes.pack", "known segment type", a)
				}
			}
			bits, err := b.Build()
			if err != nil {
				return nil, err
			}
			return object.NewBytes(bits.ToBytes()), nil
		}),
		"unpack": fn("bytes.unpack", func(args []object.Value) (object.Value, error) {
			if len(args) != 2 {
				return nil, errArgs("bytes.unpack", 2, len(args))
			}
			data, ok := args[0].(*object.Bytes)
			if !ok {
				return nil, errType("bytes.unpack", "Bytes", args[0])
			}
			pattern, ok := args[1].(*object.Array)
			if !ok {
				return nil, errType("bytes.unpack", "Array pattern", args[1])
			}

			m := bitstring.NewMatcher()
			results := make([]*int64, 0, pattern.Len())
			floatResults := make([]*float64, 0, pattern.Len())
			kinds := make([]string, 0, pattern.Len())
			for _, p := range pattern.Elements() {
				d, ok := p.(*object.Dict)
				if !ok {
					return nil, errType("bytes.unpack", "Dict segment", p)
				}
				spec, _, err := parseSpec(d)
				if err != nil {
					return nil, err
				}
				kinds = append(kinds, spec.kind)
				switch spec.kind {
				case "int":
					var v int64
					results = append(results, &v)
					floatResults = append(floatResults, nil)
					m = m.Integer(&v, bitstring.WithSize(spec.size))
				case "float":
					var v float64
					floatResults = append(floatResults, &v)
					results = append(results, nil)
					m = m.Float(&v, bitstring.WithSize(spec.size))
				default:
					return nil, errType("bytes.unpack", "known segment type", p)
				}
			}
			if _, err := m.Match(bitstring.NewFromBytes(data.Get())); err != nil {
				return nil, err
			}

			out := make([]object.Value, len(kinds))
			for i, k := range kinds {
				if k == "float" {
					out[i] = &object.Float{Value: *floatResults[i]}
				} else {
					out[i] = &object.Int{Value: *results[i]}
				}
			}
			return object.NewArray(out), nil
		}),
	}
	return &object.Module{Name: "bytes", Exports: exports}
}
