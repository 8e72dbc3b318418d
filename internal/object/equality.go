package object

import "math/big"

// ValuesEqual implements `==` per §3.1/§8: numeric values compare across
// type by promoting to the widest representation involved (Int/Float
// promote to Float; anything paired with BigInt promotes to BigInt, except
// Float+BigInt which is never equal since that pairing is a TypeErr at the
// operator level, not a comparable pair here); Str/Array/Dict/Struct compare
// structurally; Fun/UserFun/Type/Trait/Module/Exception compare by identity.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *Int:
		switch bv := b.(type) {
		case *Int:
			return av.Value == bv.Value
		case *Float:
			return float64(av.Value) == bv.Value
		case *BigInt:
			return big.NewInt(av.Value).Cmp(bv.Value) == 0
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Int:
			return av.Value == float64(bv.Value)
		case *Float:
			return av.Value == bv.Value
		}
		return false
	case *BigInt:
		switch bv := b.(type) {
		case *Int:
			return av.Value.Cmp(big.NewInt(bv.Value)) == 0
		case *BigInt:
			return av.Value.Cmp(bv.Value) == 0
		}
		return false
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Value == bv.Value
	case *Bytes:
		bv, ok := b.(*Bytes)
		if !ok || len(*av.data) != len(*bv.data) {
			return false
		}
		for i, c := range *av.data {
			if (*bv.data)[i] != c {
				return false
			}
		}
		return true
	case *Array:
		bv, ok := b.(*Array)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i, e := range av.Elements() {
			if !ValuesEqual(e, bv.Elements()[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			ev, _ := av.Get(k)
			other, exists := bv.Get(k)
			if !exists || !ValuesEqual(ev, other) {
				return false
			}
		}
		return true
	case *Struct:
		bv, ok := b.(*Struct)
		return ok && StructEqual(av, bv)
	default:
		// Fun, UserFun, Type, Trait, Module, Exception: identity equality.
		return a == b
	}
}
