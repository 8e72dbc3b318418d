package stdlib

import "github.com/quest-lang/quest/internal/object"

// domainValue is implemented by every non-core value type a std/ package
// introduces (Uuid, DbConnection, NdArray, ...), giving the evaluator's
// member-access fallback a single place to resolve methods on them without
// internal/object needing to know about internal/stdlib.
type domainValue interface {
	method(name string) (*object.BuiltinFunction, bool)
}

// DomainMethod resolves a method call on a stdlib-introduced value. Called
// by the evaluator's getMember fallback after Struct/Exception/Module and
// the core builtin method tables have all missed.
func DomainMethod(v object.Value, name string) (*object.BuiltinFunction, bool) {
	d, ok := v.(domainValue)
	if !ok {
		return nil, false
	}
	return d.method(name)
}
