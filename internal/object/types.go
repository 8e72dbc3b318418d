package object

import "strings"

// Field is one field declaration on a Type.
type Field struct {
	Name       string
	TypeName   string // "" if untyped
	Public     bool
	HasDefault bool
	Default    Value // evaluated default, nil if HasDefault is false
}

// Type is a type descriptor: fields, instance/static methods, and the
// traits it implements. Types are identity values (two `type` declarations
// never compare equal even with the same name).
type Type struct {
	Name    string
	Fields  []Field
	Methods map[string]*UserFunction // instance methods, keyed by name
	Statics map[string]*UserFunction // static methods, keyed by name
	Traits  []string                 // trait names this type implements

	// Exception-hierarchy bookkeeping. Builtin error types (Err and its
	// eleven direct subtypes) set IsBuiltinError true; user types opt in via
	// `impl Error` and set ImplementsError true.
	IsBuiltinError   bool
	ParentName       string // "" for Err itself, else "Err"
	ImplementsError  bool
	parent           *Type // linked builtin error parent, set by NewBuiltinErrorTypes
}

func (t *Type) Type() ValueType { return TYPE_VALUE }
func (t *Type) Inspect() string { return t.Name }
func (t *Type) Truthy() bool    { return true }

// IsErrorType reports whether values of this type may be raised.
func (t *Type) IsErrorType() bool { return t.IsBuiltinError || t.ImplementsError }

// FieldNames returns the declared field names in declaration order.
func (t *Type) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

func (t *Type) FindField(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FindMethod looks up an instance method on t, per the spec's current
// single-level `impl` model (no trait-default-method inheritance).
func (t *Type) FindMethod(name string) (*UserFunction, bool) {
	m, ok := t.Methods[name]
	return m, ok
}

// Trait is a trait descriptor: required method names with arities.
type Trait struct {
	Name       string
	Signatures map[string]int // method name -> required arity
}

func (tr *Trait) Type() ValueType { return TRAIT_VALUE }
func (tr *Trait) Inspect() string { return tr.Name }
func (tr *Trait) Truthy() bool    { return true }

// Struct is an instance of a user-defined Type. Field storage is a shared
// handle (via *Dict) so aliasing a Struct value shares mutations, matching
// Array/Dict/Bytes reference semantics.
type Struct struct {
	TypeValue *Type
	Fields    *Dict
}

func NewStruct(t *Type) *Struct {
	return &Struct{TypeValue: t, Fields: NewDict()}
}

func (s *Struct) Type() ValueType { return STRUCT_VALUE }
func (s *Struct) Truthy() bool    { return true }
func (s *Struct) Inspect() string {
	var sb strings.Builder
	sb.WriteString(s.TypeValue.Name)
	sb.WriteString("(")
	for i, name := range s.TypeValue.FieldNames() {
		if i > 0 {
			sb.WriteString(", ")
		}
		v, _ := s.Fields.Get(name)
		sb.WriteString(name)
		sb.WriteString(": ")
		if v != nil {
			sb.WriteString(Repr(v))
		} else {
			sb.WriteString("nil")
		}
	}
	sb.WriteString(")")
	return sb.String()
}

// StructEqual implements field-wise structural equality for Struct values
// of the same declaring Type, per §3.1's "structural over fields" rule.
func StructEqual(a, b *Struct) bool {
	if a.TypeValue != b.TypeValue {
		return false
	}
	for _, name := range a.TypeValue.FieldNames() {
		av, _ := a.Fields.Get(name)
		bv, _ := b.Fields.Get(name)
		if !ValuesEqual(av, bv) {
			return false
		}
	}
	return true
}

// Module is a loaded `use`d module: its name, exported bindings, and the
// scope its top-level statements ran in.
type Module struct {
	Name    string
	Path    string
	Scope   *Environment
	Exports map[string]Value
}

func (m *Module) Type() ValueType { return MODULE_VALUE }
func (m *Module) Truthy() bool    { return true }
func (m *Module) Inspect() string { return "<module " + m.Name + ">" }
