package object

import "fmt"

// StackFrame is one entry in an Exception's captured call stack, recorded at
// raise time per §4.4.7 (named functions report their name, lambdas report
// "<anonymous>"). Top-level code pushes no frame of its own, so an
// exception raised outside any function carries an empty stack.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

func (f StackFrame) String() string {
	return fmt.Sprintf("%s at %s:%d", f.Function, f.File, f.Line)
}

// Exception is the value carried by raise/catch. ExcType is always one of
// the builtin error types or a user type that declared `impl Error`.
type Exception struct {
	ExcType *Type
	Message string
	File    string
	Line    int
	Stack   []StackFrame

	// Fields holds custom-exception-type instance fields beyond the builtin
	// message/file/line triad (e.g. a user type's extra constructor args).
	Fields *Dict
}

func NewException(t *Type, message string) *Exception {
	return &Exception{ExcType: t, Message: message, Fields: NewDict()}
}

func (e *Exception) Type() ValueType { return EXCEPTION_VALUE }
func (e *Exception) Truthy() bool    { return true }
func (e *Exception) Inspect() string {
	return fmt.Sprintf("%s: %s", e.ExcType.Name, e.Message)
}

// Str renders the display form used when an uncaught exception propagates
// out of evaluate(), per §6's error display format.
func (e *Exception) Str() string {
	if e.File == "" {
		return e.Inspect()
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.ExcType.Name, e.Message)
}

// IsA reports whether e matches the named catch type: exact type identity,
// or the catch type being the root Err (which matches anything raised).
func (e *Exception) IsA(t *Type) bool {
	if t.Name == "Err" {
		return true
	}
	for cur := e.ExcType; cur != nil; {
		if cur == t {
			return true
		}
		cur = cur.parent
	}
	return false
}

// builtinErrorNames lists Err's eleven direct subtypes, per §4.5.
var builtinErrorNames = []string{
	"IndexErr", "TypeErr", "ValueErr", "ArgErr", "AttrErr", "NameErr",
	"RuntimeErr", "IOErr", "ImportErr", "KeyErr", "SyntaxErr",
}

// BuiltinErrorTypes holds the Err root and its direct subtypes, keyed by
// name, ready to be bound into a fresh root scope (§6) and used by the
// evaluator to construct builtin exceptions (e.g. raising IndexErr on an
// out-of-range index).
type BuiltinErrorTypes struct {
	Err   *Type
	ByName map[string]*Type
}

// NewBuiltinErrorTypes builds the Err hierarchy fresh, so distinct
// interpreter instances never share Type identity (consistent with Types
// being identity values per §3.3).
func NewBuiltinErrorTypes() *BuiltinErrorTypes {
	// messageField lets `Kind.new("text")`/`Kind.new(message: "text")`
	// populate the Struct that the raise statement later turns into an
	// *Exception by reading this same field back out.
	messageField := Field{Name: "message", Public: true, HasDefault: true, Default: &Str{Value: ""}}

	err := &Type{
		Name:           "Err",
		IsBuiltinError: true,
		Fields:         []Field{messageField},
		Methods:        map[string]*UserFunction{},
		Statics:        map[string]*UserFunction{},
	}
	byName := map[string]*Type{"Err": err}
	for _, name := range builtinErrorNames {
		t := &Type{
			Name:           name,
			IsBuiltinError: true,
			Fields:         []Field{messageField},
			ParentName:     "Err",
			Methods:        map[string]*UserFunction{},
			Statics:        map[string]*UserFunction{},
			parent:         err,
		}
		byName[name] = t
	}
	return &BuiltinErrorTypes{Err: err, ByName: byName}
}

// Raise constructs a builtin exception of the given kind (e.g. "IndexErr")
// with the given message. Panics if kind is not a known builtin error name,
// which would indicate a bug in the evaluator, not user input.
func (b *BuiltinErrorTypes) Raise(kind, message string) *Exception {
	t, ok := b.ByName[kind]
	if !ok {
		panic("object: unknown builtin error kind " + kind)
	}
	return NewException(t, message)
}
