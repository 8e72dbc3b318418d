package evaluator

import (
	"fmt"
	"math"
	"math/big"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
)

// applyPrefix applies n's operator to an already-evaluated operand. Called
// by the iterative engine's frame-resume step (iterative.go) once the
// operand has been evaluated via the frame stack rather than e.Eval.
func (e *Evaluator) applyPrefix(n *ast.PrefixExpression, right object.Value) object.Value {
	switch n.Operator {
	case "not":
		return object.NativeBool(!right.Truthy())
	case "-":
		switch v := right.(type) {
		case *object.Int:
			return &object.Int{Value: -v.Value}
		case *object.Float:
			return &object.Float{Value: -v.Value}
		case *object.BigInt:
			return &object.BigInt{Value: new(big.Int).Neg(v.Value)}
		}
		return e.typeErrf(n, "unary - not supported for %s", object.Cls(right))
	case "+":
		switch right.(type) {
		case *object.Int, *object.Float, *object.BigInt:
			return right
		}
		return e.typeErrf(n, "unary + not supported for %s", object.Cls(right))
	case "~":
		if v, ok := right.(*object.Int); ok {
			return &object.Int{Value: ^v.Value}
		}
		return e.typeErrf(n, "~ not supported for %s", object.Cls(right))
	case "!":
		return object.NativeBool(!right.Truthy())
	}
	return e.Errors.Raise("RuntimeErr", "unknown prefix operator "+n.Operator)
}

// applyInfixOperator applies every infix operator except the short-circuit
// ones (and/or/?:) and is/does, which need access to the unevaluated right
// operand or env — those are handled by stepInfix (iterative.go) directly,
// since every infix expression is routed through the iterative engine.
func (e *Evaluator) applyInfixOperator(n *ast.InfixExpression, left, right object.Value) object.Value {
	switch n.Operator {
	case "==":
		return object.NativeBool(object.ValuesEqual(left, right))
	case "!=":
		return object.NativeBool(!object.ValuesEqual(left, right))
	case "..":
		return &object.Str{Value: object.Str_(left) + object.Str_(right)}
	case "<", ">", "<=", ">=":
		return e.evalComparison(n, left, right)
	case "&", "|", "^", "<<", ">>":
		return e.evalBitwise(n, left, right)
	case "+", "-", "*", "/", "%":
		return e.evalArithmetic(n, left, right)
	}
	return e.Errors.Raise("RuntimeErr", "unknown infix operator "+n.Operator)
}

// evalArithmetic promotes along the numeric tower: Int < Float, Int < BigInt.
// Float and BigInt mixed is a TypeErr per the spec's explicit Open Question
// resolution (no implicit Float<->BigInt conversion, since it would silently
// lose precision in either direction).
func (e *Evaluator) evalArithmetic(n *ast.InfixExpression, left, right object.Value) object.Value {
	if _, lf := left.(*object.Float); lf {
		if _, rb := right.(*object.BigInt); rb {
			return e.typeErrf(n, "cannot mix Float and BigInt in %s", n.Operator)
		}
	}
	if _, rf := right.(*object.Float); rf {
		if _, lb := left.(*object.BigInt); lb {
			return e.typeErrf(n, "cannot mix Float and BigInt in %s", n.Operator)
		}
	}

	if ls, lok := left.(*object.Str); lok {
		if n.Operator == "+" {
			if rs, rok := right.(*object.Str); rok {
				return &object.Str{Value: ls.Value + rs.Value}
			}
		}
		return e.typeErrf(n, "operator %s not supported between Str and %s", n.Operator, object.Cls(right))
	}

	if la, lok := left.(*object.Array); lok && n.Operator == "+" {
		if ra, rok := right.(*object.Array); rok {
			combined := append(append([]object.Value{}, la.Elements()...), ra.Elements()...)
			return object.NewArray(combined)
		}
		return e.typeErrf(n, "operator + not supported between Array and %s", object.Cls(right))
	}

	if _, lbi := left.(*object.BigInt); lbi {
		return e.arithBigInt(n, left, right)
	}
	if _, rbi := right.(*object.BigInt); rbi {
		return e.arithBigInt(n, left, right)
	}
	if _, lf := left.(*object.Float); lf {
		return e.arithFloat(n, left, right)
	}
	if _, rf := right.(*object.Float); rf {
		return e.arithFloat(n, left, right)
	}

	li, lok := left.(*object.Int)
	ri, rok := right.(*object.Int)
	if !lok || !rok {
		return e.typeErrf(n, "operator %s not supported between %s and %s", n.Operator, object.Cls(left), object.Cls(right))
	}
	switch n.Operator {
	case "+":
		sum := li.Value + ri.Value
		if (ri.Value > 0 && sum < li.Value) || (ri.Value < 0 && sum > li.Value) {
			return e.Errors.Raise("ValueErr", "integer overflow in +")
		}
		return &object.Int{Value: sum}
	case "-":
		diff := li.Value - ri.Value
		if (ri.Value < 0 && diff < li.Value) || (ri.Value > 0 && diff > li.Value) {
			return e.Errors.Raise("ValueErr", "integer overflow in -")
		}
		return &object.Int{Value: diff}
	case "*":
		if li.Value == 0 || ri.Value == 0 {
			return &object.Int{Value: 0}
		}
		prod := li.Value * ri.Value
		if prod/ri.Value != li.Value || (li.Value == -1 && ri.Value == math.MinInt64) || (ri.Value == -1 && li.Value == math.MinInt64) {
			return e.Errors.Raise("ValueErr", "integer overflow in *")
		}
		return &object.Int{Value: prod}
	case "/":
		if ri.Value == 0 {
			return e.Errors.Raise("ValueErr", "division by zero")
		}
		if li.Value == math.MinInt64 && ri.Value == -1 {
			return e.Errors.Raise("ValueErr", "integer overflow in /")
		}
		return &object.Int{Value: li.Value / ri.Value}
	case "%":
		if ri.Value == 0 {
			return e.Errors.Raise("ValueErr", "modulo by zero")
		}
		return &object.Int{Value: li.Value % ri.Value}
	}
	return e.Errors.Raise("RuntimeErr", "unknown arithmetic operator "+n.Operator)
}

func toFloat(v object.Value) (float64, bool) {
	switch x := v.(type) {
	case *object.Int:
		return float64(x.Value), true
	case *object.Float:
		return x.Value, true
	}
	return 0, false
}

func (e *Evaluator) arithFloat(n *ast.InfixExpression, left, right object.Value) object.Value {
	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if !lok || !rok {
		return e.typeErrf(n, "operator %s not supported between %s and %s", n.Operator, object.Cls(left), object.Cls(right))
	}
	switch n.Operator {
	case "+":
		return &object.Float{Value: lf + rf}
	case "-":
		return &object.Float{Value: lf - rf}
	case "*":
		return &object.Float{Value: lf * rf}
	case "/":
		if rf == 0 {
			return &object.Float{Value: math.Inf(int(math.Copysign(1, lf)))}
		}
		return &object.Float{Value: lf / rf}
	case "%":
		return &object.Float{Value: math.Mod(lf, rf)}
	}
	return e.Errors.Raise("RuntimeErr", "unknown arithmetic operator "+n.Operator)
}

func toBigInt(v object.Value) (*big.Int, bool) {
	switch x := v.(type) {
	case *object.Int:
		return big.NewInt(x.Value), true
	case *object.BigInt:
		return x.Value, true
	}
	return nil, false
}

func (e *Evaluator) arithBigInt(n *ast.InfixExpression, left, right object.Value) object.Value {
	lb, lok := toBigInt(left)
	rb, rok := toBigInt(right)
	if !lok || !rok {
		return e.typeErrf(n, "operator %s not supported between %s and %s", n.Operator, object.Cls(left), object.Cls(right))
	}
	result := new(big.Int)
	switch n.Operator {
	case "+":
		result.Add(lb, rb)
	case "-":
		result.Sub(lb, rb)
	case "*":
		result.Mul(lb, rb)
	case "/":
		if rb.Sign() == 0 {
			return e.Errors.Raise("ValueErr", "division by zero")
		}
		result.Quo(lb, rb)
	case "%":
		if rb.Sign() == 0 {
			return e.Errors.Raise("ValueErr", "modulo by zero")
		}
		result.Rem(lb, rb)
	default:
		return e.Errors.Raise("RuntimeErr", "unknown arithmetic operator "+n.Operator)
	}
	return &object.BigInt{Value: result}
}

func (e *Evaluator) evalComparison(n *ast.InfixExpression, left, right object.Value) object.Value {
	if ls, lok := left.(*object.Str); lok {
		if rs, rok := right.(*object.Str); rok {
			return object.NativeBool(compareStr(n.Operator, ls.Value, rs.Value))
		}
		return e.typeErrf(n, "cannot compare Str with %s", object.Cls(right))
	}
	if lb, lok := toBigInt(left); lok {
		if rb, rok := toBigInt(right); rok {
			return object.NativeBool(compareInt(n.Operator, lb.Cmp(rb)))
		}
	}
	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if !lok || !rok {
		return e.typeErrf(n, "cannot compare %s with %s", object.Cls(left), object.Cls(right))
	}
	switch n.Operator {
	case "<":
		return object.NativeBool(lf < rf)
	case ">":
		return object.NativeBool(lf > rf)
	case "<=":
		return object.NativeBool(lf <= rf)
	case ">=":
		return object.NativeBool(lf >= rf)
	}
	return e.Errors.Raise("RuntimeErr", "unknown comparison operator "+n.Operator)
}

func compareStr(op, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}

func compareInt(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	}
	return false
}

func (e *Evaluator) evalBitwise(n *ast.InfixExpression, left, right object.Value) object.Value {
	li, lok := left.(*object.Int)
	ri, rok := right.(*object.Int)
	if !lok || !rok {
		return e.typeErrf(n, "operator %s requires two Int operands, got %s and %s", n.Operator, object.Cls(left), object.Cls(right))
	}
	switch n.Operator {
	case "&":
		return &object.Int{Value: li.Value & ri.Value}
	case "|":
		return &object.Int{Value: li.Value | ri.Value}
	case "^":
		return &object.Int{Value: li.Value ^ ri.Value}
	case "<<":
		return &object.Int{Value: li.Value << uint(ri.Value)}
	case ">>":
		return &object.Int{Value: li.Value >> uint(ri.Value)}
	}
	return e.Errors.Raise("RuntimeErr", "unknown bitwise operator "+n.Operator)
}

// applyIs applies `is` to an already-evaluated left operand. n.Right is
// never evaluated as an expression — it names a type, looked up by identity.
func (e *Evaluator) applyIs(n *ast.InfixExpression, left object.Value, env *object.Environment) object.Value {
	var typeName string
	switch r := n.Right.(type) {
	case *ast.TypeLiteral:
		typeName = r.Name
	case *ast.Identifier:
		typeName = r.Value
	default:
		return e.typeErrf(n, "right side of `is` must be a type name")
	}
	if t, ok := env.Get(typeName); ok {
		if tv, ok := t.(*object.Type); ok {
			if s, ok := left.(*object.Struct); ok {
				return object.NativeBool(s.TypeValue == tv)
			}
			if exc, ok := left.(*object.Exception); ok {
				return object.NativeBool(exc.IsA(tv))
			}
			return object.NativeBool(false)
		}
	}
	return object.NativeBool(string(left.Type()) == typeName)
}

// applyDoes applies `does` to an already-evaluated left operand.
func (e *Evaluator) applyDoes(n *ast.InfixExpression, left object.Value) object.Value {
	var traitName string
	switch r := n.Right.(type) {
	case *ast.TypeLiteral:
		traitName = r.Name
	case *ast.Identifier:
		traitName = r.Value
	default:
		return e.typeErrf(n, "right side of `does` must be a trait name")
	}
	s, ok := left.(*object.Struct)
	if !ok {
		return object.NativeBool(false)
	}
	for _, tr := range s.TypeValue.Traits {
		if tr == traitName {
			return object.NativeBool(true)
		}
	}
	return object.NativeBool(false)
}

func (e *Evaluator) typeErrf(node ast.Node, format string, args ...interface{}) *object.Exception {
	exc := e.Errors.Raise("TypeErr", fmt.Sprintf(format, args...))
	exc.File = e.CurrentFile
	exc.Line = node.GetToken().Line
	return exc
}
