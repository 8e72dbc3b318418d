package evaluator

import (
	"strings"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/object"
)

// frame is one entry of the iterative engine's explicit, heap-allocated
// evaluation stack: the node being (re-)visited, the environment it runs in,
// and enough bookkeeping (state, partials, keys) to resume where it left
// off once a pushed child has produced a value. Unlike a Go call frame this
// one lives on the heap as part of an ordinary slice, so walking a deeply
// nested expression never grows the native call stack.
type frame struct {
	node ast.Node
	env  *object.Environment

	// state is a small per-node-type step counter: which stage of that
	// node's own little state machine this frame is at. Its meaning is
	// local to the switch case in stepFrame that reads it.
	state int

	// partials accumulates child results in evaluation order (operands,
	// array/call elements, dict values) for nodes that need more than one
	// child evaluated before they can produce their own value.
	partials []object.Value

	// keys accumulates dict-literal keys in lockstep with partials; kept
	// separate because a key may be resolved without evaluating anything
	// (bare identifier/string keys).
	keys []string
}

// allPositional reports whether every call argument is a plain positional
// expression, the common case the iterative engine's CallExpression frame
// handles directly.
func allPositional(args []ast.Argument) bool {
	for _, a := range args {
		if a.Kind != ast.ArgPositional {
			return false
		}
	}
	return true
}

// evalIterative is the engine entry point for the grammar rules routed
// through the explicit frame stack: every literal, identifier/self,
// prefix/infix operators, the postfix chain (member/index/call with
// all-positional arguments), and the if/while/for/try statements (whose own
// condition/collection/bound sub-expressions are themselves routed here).
// Anything encountered mid-walk that this engine doesn't own — lambda
// literals, named/spread call arguments, declarations — is handed back to
// the ordinary recursive e.Eval, exactly the carve-out the language design
// calls for: those constructs are rare and shallow, not worth frame-izing.
func (e *Evaluator) evalIterative(root ast.Node, rootEnv *object.Environment) object.Value {
	stack := []*frame{{node: root, env: rootEnv}}
	var pending object.Value
	resumed := false

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		wasResumed := resumed
		resumed = false

		if wasResumed && isSignal(pending) {
			stack = stack[:len(stack)-1]
			continue
		}

		child, childEnv, value, done := e.stepFrame(top, wasResumed, pending)
		if done {
			stack = stack[:len(stack)-1]
			pending = value
			resumed = true
			continue
		}
		stack = append(stack, &frame{node: child, env: childEnv})
	}
	return pending
}

// stepFrame advances top by exactly one step: either it produces a final
// value (done == true, value holds the result) or it names the next child
// node to push onto the stack (done == false). resumed reports whether this
// call follows a child frame completing, with childVal holding that child's
// result.
func (e *Evaluator) stepFrame(top *frame, resumed bool, childVal object.Value) (ast.Node, *object.Environment, object.Value, bool) {
	switch n := top.node.(type) {

	// --- Literals: never push a child ---
	case *ast.IntegerLiteral:
		return nil, nil, &object.Int{Value: n.Value}, true
	case *ast.FloatLiteral:
		return nil, nil, &object.Float{Value: n.Value}, true
	case *ast.BigIntLiteral:
		return nil, nil, &object.BigInt{Value: n.Value}, true
	case *ast.BooleanLiteral:
		return nil, nil, object.NativeBool(n.Value), true
	case *ast.NilLiteral:
		return nil, nil, object.NilInstance, true
	case *ast.StringLiteral:
		return nil, nil, &object.Str{Value: n.Value}, true
	case *ast.BytesLiteral:
		return nil, nil, object.NewBytes(n.Value), true
	case *ast.TypeLiteral:
		return nil, nil, e.lookupTypeLiteral(n, top.env), true

	case *ast.Identifier:
		if v, ok := top.env.Get(n.Value); ok {
			return nil, nil, v, true
		}
		return nil, nil, e.Errors.Raise("NameErr", "name \""+n.Value+"\" is not defined"), true
	case *ast.SelfExpression:
		if v, ok := top.env.Get("self"); ok {
			return nil, nil, v, true
		}
		return nil, nil, e.Errors.Raise("RuntimeErr", "self is not bound outside a method"), true

	// --- Sequence literals: array, dict, f-string ---
	case *ast.ArrayLiteral:
		if resumed {
			top.partials = append(top.partials, childVal)
			top.state++
		}
		if top.state < len(n.Elements) {
			return n.Elements[top.state], top.env, nil, false
		}
		return nil, nil, object.NewArray(append([]object.Value{}, top.partials...)), true

	case *ast.DictLiteral:
		if resumed {
			top.partials = append(top.partials, childVal)
			top.state++
		}
		if top.state < len(n.Entries) {
			entry := n.Entries[top.state]
			var key string
			switch k := entry.Key.(type) {
			case *ast.Identifier:
				key = k.Value
			case *ast.StringLiteral:
				key = k.Value
			default:
				kv := e.Eval(entry.Key, top.env)
				if isSignal(kv) {
					return nil, nil, kv, true
				}
				key = object.Str_(kv)
			}
			top.keys = append(top.keys, key)
			return entry.Value, top.env, nil, false
		}
		d := object.NewDict()
		for i, v := range top.partials {
			d.Set(top.keys[i], v)
		}
		return nil, nil, d, true

	case *ast.FStringLiteral:
		if resumed {
			top.partials = append(top.partials, childVal)
			top.state++
		}
		for top.state < len(n.Parts) {
			if sl, ok := n.Parts[top.state].(*ast.StringLiteral); ok {
				top.partials = append(top.partials, &object.Str{Value: sl.Value})
				top.state++
				continue
			}
			return n.Parts[top.state], top.env, nil, false
		}
		var sb strings.Builder
		for _, v := range top.partials {
			sb.WriteString(object.Str_(v))
		}
		return nil, nil, &object.Str{Value: sb.String()}, true

	// --- Operators ---
	case *ast.PrefixExpression:
		if !resumed {
			return n.Right, top.env, nil, false
		}
		return nil, nil, e.applyPrefix(n, childVal), true

	case *ast.InfixExpression:
		return e.stepInfix(top, n, resumed, childVal)

	// --- Postfix chain ---
	case *ast.MemberExpression:
		if !resumed {
			return n.Base, top.env, nil, false
		}
		_, viaSelf := n.Base.(*ast.SelfExpression)
		return nil, nil, e.getMember(n, childVal, n.Name, viaSelf), true

	case *ast.IndexExpression:
		if top.state == 0 {
			if !resumed {
				return n.Base, top.env, nil, false
			}
			top.partials = []object.Value{childVal}
			top.state = 1
			return n.Index, top.env, nil, false
		}
		return nil, nil, e.applyIndex(n, top.partials[0], childVal), true

	case *ast.CallExpression:
		return e.stepCall(top, n, resumed, childVal)

	// --- Control flow: condition/collection sub-expressions route through
	// this same engine via the existing (unchanged) recursive e.Eval, since
	// loop/try body statements are themselves not routed. ---
	case *ast.IfStatement:
		return nil, nil, e.evalIfStatement(n, top.env), true
	case *ast.WhileStatement:
		return nil, nil, e.evalWhileStatement(n, top.env), true
	case *ast.ForStatement:
		return nil, nil, e.evalForStatement(n, top.env), true
	case *ast.TryStatement:
		return nil, nil, e.evalTryStatement(n, top.env), true
	}

	// Anything else (lambda literals, declarations, ...) is not routed:
	// hand it back to the ordinary recursive evaluator.
	return nil, nil, e.Eval(top.node, top.env), true
}

// stepInfix implements §4.4.2's EvalLeft state machine: evaluate the left
// operand, handle and/or/?:/is/does (which need the unevaluated right side
// or env rather than a plain value), otherwise evaluate the right operand
// and apply the operator.
func (e *Evaluator) stepInfix(top *frame, n *ast.InfixExpression, resumed bool, childVal object.Value) (ast.Node, *object.Environment, object.Value, bool) {
	const stEvalLeft = 0
	const stEvalRight = 1

	if top.state == stEvalLeft {
		if !resumed {
			return n.Left, top.env, nil, false
		}
		left := childVal
		switch n.Operator {
		case "and":
			if !left.Truthy() {
				return nil, nil, left, true
			}
			top.partials = []object.Value{left}
			top.state = stEvalRight
			return n.Right, top.env, nil, false
		case "or":
			if left.Truthy() {
				return nil, nil, left, true
			}
			top.partials = []object.Value{left}
			top.state = stEvalRight
			return n.Right, top.env, nil, false
		case "?:":
			if _, isNil := left.(object.Nil); !isNil {
				return nil, nil, left, true
			}
			top.partials = []object.Value{left}
			top.state = stEvalRight
			return n.Right, top.env, nil, false
		case "is":
			return nil, nil, e.applyIs(n, left, top.env), true
		case "does":
			return nil, nil, e.applyDoes(n, left), true
		default:
			top.partials = []object.Value{left}
			top.state = stEvalRight
			return n.Right, top.env, nil, false
		}
	}

	// stEvalRight: partials[0] is left, childVal is right.
	left := top.partials[0]
	right := childVal
	switch n.Operator {
	case "and", "or", "?:":
		return nil, nil, right, true
	default:
		return nil, nil, e.applyInfixOperator(n, left, right), true
	}
}

// stepCall implements §4.4.3's call dispatch: evaluate the callee, then
// each positional argument in order, then apply. Named args and spreads
// fall back whole to the recursive evalCallExpression — intentionally rare,
// not deeply nested, and already fully handled there.
func (e *Evaluator) stepCall(top *frame, n *ast.CallExpression, resumed bool, childVal object.Value) (ast.Node, *object.Environment, object.Value, bool) {
	if !allPositional(n.Args) {
		return nil, nil, e.evalCallExpression(n, top.env), true
	}

	const stAwaitingFunction = -1

	if !resumed && top.state == 0 && top.partials == nil {
		top.state = stAwaitingFunction
		return n.Function, top.env, nil, false
	}
	if top.state == stAwaitingFunction {
		top.partials = []object.Value{childVal}
		top.state = 0
	} else {
		top.partials = append(top.partials, childVal)
		top.state++
	}
	if top.state < len(n.Args) {
		return n.Args[top.state].Value, top.env, nil, false
	}

	fn := top.partials[0]
	args := callArgs{Positional: append([]object.Value{}, top.partials[1:]...), Named: map[string]object.Value{}}
	return nil, nil, e.applyFunction(n, fn, args), true
}
