package parser_test

import (
	"testing"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/parser"
)

// parse is a test helper: parses input and fails the test on parse errors.
func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, errs := parser.ParseProgram(input, "test.q")
	if len(errs) > 0 {
		for _, e := range errs {
			t.Errorf("parse error: %s", e)
		}
		t.FailNow()
	}
	return prog
}

func stmtExpr(t *testing.T, prog *ast.Program, idx int) ast.Expression {
	t.Helper()
	if idx >= len(prog.Statements) {
		t.Fatalf("expected at least %d statements, got %d", idx+1, len(prog.Statements))
	}
	es, ok := prog.Statements[idx].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement %d: expected ExpressionStatement, got %T", idx, prog.Statements[idx])
	}
	return es.Expression
}

func TestLetAndAssignment(t *testing.T) {
	prog := parse(t, "let x = 5\nx = x + 1\nx += 2\n")
	if len(prog.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Statements))
	}
	let, ok := prog.Statements[0].(*ast.LetStatement)
	if !ok || let.Name != "x" {
		t.Fatalf("expected let x, got %#v", prog.Statements[0])
	}
	assign, ok := prog.Statements[1].(*ast.AssignStatement)
	if !ok || assign.Operator != "" {
		t.Fatalf("expected plain assignment, got %#v", prog.Statements[1])
	}
	compound, ok := prog.Statements[2].(*ast.AssignStatement)
	if !ok || compound.Operator != "+=" {
		t.Fatalf("expected += assignment, got %#v", prog.Statements[2])
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a and b or c", "((a and b) or c)"},
		{"a | b & c", "(a | (b & c))"},
		{"1 .. 2 + 3", "(1 .. (2 + 3))"},
		{"-a * b", "((-a) * b)"},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input)
		expr := stmtExpr(t, prog, 0)
		got := exprString(expr)
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

// exprString renders an expression tree with explicit parens, for precedence
// assertions only (not a general-purpose pretty printer).
func exprString(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return intStr(n.Value)
	case *ast.Identifier:
		return n.Value
	case *ast.PrefixExpression:
		return "(" + n.Operator + exprString(n.Right) + ")"
	case *ast.InfixExpression:
		return "(" + exprString(n.Left) + " " + n.Operator + " " + exprString(n.Right) + ")"
	default:
		return "?"
	}
}

func intStr(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf []byte
	for v > 0 {
		buf = append([]byte{byte('0' + v%10)}, buf...)
		v /= 10
	}
	if neg {
		buf = append([]byte{'-'}, buf...)
	}
	return string(buf)
}

func TestIfElifElse(t *testing.T) {
	prog := parse(t, `
if a
  1
elif b
  2
else
  3
end
`)
	ifStmt, ok := prog.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %#v", prog.Statements[0])
	}
	if len(ifStmt.Clauses) != 2 {
		t.Fatalf("expected 2 clauses (if+elif), got %d", len(ifStmt.Clauses))
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected else block")
	}
}

func TestWhileLoop(t *testing.T) {
	prog := parse(t, "while true\n  break\nend\n")
	w, ok := prog.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected WhileStatement, got %#v", prog.Statements[0])
	}
	if len(w.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in while body, got %d", len(w.Body.Statements))
	}
}

func TestForRangeLoop(t *testing.T) {
	prog := parse(t, "for i in 1 to 10 step 2\n  print(i)\nend\n")
	f, ok := prog.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %#v", prog.Statements[0])
	}
	if !f.IsRange || f.RangeTo == nil || f.Step == nil {
		t.Fatalf("expected a stepped range for-loop, got %#v", f)
	}
}

func TestForCollectionLoopTwoVars(t *testing.T) {
	prog := parse(t, "for v, i in items\n  print(v)\nend\n")
	f, ok := prog.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %#v", prog.Statements[0])
	}
	if f.ValueVar != "v" || f.IndexVar != "i" || f.IsRange {
		t.Fatalf("unexpected for-loop fields: %#v", f)
	}
}

func TestTryCatchEnsure(t *testing.T) {
	prog := parse(t, `
try
  risky()
catch e: IndexErr
  handle(e)
catch e
  other(e)
ensure
  cleanup()
end
`)
	tr, ok := prog.Statements[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected TryStatement, got %#v", prog.Statements[0])
	}
	if len(tr.Catches) != 2 {
		t.Fatalf("expected 2 catch clauses, got %d", len(tr.Catches))
	}
	if tr.Catches[0].TypeName != "IndexErr" || tr.Catches[0].VarName != "e" {
		t.Fatalf("unexpected first catch clause: %#v", tr.Catches[0])
	}
	if tr.Catches[1].TypeName != "" {
		t.Fatalf("expected bare catch with no type, got %#v", tr.Catches[1])
	}
	if tr.Ensure == nil {
		t.Fatalf("expected ensure block")
	}
}

func TestFunctionDeclarationWithDefaultsAndVariadic(t *testing.T) {
	prog := parse(t, "fun greet(name, greeting = \"hi\", *rest, **opts)\n  print(greeting)\nend\n")
	fn, ok := prog.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("expected FunctionStatement, got %#v", prog.Statements[0])
	}
	if len(fn.Parameters) != 4 {
		t.Fatalf("expected 4 parameters, got %d", len(fn.Parameters))
	}
	if fn.Parameters[1].Default == nil {
		t.Fatalf("expected default value on second parameter")
	}
	if !fn.Parameters[2].Variadic || !fn.Parameters[3].KeywordVar {
		t.Fatalf("expected variadic + keyword-variadic parameters, got %#v", fn.Parameters)
	}
}

func TestDecoratedFunction(t *testing.T) {
	prog := parse(t, "@memoize(ttl: 60)\nfun fib(n)\n  n\nend\n")
	fn, ok := prog.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("expected FunctionStatement, got %#v", prog.Statements[0])
	}
	if len(fn.Decorators) != 1 || fn.Decorators[0].Name != "memoize" {
		t.Fatalf("expected memoize decorator, got %#v", fn.Decorators)
	}
	if len(fn.Decorators[0].Args) != 1 || fn.Decorators[0].Args[0].Name != "ttl" {
		t.Fatalf("expected named arg ttl, got %#v", fn.Decorators[0].Args)
	}
}

func TestTypeDeclarationWithFieldsMethodsAndImpl(t *testing.T) {
	prog := parse(t, `
type Point
  pub x: Int = 0
  y: Int = 0

  fun dist()
    0
  end

  static fun origin()
    Point.new()
  end

  impl Comparable
    fun compare(other)
      0
    end
  end
end
`)
	td, ok := prog.Statements[0].(*ast.TypeDeclarationStatement)
	if !ok {
		t.Fatalf("expected TypeDeclarationStatement, got %#v", prog.Statements[0])
	}
	if len(td.Fields) != 2 || !td.Fields[0].Public || td.Fields[1].Public {
		t.Fatalf("unexpected fields: %#v", td.Fields)
	}
	if len(td.Methods) != 2 {
		t.Fatalf("expected 2 direct methods, got %d", len(td.Methods))
	}
	if !td.Methods[1].IsStatic {
		t.Fatalf("expected origin() to be static")
	}
	if len(td.Impls) != 1 || td.Impls[0].TraitName != "Comparable" {
		t.Fatalf("expected Comparable impl, got %#v", td.Impls)
	}
}

func TestTraitDeclaration(t *testing.T) {
	prog := parse(t, "trait Comparable\n  fun compare(other)\nend\n")
	tr, ok := prog.Statements[0].(*ast.TraitDeclaration)
	if !ok {
		t.Fatalf("expected TraitDeclaration, got %#v", prog.Statements[0])
	}
	if len(tr.Signatures) != 1 || tr.Signatures[0].Name != "compare" || tr.Signatures[0].Arity != 1 {
		t.Fatalf("unexpected signature: %#v", tr.Signatures)
	}
}

func TestUseStatementForms(t *testing.T) {
	prog := parse(t, "use \"std/json\"\nuse \"std/yaml\" as yml\nuse \"std/uuid\" { v4, parse }\n")
	u0 := prog.Statements[0].(*ast.UseStatement)
	if u0.Path != "std/json" || u0.Alias != "" {
		t.Fatalf("unexpected plain use: %#v", u0)
	}
	u1 := prog.Statements[1].(*ast.UseStatement)
	if u1.Alias != "yml" {
		t.Fatalf("unexpected aliased use: %#v", u1)
	}
	u2 := prog.Statements[2].(*ast.UseStatement)
	if len(u2.Symbols) != 2 || u2.Symbols[0] != "v4" || u2.Symbols[1] != "parse" {
		t.Fatalf("unexpected symbol-list use: %#v", u2)
	}
}

func TestArrayAndDictLiterals(t *testing.T) {
	prog := parse(t, "[1, 2, 3]\n{a: 1, \"b\": 2}\n")
	arr, ok := stmtExpr(t, prog, 0).(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("unexpected array literal: %#v", prog.Statements[0])
	}
	dict, ok := stmtExpr(t, prog, 1).(*ast.DictLiteral)
	if !ok || len(dict.Entries) != 2 {
		t.Fatalf("unexpected dict literal: %#v", prog.Statements[1])
	}
}

func TestCallWithSpreadAndNamedArgs(t *testing.T) {
	prog := parse(t, "f(1, name: \"a\", *rest, **opts)\n")
	call, ok := stmtExpr(t, prog, 0).(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected CallExpression, got %#v", prog.Statements[0])
	}
	if len(call.Args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(call.Args))
	}
	if call.Args[0].Kind != ast.ArgPositional {
		t.Fatalf("expected positional arg 0")
	}
	if call.Args[1].Kind != ast.ArgNamed || call.Args[1].Name != "name" {
		t.Fatalf("expected named arg 1, got %#v", call.Args[1])
	}
	if call.Args[2].Kind != ast.ArgArraySpread {
		t.Fatalf("expected array spread arg 2")
	}
	if call.Args[3].Kind != ast.ArgDictSpread {
		t.Fatalf("expected dict spread arg 3")
	}
}

func TestMemberAndIndexChain(t *testing.T) {
	prog := parse(t, "a.b[0].c()\n")
	expr := stmtExpr(t, prog, 0)
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected outer CallExpression, got %T", expr)
	}
	member, ok := call.Function.(*ast.MemberExpression)
	if !ok || member.Name != "c" {
		t.Fatalf("expected .c member, got %#v", call.Function)
	}
	idx, ok := member.Base.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("expected index base, got %#v", member.Base)
	}
	inner, ok := idx.Base.(*ast.MemberExpression)
	if !ok || inner.Name != "b" {
		t.Fatalf("expected .b member, got %#v", idx.Base)
	}
}

func TestFStringInterpolation(t *testing.T) {
	prog := parse(t, `f"hello {name}, you are {age + 1} next year"`)
	lit, ok := stmtExpr(t, prog, 0).(*ast.FStringLiteral)
	if !ok {
		t.Fatalf("expected FStringLiteral, got %#v", prog.Statements[0])
	}
	if len(lit.Parts) != 5 {
		t.Fatalf("expected 5 parts, got %d: %#v", len(lit.Parts), lit.Parts)
	}
	if _, ok := lit.Parts[1].(*ast.Identifier); !ok {
		t.Fatalf("expected identifier interpolation, got %#v", lit.Parts[1])
	}
	if _, ok := lit.Parts[3].(*ast.InfixExpression); !ok {
		t.Fatalf("expected infix interpolation, got %#v", lit.Parts[3])
	}
}

func TestAnonymousFunctionLiteral(t *testing.T) {
	prog := parse(t, "let add = fun (x, y)\n  x + y\nend\n")
	let := prog.Statements[0].(*ast.LetStatement)
	fn, ok := let.Value.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected FunctionLiteral, got %#v", let.Value)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
}

func TestRaiseAndReRaise(t *testing.T) {
	prog := parse(t, `
try
  raise ValueErr.new("bad")
catch e
  raise
end
`)
	tr := prog.Statements[0].(*ast.TryStatement)
	raiseStmt, ok := tr.Body.Statements[0].(*ast.RaiseStatement)
	if !ok || raiseStmt.Value == nil {
		t.Fatalf("expected raise with value, got %#v", tr.Body.Statements[0])
	}
	reRaise, ok := tr.Catches[0].Body.Statements[0].(*ast.RaiseStatement)
	if !ok || reRaise.Value != nil {
		t.Fatalf("expected bare re-raise, got %#v", tr.Catches[0].Body.Statements[0])
	}
}

func TestDeeplyNestedExpressionDoesNotPanic(t *testing.T) {
	input := ""
	for i := 0; i < 500; i++ {
		input += "("
	}
	input += "1"
	for i := 0; i < 500; i++ {
		input += ")"
	}
	_, errs := parser.ParseProgram(input, "deep.q")
	_ = errs // either parses cleanly or reports a depth error; must not panic
}
