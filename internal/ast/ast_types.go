package ast

import (
	"github.com/quest-lang/quest/internal/token"
)

// --- Statements ---

type LetStatement struct {
	Token token.Token
	Name  string
	Value Expression
}

func (n *LetStatement) statementNode()        {}
func (n *LetStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *LetStatement) GetToken() token.Token { return n.Token }

// AssignStatement covers plain `=` and the compound `+=`/`-=`/`*=`/`/=`/`%=`
// forms; Operator is "" for plain assignment.
type AssignStatement struct {
	Token    token.Token
	Target   Expression // *Identifier, *MemberExpression, or *IndexExpression
	Operator string
	Value    Expression
}

func (n *AssignStatement) statementNode()        {}
func (n *AssignStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *AssignStatement) GetToken() token.Token { return n.Token }

type IfClause struct {
	Condition Expression
	Body      *BlockStatement
}

type IfStatement struct {
	Token   token.Token
	Clauses []IfClause // first is `if`, rest are `elif`
	Else    *BlockStatement
}

func (n *IfStatement) statementNode()        {}
func (n *IfStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *IfStatement) GetToken() token.Token { return n.Token }

type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (n *WhileStatement) statementNode()        {}
func (n *WhileStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *WhileStatement) GetToken() token.Token { return n.Token }

// ForStatement covers both collection iteration (`for item[, index] in expr`)
// and integer ranges (`for i in a to|until b [step n]`).
type ForStatement struct {
	Token      token.Token
	ValueVar   string
	IndexVar   string // "" if no second loop variable
	Collection Expression
	IsRange    bool
	RangeTo    Expression
	RangeUntil Expression // mutually exclusive with RangeTo
	Step       Expression // nil => default of 1
	Body       *BlockStatement
}

func (n *ForStatement) statementNode()        {}
func (n *ForStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *ForStatement) GetToken() token.Token { return n.Token }

type BreakStatement struct {
	Token token.Token
}

func (n *BreakStatement) statementNode()        {}
func (n *BreakStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *BreakStatement) GetToken() token.Token { return n.Token }

type ContinueStatement struct {
	Token token.Token
}

func (n *ContinueStatement) statementNode()        {}
func (n *ContinueStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *ContinueStatement) GetToken() token.Token { return n.Token }

type ReturnStatement struct {
	Token token.Token
	Value Expression // nil => return nil
}

func (n *ReturnStatement) statementNode()        {}
func (n *ReturnStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *ReturnStatement) GetToken() token.Token { return n.Token }

// RaiseStatement: `raise expr` or bare `raise` (re-raise, only valid in catch).
type RaiseStatement struct {
	Token token.Token
	Value Expression
}

func (n *RaiseStatement) statementNode()        {}
func (n *RaiseStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *RaiseStatement) GetToken() token.Token { return n.Token }

type CatchClause struct {
	VarName  string // "" if the clause binds no variable (rare)
	TypeName string // "" for a bare `catch e`
	Body     *BlockStatement
}

type TryStatement struct {
	Token   token.Token
	Body    *BlockStatement
	Catches []CatchClause
	Ensure  *BlockStatement // nil if no ensure block
}

func (n *TryStatement) statementNode()        {}
func (n *TryStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *TryStatement) GetToken() token.Token { return n.Token }

// Decorator is one `@Name(args...)` applied above a `fun` declaration.
// Stacked decorators are listed outermost-first as written in source; the
// evaluator applies them bottom-up per spec.
type Decorator struct {
	Token token.Token
	Name  string
	Args  []Argument
}

// FunctionStatement declares a named function or method.
// IsMethod/IsStatic distinguish plain functions from methods declared inside
// a `type ... end` block.
type FunctionStatement struct {
	Token      token.Token
	Name       string
	Parameters []Parameter
	Body       *BlockStatement
	Decorators []Decorator
	IsStatic   bool // declared without `self` inside a type body
	IsMethod   bool // declared inside a type body (static or instance)
}

func (n *FunctionStatement) statementNode()        {}
func (n *FunctionStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *FunctionStatement) GetToken() token.Token { return n.Token }

// --- Types & Traits ---

type FieldDecl struct {
	Name       string
	TypeName   string // "" if untyped
	Public     bool
	HasDefault bool
	Default    Expression
}

type ImplBlock struct {
	TraitName string
	Methods   []*FunctionStatement
}

type TypeDeclarationStatement struct {
	Token   token.Token
	Name    string
	Fields  []FieldDecl
	Methods []*FunctionStatement // instance + static methods declared directly in the body
	Impls   []ImplBlock
}

func (n *TypeDeclarationStatement) statementNode()        {}
func (n *TypeDeclarationStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *TypeDeclarationStatement) GetToken() token.Token { return n.Token }

// TraitSignature is one required method name + arity inside a trait body.
type TraitSignature struct {
	Name  string
	Arity int
}

type TraitDeclaration struct {
	Token      token.Token
	Name       string
	Signatures []TraitSignature
}

func (n *TraitDeclaration) statementNode()        {}
func (n *TraitDeclaration) TokenLiteral() string  { return n.Token.Lexeme }
func (n *TraitDeclaration) GetToken() token.Token { return n.Token }

// --- Modules ---

type UseStatement struct {
	Token   token.Token
	Path    string
	Alias   string   // "" if none
	Symbols []string // non-nil for `use "path" { sym1, sym2 }`
}

func (n *UseStatement) statementNode()        {}
func (n *UseStatement) TokenLiteral() string  { return n.Token.Lexeme }
func (n *UseStatement) GetToken() token.Token { return n.Token }
