// Package parser implements a Pratt (precedence-climbing) parser that turns
// a token stream into the concrete syntax tree defined by internal/ast.
package parser

import (
	"fmt"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/lexer"
	"github.com/quest-lang/quest/internal/token"
)

// Precedence levels, low to high, matching the grammar's operator table.
const (
	LOWEST int = iota
	ELVIS      // ?:
	LOGIC_OR
	LOGIC_AND
	LOGIC_NOT // prefix `not`
	BIT_OR
	BIT_XOR
	BIT_AND
	SHIFT
	COMPARE
	CONCAT // ..
	SUM
	PRODUCT
	UNARY // prefix + - ~
	POSTFIX
)

var precedences = map[token.Type]int{
	token.ELVIS:        ELVIS,
	token.OR:           LOGIC_OR,
	token.AND:          LOGIC_AND,
	token.PIPE:         BIT_OR,
	token.CARET:        BIT_XOR,
	token.AMP:          BIT_AND,
	token.LSHIFT:       SHIFT,
	token.RSHIFT:       SHIFT,
	token.EQ:           COMPARE,
	token.NOT_EQ:       COMPARE,
	token.LT:           COMPARE,
	token.GT:           COMPARE,
	token.LTE:          COMPARE,
	token.GTE:          COMPARE,
	token.DOTDOT:       CONCAT,
	token.PLUS:         SUM,
	token.MINUS:        SUM,
	token.ASTERISK:     PRODUCT,
	token.SLASH:        PRODUCT,
	token.PERCENT:      PRODUCT,
	token.IS:           COMPARE,
	token.DOES:         COMPARE,
	token.DOT:          POSTFIX,
	token.LBRACKET:     POSTFIX,
	token.LPAREN:       POSTFIX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// MaxExpressionDepth bounds parseExpression recursion so a pathological
// input cannot exhaust the native Go stack during parsing (the evaluator's
// own recursion guard is separate, see internal/evaluator).
const MaxExpressionDepth = 2000

type Parser struct {
	l *lexer.Lexer

	file string

	curToken  token.Token
	peekToken token.Token

	errors []string
	depth  int

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

func New(l *lexer.Lexer, file string) *Parser {
	p := &Parser{l: l, file: file}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.BIGINT, p.parseBigIntLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.FSTRING, p.parseFStringLiteral)
	p.registerPrefix(token.BYTES, p.parseBytesLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NIL, p.parseNilLiteral)
	p.registerPrefix(token.SELF, p.parseSelfExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseDictLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.PLUS, p.parseUnaryExpression)
	p.registerPrefix(token.TILDE, p.parseUnaryExpression)
	p.registerPrefix(token.BANG, p.parseUnaryExpression)
	p.registerPrefix(token.NOT, p.parseNotExpression)
	p.registerPrefix(token.FUN, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{
		token.ELVIS, token.OR, token.AND, token.PIPE, token.CARET, token.AMP,
		token.LSHIFT, token.RSHIFT, token.EQ, token.NOT_EQ, token.LT, token.GT,
		token.LTE, token.GTE, token.DOTDOT, token.PLUS, token.MINUS,
		token.ASTERISK, token.SLASH, token.PERCENT,
	} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	p.registerInfix(token.IS, p.parseIsExpression)
	p.registerInfix(token.DOES, p.parseDoesExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Read two tokens so curToken and peekToken are both populated.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errors = append(p.errors, fmt.Sprintf("%s:%d:%d: expected next token to be %s, got %s (%q) instead",
		p.file, p.peekToken.Line, p.peekToken.Column, t, p.peekToken.Type, p.peekToken.Lexeme))
}

func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%s:%d:%d: %s", p.file, p.curToken.Line, p.curToken.Column, msg))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// skipNewlines consumes zero or more NEWLINE tokens at the current position.
func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// ParseProgram parses a full source file into a *ast.Program.
func ParseProgram(source, file string) (*ast.Program, []string) {
	l := lexer.New(source)
	p := New(l, file)
	prog := &ast.Program{File: file}

	p.skipNewlines()
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipNewlines()
	}
	return prog, p.errors
}
