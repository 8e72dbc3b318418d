package parser

import (
	"math/big"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

// parseExpression is the Pratt loop: parse a prefix expression, then keep
// folding in infix/postfix operators while they bind tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	if p.depth > MaxExpressionDepth {
		p.errorf("expression nested too deeply")
		p.depth--
		return nil
	}
	defer func() { p.depth-- }()

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf("no prefix parse function for %s (%q)", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.NEWLINE) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseSelfExpression() ast.Expression {
	return &ast.SelfExpression{Token: p.curToken}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, _ := p.curToken.Literal.(int64)
	return &ast.IntegerLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	v, _ := p.curToken.Literal.(float64)
	return &ast.FloatLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	v, _ := p.curToken.Literal.(*big.Int)
	return &ast.BigIntLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseBytesLiteral() ast.Expression {
	b, _ := p.curToken.Literal.([]byte)
	return &ast.BytesLiteral{Token: p.curToken, Value: b}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	p.skipNewlines()
	exp := p.parseExpression(LOWEST)
	p.skipNewlines()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := tok.Lexeme
	p.nextToken()
	right := p.parseExpression(UNARY)
	return &ast.PrefixExpression{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseNotExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(LOGIC_NOT)
	return &ast.PrefixExpression{Token: tok, Operator: "not", Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Lexeme
	precedence := p.curPrecedence()
	p.nextToken()
	p.skipNewlines()
	right := p.parseExpression(precedence)
	return &ast.InfixExpression{Token: tok, Left: left, Operator: op, Right: right}
}

// parseIsExpression handles `expr is Type` (type test).
func (p *Parser) parseIsExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(COMPARE)
	return &ast.InfixExpression{Token: tok, Left: left, Operator: "is", Right: right}
}

// parseDoesExpression handles `expr does Trait` (trait conformance test).
func (p *Parser) parseDoesExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(COMPARE)
	return &ast.InfixExpression{Token: tok, Left: left, Operator: "does", Right: right}
}
