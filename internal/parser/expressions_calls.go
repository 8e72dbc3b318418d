package parser

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

// parseCallExpression handles `(` immediately following a callable
// expression: `fn(args...)`.
func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	call := &ast.CallExpression{Token: tok, Function: left}
	call.Args = p.parseArgumentList()
	return call
}

// parseArgumentList parses a comma-separated argument list up to and
// including the closing `)`. curToken is `(` on entry, `)` on exit.
func (p *Parser) parseArgumentList() []ast.Argument {
	var args []ast.Argument
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated argument list")
			return args
		}
		args = append(args, p.parseArgument())
		p.nextToken()
		p.skipNewlines()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
		}
	}
	return args
}

func (p *Parser) parseArgument() ast.Argument {
	// `**expr` dict-spread: two consecutive `*` tokens.
	if p.curTokenIs(token.ASTERISK) && p.peekTokenIs(token.ASTERISK) {
		p.nextToken()
		p.nextToken()
		return ast.Argument{Kind: ast.ArgDictSpread, Value: p.parseExpression(LOWEST)}
	}
	// `*expr` array-spread.
	if p.curTokenIs(token.ASTERISK) {
		p.nextToken()
		return ast.Argument{Kind: ast.ArgArraySpread, Value: p.parseExpression(LOWEST)}
	}
	// `name: expr` named argument.
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
		name := p.curToken.Lexeme
		p.nextToken()
		p.nextToken()
		return ast.Argument{Kind: ast.ArgNamed, Name: name, Value: p.parseExpression(LOWEST)}
	}
	return ast.Argument{Kind: ast.ArgPositional, Value: p.parseExpression(LOWEST)}
}
