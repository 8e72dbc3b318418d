package parser

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

// parseFunctionLiteral handles anonymous `fun (params) body end` lambdas.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParameterList()
	body := p.parseBlockUntil(token.END)
	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close function literal")
	}
	return &ast.FunctionLiteral{Token: tok, Parameters: params, Body: body}
}

// parseParameterList parses a parenthesized parameter list. curToken is `(`
// on entry, `)` on exit.
func (p *Parser) parseParameterList() []ast.Parameter {
	var params []ast.Parameter
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated parameter list")
			return params
		}
		var param ast.Parameter
		switch {
		case p.curTokenIs(token.ASTERISK) && p.peekTokenIs(token.ASTERISK):
			p.nextToken()
			p.nextToken()
			param.KeywordVar = true
			param.Name = p.curToken.Lexeme
		case p.curTokenIs(token.ASTERISK):
			p.nextToken()
			param.Variadic = true
			param.Name = p.curToken.Lexeme
		default:
			param.Name = p.curToken.Lexeme
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			param.TypeName = p.curToken.Lexeme
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			param.Default = p.parseExpression(LOWEST)
		}
		params = append(params, param)
		p.nextToken()
		p.skipNewlines()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
		}
	}
	return params
}

// parseBlockUntil parses statements until curToken is one of the given
// terminators (or EOF), leaving curToken positioned on the terminator.
func (p *Parser) parseBlockUntil(terminators ...token.Type) *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIsAny(terminators...) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	return block
}

func (p *Parser) curTokenIsAny(types ...token.Type) bool {
	for _, t := range types {
		if p.curToken.Type == t {
			return true
		}
	}
	return false
}
