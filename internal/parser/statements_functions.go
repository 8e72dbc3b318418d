package parser

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

// parseFunctionCore parses `fun name(params) body end`. curToken is FUN on
// entry, END on exit.
func (p *Parser) parseFunctionCore() (name string, params []ast.Parameter, body *ast.BlockStatement) {
	if !p.expectPeek(token.IDENT) {
		return
	}
	name = p.curToken.Lexeme
	if !p.expectPeek(token.LPAREN) {
		return
	}
	params = p.parseParameterList()
	body = p.parseBlockUntil(token.END)
	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close function %q", name)
	}
	return
}

func (p *Parser) parseFunctionStatement(decorators []ast.Decorator) ast.Statement {
	tok := p.curToken
	name, params, body := p.parseFunctionCore()
	return &ast.FunctionStatement{Token: tok, Name: name, Parameters: params, Body: body, Decorators: decorators}
}

// parseDecoratedFunctionStatement collects a stack of `@Dec(args)` lines
// immediately preceding a `fun` declaration.
func (p *Parser) parseDecoratedFunctionStatement() ast.Statement {
	var decorators []ast.Decorator
	for p.curTokenIs(token.AT) {
		dtok := p.curToken
		if !p.expectPeek(token.IDENT) {
			break
		}
		name := p.curToken.Lexeme
		var args []ast.Argument
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			args = p.parseArgumentList()
		}
		decorators = append(decorators, ast.Decorator{Token: dtok, Name: name, Args: args})
		p.nextToken()
		p.skipNewlines()
	}
	if !p.curTokenIs(token.FUN) {
		p.errorf("expected 'fun' after decorator")
		return &ast.FunctionStatement{Token: p.curToken, Decorators: decorators}
	}
	return p.parseFunctionStatement(decorators)
}
