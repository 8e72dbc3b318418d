package parser

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

func (p *Parser) parseLetStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return &ast.LetStatement{Token: tok}
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.ASSIGN) {
		return &ast.LetStatement{Token: tok, Name: name}
	}
	p.nextToken()
	p.skipNewlines()
	value := p.parseExpression(LOWEST)
	return &ast.LetStatement{Token: tok, Name: name, Value: value}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.IfStatement{Token: tok}

	p.nextToken()
	cond := p.parseExpression(LOWEST)
	body := p.parseBlockUntil(token.ELIF, token.ELSE, token.END)
	stmt.Clauses = append(stmt.Clauses, ast.IfClause{Condition: cond, Body: body})

	for p.curTokenIs(token.ELIF) {
		p.nextToken()
		c := p.parseExpression(LOWEST)
		b := p.parseBlockUntil(token.ELIF, token.ELSE, token.END)
		stmt.Clauses = append(stmt.Clauses, ast.IfClause{Condition: c, Body: b})
	}

	if p.curTokenIs(token.ELSE) {
		stmt.Else = p.parseBlockUntil(token.END)
	}

	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close if statement")
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	body := p.parseBlockUntil(token.END)
	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close while statement")
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.errorf("expected loop variable name")
	}
	stmt := &ast.ForStatement{Token: tok, ValueVar: p.curToken.Lexeme}

	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.IndexVar = p.curToken.Lexeme
	}

	if !p.expectPeek(token.IN) {
		return stmt
	}
	p.nextToken()
	start := p.parseExpression(LOWEST)

	switch {
	case p.peekTokenIs(token.TO):
		p.nextToken()
		p.nextToken()
		stmt.IsRange = true
		stmt.Collection = start
		stmt.RangeTo = p.parseExpression(LOWEST)
	case p.peekTokenIs(token.UNTIL):
		p.nextToken()
		p.nextToken()
		stmt.IsRange = true
		stmt.Collection = start
		stmt.RangeUntil = p.parseExpression(LOWEST)
	default:
		stmt.Collection = start
	}

	if p.peekTokenIs(token.STEP) {
		p.nextToken()
		p.nextToken()
		stmt.Step = p.parseExpression(LOWEST)
	}

	stmt.Body = p.parseBlockUntil(token.END)
	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close for statement")
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.ReturnStatement{Token: tok}
	if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) && !p.peekTokenIs(token.END) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	return stmt
}

func (p *Parser) parseRaiseStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.RaiseStatement{Token: tok}
	if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) && !p.peekTokenIs(token.END) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	return stmt
}

func (p *Parser) parseTryStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.TryStatement{Token: tok}
	stmt.Body = p.parseBlockUntil(token.CATCH, token.ENSURE, token.END)

	for p.curTokenIs(token.CATCH) {
		p.nextToken()
		var clause ast.CatchClause
		if p.curTokenIs(token.IDENT) {
			clause.VarName = p.curToken.Lexeme
			if p.peekTokenIs(token.COLON) {
				p.nextToken()
				p.nextToken()
				clause.TypeName = p.curToken.Lexeme
			}
		}
		clause.Body = p.parseBlockUntil(token.CATCH, token.ENSURE, token.END)
		stmt.Catches = append(stmt.Catches, clause)
	}

	if p.curTokenIs(token.ENSURE) {
		stmt.Ensure = p.parseBlockUntil(token.END)
	}

	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close try statement")
	}
	return stmt
}
