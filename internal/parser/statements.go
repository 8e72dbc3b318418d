package parser

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

// parseStatement dispatches on the current token and always returns with
// curToken advanced one past the statement it parsed, so callers (the
// top-level program loop and parseBlockUntil) never need to call nextToken
// themselves between statements.
func (p *Parser) parseStatement() ast.Statement {
	stmt := p.parseStatementInner()
	p.nextToken()
	return stmt
}

func (p *Parser) parseStatementInner() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	case token.CONTINUE:
		return &ast.ContinueStatement{Token: p.curToken}
	case token.RETURN:
		return p.parseReturnStatement()
	case token.RAISE:
		return p.parseRaiseStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.USE:
		return p.parseUseStatement()
	case token.TYPE:
		return p.parseTypeDeclaration()
	case token.TRAIT:
		return p.parseTraitDeclaration()
	case token.FUN:
		if p.peekTokenIs(token.IDENT) {
			return p.parseFunctionStatement(nil)
		}
		return p.parseExpressionOrAssignStatement()
	case token.AT:
		return p.parseDecoratedFunctionStatement()
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

var compoundAssignOps = map[token.Type]string{
	token.ASSIGN:       "",
	token.PLUS_ASSIGN:  "+=",
	token.MINUS_ASSIGN: "-=",
	token.STAR_ASSIGN:  "*=",
	token.SLASH_ASSIGN: "/=",
	token.PCT_ASSIGN:   "%=",
}

func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	startTok := p.curToken
	expr := p.parseExpression(LOWEST)

	if op, ok := compoundAssignOps[p.peekToken.Type]; ok {
		p.nextToken()
		assignTok := p.curToken
		p.nextToken()
		p.skipNewlines()
		value := p.parseExpression(LOWEST)
		return &ast.AssignStatement{Token: assignTok, Target: expr, Operator: op, Value: value}
	}

	return &ast.ExpressionStatement{Token: startTok, Expression: expr}
}
