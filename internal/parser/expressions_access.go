package parser

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

// parseMemberExpression handles the `.` postfix operator: `base.name`.
func (p *Parser) parseMemberExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return left
	}
	return &ast.MemberExpression{Token: tok, Base: left, Name: p.curToken.Lexeme}
}

// parseIndexExpression handles the `[` postfix operator: `base[index]`.
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	p.skipNewlines()
	idx := p.parseExpression(LOWEST)
	p.skipNewlines()
	if !p.expectPeek(token.RBRACKET) {
		return left
	}
	return &ast.IndexExpression{Token: tok, Base: left, Index: idx}
}
