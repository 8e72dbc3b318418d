package parser

import (
	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

func (p *Parser) parseTypeDeclaration() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return &ast.TypeDeclarationStatement{Token: tok}
	}
	stmt := &ast.TypeDeclarationStatement{Token: tok, Name: p.curToken.Lexeme}

	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.END) && !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.PUB:
			p.nextToken()
			stmt.Fields = append(stmt.Fields, p.parseFieldDecl(true))
		case token.FUN:
			m := p.parseFunctionStatement(nil).(*ast.FunctionStatement)
			m.IsMethod = true
			stmt.Methods = append(stmt.Methods, m)
		case token.STATIC:
			p.nextToken()
			m := p.parseFunctionStatement(nil).(*ast.FunctionStatement)
			m.IsMethod = true
			m.IsStatic = true
			stmt.Methods = append(stmt.Methods, m)
		case token.AT:
			m := p.parseDecoratedFunctionStatement().(*ast.FunctionStatement)
			m.IsMethod = true
			stmt.Methods = append(stmt.Methods, m)
		case token.IMPL:
			stmt.Impls = append(stmt.Impls, p.parseImplBlock())
		case token.IDENT:
			stmt.Fields = append(stmt.Fields, p.parseFieldDecl(false))
		default:
			p.errorf("unexpected token %s in type body", p.curToken.Type)
		}
		p.nextToken()
		p.skipNewlines()
	}
	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close type %q", stmt.Name)
	}
	return stmt
}

func (p *Parser) parseFieldDecl(public bool) ast.FieldDecl {
	field := ast.FieldDecl{Name: p.curToken.Lexeme, Public: public}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		field.TypeName = p.curToken.Lexeme
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		field.HasDefault = true
		field.Default = p.parseExpression(LOWEST)
	}
	return field
}

func (p *Parser) parseImplBlock() ast.ImplBlock {
	// curToken == IMPL
	if !p.expectPeek(token.IDENT) {
		return ast.ImplBlock{}
	}
	impl := ast.ImplBlock{TraitName: p.curToken.Lexeme}

	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.END) && !p.curTokenIs(token.EOF) {
		var m *ast.FunctionStatement
		switch p.curToken.Type {
		case token.AT:
			m = p.parseDecoratedFunctionStatement().(*ast.FunctionStatement)
		case token.STATIC:
			p.nextToken()
			m = p.parseFunctionStatement(nil).(*ast.FunctionStatement)
			m.IsStatic = true
		case token.FUN:
			m = p.parseFunctionStatement(nil).(*ast.FunctionStatement)
		default:
			p.errorf("unexpected token %s in impl block", p.curToken.Type)
			p.nextToken()
			p.skipNewlines()
			continue
		}
		m.IsMethod = true
		impl.Methods = append(impl.Methods, m)
		p.nextToken()
		p.skipNewlines()
	}
	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close impl %q", impl.TraitName)
	}
	return impl
}

func (p *Parser) parseTraitDeclaration() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return &ast.TraitDeclaration{Token: tok}
	}
	stmt := &ast.TraitDeclaration{Token: tok, Name: p.curToken.Lexeme}

	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.END) && !p.curTokenIs(token.EOF) {
		if !p.curTokenIs(token.FUN) {
			p.errorf("expected 'fun' signature in trait %q", stmt.Name)
			break
		}
		if !p.expectPeek(token.IDENT) {
			break
		}
		sig := ast.TraitSignature{Name: p.curToken.Lexeme}
		if !p.expectPeek(token.LPAREN) {
			break
		}
		p.nextToken()
		for !p.curTokenIs(token.RPAREN) {
			if p.curTokenIs(token.EOF) {
				p.errorf("unterminated trait signature")
				break
			}
			sig.Arity++
			p.nextToken()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		stmt.Signatures = append(stmt.Signatures, sig)
		p.nextToken()
		p.skipNewlines()
	}
	if !p.curTokenIs(token.END) {
		p.errorf("expected 'end' to close trait %q", stmt.Name)
	}
	return stmt
}

func (p *Parser) parseUseStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.STRING) {
		return &ast.UseStatement{Token: tok}
	}
	stmt := &ast.UseStatement{Token: tok, Path: p.curToken.Lexeme}

	switch {
	case p.peekTokenIs(token.AS):
		p.nextToken()
		if p.expectPeek(token.IDENT) {
			stmt.Alias = p.curToken.Lexeme
		}
	case p.peekTokenIs(token.LBRACE):
		p.nextToken()
		p.nextToken()
		p.skipNewlines()
		for !p.curTokenIs(token.RBRACE) {
			if p.curTokenIs(token.EOF) {
				p.errorf("unterminated use symbol list")
				break
			}
			stmt.Symbols = append(stmt.Symbols, p.curToken.Lexeme)
			p.nextToken()
			p.skipNewlines()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				p.skipNewlines()
			}
		}
	}
	return stmt
}
