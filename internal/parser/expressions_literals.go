package parser

import (
	"strings"

	"github.com/quest-lang/quest/internal/ast"
	"github.com/quest-lang/quest/internal/token"
)

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	arr := &ast.ArrayLiteral{Token: tok}
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.RBRACKET) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated array literal")
			return arr
		}
		arr.Elements = append(arr.Elements, p.parseExpression(LOWEST))
		p.nextToken()
		p.skipNewlines()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
		}
	}
	return arr
}

func (p *Parser) parseDictLiteral() ast.Expression {
	tok := p.curToken
	dict := &ast.DictLiteral{Token: tok}
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated dict literal")
			return dict
		}
		var key ast.Expression
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
			key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
			p.nextToken()
		} else {
			key = p.parseExpression(LOWEST)
			if !p.expectPeek(token.COLON) {
				return dict
			}
		}
		p.nextToken()
		p.skipNewlines()
		val := p.parseExpression(LOWEST)
		dict.Entries = append(dict.Entries, ast.DictEntry{Key: key, Value: val})
		p.nextToken()
		p.skipNewlines()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
		}
	}
	return dict
}

// parseFStringLiteral splits an f-string's raw body (already unescaped by the
// lexer except for the `{expr}` markers it left untouched) into alternating
// text and interpolation parts, re-parsing each `{...}` body as a full
// expression with its own lexer/parser instance.
func (p *Parser) parseFStringLiteral() ast.Expression {
	tok := p.curToken
	body := tok.Lexeme
	lit := &ast.FStringLiteral{Token: tok}

	var text strings.Builder
	i := 0
	for i < len(body) {
		ch := body[i]
		if ch == '{' {
			if i+1 < len(body) && body[i+1] == '{' {
				text.WriteByte('{')
				i += 2
				continue
			}
			if text.Len() > 0 {
				lit.Parts = append(lit.Parts, &ast.StringLiteral{Token: tok, Value: text.String()})
				text.Reset()
			}
			depth := 1
			start := i + 1
			j := start
			for j < len(body) && depth > 0 {
				switch body[j] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						goto done
					}
				}
				j++
			}
		done:
			exprSrc := body[start:j]
			sub, errs := ParseProgram(exprSrc+"\n", p.file)
			if len(errs) > 0 {
				p.errors = append(p.errors, errs...)
			} else if len(sub.Statements) == 1 {
				if es, ok := sub.Statements[0].(*ast.ExpressionStatement); ok {
					lit.Parts = append(lit.Parts, es.Expression)
				}
			}
			i = j + 1
			continue
		}
		if ch == '}' && i+1 < len(body) && body[i+1] == '}' {
			text.WriteByte('}')
			i += 2
			continue
		}
		text.WriteByte(ch)
		i++
	}
	if text.Len() > 0 {
		lit.Parts = append(lit.Parts, &ast.StringLiteral{Token: tok, Value: text.String()})
	}
	return lit
}
