package parser

import (
	"strconv"

	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/pkg/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.advance()
	return &ast.Identifier{Token: tok, Name: tok.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.advance()
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errors = append(p.errors, &SyntaxError{Message: "invalid number literal: " + tok.Literal, Pos: tok.Pos})
		return nil
	}
	return &ast.NumberLiteral{Token: tok, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.advance()
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.advance()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.advance()}
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return &ast.UndefinedLiteral{Token: p.advance()}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.advance()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Operand: operand}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.advance()
	prec := precedenceOf(tok.Type)
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
}

// parseAssignmentExpression parses `target = value`, right-associative:
// the value side is parsed at precedence ASSIGN-1 so `a = b = c` nests as
// `a = (b = c)`. The parser enforces that target is an Identifier, Member,
// or Index expression; any other left-hand side is a SyntaxError.
func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	tok := p.advance() // consume '='

	switch left.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.IndexExpression:
	default:
		p.errors = append(p.errors, &SyntaxError{
			Message: "invalid assignment target",
			Pos:     tok.Pos,
		})
	}

	value := p.parseExpression(ASSIGN - 1)
	return &ast.AssignmentExpression{Token: tok, Target: left, Value: value}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.advance() // consume '('
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpression{Token: tok, Callee: callee, Args: args}
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression

	if p.curIs(end) {
		p.advance()
		return list
	}

	list = append(list, p.parseExpression(LOWEST))
	for p.curIs(token.COMMA) {
		p.advance()
		if p.curIs(end) { // trailing comma
			break
		}
		list = append(list, p.parseExpression(LOWEST))
	}

	p.expect(end)
	return list
}

func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	tok := p.advance() // consume '['
	index := p.parseExpression(LOWEST)
	p.expect(token.RBRACKET)
	return &ast.IndexExpression{Token: tok, Object: object, Index: index}
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	tok := p.advance() // consume '.'
	if !p.curIs(token.IDENT) {
		p.errorf("expected property name after '.', got %s", p.cur().Type)
		return object
	}
	name := p.advance().Literal
	return &ast.MemberExpression{Token: tok, Object: object, Property: name}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.advance() // consume '['
	elements := p.parseExpressionList(token.RBRACKET)
	return &ast.ArrayLiteral{Token: tok, Elements: elements}
}

// parseRecordLiteral parses `{ key: expr, ... }`. An empty `{}` in
// expression position is a record, not a block — the parser only ever
// reaches here via a prefix position, so that ambiguity does not arise.
func (p *Parser) parseRecordLiteral() ast.Expression {
	tok := p.advance() // consume '{'

	var fields []ast.RecordField
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		var key string
		switch p.cur().Type {
		case token.IDENT:
			key = p.advance().Literal
		case token.STRING:
			key = p.advance().Literal
		default:
			p.errorf("expected field name, got %s", p.cur().Type)
			return &ast.RecordLiteral{Token: tok, Fields: fields}
		}

		if !p.expect(token.COLON) {
			return &ast.RecordLiteral{Token: tok, Fields: fields}
		}

		value := p.parseExpression(LOWEST)
		fields = append(fields, ast.RecordField{Key: key, Value: value})

		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}

	p.expect(token.RBRACE)
	return &ast.RecordLiteral{Token: tok, Fields: fields}
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.advance() // consume 'function'

	name := ""
	if p.curIs(token.IDENT) {
		name = p.advance().Literal
	}

	if !p.expect(token.LPAREN) {
		return nil
	}
	params := p.parseFunctionParams()

	body := p.parseBlockStatement()

	return &ast.FunctionLiteral{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseFunctionParams() []*ast.Identifier {
	var params []*ast.Identifier

	if p.curIs(token.RPAREN) {
		p.advance()
		return params
	}

	for {
		if !p.curIs(token.IDENT) {
			p.errorf("expected parameter name, got %s", p.cur().Type)
			break
		}
		tok := p.advance()
		params = append(params, &ast.Identifier{Token: tok, Name: tok.Literal})

		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}

	p.expect(token.RPAREN)
	return params
}
