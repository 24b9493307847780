package parser

import (
	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/pkg/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case token.LET, token.CONST, token.VAR:
		return p.parseVarDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func declKindOf(tt token.Type) ast.DeclarationKind {
	switch tt {
	case token.CONST:
		return ast.Const
	case token.VAR:
		return ast.VarKind
	default:
		return ast.Let
	}
}

func (p *Parser) parseVarDeclaration() *ast.VarDeclaration {
	tok := p.advance() // consume let/const/var
	decl := &ast.VarDeclaration{Token: tok, Kind: declKindOf(tok.Type)}

	if !p.curIs(token.IDENT) {
		p.errorf("expected identifier after %s, got %s", tok.Literal, p.cur().Type)
		return decl
	}
	decl.Name = p.advance().Literal

	if p.curIs(token.ASSIGN) {
		p.advance()
		decl.Initializer = p.parseExpression(LOWEST)
	}

	p.skipStatementTerminator()
	return decl
}

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	tok := p.advance() // consume 'function'

	if !p.curIs(token.IDENT) {
		p.errorf("expected function name, got %s", p.cur().Type)
		return nil
	}
	name := p.advance().Literal

	if !p.expect(token.LPAREN) {
		return nil
	}
	params := p.parseFunctionParams()

	body := p.parseBlockStatement()

	return &ast.FunctionDeclaration{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tok := p.cur()
	if !p.expect(token.LBRACE) {
		return &ast.BlockStatement{Token: tok}
	}

	block := &ast.BlockStatement{Token: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		start := p.pos
		stmt := p.parseStatement()
		if p.pos == start {
			p.synchronize()
			if p.pos == start && !p.curIs(token.RBRACE) {
				p.advance()
			}
			continue
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(token.RBRACE)
	return block
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.advance() // consume 'if'
	if !p.expect(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if !p.expect(token.RPAREN) {
		return nil
	}
	consequence := p.parseStatement()

	stmt := &ast.IfStatement{Token: tok, Condition: cond, Consequence: consequence}
	if p.curIs(token.ELSE) {
		p.advance()
		stmt.Alternative = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.advance() // consume 'while'
	if !p.expect(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if !p.expect(token.RPAREN) {
		return nil
	}
	body := p.parseStatement()
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	tok := p.advance() // consume 'for'
	if !p.expect(token.LPAREN) {
		return nil
	}

	stmt := &ast.ForStatement{Token: tok}

	switch p.cur().Type {
	case token.SEMI:
		p.advance()
	case token.LET, token.CONST, token.VAR:
		stmt.Init = p.parseVarDeclaration()
	default:
		exprTok := p.cur()
		expr := p.parseExpression(LOWEST)
		stmt.Init = &ast.ExpressionStatement{Token: exprTok, Expression: expr}
		p.expect(token.SEMI)
	}

	if !p.curIs(token.SEMI) {
		stmt.Condition = p.parseExpression(LOWEST)
	}
	p.expect(token.SEMI)

	if !p.curIs(token.RPAREN) {
		stmt.Update = p.parseExpression(LOWEST)
	}
	p.expect(token.RPAREN)

	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.advance() // consume 'return'
	stmt := &ast.ReturnStatement{Token: tok}
	if !p.curIs(token.SEMI) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt.ReturnValue = p.parseExpression(LOWEST)
	}
	p.skipStatementTerminator()
	return stmt
}

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	tok := p.advance() // consume 'throw'
	value := p.parseExpression(LOWEST)
	p.skipStatementTerminator()
	return &ast.ThrowStatement{Token: tok, Value: value}
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	tok := p.advance() // consume 'try'
	tryBlock := p.parseBlockStatement()

	if !p.expect(token.CATCH) {
		return &ast.TryStatement{Token: tok, TryBlock: tryBlock}
	}
	if !p.expect(token.LPAREN) {
		return &ast.TryStatement{Token: tok, TryBlock: tryBlock}
	}
	if !p.curIs(token.IDENT) {
		p.errorf("expected catch binding name, got %s", p.cur().Type)
		return &ast.TryStatement{Token: tok, TryBlock: tryBlock}
	}
	param := p.advance().Literal
	if !p.expect(token.RPAREN) {
		return &ast.TryStatement{Token: tok, TryBlock: tryBlock}
	}
	catchBlock := p.parseBlockStatement()

	return &ast.TryStatement{Token: tok, TryBlock: tryBlock, CatchParam: param, CatchBlock: catchBlock}
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	tok := p.advance()
	p.skipStatementTerminator()
	return &ast.BreakStatement{Token: tok}
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	tok := p.advance()
	p.skipStatementTerminator()
	return &ast.ContinueStatement{Token: tok}
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	tok := p.cur()
	expr := p.parseExpression(LOWEST)
	stmt := &ast.ExpressionStatement{Token: tok, Expression: expr}
	p.skipStatementTerminator()
	return stmt
}
