// Package parser implements a recursive-descent parser with a
// precedence-climbing (Pratt) expression parser, turning a token stream
// into a Kael AST.
//
// Statements end at ';', at '}', or at end-of-file; the parser accepts an
// optional trailing semicolon after any statement rather than implementing
// JavaScript's full automatic-semicolon-insertion rule.
package parser

import (
	"fmt"

	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/pkg/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	ASSIGN      // = (right-associative)
	LOGIC_OR    // ||
	LOGIC_AND   // &&
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x, !x
	CALL        // f(x)
	INDEX       // a[x]
	MEMBER      // a.x
)

var precedences = map[token.Type]int{
	token.ASSIGN:   ASSIGN,
	token.OR:       LOGIC_OR,
	token.AND:      LOGIC_AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT:       LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
	token.DOT:      MEMBER,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser consumes a token stream produced by the lexer and builds an AST.
type Parser struct {
	tokens  []token.Token
	pos     int
	errors  []error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over a complete token slice (including the
// terminal EOF token produced by lexer.Lex).
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:     p.parseIdentifier,
		token.NUMBER:    p.parseNumberLiteral,
		token.STRING:    p.parseStringLiteral,
		token.TRUE:      p.parseBooleanLiteral,
		token.FALSE:     p.parseBooleanLiteral,
		token.NULL:      p.parseNullLiteral,
		token.UNDEFINED: p.parseUndefinedLiteral,
		token.MINUS:     p.parseUnaryExpression,
		token.NOT:       p.parseUnaryExpression,
		token.LPAREN:    p.parseGroupedExpression,
		token.LBRACKET:  p.parseArrayLiteral,
		token.LBRACE:    p.parseRecordLiteral,
		token.FUNCTION:  p.parseFunctionLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseBinaryExpression,
		token.MINUS:    p.parseBinaryExpression,
		token.STAR:     p.parseBinaryExpression,
		token.SLASH:    p.parseBinaryExpression,
		token.PERCENT:  p.parseBinaryExpression,
		token.EQ:       p.parseBinaryExpression,
		token.NOT_EQ:   p.parseBinaryExpression,
		token.LT:       p.parseBinaryExpression,
		token.LT_EQ:    p.parseBinaryExpression,
		token.GT:       p.parseBinaryExpression,
		token.GT_EQ:    p.parseBinaryExpression,
		token.AND:      p.parseBinaryExpression,
		token.OR:       p.parseBinaryExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
		token.DOT:      p.parseMemberExpression,
		token.ASSIGN:   p.parseAssignmentExpression,
	}

	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) cur() token.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(tt token.Type) bool  { return p.cur().Type == tt }
func (p *Parser) peekIs(tt token.Type) bool { return p.peek().Type == tt }

// expect advances past the current token if it has the given type,
// otherwise records a SyntaxError and returns false.
func (p *Parser) expect(tt token.Type) bool {
	if p.curIs(tt) {
		p.advance()
		return true
	}
	p.errorf("expected %s, got %s (%q)", tt, p.cur().Type, p.cur().Literal)
	return false
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos:     p.cur().Pos,
	})
}

// skipStatementTerminator consumes an optional trailing ';' — the parser's
// only concession to automatic semicolon insertion.
func (p *Parser) skipStatementTerminator() {
	if p.curIs(token.SEMI) {
		p.advance()
	}
}

func precedenceOf(tt token.Type) int {
	if prec, ok := precedences[tt]; ok {
		return prec
	}
	return LOWEST
}

// Parse parses the full token stream into a Program. Partial results are
// still returned alongside any accumulated errors so callers can decide how
// to report them; SyntaxError is not catchable by user code.
func Parse(tokens []token.Token) (*ast.Program, []error) {
	p := New(tokens)
	prog := p.ParseProgram()
	return prog, p.errors
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		start := p.pos
		stmt := p.parseStatement()
		if p.pos == start {
			// Parse failure that consumed nothing: advance to avoid an
			// infinite loop and try to resynchronize at the next statement
			// boundary.
			p.synchronize()
			if p.pos == start {
				p.advance()
			}
			continue
		}
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// synchronize advances past tokens until a likely statement boundary, used
// for simple error recovery so one bad statement doesn't hide every
// subsequent error.
func (p *Parser) synchronize() {
	for !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			return
		}
		if p.curIs(token.RBRACE) {
			return
		}
		p.advance()
	}
}

// parseExpression implements precedence-climbing: parse a prefix
// expression, then repeatedly fold in infix operators bound more tightly
// than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur().Type]
	if !ok {
		p.errorf("no prefix parse function for %s found", p.cur().Type)
		return nil
	}
	left := prefix()

	for !p.curIs(token.SEMI) && precedence < precedenceOf(p.cur().Type) {
		infix, ok := p.infixParseFns[p.cur().Type]
		if !ok {
			return left
		}
		left = infix(left)
	}

	return left
}
