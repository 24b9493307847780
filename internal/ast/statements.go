package ast

import (
	"bytes"

	"github.com/kaelscript/kael/pkg/token"
)

// ExpressionStatement wraps an expression evaluated for its side effects,
// e.g. a bare call `f();`.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()      {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() token.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expression == nil {
		return ""
	}
	return e.Expression.String()
}

// DeclarationKind distinguishes `let`, `const`, and `var` bindings.
type DeclarationKind int

const (
	Let DeclarationKind = iota
	Const
	VarKind
)

func (k DeclarationKind) String() string {
	switch k {
	case Let:
		return "let"
	case Const:
		return "const"
	case VarKind:
		return "var"
	default:
		return "?"
	}
}

// VarDeclaration is `let|const|var name = initializer?;`.
type VarDeclaration struct {
	Token       token.Token
	Kind        DeclarationKind
	Name        string
	Initializer Expression // nil if no initializer was given
}

func (v *VarDeclaration) statementNode()      {}
func (v *VarDeclaration) TokenLiteral() string { return v.Token.Literal }
func (v *VarDeclaration) Pos() token.Position  { return v.Token.Pos }
func (v *VarDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString(v.Kind.String())
	out.WriteString(" ")
	out.WriteString(v.Name)
	if v.Initializer != nil {
		out.WriteString(" = ")
		out.WriteString(v.Initializer.String())
	}
	out.WriteString(";")
	return out.String()
}

// FunctionDeclaration is `function name(params) { body }`. Function
// declarations are hoisted: visible for the entire enclosing block from
// its start, regardless of textual position.
type FunctionDeclaration struct {
	Token  token.Token
	Name   string
	Params []*Identifier
	Body   *BlockStatement
}

func (f *FunctionDeclaration) statementNode()      {}
func (f *FunctionDeclaration) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDeclaration) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(f.Name)
	out.WriteString("(")
	out.WriteString(joinStrings(f.Params, ", "))
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// BlockStatement is `{ statements... }`. Evaluation pushes a child
// environment for its duration.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *BlockStatement) statementNode()      {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	out.WriteString(joinStrings(b.Statements, " "))
	out.WriteString(" }")
	return out.String()
}

// IfStatement is `if (cond) consequence (else alternative)?`.
type IfStatement struct {
	Token       token.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement // nil if there is no else branch
}

func (i *IfStatement) statementNode()      {}
func (i *IfStatement) TokenLiteral() string { return i.Token.Literal }
func (i *IfStatement) Pos() token.Position  { return i.Token.Pos }
func (i *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(i.Condition.String())
	out.WriteString(") ")
	out.WriteString(i.Consequence.String())
	if i.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(i.Alternative.String())
	}
	return out.String()
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStatement) statementNode()      {}
func (w *WhileStatement) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStatement) Pos() token.Position  { return w.Token.Pos }
func (w *WhileStatement) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// ForStatement is the C-style `for (init?; cond?; update?) body`. Each of
// Init, Condition, and Update may be nil.
type ForStatement struct {
	Token     token.Token
	Init      Statement // ExpressionStatement or VarDeclaration, or nil
	Condition Expression
	Update    Expression
	Body      Statement
}

func (f *ForStatement) statementNode()      {}
func (f *ForStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForStatement) Pos() token.Position  { return f.Token.Pos }
func (f *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if f.Init != nil {
		out.WriteString(f.Init.String())
	}
	out.WriteString("; ")
	if f.Condition != nil {
		out.WriteString(f.Condition.String())
	}
	out.WriteString("; ")
	if f.Update != nil {
		out.WriteString(f.Update.String())
	}
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// ReturnStatement is `return expr?;`.
type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression // nil for a bare `return;`
}

func (r *ReturnStatement) statementNode()      {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) Pos() token.Position  { return r.Token.Pos }
func (r *ReturnStatement) String() string {
	if r.ReturnValue == nil {
		return "return;"
	}
	return "return " + r.ReturnValue.String() + ";"
}

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	Token token.Token
	Value Expression
}

func (t *ThrowStatement) statementNode()      {}
func (t *ThrowStatement) TokenLiteral() string { return t.Token.Literal }
func (t *ThrowStatement) Pos() token.Position  { return t.Token.Pos }
func (t *ThrowStatement) String() string {
	return "throw " + t.Value.String() + ";"
}

// TryStatement is `try block catch (name) block`.
type TryStatement struct {
	Token        token.Token
	TryBlock     *BlockStatement
	CatchParam   string
	CatchBlock   *BlockStatement
}

func (t *TryStatement) statementNode()      {}
func (t *TryStatement) TokenLiteral() string { return t.Token.Literal }
func (t *TryStatement) Pos() token.Position  { return t.Token.Pos }
func (t *TryStatement) String() string {
	return "try " + t.TryBlock.String() + " catch (" + t.CatchParam + ") " + t.CatchBlock.String()
}

// BreakStatement is `break;`.
type BreakStatement struct{ Token token.Token }

func (b *BreakStatement) statementNode()      {}
func (b *BreakStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BreakStatement) String() string       { return "break;" }

// ContinueStatement is `continue;`.
type ContinueStatement struct{ Token token.Token }

func (c *ContinueStatement) statementNode()      {}
func (c *ContinueStatement) TokenLiteral() string { return c.Token.Literal }
func (c *ContinueStatement) Pos() token.Position  { return c.Token.Pos }
func (c *ContinueStatement) String() string       { return "continue;" }
