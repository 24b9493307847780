package ast

import (
	"bytes"

	"github.com/kaelscript/kael/pkg/token"
)

// Identifier is a bare name reference, e.g. `x`.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()           {}
func (i *Identifier) TokenLiteral() string      { return i.Token.Literal }
func (i *Identifier) Pos() token.Position       { return i.Token.Pos }
func (i *Identifier) String() string            { return i.Name }

// NumberLiteral is an IEEE-754 double literal.
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string       { return n.Token.Literal }

// StringLiteral is a quoted string literal, already escape-decoded by the
// lexer.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Pos }
func (s *StringLiteral) String() string       { return "\"" + s.Value + "\"" }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) Pos() token.Position  { return b.Token.Pos }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }

// NullLiteral is the `null` literal.
type NullLiteral struct{ Token token.Token }

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NullLiteral) String() string       { return "null" }

// UndefinedLiteral is the `undefined` literal.
type UndefinedLiteral struct{ Token token.Token }

func (u *UndefinedLiteral) expressionNode()      {}
func (u *UndefinedLiteral) TokenLiteral() string { return u.Token.Literal }
func (u *UndefinedLiteral) Pos() token.Position  { return u.Token.Pos }
func (u *UndefinedLiteral) String() string       { return "undefined" }

// UnaryExpression is a prefix `-` or `!` applied to an operand.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpression) Pos() token.Position  { return u.Token.Pos }
func (u *UnaryExpression) String() string {
	return "(" + u.Operator + u.Operand.String() + ")"
}

// BinaryExpression covers arithmetic, comparison, and logical (&&, ||)
// infix operators. Logical operators are represented here too since they
// share the same left/right/operator shape; the evaluator special-cases
// their short-circuit semantics.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpression) Pos() token.Position  { return b.Token.Pos }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	Token    token.Token // the '(' token
	Callee   Expression
	Args     []Expression
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) Pos() token.Position  { return c.Token.Pos }
func (c *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(c.Callee.String())
	out.WriteString("(")
	out.WriteString(joinStrings(c.Args, ", "))
	out.WriteString(")")
	return out.String()
}

// MemberExpression is `object.property`.
type MemberExpression struct {
	Token    token.Token // the '.' token
	Object   Expression
	Property string
}

func (m *MemberExpression) expressionNode()      {}
func (m *MemberExpression) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpression) Pos() token.Position  { return m.Token.Pos }
func (m *MemberExpression) String() string {
	return m.Object.String() + "." + m.Property
}

// IndexExpression is `object[index]`.
type IndexExpression struct {
	Token  token.Token // the '[' token
	Object Expression
	Index  Expression
}

func (ix *IndexExpression) expressionNode()      {}
func (ix *IndexExpression) TokenLiteral() string { return ix.Token.Literal }
func (ix *IndexExpression) Pos() token.Position  { return ix.Token.Pos }
func (ix *IndexExpression) String() string {
	return "(" + ix.Object.String() + "[" + ix.Index.String() + "])"
}

// ArrayLiteral is `[a, b, c]`.
type ArrayLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()      {}
func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) Pos() token.Position  { return a.Token.Pos }
func (a *ArrayLiteral) String() string {
	return "[" + joinStrings(a.Elements, ", ") + "]"
}

// RecordField is one `key: expr` pair of a record literal.
type RecordField struct {
	Key   string
	Value Expression
}

// RecordLiteral is `{ key: expr, ... }`, preserving field order.
type RecordLiteral struct {
	Token  token.Token // the '{' token
	Fields []RecordField
}

func (r *RecordLiteral) expressionNode()      {}
func (r *RecordLiteral) TokenLiteral() string { return r.Token.Literal }
func (r *RecordLiteral) Pos() token.Position  { return r.Token.Pos }
func (r *RecordLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, f := range r.Fields {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(f.Key)
		out.WriteString(": ")
		out.WriteString(f.Value.String())
	}
	out.WriteString("}")
	return out.String()
}

// FunctionLiteral is a function expression: `function (params) { body }`,
// optionally named when used as a function declaration's value.
type FunctionLiteral struct {
	Token  token.Token // the 'function' token
	Name   string      // empty for anonymous function expressions
	Params []*Identifier
	Body   *BlockStatement
}

func (f *FunctionLiteral) expressionNode()      {}
func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionLiteral) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(f.Name)
	out.WriteString("(")
	out.WriteString(joinStrings(f.Params, ", "))
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// AssignmentExpression is `target = value`. Target must be an Identifier,
// MemberExpression, or IndexExpression; the parser rejects other shapes.
type AssignmentExpression struct {
	Token  token.Token // the '=' token
	Target Expression
	Value  Expression
}

func (a *AssignmentExpression) expressionNode()      {}
func (a *AssignmentExpression) TokenLiteral() string { return a.Token.Literal }
func (a *AssignmentExpression) Pos() token.Position  { return a.Token.Pos }
func (a *AssignmentExpression) String() string {
	return "(" + a.Target.String() + " = " + a.Value.String() + ")"
}
