// Package ast defines the abstract syntax tree node types produced by the
// parser and walked by the evaluator.
package ast

import (
	"bytes"
	"strings"

	"github.com/kaelscript/kael/pkg/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token the node starts
	// with, useful for debugging.
	TokenLiteral() string
	// String renders the node back to source-like text for debugging.
	String() string
	// Pos returns the node's position in the source, for error reporting.
	Pos() token.Position
}

// Expression is a node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action rather than producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: a sequence of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// joinStrings renders a slice of Nodes separated by sep, used throughout
// String() implementations below.
func joinStrings[T Node](nodes []T, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, sep)
}
