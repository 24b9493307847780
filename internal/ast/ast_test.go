package ast

import (
	"testing"

	"github.com/kaelscript/kael/pkg/token"
)

func TestVarDeclarationString(t *testing.T) {
	decl := &VarDeclaration{
		Token: token.Token{Type: token.LET, Literal: "let", Pos: token.Position{Line: 1, Column: 1}},
		Kind:  Let,
		Name:  "x",
		Initializer: &NumberLiteral{
			Token: token.Token{Type: token.NUMBER, Literal: "5"},
			Value: 5,
		},
	}

	if decl.TokenLiteral() != "let" {
		t.Fatalf("TokenLiteral() = %q", decl.TokenLiteral())
	}
	if got, want := decl.String(), "let x = 5;"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if decl.Pos().Line != 1 || decl.Pos().Column != 1 {
		t.Fatalf("Pos() = %v", decl.Pos())
	}
}

func TestBinaryExpressionString(t *testing.T) {
	expr := &BinaryExpression{
		Left:     &Identifier{Name: "a"},
		Operator: "+",
		Right:    &Identifier{Name: "b"},
	}
	if got, want := expr.String(), "(a + b)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestProgramString(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&ExpressionStatement{Expression: &Identifier{Name: "a"}},
			&ExpressionStatement{Expression: &Identifier{Name: "b"}},
		},
	}
	if got, want := prog.String(), "a\nb\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFunctionLiteralString(t *testing.T) {
	fn := &FunctionLiteral{
		Name:   "add",
		Params: []*Identifier{{Name: "a"}, {Name: "b"}},
		Body: &BlockStatement{
			Statements: []Statement{
				&ReturnStatement{ReturnValue: &Identifier{Name: "a"}},
			},
		},
	}
	want := "function add(a, b) { return a; }"
	if got := fn.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
