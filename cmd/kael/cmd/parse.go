package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/lexer"
	"github.com/kaelscript/kael/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Kael source code and display the AST",
	Long: `Parse Kael source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show the full AST structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	tokens, lexErrs := lexer.Lex(input)
	if len(lexErrs) > 0 {
		fmt.Fprintf(os.Stderr, "Lexer errors:\n")
		for _, le := range lexErrs {
			fmt.Fprintf(os.Stderr, "  %s @%d:%d\n", le.Message, le.Pos.Line, le.Pos.Column)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	program, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		fmt.Fprintf(os.Stderr, "Parser errors:\n")
		for _, msg := range parseErrs {
			fmt.Fprintf(os.Stderr, "  %s\n", msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(parseErrs))
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node any, indent int) {
	indentStr := ""
	for i := 0; i < indent; i++ {
		indentStr += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", indentStr)
		dumpASTNode(n.Expression, indent+1)
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", indentStr, n.Operator)
		fmt.Printf("%s  Left:\n", indentStr)
		dumpASTNode(n.Left, indent+2)
		fmt.Printf("%s  Right:\n", indentStr)
		dumpASTNode(n.Right, indent+2)
	case *ast.UnaryExpression:
		fmt.Printf("%sUnaryExpression (%s)\n", indentStr, n.Operator)
		dumpASTNode(n.Operand, indent+1)
	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral: %s\n", indentStr, n.Token.Literal)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", indentStr, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %s\n", indentStr, n.Token.Literal)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", indentStr, n.Name)
	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", indentStr)
	case *ast.VarDeclaration:
		fmt.Printf("%sVarDeclaration (%s)\n", indentStr, n.Kind)
	default:
		fmt.Printf("%s%T: %s\n", indentStr, node, node)
	}
}
