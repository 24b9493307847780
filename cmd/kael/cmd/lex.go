package cmd

import (
	"fmt"
	"os"

	"github.com/kaelscript/kael/internal/lexer"
	"github.com/kaelscript/kael/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Kael file or expression",
	Long: `Tokenize (lex) a Kael program and print the resulting tokens.

Examples:
  # Tokenize a script file
  kael lex script.kl

  # Tokenize an inline expression
  kael lex -e "let x = 42;"

  # Show token types and positions
  kael lex --show-type --show-pos script.kl

  # Show only illegal tokens
  kael lex --only-errors script.kl`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case lexEval != "":
		input = lexEval
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens, lexErrs := lexer.Lex(input)

	errorCount := 0
	for _, tok := range tokens {
		if onlyErrors && tok.Type != token.ILLEGAL {
			continue
		}
		printToken(tok)
	}
	for _, le := range lexErrs {
		errorCount++
		fmt.Printf("illegal: %s @%d:%d\n", le.Message, le.Pos.Line, le.Pos.Column)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Type.String())
	}

	if tok.Type == token.EOF {
		output += " EOF"
	} else if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type.String())
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
