package cmd

import (
	"fmt"
	"os"

	"github.com/kaelscript/kael/pkg/kael"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Kael script or expression",
	Long: `Execute a Kael program from a file or inline expression.

Examples:
  # Run a script file
  kael run script.kl

  # Evaluate an inline expression
  kael run -e "console.log('Hello, World!');"

  # Run with AST dump (for debugging)
  kael run --dump-ast script.kl

  # Run with execution trace
  kael run --trace script.kl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input = evalExpr
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

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", configFileName, err)
	}

	engine, err := kael.New(
		kael.WithTrace(trace || cfg.Trace),
		kael.WithAllowedModules(cfg.Modules),
	)
	if err != nil {
		return err
	}
	engine.SetOutput(os.Stdout, os.Stderr)

	if dumpAST || verbose {
		program, compileErr := engine.Compile(input)
		if compileErr != nil {
			fmt.Fprint(os.Stderr, kael.FormatError(compileErr, input))
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("parsing failed")
		}
		if dumpAST {
			fmt.Println("AST:")
			fmt.Println(program.String())
			fmt.Println()
		}
	}

	if trace || cfg.Trace {
		fmt.Fprintf(os.Stderr, "[trace] executing %s\n", filename)
	}

	if _, err := engine.Eval(input); err != nil {
		fmt.Fprint(os.Stderr, kael.FormatError(err, input))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("execution failed")
	}

	return nil
}
