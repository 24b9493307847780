package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kaelscript/kael/pkg/kael"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Kael session",
	Long: `Start a read-eval-print loop. Each line is compiled and evaluated
against a single persistent global environment, so declarations made on
one line are visible on the next.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
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

	fmt.Println("kael repl - Ctrl-D to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		result, err := engine.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, kael.FormatError(err, line))
			continue
		}
		if result != nil {
			fmt.Println(result.String())
		}
	}
}
