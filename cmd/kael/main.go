// Command kael is the reference command-line driver for the Kael scripting
// language: it runs scripts, exposes lexer/parser diagnostics, and starts a
// REPL.
package main

import (
	"fmt"
	"os"

	"github.com/kaelscript/kael/cmd/kael/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
