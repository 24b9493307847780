package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaelscript/kael/internal/runtime"
)

// Console returns the `console` global Record: log, error, warn, and info,
// each joining its string-coerced arguments with a space and a trailing
// newline. log and info write to stdout; error and warn write to stderr.
func Console(stdout, stderr io.Writer) *runtime.Record {
	console := runtime.NewRecord()
	for _, name := range []string{"log", "info"} {
		console.Set(name, runtime.NewHostFunction(name, consoleWriter(stdout)))
	}
	for _, name := range []string{"error", "warn"} {
		console.Set(name, runtime.NewHostFunction(name, consoleWriter(stderr)))
	}
	return console
}

func consoleWriter(w io.Writer) runtime.HostFunctionImpl {
	return func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return runtime.Undefined_, nil
	}
}
