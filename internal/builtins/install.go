package builtins

import (
	"fmt"
	"io"

	"github.com/kaelscript/kael/internal/runtime"
)

// Invoker calls a Kael function Value with the given arguments, routed
// back through the interpreter's own call mechanics so exceptions raised
// inside a host-invoked callback (createServer's handler) behave exactly
// as a direct script call would.
type Invoker func(fn runtime.Value, args []runtime.Value) (runtime.Value, error)

// Install defines `console` and `require` as globals on env. require
// resolves one of the four built-in module names; anything else is a
// HostError. allowed, when non-empty, restricts require to that subset of
// module names (driven by a host program's own module allowlist); a nil or
// empty allowed permits every built-in module.
func Install(env *runtime.Environment, stdout, stderr io.Writer, invoke Invoker, allowed ...string) {
	env.Define("console", Console(stdout, stderr), false)

	modules := map[string]*runtime.Record{
		"fs":   fsModule(),
		"path": pathModule(),
		"http": httpModule(invoke),
		"json": jsonModule(),
	}

	permitted := func(name string) bool {
		if len(allowed) == 0 {
			return true
		}
		for _, a := range allowed {
			if a == name {
				return true
			}
		}
		return false
	}

	env.Define("require", runtime.NewHostFunction("require", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("require: expected a module name")
		}
		name, ok := args[0].(runtime.String)
		if !ok {
			return nil, fmt.Errorf("require: module name must be a string")
		}
		mod, ok := modules[string(name)]
		if !ok {
			return nil, fmt.Errorf("require: unknown module %q", string(name))
		}
		if !permitted(string(name)) {
			return nil, fmt.Errorf("require: module %q is not in the configured allowlist", string(name))
		}
		return mod, nil
	}), true)
}
