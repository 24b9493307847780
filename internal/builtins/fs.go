package builtins

import (
	"fmt"
	"os"

	"github.com/kaelscript/kael/internal/runtime"
)

// fsModule returns the `fs` host module: readFile, writeFile, exists.
// Every operation is synchronous; there is no event loop to schedule a
// callback on.
func fsModule() *runtime.Record {
	mod := runtime.NewRecord()
	mod.Set("readFile", runtime.NewHostFunction("readFile", fsReadFile))
	mod.Set("writeFile", runtime.NewHostFunction("writeFile", fsWriteFile))
	mod.Set("exists", runtime.NewHostFunction("exists", fsExists))
	return mod
}

func fsReadFile(args []runtime.Value) (runtime.Value, error) {
	path, err := stringArg(args, 0, "readFile")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("readFile: %w", err)
	}
	return runtime.String(data), nil
}

func fsWriteFile(args []runtime.Value) (runtime.Value, error) {
	path, err := stringArg(args, 0, "writeFile")
	if err != nil {
		return nil, err
	}
	content, err := stringArg(args, 1, "writeFile")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writeFile: %w", err)
	}
	return runtime.Undefined_, nil
}

func fsExists(args []runtime.Value) (runtime.Value, error) {
	path, err := stringArg(args, 0, "exists")
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(path)
	return runtime.Boolean(err == nil), nil
}

func stringArg(args []runtime.Value, i int, fn string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%s: expected at least %d arguments", fn, i+1)
	}
	s, ok := args[i].(runtime.String)
	if !ok {
		return "", fmt.Errorf("%s: argument %d must be a string, got %s", fn, i, args[i].Type())
	}
	return string(s), nil
}
