package builtins

import (
	"path/filepath"

	"github.com/kaelscript/kael/internal/runtime"
)

// pathModule returns the `path` host module: join, dirname, basename.
func pathModule() *runtime.Record {
	mod := runtime.NewRecord()
	mod.Set("join", runtime.NewHostFunction("join", pathJoin))
	mod.Set("dirname", runtime.NewHostFunction("dirname", pathDirname))
	mod.Set("basename", runtime.NewHostFunction("basename", pathBasename))
	return mod
}

func pathJoin(args []runtime.Value) (runtime.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = runtime.ToKaelString(a)
	}
	return runtime.String(filepath.Join(parts...)), nil
}

func pathDirname(args []runtime.Value) (runtime.Value, error) {
	p, err := stringArg(args, 0, "dirname")
	if err != nil {
		return nil, err
	}
	return runtime.String(filepath.Dir(p)), nil
}

func pathBasename(args []runtime.Value) (runtime.Value, error) {
	p, err := stringArg(args, 0, "basename")
	if err != nil {
		return nil, err
	}
	return runtime.String(filepath.Base(p)), nil
}
