package builtins

import (
	"bytes"
	"testing"

	"github.com/kaelscript/kael/internal/runtime"
)

func TestInstallDefinesConsoleAndRequire(t *testing.T) {
	env := runtime.NewEnvironment()
	Install(env, &bytes.Buffer{}, &bytes.Buffer{}, func(fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return runtime.Undefined_, nil
	})

	if !env.Has("console") {
		t.Fatalf("console not defined")
	}
	if !env.Has("require") {
		t.Fatalf("require not defined")
	}

	requireFn, _ := env.Lookup("require")
	hf := requireFn.(*runtime.HostFunction)

	for _, name := range []string{"fs", "path", "http", "json"} {
		v, err := hf.Call([]runtime.Value{runtime.String(name)})
		if err != nil {
			t.Fatalf("require(%q): %v", name, err)
		}
		if _, ok := v.(*runtime.Record); !ok {
			t.Fatalf("require(%q) did not return a record", name)
		}
	}
}

func TestRequireUnknownModuleIsError(t *testing.T) {
	env := runtime.NewEnvironment()
	Install(env, &bytes.Buffer{}, &bytes.Buffer{}, nil)

	requireFn, _ := env.Lookup("require")
	hf := requireFn.(*runtime.HostFunction)

	if _, err := hf.Call([]runtime.Value{runtime.String("not-a-module")}); err == nil {
		t.Fatalf("expected error for unknown module")
	}
}
