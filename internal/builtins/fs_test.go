package builtins

import (
	"path/filepath"
	"testing"

	"github.com/kaelscript/kael/internal/runtime"
)

func TestFsWriteReadExistsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	mod := fsModule()
	write := mod.Get("writeFile").(*runtime.HostFunction)
	read := mod.Get("readFile").(*runtime.HostFunction)
	exists := mod.Get("exists").(*runtime.HostFunction)

	if _, err := write.Call([]runtime.Value{runtime.String(path), runtime.String("hello")}); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	v, err := exists.Call([]runtime.Value{runtime.String(path)})
	if err != nil || v != runtime.Boolean(true) {
		t.Fatalf("exists = %v, %v", v, err)
	}

	v, err = read.Call([]runtime.Value{runtime.String(path)})
	if err != nil {
		t.Fatalf("readFile: %v", err)
	}
	if v.String() != "hello" {
		t.Fatalf("readFile = %q", v.String())
	}
}

func TestFsExistsFalseForMissingFile(t *testing.T) {
	mod := fsModule()
	exists := mod.Get("exists").(*runtime.HostFunction)

	v, err := exists.Call([]runtime.Value{runtime.String("/nonexistent/path/surely")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != runtime.Boolean(false) {
		t.Fatalf("expected false, got %v", v)
	}
}
