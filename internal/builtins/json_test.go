package builtins

import (
	"errors"
	"testing"

	"github.com/kaelscript/kael/internal/runtime"
)

func TestJSONParseObjectAndArray(t *testing.T) {
	mod := jsonModule()
	parse := mod.Get("parse").(*runtime.HostFunction)

	v, err := parse.Call([]runtime.Value{runtime.String(`{"name": "kael", "tags": [1, 2, 3]}`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := v.(*runtime.Record)
	if !ok {
		t.Fatalf("expected *Record, got %T", v)
	}
	if rec.Get("name") != runtime.String("kael") {
		t.Fatalf("name = %v", rec.Get("name"))
	}
	tags, ok := rec.Get("tags").(*runtime.Array)
	if !ok || tags.Length() != 3 {
		t.Fatalf("tags = %v", rec.Get("tags"))
	}
}

func TestJSONParseInvalidIsHostError(t *testing.T) {
	mod := jsonModule()
	parse := mod.Get("parse").(*runtime.HostFunction)

	if _, err := parse.Call([]runtime.Value{runtime.String("not json")}); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestJSONStringifyRoundTrip(t *testing.T) {
	mod := jsonModule()
	stringify := mod.Get("stringify").(*runtime.HostFunction)
	parse := mod.Get("parse").(*runtime.HostFunction)

	rec := runtime.NewRecord()
	rec.Set("a", runtime.Number(1))
	rec.Set("b", runtime.String("x"))

	text, err := stringify.Call([]runtime.Value{rec})
	if err != nil {
		t.Fatalf("stringify: %v", err)
	}

	roundTripped, err := parse.Call([]runtime.Value{text})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rt := roundTripped.(*runtime.Record)
	if rt.Get("a") != runtime.Number(1) || rt.Get("b") != runtime.String("x") {
		t.Fatalf("round trip mismatch: %v", rt)
	}
}

func TestJSONStringifyFunctionIsError(t *testing.T) {
	mod := jsonModule()
	stringify := mod.Get("stringify").(*runtime.HostFunction)

	fn := runtime.NewHostFunction("f", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.Undefined_, nil
	})
	_, err := stringify.Call([]runtime.Value{fn})
	if err == nil {
		t.Fatalf("expected error for function value")
	}
	var typeMismatch *TypeMismatchError
	if !errors.As(err, &typeMismatch) {
		t.Fatalf("expected *TypeMismatchError, got %T (%v)", err, err)
	}
}
