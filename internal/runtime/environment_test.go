package runtime

import "testing"

func TestEnvironmentDefineAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Number(5), true)

	v, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Number(5) {
		t.Fatalf("got %v, want 5", v)
	}
}

func TestEnvironmentLookupUndeclared(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Lookup("missing")
	if _, ok := err.(*ReferenceError); !ok {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
}

func TestEnvironmentChildShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", Number(1), true)

	inner := outer.Child()
	inner.Define("x", Number(2), true)

	v, _ := inner.Lookup("x")
	if v != Number(2) {
		t.Fatalf("inner lookup = %v, want 2", v)
	}
	v, _ = outer.Lookup("x")
	if v != Number(1) {
		t.Fatalf("outer lookup = %v, want 1", v)
	}
}

func TestEnvironmentAssignWalksChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", Number(1), true)
	inner := outer.Child()

	if err := inner.Assign("x", Number(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := outer.Lookup("x")
	if v != Number(99) {
		t.Fatalf("got %v, want 99", v)
	}
}

func TestEnvironmentConstAssignFails(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Number(1), false)

	err := env.Assign("x", Number(2))
	if _, ok := err.(*ConstAssignError); !ok {
		t.Fatalf("expected ConstAssignError, got %v", err)
	}
}

func TestAssignCreatingDefinesInRoot(t *testing.T) {
	root := NewEnvironment()
	block := root.Child()

	if err := block.AssignCreating("implicitGlobal", Number(7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := block.store["implicitGlobal"]; ok {
		t.Fatalf("implicitGlobal should not be defined in the block frame")
	}
	v, err := root.Lookup("implicitGlobal")
	if err != nil || v != Number(7) {
		t.Fatalf("expected implicitGlobal=7 in root, got %v, %v", v, err)
	}
}
