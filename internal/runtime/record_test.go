package runtime

import "testing"

func TestRecordGetSetAndInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("b", Number(2))
	r.Set("a", Number(1))
	r.Set("b", Number(20)) // update, should not move position

	if got := r.Get("a"); got != Number(1) {
		t.Fatalf("a = %v", got)
	}
	if got := r.Get("b"); got != Number(20) {
		t.Fatalf("b = %v", got)
	}

	keys := r.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("unexpected key order: %v", keys)
	}
}

func TestRecordGetMissingYieldsUndefined(t *testing.T) {
	r := NewRecord()
	if r.Get("missing") != Undefined_ {
		t.Fatalf("expected Undefined for missing key")
	}
}

func TestRecordSharedReferenceSemantics(t *testing.T) {
	r := NewRecord()
	var v Value = r
	r.Set("x", Number(1))

	rv := v.(*Record)
	if rv.Get("x") != Number(1) {
		t.Fatalf("expected shared mutation to be visible")
	}
}

func TestRecordNumericKeyCoercion(t *testing.T) {
	r := NewRecord()
	r.SetIndexed(Number(5), String("five"))
	if got := r.Get("5"); got != String("five") {
		t.Fatalf("expected numeric key coerced to \"5\", got %v", got)
	}
}
