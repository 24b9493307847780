package runtime

import "testing"

func TestArrayPushPopAndLength(t *testing.T) {
	a := NewArray([]Value{Number(1), Number(2), Number(3)})
	a.Push(Number(4))
	if a.Length() != 4 {
		t.Fatalf("length = %d, want 4", a.Length())
	}
	if got := a.Get(Number(3)); got != Number(4) {
		t.Fatalf("a[3] = %v, want 4", got)
	}

	popped := a.Pop()
	if popped != Number(4) || a.Length() != 3 {
		t.Fatalf("pop produced %v, len=%d", popped, a.Length())
	}
}

func TestArrayPopOnEmptyYieldsUndefined(t *testing.T) {
	a := NewArray(nil)
	if a.Pop() != Undefined_ {
		t.Fatalf("expected Undefined on empty pop")
	}
}

func TestArrayNegativeOrFractionalReadYieldsUndefined(t *testing.T) {
	a := NewArray([]Value{Number(1)})
	if a.Get(Number(-1)) != Undefined_ {
		t.Fatalf("expected Undefined for negative index read")
	}
	if a.Get(Number(0.5)) != Undefined_ {
		t.Fatalf("expected Undefined for fractional index read")
	}
}

func TestArrayNegativeOrFractionalWriteFails(t *testing.T) {
	a := NewArray([]Value{Number(1)})
	if err := a.Set(Number(-1), Number(9)); err == nil {
		t.Fatalf("expected error for negative index write")
	}
	if err := a.Set(Number(0.5), Number(9)); err == nil {
		t.Fatalf("expected error for fractional index write")
	}
}

func TestArraySharedReferenceSemantics(t *testing.T) {
	a := NewArray([]Value{Number(1)})
	var b Value = a
	a.Push(Number(2))

	bArr := b.(*Array)
	if bArr.Length() != 2 {
		t.Fatalf("expected shared mutation to be visible, got length %d", bArr.Length())
	}
}

func TestArraySliceJoinIndexOf(t *testing.T) {
	a := NewArray([]Value{Number(1), Number(2), Number(3), Number(4)})

	s := a.Slice(1, 3)
	if s.String() != "[2, 3]" {
		t.Fatalf("slice = %s", s.String())
	}
	if got := a.Join(","); got != "1,2,3,4" {
		t.Fatalf("join = %q", got)
	}
	if a.IndexOf(Number(3)) != 2 {
		t.Fatalf("indexOf(3) = %d", a.IndexOf(Number(3)))
	}
	if a.IndexOf(Number(99)) != -1 {
		t.Fatalf("expected -1 for missing value")
	}
}
