package runtime

import (
	"math"
	"testing"
)

func TestTruthiness(t *testing.T) {
	falsy := []Value{Boolean(false), Null_, Undefined_, Number(0), Number(math.NaN()), String("")}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("%v (%s) should be falsy", v, v.Type())
		}
	}

	truthy := []Value{Boolean(true), Number(1), Number(-1), String("x"), NewArray(nil), NewRecord()}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("%v (%s) should be truthy", v, v.Type())
		}
	}
}

func TestLooseEqualsBoundaryCases(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{Number(math.NaN()), Number(math.NaN()), false},
		{Number(0), String("0"), true},
		{Null_, Undefined_, true},
		{NewArray(nil), NewArray(nil), false}, // reference identity
		{String("1"), Number(1), true},
		{Boolean(true), Number(1), false}, // strict kind match outside Number/String
	}
	for _, c := range cases {
		if got := LooseEquals(c.a, c.b); got != c.want {
			t.Errorf("LooseEquals(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNumberStringRoundTrip(t *testing.T) {
	if got, want := Number(3.5).String(), "3.5"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := Number(4).String(), "4"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestToNumberCoercion(t *testing.T) {
	if ToNumber(String("42")) != 42 {
		t.Errorf("expected 42")
	}
	if !math.IsNaN(float64(ToNumber(String("abc")))) {
		t.Errorf("expected NaN")
	}
	if ToNumber(Boolean(true)) != 1 {
		t.Errorf("expected 1")
	}
}
