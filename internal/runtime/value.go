// Package runtime defines the value model and environment shared by the
// evaluator: a tagged family of Go types implementing the Value interface,
// plus lexically-nested Environment frames.
package runtime

import (
	"math"
	"strconv"
)

// Value is implemented by every runtime value kind: Number, String,
// Boolean, Null, Undefined, *Array, *Record, *Function, *HostFunction.
type Value interface {
	// Type names the value's kind, e.g. "number", "string".
	Type() string
	// String renders the value for console.log and string coercion.
	String() string
}

// Number is an IEEE-754 double.
type Number float64

func (Number) Type() string { return "number" }

// String renders using the shortest round-trip decimal form.
func (n Number) String() string {
	f := float64(n)
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is immutable text.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Boolean is a truth value.
type Boolean bool

func (Boolean) Type() string { return "boolean" }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Null is the single `null` value.
type Null struct{}

func (Null) Type() string   { return "null" }
func (Null) String() string { return "null" }

// Undefined is the single `undefined` value, also the default/absent
// value throughout the evaluator (uninitialized var, missing argument,
// natural function return, out-of-bounds read).
type Undefined struct{}

func (Undefined) Type() string   { return "undefined" }
func (Undefined) String() string { return "undefined" }

// Singletons, to avoid allocating on every nil/undefined production.
var (
	Null_      Value = Null{}
	Undefined_ Value = Undefined{}
)

// Truthy implements the truthiness rule: false, null, undefined, 0,
// NaN, and "" are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Boolean:
		return bool(val)
	case Null:
		return false
	case Undefined:
		return false
	case Number:
		f := float64(val)
		return f != 0 && !math.IsNaN(f)
	case String:
		return val != ""
	default:
		return true
	}
}

// ToNumber coerces to Number: strings parse (or yield NaN), booleans map
// to 0/1, null maps to 0, undefined and non-scalar kinds (Array, Record,
// Function) map to NaN.
func ToNumber(v Value) Number {
	switch val := v.(type) {
	case Number:
		return val
	case Boolean:
		if val {
			return 1
		}
		return 0
	case Null:
		return 0
	case String:
		s := string(val)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number(math.NaN())
		}
		return Number(f)
	default:
		return Number(math.NaN())
	}
}

// ToKaelString coerces to string, used by `+` concatenation and by
// record/array key coercion.
func ToKaelString(v Value) string {
	return v.String()
}

// LooseEquals implements `==`: numeric comparison after cross-kind
// coercion between Number and String; reference identity for Array/Record/
// Function; otherwise strict kind-match equality. NaN is never equal to
// itself.
func LooseEquals(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		switch bv := b.(type) {
		case Number:
			return float64(av) == float64(bv) && !math.IsNaN(float64(av))
		case String:
			return float64(av) == float64(ToNumber(b)) && !math.IsNaN(float64(av))
		case Null, Undefined:
			return false
		}
		return false
	case String:
		switch b.(type) {
		case String:
			return av == b.(String)
		case Number:
			return float64(ToNumber(a)) == float64(ToNumber(b))
		}
		return false
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Null:
		switch b.(type) {
		case Null, Undefined:
			return true
		default:
			return false
		}
	case Undefined:
		switch b.(type) {
		case Null, Undefined:
			return true
		default:
			return false
		}
	case *Array:
		bv, ok := b.(*Array)
		return ok && av == bv
	case *Record:
		bv, ok := b.(*Record)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *HostFunction:
		bv, ok := b.(*HostFunction)
		return ok && av == bv
	}
	return false
}

// TypeName maps a Value to the name used in error messages, matching the
// Type() tags above.
func TypeName(v Value) string {
	if v == nil {
		return "undefined"
	}
	return v.Type()
}

// Inspect is an alias of String kept for parity with the family of
// formatting helpers in the rest of the package; callers should prefer
// calling v.String() directly.
func Inspect(v Value) string {
	if v == nil {
		return "undefined"
	}
	return v.String()
}
