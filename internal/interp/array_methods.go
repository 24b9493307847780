package interp

import (
	"math"
	"strings"

	"github.com/kaelscript/kael/internal/runtime"
)

// integerBound coerces v to Number and requires it to hold a whole number,
// the bound slice() accepts for its start/end arguments. A fractional
// bound is a RangeError.
func integerBound(v runtime.Value) (int64, error) {
	n := float64(runtime.ToNumber(v))
	if math.Trunc(n) != n {
		return 0, rangeError(nil, "slice: bound %v is not an integer", runtime.ToKaelString(v))
	}
	return int64(n), nil
}

// arrayMethod looks up a method name on Array.prototype and returns it
// bound to receiver as a callable HostFunction, or nil if name names no
// method (the caller falls back to Undefined for unknown member access).
func arrayMethod(receiver *runtime.Array, name string) *runtime.HostFunction {
	switch name {
	case "push":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			return receiver.Push(args...), nil
		})
	case "pop":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			return receiver.Pop(), nil
		})
	case "join":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			sep := ","
			if len(args) > 0 {
				sep = runtime.ToKaelString(args[0])
			}
			return runtime.String(receiver.Join(sep)), nil
		})
	case "indexOf":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			if len(args) == 0 {
				return runtime.Number(-1), nil
			}
			return runtime.Number(receiver.IndexOf(args[0])), nil
		})
	case "slice":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			start, end := int64(0), receiver.Length()
			if len(args) > 0 {
				b, err := integerBound(args[0])
				if err != nil {
					return nil, err
				}
				start = b
			}
			if len(args) > 1 {
				b, err := integerBound(args[1])
				if err != nil {
					return nil, err
				}
				end = b
			}
			return receiver.Slice(start, end), nil
		})
	default:
		return nil
	}
}

// stringMethod looks up a method name on String.prototype and returns it
// bound to receiver as a callable HostFunction.
func stringMethod(receiver runtime.String, name string) *runtime.HostFunction {
	s := string(receiver)
	switch name {
	case "toUpperCase":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			return runtime.String(strings.ToUpper(s)), nil
		})
	case "toLowerCase":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			return runtime.String(strings.ToLower(s)), nil
		})
	case "trim":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			return runtime.String(strings.TrimSpace(s)), nil
		})
	case "split":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			sep := ""
			if len(args) > 0 {
				sep = runtime.ToKaelString(args[0])
			}
			var parts []string
			if sep == "" {
				for _, r := range s {
					parts = append(parts, string(r))
				}
			} else {
				parts = strings.Split(s, sep)
			}
			elements := make([]runtime.Value, len(parts))
			for i, p := range parts {
				elements[i] = runtime.String(p)
			}
			return runtime.NewArray(elements), nil
		})
	case "includes":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			if len(args) == 0 {
				return runtime.Boolean(false), nil
			}
			return runtime.Boolean(strings.Contains(s, runtime.ToKaelString(args[0]))), nil
		})
	case "indexOf":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			if len(args) == 0 {
				return runtime.Number(-1), nil
			}
			return runtime.Number(strings.Index(s, runtime.ToKaelString(args[0]))), nil
		})
	case "slice":
		return runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
			runes := []rune(s)
			start, end := 0, len(runes)
			if len(args) > 0 {
				b, err := integerBound(args[0])
				if err != nil {
					return nil, err
				}
				start = int(b)
			}
			if len(args) > 1 {
				b, err := integerBound(args[1])
				if err != nil {
					return nil, err
				}
				end = int(b)
			}
			if start < 0 {
				start = 0
			}
			if end > len(runes) {
				end = len(runes)
			}
			if start >= end {
				return runtime.String(""), nil
			}
			return runtime.String(string(runes[start:end])), nil
		})
	default:
		return nil
	}
}
