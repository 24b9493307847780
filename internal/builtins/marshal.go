// Package builtins implements the host modules and globals every Kael
// program runs against: console, the require(name) loader, the fs/path/
// http/json built-in modules, and the reflection-based Go function
// marshaling used to expose embedder-registered functions as callables.
package builtins

import (
	"fmt"
	"reflect"

	"github.com/kaelscript/kael/internal/runtime"
)

// MarshalToGo converts a Value to a Go value of the target reflect.Type,
// for passing arguments into an embedder-registered Go function.
func MarshalToGo(v runtime.Value, target reflect.Type) (any, error) {
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.(runtime.Number)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", v.Type())
		}
		return reflect.ValueOf(int64(n)).Convert(target).Interface(), nil

	case reflect.Float32, reflect.Float64:
		n, ok := v.(runtime.Number)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", v.Type())
		}
		return reflect.ValueOf(float64(n)).Convert(target).Interface(), nil

	case reflect.String:
		s, ok := v.(runtime.String)
		if !ok {
			return nil, fmt.Errorf("expected string, got %s", v.Type())
		}
		return string(s), nil

	case reflect.Bool:
		b, ok := v.(runtime.Boolean)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %s", v.Type())
		}
		return bool(b), nil

	case reflect.Slice:
		arr, ok := v.(*runtime.Array)
		if !ok {
			return nil, fmt.Errorf("expected array, got %s", v.Type())
		}
		out := reflect.MakeSlice(target, len(arr.Elements), len(arr.Elements))
		for i, el := range arr.Elements {
			goEl, err := MarshalToGo(el, target.Elem())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(reflect.ValueOf(goEl))
		}
		return out.Interface(), nil

	case reflect.Map:
		rec, ok := v.(*runtime.Record)
		if !ok {
			return nil, fmt.Errorf("expected record, got %s", v.Type())
		}
		out := reflect.MakeMap(target)
		for _, k := range rec.Keys() {
			goVal, err := MarshalToGo(rec.Get(k), target.Elem())
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			out.SetMapIndex(reflect.ValueOf(k), reflect.ValueOf(goVal))
		}
		return out.Interface(), nil

	case reflect.Interface:
		return UnmarshalFromGoAny(v), nil

	default:
		return nil, fmt.Errorf("unsupported target type %s", target)
	}
}

// MarshalFromGo converts a Go value returned by an embedder function back
// into a Value.
func MarshalFromGo(v reflect.Value) runtime.Value {
	if !v.IsValid() {
		return runtime.Undefined_
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return runtime.Number(float64(v.Convert(reflect.TypeOf(int64(0))).Int()))
	case reflect.Float32, reflect.Float64:
		return runtime.Number(v.Float())
	case reflect.String:
		return runtime.String(v.String())
	case reflect.Bool:
		return runtime.Boolean(v.Bool())
	case reflect.Slice, reflect.Array:
		elements := make([]runtime.Value, v.Len())
		for i := range elements {
			elements[i] = MarshalFromGo(v.Index(i))
		}
		return runtime.NewArray(elements)
	case reflect.Map:
		rec := runtime.NewRecord()
		for _, key := range v.MapKeys() {
			rec.Set(fmt.Sprint(key.Interface()), MarshalFromGo(v.MapIndex(key)))
		}
		return rec
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return runtime.Null_
		}
		return MarshalFromGo(v.Elem())
	default:
		return runtime.Undefined_
	}
}

// UnmarshalFromGoAny converts a Value to its natural Go representation
// (float64, string, bool, []any, map[string]any) for an `any`-typed
// embedder parameter.
func UnmarshalFromGoAny(v runtime.Value) any {
	switch val := v.(type) {
	case runtime.Number:
		return float64(val)
	case runtime.String:
		return string(val)
	case runtime.Boolean:
		return bool(val)
	case *runtime.Array:
		out := make([]any, len(val.Elements))
		for i, el := range val.Elements {
			out[i] = UnmarshalFromGoAny(el)
		}
		return out
	case *runtime.Record:
		out := make(map[string]any, len(val.Keys()))
		for _, k := range val.Keys() {
			out[k] = UnmarshalFromGoAny(val.Get(k))
		}
		return out
	default:
		return nil
	}
}
