package builtins

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/kaelscript/kael/internal/runtime"
)

// Registry stores Go functions the embedder has exposed to scripts,
// keyed by the global name they are bound under.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]*runtime.HostFunction
}

func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]*runtime.HostFunction)}
}

// Register wraps a Go function value via reflection and stores it under
// name. fn must be a func; its parameters are marshaled from the
// Values passed at the call site, and its first return value (if any) is
// marshaled back. A second, error-typed return value is treated as a
// thrown HostError.
func (r *Registry) Register(name string, fn any) error {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return fmt.Errorf("builtins: Register(%q): not a function", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("builtins: function %q is already registered", name)
	}

	ft := fv.Type()
	r.functions[name] = runtime.NewHostFunction(name, func(args []runtime.Value) (runtime.Value, error) {
		return callReflected(name, fv, ft, args)
	})
	return nil
}

func callReflected(name string, fv reflect.Value, ft reflect.Type, args []runtime.Value) (runtime.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		numIn--
	}
	if len(args) < numIn {
		return nil, fmt.Errorf("%s: expected at least %d arguments, got %d", name, numIn, len(args))
	}

	in := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		var paramType reflect.Type
		switch {
		case i < numIn:
			paramType = ft.In(i)
		case ft.IsVariadic():
			paramType = ft.In(ft.NumIn() - 1).Elem()
		default:
			continue // surplus argument beyond a non-variadic signature is ignored
		}
		goVal, err := MarshalToGo(a, paramType)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i, err)
		}
		in = append(in, reflect.ValueOf(goVal))
	}

	out := fv.Call(in)
	switch len(out) {
	case 0:
		return runtime.Undefined_, nil
	case 1:
		if isErrorType(ft.Out(0)) {
			if out[0].IsNil() {
				return runtime.Undefined_, nil
			}
			return nil, out[0].Interface().(error)
		}
		return MarshalFromGo(out[0]), nil
	default:
		last := out[len(out)-1]
		if isErrorType(ft.Out(len(out)-1)) && !last.IsNil() {
			return nil, last.Interface().(error)
		}
		return MarshalFromGo(out[0]), nil
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func isErrorType(t reflect.Type) bool { return t.Implements(errorType) }

// Get returns the registered function for name, bound and ready to call.
func (r *Registry) Get(name string) (*runtime.HostFunction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// Install defines every registered function as a global binding in env.
func (r *Registry) Install(env *runtime.Environment) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, fn := range r.functions {
		env.Define(name, fn, true)
	}
}
