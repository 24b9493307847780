package runtime

import "github.com/kaelscript/kael/internal/ast"

// Function is a user-defined function: its parameter names, its body AST,
// and the environment active at the function's declaration/expression
// site, captured for the function's lifetime so it closes over outer
// bindings correctly.
type Function struct {
	Name    string // empty for anonymous function expressions
	Params  []*ast.Identifier
	Body    *ast.BlockStatement
	Env     *Environment
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	if f.Name != "" {
		return "[Function: " + f.Name + "]"
	}
	return "[Function]"
}

// HostFunctionImpl is the signature every built-in/FFI callable
// implements: it receives argument Values directly and returns a Value or
// a Go error representing a thrown error. No type coercion is performed
// on its behalf; it validates its own arguments.
type HostFunctionImpl func(args []Value) (Value, error)

// HostFunction wraps a host-defined callable as a first-class Value.
type HostFunction struct {
	Name string
	Impl HostFunctionImpl
}

func NewHostFunction(name string, impl HostFunctionImpl) *HostFunction {
	return &HostFunction{Name: name, Impl: impl}
}

func (*HostFunction) Type() string { return "function" }

func (h *HostFunction) String() string {
	if h.Name != "" {
		return "[Function: " + h.Name + "]"
	}
	return "[Function]"
}

// Call invokes the wrapped Go callable.
func (h *HostFunction) Call(args []Value) (Value, error) {
	return h.Impl(args)
}
