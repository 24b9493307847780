// Package interp walks a parsed program's AST and executes it against a
// runtime.Environment, producing runtime.Value results or a *ThrownValue/
// *errors.KaelError on failure.
package interp

import (
	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/builtins"
	"github.com/kaelscript/kael/internal/runtime"
)

// Interpreter executes a program's statements against a single global
// environment. Reused across successive Eval calls from a REPL or embedder
// so that top-level bindings persist between calls.
type Interpreter struct {
	env       *runtime.Environment
	callStack []stackEntry
	opts      options
	externals *builtins.Registry
}

type stackEntry struct {
	functionName string
	pos          ast.Node
}

// New creates an Interpreter with a fresh global environment populated by
// the host module registry (console, fs, path, http, json). Embedder
// functions are added afterwards with RegisterFunction.
func New(opts ...Option) *Interpreter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	env := runtime.NewEnvironment()
	interp := &Interpreter{env: env, opts: o, externals: builtins.NewRegistry()}
	interp.registerGlobals()
	return interp
}

// RegisterFunction exposes a Go function as a global callable under name,
// for an embedder extending the language with host capabilities.
func (in *Interpreter) RegisterFunction(name string, fn any) error {
	if err := in.externals.Register(name, fn); err != nil {
		return err
	}
	hf, _ := in.externals.Get(name)
	in.env.Define(name, hf, true)
	return nil
}

func (in *Interpreter) registerGlobals() {
	invoke := func(fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
		callable, ok := fn.(*runtime.Function)
		if !ok {
			if hf, ok := fn.(*runtime.HostFunction); ok {
				return hf.Call(args)
			}
			return nil, typeError(nil, "%s is not callable", runtime.TypeName(fn))
		}
		return in.callFunction(callable, args, nil)
	}
	builtins.Install(in.env, in.opts.stdout, in.opts.stderr, invoke, in.opts.allowedModules...)
}

// Env exposes the global environment, primarily so an embedder can define
// additional host bindings before running a program.
func (in *Interpreter) Env() *runtime.Environment { return in.env }

// Run evaluates a full program against the interpreter's global
// environment and returns the value of its last expression statement, or
// Undefined if the program has none.
func (in *Interpreter) Run(program *ast.Program) (runtime.Value, error) {
	var result runtime.Value = runtime.Undefined_

	hoistFunctionDeclarations(program.Statements, in.env)

	for _, stmt := range program.Statements {
		completion, err := in.evalStatement(stmt, in.env)
		if err != nil {
			return nil, err
		}
		if completion.Signal != runtime.SigNone {
			// return/break/continue at top level: stop, but this is not
			// itself an error condition the driver needs to report.
			return completion.Value, nil
		}
		if es, ok := stmt.(*ast.ExpressionStatement); ok && es.Expression != nil {
			result = completion.Value
		}
	}
	return result, nil
}

// hoistFunctionDeclarations defines every function declaration in scope
// before any statement in the block runs, so forward references and
// mutual recursion between top-level/block-scoped functions work
// regardless of textual order.
func hoistFunctionDeclarations(statements []ast.Statement, env *runtime.Environment) {
	for _, stmt := range statements {
		if fd, ok := stmt.(*ast.FunctionDeclaration); ok {
			fn := &runtime.Function{Name: fd.Name, Params: fd.Params, Body: fd.Body, Env: env}
			env.Define(fd.Name, fn, true)
		}
	}
}
