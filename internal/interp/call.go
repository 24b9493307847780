package interp

import (
	stderrors "errors"

	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/builtins"
	"github.com/kaelscript/kael/internal/errors"
	"github.com/kaelscript/kael/internal/runtime"
	"github.com/kaelscript/kael/pkg/token"
)

func (in *Interpreter) evalCall(e *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	callee, err := in.evalExpression(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpression(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *runtime.Function:
		return in.callFunction(fn, args, e)
	case *runtime.HostFunction:
		v, err := fn.Call(args)
		if err != nil {
			return nil, wrapHostError(err, e)
		}
		return v, nil
	default:
		return nil, typeError(e, "%s is not callable", runtime.TypeName(callee))
	}
}

// callFunction binds args to fn's parameters (missing trailing arguments
// become Undefined, surplus arguments are ignored) in a fresh child of
// fn's closed-over environment, not of the caller's environment, then
// runs the body to completion.
func (in *Interpreter) callFunction(fn *runtime.Function, args []runtime.Value, node ast.Node) (result runtime.Value, err error) {
	callEnv := fn.Env.Child()
	for i, p := range fn.Params {
		if i < len(args) {
			callEnv.Define(p.Name, args[i], true)
		} else {
			callEnv.Define(p.Name, runtime.Undefined_, true)
		}
	}

	in.callStack = append(in.callStack, stackEntry{functionName: fn.Name, pos: node})
	defer func() {
		if err != nil && in.opts.trace {
			in.attachTrace(err)
		}
		in.callStack = in.callStack[:len(in.callStack)-1]
	}()

	completion, evalErr := in.evalBlock(fn.Body, callEnv)
	if evalErr != nil {
		return nil, evalErr
	}
	if completion.Signal == runtime.SigReturn {
		return completion.Value, nil
	}
	return runtime.Undefined_, nil
}

// attachTrace records the interpreter's current call stack on err, the
// deepest point at which it is seen as it unwinds through callFunction's
// deferred returns. Only the innermost (first-attached) trace is kept.
func (in *Interpreter) attachTrace(err error) {
	ke, ok := err.(*errors.KaelError)
	if !ok || ke.Trace != nil {
		return
	}
	trace := make(errors.StackTrace, len(in.callStack))
	for i, entry := range in.callStack {
		var pos token.Position
		if entry.pos != nil {
			pos = entry.pos.Pos()
		}
		trace[i] = errors.NewStackFrame(entry.functionName, "", pos)
	}
	ke.Trace = trace
}

// wrapHostError lifts a plain Go error returned by a host function into a
// catchable HostError unless it is already one of the catchable error
// families.
func wrapHostError(err error, node ast.Node) error {
	switch err.(type) {
	case *ThrownValue, *errors.KaelError:
		return err
	}

	var typeMismatch *builtins.TypeMismatchError
	if stderrors.As(err, &typeMismatch) {
		return typeError(node, "%s", typeMismatch.Message)
	}

	return hostError(node, "%s", err.Error())
}
