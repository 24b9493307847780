// Package kael is the embeddable facade over the language: lexing,
// parsing, and evaluation behind a small Engine type.
package kael

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/errors"
	"github.com/kaelscript/kael/internal/interp"
	"github.com/kaelscript/kael/internal/lexer"
	"github.com/kaelscript/kael/internal/parser"
	"github.com/kaelscript/kael/internal/runtime"
)

// Engine is a reusable evaluation context: its global environment
// persists across successive Eval calls, so a REPL can build up state
// incrementally.
type Engine struct {
	interp *interp.Interpreter
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	opts   engineOptions
}

type engineOptions struct {
	trace          bool
	allowedModules []string
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*engineOptions)

// WithTrace enables call-stack trace collection on uncaught errors.
func WithTrace(trace bool) EngineOption {
	return func(o *engineOptions) { o.trace = trace }
}

// WithAllowedModules restricts require() to the given module names. An
// empty or omitted allowlist permits every built-in module (fs, path,
// http, json).
func WithAllowedModules(modules []string) EngineOption {
	return func(o *engineOptions) { o.allowedModules = modules }
}

// New creates an Engine with its own global environment and host module
// registry.
func New(opts ...EngineOption) (*Engine, error) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	var out, errOut bytes.Buffer
	in := interp.New(interp.WithStdout(&out), interp.WithStderr(&errOut), interp.WithTrace(o.trace), interp.WithAllowedModules(o.allowedModules))
	return &Engine{interp: in, stdout: &out, stderr: &errOut, opts: o}, nil
}

// CompileError wraps the accumulated syntax errors from a failed parse.
type CompileError struct {
	Errors []error
}

func (e *CompileError) Error() string {
	if len(e.Errors) == 0 {
		return "compile error"
	}
	return e.Errors[0].Error()
}

// Compile lexes and parses source without evaluating it, returning a
// *CompileError on any syntax error.
func (e *Engine) Compile(source string) (*ast.Program, error) {
	tokens, lexErrs := lexer.Lex(source)
	if len(lexErrs) > 0 {
		errs := make([]error, len(lexErrs))
		for i, le := range lexErrs {
			errs[i] = le
		}
		return nil, &CompileError{Errors: errs}
	}

	program, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		return nil, &CompileError{Errors: parseErrs}
	}
	return program, nil
}

// Eval compiles and runs source against the engine's persistent global
// environment, returning the value of its final expression statement.
func (e *Engine) Eval(source string) (runtime.Value, error) {
	program, err := e.Compile(source)
	if err != nil {
		return nil, err
	}
	return e.interp.Run(program)
}

// RegisterFunction exposes a Go function to scripts as a global callable
// under name. fn's parameters and (optional) return value are marshaled
// to and from Kael Values by reflection.
func (e *Engine) RegisterFunction(name string, fn any) error {
	return e.interp.RegisterFunction(name, fn)
}

// SetOutput redirects console.log/console.info to w and console.error/
// console.warn to errW for future Eval calls made on this Engine. It does
// so by replacing the Engine's interpreter with a fresh one, so bindings
// from earlier Eval calls and functions registered earlier are not kept,
// and Stdout/Stderr receive no further output. Callers that want captured
// output should use Stdout/Stderr instead of calling SetOutput.
func (e *Engine) SetOutput(w, errW io.Writer) {
	e.interp = interp.New(interp.WithStdout(w), interp.WithStderr(errW), interp.WithTrace(e.opts.trace), interp.WithAllowedModules(e.opts.allowedModules))
}

// Stdout returns everything written to console.log/console.info since the
// Engine was created (unless SetOutput has redirected output elsewhere).
func (e *Engine) Stdout() string { return e.stdout.String() }

// Stderr returns everything written to console.error/console.warn since
// the Engine was created (unless SetOutput has redirected output
// elsewhere).
func (e *Engine) Stderr() string { return e.stderr.String() }

// FormatError renders err (a *CompileError, *errors.KaelError, or an
// uncaught thrown value) as a human-readable, source-annotated message
// against source, suitable for CLI/REPL reporting.
func FormatError(err error, source string) string {
	switch e := err.(type) {
	case *CompileError:
		var sb bytes.Buffer
		for i, inner := range e.Errors {
			if i > 0 {
				sb.WriteString("\n")
			}
			switch se := inner.(type) {
			case *parser.SyntaxError:
				ke := errors.New(errors.KindSyntax, se.Pos, "%s", se.Message)
				ke.Source = source
				sb.WriteString(ke.Format(false))
			case lexer.Error:
				ke := errors.New(errors.KindSyntax, se.Pos, "%s", se.Message)
				ke.Source = source
				sb.WriteString(ke.Format(false))
			default:
				fmt.Fprint(&sb, inner.Error())
			}
		}
		return sb.String()
	case *errors.KaelError:
		e.Source = source
		return e.Format(false)
	case *interp.ThrownValue:
		return "uncaught: " + e.Value.String()
	default:
		return err.Error()
	}
}
