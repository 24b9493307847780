package interp

import (
	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/errors"
	"github.com/kaelscript/kael/internal/runtime"
	"github.com/kaelscript/kael/pkg/token"
)

// raise builds a *errors.KaelError positioned at node, for the four
// catchable kinds (ReferenceError, TypeError, RangeError, HostError)
// raised during evaluation. A try/catch handler converts it to a Value
// via its ToValue method; an uncaught one propagates to the driver.
func raise(kind errors.Kind, node ast.Node, format string, args ...any) error {
	var pos token.Position
	if node != nil {
		pos = node.Pos()
	}
	return errors.New(kind, pos, format, args...)
}

func typeError(node ast.Node, format string, args ...any) error {
	return raise(errors.KindType, node, format, args...)
}

func referenceError(node ast.Node, format string, args ...any) error {
	return raise(errors.KindReference, node, format, args...)
}

func rangeError(node ast.Node, format string, args ...any) error {
	return raise(errors.KindRange, node, format, args...)
}

func hostError(node ast.Node, format string, args ...any) error {
	return raise(errors.KindHost, node, format, args...)
}

// valueOfError converts any error produced during evaluation into the
// Value a catch handler binds: a *errors.KaelError becomes its
// {name, message} Record; a *ThrownValue yields the thrown Value as-is.
func valueOfError(err error) runtime.Value {
	switch e := err.(type) {
	case *ThrownValue:
		return e.Value
	case *errors.KaelError:
		return e.ToValue()
	default:
		return runtime.String(err.Error())
	}
}
