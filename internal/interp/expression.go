package interp

import (
	"math"

	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/runtime"
)

func (in *Interpreter) evalExpression(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.Number(e.Value), nil

	case *ast.StringLiteral:
		return runtime.String(e.Value), nil

	case *ast.BooleanLiteral:
		return runtime.Boolean(e.Value), nil

	case *ast.NullLiteral:
		return runtime.Null_, nil

	case *ast.UndefinedLiteral:
		return runtime.Undefined_, nil

	case *ast.Identifier:
		v, err := env.Lookup(e.Name)
		if err != nil {
			return nil, referenceError(e, "%s is not defined", e.Name)
		}
		return v, nil

	case *ast.ArrayLiteral:
		elements := make([]runtime.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := in.evalExpression(el, env)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return runtime.NewArray(elements), nil

	case *ast.RecordLiteral:
		rec := runtime.NewRecord()
		for _, f := range e.Fields {
			v, err := in.evalExpression(f.Value, env)
			if err != nil {
				return nil, err
			}
			rec.Set(f.Key, v)
		}
		return rec, nil

	case *ast.FunctionLiteral:
		return &runtime.Function{Name: e.Name, Params: e.Params, Body: e.Body, Env: env}, nil

	case *ast.UnaryExpression:
		return in.evalUnary(e, env)

	case *ast.BinaryExpression:
		return in.evalBinary(e, env)

	case *ast.AssignmentExpression:
		return in.evalAssignment(e, env)

	case *ast.MemberExpression:
		obj, err := in.evalExpression(e.Object, env)
		if err != nil {
			return nil, err
		}
		return in.memberGet(obj, e.Property, e)

	case *ast.IndexExpression:
		obj, err := in.evalExpression(e.Object, env)
		if err != nil {
			return nil, err
		}
		idx, err := in.evalExpression(e.Index, env)
		if err != nil {
			return nil, err
		}
		return in.indexGet(obj, idx, e)

	case *ast.CallExpression:
		return in.evalCall(e, env)

	default:
		return nil, hostError(expr, "unsupported expression node %T", expr)
	}
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := in.evalExpression(e.Operand, env)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "-":
		return runtime.Number(-float64(runtime.ToNumber(operand))), nil
	case "!":
		return runtime.Boolean(!runtime.Truthy(operand)), nil
	default:
		return nil, hostError(e, "unknown unary operator %q", e.Operator)
	}
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	// Logical operators short-circuit and do not evaluate the right side
	// unless needed.
	switch e.Operator {
	case "&&":
		left, err := in.evalExpression(e.Left, env)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(left) {
			return left, nil
		}
		return in.evalExpression(e.Right, env)
	case "||":
		left, err := in.evalExpression(e.Left, env)
		if err != nil {
			return nil, err
		}
		if runtime.Truthy(left) {
			return left, nil
		}
		return in.evalExpression(e.Right, env)
	}

	left, err := in.evalExpression(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpression(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case "+":
		return evalAdd(left, right), nil
	case "-":
		return runtime.Number(float64(runtime.ToNumber(left)) - float64(runtime.ToNumber(right))), nil
	case "*":
		return runtime.Number(float64(runtime.ToNumber(left)) * float64(runtime.ToNumber(right))), nil
	case "/":
		return runtime.Number(float64(runtime.ToNumber(left)) / float64(runtime.ToNumber(right))), nil
	case "%":
		return runtime.Number(math.Mod(float64(runtime.ToNumber(left)), float64(runtime.ToNumber(right)))), nil
	case "==":
		return runtime.Boolean(runtime.LooseEquals(left, right)), nil
	case "!=":
		return runtime.Boolean(!runtime.LooseEquals(left, right)), nil
	case "<":
		c, ok := compare(left, right)
		return runtime.Boolean(ok && c < 0), nil
	case "<=":
		c, ok := compare(left, right)
		return runtime.Boolean(ok && c <= 0), nil
	case ">":
		c, ok := compare(left, right)
		return runtime.Boolean(ok && c > 0), nil
	case ">=":
		c, ok := compare(left, right)
		return runtime.Boolean(ok && c >= 0), nil
	default:
		return nil, hostError(e, "unknown binary operator %q", e.Operator)
	}
}

// evalAdd implements `+`: string concatenation when either side is a
// String, otherwise both sides are coerced to Number and added.
func evalAdd(left, right runtime.Value) runtime.Value {
	_, lok := left.(runtime.String)
	_, rok := right.(runtime.String)
	if lok || rok {
		return runtime.String(runtime.ToKaelString(left) + runtime.ToKaelString(right))
	}
	return runtime.Number(float64(runtime.ToNumber(left)) + float64(runtime.ToNumber(right)))
}

// compare orders two values for <, <=, >, >=: lexicographic if both are
// strings, numeric (via coercion) otherwise. ok is false when either side
// coerces to NaN, since every relational comparison involving NaN is
// false.
func compare(left, right runtime.Value) (c int, ok bool) {
	ls, lok := left.(runtime.String)
	rs, rok := right.(runtime.String)
	if lok && rok {
		switch {
		case ls < rs:
			return -1, true
		case ls > rs:
			return 1, true
		default:
			return 0, true
		}
	}

	ln := float64(runtime.ToNumber(left))
	rn := float64(runtime.ToNumber(right))
	if math.IsNaN(ln) || math.IsNaN(rn) {
		return 0, false
	}
	switch {
	case ln < rn:
		return -1, true
	case ln > rn:
		return 1, true
	default:
		return 0, true
	}
}
