package interp

import (
	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/runtime"
)

// memberGet implements `obj.name`: Record field lookup, Array or String
// length/method lookup, or a TypeError for any other receiver kind.
func (in *Interpreter) memberGet(obj runtime.Value, name string, node ast.Node) (runtime.Value, error) {
	switch v := obj.(type) {
	case *runtime.Record:
		return v.Get(name), nil
	case *runtime.Array:
		if name == "length" {
			return runtime.Number(v.Length()), nil
		}
		if fn := arrayMethod(v, name); fn != nil {
			return fn, nil
		}
		return runtime.Undefined_, nil
	case runtime.String:
		if name == "length" {
			return runtime.Number(len([]rune(string(v)))), nil
		}
		if fn := stringMethod(v, name); fn != nil {
			return fn, nil
		}
		return runtime.Undefined_, nil
	default:
		return nil, typeError(node, "cannot read property %q of %s", name, runtime.TypeName(obj))
	}
}

// indexGet implements `obj[index]`: Array element/Record key access by a
// computed key.
func (in *Interpreter) indexGet(obj, index runtime.Value, node ast.Node) (runtime.Value, error) {
	switch v := obj.(type) {
	case *runtime.Array:
		return v.Get(index), nil
	case *runtime.Record:
		return v.GetIndexed(index), nil
	case runtime.String:
		i, ok := index.(runtime.Number)
		if !ok {
			return runtime.Undefined_, nil
		}
		runes := []rune(string(v))
		idx := int(i)
		if idx < 0 || idx >= len(runes) || float64(idx) != float64(i) {
			return runtime.Undefined_, nil
		}
		return runtime.String(string(runes[idx])), nil
	default:
		return nil, typeError(node, "cannot index into %s", runtime.TypeName(obj))
	}
}

func (in *Interpreter) evalAssignment(e *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	value, err := in.evalExpression(e.Value, env)
	if err != nil {
		return nil, err
	}

	switch target := e.Target.(type) {
	case *ast.Identifier:
		if err := env.AssignCreating(target.Name, value); err != nil {
			if _, ok := err.(*runtime.ConstAssignError); ok {
				return nil, typeError(e, "%s", err.Error())
			}
			return nil, err
		}
		return value, nil

	case *ast.MemberExpression:
		obj, err := in.evalExpression(target.Object, env)
		if err != nil {
			return nil, err
		}
		rec, ok := obj.(*runtime.Record)
		if !ok {
			return nil, typeError(e, "cannot set property %q of %s", target.Property, runtime.TypeName(obj))
		}
		rec.Set(target.Property, value)
		return value, nil

	case *ast.IndexExpression:
		obj, err := in.evalExpression(target.Object, env)
		if err != nil {
			return nil, err
		}
		idx, err := in.evalExpression(target.Index, env)
		if err != nil {
			return nil, err
		}
		switch v := obj.(type) {
		case *runtime.Array:
			if err := v.Set(idx, value); err != nil {
				return nil, typeError(e, "invalid array index %s", idx.String())
			}
		case *runtime.Record:
			v.SetIndexed(idx, value)
		default:
			return nil, typeError(e, "cannot index-assign into %s", runtime.TypeName(obj))
		}
		return value, nil

	default:
		return nil, hostError(e, "invalid assignment target %T", e.Target)
	}
}
