package interp

import (
	"github.com/kaelscript/kael/internal/ast"
	"github.com/kaelscript/kael/internal/runtime"
)

func (in *Interpreter) evalStatement(stmt ast.Statement, env *runtime.Environment) (runtime.Completion, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		if s.Expression == nil {
			return runtime.Normal, nil
		}
		v, err := in.evalExpression(s.Expression, env)
		if err != nil {
			return runtime.Completion{}, err
		}
		return runtime.Completion{Signal: runtime.SigNone, Value: v}, nil

	case *ast.VarDeclaration:
		return in.evalVarDeclaration(s, env)

	case *ast.FunctionDeclaration:
		// Already defined by hoisting; nothing to do at the point of
		// textual occurrence.
		return runtime.Normal, nil

	case *ast.BlockStatement:
		return in.evalBlock(s, env.Child())

	case *ast.IfStatement:
		return in.evalIf(s, env)

	case *ast.WhileStatement:
		return in.evalWhile(s, env)

	case *ast.ForStatement:
		return in.evalFor(s, env)

	case *ast.ReturnStatement:
		var v runtime.Value = runtime.Undefined_
		if s.ReturnValue != nil {
			var err error
			v, err = in.evalExpression(s.ReturnValue, env)
			if err != nil {
				return runtime.Completion{}, err
			}
		}
		return runtime.Completion{Signal: runtime.SigReturn, Value: v}, nil

	case *ast.BreakStatement:
		return runtime.Completion{Signal: runtime.SigBreak}, nil

	case *ast.ContinueStatement:
		return runtime.Completion{Signal: runtime.SigContinue}, nil

	case *ast.ThrowStatement:
		v, err := in.evalExpression(s.Value, env)
		if err != nil {
			return runtime.Completion{}, err
		}
		return runtime.Completion{}, throwValue(v)

	case *ast.TryStatement:
		return in.evalTry(s, env)

	default:
		return runtime.Completion{}, hostError(stmt, "unsupported statement node %T", stmt)
	}
}

func (in *Interpreter) evalVarDeclaration(s *ast.VarDeclaration, env *runtime.Environment) (runtime.Completion, error) {
	var v runtime.Value = runtime.Undefined_
	if s.Initializer != nil {
		var err error
		v, err = in.evalExpression(s.Initializer, env)
		if err != nil {
			return runtime.Completion{}, err
		}
	}
	env.Define(s.Name, v, s.Kind != ast.Const)
	return runtime.Normal, nil
}

// evalBlock hoists the block's own function declarations into env before
// running its statements in order, stopping early on any non-normal
// completion or error.
func (in *Interpreter) evalBlock(b *ast.BlockStatement, env *runtime.Environment) (runtime.Completion, error) {
	hoistFunctionDeclarations(b.Statements, env)

	result := runtime.Normal
	for _, stmt := range b.Statements {
		completion, err := in.evalStatement(stmt, env)
		if err != nil {
			return runtime.Completion{}, err
		}
		if completion.Signal != runtime.SigNone {
			return completion, nil
		}
		result = completion
	}
	return result, nil
}

func (in *Interpreter) evalIf(s *ast.IfStatement, env *runtime.Environment) (runtime.Completion, error) {
	cond, err := in.evalExpression(s.Condition, env)
	if err != nil {
		return runtime.Completion{}, err
	}
	if runtime.Truthy(cond) {
		return in.evalStatement(s.Consequence, env)
	}
	if s.Alternative != nil {
		return in.evalStatement(s.Alternative, env)
	}
	return runtime.Normal, nil
}

func (in *Interpreter) evalWhile(s *ast.WhileStatement, env *runtime.Environment) (runtime.Completion, error) {
	for {
		cond, err := in.evalExpression(s.Condition, env)
		if err != nil {
			return runtime.Completion{}, err
		}
		if !runtime.Truthy(cond) {
			return runtime.Normal, nil
		}

		completion, err := in.evalStatement(s.Body, env)
		if err != nil {
			return runtime.Completion{}, err
		}
		switch completion.Signal {
		case runtime.SigBreak:
			return runtime.Normal, nil
		case runtime.SigReturn:
			return completion, nil
		case runtime.SigContinue, runtime.SigNone:
			// fall through to next iteration
		}
	}
}

func (in *Interpreter) evalFor(s *ast.ForStatement, env *runtime.Environment) (runtime.Completion, error) {
	loopEnv := env.Child()

	if s.Init != nil {
		if _, err := in.evalStatement(s.Init, loopEnv); err != nil {
			return runtime.Completion{}, err
		}
	}

	for {
		if s.Condition != nil {
			cond, err := in.evalExpression(s.Condition, loopEnv)
			if err != nil {
				return runtime.Completion{}, err
			}
			if !runtime.Truthy(cond) {
				return runtime.Normal, nil
			}
		}

		completion, err := in.evalStatement(s.Body, loopEnv)
		if err != nil {
			return runtime.Completion{}, err
		}
		switch completion.Signal {
		case runtime.SigBreak:
			return runtime.Normal, nil
		case runtime.SigReturn:
			return completion, nil
		}

		if s.Update != nil {
			if _, err := in.evalExpression(s.Update, loopEnv); err != nil {
				return runtime.Completion{}, err
			}
		}
	}
}

func (in *Interpreter) evalTry(s *ast.TryStatement, env *runtime.Environment) (runtime.Completion, error) {
	completion, err := in.evalBlock(s.TryBlock, env.Child())
	if err == nil {
		return completion, nil
	}

	catchEnv := env.Child()
	catchEnv.Define(s.CatchParam, valueOfError(err), true)
	return in.evalBlock(s.CatchBlock, catchEnv)
}
