package eval

import (
	"moonlet/parser"
	"moonlet/types"
)

// Call invokes a function value with the given arguments and returns
// all of its results. Builtins run directly; closures get a fresh
// environment nested in their captured defining scope, with missing
// arguments padded to nil and surplus ones collected into the vararg
// table when the function declares '...'.
func (e *Evaluator) Call(fn types.Value, args []types.Value) ([]types.Value, error) {
	switch f := fn.(type) {
	case *types.Builtin:
		return f.Fn(args)

	case *types.Closure:
		captured, ok := f.Env.(*Environment)
		if !ok {
			return nil, types.NewRuntimeError(types.NotCallable, "closure has no environment")
		}
		body, ok := f.Body.([]parser.Stmt)
		if !ok {
			return nil, types.NewRuntimeError(types.NotCallable, "closure has no body")
		}

		callEnv := NewNestedEnvironment(captured)
		for i, param := range f.Params {
			callEnv.Define(param, pick(args, i))
		}
		if f.IsVararg {
			callEnv.Define("...", varargTable(args[min(len(f.Params), len(args)):]))
		}

		result, err := e.ExecBlock(body, callEnv)
		if err != nil {
			return nil, err
		}
		if result.IsBreak() {
			return nil, types.NewRuntimeError(types.UnsupportedOperation, "break outside a loop")
		}
		return result.Vals, nil

	default:
		return nil, types.NewRuntimeError(types.NotCallable, "cannot call %s value", fn.Type())
	}
}

// CallOne invokes a function and reduces its results to one value
func (e *Evaluator) CallOne(fn types.Value, args ...types.Value) (types.Value, error) {
	vals, err := e.Call(fn, args)
	if err != nil {
		return nil, err
	}
	return first(vals), nil
}

// varargTable packs surplus arguments into a table keyed 1..n
func varargTable(rest []types.Value) *types.TableValue {
	tbl := types.NewTable()
	for i, val := range rest {
		tbl.Set(types.NewNumber(float64(i+1)), val)
	}
	return tbl
}
