package eval

import (
	"moonlet/parser"
	"moonlet/types"
)

// ExecBlock executes statements in order against the given
// environment, stopping at the first non-normal outcome and
// propagating it.
func (e *Evaluator) ExecBlock(stmts []parser.Stmt, env *Environment) (types.Result, error) {
	for _, stmt := range stmts {
		result, err := e.ExecStmt(stmt, env)
		if err != nil {
			return result, err
		}
		if !result.IsNormal() {
			return result, nil
		}
	}
	return types.Ok(), nil
}

// ExecStmt executes a single statement. The Result carries break and
// return signals; runtime faults come back as errors.
func (e *Evaluator) ExecStmt(stmt parser.Stmt, env *Environment) (types.Result, error) {
	switch s := stmt.(type) {
	case *parser.CallStmt:
		_, err := e.EvalMulti(s.Call, env)
		return types.Ok(), err

	case *parser.AssignStmt:
		return e.execAssign(s, env)

	case *parser.LocalStmt:
		return e.execLocal(s, env)

	case *parser.LocalFuncStmt:
		// Bind the name before building the closure so the
		// function can call itself
		env.Define(s.Name, types.Nil)
		closure := e.makeClosure(s.Fn, env)
		env.Define(s.Name, closure)
		return types.Ok(), nil

	case *parser.FuncDefStmt:
		return e.execFuncDef(s, env)

	case *parser.MethDefStmt:
		return e.execMethDef(s, env)

	case *parser.ReturnStmt:
		vals, err := e.evalExprList(s.Exprs, env)
		if err != nil {
			return types.Ok(), err
		}
		return types.Return(vals), nil

	case *parser.BreakStmt:
		return types.Break(), nil

	case *parser.BlockStmt:
		return e.ExecBlock(s.Body, NewNestedEnvironment(env))

	case *parser.IfStmt:
		return e.execIf(s, env)

	case *parser.WhileStmt:
		return e.execWhile(s, env)

	case *parser.RepeatStmt:
		return e.execRepeat(s, env)

	case *parser.NumericForStmt:
		return e.execNumericFor(s, env)

	case *parser.GenericForStmt:
		return e.execGenericFor(s, env)

	default:
		return types.Ok(), types.NewRuntimeError(types.UnsupportedOperation, "cannot execute %T", stmt)
	}
}

// execAssign evaluates the right-hand list once, then binds targets
// positionally: missing values fill with nil, extras are discarded.
func (e *Evaluator) execAssign(s *parser.AssignStmt, env *Environment) (types.Result, error) {
	vals, err := e.evalExprList(s.Exprs, env)
	if err != nil {
		return types.Ok(), err
	}

	for i, target := range s.Targets {
		val := types.Value(types.Nil)
		if i < len(vals) {
			val = vals[i]
		}

		switch t := target.(type) {
		case *parser.VarExpr:
			if err := env.Assign(t.Name, val); err != nil {
				return types.Ok(), err
			}
		case *parser.IndexExpr:
			object, err := e.Eval(t.Object, env)
			if err != nil {
				return types.Ok(), err
			}
			key, err := e.Eval(t.Key, env)
			if err != nil {
				return types.Ok(), err
			}
			if err := e.SetIndex(object, key, val); err != nil {
				return types.Ok(), err
			}
		default:
			return types.Ok(), types.NewRuntimeError(types.UnsupportedOperation, "cannot assign to %T", target)
		}
	}
	return types.Ok(), nil
}

// execLocal introduces names in the current frame
func (e *Evaluator) execLocal(s *parser.LocalStmt, env *Environment) (types.Result, error) {
	vals, err := e.evalExprList(s.Exprs, env)
	if err != nil {
		return types.Ok(), err
	}
	for i, name := range s.Names {
		val := types.Value(types.Nil)
		if i < len(vals) {
			val = vals[i]
		}
		env.Define(name, val)
	}
	return types.Ok(), nil
}

// execFuncDef handles function a(...)  and function a.b.c(...).
// A single name binds in the current frame; a dotted chain resolves
// the leading names and writes the closure through the final index.
func (e *Evaluator) execFuncDef(s *parser.FuncDefStmt, env *Environment) (types.Result, error) {
	closure := e.makeClosure(s.Fn, env)

	if len(s.Names) == 1 {
		env.Define(s.Names[0], closure)
		return types.Ok(), nil
	}

	object, err := e.resolveNameChain(s.Names[:len(s.Names)-1], env)
	if err != nil {
		return types.Ok(), err
	}
	last := s.Names[len(s.Names)-1]
	return types.Ok(), e.SetIndex(object, types.NewStr(last), closure)
}

// execMethDef handles function a.b:m(...); the parser already
// prepended the implicit self parameter
func (e *Evaluator) execMethDef(s *parser.MethDefStmt, env *Environment) (types.Result, error) {
	closure := e.makeClosure(s.Fn, env)
	object, err := e.resolveNameChain(s.Names, env)
	if err != nil {
		return types.Ok(), err
	}
	return types.Ok(), e.SetIndex(object, types.NewStr(s.Method), closure)
}

// resolveNameChain evaluates Name{.Name} down to the final value
func (e *Evaluator) resolveNameChain(names []string, env *Environment) (types.Value, error) {
	val, ok := env.Get(names[0])
	if !ok {
		return nil, types.NewRuntimeError(types.UnboundVariable, "unbound variable '%s'", names[0])
	}
	for _, name := range names[1:] {
		next, err := e.Index(val, types.NewStr(name))
		if err != nil {
			return nil, err
		}
		val = next
	}
	return val, nil
}

// execIf picks the first truthy arm; bodies run in a child scope
func (e *Evaluator) execIf(s *parser.IfStmt, env *Environment) (types.Result, error) {
	cond, err := e.Eval(s.Condition, env)
	if err != nil {
		return types.Ok(), err
	}
	if cond.Truthy() {
		return e.ExecBlock(s.Body, NewNestedEnvironment(env))
	}

	for _, elseIf := range s.ElseIfs {
		cond, err := e.Eval(elseIf.Condition, env)
		if err != nil {
			return types.Ok(), err
		}
		if cond.Truthy() {
			return e.ExecBlock(elseIf.Body, NewNestedEnvironment(env))
		}
	}

	if s.Else != nil {
		return e.ExecBlock(s.Else, NewNestedEnvironment(env))
	}
	return types.Ok(), nil
}

// execWhile loops while the condition holds. The body catches a break
// outcome to stop the loop; a return propagates unchanged.
func (e *Evaluator) execWhile(s *parser.WhileStmt, env *Environment) (types.Result, error) {
	for {
		cond, err := e.Eval(s.Condition, env)
		if err != nil {
			return types.Ok(), err
		}
		if !cond.Truthy() {
			return types.Ok(), nil
		}

		result, err := e.ExecBlock(s.Body, NewNestedEnvironment(env))
		if err != nil {
			return result, err
		}
		if result.IsBreak() {
			return types.Ok(), nil
		}
		if result.IsReturn() {
			return result, nil
		}
	}
}

// execRepeat runs the body at least once; the until condition is
// evaluated in the body's scope, as its locals are still live there
func (e *Evaluator) execRepeat(s *parser.RepeatStmt, env *Environment) (types.Result, error) {
	for {
		iterEnv := NewNestedEnvironment(env)
		result, err := e.ExecBlock(s.Body, iterEnv)
		if err != nil {
			return result, err
		}
		if result.IsBreak() {
			return types.Ok(), nil
		}
		if result.IsReturn() {
			return result, nil
		}

		cond, err := e.Eval(s.Condition, iterEnv)
		if err != nil {
			return types.Ok(), err
		}
		if cond.Truthy() {
			return types.Ok(), nil
		}
	}
}

// execNumericFor validates numeric bounds, then steps ascending for a
// positive step and descending otherwise. The loop variable is bound
// in a fresh child environment each iteration, so closures created in
// different iterations observe distinct values.
func (e *Evaluator) execNumericFor(s *parser.NumericForStmt, env *Environment) (types.Result, error) {
	start, err := e.evalForBound(s.Start, env, "start")
	if err != nil {
		return types.Ok(), err
	}
	stop, err := e.evalForBound(s.Stop, env, "stop")
	if err != nil {
		return types.Ok(), err
	}
	step := 1.0
	if s.Step != nil {
		step, err = e.evalForBound(s.Step, env, "step")
		if err != nil {
			return types.Ok(), err
		}
	}

	for current := start; (step > 0 && current <= stop) || (step <= 0 && current >= stop); current += step {
		iterEnv := NewNestedEnvironment(env)
		iterEnv.Define(s.Name, types.NewNumber(current))

		result, err := e.ExecBlock(s.Body, iterEnv)
		if err != nil {
			return result, err
		}
		if result.IsBreak() {
			return types.Ok(), nil
		}
		if result.IsReturn() {
			return result, nil
		}
	}
	return types.Ok(), nil
}

// evalForBound evaluates one numeric-for bound, failing unless it is
// a number
func (e *Evaluator) evalForBound(expr parser.Expr, env *Environment, which string) (float64, error) {
	val, err := e.Eval(expr, env)
	if err != nil {
		return 0, err
	}
	num, ok := val.(types.NumberValue)
	if !ok {
		return 0, types.NewRuntimeError(types.BadForBounds, "'for' %s value must be a number, got %s", which, val.Type())
	}
	return num.Val, nil
}

// execGenericFor desugars to the iterator protocol: evaluate the
// expression list into (iterator, state, control), then call the
// iterator with (state, control) each pass, stopping when the first
// produced value is nil and reassigning control otherwise.
func (e *Evaluator) execGenericFor(s *parser.GenericForStmt, env *Environment) (types.Result, error) {
	vals, err := e.evalExprList(s.Exprs, env)
	if err != nil {
		return types.Ok(), err
	}
	iterator := pick(vals, 0)
	state := pick(vals, 1)
	control := pick(vals, 2)

	for {
		produced, err := e.Call(iterator, []types.Value{state, control})
		if err != nil {
			return types.Ok(), err
		}
		if types.IsNil(first(produced)) {
			return types.Ok(), nil
		}
		control = produced[0]

		iterEnv := NewNestedEnvironment(env)
		for i, name := range s.Names {
			iterEnv.Define(name, pick(produced, i))
		}

		result, err := e.ExecBlock(s.Body, iterEnv)
		if err != nil {
			return result, err
		}
		if result.IsBreak() {
			return types.Ok(), nil
		}
		if result.IsReturn() {
			return result, nil
		}
	}
}

// pick returns vals[i], or nil past the end
func pick(vals []types.Value, i int) types.Value {
	if i < len(vals) {
		return vals[i]
	}
	return types.Nil
}
