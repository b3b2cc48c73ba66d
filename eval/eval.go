package eval

import (
	"moonlet/parser"
	"moonlet/types"
)

// Evaluator walks the AST and evaluates expressions and statements.
// It owns the four per-kind metatables (numbers, booleans, strings,
// functions all share one each), so one interpreter instance carries
// no process-global state; tables carry their own metatable.
type Evaluator struct {
	kindMeta map[types.TypeCode]*types.TableValue
}

// NewEvaluator creates a new evaluator with no kind metatables set
func NewEvaluator() *Evaluator {
	return &Evaluator{
		kindMeta: make(map[types.TypeCode]*types.TableValue),
	}
}

// KindMetatable returns the shared metatable for a value kind, or nil
func (e *Evaluator) KindMetatable(tc types.TypeCode) *types.TableValue {
	return e.kindMeta[tc]
}

// SetKindMetatable sets the shared metatable for a value kind.
// Tables are excluded; they carry their own.
func (e *Evaluator) SetKindMetatable(tc types.TypeCode, meta *types.TableValue) {
	if tc == types.TYPE_TABLE || tc == types.TYPE_NIL {
		return
	}
	e.kindMeta[tc] = meta
}

// metatableOf resolves the metatable governing a value
func (e *Evaluator) metatableOf(v types.Value) *types.TableValue {
	if tbl, ok := v.(*types.TableValue); ok {
		return tbl.Meta()
	}
	return e.kindMeta[v.Type()]
}

// metamethod looks up a named handler on a value's metatable
func (e *Evaluator) metamethod(v types.Value, event string) types.Value {
	meta := e.metatableOf(v)
	if meta == nil {
		return nil
	}
	handler, ok := meta.Get(types.NewStr(event))
	if !ok {
		return nil
	}
	return handler
}

// RunString scans, parses, and executes source text against the given
// environment: the whole embedding contract in one call. The returned
// Result carries the values of a top-level return; a stray break
// surfaces as a non-normal Result for the host to flag.
func (e *Evaluator) RunString(src string, env *Environment) (types.Result, error) {
	p := parser.NewParser(src)
	block, err := p.ParseChunk()
	if err != nil {
		return types.Ok(), err
	}
	return e.ExecBlock(block, env)
}

// Eval evaluates an expression to a single value. A call expression
// in this context reduces to its first result, or nil if it had none.
func (e *Evaluator) Eval(expr parser.Expr, env *Environment) (types.Value, error) {
	switch n := expr.(type) {
	case *parser.LiteralExpr:
		return n.Value, nil

	case *parser.VarExpr:
		val, ok := env.Get(n.Name)
		if !ok {
			return nil, types.NewRuntimeError(types.UnboundVariable, "unbound variable '%s'", n.Name)
		}
		return val, nil

	case *parser.VarargExpr:
		val, ok := env.Get("...")
		if !ok {
			return nil, types.NewRuntimeError(types.UnboundVariable, "cannot use '...' outside a vararg function")
		}
		return val, nil

	case *parser.UnaryExpr:
		return e.evalUnary(n, env)

	case *parser.BinaryExpr:
		return e.evalBinary(n, env)

	case *parser.IndexExpr:
		object, err := e.Eval(n.Object, env)
		if err != nil {
			return nil, err
		}
		key, err := e.Eval(n.Key, env)
		if err != nil {
			return nil, err
		}
		return e.Index(object, key)

	case *parser.CallExpr, *parser.MethodCallExpr:
		vals, err := e.EvalMulti(expr, env)
		if err != nil {
			return nil, err
		}
		return first(vals), nil

	case *parser.FuncExpr:
		return e.makeClosure(n, env), nil

	case *parser.TableExpr:
		return e.evalTableConstructor(n, env)

	default:
		return nil, types.NewRuntimeError(types.UnsupportedOperation, "cannot evaluate %T", expr)
	}
}

// EvalMulti evaluates an expression in multi-value context. Only call
// expressions produce more than one value.
func (e *Evaluator) EvalMulti(expr parser.Expr, env *Environment) ([]types.Value, error) {
	switch n := expr.(type) {
	case *parser.CallExpr:
		fn, err := e.Eval(n.Fn, env)
		if err != nil {
			return nil, err
		}
		args, err := e.evalExprList(n.Args, env)
		if err != nil {
			return nil, err
		}
		return e.Call(fn, args)

	case *parser.MethodCallExpr:
		receiver, err := e.Eval(n.Receiver, env)
		if err != nil {
			return nil, err
		}
		method, err := e.Index(receiver, types.NewStr(n.Method))
		if err != nil {
			return nil, err
		}
		args, err := e.evalExprList(n.Args, env)
		if err != nil {
			return nil, err
		}
		return e.Call(method, append([]types.Value{receiver}, args...))

	default:
		val, err := e.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		return []types.Value{val}, nil
	}
}

// evalExprList evaluates an expression list with multi-value
// expansion: the last element, if and only if it is a call, expands to
// all of its results; every other position truncates to one value.
// This rule governs argument lists, return lists, assignment
// right-hand sides, and table-constructor positional fields.
func (e *Evaluator) evalExprList(exprs []parser.Expr, env *Environment) ([]types.Value, error) {
	var vals []types.Value
	for i, expr := range exprs {
		if i == len(exprs)-1 && parser.IsCall(expr) {
			rest, err := e.EvalMulti(expr, env)
			if err != nil {
				return nil, err
			}
			vals = append(vals, rest...)
			break
		}
		val, err := e.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	return vals, nil
}

// evalUnary evaluates not, #, and unary minus
func (e *Evaluator) evalUnary(node *parser.UnaryExpr, env *Environment) (types.Value, error) {
	operand, err := e.Eval(node.Operand, env)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case parser.TOKEN_NOT:
		return types.NewBool(!operand.Truthy()), nil
	case parser.TOKEN_HASH:
		return e.Len(operand)
	case parser.TOKEN_MINUS:
		return e.Neg(operand)
	default:
		return nil, types.NewRuntimeError(types.UnsupportedOperation, "unknown unary operator '%s'", node.Operator)
	}
}

// evalBinary evaluates a binary expression. and/or short-circuit and
// yield an operand, not a coerced boolean; comparisons yield booleans
// and therefore chain left-to-right (a < b < c compares a boolean
// against c, faithfully kept).
func (e *Evaluator) evalBinary(node *parser.BinaryExpr, env *Environment) (types.Value, error) {
	if node.Operator == parser.TOKEN_AND || node.Operator == parser.TOKEN_OR {
		left, err := e.Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		if node.Operator == parser.TOKEN_AND {
			if !left.Truthy() {
				return left, nil
			}
		} else {
			if left.Truthy() {
				return left, nil
			}
		}
		return e.Eval(node.Right, env)
	}

	left, err := e.Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right, env)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case parser.TOKEN_PLUS:
		return e.Add(left, right)
	case parser.TOKEN_MINUS:
		return e.Sub(left, right)
	case parser.TOKEN_STAR:
		return e.Mul(left, right)
	case parser.TOKEN_SLASH:
		return e.Div(left, right)
	case parser.TOKEN_PERCENT:
		return e.Mod(left, right)
	case parser.TOKEN_CARET:
		return e.Pow(left, right)
	case parser.TOKEN_CONCAT:
		return e.Concat(left, right)
	case parser.TOKEN_EQ:
		return e.Eq(left, right)
	case parser.TOKEN_NE:
		eq, err := e.Eq(left, right)
		if err != nil {
			return nil, err
		}
		return types.NewBool(!eq.Truthy()), nil
	case parser.TOKEN_LT:
		return e.Lt(left, right)
	case parser.TOKEN_LE:
		return e.Le(left, right)
	case parser.TOKEN_GT:
		return e.Lt(right, left)
	case parser.TOKEN_GE:
		return e.Le(right, left)
	default:
		return nil, types.NewRuntimeError(types.UnsupportedOperation, "unknown binary operator '%s'", node.Operator)
	}
}

// evalTableConstructor builds a table from a constructor expression.
// Positional fields append at successive integer indices starting at
// 1; the last positional field, if a call, spreads all its results.
func (e *Evaluator) evalTableConstructor(node *parser.TableExpr, env *Environment) (types.Value, error) {
	tbl := types.NewTable()
	nextIndex := 1

	for i, field := range node.Fields {
		if field.Key != nil {
			key, err := e.Eval(field.Key, env)
			if err != nil {
				return nil, err
			}
			if nanIndex(key) {
				return nil, types.NewRuntimeError(types.CannotIndex, "table index is nan")
			}
			val, err := e.Eval(field.Val, env)
			if err != nil {
				return nil, err
			}
			tbl.Set(key, val)
			continue
		}

		if i == len(node.Fields)-1 && parser.IsCall(field.Val) {
			vals, err := e.EvalMulti(field.Val, env)
			if err != nil {
				return nil, err
			}
			for _, val := range vals {
				tbl.Set(types.NewNumber(float64(nextIndex)), val)
				nextIndex++
			}
			continue
		}

		val, err := e.Eval(field.Val, env)
		if err != nil {
			return nil, err
		}
		tbl.Set(types.NewNumber(float64(nextIndex)), val)
		nextIndex++
	}

	return tbl, nil
}

// makeClosure captures the defining environment by reference
func (e *Evaluator) makeClosure(node *parser.FuncExpr, env *Environment) *types.Closure {
	return &types.Closure{
		Params:   node.Params,
		IsVararg: node.IsVararg,
		Body:     node.Body,
		Env:      env,
	}
}

// first returns the first of a value list, or nil if it is empty
func first(vals []types.Value) types.Value {
	if len(vals) == 0 {
		return types.Nil
	}
	return vals[0]
}
