package eval

import (
	"math"

	"moonlet/types"
)

// numeric pattern-matches an operand pair of two numbers
func numeric(a, b types.Value) (float64, float64, bool) {
	an, ok := a.(types.NumberValue)
	if !ok {
		return 0, 0, false
	}
	bn, ok := b.(types.NumberValue)
	if !ok {
		return 0, 0, false
	}
	return an.Val, bn.Val, true
}

// dispatch resolves a binary metamethod, checking the left operand's
// metatable first and the right one second, and reduces the handler
// call to a single value
func (e *Evaluator) dispatch(event string, a, b types.Value) (types.Value, error) {
	handler := e.metamethod(a, event)
	if handler == nil {
		handler = e.metamethod(b, event)
	}
	if handler == nil {
		return nil, types.NewRuntimeError(types.UnsupportedOperation,
			"cannot apply '%s' to %s and %s", event, a.Type(), b.Type())
	}
	return e.CallOne(handler, a, b)
}

// Add evaluates a + b
func (e *Evaluator) Add(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewNumber(x + y), nil
	}
	return e.dispatch("__add", a, b)
}

// Sub evaluates a - b
func (e *Evaluator) Sub(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewNumber(x - y), nil
	}
	return e.dispatch("__sub", a, b)
}

// Mul evaluates a * b
func (e *Evaluator) Mul(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewNumber(x * y), nil
	}
	return e.dispatch("__mul", a, b)
}

// Div evaluates a / b. Division by zero follows IEEE 754 and yields
// an infinity or nan rather than an error.
func (e *Evaluator) Div(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewNumber(x / y), nil
	}
	return e.dispatch("__div", a, b)
}

// Mod evaluates a % b as a floored modulo, so the result takes the
// sign of the divisor: -5 % 3 is 1, not -2
func (e *Evaluator) Mod(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewNumber(x - math.Floor(x/y)*y), nil
	}
	return e.dispatch("__mod", a, b)
}

// Pow evaluates a ^ b
func (e *Evaluator) Pow(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewNumber(math.Pow(x, y)), nil
	}
	return e.dispatch("__pow", a, b)
}

// Neg evaluates unary minus
func (e *Evaluator) Neg(a types.Value) (types.Value, error) {
	if n, ok := a.(types.NumberValue); ok {
		return types.NewNumber(-n.Val), nil
	}
	handler := e.metamethod(a, "__unm")
	if handler == nil {
		return nil, types.NewRuntimeError(types.UnsupportedOperation,
			"cannot negate %s", a.Type())
	}
	return e.CallOne(handler, a)
}

// Concat evaluates a .. b. Numbers participate through their
// canonical printed form; anything else falls to __concat.
func (e *Evaluator) Concat(a, b types.Value) (types.Value, error) {
	as, aok := concatText(a)
	bs, bok := concatText(b)
	if aok && bok {
		return types.NewStr(as + bs), nil
	}
	return e.dispatch("__concat", a, b)
}

// concatText returns the concatenation form of a string or number
func concatText(v types.Value) (string, bool) {
	switch t := v.(type) {
	case types.StrValue:
		return t.Value(), true
	case types.NumberValue:
		return t.String(), true
	default:
		return "", false
	}
}

// Len evaluates the # operator. Strings count runes; a __len handler
// takes precedence on anything else; tables without one report their
// border length.
func (e *Evaluator) Len(a types.Value) (types.Value, error) {
	if s, ok := a.(types.StrValue); ok {
		return types.NewNumber(float64(s.Len())), nil
	}
	if handler := e.metamethod(a, "__len"); handler != nil {
		return e.CallOne(handler, a)
	}
	if tbl, ok := a.(*types.TableValue); ok {
		return types.NewNumber(float64(tbl.Len())), nil
	}
	return nil, types.NewRuntimeError(types.CannotApplyLength,
		"cannot apply '#' to %s", a.Type())
}

// Eq evaluates a == b. Raw equality settles it for everything except
// a pair of tables whose metatables agree on an __eq handler; the
// handler's result reduces to a boolean by truthiness. Values of
// different types are never equal and never consult a handler.
func (e *Evaluator) Eq(a, b types.Value) (types.Value, error) {
	if a.Equal(b) {
		return types.NewBool(true), nil
	}
	if a.Type() != b.Type() || a.Type() != types.TYPE_TABLE {
		return types.NewBool(false), nil
	}

	handler := e.metamethod(a, "__eq")
	if handler == nil || !handler.Equal(e.metamethod(b, "__eq")) {
		return types.NewBool(false), nil
	}
	res, err := e.CallOne(handler, a, b)
	if err != nil {
		return nil, err
	}
	return types.NewBool(res.Truthy()), nil
}

// Lt evaluates a < b. Numbers compare numerically, strings
// lexicographically; mixed or other pairs need an __lt handler.
func (e *Evaluator) Lt(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewBool(x < y), nil
	}
	if as, ok := a.(types.StrValue); ok {
		if bs, ok := b.(types.StrValue); ok {
			return types.NewBool(as.Value() < bs.Value()), nil
		}
	}
	res, err := e.dispatch("__lt", a, b)
	if err != nil {
		return nil, err
	}
	return types.NewBool(res.Truthy()), nil
}

// Le evaluates a <= b. When only __lt is defined, a <= b falls back
// to not (b < a).
func (e *Evaluator) Le(a, b types.Value) (types.Value, error) {
	if x, y, ok := numeric(a, b); ok {
		return types.NewBool(x <= y), nil
	}
	if as, ok := a.(types.StrValue); ok {
		if bs, ok := b.(types.StrValue); ok {
			return types.NewBool(as.Value() <= bs.Value()), nil
		}
	}

	handler := e.metamethod(a, "__le")
	if handler == nil {
		handler = e.metamethod(b, "__le")
	}
	if handler != nil {
		res, err := e.CallOne(handler, a, b)
		if err != nil {
			return nil, err
		}
		return types.NewBool(res.Truthy()), nil
	}

	lt, err := e.Lt(b, a)
	if err != nil {
		return nil, err
	}
	return types.NewBool(!lt.Truthy()), nil
}
