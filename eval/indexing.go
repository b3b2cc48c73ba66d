package eval

import (
	"math"

	"moonlet/types"
)

// Index reads object[key], honoring __index. A raw hit on a table
// wins; otherwise a callable handler is invoked with (object, key)
// and a table handler re-enters the lookup, so chains of prototype
// tables resolve naturally.
func (e *Evaluator) Index(object, key types.Value) (types.Value, error) {
	if tbl, ok := object.(*types.TableValue); ok {
		if val, found := tbl.Get(key); found {
			return val, nil
		}
	}

	handler := e.metamethod(object, "__index")
	if handler == nil {
		if object.Type() == types.TYPE_TABLE {
			return types.Nil, nil
		}
		return nil, types.NewRuntimeError(types.CannotIndex,
			"cannot index %s value", object.Type())
	}

	if types.IsCallable(handler) {
		return e.CallOne(handler, object, key)
	}
	return e.Index(handler, key)
}

// SetIndex writes object[key] = val, honoring __newindex. A raw hit
// on the table itself writes in place; a missing key consults the
// handler, callable handlers receive (object, key, val) and table
// handlers re-enter the store.
func (e *Evaluator) SetIndex(object, key, val types.Value) error {
	tbl, isTable := object.(*types.TableValue)
	if isTable {
		if _, found := tbl.Get(key); found {
			tbl.Set(key, val)
			return nil
		}
	}

	handler := e.metamethod(object, "__newindex")
	if handler == nil {
		if isTable {
			if nanIndex(key) {
				return types.NewRuntimeError(types.CannotIndex, "table index is nan")
			}
			tbl.Set(key, val)
			return nil
		}
		return types.NewRuntimeError(types.CannotIndex,
			"cannot index %s value", object.Type())
	}

	if types.IsCallable(handler) {
		_, err := e.Call(handler, []types.Value{object, key, val})
		return err
	}
	return e.SetIndex(handler, key, val)
}

// nanIndex reports whether a key is a nan number, which no table can
// store
func nanIndex(key types.Value) bool {
	n, ok := key.(types.NumberValue)
	return ok && math.IsNaN(n.Val)
}
