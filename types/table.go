package types

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// tableEntry stores a key-value pair
type tableEntry struct {
	key Value
	val Value
}

// keyHash converts a value to a string key for Go map lookup.
// Scalar keys hash by value; tables and functions hash by identity.
func keyHash(v Value) string {
	switch k := v.(type) {
	case StrValue:
		return "s:" + k.Value()
	case NumberValue:
		if k.Val == 0 {
			// -0 == 0, so both must land in the same slot
			return "n:0"
		}
		return "n:" + k.String()
	case BoolValue:
		return "b:" + k.String()
	case *TableValue:
		return fmt.Sprintf("t:%p", k)
	case *Closure:
		return fmt.Sprintf("f:%p", k)
	case *Builtin:
		return fmt.Sprintf("f:%p", k)
	default:
		return "?:" + v.String()
	}
}

// isNanKey reports whether a key is a nan number. Nan never equals
// itself, so it can never be looked up again.
func isNanKey(v Value) bool {
	n, ok := v.(NumberValue)
	return ok && math.IsNaN(n.Val)
}

// TableValue represents a mutable table with an optional metatable.
// Tables are compared and shared by reference.
type TableValue struct {
	entries map[string]tableEntry
	meta    *TableValue
}

// NewTable creates an empty table
func NewTable() *TableValue {
	return &TableValue{entries: make(map[string]tableEntry)}
}

// Type returns the type code for tables
func (t *TableValue) Type() TypeCode {
	return TYPE_TABLE
}

// String returns a shallow literal representation.
// Nested tables are abbreviated so cyclic tables stay printable.
func (t *TableValue) String() string {
	if len(t.entries) == 0 {
		return "{}"
	}
	var parts []string
	for _, e := range t.entries {
		val := "{...}"
		if e.val.Type() != TYPE_TABLE {
			val = e.val.String()
		}
		parts = append(parts, fmt.Sprintf("[%s] = %s", e.key.String(), val))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal compares by identity
func (t *TableValue) Equal(other Value) bool {
	o, ok := other.(*TableValue)
	return ok && o == t
}

// Truthy returns true; every table is truthy
func (t *TableValue) Truthy() bool {
	return true
}

// Get returns the value for a key. A missing key reads as (nil, false);
// nil-valued entries never exist (Set removes them).
func (t *TableValue) Get(key Value) (Value, bool) {
	if IsNil(key) {
		return Nil, false
	}
	if e, ok := t.entries[keyHash(key)]; ok {
		return e.val, true
	}
	return Nil, false
}

// Set stores a key-value pair in place. Assigning nil removes the
// entry. Nil and nan keys are never stored; the evaluator rejects a
// nan index before it gets here.
func (t *TableValue) Set(key, val Value) {
	if IsNil(key) || isNanKey(key) {
		return
	}
	if IsNil(val) {
		delete(t.entries, keyHash(key))
		return
	}
	t.entries[keyHash(key)] = tableEntry{key: key, val: val}
}

// Len returns the table border: the largest n such that keys 1..n are
// all present and n+1 is absent, found by scanning forward from 1.
// For a sparse table this is not the entry count.
func (t *TableValue) Len() int {
	n := 0
	for {
		if _, ok := t.Get(NewNumber(float64(n + 1))); !ok {
			return n
		}
		n++
	}
}

// Size returns the number of entries, whatever their keys
func (t *TableValue) Size() int {
	return len(t.entries)
}

// Pairs returns all key-value pairs in unspecified order
func (t *TableValue) Pairs() [][2]Value {
	pairs := make([][2]Value, 0, len(t.entries))
	for _, e := range t.entries {
		pairs = append(pairs, [2]Value{e.key, e.val})
	}
	return pairs
}

// Meta returns the metatable, or nil if none is attached
func (t *TableValue) Meta() *TableValue {
	return t.meta
}

// SetMeta attaches (or with nil, detaches) the metatable
func (t *TableValue) SetMeta(meta *TableValue) {
	t.meta = meta
}
