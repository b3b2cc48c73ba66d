package types

// Value is the interface all runtime values implement
type Value interface {
	Type() TypeCode
	String() string   // Literal representation
	Equal(Value) bool // Raw equality, no metamethods
	Truthy() bool     // Everything except nil and false
}

// Function is implemented by callable values (closures and builtins)
type Function interface {
	Value
	funcValue()
}

// IsNil reports whether a value is nil or the Nil value
func IsNil(v Value) bool {
	if v == nil {
		return true
	}
	return v.Type() == TYPE_NIL
}

// IsCallable reports whether a value can be called directly
func IsCallable(v Value) bool {
	_, ok := v.(Function)
	return ok
}

// ToString returns the display form of a value, as produced by
// concatenation and by a host print function. Unlike String(), strings
// appear without quotes and numbers use their canonical form.
func ToString(v Value) string {
	switch val := v.(type) {
	case StrValue:
		return val.Value()
	default:
		return v.String()
	}
}
