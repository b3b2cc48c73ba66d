package types

// NilValue represents the nil value
type NilValue struct{}

// Nil is the shared nil value
var Nil = NilValue{}

// Type returns the type code for nil
func (n NilValue) Type() TypeCode {
	return TYPE_NIL
}

// String returns the literal representation
func (n NilValue) String() string {
	return "nil"
}

// Equal checks equality; nil only equals nil
func (n NilValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	return other.Type() == TYPE_NIL
}

// Truthy returns false; nil is never truthy
func (n NilValue) Truthy() bool {
	return false
}
