package types

// TypeCode identifies the runtime kind of a Value
type TypeCode int

const (
	TYPE_NIL TypeCode = iota
	TYPE_BOOL
	TYPE_NUMBER
	TYPE_STR
	TYPE_TABLE
	TYPE_FUNC
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_NIL:
		return "nil"
	case TYPE_BOOL:
		return "boolean"
	case TYPE_NUMBER:
		return "number"
	case TYPE_STR:
		return "string"
	case TYPE_TABLE:
		return "table"
	case TYPE_FUNC:
		return "function"
	default:
		return "unknown"
	}
}
