package types

import (
	"strings"
	"unicode/utf8"
)

// StrValue represents an immutable string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the quoted literal representation
func (s StrValue) String() string {
	var result strings.Builder
	result.WriteByte('"')
	for i := 0; i < len(s.val); i++ {
		switch b := s.val[i]; b {
		case '"':
			result.WriteString("\\\"")
		case '\\':
			result.WriteString("\\\\")
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		default:
			result.WriteByte(b)
		}
	}
	result.WriteByte('"')
	return result.String()
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Truthy returns true; every string is truthy, including ""
func (s StrValue) Truthy() bool {
	return true
}

// Equal compares two values for equality (case-sensitive)
func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	if !ok {
		return false
	}
	return s.val == o.val
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}

// Len returns the character count
func (s StrValue) Len() int {
	return utf8.RuneCountInString(s.val)
}
