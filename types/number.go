package types

import (
	"math"
	"strconv"
)

// NumberValue represents a double-precision number
type NumberValue struct {
	Val float64
}

// NewNumber creates a new NumberValue
func NewNumber(val float64) NumberValue {
	return NumberValue{Val: val}
}

// Type returns the type code for numbers
func (n NumberValue) Type() TypeCode {
	return TYPE_NUMBER
}

// String returns the canonical representation.
// Integral values print without a decimal point (7, not 7.0).
func (n NumberValue) String() string {
	if math.IsNaN(n.Val) {
		return "nan"
	}
	if math.IsInf(n.Val, 1) {
		return "inf"
	}
	if math.IsInf(n.Val, -1) {
		return "-inf"
	}
	if n.Val == math.Trunc(n.Val) && math.Abs(n.Val) < 1e15 {
		return strconv.FormatFloat(n.Val, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// Equal checks equality; NaN never equals itself (IEEE 754)
func (n NumberValue) Equal(other Value) bool {
	otherNum, ok := other.(NumberValue)
	if !ok {
		return false
	}
	return n.Val == otherNum.Val
}

// Truthy returns true; every number is truthy, including 0
func (n NumberValue) Truthy() bool {
	return true
}

// IsInt reports whether the number holds an integral value
func (n NumberValue) IsInt() bool {
	return n.Val == math.Trunc(n.Val) && !math.IsInf(n.Val, 0)
}
