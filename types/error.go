package types

import "fmt"

// ErrorCode classifies runtime errors raised by the value model and the
// evaluator. Syntax errors are a separate family in the parser package.
type ErrorCode int

const (
	UnsupportedOperation ErrorCode = iota + 1 // No native semantics and no metamethod
	CannotApplyLength                         // # on a value with no length
	CannotIndex                               // Indexing with no __index path
	NotCallable                               // Calling a non-function
	UnboundVariable                           // Read or assignment of an unknown name
	BadForBounds                              // Numeric for with non-number bounds
)

// String returns the name of the error code
func (c ErrorCode) String() string {
	switch c {
	case UnsupportedOperation:
		return "OperationUnsupported"
	case CannotApplyLength:
		return "CannotApplyLength"
	case CannotIndex:
		return "CannotIndex"
	case NotCallable:
		return "NotCallable"
	case UnboundVariable:
		return "UnboundVariable"
	case BadForBounds:
		return "BadForBounds"
	default:
		return "Unknown"
	}
}

// RuntimeError is a fault raised during evaluation. It aborts the
// current script run and surfaces to the host; the core never recovers.
type RuntimeError struct {
	Code ErrorCode
	Msg  string
}

// NewRuntimeError creates a runtime error with a formatted message
func NewRuntimeError(code ErrorCode, format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}
