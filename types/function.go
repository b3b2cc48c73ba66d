package types

import "fmt"

// Closure is a user-defined function: its parameter names, the AST block
// of its body, and the environment captured at definition. Body and Env
// are held as opaque references to avoid a dependency cycle with the
// parser and eval packages; the evaluator owns the concrete types.
// A closure is immutable once created and compared by identity.
type Closure struct {
	Params   []string
	IsVararg bool
	Body     any // []parser.Stmt
	Env      any // *eval.Environment
}

// Type returns the type code for functions
func (c *Closure) Type() TypeCode {
	return TYPE_FUNC
}

// String returns the display representation
func (c *Closure) String() string {
	return fmt.Sprintf("function: %p", c)
}

// Equal compares by identity
func (c *Closure) Equal(other Value) bool {
	o, ok := other.(*Closure)
	return ok && o == c
}

// Truthy returns true; every function is truthy
func (c *Closure) Truthy() bool {
	return true
}

func (c *Closure) funcValue() {}

// BuiltinFunc is the signature of a host-supplied function: an ordered
// argument list in, an ordered result list out.
type BuiltinFunc func(args []Value) ([]Value, error)

// Builtin is a callable supplied by the host. It captures no environment.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// NewBuiltin creates a host function value
func NewBuiltin(name string, fn BuiltinFunc) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

// Type returns the type code for functions
func (b *Builtin) Type() TypeCode {
	return TYPE_FUNC
}

// String returns the display representation
func (b *Builtin) String() string {
	return fmt.Sprintf("function: builtin %s", b.Name)
}

// Equal compares by identity
func (b *Builtin) Equal(other Value) bool {
	o, ok := other.(*Builtin)
	return ok && o == b
}

// Truthy returns true
func (b *Builtin) Truthy() bool {
	return true
}

func (b *Builtin) funcValue() {}
