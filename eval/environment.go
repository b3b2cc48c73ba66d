package eval

import "moonlet/types"

// Environment manages variable bindings with lexical scoping.
// Environments form a chain: lookups and updates walk from the current
// frame outward. A new frame is created per function activation and
// per loop iteration that introduces a loop variable, so closures made
// in different iterations capture distinct bindings.
type Environment struct {
	vars   map[string]types.Value
	parent *Environment
}

// NewEnvironment creates a root environment. The host binds its
// global builtins here with Define; the core supplies none.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]types.Value)}
}

// NewNestedEnvironment creates an environment with a parent scope
func NewNestedEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]types.Value),
		parent: parent,
	}
}

// Get looks up a name, walking from the current frame outward.
// Returns (value, true) if found, (nil, false) if not.
func (e *Environment) Get(name string) (types.Value, bool) {
	if val, ok := e.vars[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Define introduces or overwrites a name in the current frame,
// shadowing any same-named binding in an enclosing one.
func (e *Environment) Define(name string, value types.Value) {
	e.vars[name] = value
}

// Assign mutates the nearest enclosing frame that already has the
// name. There is no implicit global creation: assigning a name no
// frame holds is a hard error.
func (e *Environment) Assign(name string, value types.Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return nil
		}
	}
	return types.NewRuntimeError(types.UnboundVariable, "assignment to unbound variable '%s'", name)
}
