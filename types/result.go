package types

// ControlFlow represents the control flow state of statement execution
type ControlFlow int

const (
	FlowNormal ControlFlow = iota // Normal completion
	FlowBreak                     // Break statement
	FlowReturn                    // Return statement
)

// Result is the outcome of executing a statement. Break and return are
// not errors: they travel through this tagged outcome, and each consumer
// handles only the flow it understands. Loops catch FlowBreak, function
// activations catch FlowReturn, everything else passes the result along.
type Result struct {
	Flow ControlFlow
	Vals []Value // Result list carried by FlowReturn
}

// Ok creates a Result for normal completion
func Ok() Result {
	return Result{Flow: FlowNormal}
}

// Break creates a Result for a break statement
func Break() Result {
	return Result{Flow: FlowBreak}
}

// Return creates a Result carrying a return-value list
func Return(vals []Value) Result {
	return Result{Flow: FlowReturn, Vals: vals}
}

// IsNormal returns true if this is normal completion
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsBreak returns true if this is a break signal
func (r Result) IsBreak() bool {
	return r.Flow == FlowBreak
}

// IsReturn returns true if this is a return signal
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}
