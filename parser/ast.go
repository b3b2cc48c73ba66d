package parser

import "moonlet/types"

// Node is the base interface for all AST nodes. Nodes are immutable
// once parsed; the tree owns them, and closures may share blocks
// read-only after capture.
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// ---------------------------------------------------------------------------
// Expressions

// LiteralExpr wraps a constant value (nil, boolean, number, string)
type LiteralExpr struct {
	Pos   Position
	Value types.Value
}

func (e *LiteralExpr) Position() Position { return e.Pos }
func (e *LiteralExpr) exprNode()          {}

// VarExpr represents a variable reference
type VarExpr struct {
	Pos  Position
	Name string
}

func (e *VarExpr) Position() Position { return e.Pos }
func (e *VarExpr) exprNode()          {}

// VarargExpr represents the varargs name "..."
type VarargExpr struct {
	Pos Position
}

func (e *VarargExpr) Position() Position { return e.Pos }
func (e *VarargExpr) exprNode()          {}

// UnaryExpr represents a unary operation: not, #, -
type UnaryExpr struct {
	Pos      Position
	Operator TokenType
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// IndexExpr represents indexing: expr[key]. Dot access a.b is sugar
// for a["b"] and parses to the same node.
type IndexExpr struct {
	Pos    Position
	Object Expr
	Key    Expr
}

func (e *IndexExpr) Position() Position { return e.Pos }
func (e *IndexExpr) exprNode()          {}

// CallExpr represents a direct call: expr(args)
type CallExpr struct {
	Pos  Position
	Fn   Expr
	Args []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// MethodCallExpr represents a method call: receiver:name(args).
// The receiver is evaluated once, name is resolved by indexing, and
// the receiver is prepended to the argument list.
type MethodCallExpr struct {
	Pos      Position
	Receiver Expr
	Method   string
	Args     []Expr
}

func (e *MethodCallExpr) Position() Position { return e.Pos }
func (e *MethodCallExpr) exprNode()          {}

// FuncExpr represents a function literal
type FuncExpr struct {
	Pos      Position
	Params   []string
	IsVararg bool
	Body     []Stmt
}

func (e *FuncExpr) Position() Position { return e.Pos }
func (e *FuncExpr) exprNode()          {}

// TableField is one field of a table constructor. Key is nil for a
// positional (array-style) field.
type TableField struct {
	Key Expr
	Val Expr
}

// TableExpr represents a table constructor
type TableExpr struct {
	Pos    Position
	Fields []TableField
}

func (e *TableExpr) Position() Position { return e.Pos }
func (e *TableExpr) exprNode()          {}

// IsCall reports whether an expression is a call; only a trailing call
// in an expression list contributes more than one value.
func IsCall(e Expr) bool {
	switch e.(type) {
	case *CallExpr, *MethodCallExpr:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Statements

// BlockStmt represents do ... end
type BlockStmt struct {
	Pos  Position
	Body []Stmt
}

func (s *BlockStmt) Position() Position { return s.Pos }
func (s *BlockStmt) stmtNode()          {}

// WhileStmt represents while exp do ... end
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}

// RepeatStmt represents repeat ... until exp. The condition is
// evaluated in the scope of the loop body.
type RepeatStmt struct {
	Pos       Position
	Body      []Stmt
	Condition Expr
}

func (s *RepeatStmt) Position() Position { return s.Pos }
func (s *RepeatStmt) stmtNode()          {}

// ElseIfClause is one elseif arm of an if statement
type ElseIfClause struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

// IfStmt represents if/elseif/else/end
type IfStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
	ElseIfs   []*ElseIfClause
	Else      []Stmt // Can be nil
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}

// NumericForStmt represents for Name = start, stop [, step] do ... end
type NumericForStmt struct {
	Pos   Position
	Name  string
	Start Expr
	Stop  Expr
	Step  Expr // Can be nil (defaults to 1)
	Body  []Stmt
}

func (s *NumericForStmt) Position() Position { return s.Pos }
func (s *NumericForStmt) stmtNode()          {}

// GenericForStmt represents for namelist in explist do ... end
type GenericForStmt struct {
	Pos   Position
	Names []string
	Exprs []Expr
	Body  []Stmt
}

func (s *GenericForStmt) Position() Position { return s.Pos }
func (s *GenericForStmt) stmtNode()          {}

// FuncDefStmt represents function Name{.Name} (params) ... end.
// A single name binds in the current scope; a dotted chain assigns
// into the table reached by indexing through the leading names.
type FuncDefStmt struct {
	Pos   Position
	Names []string
	Fn    *FuncExpr
}

func (s *FuncDefStmt) Position() Position { return s.Pos }
func (s *FuncDefStmt) stmtNode()          {}

// MethDefStmt represents function Name{.Name}:Method (params) ... end.
// The declared function receives an implicit leading self parameter.
type MethDefStmt struct {
	Pos    Position
	Names  []string
	Method string
	Fn     *FuncExpr
}

func (s *MethDefStmt) Position() Position { return s.Pos }
func (s *MethDefStmt) stmtNode()          {}

// LocalFuncStmt represents local function Name (params) ... end.
// The name is bound before the body parses values, so the function
// can call itself.
type LocalFuncStmt struct {
	Pos  Position
	Name string
	Fn   *FuncExpr
}

func (s *LocalFuncStmt) Position() Position { return s.Pos }
func (s *LocalFuncStmt) stmtNode()          {}

// LocalStmt represents local namelist [= explist]
type LocalStmt struct {
	Pos   Position
	Names []string
	Exprs []Expr // Can be nil
}

func (s *LocalStmt) Position() Position { return s.Pos }
func (s *LocalStmt) stmtNode()          {}

// ReturnStmt represents return [explist]
type ReturnStmt struct {
	Pos   Position
	Exprs []Expr // Can be nil
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// BreakStmt represents break
type BreakStmt struct {
	Pos Position
}

func (s *BreakStmt) Position() Position { return s.Pos }
func (s *BreakStmt) stmtNode()          {}

// AssignStmt represents varlist = explist. Targets are VarExpr or
// IndexExpr nodes; values bind positionally, missing values fill with
// nil and extras are discarded.
type AssignStmt struct {
	Pos     Position
	Targets []Expr
	Exprs   []Expr
}

func (s *AssignStmt) Position() Position { return s.Pos }
func (s *AssignStmt) stmtNode()          {}

// CallStmt represents a bare call used as a statement
type CallStmt struct {
	Pos  Position
	Call Expr // *CallExpr or *MethodCallExpr
}

func (s *CallStmt) Position() Position { return s.Pos }
func (s *CallStmt) stmtNode()          {}
