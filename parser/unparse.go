package parser

import (
	"strings"

	"moonlet/types"
)

// UnparseBlock converts statements back to source, one statement per
// line with the explicit ';' separators the grammar requires.
func UnparseBlock(stmts []Stmt) string {
	return unparseBlock(stmts, 0)
}

func unparseBlock(stmts []Stmt, indent int) string {
	var lines []string
	for _, stmt := range stmts {
		lines = append(lines, unparseStmt(stmt, indent))
	}
	return strings.Join(lines, ";\n")
}

// UnparseExpr converts an expression back to source
func UnparseExpr(expr Expr) string {
	return unparseExpr(expr, PREC_LOWEST)
}

func unparseStmt(stmt Stmt, indent int) string {
	indentStr := strings.Repeat("  ", indent)

	switch s := stmt.(type) {
	case *CallStmt:
		return indentStr + unparseExpr(s.Call, PREC_LOWEST)

	case *AssignStmt:
		var targets, exprs []string
		for _, t := range s.Targets {
			targets = append(targets, unparseExpr(t, PREC_LOWEST))
		}
		for _, e := range s.Exprs {
			exprs = append(exprs, unparseExpr(e, PREC_LOWEST))
		}
		return indentStr + strings.Join(targets, ", ") + " = " + strings.Join(exprs, ", ")

	case *LocalStmt:
		out := indentStr + "local " + strings.Join(s.Names, ", ")
		if len(s.Exprs) > 0 {
			var exprs []string
			for _, e := range s.Exprs {
				exprs = append(exprs, unparseExpr(e, PREC_LOWEST))
			}
			out += " = " + strings.Join(exprs, ", ")
		}
		return out

	case *ReturnStmt:
		if len(s.Exprs) == 0 {
			return indentStr + "return"
		}
		var exprs []string
		for _, e := range s.Exprs {
			exprs = append(exprs, unparseExpr(e, PREC_LOWEST))
		}
		return indentStr + "return " + strings.Join(exprs, ", ")

	case *BreakStmt:
		return indentStr + "break"

	case *BlockStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "do\n")
		sb.WriteString(unparseBlock(s.Body, indent+1))
		sb.WriteString("\n" + indentStr + "end")
		return sb.String()

	case *WhileStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "while " + unparseExpr(s.Condition, PREC_LOWEST) + " do\n")
		sb.WriteString(unparseBlock(s.Body, indent+1))
		sb.WriteString("\n" + indentStr + "end")
		return sb.String()

	case *RepeatStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "repeat\n")
		sb.WriteString(unparseBlock(s.Body, indent+1))
		sb.WriteString("\n" + indentStr + "until " + unparseExpr(s.Condition, PREC_LOWEST))
		return sb.String()

	case *IfStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "if " + unparseExpr(s.Condition, PREC_LOWEST) + " then\n")
		sb.WriteString(unparseBlock(s.Body, indent+1) + "\n")
		for _, elseif := range s.ElseIfs {
			sb.WriteString(indentStr + "elseif " + unparseExpr(elseif.Condition, PREC_LOWEST) + " then\n")
			sb.WriteString(unparseBlock(elseif.Body, indent+1) + "\n")
		}
		if len(s.Else) > 0 {
			sb.WriteString(indentStr + "else\n")
			sb.WriteString(unparseBlock(s.Else, indent+1) + "\n")
		}
		sb.WriteString(indentStr + "end")
		return sb.String()

	case *NumericForStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "for " + s.Name + " = " + unparseExpr(s.Start, PREC_LOWEST) + ", " + unparseExpr(s.Stop, PREC_LOWEST))
		if s.Step != nil {
			sb.WriteString(", " + unparseExpr(s.Step, PREC_LOWEST))
		}
		sb.WriteString(" do\n")
		sb.WriteString(unparseBlock(s.Body, indent+1))
		sb.WriteString("\n" + indentStr + "end")
		return sb.String()

	case *GenericForStmt:
		var sb strings.Builder
		var exprs []string
		for _, e := range s.Exprs {
			exprs = append(exprs, unparseExpr(e, PREC_LOWEST))
		}
		sb.WriteString(indentStr + "for " + strings.Join(s.Names, ", ") + " in " + strings.Join(exprs, ", ") + " do\n")
		sb.WriteString(unparseBlock(s.Body, indent+1))
		sb.WriteString("\n" + indentStr + "end")
		return sb.String()

	case *FuncDefStmt:
		return indentStr + "function " + strings.Join(s.Names, ".") + unparseFuncBody(s.Fn, indent, false)

	case *MethDefStmt:
		return indentStr + "function " + strings.Join(s.Names, ".") + ":" + s.Method + unparseFuncBody(s.Fn, indent, true)

	case *LocalFuncStmt:
		return indentStr + "local function " + s.Name + unparseFuncBody(s.Fn, indent, false)

	default:
		return indentStr + "--[[ unknown statement ]]"
	}
}

// unparseFuncBody renders (params) body end
func unparseFuncBody(fn *FuncExpr, indent int, isMethod bool) string {
	indentStr := strings.Repeat("  ", indent)

	params := fn.Params
	if isMethod && len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	var parts []string
	parts = append(parts, params...)
	if fn.IsVararg {
		parts = append(parts, "...")
	}

	var sb strings.Builder
	sb.WriteString("(" + strings.Join(parts, ", ") + ")\n")
	sb.WriteString(unparseBlock(fn.Body, indent+1))
	sb.WriteString("\n" + indentStr + "end")
	return sb.String()
}

// unparseExpr renders an expression, parenthesizing when the parent
// context binds tighter than the expression's own operator.
func unparseExpr(expr Expr, parentPrec int) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value.String()

	case *VarExpr:
		return e.Name

	case *VarargExpr:
		return "..."

	case *UnaryExpr:
		operand := unparseExpr(e.Operand, precUnary)
		op := e.Operator.String()
		if e.Operator == TOKEN_NOT {
			op = "not "
		}
		if parentPrec >= precUnary {
			return "(" + op + operand + ")"
		}
		return op + operand

	case *BinaryExpr:
		prec := binaryPrec[e.Operator]
		leftLimit := prec.left - 1
		if prec.right < prec.left {
			// Right-associative: a left-nested chain needs parens
			leftLimit = prec.left
		}
		left := unparseExpr(e.Left, leftLimit)
		right := unparseExpr(e.Right, prec.right)
		out := left + " " + e.Operator.String() + " " + right
		if prec.left <= parentPrec {
			return "(" + out + ")"
		}
		return out

	case *IndexExpr:
		object := unparseExpr(e.Object, precUnary)
		if lit, ok := e.Key.(*LiteralExpr); ok {
			if str, ok := lit.Value.(types.StrValue); ok && isName(str.Value()) {
				return object + "." + str.Value()
			}
		}
		return object + "[" + unparseExpr(e.Key, PREC_LOWEST) + "]"

	case *CallExpr:
		return unparseExpr(e.Fn, precUnary) + "(" + unparseExprList(e.Args) + ")"

	case *MethodCallExpr:
		return unparseExpr(e.Receiver, precUnary) + ":" + e.Method + "(" + unparseExprList(e.Args) + ")"

	case *FuncExpr:
		return "function" + unparseFuncBody(e, 0, false)

	case *TableExpr:
		var parts []string
		for _, f := range e.Fields {
			switch {
			case f.Key == nil:
				parts = append(parts, unparseExpr(f.Val, PREC_LOWEST))
			default:
				key := "[" + unparseExpr(f.Key, PREC_LOWEST) + "]"
				if lit, ok := f.Key.(*LiteralExpr); ok {
					if str, ok := lit.Value.(types.StrValue); ok && isName(str.Value()) {
						key = str.Value()
					}
				}
				parts = append(parts, key+" = "+unparseExpr(f.Val, PREC_LOWEST))
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return "--[[ unknown expression ]]"
	}
}

func unparseExprList(exprs []Expr) string {
	var parts []string
	for _, e := range exprs {
		parts = append(parts, unparseExpr(e, PREC_LOWEST))
	}
	return strings.Join(parts, ", ")
}

// isName reports whether s is usable as a bare identifier
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !isLetter(ch) && !(i > 0 && isDigit(ch)) {
			return false
		}
	}
	return LookupKeyword(s) == TOKEN_NAME
}
