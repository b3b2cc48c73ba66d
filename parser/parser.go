package parser

import (
	"strconv"

	"moonlet/types"
)

// Parser is a recursive-descent, precedence-climbing parser consuming
// one Lexer.
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser over the given source text
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// Operator precedence. Each binary operator carries a left and right
// binding power; right-associative operators (.. and ^) bind their
// right operand one level looser than their left.
type opPrec struct {
	left, right int
}

var binaryPrec = map[TokenType]opPrec{
	TOKEN_OR:      {1, 1},
	TOKEN_AND:     {2, 2},
	TOKEN_LT:      {3, 3},
	TOKEN_GT:      {3, 3},
	TOKEN_LE:      {3, 3},
	TOKEN_GE:      {3, 3},
	TOKEN_NE:      {3, 3},
	TOKEN_EQ:      {3, 3},
	TOKEN_CONCAT:  {5, 4},
	TOKEN_PLUS:    {6, 6},
	TOKEN_MINUS:   {6, 6},
	TOKEN_STAR:    {7, 7},
	TOKEN_SLASH:   {7, 7},
	TOKEN_PERCENT: {7, 7},
	TOKEN_CARET:   {10, 9},
}

const (
	PREC_LOWEST = 0
	precUnary   = 8 // not # - (exponent binds tighter)
)

// ParseExpression parses an expression whose binary operators all bind
// tighter than limit. A leading unary operator is always accepted, so
// the right operand of ^ may begin with one (2^-3).
func (p *Parser) ParseExpression(limit int) (Expr, error) {
	var left Expr
	var err error

	switch p.current.Type {
	case TOKEN_NOT, TOKEN_HASH, TOKEN_MINUS:
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		operand, err := p.ParseExpression(precUnary)
		if err != nil {
			return nil, err
		}
		left = &UnaryExpr{Pos: pos, Operator: op, Operand: operand}
	default:
		left, err = p.parseSimpleExpr()
		if err != nil {
			return nil, err
		}
	}

	for {
		prec, ok := binaryPrec[p.current.Type]
		if !ok || prec.left <= limit {
			break
		}
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		right, err := p.ParseExpression(prec.right)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Pos: pos, Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseSimpleExpr parses literals, varargs, function literals, table
// constructors, and prefix expressions with their postfix chains.
func (p *Parser) parseSimpleExpr() (Expr, error) {
	pos := p.current.Position

	switch p.current.Type {
	case TOKEN_NIL:
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.Nil}, nil
	case TOKEN_TRUE:
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.NewBool(true)}, nil
	case TOKEN_FALSE:
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.NewBool(false)}, nil
	case TOKEN_NUMBER:
		val, err := strconv.ParseFloat(p.current.Value, 64)
		if err != nil {
			return nil, p.errorf("malformed number '%s'", p.current.Value)
		}
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.NewNumber(val)}, nil
	case TOKEN_STRING:
		lit := p.current.Literal
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.NewStr(lit)}, nil
	case TOKEN_ELLIPSIS:
		p.nextToken()
		return &VarargExpr{Pos: pos}, nil
	case TOKEN_FUNCTION:
		p.nextToken()
		return p.parseFuncBody(pos, false)
	case TOKEN_LBRACE:
		return p.parseTableConstructor()
	case TOKEN_NAME, TOKEN_LPAREN:
		return p.parseSuffixedExpr()
	case TOKEN_ILLEGAL:
		return nil, p.errorf("unexpected character '%s'", p.current.Value)
	default:
		return nil, p.errorf("unexpected token '%s'", p.describeCurrent())
	}
}

// parseSuffixedExpr parses a primary expression (name or parenthesized
// expression) followed by any chain of indexing, field access, method
// calls, and direct calls, all left-associating.
func (p *Parser) parseSuffixedExpr() (Expr, error) {
	var expr Expr

	switch p.current.Type {
	case TOKEN_NAME:
		expr = &VarExpr{Pos: p.current.Position, Name: p.current.Value}
		p.nextToken()
	case TOKEN_LPAREN:
		p.nextToken()
		inner, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_RPAREN); err != nil {
			return nil, err
		}
		// No paren node: (f()) remains a call expression
		expr = inner
	default:
		return nil, p.errorf("unexpected token '%s'", p.describeCurrent())
	}

	for {
		pos := p.current.Position
		switch p.current.Type {
		case TOKEN_LBRACKET:
			p.nextToken()
			key, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TOKEN_RBRACKET); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Pos: pos, Object: expr, Key: key}
		case TOKEN_DOT:
			p.nextToken()
			name, err := p.expect(TOKEN_NAME)
			if err != nil {
				return nil, err
			}
			expr = &IndexExpr{Pos: pos, Object: expr, Key: &LiteralExpr{Pos: name.Position, Value: types.NewStr(name.Value)}}
		case TOKEN_COLON:
			p.nextToken()
			name, err := p.expect(TOKEN_NAME)
			if err != nil {
				return nil, err
			}
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &MethodCallExpr{Pos: pos, Receiver: expr, Method: name.Value, Args: args}
		case TOKEN_LPAREN:
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &CallExpr{Pos: pos, Fn: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

// parseCallArgs parses a parenthesized argument list
func (p *Parser) parseCallArgs() ([]Expr, error) {
	if _, err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	if p.current.Type == TOKEN_RPAREN {
		p.nextToken()
		return nil, nil
	}
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseExprList parses one or more comma-separated expressions
func (p *Parser) parseExprList() ([]Expr, error) {
	var exprs []Expr
	for {
		expr, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if p.current.Type != TOKEN_COMMA {
			return exprs, nil
		}
		p.nextToken()
	}
}

// parseFuncBody parses (params) block end, for both function literals
// and function statements. isMethod prepends the implicit self.
func (p *Parser) parseFuncBody(pos Position, isMethod bool) (*FuncExpr, error) {
	if _, err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}

	var params []string
	if isMethod {
		params = append(params, "self")
	}
	vararg := false
	for p.current.Type != TOKEN_RPAREN {
		if vararg {
			return nil, p.errorf("'...' must be the last parameter")
		}
		switch p.current.Type {
		case TOKEN_NAME:
			params = append(params, p.current.Value)
			p.nextToken()
		case TOKEN_ELLIPSIS:
			vararg = true
			p.nextToken()
		default:
			return nil, p.errorf("expected parameter name, got '%s'", p.describeCurrent())
		}
		if p.current.Type == TOKEN_COMMA {
			p.nextToken()
			if p.current.Type == TOKEN_RPAREN {
				return nil, p.errorf("expected parameter name, got ')'")
			}
		}
	}
	p.nextToken() // consume ')'

	body, err := p.parseBlock(TOKEN_END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_END); err != nil {
		return nil, err
	}

	return &FuncExpr{Pos: pos, Params: params, IsVararg: vararg, Body: body}, nil
}

// parseTableConstructor parses { field {sep field} [sep] } where sep
// is ',' or ';'. Fields are [exp]=exp, Name=exp, or a bare expression
// appended at the next positional index.
func (p *Parser) parseTableConstructor() (Expr, error) {
	pos := p.current.Position
	if _, err := p.expect(TOKEN_LBRACE); err != nil {
		return nil, err
	}

	var fields []TableField
	for p.current.Type != TOKEN_RBRACE {
		switch {
		case p.current.Type == TOKEN_LBRACKET:
			p.nextToken()
			key, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TOKEN_RBRACKET); err != nil {
				return nil, err
			}
			if _, err := p.expect(TOKEN_ASSIGN); err != nil {
				return nil, err
			}
			val, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			fields = append(fields, TableField{Key: key, Val: val})
		case p.current.Type == TOKEN_NAME && p.peek.Type == TOKEN_ASSIGN:
			key := &LiteralExpr{Pos: p.current.Position, Value: types.NewStr(p.current.Value)}
			p.nextToken() // consume name
			p.nextToken() // consume '='
			val, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			fields = append(fields, TableField{Key: key, Val: val})
		default:
			val, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				return nil, err
			}
			fields = append(fields, TableField{Val: val})
		}

		if p.current.Type == TOKEN_COMMA || p.current.Type == TOKEN_SEMICOLON {
			p.nextToken()
			continue
		}
		break
	}

	if _, err := p.expect(TOKEN_RBRACE); err != nil {
		return nil, err
	}
	return &TableExpr{Pos: pos, Fields: fields}, nil
}
