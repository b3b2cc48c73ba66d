package parser

// ParseChunk parses a complete source chunk (a block running to EOF)
func (p *Parser) ParseChunk() ([]Stmt, error) {
	stmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TOKEN_EOF {
		return nil, p.errorf("expected ';' or <eof>, got '%s'", p.describeCurrent())
	}
	return stmts, nil
}

// parseBlock parses statements until a terminator token or EOF.
// Statements are separated by an explicit ';'; a trailing separator
// before the terminator is allowed.
func (p *Parser) parseBlock(terminators ...TokenType) ([]Stmt, error) {
	var stmts []Stmt
	for {
		if p.atBlockEnd(terminators) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.current.Type == TOKEN_SEMICOLON {
			p.nextToken()
			continue
		}
		break
	}
	return stmts, nil
}

// atBlockEnd reports whether the current token closes the block
func (p *Parser) atBlockEnd(terminators []TokenType) bool {
	if p.current.Type == TOKEN_EOF {
		return true
	}
	for _, t := range terminators {
		if p.current.Type == t {
			return true
		}
	}
	return false
}

// parseStatement parses a single statement; each keyword dispatches to
// a dedicated production
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_DO:
		return p.parseDoStatement()
	case TOKEN_WHILE:
		return p.parseWhileStatement()
	case TOKEN_REPEAT:
		return p.parseRepeatStatement()
	case TOKEN_IF:
		return p.parseIfStatement()
	case TOKEN_FOR:
		return p.parseForStatement()
	case TOKEN_FUNCTION:
		return p.parseFunctionStatement()
	case TOKEN_LOCAL:
		return p.parseLocalStatement()
	case TOKEN_RETURN:
		return p.parseReturnStatement()
	case TOKEN_BREAK:
		pos := p.current.Position
		p.nextToken()
		return &BreakStmt{Pos: pos}, nil
	default:
		return p.parseExprStatement()
	}
}

// parseDoStatement parses do block end
func (p *Parser) parseDoStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'do'

	body, err := p.parseBlock(TOKEN_END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_END); err != nil {
		return nil, err
	}
	return &BlockStmt{Pos: pos, Body: body}, nil
}

// parseWhileStatement parses while exp do block end
func (p *Parser) parseWhileStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'while'

	condition, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_DO); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(TOKEN_END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_END); err != nil {
		return nil, err
	}
	return &WhileStmt{Pos: pos, Condition: condition, Body: body}, nil
}

// parseRepeatStatement parses repeat block until exp
func (p *Parser) parseRepeatStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'repeat'

	body, err := p.parseBlock(TOKEN_UNTIL)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_UNTIL); err != nil {
		return nil, err
	}
	condition, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	return &RepeatStmt{Pos: pos, Body: body, Condition: condition}, nil
}

// parseIfStatement parses if exp then block {elseif exp then block}
// [else block] end
func (p *Parser) parseIfStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'if'

	condition, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_THEN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(TOKEN_ELSEIF, TOKEN_ELSE, TOKEN_END)
	if err != nil {
		return nil, err
	}

	var elseIfs []*ElseIfClause
	for p.current.Type == TOKEN_ELSEIF {
		elseIfPos := p.current.Position
		p.nextToken() // consume 'elseif'

		elseIfCond, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_THEN); err != nil {
			return nil, err
		}
		elseIfBody, err := p.parseBlock(TOKEN_ELSEIF, TOKEN_ELSE, TOKEN_END)
		if err != nil {
			return nil, err
		}
		elseIfs = append(elseIfs, &ElseIfClause{Pos: elseIfPos, Condition: elseIfCond, Body: elseIfBody})
	}

	var elseBody []Stmt
	if p.current.Type == TOKEN_ELSE {
		p.nextToken() // consume 'else'
		elseBody, err = p.parseBlock(TOKEN_END)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TOKEN_END); err != nil {
		return nil, err
	}
	return &IfStmt{Pos: pos, Condition: condition, Body: body, ElseIfs: elseIfs, Else: elseBody}, nil
}

// parseForStatement parses both for forms: numeric
// (for Name = start, stop [, step] do) and generic
// (for namelist in explist do)
func (p *Parser) parseForStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'for'

	first, err := p.expect(TOKEN_NAME)
	if err != nil {
		return nil, err
	}

	if p.current.Type == TOKEN_ASSIGN {
		return p.parseNumericFor(pos, first.Value)
	}
	return p.parseGenericFor(pos, first.Value)
}

// parseNumericFor parses the remainder after "for Name"
func (p *Parser) parseNumericFor(pos Position, name string) (Stmt, error) {
	p.nextToken() // consume '='

	start, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_COMMA); err != nil {
		return nil, err
	}
	stop, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	var step Expr
	if p.current.Type == TOKEN_COMMA {
		p.nextToken()
		step, err = p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TOKEN_DO); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(TOKEN_END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_END); err != nil {
		return nil, err
	}
	return &NumericForStmt{Pos: pos, Name: name, Start: start, Stop: stop, Step: step, Body: body}, nil
}

// parseGenericFor parses the remainder after the first name
func (p *Parser) parseGenericFor(pos Position, first string) (Stmt, error) {
	names := []string{first}
	for p.current.Type == TOKEN_COMMA {
		p.nextToken()
		name, err := p.expect(TOKEN_NAME)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Value)
	}

	if _, err := p.expect(TOKEN_IN); err != nil {
		return nil, err
	}
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_DO); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(TOKEN_END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_END); err != nil {
		return nil, err
	}
	return &GenericForStmt{Pos: pos, Names: names, Exprs: exprs, Body: body}, nil
}

// parseFunctionStatement parses function Name{.Name}[:Name] funcbody
func (p *Parser) parseFunctionStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'function'

	first, err := p.expect(TOKEN_NAME)
	if err != nil {
		return nil, err
	}
	names := []string{first.Value}
	for p.current.Type == TOKEN_DOT {
		p.nextToken()
		name, err := p.expect(TOKEN_NAME)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Value)
	}

	if p.current.Type == TOKEN_COLON {
		p.nextToken()
		method, err := p.expect(TOKEN_NAME)
		if err != nil {
			return nil, err
		}
		fn, err := p.parseFuncBody(pos, true)
		if err != nil {
			return nil, err
		}
		return &MethDefStmt{Pos: pos, Names: names, Method: method.Value, Fn: fn}, nil
	}

	fn, err := p.parseFuncBody(pos, false)
	if err != nil {
		return nil, err
	}
	return &FuncDefStmt{Pos: pos, Names: names, Fn: fn}, nil
}

// parseLocalStatement parses local function Name funcbody, or
// local namelist [= explist]
func (p *Parser) parseLocalStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'local'

	if p.current.Type == TOKEN_FUNCTION {
		p.nextToken()
		name, err := p.expect(TOKEN_NAME)
		if err != nil {
			return nil, err
		}
		fn, err := p.parseFuncBody(pos, false)
		if err != nil {
			return nil, err
		}
		return &LocalFuncStmt{Pos: pos, Name: name.Value, Fn: fn}, nil
	}

	first, err := p.expect(TOKEN_NAME)
	if err != nil {
		return nil, err
	}
	names := []string{first.Value}
	for p.current.Type == TOKEN_COMMA {
		p.nextToken()
		name, err := p.expect(TOKEN_NAME)
		if err != nil {
			return nil, err
		}
		names = append(names, name.Value)
	}

	var exprs []Expr
	if p.current.Type == TOKEN_ASSIGN {
		p.nextToken()
		exprs, err = p.parseExprList()
		if err != nil {
			return nil, err
		}
	}
	return &LocalStmt{Pos: pos, Names: names, Exprs: exprs}, nil
}

// parseReturnStatement parses return [explist]
func (p *Parser) parseReturnStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'return'

	if p.atBlockEnd([]TokenType{TOKEN_END, TOKEN_ELSE, TOKEN_ELSEIF, TOKEN_UNTIL}) || p.current.Type == TOKEN_SEMICOLON {
		return &ReturnStmt{Pos: pos}, nil
	}
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{Pos: pos, Exprs: exprs}, nil
}

// parseExprStatement parses a bare expression statement. It must
// reduce to a call, or to a variable/index target opening an
// assignment; anything else is a syntax error.
func (p *Parser) parseExprStatement() (Stmt, error) {
	pos := p.current.Position

	expr, err := p.parseSuffixedExpr()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_COMMA && p.current.Type != TOKEN_ASSIGN {
		if !IsCall(expr) {
			return nil, p.errorf("unexpected expression statement (expected call or assignment)")
		}
		return &CallStmt{Pos: pos, Call: expr}, nil
	}

	// Assignment: collect the remaining targets
	targets := []Expr{expr}
	for p.current.Type == TOKEN_COMMA {
		p.nextToken()
		target, err := p.parseSuffixedExpr()
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	for _, target := range targets {
		if !isAssignTarget(target) {
			return nil, p.errorf("cannot assign to this expression")
		}
	}

	if _, err := p.expect(TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Pos: pos, Targets: targets, Exprs: exprs}, nil
}

// isAssignTarget reports whether an expression may appear on the left
// of '='
func isAssignTarget(e Expr) bool {
	switch e.(type) {
	case *VarExpr, *IndexExpr:
		return true
	}
	return false
}
