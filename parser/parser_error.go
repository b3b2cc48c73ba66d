package parser

import "fmt"

// SyntaxError is a fatal parse failure: a message plus the source
// position of the offending token. No resynchronization is attempted.
type SyntaxError struct {
	Msg string
	Pos Position
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// errorf creates a SyntaxError at the current token
func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: p.current.Position}
}

// expect consumes a token of the given type or fails naming it
func (p *Parser) expect(t TokenType) (Token, error) {
	if p.current.Type != t {
		return Token{}, p.errorf("expected '%s', got '%s'", t, p.describeCurrent())
	}
	tok := p.current
	p.nextToken()
	return tok, nil
}

// describeCurrent renders the current token for error messages
func (p *Parser) describeCurrent() string {
	switch p.current.Type {
	case TOKEN_EOF:
		return "<eof>"
	case TOKEN_ILLEGAL:
		return p.current.Value
	default:
		if p.current.Value != "" {
			return p.current.Value
		}
		return p.current.Type.String()
	}
}
