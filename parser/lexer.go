package parser

import (
	"strings"
	"unicode"
)

// Lexer tokenizes source code. It is a pull iterator: each NextToken
// call produces the next token, ending in TOKEN_EOF.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment skips a comment. Line comments run from -- to end of
// line; --[[ opens a block comment closed by ]].
func (l *Lexer) skipComment() {
	l.readChar() // skip first '-'
	l.readChar() // skip second '-'
	if l.ch == '[' && l.peekChar() == '[' {
		l.readChar()
		l.readChar()
		for l.ch != 0 {
			if l.ch == ']' && l.peekChar() == ']' {
				l.readChar()
				l.readChar()
				return
			}
			l.readChar()
		}
		return
	}
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// pos captures the current source position
func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	for {
		l.skipWhitespace()
		if l.ch == '-' && l.peekChar() == '-' {
			l.skipComment()
			continue
		}
		break
	}

	tok.Position = l.pos()

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
	case '+':
		tok = l.single(TOKEN_PLUS)
	case '-':
		tok = l.single(TOKEN_MINUS)
	case '*':
		tok = l.single(TOKEN_STAR)
	case '/':
		tok = l.single(TOKEN_SLASH)
	case '%':
		tok = l.single(TOKEN_PERCENT)
	case '^':
		tok = l.single(TOKEN_CARET)
	case '#':
		tok = l.single(TOKEN_HASH)
	case '(':
		tok = l.single(TOKEN_LPAREN)
	case ')':
		tok = l.single(TOKEN_RPAREN)
	case '{':
		tok = l.single(TOKEN_LBRACE)
	case '}':
		tok = l.single(TOKEN_RBRACE)
	case ']':
		tok = l.single(TOKEN_RBRACKET)
	case ';':
		tok = l.single(TOKEN_SEMICOLON)
	case ':':
		tok = l.single(TOKEN_COLON)
	case ',':
		tok = l.single(TOKEN_COMMA)
	case '[':
		if l.peekChar() == '[' {
			return l.readLongString()
		}
		tok = l.single(TOKEN_LBRACKET)
	case '=':
		if l.peekChar() == '=' {
			tok = l.double(TOKEN_EQ)
		} else {
			tok = l.single(TOKEN_ASSIGN)
		}
	case '<':
		if l.peekChar() == '=' {
			tok = l.double(TOKEN_LE)
		} else {
			tok = l.single(TOKEN_LT)
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.double(TOKEN_GE)
		} else {
			tok = l.single(TOKEN_GT)
		}
	case '~':
		if l.peekChar() == '=' {
			tok = l.double(TOKEN_NE)
		} else {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = string(l.ch)
			l.readChar()
		}
	case '.':
		// Longest match: ... before .. before .
		if l.peekChar() == '.' {
			pos := tok.Position
			l.readChar()
			l.readChar()
			if l.ch == '.' {
				l.readChar()
				tok = Token{Type: TOKEN_ELLIPSIS, Value: "...", Position: pos}
			} else {
				tok = Token{Type: TOKEN_CONCAT, Value: "..", Position: pos}
			}
		} else {
			tok = l.single(TOKEN_DOT)
		}
	case '"', '\'':
		return l.readString(l.ch)
	default:
		if isDigit(l.ch) {
			return l.readNumber()
		}
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		tok.Type = TOKEN_ILLEGAL
		tok.Value = string(l.ch)
		l.readChar()
	}

	return tok
}

// single produces a one-character token and advances
func (l *Lexer) single(t TokenType) Token {
	tok := Token{Type: t, Value: string(l.ch), Position: l.pos()}
	l.readChar()
	return tok
}

// double produces a two-character token and advances past both
func (l *Lexer) double(t TokenType) Token {
	pos := l.pos()
	value := string(l.ch) + string(l.peekChar())
	l.readChar()
	l.readChar()
	return Token{Type: t, Value: value, Position: pos}
}

// readNumber reads a decimal numeric literal: digits with an optional
// fractional part. No exponent or hex forms. The dot is consumed only
// when a digit follows, so "3..4" lexes as NUMBER CONCAT NUMBER.
func (l *Lexer) readNumber() Token {
	tok := Token{Type: TOKEN_NUMBER, Position: l.pos()}
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	tok.Value = l.input[start:l.position]
	return tok
}

// readIdentifier reads a name and classifies it against the keyword set
func (l *Lexer) readIdentifier() Token {
	tok := Token{Position: l.pos()}
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	tok.Value = l.input[start:l.position]
	tok.Type = LookupKeyword(tok.Value)
	return tok
}

// readLongString reads a [[...]] string literal. No escape processing;
// a newline directly after the opening bracket is skipped.
func (l *Lexer) readLongString() Token {
	tok := Token{Type: TOKEN_STRING, Position: l.pos()}
	start := l.position
	l.readChar() // skip first '['
	l.readChar() // skip second '['
	if l.ch == '\n' {
		l.readChar()
	}

	var result strings.Builder
	for {
		if l.ch == 0 {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = l.input[start:l.position]
			return tok
		}
		if l.ch == ']' && l.peekChar() == ']' {
			l.readChar()
			l.readChar()
			break
		}
		result.WriteByte(l.ch)
		l.readChar()
	}

	tok.Value = l.input[start:l.position]
	tok.Literal = result.String()
	return tok
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
