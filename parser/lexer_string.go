package parser

import (
	"strings"
	"unicode/utf8"
)

// readString reads a quoted string literal ('...' or "...") applying
// escape processing. \b \f \n \r \t and \uXXXX are decoded; any other
// escaped character passes through literally.
func (l *Lexer) readString(quote byte) Token {
	tok := Token{Type: TOKEN_STRING, Position: l.pos()}

	start := l.position
	l.readChar() // skip opening quote

	var result strings.Builder
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar() // skip backslash
			switch l.ch {
			case 'b':
				result.WriteByte('\b')
			case 'f':
				result.WriteByte('\f')
			case 'n':
				result.WriteByte('\n')
			case 'r':
				result.WriteByte('\r')
			case 't':
				result.WriteByte('\t')
			case 'u':
				r, ok := l.readUnicodeEscape()
				if !ok {
					tok.Type = TOKEN_ILLEGAL
					tok.Value = l.input[start:l.position]
					return tok
				}
				var buf [utf8.UTFMax]byte
				n := utf8.EncodeRune(buf[:], r)
				result.Write(buf[:n])
				continue // readUnicodeEscape already advanced
			default:
				result.WriteByte(l.ch)
			}
			l.readChar()
		} else {
			result.WriteByte(l.ch)
			l.readChar()
		}
	}

	if l.ch != quote {
		// Unterminated string
		tok.Type = TOKEN_ILLEGAL
		tok.Value = l.input[start:l.position]
		return tok
	}
	l.readChar() // skip closing quote

	tok.Value = l.input[start:l.position] // the full quoted source text
	tok.Literal = result.String()         // the decoded value
	return tok
}

// readUnicodeEscape reads the XXXX of a \uXXXX escape. The current
// char is 'u' on entry; on success the lexer is past the last digit.
func (l *Lexer) readUnicodeEscape() (rune, bool) {
	l.readChar() // skip 'u'
	var code rune
	for i := 0; i < 4; i++ {
		var d rune
		switch {
		case l.ch >= '0' && l.ch <= '9':
			d = rune(l.ch - '0')
		case l.ch >= 'a' && l.ch <= 'f':
			d = rune(l.ch-'a') + 10
		case l.ch >= 'A' && l.ch <= 'F':
			d = rune(l.ch-'A') + 10
		default:
			return 0, false
		}
		code = code*16 + d
		l.readChar()
	}
	return code, true
}
