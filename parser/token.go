package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	// Literals
	TOKEN_NUMBER // 3.14
	TOKEN_STRING // "hello", 'hello', [[hello]]

	// Identifiers
	TOKEN_NAME

	// Keywords
	TOKEN_AND
	TOKEN_BREAK
	TOKEN_DO
	TOKEN_ELSE
	TOKEN_ELSEIF
	TOKEN_END
	TOKEN_FALSE
	TOKEN_FOR
	TOKEN_FUNCTION
	TOKEN_IF
	TOKEN_IN
	TOKEN_LOCAL
	TOKEN_NIL
	TOKEN_NOT
	TOKEN_OR
	TOKEN_REPEAT
	TOKEN_RETURN
	TOKEN_THEN
	TOKEN_TRUE
	TOKEN_UNTIL
	TOKEN_WHILE

	// Operators
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_STAR     // *
	TOKEN_SLASH    // /
	TOKEN_PERCENT  // %
	TOKEN_CARET    // ^
	TOKEN_HASH     // #
	TOKEN_EQ       // ==
	TOKEN_NE       // ~=
	TOKEN_LE       // <=
	TOKEN_GE       // >=
	TOKEN_LT       // <
	TOKEN_GT       // >
	TOKEN_ASSIGN   // =
	TOKEN_CONCAT   // ..
	TOKEN_ELLIPSIS // ...

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_SEMICOLON // ;
	TOKEN_COLON     // :
	TOKEN_COMMA     // ,
	TOKEN_DOT       // .
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Literal  string // Decoded string value (for TOKEN_STRING)
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_NAME:
		return "NAME"
	case TOKEN_AND:
		return "and"
	case TOKEN_BREAK:
		return "break"
	case TOKEN_DO:
		return "do"
	case TOKEN_ELSE:
		return "else"
	case TOKEN_ELSEIF:
		return "elseif"
	case TOKEN_END:
		return "end"
	case TOKEN_FALSE:
		return "false"
	case TOKEN_FOR:
		return "for"
	case TOKEN_FUNCTION:
		return "function"
	case TOKEN_IF:
		return "if"
	case TOKEN_IN:
		return "in"
	case TOKEN_LOCAL:
		return "local"
	case TOKEN_NIL:
		return "nil"
	case TOKEN_NOT:
		return "not"
	case TOKEN_OR:
		return "or"
	case TOKEN_REPEAT:
		return "repeat"
	case TOKEN_RETURN:
		return "return"
	case TOKEN_THEN:
		return "then"
	case TOKEN_TRUE:
		return "true"
	case TOKEN_UNTIL:
		return "until"
	case TOKEN_WHILE:
		return "while"
	case TOKEN_PLUS:
		return "+"
	case TOKEN_MINUS:
		return "-"
	case TOKEN_STAR:
		return "*"
	case TOKEN_SLASH:
		return "/"
	case TOKEN_PERCENT:
		return "%"
	case TOKEN_CARET:
		return "^"
	case TOKEN_HASH:
		return "#"
	case TOKEN_EQ:
		return "=="
	case TOKEN_NE:
		return "~="
	case TOKEN_LE:
		return "<="
	case TOKEN_GE:
		return ">="
	case TOKEN_LT:
		return "<"
	case TOKEN_GT:
		return ">"
	case TOKEN_ASSIGN:
		return "="
	case TOKEN_CONCAT:
		return ".."
	case TOKEN_ELLIPSIS:
		return "..."
	case TOKEN_LPAREN:
		return "("
	case TOKEN_RPAREN:
		return ")"
	case TOKEN_LBRACE:
		return "{"
	case TOKEN_RBRACE:
		return "}"
	case TOKEN_LBRACKET:
		return "["
	case TOKEN_RBRACKET:
		return "]"
	case TOKEN_SEMICOLON:
		return ";"
	case TOKEN_COLON:
		return ":"
	case TOKEN_COMMA:
		return ","
	case TOKEN_DOT:
		return "."
	default:
		return "UNKNOWN"
	}
}

// keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"and":      TOKEN_AND,
	"break":    TOKEN_BREAK,
	"do":       TOKEN_DO,
	"else":     TOKEN_ELSE,
	"elseif":   TOKEN_ELSEIF,
	"end":      TOKEN_END,
	"false":    TOKEN_FALSE,
	"for":      TOKEN_FOR,
	"function": TOKEN_FUNCTION,
	"if":       TOKEN_IF,
	"in":       TOKEN_IN,
	"local":    TOKEN_LOCAL,
	"nil":      TOKEN_NIL,
	"not":      TOKEN_NOT,
	"or":       TOKEN_OR,
	"repeat":   TOKEN_REPEAT,
	"return":   TOKEN_RETURN,
	"then":     TOKEN_THEN,
	"true":     TOKEN_TRUE,
	"until":    TOKEN_UNTIL,
	"while":    TOKEN_WHILE,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_NAME
}
