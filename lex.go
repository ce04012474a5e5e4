package main

import (
	"fmt"
	"math"
	"strconv"
)

// TokenType is the type of token (identifier, operator, literal, etc.).
type TokenType string

const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers + literals
	IDENT     TokenType = "IDENT"
	INTLIT    TokenType = "INTLIT"
	STRINGLIT TokenType = "STRINGLIT"

	// Operators
	ASSIGN      TokenType = "="
	PLUS        TokenType = "+"
	MINUS       TokenType = "-"
	BANG        TokenType = "!"
	ASTERISK    TokenType = "*"
	SLASH       TokenType = "/"
	LT          TokenType = "<"
	GT          TokenType = ">"
	EQ          TokenType = "=="
	NOT_EQ      TokenType = "!="
	LE          TokenType = "<="
	GE          TokenType = ">="
	AND         TokenType = "&&"
	OR          TokenType = "||"
	PLUS_PLUS   TokenType = "++"
	MINUS_MINUS TokenType = "--"
	READ        TokenType = ">>"
	WRITE       TokenType = "<<"

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	DOT       TokenType = "."

	// Keywords
	INT    TokenType = "INT"
	BOOL   TokenType = "BOOL"
	VOID   TokenType = "VOID"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
	STRUCT TokenType = "STRUCT"
	CIN    TokenType = "CIN"
	COUT   TokenType = "COUT"
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	WHILE  TokenType = "WHILE"
	RETURN TokenType = "RETURN"
)

var keywords = map[string]TokenType{
	"int":    INT,
	"bool":   BOOL,
	"void":   VOID,
	"true":   TRUE,
	"false":  FALSE,
	"struct": STRUCT,
	"cin":    CIN,
	"cout":   COUT,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"return": RETURN,
}

// Lexer scans a NUL-terminated byte slice, one token per NextToken call.
// Position state is explicit per lexer instance; nothing is global.
type Lexer struct {
	input []byte
	pos   int
	line  int // 1-based line of input[pos]
	col   int // 1-based column of input[pos]

	// Current token state, valid after a NextToken call.
	CurrTokenType TokenType
	CurrLiteral   string // raw source text; quotes included for STRINGLIT
	CurrIntValue  int64  // only meaningful when CurrTokenType == INTLIT
	CurrLine      int
	CurrCol       int

	// Errors collects lexical and syntax diagnostics.
	Errors *ErrorCollection
}

// NewLexer initializes a lexer for the given input (must end with a 0
// byte).
func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		col:    1,
		Errors: NewErrorCollection(),
	}
}

func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) peekChar() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// NextToken scans the next token into the Curr fields. Call repeatedly
// until CurrTokenType == EOF.
func (l *Lexer) NextToken() {
	l.skipWhitespaceAndComments()

	l.CurrLine = l.line
	l.CurrCol = l.col
	c := l.input[l.pos]

	switch {
	case c == 0:
		l.CurrTokenType = EOF
		l.CurrLiteral = ""
		return
	case isLetter(c):
		lit := l.readIdentifier()
		l.CurrLiteral = lit
		if kw, ok := keywords[lit]; ok {
			l.CurrTokenType = kw
		} else {
			l.CurrTokenType = IDENT
		}
		return
	case isDigit(c):
		l.readNumber()
		return
	case c == '"':
		l.readString()
		return
	}

	single := func(t TokenType) {
		l.CurrTokenType = t
		l.CurrLiteral = string(c)
		l.advance()
	}
	double := func(t TokenType) {
		l.CurrTokenType = t
		l.CurrLiteral = string(c) + string(l.peekChar())
		l.advance()
		l.advance()
	}

	switch c {
	case '=':
		if l.peekChar() == '=' {
			double(EQ)
		} else {
			single(ASSIGN)
		}
	case '+':
		if l.peekChar() == '+' {
			double(PLUS_PLUS)
		} else {
			single(PLUS)
		}
	case '-':
		if l.peekChar() == '-' {
			double(MINUS_MINUS)
		} else {
			single(MINUS)
		}
	case '!':
		if l.peekChar() == '=' {
			double(NOT_EQ)
		} else {
			single(BANG)
		}
	case '*':
		single(ASTERISK)
	case '/':
		single(SLASH)
	case '<':
		switch l.peekChar() {
		case '<':
			double(WRITE)
		case '=':
			double(LE)
		default:
			single(LT)
		}
	case '>':
		switch l.peekChar() {
		case '>':
			double(READ)
		case '=':
			double(GE)
		default:
			single(GT)
		}
	case '&':
		if l.peekChar() == '&' {
			double(AND)
		} else {
			l.illegalChar(c)
		}
	case '|':
		if l.peekChar() == '|' {
			double(OR)
		} else {
			l.illegalChar(c)
		}
	case ',':
		single(COMMA)
	case ';':
		single(SEMICOLON)
	case '(':
		single(LPAREN)
	case ')':
		single(RPAREN)
	case '{':
		single(LBRACE)
	case '}':
		single(RBRACE)
	case '.':
		single(DOT)
	default:
		l.illegalChar(c)
	}
}

// illegalChar reports the character, skips it, and scans the next token
// in its place.
func (l *Lexer) illegalChar(c byte) {
	l.Errors.Add(l.line, l.col, fmt.Sprintf("illegal character ignored: %c", c))
	l.advance()
	l.NextToken()
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '#':
			l.skipLineComment()
		case c == '/' && l.peekChar() == '/':
			l.skipLineComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for l.input[l.pos] != '\n' && l.input[l.pos] != 0 {
		l.advance()
	}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) {
		l.advance()
	}
	return string(l.input[start:l.pos])
}

// readNumber scans an integer literal. A literal that does not fit in an
// int32 is clamped to the max value with a diagnostic, matching the
// reference scanner.
func (l *Lexer) readNumber() {
	start := l.pos
	for isDigit(l.input[l.pos]) {
		l.advance()
	}
	lit := string(l.input[start:l.pos])
	l.CurrTokenType = INTLIT
	l.CurrLiteral = lit

	val, err := strconv.ParseInt(lit, 10, 64)
	if err != nil || val > math.MaxInt32 {
		l.Errors.Add(l.CurrLine, l.CurrCol, "integer literal too large; using max value")
		val = math.MaxInt32
	}
	l.CurrIntValue = val
}

// readString scans a string literal, keeping the raw text (quotes and
// escapes included). Legal escapes are \n, \t, \', \", \? and \\. A bad
// escape or an unterminated literal is reported and the token dropped.
func (l *Lexer) readString() {
	start := l.pos
	l.advance() // opening quote
	badEscape := false
	for {
		c := l.input[l.pos]
		if c == '"' {
			l.advance()
			if badEscape {
				l.Errors.Add(l.CurrLine, l.CurrCol, "string literal with bad escaped character ignored")
				l.NextToken()
				return
			}
			l.CurrTokenType = STRINGLIT
			l.CurrLiteral = string(l.input[start:l.pos])
			return
		}
		if c == 0 || c == '\n' {
			l.Errors.Add(l.CurrLine, l.CurrCol, "unterminated string literal ignored")
			l.NextToken()
			return
		}
		if c == '\\' {
			switch l.peekChar() {
			case 'n', 't', '\'', '"', '?', '\\':
			default:
				badEscape = true
			}
			l.advance()
		}
		l.advance()
	}
}
