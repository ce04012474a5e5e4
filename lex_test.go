// Scanner tests: token recognition, positions, comments, and lexical
// error reporting.

package main

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func lexInput(inputStr string) *Lexer {
	input := []byte(inputStr + "\x00") // trailing null byte
	l := NewLexer(input)
	l.NextToken()
	return l
}

func TestIntLiteral(t *testing.T) {
	l := lexInput("12345")
	be.Equal(t, l.CurrTokenType, INTLIT)
	be.Equal(t, l.CurrLiteral, "12345")
	be.Equal(t, l.CurrIntValue, int64(12345))
}

func TestIdentifier(t *testing.T) {
	l := lexInput("foobar")
	be.Equal(t, l.CurrTokenType, IDENT)
	be.Equal(t, l.CurrLiteral, "foobar")
}

func TestStringLiteralKeepsRawText(t *testing.T) {
	l := lexInput(`"hello\n"`)
	be.Equal(t, l.CurrTokenType, STRINGLIT)
	be.Equal(t, l.CurrLiteral, `"hello\n"`)
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"int", INT},
		{"bool", BOOL},
		{"void", VOID},
		{"true", TRUE},
		{"false", FALSE},
		{"struct", STRUCT},
		{"cin", CIN},
		{"cout", COUT},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"return", RETURN},
	}

	for _, test := range tests {
		l := lexInput(test.input)
		be.Equal(t, l.CurrTokenType, test.typ)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"=", ASSIGN},
		{"==", EQ},
		{"!", BANG},
		{"!=", NOT_EQ},
		{"<", LT},
		{"<=", LE},
		{"<<", WRITE},
		{">", GT},
		{">=", GE},
		{">>", READ},
		{"+", PLUS},
		{"++", PLUS_PLUS},
		{"-", MINUS},
		{"--", MINUS_MINUS},
		{"*", ASTERISK},
		{"/", SLASH},
		{"&&", AND},
		{"||", OR},
	}

	for _, test := range tests {
		l := lexInput(test.input)
		be.Equal(t, l.CurrTokenType, test.typ)
		be.Equal(t, l.CurrLiteral, test.input)
	}
}

func TestDelimiters(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{",", COMMA},
		{";", SEMICOLON},
		{"(", LPAREN},
		{")", RPAREN},
		{"{", LBRACE},
		{"}", RBRACE},
		{".", DOT},
	}

	for _, test := range tests {
		l := lexInput(test.input)
		be.Equal(t, l.CurrTokenType, test.typ)
	}
}

func TestTokenSequence(t *testing.T) {
	l := lexInput("int x; x = 3;")
	expected := []TokenType{INT, IDENT, SEMICOLON, IDENT, ASSIGN, INTLIT, SEMICOLON, EOF}
	for _, typ := range expected {
		be.Equal(t, l.CurrTokenType, typ)
		l.NextToken()
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := lexInput("int x;\n    x = 3;")
	be.Equal(t, l.CurrLine, 1)
	be.Equal(t, l.CurrCol, 1)

	l.NextToken() // x
	be.Equal(t, l.CurrLine, 1)
	be.Equal(t, l.CurrCol, 5)

	l.NextToken() // ;
	l.NextToken() // x on the next line
	be.Equal(t, l.CurrLine, 2)
	be.Equal(t, l.CurrCol, 5)
}

func TestLineComments(t *testing.T) {
	l := lexInput("// a comment\nx # another\ny")
	be.Equal(t, l.CurrLiteral, "x")
	l.NextToken()
	be.Equal(t, l.CurrLiteral, "y")
	l.NextToken()
	be.Equal(t, l.CurrTokenType, EOF)
}

func TestIllegalCharacter(t *testing.T) {
	l := lexInput("x @ y")
	be.Equal(t, l.CurrLiteral, "x")
	l.NextToken() // @ is reported and skipped
	be.Equal(t, l.CurrLiteral, "y")
	be.True(t, l.Errors.HasErrors())
	be.True(t, strings.Contains(l.Errors.String(), "illegal character ignored: @"))
}

func TestLoneAmpersand(t *testing.T) {
	l := lexInput("a & b")
	l.NextToken() // & is reported and skipped; next token is b
	be.Equal(t, l.CurrLiteral, "b")
	be.True(t, l.Errors.HasErrors())
}

func TestUnterminatedString(t *testing.T) {
	l := lexInput("\"oops\nx")
	be.Equal(t, l.CurrLiteral, "x")
	be.True(t, strings.Contains(l.Errors.String(), "unterminated string literal ignored"))
}

func TestBadEscapeInString(t *testing.T) {
	l := lexInput(`"bad\q" x`)
	be.Equal(t, l.CurrLiteral, "x")
	be.True(t, strings.Contains(l.Errors.String(), "string literal with bad escaped character ignored"))
}

func TestIntLiteralTooLarge(t *testing.T) {
	l := lexInput("99999999999")
	be.Equal(t, l.CurrTokenType, INTLIT)
	be.Equal(t, l.CurrIntValue, int64(2147483647))
	be.True(t, strings.Contains(l.Errors.String(), "integer literal too large; using max value"))
}
