package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func unparseSource(t *testing.T, source string) string {
	t.Helper()
	return UnparseProgram(parseSource(t, source))
}

func TestUnparseVarAndStructDecls(t *testing.T) {
	got := unparseSource(t, "int x;\nstruct S { bool b; };\nstruct S s;")
	be.Equal(t, got, `int x;
struct S{
    bool b;
};

struct S s;
`)
}

func TestUnparseFnDecl(t *testing.T) {
	got := unparseSource(t, "int f(int a, bool b) { int c; return a; }")
	be.Equal(t, got, `int f(int a, bool b) {
    int c;
    return a;
}

`)
}

func TestUnparseParenthesizesByPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = a + b * c;", "    x = (a + (b * c));\n"},
		{"x = (a + b) * c;", "    x = ((a + b) * c);\n"},
		{"x = a < b && c == d;", "    x = ((a < b) && (c == d));\n"},
		{"x = -a + !b;", "    x = ((-a) + (!b));\n"},
		{"x = y = z;", "    x = (y = z);\n"},
		{"x = f(a, b + 1);", "    x = f(a, (b + 1));\n"},
		{"x = p.q.r;", "    x = p.q.r;\n"},
		{`x = "text\n";`, "    x = \"text\\n\";\n"},
	}

	for _, test := range tests {
		got := unparseSource(t, "void f() { "+test.input+" }")
		be.Equal(t, got, "void f() {\n"+test.expected+"}\n\n")
	}
}

func TestUnparseStatements(t *testing.T) {
	got := unparseSource(t, `void f() {
    int i;
    cin >> i;
    while (i > 0) {
        if (i == 1) {
            cout << i;
        } else {
            i--;
        }
        i++;
    }
    g();
    return;
}`)
	be.Equal(t, got, `void f() {
    int i;
    cin >> i;
    while ((i > 0)) {
        if ((i == 1)) {
            cout << i;
        }
        else {
            i--;
        }
        i++;
    }
    g();
    return;
}

`)
}

// Printing a parse and re-parsing the output must reproduce the same
// text: the printed form is a fixed point.
func TestUnparseRoundTrip(t *testing.T) {
	sources := []string{
		"int x;",
		"struct S { int a; bool b; };\nstruct S s;",
		"void f() { x = ((1) + 2) * 3; }",
		"void f(int a) { if (a < 0) { a = -a; } else { a = a + 1; } return; }",
		"int f() { while (true) { cout << \"spin\"; } return 0; }",
		"void f() { s.field = g(1, h(2), x.y); }",
	}

	for _, source := range sources {
		first := unparseSource(t, source)
		second := unparseSource(t, first)
		be.Equal(t, second, first)
	}
}
