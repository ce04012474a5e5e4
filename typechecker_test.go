// Type-check tests. Each case pins the exact diagnostics, including
// positions, so the error-absorption rules are checked as much as the
// happy paths: one root cause must report exactly once.

package main

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/nalgeon/be"
)

// typeCheckSource runs the full front end and returns the type-check
// diagnostics. The program must be free of syntax and resolution
// errors.
func typeCheckSource(t *testing.T, source string) []CompileError {
	t.Helper()
	prog := parseSource(t, source)
	st := BuildSymbolTable(prog)
	if st.Errors.HasErrors() {
		t.Fatalf("resolution errors:\n%s", st.Errors.String())
	}
	return CheckProgram(prog).Errors
}

func expectDiagnostics(t *testing.T, source string, expected []CompileError) {
	t.Helper()
	got := typeCheckSource(t, source)
	if diff := deep.Equal(got, expected); diff != nil {
		t.Error(diff)
	}
}

func TestCheckCleanProgram(t *testing.T) {
	got := typeCheckSource(t, `int f(int a) {
    return a + 1;
}

void main() {
    int x;
    bool b;
    x = f(2);
    b = x < 10;
    cout << "value";
    cout << x;
    cin >> x;
    x++;
}`)
	be.Equal(t, len(got), 0)
}

func TestCheckArithmeticOperandsReportedIndependently(t *testing.T) {
	expectDiagnostics(t, "void f() { bool a; bool b; cout << a + b; }", []CompileError{
		{Line: 1, Col: 36, Message: "Arithmetic operator applied to non-numeric operand"},
		{Line: 1, Col: 40, Message: "Arithmetic operator applied to non-numeric operand"},
	})
}

func TestCheckLogicalOperand(t *testing.T) {
	expectDiagnostics(t, "void f() { cout << 1 && true; }", []CompileError{
		{Line: 1, Col: 20, Message: "Logical operator applied to non-bool operand"},
	})
}

func TestCheckRelationalOperand(t *testing.T) {
	expectDiagnostics(t, "void f() { bool b; b = true < 3; }", []CompileError{
		{Line: 1, Col: 24, Message: "Relational operator applied to non-numeric operand"},
	})
}

func TestCheckEqualityMismatch(t *testing.T) {
	expectDiagnostics(t, "void f() { cout << 1 == true; }", []CompileError{
		{Line: 1, Col: 20, Message: "Type mismatch"},
	})
}

func TestCheckEqualityOnVoidCalls(t *testing.T) {
	expectDiagnostics(t, `void g() {
}

void f() {
    cout << g() == g();
}`, []CompileError{
		{Line: 5, Col: 13, Message: "Equality operator applied to void functions"},
	})
}

func TestCheckEqualityOnFunctionNames(t *testing.T) {
	expectDiagnostics(t, "void f() { cout << f == f; }", []CompileError{
		{Line: 1, Col: 20, Message: "Equality operator applied to functions"},
	})
}

func TestCheckErrorAbsorptionStopsCascade(t *testing.T) {
	// The bad operand reports once; the enclosing * and = stay silent.
	expectDiagnostics(t, "void f() { int x; bool b; x = (b + 1) * 2; }", []CompileError{
		{Line: 1, Col: 32, Message: "Arithmetic operator applied to non-numeric operand"},
	})
}

func TestCheckAssignmentHasLhsType(t *testing.T) {
	// (x = 3) is an int expression, so the comparison is well typed.
	got := typeCheckSource(t, "void f() { int x; bool b; b = (x = 3) < 4; }")
	be.Equal(t, len(got), 0)
}

func TestCheckFunctionAssignment(t *testing.T) {
	expectDiagnostics(t, "void f() { f = f; }", []CompileError{
		{Line: 1, Col: 12, Message: "Function assignment"},
	})
}

func TestCheckWriteStructName(t *testing.T) {
	expectDiagnostics(t, `struct S {
    int x;
};

void f() {
    cout << S;
}`, []CompileError{
		{Line: 6, Col: 13, Message: "Attempt to write a struct name"},
	})
}

func TestCheckWriteVoidCall(t *testing.T) {
	expectDiagnostics(t, `void g() {
}

void f() {
    cout << g();
}`, []CompileError{
		{Line: 5, Col: 13, Message: "Attempt to write void"},
	})
}

func TestCheckReadFunction(t *testing.T) {
	expectDiagnostics(t, "void f() { cin >> f; }", []CompileError{
		{Line: 1, Col: 19, Message: "Attempt to read a function"},
	})
}

func TestCheckPostIncOnBool(t *testing.T) {
	expectDiagnostics(t, "void f() { bool b; b++; }", []CompileError{
		{Line: 1, Col: 20, Message: "Arithmetic operator applied to non-numeric operand"},
	})
}

func TestCheckUnaryNotOnInt(t *testing.T) {
	expectDiagnostics(t, "void f() { bool b; b = !3; }", []CompileError{
		{Line: 1, Col: 25, Message: "Logical operator applied to non-bool operand"},
	})
}

func TestCheckUnaryMinusOnBool(t *testing.T) {
	expectDiagnostics(t, "void f() { int x; x = -true; }", []CompileError{
		{Line: 1, Col: 24, Message: "Arithmetic operator applied to non-numeric operand"},
	})
}

func TestCheckCallArityStopsArgChecks(t *testing.T) {
	expectDiagnostics(t, `int f(int a) {
    return a;
}

void g() {
    cout << f(true, 2);
}`, []CompileError{
		{Line: 6, Col: 13, Message: "Function call with wrong number of args"},
	})
}

func TestCheckCallBadArgsReportedPerArgument(t *testing.T) {
	expectDiagnostics(t, `int f(int a, int b) {
    return a;
}

void g() {
    cout << f(true, false);
}`, []CompileError{
		{Line: 6, Col: 15, Message: "Type of actual does not match type of formal"},
		{Line: 6, Col: 21, Message: "Type of actual does not match type of formal"},
	})
}

// Resolution diagnostics come first, then type-check diagnostics, even
// when the type error sits earlier in the source.
func TestResolutionErrorsPrecedeTypeErrors(t *testing.T) {
	prog := parseSource(t, "void f() { cout << 1 + true; g(); }")
	st := BuildSymbolTable(prog)
	typeErrors := CheckProgram(prog)

	got := append(append([]CompileError{}, st.Errors.Errors...), typeErrors.Errors...)
	expected := []CompileError{
		{Line: 1, Col: 30, Message: "Undeclared identifier"},
		{Line: 1, Col: 24, Message: "Arithmetic operator applied to non-numeric operand"},
	}
	if diff := deep.Equal(got, expected); diff != nil {
		t.Error(diff)
	}
}

func TestCheckArgsStillCheckedWhenCalleeUndeclared(t *testing.T) {
	prog := parseSource(t, "void f() { g(1 + true); }")
	st := BuildSymbolTable(prog)
	typeErrors := CheckProgram(prog)

	if diff := deep.Equal(st.Errors.Errors, []CompileError{
		{Line: 1, Col: 12, Message: "Undeclared identifier"},
	}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(typeErrors.Errors, []CompileError{
		{Line: 1, Col: 18, Message: "Arithmetic operator applied to non-numeric operand"},
	}); diff != nil {
		t.Error(diff)
	}
}
