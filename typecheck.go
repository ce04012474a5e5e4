package main

import "fmt"

// Type-check pass: runs strictly after name resolution, reading the
// symbol links resolution left on identifier nodes. The Error type is
// absorbing: an expression with an Error operand is itself Error and
// adds no diagnostic of its own, so one root cause reports once.

// CheckProgram type-checks every function body and returns the
// collected diagnostics. Global variable and struct declarations have
// nothing to check.
func CheckProgram(prog *Program) *ErrorCollection {
	errs := NewErrorCollection()
	for _, d := range prog.Decls {
		if fn, ok := d.(*FnDecl); ok {
			checkFnDecl(fn, errs)
		}
	}
	return errs
}

// checkFnDecl threads the declared return type through the body so
// nested return statements can validate against it.
func checkFnDecl(d *FnDecl, errs *ErrorCollection) {
	retType := d.ReturnSpec.Type()
	for _, s := range d.Body.Stmts {
		checkStmt(s, retType, errs)
	}
}

func checkStmt(s Stmt, retType *Type, errs *ErrorCollection) {
	switch s := s.(type) {
	case *AssignStmt:
		checkExp(s.Assign, errs)

	case *PostIncStmt:
		t := checkExp(s.Loc, errs)
		if !t.IsError() && !t.IsInt() {
			line, col := s.Loc.Pos()
			errs.Add(line, col, "Arithmetic operator applied to non-numeric operand")
		}

	case *PostDecStmt:
		t := checkExp(s.Loc, errs)
		if !t.IsError() && !t.IsInt() {
			line, col := s.Loc.Pos()
			errs.Add(line, col, "Arithmetic operator applied to non-numeric operand")
		}

	case *ReadStmt:
		t := checkExp(s.Loc, errs)
		line, col := s.Loc.Pos()
		if t.IsFn() {
			errs.Add(line, col, "Attempt to read a function")
		}
		if t.IsStructDef() {
			errs.Add(line, col, "Attempt to read a struct name")
		}
		if t.IsStruct() {
			errs.Add(line, col, "Attempt to read a struct variable")
		}

	case *WriteStmt:
		t := checkExp(s.Exp, errs)
		line, col := s.Exp.Pos()
		if t.IsFn() {
			errs.Add(line, col, "Attempt to write a function")
		}
		if t.IsStructDef() {
			errs.Add(line, col, "Attempt to write a struct name")
		}
		if t.IsStruct() {
			errs.Add(line, col, "Attempt to write a struct variable")
		}
		if t.IsVoid() {
			errs.Add(line, col, "Attempt to write void")
		}

	case *IfStmt:
		t := checkExp(s.Cond, errs)
		if !t.IsError() && !t.IsBool() {
			line, col := s.Cond.Pos()
			errs.Add(line, col, "Non-bool expression used as an if condition")
		}
		for _, inner := range s.Stmts {
			checkStmt(inner, retType, errs)
		}

	case *IfElseStmt:
		t := checkExp(s.Cond, errs)
		if !t.IsError() && !t.IsBool() {
			line, col := s.Cond.Pos()
			errs.Add(line, col, "Non-bool expression used as an if condition")
		}
		for _, inner := range s.ThenStmts {
			checkStmt(inner, retType, errs)
		}
		for _, inner := range s.ElseStmts {
			checkStmt(inner, retType, errs)
		}

	case *WhileStmt:
		t := checkExp(s.Cond, errs)
		if !t.IsError() && !t.IsBool() {
			line, col := s.Cond.Pos()
			errs.Add(line, col, "Non-bool expression used as a while condition")
		}
		for _, inner := range s.Stmts {
			checkStmt(inner, retType, errs)
		}

	case *CallStmt:
		checkExp(s.Call, errs)

	case *ReturnStmt:
		if s.Exp == nil {
			if !retType.IsVoid() {
				// A bare return carries no position.
				errs.Add(0, 0, "Missing return value")
			}
			return
		}
		t := checkExp(s.Exp, errs)
		line, col := s.Exp.Pos()
		if retType.IsVoid() {
			errs.Add(line, col, "Return with a value in a void function")
		} else if !TypesEqual(retType, t) && !t.IsError() {
			errs.Add(line, col, "Bad return value")
		}

	default:
		panic(fmt.Sprintf("internal error: unknown stmt node %T", s))
	}
}

func checkExp(e Exp, errs *ErrorCollection) *Type {
	switch e := e.(type) {
	case *IntLit:
		return IntType
	case *StrLit:
		return StringType
	case *TrueLit, *FalseLit:
		return BoolType

	case *Ident:
		if e.Sym == nil {
			// Resolution already reported this occurrence.
			return ErrorType
		}
		return e.Sym.DeclaredType()

	case *DotAccessExp:
		checkExp(e.Loc, errs)
		if e.Field.Sym == nil {
			return ErrorType
		}
		return e.Field.Sym.DeclaredType()

	case *AssignExp:
		return checkAssign(e, errs)

	case *CallExp:
		return checkCall(e, errs)

	case *UnaryExp:
		return checkUnary(e, errs)

	case *BinaryExp:
		return checkBinary(e, errs)

	default:
		panic(fmt.Sprintf("internal error: unknown exp node %T", e))
	}
}

// checkAssign rejects function, struct-name, and struct-variable
// assignment outright before the structural mismatch check. The result
// is the left side's type on success.
func checkAssign(e *AssignExp, errs *ErrorCollection) *Type {
	lhsType := checkExp(e.Lhs, errs)
	expType := checkExp(e.Rhs, errs)
	line, col := e.Pos()
	ret := lhsType

	if lhsType.IsFn() && expType.IsFn() {
		errs.Add(line, col, "Function assignment")
		ret = ErrorType
	}
	if lhsType.IsStructDef() && expType.IsStructDef() {
		errs.Add(line, col, "Struct name assignment")
		ret = ErrorType
	}
	if lhsType.IsStruct() && expType.IsStruct() {
		errs.Add(line, col, "Struct variable assignment")
		ret = ErrorType
	}
	if !TypesEqual(lhsType, expType) && !lhsType.IsError() && !expType.IsError() {
		errs.Add(line, col, "Type mismatch")
		ret = ErrorType
	}
	if lhsType.IsError() || expType.IsError() {
		ret = ErrorType
	}
	return ret
}

// checkCall validates the callee, the argument count, and then each
// argument positionally. Later checks stop as soon as an earlier one
// fails; the call's type is the declared return type once the callee
// and arity are valid.
func checkCall(e *CallExp, errs *ErrorCollection) *Type {
	calleeType := checkExp(e.Fn, errs)
	if calleeType.IsError() {
		// Undeclared callee; already reported. The arguments still get
		// checked for their own diagnostics.
		for _, a := range e.Args {
			checkExp(a, errs)
		}
		return ErrorType
	}
	if !calleeType.IsFn() {
		errs.Add(e.Fn.Line, e.Fn.Col, "Attempt to call a non-function")
		return ErrorType
	}

	sym := e.Fn.Sym
	if len(e.Args) != len(sym.Params) {
		errs.Add(e.Fn.Line, e.Fn.Col, "Function call with wrong number of args")
		return ErrorType
	}

	for i, a := range e.Args {
		actualType := checkExp(a, errs)
		if actualType.IsError() {
			continue
		}
		if !TypesEqual(sym.Params[i], actualType) {
			line, col := a.Pos()
			errs.Add(line, col, "Type of actual does not match type of formal")
		}
	}
	return sym.Return
}

func checkUnary(e *UnaryExp, errs *ErrorCollection) *Type {
	t := checkExp(e.Operand, errs)
	line, col := e.Pos()
	switch e.Op {
	case "-":
		if t.IsError() {
			return ErrorType
		}
		if !t.IsInt() {
			errs.Add(line, col, "Arithmetic operator applied to non-numeric operand")
			return ErrorType
		}
		return IntType
	case "!":
		if t.IsError() {
			return ErrorType
		}
		if !t.IsBool() {
			errs.Add(line, col, "Logical operator applied to non-bool operand")
			return ErrorType
		}
		return BoolType
	}
	panic("internal error: unknown unary operator " + e.Op)
}

func checkBinary(e *BinaryExp, errs *ErrorCollection) *Type {
	t1 := checkExp(e.Left, errs)
	t2 := checkExp(e.Right, errs)

	switch e.Op {
	case "+", "-", "*", "/":
		return checkOperands(e, t1, t2, IntType, IntType,
			"Arithmetic operator applied to non-numeric operand", errs)
	case "&&", "||":
		return checkOperands(e, t1, t2, BoolType, BoolType,
			"Logical operator applied to non-bool operand", errs)
	case "<", ">", "<=", ">=":
		return checkOperands(e, t1, t2, IntType, BoolType,
			"Relational operator applied to non-numeric operand", errs)
	case "==", "!=":
		return checkEquality(e, t1, t2, errs)
	}
	panic("internal error: unknown binary operator " + e.Op)
}

// checkOperands enforces that both operands have the given type,
// reporting each offending operand independently. The expression's type
// is result unless any operand errored.
func checkOperands(e *BinaryExp, t1, t2, want, result *Type, msg string, errs *ErrorCollection) *Type {
	ret := result
	if !t1.IsError() && t1.Kind != want.Kind {
		line, col := e.Left.Pos()
		errs.Add(line, col, msg)
		ret = ErrorType
	}
	if !t2.IsError() && t2.Kind != want.Kind {
		line, col := e.Right.Pos()
		errs.Add(line, col, msg)
		ret = ErrorType
	}
	if t1.IsError() || t2.IsError() {
		ret = ErrorType
	}
	return ret
}

// checkEquality applies the forbidden-category checks before the
// structural mismatch check; when one fires, the mismatch diagnostic is
// not also reported.
func checkEquality(e *BinaryExp, t1, t2 *Type, errs *ErrorCollection) *Type {
	line, col := e.Left.Pos()
	ret := BoolType

	switch {
	case t1.IsVoid() && t2.IsVoid():
		errs.Add(line, col, "Equality operator applied to void functions")
		ret = ErrorType
	case t1.IsFn() && t2.IsFn():
		errs.Add(line, col, "Equality operator applied to functions")
		ret = ErrorType
	case t1.IsStructDef() && t2.IsStructDef():
		errs.Add(line, col, "Equality operator applied to struct names")
		ret = ErrorType
	case t1.IsStruct() && t2.IsStruct():
		errs.Add(line, col, "Equality operator applied to struct variables")
		ret = ErrorType
	case !TypesEqual(t1, t2) && !t1.IsError() && !t2.IsError():
		errs.Add(line, col, "Type mismatch")
		ret = ErrorType
	}

	if t1.IsError() || t2.IsError() {
		ret = ErrorType
	}
	return ret
}
