package main

import (
	"bytes"
	"fmt"
)

// The pretty-printer re-renders an AST as source text with a fixed
// 4-space indent per nesting level. Printing a parsed program and
// re-parsing the output yields the same text, so the printer doubles as
// a structural oracle in tests.

// UnparseProgram renders a whole program.
func UnparseProgram(prog *Program) string {
	var buf bytes.Buffer
	for _, d := range prog.Decls {
		unparseDecl(&buf, d, 0)
	}
	return buf.String()
}

func doIndent(buf *bytes.Buffer, indent int) {
	for k := 0; k < indent; k++ {
		buf.WriteByte(' ')
	}
}

func unparseDecl(buf *bytes.Buffer, d Decl, indent int) {
	switch d := d.(type) {
	case *VarDecl:
		doIndent(buf, indent)
		unparseTypeSpec(buf, d.TypeSpec)
		buf.WriteByte(' ')
		buf.WriteString(d.Name.Name)
		buf.WriteString(";\n")

	case *FnDecl:
		doIndent(buf, indent)
		unparseTypeSpec(buf, d.ReturnSpec)
		buf.WriteByte(' ')
		buf.WriteString(d.Name.Name)
		buf.WriteByte('(')
		for i, f := range d.Formals {
			if i > 0 {
				buf.WriteString(", ")
			}
			unparseTypeSpec(buf, f.TypeSpec)
			buf.WriteByte(' ')
			buf.WriteString(f.Name.Name)
		}
		buf.WriteString(") {\n")
		for _, v := range d.Body.Decls {
			unparseDecl(buf, v, indent+4)
		}
		for _, s := range d.Body.Stmts {
			unparseStmt(buf, s, indent+4)
		}
		doIndent(buf, indent)
		buf.WriteString("}\n\n")

	case *StructDecl:
		doIndent(buf, indent)
		buf.WriteString("struct ")
		buf.WriteString(d.Name.Name)
		buf.WriteString("{\n")
		for _, f := range d.Fields {
			unparseDecl(buf, f, indent+4)
		}
		doIndent(buf, indent)
		buf.WriteString("};\n\n")

	case *FormalDecl:
		unparseTypeSpec(buf, d.TypeSpec)
		buf.WriteByte(' ')
		buf.WriteString(d.Name.Name)

	default:
		panic(fmt.Sprintf("internal error: unknown decl node %T", d))
	}
}

func unparseTypeSpec(buf *bytes.Buffer, ts TypeSpec) {
	switch ts := ts.(type) {
	case *IntSpec:
		buf.WriteString("int")
	case *BoolSpec:
		buf.WriteString("bool")
	case *VoidSpec:
		buf.WriteString("void")
	case *StructSpec:
		buf.WriteString("struct ")
		buf.WriteString(ts.Name.Name)
	default:
		panic(fmt.Sprintf("internal error: unknown type spec node %T", ts))
	}
}

func unparseBlock(buf *bytes.Buffer, decls []*VarDecl, stmts []Stmt, indent int) {
	for _, d := range decls {
		unparseDecl(buf, d, indent)
	}
	for _, s := range stmts {
		unparseStmt(buf, s, indent)
	}
}

func unparseStmt(buf *bytes.Buffer, s Stmt, indent int) {
	switch s := s.(type) {
	case *AssignStmt:
		doIndent(buf, indent)
		// No parentheses around a top-level assignment.
		unparseExp(buf, s.Assign.Lhs)
		buf.WriteString(" = ")
		unparseExp(buf, s.Assign.Rhs)
		buf.WriteString(";\n")

	case *PostIncStmt:
		doIndent(buf, indent)
		unparseExp(buf, s.Loc)
		buf.WriteString("++;\n")

	case *PostDecStmt:
		doIndent(buf, indent)
		unparseExp(buf, s.Loc)
		buf.WriteString("--;\n")

	case *ReadStmt:
		doIndent(buf, indent)
		buf.WriteString("cin >> ")
		unparseExp(buf, s.Loc)
		buf.WriteString(";\n")

	case *WriteStmt:
		doIndent(buf, indent)
		buf.WriteString("cout << ")
		unparseExp(buf, s.Exp)
		buf.WriteString(";\n")

	case *IfStmt:
		doIndent(buf, indent)
		buf.WriteString("if (")
		unparseExp(buf, s.Cond)
		buf.WriteString(") {\n")
		unparseBlock(buf, s.Decls, s.Stmts, indent+4)
		doIndent(buf, indent)
		buf.WriteString("}\n")

	case *IfElseStmt:
		doIndent(buf, indent)
		buf.WriteString("if (")
		unparseExp(buf, s.Cond)
		buf.WriteString(") {\n")
		unparseBlock(buf, s.ThenDecls, s.ThenStmts, indent+4)
		doIndent(buf, indent)
		buf.WriteString("}\n")
		doIndent(buf, indent)
		buf.WriteString("else {\n")
		unparseBlock(buf, s.ElseDecls, s.ElseStmts, indent+4)
		doIndent(buf, indent)
		buf.WriteString("}\n")

	case *WhileStmt:
		doIndent(buf, indent)
		buf.WriteString("while (")
		unparseExp(buf, s.Cond)
		buf.WriteString(") {\n")
		unparseBlock(buf, s.Decls, s.Stmts, indent+4)
		doIndent(buf, indent)
		buf.WriteString("}\n")

	case *CallStmt:
		doIndent(buf, indent)
		unparseExp(buf, s.Call)
		buf.WriteString(";\n")

	case *ReturnStmt:
		doIndent(buf, indent)
		buf.WriteString("return")
		if s.Exp != nil {
			buf.WriteByte(' ')
			unparseExp(buf, s.Exp)
		}
		buf.WriteString(";\n")

	default:
		panic(fmt.Sprintf("internal error: unknown stmt node %T", s))
	}
}

func unparseExp(buf *bytes.Buffer, e Exp) {
	switch e := e.(type) {
	case *IntLit:
		fmt.Fprintf(buf, "%d", e.Value)

	case *StrLit:
		buf.WriteString(e.Text)

	case *TrueLit:
		buf.WriteString("true")

	case *FalseLit:
		buf.WriteString("false")

	case *Ident:
		buf.WriteString(e.Name)

	case *DotAccessExp:
		unparseExp(buf, e.Loc)
		buf.WriteByte('.')
		buf.WriteString(e.Field.Name)

	case *AssignExp:
		// Nested assignments are parenthesized; AssignStmt prints the
		// top-level form without parentheses itself.
		buf.WriteByte('(')
		unparseExp(buf, e.Lhs)
		buf.WriteString(" = ")
		unparseExp(buf, e.Rhs)
		buf.WriteByte(')')

	case *CallExp:
		buf.WriteString(e.Fn.Name)
		buf.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			unparseExp(buf, a)
		}
		buf.WriteByte(')')

	case *UnaryExp:
		buf.WriteByte('(')
		buf.WriteString(e.Op)
		unparseExp(buf, e.Operand)
		buf.WriteByte(')')

	case *BinaryExp:
		buf.WriteByte('(')
		unparseExp(buf, e.Left)
		buf.WriteByte(' ')
		buf.WriteString(e.Op)
		buf.WriteByte(' ')
		unparseExp(buf, e.Right)
		buf.WriteByte(')')

	default:
		panic(fmt.Sprintf("internal error: unknown exp node %T", e))
	}
}
