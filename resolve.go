package main

import "fmt"

// Name-resolution pass: a single top-down traversal in declaration and
// statement order that populates the symbol table and links every
// identifier occurrence to its symbol. Type checking must not start
// until this pass has visited the whole tree.

// BuildSymbolTable runs name resolution over the program and returns the
// symbol table, whose bottom frame is the global scope. Diagnostics are
// collected on the table's Errors.
func BuildSymbolTable(prog *Program) *SymbolTable {
	st := NewSymbolTable()
	for _, d := range prog.Decls {
		resolveDecl(d, st, st.Errors)
	}
	return st
}

func resolveDecl(d Decl, st *SymbolTable, errs *ErrorCollection) {
	switch d := d.(type) {
	case *VarDecl:
		resolveVarDecl(d, st, st, errs)
	case *FnDecl:
		resolveFnDecl(d, st, errs)
	case *StructDecl:
		resolveStructDecl(d, st, errs)
	case *FormalDecl:
		resolveFormalDecl(d, st, errs)
	default:
		panic(fmt.Sprintf("internal error: unknown decl node %T", d))
	}
}

// resolveVarDecl handles a variable or struct-field declaration. st is
// the table the name is declared into; lookupTab is where struct type
// names are resolved. The two differ only for struct fields, whose
// names live in the struct's private table while the struct type names
// they reference live in the enclosing scopes.
//
// The declaration is skipped (no symbol inserted) on any error, but a
// symbol is returned on success so formal-parameter lists can collect
// types.
func resolveVarDecl(d *VarDecl, st, lookupTab *SymbolTable, errs *ErrorCollection) *Symbol {
	badDecl := false
	var structDef *Symbol

	if _, ok := d.TypeSpec.(*VoidSpec); ok {
		errs.Add(d.Name.Line, d.Name.Col, "Non-function declared void")
		badDecl = true
	} else if ss, ok := d.TypeSpec.(*StructSpec); ok {
		sym := lookupTab.LookupGlobal(ss.Name.Name)
		if sym == nil || sym.Kind != SymStructDef {
			errs.Add(ss.Name.Line, ss.Name.Col, "Invalid name of struct type")
			badDecl = true
		} else {
			ss.Name.Sym = sym
			structDef = sym
		}
	}

	if st.LookupLocal(d.Name.Name) != nil {
		errs.Add(d.Name.Line, d.Name.Col, "Multiply declared identifier")
		badDecl = true
	}

	if badDecl {
		return nil
	}
	sym := &Symbol{Kind: SymVar, Type: d.TypeSpec.Type(), Def: structDef}
	st.AddDecl(d.Name.Name, sym)
	d.Name.Sym = sym
	return sym
}

// resolveFormalDecl mirrors resolveVarDecl's void and duplicate rules.
// Struct-typed formals are not validated against the global scope, so a
// dot-access through one later reports a non-struct access, matching
// the reference implementation.
func resolveFormalDecl(d *FormalDecl, st *SymbolTable, errs *ErrorCollection) *Symbol {
	badDecl := false

	if _, ok := d.TypeSpec.(*VoidSpec); ok {
		errs.Add(d.Name.Line, d.Name.Col, "Non-function declared void")
		badDecl = true
	}
	if st.LookupLocal(d.Name.Name) != nil {
		errs.Add(d.Name.Line, d.Name.Col, "Multiply declared identifier")
		badDecl = true
	}

	if badDecl {
		return nil
	}
	sym := &Symbol{Kind: SymVar, Type: d.TypeSpec.Type()}
	st.AddDecl(d.Name.Name, sym)
	d.Name.Sym = sym
	return sym
}

// resolveFnDecl declares the function symbol before descending into the
// body so recursive calls resolve. Formals and locals share one new
// scope. A multiply declared function is not inserted, but its formals
// and body are still resolved for further diagnostics.
func resolveFnDecl(d *FnDecl, st *SymbolTable, errs *ErrorCollection) {
	var sym *Symbol
	if st.LookupLocal(d.Name.Name) != nil {
		errs.Add(d.Name.Line, d.Name.Col, "Multiply declared identifier")
	} else {
		sym = &Symbol{Kind: SymFn, Return: d.ReturnSpec.Type()}
		st.AddDecl(d.Name.Name, sym)
		d.Name.Sym = sym
	}

	st.AddScope()

	params := []*Type{}
	for _, f := range d.Formals {
		if fsym := resolveFormalDecl(f, st, errs); fsym != nil {
			params = append(params, fsym.Type)
		}
	}
	if sym != nil {
		sym.Params = params
	}

	for _, v := range d.Body.Decls {
		resolveVarDecl(v, st, st, errs)
	}
	for _, s := range d.Body.Stmts {
		resolveStmt(s, st, errs)
	}

	st.RemoveScope()
}

// resolveStructDecl resolves the fields into a fresh table that becomes
// the struct's private field namespace. Fields are processed before the
// struct symbol is inserted, so a struct cannot contain a field of its
// own type.
func resolveStructDecl(d *StructDecl, st *SymbolTable, errs *ErrorCollection) {
	badDecl := false
	if st.LookupLocal(d.Name.Name) != nil {
		errs.Add(d.Name.Line, d.Name.Col, "Multiply declared identifier")
		badDecl = true
	}

	fields := NewSymbolTable()
	for _, f := range d.Fields {
		resolveVarDecl(f, fields, st, errs)
	}

	if badDecl {
		return
	}
	sym := &Symbol{Kind: SymStructDef, Fields: fields}
	st.AddDecl(d.Name.Name, sym)
	d.Name.Sym = sym
}

func resolveStmt(s Stmt, st *SymbolTable, errs *ErrorCollection) {
	switch s := s.(type) {
	case *AssignStmt:
		resolveExp(s.Assign, st, errs)
	case *PostIncStmt:
		resolveExp(s.Loc, st, errs)
	case *PostDecStmt:
		resolveExp(s.Loc, st, errs)
	case *ReadStmt:
		resolveExp(s.Loc, st, errs)
	case *WriteStmt:
		resolveExp(s.Exp, st, errs)
	case *IfStmt:
		resolveExp(s.Cond, st, errs)
		resolveBlock(s.Decls, s.Stmts, st, errs)
	case *IfElseStmt:
		resolveExp(s.Cond, st, errs)
		resolveBlock(s.ThenDecls, s.ThenStmts, st, errs)
		resolveBlock(s.ElseDecls, s.ElseStmts, st, errs)
	case *WhileStmt:
		resolveExp(s.Cond, st, errs)
		resolveBlock(s.Decls, s.Stmts, st, errs)
	case *CallStmt:
		resolveExp(s.Call, st, errs)
	case *ReturnStmt:
		if s.Exp != nil {
			resolveExp(s.Exp, st, errs)
		}
	default:
		panic(fmt.Sprintf("internal error: unknown stmt node %T", s))
	}
}

// resolveBlock gives a nested block its own scope around its local
// declarations and statements.
func resolveBlock(decls []*VarDecl, stmts []Stmt, st *SymbolTable, errs *ErrorCollection) {
	st.AddScope()
	for _, d := range decls {
		resolveVarDecl(d, st, st, errs)
	}
	for _, s := range stmts {
		resolveStmt(s, st, errs)
	}
	st.RemoveScope()
}

func resolveExp(e Exp, st *SymbolTable, errs *ErrorCollection) {
	switch e := e.(type) {
	case *IntLit, *StrLit, *TrueLit, *FalseLit:
		// no names

	case *Ident:
		sym := st.LookupGlobal(e.Name)
		if sym == nil {
			errs.Add(e.Line, e.Col, "Undeclared identifier")
		} else {
			e.Sym = sym
		}

	case *DotAccessExp:
		resolveDotAccess(e, st, errs)

	case *AssignExp:
		resolveExp(e.Lhs, st, errs)
		resolveExp(e.Rhs, st, errs)

	case *CallExp:
		resolveExp(e.Fn, st, errs)
		for _, a := range e.Args {
			resolveExp(a, st, errs)
		}

	case *UnaryExp:
		resolveExp(e.Operand, st, errs)

	case *BinaryExp:
		resolveExp(e.Left, st, errs)
		resolveExp(e.Right, st, errs)

	default:
		panic(fmt.Sprintf("internal error: unknown exp node %T", e))
	}
}

// resolveDotAccess resolves "loc.field". The left side resolves
// lexically; the field name resolves in the struct's private field
// table. When the left side already failed, resolution stops without
// another diagnostic.
func resolveDotAccess(e *DotAccessExp, st *SymbolTable, errs *ErrorCollection) {
	e.badAccess = false
	var fields *SymbolTable

	resolveExp(e.Loc, st, errs)

	switch loc := e.Loc.(type) {
	case *Ident:
		sym := loc.Sym
		if sym == nil {
			// Undeclared; already reported.
			e.badAccess = true
		} else if sym.Kind == SymVar && sym.Def != nil {
			fields = sym.Def.Fields
		} else {
			errs.Add(loc.Line, loc.Col, "Dot-access of non-struct type")
			e.badAccess = true
		}

	case *DotAccessExp:
		if loc.badAccess {
			e.badAccess = true
		} else if loc.Sym == nil {
			line, col := loc.Pos()
			errs.Add(line, col, "Dot-access of non-struct type")
			e.badAccess = true
		} else if loc.Sym.Kind == SymStructDef {
			fields = loc.Sym.Fields
		} else {
			panic("internal error: unexpected symbol kind in dot-access")
		}

	default:
		panic(fmt.Sprintf("internal error: unexpected node %T in LHS of dot-access", e.Loc))
	}

	if e.badAccess {
		return
	}

	sym := fields.LookupGlobal(e.Field.Name)
	if sym == nil {
		errs.Add(e.Field.Line, e.Field.Col, "Invalid struct field name")
		e.badAccess = true
		return
	}
	e.Field.Sym = sym
	if sym.Kind == SymVar && sym.Def != nil {
		e.Sym = sym.Def
	}
}
