package main

import "fmt"

// Recursive-descent parser. Precedence climbing handles binary
// expressions; assignment sits below all binary operators and is
// right-associative.
//
// The parser does not try to resynchronize: a syntax error is recorded
// on the lexer's error collection and the offending token is skipped,
// which is enough to keep making progress. Semantic analysis only runs
// on a parse that produced no syntax errors.

// ParseProgram parses a whole compilation unit: a list of variable,
// function, and struct declarations.
func ParseProgram(l *Lexer) *Program {
	prog := &Program{}
	for l.CurrTokenType != EOF {
		before := l.pos
		d := parseDecl(l)
		if d != nil {
			prog.Decls = append(prog.Decls, d)
		}
		if l.pos == before && l.CurrTokenType != EOF {
			// Unknown token at top level; skip it so the loop advances.
			syntaxError(l, "expected a declaration")
			l.NextToken()
		}
	}
	return prog
}

func syntaxError(l *Lexer, msg string) {
	l.Errors.Add(l.CurrLine, l.CurrCol, fmt.Sprintf("syntax error: %s, got %s", msg, l.CurrTokenType))
}

// skipToken advances past the current token if it matches, and records a
// syntax error without consuming it otherwise.
func skipToken(l *Lexer, expected TokenType) {
	if l.CurrTokenType != expected {
		syntaxError(l, fmt.Sprintf("expected %s", expected))
		return
	}
	l.NextToken()
}

func parseIdent(l *Lexer) *Ident {
	id := &Ident{Line: l.CurrLine, Col: l.CurrCol, Name: l.CurrLiteral}
	skipToken(l, IDENT)
	return id
}

func isTypeStart(t TokenType) bool {
	return t == INT || t == BOOL || t == VOID || t == STRUCT
}

// parseTypeSpec parses "int", "bool", "void", or "struct Name".
func parseTypeSpec(l *Lexer) TypeSpec {
	switch l.CurrTokenType {
	case INT:
		l.NextToken()
		return &IntSpec{}
	case BOOL:
		l.NextToken()
		return &BoolSpec{}
	case VOID:
		l.NextToken()
		return &VoidSpec{}
	case STRUCT:
		l.NextToken()
		return &StructSpec{Name: parseIdent(l)}
	default:
		syntaxError(l, "expected a type")
		return &IntSpec{}
	}
}

// parseDecl parses one top-level declaration. "struct S" is ambiguous
// between a struct declaration and a struct-typed variable until the
// token after the name.
func parseDecl(l *Lexer) Decl {
	if l.CurrTokenType == STRUCT {
		l.NextToken()
		name := parseIdent(l)
		if l.CurrTokenType == LBRACE {
			return parseStructDeclRest(l, name)
		}
		varName := parseIdent(l)
		skipToken(l, SEMICOLON)
		return &VarDecl{TypeSpec: &StructSpec{Name: name}, Name: varName}
	}

	spec := parseTypeSpec(l)
	name := parseIdent(l)
	if l.CurrTokenType == LPAREN {
		return parseFnDeclRest(l, spec, name)
	}
	skipToken(l, SEMICOLON)
	return &VarDecl{TypeSpec: spec, Name: name}
}

// parseVarDecl parses a local or field declaration: type name ";".
func parseVarDecl(l *Lexer) *VarDecl {
	spec := parseTypeSpec(l)
	name := parseIdent(l)
	skipToken(l, SEMICOLON)
	return &VarDecl{TypeSpec: spec, Name: name}
}

// parseStructDeclRest parses "{ fields };" after "struct Name".
func parseStructDeclRest(l *Lexer, name *Ident) *StructDecl {
	skipToken(l, LBRACE)
	d := &StructDecl{Name: name}
	for isTypeStart(l.CurrTokenType) {
		d.Fields = append(d.Fields, parseVarDecl(l))
	}
	skipToken(l, RBRACE)
	skipToken(l, SEMICOLON)
	return d
}

// parseFnDeclRest parses "(formals) { body }" after the return type and
// function name.
func parseFnDeclRest(l *Lexer, ret TypeSpec, name *Ident) *FnDecl {
	skipToken(l, LPAREN)
	d := &FnDecl{ReturnSpec: ret, Name: name}
	if l.CurrTokenType != RPAREN {
		d.Formals = append(d.Formals, parseFormalDecl(l))
		for l.CurrTokenType == COMMA {
			l.NextToken()
			d.Formals = append(d.Formals, parseFormalDecl(l))
		}
	}
	skipToken(l, RPAREN)
	d.Body = parseFnBody(l)
	return d
}

func parseFormalDecl(l *Lexer) *FormalDecl {
	spec := parseTypeSpec(l)
	return &FormalDecl{TypeSpec: spec, Name: parseIdent(l)}
}

// parseFnBody parses "{ decls stmts }". Local declarations precede
// statements, per the grammar.
func parseFnBody(l *Lexer) *FnBody {
	skipToken(l, LBRACE)
	body := &FnBody{}
	body.Decls, body.Stmts = parseBlockContents(l)
	skipToken(l, RBRACE)
	return body
}

// parseBlockContents parses the decls-then-stmts interior of a braced
// block, stopping at the closing brace.
func parseBlockContents(l *Lexer) ([]*VarDecl, []Stmt) {
	var decls []*VarDecl
	var stmts []Stmt
	for isTypeStart(l.CurrTokenType) {
		decls = append(decls, parseVarDecl(l))
	}
	for l.CurrTokenType != RBRACE && l.CurrTokenType != EOF {
		before := l.pos
		s := parseStmt(l)
		if s != nil {
			stmts = append(stmts, s)
		}
		if l.pos == before && l.CurrTokenType != RBRACE && l.CurrTokenType != EOF {
			syntaxError(l, "expected a statement")
			l.NextToken()
		}
	}
	return decls, stmts
}

func parseStmt(l *Lexer) Stmt {
	switch l.CurrTokenType {
	case CIN:
		l.NextToken()
		skipToken(l, READ)
		loc := parseLoc(l)
		skipToken(l, SEMICOLON)
		return &ReadStmt{Loc: loc}

	case COUT:
		l.NextToken()
		skipToken(l, WRITE)
		exp := parseExpression(l)
		skipToken(l, SEMICOLON)
		return &WriteStmt{Exp: exp}

	case IF:
		l.NextToken()
		skipToken(l, LPAREN)
		cond := parseExpression(l)
		skipToken(l, RPAREN)
		skipToken(l, LBRACE)
		thenDecls, thenStmts := parseBlockContents(l)
		skipToken(l, RBRACE)
		if l.CurrTokenType != ELSE {
			return &IfStmt{Cond: cond, Decls: thenDecls, Stmts: thenStmts}
		}
		l.NextToken()
		skipToken(l, LBRACE)
		elseDecls, elseStmts := parseBlockContents(l)
		skipToken(l, RBRACE)
		return &IfElseStmt{
			Cond:      cond,
			ThenDecls: thenDecls,
			ThenStmts: thenStmts,
			ElseDecls: elseDecls,
			ElseStmts: elseStmts,
		}

	case WHILE:
		l.NextToken()
		skipToken(l, LPAREN)
		cond := parseExpression(l)
		skipToken(l, RPAREN)
		skipToken(l, LBRACE)
		decls, stmts := parseBlockContents(l)
		skipToken(l, RBRACE)
		return &WhileStmt{Cond: cond, Decls: decls, Stmts: stmts}

	case RETURN:
		l.NextToken()
		var exp Exp
		if l.CurrTokenType != SEMICOLON {
			exp = parseExpression(l)
		}
		skipToken(l, SEMICOLON)
		return &ReturnStmt{Exp: exp}

	case IDENT:
		exp := parseExpression(l)
		switch l.CurrTokenType {
		case PLUS_PLUS:
			l.NextToken()
			skipToken(l, SEMICOLON)
			return &PostIncStmt{Loc: exp}
		case MINUS_MINUS:
			l.NextToken()
			skipToken(l, SEMICOLON)
			return &PostDecStmt{Loc: exp}
		}
		skipToken(l, SEMICOLON)
		switch e := exp.(type) {
		case *AssignExp:
			return &AssignStmt{Assign: e}
		case *CallExp:
			return &CallStmt{Call: e}
		default:
			line, col := exp.Pos()
			l.Errors.Add(line, col, "syntax error: expression is not a statement")
			return nil
		}

	default:
		return nil
	}
}

// parseLoc parses an identifier or dot-access chain, the only forms
// allowed on the left of "=", after "cin >>", and before "++"/"--".
func parseLoc(l *Lexer) Exp {
	var loc Exp = parseIdent(l)
	for l.CurrTokenType == DOT {
		l.NextToken()
		loc = &DotAccessExp{Loc: loc, Field: parseIdent(l)}
	}
	return loc
}

// precedence returns the precedence level for a binary operator token,
// or 0 if the token is not a binary operator.
func precedence(tokenType TokenType) int {
	switch tokenType {
	case OR:
		return 1
	case AND:
		return 2
	case EQ, NOT_EQ:
		return 3
	case LT, GT, LE, GE:
		return 4
	case PLUS, MINUS:
		return 5
	case ASTERISK, SLASH:
		return 6
	default:
		return 0
	}
}

// parseExpression parses a full expression, including assignment.
func parseExpression(l *Lexer) Exp {
	left := parseBinaryExpression(l, 1)
	if l.CurrTokenType != ASSIGN {
		return left
	}
	switch left.(type) {
	case *Ident, *DotAccessExp:
	default:
		syntaxError(l, "left side of assignment must be a variable")
	}
	l.NextToken()
	rhs := parseExpression(l)
	return &AssignExp{Lhs: left, Rhs: rhs}
}

func parseBinaryExpression(l *Lexer, minPrec int) Exp {
	left := parseUnaryExpression(l)
	for {
		prec := precedence(l.CurrTokenType)
		if prec < minPrec || prec == 0 {
			return left
		}
		op := string(l.CurrTokenType)
		l.NextToken()
		right := parseBinaryExpression(l, prec+1)
		left = &BinaryExp{Op: op, Left: left, Right: right}
	}
}

func parseUnaryExpression(l *Lexer) Exp {
	switch l.CurrTokenType {
	case MINUS:
		l.NextToken()
		return &UnaryExp{Op: "-", Operand: parseUnaryExpression(l)}
	case BANG:
		l.NextToken()
		return &UnaryExp{Op: "!", Operand: parseUnaryExpression(l)}
	default:
		return parsePrimary(l)
	}
}

func parsePrimary(l *Lexer) Exp {
	switch l.CurrTokenType {
	case INTLIT:
		e := &IntLit{Line: l.CurrLine, Col: l.CurrCol, Value: l.CurrIntValue}
		l.NextToken()
		return e

	case STRINGLIT:
		e := &StrLit{Line: l.CurrLine, Col: l.CurrCol, Text: l.CurrLiteral}
		l.NextToken()
		return e

	case TRUE:
		e := &TrueLit{Line: l.CurrLine, Col: l.CurrCol}
		l.NextToken()
		return e

	case FALSE:
		e := &FalseLit{Line: l.CurrLine, Col: l.CurrCol}
		l.NextToken()
		return e

	case LPAREN:
		l.NextToken()
		e := parseExpression(l)
		skipToken(l, RPAREN)
		return e

	case IDENT:
		id := parseIdent(l)
		if l.CurrTokenType == LPAREN {
			return parseCallRest(l, id)
		}
		var loc Exp = id
		for l.CurrTokenType == DOT {
			l.NextToken()
			loc = &DotAccessExp{Loc: loc, Field: parseIdent(l)}
		}
		return loc

	default:
		syntaxError(l, "expected an expression")
		e := &IntLit{Line: l.CurrLine, Col: l.CurrCol}
		l.NextToken()
		return e
	}
}

// parseCallRest parses "(args)" after a callee name.
func parseCallRest(l *Lexer, fn *Ident) *CallExp {
	skipToken(l, LPAREN)
	call := &CallExp{Fn: fn}
	if l.CurrTokenType != RPAREN {
		call.Args = append(call.Args, parseExpression(l))
		for l.CurrTokenType == COMMA {
			l.NextToken()
			call.Args = append(call.Args, parseExpression(l))
		}
	}
	skipToken(l, RPAREN)
	return call
}
