package main

// The AST is split into four closed node categories: declarations,
// statements, expressions, and type references. Each category is an
// interface with an unexported marker method, so the set of variants is
// fixed at compile time and the passes can type-switch exhaustively.
//
// Nodes own their children; the only cross-links are the Sym fields set
// during name resolution, which point into the symbol table and are
// never owned by the tree.

// Program is the root of the AST: the program's top-level declarations.
type Program struct {
	Decls []Decl
}

// Decl is a top-level or local declaration.
type Decl interface {
	declNode()
}

// Stmt is a statement inside a function body or nested block.
type Stmt interface {
	stmtNode()
}

// Exp is an expression. Every expression carries a source position used
// for diagnostics; composite expressions report the position of the
// child the original implementation reports.
type Exp interface {
	expNode()
	Pos() (line, col int)
}

// TypeSpec is a type written in a declaration.
type TypeSpec interface {
	typeSpecNode()
	Type() *Type
}

// ----------------------------------------------------------------------
// Type specs
// ----------------------------------------------------------------------

type IntSpec struct{}

type BoolSpec struct{}

type VoidSpec struct{}

// StructSpec is a "struct Name" type reference. Name.Sym is linked to
// the struct definition's symbol during name resolution.
type StructSpec struct {
	Name *Ident
}

func (*IntSpec) typeSpecNode()    {}
func (*BoolSpec) typeSpecNode()   {}
func (*VoidSpec) typeSpecNode()   {}
func (*StructSpec) typeSpecNode() {}

func (*IntSpec) Type() *Type    { return IntType }
func (*BoolSpec) Type() *Type   { return BoolType }
func (*VoidSpec) Type() *Type   { return VoidType }
func (s *StructSpec) Type() *Type {
	return StructType(s.Name.Name)
}

// ----------------------------------------------------------------------
// Declarations
// ----------------------------------------------------------------------

// VarDecl declares a variable or a struct field: "int x;", "struct S s;".
type VarDecl struct {
	TypeSpec TypeSpec
	Name     *Ident
}

// FormalDecl declares one function parameter.
type FormalDecl struct {
	TypeSpec TypeSpec
	Name     *Ident
}

// FnDecl declares a function. The body's local declarations precede its
// statements, per the grammar.
type FnDecl struct {
	ReturnSpec TypeSpec
	Name       *Ident
	Formals    []*FormalDecl
	Body       *FnBody
}

type FnBody struct {
	Decls []*VarDecl
	Stmts []Stmt
}

// StructDecl declares a struct type: "struct S { fields };". The field
// names live in their own table, not in any lexical scope.
type StructDecl struct {
	Name   *Ident
	Fields []*VarDecl
}

func (*VarDecl) declNode()    {}
func (*FormalDecl) declNode() {}
func (*FnDecl) declNode()     {}
func (*StructDecl) declNode() {}

// ----------------------------------------------------------------------
// Statements
// ----------------------------------------------------------------------

type AssignStmt struct {
	Assign *AssignExp
}

type PostIncStmt struct {
	Loc Exp
}

type PostDecStmt struct {
	Loc Exp
}

// ReadStmt is "cin >> loc;".
type ReadStmt struct {
	Loc Exp
}

// WriteStmt is "cout << exp;".
type WriteStmt struct {
	Exp Exp
}

type IfStmt struct {
	Cond  Exp
	Decls []*VarDecl
	Stmts []Stmt
}

type IfElseStmt struct {
	Cond      Exp
	ThenDecls []*VarDecl
	ThenStmts []Stmt
	ElseDecls []*VarDecl
	ElseStmts []Stmt
}

type WhileStmt struct {
	Cond  Exp
	Decls []*VarDecl
	Stmts []Stmt
}

type CallStmt struct {
	Call *CallExp
}

// ReturnStmt's Exp is nil for a bare "return;".
type ReturnStmt struct {
	Exp Exp
}

func (*AssignStmt) stmtNode()  {}
func (*PostIncStmt) stmtNode() {}
func (*PostDecStmt) stmtNode() {}
func (*ReadStmt) stmtNode()    {}
func (*WriteStmt) stmtNode()   {}
func (*IfStmt) stmtNode()      {}
func (*IfElseStmt) stmtNode()  {}
func (*WhileStmt) stmtNode()   {}
func (*CallStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()  {}

// ----------------------------------------------------------------------
// Expressions
// ----------------------------------------------------------------------

type IntLit struct {
	Line, Col int
	Value     int64
}

// StrLit keeps the literal's source text, quotes and escapes included,
// so the pretty-printer reproduces it exactly.
type StrLit struct {
	Line, Col int
	Text      string
}

type TrueLit struct {
	Line, Col int
}

type FalseLit struct {
	Line, Col int
}

// Ident is a name occurrence. Sym is nil until name resolution links the
// occurrence to its declaration; it stays nil if resolution failed.
type Ident struct {
	Line, Col int
	Name      string
	Sym       *Symbol
}

// DotAccessExp is "loc.field". Loc is an *Ident or a nested
// *DotAccessExp. When the resolved field is itself struct-typed, Sym is
// linked to that struct definition's symbol so a further dot can chain.
// badAccess stops resolution of enclosing dot-accesses without
// cascading diagnostics.
type DotAccessExp struct {
	Loc       Exp
	Field     *Ident
	Sym       *Symbol
	badAccess bool
}

// AssignExp is "loc = exp". Assignment is an expression; nested uses are
// parenthesized by the pretty-printer.
type AssignExp struct {
	Lhs Exp
	Rhs Exp
}

type CallExp struct {
	Fn   *Ident
	Args []Exp
}

// UnaryExp's Op is "-" or "!".
type UnaryExp struct {
	Op      string
	Operand Exp
}

// BinaryExp's Op is one of "+", "-", "*", "/", "&&", "||", "==", "!=",
// "<", ">", "<=", ">=".
type BinaryExp struct {
	Op    string
	Left  Exp
	Right Exp
}

func (*IntLit) expNode()       {}
func (*StrLit) expNode()       {}
func (*TrueLit) expNode()      {}
func (*FalseLit) expNode()     {}
func (*Ident) expNode()        {}
func (*DotAccessExp) expNode() {}
func (*AssignExp) expNode()    {}
func (*CallExp) expNode()      {}
func (*UnaryExp) expNode()     {}
func (*BinaryExp) expNode()    {}

func (e *IntLit) Pos() (int, int)   { return e.Line, e.Col }
func (e *StrLit) Pos() (int, int)   { return e.Line, e.Col }
func (e *TrueLit) Pos() (int, int)  { return e.Line, e.Col }
func (e *FalseLit) Pos() (int, int) { return e.Line, e.Col }
func (e *Ident) Pos() (int, int)    { return e.Line, e.Col }

// A dot-access reports the position of its right-hand field name.
func (e *DotAccessExp) Pos() (int, int) { return e.Field.Pos() }

func (e *AssignExp) Pos() (int, int) { return e.Lhs.Pos() }
func (e *CallExp) Pos() (int, int)   { return e.Fn.Pos() }
func (e *UnaryExp) Pos() (int, int)  { return e.Operand.Pos() }
func (e *BinaryExp) Pos() (int, int) { return e.Left.Pos() }
