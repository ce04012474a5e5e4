package main

// SymbolKind identifies what a declared name stands for.
type SymbolKind string

const (
	SymVar       SymbolKind = "var"       // plain variable or struct field
	SymStructDef SymbolKind = "structdef" // a struct type definition
	SymFn        SymbolKind = "fn"        // a function
)

// Symbol is one entry in a symbol table. Only the fields relevant to the
// kind are set:
//
//   - SymVar: Type holds the declared type. If the type is a struct
//     instance, Def links to the struct definition's symbol (resolved
//     once during name analysis so dot-access does not re-search the
//     global scope).
//   - SymStructDef: Fields holds the struct's private field table.
//   - SymFn: Return and Params hold the signature. Params is filled in
//     after the formals have been resolved.
type Symbol struct {
	Kind   SymbolKind
	Type   *Type
	Def    *Symbol
	Fields *SymbolTable
	Return *Type
	Params []*Type
}

// DeclaredType is the type an identifier bound to this symbol has in an
// expression.
func (s *Symbol) DeclaredType() *Type {
	switch s.Kind {
	case SymVar:
		return s.Type
	case SymStructDef:
		return StructDefType
	case SymFn:
		return FnType(s.Params, s.Return)
	}
	panic("internal error: unknown symbol kind " + string(s.Kind))
}
