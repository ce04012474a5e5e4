package main

// SymbolTable is a stack of lexical scopes mapping names to symbols.
// The bottom frame is the global scope; the last frame is the innermost.
// A fresh table (one empty frame) also serves as a struct definition's
// private field namespace.
//
// Misusing the table is a bug in the caller, not a user error, so the
// mutating operations panic on contract violations instead of returning
// errors: callers must pair AddScope/RemoveScope and must check
// LookupLocal before AddDecl.
type SymbolTable struct {
	frames []map[string]*Symbol

	// Errors collects the diagnostics of the name-resolution pass that
	// populated this table.
	Errors *ErrorCollection
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		frames: []map[string]*Symbol{{}},
		Errors: NewErrorCollection(),
	}
}

// AddScope pushes a new empty scope.
func (st *SymbolTable) AddScope() {
	st.frames = append(st.frames, map[string]*Symbol{})
}

// RemoveScope pops the innermost scope.
func (st *SymbolTable) RemoveScope() {
	if len(st.frames) == 0 {
		panic("internal error: RemoveScope on an empty symbol table")
	}
	st.frames = st.frames[:len(st.frames)-1]
}

// AddDecl inserts name into the innermost scope.
func (st *SymbolTable) AddDecl(name string, sym *Symbol) {
	if len(st.frames) == 0 {
		panic("internal error: AddDecl on an empty symbol table")
	}
	top := st.frames[len(st.frames)-1]
	if _, ok := top[name]; ok {
		panic("internal error: AddDecl of multiply declared name " + name)
	}
	top[name] = sym
}

// LookupLocal searches only the innermost scope.
func (st *SymbolTable) LookupLocal(name string) *Symbol {
	if len(st.frames) == 0 {
		return nil
	}
	return st.frames[len(st.frames)-1][name]
}

// LookupGlobal searches from the innermost scope outward to the global
// scope and returns the first match.
func (st *SymbolTable) LookupGlobal(name string) *Symbol {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if sym, ok := st.frames[i][name]; ok {
			return sym
		}
	}
	return nil
}
