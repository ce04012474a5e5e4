package main

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestAddDeclThenLookupLocal(t *testing.T) {
	st := NewSymbolTable()
	sym := &Symbol{Kind: SymVar, Type: IntType}
	st.AddDecl("x", sym)
	be.Equal(t, st.LookupLocal("x"), sym)
	be.Equal(t, st.LookupGlobal("x"), sym)
}

func TestLookupLocalIgnoresOuterScopes(t *testing.T) {
	st := NewSymbolTable()
	st.AddDecl("x", &Symbol{Kind: SymVar, Type: IntType})
	st.AddScope()
	be.Equal(t, st.LookupLocal("x"), (*Symbol)(nil))
}

func TestLookupGlobalFindsNearestBinding(t *testing.T) {
	st := NewSymbolTable()
	outer := &Symbol{Kind: SymVar, Type: IntType}
	inner := &Symbol{Kind: SymVar, Type: BoolType}
	st.AddDecl("x", outer)
	st.AddScope()
	st.AddDecl("x", inner)

	be.Equal(t, st.LookupGlobal("x"), inner)

	st.RemoveScope()
	be.Equal(t, st.LookupGlobal("x"), outer)
}

func TestLookupGlobalSearchesAllScopes(t *testing.T) {
	st := NewSymbolTable()
	sym := &Symbol{Kind: SymFn, Return: VoidType}
	st.AddDecl("f", sym)
	st.AddScope()
	st.AddScope()
	be.Equal(t, st.LookupGlobal("f"), sym)
	be.Equal(t, st.LookupGlobal("g"), (*Symbol)(nil))
}

func TestRemoveScopeOnEmptyTablePanics(t *testing.T) {
	st := NewSymbolTable()
	st.RemoveScope() // drop the global scope

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		be.True(t, strings.Contains(r.(string), "internal error"))
	}()
	st.RemoveScope()
}

func TestAddDeclDuplicatePanics(t *testing.T) {
	st := NewSymbolTable()
	st.AddDecl("x", &Symbol{Kind: SymVar, Type: IntType})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		be.True(t, strings.Contains(r.(string), "multiply declared"))
	}()
	st.AddDecl("x", &Symbol{Kind: SymVar, Type: BoolType})
}

func TestAddDeclOnEmptyTablePanics(t *testing.T) {
	st := NewSymbolTable()
	st.RemoveScope()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	st.AddDecl("x", &Symbol{Kind: SymVar, Type: IntType})
}

func TestDeclaredType(t *testing.T) {
	v := &Symbol{Kind: SymVar, Type: StructType("Point")}
	be.Equal(t, v.DeclaredType().String(), "struct Point")

	sd := &Symbol{Kind: SymStructDef, Fields: NewSymbolTable()}
	be.True(t, sd.DeclaredType().IsStructDef())

	fn := &Symbol{Kind: SymFn, Params: []*Type{IntType, BoolType}, Return: VoidType}
	ft := fn.DeclaredType()
	be.True(t, ft.IsFn())
	be.Equal(t, ft.String(), "int,bool->void")
}
