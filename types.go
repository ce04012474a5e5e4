package main

import "strings"

// TypeKind identifies one of the closed set of minc type variants.
type TypeKind string

const (
	TypeInt            TypeKind = "int"
	TypeBool           TypeKind = "bool"
	TypeVoid           TypeKind = "void"
	TypeString         TypeKind = "string"
	TypeStructInstance TypeKind = "struct"    // a variable of some struct type
	TypeStructDef      TypeKind = "structdef" // a struct type name itself
	TypeFn             TypeKind = "fn"
	TypeError          TypeKind = "error"
)

// Type is a tagged union over TypeKind. Only the fields relevant to the
// kind are set.
type Type struct {
	Kind       TypeKind
	StructName string  // TypeStructInstance
	Params     []*Type // TypeFn
	Return     *Type   // TypeFn
}

// Shared instances for the kinds that carry no payload.
var (
	IntType       = &Type{Kind: TypeInt}
	BoolType      = &Type{Kind: TypeBool}
	VoidType      = &Type{Kind: TypeVoid}
	StringType    = &Type{Kind: TypeString}
	StructDefType = &Type{Kind: TypeStructDef}
	ErrorType     = &Type{Kind: TypeError}
)

// StructType returns the type of a variable declared with "struct name".
func StructType(name string) *Type {
	return &Type{Kind: TypeStructInstance, StructName: name}
}

// FnType returns a function signature type.
func FnType(params []*Type, ret *Type) *Type {
	return &Type{Kind: TypeFn, Params: params, Return: ret}
}

func (t *Type) IsInt() bool       { return t != nil && t.Kind == TypeInt }
func (t *Type) IsBool() bool      { return t != nil && t.Kind == TypeBool }
func (t *Type) IsVoid() bool      { return t != nil && t.Kind == TypeVoid }
func (t *Type) IsString() bool    { return t != nil && t.Kind == TypeString }
func (t *Type) IsStruct() bool    { return t != nil && t.Kind == TypeStructInstance }
func (t *Type) IsStructDef() bool { return t != nil && t.Kind == TypeStructDef }
func (t *Type) IsFn() bool        { return t != nil && t.Kind == TypeFn }
func (t *Type) IsError() bool     { return t != nil && t.Kind == TypeError }

// TypesEqual reports structural equality: same variant, and for struct
// instances the same struct name. Two function types are equal as types
// regardless of signature; signature checking happens at call sites.
func TypesEqual(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == TypeStructInstance {
		return a.StructName == b.StructName
	}
	return true
}

// String renders the type for diagnostics and debugging. Function types
// render as "p1,p2->ret".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case TypeStructInstance:
		return "struct " + t.StructName
	case TypeFn:
		var parts []string
		for _, p := range t.Params {
			parts = append(parts, p.String())
		}
		return strings.Join(parts, ",") + "->" + t.Return.String()
	default:
		return string(t.Kind)
	}
}
