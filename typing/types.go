package typing

import (
	"strings"

	"arcc/ast"
)

// Type represents a source language type.
type Type interface {
	// Transpile returns the type label used for the type in the IR.  This is
	// also how the type is displayed to the user.
	Transpile() string

	// Equals returns whether this type is identical to the other type.
	Equals(other Type) bool

	typeNode()
}

// -----------------------------------------------------------------------------

// Enumeration of basic type kinds.
const (
	Integer = iota
	String
	Boolean
	Float
	UserDefined
)

// BasicType is a basic (scalar) type.
type BasicType struct {
	Kind int

	// The name of the type.  This is only used for user defined types: those
	// named by native library manifests.
	Name string
}

var basicLabels = map[int]string{
	Integer: "INT",
	String:  "CHAR[]",
	Boolean: "BOOL",
	Float:   "FLOAT",
}

func (bt *BasicType) Transpile() string {
	if bt.Kind == UserDefined {
		return bt.Name
	}

	return basicLabels[bt.Kind]
}

func (bt *BasicType) Equals(other Type) bool {
	if obt, ok := other.(*BasicType); ok {
		return bt.Kind == obt.Kind && (bt.Kind != UserDefined || bt.Name == obt.Name)
	}

	return false
}

// The basic types used throughout the compiler.
var (
	IntegerType = &BasicType{Kind: Integer}
	StringType  = &BasicType{Kind: String}
	BooleanType = &BasicType{Kind: Boolean}
	FloatType   = &BasicType{Kind: Float}
)

// NewUserDefined returns a new user defined basic type.
func NewUserDefined(name string) *BasicType {
	return &BasicType{Kind: UserDefined, Name: name}
}

// -----------------------------------------------------------------------------

// ArrayType is an array of elements of a single type.
type ArrayType struct {
	Elem Type
}

func (at *ArrayType) Transpile() string {
	return at.Elem.Transpile() + "[]"
}

func (at *ArrayType) Equals(other Type) bool {
	if oat, ok := other.(*ArrayType); ok {
		return at.Elem.Equals(oat.Elem)
	}

	return false
}

// -----------------------------------------------------------------------------

// FunctionType is the signature of a function value.
type FunctionType struct {
	// The name of the function buffer the function is compiled into.
	Reference string

	Params []Type

	// The return type.  This is Auto while the function's body is still being
	// compiled and its return type has not been declared.
	Return Type

	// Whether the function takes its receiver as its first parameter.
	IsMethod bool
}

func (ft *FunctionType) Transpile() string {
	return "FUNCTION"
}

func (ft *FunctionType) Equals(other Type) bool {
	oft, ok := other.(*FunctionType)
	if !ok || len(ft.Params) != len(oft.Params) || ft.IsMethod != oft.IsMethod {
		return false
	}

	for i, param := range ft.Params {
		if !param.Equals(oft.Params[i]) {
			return false
		}
	}

	return ft.Return.Equals(oft.Return)
}

// Repr returns a readable signature for the function type.
func (ft *FunctionType) Repr() string {
	sb := strings.Builder{}
	sb.WriteString("fn(")

	for i, param := range ft.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.Transpile())
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.Return.Transpile())
	return sb.String()
}

// -----------------------------------------------------------------------------

// LibraryType is the type of an imported native library.
type LibraryType struct {
	// The namespace the library is loaded into.
	Name string

	Methods map[string]*FunctionType
}

func (lt *LibraryType) Transpile() string {
	return "LIBRARY"
}

func (lt *LibraryType) Equals(other Type) bool {
	if olt, ok := other.(*LibraryType); ok {
		return lt.Name == olt.Name
	}

	return false
}

// -----------------------------------------------------------------------------

// CompoundField is a single field of a compound type.
type CompoundField struct {
	Name  string
	Index int
	Type  Type

	// The expression used to initialize the field when an instance does not
	// supply a value for it.  This is nil for module exports.
	Init ast.Expr
}

// CompoundType is a record type: a class, a hashmap literal or the exports of
// a module.  Compound types are nominal.
type CompoundType struct {
	Name   string
	Fields []*CompoundField
}

func (ct *CompoundType) Transpile() string {
	return ct.Name
}

func (ct *CompoundType) Equals(other Type) bool {
	if oct, ok := other.(*CompoundType); ok {
		return ct.Name == oct.Name
	}

	return false
}

// Field looks up a field by name.
func (ct *CompoundType) Field(name string) (*CompoundField, bool) {
	for _, field := range ct.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return nil, false
}

// AddField appends a new field to the compound type.
func (ct *CompoundType) AddField(name string, typ Type, init ast.Expr) *CompoundField {
	field := &CompoundField{Name: name, Index: len(ct.Fields), Type: typ, Init: init}
	ct.Fields = append(ct.Fields, field)
	return field
}

// FieldLabels returns the IR type labels of the fields in order.
func (ct *CompoundType) FieldLabels() []string {
	labels := make([]string, len(ct.Fields))
	for i, field := range ct.Fields {
		labels[i] = field.Type.Transpile()
	}

	return labels
}

// -----------------------------------------------------------------------------

// VoidType is the type of statements and expressions that yield no value.
type VoidType struct{}

func (VoidType) Transpile() string {
	return "VOID"
}

func (VoidType) Equals(other Type) bool {
	_, ok := other.(VoidType)
	return ok
}

// AutoType is a placeholder for a type which has not been inferred yet.
type AutoType struct{}

func (AutoType) Transpile() string {
	return "AUTO"
}

func (AutoType) Equals(other Type) bool {
	_, ok := other.(AutoType)
	return ok
}

// The singleton void and auto types.
var (
	Void Type = VoidType{}
	Auto Type = AutoType{}
)

func (*BasicType) typeNode()    {}
func (*ArrayType) typeNode()    {}
func (*FunctionType) typeNode() {}
func (*LibraryType) typeNode()  {}
func (*CompoundType) typeNode() {}
func (VoidType) typeNode()      {}
func (AutoType) typeNode()      {}

// -----------------------------------------------------------------------------

// IsAuto returns whether a type is still waiting to be inferred.
func IsAuto(typ Type) bool {
	_, ok := typ.(AutoType)
	return ok
}

// IsVoid returns whether a type is void.
func IsVoid(typ Type) bool {
	_, ok := typ.(VoidType)
	return ok
}

// IsNumeric returns whether a type is an integer or a float.
func IsNumeric(typ Type) bool {
	if bt, ok := typ.(*BasicType); ok {
		return bt.Kind == Integer || bt.Kind == Float
	}

	return false
}

// Compatible returns whether a value of type got may be stored where a value
// of type expected is wanted.  Auto on either side is compatible with
// anything.
func Compatible(got, expected Type) bool {
	return IsAuto(got) || IsAuto(expected) || got.Equals(expected)
}
