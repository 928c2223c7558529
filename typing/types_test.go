package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranspile(t *testing.T) {
	point := &CompoundType{Name: "Point"}
	point.AddField("x", IntegerType, nil)
	point.AddField("tags", &ArrayType{Elem: StringType}, nil)

	tests := []struct {
		typ  Type
		want string
	}{
		{IntegerType, "INT"},
		{FloatType, "FLOAT"},
		{StringType, "CHAR[]"},
		{BooleanType, "BOOL"},
		{NewUserDefined("Handle"), "Handle"},
		{WrapArray(IntegerType, 2), "INT[][]"},
		{&ArrayType{Elem: StringType}, "CHAR[][]"},
		{&FunctionType{Params: []Type{IntegerType}, Return: Void}, "FUNCTION"},
		{&LibraryType{Name: "m"}, "LIBRARY"},
		{point, "Point"},
		{Void, "VOID"},
		{Auto, "AUTO"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.typ.Transpile())
	}

	assert.Equal(t, []string{"INT", "CHAR[][]"}, point.FieldLabels())
}

func TestEquals(t *testing.T) {
	assert.True(t, IntegerType.Equals(&BasicType{Kind: Integer}))
	assert.False(t, IntegerType.Equals(FloatType))
	assert.True(t, NewUserDefined("A").Equals(NewUserDefined("A")))
	assert.False(t, NewUserDefined("A").Equals(NewUserDefined("B")))

	assert.True(t, WrapArray(IntegerType, 2).Equals(WrapArray(IntegerType, 2)))
	assert.False(t, WrapArray(IntegerType, 2).Equals(WrapArray(IntegerType, 1)))

	f := &FunctionType{Params: []Type{IntegerType}, Return: StringType}
	assert.True(t, f.Equals(&FunctionType{Params: []Type{IntegerType}, Return: StringType}))
	assert.False(t, f.Equals(&FunctionType{Params: []Type{FloatType}, Return: StringType}))
	assert.False(t, f.Equals(&FunctionType{Params: []Type{IntegerType}, Return: StringType, IsMethod: true}))
	assert.False(t, f.Equals(&FunctionType{Return: StringType}))

	// compound types are nominal
	a := &CompoundType{Name: "MAP_1"}
	a.AddField("x", IntegerType, nil)
	b := &CompoundType{Name: "MAP_2"}
	b.AddField("x", IntegerType, nil)
	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(&CompoundType{Name: "MAP_1"}))

	assert.True(t, Void.Equals(VoidType{}))
	assert.False(t, Void.Equals(Auto))
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible(IntegerType, IntegerType))
	assert.True(t, Compatible(Auto, StringType))
	assert.True(t, Compatible(StringType, Auto))
	assert.False(t, Compatible(IntegerType, FloatType))
	assert.False(t, Compatible(Void, IntegerType))
}

func TestKindsAndElements(t *testing.T) {
	assert.Equal(t, KindInteger, KindOf(IntegerType))
	assert.Equal(t, KindFloat, KindOf(FloatType))
	assert.Equal(t, KindBoolean, KindOf(BooleanType))
	assert.Equal(t, KindString, KindOf(StringType))
	assert.Equal(t, KindArray, KindOf(WrapArray(FloatType, 1)))
	assert.Equal(t, KindOther, KindOf(NewUserDefined("Handle")))
	assert.Equal(t, KindOther, KindOf(&CompoundType{Name: "P"}))

	elem, ok := ElemType(WrapArray(FloatType, 2))
	assert.True(t, ok)
	assert.Equal(t, "FLOAT[]", elem.Transpile())

	elem, ok = ElemType(StringType)
	assert.True(t, ok)
	assert.Equal(t, StringType, elem)

	_, ok = ElemType(IntegerType)
	assert.False(t, ok)

	assert.True(t, IsNumeric(FloatType))
	assert.False(t, IsNumeric(StringType))
}

func TestCompoundFields(t *testing.T) {
	ct := &CompoundType{Name: "Point"}
	ct.AddField("x", IntegerType, nil)
	y := ct.AddField("y", FloatType, nil)
	assert.Equal(t, 1, y.Index)

	field, ok := ct.Field("y")
	assert.True(t, ok)
	assert.Same(t, y, field)

	_, ok = ct.Field("z")
	assert.False(t, ok)
}

func TestLookupBuiltin(t *testing.T) {
	for name, want := range map[string]Type{
		"int": IntegerType, "float": FloatType, "string": StringType,
		"bool": BooleanType, "var": Auto, "void": Void,
	} {
		typ, ok := LookupBuiltin(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, typ, name)
	}

	_, ok := LookupBuiltin("Point")
	assert.False(t, ok)
}

func TestFunctionRepr(t *testing.T) {
	f := &FunctionType{Params: []Type{IntegerType, StringType}, Return: Void}
	assert.Equal(t, "fn(INT, CHAR[]) -> VOID", f.Repr())
}
