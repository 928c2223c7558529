package typing

// Enumeration of type kinds used to classify the receivers of extension
// methods.
const (
	KindOther = iota
	KindInteger
	KindFloat
	KindBoolean
	KindString
	KindArray
)

// KindOf classifies a type by kind.
func KindOf(typ Type) int {
	switch v := typ.(type) {
	case *BasicType:
		switch v.Kind {
		case Integer:
			return KindInteger
		case Float:
			return KindFloat
		case Boolean:
			return KindBoolean
		case String:
			return KindString
		}
	case *ArrayType:
		return KindArray
	}

	return KindOther
}

// ElemType returns the type of the elements yielded by indexing or iterating
// over a value of the given type.  Strings yield strings.
func ElemType(typ Type) (Type, bool) {
	switch KindOf(typ) {
	case KindArray:
		return typ.(*ArrayType).Elem, true
	case KindString:
		return StringType, true
	}

	return nil, false
}

// builtinNames maps the builtin type names to their types.
var builtinNames = map[string]Type{
	"int":    IntegerType,
	"float":  FloatType,
	"string": StringType,
	"bool":   BooleanType,
	"var":    Auto,
	"void":   Void,
}

// LookupBuiltin looks up a builtin type by its source name.
func LookupBuiltin(name string) (Type, bool) {
	typ, ok := builtinNames[name]
	return typ, ok
}

// WrapArray wraps a type in the given number of array dimensions.
func WrapArray(typ Type, depth int) Type {
	for i := 0; i < depth; i++ {
		typ = &ArrayType{Elem: typ}
	}

	return typ
}
