package walk

import "arcc/typing"

// Enumeration of extension IDs.  These are fixed by the IR.
const (
	ExtToString = iota
	ExtToInt
	ExtSlice
)

// Enumeration of the instructions used to lower extension calls.
const (
	instrExtension = iota
	instrPush
	instrPop
	instrLength
)

// Extension is a builtin method callable on values of a builtin type.
type Extension struct {
	Name string

	// The extension ID passed to `.EXTENSION`.  This is only meaningful for
	// extensions lowered to `.EXTENSION`.
	ID int

	// The instruction the extension is lowered to.
	Instr int

	// Signature returns the parameter types and return type of the extension
	// for a given receiver type.
	Signature func(recv typing.Type) ([]typing.Type, typing.Type)
}

// fixedSig creates a signature which does not depend on the receiver.
func fixedSig(ret typing.Type, params ...typing.Type) func(typing.Type) ([]typing.Type, typing.Type) {
	return func(typing.Type) ([]typing.Type, typing.Type) {
		return params, ret
	}
}

var (
	extToString = &Extension{
		Name:      "to_string",
		ID:        ExtToString,
		Signature: fixedSig(typing.StringType),
	}

	extToInt = &Extension{
		Name:      "to_int",
		ID:        ExtToInt,
		Signature: fixedSig(typing.IntegerType),
	}

	extSlice = &Extension{
		Name: "slice",
		ID:   ExtSlice,
		Signature: func(recv typing.Type) ([]typing.Type, typing.Type) {
			return []typing.Type{typing.IntegerType, typing.IntegerType}, recv
		},
	}

	extLength = &Extension{
		Name:      "length",
		Instr:     instrLength,
		Signature: fixedSig(typing.IntegerType),
	}

	extAdd = &Extension{
		Name:  "add",
		Instr: instrPush,
		Signature: func(recv typing.Type) ([]typing.Type, typing.Type) {
			return []typing.Type{recv.(*typing.ArrayType).Elem}, typing.Void
		},
	}

	extRemove = &Extension{
		Name:  "remove",
		Instr: instrPop,
		Signature: func(recv typing.Type) ([]typing.Type, typing.Type) {
			return []typing.Type{typing.IntegerType}, recv.(*typing.ArrayType).Elem
		},
	}
)

// extensionTable lists the extensions available for each receiver kind.
var extensionTable = map[int][]*Extension{
	typing.KindInteger: {extToString},
	typing.KindFloat:   {extToString, extToInt},
	typing.KindBoolean: {extToString},
	typing.KindString:  {extToInt, extLength, extSlice},
	typing.KindArray:   {extAdd, extRemove, extLength, extSlice},
}

// newExtensionRegistry builds the extension lookup table used by a walker.
func newExtensionRegistry() map[int]map[string]*Extension {
	registry := make(map[int]map[string]*Extension, len(extensionTable))
	for kind, exts := range extensionTable {
		byName := make(map[string]*Extension, len(exts))
		for _, ext := range exts {
			byName[ext.Name] = ext
		}

		registry[kind] = byName
	}

	return registry
}
