package sem

import (
	"arcc/report"
	"arcc/typing"
)

// Symbol represents a named value bound in a scope.
type Symbol struct {
	// Name is the qualified name of the symbol: its declared name prefixed by
	// the location of the module that declared it.
	Name string

	// Slot is the variable slot the symbol's value is stored in.  Slots are
	// unique across a compilation.  Parameters and libraries have no slot.
	Slot int

	// Type stores the data type of this symbol.  This may be Auto until a value
	// has been assigned to the symbol.
	Type typing.Type

	// Modifiers is a bit field that is used to store the modifiers of the
	// symbol.  The various bit field values are enumerated below.
	Modifiers int

	// ParamID is the index of the symbol in its function's parameter list or
	// -1 if the symbol is not a parameter.
	ParamID int

	// FuncID is the ID of the function that owns the symbol.
	FuncID int

	// DefSpan is the text span where this symbol is defined.
	DefSpan *report.TextSpan
}

// HasModifier checks if the symbol has a given modifier.
func (sym *Symbol) HasModifier(modifier int) bool {
	return sym.Modifiers&modifier != 0
}

// IsParameter returns whether the symbol is a function parameter.
func (sym *Symbol) IsParameter() bool {
	return sym.ParamID >= 0
}

// Enumeration of symbol modifiers.  These are used as bitfield values.
const (
	ModConstant = 1 << iota
	ModPublic
	ModModule
)
