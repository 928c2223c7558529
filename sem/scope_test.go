package sem

import (
	"testing"

	"arcc/typing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSym(name string, slot int) *Symbol {
	return &Symbol{Name: name, Slot: slot, Type: typing.IntegerType, ParamID: -1}
}

func TestArenaShadowing(t *testing.T) {
	a := NewArena()
	a.Define(newSym("x", 0))

	inner := a.Push()
	a.Define(newSym("x", 1))

	sym, ok := a.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1, sym.Slot)

	a.Pop()
	sym, ok = a.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 0, sym.Slot)

	// popped scopes are kept and can be reentered
	prev := a.Enter(inner)
	sym, _ = a.Lookup("x")
	assert.Equal(t, 1, sym.Slot)
	a.Enter(prev)
	assert.Equal(t, 0, a.Current())
}

func TestArenaLaterDefinitionsWin(t *testing.T) {
	a := NewArena()
	a.Define(newSym("x", 0))
	a.Define(newSym("x", 1))

	sym, ok := a.LookupLocal("x")
	require.True(t, ok)
	assert.Equal(t, 1, sym.Slot)
	assert.Len(t, a.Scope(0).Symbols, 2)
}

func TestArenaLookupLocal(t *testing.T) {
	a := NewArena()
	a.Define(newSym("x", 0))
	a.Push()

	_, ok := a.LookupLocal("x")
	assert.False(t, ok)

	_, ok = a.Lookup("x")
	assert.True(t, ok)

	_, ok = a.Lookup("y")
	assert.False(t, ok)
}

func TestArenaRootNeverPopped(t *testing.T) {
	a := NewArena()
	a.Pop()
	assert.Equal(t, 0, a.Current())

	a.Push()
	a.Push()
	assert.Equal(t, 2, a.Current())
	assert.Equal(t, 1, a.Scope(2).Parent)
	a.Pop()
	a.Pop()
	a.Pop()
	assert.Equal(t, 0, a.Current())
}

func TestSymbolModifiers(t *testing.T) {
	sym := newSym("m", 3)
	sym.Modifiers = ModModule | ModConstant

	assert.True(t, sym.HasModifier(ModConstant))
	assert.True(t, sym.HasModifier(ModModule))
	assert.False(t, sym.HasModifier(ModPublic))
	assert.False(t, sym.IsParameter())

	param := &Symbol{Name: "p", Slot: -1, ParamID: 0}
	assert.True(t, param.IsParameter())
}
