package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructions(t *testing.T) {
	one := Constant("INT", "1")
	two := Constant("INT", "2")

	tests := []struct {
		got, want string
	}{
		{one, ".CONSTANT INT 1;"},
		{Constant("CHAR[]", Quote("a\"b\\c\n")), `.CONSTANT CHAR[] "a\"b\\c\n";`},
		{ConstantList("INT[]"), ".CONSTANT INT[] { };"},
		{ConstantList("INT[]", one, two), ".CONSTANT INT[] { .CONSTANT INT 1; .CONSTANT INT 2; };"},
		{ConstantFunction("fn_1"), `.CONSTANT FUNCTION "fn_1";`},
		{LoadVariable(3), ".LOAD VARIABLE 3;"},
		{LoadParameter(1, 0), ".LOAD PARAMETER 1 0;"},
		{Store(0, one), ".STORE 0 { .CONSTANT INT 1; };"},
		{StoreParameter(2, 1, one), ".STORE PARAMETER 2 1 { .CONSTANT INT 1; };"},
		{Binary(Add, one, two), ".ADD { .CONSTANT INT 1; .CONSTANT INT 2; };"},
		{If(one, Break(), ""), ".IF CONDITION { .CONSTANT INT 1; } THEN { .BREAK; } ELSE { };"},
		{While(one, ""), ".WHILE CONDITION { .CONSTANT INT 1; } THEN { };"},
		{Return(""), ".RETURN { };"},
		{Call(ConstantFunction("f")), `.CALL { .CONSTANT FUNCTION "f"; } { };`},
		{CallLibrary("m", "sqrt", one), ".CALL m::sqrt { .CONSTANT INT 1; };"},
		{Index(LoadVariable(0), one), ".INDEX { .LOAD VARIABLE 0; } { .CONSTANT INT 1; };"},
		{Assign(LoadVariable(0), two), ".ASSIGN { .LOAD VARIABLE 0; } { .CONSTANT INT 2; };"},
		{Push(LoadVariable(0), one), ".PUSH { .LOAD VARIABLE 0; } { .CONSTANT INT 1; };"},
		{Pop(LoadVariable(0), one), ".POP { .LOAD VARIABLE 0; } { .CONSTANT INT 1; };"},
		{Length(LoadVariable(0)), ".LENGTH { .LOAD VARIABLE 0; };"},
		{Extension(0, one), ".EXTENSION 0 { .CONSTANT INT 1; } { };"},
		{LoadLib("/lib/m.so", "m"), `.LOADLIB { .CONSTANT CHAR[] "/lib/m.so"; } "m";`},
		{Compound("Point", []string{"INT", "FLOAT"}), `.COMPOUND "Point" { INT; FLOAT; };`},
		{Compound("Empty", nil), `.COMPOUND "Empty" { };`},
		{FunctionHeader("f", 1, "INT", []string{"INT"}), `.FUNCTION "f" 1 INT ARGUMENTS { INT; } FREE { } THEN {`},
		{Join(one, "", two), ".CONSTANT INT 1; .CONSTANT INT 2;"},
		{Block(), "{ }"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.got)
	}
}

func TestFunctionBuffer(t *testing.T) {
	buf := NewFunctionBuffer("f", 1, FunctionHeader("f", 1, "RET_X", nil))
	assert.Equal(t, `.FUNCTION "f" 1 RET_X ARGUMENTS { } FREE { } THEN { };`, buf.String())

	buf.Write(Return(Constant("INT", "1")))
	buf.Write("")
	assert.Len(t, buf.Statements(), 1)

	assert.Equal(t, 1, buf.Replace("RET_X", "INT"))
	assert.Equal(t,
		`.FUNCTION "f" 1 INT ARGUMENTS { } FREE { } THEN { .RETURN { .CONSTANT INT 1; }; };`,
		buf.String(),
	)
}

func TestMainBuffer(t *testing.T) {
	buf := NewBuffer("main")
	assert.Equal(t, "", buf.String())

	buf.Write(Store(0, Constant("INT", "1")))
	buf.Write(Store(1, Constant("INT", "2")))
	assert.Equal(t, ".STORE 0 { .CONSTANT INT 1; };\n.STORE 1 { .CONSTANT INT 2; };", buf.String())
	assert.Equal(t, 0, buf.Replace("missing", "x"))
}
