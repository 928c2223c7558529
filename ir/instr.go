package ir

import (
	"fmt"
	"strings"
)

// NOTE: Every builder in this file returns a single instruction as text.
// Instructions are terminated by a semicolon and their operands are placed in
// braced blocks whose contents are joined by single spaces.

// Block wraps a list of fragments in braces.  An empty block is `{ }`.
func Block(frags ...string) string {
	var nonEmpty []string
	for _, frag := range frags {
		if frag != "" {
			nonEmpty = append(nonEmpty, frag)
		}
	}

	if len(nonEmpty) == 0 {
		return "{ }"
	}

	return "{ " + strings.Join(nonEmpty, " ") + " }"
}

// Join joins a sequence of instructions into a single fragment.
func Join(frags ...string) string {
	var nonEmpty []string
	for _, frag := range frags {
		if frag != "" {
			nonEmpty = append(nonEmpty, frag)
		}
	}

	return strings.Join(nonEmpty, " ")
}

// TypeList renders a list of IR type labels as a block: `{ INT; CHAR[]; }`.
func TypeList(labels []string) string {
	items := make([]string, len(labels))
	for i, label := range labels {
		items[i] = label + ";"
	}

	return Block(items...)
}

// Quote renders a string as an IR string literal.
func Quote(s string) string {
	return "\"" + quoteReplacer.Replace(s) + "\""
}

var quoteReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"\n", "\\n",
	"\t", "\\t",
	"\r", "\\r",
)

// -----------------------------------------------------------------------------

// Constant is a scalar constant: `.CONSTANT INT 5;`.
func Constant(typ, literal string) string {
	return fmt.Sprintf(".CONSTANT %s %s;", typ, literal)
}

// ConstantList is a constant built from sub-expressions: array literals and
// compound instances.
func ConstantList(typ string, elems ...string) string {
	return fmt.Sprintf(".CONSTANT %s %s;", typ, Block(elems...))
}

// ConstantFunction references a compiled function by name.
func ConstantFunction(name string) string {
	return fmt.Sprintf(".CONSTANT FUNCTION %s;", Quote(name))
}

// LoadVariable loads the value in a variable slot.
func LoadVariable(slot int) string {
	return fmt.Sprintf(".LOAD VARIABLE %d;", slot)
}

// LoadParameter loads a parameter of a function.
func LoadParameter(funcID, index int) string {
	return fmt.Sprintf(".LOAD PARAMETER %d %d;", funcID, index)
}

// Store stores a value in a variable slot.
func Store(slot int, value string) string {
	return fmt.Sprintf(".STORE %d %s;", slot, Block(value))
}

// StoreParameter stores a value in a parameter of a function.
func StoreParameter(funcID, index int, value string) string {
	return fmt.Sprintf(".STORE PARAMETER %d %d %s;", funcID, index, Block(value))
}

// Enumeration of binary instruction names.
const (
	Add         = "ADD"
	Subtract    = "SUBTRACT"
	Multiply    = "MULTIPLY"
	Divide      = "DIVIDE"
	Modulo      = "MODULO"
	Power       = "POWER"
	GreaterThan = "GREATERTHAN"
	Equals      = "EQUALS"
	NotEquals   = "NOTEQUALS"
	And         = "AND"
	Or          = "OR"
)

// Binary applies a binary instruction to two operands.
func Binary(instr, left, right string) string {
	return fmt.Sprintf(".%s %s;", instr, Block(left, right))
}

// If is a conditional.  The else fragment may be empty.
func If(cond, then, els string) string {
	return fmt.Sprintf(".IF CONDITION %s THEN %s ELSE %s;", Block(cond), Block(then), Block(els))
}

// While is a condition loop.
func While(cond, body string) string {
	return fmt.Sprintf(".WHILE CONDITION %s THEN %s;", Block(cond), Block(body))
}

// Break exits the innermost loop.
func Break() string {
	return ".BREAK;"
}

// Return returns from the current function.  The value may be empty.
func Return(value string) string {
	return fmt.Sprintf(".RETURN %s;", Block(value))
}

// Call calls a function value.
func Call(callee string, args ...string) string {
	return fmt.Sprintf(".CALL %s %s;", Block(callee), Block(args...))
}

// CallLibrary calls a function of a loaded native library.
func CallLibrary(namespace, name string, args ...string) string {
	return fmt.Sprintf(".CALL %s::%s %s;", namespace, name, Block(args...))
}

// Index indexes into an array, string or compound.
func Index(target, index string) string {
	return fmt.Sprintf(".INDEX %s %s;", Block(target), Block(index))
}

// Assign stores a value through an index.
func Assign(target, value string) string {
	return fmt.Sprintf(".ASSIGN %s %s;", Block(target), Block(value))
}

// Push appends a value to an array.
func Push(target, value string) string {
	return fmt.Sprintf(".PUSH %s %s;", Block(target), Block(value))
}

// Pop removes the element at an index of an array.
func Pop(target, index string) string {
	return fmt.Sprintf(".POP %s %s;", Block(target), Block(index))
}

// Length yields the length of an array or string.
func Length(target string) string {
	return fmt.Sprintf(".LENGTH %s;", Block(target))
}

// Extension calls a builtin extension method by its fixed ID.
func Extension(id int, target string, args ...string) string {
	return fmt.Sprintf(".EXTENSION %d %s %s;", id, Block(target), Block(args...))
}

// LoadLib loads a native library into a namespace.
func LoadLib(path, namespace string) string {
	return fmt.Sprintf(".LOADLIB %s %s;", Block(Constant("CHAR[]", Quote(path))), Quote(namespace))
}

// Compound declares a compound type.
func Compound(name string, fieldLabels []string) string {
	return fmt.Sprintf(".COMPOUND %s %s;", Quote(name), TypeList(fieldLabels))
}

// FunctionHeader is the opening of a function definition up to and including
// the brace opening its body.
func FunctionHeader(name string, id int, returnLabel string, paramLabels []string) string {
	return fmt.Sprintf(".FUNCTION %s %d %s ARGUMENTS %s FREE { } THEN {", Quote(name), id, returnLabel, TypeList(paramLabels))
}
