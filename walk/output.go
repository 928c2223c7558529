package walk

import (
	"strings"

	"arcc/ir"
)

// Output is the result of compiling a program.
type Output struct {
	// Functions are the function buffers in creation order.
	Functions []*ir.Buffer

	// Main holds the top level statements.
	Main *ir.Buffer

	// Imports are the absolute paths of every imported module in import
	// order.
	Imports []string
}

// String merges the output into a single IR program: every function buffer
// followed by the top level statements, one per line.
func (o *Output) String() string {
	var lines []string
	for _, buf := range o.Functions {
		lines = append(lines, buf.String())
	}

	lines = append(lines, o.Main.Statements()...)
	return strings.Join(lines, "\n")
}
