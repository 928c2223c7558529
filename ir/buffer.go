package ir

import "strings"

// Buffer holds the IR emitted for a single function.  The implicit top level
// function has no header: its statements are emitted unwrapped.
type Buffer struct {
	// Name is the name of the function.
	Name string

	// ID is the function ID used to address its parameters.
	ID int

	// ReturnLabel and ParamLabels record the final signature of the function.
	// They are set when the buffer is closed.
	ReturnLabel string
	ParamLabels []string

	header string
	stmts  []string
}

// NewBuffer creates a buffer for the top level function.
func NewBuffer(name string) *Buffer {
	return &Buffer{Name: name}
}

// NewFunctionBuffer creates a buffer for a function definition beginning with
// the given header.
func NewFunctionBuffer(name string, id int, header string) *Buffer {
	return &Buffer{Name: name, ID: id, header: header}
}

// Write appends a statement fragment to the buffer.  Empty fragments are
// ignored.
func (b *Buffer) Write(frag string) {
	if frag != "" {
		b.stmts = append(b.stmts, frag)
	}
}

// Replace substitutes every occurrence of old in the already written output
// with new.  It returns the number of replacements made.
func (b *Buffer) Replace(old, new string) int {
	n := strings.Count(b.header, old)
	b.header = strings.ReplaceAll(b.header, old, new)

	for i, stmt := range b.stmts {
		n += strings.Count(stmt, old)
		b.stmts[i] = strings.ReplaceAll(stmt, old, new)
	}

	return n
}

// Statements returns the statements written to the buffer.
func (b *Buffer) Statements() []string {
	return b.stmts
}

// String returns the text of the buffer.  Function buffers render as a single
// `.FUNCTION` instruction.
func (b *Buffer) String() string {
	if b.header == "" {
		return strings.Join(b.stmts, "\n")
	}

	if len(b.stmts) == 0 {
		return b.header + " };"
	}

	return b.header + " " + strings.Join(b.stmts, " ") + " };"
}
