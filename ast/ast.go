package ast

import "arcc/report"

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// Program is the root of a parsed source file.
type Program struct {
	// The name used to refer to the source: usually its path.
	Name string

	// The top level statements of the program in source order.
	Stmts []Stmt
}

// Block is a braced list of statements.
type Block struct {
	ASTBase

	Stmts []Stmt
}

// TypeExpr is a type label as it appears in source.  Arrays are written as a
// base type name followed by one `[]` per level of depth.
type TypeExpr struct {
	ASTBase

	// The name of the base type: a builtin type keyword or the name of a
	// class.
	Name string

	// The number of array dimensions wrapped around the base type.
	Depth int
}

// IsAuto returns whether the type label requests type inference.
func (te *TypeExpr) IsAuto() bool {
	return te == nil || (te.Name == "var" && te.Depth == 0)
}
