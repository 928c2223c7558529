package ast

import "arcc/report"

// Stmt is the closed set of statement nodes.
type Stmt interface {
	ASTNode

	stmtNode()
}

// VarDecl is a variable or constant declaration: `[const] [type] name := init`.
type VarDecl struct {
	ASTBase

	Name     string
	NameSpan *report.TextSpan

	// The declared type label.  This is nil when no label was given.
	Type *TypeExpr

	Init     Expr
	Constant bool
	Public   bool
}

// Assign is an assignment to a named variable: `name = value`.
type Assign struct {
	ASTBase

	Name     string
	NameSpan *report.TextSpan
	Value    Expr
}

// IndexAssign is an assignment through an index or field access:
// `a[i] = value` or `a.f = value`.
type IndexAssign struct {
	ASTBase

	// Target is always an *Index or a *Field.
	Target Expr
	Value  Expr
}

// Return is a return statement.  Value is nil if no value is returned.
type Return struct {
	ASTBase

	Value Expr
}

// Break exits the innermost enclosing loop.
type Break struct {
	ASTBase
}

// Import imports a source module or native library: `import "path" as alias`.
type Import struct {
	ASTBase

	Path      string
	Alias     string
	AliasSpan *report.TextSpan
}

// FieldDecl is a single field of a class or extends body.
type FieldDecl struct {
	ASTBase

	Name string
	Type *TypeExpr
	Init Expr
}

// ClassDecl declares a new compound type.
type ClassDecl struct {
	ASTBase

	Name   string
	Fields []*FieldDecl
	Public bool
}

// ExtendDecl appends fields to an existing compound type.
type ExtendDecl struct {
	ASTBase

	Name   string
	Fields []*FieldDecl
}

// ExprStmt is an expression evaluated as a statement.
type ExprStmt struct {
	ASTBase

	Expr Expr
}

func (*VarDecl) stmtNode()     {}
func (*Assign) stmtNode()      {}
func (*IndexAssign) stmtNode() {}
func (*Return) stmtNode()      {}
func (*Break) stmtNode()       {}
func (*Import) stmtNode()      {}
func (*ClassDecl) stmtNode()   {}
func (*ExtendDecl) stmtNode()  {}
func (*ExprStmt) stmtNode()    {}
