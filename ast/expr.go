package ast

import "arcc/report"

// Expr is the closed set of expression nodes.
type Expr interface {
	ASTNode

	exprNode()
}

// IntLit is an integer literal.  Text holds the literal as written.
type IntLit struct {
	ASTBase

	Value int64
	Text  string
}

// FloatLit is a floating point literal.
type FloatLit struct {
	ASTBase

	Value float64
	Text  string
}

// StringLit is a string literal with its escapes already processed.
type StringLit struct {
	ASTBase

	Value string
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	ASTBase

	Value bool
}

// Ident is a named value.
type Ident struct {
	ASTBase

	Name string
}

// ModuleAccess accesses an exported member of an imported module:
// `module::member`.
type ModuleAccess struct {
	ASTBase

	Module string
	Member string
}

// ArrayLit is an array literal: `[a, b, c]`.
type ArrayLit struct {
	ASTBase

	Elems []Expr
}

// HashLit is a hashmap literal: `{key: value, ...}`.  Keys are kept in source
// order.
type HashLit struct {
	ASTBase

	Keys   []string
	Values []Expr
}

// Enumeration of operators.
const (
	OpAdd = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpGt
	OpGtEq
	OpLtEq
	OpEq
	OpNotEq

	OpNeg
	OpNot

	OpAnd
	OpOr
)

// Prefix is a prefix (unary) operator application: `-a` or `!a`.
type Prefix struct {
	ASTBase

	Op      int
	Operand Expr
}

// Binary is an arithmetic or comparison operator application.  There is no
// less-than operator: the parser rewrites `a < b` as `b > a`.
type Binary struct {
	ASTBase

	Op          int
	Left, Right Expr
}

// Logical is a short-circuit `&&` or `||`.
type Logical struct {
	ASTBase

	Op          int
	Left, Right Expr
}

// Call is a call: `callee(args...)`.
type Call struct {
	ASTBase

	Callee Expr
	Args   []Expr
}

// Index is an index access: `target[index]`.
type Index struct {
	ASTBase

	Target Expr
	Index  Expr
}

// Field is a field access: `target.name`.
type Field struct {
	ASTBase

	Target   Expr
	Name     string
	NameSpan *report.TextSpan
}

// MethodCall is a method or extension call: `target.name(args...)`.
type MethodCall struct {
	ASTBase

	Target   Expr
	Name     string
	NameSpan *report.TextSpan
	Args     []Expr
}

// Param is a single function parameter.  Type is nil if the parameter is
// untyped.
type Param struct {
	ASTBase

	Name string
	Type *TypeExpr
}

// FuncLit is a function literal: `fn(params) [-> type] { body }`.
type FuncLit struct {
	ASTBase

	Params     []*Param
	ReturnType *TypeExpr
	Body       *Block
}

// IsMethod returns whether the function literal takes `self` as its first
// parameter.
func (fl *FuncLit) IsMethod() bool {
	return len(fl.Params) > 0 && fl.Params[0].Name == "self"
}

// CondBranch is a single `if` or `else if` branch.
type CondBranch struct {
	Cond Expr
	Body *Block
}

// If is a conditional chain.  Else is nil if there is no else branch.
type If struct {
	ASTBase

	Branches []*CondBranch
	Else     *Block
}

// While is a condition loop.
type While struct {
	ASTBase

	Cond Expr
	Body *Block
}

// ForRange is a counting loop over the half-open range `from .. to`.
type ForRange struct {
	ASTBase

	Var      string
	From, To Expr
	Body     *Block
}

// ForEach iterates over the elements of an array or string.
type ForEach struct {
	ASTBase

	Var  string
	Iter Expr
	Body *Block
}

func (*IntLit) exprNode()       {}
func (*FloatLit) exprNode()     {}
func (*StringLit) exprNode()    {}
func (*BoolLit) exprNode()      {}
func (*Ident) exprNode()        {}
func (*ModuleAccess) exprNode() {}
func (*ArrayLit) exprNode()     {}
func (*HashLit) exprNode()      {}
func (*Prefix) exprNode()       {}
func (*Binary) exprNode()       {}
func (*Logical) exprNode()      {}
func (*Call) exprNode()         {}
func (*Index) exprNode()        {}
func (*Field) exprNode()        {}
func (*MethodCall) exprNode()   {}
func (*FuncLit) exprNode()      {}
func (*If) exprNode()           {}
func (*While) exprNode()        {}
func (*ForRange) exprNode()     {}
func (*ForEach) exprNode()      {}
