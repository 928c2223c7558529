package syntax

import "arcc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  For string literals, this is the
	// processed contents of the literal: the quotes are trimmed and all escape
	// sequences are replaced.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_EOF = iota
	TOK_UNKNOWN

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_STRINGLIT

	TOK_FN
	TOK_RETURN
	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_FOR
	TOK_FROM
	TOK_TO
	TOK_IN
	TOK_BREAK
	TOK_CONST
	TOK_PUBLIC
	TOK_IMPORT
	TOK_AS
	TOK_CLASS
	TOK_EXTENDS
	TOK_TRUE
	TOK_FALSE

	TOK_INT
	TOK_FLOAT
	TOK_STRING
	TOK_BOOL
	TOK_VAR
	TOK_VOID

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD
	TOK_POW

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ

	TOK_LAND
	TOK_LOR
	TOK_NOT

	TOK_ASSIGN
	TOK_DECLARE
	TOK_ARROW
	TOK_DCOLON

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_DOT
	TOK_SEMI
	TOK_COLON
)

// tokenKindNames maps token kinds to the names used to display them in error
// messages.
var tokenKindNames = map[int]string{
	TOK_EOF:       "end of file",
	TOK_UNKNOWN:   "unknown token",
	TOK_IDENT:     "identifier",
	TOK_INTLIT:    "integer literal",
	TOK_FLOATLIT:  "float literal",
	TOK_STRINGLIT: "string literal",

	TOK_FN:      "`fn`",
	TOK_RETURN:  "`return`",
	TOK_IF:      "`if`",
	TOK_ELSE:    "`else`",
	TOK_WHILE:   "`while`",
	TOK_FOR:     "`for`",
	TOK_FROM:    "`from`",
	TOK_TO:      "`to`",
	TOK_IN:      "`in`",
	TOK_BREAK:   "`break`",
	TOK_CONST:   "`const`",
	TOK_PUBLIC:  "`public`",
	TOK_IMPORT:  "`import`",
	TOK_AS:      "`as`",
	TOK_CLASS:   "`class`",
	TOK_EXTENDS: "`extends`",
	TOK_TRUE:    "`true`",
	TOK_FALSE:   "`false`",

	TOK_INT:    "`int`",
	TOK_FLOAT:  "`float`",
	TOK_STRING: "`string`",
	TOK_BOOL:   "`bool`",
	TOK_VAR:    "`var`",
	TOK_VOID:   "`void`",

	TOK_PLUS:  "`+`",
	TOK_MINUS: "`-`",
	TOK_STAR:  "`*`",
	TOK_DIV:   "`/`",
	TOK_MOD:   "`%`",
	TOK_POW:   "`^`",

	TOK_EQ:   "`==`",
	TOK_NEQ:  "`!=`",
	TOK_LT:   "`<`",
	TOK_LTEQ: "`<=`",
	TOK_GT:   "`>`",
	TOK_GTEQ: "`>=`",

	TOK_LAND: "`&&`",
	TOK_LOR:  "`||`",
	TOK_NOT:  "`!`",

	TOK_ASSIGN:  "`=`",
	TOK_DECLARE: "`:=`",
	TOK_ARROW:   "`->`",
	TOK_DCOLON:  "`::`",

	TOK_LPAREN:   "`(`",
	TOK_RPAREN:   "`)`",
	TOK_LBRACE:   "`{`",
	TOK_RBRACE:   "`}`",
	TOK_LBRACKET: "`[`",
	TOK_RBRACKET: "`]`",
	TOK_COMMA:    "`,`",
	TOK_DOT:      "`.`",
	TOK_SEMI:     "`;`",
	TOK_COLON:    "`:`",
}

// KindName returns the display name of a token kind.
func KindName(kind int) string {
	if name, ok := tokenKindNames[kind]; ok {
		return name
	}

	return "token"
}

// isTypeKeyword returns whether the token kind is one of the builtin type
// keywords.
func isTypeKeyword(kind int) bool {
	return TOK_INT <= kind && kind <= TOK_VOID
}
