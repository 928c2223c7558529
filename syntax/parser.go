package syntax

import (
	"arcc/ast"
	"arcc/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is a recursive descent parser for source files.  Expressions are
// parsed by precedence climbing driven by tables of prefix and infix parse
// functions keyed by token kind.  All parsing functions assume that they
// begin with the parser centered on the first token of their production and
// must consume all tokens (including the last) of their production, leaving
// the parser on the next token.  Errors abort parsing by panicking with a
// syntax error: they are recovered by `Parse`.
type Parser struct {
	// The lexer this parser is using to lex the source text.
	lexer *Lexer

	// The current token the parser is positioned on.
	tok *Token

	// The token after the current token.
	ahead *Token

	// The token the parser was positioned on before it moved forward.
	lookbehind *Token

	// The prefix and infix parse function tables.
	prefixParsers map[int]prefixParseFn
	infixParsers  map[int]infixParseFn

	// The number of blocks enclosing the parser's current position.
	depth int

	// The opening and closing parentheses of the most recently parsed
	// parenthesized expression.
	lastGroupOpen, lastGroupClose *Token
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(left ast.Expr) ast.Expr
)

// NewParser creates a new parser over the given source text.
func NewParser(src string) *Parser {
	p := &Parser{lexer: NewLexer(src)}

	p.prefixParsers = map[int]prefixParseFn{
		TOK_INTLIT:    p.parseIntLit,
		TOK_FLOATLIT:  p.parseFloatLit,
		TOK_STRINGLIT: p.parseStringLit,
		TOK_TRUE:      p.parseBoolLit,
		TOK_FALSE:     p.parseBoolLit,
		TOK_IDENT:     p.parseIdentOrModuleAccess,
		TOK_LPAREN:    p.parseGroup,
		TOK_LBRACKET:  p.parseArrayLit,
		TOK_LBRACE:    p.parseHashLit,
		TOK_MINUS:     p.parsePrefixOp,
		TOK_NOT:       p.parsePrefixOp,
		TOK_FN:        p.parseFuncLit,
		TOK_IF:        p.parseIf,
		TOK_WHILE:     p.parseWhile,
		TOK_FOR:       p.parseFor,
	}

	p.infixParsers = map[int]infixParseFn{
		TOK_PLUS:     p.parseBinaryOp,
		TOK_MINUS:    p.parseBinaryOp,
		TOK_STAR:     p.parseBinaryOp,
		TOK_DIV:      p.parseBinaryOp,
		TOK_MOD:      p.parseBinaryOp,
		TOK_POW:      p.parseBinaryOp,
		TOK_EQ:       p.parseBinaryOp,
		TOK_NEQ:      p.parseBinaryOp,
		TOK_LT:       p.parseBinaryOp,
		TOK_LTEQ:     p.parseBinaryOp,
		TOK_GT:       p.parseBinaryOp,
		TOK_GTEQ:     p.parseBinaryOp,
		TOK_LAND:     p.parseBinaryOp,
		TOK_LOR:      p.parseBinaryOp,
		TOK_LPAREN:   p.parseCall,
		TOK_LBRACKET: p.parseIndex,
		TOK_DOT:      p.parseDot,
	}

	return p
}

// Parse parses the given source text.  The name is recorded on the resulting
// program.
func Parse(name, src string) (*ast.Program, error) {
	prog, err := NewParser(src).Parse()
	if err != nil {
		return nil, err
	}

	prog.Name = name
	return prog, nil
}

// Parse parses the parser's source text as a program.
//
// program := {stmt [';']} EOF ;
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer report.Catch(&err)

	// Fill the lookahead and move the parser onto the first token.
	p.ahead = p.lexer.Next()
	p.next()

	prog = &ast.Program{}
	for !p.has(TOK_EOF) {
		prog.Stmts = append(prog.Stmts, p.parseStmt())

		if p.has(TOK_SEMI) {
			p.next()
		}
	}

	return prog, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	p.lookbehind = p.tok
	p.tok = p.ahead

	if p.tok.Kind == TOK_EOF {
		p.ahead = p.tok
	} else {
		p.ahead = p.lexer.Next()
	}

	if p.tok.Kind == TOK_UNKNOWN {
		panic(report.RaiseSyntax(p.tok.Span, "", "unrecognized text: `%s`", p.tok.Value))
	}
}

// has returns true if the parser is on a token of a given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is on a token of the given kind and moves the
// parser forward.  The matched token is returned.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.rejectExpected(kind)
	}

	p.next()
	return p.lookbehind
}

// -----------------------------------------------------------------------------

// rejectExpected reports that the parser expected a token of the given kind
// but found the current token.
func (p *Parser) rejectExpected(kind int) {
	panic(report.RaiseUnexpected(p.tok.Span, KindName(kind), p.tokText()))
}

// tokText returns the display text of the current token.
func (p *Parser) tokText() string {
	switch p.tok.Kind {
	case TOK_EOF:
		return ""
	case TOK_STRINGLIT:
		return "\"" + p.tok.Value + "\""
	default:
		return p.tok.Value
	}
}
