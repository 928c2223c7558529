package syntax

import (
	"bufio"
	"strings"
	"unicode"

	"arcc/report"
)

// Lexer is responsible for tokenizing source text.  It makes a single forward
// pass over its input and never fails: runes it does not recognize are returned
// as unknown tokens for the parser to report.
type Lexer struct {
	src     *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer over the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:     bufio.NewReader(strings.NewReader(src)),
		tokBuff: &strings.Builder{},
	}
}

// Next retrieves the next token from the input.  If the input has ended, this
// will be an EOF token.
func (l *Lexer) Next() *Token {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '#':
			for c != '\n' && c != -1 {
				c = l.skip()
			}
		case '"', '\'':
			return l.lexStringLit(c)
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF)
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_DIV,
	"%": TOK_MOD,
	"^": TOK_POW,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"&&": TOK_LAND,
	"||": TOK_LOR,
	"!":  TOK_NOT,

	"=":  TOK_ASSIGN,
	":=": TOK_DECLARE,
	"->": TOK_ARROW,
	"::": TOK_DCOLON,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	"[": TOK_LBRACKET,
	"]": TOK_RBRACKET,
	",": TOK_COMMA,
	".": TOK_DOT,
	";": TOK_SEMI,
	":": TOK_COLON,
}

// lexPunctOrOper lexes a punctuation or operator symbol.  Two character
// operators are recognized by looking one rune ahead.
func (l *Lexer) lexPunctOrOper() *Token {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]

	if c := l.peek(); c != -1 {
		if _kind, _ok := symbolPatterns[l.tokBuff.String()+string(c)]; _ok {
			l.eat()
			kind, ok = _kind, true
		}
	}

	if !ok {
		return l.makeToken(TOK_UNKNOWN)
	}

	return l.makeToken(kind)
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"fn":     TOK_FN,
	"return": TOK_RETURN,

	"if":    TOK_IF,
	"else":  TOK_ELSE,
	"while": TOK_WHILE,
	"for":   TOK_FOR,
	"from":  TOK_FROM,
	"to":    TOK_TO,
	"in":    TOK_IN,
	"break": TOK_BREAK,

	"const":   TOK_CONST,
	"public":  TOK_PUBLIC,
	"import":  TOK_IMPORT,
	"as":      TOK_AS,
	"class":   TOK_CLASS,
	"extends": TOK_EXTENDS,

	"true":  TOK_TRUE,
	"false": TOK_FALSE,

	"int":    TOK_INT,
	"float":  TOK_FLOAT,
	"string": TOK_STRING,
	"bool":   TOK_BOOL,
	"var":    TOK_VAR,
	"void":   TOK_VOID,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for c := l.peek(); isFirstIdentChar(c) || isDecimalDigit(c); c = l.peek() {
		l.eat()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes an integer or float literal.  A literal is a float if
// it contains a `.` followed by a digit: `1.to_string()` is an integer
// followed by a dot.
func (l *Lexer) lexNumericLit() *Token {
	l.mark()
	l.eat()

	isFloat := false
	for {
		c := l.peek()

		if isDecimalDigit(c) {
			l.eat()
		} else if c == '.' && !isFloat && isDecimalDigit(l.peekSecond()) {
			l.eat()
			isFloat = true
		} else {
			break
		}
	}

	if isFloat {
		return l.makeToken(TOK_FLOATLIT)
	}

	return l.makeToken(TOK_INTLIT)
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal delimited by the given quote rune.  An
// unclosed string yields an unknown token holding the text read so far.
func (l *Lexer) lexStringLit(quote rune) *Token {
	l.mark()
	l.skip()

	for {
		switch c := l.peek(); c {
		case -1, '\n':
			return l.makeToken(TOK_UNKNOWN)
		case quote:
			l.skip()
			return l.makeToken(TOK_STRINGLIT)
		case '\\':
			l.skip()
			l.eatEscapeSequence()
		default:
			l.eat()
		}
	}
}

// escapeSequences maps escape codes to the runes they stand for.
var escapeSequences = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
}

// eatEscapeSequence consumes an escape code and writes the rune it denotes to
// the token buffer.  This assumes the leading `\` has already been skipped.
// Unknown escape codes are kept verbatim.
func (l *Lexer) eatEscapeSequence() {
	c := l.peek()
	if c == -1 {
		return
	}

	if r, ok := escapeSequences[c]; ok {
		l.skip()
		l.tokBuff.WriteRune(r)
	} else {
		l.tokBuff.WriteRune('\\')
		l.eat()
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() rune {
	c := l.skip()
	if c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() rune {
	c, _, err := l.src.ReadRune()
	if err != nil {
		return -1
	}

	l.updatePos(c)
	return c
}

// peek returns the next rune in the input without moving the lexer forward.
// If the lexer encounters an EOF, -1 is returned as rune value.
func (l *Lexer) peek() rune {
	c, _, err := l.src.ReadRune()
	if err != nil {
		return -1
	}

	l.src.UnreadRune()
	return c
}

// peekSecond returns the byte after the next rune as a rune.  It is only used
// to decide whether a `.` begins the fractional part of a number so only ASCII
// matters.
func (l *Lexer) peekSecond() rune {
	buf, _ := l.src.Peek(2)
	if len(buf) < 2 {
		return -1
	}

	return rune(buf[1])
}

// updatePos updates the lexer's position based on the rune it just read.
func (l *Lexer) updatePos(c rune) {
	if c == '\n' {
		l.line++
		l.col = 0
	} else if c == '\t' {
		l.col += 4
	} else {
		l.col++
	}
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}
