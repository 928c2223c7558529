package report

import (
	"fmt"
)

// Enumeration of syntax error kinds.
const (
	SyntaxUnexpectedToken = iota // The parser found a token it did not expect.
	SyntaxNoPrefixParser         // No prefix parse function exists for a token.
	SyntaxCustom                 // A free-form message with an optional note.
)

var syntaxKindNames = map[int]string{
	SyntaxUnexpectedToken: "unexpected token",
	SyntaxNoPrefixParser:  "no prefix parser",
	SyntaxCustom:          "syntax",
}

// SyntaxError is an error raised while lexing or parsing source text.
type SyntaxError struct {
	// The kind of syntax error.  This must be one of the enumerated syntax
	// error kinds.
	Kind int

	// The name of the token kind the parser expected.  This is only set for
	// unexpected token errors.
	Expected string

	// The literal text of the offending token.
	Found string

	// The error message.
	Message string

	// An optional remediation note displayed below the message.
	Note string

	// The span of the offending token.
	Span *TextSpan
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s error: %s", se.Span, syntaxKindNames[se.Kind], se.Message)
}

// RaiseUnexpected creates a new unexpected token error.  The expected kind may
// be empty if the parser had no single kind in mind.  An empty found text
// denotes the end of the input.
func RaiseUnexpected(span *TextSpan, expected, found string) *SyntaxError {
	shown := "`" + found + "`"
	if found == "" {
		shown = "end of file"
	}

	var msg string
	if expected == "" {
		msg = "unexpected " + shown
	} else {
		msg = fmt.Sprintf("expected %s but got %s", expected, shown)
	}

	return &SyntaxError{
		Kind:     SyntaxUnexpectedToken,
		Expected: expected,
		Found:    found,
		Message:  msg,
		Span:     span,
	}
}

// RaiseNoPrefix creates an error for a token that cannot begin an expression.
func RaiseNoPrefix(span *TextSpan, found string) *SyntaxError {
	msg := fmt.Sprintf("`%s` cannot begin an expression", found)
	if found == "" {
		msg = "expected an expression but got end of file"
	}

	return &SyntaxError{
		Kind:    SyntaxNoPrefixParser,
		Found:   found,
		Message: msg,
		Span:    span,
	}
}

// AtEOF returns whether the syntax error was caused by the input ending
// early.  Interactive readers use this to ask for more input.
func (se *SyntaxError) AtEOF() bool {
	return se.Kind != SyntaxCustom && se.Found == ""
}

// RaiseSyntax creates a custom syntax error.
func RaiseSyntax(span *TextSpan, note, msg string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Kind:    SyntaxCustom,
		Message: fmt.Sprintf(msg, args...),
		Note:    note,
		Span:    span,
	}
}

// -----------------------------------------------------------------------------

// Enumeration of compile (semantic) error kinds.
const (
	UnknownSymbol = iota
	WrongType
	DivideByZero
	UnknownExtension
	UnknownField
	UnknownType
	ConstantReassignment
	ConstantRedeclared
	NotCallable
	DuplicateParameter
	ImportFailed
	ImportCycle
	WrongArgumentCount
	BreakOutsideLoop
	NotExported
)

var compileKindNames = map[int]string{
	UnknownSymbol:        "unknown symbol",
	WrongType:            "type",
	DivideByZero:         "division",
	UnknownExtension:     "extension",
	UnknownField:         "field",
	UnknownType:          "unknown type",
	ConstantReassignment: "mutability",
	ConstantRedeclared:   "definition",
	NotCallable:          "call",
	DuplicateParameter:   "parameter",
	ImportFailed:         "import",
	ImportCycle:          "import",
	WrongArgumentCount:   "argument",
	BreakOutsideLoop:     "usage",
	NotExported:          "export",
}

// CompileError is an error raised during semantic analysis and code
// generation.
type CompileError struct {
	// The kind of compile error.  This must be one of the enumerated compile
	// error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil.
	Span *TextSpan

	// The display names of the types involved in a type error.
	Got, Expected string

	// The path of the file in which the error occurred.  Errors raised inside
	// imported files carry the imported file's path.
	File string
}

func (ce *CompileError) Error() string {
	if ce.File != "" {
		return fmt.Sprintf("%s:%s: %s error: %s", ce.File, ce.Span, compileKindNames[ce.Kind], ce.Message)
	}

	return fmt.Sprintf("%s: %s error: %s", ce.Span, compileKindNames[ce.Kind], ce.Message)
}

// Raise creates a new compile error of the given kind.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}

// RaiseWrongType creates a new type mismatch error.
func RaiseWrongType(span *TextSpan, got, expected string) *CompileError {
	return &CompileError{
		Kind:     WrongType,
		Message:  fmt.Sprintf("expected a value of type `%s` but got `%s`", expected, got),
		Span:     span,
		Got:      got,
		Expected: expected,
	}
}

// -----------------------------------------------------------------------------

// Catch recovers a raised syntax or compile error and stores it in the error
// pointed to by errp.  Any other panic continues to propagate.
// NB: This function must ALWAYS be deferred.
func Catch(errp *error) {
	if x := recover(); x != nil {
		switch v := x.(type) {
		case *SyntaxError:
			*errp = v
		case *CompileError:
			*errp = v
		default:
			panic(x)
		}
	}
}
