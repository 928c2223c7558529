package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatch(t *testing.T) {
	raise := func(x interface{}) (err error) {
		defer Catch(&err)
		panic(x)
	}

	span := &TextSpan{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 5}

	err := raise(Raise(UnknownSymbol, span, "undefined symbol: `%s`", "x"))
	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, UnknownSymbol, ce.Kind)
	assert.Equal(t, "undefined symbol: `x`", ce.Message)

	err = raise(RaiseUnexpected(span, "`)`", ""))
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.AtEOF())

	assert.Panics(t, func() { _ = raise("not a compiler error") })
}

func TestErrorMessages(t *testing.T) {
	span := &TextSpan{StartLine: 0, StartCol: 4, EndLine: 0, EndCol: 6}

	wt := RaiseWrongType(span, "CHAR[]", "INT")
	assert.Equal(t, "CHAR[]", wt.Got)
	assert.Equal(t, "INT", wt.Expected)
	assert.Equal(t, "expected a value of type `INT` but got `CHAR[]`", wt.Message)
	assert.Equal(t, "1:5: type error: expected a value of type `INT` but got `CHAR[]`", wt.Error())

	wt.File = "lib/util.arcs"
	assert.Equal(t, "lib/util.arcs:1:5: type error: expected a value of type `INT` but got `CHAR[]`", wt.Error())

	assert.Equal(t, "expected `)` but got `]`", RaiseUnexpected(span, "`)`", "]").Message)
	assert.Equal(t, "unexpected `]`", RaiseUnexpected(span, "", "]").Message)
	assert.Equal(t, "`)` cannot begin an expression", RaiseNoPrefix(span, ")").Message)
	assert.True(t, RaiseNoPrefix(span, "").AtEOF())

	custom := RaiseSyntax(span, "try this", "bad %s", "thing")
	assert.Equal(t, "bad thing", custom.Message)
	assert.Equal(t, "try this", custom.Note)
	assert.False(t, custom.AtEOF())
}

func TestSpans(t *testing.T) {
	a := &TextSpan{StartLine: 0, StartCol: 2, EndLine: 0, EndCol: 4}
	b := &TextSpan{StartLine: 3, StartCol: 1, EndLine: 3, EndCol: 9}

	assert.Equal(t, &TextSpan{StartLine: 0, StartCol: 2, EndLine: 3, EndCol: 9}, NewSpanOver(a, b))
	assert.Same(t, a, NewSpanOver(a, nil))
	assert.Same(t, b, NewSpanOver(nil, b))
}
