package cmd

import (
	"bytes"
	"testing"

	"arcc/syntax"
	"arcc/walk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplaySummary(t *testing.T) {
	prog, err := syntax.Parse("main.arcs", "add := fn(int a, float b) { return b }\nclass P { x := 0 }")
	require.NoError(t, err)

	out, err := walk.New(nil).Compile(prog)
	require.NoError(t, err)

	var buf bytes.Buffer
	displaySummary(&buf, out)

	text := buf.String()
	assert.Contains(t, text, "FUNCTION")
	assert.Contains(t, text, "PARAMETERS")
	assert.Contains(t, text, "add")
	assert.Contains(t, text, "INT, FLOAT")
}
