package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"arcc/ast"
	"arcc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opNames = map[int]string{
	ast.OpAdd:   "+",
	ast.OpSub:   "-",
	ast.OpMul:   "*",
	ast.OpDiv:   "/",
	ast.OpMod:   "%",
	ast.OpPow:   "^",
	ast.OpGt:    ">",
	ast.OpGtEq:  ">=",
	ast.OpLtEq:  "<=",
	ast.OpEq:    "==",
	ast.OpNotEq: "!=",
	ast.OpNeg:   "-",
	ast.OpNot:   "!",
	ast.OpAnd:   "&&",
	ast.OpOr:    "||",
}

// sexpr renders an expression as an s-expression so tree shapes can be
// compared as text.
func sexpr(expr ast.Expr) string {
	list := func(head string, exprs ...ast.Expr) string {
		items := []string{head}
		for _, e := range exprs {
			items = append(items, sexpr(e))
		}

		return "(" + strings.Join(items, " ") + ")"
	}

	switch v := expr.(type) {
	case *ast.IntLit:
		return v.Text
	case *ast.FloatLit:
		return v.Text
	case *ast.StringLit:
		return strconv.Quote(v.Value)
	case *ast.BoolLit:
		return strconv.FormatBool(v.Value)
	case *ast.Ident:
		return v.Name
	case *ast.ModuleAccess:
		return v.Module + "::" + v.Member
	case *ast.ArrayLit:
		return list("array", v.Elems...)
	case *ast.HashLit:
		items := []string{"hash"}
		for i, key := range v.Keys {
			items = append(items, key+":"+sexpr(v.Values[i]))
		}

		return "(" + strings.Join(items, " ") + ")"
	case *ast.Prefix:
		return list(opNames[v.Op], v.Operand)
	case *ast.Binary:
		return list(opNames[v.Op], v.Left, v.Right)
	case *ast.Logical:
		return list(opNames[v.Op], v.Left, v.Right)
	case *ast.Call:
		return list("call", append([]ast.Expr{v.Callee}, v.Args...)...)
	case *ast.Index:
		return list("index", v.Target, v.Index)
	case *ast.Field:
		return list("."+v.Name, v.Target)
	case *ast.MethodCall:
		return list("."+v.Name+"()", append([]ast.Expr{v.Target}, v.Args...)...)
	case *ast.FuncLit:
		return fmt.Sprintf("(fn %d %d)", len(v.Params), len(v.Body.Stmts))
	case *ast.If:
		items := []string{"if"}
		for _, branch := range v.Branches {
			items = append(items, sexpr(branch.Cond))
		}

		if v.Else != nil {
			items = append(items, "else")
		}

		return "(" + strings.Join(items, " ") + ")"
	case *ast.While:
		return list("while", v.Cond)
	case *ast.ForRange:
		return list("for "+v.Var, v.From, v.To)
	case *ast.ForEach:
		return list("foreach "+v.Var, v.Iter)
	}

	return fmt.Sprintf("%T", expr)
}

func parseOne(t *testing.T, src string) ast.Stmt {
	t.Helper()

	prog, err := Parse("test.arcs", src)
	require.NoError(t, err, src)
	require.Len(t, prog.Stmts, 1, src)
	return prog.Stmts[0]
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"2 ^ 3 ^ 2", "(^ 2 (^ 3 2))"},
		{"-a ^ 2", "(^ (- a) 2)"},
		{"a < b", "(> b a)"},
		{"a <= b", "(<= a b)"},
		{"a + 1 > b == c", "(== (> (+ a 1) b) c)"},
		{"!a && b || c", "(|| (&& (! a) b) c)"},
		{"a || b && c", "(|| a (&& b c))"},
		{"f(1, g(2))[0]", "(index (call f 1 (call g 2)) 0)"},
		{"p.x.y", "(.y (.x p))"},
		{"xs.push(1).length()", "(.length() (.push() xs 1))"},
		{"m::f(x)", "(call m::f x)"},
		{"[1, 2, 3,]", "(array 1 2 3)"},
		{"[]", "(array)"},
		{`{a: 1, "b c": x}`, "(hash a:1 b c:x)"},
		{"{}", "(hash)"},
		{`"s" + 'q'`, `(+ "s" "q")`},
		{"true && false", "(&& true false)"},
		{"1.5 % 2", "(% 1.5 2)"},
		{"fn(a, int b) -> int { return a; b }", "(fn 2 2)"},
		{"if a { 1 } else if b { 2 } else { 3 }", "(if a b else)"},
		{"if (a) { 1 } else if (b) { 2 }", "(if a b)"},
		{"while x > 0 { x = x - 1 }", "(while (> x 0))"},
		{"for i from 0 to n { }", "(for i 0 n)"},
		{"for c in \"abc\" { }", `(foreach c "abc")`},
	}

	for _, test := range tests {
		stmt := parseOne(t, test.src)
		es, ok := stmt.(*ast.ExprStmt)
		require.True(t, ok, "%s parsed as %T", test.src, stmt)
		assert.Equal(t, test.want, sexpr(es.Expr), test.src)
	}
}

func TestParseDeclarations(t *testing.T) {
	vd := parseOne(t, "x := 1").(*ast.VarDecl)
	assert.Equal(t, "x", vd.Name)
	assert.True(t, vd.Type.IsAuto())
	assert.False(t, vd.Constant)

	vd = parseOne(t, "int[][] grid := []").(*ast.VarDecl)
	assert.Equal(t, "int", vd.Type.Name)
	assert.Equal(t, 2, vd.Type.Depth)

	vd = parseOne(t, "Point[] ps := []").(*ast.VarDecl)
	assert.Equal(t, "Point", vd.Type.Name)
	assert.Equal(t, 1, vd.Type.Depth)

	vd = parseOne(t, "Point p := Point()").(*ast.VarDecl)
	assert.Equal(t, "Point", vd.Type.Name)
	assert.Equal(t, "p", vd.Name)

	vd = parseOne(t, "public const limit := 10").(*ast.VarDecl)
	assert.True(t, vd.Constant)
	assert.True(t, vd.Public)

	vd = parseOne(t, "var v := 2").(*ast.VarDecl)
	assert.True(t, vd.Type.IsAuto())

	as := parseOne(t, "x = x + 1").(*ast.Assign)
	assert.Equal(t, "(+ x 1)", sexpr(as.Value))

	ia := parseOne(t, "xs[0] = 1").(*ast.IndexAssign)
	assert.Equal(t, "(index xs 0)", sexpr(ia.Target))

	ia = parseOne(t, "p.x = 2").(*ast.IndexAssign)
	assert.Equal(t, "(.x p)", sexpr(ia.Target))

	es := parseOne(t, "xs[0]").(*ast.ExprStmt)
	assert.Equal(t, "(index xs 0)", sexpr(es.Expr))

	imp := parseOne(t, `import "lib/math" as m`).(*ast.Import)
	assert.Equal(t, "lib/math", imp.Path)
	assert.Equal(t, "m", imp.Alias)
}

func TestParseClasses(t *testing.T) {
	cd := parseOne(t, "public class Point { x := 0; float y := 1.0\n norm := fn(self) { return self.x } }").(*ast.ClassDecl)
	assert.Equal(t, "Point", cd.Name)
	assert.True(t, cd.Public)
	require.Len(t, cd.Fields, 3)
	assert.Nil(t, cd.Fields[0].Type)
	assert.Equal(t, "float", cd.Fields[1].Type.Name)
	assert.True(t, cd.Fields[2].Init.(*ast.FuncLit).IsMethod())

	ed := parseOne(t, "extends Point { z := 0 }").(*ast.ExtendDecl)
	assert.Equal(t, "Point", ed.Name)
	require.Len(t, ed.Fields, 1)
}

func TestParseBlocksAndReturns(t *testing.T) {
	fl := parseOne(t, "fn() { return; }").(*ast.ExprStmt).Expr.(*ast.FuncLit)
	require.Len(t, fl.Body.Stmts, 1)
	assert.Nil(t, fl.Body.Stmts[0].(*ast.Return).Value)

	fl = parseOne(t, "fn() -> string[] { while true { break } }").(*ast.ExprStmt).Expr.(*ast.FuncLit)
	assert.Equal(t, "string", fl.ReturnType.Name)
	assert.Equal(t, 1, fl.ReturnType.Depth)

	prog, err := Parse("test.arcs", "a := 1; b := 2\nc := 3")
	require.NoError(t, err)
	assert.Len(t, prog.Stmts, 3)
	assert.Equal(t, "test.arcs", prog.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src   string
		atEOF bool
	}{
		{"x := ", true},
		{"f(1, ", true},
		{"fn() { return 1", true},
		{"public x", true},
		{"if x { 1 } else if (y) { 2 }", false},
		{"if (x) { 1 } else if y { 2 }", false},
		{`fn() { import "a" as a }`, false},
		{"1 = 2", false},
		{"public return 1", false},
		{"{a: 1, a: 2}", false},
		{"{1: 2}", false},
		{`"unclosed`, false},
		{"x := 1 @ 2", false},
		{"99999999999999999999", false},
		{"for i until 3 { }", false},
		{") + 1", false},
	}

	for _, test := range tests {
		_, err := Parse("test.arcs", test.src)

		var se *report.SyntaxError
		require.True(t, errors.As(err, &se), "%q: %v", test.src, err)
		assert.Equal(t, test.atEOF, se.AtEOF(), "%q: %s", test.src, se.Message)
		assert.NotNil(t, se.Span, test.src)
	}
}
