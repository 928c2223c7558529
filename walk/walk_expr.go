package walk

import (
	"fmt"
	"strconv"
	"strings"

	"arcc/ast"
	"arcc/ir"
	"arcc/report"
	"arcc/sem"
	"arcc/typing"
)

// walkExpr walks an expression returning its type and, when emitting, its IR
// fragment.  In Probe mode the fragment is always empty.
func (w *Walker) walkExpr(expr ast.Expr, mode Mode) (typing.Type, string) {
	typ, frag := w.doWalkExpr(expr, mode)
	if mode == Probe {
		return typ, ""
	}

	return typ, frag
}

func (w *Walker) doWalkExpr(expr ast.Expr, mode Mode) (typing.Type, string) {
	switch v := expr.(type) {
	case *ast.IntLit:
		return typing.IntegerType, ir.Constant("INT", strconv.FormatInt(v.Value, 10))
	case *ast.FloatLit:
		return typing.FloatType, ir.Constant("FLOAT", formatFloat(v.Value))
	case *ast.StringLit:
		return typing.StringType, ir.Constant("CHAR[]", ir.Quote(v.Value))
	case *ast.BoolLit:
		return typing.BooleanType, ir.Constant("BOOL", strconv.FormatBool(v.Value))
	case *ast.Ident:
		return w.walkIdent(v)
	case *ast.ModuleAccess:
		return w.walkModuleAccess(v)
	case *ast.ArrayLit:
		return w.walkArrayLit(v, nil, mode)
	case *ast.HashLit:
		return w.walkHashLit(v, nil, mode)
	case *ast.Prefix:
		return w.walkPrefix(v, mode)
	case *ast.Binary:
		return w.walkBinary(v, mode)
	case *ast.Logical:
		return w.walkLogical(v, mode)
	case *ast.Call:
		return w.walkCall(v, mode)
	case *ast.Index:
		return w.walkIndex(v, mode)
	case *ast.Field:
		targetType, targetFrag := w.walkExpr(v.Target, mode)
		return w.walkFieldOn(targetType, targetFrag, v.Name, v.NameSpan)
	case *ast.MethodCall:
		return w.walkMethodCall(v, mode)
	case *ast.FuncLit:
		return w.walkFuncLit(v, mode, funcBinding{})
	case *ast.If:
		return w.walkIf(v, mode)
	case *ast.While:
		return w.walkWhile(v, mode)
	case *ast.ForRange:
		return w.walkForRange(v, mode)
	case *ast.ForEach:
		return w.walkForEach(v, mode)
	}

	// unreachable: the expression node set is closed
	panic(fmt.Sprintf("walk: unknown expression node %T", expr))
}

// walkValue walks an expression whose value is stored where a value of the
// expected type is wanted.  The expected type may be nil or Auto in which
// case no check is performed.
func (w *Walker) walkValue(expr ast.Expr, expected typing.Type, mode Mode) (typing.Type, string) {
	if expected == nil || typing.IsAuto(expected) {
		return w.walkExpr(expr, mode)
	}

	w.pinAuto(expr, expected)

	if typ, frag, ok := w.walkShapedLit(expr, expected, mode); ok {
		if mode == Probe {
			return typ, ""
		}

		return typ, frag
	}

	typ, frag := w.walkExpr(expr, mode)
	if !typing.Compatible(typ, expected) {
		w.wrongType(expr.Span(), typ, expected.Transpile())
	}

	if typing.IsAuto(typ) {
		return expected, frag
	}

	return typ, frag
}

// walkShapedLit walks an array or hashmap literal against the type expected
// of it.  Empty arrays take on the expected array type and hashmaps with the
// same keys as an expected hashmap compound reuse that compound.
func (w *Walker) walkShapedLit(expr ast.Expr, expected typing.Type, mode Mode) (typing.Type, string, bool) {
	switch v := expr.(type) {
	case *ast.ArrayLit:
		if at, ok := expected.(*typing.ArrayType); ok {
			if len(v.Elems) == 0 {
				return at, ir.ConstantList(at.Transpile()), true
			}

			typ, frag := w.walkArrayLit(v, at.Elem, mode)
			return typ, frag, true
		}
	case *ast.HashLit:
		if ct, ok := expected.(*typing.CompoundType); ok && hasKeys(ct, v.Keys) {
			typ, frag := w.walkHashLit(v, ct, mode)
			return typ, frag, true
		}
	}

	return nil, "", false
}

// hasKeys reports whether a compound is a hashmap with exactly the given keys
// in order.
func hasKeys(ct *typing.CompoundType, keys []string) bool {
	if !isMapCompound(ct) || len(ct.Fields) != len(keys) {
		return false
	}

	for i, field := range ct.Fields {
		if field.Name != keys[i] {
			return false
		}
	}

	return true
}

// isMapCompound reports whether a compound was created for a hashmap literal.
func isMapCompound(ct *typing.CompoundType) bool {
	return strings.HasPrefix(ct.Name, "MAP_")
}

// pinAuto pins an untyped parameter or variable to the expected type if the
// expression is a bare reference to it.
func (w *Walker) pinAuto(expr ast.Expr, expected typing.Type) {
	if id, ok := expr.(*ast.Ident); ok {
		if sym, ok := w.Resolve(id.Name); ok && typing.IsAuto(sym.Type) {
			sym.Type = expected
		}
	}
}

// -----------------------------------------------------------------------------

func (w *Walker) walkIdent(id *ast.Ident) (typing.Type, string) {
	sym := w.lookup(id.Name, id.Span())

	if _, ok := sym.Type.(*typing.LibraryType); ok {
		w.error(report.WrongType, id.Span(), "library `%s` cannot be used as a value", id.Name)
	}

	if sym.IsParameter() {
		// untyped parameters are integers unless something else is assigned
		// to them first
		if typing.IsAuto(sym.Type) {
			sym.Type = typing.IntegerType
		}

		return sym.Type, ir.LoadParameter(sym.FuncID, sym.ParamID)
	}

	return sym.Type, ir.LoadVariable(sym.Slot)
}

// lookupModule resolves the module named by a module access.
func (w *Walker) lookupModule(ma *ast.ModuleAccess) *sem.Symbol {
	sym := w.lookup(ma.Module, ma.Span())
	if !sym.HasModifier(sem.ModModule) {
		w.error(report.UnknownSymbol, ma.Span(), "`%s` is not an imported module", ma.Module)
	}

	return sym
}

func (w *Walker) walkModuleAccess(ma *ast.ModuleAccess) (typing.Type, string) {
	sym := w.lookupModule(ma)

	switch v := sym.Type.(type) {
	case *typing.CompoundType:
		return w.walkFieldOn(v, ir.LoadVariable(sym.Slot), ma.Member, ma.Span())
	case *typing.LibraryType:
		if _, ok := v.Methods[ma.Member]; ok {
			w.error(report.NotCallable, ma.Span(), "library function `%s::%s` can only be called", ma.Module, ma.Member)
		}

		w.error(report.UnknownField, ma.Span(), "library `%s` has no function named `%s`", ma.Module, ma.Member)
	}

	return nil, ""
}

// walkFieldOn accesses a field of an already walked compound value.
func (w *Walker) walkFieldOn(targetType typing.Type, targetFrag, name string, span *report.TextSpan) (typing.Type, string) {
	field := w.fieldOf(targetType, name, span)
	return field.Type, ir.Index(targetFrag, ir.Constant("INT", strconv.Itoa(field.Index)))
}

// fieldOf looks up a field of a compound type raising an error if it does not
// exist or, for modules, is not exported.
func (w *Walker) fieldOf(typ typing.Type, name string, span *report.TextSpan) *typing.CompoundField {
	ct, ok := typ.(*typing.CompoundType)
	if !ok {
		w.error(report.UnknownField, span, "type `%s` has no field named `%s`", typ.Transpile(), name)
	}

	if field, ok := ct.Field(name); ok {
		return field
	}

	w.checkExported(ct, name, span)
	w.error(report.UnknownField, span, "type `%s` has no field named `%s`", ct.Name, name)
	return nil
}

// checkExported raises an error if the name is a hidden binding of a module.
func (w *Walker) checkExported(ct *typing.CompoundType, name string, span *report.TextSpan) {
	if info, ok := w.compounds[ct.Name]; ok && info.module {
		if _, hidden := info.hidden[name]; hidden {
			w.error(report.NotExported, span, "`%s` is not exported by module `%s`", name, ct.Name)
		}
	}
}

// -----------------------------------------------------------------------------

// walkArrayLit walks an array literal.  The element type is taken from the
// first element unless an element type is expected.
func (w *Walker) walkArrayLit(al *ast.ArrayLit, expectedElem typing.Type, mode Mode) (typing.Type, string) {
	if len(al.Elems) == 0 {
		at := &typing.ArrayType{Elem: typing.IntegerType}
		return at, ir.ConstantList(at.Transpile())
	}

	elemType, firstFrag := w.walkValue(al.Elems[0], expectedElem, mode)
	if typing.IsVoid(elemType) {
		w.wrongType(al.Elems[0].Span(), elemType, "a value")
	}

	frags := []string{firstFrag}
	for _, elem := range al.Elems[1:] {
		_, frag := w.walkValue(elem, elemType, mode)
		frags = append(frags, frag)
	}

	at := &typing.ArrayType{Elem: elemType}
	return at, ir.ConstantList(at.Transpile(), frags...)
}

// walkHashLit walks a hashmap literal.  Unless the compound it fills is given,
// a new hashmap compound is created for it.
func (w *Walker) walkHashLit(hl *ast.HashLit, shape *typing.CompoundType, mode Mode) (typing.Type, string) {
	if shape != nil {
		frags := make([]string, len(hl.Keys))
		for i, field := range shape.Fields {
			_, frags[i] = w.walkValue(hl.Values[i], field.Type, mode)
		}

		return shape, ir.ConstantList(shape.Name, frags...)
	}

	w.mapCounter++
	ct := &typing.CompoundType{Name: fmt.Sprintf("MAP_%d", w.mapCounter)}

	frags := make([]string, len(hl.Keys))
	for i, key := range hl.Keys {
		typ, frag := w.walkExpr(hl.Values[i], mode)
		if typing.IsVoid(typ) {
			w.wrongType(hl.Values[i].Span(), typ, "a value")
		}

		ct.AddField(key, typ, hl.Values[i])
		frags[i] = frag
	}

	if mode == Emit {
		w.registerCompound(ct, false)
		w.pending = append(w.pending, ir.Compound(ct.Name, ct.FieldLabels()))
	}

	return ct, ir.ConstantList(ct.Name, frags...)
}

// -----------------------------------------------------------------------------

// binaryInstrs maps the binary operators to their IR instructions.  `<=` and
// `>=` are lowered separately.
var binaryInstrs = map[int]string{
	ast.OpAdd:   ir.Add,
	ast.OpSub:   ir.Subtract,
	ast.OpMul:   ir.Multiply,
	ast.OpDiv:   ir.Divide,
	ast.OpMod:   ir.Modulo,
	ast.OpPow:   ir.Power,
	ast.OpGt:    ir.GreaterThan,
	ast.OpEq:    ir.Equals,
	ast.OpNotEq: ir.NotEquals,
}

func (w *Walker) walkBinary(b *ast.Binary, mode Mode) (typing.Type, string) {
	lhsType, lhs := w.walkExpr(b.Left, mode)
	rhsType, rhs := w.walkExpr(b.Right, mode)

	w.checkOperand(b.Left, lhsType)
	w.checkOperand(b.Right, rhsType)

	if (b.Op == ast.OpDiv || b.Op == ast.OpMod) && isZeroLiteral(b.Right) {
		w.error(report.DivideByZero, b.Right.Span(), "division by zero")
	}

	falseConst := ir.Constant("BOOL", "false")

	var frag string
	switch b.Op {
	case ast.OpLtEq:
		// a <= b is !(a > b)
		frag = ir.Binary(ir.Equals, ir.Binary(ir.GreaterThan, lhs, rhs), falseConst)
	case ast.OpGtEq:
		// a >= b is !(b > a)
		frag = ir.Binary(ir.Equals, ir.Binary(ir.GreaterThan, rhs, lhs), falseConst)
	default:
		frag = ir.Binary(binaryInstrs[b.Op], lhs, rhs)
	}

	return typing.IntegerType, frag
}

// checkOperand checks that an operand of a binary operator yields a value.
func (w *Walker) checkOperand(expr ast.Expr, typ typing.Type) {
	switch typ.(type) {
	case typing.VoidType, *typing.LibraryType:
		w.wrongType(expr.Span(), typ, "a value")
	}
}

// isZeroLiteral returns whether an expression is a literal zero.
func isZeroLiteral(expr ast.Expr) bool {
	switch v := expr.(type) {
	case *ast.IntLit:
		return v.Value == 0
	case *ast.FloatLit:
		return v.Value == 0
	case *ast.Prefix:
		return v.Op == ast.OpNeg && isZeroLiteral(v.Operand)
	}

	return false
}

func (w *Walker) walkLogical(l *ast.Logical, mode Mode) (typing.Type, string) {
	lhsType, lhs := w.walkExpr(l.Left, mode)
	rhsType, rhs := w.walkExpr(l.Right, mode)

	w.checkOperand(l.Left, lhsType)
	w.checkOperand(l.Right, rhsType)

	instr := ir.And
	if l.Op == ast.OpOr {
		instr = ir.Or
	}

	return typing.BooleanType, ir.Binary(instr, lhs, rhs)
}

func (w *Walker) walkPrefix(p *ast.Prefix, mode Mode) (typing.Type, string) {
	typ, operand := w.walkExpr(p.Operand, mode)

	if p.Op == ast.OpNot {
		w.checkOperand(p.Operand, typ)
		return typing.BooleanType, ir.Binary(ir.Equals, operand, ir.Constant("BOOL", "false"))
	}

	// results of calls still being inferred are treated as integers
	if typing.IsAuto(typ) {
		typ = typing.IntegerType
	}

	if !typing.IsNumeric(typ) {
		w.wrongType(p.Operand.Span(), typ, "INT")
	}

	zero := ir.Constant("INT", "0")
	if typ.Equals(typing.FloatType) {
		zero = ir.Constant("FLOAT", "0.0")
	}

	return typ, ir.Binary(ir.Subtract, zero, operand)
}

func (w *Walker) walkIndex(ix *ast.Index, mode Mode) (typing.Type, string) {
	targetType, target := w.walkExpr(ix.Target, mode)
	elemType, ok := typing.ElemType(targetType)
	if !ok {
		w.wrongType(ix.Target.Span(), targetType, "array")
	}

	_, index := w.walkValue(ix.Index, typing.IntegerType, mode)
	return elemType, ir.Index(target, index)
}

// -----------------------------------------------------------------------------

// formatFloat renders a float constant so that it always reads as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
