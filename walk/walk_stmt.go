package walk

import (
	"fmt"

	"arcc/ast"
	"arcc/ir"
	"arcc/report"
	"arcc/sem"
	"arcc/typing"
)

// walkStmts walks a list of statements in order.  It returns the type of the
// last statement along with the fragments of every statement, each preceded
// by any compound records it requires.
func (w *Walker) walkStmts(stmts []ast.Stmt, mode Mode) (typing.Type, []string) {
	var typ typing.Type = typing.Void
	var frags []string

	for _, stmt := range stmts {
		stmtType, frag := w.walkStmt(stmt, mode)
		if mode == Emit {
			frags = append(frags, w.takePending()...)
			frags = append(frags, frag)
		}

		typ = stmtType
	}

	return typ, frags
}

// walkBlock walks a block in a new scope.  The type of the block is the type
// of the first return compiled within it or, if there is none, the type of
// its last statement.  The returned flag indicates whether a return was
// found.  Compound records queued before the block are left for the enclosing
// statement.
func (w *Walker) walkBlock(block *ast.Block, mode Mode) (typing.Type, string, bool) {
	w.PushScope()
	defer w.PopScope()

	outer := w.pending
	w.pending = nil
	defer func() {
		w.pending = append(outer, w.pending...)
	}()

	frame := w.fn.pushReturnFrame()
	typ, frags := w.walkStmts(block.Stmts, mode)

	if retType := w.fn.popReturnFrame(frame); retType != nil {
		return retType, ir.Join(frags...), true
	}

	return typ, ir.Join(frags...), false
}

// walkStmt walks a single statement.  Declarations and assignments are typed
// Void; expression statements and returns take the type of their value.
func (w *Walker) walkStmt(stmt ast.Stmt, mode Mode) (typing.Type, string) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		return w.walkVarDecl(v, mode)
	case *ast.Assign:
		return w.walkAssign(v, mode)
	case *ast.IndexAssign:
		return w.walkIndexAssign(v, mode)
	case *ast.Return:
		return w.walkReturn(v, mode)
	case *ast.Break:
		if w.fn.loopDepth == 0 {
			w.error(report.BreakOutsideLoop, v.Span(), "`break` used outside of a loop")
		}

		return typing.Void, ir.Break()
	case *ast.Import:
		return w.walkImport(v, mode)
	case *ast.ClassDecl:
		return w.walkClassDecl(v, mode)
	case *ast.ExtendDecl:
		return w.walkExtendDecl(v, mode)
	case *ast.ExprStmt:
		return w.walkExpr(v.Expr, mode)
	}

	// unreachable: the statement node set is closed
	panic(fmt.Sprintf("walk: unknown statement node %T", stmt))
}

// -----------------------------------------------------------------------------

func (w *Walker) walkVarDecl(vd *ast.VarDecl, mode Mode) (typing.Type, string) {
	var declared typing.Type = typing.Auto
	if vd.Type != nil {
		declared = w.resolveTypeExpr(vd.Type)
	}

	var mods int
	if vd.Constant {
		mods |= sem.ModConstant
	}

	if vd.Public {
		mods |= sem.ModPublic
	}

	// function literals bind their name before their body is compiled so
	// that they can call themselves
	if fl, ok := vd.Init.(*ast.FuncLit); ok {
		if !typing.IsAuto(declared) {
			w.wrongType(fl.Span(), &typing.FunctionType{}, declared.Transpile())
		}

		ft := &typing.FunctionType{Return: typing.Auto}
		sym := w.define(vd.Name, ft, -1, vd.NameSpan)
		sym.Modifiers = mods

		_, frag := w.walkFuncLit(fl, mode, funcBinding{name: sym.Name, typ: ft})
		if mode == Probe {
			return typing.Void, ""
		}

		return typing.Void, ir.Store(sym.Slot, frag)
	}

	typ, frag := w.walkValue(vd.Init, declared, mode)
	if typing.IsVoid(typ) {
		w.wrongType(vd.Init.Span(), typ, "a value")
	}

	if !typing.IsAuto(declared) {
		typ = declared
	}

	sym := w.define(vd.Name, typ, -1, vd.NameSpan)
	sym.Modifiers = mods

	if mode == Probe {
		return typing.Void, ""
	}

	return typing.Void, ir.Store(sym.Slot, frag)
}

func (w *Walker) walkAssign(a *ast.Assign, mode Mode) (typing.Type, string) {
	sym := w.lookup(a.Name, a.NameSpan)
	if sym.HasModifier(sem.ModConstant) || sym.HasModifier(sem.ModModule) {
		w.error(report.ConstantReassignment, a.NameSpan, "cannot assign to constant `%s`", a.Name)
	}

	typ, frag := w.walkValue(a.Value, sym.Type, mode)
	if typing.IsVoid(typ) {
		w.wrongType(a.Value.Span(), typ, "a value")
	}

	// the first assignment to an untyped symbol decides its type
	if typing.IsAuto(sym.Type) {
		sym.Type = typ
	}

	if mode == Probe {
		return typing.Void, ""
	}

	if sym.IsParameter() {
		return typing.Void, ir.StoreParameter(sym.FuncID, sym.ParamID, frag)
	}

	return typing.Void, ir.Store(sym.Slot, frag)
}

func (w *Walker) walkIndexAssign(ia *ast.IndexAssign, mode Mode) (typing.Type, string) {
	var targetType typing.Type
	var target string

	switch v := ia.Target.(type) {
	case *ast.Field:
		ownerType, owner := w.walkExpr(v.Target, mode)
		if ct, ok := ownerType.(*typing.CompoundType); ok {
			if info, ok := w.compounds[ct.Name]; ok && info.module {
				w.error(report.ConstantReassignment, v.NameSpan, "cannot assign to export `%s` of module `%s`", v.Name, ct.Name)
			}
		}

		targetType, target = w.walkFieldOn(ownerType, owner, v.Name, v.NameSpan)
	default:
		targetType, target = w.walkExpr(ia.Target, mode)
	}

	_, value := w.walkValue(ia.Value, targetType, mode)
	if mode == Probe {
		return typing.Void, ""
	}

	return typing.Void, ir.Assign(target, value)
}

func (w *Walker) walkReturn(r *ast.Return, mode Mode) (typing.Type, string) {
	declared := w.fn.declaredReturn

	var typ typing.Type = typing.Void
	var frag string
	if r.Value != nil {
		typ, frag = w.walkValue(r.Value, declared, mode)
	} else if declared != nil && !typing.IsVoid(declared) {
		w.wrongType(r.Span(), typing.Void, declared.Transpile())
	}

	w.fn.recordReturn(typ)

	if mode == Probe {
		return typ, ""
	}

	return typ, ir.Return(frag)
}

// -----------------------------------------------------------------------------

// resolveTypeExpr converts a type label into a type.
func (w *Walker) resolveTypeExpr(te *ast.TypeExpr) typing.Type {
	if typ, ok := typing.LookupBuiltin(te.Name); ok {
		if te.Depth > 0 && (typing.IsAuto(typ) || typing.IsVoid(typ)) {
			w.error(report.UnknownType, te.Span(), "cannot declare an array of `%s`", te.Name)
		}

		return typing.WrapArray(typ, te.Depth)
	}

	if info, ok := w.lookupClass(te.Name); ok {
		return typing.WrapArray(info.typ, te.Depth)
	}

	w.error(report.UnknownType, te.Span(), "unknown type: `%s`", te.Name)
	return nil
}
