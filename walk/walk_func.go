package walk

import (
	"fmt"
	"strings"

	"arcc/ast"
	"arcc/ir"
	"arcc/report"
	"arcc/sem"
	"arcc/typing"

	"github.com/google/uuid"
)

// funcBinding describes what a function literal is being compiled for.
type funcBinding struct {
	// The name the literal is bound to or "" for an anonymous function.
	name string

	// The function type to fill in.  This is created ahead of compiling the
	// body when the function must be able to refer to itself.
	typ *typing.FunctionType

	// The compound type the function is a method of.
	self *typing.CompoundType
}

// walkFuncLit compiles a function literal into its own function buffer and
// returns a reference to it.  Any parameter or return types which are not
// declared are written as placeholders and substituted once the body has
// been compiled.
func (w *Walker) walkFuncLit(fl *ast.FuncLit, mode Mode, fb funcBinding) (typing.Type, string) {
	if mode == Probe {
		state := w.saveState()
		defer w.restoreState(state)
	}

	ft := fb.typ
	if ft == nil {
		ft = &typing.FunctionType{}
	}

	ft.IsMethod = fb.self != nil
	ft.Return = typing.Auto

	var declared typing.Type
	if !fl.ReturnType.IsAuto() {
		declared = w.resolveTypeExpr(fl.ReturnType)
		ft.Return = declared
	}

	id := w.nextFuncID()
	name := w.funcName(fb.name, id)
	ft.Reference = name

	w.PushScope()
	defer w.PopScope()

	ctx := &funcContext{parent: w.fn, id: id, declaredReturn: declared}
	w.fn = ctx

	outer := w.pending
	w.pending = nil
	defer func() {
		w.fn = ctx.parent
		w.pending = append(outer, w.pending...)
	}()

	// define the parameters
	params := make([]*sem.Symbol, len(fl.Params))
	ft.Params = make([]typing.Type, len(fl.Params))
	for i, param := range fl.Params {
		for _, prev := range fl.Params[:i] {
			if prev.Name == param.Name {
				w.error(report.DuplicateParameter, param.Span(), "multiple parameters named `%s`", param.Name)
			}
		}

		var typ typing.Type = typing.Auto
		if i == 0 && fb.self != nil {
			typ = fb.self
		} else if param.Type != nil {
			typ = w.resolveTypeExpr(param.Type)
		}

		params[i] = w.define(param.Name, typ, i, param.Span())
		ft.Params[i] = typ
	}

	// write the header with placeholders for anything not yet known
	var placeholders map[string]int
	if mode == Emit {
		placeholders = make(map[string]int)

		returnLabel := placeholder(placeholders, -1)
		if declared != nil {
			returnLabel = declared.Transpile()
		}

		paramLabels := make([]string, len(params))
		for i, sym := range params {
			if typing.IsAuto(sym.Type) {
				paramLabels[i] = placeholder(placeholders, i)
			} else {
				paramLabels[i] = sym.Type.Transpile()
			}
		}

		ctx.buf = ir.NewFunctionBuffer(name, id, ir.FunctionHeader(name, id, returnLabel, paramLabels))
		w.addBuffer(ctx.buf)
	}

	frame := ctx.pushReturnFrame()
	bodyType, frags := w.walkStmts(fl.Body.Stmts, mode)
	if retType := ctx.popReturnFrame(frame); retType != nil {
		bodyType = retType
	}

	// settle the signature
	if declared == nil {
		ft.Return = bodyType
		if typing.IsAuto(ft.Return) {
			ft.Return = typing.Void
		}
	}

	for i, sym := range params {
		if typing.IsAuto(sym.Type) {
			sym.Type = typing.IntegerType
		}

		ft.Params[i] = sym.Type
	}

	if mode == Probe {
		return ft, ""
	}

	for _, frag := range frags {
		ctx.buf.Write(frag)
	}

	for text, index := range placeholders {
		if index < 0 {
			ctx.buf.Replace(text, ft.Return.Transpile())
		} else {
			ctx.buf.Replace(text, ft.Params[index].Transpile())
		}
	}

	ctx.buf.ReturnLabel = ft.Return.Transpile()
	ctx.buf.ParamLabels = make([]string, len(ft.Params))
	for i, param := range ft.Params {
		ctx.buf.ParamLabels[i] = param.Transpile()
	}

	return ft, ir.ConstantFunction(name)
}

// funcName determines the name of a function buffer.  Anonymous functions
// are named by their ID; names which are already taken are suffixed with it.
func (w *Walker) funcName(base string, id int) string {
	if base == "" {
		return fmt.Sprintf("fn_%d", id)
	}

	if _, taken := w.bufferNames[base]; taken {
		return fmt.Sprintf("%s_%d", base, id)
	}

	return base
}

// placeholder creates a new unique type placeholder and records which part of
// the signature it stands for: -1 for the return type or a parameter index.
func placeholder(placeholders map[string]int, index int) string {
	text := "REPLACE_TYPE_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	placeholders[text] = index
	return text
}
