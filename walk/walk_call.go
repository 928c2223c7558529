package walk

import (
	"strconv"

	"arcc/ast"
	"arcc/ir"
	"arcc/report"
	"arcc/typing"
)

func (w *Walker) walkCall(c *ast.Call, mode Mode) (typing.Type, string) {
	switch callee := c.Callee.(type) {
	case *ast.Ident:
		// class names are only used as constructors when they are not
		// shadowed by a value
		if _, ok := w.Resolve(callee.Name); !ok {
			if info, ok := w.lookupClass(callee.Name); ok {
				return w.walkInstantiation(info, c, mode)
			}
		}
	case *ast.ModuleAccess:
		sym := w.lookupModule(callee)

		switch v := sym.Type.(type) {
		case *typing.LibraryType:
			return w.walkLibraryCall(v, callee, c.Args, mode)
		case *typing.CompoundType:
			if _, isField := v.Field(callee.Member); !isField {
				if info, ok := w.compounds[v.Name+"::"+callee.Member]; ok {
					if !info.public {
						w.error(report.NotExported, callee.Span(), "`%s` is not exported by module `%s`", callee.Member, callee.Module)
					}

					return w.walkInstantiation(info, c, mode)
				}
			}
		}
	}

	calleeType, callee := w.walkExpr(c.Callee, mode)
	ft, ok := calleeType.(*typing.FunctionType)
	if !ok {
		w.error(report.NotCallable, c.Callee.Span(), "value of type `%s` is not callable", calleeType.Transpile())
	}

	args := w.walkArgs(c.Args, ft.Params, c.Span(), mode)
	return ft.Return, ir.Call(callee, args...)
}

// walkArgs walks the arguments to a call checking them against the parameter
// types of the callee.
func (w *Walker) walkArgs(args []ast.Expr, params []typing.Type, span *report.TextSpan, mode Mode) []string {
	if len(args) != len(params) {
		w.error(report.WrongArgumentCount, span, "expected %d arguments but got %d", len(params), len(args))
	}

	frags := make([]string, len(args))
	for i, arg := range args {
		_, frags[i] = w.walkValue(arg, params[i], mode)
	}

	return frags
}

func (w *Walker) walkMethodCall(mc *ast.MethodCall, mode Mode) (typing.Type, string) {
	targetType, target := w.walkExpr(mc.Target, mode)

	if ct, ok := targetType.(*typing.CompoundType); ok {
		field, ok := ct.Field(mc.Name)
		if !ok {
			w.checkExported(ct, mc.Name, mc.NameSpan)
		} else {
			ft, ok := field.Type.(*typing.FunctionType)
			if !ok {
				w.error(report.NotCallable, mc.NameSpan, "field `%s` of type `%s` is not callable", mc.Name, ct.Name)
			}

			callee := ir.Index(target, ir.Constant("INT", strconv.Itoa(field.Index)))

			// methods receive the target as their first argument
			if ft.IsMethod {
				args := w.walkArgs(mc.Args, ft.Params[1:], mc.Span(), mode)
				return ft.Return, ir.Call(callee, append([]string{target}, args...)...)
			}

			args := w.walkArgs(mc.Args, ft.Params, mc.Span(), mode)
			return ft.Return, ir.Call(callee, args...)
		}
	}

	return w.walkExtensionCall(targetType, target, mc, mode)
}

// walkLibraryCall walks a call to a function of a native library.
func (w *Walker) walkLibraryCall(lt *typing.LibraryType, ma *ast.ModuleAccess, args []ast.Expr, mode Mode) (typing.Type, string) {
	ft, ok := lt.Methods[ma.Member]
	if !ok {
		w.error(report.UnknownField, ma.Span(), "library `%s` has no function named `%s`", ma.Module, ma.Member)
	}

	frags := w.walkArgs(args, ft.Params, ma.Span(), mode)
	return ft.Return, ir.CallLibrary(lt.Name, ma.Member, frags...)
}

// walkInstantiation walks a constructor call of a class.  Arguments are
// matched to fields positionally; fields without an argument use their
// initializers.
func (w *Walker) walkInstantiation(info *classInfo, c *ast.Call, mode Mode) (typing.Type, string) {
	ct := info.typ
	if len(c.Args) > len(ct.Fields) {
		w.error(report.WrongArgumentCount, c.Span(), "`%s` has %d fields but got %d arguments", ct.Name, len(ct.Fields), len(c.Args))
	}

	frags := make([]string, len(ct.Fields))
	for i, field := range ct.Fields {
		if i < len(c.Args) {
			_, frags[i] = w.walkValue(c.Args[i], field.Type, mode)
			continue
		}

		// function fields are compiled once with the class
		if ft, ok := field.Type.(*typing.FunctionType); ok {
			if _, ok := field.Init.(*ast.FuncLit); ok {
				frags[i] = ir.ConstantFunction(ft.Reference)
				continue
			}
		}

		_, frags[i] = w.walkInDeclScope(info, field.Init, field.Type, mode)
	}

	return ct, ir.ConstantList(ct.Name, frags...)
}

// walkInDeclScope walks a field initializer in the scope and module location
// its class was declared in.
func (w *Walker) walkInDeclScope(info *classInfo, init ast.Expr, expected typing.Type, mode Mode) (typing.Type, string) {
	prevScope := w.scopes.Enter(info.scope)
	prevLocation := w.location
	w.location = info.location

	defer func() {
		w.scopes.Enter(prevScope)
		w.location = prevLocation
	}()

	return w.walkValue(init, expected, mode)
}

// -----------------------------------------------------------------------------

func (w *Walker) walkExtensionCall(targetType typing.Type, target string, mc *ast.MethodCall, mode Mode) (typing.Type, string) {
	ext, ok := w.extensions[typing.KindOf(targetType)][mc.Name]
	if !ok {
		w.error(report.UnknownExtension, mc.NameSpan, "type `%s` has no method named `%s`", targetType.Transpile(), mc.Name)
	}

	params, ret := ext.Signature(targetType)
	args := w.walkArgs(mc.Args, params, mc.Span(), mode)

	switch ext.Instr {
	case instrPush:
		return ret, ir.Push(target, args[0])
	case instrPop:
		return ret, ir.Pop(target, args[0])
	case instrLength:
		return ret, ir.Length(target)
	default:
		return ret, ir.Extension(ext.ID, target, args...)
	}
}

