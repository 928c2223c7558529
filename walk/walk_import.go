package walk

import (
	"path/filepath"
	"strings"

	"arcc/ast"
	"arcc/ir"
	"arcc/report"
	"arcc/sem"
	"arcc/typing"
)

func (w *Walker) walkImport(imp *ast.Import, mode Mode) (typing.Type, string) {
	// imports only appear at the top level which is never probed
	if mode == Probe {
		return typing.Void, ""
	}

	if w.loader == nil {
		w.error(report.ImportFailed, imp.Span(), "unable to import `%s`: no module loader", imp.Path)
	}

	mod, err := w.loader.LoadModule(w.file, imp.Path)
	if err != nil {
		w.error(report.ImportFailed, imp.Span(), "unable to import `%s`: %s", imp.Path, err.Error())
	}

	for i, path := range w.importStack {
		if path == mod.AbsPath {
			cycle := append(append([]string{}, w.importStack[i:]...), mod.AbsPath)
			for j, p := range cycle {
				cycle[j] = filepath.Base(p)
			}

			w.error(report.ImportCycle, imp.Span(), "import cycle detected: %s", strings.Join(cycle, " -> "))
		}
	}

	w.imports = append(w.imports, mod.AbsPath)

	if mod.Library != nil {
		return w.importLibrary(imp, mod)
	}

	return w.importModule(imp, mod)
}

// importLibrary binds a native library to its alias and loads it.
func (w *Walker) importLibrary(imp *ast.Import, mod *Module) (typing.Type, string) {
	w.checkRedeclare(imp.Alias, imp.AliasSpan)

	namespace := w.location + imp.Alias
	lt := &typing.LibraryType{Name: namespace, Methods: make(map[string]*typing.FunctionType)}
	for name, mf := range mod.Library.Functions {
		ft := &typing.FunctionType{
			Reference: namespace + "::" + name,
			Params:    make([]typing.Type, len(mf.Parameters)),
			Return:    typing.Void,
		}

		for i, param := range mf.Parameters {
			ft.Params[i] = w.manifestType(param)
		}

		if mf.Returns != "" {
			ft.Return = w.manifestType(mf.Returns)
		}

		lt.Methods[name] = ft
	}

	w.scopes.Define(&sem.Symbol{
		Name:      namespace,
		Slot:      -1,
		Type:      lt,
		Modifiers: sem.ModModule | sem.ModConstant,
		ParamID:   -1,
		FuncID:    w.fn.id,
		DefSpan:   imp.AliasSpan,
	})

	return typing.Void, ir.LoadLib(mod.AbsPath, namespace)
}

// manifestType converts a type label used in a library manifest into a type.
// Names which are not builtin types or known classes are user defined types.
func (w *Walker) manifestType(label string) typing.Type {
	name := strings.TrimSpace(label)
	depth := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		depth++
	}

	if typ, ok := typing.LookupBuiltin(name); ok && !typing.IsAuto(typ) {
		return typing.WrapArray(typ, depth)
	}

	if info, ok := w.lookupClass(name); ok {
		return typing.WrapArray(info.typ, depth)
	}

	return typing.WrapArray(typing.NewUserDefined(name), depth)
}

// importModule compiles a source module and binds its exports to its alias.
// The exports are gathered into a compound value built by a generated
// constructor function.
func (w *Walker) importModule(imp *ast.Import, mod *Module) (typing.Type, string) {
	exportName := w.location + imp.Alias
	frags, exports, hidden := w.compileModule(mod, exportName)

	ct := &typing.CompoundType{Name: exportName}
	loads := make([]string, len(exports))
	for i, sym := range exports {
		ct.AddField(strings.TrimPrefix(sym.Name, exportName+"::"), sym.Type, nil)
		loads[i] = ir.LoadVariable(sym.Slot)
	}

	info := w.registerCompound(ct, true)
	info.module = true
	info.hidden = hidden

	id := w.nextFuncID()
	ctorName := exportName + "::new"
	ctor := ir.NewFunctionBuffer(ctorName, id, ir.FunctionHeader(ctorName, id, exportName, nil))
	ctor.Write(ir.Return(ir.ConstantList(exportName, loads...)))
	ctor.ReturnLabel = exportName
	w.addBuffer(ctor)

	sym := w.define(imp.Alias, ct, -1, imp.AliasSpan)
	sym.Modifiers = sem.ModModule | sem.ModConstant

	frags = append(frags,
		ir.Compound(exportName, ct.FieldLabels()),
		ir.Store(sym.Slot, ir.Call(ir.ConstantFunction(ctorName))),
	)

	return typing.Void, ir.Join(frags...)
}

// compileModule compiles the statements of a source module at a new module
// location.  It returns the module's fragments, its public symbols in
// declaration order and the names of its other bindings.
func (w *Walker) compileModule(mod *Module, exportName string) ([]string, []*sem.Symbol, map[string]struct{}) {
	w.pushLocation(exportName, mod.AbsPath)
	defer w.popLocation()

	scope := w.scopes.Push()
	defer w.scopes.Pop()

	_, frags := w.walkStmts(mod.Program.Stmts, Emit)

	// later declarations replace earlier ones of the same name
	var exports []*sem.Symbol
	exportIndex := make(map[string]int)
	hidden := make(map[string]struct{})
	for _, sym := range w.scopes.Scope(scope).Symbols {
		name := strings.TrimPrefix(sym.Name, w.location)
		if !sym.HasModifier(sem.ModPublic) {
			hidden[name] = struct{}{}
			continue
		}

		if i, ok := exportIndex[name]; ok {
			exports[i] = sym
		} else {
			exportIndex[name] = len(exports)
			exports = append(exports, sym)
		}
	}

	for name := range exportIndex {
		delete(hidden, name)
	}

	return frags, exports, hidden
}

// pushLocation enters the location of an imported module.
func (w *Walker) pushLocation(exportName, file string) {
	w.locations = append(w.locations, locationEntry{
		location:   w.location,
		exportName: w.exportName,
		file:       w.file,
	})
	w.importStack = append(w.importStack, file)

	w.location = exportName + "::"
	w.exportName = exportName
	w.file = file
}

// popLocation restores the location saved by pushLocation.  It must be
// deferred: errors raised while compiling the module are tagged with the
// module's path as they propagate through it.
func (w *Walker) popLocation() {
	file := w.file

	top := w.locations[len(w.locations)-1]
	w.locations = w.locations[:len(w.locations)-1]
	w.importStack = w.importStack[:len(w.importStack)-1]
	w.location, w.exportName, w.file = top.location, top.exportName, top.file

	if x := recover(); x != nil {
		if ce, ok := x.(*report.CompileError); ok && ce.File == "" {
			ce.File = file
		}

		panic(x)
	}
}
